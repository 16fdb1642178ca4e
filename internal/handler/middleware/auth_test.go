//go:build unit

package middleware_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"facility-booking/internal/domain/pricing"
	"facility-booking/internal/handler/middleware"
	"facility-booking/internal/testutil/httptest"
	usecasemock "facility-booking/internal/testutil/mock/usecase"
	"facility-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAuthRouter(t *testing.T) (*gin.Engine, *usecasemock.MockTokenValidator) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validator := usecasemock.NewMockTokenValidator(gomock.NewController(t))
	m := middleware.NewAuthMiddleware(validator, discardLogger())

	r := gin.New()
	whoami := func(c *gin.Context) {
		actor, ok := middleware.GetActor(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": actor.UserID.String(), "admin": actor.IsAdmin()})
	}
	r.GET("/me", m.RequireAuth(), whoami)
	r.GET("/admin", m.RequireAuth(), m.RequireAdmin(), whoami)
	return r, validator
}

func TestRequireAuth(t *testing.T) {
	user := shared.Actor{UserID: uuid.New(), Profile: pricing.RoleProfile{SystemRole: pricing.SystemRoleUser}}

	t.Run("valid bearer token", func(t *testing.T) {
		r, validator := newAuthRouter(t)
		validator.EXPECT().ValidateToken("good").Return(user, nil)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/me", nil, "good")

		var body map[string]any
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, user.UserID.String(), body["user_id"])
	})

	t.Run("missing token", func(t *testing.T) {
		r, _ := newAuthRouter(t)
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/me", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("rejected token", func(t *testing.T) {
		r, validator := newAuthRouter(t)
		validator.EXPECT().ValidateToken("expired").Return(shared.Actor{}, errors.New("token is expired"))

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/me", nil, "expired")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func TestRequireAdmin(t *testing.T) {
	t.Run("member is refused", func(t *testing.T) {
		r, validator := newAuthRouter(t)
		validator.EXPECT().ValidateToken("member").
			Return(shared.Actor{UserID: uuid.New(), Profile: pricing.RoleProfile{SystemRole: pricing.SystemRoleUser}}, nil)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/admin", nil, "member")
		httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "Insufficient permissions")
	})

	t.Run("admin passes", func(t *testing.T) {
		r, validator := newAuthRouter(t)
		validator.EXPECT().ValidateToken("admin").
			Return(shared.Actor{UserID: uuid.New(), Profile: pricing.RoleProfile{IsAdmin: true, SystemRole: pricing.SystemRoleAdmin}}, nil)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/admin", nil, "admin")

		var body map[string]any
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, true, body["admin"])
	})
}
