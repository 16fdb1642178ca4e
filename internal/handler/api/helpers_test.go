//go:build unit

package api_test

import (
	"net/http"

	"facility-booking/internal/domain/pricing"
	"facility-booking/internal/handler/middleware"
	"facility-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	memberActor = shared.Actor{UserID: uuid.New(), Profile: pricing.RoleProfile{SystemRole: pricing.SystemRoleUser, IsMember: true}}
	adminActor  = shared.Actor{UserID: uuid.New(), Profile: pricing.RoleProfile{SystemRole: pricing.SystemRoleAdmin, IsAdmin: true}}
)

// fakeAuth maps the bearer token "admin" to adminActor and any other token to memberActor.
func fakeAuth(c *gin.Context) {
	switch c.GetHeader("Authorization") {
	case "":
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
		return
	case "Bearer admin":
		middleware.SetActor(c, adminActor)
	default:
		middleware.SetActor(c, memberActor)
	}
	c.Next()
}
