//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"facility-booking/internal/handler/middleware"
	"facility-booking/internal/testutil/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newLimitedRouter(perMinute int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.NewRateLimiter(perMinute, discardLogger()).Middleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return r
}

func TestRateLimiter(t *testing.T) {
	t.Run("burst is exhausted then requests are refused", func(t *testing.T) {
		// 20/min gives a burst of 2
		r := newLimitedRouter(20)

		assert.Equal(t, http.StatusNoContent, httptest.PerformRequest(t, r, http.MethodGet, "/ping", nil, "").Code)
		assert.Equal(t, http.StatusNoContent, httptest.PerformRequest(t, r, http.MethodGet, "/ping", nil, "").Code)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/ping", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusTooManyRequests, "Rate limit exceeded")
	})

	t.Run("disabled when not positive", func(t *testing.T) {
		r := newLimitedRouter(0)
		for range 50 {
			assert.Equal(t, http.StatusNoContent, httptest.PerformRequest(t, r, http.MethodGet, "/ping", nil, "").Code)
		}
	})
}
