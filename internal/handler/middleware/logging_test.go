//go:build unit

package middleware_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"facility-booking/internal/handler/middleware"
	"facility-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestLoggingMiddleware_RequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := middleware.NewLogger(config.LogConfig{Level: "error", TimeZone: "UTC", TimeFormat: "2006-01-02"})

	r := gin.New()
	r.Use(logger.LoggingMiddleware())
	var seen string
	r.GET("/ping", func(c *gin.Context) {
		seen = middleware.GetRequestID(c)
		c.Status(http.StatusNoContent)
	})

	tests := []struct {
		name    string
		inbound string
		reuse   bool
	}{
		{name: "generated when absent", inbound: "", reuse: false},
		{name: "inbound id is kept", inbound: "edge-7f3a.01", reuse: true},
		{name: "unsafe inbound id is replaced", inbound: "abc\"; drop", reuse: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := nethttptest.NewRequest(http.MethodGet, "/ping", nil)
			if tt.inbound != "" {
				req.Header.Set(middleware.RequestIDHeader, tt.inbound)
			}
			rec := nethttptest.NewRecorder()
			r.ServeHTTP(rec, req)

			got := rec.Header().Get(middleware.RequestIDHeader)
			assert.NotEmpty(t, got)
			assert.Equal(t, seen, got)
			if tt.reuse {
				assert.Equal(t, tt.inbound, got)
			} else {
				assert.NotEqual(t, tt.inbound, got)
			}
		})
	}
}
