package httputils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetMachineName(t *testing.T) {
	tests := []struct {
		name     string
		ctx      context.Context
		expected string
	}{
		{
			name:     "no machine",
			ctx:      context.Background(),
			expected: UnknownMachine,
		},
		{
			name:     "user agent only",
			ctx:      WithMachine(context.Background(), Machine{UserAgent: "curl/8.0"}),
			expected: "curl/8.0",
		},
		{
			name:     "user agent and ip",
			ctx:      WithMachine(context.Background(), Machine{UserAgent: "curl/8.0", ClientIP: "10.0.0.1"}),
			expected: "curl/8.0 (10.0.0.1)",
		},
		{
			name:     "empty user agent",
			ctx:      WithMachine(context.Background(), Machine{ClientIP: "10.0.0.1"}),
			expected: "unknown (10.0.0.1)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetMachineName(tt.ctx))
		})
	}
}

func TestMachineMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var got string
	router := gin.New()
	router.Use(MachineMiddleware())
	router.GET("/", func(c *gin.Context) {
		got = GetMachineName(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("User-Agent", "homework-client/1.0")
	req.RemoteAddr = "192.0.2.1:1234"
	router.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "homework-client/1.0 (192.0.2.1)", got)
}
