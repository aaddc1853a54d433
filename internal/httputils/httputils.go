// Package httputils provides utilities for HTTP requests.
package httputils

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
)

type machineContextKey struct{}

// UnknownMachine is reported when the request did not pass through MachineMiddleware.
const UnknownMachine = "unknown"

// Machine describes the client a request came from.
type Machine struct {
	UserAgent string
	ClientIP  string
}

func (m Machine) String() string {
	userAgent := m.UserAgent
	if userAgent == "" {
		userAgent = UnknownMachine
	}
	if m.ClientIP == "" {
		return userAgent
	}

	return fmt.Sprintf("%s (%s)", userAgent, m.ClientIP)
}

// MachineMiddleware records the User-Agent header and client IP in the request context.
func MachineMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		machine := Machine{
			UserAgent: c.GetHeader("User-Agent"),
			ClientIP:  c.ClientIP(),
		}
		c.Request = c.Request.WithContext(WithMachine(c.Request.Context(), machine))
		c.Next()
	}
}

func WithMachine(ctx context.Context, machine Machine) context.Context {
	return context.WithValue(ctx, machineContextKey{}, machine)
}

// GetMachineName returns a printable description of the client, used to label auth tokens.
func GetMachineName(ctx context.Context) string {
	if machine, ok := ctx.Value(machineContextKey{}).(Machine); ok {
		return machine.String()
	}

	return UnknownMachine
}
