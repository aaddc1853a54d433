// Package httpapi provides the HTTP API controllers over the access gate.
//
// Each role has its own service under httpapi/*; this package holds what
// they share: registration, caller extraction, error rendering and views.
package httpapi

import (
	"github.com/gin-gonic/gin"
)

// Service mounts a group of routes, usually one per role.
type Service interface {
	Register(router gin.IRouter)
}

// Register mounts every service on router.
func Register(router gin.IRouter, services ...Service) {
	for _, service := range services {
		service.Register(router)
	}
}
