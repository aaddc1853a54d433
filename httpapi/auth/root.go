// authservice provides sign-in, sign-out and the current account.
package authservice

import (
	"github.com/gin-gonic/gin"
	"github.com/homework-evaluation/backend/httpapi"
	"github.com/homework-evaluation/backend/internal/auth"
	"github.com/homework-evaluation/backend/internal/gate"
)

type AuthService struct {
	gate    *gate.Gate
	storage auth.Storage
}

func NewAuthService(gate *gate.Gate, storage auth.Storage) *AuthService {
	return &AuthService{
		gate:    gate,
		storage: storage,
	}
}

func (s *AuthService) Register(router gin.IRouter) {
	group := router.Group("/auth")

	group.POST("/login", s.Login)
	group.POST("/logout", s.Logout)
	group.GET("/me", auth.RequireUser, s.Me)
}

var _ httpapi.Service = (*AuthService)(nil)
