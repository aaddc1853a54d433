package authservice

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/homework-evaluation/backend/internal/auth"
	"github.com/homework-evaluation/backend/internal/defs"
)

// Logout revokes the request's token, if any, and clears the cookie.
// POST /api/auth/logout
func (s *AuthService) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)

	token, err := auth.TokenFromRequest(c.Request)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   defs.CodeInvalidInput,
			"message": err.Error(),
		})
		return
	}

	if token != "" {
		err := s.storage.Delete(c.Request.Context(), token)
		if err != nil && !errors.Is(err, auth.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   defs.CodeInternal,
				"message": "Failed to revoke the token. Please try again later.",
			})
			return
		}
	}

	// clear the cookie from session
	c.SetCookie(
		/* name */ auth.CookieAuthToken,
		/* value */ "",
		/* maxAge */ -1,
		/* path */ "/",
		/* domain */ "",
		/* secure */ true,
		/* httpOnly */ true,
	)

	c.Status(http.StatusResetContent)
}
