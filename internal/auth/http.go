package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/homework-evaluation/backend/internal/defs"
)

// CookieAuthToken is the cookie a browser client may carry the token in.
const CookieAuthToken = "hwe-auth-token"

// Middleware decodes the Authorization header (or the auth cookie) and packs
// the token information into the request context.
//
// It aborts with 401 if a token is present but invalid. Requests without a
// token pass through untouched.
func Middleware(storage Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		newCtx, err := ExtractToken(c.Request, storage)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   defs.CodeUnauthorized,
				"message": err.Error(),
			})
			return
		}

		c.Request = c.Request.WithContext(newCtx)
		c.Next()
	}
}

// RequireUser aborts with 401 unless Middleware has attached a token.
func RequireUser(c *gin.Context) {
	if _, ok := GetUser(c.Request.Context()); !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error":   defs.CodeUnauthorized,
			"message": "authentication required",
		})
		return
	}

	c.Next()
}

var (
	// ErrBadTokenFormat is returned when the Authorization header is not in the correct Bearer format.
	ErrBadTokenFormat = errors.New("bad token format")
)

// ExtractToken extracts the token from the Authorization header or the auth
// cookie and returns a context carrying the token information.
//
// It adds nothing to the context if the token is not present.
func ExtractToken(r *http.Request, storage Storage) (context.Context, error) {
	token, err := TokenFromRequest(r)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return r.Context(), nil
	}

	tokenInfo, err := storage.Get(r.Context(), token)
	if err != nil {
		return nil, err
	}

	return WithUser(r.Context(), tokenInfo), nil
}

// TokenFromRequest returns the raw token of the request, if any.
func TokenFromRequest(r *http.Request) (string, error) {
	if authHeaderContent := r.Header.Get("Authorization"); authHeaderContent != "" {
		token, ok := strings.CutPrefix(authHeaderContent, "Bearer ")
		if !ok || token == "" {
			return "", ErrBadTokenFormat
		}
		return token, nil
	}

	if cookie, err := r.Cookie(CookieAuthToken); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	return "", nil
}
