package authservice

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/homework-evaluation/backend/ent/account"
	"github.com/homework-evaluation/backend/httpapi"
	"github.com/homework-evaluation/backend/internal/auth"
	"github.com/homework-evaluation/backend/internal/httputils"
	"github.com/homework-evaluation/backend/internal/scope"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

type LoginResponse struct {
	Token   string              `json:"token"`
	Account httpapi.AccountView `json:"account"`
}

// Login checks the exact (username, password, role) triple and issues a
// token, both in the body and as a cookie.
// POST /api/auth/login
func (s *AuthService) Login(c *gin.Context) {
	var req LoginRequest
	if !httpapi.BindJSON(c, &req) {
		return
	}

	acc, err := s.gate.Login(c.Request.Context(), req.Username, req.Password, account.Role(req.Role))
	if err != nil {
		httpapi.RespondError(c, err)
		return
	}

	info := auth.TokenInfo{
		AccountID: acc.ID,
		Username:  acc.Username,
		Role:      string(acc.Role),
		Machine:   httputils.GetMachineName(c.Request.Context()),
		Scopes:    scope.ForRole(acc.Role),
	}
	if err := info.Validate(); err != nil {
		httpapi.RespondError(c, err)
		return
	}

	token, err := s.storage.Create(c.Request.Context(), info)
	if err != nil {
		httpapi.RespondError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(
		/* name */ auth.CookieAuthToken,
		/* value */ token,
		/* maxAge */ int(auth.DefaultTokenExpire.Seconds()),
		/* path */ "/",
		/* domain */ "",
		/* secure */ true,
		/* httpOnly */ true,
	)

	c.JSON(http.StatusOK, LoginResponse{
		Token:   token,
		Account: httpapi.NewAccountView(acc),
	})
}

// Me returns the signed-in account.
// GET /api/auth/me
func (s *AuthService) Me(c *gin.Context) {
	acc, err := s.gate.Me(c.Request.Context(), httpapi.MustCaller(c))
	if err != nil {
		httpapi.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpapi.NewAccountView(acc))
}
