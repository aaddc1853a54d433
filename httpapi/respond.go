package httpapi

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/homework-evaluation/backend/ent/account"
	"github.com/homework-evaluation/backend/internal/auth"
	"github.com/homework-evaluation/backend/internal/defs"
	"github.com/homework-evaluation/backend/internal/gate"
)

var statusByCode = map[string]int{
	defs.CodeInvalidCredentials: http.StatusUnauthorized,
	defs.CodeUnauthorized:       http.StatusUnauthorized,
	defs.CodeForbidden:          http.StatusForbidden,
	defs.CodeNotEnrolled:        http.StatusForbidden,
	defs.CodeNotFound:           http.StatusNotFound,
	defs.CodeDuplicateUsername:  http.StatusConflict,
	defs.CodeDuplicateSubject:   http.StatusConflict,
	defs.CodeSubjectInUse:       http.StatusConflict,
	defs.CodeConflict:           http.StatusConflict,
	defs.CodeUnknownSubject:     http.StatusUnprocessableEntity,
	defs.CodeInvalidGrade:       http.StatusUnprocessableEntity,
	defs.CodeInvalidInput:       http.StatusBadRequest,
}

// StatusOf returns the HTTP status for the error's code.
func StatusOf(err error) int {
	if status, ok := statusByCode[defs.CodeOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// RespondError aborts the request with the rendered error. Internal errors
// are logged and their details withheld.
func RespondError(c *gin.Context, err error) {
	code := defs.CodeOf(err)
	status := StatusOf(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		slog.Error("request failed", "path", c.FullPath(), "error", err)
		message = "internal error, please try again later"
	}

	c.AbortWithStatusJSON(status, gin.H{
		"error":   code,
		"message": message,
	})
}

// Caller returns the gate caller of the authenticated request.
func Caller(c *gin.Context) (gate.Caller, bool) {
	info, ok := auth.GetUser(c.Request.Context())
	if !ok {
		return gate.Caller{}, false
	}

	return gate.Caller{AccountID: info.AccountID, Role: account.Role(info.Role)}, true
}

// MustCaller is Caller for routes behind auth.RequireUser.
func MustCaller(c *gin.Context) gate.Caller {
	caller, ok := Caller(c)
	if !ok {
		panic("httpapi: MustCaller on an unauthenticated route")
	}
	return caller
}

var errBadID = errors.New("id must be a positive integer")

// IDParam parses the named path parameter as a positive ID. It renders the
// error itself and reports false on failure.
func IDParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		RespondError(c, defs.InvalidInput(name+": "+errBadID.Error()))
		return 0, false
	}
	return id, true
}

// BindJSON decodes the body into req, rendering InvalidInput on failure.
func BindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		RespondError(c, defs.InvalidInput("malformed request body: "+err.Error()))
		return false
	}
	return true
}
