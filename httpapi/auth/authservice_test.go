package authservice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/homework-evaluation/backend/ent/account"
	"github.com/homework-evaluation/backend/httpapi"
	"github.com/homework-evaluation/backend/internal/auth"
	"github.com/homework-evaluation/backend/internal/defs"
	"github.com/homework-evaluation/backend/internal/events"
	"github.com/homework-evaluation/backend/internal/gate"
	"github.com/homework-evaluation/backend/internal/httputils"
	"github.com/homework-evaluation/backend/internal/testhelper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingDeleteStorage wraps a storage whose Delete always fails.
type failingDeleteStorage struct {
	auth.Storage
	deleteErr error
}

func (s *failingDeleteStorage) Delete(ctx context.Context, token string) error {
	return s.deleteErr
}

func setupTestAuthService(t *testing.T) (*gin.Engine, auth.Storage) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	entClient := testhelper.NewEntSqliteClient(t)
	math := testhelper.CreateSubject(t, entClient, "Math", "MTH1")
	testhelper.CreateAccount(t, entClient, account.RoleStudent, "alice", math)

	storage := auth.NewMemoryStorage()
	router := newRouter(NewAuthService(gate.NewFromClient(entClient, events.NewEventService()), storage), storage)

	return router, storage
}

func newRouter(service *AuthService, storage auth.Storage) *gin.Engine {
	router := gin.New()
	router.Use(httputils.MachineMiddleware(), auth.Middleware(storage))
	httpapi.Register(router, service)
	return router
}

func login(t *testing.T, router *gin.Engine, username, password, role string) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(LoginRequest{Username: username, Password: password, Role: role})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "test-agent")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	return rr
}

func findCookie(rr *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == auth.CookieAuthToken {
			return cookie
		}
	}
	return nil
}

func TestAuthService_Login(t *testing.T) {
	t.Run("successful login issues a token", func(t *testing.T) {
		router, storage := setupTestAuthService(t)

		rr := login(t, router, "alice", "pw-alice", "student")
		require.Equal(t, http.StatusOK, rr.Code)

		var response LoginResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&response))
		require.NotEmpty(t, response.Token)
		assert.Equal(t, "alice", response.Account.Username)
		assert.Equal(t, "student", response.Account.Role)

		info, err := storage.Peek(context.Background(), response.Token)
		require.NoError(t, err)
		assert.Equal(t, response.Account.ID, info.AccountID)
		assert.Equal(t, "test-agent (192.0.2.1)", info.Machine)
		assert.Contains(t, info.Scopes, "submission:answer")

		cookie := findCookie(rr)
		require.NotNil(t, cookie)
		assert.Equal(t, response.Token, cookie.Value)
		assert.True(t, cookie.HttpOnly)
	})

	t.Run("token of a client without user agent", func(t *testing.T) {
		router, storage := setupTestAuthService(t)

		body, err := json.Marshal(LoginRequest{Username: "alice", Password: "pw-alice", Role: "student"})
		require.NoError(t, err)
		req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)

		var response LoginResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&response))

		info, err := storage.Peek(context.Background(), response.Token)
		require.NoError(t, err)
		assert.Equal(t, httputils.UnknownMachine+" (192.0.2.1)", info.Machine)
	})

	t.Run("wrong role is rejected", func(t *testing.T) {
		router, _ := setupTestAuthService(t)

		rr := login(t, router, "alice", "pw-alice", "teacher")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)

		var response map[string]string
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&response))
		assert.Equal(t, defs.CodeInvalidCredentials, response["error"])
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		router, _ := setupTestAuthService(t)

		rr := login(t, router, "alice", "PW-ALICE", "student")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		router, _ := setupTestAuthService(t)

		req := httptest.NewRequest("POST", "/auth/login", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestAuthService_Me(t *testing.T) {
	router, _ := setupTestAuthService(t)

	rr := login(t, router, "alice", "pw-alice", "student")
	require.Equal(t, http.StatusOK, rr.Code)
	var loggedIn LoginResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&loggedIn))

	t.Run("with bearer token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/auth/me", nil)
		req.Header.Set("Authorization", "Bearer "+loggedIn.Token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var me httpapi.AccountView
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&me))
		assert.Equal(t, loggedIn.Account, me)
	})

	t.Run("without token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/auth/me", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestAuthService_Logout(t *testing.T) {
	t.Run("successful logout with valid token", func(t *testing.T) {
		router, storage := setupTestAuthService(t)

		rr := login(t, router, "alice", "pw-alice", "student")
		require.Equal(t, http.StatusOK, rr.Code)
		token := findCookie(rr).Value

		req := httptest.NewRequest("POST", "/auth/logout", nil)
		req.AddCookie(&http.Cookie{Name: auth.CookieAuthToken, Value: token})
		rr = httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusResetContent, rr.Code)

		_, err := storage.Peek(context.Background(), token)
		assert.True(t, errors.Is(err, auth.ErrNotFound))

		authCookie := findCookie(rr)
		require.NotNil(t, authCookie)
		assert.Equal(t, "", authCookie.Value)
		assert.Equal(t, -1, authCookie.MaxAge)
		assert.Equal(t, "/", authCookie.Path)
		assert.True(t, authCookie.Secure)
		assert.True(t, authCookie.HttpOnly)
	})

	t.Run("logout without token should do nothing", func(t *testing.T) {
		router, _ := setupTestAuthService(t)

		req := httptest.NewRequest("POST", "/auth/logout", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusResetContent, rr.Code)
	})

	t.Run("logout with storage error returns internal server error", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		entClient := testhelper.NewEntSqliteClient(t)

		storage := &failingDeleteStorage{
			Storage:   auth.NewMemoryStorage(),
			deleteErr: errors.New("storage connection failed"),
		}
		service := NewAuthService(gate.NewFromClient(entClient, events.NewEventService()), storage)

		// no auth.Middleware: the token never reaches storage.Get
		router := gin.New()
		router.POST("/auth/logout", service.Logout)

		req := httptest.NewRequest("POST", "/auth/logout", nil)
		req.Header.Set("Authorization", "Bearer some-token")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
