package auth_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/homework-evaluation/backend/internal/auth"
	"github.com/homework-evaluation/backend/internal/defs"
)

type baseTokenStorage struct{}

// Create implements auth.Storage.
func (r *baseTokenStorage) Create(ctx context.Context, info auth.TokenInfo) (string, error) {
	panic("unimplemented")
}

// Delete implements auth.Storage.
func (r *baseTokenStorage) Delete(ctx context.Context, token string) error {
	panic("unimplemented")
}

// DeleteByAccount implements auth.Storage.
func (r *baseTokenStorage) DeleteByAccount(ctx context.Context, accountID int) error {
	panic("unimplemented")
}

// Get implements auth.Storage.
func (r *baseTokenStorage) Get(ctx context.Context, token string) (auth.TokenInfo, error) {
	panic("unimplemented")
}

// Peek implements auth.Storage.
func (r *baseTokenStorage) Peek(ctx context.Context, token string) (auth.TokenInfo, error) {
	panic("unimplemented")
}

var _ auth.Storage = &baseTokenStorage{}

type mockTokenStorage struct {
	baseTokenStorage
	tokenInfo auth.TokenInfo
}

func (m *mockTokenStorage) Get(ctx context.Context, token string) (auth.TokenInfo, error) {
	return m.tokenInfo, nil
}

type failTokenStorage struct {
	baseTokenStorage
}

var errFailTokenStorage = errors.New("fail")

func (f *failTokenStorage) Get(ctx context.Context, token string) (auth.TokenInfo, error) {
	return auth.TokenInfo{}, errFailTokenStorage
}

var _ auth.Storage = &mockTokenStorage{}
var _ auth.Storage = &failTokenStorage{}

func TestExtractToken(t *testing.T) {
	t.Run("no token", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		storage := &mockTokenStorage{}
		ctx, err := auth.ExtractToken(r, storage)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if ctx != r.Context() {
			t.Fatalf("expected context to be the same, got %v", ctx)
		}
	})

	t.Run("bad token format", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("Authorization", "Test 1234")
		storage := &mockTokenStorage{}
		_, err := auth.ExtractToken(r, storage)
		if !errors.Is(err, auth.ErrBadTokenFormat) {
			t.Fatalf("expected bad token error, got %v", err)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("Authorization", "Bearer 1234")
		storage := &failTokenStorage{}

		_, err := auth.ExtractToken(r, storage)
		if !errors.Is(err, errFailTokenStorage) {
			t.Fatalf("expected fail error, got %v", err)
		}
	})

	t.Run("good token", func(t *testing.T) {
		tokenInfo := auth.TokenInfo{
			AccountID: 7,
			Machine:   "machine",
		}
		storage := &mockTokenStorage{
			tokenInfo: tokenInfo,
		}

		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("Authorization", "Bearer 1234")
		ctx, err := auth.ExtractToken(r, storage)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		user, ok := auth.GetUser(ctx)
		if !ok {
			t.Fatalf("expected user, got none")
		}

		if user.Machine != tokenInfo.Machine {
			t.Fatalf("expected machine %s, got %s", tokenInfo.Machine, user.Machine)
		}

		if user.AccountID != tokenInfo.AccountID {
			t.Fatalf("expected account %d, got %d", tokenInfo.AccountID, user.AccountID)
		}
	})

	t.Run("good token from cookie", func(t *testing.T) {
		tokenInfo := auth.TokenInfo{
			AccountID: 7,
			Machine:   "machine",
		}
		storage := &mockTokenStorage{
			tokenInfo: tokenInfo,
		}

		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("Cookie", fmt.Sprintf("%s=1234", auth.CookieAuthToken))
		ctx, err := auth.ExtractToken(r, storage)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		user, ok := auth.GetUser(ctx)
		if !ok {
			t.Fatalf("expected user, got none")
		}

		if user.AccountID != tokenInfo.AccountID {
			t.Fatalf("expected account %d, got %d", tokenInfo.AccountID, user.AccountID)
		}
	})
}

func decodeErrorResponse(t *testing.T, rr *httptest.ResponseRecorder) map[string]string {
	t.Helper()

	var response map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	return response
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no token", func(t *testing.T) {
		storage := &baseTokenStorage{}

		router := gin.New()
		router.Use(auth.Middleware(storage))

		var handlerCalled bool
		router.GET("/test", func(c *gin.Context) {
			handlerCalled = true
			_, ok := auth.GetUser(c.Request.Context())
			if ok {
				t.Fatal("expected no user, got one")
			}
		})

		req := httptest.NewRequest("GET", "/test", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		if !handlerCalled {
			t.Error("expected handler to be called")
		}

		if status := rr.Code; status != http.StatusOK {
			t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
		}
	})

	t.Run("bad token format", func(t *testing.T) {
		storage := &baseTokenStorage{}

		router := gin.New()
		router.Use(auth.Middleware(storage))

		router.GET("/test", func(c *gin.Context) {
			t.Error("handler was called when it shouldn't be")
		})

		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("Authorization", "Basic 1234")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		if status := rr.Code; status != http.StatusUnauthorized {
			t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusUnauthorized)
		}

		contentType := rr.Header().Get("Content-Type")
		if contentType != "application/json; charset=utf-8" {
			t.Errorf("expected Content-Type %q, got %q", "application/json; charset=utf-8", contentType)
		}

		response := decodeErrorResponse(t, rr)
		if response["error"] != defs.CodeUnauthorized {
			t.Errorf("expected code %q, got %q", defs.CodeUnauthorized, response["error"])
		}
		if response["message"] != auth.ErrBadTokenFormat.Error() {
			t.Errorf("expected error message %q, got %q", auth.ErrBadTokenFormat.Error(), response["message"])
		}
	})

	t.Run("storage error", func(t *testing.T) {
		storage := &failTokenStorage{}

		router := gin.New()
		router.Use(auth.Middleware(storage))

		var handlerCalled bool
		router.GET("/test", func(c *gin.Context) {
			handlerCalled = true
		})

		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("Authorization", "Bearer 1234")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		if status := rr.Code; status != http.StatusUnauthorized {
			t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusUnauthorized)
		}

		response := decodeErrorResponse(t, rr)
		if response["message"] != errFailTokenStorage.Error() {
			t.Errorf("expected error message %q, got %q", errFailTokenStorage.Error(), response["message"])
		}

		if handlerCalled {
			t.Error("handler should not be called when there's an auth error")
		}
	})

	t.Run("valid token", func(t *testing.T) {
		tokenInfo := auth.TokenInfo{
			AccountID: 3,
			Machine:   "test-machine",
			Role:      "teacher",
		}
		storage := &mockTokenStorage{
			tokenInfo: tokenInfo,
		}

		router := gin.New()
		router.Use(auth.Middleware(storage), auth.RequireUser)

		var handlerCalled bool
		router.GET("/test", func(c *gin.Context) {
			handlerCalled = true

			user, ok := auth.GetUser(c.Request.Context())
			if !ok {
				t.Error("expected user in context, got none")
			}
			if user.Machine != tokenInfo.Machine {
				t.Errorf("expected machine %q, got %q", tokenInfo.Machine, user.Machine)
			}
			if user.Role != tokenInfo.Role {
				t.Errorf("expected role %q, got %q", tokenInfo.Role, user.Role)
			}
		})

		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("Authorization", "Bearer valid-token")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		if !handlerCalled {
			t.Error("expected handler to be called")
		}

		if status := rr.Code; status != http.StatusOK {
			t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
		}
	})
}

func TestRequireUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(auth.Middleware(&baseTokenStorage{}), auth.RequireUser)
	router.GET("/test", func(c *gin.Context) {
		t.Error("handler was called when it shouldn't be")
	})

	req := httptest.NewRequest("GET", "/test", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusUnauthorized {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusUnauthorized)
	}

	response := decodeErrorResponse(t, rr)
	if response["error"] != defs.CodeUnauthorized {
		t.Errorf("expected code %q, got %q", defs.CodeUnauthorized, response["error"])
	}
}
