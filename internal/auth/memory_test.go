package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/homework-evaluation/backend/internal/auth"
)

func TestMemoryStorage(t *testing.T) {
	storage := auth.NewMemoryStorage()
	ctx := context.Background()

	info := validTokenInfo()
	token, err := storage.Create(ctx, info)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if token == "" {
		t.Fatal("Create returned empty token")
	}

	got, err := storage.Get(ctx, token)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.AccountID != info.AccountID || got.Role != info.Role {
		t.Errorf("Get returned wrong info: got %+v, want %+v", got, info)
	}

	got, err = storage.Peek(ctx, token)
	if err != nil {
		t.Fatalf("Peek failed: %v", err)
	}
	if got.Username != info.Username {
		t.Errorf("Peek returned wrong username: got %s, want %s", got.Username, info.Username)
	}

	if err := storage.Delete(ctx, token); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := storage.Get(ctx, token); !errors.Is(err, auth.ErrNotFound) {
		t.Errorf("expected ErrNotFound after Delete, got %v", err)
	}
	if err := storage.Delete(ctx, token); !errors.Is(err, auth.ErrNotFound) {
		t.Errorf("expected ErrNotFound on second Delete, got %v", err)
	}
}

func TestMemoryStorage_DeleteByAccount(t *testing.T) {
	storage := auth.NewMemoryStorage()
	ctx := context.Background()

	alice := validTokenInfo()
	bob := validTokenInfo()
	bob.AccountID = 2
	bob.Username = "bob"

	aliceTokens := make([]string, 0, 2)
	for range 2 {
		token, err := storage.Create(ctx, alice)
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		aliceTokens = append(aliceTokens, token)
	}
	bobToken, err := storage.Create(ctx, bob)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := storage.DeleteByAccount(ctx, alice.AccountID); err != nil {
		t.Fatalf("DeleteByAccount failed: %v", err)
	}

	for _, token := range aliceTokens {
		if _, err := storage.Peek(ctx, token); !errors.Is(err, auth.ErrNotFound) {
			t.Errorf("expected alice's token to be revoked, got %v", err)
		}
	}
	if _, err := storage.Peek(ctx, bobToken); err != nil {
		t.Errorf("bob's token should survive, got %v", err)
	}
}

func TestMemoryStorage_Expire(t *testing.T) {
	storage := auth.NewMemoryStorage(auth.WithTokenExpire(50 * time.Millisecond))
	ctx := context.Background()

	token, err := storage.Create(ctx, validTokenInfo())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	time.Sleep(200 * time.Millisecond)

	if _, err := storage.Get(ctx, token); !errors.Is(err, auth.ErrNotFound) {
		t.Errorf("expected ErrNotFound after expiry, got %v", err)
	}
}
