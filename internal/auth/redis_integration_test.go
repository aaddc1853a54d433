package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/homework-evaluation/backend/internal/testhelper"
)

func TestRedisStorage_Integration(t *testing.T) {
	redisClient := testhelper.NewRedisClient(t)

	storage := NewRedisStorage(redisClient)
	ctx := context.Background()

	// Test Create and Get
	info := TokenInfo{AccountID: 1, Username: "user1", Role: "student", Machine: "test", Scopes: []string{"submission:read"}}
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
	if got.AccountID != info.AccountID {
		t.Errorf("Get returned wrong account: got %d, want %d", got.AccountID, info.AccountID)
	}
	if got.Username != info.Username {
		t.Errorf("Get returned wrong username: got %s, want %s", got.Username, info.Username)
	}

	got, err = storage.Peek(ctx, token)
	if err != nil {
		t.Fatalf("Peek failed: %v", err)
	}
	if got.Role != info.Role {
		t.Errorf("Peek returned wrong role: got %s, want %s", got.Role, info.Role)
	}

	// Test Delete
	err = storage.Delete(ctx, token)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	_, err = storage.Get(ctx, token)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get should fail with ErrNotFound after Delete, got %v", err)
	}

	// Test DeleteByAccount
	info2 := TokenInfo{AccountID: 2, Username: "user2"}
	token2, err := storage.Create(ctx, info2)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	token3, err := storage.Create(ctx, info2)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	info4 := TokenInfo{AccountID: 3, Username: "user3"}
	token4, err := storage.Create(ctx, info4)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	err = storage.DeleteByAccount(ctx, 2)
	if err != nil {
		t.Fatalf("DeleteByAccount failed: %v", err)
	}
	_, err = storage.Get(ctx, token2)
	if err == nil {
		t.Error("Get should fail after DeleteByAccount for token2, but got no error")
	}
	_, err = storage.Get(ctx, token3)
	if err == nil {
		t.Error("Get should fail after DeleteByAccount for token3, but got no error")
	}
	_, err = storage.Get(ctx, token4)
	if err != nil {
		t.Errorf("Get failed for account 3's token after DeleteByAccount for account 2: %v", err)
	}
}

func TestRedisStorage_Expire(t *testing.T) {
	redisClient := testhelper.NewRedisClient(t)
	storage := NewRedisStorage(redisClient, WithTokenExpire(1*time.Second))
	ctx := context.Background()

	token, err := storage.Create(ctx, TokenInfo{AccountID: 1, Username: "user1"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// wait 2 seconds to make sure the token is expired
	time.Sleep(2 * time.Second)

	_, err = storage.Get(ctx, token)
	if err == nil {
		t.Error("Get should fail after 1 second, but got no error")
	}
}
