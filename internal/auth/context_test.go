package auth_test

import (
	"context"
	"testing"

	"github.com/homework-evaluation/backend/internal/auth"
)

func TestUserContext(t *testing.T) {
	ctx := context.Background()

	if _, ok := auth.GetUser(ctx); ok {
		t.Fatal("user found in empty context")
	}

	ctx = auth.WithUser(ctx, auth.TokenInfo{
		AccountID: 1,
		Username:  "alice",
		Role:      "student",
	})

	user, ok := auth.GetUser(ctx)
	if !ok {
		t.Fatal("user not found")
	}

	if user.AccountID != 1 {
		t.Fatalf("account is not correct: %v", user.AccountID)
	}

	if user.Username != "alice" {
		t.Fatalf("username is not correct: %v", user.Username)
	}
}
