package setup_test

import (
	"context"
	"errors"
	"testing"

	"github.com/homework-evaluation/backend/ent/account"
	"github.com/homework-evaluation/backend/internal/config"
	"github.com/homework-evaluation/backend/internal/defs"
	"github.com/homework-evaluation/backend/internal/setup"
	"github.com/homework-evaluation/backend/internal/testhelper"
)

var adminConfig = config.AdminConfig{
	Username:    "root",
	Password:    "hunter2",
	DisplayName: "Root",
}

func TestSetup(t *testing.T) {
	t.Run("should create the admin on first run", func(t *testing.T) {
		entClient := testhelper.NewEntSqliteClient(t)
		ctx := context.Background()

		result, err := setup.Setup(ctx, entClient, adminConfig)
		if err != nil {
			t.Fatalf("Setup failed: %v", err)
		}

		if result.Admin == nil {
			t.Fatal("Admin should not be nil")
		}
		if result.Admin.Role != account.RoleAdmin {
			t.Errorf("Expected admin role, got %s", result.Admin.Role)
		}
		if result.Admin.Username != "root" {
			t.Errorf("Expected username 'root', got %s", result.Admin.Username)
		}
	})

	t.Run("should be idempotent", func(t *testing.T) {
		entClient := testhelper.NewEntSqliteClient(t)
		ctx := context.Background()

		first, err := setup.Setup(ctx, entClient, adminConfig)
		if err != nil {
			t.Fatalf("first Setup failed: %v", err)
		}
		second, err := setup.Setup(ctx, entClient, adminConfig)
		if err != nil {
			t.Fatalf("second Setup failed: %v", err)
		}

		if first.Admin.ID != second.Admin.ID {
			t.Errorf("Expected the same admin, got %d and %d", first.Admin.ID, second.Admin.ID)
		}

		count, err := entClient.Account.Query().Count(ctx)
		if err != nil {
			t.Fatalf("count accounts: %v", err)
		}
		if count != 1 {
			t.Errorf("Expected 1 account, got %d", count)
		}
	})

	t.Run("should fail without a password", func(t *testing.T) {
		entClient := testhelper.NewEntSqliteClient(t)

		_, err := setup.Setup(context.Background(), entClient, config.AdminConfig{Username: "root", DisplayName: "Root"})
		if !errors.Is(err, defs.ErrInvalidInput) {
			t.Fatalf("Expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("should refuse a username held by a student", func(t *testing.T) {
		entClient := testhelper.NewEntSqliteClient(t)
		testhelper.CreateAccount(t, entClient, account.RoleStudent, "root")

		_, err := setup.Setup(context.Background(), entClient, adminConfig)
		if !errors.Is(err, defs.ErrDuplicateUsername) {
			t.Fatalf("Expected ErrDuplicateUsername, got %v", err)
		}
	})
}

func TestMigrate(t *testing.T) {
	entClient := testhelper.NewEntSqliteClient(t)

	if err := setup.Migrate(context.Background(), entClient); err != nil {
		t.Fatalf("Migrate failed: %v", err)
	}
}
