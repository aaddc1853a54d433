package setup

import (
	"context"
	"fmt"
	"log"

	"github.com/homework-evaluation/backend/ent"
	"github.com/homework-evaluation/backend/internal/config"
	"github.com/homework-evaluation/backend/internal/directory"
	"github.com/homework-evaluation/backend/internal/events"
)

// SetupResult is the result of the setup process.
type SetupResult struct {
	Admin *ent.Account
}

// Migrate migrates the database to the latest version.
func Migrate(ctx context.Context, entClient *ent.Client) error {
	return entClient.Schema.Create(ctx)
}

// Setup migrates the database and makes sure the configured admin exists.
// Running it again is a no-op.
func Setup(ctx context.Context, entClient *ent.Client, admin config.AdminConfig) (*SetupResult, error) {
	// migrate first
	if err := Migrate(ctx, entClient); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[*] Ensuring the admin account %q…", admin.Username)
	account, err := directory.NewContext(entClient, events.NewEventService()).
		EnsureAdmin(ctx, admin.Username, admin.Password, admin.DisplayName)
	if err != nil {
		return nil, fmt.Errorf("ensure admin: %w", err)
	}

	return &SetupResult{Admin: account}, nil
}
