package cli

import (
	"context"

	"github.com/homework-evaluation/backend/internal/config"
	"github.com/homework-evaluation/backend/internal/setup"
)

// Setup migrates the database and ensures the configured admin account.
func (c *Context) Setup(ctx context.Context, admin config.AdminConfig) (*setup.SetupResult, error) {
	return setup.Setup(ctx, c.entClient, admin)
}
