package cli

import (
	"context"

	"github.com/homework-evaluation/backend/internal/setup"
)

// Migrate the database to the latest version.
func (c *Context) Migrate(ctx context.Context) error {
	return setup.Migrate(ctx, c.entClient)
}
