package cli

import (
	"context"
	"fmt"

	"github.com/homework-evaluation/backend/ent"
	"github.com/homework-evaluation/backend/ent/account"
	"github.com/homework-evaluation/backend/internal/defs"
	"github.com/homework-evaluation/backend/internal/directory"
)

// CreateSubject creates a subject.
func (c *Context) CreateSubject(ctx context.Context, name, code string) (*ent.Subject, error) {
	return c.catalog.CreateSubject(ctx, name, code)
}

// CreateAccount creates a teacher or student account.
func (c *Context) CreateAccount(ctx context.Context, req directory.CreateAccountRequest) (*ent.Account, error) {
	return c.directory.CreateAccount(ctx, req)
}

// DeleteAccount deletes the account with the given username.
func (c *Context) DeleteAccount(ctx context.Context, username string) error {
	acc, err := c.entClient.Account.Query().Where(account.UsernameEQ(username)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("account %q: %w", username, defs.ErrNotFound)
		}
		return fmt.Errorf("query account %q: %w", username, err)
	}

	return c.directory.DeleteAccount(ctx, acc.ID)
}
