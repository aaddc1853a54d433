package directory

import (
	"context"
	"fmt"

	"github.com/homework-evaluation/backend/ent"
	"github.com/homework-evaluation/backend/ent/account"
	"github.com/homework-evaluation/backend/internal/defs"
	"github.com/homework-evaluation/backend/internal/metrics"
	otelcodes "go.opentelemetry.io/otel/codes"
)

// Authenticate returns the account matching all of username, secret and
// role exactly. Any mismatch is reported as defs.ErrInvalidCredentials.
func (c *Context) Authenticate(ctx context.Context, username, secret string, role account.Role) (*ent.Account, error) {
	ctx, span := tracer.Start(ctx, "Authenticate")
	defer span.End()

	acc, err := c.entClient.Account.Query().
		Where(
			account.UsernameEQ(username),
			account.SecretEQ(secret),
			account.RoleEQ(role),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			metrics.RecordLogin(false)
			span.SetStatus(otelcodes.Error, "Invalid credentials")
			return nil, defs.ErrInvalidCredentials
		}

		span.SetStatus(otelcodes.Error, "Failed to authenticate")
		span.RecordError(err)
		return nil, fmt.Errorf("query account: %w", err)
	}

	metrics.RecordLogin(true)
	span.SetStatus(otelcodes.Ok, "Authenticated")
	return acc, nil
}

func (c *Context) GetAccount(ctx context.Context, accountID int) (*ent.Account, error) {
	acc, err := c.entClient.Account.Get(ctx, accountID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("account %d: %w", accountID, defs.ErrNotFound)
		}
		return nil, err
	}

	return acc, nil
}

// ListAccounts lists the accounts with the role by display name.
// An empty role lists every account.
func (c *Context) ListAccounts(ctx context.Context, role account.Role) ([]*ent.Account, error) {
	query := c.entClient.Account.Query()
	if role != "" {
		if err := account.RoleValidator(role); err != nil {
			return nil, defs.InvalidInput(err.Error())
		}
		query = query.Where(account.RoleEQ(role))
	}

	accounts, err := query.Order(account.ByDisplayName(), account.ByID()).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	return accounts, nil
}
