// Package gate is the single entry point to the core operations. Every call
// names its caller, is checked against the caller's role scopes, and is
// re-verified against the store at call time.
package gate

import (
	"context"
	"fmt"

	"github.com/homework-evaluation/backend/ent"
	"github.com/homework-evaluation/backend/ent/account"
	"github.com/homework-evaluation/backend/internal/catalog"
	"github.com/homework-evaluation/backend/internal/defs"
	"github.com/homework-evaluation/backend/internal/directory"
	"github.com/homework-evaluation/backend/internal/enrollment"
	"github.com/homework-evaluation/backend/internal/events"
	"github.com/homework-evaluation/backend/internal/ledger"
	"github.com/homework-evaluation/backend/internal/metrics"
	"github.com/homework-evaluation/backend/internal/scope"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("hwe.gate")

// Caller identifies who performs a gated call.
type Caller struct {
	AccountID int
	Role      account.Role
}

type Gate struct {
	entClient  *ent.Client
	directory  *directory.Context
	enrollment *enrollment.Context
	catalog    *catalog.Context
	ledger     *ledger.Context
}

func New(
	entClient *ent.Client,
	directory *directory.Context,
	enrollment *enrollment.Context,
	catalog *catalog.Context,
	ledger *ledger.Context,
) *Gate {
	return &Gate{
		entClient:  entClient,
		directory:  directory,
		enrollment: enrollment,
		catalog:    catalog,
		ledger:     ledger,
	}
}

// NewFromClient wires every core context over one client.
func NewFromClient(entClient *ent.Client, eventService *events.EventService) *Gate {
	return New(
		entClient,
		directory.NewContext(entClient, eventService),
		enrollment.NewContext(entClient, eventService),
		catalog.NewContext(entClient, eventService),
		ledger.NewContext(entClient, eventService),
	)
}

// authorize checks the capability against the role and that the caller
// still exists with that role. The returned context attributes events to
// the caller.
func (g *Gate) authorize(ctx context.Context, caller Caller, capability string) (context.Context, error) {
	ctx, span := tracer.Start(ctx, "authorize",
		trace.WithAttributes(
			attribute.Int("caller.id", caller.AccountID),
			attribute.String("caller.role", string(caller.Role)),
			attribute.String("capability", capability),
		))
	defer span.End()

	if !scope.RoleAllows(caller.Role, capability) {
		metrics.RecordGateDenial("scope")
		span.SetStatus(otelcodes.Error, "Insufficient scope")
		return ctx, fmt.Errorf("%s cannot %s: %w", caller.Role, capability, defs.ErrForbidden)
	}

	current, err := g.entClient.Account.Query().
		Where(account.ID(caller.AccountID), account.RoleEQ(caller.Role)).
		Exist(ctx)
	if err != nil {
		span.SetStatus(otelcodes.Error, "Failed to verify caller")
		span.RecordError(err)
		return ctx, fmt.Errorf("verify caller: %w", err)
	}
	if !current {
		metrics.RecordGateDenial("stale_caller")
		span.SetStatus(otelcodes.Error, "Caller no longer exists with this role")
		return ctx, fmt.Errorf("account %d as %s: %w", caller.AccountID, caller.Role, defs.ErrUnauthorized)
	}

	span.SetStatus(otelcodes.Ok, "Authorized")
	return events.WithActor(ctx, caller.AccountID), nil
}

// requireEnrolled checks the caller is enrolled in the subject. Admins
// manage subjects without being enrolled in them.
func (g *Gate) requireEnrolled(ctx context.Context, caller Caller, subjectID int) error {
	if caller.Role == account.RoleAdmin {
		return nil
	}

	enrolled, err := g.enrollment.IsEnrolled(ctx, caller.AccountID, subjectID)
	if err != nil {
		return err
	}
	if !enrolled {
		metrics.RecordGateDenial("not_enrolled")
		return fmt.Errorf("account %d in subject %d: %w", caller.AccountID, subjectID, defs.ErrNotEnrolled)
	}

	return nil
}

// Login authenticates by exact username, password and role.
func (g *Gate) Login(ctx context.Context, username, secret string, role account.Role) (*ent.Account, error) {
	return g.directory.Authenticate(ctx, username, secret, role)
}

// Me returns the caller's own account.
func (g *Gate) Me(ctx context.Context, caller Caller) (*ent.Account, error) {
	acc, err := g.directory.GetAccount(ctx, caller.AccountID)
	if err != nil {
		return nil, err
	}
	if acc.Role != caller.Role {
		return nil, fmt.Errorf("account %d as %s: %w", caller.AccountID, caller.Role, defs.ErrUnauthorized)
	}

	return acc, nil
}
