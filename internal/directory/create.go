package directory

import (
	"context"
	"fmt"

	"github.com/homework-evaluation/backend/ent"
	"github.com/homework-evaluation/backend/ent/account"
	"github.com/homework-evaluation/backend/internal/defs"
	"github.com/homework-evaluation/backend/internal/enrollment"
	"github.com/homework-evaluation/backend/internal/events"
	"github.com/homework-evaluation/backend/internal/store"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// CreateAccountRequest describes a teacher or student account to create.
type CreateAccountRequest struct {
	Role        account.Role
	Username    string
	Secret      string
	DisplayName string
	Subjects    []enrollment.SubjectRef
}

func (r CreateAccountRequest) Validate() error {
	if r.Role != account.RoleTeacher && r.Role != account.RoleStudent {
		return defs.InvalidInput(fmt.Sprintf("role %q cannot be created", r.Role))
	}
	if r.Username == "" {
		return defs.InvalidInput("username is required")
	}
	if r.Secret == "" {
		return defs.InvalidInput("password is required")
	}
	if r.DisplayName == "" {
		return defs.InvalidInput("display name is required")
	}

	return nil
}

// CreateAccount creates the account and its enrollments atomically.
// Every subject is resolved before anything is written.
func (c *Context) CreateAccount(ctx context.Context, req CreateAccountRequest) (*ent.Account, error) {
	ctx, span := tracer.Start(ctx, "CreateAccount",
		trace.WithAttributes(
			attribute.String("account.role", string(req.Role)),
			attribute.Int("subjects.count", len(req.Subjects)),
		))
	defer span.End()

	if err := req.Validate(); err != nil {
		span.SetStatus(otelcodes.Error, "Invalid request")
		return nil, err
	}

	var created *ent.Account
	err := store.WithTx(ctx, c.entClient, func(tx *ent.Tx) error {
		subjectIDs, err := enrollment.ResolveSubjects(ctx, tx.Client(), req.Subjects)
		if err != nil {
			return err
		}

		taken, err := tx.Account.Query().Where(account.UsernameEQ(req.Username)).Exist(ctx)
		if err != nil {
			return fmt.Errorf("check username: %w", err)
		}
		if taken {
			return fmt.Errorf("username %q: %w", req.Username, defs.ErrDuplicateUsername)
		}

		created, err = tx.Account.Create().
			SetUsername(req.Username).
			SetSecret(req.Secret).
			SetRole(req.Role).
			SetDisplayName(req.DisplayName).
			AddSubjectIDs(subjectIDs...).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return fmt.Errorf("username %q: %w", req.Username, defs.ErrDuplicateUsername)
			}
			return fmt.Errorf("create account: %w", err)
		}

		return c.eventService.Record(ctx, tx, events.Event{
			Type:      events.EventTypeAccountCreated,
			AccountID: created.ID,
			Payload: map[string]any{
				"account_id":  created.ID,
				"role":        string(created.Role),
				"subject_ids": subjectIDs,
			},
		})
	})
	if err != nil {
		span.SetStatus(otelcodes.Error, "Failed to create account")
		span.RecordError(err)
		return nil, err
	}

	span.SetStatus(otelcodes.Ok, "Account created successfully")
	return created.Unwrap(), nil
}

// EnsureAdmin creates the admin account if no account uses the username.
// It is a no-op for an existing admin and fails for a non-admin holder.
func (c *Context) EnsureAdmin(ctx context.Context, username, secret, displayName string) (*ent.Account, error) {
	if username == "" || secret == "" || displayName == "" {
		return nil, defs.InvalidInput("admin username, password and display name are required")
	}

	existing, err := c.entClient.Account.Query().Where(account.UsernameEQ(username)).Only(ctx)
	if err == nil {
		if existing.Role != account.RoleAdmin {
			return nil, fmt.Errorf("username %q: %w", username, defs.ErrDuplicateUsername)
		}
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("query admin: %w", err)
	}

	admin, err := c.entClient.Account.Create().
		SetUsername(username).
		SetSecret(secret).
		SetRole(account.RoleAdmin).
		SetDisplayName(displayName).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("username %q: %w", username, defs.ErrDuplicateUsername)
		}
		return nil, fmt.Errorf("create admin: %w", err)
	}

	return admin, nil
}
