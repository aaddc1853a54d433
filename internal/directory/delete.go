package directory

import (
	"context"
	"fmt"

	"github.com/homework-evaluation/backend/ent"
	"github.com/homework-evaluation/backend/ent/assignment"
	"github.com/homework-evaluation/backend/ent/submission"
	"github.com/homework-evaluation/backend/internal/defs"
	"github.com/homework-evaluation/backend/internal/events"
	"github.com/homework-evaluation/backend/internal/store"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DeleteAccount deletes the account with its enrollments and submissions.
// Assignments it published stay with their subject, without an author.
func (c *Context) DeleteAccount(ctx context.Context, accountID int) error {
	ctx, span := tracer.Start(ctx, "DeleteAccount",
		trace.WithAttributes(
			attribute.Int("account.id", accountID),
		))
	defer span.End()

	err := store.WithTx(ctx, c.entClient, func(tx *ent.Tx) error {
		acc, err := tx.Account.Get(ctx, accountID)
		if err != nil {
			if ent.IsNotFound(err) {
				return fmt.Errorf("account %d: %w", accountID, defs.ErrNotFound)
			}
			return fmt.Errorf("get account: %w", err)
		}

		deletedSubmissions, err := tx.Submission.Delete().
			Where(submission.StudentID(accountID)).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("delete submissions: %w", err)
		}

		_, err = tx.Assignment.Update().
			Where(assignment.AuthorID(accountID)).
			ClearAuthor().
			Save(ctx)
		if err != nil {
			return fmt.Errorf("detach authored assignments: %w", err)
		}

		if err := tx.Account.UpdateOneID(accountID).ClearSubjects().Exec(ctx); err != nil {
			return fmt.Errorf("clear enrollments: %w", err)
		}

		if err := tx.Account.DeleteOneID(accountID).Exec(ctx); err != nil {
			return fmt.Errorf("delete account: %w", err)
		}

		return c.eventService.Record(ctx, tx, events.Event{
			Type:      events.EventTypeAccountDeleted,
			AccountID: accountID,
			Payload: map[string]any{
				"account_id":          accountID,
				"username":            acc.Username,
				"role":                string(acc.Role),
				"deleted_submissions": deletedSubmissions,
			},
		})
	})
	if err != nil {
		span.SetStatus(otelcodes.Error, "Failed to delete account")
		span.RecordError(err)
		return err
	}

	span.SetStatus(otelcodes.Ok, "Account deleted successfully")
	return nil
}
