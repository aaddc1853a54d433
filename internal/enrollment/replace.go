package enrollment

import (
	"context"
	"fmt"

	"github.com/homework-evaluation/backend/ent"
	"github.com/homework-evaluation/backend/ent/account"
	"github.com/homework-evaluation/backend/ent/assignment"
	"github.com/homework-evaluation/backend/ent/submission"
	"github.com/homework-evaluation/backend/internal/defs"
	"github.com/homework-evaluation/backend/internal/events"
	"github.com/homework-evaluation/backend/internal/store"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ReplaceSubjects sets the subjects of the account to exactly refs.
//
// A student leaving a subject loses their submissions in it, so no
// submission outlives the enrollment it was created for.
func (c *Context) ReplaceSubjects(ctx context.Context, accountID int, refs []SubjectRef) error {
	ctx, span := tracer.Start(ctx, "ReplaceSubjects",
		trace.WithAttributes(
			attribute.Int("account.id", accountID),
			attribute.Int("subjects.count", len(refs)),
		))
	defer span.End()

	err := store.WithTx(ctx, c.entClient, func(tx *ent.Tx) error {
		subjectIDs, err := ResolveSubjects(ctx, tx.Client(), refs)
		if err != nil {
			return err
		}

		acc, err := tx.Account.Get(ctx, accountID)
		if err != nil {
			if ent.IsNotFound(err) {
				return fmt.Errorf("account %d: %w", accountID, defs.ErrNotFound)
			}
			return fmt.Errorf("get account: %w", err)
		}

		current, err := acc.QuerySubjects().IDs(ctx)
		if err != nil {
			return fmt.Errorf("query current subjects: %w", err)
		}

		removed := lo.Without(current, subjectIDs...)
		if acc.Role == account.RoleStudent && len(removed) > 0 {
			_, err := tx.Submission.Delete().
				Where(
					submission.StudentID(accountID),
					submission.HasAssignmentWith(assignment.SubjectIDIn(removed...)),
				).
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("delete submissions of removed subjects: %w", err)
			}
		}

		err = tx.Account.UpdateOneID(accountID).
			ClearSubjects().
			AddSubjectIDs(subjectIDs...).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("update subjects: %w", err)
		}

		return c.eventService.Record(ctx, tx, events.Event{
			Type:      events.EventTypeSubjectsReplaced,
			AccountID: accountID,
			Payload: map[string]any{
				"account_id":  accountID,
				"subject_ids": subjectIDs,
				"removed_ids": removed,
			},
		})
	})
	if err != nil {
		span.SetStatus(otelcodes.Error, "Failed to replace subjects")
		span.RecordError(err)
		return err
	}

	span.SetStatus(otelcodes.Ok, "Subjects replaced successfully")
	return nil
}
