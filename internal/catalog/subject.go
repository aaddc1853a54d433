package catalog

import (
	"context"
	"fmt"

	"github.com/homework-evaluation/backend/ent"
	"github.com/homework-evaluation/backend/ent/assignment"
	"github.com/homework-evaluation/backend/ent/subject"
	"github.com/homework-evaluation/backend/ent/submission"
	"github.com/homework-evaluation/backend/internal/defs"
	"github.com/homework-evaluation/backend/internal/events"
	"github.com/homework-evaluation/backend/internal/store"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// CreateSubject creates a subject. Name and code are both unique.
func (c *Context) CreateSubject(ctx context.Context, name, code string) (*ent.Subject, error) {
	ctx, span := tracer.Start(ctx, "CreateSubject",
		trace.WithAttributes(
			attribute.String("subject.code", code),
		))
	defer span.End()

	if name == "" {
		return nil, defs.InvalidInput("subject name is required")
	}
	if code == "" {
		return nil, defs.InvalidInput("subject code is required")
	}

	var created *ent.Subject
	err := store.WithTx(ctx, c.entClient, func(tx *ent.Tx) error {
		taken, err := tx.Subject.Query().
			Where(subject.Or(subject.NameEQ(name), subject.CodeEQ(code))).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("check subject: %w", err)
		}
		if taken {
			return fmt.Errorf("subject %q (%s): %w", name, code, defs.ErrDuplicateSubject)
		}

		created, err = tx.Subject.Create().SetName(name).SetCode(code).Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return fmt.Errorf("subject %q (%s): %w", name, code, defs.ErrDuplicateSubject)
			}
			return fmt.Errorf("create subject: %w", err)
		}

		return c.eventService.Record(ctx, tx, events.Event{
			Type: events.EventTypeSubjectCreated,
			Payload: map[string]any{
				"subject_id": created.ID,
				"name":       name,
				"code":       code,
			},
		})
	})
	if err != nil {
		span.SetStatus(otelcodes.Error, "Failed to create subject")
		span.RecordError(err)
		return nil, err
	}

	span.SetStatus(otelcodes.Ok, "Subject created successfully")
	return created.Unwrap(), nil
}

// DeleteSubject deletes the subject with its assignments, their
// submissions and every enrollment in it.
func (c *Context) DeleteSubject(ctx context.Context, subjectID int) error {
	ctx, span := tracer.Start(ctx, "DeleteSubject",
		trace.WithAttributes(
			attribute.Int("subject.id", subjectID),
		))
	defer span.End()

	err := store.WithTx(ctx, c.entClient, func(tx *ent.Tx) error {
		subj, err := tx.Subject.Get(ctx, subjectID)
		if err != nil {
			if ent.IsNotFound(err) {
				return fmt.Errorf("subject %d: %w", subjectID, defs.ErrNotFound)
			}
			return fmt.Errorf("get subject: %w", err)
		}

		assignmentIDs, err := tx.Assignment.Query().
			Where(assignment.SubjectID(subjectID)).
			IDs(ctx)
		if err != nil {
			return fmt.Errorf("query assignments: %w", err)
		}

		deletedSubmissions, err := tx.Submission.Delete().
			Where(submission.AssignmentIDIn(assignmentIDs...)).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("delete submissions: %w", err)
		}

		if _, err := tx.Assignment.Delete().Where(assignment.SubjectID(subjectID)).Exec(ctx); err != nil {
			return fmt.Errorf("delete assignments: %w", err)
		}

		if err := tx.Subject.UpdateOneID(subjectID).ClearAccounts().Exec(ctx); err != nil {
			return fmt.Errorf("clear enrollments: %w", err)
		}

		if err := tx.Subject.DeleteOneID(subjectID).Exec(ctx); err != nil {
			return fmt.Errorf("delete subject: %w", err)
		}

		return c.eventService.Record(ctx, tx, events.Event{
			Type: events.EventTypeSubjectDeleted,
			Payload: map[string]any{
				"subject_id":          subjectID,
				"code":                subj.Code,
				"deleted_assignments": len(assignmentIDs),
				"deleted_submissions": deletedSubmissions,
			},
		})
	})
	if err != nil {
		span.SetStatus(otelcodes.Error, "Failed to delete subject")
		span.RecordError(err)
		return err
	}

	span.SetStatus(otelcodes.Ok, "Subject deleted successfully")
	return nil
}

// ListSubjects lists every subject by name.
func (c *Context) ListSubjects(ctx context.Context) ([]*ent.Subject, error) {
	subjects, err := c.entClient.Subject.Query().Order(subject.ByName()).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}

	return subjects, nil
}

func (c *Context) GetSubject(ctx context.Context, subjectID int) (*ent.Subject, error) {
	subj, err := c.entClient.Subject.Get(ctx, subjectID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("subject %d: %w", subjectID, defs.ErrNotFound)
		}
		return nil, err
	}

	return subj, nil
}
