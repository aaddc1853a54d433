package ledger

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/homework-evaluation/backend/ent"
	"github.com/homework-evaluation/backend/ent/submission"
	"github.com/homework-evaluation/backend/internal/defs"
	"github.com/homework-evaluation/backend/internal/events"
	"github.com/homework-evaluation/backend/internal/metrics"
	"github.com/homework-evaluation/backend/internal/store"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// SubmitAnswer stores the student's answer, replacing any earlier one.
// It is accepted in every state, including after grading.
func (c *Context) SubmitAnswer(ctx context.Context, assignmentID, studentID int, answer string) (*ent.Submission, error) {
	ctx, span := tracer.Start(ctx, "SubmitAnswer",
		trace.WithAttributes(
			attribute.Int("assignment.id", assignmentID),
			attribute.Int("student.id", studentID),
		))
	defer span.End()

	var updated *ent.Submission
	err := store.WithTx(ctx, c.entClient, func(tx *ent.Tx) error {
		sub, err := tx.Submission.Query().
			Where(
				submission.AssignmentID(assignmentID),
				submission.StudentID(studentID),
			).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return fmt.Errorf("submission of student %d for assignment %d: %w", studentID, assignmentID, defs.ErrNotFound)
			}
			return fmt.Errorf("query submission: %w", err)
		}

		previous := StateOf(sub)

		updated, err = sub.Update().
			SetAnswer(answer).
			SetAnsweredAt(time.Now()).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("save answer: %w", err)
		}

		return c.eventService.Record(ctx, tx, events.Event{
			Type:      events.EventTypeAnswerSubmitted,
			AccountID: studentID,
			Payload: map[string]any{
				"submission_id":  updated.ID,
				"assignment_id":  assignmentID,
				"previous_state": string(previous),
			},
		})
	})
	if err != nil {
		span.SetStatus(otelcodes.Error, "Failed to submit answer")
		span.RecordError(err)
		return nil, err
	}

	metrics.RecordAnswerSubmitted()
	span.SetStatus(otelcodes.Ok, "Answer submitted successfully")
	return updated.Unwrap(), nil
}

// GradeSubmission sets the grade and feedback of the submission. Empty
// feedback is stored as no feedback. Regrading replaces both.
func (c *Context) GradeSubmission(ctx context.Context, submissionID, grade int, feedback *string) (*ent.Submission, error) {
	ctx, span := tracer.Start(ctx, "GradeSubmission",
		trace.WithAttributes(
			attribute.Int("submission.id", submissionID),
			attribute.Int("grade", grade),
		))
	defer span.End()

	if !ValidGrade(grade) {
		span.SetStatus(otelcodes.Error, "Invalid grade")
		return nil, fmt.Errorf("grade %d: %w", grade, defs.ErrInvalidGrade)
	}

	var updated *ent.Submission
	err := store.WithTx(ctx, c.entClient, func(tx *ent.Tx) error {
		sub, err := tx.Submission.Get(ctx, submissionID)
		if err != nil {
			if ent.IsNotFound(err) {
				return fmt.Errorf("submission %d: %w", submissionID, defs.ErrNotFound)
			}
			return fmt.Errorf("get submission: %w", err)
		}

		update := sub.Update().
			SetGrade(grade).
			SetGradedAt(time.Now())
		if feedback == nil || *feedback == "" {
			update = update.ClearFeedback()
		} else {
			update = update.SetFeedback(*feedback)
		}

		updated, err = update.Save(ctx)
		if err != nil {
			return fmt.Errorf("save grade: %w", err)
		}

		return c.eventService.Record(ctx, tx, events.Event{
			Type:      events.EventTypeSubmissionGraded,
			AccountID: sub.StudentID,
			Payload: map[string]any{
				"submission_id": submissionID,
				"student_id":    sub.StudentID,
				"grade":         grade,
				"answered":      sub.Answer != nil,
			},
		})
	})
	if err != nil {
		span.SetStatus(otelcodes.Error, "Failed to grade submission")
		span.RecordError(err)
		return nil, err
	}

	metrics.RecordSubmissionGraded(strconv.Itoa(grade))
	span.SetStatus(otelcodes.Ok, "Submission graded successfully")
	return updated.Unwrap(), nil
}
