package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/homework-evaluation/backend/ent"
	"github.com/homework-evaluation/backend/ent/account"
	"github.com/homework-evaluation/backend/ent/assignment"
	"github.com/homework-evaluation/backend/ent/subject"
	"github.com/homework-evaluation/backend/internal/defs"
	"github.com/homework-evaluation/backend/internal/enrollment"
	"github.com/homework-evaluation/backend/internal/events"
	"github.com/homework-evaluation/backend/internal/metrics"
	"github.com/homework-evaluation/backend/internal/store"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Target selects who receives a published assignment.
type Target struct {
	// StudentID is the single recipient. Zero means every enrolled student.
	StudentID int
}

// AllEnrolled targets every student enrolled in the subject at publish time.
var AllEnrolled = Target{}

// Student targets a single enrolled student.
func Student(studentID int) Target {
	return Target{StudentID: studentID}
}

func (t Target) IsAll() bool {
	return t.StudentID == 0
}

type PublishRequest struct {
	SubjectID      int
	TeacherID      int
	QuestionNumber int
	QuestionText   string
	Target         Target
}

func (r PublishRequest) Validate() error {
	if r.QuestionNumber < 1 {
		return defs.InvalidInput("question number must be at least 1")
	}
	if strings.TrimSpace(r.QuestionText) == "" {
		return defs.InvalidInput("question text is required")
	}
	if r.Target.StudentID < 0 {
		return defs.InvalidInput("invalid target student")
	}

	return nil
}

// PublishResult is the created assignment with one pending submission per
// recipient.
type PublishResult struct {
	Assignment  *ent.Assignment
	Submissions []*ent.Submission
}

// PublishAssignment creates the assignment and its pending submissions.
// The recipients are read in the same transaction, so a student enrolling
// concurrently either gets a submission or is not counted at all.
func (c *Context) PublishAssignment(ctx context.Context, req PublishRequest) (*PublishResult, error) {
	ctx, span := tracer.Start(ctx, "PublishAssignment",
		trace.WithAttributes(
			attribute.Int("subject.id", req.SubjectID),
			attribute.Int("teacher.id", req.TeacherID),
			attribute.Int("question.number", req.QuestionNumber),
			attribute.Bool("target.all", req.Target.IsAll()),
		))
	defer span.End()

	if err := req.Validate(); err != nil {
		span.SetStatus(otelcodes.Error, "Invalid request")
		return nil, err
	}

	var result PublishResult
	err := store.WithTx(ctx, c.entClient, func(tx *ent.Tx) error {
		exists, err := tx.Subject.Query().Where(subject.ID(req.SubjectID)).Exist(ctx)
		if err != nil {
			return fmt.Errorf("query subject: %w", err)
		}
		if !exists {
			return fmt.Errorf("subject %d: %w", req.SubjectID, defs.ErrNotFound)
		}

		teaching, err := tx.Account.Query().
			Where(
				account.ID(req.TeacherID),
				account.RoleEQ(account.RoleTeacher),
				account.HasSubjectsWith(subject.ID(req.SubjectID)),
			).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("query teacher: %w", err)
		}
		if !teaching {
			return fmt.Errorf("teacher %d in subject %d: %w", req.TeacherID, req.SubjectID, defs.ErrNotEnrolled)
		}

		recipients, err := resolveRecipients(ctx, tx.Client(), req.SubjectID, req.Target)
		if err != nil {
			return err
		}

		result.Assignment, err = tx.Assignment.Create().
			SetSubjectID(req.SubjectID).
			SetAuthorID(req.TeacherID).
			SetQuestionNumber(req.QuestionNumber).
			SetQuestionText(req.QuestionText).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create assignment: %w", err)
		}

		result.Submissions, err = tx.Submission.CreateBulk(
			lo.Map(recipients, func(studentID int, _ int) *ent.SubmissionCreate {
				return tx.Submission.Create().
					SetAssignmentID(result.Assignment.ID).
					SetStudentID(studentID)
			})...,
		).Save(ctx)
		if err != nil {
			return fmt.Errorf("create submissions: %w", err)
		}

		return c.eventService.Record(ctx, tx, events.Event{
			Type:      events.EventTypeAssignmentPublished,
			AccountID: req.TeacherID,
			Payload: map[string]any{
				"assignment_id":   result.Assignment.ID,
				"subject_id":      req.SubjectID,
				"question_number": req.QuestionNumber,
				"recipients":      len(recipients),
			},
		})
	})
	if err != nil {
		span.SetStatus(otelcodes.Error, "Failed to publish assignment")
		span.RecordError(err)
		return nil, err
	}

	// detach from the committed transaction
	result.Assignment = result.Assignment.Unwrap()
	for i, sub := range result.Submissions {
		result.Submissions[i] = sub.Unwrap()
	}

	metrics.RecordAssignmentPublished(len(result.Submissions))
	span.SetStatus(otelcodes.Ok, "Assignment published successfully")
	return &result, nil
}

func resolveRecipients(ctx context.Context, client *ent.Client, subjectID int, target Target) ([]int, error) {
	if target.IsAll() {
		ids, err := client.Account.Query().
			Where(
				account.RoleEQ(account.RoleStudent),
				account.HasSubjectsWith(subject.ID(subjectID)),
			).
			Order(account.ByID()).
			IDs(ctx)
		if err != nil {
			return nil, fmt.Errorf("query enrolled students: %w", err)
		}
		return ids, nil
	}

	student, err := client.Account.Query().
		Where(account.ID(target.StudentID), account.RoleEQ(account.RoleStudent)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("query student: %w", err)
	}
	enrolled, err := enrollment.IsEnrolled(ctx, client, target.StudentID, subjectID)
	if err != nil {
		return nil, err
	}
	if !student || !enrolled {
		return nil, fmt.Errorf("student %d in subject %d: %w", target.StudentID, subjectID, defs.ErrNotEnrolled)
	}

	return []int{target.StudentID}, nil
}

// ListAssignments lists the assignments of the subject by question number.
func (c *Context) ListAssignments(ctx context.Context, subjectID int) ([]*ent.Assignment, error) {
	if _, err := c.GetSubject(ctx, subjectID); err != nil {
		return nil, err
	}

	assignments, err := c.entClient.Assignment.Query().
		Where(assignment.SubjectID(subjectID)).
		Order(assignment.ByQuestionNumber(), assignment.ByID()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}

	return assignments, nil
}
