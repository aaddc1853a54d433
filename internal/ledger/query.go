package ledger

import (
	"context"
	"fmt"

	"github.com/homework-evaluation/backend/ent"
	"github.com/homework-evaluation/backend/ent/assignment"
	"github.com/homework-evaluation/backend/ent/predicate"
	"github.com/homework-evaluation/backend/ent/submission"
	"github.com/homework-evaluation/backend/internal/defs"
)

// PendingForGrading lists the ungraded submissions of the subject,
// answered or not.
func (c *Context) PendingForGrading(ctx context.Context, subjectID int) ([]*ent.Submission, error) {
	return c.list(ctx,
		submission.HasAssignmentWith(assignment.SubjectID(subjectID)),
		submission.GradeIsNil(),
	)
}

// PendingForStudent lists the unanswered submissions of the student in
// the subject.
func (c *Context) PendingForStudent(ctx context.Context, subjectID, studentID int) ([]*ent.Submission, error) {
	return c.list(ctx,
		submission.HasAssignmentWith(assignment.SubjectID(subjectID)),
		submission.StudentID(studentID),
		submission.AnswerIsNil(),
	)
}

// GradedForStudent lists the graded submissions of the student in the
// subject.
func (c *Context) GradedForStudent(ctx context.Context, subjectID, studentID int) ([]*ent.Submission, error) {
	return c.list(ctx,
		submission.HasAssignmentWith(assignment.SubjectID(subjectID)),
		submission.StudentID(studentID),
		submission.GradeNotNil(),
	)
}

func (c *Context) list(ctx context.Context, predicates ...predicate.Submission) ([]*ent.Submission, error) {
	submissions, err := c.entClient.Submission.Query().
		Where(predicates...).
		WithAssignment().
		WithStudent().
		Order(
			submission.ByAssignmentField(assignment.FieldQuestionNumber),
			submission.ByAssignmentID(),
			submission.ByID(),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query submissions: %w", err)
	}

	return submissions, nil
}

// GetSubmission returns the submission with its assignment.
func (c *Context) GetSubmission(ctx context.Context, submissionID int) (*ent.Submission, error) {
	sub, err := c.entClient.Submission.Query().
		Where(submission.ID(submissionID)).
		WithAssignment().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("submission %d: %w", submissionID, defs.ErrNotFound)
		}
		return nil, err
	}

	return sub, nil
}
