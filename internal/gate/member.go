package gate

import (
	"context"
	"fmt"

	"github.com/homework-evaluation/backend/ent"
	"github.com/homework-evaluation/backend/ent/account"
	"github.com/homework-evaluation/backend/internal/catalog"
	"github.com/homework-evaluation/backend/internal/defs"
	"github.com/homework-evaluation/backend/internal/scope"
)

// SubjectsFor lists the subjects of an account. Teachers and students may
// only list their own.
func (g *Gate) SubjectsFor(ctx context.Context, caller Caller, accountID int) ([]*ent.Subject, error) {
	ctx, err := g.authorize(ctx, caller, scope.EnrollmentRead)
	if err != nil {
		return nil, err
	}
	if caller.Role != account.RoleAdmin && accountID != caller.AccountID {
		return nil, fmt.Errorf("subjects of account %d: %w", accountID, defs.ErrForbidden)
	}

	return g.enrollment.SubjectsFor(ctx, accountID)
}

// StudentsEnrolled lists the students of a subject. Students cannot see
// their classmates.
func (g *Gate) StudentsEnrolled(ctx context.Context, caller Caller, subjectID int) ([]*ent.Account, error) {
	ctx, err := g.authorize(ctx, caller, scope.EnrollmentRoster)
	if err != nil {
		return nil, err
	}
	if err := g.requireEnrolled(ctx, caller, subjectID); err != nil {
		return nil, err
	}

	return g.enrollment.StudentsEnrolled(ctx, subjectID)
}

// PublishRequest is a catalog.PublishRequest without the author, which is
// always the caller.
type PublishRequest struct {
	SubjectID      int
	QuestionNumber int
	QuestionText   string
	Target         catalog.Target
}

func (g *Gate) PublishAssignment(ctx context.Context, caller Caller, req PublishRequest) (*catalog.PublishResult, error) {
	ctx, err := g.authorize(ctx, caller, scope.AssignmentPublish)
	if err != nil {
		return nil, err
	}
	if err := g.requireEnrolled(ctx, caller, req.SubjectID); err != nil {
		return nil, err
	}

	return g.catalog.PublishAssignment(ctx, catalog.PublishRequest{
		SubjectID:      req.SubjectID,
		TeacherID:      caller.AccountID,
		QuestionNumber: req.QuestionNumber,
		QuestionText:   req.QuestionText,
		Target:         req.Target,
	})
}

func (g *Gate) ListAssignments(ctx context.Context, caller Caller, subjectID int) ([]*ent.Assignment, error) {
	ctx, err := g.authorize(ctx, caller, scope.SubmissionReview)
	if err != nil {
		return nil, err
	}
	if err := g.requireEnrolled(ctx, caller, subjectID); err != nil {
		return nil, err
	}

	return g.catalog.ListAssignments(ctx, subjectID)
}

func (g *Gate) PendingForGrading(ctx context.Context, caller Caller, subjectID int) ([]*ent.Submission, error) {
	ctx, err := g.authorize(ctx, caller, scope.SubmissionReview)
	if err != nil {
		return nil, err
	}
	if err := g.requireEnrolled(ctx, caller, subjectID); err != nil {
		return nil, err
	}

	return g.ledger.PendingForGrading(ctx, subjectID)
}

// GradeSubmission grades a submission of a subject the teacher is enrolled in.
func (g *Gate) GradeSubmission(ctx context.Context, caller Caller, submissionID, grade int, feedback *string) (*ent.Submission, error) {
	ctx, err := g.authorize(ctx, caller, scope.SubmissionGrade)
	if err != nil {
		return nil, err
	}

	sub, err := g.ledger.GetSubmission(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	if err := g.requireEnrolled(ctx, caller, sub.Edges.Assignment.SubjectID); err != nil {
		return nil, err
	}

	return g.ledger.GradeSubmission(ctx, submissionID, grade, feedback)
}

func (g *Gate) PendingForStudent(ctx context.Context, caller Caller, subjectID int) ([]*ent.Submission, error) {
	ctx, err := g.authorize(ctx, caller, scope.SubmissionRead)
	if err != nil {
		return nil, err
	}
	if err := g.requireEnrolled(ctx, caller, subjectID); err != nil {
		return nil, err
	}

	return g.ledger.PendingForStudent(ctx, subjectID, caller.AccountID)
}

func (g *Gate) GradedForStudent(ctx context.Context, caller Caller, subjectID int) ([]*ent.Submission, error) {
	ctx, err := g.authorize(ctx, caller, scope.SubmissionRead)
	if err != nil {
		return nil, err
	}
	if err := g.requireEnrolled(ctx, caller, subjectID); err != nil {
		return nil, err
	}

	return g.ledger.GradedForStudent(ctx, subjectID, caller.AccountID)
}

// SubmitAnswer answers the caller's own submission for the assignment.
func (g *Gate) SubmitAnswer(ctx context.Context, caller Caller, assignmentID int, answer string) (*ent.Submission, error) {
	ctx, err := g.authorize(ctx, caller, scope.SubmissionAnswer)
	if err != nil {
		return nil, err
	}

	a, err := g.entClient.Assignment.Get(ctx, assignmentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("assignment %d: %w", assignmentID, defs.ErrNotFound)
		}
		return nil, err
	}
	if err := g.requireEnrolled(ctx, caller, a.SubjectID); err != nil {
		return nil, err
	}

	return g.ledger.SubmitAnswer(ctx, assignmentID, caller.AccountID, answer)
}
