package httpapi

import (
	"time"

	"github.com/homework-evaluation/backend/ent"
	"github.com/homework-evaluation/backend/internal/ledger"
	"github.com/samber/lo"
)

type AccountView struct {
	ID          int    `json:"id"`
	Username    string `json:"username"`
	Role        string `json:"role"`
	DisplayName string `json:"display_name"`
}

func NewAccountView(a *ent.Account) AccountView {
	return AccountView{
		ID:          a.ID,
		Username:    a.Username,
		Role:        string(a.Role),
		DisplayName: a.DisplayName,
	}
}

func NewAccountViews(accounts []*ent.Account) []AccountView {
	return lo.Map(accounts, func(a *ent.Account, _ int) AccountView { return NewAccountView(a) })
}

type SubjectView struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

func NewSubjectView(s *ent.Subject) SubjectView {
	return SubjectView{ID: s.ID, Name: s.Name, Code: s.Code}
}

func NewSubjectViews(subjects []*ent.Subject) []SubjectView {
	return lo.Map(subjects, func(s *ent.Subject, _ int) SubjectView { return NewSubjectView(s) })
}

type AssignmentView struct {
	ID             int       `json:"id"`
	SubjectID      int       `json:"subject_id"`
	QuestionNumber int       `json:"question_number"`
	QuestionText   string    `json:"question_text"`
	CreatedAt      time.Time `json:"created_at"`
}

func NewAssignmentView(a *ent.Assignment) AssignmentView {
	return AssignmentView{
		ID:             a.ID,
		SubjectID:      a.SubjectID,
		QuestionNumber: a.QuestionNumber,
		QuestionText:   a.QuestionText,
		CreatedAt:      a.CreatedAt,
	}
}

func NewAssignmentViews(assignments []*ent.Assignment) []AssignmentView {
	return lo.Map(assignments, func(a *ent.Assignment, _ int) AssignmentView { return NewAssignmentView(a) })
}

type SubmissionView struct {
	ID           int             `json:"id"`
	AssignmentID int             `json:"assignment_id"`
	StudentID    int             `json:"student_id"`
	State        ledger.State    `json:"state"`
	Answer       *string         `json:"answer"`
	Grade        *int            `json:"grade"`
	Feedback     *string         `json:"feedback"`
	Assignment   *AssignmentView `json:"assignment,omitempty"`
	Student      *AccountView    `json:"student,omitempty"`
}

// NewSubmissionView renders a submission with whichever edges are loaded.
func NewSubmissionView(s *ent.Submission) SubmissionView {
	view := SubmissionView{
		ID:           s.ID,
		AssignmentID: s.AssignmentID,
		StudentID:    s.StudentID,
		State:        ledger.StateOf(s),
		Answer:       s.Answer,
		Grade:        s.Grade,
		Feedback:     s.Feedback,
	}
	if a := s.Edges.Assignment; a != nil {
		view.Assignment = lo.ToPtr(NewAssignmentView(a))
	}
	if st := s.Edges.Student; st != nil {
		view.Student = lo.ToPtr(NewAccountView(st))
	}

	return view
}

func NewSubmissionViews(submissions []*ent.Submission) []SubmissionView {
	return lo.Map(submissions, func(s *ent.Submission, _ int) SubmissionView { return NewSubmissionView(s) })
}
