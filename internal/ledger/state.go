package ledger

import "github.com/homework-evaluation/backend/ent"

// State is the derived lifecycle state of a submission.
type State string

const (
	StatePending  State = "pending"
	StateAnswered State = "answered"
	StateGraded   State = "graded"
)

// StateOf derives the state from the answer and grade columns.
// A grade wins over a missing answer.
func StateOf(s *ent.Submission) State {
	switch {
	case s.Grade != nil:
		return StateGraded
	case s.Answer != nil:
		return StateAnswered
	default:
		return StatePending
	}
}

// ValidGrade reports whether grade is on the 0 to 2 scale.
func ValidGrade(grade int) bool {
	return grade >= 0 && grade <= 2
}
