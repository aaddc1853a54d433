// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/homework-evaluation/backend/ent/account"
	"github.com/homework-evaluation/backend/ent/assignment"
	"github.com/homework-evaluation/backend/ent/submission"
)

// Submission is the model entity for the Submission schema.
type Submission struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// AssignmentID holds the value of the "assignment_id" field.
	AssignmentID int `json:"assignment_id,omitempty"`
	// StudentID holds the value of the "student_id" field.
	StudentID int `json:"student_id,omitempty"`
	// Answer holds the value of the "answer" field.
	Answer *string `json:"answer,omitempty"`
	// Grade holds the value of the "grade" field.
	Grade *int `json:"grade,omitempty"`
	// Feedback holds the value of the "feedback" field.
	Feedback *string `json:"feedback,omitempty"`
	// AnsweredAt holds the value of the "answered_at" field.
	AnsweredAt *time.Time `json:"answered_at,omitempty"`
	// GradedAt holds the value of the "graded_at" field.
	GradedAt *time.Time `json:"graded_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SubmissionQuery when eager-loading is set.
	Edges        SubmissionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SubmissionEdges holds the relations/edges for other nodes in the graph.
type SubmissionEdges struct {
	// Assignment holds the value of the assignment edge.
	Assignment *Assignment `json:"assignment,omitempty"`
	// Student holds the value of the student edge.
	Student *Account `json:"student,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// AssignmentOrErr returns the Assignment value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SubmissionEdges) AssignmentOrErr() (*Assignment, error) {
	if e.Assignment != nil {
		return e.Assignment, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: assignment.Label}
	}
	return nil, &NotLoadedError{edge: "assignment"}
}

// StudentOrErr returns the Student value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SubmissionEdges) StudentOrErr() (*Account, error) {
	if e.Student != nil {
		return e.Student, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: account.Label}
	}
	return nil, &NotLoadedError{edge: "student"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Submission) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case submission.FieldID, submission.FieldAssignmentID, submission.FieldStudentID, submission.FieldGrade:
			values[i] = new(sql.NullInt64)
		case submission.FieldAnswer, submission.FieldFeedback:
			values[i] = new(sql.NullString)
		case submission.FieldCreatedAt, submission.FieldUpdatedAt, submission.FieldAnsweredAt, submission.FieldGradedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Submission fields.
func (_m *Submission) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case submission.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case submission.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case submission.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case submission.FieldAssignmentID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field assignment_id", values[i])
			} else if value.Valid {
				_m.AssignmentID = int(value.Int64)
			}
		case submission.FieldStudentID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value.Valid {
				_m.StudentID = int(value.Int64)
			}
		case submission.FieldAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field answer", values[i])
			} else if value.Valid {
				_m.Answer = new(string)
				*_m.Answer = value.String
			}
		case submission.FieldGrade:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field grade", values[i])
			} else if value.Valid {
				_m.Grade = new(int)
				*_m.Grade = int(value.Int64)
			}
		case submission.FieldFeedback:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field feedback", values[i])
			} else if value.Valid {
				_m.Feedback = new(string)
				*_m.Feedback = value.String
			}
		case submission.FieldAnsweredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field answered_at", values[i])
			} else if value.Valid {
				_m.AnsweredAt = new(time.Time)
				*_m.AnsweredAt = value.Time
			}
		case submission.FieldGradedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field graded_at", values[i])
			} else if value.Valid {
				_m.GradedAt = new(time.Time)
				*_m.GradedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Submission.
// This includes values selected through modifiers, order, etc.
func (_m *Submission) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAssignment queries the "assignment" edge of the Submission entity.
func (_m *Submission) QueryAssignment() *AssignmentQuery {
	return NewSubmissionClient(_m.config).QueryAssignment(_m)
}

// QueryStudent queries the "student" edge of the Submission entity.
func (_m *Submission) QueryStudent() *AccountQuery {
	return NewSubmissionClient(_m.config).QueryStudent(_m)
}

// Update returns a builder for updating this Submission.
// Note that you need to call Submission.Unwrap() before calling this method if this Submission
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Submission) Update() *SubmissionUpdateOne {
	return NewSubmissionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Submission entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Submission) Unwrap() *Submission {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Submission is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Submission) String() string {
	var builder strings.Builder
	builder.WriteString("Submission(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("assignment_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AssignmentID))
	builder.WriteString(", ")
	builder.WriteString("student_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.StudentID))
	builder.WriteString(", ")
	if v := _m.Answer; v != nil {
		builder.WriteString("answer=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Grade; v != nil {
		builder.WriteString("grade=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Feedback; v != nil {
		builder.WriteString("feedback=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.AnsweredAt; v != nil {
		builder.WriteString("answered_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.GradedAt; v != nil {
		builder.WriteString("graded_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Submissions is a parsable slice of Submission.
type Submissions []*Submission
