// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/homework-evaluation/backend/ent/account"
	"github.com/homework-evaluation/backend/ent/assignment"
	"github.com/homework-evaluation/backend/ent/predicate"
	"github.com/homework-evaluation/backend/ent/submission"
)

// SubmissionUpdate is the builder for updating Submission entities.
type SubmissionUpdate struct {
	config
	hooks    []Hook
	mutation *SubmissionMutation
}

// Where appends a list predicates to the SubmissionUpdate builder.
func (_u *SubmissionUpdate) Where(ps ...predicate.Submission) *SubmissionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubmissionUpdate) SetUpdatedAt(v time.Time) *SubmissionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAssignmentID sets the "assignment_id" field.
func (_u *SubmissionUpdate) SetAssignmentID(v int) *SubmissionUpdate {
	_u.mutation.SetAssignmentID(v)
	return _u
}

// SetNillableAssignmentID sets the "assignment_id" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableAssignmentID(v *int) *SubmissionUpdate {
	if v != nil {
		_u.SetAssignmentID(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *SubmissionUpdate) SetStudentID(v int) *SubmissionUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableStudentID(v *int) *SubmissionUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *SubmissionUpdate) SetAnswer(v string) *SubmissionUpdate {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableAnswer(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// ClearAnswer clears the value of the "answer" field.
func (_u *SubmissionUpdate) ClearAnswer() *SubmissionUpdate {
	_u.mutation.ClearAnswer()
	return _u
}

// SetGrade sets the "grade" field.
func (_u *SubmissionUpdate) SetGrade(v int) *SubmissionUpdate {
	_u.mutation.ResetGrade()
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableGrade(v *int) *SubmissionUpdate {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// AddGrade adds value to the "grade" field.
func (_u *SubmissionUpdate) AddGrade(v int) *SubmissionUpdate {
	_u.mutation.AddGrade(v)
	return _u
}

// ClearGrade clears the value of the "grade" field.
func (_u *SubmissionUpdate) ClearGrade() *SubmissionUpdate {
	_u.mutation.ClearGrade()
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *SubmissionUpdate) SetFeedback(v string) *SubmissionUpdate {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableFeedback(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// ClearFeedback clears the value of the "feedback" field.
func (_u *SubmissionUpdate) ClearFeedback() *SubmissionUpdate {
	_u.mutation.ClearFeedback()
	return _u
}

// SetAnsweredAt sets the "answered_at" field.
func (_u *SubmissionUpdate) SetAnsweredAt(v time.Time) *SubmissionUpdate {
	_u.mutation.SetAnsweredAt(v)
	return _u
}

// SetNillableAnsweredAt sets the "answered_at" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableAnsweredAt(v *time.Time) *SubmissionUpdate {
	if v != nil {
		_u.SetAnsweredAt(*v)
	}
	return _u
}

// ClearAnsweredAt clears the value of the "answered_at" field.
func (_u *SubmissionUpdate) ClearAnsweredAt() *SubmissionUpdate {
	_u.mutation.ClearAnsweredAt()
	return _u
}

// SetGradedAt sets the "graded_at" field.
func (_u *SubmissionUpdate) SetGradedAt(v time.Time) *SubmissionUpdate {
	_u.mutation.SetGradedAt(v)
	return _u
}

// SetNillableGradedAt sets the "graded_at" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableGradedAt(v *time.Time) *SubmissionUpdate {
	if v != nil {
		_u.SetGradedAt(*v)
	}
	return _u
}

// ClearGradedAt clears the value of the "graded_at" field.
func (_u *SubmissionUpdate) ClearGradedAt() *SubmissionUpdate {
	_u.mutation.ClearGradedAt()
	return _u
}

// SetAssignment sets the "assignment" edge to the Assignment entity.
func (_u *SubmissionUpdate) SetAssignment(v *Assignment) *SubmissionUpdate {
	return _u.SetAssignmentID(v.ID)
}

// SetStudent sets the "student" edge to the Account entity.
func (_u *SubmissionUpdate) SetStudent(v *Account) *SubmissionUpdate {
	return _u.SetStudentID(v.ID)
}

// Mutation returns the SubmissionMutation object of the builder.
func (_u *SubmissionUpdate) Mutation() *SubmissionMutation {
	return _u.mutation
}

// ClearAssignment clears the "assignment" edge to the Assignment entity.
func (_u *SubmissionUpdate) ClearAssignment() *SubmissionUpdate {
	_u.mutation.ClearAssignment()
	return _u
}

// ClearStudent clears the "student" edge to the Account entity.
func (_u *SubmissionUpdate) ClearStudent() *SubmissionUpdate {
	_u.mutation.ClearStudent()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubmissionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubmissionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SubmissionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := submission.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmissionUpdate) check() error {
	if v, ok := _u.mutation.Grade(); ok {
		if err := submission.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "Submission.grade": %w`, err)}
		}
	}
	if _u.mutation.AssignmentCleared() && len(_u.mutation.AssignmentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Submission.assignment"`)
	}
	if _u.mutation.StudentCleared() && len(_u.mutation.StudentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Submission.student"`)
	}
	return nil
}

func (_u *SubmissionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submission.Table, submission.Columns, sqlgraph.NewFieldSpec(submission.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(submission.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(submission.FieldAnswer, field.TypeString, value)
	}
	if _u.mutation.AnswerCleared() {
		_spec.ClearField(submission.FieldAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(submission.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGrade(); ok {
		_spec.AddField(submission.FieldGrade, field.TypeInt, value)
	}
	if _u.mutation.GradeCleared() {
		_spec.ClearField(submission.FieldGrade, field.TypeInt)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(submission.FieldFeedback, field.TypeString, value)
	}
	if _u.mutation.FeedbackCleared() {
		_spec.ClearField(submission.FieldFeedback, field.TypeString)
	}
	if value, ok := _u.mutation.AnsweredAt(); ok {
		_spec.SetField(submission.FieldAnsweredAt, field.TypeTime, value)
	}
	if _u.mutation.AnsweredAtCleared() {
		_spec.ClearField(submission.FieldAnsweredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.GradedAt(); ok {
		_spec.SetField(submission.FieldGradedAt, field.TypeTime, value)
	}
	if _u.mutation.GradedAtCleared() {
		_spec.ClearField(submission.FieldGradedAt, field.TypeTime)
	}
	if _u.mutation.AssignmentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submission.AssignmentTable,
			Columns: []string{submission.AssignmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assignment.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssignmentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submission.AssignmentTable,
			Columns: []string{submission.AssignmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assignment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StudentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submission.StudentTable,
			Columns: []string{submission.StudentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(account.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StudentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submission.StudentTable,
			Columns: []string{submission.StudentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(account.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubmissionUpdateOne is the builder for updating a single Submission entity.
type SubmissionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubmissionMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubmissionUpdateOne) SetUpdatedAt(v time.Time) *SubmissionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAssignmentID sets the "assignment_id" field.
func (_u *SubmissionUpdateOne) SetAssignmentID(v int) *SubmissionUpdateOne {
	_u.mutation.SetAssignmentID(v)
	return _u
}

// SetNillableAssignmentID sets the "assignment_id" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableAssignmentID(v *int) *SubmissionUpdateOne {
	if v != nil {
		_u.SetAssignmentID(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *SubmissionUpdateOne) SetStudentID(v int) *SubmissionUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableStudentID(v *int) *SubmissionUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *SubmissionUpdateOne) SetAnswer(v string) *SubmissionUpdateOne {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableAnswer(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// ClearAnswer clears the value of the "answer" field.
func (_u *SubmissionUpdateOne) ClearAnswer() *SubmissionUpdateOne {
	_u.mutation.ClearAnswer()
	return _u
}

// SetGrade sets the "grade" field.
func (_u *SubmissionUpdateOne) SetGrade(v int) *SubmissionUpdateOne {
	_u.mutation.ResetGrade()
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableGrade(v *int) *SubmissionUpdateOne {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// AddGrade adds value to the "grade" field.
func (_u *SubmissionUpdateOne) AddGrade(v int) *SubmissionUpdateOne {
	_u.mutation.AddGrade(v)
	return _u
}

// ClearGrade clears the value of the "grade" field.
func (_u *SubmissionUpdateOne) ClearGrade() *SubmissionUpdateOne {
	_u.mutation.ClearGrade()
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *SubmissionUpdateOne) SetFeedback(v string) *SubmissionUpdateOne {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableFeedback(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// ClearFeedback clears the value of the "feedback" field.
func (_u *SubmissionUpdateOne) ClearFeedback() *SubmissionUpdateOne {
	_u.mutation.ClearFeedback()
	return _u
}

// SetAnsweredAt sets the "answered_at" field.
func (_u *SubmissionUpdateOne) SetAnsweredAt(v time.Time) *SubmissionUpdateOne {
	_u.mutation.SetAnsweredAt(v)
	return _u
}

// SetNillableAnsweredAt sets the "answered_at" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableAnsweredAt(v *time.Time) *SubmissionUpdateOne {
	if v != nil {
		_u.SetAnsweredAt(*v)
	}
	return _u
}

// ClearAnsweredAt clears the value of the "answered_at" field.
func (_u *SubmissionUpdateOne) ClearAnsweredAt() *SubmissionUpdateOne {
	_u.mutation.ClearAnsweredAt()
	return _u
}

// SetGradedAt sets the "graded_at" field.
func (_u *SubmissionUpdateOne) SetGradedAt(v time.Time) *SubmissionUpdateOne {
	_u.mutation.SetGradedAt(v)
	return _u
}

// SetNillableGradedAt sets the "graded_at" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableGradedAt(v *time.Time) *SubmissionUpdateOne {
	if v != nil {
		_u.SetGradedAt(*v)
	}
	return _u
}

// ClearGradedAt clears the value of the "graded_at" field.
func (_u *SubmissionUpdateOne) ClearGradedAt() *SubmissionUpdateOne {
	_u.mutation.ClearGradedAt()
	return _u
}

// SetAssignment sets the "assignment" edge to the Assignment entity.
func (_u *SubmissionUpdateOne) SetAssignment(v *Assignment) *SubmissionUpdateOne {
	return _u.SetAssignmentID(v.ID)
}

// SetStudent sets the "student" edge to the Account entity.
func (_u *SubmissionUpdateOne) SetStudent(v *Account) *SubmissionUpdateOne {
	return _u.SetStudentID(v.ID)
}

// Mutation returns the SubmissionMutation object of the builder.
func (_u *SubmissionUpdateOne) Mutation() *SubmissionMutation {
	return _u.mutation
}

// ClearAssignment clears the "assignment" edge to the Assignment entity.
func (_u *SubmissionUpdateOne) ClearAssignment() *SubmissionUpdateOne {
	_u.mutation.ClearAssignment()
	return _u
}

// ClearStudent clears the "student" edge to the Account entity.
func (_u *SubmissionUpdateOne) ClearStudent() *SubmissionUpdateOne {
	_u.mutation.ClearStudent()
	return _u
}

// Where appends a list predicates to the SubmissionUpdate builder.
func (_u *SubmissionUpdateOne) Where(ps ...predicate.Submission) *SubmissionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubmissionUpdateOne) Select(field string, fields ...string) *SubmissionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Submission entity.
func (_u *SubmissionUpdateOne) Save(ctx context.Context) (*Submission, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionUpdateOne) SaveX(ctx context.Context) *Submission {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubmissionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SubmissionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := submission.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmissionUpdateOne) check() error {
	if v, ok := _u.mutation.Grade(); ok {
		if err := submission.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "Submission.grade": %w`, err)}
		}
	}
	if _u.mutation.AssignmentCleared() && len(_u.mutation.AssignmentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Submission.assignment"`)
	}
	if _u.mutation.StudentCleared() && len(_u.mutation.StudentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Submission.student"`)
	}
	return nil
}

func (_u *SubmissionUpdateOne) sqlSave(ctx context.Context) (_node *Submission, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submission.Table, submission.Columns, sqlgraph.NewFieldSpec(submission.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Submission.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, submission.FieldID)
		for _, f := range fields {
			if !submission.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != submission.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(submission.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(submission.FieldAnswer, field.TypeString, value)
	}
	if _u.mutation.AnswerCleared() {
		_spec.ClearField(submission.FieldAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(submission.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGrade(); ok {
		_spec.AddField(submission.FieldGrade, field.TypeInt, value)
	}
	if _u.mutation.GradeCleared() {
		_spec.ClearField(submission.FieldGrade, field.TypeInt)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(submission.FieldFeedback, field.TypeString, value)
	}
	if _u.mutation.FeedbackCleared() {
		_spec.ClearField(submission.FieldFeedback, field.TypeString)
	}
	if value, ok := _u.mutation.AnsweredAt(); ok {
		_spec.SetField(submission.FieldAnsweredAt, field.TypeTime, value)
	}
	if _u.mutation.AnsweredAtCleared() {
		_spec.ClearField(submission.FieldAnsweredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.GradedAt(); ok {
		_spec.SetField(submission.FieldGradedAt, field.TypeTime, value)
	}
	if _u.mutation.GradedAtCleared() {
		_spec.ClearField(submission.FieldGradedAt, field.TypeTime)
	}
	if _u.mutation.AssignmentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submission.AssignmentTable,
			Columns: []string{submission.AssignmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assignment.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssignmentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submission.AssignmentTable,
			Columns: []string{submission.AssignmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assignment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StudentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submission.StudentTable,
			Columns: []string{submission.StudentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(account.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StudentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submission.StudentTable,
			Columns: []string{submission.StudentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(account.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Submission{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
