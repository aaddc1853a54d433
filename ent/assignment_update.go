// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/homework-evaluation/backend/ent/account"
	"github.com/homework-evaluation/backend/ent/assignment"
	"github.com/homework-evaluation/backend/ent/predicate"
	"github.com/homework-evaluation/backend/ent/subject"
	"github.com/homework-evaluation/backend/ent/submission"
)

// AssignmentUpdate is the builder for updating Assignment entities.
type AssignmentUpdate struct {
	config
	hooks    []Hook
	mutation *AssignmentMutation
}

// Where appends a list predicates to the AssignmentUpdate builder.
func (_u *AssignmentUpdate) Where(ps ...predicate.Assignment) *AssignmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *AssignmentUpdate) SetSubjectID(v int) *AssignmentUpdate {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableSubjectID(v *int) *AssignmentUpdate {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetAuthorID sets the "author_id" field.
func (_u *AssignmentUpdate) SetAuthorID(v int) *AssignmentUpdate {
	_u.mutation.SetAuthorID(v)
	return _u
}

// SetNillableAuthorID sets the "author_id" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableAuthorID(v *int) *AssignmentUpdate {
	if v != nil {
		_u.SetAuthorID(*v)
	}
	return _u
}

// ClearAuthorID clears the value of the "author_id" field.
func (_u *AssignmentUpdate) ClearAuthorID() *AssignmentUpdate {
	_u.mutation.ClearAuthorID()
	return _u
}

// SetQuestionNumber sets the "question_number" field.
func (_u *AssignmentUpdate) SetQuestionNumber(v int) *AssignmentUpdate {
	_u.mutation.ResetQuestionNumber()
	_u.mutation.SetQuestionNumber(v)
	return _u
}

// SetNillableQuestionNumber sets the "question_number" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableQuestionNumber(v *int) *AssignmentUpdate {
	if v != nil {
		_u.SetQuestionNumber(*v)
	}
	return _u
}

// AddQuestionNumber adds value to the "question_number" field.
func (_u *AssignmentUpdate) AddQuestionNumber(v int) *AssignmentUpdate {
	_u.mutation.AddQuestionNumber(v)
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *AssignmentUpdate) SetQuestionText(v string) *AssignmentUpdate {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableQuestionText(v *string) *AssignmentUpdate {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetSubject sets the "subject" edge to the Subject entity.
func (_u *AssignmentUpdate) SetSubject(v *Subject) *AssignmentUpdate {
	return _u.SetSubjectID(v.ID)
}

// SetAuthor sets the "author" edge to the Account entity.
func (_u *AssignmentUpdate) SetAuthor(v *Account) *AssignmentUpdate {
	return _u.SetAuthorID(v.ID)
}

// AddSubmissionIDs adds the "submissions" edge to the Submission entity by IDs.
func (_u *AssignmentUpdate) AddSubmissionIDs(ids ...int) *AssignmentUpdate {
	_u.mutation.AddSubmissionIDs(ids...)
	return _u
}

// AddSubmissions adds the "submissions" edges to the Submission entity.
func (_u *AssignmentUpdate) AddSubmissions(v ...*Submission) *AssignmentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubmissionIDs(ids...)
}

// Mutation returns the AssignmentMutation object of the builder.
func (_u *AssignmentUpdate) Mutation() *AssignmentMutation {
	return _u.mutation
}

// ClearSubject clears the "subject" edge to the Subject entity.
func (_u *AssignmentUpdate) ClearSubject() *AssignmentUpdate {
	_u.mutation.ClearSubject()
	return _u
}

// ClearAuthor clears the "author" edge to the Account entity.
func (_u *AssignmentUpdate) ClearAuthor() *AssignmentUpdate {
	_u.mutation.ClearAuthor()
	return _u
}

// ClearSubmissions clears all "submissions" edges to the Submission entity.
func (_u *AssignmentUpdate) ClearSubmissions() *AssignmentUpdate {
	_u.mutation.ClearSubmissions()
	return _u
}

// RemoveSubmissionIDs removes the "submissions" edge to Submission entities by IDs.
func (_u *AssignmentUpdate) RemoveSubmissionIDs(ids ...int) *AssignmentUpdate {
	_u.mutation.RemoveSubmissionIDs(ids...)
	return _u
}

// RemoveSubmissions removes "submissions" edges to Submission entities.
func (_u *AssignmentUpdate) RemoveSubmissions(v ...*Submission) *AssignmentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubmissionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssignmentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssignmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssignmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssignmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssignmentUpdate) check() error {
	if v, ok := _u.mutation.QuestionNumber(); ok {
		if err := assignment.QuestionNumberValidator(v); err != nil {
			return &ValidationError{Name: "question_number", err: fmt.Errorf(`ent: validator failed for field "Assignment.question_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := assignment.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "Assignment.question_text": %w`, err)}
		}
	}
	if _u.mutation.SubjectCleared() && len(_u.mutation.SubjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Assignment.subject"`)
	}
	return nil
}

func (_u *AssignmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assignment.Table, assignment.Columns, sqlgraph.NewFieldSpec(assignment.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuestionNumber(); ok {
		_spec.SetField(assignment.FieldQuestionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionNumber(); ok {
		_spec.AddField(assignment.FieldQuestionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(assignment.FieldQuestionText, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   assignment.SubjectTable,
			Columns: []string{assignment.SubjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subject.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   assignment.SubjectTable,
			Columns: []string{assignment.SubjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subject.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AuthorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   assignment.AuthorTable,
			Columns: []string{assignment.AuthorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(account.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuthorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   assignment.AuthorTable,
			Columns: []string{assignment.AuthorColumn},
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
	if _u.mutation.SubmissionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   assignment.SubmissionsTable,
			Columns: []string{assignment.SubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubmissionsIDs(); len(nodes) > 0 && !_u.mutation.SubmissionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   assignment.SubmissionsTable,
			Columns: []string{assignment.SubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubmissionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   assignment.SubmissionsTable,
			Columns: []string{assignment.SubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assignment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssignmentUpdateOne is the builder for updating a single Assignment entity.
type AssignmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssignmentMutation
}

// SetSubjectID sets the "subject_id" field.
func (_u *AssignmentUpdateOne) SetSubjectID(v int) *AssignmentUpdateOne {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableSubjectID(v *int) *AssignmentUpdateOne {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetAuthorID sets the "author_id" field.
func (_u *AssignmentUpdateOne) SetAuthorID(v int) *AssignmentUpdateOne {
	_u.mutation.SetAuthorID(v)
	return _u
}

// SetNillableAuthorID sets the "author_id" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableAuthorID(v *int) *AssignmentUpdateOne {
	if v != nil {
		_u.SetAuthorID(*v)
	}
	return _u
}

// ClearAuthorID clears the value of the "author_id" field.
func (_u *AssignmentUpdateOne) ClearAuthorID() *AssignmentUpdateOne {
	_u.mutation.ClearAuthorID()
	return _u
}

// SetQuestionNumber sets the "question_number" field.
func (_u *AssignmentUpdateOne) SetQuestionNumber(v int) *AssignmentUpdateOne {
	_u.mutation.ResetQuestionNumber()
	_u.mutation.SetQuestionNumber(v)
	return _u
}

// SetNillableQuestionNumber sets the "question_number" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableQuestionNumber(v *int) *AssignmentUpdateOne {
	if v != nil {
		_u.SetQuestionNumber(*v)
	}
	return _u
}

// AddQuestionNumber adds value to the "question_number" field.
func (_u *AssignmentUpdateOne) AddQuestionNumber(v int) *AssignmentUpdateOne {
	_u.mutation.AddQuestionNumber(v)
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *AssignmentUpdateOne) SetQuestionText(v string) *AssignmentUpdateOne {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableQuestionText(v *string) *AssignmentUpdateOne {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetSubject sets the "subject" edge to the Subject entity.
func (_u *AssignmentUpdateOne) SetSubject(v *Subject) *AssignmentUpdateOne {
	return _u.SetSubjectID(v.ID)
}

// SetAuthor sets the "author" edge to the Account entity.
func (_u *AssignmentUpdateOne) SetAuthor(v *Account) *AssignmentUpdateOne {
	return _u.SetAuthorID(v.ID)
}

// AddSubmissionIDs adds the "submissions" edge to the Submission entity by IDs.
func (_u *AssignmentUpdateOne) AddSubmissionIDs(ids ...int) *AssignmentUpdateOne {
	_u.mutation.AddSubmissionIDs(ids...)
	return _u
}

// AddSubmissions adds the "submissions" edges to the Submission entity.
func (_u *AssignmentUpdateOne) AddSubmissions(v ...*Submission) *AssignmentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubmissionIDs(ids...)
}

// Mutation returns the AssignmentMutation object of the builder.
func (_u *AssignmentUpdateOne) Mutation() *AssignmentMutation {
	return _u.mutation
}

// ClearSubject clears the "subject" edge to the Subject entity.
func (_u *AssignmentUpdateOne) ClearSubject() *AssignmentUpdateOne {
	_u.mutation.ClearSubject()
	return _u
}

// ClearAuthor clears the "author" edge to the Account entity.
func (_u *AssignmentUpdateOne) ClearAuthor() *AssignmentUpdateOne {
	_u.mutation.ClearAuthor()
	return _u
}

// ClearSubmissions clears all "submissions" edges to the Submission entity.
func (_u *AssignmentUpdateOne) ClearSubmissions() *AssignmentUpdateOne {
	_u.mutation.ClearSubmissions()
	return _u
}

// RemoveSubmissionIDs removes the "submissions" edge to Submission entities by IDs.
func (_u *AssignmentUpdateOne) RemoveSubmissionIDs(ids ...int) *AssignmentUpdateOne {
	_u.mutation.RemoveSubmissionIDs(ids...)
	return _u
}

// RemoveSubmissions removes "submissions" edges to Submission entities.
func (_u *AssignmentUpdateOne) RemoveSubmissions(v ...*Submission) *AssignmentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubmissionIDs(ids...)
}

// Where appends a list predicates to the AssignmentUpdate builder.
func (_u *AssignmentUpdateOne) Where(ps ...predicate.Assignment) *AssignmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssignmentUpdateOne) Select(field string, fields ...string) *AssignmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Assignment entity.
func (_u *AssignmentUpdateOne) Save(ctx context.Context) (*Assignment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssignmentUpdateOne) SaveX(ctx context.Context) *Assignment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssignmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssignmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssignmentUpdateOne) check() error {
	if v, ok := _u.mutation.QuestionNumber(); ok {
		if err := assignment.QuestionNumberValidator(v); err != nil {
			return &ValidationError{Name: "question_number", err: fmt.Errorf(`ent: validator failed for field "Assignment.question_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := assignment.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "Assignment.question_text": %w`, err)}
		}
	}
	if _u.mutation.SubjectCleared() && len(_u.mutation.SubjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Assignment.subject"`)
	}
	return nil
}

func (_u *AssignmentUpdateOne) sqlSave(ctx context.Context) (_node *Assignment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assignment.Table, assignment.Columns, sqlgraph.NewFieldSpec(assignment.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Assignment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assignment.FieldID)
		for _, f := range fields {
			if !assignment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assignment.FieldID {
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
	if value, ok := _u.mutation.QuestionNumber(); ok {
		_spec.SetField(assignment.FieldQuestionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionNumber(); ok {
		_spec.AddField(assignment.FieldQuestionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(assignment.FieldQuestionText, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   assignment.SubjectTable,
			Columns: []string{assignment.SubjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subject.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   assignment.SubjectTable,
			Columns: []string{assignment.SubjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subject.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AuthorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   assignment.AuthorTable,
			Columns: []string{assignment.AuthorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(account.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuthorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   assignment.AuthorTable,
			Columns: []string{assignment.AuthorColumn},
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
	if _u.mutation.SubmissionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   assignment.SubmissionsTable,
			Columns: []string{assignment.SubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubmissionsIDs(); len(nodes) > 0 && !_u.mutation.SubmissionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   assignment.SubmissionsTable,
			Columns: []string{assignment.SubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubmissionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   assignment.SubmissionsTable,
			Columns: []string{assignment.SubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Assignment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assignment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
