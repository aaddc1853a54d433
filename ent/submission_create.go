// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/homework-evaluation/backend/ent/account"
	"github.com/homework-evaluation/backend/ent/assignment"
	"github.com/homework-evaluation/backend/ent/submission"
)

// SubmissionCreate is the builder for creating a Submission entity.
type SubmissionCreate struct {
	config
	mutation *SubmissionMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *SubmissionCreate) SetCreatedAt(v time.Time) *SubmissionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableCreatedAt(v *time.Time) *SubmissionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SubmissionCreate) SetUpdatedAt(v time.Time) *SubmissionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableUpdatedAt(v *time.Time) *SubmissionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetAssignmentID sets the "assignment_id" field.
func (_c *SubmissionCreate) SetAssignmentID(v int) *SubmissionCreate {
	_c.mutation.SetAssignmentID(v)
	return _c
}

// SetStudentID sets the "student_id" field.
func (_c *SubmissionCreate) SetStudentID(v int) *SubmissionCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetAnswer sets the "answer" field.
func (_c *SubmissionCreate) SetAnswer(v string) *SubmissionCreate {
	_c.mutation.SetAnswer(v)
	return _c
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableAnswer(v *string) *SubmissionCreate {
	if v != nil {
		_c.SetAnswer(*v)
	}
	return _c
}

// SetGrade sets the "grade" field.
func (_c *SubmissionCreate) SetGrade(v int) *SubmissionCreate {
	_c.mutation.SetGrade(v)
	return _c
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableGrade(v *int) *SubmissionCreate {
	if v != nil {
		_c.SetGrade(*v)
	}
	return _c
}

// SetFeedback sets the "feedback" field.
func (_c *SubmissionCreate) SetFeedback(v string) *SubmissionCreate {
	_c.mutation.SetFeedback(v)
	return _c
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableFeedback(v *string) *SubmissionCreate {
	if v != nil {
		_c.SetFeedback(*v)
	}
	return _c
}

// SetAnsweredAt sets the "answered_at" field.
func (_c *SubmissionCreate) SetAnsweredAt(v time.Time) *SubmissionCreate {
	_c.mutation.SetAnsweredAt(v)
	return _c
}

// SetNillableAnsweredAt sets the "answered_at" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableAnsweredAt(v *time.Time) *SubmissionCreate {
	if v != nil {
		_c.SetAnsweredAt(*v)
	}
	return _c
}

// SetGradedAt sets the "graded_at" field.
func (_c *SubmissionCreate) SetGradedAt(v time.Time) *SubmissionCreate {
	_c.mutation.SetGradedAt(v)
	return _c
}

// SetNillableGradedAt sets the "graded_at" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableGradedAt(v *time.Time) *SubmissionCreate {
	if v != nil {
		_c.SetGradedAt(*v)
	}
	return _c
}

// SetAssignment sets the "assignment" edge to the Assignment entity.
func (_c *SubmissionCreate) SetAssignment(v *Assignment) *SubmissionCreate {
	return _c.SetAssignmentID(v.ID)
}

// SetStudent sets the "student" edge to the Account entity.
func (_c *SubmissionCreate) SetStudent(v *Account) *SubmissionCreate {
	return _c.SetStudentID(v.ID)
}

// Mutation returns the SubmissionMutation object of the builder.
func (_c *SubmissionCreate) Mutation() *SubmissionMutation {
	return _c.mutation
}

// Save creates the Submission in the database.
func (_c *SubmissionCreate) Save(ctx context.Context) (*Submission, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SubmissionCreate) SaveX(ctx context.Context) *Submission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubmissionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubmissionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SubmissionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := submission.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := submission.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SubmissionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Submission.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Submission.updated_at"`)}
	}
	if _, ok := _c.mutation.AssignmentID(); !ok {
		return &ValidationError{Name: "assignment_id", err: errors.New(`ent: missing required field "Submission.assignment_id"`)}
	}
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "Submission.student_id"`)}
	}
	if v, ok := _c.mutation.Grade(); ok {
		if err := submission.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "Submission.grade": %w`, err)}
		}
	}
	if len(_c.mutation.AssignmentIDs()) == 0 {
		return &ValidationError{Name: "assignment", err: errors.New(`ent: missing required edge "Submission.assignment"`)}
	}
	if len(_c.mutation.StudentIDs()) == 0 {
		return &ValidationError{Name: "student", err: errors.New(`ent: missing required edge "Submission.student"`)}
	}
	return nil
}

func (_c *SubmissionCreate) sqlSave(ctx context.Context) (*Submission, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SubmissionCreate) createSpec() (*Submission, *sqlgraph.CreateSpec) {
	var (
		_node = &Submission{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(submission.Table, sqlgraph.NewFieldSpec(submission.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(submission.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(submission.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Answer(); ok {
		_spec.SetField(submission.FieldAnswer, field.TypeString, value)
		_node.Answer = &value
	}
	if value, ok := _c.mutation.Grade(); ok {
		_spec.SetField(submission.FieldGrade, field.TypeInt, value)
		_node.Grade = &value
	}
	if value, ok := _c.mutation.Feedback(); ok {
		_spec.SetField(submission.FieldFeedback, field.TypeString, value)
		_node.Feedback = &value
	}
	if value, ok := _c.mutation.AnsweredAt(); ok {
		_spec.SetField(submission.FieldAnsweredAt, field.TypeTime, value)
		_node.AnsweredAt = &value
	}
	if value, ok := _c.mutation.GradedAt(); ok {
		_spec.SetField(submission.FieldGradedAt, field.TypeTime, value)
		_node.GradedAt = &value
	}
	if nodes := _c.mutation.AssignmentIDs(); len(nodes) > 0 {
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
		_node.AssignmentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StudentIDs(); len(nodes) > 0 {
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
		_node.StudentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SubmissionCreateBulk is the builder for creating many Submission entities in bulk.
type SubmissionCreateBulk struct {
	config
	err      error
	builders []*SubmissionCreate
}

// Save creates the Submission entities in the database.
func (_c *SubmissionCreateBulk) Save(ctx context.Context) ([]*Submission, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Submission, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubmissionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SubmissionCreateBulk) SaveX(ctx context.Context) []*Submission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubmissionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubmissionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
