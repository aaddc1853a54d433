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
	"github.com/homework-evaluation/backend/ent/subject"
	"github.com/homework-evaluation/backend/ent/submission"
)

// AssignmentCreate is the builder for creating a Assignment entity.
type AssignmentCreate struct {
	config
	mutation *AssignmentMutation
	hooks    []Hook
}

// SetSubjectID sets the "subject_id" field.
func (_c *AssignmentCreate) SetSubjectID(v int) *AssignmentCreate {
	_c.mutation.SetSubjectID(v)
	return _c
}

// SetAuthorID sets the "author_id" field.
func (_c *AssignmentCreate) SetAuthorID(v int) *AssignmentCreate {
	_c.mutation.SetAuthorID(v)
	return _c
}

// SetNillableAuthorID sets the "author_id" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillableAuthorID(v *int) *AssignmentCreate {
	if v != nil {
		_c.SetAuthorID(*v)
	}
	return _c
}

// SetQuestionNumber sets the "question_number" field.
func (_c *AssignmentCreate) SetQuestionNumber(v int) *AssignmentCreate {
	_c.mutation.SetQuestionNumber(v)
	return _c
}

// SetQuestionText sets the "question_text" field.
func (_c *AssignmentCreate) SetQuestionText(v string) *AssignmentCreate {
	_c.mutation.SetQuestionText(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AssignmentCreate) SetCreatedAt(v time.Time) *AssignmentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillableCreatedAt(v *time.Time) *AssignmentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetSubject sets the "subject" edge to the Subject entity.
func (_c *AssignmentCreate) SetSubject(v *Subject) *AssignmentCreate {
	return _c.SetSubjectID(v.ID)
}

// SetAuthor sets the "author" edge to the Account entity.
func (_c *AssignmentCreate) SetAuthor(v *Account) *AssignmentCreate {
	return _c.SetAuthorID(v.ID)
}

// AddSubmissionIDs adds the "submissions" edge to the Submission entity by IDs.
func (_c *AssignmentCreate) AddSubmissionIDs(ids ...int) *AssignmentCreate {
	_c.mutation.AddSubmissionIDs(ids...)
	return _c
}

// AddSubmissions adds the "submissions" edges to the Submission entity.
func (_c *AssignmentCreate) AddSubmissions(v ...*Submission) *AssignmentCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSubmissionIDs(ids...)
}

// Mutation returns the AssignmentMutation object of the builder.
func (_c *AssignmentCreate) Mutation() *AssignmentMutation {
	return _c.mutation
}

// Save creates the Assignment in the database.
func (_c *AssignmentCreate) Save(ctx context.Context) (*Assignment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssignmentCreate) SaveX(ctx context.Context) *Assignment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssignmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssignmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AssignmentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := assignment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssignmentCreate) check() error {
	if _, ok := _c.mutation.SubjectID(); !ok {
		return &ValidationError{Name: "subject_id", err: errors.New(`ent: missing required field "Assignment.subject_id"`)}
	}
	if _, ok := _c.mutation.QuestionNumber(); !ok {
		return &ValidationError{Name: "question_number", err: errors.New(`ent: missing required field "Assignment.question_number"`)}
	}
	if v, ok := _c.mutation.QuestionNumber(); ok {
		if err := assignment.QuestionNumberValidator(v); err != nil {
			return &ValidationError{Name: "question_number", err: fmt.Errorf(`ent: validator failed for field "Assignment.question_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionText(); !ok {
		return &ValidationError{Name: "question_text", err: errors.New(`ent: missing required field "Assignment.question_text"`)}
	}
	if v, ok := _c.mutation.QuestionText(); ok {
		if err := assignment.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "Assignment.question_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Assignment.created_at"`)}
	}
	if len(_c.mutation.SubjectIDs()) == 0 {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required edge "Assignment.subject"`)}
	}
	return nil
}

func (_c *AssignmentCreate) sqlSave(ctx context.Context) (*Assignment, error) {
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

func (_c *AssignmentCreate) createSpec() (*Assignment, *sqlgraph.CreateSpec) {
	var (
		_node = &Assignment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(assignment.Table, sqlgraph.NewFieldSpec(assignment.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.QuestionNumber(); ok {
		_spec.SetField(assignment.FieldQuestionNumber, field.TypeInt, value)
		_node.QuestionNumber = value
	}
	if value, ok := _c.mutation.QuestionText(); ok {
		_spec.SetField(assignment.FieldQuestionText, field.TypeString, value)
		_node.QuestionText = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(assignment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SubjectIDs(); len(nodes) > 0 {
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
		_node.SubjectID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AuthorIDs(); len(nodes) > 0 {
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
		_node.AuthorID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SubmissionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AssignmentCreateBulk is the builder for creating many Assignment entities in bulk.
type AssignmentCreateBulk struct {
	config
	err      error
	builders []*AssignmentCreate
}

// Save creates the Assignment entities in the database.
func (_c *AssignmentCreateBulk) Save(ctx context.Context) ([]*Assignment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Assignment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssignmentMutation)
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
func (_c *AssignmentCreateBulk) SaveX(ctx context.Context) []*Assignment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssignmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssignmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
