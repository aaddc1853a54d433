package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Submission is the answer slot of one student for one assignment.
type Submission struct {
	ent.Schema
}

func (Submission) Fields() []ent.Field {
	return []ent.Field{
		field.Int("assignment_id"),
		field.Int("student_id"),
		field.Text("answer").
			Optional().
			Nillable(),
		field.Int("grade").
			Range(0, 2).
			Optional().
			Nillable(),
		field.Text("feedback").
			Optional().
			Nillable(),
		field.Time("answered_at").
			Optional().
			Nillable(),
		field.Time("graded_at").
			Optional().
			Nillable(),
	}
}

func (Submission) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("assignment", Assignment.Type).
			Ref("submissions").
			Field("assignment_id").
			Unique().
			Required(),
		edge.From("student", Account.Type).
			Ref("submissions").
			Field("student_id").
			Unique().
			Required(),
	}
}

func (Submission) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("assignment_id", "student_id").
			Unique(),
		index.Fields("student_id"),
	}
}

func (Submission) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimestampMixin{},
	}
}
