package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Assignment is a question published to the students of a subject.
type Assignment struct {
	ent.Schema
}

func (Assignment) Fields() []ent.Field {
	return []ent.Field{
		field.Int("subject_id"),
		// nil once the publishing teacher is deleted
		field.Int("author_id").
			Optional().
			Nillable(),
		field.Int("question_number").
			Positive(),
		field.Text("question_text").
			NotEmpty(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Assignment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("subject", Subject.Type).
			Ref("assignments").
			Field("subject_id").
			Unique().
			Required(),
		edge.From("author", Account.Type).
			Ref("authored_assignments").
			Field("author_id").
			Unique(),
		edge.To("submissions", Submission.Type),
	}
}

func (Assignment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject_id", "question_number"),
	}
}
