package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Subject is a course that accounts enroll in and assignments belong to.
type Subject struct {
	ent.Schema
}

func (Subject) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Unique(),
		field.String("code").
			NotEmpty().
			Unique(),
	}
}

func (Subject) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("accounts", Account.Type).
			Ref("subjects"),
		edge.To("assignments", Assignment.Type),
	}
}

func (Subject) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimestampMixin{},
	}
}
