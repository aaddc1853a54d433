package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Account is an admin, teacher or student who can sign in.
type Account struct {
	ent.Schema
}

func (Account) Fields() []ent.Field {
	return []ent.Field{
		field.String("username").
			NotEmpty().
			Unique(),
		// stored and compared as given
		field.String("secret").
			NotEmpty().
			Sensitive(),
		field.Enum("role").
			Values("admin", "teacher", "student"),
		field.String("display_name").
			NotEmpty(),
	}
}

func (Account) Edges() []ent.Edge {
	return []ent.Edge{
		// the enrollment relation
		edge.To("subjects", Subject.Type),
		edge.To("submissions", Submission.Type),
		edge.To("authored_assignments", Assignment.Type),
	}
}

func (Account) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("role"),
	}
}

func (Account) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimestampMixin{},
	}
}
