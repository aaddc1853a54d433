package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event records a workflow mutation. It keeps the account ID as a plain
// column so the trail survives account deletion.
type Event struct {
	ent.Schema
}

func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.Int("account_id"),
		field.String("type").
			NotEmpty(),
		field.Time("triggered_at").
			Default(time.Now),
		field.JSON("payload", map[string]any{}).
			Optional(),
	}
}

func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("type"),
		index.Fields("type", "account_id"),
	}
}
