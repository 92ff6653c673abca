package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AlertHistory holds the schema definition for the AlertHistory entity.
// Append-only audit trail of alert state changes; rows are never mutated.
type AlertHistory struct {
	ent.Schema
}

// Fields of the AlertHistory.
func (AlertHistory) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("history_id").
			Unique().
			Immutable(),
		field.String("alert_id").
			Immutable(),
		field.String("previous_status").
			Immutable(),
		field.String("new_status").
			Immutable(),
		field.Text("details").
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the AlertHistory.
func (AlertHistory) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("alert", Alert.Type).
			Ref("history").
			Field("alert_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the AlertHistory.
func (AlertHistory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("alert_id", "created_at"),
	}
}
