package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity. Rows are the
// persistent side of NOTIFY broadcasts: a subscriber that missed a
// notification catches up by querying events it has not seen. The default
// auto-increment id doubles as the catchup cursor.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id"),
		field.String("channel"),
		field.JSON("payload", json.RawMessage{}),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id"),
		index.Fields("channel", "id"),
	}
}
