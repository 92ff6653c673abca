package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// NotificationChannel holds the schema definition for the
// NotificationChannel entity: persistent config for one notification
// target (driver name + opaque driver config).
type NotificationChannel struct {
	ent.Schema
}

// Fields of the NotificationChannel.
func (NotificationChannel) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("channel_id").
			Unique().
			Immutable(),
		field.String("name").
			Unique(),
		field.String("driver").
			Comment("Driver name (e.g. 'slack', 'webhook', 'pagerduty')"),
		field.JSON("config", map[string]any{}).
			Optional().
			Comment("Driver-specific config, opaque to the dispatcher"),
		field.Bool("is_active").
			Default(true),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the NotificationChannel.
func (NotificationChannel) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("driver", "is_active"),
	}
}
