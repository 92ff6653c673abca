package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Alert holds the schema definition for the Alert entity.
// One alert is a single observation from a monitoring source; the invariant
// "at most one firing alert per fingerprint" is enforced by a partial unique
// index created in pkg/database/migrations.go.
type Alert struct {
	ent.Schema
}

// Fields of the Alert.
func (Alert) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("alert_id").
			Unique().
			Immutable(),
		field.String("fingerprint").
			Comment("Stable hash identifying the same logical alert across time"),
		field.String("source").
			Comment("Ingest driver name (e.g. 'alertmanager', 'grafana')"),
		field.String("name").
			Comment("Alert name (e.g. 'HighCPU')"),
		field.Enum("severity").
			Values("critical", "warning", "info", "success"),
		field.Enum("status").
			Values("firing", "resolved").
			Default("firing"),
		field.JSON("labels", map[string]string{}).
			Optional(),
		field.JSON("annotations", map[string]string{}).
			Optional(),
		field.JSON("raw_payload", map[string]any{}).
			Optional().
			Comment("Original webhook payload, stored verbatim"),
		field.String("incident_id").
			Optional().
			Nillable().
			Comment("Owning incident; alerts outlive closed incidents"),
		field.Time("received_at").
			Default(time.Now),
		field.Time("starts_at").
			Optional().
			Nillable(),
		field.Time("ends_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Alert.
func (Alert) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("incident", Incident.Type).
			Ref("alerts").
			Field("incident_id").
			Unique(),
		edge.To("history", AlertHistory.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Alert.
func (Alert) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("fingerprint"),
		index.Fields("fingerprint", "status"),
		index.Fields("incident_id"),
		index.Fields("source"),
	}
}
