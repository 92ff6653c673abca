package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Incident holds the schema definition for the Incident entity: the
// operator-facing grouping of related alerts. Status transitions are
// monotonic (open → acknowledged → resolved → closed) and enforced by
// services.IncidentService, not by the schema.
type Incident struct {
	ent.Schema
}

// Fields of the Incident.
func (Incident) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("incident_id").
			Unique().
			Immutable(),
		field.String("title"),
		field.Text("description").
			Optional(),
		field.Enum("severity").
			Values("critical", "warning", "info", "success").
			Comment("Max severity of member alerts, recomputed on alert updates"),
		field.Enum("status").
			Values("open", "acknowledged", "resolved", "closed").
			Default("open"),
		field.String("grouping_key").
			Comment("Default: alert fingerprint; at most one open incident per key"),
		field.JSON("metadata", map[string]any{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("resolved_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Incident.
func (Incident) Edges() []ent.Edge {
	return []ent.Edge{
		// No cascade: alerts outlive closed incidents as historical records.
		edge.To("alerts", Alert.Type),
		edge.To("analysis_runs", AnalysisRun.Type),
	}
}

// Indexes of the Incident.
func (Incident) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("grouping_key", "status"),
		index.Fields("created_at"),
	}
}
