package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/codeready-toolchain/conductor/pkg/models"
)

// AnalysisRun holds the schema definition for the AnalysisRun entity.
// One execution of one intelligence provider for one incident.
// status=fallback means the configured provider failed and the local rule
// engine supplied the recommendations.
type AnalysisRun struct {
	ent.Schema
}

// Fields of the AnalysisRun.
func (AnalysisRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("analysis_run_id").
			Unique().
			Immutable(),
		field.String("trace_id").
			Immutable(),
		field.String("pipeline_run_id").
			Optional().
			Immutable(),
		field.String("incident_id").
			Optional().
			Nillable(),
		field.String("provider").
			Comment("Provider name (e.g. 'local', 'openai', 'anthropic')"),
		field.JSON("provider_config", map[string]any{}).
			Optional(),
		field.JSON("recommendations", []models.Recommendation{}).
			Optional(),
		field.Int("total_tokens").
			Optional(),
		field.Enum("status").
			Values("succeeded", "failed", "fallback"),
		field.String("error").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the AnalysisRun.
func (AnalysisRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("incident", Incident.Type).
			Ref("analysis_runs").
			Field("incident_id").
			Unique(),
	}
}

// Indexes of the AnalysisRun.
func (AnalysisRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("trace_id"),
		index.Fields("incident_id"),
	}
}
