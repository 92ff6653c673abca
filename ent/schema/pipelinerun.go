package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PipelineRun holds the schema definition for the PipelineRun entity:
// the top-level lifecycle of one orchestration. Fixed-topology runs advance
// pending → ingested → checked → analyzed → notified; definition runs go
// pending → completed/failed. "retrying" is a scheduling state between a
// retryable stage failure and the next attempt.
type PipelineRun struct {
	ent.Schema
}

// Fields of the PipelineRun.
func (PipelineRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.String("trace_id").
			Immutable().
			Comment("Correlation ID propagated to every child record"),
		field.Enum("mode").
			Values("fixed", "definition").
			Default("fixed"),
		field.String("source").
			Optional().
			Comment("Ingest driver hint or detected source"),
		field.String("environment").
			Optional(),
		field.String("definition_name").
			Optional().
			Nillable(),
		field.Int("definition_version").
			Optional().
			Nillable(),
		field.String("incident_id").
			Optional().
			Nillable().
			Comment("Set once the ingest stage attaches or opens an incident"),
		field.Enum("status").
			Values("pending", "ingested", "checked", "analyzed", "notified", "retrying", "completed", "failed").
			Default("pending"),
		field.String("current_stage").
			Optional(),
		field.JSON("payload", map[string]any{}).
			Optional().
			Comment("Raw submission payload, re-read on async execution and resume"),
		field.Int("total_attempts").
			Default(0),
		field.Int("max_retries").
			Default(3),
		field.String("last_error_type").
			Optional().
			Nillable(),
		field.String("last_error_message").
			Optional().
			Nillable(),
		field.Bool("last_error_retryable").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When a worker claimed the run"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int("total_duration_ms").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_interaction_at").
			Optional().
			Nillable().
			Comment("Heartbeat for orphan detection"),
	}
}

// Edges of the PipelineRun.
func (PipelineRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("stage_executions", StageExecution.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the PipelineRun.
func (PipelineRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("status", "created_at"),
		index.Fields("status", "last_interaction_at"),
		index.Fields("trace_id"),
		index.Fields("incident_id"),
	}
}
