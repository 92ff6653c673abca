package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StageExecution holds the schema definition for the StageExecution entity:
// one attempt of one stage (or definition node) within a PipelineRun.
// idempotency_key = sha256(run_id, scope, attempt) where scope is the stage
// name or the definition node id, unique; the partial unique index
// guaranteeing at most one succeeded row per (run, stage, node) is created in
// pkg/database/migrations.go.
type StageExecution struct {
	ent.Schema
}

// Fields of the StageExecution.
func (StageExecution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("stage_execution_id").
			Unique().
			Immutable(),
		field.String("pipeline_run_id").
			Immutable(),
		field.String("stage").
			Immutable().
			MaxLen(20).
			Comment("Stage name, or node type truncated to 20 chars for definition runs"),
		field.String("node_id").
			Optional().
			Default("").
			Immutable().
			Comment("Definition node id; empty for fixed-topology stages"),
		field.Int("attempt").
			Immutable().
			Min(1),
		field.String("idempotency_key").
			Unique().
			Immutable(),
		field.Enum("status").
			Values("pending", "running", "succeeded", "failed", "skipped").
			Default("pending"),
		field.String("input_ref").
			Optional(),
		field.String("output_ref").
			Optional().
			Comment("URI reference for large outputs"),
		field.JSON("output_snapshot", map[string]any{}).
			Optional().
			Comment("Inline output for small results"),
		field.String("error_type").
			Optional().
			Nillable(),
		field.Text("error_message").
			Optional().
			Nillable(),
		field.Text("error_stack").
			Optional().
			Nillable(),
		field.Bool("error_retryable").
			Default(false),
		field.String("skip_reason").
			Optional().
			Nillable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int("duration_ms").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the StageExecution.
func (StageExecution) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("pipeline_run", PipelineRun.Type).
			Ref("stage_executions").
			Field("pipeline_run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the StageExecution.
func (StageExecution) Indexes() []ent.Index {
	return []ent.Index{
		// Attempt numbers are strictly increasing per (run, stage, node).
		// node_id is empty for fixed-topology stages, so fixed runs get the
		// plain (run, stage, attempt) guarantee.
		index.Fields("pipeline_run_id", "stage", "node_id", "attempt").
			Unique(),
		index.Fields("pipeline_run_id", "status"),
	}
}
