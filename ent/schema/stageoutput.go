package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StageOutput holds the schema definition for the StageOutput entity: a stage
// output too large to inline on the execution row. The owning StageExecution
// points here through output_ref.
type StageOutput struct {
	ent.Schema
}

// Fields of the StageOutput.
func (StageOutput) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("stage_output_id").
			Unique().
			Immutable(),
		field.String("pipeline_run_id").
			Immutable(),
		field.JSON("data", map[string]any{}).
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the StageOutput.
func (StageOutput) Indexes() []ent.Index {
	return []ent.Index{
		// Outputs are deleted with their run.
		index.Fields("pipeline_run_id"),
	}
}
