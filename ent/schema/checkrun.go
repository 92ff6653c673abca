package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CheckRun holds the schema definition for the CheckRun entity.
// One execution of one checker; created per check stage execution, never
// mutated. Correlated to the owning run via trace_id (no FK; checkers are
// opaque collaborators and their records survive run deletion).
type CheckRun struct {
	ent.Schema
}

// Fields of the CheckRun.
func (CheckRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("check_run_id").
			Unique().
			Immutable(),
		field.String("checker_name").
			Immutable(),
		field.String("hostname").
			Optional().
			Immutable(),
		field.Enum("status").
			Values("ok", "warning", "critical", "unknown").
			Immutable(),
		field.Text("message").
			Optional().
			Immutable(),
		field.JSON("metrics", map[string]any{}).
			Optional().
			Immutable(),
		field.String("error").
			Optional().
			Nillable().
			Immutable(),
		field.String("trace_id").
			Immutable(),
		field.String("pipeline_run_id").
			Optional().
			Immutable(),
		field.Time("executed_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the CheckRun.
func (CheckRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("trace_id"),
		index.Fields("checker_name", "executed_at"),
	}
}
