package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PipelineDefinition holds the schema definition for the PipelineDefinition
// entity: a JSON-described node DAG for the definition orchestrator.
// version increments on any config change; inactive definitions cannot be
// executed.
type PipelineDefinition struct {
	ent.Schema
}

// Fields of the PipelineDefinition.
func (PipelineDefinition) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("definition_id").
			Unique().
			Immutable(),
		field.String("name").
			Unique(),
		field.Int("version").
			Default(1).
			Min(1),
		field.Text("description").
			Optional(),
		field.JSON("config", map[string]any{}).
			Comment("Node graph config; statically validated at admission"),
		field.JSON("tags", []string{}).
			Optional(),
		field.Bool("is_active").
			Default(true),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the PipelineDefinition.
func (PipelineDefinition) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("is_active"),
	}
}
