package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// IntelligenceProvider holds the schema definition for the
// IntelligenceProvider entity: persistent config for one AI provider.
// At most one row is active at a time (partial unique index in
// pkg/database/migrations.go); the local rule engine is always available as
// fallback and needs no row.
type IntelligenceProvider struct {
	ent.Schema
}

// Fields of the IntelligenceProvider.
func (IntelligenceProvider) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("provider_id").
			Unique().
			Immutable(),
		field.String("name").
			Unique(),
		field.String("provider_type").
			Comment("Registered provider type (e.g. 'openai', 'anthropic', 'local')"),
		field.JSON("config", map[string]any{}).
			Optional().
			Comment("Credentials and provider options"),
		field.Bool("is_active").
			Default(false),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
