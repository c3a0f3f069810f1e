package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Summary holds the schema definition for the Summary entity.
// Exactly one row per (task, summary_type) has is_active=true; regeneration
// archives the previous version and bumps the version counter.
type Summary struct {
	ent.Schema
}

// Fields of the Summary.
func (Summary) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("summary_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.Enum("summary_type").
			Values("overview", "key_points", "action_items", "chapters",
				"visual_mindmap", "visual_timeline", "visual_flowchart"),
		field.Int("version").
			Default(1),
		field.Bool("is_active").
			Default(true),
		field.Text("content").
			Comment("Markdown, or JSON for chapters"),
		field.String("visual_format").
			Optional().
			Nillable().
			Comment("\"mermaid\" for visual variants"),
		field.Text("visual_content").
			Optional().
			Nillable().
			Comment("Validated diagram source"),
		field.String("image_key").
			Optional().
			Nillable().
			Comment("Object storage key of a rendered image, when a renderer is configured"),
		field.String("model_used").
			Optional(),
		field.String("prompt_version").
			Optional(),
		field.Int("token_count").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Summary.
func (Summary) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("summaries").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Summary.
// The partial unique index on (task_id, summary_type) WHERE is_active is
// created in pkg/database/migrations.go.
func (Summary) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "summary_type"),
	}
}
