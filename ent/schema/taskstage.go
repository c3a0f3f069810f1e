package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TaskStage holds the schema definition for the TaskStage entity.
// One row per stage attempt; retries archive the previous attempt
// (is_active=false) and insert a fresh row.
type TaskStage struct {
	ent.Schema
}

// Fields of the TaskStage.
func (TaskStage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("stage_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.Enum("stage_type").
			Values("resolve", "download", "transcode", "upload_storage", "transcribe", "summarize", "visualize"),
		field.Enum("status").
			Values("pending", "running", "completed", "failed", "skipped").
			Default("pending"),
		field.String("attempt_id").
			Immutable().
			Comment("Unique per attempt; idempotency key for quota/cost side effects"),
		field.Bool("is_active").
			Default(true).
			Comment("Only one active row per (task, stage_type); enforced by partial unique index"),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.JSON("output", map[string]interface{}{}).
			Optional().
			Comment("Stage artifacts consumed by later stages (download URL, file key, duration)"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the TaskStage.
func (TaskStage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("stages").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the TaskStage.
// The partial unique index on (task_id, stage_type) WHERE is_active is created
// in pkg/database/migrations.go since Ent cannot express partial unique indexes.
func (TaskStage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "stage_type"),
		index.Fields("task_id", "status"),
	}
}
