package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity.
// One Task is one unit of pipeline work: source media in, transcript and
// summaries out.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable().
			Comment("Owning user"),
		field.String("title").
			Optional(),
		field.Enum("kind").
			Values("process", "visualize").
			Default("process").
			Comment("process = full pipeline; visualize = visualization-only run against an existing transcript"),
		field.Enum("source_type").
			Values("upload", "url"),
		field.String("file_key").
			Optional().
			Nillable().
			Comment("Object storage key for uploaded sources"),
		field.String("source_url").
			Optional().
			Nillable().
			Comment("Remote URL for url sources"),
		field.String("content_hash").
			Optional().
			Nillable().
			Comment("SHA-256 of the uploaded object, used for instant-upload dedup"),
		field.JSON("options", map[string]interface{}{}).
			Optional().
			Comment("Per-task processing options (language, diarization, summary_style, provider overrides)"),
		field.Enum("status").
			Values("pending", "extracting", "transcribing", "summarizing", "completed", "failed").
			Default("pending"),
		field.Int("progress").
			Default(0).
			Comment("Percent [0,100]; monotonically non-decreasing while not failed"),
		field.Float("duration_seconds").
			Optional().
			Nillable().
			Comment("Media duration, known after transcode"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When a worker claimed the task"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete"),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("stages", TaskStage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("segments", TranscriptSegment.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("summaries", Summary.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", Event.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("user_id", "created_at"),
		index.Fields("user_id", "content_hash"),
		index.Fields("status", "created_at"),
		index.Fields("status", "last_heartbeat_at"),
		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}
