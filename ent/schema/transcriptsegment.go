package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TranscriptSegment holds the schema definition for the TranscriptSegment entity.
// Segments are immutable once written; an edit preserves the original text and
// sets is_edited.
type TranscriptSegment struct {
	ent.Schema
}

// Fields of the TranscriptSegment.
func (TranscriptSegment) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("segment_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.String("speaker_id").
			Optional().
			Nillable().
			Comment("Normalized speaker tag (spk_0, spk_1, ...) or nil when diarization is off"),
		field.Float("start_seconds"),
		field.Float("end_seconds"),
		field.Text("content"),
		field.Float("confidence").
			Optional().
			Nillable().
			Comment("Vendor confidence [0,1]; nil when the vendor does not report it"),
		field.JSON("words", []map[string]interface{}{}).
			Optional().
			Comment("Word-level timestamps; vendor-conditional, consumers must tolerate nil"),
		field.Bool("is_edited").
			Default(false),
		field.Text("original_content").
			Optional().
			Nillable().
			Comment("Pre-edit text, set when is_edited"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the TranscriptSegment.
func (TranscriptSegment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("segments").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the TranscriptSegment.
func (TranscriptSegment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "start_seconds"),
	}
}
