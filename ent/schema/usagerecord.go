package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UsageRecord holds the schema definition for the UsageRecord entity.
// Append-only durable cost log; the Redis fast index mirrors the hot
// aggregates. Writes dedupe on (request_id, attempt).
type UsageRecord struct {
	ent.Schema
}

// Fields of the UsageRecord.
func (UsageRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("record_id").
			Unique().
			Immutable(),
		field.Enum("service_type").
			Values("asr", "llm", "storage"),
		field.String("provider"),
		field.String("user_id").
			Optional(),
		field.String("task_id").
			Optional().
			Nillable(),
		field.Float("cost").
			Comment("Estimated cost in USD"),
		field.Int("tokens").
			Optional().
			Nillable(),
		field.Float("duration_seconds").
			Optional().
			Nillable(),
		field.String("request_id").
			Immutable(),
		field.Int("attempt").
			Default(0).
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the UsageRecord.
func (UsageRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("request_id", "attempt").
			Unique(),
		index.Fields("service_type", "provider", "created_at"),
		index.Fields("user_id", "created_at"),
	}
}
