package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuotaEntry holds the schema definition for the QuotaEntry entity.
// Keyed by (owner, provider, variant, window_type); owner is a user id or the
// sentinel "global". Usage updates run as atomic SQL increments, the row is
// the authority, never in-process state.
type QuotaEntry struct {
	ent.Schema
}

// Fields of the QuotaEntry.
func (QuotaEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("quota_id").
			Unique().
			Immutable(),
		field.String("owner").
			Comment("User id, or \"global\" for the shared default lane"),
		field.String("provider"),
		field.Enum("variant").
			Values("file", "file_fast", "stream_async", "stream_realtime"),
		field.Enum("window_type").
			Values("day", "month", "total"),
		field.Time("window_start"),
		field.Time("window_end").
			Optional().
			Nillable().
			Comment("Half-open [start, end); nil for total windows (never roll over)"),
		field.Float("quota_seconds"),
		field.Float("used_seconds").
			Default(0),
		field.Enum("status").
			Values("active", "exhausted").
			Default("active"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the QuotaEntry.
func (QuotaEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner", "provider", "variant", "window_type").
			Unique(),
		index.Fields("provider", "status"),
	}
}
