package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity.
// Transient progress events persisted for WebSocket catchup; cleaned up
// shortly after the task reaches a terminal state.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id").
			Positive(),
		field.String("task_id"),
		field.String("channel").
			Comment("NOTIFY channel the event was published to"),
		field.JSON("payload", map[string]interface{}{}),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the Event.
func (Event) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("events").
			Field("task_id").
			Unique().
			Required(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("channel", "id"),
		index.Fields("created_at"),
	}
}
