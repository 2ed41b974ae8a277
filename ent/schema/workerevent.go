package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorkerEvent holds the schema definition for worker lifecycle events
// (registered, unregistered, marked_stale). Rows are pruned by the
// retention cleanup job.
type WorkerEvent struct {
	ent.Schema
}

// Fields of the WorkerEvent.
func (WorkerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("worker_id").
			Immutable(),
		field.String("event_type").
			Immutable().
			Comment("registered | unregistered | marked_stale"),
		field.JSON("details", map[string]any{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the WorkerEvent.
func (WorkerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("worker_id"),
		index.Fields("created_at"),
	}
}
