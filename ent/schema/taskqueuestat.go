package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TaskQueueStat holds the schema definition for sampled queue snapshots
// captured once per minute by the queue stats sampler.
type TaskQueueStat struct {
	ent.Schema
}

// Fields of the TaskQueueStat.
func (TaskQueueStat) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("stat_id").
			Unique().
			Immutable(),
		field.String("queue_name").
			Immutable(),
		field.Int("worker_count").
			Immutable(),
		field.Int("queued_count").
			Immutable(),
		field.Int("active_count").
			Immutable(),
		field.Float("utilization").
			Immutable().
			Comment("active_count / max(worker_count, 1)"),
		field.Time("sampled_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the TaskQueueStat.
func (TaskQueueStat) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("queue_name", "sampled_at"),
		index.Fields("sampled_at"),
	}
}
