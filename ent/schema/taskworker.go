package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TaskWorker holds the schema definition for a distributed worker process.
// The ID is deterministic: "hostname_pid_randomsuffix".
type TaskWorker struct {
	ent.Schema
}

// Fields of the TaskWorker.
func (TaskWorker) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("worker_id").
			Unique().
			Immutable(),
		field.String("kind").
			Default("general"),
		field.String("hostname"),
		field.Int("pid"),
		field.Enum("status").
			Values("online", "offline", "busy", "idle", "error", "stale").
			Default("online"),
		field.Int("max_tasks").
			Default(5),
		field.Int("active_tasks").
			Default(0),
		field.JSON("queues", []string{}).
			Default([]string{}),
		field.JSON("capabilities", map[string]any{}).
			Optional(),
		field.JSON("metadata", map[string]any{}).
			Optional(),
		field.Time("last_heartbeat").
			Default(time.Now),
		field.Time("registered_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the TaskWorker.
func (TaskWorker) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("status", "last_heartbeat"),
	}
}
