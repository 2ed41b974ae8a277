package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ErrorLog holds the schema definition for fatal per-task faults
// (deadlocks, timeout exhaustion) and background-task failures.
type ErrorLog struct {
	ent.Schema
}

// Fields of the ErrorLog.
func (ErrorLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("error_id").
			Unique().
			Immutable(),
		field.String("source").
			Immutable().
			Comment("Subsystem tag, e.g. 'orchestrator'"),
		field.Text("message").
			Immutable(),
		field.JSON("details", map[string]any{}).
			Optional(),
		field.String("task_id").
			Optional().
			Nillable().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ErrorLog.
func (ErrorLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("source", "created_at"),
		index.Fields("task_id"),
	}
}
