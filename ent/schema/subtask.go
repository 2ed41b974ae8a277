package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Subtask holds the schema definition for a single node of a task
// decomposition. The local_id is unique only within its parent task.
type Subtask struct {
	ent.Schema
}

// Fields of the Subtask.
func (Subtask) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("subtask_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.String("local_id").
			Immutable().
			Comment("Decomposition-local identifier, e.g. 'subtask_1'"),
		field.Text("description"),
		field.JSON("required_capabilities", []string{}).
			Default([]string{}),
		field.Enum("estimated_complexity").
			Values("low", "medium", "high").
			Default("medium"),
		field.JSON("depends_on", []string{}).
			Default([]string{}).
			Comment("local_ids of subtasks in the same decomposition"),
		field.String("agent_id").
			Optional().
			Nillable(),
		field.Enum("status").
			Values("pending", "assigned", "in_progress", "completed", "failed").
			Default("pending"),
		field.JSON("result", map[string]any{}).
			Optional(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int64("execution_time_ms").
			Optional().
			Nillable(),
		field.Int("retry_count").
			Default(0).
			Comment("Incremented when a distributed worker requeues the subtask"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Subtask.
func (Subtask) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("subtasks").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Subtask.
func (Subtask) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "local_id").
			Unique(),
		index.Fields("task_id", "status"),
		index.Fields("agent_id"),
	}
}
