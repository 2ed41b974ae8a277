package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for a root task submitted to the
// orchestrator.
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
		field.Text("description"),
		field.JSON("parameters", map[string]any{}).
			Optional(),
		field.Int("priority").
			Default(3).
			Comment("1–5, higher drains sooner"),
		field.String("decomposition_strategy").
			Default("hierarchical"),
		field.String("delegation_strategy").
			Default("capability_match"),
		field.Enum("distribution_mode").
			Values("local", "distributed", "hybrid").
			Default("local"),
		field.Enum("status").
			Values("submitted", "decomposing", "decomposed", "queued",
				"processing", "completed", "failed", "cancelled").
			Default("submitted"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.JSON("result", map[string]any{}).
			Optional(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("Processing replica, for orphan recovery"),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("subtasks", Subtask.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("decomposition", TaskDecomposition.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("status", "created_at"),
		index.Fields("status", "priority"),
	}
}
