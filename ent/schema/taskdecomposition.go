package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// TaskDecomposition holds the schema definition for the decomposition record
// produced once per task: the DAG summary, not the subtasks themselves.
type TaskDecomposition struct {
	ent.Schema
}

// Fields of the TaskDecomposition.
func (TaskDecomposition) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("decomposition_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Unique().
			Immutable(),
		field.Text("description").
			Comment("Original task description at decomposition time"),
		field.String("strategy"),
		field.Int("total_complexity"),
		field.Int("max_parallelism"),
		field.JSON("critical_path", []string{}).
			Default([]string{}).
			Comment("Longest path through the DAG; empty when a cycle was detected"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the TaskDecomposition.
func (TaskDecomposition) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("decomposition").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}
