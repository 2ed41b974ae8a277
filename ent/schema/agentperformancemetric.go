package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentPerformanceMetric holds the schema definition for append-only metric
// samples flushed from the performance monitor's in-memory buffer.
type AgentPerformanceMetric struct {
	ent.Schema
}

// Fields of the AgentPerformanceMetric.
func (AgentPerformanceMetric) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("metric_id").
			Unique().
			Immutable(),
		field.String("agent_id").
			Immutable().
			Comment("Always a UUID; the monitor maps free-form names via UUIDv5"),
		field.Enum("metric_type").
			Values("latency", "cost", "success_rate", "token_usage",
				"tool_usage", "error_rate", "queue_size", "memory_usage").
			Immutable(),
		field.Float("value").
			Immutable(),
		field.JSON("tags", map[string]string{}).
			Optional(),
		field.Time("recorded_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the AgentPerformanceMetric.
func (AgentPerformanceMetric) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id", "metric_type", "recorded_at"),
		index.Fields("recorded_at"),
	}
}
