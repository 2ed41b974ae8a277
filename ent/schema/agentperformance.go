package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentPerformance holds the schema definition for the per-agent daily
// execution rollup maintained by RecordAgentExecution.
type AgentPerformance struct {
	ent.Schema
}

// Fields of the AgentPerformance.
func (AgentPerformance) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("rollup_id").
			Unique().
			Immutable(),
		field.String("agent_id").
			Immutable(),
		field.Time("day").
			Immutable().
			Comment("UTC midnight of the rollup day"),
		field.Int64("total_executions").
			Default(0),
		field.Int64("successful_executions").
			Default(0),
		field.Int64("failed_executions").
			Default(0),
		field.Float("avg_latency_ms").
			Default(0),
		field.Float("total_cost").
			Default(0),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Annotations of the AgentPerformance.
func (AgentPerformance) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "agent_performance"},
	}
}

// Indexes of the AgentPerformance.
func (AgentPerformance) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id", "day").
			Unique(),
	}
}
