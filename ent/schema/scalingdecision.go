package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ScalingDecision holds the schema definition for autoscaling proposals.
// The core only proposes; an external actuator flips applied to true.
type ScalingDecision struct {
	ent.Schema
}

// Fields of the ScalingDecision.
func (ScalingDecision) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("decision_id").
			Unique().
			Immutable(),
		field.Enum("decision").
			Values("scale_up", "scale_down").
			Immutable(),
		field.String("queue_name").
			Immutable(),
		field.Int("current_workers").
			Immutable(),
		field.Int("target_workers").
			Immutable(),
		field.String("reason").
			Immutable(),
		field.JSON("metrics", map[string]any{}).
			Optional(),
		field.Bool("applied").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ScalingDecision.
func (ScalingDecision) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("queue_name", "created_at"),
		index.Fields("applied"),
	}
}
