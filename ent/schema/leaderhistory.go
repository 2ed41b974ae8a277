package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LeaderHistory holds the schema definition for leadership transitions.
// Every successful claim appends exactly one row.
type LeaderHistory struct {
	ent.Schema
}

// Annotations of the LeaderHistory.
func (LeaderHistory) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "leader_history"},
	}
}

// Fields of the LeaderHistory.
func (LeaderHistory) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("history_id").
			Unique().
			Immutable(),
		field.String("role").
			Immutable(),
		field.String("old_node_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("new_node_id").
			Immutable(),
		field.Int64("term").
			Immutable(),
		field.String("reason").
			Immutable().
			Comment("lease_expired | initial | renewed_by_holder"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the LeaderHistory.
func (LeaderHistory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("role", "created_at"),
	}
}
