package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// LeaderElection holds the schema definition for leader lease records.
// One row per coordination role; claims are compare-and-set on term + expiry.
type LeaderElection struct {
	ent.Schema
}

// Annotations of the LeaderElection.
func (LeaderElection) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "leader_election"},
	}
}

// Fields of the LeaderElection.
func (LeaderElection) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("role").
			Unique().
			Immutable().
			Comment("Coordination role name, e.g. 'beat_scheduler'"),
		field.String("node_id"),
		field.Int64("term").
			Default(0).
			Comment("Monotonically increasing; bumped on every claim"),
		field.Time("lease_expires_at"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
