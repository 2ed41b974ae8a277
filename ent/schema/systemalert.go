package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SystemAlert holds the schema definition for alerts raised by the
// performance monitor. Storage is the source of truth; the in-memory
// registry is a cache.
type SystemAlert struct {
	ent.Schema
}

// Fields of the SystemAlert.
func (SystemAlert) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("alert_id").
			Unique().
			Immutable(),
		field.String("title"),
		field.Text("message"),
		field.Enum("severity").
			Values("info", "warning", "error", "critical"),
		field.String("source").
			Comment("Originating subsystem tag, e.g. 'performance_monitor'"),
		field.String("source_id").
			Optional().
			Nillable(),
		field.JSON("metadata", map[string]any{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Bool("acknowledged").
			Default(false),
		field.Time("acknowledged_at").
			Optional().
			Nillable(),
		field.Bool("resolved").
			Default(false),
		field.Time("resolved_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the SystemAlert.
func (SystemAlert) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("severity"),
		index.Fields("resolved"),
		index.Fields("resolved", "resolved_at"),
	}
}
