package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ManualTask holds the schema definition for conditions requiring human
// intervention. Repeated triggers for the same (source_system, source_id)
// collapse to one open record.
type ManualTask struct {
	ent.Schema
}

// Fields of the ManualTask.
func (ManualTask) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("manual_task_id").
			Unique().
			Immutable(),
		field.String("category").
			Immutable(),
		field.String("title"),
		field.Text("description"),
		field.Int("priority").
			Default(3),
		field.String("source_system").
			Immutable(),
		field.String("source_id").
			Immutable(),
		field.Enum("status").
			Values("open", "resolved").
			Default("open"),
		field.JSON("metadata", map[string]any{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("resolved_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the ManualTask.
// Open-record uniqueness per (source_system, source_id) is enforced by a
// partial unique index created in pkg/database/migrations.go.
func (ManualTask) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("source_system", "source_id"),
		index.Fields("status"),
	}
}
