package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Agent holds the schema definition for the Agent entity.
// The registry is the only component that mutates agent rows; everything
// else references agents by UUID.
type Agent struct {
	ent.Schema
}

// Fields of the Agent.
func (Agent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_id").
			Unique().
			Immutable(),
		field.String("name").
			Unique().
			Comment("Human-readable name, unique across the registry"),
		field.Enum("kind").
			Values("orchestrator", "domain", "tool", "supervisor", "worker").
			Immutable(),
		field.Text("system_prompt").
			Optional(),
		field.JSON("capabilities", []string{}).
			Default([]string{}),
		field.String("domain").
			Optional().
			Comment("Domain tag used by the domain_expert selection strategy"),
		field.String("supervisor_id").
			Optional().
			Nillable().
			Comment("Parent agent in the supervision forest"),
		field.JSON("config", map[string]any{}).
			Optional(),
		field.Bool("allow_delegation").
			Default(false),
		field.Int("max_iterations").
			Default(10),
		field.Enum("status").
			Values("initializing", "idle", "processing", "waiting", "error", "stopped").
			Default("initializing"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_activity_at").
			Default(time.Now),
	}
}

// Indexes of the Agent.
func (Agent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kind"),
		index.Fields("status"),
		index.Fields("domain"),
	}
}
