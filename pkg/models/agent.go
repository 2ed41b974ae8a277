package models

// AgentDefinition contains the declared attributes of a new agent.
type AgentDefinition struct {
	Name            string         `json:"name"`
	Kind            string         `json:"kind"`
	SystemPrompt    string         `json:"system_prompt,omitempty"`
	Capabilities    []string       `json:"capabilities"`
	Domain          string         `json:"domain,omitempty"`
	SupervisorID    *string        `json:"supervisor_id,omitempty"`
	Config          map[string]any `json:"config,omitempty"`
	AllowDelegation bool           `json:"allow_delegation"`
	MaxIterations   int            `json:"max_iterations,omitempty"`
}

// AgentPatch contains the mutable fields of an agent. Nil pointers leave the
// field untouched. ID and kind are immutable.
type AgentPatch struct {
	SystemPrompt    *string        `json:"system_prompt,omitempty"`
	Capabilities    []string       `json:"capabilities,omitempty"`
	Domain          *string        `json:"domain,omitempty"`
	SupervisorID    *string        `json:"supervisor_id,omitempty"`
	Config          map[string]any `json:"config,omitempty"`
	AllowDelegation *bool          `json:"allow_delegation,omitempty"`
	MaxIterations   *int           `json:"max_iterations,omitempty"`
}

// AgentFilters contains filtering options for listing agents.
type AgentFilters struct {
	Kind       string
	Status     string
	Capability string
	Domain     string
}
