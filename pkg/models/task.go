package models

import "time"

// SubmitTaskInput contains the domain-level data needed to submit a task.
// Transformed from the HTTP request by the handler; zero values are filled
// with defaults by the task service.
type SubmitTaskInput struct {
	Description           string                `json:"description"`
	Parameters            map[string]any        `json:"parameters,omitempty"`
	Priority              int                   `json:"priority,omitempty"`
	DecompositionStrategy DecompositionStrategy `json:"decomposition_strategy,omitempty"`
	DelegationStrategy    DelegationStrategy    `json:"delegation_strategy,omitempty"`
	DistributionMode      DistributionMode      `json:"distribution_mode,omitempty"`
}

// TaskFilters contains filtering options for listing tasks.
type TaskFilters struct {
	Status string
	Limit  int
	Offset int
}

// SubtaskStatusRow is one line of the per-subtask table returned by the
// task status endpoint.
type SubtaskStatusRow struct {
	LocalID     string         `json:"id"`
	Description string         `json:"description"`
	Status      string         `json:"status"`
	AgentID     string         `json:"agent_id,omitempty"`
	Result      map[string]any `json:"result,omitempty"`
	Error       string         `json:"error,omitempty"`
}

// TaskStatus is the full status view of a task, including subtask progress.
type TaskStatus struct {
	TaskID          string             `json:"task_id"`
	Description     string             `json:"description"`
	Status          string             `json:"status"`
	Priority        int                `json:"priority"`
	CreatedAt       time.Time          `json:"created_at"`
	StartedAt       *time.Time         `json:"started_at,omitempty"`
	CompletedAt     *time.Time         `json:"completed_at,omitempty"`
	Subtasks        []SubtaskStatusRow `json:"subtasks"`
	ProgressPercent float64            `json:"progress_percent"`
	Result          map[string]any     `json:"result,omitempty"`
	Error           string             `json:"error,omitempty"`
}
