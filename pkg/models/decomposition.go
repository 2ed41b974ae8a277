package models

import "time"

// SubtaskSpec is one node of a decomposition as produced by the LLM (and
// validated by the orchestrator). IDs are local to the decomposition.
type SubtaskSpec struct {
	ID                   string     `json:"id"`
	Description          string     `json:"description"`
	RequiredCapabilities []string   `json:"required_capabilities"`
	EstimatedComplexity  Complexity `json:"estimated_complexity"`
	Dependencies         []string   `json:"dependencies"`
}

// Decomposition bundles the validated subtask DAG with its computed
// properties.
type Decomposition struct {
	TaskID          string                `json:"task_id"`
	Description     string                `json:"description"`
	Strategy        DecompositionStrategy `json:"strategy"`
	Subtasks        []SubtaskSpec         `json:"subtasks"`
	TotalComplexity int                   `json:"total_complexity"`
	MaxParallelism  int                   `json:"max_parallelism"`
	CriticalPath    []string              `json:"critical_path"`
}

// DelegationPlan maps every subtask of a decomposition to an agent, with
// cost and duration estimates.
type DelegationPlan struct {
	TaskID            string             `json:"task_id"`
	Strategy          DelegationStrategy `json:"strategy"`
	Assignments       map[string]string  `json:"assignments"` // subtask local ID → agent UUID
	EstimatedCost     float64            `json:"estimated_cost"`
	EstimatedDuration time.Duration      `json:"estimated_duration"`
	LoadDistribution  map[string]int     `json:"load_distribution"` // agent UUID → subtask count
}

// SubtaskResult captures the outcome of one subtask execution.
type SubtaskResult struct {
	SubtaskID       string         `json:"subtask_id"`
	AgentID         string         `json:"agent_id"`
	Success         bool           `json:"success"`
	Result          map[string]any `json:"result,omitempty"`
	Error           string         `json:"error,omitempty"`
	ExecutionTimeMS int64          `json:"execution_time_ms"`
}

// TaskAggregate is the task-level summary compiled after DAG execution
// terminates.
type TaskAggregate struct {
	SubtasksTotal      int                       `json:"subtasks_total"`
	SubtasksSuccessful int                       `json:"subtasks_successful"`
	SubtasksFailed     int                       `json:"subtasks_failed"`
	SuccessRate        float64                   `json:"success_rate"`
	FailedSubtasks     []string                  `json:"failed_subtasks"`
	ResultsBySubtask   map[string]*SubtaskResult `json:"results_by_subtask"`
	// CombinedResults is populated only when every subtask succeeded and
	// every result carries a "result" key; ordered topologically.
	CombinedResults []any `json:"combined_results,omitempty"`
}
