package models

// RegisterWorkerInput contains the fields a worker reports on startup.
type RegisterWorkerInput struct {
	WorkerID     string         `json:"worker_id"`
	Kind         string         `json:"kind,omitempty"`
	Hostname     string         `json:"hostname"`
	PID          int            `json:"pid"`
	MaxTasks     int            `json:"max_tasks,omitempty"`
	Queues       []string       `json:"queues,omitempty"`
	Capabilities map[string]any `json:"capabilities,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}

// QueueSnapshot is a point-in-time sample of one broker queue used by the
// autoscaler.
type QueueSnapshot struct {
	QueueName   string  `json:"queue_name"`
	Depth       int     `json:"depth"`
	WorkerCount int     `json:"worker_count"`
	ActiveCount int     `json:"active_count"`
	Utilization float64 `json:"utilization"`
}
