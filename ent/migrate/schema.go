// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentsColumns holds the columns for the "agents" table.
	AgentsColumns = []*schema.Column{
		{Name: "agent_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"orchestrator", "domain", "tool", "supervisor", "worker"}},
		{Name: "system_prompt", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "capabilities", Type: field.TypeJSON},
		{Name: "domain", Type: field.TypeString, Nullable: true},
		{Name: "supervisor_id", Type: field.TypeString, Nullable: true},
		{Name: "config", Type: field.TypeJSON, Nullable: true},
		{Name: "allow_delegation", Type: field.TypeBool, Default: false},
		{Name: "max_iterations", Type: field.TypeInt, Default: 10},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"initializing", "idle", "processing", "waiting", "error", "stopped"}, Default: "initializing"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_activity_at", Type: field.TypeTime},
	}
	// AgentsTable holds the schema information for the "agents" table.
	AgentsTable = &schema.Table{
		Name:       "agents",
		Columns:    AgentsColumns,
		PrimaryKey: []*schema.Column{AgentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agent_kind",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[2]},
			},
			{
				Name:    "agent_status",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[10]},
			},
			{
				Name:    "agent_domain",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[5]},
			},
		},
	}
	// AgentPerformanceColumns holds the columns for the "agent_performance" table.
	AgentPerformanceColumns = []*schema.Column{
		{Name: "rollup_id", Type: field.TypeString, Unique: true},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "day", Type: field.TypeTime},
		{Name: "total_executions", Type: field.TypeInt64, Default: 0},
		{Name: "successful_executions", Type: field.TypeInt64, Default: 0},
		{Name: "failed_executions", Type: field.TypeInt64, Default: 0},
		{Name: "avg_latency_ms", Type: field.TypeFloat64, Default: 0},
		{Name: "total_cost", Type: field.TypeFloat64, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AgentPerformanceTable holds the schema information for the "agent_performance" table.
	AgentPerformanceTable = &schema.Table{
		Name:       "agent_performance",
		Columns:    AgentPerformanceColumns,
		PrimaryKey: []*schema.Column{AgentPerformanceColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agentperformance_agent_id_day",
				Unique:  true,
				Columns: []*schema.Column{AgentPerformanceColumns[1], AgentPerformanceColumns[2]},
			},
		},
	}
	// AgentPerformanceMetricsColumns holds the columns for the "agent_performance_metrics" table.
	AgentPerformanceMetricsColumns = []*schema.Column{
		{Name: "metric_id", Type: field.TypeString, Unique: true},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "metric_type", Type: field.TypeEnum, Enums: []string{"latency", "cost", "success_rate", "token_usage", "tool_usage", "error_rate", "queue_size", "memory_usage"}},
		{Name: "value", Type: field.TypeFloat64},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "recorded_at", Type: field.TypeTime},
	}
	// AgentPerformanceMetricsTable holds the schema information for the "agent_performance_metrics" table.
	AgentPerformanceMetricsTable = &schema.Table{
		Name:       "agent_performance_metrics",
		Columns:    AgentPerformanceMetricsColumns,
		PrimaryKey: []*schema.Column{AgentPerformanceMetricsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agentperformancemetric_agent_id_metric_type_recorded_at",
				Unique:  false,
				Columns: []*schema.Column{AgentPerformanceMetricsColumns[1], AgentPerformanceMetricsColumns[2], AgentPerformanceMetricsColumns[5]},
			},
			{
				Name:    "agentperformancemetric_recorded_at",
				Unique:  false,
				Columns: []*schema.Column{AgentPerformanceMetricsColumns[5]},
			},
		},
	}
	// ErrorLogsColumns holds the columns for the "error_logs" table.
	ErrorLogsColumns = []*schema.Column{
		{Name: "error_id", Type: field.TypeString, Unique: true},
		{Name: "source", Type: field.TypeString},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "details", Type: field.TypeJSON, Nullable: true},
		{Name: "task_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ErrorLogsTable holds the schema information for the "error_logs" table.
	ErrorLogsTable = &schema.Table{
		Name:       "error_logs",
		Columns:    ErrorLogsColumns,
		PrimaryKey: []*schema.Column{ErrorLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "errorlog_source_created_at",
				Unique:  false,
				Columns: []*schema.Column{ErrorLogsColumns[1], ErrorLogsColumns[5]},
			},
			{
				Name:    "errorlog_task_id",
				Unique:  false,
				Columns: []*schema.Column{ErrorLogsColumns[4]},
			},
		},
	}
	// LeaderElectionColumns holds the columns for the "leader_election" table.
	LeaderElectionColumns = []*schema.Column{
		{Name: "role", Type: field.TypeString, Unique: true},
		{Name: "node_id", Type: field.TypeString},
		{Name: "term", Type: field.TypeInt64, Default: 0},
		{Name: "lease_expires_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// LeaderElectionTable holds the schema information for the "leader_election" table.
	LeaderElectionTable = &schema.Table{
		Name:       "leader_election",
		Columns:    LeaderElectionColumns,
		PrimaryKey: []*schema.Column{LeaderElectionColumns[0]},
	}
	// LeaderHistoryColumns holds the columns for the "leader_history" table.
	LeaderHistoryColumns = []*schema.Column{
		{Name: "history_id", Type: field.TypeString, Unique: true},
		{Name: "role", Type: field.TypeString},
		{Name: "old_node_id", Type: field.TypeString, Nullable: true},
		{Name: "new_node_id", Type: field.TypeString},
		{Name: "term", Type: field.TypeInt64},
		{Name: "reason", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LeaderHistoryTable holds the schema information for the "leader_history" table.
	LeaderHistoryTable = &schema.Table{
		Name:       "leader_history",
		Columns:    LeaderHistoryColumns,
		PrimaryKey: []*schema.Column{LeaderHistoryColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "leaderhistory_role_created_at",
				Unique:  false,
				Columns: []*schema.Column{LeaderHistoryColumns[1], LeaderHistoryColumns[6]},
			},
		},
	}
	// ManualTasksColumns holds the columns for the "manual_tasks" table.
	ManualTasksColumns = []*schema.Column{
		{Name: "manual_task_id", Type: field.TypeString, Unique: true},
		{Name: "category", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "priority", Type: field.TypeInt, Default: 3},
		{Name: "source_system", Type: field.TypeString},
		{Name: "source_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"open", "resolved"}, Default: "open"},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
	}
	// ManualTasksTable holds the schema information for the "manual_tasks" table.
	ManualTasksTable = &schema.Table{
		Name:       "manual_tasks",
		Columns:    ManualTasksColumns,
		PrimaryKey: []*schema.Column{ManualTasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "manualtask_source_system_source_id",
				Unique:  false,
				Columns: []*schema.Column{ManualTasksColumns[5], ManualTasksColumns[6]},
			},
			{
				Name:    "manualtask_status",
				Unique:  false,
				Columns: []*schema.Column{ManualTasksColumns[7]},
			},
		},
	}
	// ScalingDecisionsColumns holds the columns for the "scaling_decisions" table.
	ScalingDecisionsColumns = []*schema.Column{
		{Name: "decision_id", Type: field.TypeString, Unique: true},
		{Name: "decision", Type: field.TypeEnum, Enums: []string{"scale_up", "scale_down"}},
		{Name: "queue_name", Type: field.TypeString},
		{Name: "current_workers", Type: field.TypeInt},
		{Name: "target_workers", Type: field.TypeInt},
		{Name: "reason", Type: field.TypeString},
		{Name: "metrics", Type: field.TypeJSON, Nullable: true},
		{Name: "applied", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ScalingDecisionsTable holds the schema information for the "scaling_decisions" table.
	ScalingDecisionsTable = &schema.Table{
		Name:       "scaling_decisions",
		Columns:    ScalingDecisionsColumns,
		PrimaryKey: []*schema.Column{ScalingDecisionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "scalingdecision_queue_name_created_at",
				Unique:  false,
				Columns: []*schema.Column{ScalingDecisionsColumns[2], ScalingDecisionsColumns[8]},
			},
			{
				Name:    "scalingdecision_applied",
				Unique:  false,
				Columns: []*schema.Column{ScalingDecisionsColumns[7]},
			},
		},
	}
	// SubtasksColumns holds the columns for the "subtasks" table.
	SubtasksColumns = []*schema.Column{
		{Name: "subtask_id", Type: field.TypeString, Unique: true},
		{Name: "local_id", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "required_capabilities", Type: field.TypeJSON},
		{Name: "estimated_complexity", Type: field.TypeEnum, Enums: []string{"low", "medium", "high"}, Default: "medium"},
		{Name: "depends_on", Type: field.TypeJSON},
		{Name: "agent_id", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "assigned", "in_progress", "completed", "failed"}, Default: "pending"},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "execution_time_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString},
	}
	// SubtasksTable holds the schema information for the "subtasks" table.
	SubtasksTable = &schema.Table{
		Name:       "subtasks",
		Columns:    SubtasksColumns,
		PrimaryKey: []*schema.Column{SubtasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "subtasks_tasks_subtasks",
				Columns:    []*schema.Column{SubtasksColumns[15]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "subtask_task_id_local_id",
				Unique:  true,
				Columns: []*schema.Column{SubtasksColumns[15], SubtasksColumns[1]},
			},
			{
				Name:    "subtask_task_id_status",
				Unique:  false,
				Columns: []*schema.Column{SubtasksColumns[15], SubtasksColumns[7]},
			},
			{
				Name:    "subtask_agent_id",
				Unique:  false,
				Columns: []*schema.Column{SubtasksColumns[6]},
			},
		},
	}
	// SystemAlertsColumns holds the columns for the "system_alerts" table.
	SystemAlertsColumns = []*schema.Column{
		{Name: "alert_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"info", "warning", "error", "critical"}},
		{Name: "source", Type: field.TypeString},
		{Name: "source_id", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "acknowledged", Type: field.TypeBool, Default: false},
		{Name: "acknowledged_at", Type: field.TypeTime, Nullable: true},
		{Name: "resolved", Type: field.TypeBool, Default: false},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
	}
	// SystemAlertsTable holds the schema information for the "system_alerts" table.
	SystemAlertsTable = &schema.Table{
		Name:       "system_alerts",
		Columns:    SystemAlertsColumns,
		PrimaryKey: []*schema.Column{SystemAlertsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "systemalert_severity",
				Unique:  false,
				Columns: []*schema.Column{SystemAlertsColumns[3]},
			},
			{
				Name:    "systemalert_resolved",
				Unique:  false,
				Columns: []*schema.Column{SystemAlertsColumns[10]},
			},
			{
				Name:    "systemalert_resolved_resolved_at",
				Unique:  false,
				Columns: []*schema.Column{SystemAlertsColumns[10], SystemAlertsColumns[11]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "parameters", Type: field.TypeJSON, Nullable: true},
		{Name: "priority", Type: field.TypeInt, Default: 3},
		{Name: "decomposition_strategy", Type: field.TypeString, Default: "hierarchical"},
		{Name: "delegation_strategy", Type: field.TypeString, Default: "capability_match"},
		{Name: "distribution_mode", Type: field.TypeEnum, Enums: []string{"local", "distributed", "hybrid"}, Default: "local"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"submitted", "decomposing", "decomposed", "queued", "processing", "completed", "failed", "cancelled"}, Default: "submitted"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "task_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[7]},
			},
			{
				Name:    "task_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[7], TasksColumns[8]},
			},
			{
				Name:    "task_status_priority",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[7], TasksColumns[3]},
			},
		},
	}
	// TaskDecompositionsColumns holds the columns for the "task_decompositions" table.
	TaskDecompositionsColumns = []*schema.Column{
		{Name: "decomposition_id", Type: field.TypeString, Unique: true},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "strategy", Type: field.TypeString},
		{Name: "total_complexity", Type: field.TypeInt},
		{Name: "max_parallelism", Type: field.TypeInt},
		{Name: "critical_path", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString, Unique: true},
	}
	// TaskDecompositionsTable holds the schema information for the "task_decompositions" table.
	TaskDecompositionsTable = &schema.Table{
		Name:       "task_decompositions",
		Columns:    TaskDecompositionsColumns,
		PrimaryKey: []*schema.Column{TaskDecompositionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "task_decompositions_tasks_decomposition",
				Columns:    []*schema.Column{TaskDecompositionsColumns[7]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// TaskQueueStatsColumns holds the columns for the "task_queue_stats" table.
	TaskQueueStatsColumns = []*schema.Column{
		{Name: "stat_id", Type: field.TypeString, Unique: true},
		{Name: "queue_name", Type: field.TypeString},
		{Name: "worker_count", Type: field.TypeInt},
		{Name: "queued_count", Type: field.TypeInt},
		{Name: "active_count", Type: field.TypeInt},
		{Name: "utilization", Type: field.TypeFloat64},
		{Name: "sampled_at", Type: field.TypeTime},
	}
	// TaskQueueStatsTable holds the schema information for the "task_queue_stats" table.
	TaskQueueStatsTable = &schema.Table{
		Name:       "task_queue_stats",
		Columns:    TaskQueueStatsColumns,
		PrimaryKey: []*schema.Column{TaskQueueStatsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "taskqueuestat_queue_name_sampled_at",
				Unique:  false,
				Columns: []*schema.Column{TaskQueueStatsColumns[1], TaskQueueStatsColumns[6]},
			},
			{
				Name:    "taskqueuestat_sampled_at",
				Unique:  false,
				Columns: []*schema.Column{TaskQueueStatsColumns[6]},
			},
		},
	}
	// TaskWorkersColumns holds the columns for the "task_workers" table.
	TaskWorkersColumns = []*schema.Column{
		{Name: "worker_id", Type: field.TypeString, Unique: true},
		{Name: "kind", Type: field.TypeString, Default: "general"},
		{Name: "hostname", Type: field.TypeString},
		{Name: "pid", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"online", "offline", "busy", "idle", "error", "stale"}, Default: "online"},
		{Name: "max_tasks", Type: field.TypeInt, Default: 5},
		{Name: "active_tasks", Type: field.TypeInt, Default: 0},
		{Name: "queues", Type: field.TypeJSON},
		{Name: "capabilities", Type: field.TypeJSON, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "last_heartbeat", Type: field.TypeTime},
		{Name: "registered_at", Type: field.TypeTime},
	}
	// TaskWorkersTable holds the schema information for the "task_workers" table.
	TaskWorkersTable = &schema.Table{
		Name:       "task_workers",
		Columns:    TaskWorkersColumns,
		PrimaryKey: []*schema.Column{TaskWorkersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "taskworker_status",
				Unique:  false,
				Columns: []*schema.Column{TaskWorkersColumns[4]},
			},
			{
				Name:    "taskworker_status_last_heartbeat",
				Unique:  false,
				Columns: []*schema.Column{TaskWorkersColumns[4], TaskWorkersColumns[10]},
			},
		},
	}
	// WorkerEventsColumns holds the columns for the "worker_events" table.
	WorkerEventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "worker_id", Type: field.TypeString},
		{Name: "event_type", Type: field.TypeString},
		{Name: "details", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// WorkerEventsTable holds the schema information for the "worker_events" table.
	WorkerEventsTable = &schema.Table{
		Name:       "worker_events",
		Columns:    WorkerEventsColumns,
		PrimaryKey: []*schema.Column{WorkerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "workerevent_worker_id",
				Unique:  false,
				Columns: []*schema.Column{WorkerEventsColumns[1]},
			},
			{
				Name:    "workerevent_created_at",
				Unique:  false,
				Columns: []*schema.Column{WorkerEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentsTable,
		AgentPerformanceTable,
		AgentPerformanceMetricsTable,
		ErrorLogsTable,
		LeaderElectionTable,
		LeaderHistoryTable,
		ManualTasksTable,
		ScalingDecisionsTable,
		SubtasksTable,
		SystemAlertsTable,
		TasksTable,
		TaskDecompositionsTable,
		TaskQueueStatsTable,
		TaskWorkersTable,
		WorkerEventsTable,
	}
)

func init() {
	AgentPerformanceTable.Annotation = &entsql.Annotation{
		Table: "agent_performance",
	}
	LeaderElectionTable.Annotation = &entsql.Annotation{
		Table: "leader_election",
	}
	LeaderHistoryTable.Annotation = &entsql.Annotation{
		Table: "leader_history",
	}
	SubtasksTable.ForeignKeys[0].RefTable = TasksTable
	TaskDecompositionsTable.ForeignKeys[0].RefTable = TasksTable
}
