// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Agent is the predicate function for agent builders.
type Agent func(*sql.Selector)

// AgentPerformance is the predicate function for agentperformance builders.
type AgentPerformance func(*sql.Selector)

// AgentPerformanceMetric is the predicate function for agentperformancemetric builders.
type AgentPerformanceMetric func(*sql.Selector)

// ErrorLog is the predicate function for errorlog builders.
type ErrorLog func(*sql.Selector)

// LeaderElection is the predicate function for leaderelection builders.
type LeaderElection func(*sql.Selector)

// LeaderHistory is the predicate function for leaderhistory builders.
type LeaderHistory func(*sql.Selector)

// ManualTask is the predicate function for manualtask builders.
type ManualTask func(*sql.Selector)

// ScalingDecision is the predicate function for scalingdecision builders.
type ScalingDecision func(*sql.Selector)

// Subtask is the predicate function for subtask builders.
type Subtask func(*sql.Selector)

// SystemAlert is the predicate function for systemalert builders.
type SystemAlert func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// TaskDecomposition is the predicate function for taskdecomposition builders.
type TaskDecomposition func(*sql.Selector)

// TaskQueueStat is the predicate function for taskqueuestat builders.
type TaskQueueStat func(*sql.Selector)

// TaskWorker is the predicate function for taskworker builders.
type TaskWorker func(*sql.Selector)

// WorkerEvent is the predicate function for workerevent builders.
type WorkerEvent func(*sql.Selector)
