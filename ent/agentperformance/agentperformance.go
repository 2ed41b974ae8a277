// Code generated by ent, DO NOT EDIT.

package agentperformance

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the agentperformance type in the database.
	Label = "agent_performance"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "rollup_id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldDay holds the string denoting the day field in the database.
	FieldDay = "day"
	// FieldTotalExecutions holds the string denoting the total_executions field in the database.
	FieldTotalExecutions = "total_executions"
	// FieldSuccessfulExecutions holds the string denoting the successful_executions field in the database.
	FieldSuccessfulExecutions = "successful_executions"
	// FieldFailedExecutions holds the string denoting the failed_executions field in the database.
	FieldFailedExecutions = "failed_executions"
	// FieldAvgLatencyMs holds the string denoting the avg_latency_ms field in the database.
	FieldAvgLatencyMs = "avg_latency_ms"
	// FieldTotalCost holds the string denoting the total_cost field in the database.
	FieldTotalCost = "total_cost"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the agentperformance in the database.
	Table = "agent_performance"
)

// Columns holds all SQL columns for agentperformance fields.
var Columns = []string{
	FieldID,
	FieldAgentID,
	FieldDay,
	FieldTotalExecutions,
	FieldSuccessfulExecutions,
	FieldFailedExecutions,
	FieldAvgLatencyMs,
	FieldTotalCost,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTotalExecutions holds the default value on creation for the "total_executions" field.
	DefaultTotalExecutions int64
	// DefaultSuccessfulExecutions holds the default value on creation for the "successful_executions" field.
	DefaultSuccessfulExecutions int64
	// DefaultFailedExecutions holds the default value on creation for the "failed_executions" field.
	DefaultFailedExecutions int64
	// DefaultAvgLatencyMs holds the default value on creation for the "avg_latency_ms" field.
	DefaultAvgLatencyMs float64
	// DefaultTotalCost holds the default value on creation for the "total_cost" field.
	DefaultTotalCost float64
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the AgentPerformance queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByDay orders the results by the day field.
func ByDay(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDay, opts...).ToFunc()
}

// ByTotalExecutions orders the results by the total_executions field.
func ByTotalExecutions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalExecutions, opts...).ToFunc()
}

// BySuccessfulExecutions orders the results by the successful_executions field.
func BySuccessfulExecutions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccessfulExecutions, opts...).ToFunc()
}

// ByFailedExecutions orders the results by the failed_executions field.
func ByFailedExecutions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailedExecutions, opts...).ToFunc()
}

// ByAvgLatencyMs orders the results by the avg_latency_ms field.
func ByAvgLatencyMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvgLatencyMs, opts...).ToFunc()
}

// ByTotalCost orders the results by the total_cost field.
func ByTotalCost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalCost, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
