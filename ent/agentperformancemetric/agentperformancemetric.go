// Code generated by ent, DO NOT EDIT.

package agentperformancemetric

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the agentperformancemetric type in the database.
	Label = "agent_performance_metric"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "metric_id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldMetricType holds the string denoting the metric_type field in the database.
	FieldMetricType = "metric_type"
	// FieldValue holds the string denoting the value field in the database.
	FieldValue = "value"
	// FieldTags holds the string denoting the tags field in the database.
	FieldTags = "tags"
	// FieldRecordedAt holds the string denoting the recorded_at field in the database.
	FieldRecordedAt = "recorded_at"
	// Table holds the table name of the agentperformancemetric in the database.
	Table = "agent_performance_metrics"
)

// Columns holds all SQL columns for agentperformancemetric fields.
var Columns = []string{
	FieldID,
	FieldAgentID,
	FieldMetricType,
	FieldValue,
	FieldTags,
	FieldRecordedAt,
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
	// DefaultRecordedAt holds the default value on creation for the "recorded_at" field.
	DefaultRecordedAt func() time.Time
)

// MetricType defines the type for the "metric_type" enum field.
type MetricType string

// MetricType values.
const (
	MetricTypeLatency     MetricType = "latency"
	MetricTypeCost        MetricType = "cost"
	MetricTypeSuccessRate MetricType = "success_rate"
	MetricTypeTokenUsage  MetricType = "token_usage"
	MetricTypeToolUsage   MetricType = "tool_usage"
	MetricTypeErrorRate   MetricType = "error_rate"
	MetricTypeQueueSize   MetricType = "queue_size"
	MetricTypeMemoryUsage MetricType = "memory_usage"
)

func (mt MetricType) String() string {
	return string(mt)
}

// MetricTypeValidator is a validator for the "metric_type" field enum values. It is called by the builders before save.
func MetricTypeValidator(mt MetricType) error {
	switch mt {
	case MetricTypeLatency, MetricTypeCost, MetricTypeSuccessRate, MetricTypeTokenUsage, MetricTypeToolUsage, MetricTypeErrorRate, MetricTypeQueueSize, MetricTypeMemoryUsage:
		return nil
	default:
		return fmt.Errorf("agentperformancemetric: invalid enum value for metric_type field: %q", mt)
	}
}

// OrderOption defines the ordering options for the AgentPerformanceMetric queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByMetricType orders the results by the metric_type field.
func ByMetricType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMetricType, opts...).ToFunc()
}

// ByValue orders the results by the value field.
func ByValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValue, opts...).ToFunc()
}

// ByRecordedAt orders the results by the recorded_at field.
func ByRecordedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecordedAt, opts...).ToFunc()
}
