// Code generated by ent, DO NOT EDIT.

package taskqueuestat

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the taskqueuestat type in the database.
	Label = "task_queue_stat"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "stat_id"
	// FieldQueueName holds the string denoting the queue_name field in the database.
	FieldQueueName = "queue_name"
	// FieldWorkerCount holds the string denoting the worker_count field in the database.
	FieldWorkerCount = "worker_count"
	// FieldQueuedCount holds the string denoting the queued_count field in the database.
	FieldQueuedCount = "queued_count"
	// FieldActiveCount holds the string denoting the active_count field in the database.
	FieldActiveCount = "active_count"
	// FieldUtilization holds the string denoting the utilization field in the database.
	FieldUtilization = "utilization"
	// FieldSampledAt holds the string denoting the sampled_at field in the database.
	FieldSampledAt = "sampled_at"
	// Table holds the table name of the taskqueuestat in the database.
	Table = "task_queue_stats"
)

// Columns holds all SQL columns for taskqueuestat fields.
var Columns = []string{
	FieldID,
	FieldQueueName,
	FieldWorkerCount,
	FieldQueuedCount,
	FieldActiveCount,
	FieldUtilization,
	FieldSampledAt,
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
	// DefaultSampledAt holds the default value on creation for the "sampled_at" field.
	DefaultSampledAt func() time.Time
)

// OrderOption defines the ordering options for the TaskQueueStat queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByQueueName orders the results by the queue_name field.
func ByQueueName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQueueName, opts...).ToFunc()
}

// ByWorkerCount orders the results by the worker_count field.
func ByWorkerCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkerCount, opts...).ToFunc()
}

// ByQueuedCount orders the results by the queued_count field.
func ByQueuedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQueuedCount, opts...).ToFunc()
}

// ByActiveCount orders the results by the active_count field.
func ByActiveCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActiveCount, opts...).ToFunc()
}

// ByUtilization orders the results by the utilization field.
func ByUtilization(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUtilization, opts...).ToFunc()
}

// BySampledAt orders the results by the sampled_at field.
func BySampledAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSampledAt, opts...).ToFunc()
}
