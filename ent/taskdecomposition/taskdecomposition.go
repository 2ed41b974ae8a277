// Code generated by ent, DO NOT EDIT.

package taskdecomposition

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the taskdecomposition type in the database.
	Label = "task_decomposition"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "decomposition_id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldStrategy holds the string denoting the strategy field in the database.
	FieldStrategy = "strategy"
	// FieldTotalComplexity holds the string denoting the total_complexity field in the database.
	FieldTotalComplexity = "total_complexity"
	// FieldMaxParallelism holds the string denoting the max_parallelism field in the database.
	FieldMaxParallelism = "max_parallelism"
	// FieldCriticalPath holds the string denoting the critical_path field in the database.
	FieldCriticalPath = "critical_path"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeTask holds the string denoting the task edge name in mutations.
	EdgeTask = "task"
	// TaskFieldID holds the string denoting the ID field of the Task.
	TaskFieldID = "task_id"
	// Table holds the table name of the taskdecomposition in the database.
	Table = "task_decompositions"
	// TaskTable is the table that holds the task relation/edge.
	TaskTable = "task_decompositions"
	// TaskInverseTable is the table name for the Task entity.
	// It exists in this package in order to avoid circular dependency with the "task" package.
	TaskInverseTable = "tasks"
	// TaskColumn is the table column denoting the task relation/edge.
	TaskColumn = "task_id"
)

// Columns holds all SQL columns for taskdecomposition fields.
var Columns = []string{
	FieldID,
	FieldTaskID,
	FieldDescription,
	FieldStrategy,
	FieldTotalComplexity,
	FieldMaxParallelism,
	FieldCriticalPath,
	FieldCreatedAt,
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
	// DefaultCriticalPath holds the default value on creation for the "critical_path" field.
	DefaultCriticalPath []string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the TaskDecomposition queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByStrategy orders the results by the strategy field.
func ByStrategy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStrategy, opts...).ToFunc()
}

// ByTotalComplexity orders the results by the total_complexity field.
func ByTotalComplexity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalComplexity, opts...).ToFunc()
}

// ByMaxParallelism orders the results by the max_parallelism field.
func ByMaxParallelism(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxParallelism, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByTaskField orders the results by task field.
func ByTaskField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTaskStep(), sql.OrderByField(field, opts...))
	}
}
func newTaskStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TaskInverseTable, TaskFieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, TaskTable, TaskColumn),
	)
}
