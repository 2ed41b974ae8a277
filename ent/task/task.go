// Code generated by ent, DO NOT EDIT.

package task

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the task type in the database.
	Label = "task"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "task_id"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldParameters holds the string denoting the parameters field in the database.
	FieldParameters = "parameters"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldDecompositionStrategy holds the string denoting the decomposition_strategy field in the database.
	FieldDecompositionStrategy = "decomposition_strategy"
	// FieldDelegationStrategy holds the string denoting the delegation_strategy field in the database.
	FieldDelegationStrategy = "delegation_strategy"
	// FieldDistributionMode holds the string denoting the distribution_mode field in the database.
	FieldDistributionMode = "distribution_mode"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldResult holds the string denoting the result field in the database.
	FieldResult = "result"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldPodID holds the string denoting the pod_id field in the database.
	FieldPodID = "pod_id"
	// EdgeSubtasks holds the string denoting the subtasks edge name in mutations.
	EdgeSubtasks = "subtasks"
	// EdgeDecomposition holds the string denoting the decomposition edge name in mutations.
	EdgeDecomposition = "decomposition"
	// SubtaskFieldID holds the string denoting the ID field of the Subtask.
	SubtaskFieldID = "subtask_id"
	// TaskDecompositionFieldID holds the string denoting the ID field of the TaskDecomposition.
	TaskDecompositionFieldID = "decomposition_id"
	// Table holds the table name of the task in the database.
	Table = "tasks"
	// SubtasksTable is the table that holds the subtasks relation/edge.
	SubtasksTable = "subtasks"
	// SubtasksInverseTable is the table name for the Subtask entity.
	// It exists in this package in order to avoid circular dependency with the "subtask" package.
	SubtasksInverseTable = "subtasks"
	// SubtasksColumn is the table column denoting the subtasks relation/edge.
	SubtasksColumn = "task_id"
	// DecompositionTable is the table that holds the decomposition relation/edge.
	DecompositionTable = "task_decompositions"
	// DecompositionInverseTable is the table name for the TaskDecomposition entity.
	// It exists in this package in order to avoid circular dependency with the "taskdecomposition" package.
	DecompositionInverseTable = "task_decompositions"
	// DecompositionColumn is the table column denoting the decomposition relation/edge.
	DecompositionColumn = "task_id"
)

// Columns holds all SQL columns for task fields.
var Columns = []string{
	FieldID,
	FieldDescription,
	FieldParameters,
	FieldPriority,
	FieldDecompositionStrategy,
	FieldDelegationStrategy,
	FieldDistributionMode,
	FieldStatus,
	FieldCreatedAt,
	FieldStartedAt,
	FieldCompletedAt,
	FieldResult,
	FieldErrorMessage,
	FieldPodID,
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
	// DefaultPriority holds the default value on creation for the "priority" field.
	DefaultPriority int
	// DefaultDecompositionStrategy holds the default value on creation for the "decomposition_strategy" field.
	DefaultDecompositionStrategy string
	// DefaultDelegationStrategy holds the default value on creation for the "delegation_strategy" field.
	DefaultDelegationStrategy string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// DistributionMode defines the type for the "distribution_mode" enum field.
type DistributionMode string

// DistributionModeLocal is the default value of the DistributionMode enum.
const DefaultDistributionMode = DistributionModeLocal

// DistributionMode values.
const (
	DistributionModeLocal       DistributionMode = "local"
	DistributionModeDistributed DistributionMode = "distributed"
	DistributionModeHybrid      DistributionMode = "hybrid"
)

func (dm DistributionMode) String() string {
	return string(dm)
}

// DistributionModeValidator is a validator for the "distribution_mode" field enum values. It is called by the builders before save.
func DistributionModeValidator(dm DistributionMode) error {
	switch dm {
	case DistributionModeLocal, DistributionModeDistributed, DistributionModeHybrid:
		return nil
	default:
		return fmt.Errorf("task: invalid enum value for distribution_mode field: %q", dm)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusSubmitted is the default value of the Status enum.
const DefaultStatus = StatusSubmitted

// Status values.
const (
	StatusSubmitted   Status = "submitted"
	StatusDecomposing Status = "decomposing"
	StatusDecomposed  Status = "decomposed"
	StatusQueued      Status = "queued"
	StatusProcessing  Status = "processing"
	StatusCompleted   Status = "completed"
	StatusFailed      Status = "failed"
	StatusCancelled   Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusSubmitted, StatusDecomposing, StatusDecomposed, StatusQueued, StatusProcessing, StatusCompleted, StatusFailed, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("task: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Task queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByDecompositionStrategy orders the results by the decomposition_strategy field.
func ByDecompositionStrategy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDecompositionStrategy, opts...).ToFunc()
}

// ByDelegationStrategy orders the results by the delegation_strategy field.
func ByDelegationStrategy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDelegationStrategy, opts...).ToFunc()
}

// ByDistributionMode orders the results by the distribution_mode field.
func ByDistributionMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDistributionMode, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByPodID orders the results by the pod_id field.
func ByPodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodID, opts...).ToFunc()
}

// BySubtasksCount orders the results by subtasks count.
func BySubtasksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSubtasksStep(), opts...)
	}
}

// BySubtasks orders the results by subtasks terms.
func BySubtasks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSubtasksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByDecompositionField orders the results by decomposition field.
func ByDecompositionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDecompositionStep(), sql.OrderByField(field, opts...))
	}
}
func newSubtasksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SubtasksInverseTable, SubtaskFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SubtasksTable, SubtasksColumn),
	)
}
func newDecompositionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DecompositionInverseTable, TaskDecompositionFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, DecompositionTable, DecompositionColumn),
	)
}
