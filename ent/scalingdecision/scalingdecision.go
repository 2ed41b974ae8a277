// Code generated by ent, DO NOT EDIT.

package scalingdecision

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the scalingdecision type in the database.
	Label = "scaling_decision"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "decision_id"
	// FieldDecision holds the string denoting the decision field in the database.
	FieldDecision = "decision"
	// FieldQueueName holds the string denoting the queue_name field in the database.
	FieldQueueName = "queue_name"
	// FieldCurrentWorkers holds the string denoting the current_workers field in the database.
	FieldCurrentWorkers = "current_workers"
	// FieldTargetWorkers holds the string denoting the target_workers field in the database.
	FieldTargetWorkers = "target_workers"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldMetrics holds the string denoting the metrics field in the database.
	FieldMetrics = "metrics"
	// FieldApplied holds the string denoting the applied field in the database.
	FieldApplied = "applied"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the scalingdecision in the database.
	Table = "scaling_decisions"
)

// Columns holds all SQL columns for scalingdecision fields.
var Columns = []string{
	FieldID,
	FieldDecision,
	FieldQueueName,
	FieldCurrentWorkers,
	FieldTargetWorkers,
	FieldReason,
	FieldMetrics,
	FieldApplied,
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
	// DefaultApplied holds the default value on creation for the "applied" field.
	DefaultApplied bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Decision defines the type for the "decision" enum field.
type Decision string

// Decision values.
const (
	DecisionScaleUp   Decision = "scale_up"
	DecisionScaleDown Decision = "scale_down"
)

func (d Decision) String() string {
	return string(d)
}

// DecisionValidator is a validator for the "decision" field enum values. It is called by the builders before save.
func DecisionValidator(d Decision) error {
	switch d {
	case DecisionScaleUp, DecisionScaleDown:
		return nil
	default:
		return fmt.Errorf("scalingdecision: invalid enum value for decision field: %q", d)
	}
}

// OrderOption defines the ordering options for the ScalingDecision queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDecision orders the results by the decision field.
func ByDecision(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDecision, opts...).ToFunc()
}

// ByQueueName orders the results by the queue_name field.
func ByQueueName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQueueName, opts...).ToFunc()
}

// ByCurrentWorkers orders the results by the current_workers field.
func ByCurrentWorkers(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentWorkers, opts...).ToFunc()
}

// ByTargetWorkers orders the results by the target_workers field.
func ByTargetWorkers(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetWorkers, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// ByApplied orders the results by the applied field.
func ByApplied(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApplied, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
