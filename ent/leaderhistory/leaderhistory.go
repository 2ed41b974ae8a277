// Code generated by ent, DO NOT EDIT.

package leaderhistory

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the leaderhistory type in the database.
	Label = "leader_history"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "history_id"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldOldNodeID holds the string denoting the old_node_id field in the database.
	FieldOldNodeID = "old_node_id"
	// FieldNewNodeID holds the string denoting the new_node_id field in the database.
	FieldNewNodeID = "new_node_id"
	// FieldTerm holds the string denoting the term field in the database.
	FieldTerm = "term"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the leaderhistory in the database.
	Table = "leader_history"
)

// Columns holds all SQL columns for leaderhistory fields.
var Columns = []string{
	FieldID,
	FieldRole,
	FieldOldNodeID,
	FieldNewNodeID,
	FieldTerm,
	FieldReason,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the LeaderHistory queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// ByOldNodeID orders the results by the old_node_id field.
func ByOldNodeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOldNodeID, opts...).ToFunc()
}

// ByNewNodeID orders the results by the new_node_id field.
func ByNewNodeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewNodeID, opts...).ToFunc()
}

// ByTerm orders the results by the term field.
func ByTerm(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTerm, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
