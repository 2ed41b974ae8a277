// Code generated by ent, DO NOT EDIT.

package taskworker

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the taskworker type in the database.
	Label = "task_worker"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "worker_id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldHostname holds the string denoting the hostname field in the database.
	FieldHostname = "hostname"
	// FieldPid holds the string denoting the pid field in the database.
	FieldPid = "pid"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldMaxTasks holds the string denoting the max_tasks field in the database.
	FieldMaxTasks = "max_tasks"
	// FieldActiveTasks holds the string denoting the active_tasks field in the database.
	FieldActiveTasks = "active_tasks"
	// FieldQueues holds the string denoting the queues field in the database.
	FieldQueues = "queues"
	// FieldCapabilities holds the string denoting the capabilities field in the database.
	FieldCapabilities = "capabilities"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldLastHeartbeat holds the string denoting the last_heartbeat field in the database.
	FieldLastHeartbeat = "last_heartbeat"
	// FieldRegisteredAt holds the string denoting the registered_at field in the database.
	FieldRegisteredAt = "registered_at"
	// Table holds the table name of the taskworker in the database.
	Table = "task_workers"
)

// Columns holds all SQL columns for taskworker fields.
var Columns = []string{
	FieldID,
	FieldKind,
	FieldHostname,
	FieldPid,
	FieldStatus,
	FieldMaxTasks,
	FieldActiveTasks,
	FieldQueues,
	FieldCapabilities,
	FieldMetadata,
	FieldLastHeartbeat,
	FieldRegisteredAt,
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
	// DefaultKind holds the default value on creation for the "kind" field.
	DefaultKind string
	// DefaultMaxTasks holds the default value on creation for the "max_tasks" field.
	DefaultMaxTasks int
	// DefaultActiveTasks holds the default value on creation for the "active_tasks" field.
	DefaultActiveTasks int
	// DefaultQueues holds the default value on creation for the "queues" field.
	DefaultQueues []string
	// DefaultLastHeartbeat holds the default value on creation for the "last_heartbeat" field.
	DefaultLastHeartbeat func() time.Time
	// DefaultRegisteredAt holds the default value on creation for the "registered_at" field.
	DefaultRegisteredAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusOnline is the default value of the Status enum.
const DefaultStatus = StatusOnline

// Status values.
const (
	StatusOnline  Status = "online"
	StatusOffline Status = "offline"
	StatusBusy    Status = "busy"
	StatusIdle    Status = "idle"
	StatusError   Status = "error"
	StatusStale   Status = "stale"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusOnline, StatusOffline, StatusBusy, StatusIdle, StatusError, StatusStale:
		return nil
	default:
		return fmt.Errorf("taskworker: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the TaskWorker queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByHostname orders the results by the hostname field.
func ByHostname(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHostname, opts...).ToFunc()
}

// ByPid orders the results by the pid field.
func ByPid(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPid, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByMaxTasks orders the results by the max_tasks field.
func ByMaxTasks(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxTasks, opts...).ToFunc()
}

// ByActiveTasks orders the results by the active_tasks field.
func ByActiveTasks(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActiveTasks, opts...).ToFunc()
}

// ByLastHeartbeat orders the results by the last_heartbeat field.
func ByLastHeartbeat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeat, opts...).ToFunc()
}

// ByRegisteredAt orders the results by the registered_at field.
func ByRegisteredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRegisteredAt, opts...).ToFunc()
}
