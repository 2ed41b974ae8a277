// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/maestro-run/maestro/ent/taskqueuestat"
)

// TaskQueueStat is the model entity for the TaskQueueStat schema.
type TaskQueueStat struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// QueueName holds the value of the "queue_name" field.
	QueueName string `json:"queue_name,omitempty"`
	// WorkerCount holds the value of the "worker_count" field.
	WorkerCount int `json:"worker_count,omitempty"`
	// QueuedCount holds the value of the "queued_count" field.
	QueuedCount int `json:"queued_count,omitempty"`
	// ActiveCount holds the value of the "active_count" field.
	ActiveCount int `json:"active_count,omitempty"`
	// active_count / max(worker_count, 1)
	Utilization float64 `json:"utilization,omitempty"`
	// SampledAt holds the value of the "sampled_at" field.
	SampledAt    time.Time `json:"sampled_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TaskQueueStat) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case taskqueuestat.FieldUtilization:
			values[i] = new(sql.NullFloat64)
		case taskqueuestat.FieldWorkerCount, taskqueuestat.FieldQueuedCount, taskqueuestat.FieldActiveCount:
			values[i] = new(sql.NullInt64)
		case taskqueuestat.FieldID, taskqueuestat.FieldQueueName:
			values[i] = new(sql.NullString)
		case taskqueuestat.FieldSampledAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TaskQueueStat fields.
func (_m *TaskQueueStat) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case taskqueuestat.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case taskqueuestat.FieldQueueName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field queue_name", values[i])
			} else if value.Valid {
				_m.QueueName = value.String
			}
		case taskqueuestat.FieldWorkerCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field worker_count", values[i])
			} else if value.Valid {
				_m.WorkerCount = int(value.Int64)
			}
		case taskqueuestat.FieldQueuedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field queued_count", values[i])
			} else if value.Valid {
				_m.QueuedCount = int(value.Int64)
			}
		case taskqueuestat.FieldActiveCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field active_count", values[i])
			} else if value.Valid {
				_m.ActiveCount = int(value.Int64)
			}
		case taskqueuestat.FieldUtilization:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field utilization", values[i])
			} else if value.Valid {
				_m.Utilization = value.Float64
			}
		case taskqueuestat.FieldSampledAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field sampled_at", values[i])
			} else if value.Valid {
				_m.SampledAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TaskQueueStat.
// This includes values selected through modifiers, order, etc.
func (_m *TaskQueueStat) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TaskQueueStat.
// Note that you need to call TaskQueueStat.Unwrap() before calling this method if this TaskQueueStat
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TaskQueueStat) Update() *TaskQueueStatUpdateOne {
	return NewTaskQueueStatClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TaskQueueStat entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TaskQueueStat) Unwrap() *TaskQueueStat {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TaskQueueStat is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TaskQueueStat) String() string {
	var builder strings.Builder
	builder.WriteString("TaskQueueStat(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("queue_name=")
	builder.WriteString(_m.QueueName)
	builder.WriteString(", ")
	builder.WriteString("worker_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.WorkerCount))
	builder.WriteString(", ")
	builder.WriteString("queued_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.QueuedCount))
	builder.WriteString(", ")
	builder.WriteString("active_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActiveCount))
	builder.WriteString(", ")
	builder.WriteString("utilization=")
	builder.WriteString(fmt.Sprintf("%v", _m.Utilization))
	builder.WriteString(", ")
	builder.WriteString("sampled_at=")
	builder.WriteString(_m.SampledAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TaskQueueStats is a parsable slice of TaskQueueStat.
type TaskQueueStats []*TaskQueueStat
