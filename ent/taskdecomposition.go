// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/maestro-run/maestro/ent/task"
	"github.com/maestro-run/maestro/ent/taskdecomposition"
)

// TaskDecomposition is the model entity for the TaskDecomposition schema.
type TaskDecomposition struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// Original task description at decomposition time
	Description string `json:"description,omitempty"`
	// Strategy holds the value of the "strategy" field.
	Strategy string `json:"strategy,omitempty"`
	// TotalComplexity holds the value of the "total_complexity" field.
	TotalComplexity int `json:"total_complexity,omitempty"`
	// MaxParallelism holds the value of the "max_parallelism" field.
	MaxParallelism int `json:"max_parallelism,omitempty"`
	// Longest path through the DAG; empty when a cycle was detected
	CriticalPath []string `json:"critical_path,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TaskDecompositionQuery when eager-loading is set.
	Edges        TaskDecompositionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TaskDecompositionEdges holds the relations/edges for other nodes in the graph.
type TaskDecompositionEdges struct {
	// Task holds the value of the task edge.
	Task *Task `json:"task,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TaskOrErr returns the Task value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TaskDecompositionEdges) TaskOrErr() (*Task, error) {
	if e.Task != nil {
		return e.Task, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: task.Label}
	}
	return nil, &NotLoadedError{edge: "task"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TaskDecomposition) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case taskdecomposition.FieldCriticalPath:
			values[i] = new([]byte)
		case taskdecomposition.FieldTotalComplexity, taskdecomposition.FieldMaxParallelism:
			values[i] = new(sql.NullInt64)
		case taskdecomposition.FieldID, taskdecomposition.FieldTaskID, taskdecomposition.FieldDescription, taskdecomposition.FieldStrategy:
			values[i] = new(sql.NullString)
		case taskdecomposition.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TaskDecomposition fields.
func (_m *TaskDecomposition) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case taskdecomposition.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case taskdecomposition.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case taskdecomposition.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case taskdecomposition.FieldStrategy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field strategy", values[i])
			} else if value.Valid {
				_m.Strategy = value.String
			}
		case taskdecomposition.FieldTotalComplexity:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_complexity", values[i])
			} else if value.Valid {
				_m.TotalComplexity = int(value.Int64)
			}
		case taskdecomposition.FieldMaxParallelism:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_parallelism", values[i])
			} else if value.Valid {
				_m.MaxParallelism = int(value.Int64)
			}
		case taskdecomposition.FieldCriticalPath:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field critical_path", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CriticalPath); err != nil {
					return fmt.Errorf("unmarshal field critical_path: %w", err)
				}
			}
		case taskdecomposition.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TaskDecomposition.
// This includes values selected through modifiers, order, etc.
func (_m *TaskDecomposition) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTask queries the "task" edge of the TaskDecomposition entity.
func (_m *TaskDecomposition) QueryTask() *TaskQuery {
	return NewTaskDecompositionClient(_m.config).QueryTask(_m)
}

// Update returns a builder for updating this TaskDecomposition.
// Note that you need to call TaskDecomposition.Unwrap() before calling this method if this TaskDecomposition
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TaskDecomposition) Update() *TaskDecompositionUpdateOne {
	return NewTaskDecompositionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TaskDecomposition entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TaskDecomposition) Unwrap() *TaskDecomposition {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TaskDecomposition is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TaskDecomposition) String() string {
	var builder strings.Builder
	builder.WriteString("TaskDecomposition(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("strategy=")
	builder.WriteString(_m.Strategy)
	builder.WriteString(", ")
	builder.WriteString("total_complexity=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalComplexity))
	builder.WriteString(", ")
	builder.WriteString("max_parallelism=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxParallelism))
	builder.WriteString(", ")
	builder.WriteString("critical_path=")
	builder.WriteString(fmt.Sprintf("%v", _m.CriticalPath))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TaskDecompositions is a parsable slice of TaskDecomposition.
type TaskDecompositions []*TaskDecomposition
