// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/maestro-run/maestro/ent/scalingdecision"
)

// ScalingDecision is the model entity for the ScalingDecision schema.
type ScalingDecision struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Decision holds the value of the "decision" field.
	Decision scalingdecision.Decision `json:"decision,omitempty"`
	// QueueName holds the value of the "queue_name" field.
	QueueName string `json:"queue_name,omitempty"`
	// CurrentWorkers holds the value of the "current_workers" field.
	CurrentWorkers int `json:"current_workers,omitempty"`
	// TargetWorkers holds the value of the "target_workers" field.
	TargetWorkers int `json:"target_workers,omitempty"`
	// Reason holds the value of the "reason" field.
	Reason string `json:"reason,omitempty"`
	// Metrics holds the value of the "metrics" field.
	Metrics map[string]interface{} `json:"metrics,omitempty"`
	// Applied holds the value of the "applied" field.
	Applied bool `json:"applied,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ScalingDecision) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case scalingdecision.FieldMetrics:
			values[i] = new([]byte)
		case scalingdecision.FieldApplied:
			values[i] = new(sql.NullBool)
		case scalingdecision.FieldCurrentWorkers, scalingdecision.FieldTargetWorkers:
			values[i] = new(sql.NullInt64)
		case scalingdecision.FieldID, scalingdecision.FieldDecision, scalingdecision.FieldQueueName, scalingdecision.FieldReason:
			values[i] = new(sql.NullString)
		case scalingdecision.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ScalingDecision fields.
func (_m *ScalingDecision) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case scalingdecision.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case scalingdecision.FieldDecision:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field decision", values[i])
			} else if value.Valid {
				_m.Decision = scalingdecision.Decision(value.String)
			}
		case scalingdecision.FieldQueueName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field queue_name", values[i])
			} else if value.Valid {
				_m.QueueName = value.String
			}
		case scalingdecision.FieldCurrentWorkers:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_workers", values[i])
			} else if value.Valid {
				_m.CurrentWorkers = int(value.Int64)
			}
		case scalingdecision.FieldTargetWorkers:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field target_workers", values[i])
			} else if value.Valid {
				_m.TargetWorkers = int(value.Int64)
			}
		case scalingdecision.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case scalingdecision.FieldMetrics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metrics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metrics); err != nil {
					return fmt.Errorf("unmarshal field metrics: %w", err)
				}
			}
		case scalingdecision.FieldApplied:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field applied", values[i])
			} else if value.Valid {
				_m.Applied = value.Bool
			}
		case scalingdecision.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ScalingDecision.
// This includes values selected through modifiers, order, etc.
func (_m *ScalingDecision) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ScalingDecision.
// Note that you need to call ScalingDecision.Unwrap() before calling this method if this ScalingDecision
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ScalingDecision) Update() *ScalingDecisionUpdateOne {
	return NewScalingDecisionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ScalingDecision entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ScalingDecision) Unwrap() *ScalingDecision {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ScalingDecision is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ScalingDecision) String() string {
	var builder strings.Builder
	builder.WriteString("ScalingDecision(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("decision=")
	builder.WriteString(fmt.Sprintf("%v", _m.Decision))
	builder.WriteString(", ")
	builder.WriteString("queue_name=")
	builder.WriteString(_m.QueueName)
	builder.WriteString(", ")
	builder.WriteString("current_workers=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentWorkers))
	builder.WriteString(", ")
	builder.WriteString("target_workers=")
	builder.WriteString(fmt.Sprintf("%v", _m.TargetWorkers))
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteString(", ")
	builder.WriteString("metrics=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metrics))
	builder.WriteString(", ")
	builder.WriteString("applied=")
	builder.WriteString(fmt.Sprintf("%v", _m.Applied))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ScalingDecisions is a parsable slice of ScalingDecision.
type ScalingDecisions []*ScalingDecision
