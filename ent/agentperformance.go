// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/maestro-run/maestro/ent/agentperformance"
)

// AgentPerformance is the model entity for the AgentPerformance schema.
type AgentPerformance struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID string `json:"agent_id,omitempty"`
	// UTC midnight of the rollup day
	Day time.Time `json:"day,omitempty"`
	// TotalExecutions holds the value of the "total_executions" field.
	TotalExecutions int64 `json:"total_executions,omitempty"`
	// SuccessfulExecutions holds the value of the "successful_executions" field.
	SuccessfulExecutions int64 `json:"successful_executions,omitempty"`
	// FailedExecutions holds the value of the "failed_executions" field.
	FailedExecutions int64 `json:"failed_executions,omitempty"`
	// AvgLatencyMs holds the value of the "avg_latency_ms" field.
	AvgLatencyMs float64 `json:"avg_latency_ms,omitempty"`
	// TotalCost holds the value of the "total_cost" field.
	TotalCost float64 `json:"total_cost,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentPerformance) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentperformance.FieldAvgLatencyMs, agentperformance.FieldTotalCost:
			values[i] = new(sql.NullFloat64)
		case agentperformance.FieldTotalExecutions, agentperformance.FieldSuccessfulExecutions, agentperformance.FieldFailedExecutions:
			values[i] = new(sql.NullInt64)
		case agentperformance.FieldID, agentperformance.FieldAgentID:
			values[i] = new(sql.NullString)
		case agentperformance.FieldDay, agentperformance.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentPerformance fields.
func (_m *AgentPerformance) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentperformance.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agentperformance.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = value.String
			}
		case agentperformance.FieldDay:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field day", values[i])
			} else if value.Valid {
				_m.Day = value.Time
			}
		case agentperformance.FieldTotalExecutions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_executions", values[i])
			} else if value.Valid {
				_m.TotalExecutions = value.Int64
			}
		case agentperformance.FieldSuccessfulExecutions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field successful_executions", values[i])
			} else if value.Valid {
				_m.SuccessfulExecutions = value.Int64
			}
		case agentperformance.FieldFailedExecutions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field failed_executions", values[i])
			} else if value.Valid {
				_m.FailedExecutions = value.Int64
			}
		case agentperformance.FieldAvgLatencyMs:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_latency_ms", values[i])
			} else if value.Valid {
				_m.AvgLatencyMs = value.Float64
			}
		case agentperformance.FieldTotalCost:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_cost", values[i])
			} else if value.Valid {
				_m.TotalCost = value.Float64
			}
		case agentperformance.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AgentPerformance.
// This includes values selected through modifiers, order, etc.
func (_m *AgentPerformance) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AgentPerformance.
// Note that you need to call AgentPerformance.Unwrap() before calling this method if this AgentPerformance
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentPerformance) Update() *AgentPerformanceUpdateOne {
	return NewAgentPerformanceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentPerformance entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentPerformance) Unwrap() *AgentPerformance {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentPerformance is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentPerformance) String() string {
	var builder strings.Builder
	builder.WriteString("AgentPerformance(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("agent_id=")
	builder.WriteString(_m.AgentID)
	builder.WriteString(", ")
	builder.WriteString("day=")
	builder.WriteString(_m.Day.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("total_executions=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalExecutions))
	builder.WriteString(", ")
	builder.WriteString("successful_executions=")
	builder.WriteString(fmt.Sprintf("%v", _m.SuccessfulExecutions))
	builder.WriteString(", ")
	builder.WriteString("failed_executions=")
	builder.WriteString(fmt.Sprintf("%v", _m.FailedExecutions))
	builder.WriteString(", ")
	builder.WriteString("avg_latency_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.AvgLatencyMs))
	builder.WriteString(", ")
	builder.WriteString("total_cost=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalCost))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AgentPerformances is a parsable slice of AgentPerformance.
type AgentPerformances []*AgentPerformance
