// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/maestro-run/maestro/ent/agentperformancemetric"
)

// AgentPerformanceMetric is the model entity for the AgentPerformanceMetric schema.
type AgentPerformanceMetric struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Always a UUID; the monitor maps free-form names via UUIDv5
	AgentID string `json:"agent_id,omitempty"`
	// MetricType holds the value of the "metric_type" field.
	MetricType agentperformancemetric.MetricType `json:"metric_type,omitempty"`
	// Value holds the value of the "value" field.
	Value float64 `json:"value,omitempty"`
	// Tags holds the value of the "tags" field.
	Tags map[string]string `json:"tags,omitempty"`
	// RecordedAt holds the value of the "recorded_at" field.
	RecordedAt   time.Time `json:"recorded_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentPerformanceMetric) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentperformancemetric.FieldTags:
			values[i] = new([]byte)
		case agentperformancemetric.FieldValue:
			values[i] = new(sql.NullFloat64)
		case agentperformancemetric.FieldID, agentperformancemetric.FieldAgentID, agentperformancemetric.FieldMetricType:
			values[i] = new(sql.NullString)
		case agentperformancemetric.FieldRecordedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentPerformanceMetric fields.
func (_m *AgentPerformanceMetric) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentperformancemetric.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agentperformancemetric.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = value.String
			}
		case agentperformancemetric.FieldMetricType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field metric_type", values[i])
			} else if value.Valid {
				_m.MetricType = agentperformancemetric.MetricType(value.String)
			}
		case agentperformancemetric.FieldValue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field value", values[i])
			} else if value.Valid {
				_m.Value = value.Float64
			}
		case agentperformancemetric.FieldTags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Tags); err != nil {
					return fmt.Errorf("unmarshal field tags: %w", err)
				}
			}
		case agentperformancemetric.FieldRecordedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field recorded_at", values[i])
			} else if value.Valid {
				_m.RecordedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// GetValue returns the ent.Value that was dynamically selected and assigned to the AgentPerformanceMetric.
// This includes values selected through modifiers, order, etc.
func (_m *AgentPerformanceMetric) GetValue(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AgentPerformanceMetric.
// Note that you need to call AgentPerformanceMetric.Unwrap() before calling this method if this AgentPerformanceMetric
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentPerformanceMetric) Update() *AgentPerformanceMetricUpdateOne {
	return NewAgentPerformanceMetricClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentPerformanceMetric entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentPerformanceMetric) Unwrap() *AgentPerformanceMetric {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentPerformanceMetric is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentPerformanceMetric) String() string {
	var builder strings.Builder
	builder.WriteString("AgentPerformanceMetric(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("agent_id=")
	builder.WriteString(_m.AgentID)
	builder.WriteString(", ")
	builder.WriteString("metric_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.MetricType))
	builder.WriteString(", ")
	builder.WriteString("value=")
	builder.WriteString(fmt.Sprintf("%v", _m.Value))
	builder.WriteString(", ")
	builder.WriteString("tags=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tags))
	builder.WriteString(", ")
	builder.WriteString("recorded_at=")
	builder.WriteString(_m.RecordedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AgentPerformanceMetrics is a parsable slice of AgentPerformanceMetric.
type AgentPerformanceMetrics []*AgentPerformanceMetric
