// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/maestro-run/maestro/ent/leaderhistory"
)

// LeaderHistory is the model entity for the LeaderHistory schema.
type LeaderHistory struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Role holds the value of the "role" field.
	Role string `json:"role,omitempty"`
	// OldNodeID holds the value of the "old_node_id" field.
	OldNodeID *string `json:"old_node_id,omitempty"`
	// NewNodeID holds the value of the "new_node_id" field.
	NewNodeID string `json:"new_node_id,omitempty"`
	// Term holds the value of the "term" field.
	Term int64 `json:"term,omitempty"`
	// lease_expired | initial | renewed_by_holder
	Reason string `json:"reason,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LeaderHistory) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case leaderhistory.FieldTerm:
			values[i] = new(sql.NullInt64)
		case leaderhistory.FieldID, leaderhistory.FieldRole, leaderhistory.FieldOldNodeID, leaderhistory.FieldNewNodeID, leaderhistory.FieldReason:
			values[i] = new(sql.NullString)
		case leaderhistory.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LeaderHistory fields.
func (_m *LeaderHistory) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case leaderhistory.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case leaderhistory.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = value.String
			}
		case leaderhistory.FieldOldNodeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field old_node_id", values[i])
			} else if value.Valid {
				_m.OldNodeID = new(string)
				*_m.OldNodeID = value.String
			}
		case leaderhistory.FieldNewNodeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field new_node_id", values[i])
			} else if value.Valid {
				_m.NewNodeID = value.String
			}
		case leaderhistory.FieldTerm:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field term", values[i])
			} else if value.Valid {
				_m.Term = value.Int64
			}
		case leaderhistory.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case leaderhistory.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the LeaderHistory.
// This includes values selected through modifiers, order, etc.
func (_m *LeaderHistory) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LeaderHistory.
// Note that you need to call LeaderHistory.Unwrap() before calling this method if this LeaderHistory
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LeaderHistory) Update() *LeaderHistoryUpdateOne {
	return NewLeaderHistoryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LeaderHistory entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LeaderHistory) Unwrap() *LeaderHistory {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LeaderHistory is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LeaderHistory) String() string {
	var builder strings.Builder
	builder.WriteString("LeaderHistory(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("role=")
	builder.WriteString(_m.Role)
	builder.WriteString(", ")
	if v := _m.OldNodeID; v != nil {
		builder.WriteString("old_node_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("new_node_id=")
	builder.WriteString(_m.NewNodeID)
	builder.WriteString(", ")
	builder.WriteString("term=")
	builder.WriteString(fmt.Sprintf("%v", _m.Term))
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LeaderHistories is a parsable slice of LeaderHistory.
type LeaderHistories []*LeaderHistory
