// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/maestro-run/maestro/ent/leaderelection"
)

// LeaderElection is the model entity for the LeaderElection schema.
type LeaderElection struct {
	config `json:"-"`
	// ID of the ent.
	// Coordination role name, e.g. 'beat_scheduler'
	ID string `json:"id,omitempty"`
	// NodeID holds the value of the "node_id" field.
	NodeID string `json:"node_id,omitempty"`
	// Monotonically increasing; bumped on every claim
	Term int64 `json:"term,omitempty"`
	// LeaseExpiresAt holds the value of the "lease_expires_at" field.
	LeaseExpiresAt time.Time `json:"lease_expires_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LeaderElection) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case leaderelection.FieldTerm:
			values[i] = new(sql.NullInt64)
		case leaderelection.FieldID, leaderelection.FieldNodeID:
			values[i] = new(sql.NullString)
		case leaderelection.FieldLeaseExpiresAt, leaderelection.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LeaderElection fields.
func (_m *LeaderElection) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case leaderelection.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case leaderelection.FieldNodeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field node_id", values[i])
			} else if value.Valid {
				_m.NodeID = value.String
			}
		case leaderelection.FieldTerm:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field term", values[i])
			} else if value.Valid {
				_m.Term = value.Int64
			}
		case leaderelection.FieldLeaseExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field lease_expires_at", values[i])
			} else if value.Valid {
				_m.LeaseExpiresAt = value.Time
			}
		case leaderelection.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the LeaderElection.
// This includes values selected through modifiers, order, etc.
func (_m *LeaderElection) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LeaderElection.
// Note that you need to call LeaderElection.Unwrap() before calling this method if this LeaderElection
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LeaderElection) Update() *LeaderElectionUpdateOne {
	return NewLeaderElectionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LeaderElection entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LeaderElection) Unwrap() *LeaderElection {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LeaderElection is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LeaderElection) String() string {
	var builder strings.Builder
	builder.WriteString("LeaderElection(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("node_id=")
	builder.WriteString(_m.NodeID)
	builder.WriteString(", ")
	builder.WriteString("term=")
	builder.WriteString(fmt.Sprintf("%v", _m.Term))
	builder.WriteString(", ")
	builder.WriteString("lease_expires_at=")
	builder.WriteString(_m.LeaseExpiresAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LeaderElections is a parsable slice of LeaderElection.
type LeaderElections []*LeaderElection
