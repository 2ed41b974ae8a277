// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/maestro-run/maestro/ent/errorlog"
	"github.com/maestro-run/maestro/ent/predicate"
)

// ErrorLogUpdate is the builder for updating ErrorLog entities.
type ErrorLogUpdate struct {
	config
	hooks    []Hook
	mutation *ErrorLogMutation
}

// Where appends a list predicates to the ErrorLogUpdate builder.
func (_u *ErrorLogUpdate) Where(ps ...predicate.ErrorLog) *ErrorLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDetails sets the "details" field.
func (_u *ErrorLogUpdate) SetDetails(v map[string]interface{}) *ErrorLogUpdate {
	_u.mutation.SetDetails(v)
	return _u
}

// ClearDetails clears the value of the "details" field.
func (_u *ErrorLogUpdate) ClearDetails() *ErrorLogUpdate {
	_u.mutation.ClearDetails()
	return _u
}

// Mutation returns the ErrorLogMutation object of the builder.
func (_u *ErrorLogUpdate) Mutation() *ErrorLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ErrorLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ErrorLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ErrorLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ErrorLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ErrorLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(errorlog.Table, errorlog.Columns, sqlgraph.NewFieldSpec(errorlog.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(errorlog.FieldDetails, field.TypeJSON, value)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(errorlog.FieldDetails, field.TypeJSON)
	}
	if _u.mutation.TaskIDCleared() {
		_spec.ClearField(errorlog.FieldTaskID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{errorlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ErrorLogUpdateOne is the builder for updating a single ErrorLog entity.
type ErrorLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ErrorLogMutation
}

// SetDetails sets the "details" field.
func (_u *ErrorLogUpdateOne) SetDetails(v map[string]interface{}) *ErrorLogUpdateOne {
	_u.mutation.SetDetails(v)
	return _u
}

// ClearDetails clears the value of the "details" field.
func (_u *ErrorLogUpdateOne) ClearDetails() *ErrorLogUpdateOne {
	_u.mutation.ClearDetails()
	return _u
}

// Mutation returns the ErrorLogMutation object of the builder.
func (_u *ErrorLogUpdateOne) Mutation() *ErrorLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the ErrorLogUpdate builder.
func (_u *ErrorLogUpdateOne) Where(ps ...predicate.ErrorLog) *ErrorLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ErrorLogUpdateOne) Select(field string, fields ...string) *ErrorLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ErrorLog entity.
func (_u *ErrorLogUpdateOne) Save(ctx context.Context) (*ErrorLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ErrorLogUpdateOne) SaveX(ctx context.Context) *ErrorLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ErrorLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ErrorLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ErrorLogUpdateOne) sqlSave(ctx context.Context) (_node *ErrorLog, err error) {
	_spec := sqlgraph.NewUpdateSpec(errorlog.Table, errorlog.Columns, sqlgraph.NewFieldSpec(errorlog.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ErrorLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, errorlog.FieldID)
		for _, f := range fields {
			if !errorlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != errorlog.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(errorlog.FieldDetails, field.TypeJSON, value)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(errorlog.FieldDetails, field.TypeJSON)
	}
	if _u.mutation.TaskIDCleared() {
		_spec.ClearField(errorlog.FieldTaskID, field.TypeString)
	}
	_node = &ErrorLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{errorlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
