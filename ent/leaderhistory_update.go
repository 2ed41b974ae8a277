// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/maestro-run/maestro/ent/leaderhistory"
	"github.com/maestro-run/maestro/ent/predicate"
)

// LeaderHistoryUpdate is the builder for updating LeaderHistory entities.
type LeaderHistoryUpdate struct {
	config
	hooks    []Hook
	mutation *LeaderHistoryMutation
}

// Where appends a list predicates to the LeaderHistoryUpdate builder.
func (_u *LeaderHistoryUpdate) Where(ps ...predicate.LeaderHistory) *LeaderHistoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the LeaderHistoryMutation object of the builder.
func (_u *LeaderHistoryUpdate) Mutation() *LeaderHistoryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LeaderHistoryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LeaderHistoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LeaderHistoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LeaderHistoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LeaderHistoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(leaderhistory.Table, leaderhistory.Columns, sqlgraph.NewFieldSpec(leaderhistory.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.OldNodeIDCleared() {
		_spec.ClearField(leaderhistory.FieldOldNodeID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{leaderhistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LeaderHistoryUpdateOne is the builder for updating a single LeaderHistory entity.
type LeaderHistoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LeaderHistoryMutation
}

// Mutation returns the LeaderHistoryMutation object of the builder.
func (_u *LeaderHistoryUpdateOne) Mutation() *LeaderHistoryMutation {
	return _u.mutation
}

// Where appends a list predicates to the LeaderHistoryUpdate builder.
func (_u *LeaderHistoryUpdateOne) Where(ps ...predicate.LeaderHistory) *LeaderHistoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LeaderHistoryUpdateOne) Select(field string, fields ...string) *LeaderHistoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LeaderHistory entity.
func (_u *LeaderHistoryUpdateOne) Save(ctx context.Context) (*LeaderHistory, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LeaderHistoryUpdateOne) SaveX(ctx context.Context) *LeaderHistory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LeaderHistoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LeaderHistoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LeaderHistoryUpdateOne) sqlSave(ctx context.Context) (_node *LeaderHistory, err error) {
	_spec := sqlgraph.NewUpdateSpec(leaderhistory.Table, leaderhistory.Columns, sqlgraph.NewFieldSpec(leaderhistory.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LeaderHistory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, leaderhistory.FieldID)
		for _, f := range fields {
			if !leaderhistory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != leaderhistory.FieldID {
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
	if _u.mutation.OldNodeIDCleared() {
		_spec.ClearField(leaderhistory.FieldOldNodeID, field.TypeString)
	}
	_node = &LeaderHistory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{leaderhistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
