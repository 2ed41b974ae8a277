// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/maestro-run/maestro/ent/predicate"
	"github.com/maestro-run/maestro/ent/taskqueuestat"
)

// TaskQueueStatUpdate is the builder for updating TaskQueueStat entities.
type TaskQueueStatUpdate struct {
	config
	hooks    []Hook
	mutation *TaskQueueStatMutation
}

// Where appends a list predicates to the TaskQueueStatUpdate builder.
func (_u *TaskQueueStatUpdate) Where(ps ...predicate.TaskQueueStat) *TaskQueueStatUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the TaskQueueStatMutation object of the builder.
func (_u *TaskQueueStatUpdate) Mutation() *TaskQueueStatMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskQueueStatUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskQueueStatUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskQueueStatUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskQueueStatUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TaskQueueStatUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(taskqueuestat.Table, taskqueuestat.Columns, sqlgraph.NewFieldSpec(taskqueuestat.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskqueuestat.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskQueueStatUpdateOne is the builder for updating a single TaskQueueStat entity.
type TaskQueueStatUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskQueueStatMutation
}

// Mutation returns the TaskQueueStatMutation object of the builder.
func (_u *TaskQueueStatUpdateOne) Mutation() *TaskQueueStatMutation {
	return _u.mutation
}

// Where appends a list predicates to the TaskQueueStatUpdate builder.
func (_u *TaskQueueStatUpdateOne) Where(ps ...predicate.TaskQueueStat) *TaskQueueStatUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskQueueStatUpdateOne) Select(field string, fields ...string) *TaskQueueStatUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TaskQueueStat entity.
func (_u *TaskQueueStatUpdateOne) Save(ctx context.Context) (*TaskQueueStat, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskQueueStatUpdateOne) SaveX(ctx context.Context) *TaskQueueStat {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskQueueStatUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskQueueStatUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TaskQueueStatUpdateOne) sqlSave(ctx context.Context) (_node *TaskQueueStat, err error) {
	_spec := sqlgraph.NewUpdateSpec(taskqueuestat.Table, taskqueuestat.Columns, sqlgraph.NewFieldSpec(taskqueuestat.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TaskQueueStat.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, taskqueuestat.FieldID)
		for _, f := range fields {
			if !taskqueuestat.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != taskqueuestat.FieldID {
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
	_node = &TaskQueueStat{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskqueuestat.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
