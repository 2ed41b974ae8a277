// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/maestro-run/maestro/ent/predicate"
	"github.com/maestro-run/maestro/ent/taskdecomposition"
)

// TaskDecompositionUpdate is the builder for updating TaskDecomposition entities.
type TaskDecompositionUpdate struct {
	config
	hooks    []Hook
	mutation *TaskDecompositionMutation
}

// Where appends a list predicates to the TaskDecompositionUpdate builder.
func (_u *TaskDecompositionUpdate) Where(ps ...predicate.TaskDecomposition) *TaskDecompositionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaskDecompositionUpdate) SetDescription(v string) *TaskDecompositionUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskDecompositionUpdate) SetNillableDescription(v *string) *TaskDecompositionUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetStrategy sets the "strategy" field.
func (_u *TaskDecompositionUpdate) SetStrategy(v string) *TaskDecompositionUpdate {
	_u.mutation.SetStrategy(v)
	return _u
}

// SetNillableStrategy sets the "strategy" field if the given value is not nil.
func (_u *TaskDecompositionUpdate) SetNillableStrategy(v *string) *TaskDecompositionUpdate {
	if v != nil {
		_u.SetStrategy(*v)
	}
	return _u
}

// SetTotalComplexity sets the "total_complexity" field.
func (_u *TaskDecompositionUpdate) SetTotalComplexity(v int) *TaskDecompositionUpdate {
	_u.mutation.ResetTotalComplexity()
	_u.mutation.SetTotalComplexity(v)
	return _u
}

// SetNillableTotalComplexity sets the "total_complexity" field if the given value is not nil.
func (_u *TaskDecompositionUpdate) SetNillableTotalComplexity(v *int) *TaskDecompositionUpdate {
	if v != nil {
		_u.SetTotalComplexity(*v)
	}
	return _u
}

// AddTotalComplexity adds value to the "total_complexity" field.
func (_u *TaskDecompositionUpdate) AddTotalComplexity(v int) *TaskDecompositionUpdate {
	_u.mutation.AddTotalComplexity(v)
	return _u
}

// SetMaxParallelism sets the "max_parallelism" field.
func (_u *TaskDecompositionUpdate) SetMaxParallelism(v int) *TaskDecompositionUpdate {
	_u.mutation.ResetMaxParallelism()
	_u.mutation.SetMaxParallelism(v)
	return _u
}

// SetNillableMaxParallelism sets the "max_parallelism" field if the given value is not nil.
func (_u *TaskDecompositionUpdate) SetNillableMaxParallelism(v *int) *TaskDecompositionUpdate {
	if v != nil {
		_u.SetMaxParallelism(*v)
	}
	return _u
}

// AddMaxParallelism adds value to the "max_parallelism" field.
func (_u *TaskDecompositionUpdate) AddMaxParallelism(v int) *TaskDecompositionUpdate {
	_u.mutation.AddMaxParallelism(v)
	return _u
}

// SetCriticalPath sets the "critical_path" field.
func (_u *TaskDecompositionUpdate) SetCriticalPath(v []string) *TaskDecompositionUpdate {
	_u.mutation.SetCriticalPath(v)
	return _u
}

// AppendCriticalPath appends value to the "critical_path" field.
func (_u *TaskDecompositionUpdate) AppendCriticalPath(v []string) *TaskDecompositionUpdate {
	_u.mutation.AppendCriticalPath(v)
	return _u
}

// Mutation returns the TaskDecompositionMutation object of the builder.
func (_u *TaskDecompositionUpdate) Mutation() *TaskDecompositionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskDecompositionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskDecompositionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskDecompositionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskDecompositionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskDecompositionUpdate) check() error {
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TaskDecomposition.task"`)
	}
	return nil
}

func (_u *TaskDecompositionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taskdecomposition.Table, taskdecomposition.Columns, sqlgraph.NewFieldSpec(taskdecomposition.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(taskdecomposition.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Strategy(); ok {
		_spec.SetField(taskdecomposition.FieldStrategy, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalComplexity(); ok {
		_spec.SetField(taskdecomposition.FieldTotalComplexity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalComplexity(); ok {
		_spec.AddField(taskdecomposition.FieldTotalComplexity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxParallelism(); ok {
		_spec.SetField(taskdecomposition.FieldMaxParallelism, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxParallelism(); ok {
		_spec.AddField(taskdecomposition.FieldMaxParallelism, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CriticalPath(); ok {
		_spec.SetField(taskdecomposition.FieldCriticalPath, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCriticalPath(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, taskdecomposition.FieldCriticalPath, value)
		})
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskdecomposition.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskDecompositionUpdateOne is the builder for updating a single TaskDecomposition entity.
type TaskDecompositionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskDecompositionMutation
}

// SetDescription sets the "description" field.
func (_u *TaskDecompositionUpdateOne) SetDescription(v string) *TaskDecompositionUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskDecompositionUpdateOne) SetNillableDescription(v *string) *TaskDecompositionUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetStrategy sets the "strategy" field.
func (_u *TaskDecompositionUpdateOne) SetStrategy(v string) *TaskDecompositionUpdateOne {
	_u.mutation.SetStrategy(v)
	return _u
}

// SetNillableStrategy sets the "strategy" field if the given value is not nil.
func (_u *TaskDecompositionUpdateOne) SetNillableStrategy(v *string) *TaskDecompositionUpdateOne {
	if v != nil {
		_u.SetStrategy(*v)
	}
	return _u
}

// SetTotalComplexity sets the "total_complexity" field.
func (_u *TaskDecompositionUpdateOne) SetTotalComplexity(v int) *TaskDecompositionUpdateOne {
	_u.mutation.ResetTotalComplexity()
	_u.mutation.SetTotalComplexity(v)
	return _u
}

// SetNillableTotalComplexity sets the "total_complexity" field if the given value is not nil.
func (_u *TaskDecompositionUpdateOne) SetNillableTotalComplexity(v *int) *TaskDecompositionUpdateOne {
	if v != nil {
		_u.SetTotalComplexity(*v)
	}
	return _u
}

// AddTotalComplexity adds value to the "total_complexity" field.
func (_u *TaskDecompositionUpdateOne) AddTotalComplexity(v int) *TaskDecompositionUpdateOne {
	_u.mutation.AddTotalComplexity(v)
	return _u
}

// SetMaxParallelism sets the "max_parallelism" field.
func (_u *TaskDecompositionUpdateOne) SetMaxParallelism(v int) *TaskDecompositionUpdateOne {
	_u.mutation.ResetMaxParallelism()
	_u.mutation.SetMaxParallelism(v)
	return _u
}

// SetNillableMaxParallelism sets the "max_parallelism" field if the given value is not nil.
func (_u *TaskDecompositionUpdateOne) SetNillableMaxParallelism(v *int) *TaskDecompositionUpdateOne {
	if v != nil {
		_u.SetMaxParallelism(*v)
	}
	return _u
}

// AddMaxParallelism adds value to the "max_parallelism" field.
func (_u *TaskDecompositionUpdateOne) AddMaxParallelism(v int) *TaskDecompositionUpdateOne {
	_u.mutation.AddMaxParallelism(v)
	return _u
}

// SetCriticalPath sets the "critical_path" field.
func (_u *TaskDecompositionUpdateOne) SetCriticalPath(v []string) *TaskDecompositionUpdateOne {
	_u.mutation.SetCriticalPath(v)
	return _u
}

// AppendCriticalPath appends value to the "critical_path" field.
func (_u *TaskDecompositionUpdateOne) AppendCriticalPath(v []string) *TaskDecompositionUpdateOne {
	_u.mutation.AppendCriticalPath(v)
	return _u
}

// Mutation returns the TaskDecompositionMutation object of the builder.
func (_u *TaskDecompositionUpdateOne) Mutation() *TaskDecompositionMutation {
	return _u.mutation
}

// Where appends a list predicates to the TaskDecompositionUpdate builder.
func (_u *TaskDecompositionUpdateOne) Where(ps ...predicate.TaskDecomposition) *TaskDecompositionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskDecompositionUpdateOne) Select(field string, fields ...string) *TaskDecompositionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TaskDecomposition entity.
func (_u *TaskDecompositionUpdateOne) Save(ctx context.Context) (*TaskDecomposition, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskDecompositionUpdateOne) SaveX(ctx context.Context) *TaskDecomposition {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskDecompositionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskDecompositionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskDecompositionUpdateOne) check() error {
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TaskDecomposition.task"`)
	}
	return nil
}

func (_u *TaskDecompositionUpdateOne) sqlSave(ctx context.Context) (_node *TaskDecomposition, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taskdecomposition.Table, taskdecomposition.Columns, sqlgraph.NewFieldSpec(taskdecomposition.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TaskDecomposition.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, taskdecomposition.FieldID)
		for _, f := range fields {
			if !taskdecomposition.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != taskdecomposition.FieldID {
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
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(taskdecomposition.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Strategy(); ok {
		_spec.SetField(taskdecomposition.FieldStrategy, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalComplexity(); ok {
		_spec.SetField(taskdecomposition.FieldTotalComplexity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalComplexity(); ok {
		_spec.AddField(taskdecomposition.FieldTotalComplexity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxParallelism(); ok {
		_spec.SetField(taskdecomposition.FieldMaxParallelism, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxParallelism(); ok {
		_spec.AddField(taskdecomposition.FieldMaxParallelism, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CriticalPath(); ok {
		_spec.SetField(taskdecomposition.FieldCriticalPath, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCriticalPath(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, taskdecomposition.FieldCriticalPath, value)
		})
	}
	_node = &TaskDecomposition{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskdecomposition.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
