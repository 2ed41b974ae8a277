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
	"github.com/maestro-run/maestro/ent/scalingdecision"
)

// ScalingDecisionUpdate is the builder for updating ScalingDecision entities.
type ScalingDecisionUpdate struct {
	config
	hooks    []Hook
	mutation *ScalingDecisionMutation
}

// Where appends a list predicates to the ScalingDecisionUpdate builder.
func (_u *ScalingDecisionUpdate) Where(ps ...predicate.ScalingDecision) *ScalingDecisionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMetrics sets the "metrics" field.
func (_u *ScalingDecisionUpdate) SetMetrics(v map[string]interface{}) *ScalingDecisionUpdate {
	_u.mutation.SetMetrics(v)
	return _u
}

// ClearMetrics clears the value of the "metrics" field.
func (_u *ScalingDecisionUpdate) ClearMetrics() *ScalingDecisionUpdate {
	_u.mutation.ClearMetrics()
	return _u
}

// SetApplied sets the "applied" field.
func (_u *ScalingDecisionUpdate) SetApplied(v bool) *ScalingDecisionUpdate {
	_u.mutation.SetApplied(v)
	return _u
}

// SetNillableApplied sets the "applied" field if the given value is not nil.
func (_u *ScalingDecisionUpdate) SetNillableApplied(v *bool) *ScalingDecisionUpdate {
	if v != nil {
		_u.SetApplied(*v)
	}
	return _u
}

// Mutation returns the ScalingDecisionMutation object of the builder.
func (_u *ScalingDecisionUpdate) Mutation() *ScalingDecisionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScalingDecisionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScalingDecisionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScalingDecisionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScalingDecisionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ScalingDecisionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(scalingdecision.Table, scalingdecision.Columns, sqlgraph.NewFieldSpec(scalingdecision.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Metrics(); ok {
		_spec.SetField(scalingdecision.FieldMetrics, field.TypeJSON, value)
	}
	if _u.mutation.MetricsCleared() {
		_spec.ClearField(scalingdecision.FieldMetrics, field.TypeJSON)
	}
	if value, ok := _u.mutation.Applied(); ok {
		_spec.SetField(scalingdecision.FieldApplied, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scalingdecision.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScalingDecisionUpdateOne is the builder for updating a single ScalingDecision entity.
type ScalingDecisionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScalingDecisionMutation
}

// SetMetrics sets the "metrics" field.
func (_u *ScalingDecisionUpdateOne) SetMetrics(v map[string]interface{}) *ScalingDecisionUpdateOne {
	_u.mutation.SetMetrics(v)
	return _u
}

// ClearMetrics clears the value of the "metrics" field.
func (_u *ScalingDecisionUpdateOne) ClearMetrics() *ScalingDecisionUpdateOne {
	_u.mutation.ClearMetrics()
	return _u
}

// SetApplied sets the "applied" field.
func (_u *ScalingDecisionUpdateOne) SetApplied(v bool) *ScalingDecisionUpdateOne {
	_u.mutation.SetApplied(v)
	return _u
}

// SetNillableApplied sets the "applied" field if the given value is not nil.
func (_u *ScalingDecisionUpdateOne) SetNillableApplied(v *bool) *ScalingDecisionUpdateOne {
	if v != nil {
		_u.SetApplied(*v)
	}
	return _u
}

// Mutation returns the ScalingDecisionMutation object of the builder.
func (_u *ScalingDecisionUpdateOne) Mutation() *ScalingDecisionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScalingDecisionUpdate builder.
func (_u *ScalingDecisionUpdateOne) Where(ps ...predicate.ScalingDecision) *ScalingDecisionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScalingDecisionUpdateOne) Select(field string, fields ...string) *ScalingDecisionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScalingDecision entity.
func (_u *ScalingDecisionUpdateOne) Save(ctx context.Context) (*ScalingDecision, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScalingDecisionUpdateOne) SaveX(ctx context.Context) *ScalingDecision {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScalingDecisionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScalingDecisionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ScalingDecisionUpdateOne) sqlSave(ctx context.Context) (_node *ScalingDecision, err error) {
	_spec := sqlgraph.NewUpdateSpec(scalingdecision.Table, scalingdecision.Columns, sqlgraph.NewFieldSpec(scalingdecision.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScalingDecision.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scalingdecision.FieldID)
		for _, f := range fields {
			if !scalingdecision.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scalingdecision.FieldID {
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
	if value, ok := _u.mutation.Metrics(); ok {
		_spec.SetField(scalingdecision.FieldMetrics, field.TypeJSON, value)
	}
	if _u.mutation.MetricsCleared() {
		_spec.ClearField(scalingdecision.FieldMetrics, field.TypeJSON)
	}
	if value, ok := _u.mutation.Applied(); ok {
		_spec.SetField(scalingdecision.FieldApplied, field.TypeBool, value)
	}
	_node = &ScalingDecision{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scalingdecision.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
