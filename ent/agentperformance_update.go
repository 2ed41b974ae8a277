// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/maestro-run/maestro/ent/agentperformance"
	"github.com/maestro-run/maestro/ent/predicate"
)

// AgentPerformanceUpdate is the builder for updating AgentPerformance entities.
type AgentPerformanceUpdate struct {
	config
	hooks    []Hook
	mutation *AgentPerformanceMutation
}

// Where appends a list predicates to the AgentPerformanceUpdate builder.
func (_u *AgentPerformanceUpdate) Where(ps ...predicate.AgentPerformance) *AgentPerformanceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTotalExecutions sets the "total_executions" field.
func (_u *AgentPerformanceUpdate) SetTotalExecutions(v int64) *AgentPerformanceUpdate {
	_u.mutation.ResetTotalExecutions()
	_u.mutation.SetTotalExecutions(v)
	return _u
}

// SetNillableTotalExecutions sets the "total_executions" field if the given value is not nil.
func (_u *AgentPerformanceUpdate) SetNillableTotalExecutions(v *int64) *AgentPerformanceUpdate {
	if v != nil {
		_u.SetTotalExecutions(*v)
	}
	return _u
}

// AddTotalExecutions adds value to the "total_executions" field.
func (_u *AgentPerformanceUpdate) AddTotalExecutions(v int64) *AgentPerformanceUpdate {
	_u.mutation.AddTotalExecutions(v)
	return _u
}

// SetSuccessfulExecutions sets the "successful_executions" field.
func (_u *AgentPerformanceUpdate) SetSuccessfulExecutions(v int64) *AgentPerformanceUpdate {
	_u.mutation.ResetSuccessfulExecutions()
	_u.mutation.SetSuccessfulExecutions(v)
	return _u
}

// SetNillableSuccessfulExecutions sets the "successful_executions" field if the given value is not nil.
func (_u *AgentPerformanceUpdate) SetNillableSuccessfulExecutions(v *int64) *AgentPerformanceUpdate {
	if v != nil {
		_u.SetSuccessfulExecutions(*v)
	}
	return _u
}

// AddSuccessfulExecutions adds value to the "successful_executions" field.
func (_u *AgentPerformanceUpdate) AddSuccessfulExecutions(v int64) *AgentPerformanceUpdate {
	_u.mutation.AddSuccessfulExecutions(v)
	return _u
}

// SetFailedExecutions sets the "failed_executions" field.
func (_u *AgentPerformanceUpdate) SetFailedExecutions(v int64) *AgentPerformanceUpdate {
	_u.mutation.ResetFailedExecutions()
	_u.mutation.SetFailedExecutions(v)
	return _u
}

// SetNillableFailedExecutions sets the "failed_executions" field if the given value is not nil.
func (_u *AgentPerformanceUpdate) SetNillableFailedExecutions(v *int64) *AgentPerformanceUpdate {
	if v != nil {
		_u.SetFailedExecutions(*v)
	}
	return _u
}

// AddFailedExecutions adds value to the "failed_executions" field.
func (_u *AgentPerformanceUpdate) AddFailedExecutions(v int64) *AgentPerformanceUpdate {
	_u.mutation.AddFailedExecutions(v)
	return _u
}

// SetAvgLatencyMs sets the "avg_latency_ms" field.
func (_u *AgentPerformanceUpdate) SetAvgLatencyMs(v float64) *AgentPerformanceUpdate {
	_u.mutation.ResetAvgLatencyMs()
	_u.mutation.SetAvgLatencyMs(v)
	return _u
}

// SetNillableAvgLatencyMs sets the "avg_latency_ms" field if the given value is not nil.
func (_u *AgentPerformanceUpdate) SetNillableAvgLatencyMs(v *float64) *AgentPerformanceUpdate {
	if v != nil {
		_u.SetAvgLatencyMs(*v)
	}
	return _u
}

// AddAvgLatencyMs adds value to the "avg_latency_ms" field.
func (_u *AgentPerformanceUpdate) AddAvgLatencyMs(v float64) *AgentPerformanceUpdate {
	_u.mutation.AddAvgLatencyMs(v)
	return _u
}

// SetTotalCost sets the "total_cost" field.
func (_u *AgentPerformanceUpdate) SetTotalCost(v float64) *AgentPerformanceUpdate {
	_u.mutation.ResetTotalCost()
	_u.mutation.SetTotalCost(v)
	return _u
}

// SetNillableTotalCost sets the "total_cost" field if the given value is not nil.
func (_u *AgentPerformanceUpdate) SetNillableTotalCost(v *float64) *AgentPerformanceUpdate {
	if v != nil {
		_u.SetTotalCost(*v)
	}
	return _u
}

// AddTotalCost adds value to the "total_cost" field.
func (_u *AgentPerformanceUpdate) AddTotalCost(v float64) *AgentPerformanceUpdate {
	_u.mutation.AddTotalCost(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentPerformanceUpdate) SetUpdatedAt(v time.Time) *AgentPerformanceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AgentPerformanceMutation object of the builder.
func (_u *AgentPerformanceUpdate) Mutation() *AgentPerformanceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentPerformanceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentPerformanceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentPerformanceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentPerformanceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentPerformanceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentperformance.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *AgentPerformanceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(agentperformance.Table, agentperformance.Columns, sqlgraph.NewFieldSpec(agentperformance.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TotalExecutions(); ok {
		_spec.SetField(agentperformance.FieldTotalExecutions, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalExecutions(); ok {
		_spec.AddField(agentperformance.FieldTotalExecutions, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.SuccessfulExecutions(); ok {
		_spec.SetField(agentperformance.FieldSuccessfulExecutions, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSuccessfulExecutions(); ok {
		_spec.AddField(agentperformance.FieldSuccessfulExecutions, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.FailedExecutions(); ok {
		_spec.SetField(agentperformance.FieldFailedExecutions, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFailedExecutions(); ok {
		_spec.AddField(agentperformance.FieldFailedExecutions, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AvgLatencyMs(); ok {
		_spec.SetField(agentperformance.FieldAvgLatencyMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgLatencyMs(); ok {
		_spec.AddField(agentperformance.FieldAvgLatencyMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalCost(); ok {
		_spec.SetField(agentperformance.FieldTotalCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalCost(); ok {
		_spec.AddField(agentperformance.FieldTotalCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentperformance.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentperformance.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentPerformanceUpdateOne is the builder for updating a single AgentPerformance entity.
type AgentPerformanceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentPerformanceMutation
}

// SetTotalExecutions sets the "total_executions" field.
func (_u *AgentPerformanceUpdateOne) SetTotalExecutions(v int64) *AgentPerformanceUpdateOne {
	_u.mutation.ResetTotalExecutions()
	_u.mutation.SetTotalExecutions(v)
	return _u
}

// SetNillableTotalExecutions sets the "total_executions" field if the given value is not nil.
func (_u *AgentPerformanceUpdateOne) SetNillableTotalExecutions(v *int64) *AgentPerformanceUpdateOne {
	if v != nil {
		_u.SetTotalExecutions(*v)
	}
	return _u
}

// AddTotalExecutions adds value to the "total_executions" field.
func (_u *AgentPerformanceUpdateOne) AddTotalExecutions(v int64) *AgentPerformanceUpdateOne {
	_u.mutation.AddTotalExecutions(v)
	return _u
}

// SetSuccessfulExecutions sets the "successful_executions" field.
func (_u *AgentPerformanceUpdateOne) SetSuccessfulExecutions(v int64) *AgentPerformanceUpdateOne {
	_u.mutation.ResetSuccessfulExecutions()
	_u.mutation.SetSuccessfulExecutions(v)
	return _u
}

// SetNillableSuccessfulExecutions sets the "successful_executions" field if the given value is not nil.
func (_u *AgentPerformanceUpdateOne) SetNillableSuccessfulExecutions(v *int64) *AgentPerformanceUpdateOne {
	if v != nil {
		_u.SetSuccessfulExecutions(*v)
	}
	return _u
}

// AddSuccessfulExecutions adds value to the "successful_executions" field.
func (_u *AgentPerformanceUpdateOne) AddSuccessfulExecutions(v int64) *AgentPerformanceUpdateOne {
	_u.mutation.AddSuccessfulExecutions(v)
	return _u
}

// SetFailedExecutions sets the "failed_executions" field.
func (_u *AgentPerformanceUpdateOne) SetFailedExecutions(v int64) *AgentPerformanceUpdateOne {
	_u.mutation.ResetFailedExecutions()
	_u.mutation.SetFailedExecutions(v)
	return _u
}

// SetNillableFailedExecutions sets the "failed_executions" field if the given value is not nil.
func (_u *AgentPerformanceUpdateOne) SetNillableFailedExecutions(v *int64) *AgentPerformanceUpdateOne {
	if v != nil {
		_u.SetFailedExecutions(*v)
	}
	return _u
}

// AddFailedExecutions adds value to the "failed_executions" field.
func (_u *AgentPerformanceUpdateOne) AddFailedExecutions(v int64) *AgentPerformanceUpdateOne {
	_u.mutation.AddFailedExecutions(v)
	return _u
}

// SetAvgLatencyMs sets the "avg_latency_ms" field.
func (_u *AgentPerformanceUpdateOne) SetAvgLatencyMs(v float64) *AgentPerformanceUpdateOne {
	_u.mutation.ResetAvgLatencyMs()
	_u.mutation.SetAvgLatencyMs(v)
	return _u
}

// SetNillableAvgLatencyMs sets the "avg_latency_ms" field if the given value is not nil.
func (_u *AgentPerformanceUpdateOne) SetNillableAvgLatencyMs(v *float64) *AgentPerformanceUpdateOne {
	if v != nil {
		_u.SetAvgLatencyMs(*v)
	}
	return _u
}

// AddAvgLatencyMs adds value to the "avg_latency_ms" field.
func (_u *AgentPerformanceUpdateOne) AddAvgLatencyMs(v float64) *AgentPerformanceUpdateOne {
	_u.mutation.AddAvgLatencyMs(v)
	return _u
}

// SetTotalCost sets the "total_cost" field.
func (_u *AgentPerformanceUpdateOne) SetTotalCost(v float64) *AgentPerformanceUpdateOne {
	_u.mutation.ResetTotalCost()
	_u.mutation.SetTotalCost(v)
	return _u
}

// SetNillableTotalCost sets the "total_cost" field if the given value is not nil.
func (_u *AgentPerformanceUpdateOne) SetNillableTotalCost(v *float64) *AgentPerformanceUpdateOne {
	if v != nil {
		_u.SetTotalCost(*v)
	}
	return _u
}

// AddTotalCost adds value to the "total_cost" field.
func (_u *AgentPerformanceUpdateOne) AddTotalCost(v float64) *AgentPerformanceUpdateOne {
	_u.mutation.AddTotalCost(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentPerformanceUpdateOne) SetUpdatedAt(v time.Time) *AgentPerformanceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AgentPerformanceMutation object of the builder.
func (_u *AgentPerformanceUpdateOne) Mutation() *AgentPerformanceMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentPerformanceUpdate builder.
func (_u *AgentPerformanceUpdateOne) Where(ps ...predicate.AgentPerformance) *AgentPerformanceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentPerformanceUpdateOne) Select(field string, fields ...string) *AgentPerformanceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentPerformance entity.
func (_u *AgentPerformanceUpdateOne) Save(ctx context.Context) (*AgentPerformance, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentPerformanceUpdateOne) SaveX(ctx context.Context) *AgentPerformance {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentPerformanceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentPerformanceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentPerformanceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentperformance.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *AgentPerformanceUpdateOne) sqlSave(ctx context.Context) (_node *AgentPerformance, err error) {
	_spec := sqlgraph.NewUpdateSpec(agentperformance.Table, agentperformance.Columns, sqlgraph.NewFieldSpec(agentperformance.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentPerformance.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentperformance.FieldID)
		for _, f := range fields {
			if !agentperformance.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentperformance.FieldID {
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
	if value, ok := _u.mutation.TotalExecutions(); ok {
		_spec.SetField(agentperformance.FieldTotalExecutions, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalExecutions(); ok {
		_spec.AddField(agentperformance.FieldTotalExecutions, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.SuccessfulExecutions(); ok {
		_spec.SetField(agentperformance.FieldSuccessfulExecutions, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSuccessfulExecutions(); ok {
		_spec.AddField(agentperformance.FieldSuccessfulExecutions, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.FailedExecutions(); ok {
		_spec.SetField(agentperformance.FieldFailedExecutions, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFailedExecutions(); ok {
		_spec.AddField(agentperformance.FieldFailedExecutions, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AvgLatencyMs(); ok {
		_spec.SetField(agentperformance.FieldAvgLatencyMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgLatencyMs(); ok {
		_spec.AddField(agentperformance.FieldAvgLatencyMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalCost(); ok {
		_spec.SetField(agentperformance.FieldTotalCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalCost(); ok {
		_spec.AddField(agentperformance.FieldTotalCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentperformance.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &AgentPerformance{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentperformance.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
