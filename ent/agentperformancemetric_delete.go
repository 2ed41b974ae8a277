// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/maestro-run/maestro/ent/agentperformancemetric"
	"github.com/maestro-run/maestro/ent/predicate"
)

// AgentPerformanceMetricDelete is the builder for deleting a AgentPerformanceMetric entity.
type AgentPerformanceMetricDelete struct {
	config
	hooks    []Hook
	mutation *AgentPerformanceMetricMutation
}

// Where appends a list predicates to the AgentPerformanceMetricDelete builder.
func (_d *AgentPerformanceMetricDelete) Where(ps ...predicate.AgentPerformanceMetric) *AgentPerformanceMetricDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AgentPerformanceMetricDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AgentPerformanceMetricDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AgentPerformanceMetricDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(agentperformancemetric.Table, sqlgraph.NewFieldSpec(agentperformancemetric.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// AgentPerformanceMetricDeleteOne is the builder for deleting a single AgentPerformanceMetric entity.
type AgentPerformanceMetricDeleteOne struct {
	_d *AgentPerformanceMetricDelete
}

// Where appends a list predicates to the AgentPerformanceMetricDelete builder.
func (_d *AgentPerformanceMetricDeleteOne) Where(ps ...predicate.AgentPerformanceMetric) *AgentPerformanceMetricDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AgentPerformanceMetricDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{agentperformancemetric.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AgentPerformanceMetricDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
