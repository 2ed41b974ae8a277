// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/maestro-run/maestro/ent/agentperformancemetric"
	"github.com/maestro-run/maestro/ent/predicate"
)

// AgentPerformanceMetricUpdate is the builder for updating AgentPerformanceMetric entities.
type AgentPerformanceMetricUpdate struct {
	config
	hooks    []Hook
	mutation *AgentPerformanceMetricMutation
}

// Where appends a list predicates to the AgentPerformanceMetricUpdate builder.
func (_u *AgentPerformanceMetricUpdate) Where(ps ...predicate.AgentPerformanceMetric) *AgentPerformanceMetricUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTags sets the "tags" field.
func (_u *AgentPerformanceMetricUpdate) SetTags(v map[string]string) *AgentPerformanceMetricUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *AgentPerformanceMetricUpdate) ClearTags() *AgentPerformanceMetricUpdate {
	_u.mutation.ClearTags()
	return _u
}

// Mutation returns the AgentPerformanceMetricMutation object of the builder.
func (_u *AgentPerformanceMetricUpdate) Mutation() *AgentPerformanceMetricMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentPerformanceMetricUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentPerformanceMetricUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentPerformanceMetricUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentPerformanceMetricUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AgentPerformanceMetricUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(agentperformancemetric.Table, agentperformancemetric.Columns, sqlgraph.NewFieldSpec(agentperformancemetric.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(agentperformancemetric.FieldTags, field.TypeJSON, value)
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(agentperformancemetric.FieldTags, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentperformancemetric.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentPerformanceMetricUpdateOne is the builder for updating a single AgentPerformanceMetric entity.
type AgentPerformanceMetricUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentPerformanceMetricMutation
}

// SetTags sets the "tags" field.
func (_u *AgentPerformanceMetricUpdateOne) SetTags(v map[string]string) *AgentPerformanceMetricUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *AgentPerformanceMetricUpdateOne) ClearTags() *AgentPerformanceMetricUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// Mutation returns the AgentPerformanceMetricMutation object of the builder.
func (_u *AgentPerformanceMetricUpdateOne) Mutation() *AgentPerformanceMetricMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentPerformanceMetricUpdate builder.
func (_u *AgentPerformanceMetricUpdateOne) Where(ps ...predicate.AgentPerformanceMetric) *AgentPerformanceMetricUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentPerformanceMetricUpdateOne) Select(field string, fields ...string) *AgentPerformanceMetricUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentPerformanceMetric entity.
func (_u *AgentPerformanceMetricUpdateOne) Save(ctx context.Context) (*AgentPerformanceMetric, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentPerformanceMetricUpdateOne) SaveX(ctx context.Context) *AgentPerformanceMetric {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentPerformanceMetricUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentPerformanceMetricUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AgentPerformanceMetricUpdateOne) sqlSave(ctx context.Context) (_node *AgentPerformanceMetric, err error) {
	_spec := sqlgraph.NewUpdateSpec(agentperformancemetric.Table, agentperformancemetric.Columns, sqlgraph.NewFieldSpec(agentperformancemetric.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentPerformanceMetric.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentperformancemetric.FieldID)
		for _, f := range fields {
			if !agentperformancemetric.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentperformancemetric.FieldID {
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
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(agentperformancemetric.FieldTags, field.TypeJSON, value)
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(agentperformancemetric.FieldTags, field.TypeJSON)
	}
	_node = &AgentPerformanceMetric{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentperformancemetric.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
