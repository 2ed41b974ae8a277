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
	"github.com/maestro-run/maestro/ent/leaderelection"
	"github.com/maestro-run/maestro/ent/predicate"
)

// LeaderElectionUpdate is the builder for updating LeaderElection entities.
type LeaderElectionUpdate struct {
	config
	hooks    []Hook
	mutation *LeaderElectionMutation
}

// Where appends a list predicates to the LeaderElectionUpdate builder.
func (_u *LeaderElectionUpdate) Where(ps ...predicate.LeaderElection) *LeaderElectionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *LeaderElectionUpdate) SetNodeID(v string) *LeaderElectionUpdate {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *LeaderElectionUpdate) SetNillableNodeID(v *string) *LeaderElectionUpdate {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// SetTerm sets the "term" field.
func (_u *LeaderElectionUpdate) SetTerm(v int64) *LeaderElectionUpdate {
	_u.mutation.ResetTerm()
	_u.mutation.SetTerm(v)
	return _u
}

// SetNillableTerm sets the "term" field if the given value is not nil.
func (_u *LeaderElectionUpdate) SetNillableTerm(v *int64) *LeaderElectionUpdate {
	if v != nil {
		_u.SetTerm(*v)
	}
	return _u
}

// AddTerm adds value to the "term" field.
func (_u *LeaderElectionUpdate) AddTerm(v int64) *LeaderElectionUpdate {
	_u.mutation.AddTerm(v)
	return _u
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (_u *LeaderElectionUpdate) SetLeaseExpiresAt(v time.Time) *LeaderElectionUpdate {
	_u.mutation.SetLeaseExpiresAt(v)
	return _u
}

// SetNillableLeaseExpiresAt sets the "lease_expires_at" field if the given value is not nil.
func (_u *LeaderElectionUpdate) SetNillableLeaseExpiresAt(v *time.Time) *LeaderElectionUpdate {
	if v != nil {
		_u.SetLeaseExpiresAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LeaderElectionUpdate) SetUpdatedAt(v time.Time) *LeaderElectionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LeaderElectionMutation object of the builder.
func (_u *LeaderElectionUpdate) Mutation() *LeaderElectionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LeaderElectionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LeaderElectionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LeaderElectionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LeaderElectionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LeaderElectionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := leaderelection.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *LeaderElectionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(leaderelection.Table, leaderelection.Columns, sqlgraph.NewFieldSpec(leaderelection.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.NodeID(); ok {
		_spec.SetField(leaderelection.FieldNodeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Term(); ok {
		_spec.SetField(leaderelection.FieldTerm, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTerm(); ok {
		_spec.AddField(leaderelection.FieldTerm, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LeaseExpiresAt(); ok {
		_spec.SetField(leaderelection.FieldLeaseExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(leaderelection.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{leaderelection.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LeaderElectionUpdateOne is the builder for updating a single LeaderElection entity.
type LeaderElectionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LeaderElectionMutation
}

// SetNodeID sets the "node_id" field.
func (_u *LeaderElectionUpdateOne) SetNodeID(v string) *LeaderElectionUpdateOne {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *LeaderElectionUpdateOne) SetNillableNodeID(v *string) *LeaderElectionUpdateOne {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// SetTerm sets the "term" field.
func (_u *LeaderElectionUpdateOne) SetTerm(v int64) *LeaderElectionUpdateOne {
	_u.mutation.ResetTerm()
	_u.mutation.SetTerm(v)
	return _u
}

// SetNillableTerm sets the "term" field if the given value is not nil.
func (_u *LeaderElectionUpdateOne) SetNillableTerm(v *int64) *LeaderElectionUpdateOne {
	if v != nil {
		_u.SetTerm(*v)
	}
	return _u
}

// AddTerm adds value to the "term" field.
func (_u *LeaderElectionUpdateOne) AddTerm(v int64) *LeaderElectionUpdateOne {
	_u.mutation.AddTerm(v)
	return _u
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (_u *LeaderElectionUpdateOne) SetLeaseExpiresAt(v time.Time) *LeaderElectionUpdateOne {
	_u.mutation.SetLeaseExpiresAt(v)
	return _u
}

// SetNillableLeaseExpiresAt sets the "lease_expires_at" field if the given value is not nil.
func (_u *LeaderElectionUpdateOne) SetNillableLeaseExpiresAt(v *time.Time) *LeaderElectionUpdateOne {
	if v != nil {
		_u.SetLeaseExpiresAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LeaderElectionUpdateOne) SetUpdatedAt(v time.Time) *LeaderElectionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LeaderElectionMutation object of the builder.
func (_u *LeaderElectionUpdateOne) Mutation() *LeaderElectionMutation {
	return _u.mutation
}

// Where appends a list predicates to the LeaderElectionUpdate builder.
func (_u *LeaderElectionUpdateOne) Where(ps ...predicate.LeaderElection) *LeaderElectionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LeaderElectionUpdateOne) Select(field string, fields ...string) *LeaderElectionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LeaderElection entity.
func (_u *LeaderElectionUpdateOne) Save(ctx context.Context) (*LeaderElection, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LeaderElectionUpdateOne) SaveX(ctx context.Context) *LeaderElection {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LeaderElectionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LeaderElectionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LeaderElectionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := leaderelection.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *LeaderElectionUpdateOne) sqlSave(ctx context.Context) (_node *LeaderElection, err error) {
	_spec := sqlgraph.NewUpdateSpec(leaderelection.Table, leaderelection.Columns, sqlgraph.NewFieldSpec(leaderelection.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LeaderElection.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, leaderelection.FieldID)
		for _, f := range fields {
			if !leaderelection.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != leaderelection.FieldID {
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
	if value, ok := _u.mutation.NodeID(); ok {
		_spec.SetField(leaderelection.FieldNodeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Term(); ok {
		_spec.SetField(leaderelection.FieldTerm, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTerm(); ok {
		_spec.AddField(leaderelection.FieldTerm, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LeaseExpiresAt(); ok {
		_spec.SetField(leaderelection.FieldLeaseExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(leaderelection.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &LeaderElection{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{leaderelection.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
