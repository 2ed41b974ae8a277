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
	"github.com/maestro-run/maestro/ent/manualtask"
	"github.com/maestro-run/maestro/ent/predicate"
)

// ManualTaskUpdate is the builder for updating ManualTask entities.
type ManualTaskUpdate struct {
	config
	hooks    []Hook
	mutation *ManualTaskMutation
}

// Where appends a list predicates to the ManualTaskUpdate builder.
func (_u *ManualTaskUpdate) Where(ps ...predicate.ManualTask) *ManualTaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *ManualTaskUpdate) SetTitle(v string) *ManualTaskUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ManualTaskUpdate) SetNillableTitle(v *string) *ManualTaskUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ManualTaskUpdate) SetDescription(v string) *ManualTaskUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ManualTaskUpdate) SetNillableDescription(v *string) *ManualTaskUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *ManualTaskUpdate) SetPriority(v int) *ManualTaskUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *ManualTaskUpdate) SetNillablePriority(v *int) *ManualTaskUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *ManualTaskUpdate) AddPriority(v int) *ManualTaskUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ManualTaskUpdate) SetStatus(v manualtask.Status) *ManualTaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ManualTaskUpdate) SetNillableStatus(v *manualtask.Status) *ManualTaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ManualTaskUpdate) SetMetadata(v map[string]interface{}) *ManualTaskUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ManualTaskUpdate) ClearMetadata() *ManualTaskUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *ManualTaskUpdate) SetResolvedAt(v time.Time) *ManualTaskUpdate {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *ManualTaskUpdate) SetNillableResolvedAt(v *time.Time) *ManualTaskUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *ManualTaskUpdate) ClearResolvedAt() *ManualTaskUpdate {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the ManualTaskMutation object of the builder.
func (_u *ManualTaskUpdate) Mutation() *ManualTaskMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ManualTaskUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ManualTaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ManualTaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ManualTaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ManualTaskUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := manualtask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ManualTask.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ManualTaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(manualtask.Table, manualtask.Columns, sqlgraph.NewFieldSpec(manualtask.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(manualtask.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(manualtask.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(manualtask.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(manualtask.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(manualtask.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(manualtask.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(manualtask.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(manualtask.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(manualtask.FieldResolvedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{manualtask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ManualTaskUpdateOne is the builder for updating a single ManualTask entity.
type ManualTaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ManualTaskMutation
}

// SetTitle sets the "title" field.
func (_u *ManualTaskUpdateOne) SetTitle(v string) *ManualTaskUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ManualTaskUpdateOne) SetNillableTitle(v *string) *ManualTaskUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ManualTaskUpdateOne) SetDescription(v string) *ManualTaskUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ManualTaskUpdateOne) SetNillableDescription(v *string) *ManualTaskUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *ManualTaskUpdateOne) SetPriority(v int) *ManualTaskUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *ManualTaskUpdateOne) SetNillablePriority(v *int) *ManualTaskUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *ManualTaskUpdateOne) AddPriority(v int) *ManualTaskUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ManualTaskUpdateOne) SetStatus(v manualtask.Status) *ManualTaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ManualTaskUpdateOne) SetNillableStatus(v *manualtask.Status) *ManualTaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ManualTaskUpdateOne) SetMetadata(v map[string]interface{}) *ManualTaskUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ManualTaskUpdateOne) ClearMetadata() *ManualTaskUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *ManualTaskUpdateOne) SetResolvedAt(v time.Time) *ManualTaskUpdateOne {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *ManualTaskUpdateOne) SetNillableResolvedAt(v *time.Time) *ManualTaskUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *ManualTaskUpdateOne) ClearResolvedAt() *ManualTaskUpdateOne {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the ManualTaskMutation object of the builder.
func (_u *ManualTaskUpdateOne) Mutation() *ManualTaskMutation {
	return _u.mutation
}

// Where appends a list predicates to the ManualTaskUpdate builder.
func (_u *ManualTaskUpdateOne) Where(ps ...predicate.ManualTask) *ManualTaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ManualTaskUpdateOne) Select(field string, fields ...string) *ManualTaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ManualTask entity.
func (_u *ManualTaskUpdateOne) Save(ctx context.Context) (*ManualTask, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ManualTaskUpdateOne) SaveX(ctx context.Context) *ManualTask {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ManualTaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ManualTaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ManualTaskUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := manualtask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ManualTask.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ManualTaskUpdateOne) sqlSave(ctx context.Context) (_node *ManualTask, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(manualtask.Table, manualtask.Columns, sqlgraph.NewFieldSpec(manualtask.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ManualTask.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, manualtask.FieldID)
		for _, f := range fields {
			if !manualtask.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != manualtask.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(manualtask.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(manualtask.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(manualtask.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(manualtask.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(manualtask.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(manualtask.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(manualtask.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(manualtask.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(manualtask.FieldResolvedAt, field.TypeTime)
	}
	_node = &ManualTask{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{manualtask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
