// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/maestro-run/maestro/ent/predicate"
	"github.com/maestro-run/maestro/ent/taskworker"
)

// TaskWorkerUpdate is the builder for updating TaskWorker entities.
type TaskWorkerUpdate struct {
	config
	hooks    []Hook
	mutation *TaskWorkerMutation
}

// Where appends a list predicates to the TaskWorkerUpdate builder.
func (_u *TaskWorkerUpdate) Where(ps ...predicate.TaskWorker) *TaskWorkerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *TaskWorkerUpdate) SetKind(v string) *TaskWorkerUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *TaskWorkerUpdate) SetNillableKind(v *string) *TaskWorkerUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetHostname sets the "hostname" field.
func (_u *TaskWorkerUpdate) SetHostname(v string) *TaskWorkerUpdate {
	_u.mutation.SetHostname(v)
	return _u
}

// SetNillableHostname sets the "hostname" field if the given value is not nil.
func (_u *TaskWorkerUpdate) SetNillableHostname(v *string) *TaskWorkerUpdate {
	if v != nil {
		_u.SetHostname(*v)
	}
	return _u
}

// SetPid sets the "pid" field.
func (_u *TaskWorkerUpdate) SetPid(v int) *TaskWorkerUpdate {
	_u.mutation.ResetPid()
	_u.mutation.SetPid(v)
	return _u
}

// SetNillablePid sets the "pid" field if the given value is not nil.
func (_u *TaskWorkerUpdate) SetNillablePid(v *int) *TaskWorkerUpdate {
	if v != nil {
		_u.SetPid(*v)
	}
	return _u
}

// AddPid adds value to the "pid" field.
func (_u *TaskWorkerUpdate) AddPid(v int) *TaskWorkerUpdate {
	_u.mutation.AddPid(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskWorkerUpdate) SetStatus(v taskworker.Status) *TaskWorkerUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskWorkerUpdate) SetNillableStatus(v *taskworker.Status) *TaskWorkerUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMaxTasks sets the "max_tasks" field.
func (_u *TaskWorkerUpdate) SetMaxTasks(v int) *TaskWorkerUpdate {
	_u.mutation.ResetMaxTasks()
	_u.mutation.SetMaxTasks(v)
	return _u
}

// SetNillableMaxTasks sets the "max_tasks" field if the given value is not nil.
func (_u *TaskWorkerUpdate) SetNillableMaxTasks(v *int) *TaskWorkerUpdate {
	if v != nil {
		_u.SetMaxTasks(*v)
	}
	return _u
}

// AddMaxTasks adds value to the "max_tasks" field.
func (_u *TaskWorkerUpdate) AddMaxTasks(v int) *TaskWorkerUpdate {
	_u.mutation.AddMaxTasks(v)
	return _u
}

// SetActiveTasks sets the "active_tasks" field.
func (_u *TaskWorkerUpdate) SetActiveTasks(v int) *TaskWorkerUpdate {
	_u.mutation.ResetActiveTasks()
	_u.mutation.SetActiveTasks(v)
	return _u
}

// SetNillableActiveTasks sets the "active_tasks" field if the given value is not nil.
func (_u *TaskWorkerUpdate) SetNillableActiveTasks(v *int) *TaskWorkerUpdate {
	if v != nil {
		_u.SetActiveTasks(*v)
	}
	return _u
}

// AddActiveTasks adds value to the "active_tasks" field.
func (_u *TaskWorkerUpdate) AddActiveTasks(v int) *TaskWorkerUpdate {
	_u.mutation.AddActiveTasks(v)
	return _u
}

// SetQueues sets the "queues" field.
func (_u *TaskWorkerUpdate) SetQueues(v []string) *TaskWorkerUpdate {
	_u.mutation.SetQueues(v)
	return _u
}

// AppendQueues appends value to the "queues" field.
func (_u *TaskWorkerUpdate) AppendQueues(v []string) *TaskWorkerUpdate {
	_u.mutation.AppendQueues(v)
	return _u
}

// SetCapabilities sets the "capabilities" field.
func (_u *TaskWorkerUpdate) SetCapabilities(v map[string]interface{}) *TaskWorkerUpdate {
	_u.mutation.SetCapabilities(v)
	return _u
}

// ClearCapabilities clears the value of the "capabilities" field.
func (_u *TaskWorkerUpdate) ClearCapabilities() *TaskWorkerUpdate {
	_u.mutation.ClearCapabilities()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *TaskWorkerUpdate) SetMetadata(v map[string]interface{}) *TaskWorkerUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *TaskWorkerUpdate) ClearMetadata() *TaskWorkerUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (_u *TaskWorkerUpdate) SetLastHeartbeat(v time.Time) *TaskWorkerUpdate {
	_u.mutation.SetLastHeartbeat(v)
	return _u
}

// SetNillableLastHeartbeat sets the "last_heartbeat" field if the given value is not nil.
func (_u *TaskWorkerUpdate) SetNillableLastHeartbeat(v *time.Time) *TaskWorkerUpdate {
	if v != nil {
		_u.SetLastHeartbeat(*v)
	}
	return _u
}

// Mutation returns the TaskWorkerMutation object of the builder.
func (_u *TaskWorkerUpdate) Mutation() *TaskWorkerMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskWorkerUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskWorkerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskWorkerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskWorkerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskWorkerUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := taskworker.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TaskWorker.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskWorkerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taskworker.Table, taskworker.Columns, sqlgraph.NewFieldSpec(taskworker.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(taskworker.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Hostname(); ok {
		_spec.SetField(taskworker.FieldHostname, field.TypeString, value)
	}
	if value, ok := _u.mutation.Pid(); ok {
		_spec.SetField(taskworker.FieldPid, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPid(); ok {
		_spec.AddField(taskworker.FieldPid, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(taskworker.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MaxTasks(); ok {
		_spec.SetField(taskworker.FieldMaxTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxTasks(); ok {
		_spec.AddField(taskworker.FieldMaxTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ActiveTasks(); ok {
		_spec.SetField(taskworker.FieldActiveTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActiveTasks(); ok {
		_spec.AddField(taskworker.FieldActiveTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Queues(); ok {
		_spec.SetField(taskworker.FieldQueues, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQueues(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, taskworker.FieldQueues, value)
		})
	}
	if value, ok := _u.mutation.Capabilities(); ok {
		_spec.SetField(taskworker.FieldCapabilities, field.TypeJSON, value)
	}
	if _u.mutation.CapabilitiesCleared() {
		_spec.ClearField(taskworker.FieldCapabilities, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(taskworker.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(taskworker.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastHeartbeat(); ok {
		_spec.SetField(taskworker.FieldLastHeartbeat, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskworker.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskWorkerUpdateOne is the builder for updating a single TaskWorker entity.
type TaskWorkerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskWorkerMutation
}

// SetKind sets the "kind" field.
func (_u *TaskWorkerUpdateOne) SetKind(v string) *TaskWorkerUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *TaskWorkerUpdateOne) SetNillableKind(v *string) *TaskWorkerUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetHostname sets the "hostname" field.
func (_u *TaskWorkerUpdateOne) SetHostname(v string) *TaskWorkerUpdateOne {
	_u.mutation.SetHostname(v)
	return _u
}

// SetNillableHostname sets the "hostname" field if the given value is not nil.
func (_u *TaskWorkerUpdateOne) SetNillableHostname(v *string) *TaskWorkerUpdateOne {
	if v != nil {
		_u.SetHostname(*v)
	}
	return _u
}

// SetPid sets the "pid" field.
func (_u *TaskWorkerUpdateOne) SetPid(v int) *TaskWorkerUpdateOne {
	_u.mutation.ResetPid()
	_u.mutation.SetPid(v)
	return _u
}

// SetNillablePid sets the "pid" field if the given value is not nil.
func (_u *TaskWorkerUpdateOne) SetNillablePid(v *int) *TaskWorkerUpdateOne {
	if v != nil {
		_u.SetPid(*v)
	}
	return _u
}

// AddPid adds value to the "pid" field.
func (_u *TaskWorkerUpdateOne) AddPid(v int) *TaskWorkerUpdateOne {
	_u.mutation.AddPid(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskWorkerUpdateOne) SetStatus(v taskworker.Status) *TaskWorkerUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskWorkerUpdateOne) SetNillableStatus(v *taskworker.Status) *TaskWorkerUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMaxTasks sets the "max_tasks" field.
func (_u *TaskWorkerUpdateOne) SetMaxTasks(v int) *TaskWorkerUpdateOne {
	_u.mutation.ResetMaxTasks()
	_u.mutation.SetMaxTasks(v)
	return _u
}

// SetNillableMaxTasks sets the "max_tasks" field if the given value is not nil.
func (_u *TaskWorkerUpdateOne) SetNillableMaxTasks(v *int) *TaskWorkerUpdateOne {
	if v != nil {
		_u.SetMaxTasks(*v)
	}
	return _u
}

// AddMaxTasks adds value to the "max_tasks" field.
func (_u *TaskWorkerUpdateOne) AddMaxTasks(v int) *TaskWorkerUpdateOne {
	_u.mutation.AddMaxTasks(v)
	return _u
}

// SetActiveTasks sets the "active_tasks" field.
func (_u *TaskWorkerUpdateOne) SetActiveTasks(v int) *TaskWorkerUpdateOne {
	_u.mutation.ResetActiveTasks()
	_u.mutation.SetActiveTasks(v)
	return _u
}

// SetNillableActiveTasks sets the "active_tasks" field if the given value is not nil.
func (_u *TaskWorkerUpdateOne) SetNillableActiveTasks(v *int) *TaskWorkerUpdateOne {
	if v != nil {
		_u.SetActiveTasks(*v)
	}
	return _u
}

// AddActiveTasks adds value to the "active_tasks" field.
func (_u *TaskWorkerUpdateOne) AddActiveTasks(v int) *TaskWorkerUpdateOne {
	_u.mutation.AddActiveTasks(v)
	return _u
}

// SetQueues sets the "queues" field.
func (_u *TaskWorkerUpdateOne) SetQueues(v []string) *TaskWorkerUpdateOne {
	_u.mutation.SetQueues(v)
	return _u
}

// AppendQueues appends value to the "queues" field.
func (_u *TaskWorkerUpdateOne) AppendQueues(v []string) *TaskWorkerUpdateOne {
	_u.mutation.AppendQueues(v)
	return _u
}

// SetCapabilities sets the "capabilities" field.
func (_u *TaskWorkerUpdateOne) SetCapabilities(v map[string]interface{}) *TaskWorkerUpdateOne {
	_u.mutation.SetCapabilities(v)
	return _u
}

// ClearCapabilities clears the value of the "capabilities" field.
func (_u *TaskWorkerUpdateOne) ClearCapabilities() *TaskWorkerUpdateOne {
	_u.mutation.ClearCapabilities()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *TaskWorkerUpdateOne) SetMetadata(v map[string]interface{}) *TaskWorkerUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *TaskWorkerUpdateOne) ClearMetadata() *TaskWorkerUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (_u *TaskWorkerUpdateOne) SetLastHeartbeat(v time.Time) *TaskWorkerUpdateOne {
	_u.mutation.SetLastHeartbeat(v)
	return _u
}

// SetNillableLastHeartbeat sets the "last_heartbeat" field if the given value is not nil.
func (_u *TaskWorkerUpdateOne) SetNillableLastHeartbeat(v *time.Time) *TaskWorkerUpdateOne {
	if v != nil {
		_u.SetLastHeartbeat(*v)
	}
	return _u
}

// Mutation returns the TaskWorkerMutation object of the builder.
func (_u *TaskWorkerUpdateOne) Mutation() *TaskWorkerMutation {
	return _u.mutation
}

// Where appends a list predicates to the TaskWorkerUpdate builder.
func (_u *TaskWorkerUpdateOne) Where(ps ...predicate.TaskWorker) *TaskWorkerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskWorkerUpdateOne) Select(field string, fields ...string) *TaskWorkerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TaskWorker entity.
func (_u *TaskWorkerUpdateOne) Save(ctx context.Context) (*TaskWorker, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskWorkerUpdateOne) SaveX(ctx context.Context) *TaskWorker {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskWorkerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskWorkerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskWorkerUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := taskworker.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TaskWorker.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskWorkerUpdateOne) sqlSave(ctx context.Context) (_node *TaskWorker, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taskworker.Table, taskworker.Columns, sqlgraph.NewFieldSpec(taskworker.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TaskWorker.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, taskworker.FieldID)
		for _, f := range fields {
			if !taskworker.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != taskworker.FieldID {
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
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(taskworker.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Hostname(); ok {
		_spec.SetField(taskworker.FieldHostname, field.TypeString, value)
	}
	if value, ok := _u.mutation.Pid(); ok {
		_spec.SetField(taskworker.FieldPid, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPid(); ok {
		_spec.AddField(taskworker.FieldPid, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(taskworker.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MaxTasks(); ok {
		_spec.SetField(taskworker.FieldMaxTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxTasks(); ok {
		_spec.AddField(taskworker.FieldMaxTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ActiveTasks(); ok {
		_spec.SetField(taskworker.FieldActiveTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActiveTasks(); ok {
		_spec.AddField(taskworker.FieldActiveTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Queues(); ok {
		_spec.SetField(taskworker.FieldQueues, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQueues(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, taskworker.FieldQueues, value)
		})
	}
	if value, ok := _u.mutation.Capabilities(); ok {
		_spec.SetField(taskworker.FieldCapabilities, field.TypeJSON, value)
	}
	if _u.mutation.CapabilitiesCleared() {
		_spec.ClearField(taskworker.FieldCapabilities, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(taskworker.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(taskworker.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastHeartbeat(); ok {
		_spec.SetField(taskworker.FieldLastHeartbeat, field.TypeTime, value)
	}
	_node = &TaskWorker{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskworker.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
