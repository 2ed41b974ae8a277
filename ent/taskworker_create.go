// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/maestro-run/maestro/ent/taskworker"
)

// TaskWorkerCreate is the builder for creating a TaskWorker entity.
type TaskWorkerCreate struct {
	config
	mutation *TaskWorkerMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetKind sets the "kind" field.
func (_c *TaskWorkerCreate) SetKind(v string) *TaskWorkerCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_c *TaskWorkerCreate) SetNillableKind(v *string) *TaskWorkerCreate {
	if v != nil {
		_c.SetKind(*v)
	}
	return _c
}

// SetHostname sets the "hostname" field.
func (_c *TaskWorkerCreate) SetHostname(v string) *TaskWorkerCreate {
	_c.mutation.SetHostname(v)
	return _c
}

// SetPid sets the "pid" field.
func (_c *TaskWorkerCreate) SetPid(v int) *TaskWorkerCreate {
	_c.mutation.SetPid(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *TaskWorkerCreate) SetStatus(v taskworker.Status) *TaskWorkerCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TaskWorkerCreate) SetNillableStatus(v *taskworker.Status) *TaskWorkerCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetMaxTasks sets the "max_tasks" field.
func (_c *TaskWorkerCreate) SetMaxTasks(v int) *TaskWorkerCreate {
	_c.mutation.SetMaxTasks(v)
	return _c
}

// SetNillableMaxTasks sets the "max_tasks" field if the given value is not nil.
func (_c *TaskWorkerCreate) SetNillableMaxTasks(v *int) *TaskWorkerCreate {
	if v != nil {
		_c.SetMaxTasks(*v)
	}
	return _c
}

// SetActiveTasks sets the "active_tasks" field.
func (_c *TaskWorkerCreate) SetActiveTasks(v int) *TaskWorkerCreate {
	_c.mutation.SetActiveTasks(v)
	return _c
}

// SetNillableActiveTasks sets the "active_tasks" field if the given value is not nil.
func (_c *TaskWorkerCreate) SetNillableActiveTasks(v *int) *TaskWorkerCreate {
	if v != nil {
		_c.SetActiveTasks(*v)
	}
	return _c
}

// SetQueues sets the "queues" field.
func (_c *TaskWorkerCreate) SetQueues(v []string) *TaskWorkerCreate {
	_c.mutation.SetQueues(v)
	return _c
}

// SetCapabilities sets the "capabilities" field.
func (_c *TaskWorkerCreate) SetCapabilities(v map[string]interface{}) *TaskWorkerCreate {
	_c.mutation.SetCapabilities(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *TaskWorkerCreate) SetMetadata(v map[string]interface{}) *TaskWorkerCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (_c *TaskWorkerCreate) SetLastHeartbeat(v time.Time) *TaskWorkerCreate {
	_c.mutation.SetLastHeartbeat(v)
	return _c
}

// SetNillableLastHeartbeat sets the "last_heartbeat" field if the given value is not nil.
func (_c *TaskWorkerCreate) SetNillableLastHeartbeat(v *time.Time) *TaskWorkerCreate {
	if v != nil {
		_c.SetLastHeartbeat(*v)
	}
	return _c
}

// SetRegisteredAt sets the "registered_at" field.
func (_c *TaskWorkerCreate) SetRegisteredAt(v time.Time) *TaskWorkerCreate {
	_c.mutation.SetRegisteredAt(v)
	return _c
}

// SetNillableRegisteredAt sets the "registered_at" field if the given value is not nil.
func (_c *TaskWorkerCreate) SetNillableRegisteredAt(v *time.Time) *TaskWorkerCreate {
	if v != nil {
		_c.SetRegisteredAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TaskWorkerCreate) SetID(v string) *TaskWorkerCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the TaskWorkerMutation object of the builder.
func (_c *TaskWorkerCreate) Mutation() *TaskWorkerMutation {
	return _c.mutation
}

// Save creates the TaskWorker in the database.
func (_c *TaskWorkerCreate) Save(ctx context.Context) (*TaskWorker, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskWorkerCreate) SaveX(ctx context.Context) *TaskWorker {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskWorkerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskWorkerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskWorkerCreate) defaults() {
	if _, ok := _c.mutation.Kind(); !ok {
		v := taskworker.DefaultKind
		_c.mutation.SetKind(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := taskworker.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.MaxTasks(); !ok {
		v := taskworker.DefaultMaxTasks
		_c.mutation.SetMaxTasks(v)
	}
	if _, ok := _c.mutation.ActiveTasks(); !ok {
		v := taskworker.DefaultActiveTasks
		_c.mutation.SetActiveTasks(v)
	}
	if _, ok := _c.mutation.Queues(); !ok {
		v := taskworker.DefaultQueues
		_c.mutation.SetQueues(v)
	}
	if _, ok := _c.mutation.LastHeartbeat(); !ok {
		v := taskworker.DefaultLastHeartbeat()
		_c.mutation.SetLastHeartbeat(v)
	}
	if _, ok := _c.mutation.RegisteredAt(); !ok {
		v := taskworker.DefaultRegisteredAt()
		_c.mutation.SetRegisteredAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskWorkerCreate) check() error {
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "TaskWorker.kind"`)}
	}
	if _, ok := _c.mutation.Hostname(); !ok {
		return &ValidationError{Name: "hostname", err: errors.New(`ent: missing required field "TaskWorker.hostname"`)}
	}
	if _, ok := _c.mutation.Pid(); !ok {
		return &ValidationError{Name: "pid", err: errors.New(`ent: missing required field "TaskWorker.pid"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "TaskWorker.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := taskworker.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TaskWorker.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MaxTasks(); !ok {
		return &ValidationError{Name: "max_tasks", err: errors.New(`ent: missing required field "TaskWorker.max_tasks"`)}
	}
	if _, ok := _c.mutation.ActiveTasks(); !ok {
		return &ValidationError{Name: "active_tasks", err: errors.New(`ent: missing required field "TaskWorker.active_tasks"`)}
	}
	if _, ok := _c.mutation.Queues(); !ok {
		return &ValidationError{Name: "queues", err: errors.New(`ent: missing required field "TaskWorker.queues"`)}
	}
	if _, ok := _c.mutation.LastHeartbeat(); !ok {
		return &ValidationError{Name: "last_heartbeat", err: errors.New(`ent: missing required field "TaskWorker.last_heartbeat"`)}
	}
	if _, ok := _c.mutation.RegisteredAt(); !ok {
		return &ValidationError{Name: "registered_at", err: errors.New(`ent: missing required field "TaskWorker.registered_at"`)}
	}
	return nil
}

func (_c *TaskWorkerCreate) sqlSave(ctx context.Context) (*TaskWorker, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected TaskWorker.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TaskWorkerCreate) createSpec() (*TaskWorker, *sqlgraph.CreateSpec) {
	var (
		_node = &TaskWorker{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(taskworker.Table, sqlgraph.NewFieldSpec(taskworker.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(taskworker.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Hostname(); ok {
		_spec.SetField(taskworker.FieldHostname, field.TypeString, value)
		_node.Hostname = value
	}
	if value, ok := _c.mutation.Pid(); ok {
		_spec.SetField(taskworker.FieldPid, field.TypeInt, value)
		_node.Pid = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(taskworker.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.MaxTasks(); ok {
		_spec.SetField(taskworker.FieldMaxTasks, field.TypeInt, value)
		_node.MaxTasks = value
	}
	if value, ok := _c.mutation.ActiveTasks(); ok {
		_spec.SetField(taskworker.FieldActiveTasks, field.TypeInt, value)
		_node.ActiveTasks = value
	}
	if value, ok := _c.mutation.Queues(); ok {
		_spec.SetField(taskworker.FieldQueues, field.TypeJSON, value)
		_node.Queues = value
	}
	if value, ok := _c.mutation.Capabilities(); ok {
		_spec.SetField(taskworker.FieldCapabilities, field.TypeJSON, value)
		_node.Capabilities = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(taskworker.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.LastHeartbeat(); ok {
		_spec.SetField(taskworker.FieldLastHeartbeat, field.TypeTime, value)
		_node.LastHeartbeat = value
	}
	if value, ok := _c.mutation.RegisteredAt(); ok {
		_spec.SetField(taskworker.FieldRegisteredAt, field.TypeTime, value)
		_node.RegisteredAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TaskWorker.Create().
//		SetKind(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskWorkerUpsert) {
//			SetKind(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskWorkerCreate) OnConflict(opts ...sql.ConflictOption) *TaskWorkerUpsertOne {
	_c.conflict = opts
	return &TaskWorkerUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TaskWorker.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskWorkerCreate) OnConflictColumns(columns ...string) *TaskWorkerUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskWorkerUpsertOne{
		create: _c,
	}
}

type (
	// TaskWorkerUpsertOne is the builder for "upsert"-ing
	//  one TaskWorker node.
	TaskWorkerUpsertOne struct {
		create *TaskWorkerCreate
	}

	// TaskWorkerUpsert is the "OnConflict" setter.
	TaskWorkerUpsert struct {
		*sql.UpdateSet
	}
)

// SetKind sets the "kind" field.
func (u *TaskWorkerUpsert) SetKind(v string) *TaskWorkerUpsert {
	u.Set(taskworker.FieldKind, v)
	return u
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *TaskWorkerUpsert) UpdateKind() *TaskWorkerUpsert {
	u.SetExcluded(taskworker.FieldKind)
	return u
}

// SetHostname sets the "hostname" field.
func (u *TaskWorkerUpsert) SetHostname(v string) *TaskWorkerUpsert {
	u.Set(taskworker.FieldHostname, v)
	return u
}

// UpdateHostname sets the "hostname" field to the value that was provided on create.
func (u *TaskWorkerUpsert) UpdateHostname() *TaskWorkerUpsert {
	u.SetExcluded(taskworker.FieldHostname)
	return u
}

// SetPid sets the "pid" field.
func (u *TaskWorkerUpsert) SetPid(v int) *TaskWorkerUpsert {
	u.Set(taskworker.FieldPid, v)
	return u
}

// UpdatePid sets the "pid" field to the value that was provided on create.
func (u *TaskWorkerUpsert) UpdatePid() *TaskWorkerUpsert {
	u.SetExcluded(taskworker.FieldPid)
	return u
}

// AddPid adds v to the "pid" field.
func (u *TaskWorkerUpsert) AddPid(v int) *TaskWorkerUpsert {
	u.Add(taskworker.FieldPid, v)
	return u
}

// SetStatus sets the "status" field.
func (u *TaskWorkerUpsert) SetStatus(v taskworker.Status) *TaskWorkerUpsert {
	u.Set(taskworker.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TaskWorkerUpsert) UpdateStatus() *TaskWorkerUpsert {
	u.SetExcluded(taskworker.FieldStatus)
	return u
}

// SetMaxTasks sets the "max_tasks" field.
func (u *TaskWorkerUpsert) SetMaxTasks(v int) *TaskWorkerUpsert {
	u.Set(taskworker.FieldMaxTasks, v)
	return u
}

// UpdateMaxTasks sets the "max_tasks" field to the value that was provided on create.
func (u *TaskWorkerUpsert) UpdateMaxTasks() *TaskWorkerUpsert {
	u.SetExcluded(taskworker.FieldMaxTasks)
	return u
}

// AddMaxTasks adds v to the "max_tasks" field.
func (u *TaskWorkerUpsert) AddMaxTasks(v int) *TaskWorkerUpsert {
	u.Add(taskworker.FieldMaxTasks, v)
	return u
}

// SetActiveTasks sets the "active_tasks" field.
func (u *TaskWorkerUpsert) SetActiveTasks(v int) *TaskWorkerUpsert {
	u.Set(taskworker.FieldActiveTasks, v)
	return u
}

// UpdateActiveTasks sets the "active_tasks" field to the value that was provided on create.
func (u *TaskWorkerUpsert) UpdateActiveTasks() *TaskWorkerUpsert {
	u.SetExcluded(taskworker.FieldActiveTasks)
	return u
}

// AddActiveTasks adds v to the "active_tasks" field.
func (u *TaskWorkerUpsert) AddActiveTasks(v int) *TaskWorkerUpsert {
	u.Add(taskworker.FieldActiveTasks, v)
	return u
}

// SetQueues sets the "queues" field.
func (u *TaskWorkerUpsert) SetQueues(v []string) *TaskWorkerUpsert {
	u.Set(taskworker.FieldQueues, v)
	return u
}

// UpdateQueues sets the "queues" field to the value that was provided on create.
func (u *TaskWorkerUpsert) UpdateQueues() *TaskWorkerUpsert {
	u.SetExcluded(taskworker.FieldQueues)
	return u
}

// SetCapabilities sets the "capabilities" field.
func (u *TaskWorkerUpsert) SetCapabilities(v map[string]interface{}) *TaskWorkerUpsert {
	u.Set(taskworker.FieldCapabilities, v)
	return u
}

// UpdateCapabilities sets the "capabilities" field to the value that was provided on create.
func (u *TaskWorkerUpsert) UpdateCapabilities() *TaskWorkerUpsert {
	u.SetExcluded(taskworker.FieldCapabilities)
	return u
}

// ClearCapabilities clears the value of the "capabilities" field.
func (u *TaskWorkerUpsert) ClearCapabilities() *TaskWorkerUpsert {
	u.SetNull(taskworker.FieldCapabilities)
	return u
}

// SetMetadata sets the "metadata" field.
func (u *TaskWorkerUpsert) SetMetadata(v map[string]interface{}) *TaskWorkerUpsert {
	u.Set(taskworker.FieldMetadata, v)
	return u
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *TaskWorkerUpsert) UpdateMetadata() *TaskWorkerUpsert {
	u.SetExcluded(taskworker.FieldMetadata)
	return u
}

// ClearMetadata clears the value of the "metadata" field.
func (u *TaskWorkerUpsert) ClearMetadata() *TaskWorkerUpsert {
	u.SetNull(taskworker.FieldMetadata)
	return u
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (u *TaskWorkerUpsert) SetLastHeartbeat(v time.Time) *TaskWorkerUpsert {
	u.Set(taskworker.FieldLastHeartbeat, v)
	return u
}

// UpdateLastHeartbeat sets the "last_heartbeat" field to the value that was provided on create.
func (u *TaskWorkerUpsert) UpdateLastHeartbeat() *TaskWorkerUpsert {
	u.SetExcluded(taskworker.FieldLastHeartbeat)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.TaskWorker.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(taskworker.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TaskWorkerUpsertOne) UpdateNewValues() *TaskWorkerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(taskworker.FieldID)
		}
		if _, exists := u.create.mutation.RegisteredAt(); exists {
			s.SetIgnore(taskworker.FieldRegisteredAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TaskWorker.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TaskWorkerUpsertOne) Ignore() *TaskWorkerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskWorkerUpsertOne) DoNothing() *TaskWorkerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskWorkerCreate.OnConflict
// documentation for more info.
func (u *TaskWorkerUpsertOne) Update(set func(*TaskWorkerUpsert)) *TaskWorkerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskWorkerUpsert{UpdateSet: update})
	}))
	return u
}

// SetKind sets the "kind" field.
func (u *TaskWorkerUpsertOne) SetKind(v string) *TaskWorkerUpsertOne {
	return u.Update(func(s *TaskWorkerUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *TaskWorkerUpsertOne) UpdateKind() *TaskWorkerUpsertOne {
	return u.Update(func(s *TaskWorkerUpsert) {
		s.UpdateKind()
	})
}

// SetHostname sets the "hostname" field.
func (u *TaskWorkerUpsertOne) SetHostname(v string) *TaskWorkerUpsertOne {
	return u.Update(func(s *TaskWorkerUpsert) {
		s.SetHostname(v)
	})
}

// UpdateHostname sets the "hostname" field to the value that was provided on create.
func (u *TaskWorkerUpsertOne) UpdateHostname() *TaskWorkerUpsertOne {
	return u.Update(func(s *TaskWorkerUpsert) {
		s.UpdateHostname()
	})
}

// SetPid sets the "pid" field.
func (u *TaskWorkerUpsertOne) SetPid(v int) *TaskWorkerUpsertOne {
	return u.Update(func(s *TaskWorkerUpsert) {
		s.SetPid(v)
	})
}

// AddPid adds v to the "pid" field.
func (u *TaskWorkerUpsertOne) AddPid(v int) *TaskWorkerUpsertOne {
	return u.Update(func(s *TaskWorkerUpsert) {
		s.AddPid(v)
	})
}

// UpdatePid sets the "pid" field to the value that was provided on create.
func (u *TaskWorkerUpsertOne) UpdatePid() *TaskWorkerUpsertOne {
	return u.Update(func(s *TaskWorkerUpsert) {
		s.UpdatePid()
	})
}

// SetStatus sets the "status" field.
func (u *TaskWorkerUpsertOne) SetStatus(v taskworker.Status) *TaskWorkerUpsertOne {
	return u.Update(func(s *TaskWorkerUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TaskWorkerUpsertOne) UpdateStatus() *TaskWorkerUpsertOne {
	return u.Update(func(s *TaskWorkerUpsert) {
		s.UpdateStatus()
	})
}

// SetMaxTasks sets the "max_tasks" field.
func (u *TaskWorkerUpsertOne) SetMaxTasks(v int) *TaskWorkerUpsertOne {
	return u.Update(func(s *TaskWorkerUpsert) {
		s.SetMaxTasks(v)
	})
}

// AddMaxTasks adds v to the "max_tasks" field.
func (u *TaskWorkerUpsertOne) AddMaxTasks(v int) *TaskWorkerUpsertOne {
	return u.Update(func(s *TaskWorkerUpsert) {
		s.AddMaxTasks(v)
	})
}

// UpdateMaxTasks sets the "max_tasks" field to the value that was provided on create.
func (u *TaskWorkerUpsertOne) UpdateMaxTasks() *TaskWorkerUpsertOne {
	return u.Update(func(s *TaskWorkerUpsert) {
		s.UpdateMaxTasks()
	})
}

// SetActiveTasks sets the "active_tasks" field.
func (u *TaskWorkerUpsertOne) SetActiveTasks(v int) *TaskWorkerUpsertOne {
	return u.Update(func(s *TaskWorkerUpsert) {
		s.SetActiveTasks(v)
	})
}

// AddActiveTasks adds v to the "active_tasks" field.
func (u *TaskWorkerUpsertOne) AddActiveTasks(v int) *TaskWorkerUpsertOne {
	return u.Update(func(s *TaskWorkerUpsert) {
		s.AddActiveTasks(v)
	})
}

// UpdateActiveTasks sets the "active_tasks" field to the value that was provided on create.
func (u *TaskWorkerUpsertOne) UpdateActiveTasks() *TaskWorkerUpsertOne {
	return u.Update(func(s *TaskWorkerUpsert) {
		s.UpdateActiveTasks()
	})
}

// SetQueues sets the "queues" field.
func (u *TaskWorkerUpsertOne) SetQueues(v []string) *TaskWorkerUpsertOne {
	return u.Update(func(s *TaskWorkerUpsert) {
		s.SetQueues(v)
	})
}

// UpdateQueues sets the "queues" field to the value that was provided on create.
func (u *TaskWorkerUpsertOne) UpdateQueues() *TaskWorkerUpsertOne {
	return u.Update(func(s *TaskWorkerUpsert) {
		s.UpdateQueues()
	})
}

// SetCapabilities sets the "capabilities" field.
func (u *TaskWorkerUpsertOne) SetCapabilities(v map[string]interface{}) *TaskWorkerUpsertOne {
	return u.Update(func(s *TaskWorkerUpsert) {
		s.SetCapabilities(v)
	})
}

// UpdateCapabilities sets the "capabilities" field to the value that was provided on create.
func (u *TaskWorkerUpsertOne) UpdateCapabilities() *TaskWorkerUpsertOne {
	return u.Update(func(s *TaskWorkerUpsert) {
		s.UpdateCapabilities()
	})
}

// ClearCapabilities clears the value of the "capabilities" field.
func (u *TaskWorkerUpsertOne) ClearCapabilities() *TaskWorkerUpsertOne {
	return u.Update(func(s *TaskWorkerUpsert) {
		s.ClearCapabilities()
	})
}

// SetMetadata sets the "metadata" field.
func (u *TaskWorkerUpsertOne) SetMetadata(v map[string]interface{}) *TaskWorkerUpsertOne {
	return u.Update(func(s *TaskWorkerUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *TaskWorkerUpsertOne) UpdateMetadata() *TaskWorkerUpsertOne {
	return u.Update(func(s *TaskWorkerUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *TaskWorkerUpsertOne) ClearMetadata() *TaskWorkerUpsertOne {
	return u.Update(func(s *TaskWorkerUpsert) {
		s.ClearMetadata()
	})
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (u *TaskWorkerUpsertOne) SetLastHeartbeat(v time.Time) *TaskWorkerUpsertOne {
	return u.Update(func(s *TaskWorkerUpsert) {
		s.SetLastHeartbeat(v)
	})
}

// UpdateLastHeartbeat sets the "last_heartbeat" field to the value that was provided on create.
func (u *TaskWorkerUpsertOne) UpdateLastHeartbeat() *TaskWorkerUpsertOne {
	return u.Update(func(s *TaskWorkerUpsert) {
		s.UpdateLastHeartbeat()
	})
}

// Exec executes the query.
func (u *TaskWorkerUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskWorkerCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskWorkerUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TaskWorkerUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TaskWorkerUpsertOne.ID is not supported by MySQL driver. Use TaskWorkerUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TaskWorkerUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TaskWorkerCreateBulk is the builder for creating many TaskWorker entities in bulk.
type TaskWorkerCreateBulk struct {
	config
	err      error
	builders []*TaskWorkerCreate
	conflict []sql.ConflictOption
}

// Save creates the TaskWorker entities in the database.
func (_c *TaskWorkerCreateBulk) Save(ctx context.Context) ([]*TaskWorker, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TaskWorker, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskWorkerMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TaskWorkerCreateBulk) SaveX(ctx context.Context) []*TaskWorker {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskWorkerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskWorkerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TaskWorker.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskWorkerUpsert) {
//			SetKind(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskWorkerCreateBulk) OnConflict(opts ...sql.ConflictOption) *TaskWorkerUpsertBulk {
	_c.conflict = opts
	return &TaskWorkerUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TaskWorker.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskWorkerCreateBulk) OnConflictColumns(columns ...string) *TaskWorkerUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskWorkerUpsertBulk{
		create: _c,
	}
}

// TaskWorkerUpsertBulk is the builder for "upsert"-ing
// a bulk of TaskWorker nodes.
type TaskWorkerUpsertBulk struct {
	create *TaskWorkerCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TaskWorker.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(taskworker.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TaskWorkerUpsertBulk) UpdateNewValues() *TaskWorkerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(taskworker.FieldID)
			}
			if _, exists := b.mutation.RegisteredAt(); exists {
				s.SetIgnore(taskworker.FieldRegisteredAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TaskWorker.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TaskWorkerUpsertBulk) Ignore() *TaskWorkerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskWorkerUpsertBulk) DoNothing() *TaskWorkerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskWorkerCreateBulk.OnConflict
// documentation for more info.
func (u *TaskWorkerUpsertBulk) Update(set func(*TaskWorkerUpsert)) *TaskWorkerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskWorkerUpsert{UpdateSet: update})
	}))
	return u
}

// SetKind sets the "kind" field.
func (u *TaskWorkerUpsertBulk) SetKind(v string) *TaskWorkerUpsertBulk {
	return u.Update(func(s *TaskWorkerUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *TaskWorkerUpsertBulk) UpdateKind() *TaskWorkerUpsertBulk {
	return u.Update(func(s *TaskWorkerUpsert) {
		s.UpdateKind()
	})
}

// SetHostname sets the "hostname" field.
func (u *TaskWorkerUpsertBulk) SetHostname(v string) *TaskWorkerUpsertBulk {
	return u.Update(func(s *TaskWorkerUpsert) {
		s.SetHostname(v)
	})
}

// UpdateHostname sets the "hostname" field to the value that was provided on create.
func (u *TaskWorkerUpsertBulk) UpdateHostname() *TaskWorkerUpsertBulk {
	return u.Update(func(s *TaskWorkerUpsert) {
		s.UpdateHostname()
	})
}

// SetPid sets the "pid" field.
func (u *TaskWorkerUpsertBulk) SetPid(v int) *TaskWorkerUpsertBulk {
	return u.Update(func(s *TaskWorkerUpsert) {
		s.SetPid(v)
	})
}

// AddPid adds v to the "pid" field.
func (u *TaskWorkerUpsertBulk) AddPid(v int) *TaskWorkerUpsertBulk {
	return u.Update(func(s *TaskWorkerUpsert) {
		s.AddPid(v)
	})
}

// UpdatePid sets the "pid" field to the value that was provided on create.
func (u *TaskWorkerUpsertBulk) UpdatePid() *TaskWorkerUpsertBulk {
	return u.Update(func(s *TaskWorkerUpsert) {
		s.UpdatePid()
	})
}

// SetStatus sets the "status" field.
func (u *TaskWorkerUpsertBulk) SetStatus(v taskworker.Status) *TaskWorkerUpsertBulk {
	return u.Update(func(s *TaskWorkerUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TaskWorkerUpsertBulk) UpdateStatus() *TaskWorkerUpsertBulk {
	return u.Update(func(s *TaskWorkerUpsert) {
		s.UpdateStatus()
	})
}

// SetMaxTasks sets the "max_tasks" field.
func (u *TaskWorkerUpsertBulk) SetMaxTasks(v int) *TaskWorkerUpsertBulk {
	return u.Update(func(s *TaskWorkerUpsert) {
		s.SetMaxTasks(v)
	})
}

// AddMaxTasks adds v to the "max_tasks" field.
func (u *TaskWorkerUpsertBulk) AddMaxTasks(v int) *TaskWorkerUpsertBulk {
	return u.Update(func(s *TaskWorkerUpsert) {
		s.AddMaxTasks(v)
	})
}

// UpdateMaxTasks sets the "max_tasks" field to the value that was provided on create.
func (u *TaskWorkerUpsertBulk) UpdateMaxTasks() *TaskWorkerUpsertBulk {
	return u.Update(func(s *TaskWorkerUpsert) {
		s.UpdateMaxTasks()
	})
}

// SetActiveTasks sets the "active_tasks" field.
func (u *TaskWorkerUpsertBulk) SetActiveTasks(v int) *TaskWorkerUpsertBulk {
	return u.Update(func(s *TaskWorkerUpsert) {
		s.SetActiveTasks(v)
	})
}

// AddActiveTasks adds v to the "active_tasks" field.
func (u *TaskWorkerUpsertBulk) AddActiveTasks(v int) *TaskWorkerUpsertBulk {
	return u.Update(func(s *TaskWorkerUpsert) {
		s.AddActiveTasks(v)
	})
}

// UpdateActiveTasks sets the "active_tasks" field to the value that was provided on create.
func (u *TaskWorkerUpsertBulk) UpdateActiveTasks() *TaskWorkerUpsertBulk {
	return u.Update(func(s *TaskWorkerUpsert) {
		s.UpdateActiveTasks()
	})
}

// SetQueues sets the "queues" field.
func (u *TaskWorkerUpsertBulk) SetQueues(v []string) *TaskWorkerUpsertBulk {
	return u.Update(func(s *TaskWorkerUpsert) {
		s.SetQueues(v)
	})
}

// UpdateQueues sets the "queues" field to the value that was provided on create.
func (u *TaskWorkerUpsertBulk) UpdateQueues() *TaskWorkerUpsertBulk {
	return u.Update(func(s *TaskWorkerUpsert) {
		s.UpdateQueues()
	})
}

// SetCapabilities sets the "capabilities" field.
func (u *TaskWorkerUpsertBulk) SetCapabilities(v map[string]interface{}) *TaskWorkerUpsertBulk {
	return u.Update(func(s *TaskWorkerUpsert) {
		s.SetCapabilities(v)
	})
}

// UpdateCapabilities sets the "capabilities" field to the value that was provided on create.
func (u *TaskWorkerUpsertBulk) UpdateCapabilities() *TaskWorkerUpsertBulk {
	return u.Update(func(s *TaskWorkerUpsert) {
		s.UpdateCapabilities()
	})
}

// ClearCapabilities clears the value of the "capabilities" field.
func (u *TaskWorkerUpsertBulk) ClearCapabilities() *TaskWorkerUpsertBulk {
	return u.Update(func(s *TaskWorkerUpsert) {
		s.ClearCapabilities()
	})
}

// SetMetadata sets the "metadata" field.
func (u *TaskWorkerUpsertBulk) SetMetadata(v map[string]interface{}) *TaskWorkerUpsertBulk {
	return u.Update(func(s *TaskWorkerUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *TaskWorkerUpsertBulk) UpdateMetadata() *TaskWorkerUpsertBulk {
	return u.Update(func(s *TaskWorkerUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *TaskWorkerUpsertBulk) ClearMetadata() *TaskWorkerUpsertBulk {
	return u.Update(func(s *TaskWorkerUpsert) {
		s.ClearMetadata()
	})
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (u *TaskWorkerUpsertBulk) SetLastHeartbeat(v time.Time) *TaskWorkerUpsertBulk {
	return u.Update(func(s *TaskWorkerUpsert) {
		s.SetLastHeartbeat(v)
	})
}

// UpdateLastHeartbeat sets the "last_heartbeat" field to the value that was provided on create.
func (u *TaskWorkerUpsertBulk) UpdateLastHeartbeat() *TaskWorkerUpsertBulk {
	return u.Update(func(s *TaskWorkerUpsert) {
		s.UpdateLastHeartbeat()
	})
}

// Exec executes the query.
func (u *TaskWorkerUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TaskWorkerCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskWorkerCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskWorkerUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
