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
	"github.com/maestro-run/maestro/ent/taskqueuestat"
)

// TaskQueueStatCreate is the builder for creating a TaskQueueStat entity.
type TaskQueueStatCreate struct {
	config
	mutation *TaskQueueStatMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetQueueName sets the "queue_name" field.
func (_c *TaskQueueStatCreate) SetQueueName(v string) *TaskQueueStatCreate {
	_c.mutation.SetQueueName(v)
	return _c
}

// SetWorkerCount sets the "worker_count" field.
func (_c *TaskQueueStatCreate) SetWorkerCount(v int) *TaskQueueStatCreate {
	_c.mutation.SetWorkerCount(v)
	return _c
}

// SetQueuedCount sets the "queued_count" field.
func (_c *TaskQueueStatCreate) SetQueuedCount(v int) *TaskQueueStatCreate {
	_c.mutation.SetQueuedCount(v)
	return _c
}

// SetActiveCount sets the "active_count" field.
func (_c *TaskQueueStatCreate) SetActiveCount(v int) *TaskQueueStatCreate {
	_c.mutation.SetActiveCount(v)
	return _c
}

// SetUtilization sets the "utilization" field.
func (_c *TaskQueueStatCreate) SetUtilization(v float64) *TaskQueueStatCreate {
	_c.mutation.SetUtilization(v)
	return _c
}

// SetSampledAt sets the "sampled_at" field.
func (_c *TaskQueueStatCreate) SetSampledAt(v time.Time) *TaskQueueStatCreate {
	_c.mutation.SetSampledAt(v)
	return _c
}

// SetNillableSampledAt sets the "sampled_at" field if the given value is not nil.
func (_c *TaskQueueStatCreate) SetNillableSampledAt(v *time.Time) *TaskQueueStatCreate {
	if v != nil {
		_c.SetSampledAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TaskQueueStatCreate) SetID(v string) *TaskQueueStatCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the TaskQueueStatMutation object of the builder.
func (_c *TaskQueueStatCreate) Mutation() *TaskQueueStatMutation {
	return _c.mutation
}

// Save creates the TaskQueueStat in the database.
func (_c *TaskQueueStatCreate) Save(ctx context.Context) (*TaskQueueStat, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskQueueStatCreate) SaveX(ctx context.Context) *TaskQueueStat {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskQueueStatCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskQueueStatCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskQueueStatCreate) defaults() {
	if _, ok := _c.mutation.SampledAt(); !ok {
		v := taskqueuestat.DefaultSampledAt()
		_c.mutation.SetSampledAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskQueueStatCreate) check() error {
	if _, ok := _c.mutation.QueueName(); !ok {
		return &ValidationError{Name: "queue_name", err: errors.New(`ent: missing required field "TaskQueueStat.queue_name"`)}
	}
	if _, ok := _c.mutation.WorkerCount(); !ok {
		return &ValidationError{Name: "worker_count", err: errors.New(`ent: missing required field "TaskQueueStat.worker_count"`)}
	}
	if _, ok := _c.mutation.QueuedCount(); !ok {
		return &ValidationError{Name: "queued_count", err: errors.New(`ent: missing required field "TaskQueueStat.queued_count"`)}
	}
	if _, ok := _c.mutation.ActiveCount(); !ok {
		return &ValidationError{Name: "active_count", err: errors.New(`ent: missing required field "TaskQueueStat.active_count"`)}
	}
	if _, ok := _c.mutation.Utilization(); !ok {
		return &ValidationError{Name: "utilization", err: errors.New(`ent: missing required field "TaskQueueStat.utilization"`)}
	}
	if _, ok := _c.mutation.SampledAt(); !ok {
		return &ValidationError{Name: "sampled_at", err: errors.New(`ent: missing required field "TaskQueueStat.sampled_at"`)}
	}
	return nil
}

func (_c *TaskQueueStatCreate) sqlSave(ctx context.Context) (*TaskQueueStat, error) {
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
			return nil, fmt.Errorf("unexpected TaskQueueStat.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TaskQueueStatCreate) createSpec() (*TaskQueueStat, *sqlgraph.CreateSpec) {
	var (
		_node = &TaskQueueStat{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(taskqueuestat.Table, sqlgraph.NewFieldSpec(taskqueuestat.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.QueueName(); ok {
		_spec.SetField(taskqueuestat.FieldQueueName, field.TypeString, value)
		_node.QueueName = value
	}
	if value, ok := _c.mutation.WorkerCount(); ok {
		_spec.SetField(taskqueuestat.FieldWorkerCount, field.TypeInt, value)
		_node.WorkerCount = value
	}
	if value, ok := _c.mutation.QueuedCount(); ok {
		_spec.SetField(taskqueuestat.FieldQueuedCount, field.TypeInt, value)
		_node.QueuedCount = value
	}
	if value, ok := _c.mutation.ActiveCount(); ok {
		_spec.SetField(taskqueuestat.FieldActiveCount, field.TypeInt, value)
		_node.ActiveCount = value
	}
	if value, ok := _c.mutation.Utilization(); ok {
		_spec.SetField(taskqueuestat.FieldUtilization, field.TypeFloat64, value)
		_node.Utilization = value
	}
	if value, ok := _c.mutation.SampledAt(); ok {
		_spec.SetField(taskqueuestat.FieldSampledAt, field.TypeTime, value)
		_node.SampledAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TaskQueueStat.Create().
//		SetQueueName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskQueueStatUpsert) {
//			SetQueueName(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskQueueStatCreate) OnConflict(opts ...sql.ConflictOption) *TaskQueueStatUpsertOne {
	_c.conflict = opts
	return &TaskQueueStatUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TaskQueueStat.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskQueueStatCreate) OnConflictColumns(columns ...string) *TaskQueueStatUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskQueueStatUpsertOne{
		create: _c,
	}
}

type (
	// TaskQueueStatUpsertOne is the builder for "upsert"-ing
	//  one TaskQueueStat node.
	TaskQueueStatUpsertOne struct {
		create *TaskQueueStatCreate
	}

	// TaskQueueStatUpsert is the "OnConflict" setter.
	TaskQueueStatUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.TaskQueueStat.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(taskqueuestat.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TaskQueueStatUpsertOne) UpdateNewValues() *TaskQueueStatUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(taskqueuestat.FieldID)
		}
		if _, exists := u.create.mutation.QueueName(); exists {
			s.SetIgnore(taskqueuestat.FieldQueueName)
		}
		if _, exists := u.create.mutation.WorkerCount(); exists {
			s.SetIgnore(taskqueuestat.FieldWorkerCount)
		}
		if _, exists := u.create.mutation.QueuedCount(); exists {
			s.SetIgnore(taskqueuestat.FieldQueuedCount)
		}
		if _, exists := u.create.mutation.ActiveCount(); exists {
			s.SetIgnore(taskqueuestat.FieldActiveCount)
		}
		if _, exists := u.create.mutation.Utilization(); exists {
			s.SetIgnore(taskqueuestat.FieldUtilization)
		}
		if _, exists := u.create.mutation.SampledAt(); exists {
			s.SetIgnore(taskqueuestat.FieldSampledAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TaskQueueStat.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TaskQueueStatUpsertOne) Ignore() *TaskQueueStatUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskQueueStatUpsertOne) DoNothing() *TaskQueueStatUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskQueueStatCreate.OnConflict
// documentation for more info.
func (u *TaskQueueStatUpsertOne) Update(set func(*TaskQueueStatUpsert)) *TaskQueueStatUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskQueueStatUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *TaskQueueStatUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskQueueStatCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskQueueStatUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TaskQueueStatUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TaskQueueStatUpsertOne.ID is not supported by MySQL driver. Use TaskQueueStatUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TaskQueueStatUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TaskQueueStatCreateBulk is the builder for creating many TaskQueueStat entities in bulk.
type TaskQueueStatCreateBulk struct {
	config
	err      error
	builders []*TaskQueueStatCreate
	conflict []sql.ConflictOption
}

// Save creates the TaskQueueStat entities in the database.
func (_c *TaskQueueStatCreateBulk) Save(ctx context.Context) ([]*TaskQueueStat, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TaskQueueStat, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskQueueStatMutation)
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
func (_c *TaskQueueStatCreateBulk) SaveX(ctx context.Context) []*TaskQueueStat {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskQueueStatCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskQueueStatCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TaskQueueStat.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskQueueStatUpsert) {
//			SetQueueName(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskQueueStatCreateBulk) OnConflict(opts ...sql.ConflictOption) *TaskQueueStatUpsertBulk {
	_c.conflict = opts
	return &TaskQueueStatUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TaskQueueStat.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskQueueStatCreateBulk) OnConflictColumns(columns ...string) *TaskQueueStatUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskQueueStatUpsertBulk{
		create: _c,
	}
}

// TaskQueueStatUpsertBulk is the builder for "upsert"-ing
// a bulk of TaskQueueStat nodes.
type TaskQueueStatUpsertBulk struct {
	create *TaskQueueStatCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TaskQueueStat.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(taskqueuestat.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TaskQueueStatUpsertBulk) UpdateNewValues() *TaskQueueStatUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(taskqueuestat.FieldID)
			}
			if _, exists := b.mutation.QueueName(); exists {
				s.SetIgnore(taskqueuestat.FieldQueueName)
			}
			if _, exists := b.mutation.WorkerCount(); exists {
				s.SetIgnore(taskqueuestat.FieldWorkerCount)
			}
			if _, exists := b.mutation.QueuedCount(); exists {
				s.SetIgnore(taskqueuestat.FieldQueuedCount)
			}
			if _, exists := b.mutation.ActiveCount(); exists {
				s.SetIgnore(taskqueuestat.FieldActiveCount)
			}
			if _, exists := b.mutation.Utilization(); exists {
				s.SetIgnore(taskqueuestat.FieldUtilization)
			}
			if _, exists := b.mutation.SampledAt(); exists {
				s.SetIgnore(taskqueuestat.FieldSampledAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TaskQueueStat.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TaskQueueStatUpsertBulk) Ignore() *TaskQueueStatUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskQueueStatUpsertBulk) DoNothing() *TaskQueueStatUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskQueueStatCreateBulk.OnConflict
// documentation for more info.
func (u *TaskQueueStatUpsertBulk) Update(set func(*TaskQueueStatUpsert)) *TaskQueueStatUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskQueueStatUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *TaskQueueStatUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TaskQueueStatCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskQueueStatCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskQueueStatUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
