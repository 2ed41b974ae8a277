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
	"github.com/maestro-run/maestro/ent/workerevent"
)

// WorkerEventCreate is the builder for creating a WorkerEvent entity.
type WorkerEventCreate struct {
	config
	mutation *WorkerEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkerID sets the "worker_id" field.
func (_c *WorkerEventCreate) SetWorkerID(v string) *WorkerEventCreate {
	_c.mutation.SetWorkerID(v)
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *WorkerEventCreate) SetEventType(v string) *WorkerEventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetDetails sets the "details" field.
func (_c *WorkerEventCreate) SetDetails(v map[string]interface{}) *WorkerEventCreate {
	_c.mutation.SetDetails(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WorkerEventCreate) SetCreatedAt(v time.Time) *WorkerEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WorkerEventCreate) SetNillableCreatedAt(v *time.Time) *WorkerEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WorkerEventCreate) SetID(v string) *WorkerEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the WorkerEventMutation object of the builder.
func (_c *WorkerEventCreate) Mutation() *WorkerEventMutation {
	return _c.mutation
}

// Save creates the WorkerEvent in the database.
func (_c *WorkerEventCreate) Save(ctx context.Context) (*WorkerEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkerEventCreate) SaveX(ctx context.Context) *WorkerEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkerEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkerEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkerEventCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := workerevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkerEventCreate) check() error {
	if _, ok := _c.mutation.WorkerID(); !ok {
		return &ValidationError{Name: "worker_id", err: errors.New(`ent: missing required field "WorkerEvent.worker_id"`)}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "WorkerEvent.event_type"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WorkerEvent.created_at"`)}
	}
	return nil
}

func (_c *WorkerEventCreate) sqlSave(ctx context.Context) (*WorkerEvent, error) {
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
			return nil, fmt.Errorf("unexpected WorkerEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WorkerEventCreate) createSpec() (*WorkerEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkerEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workerevent.Table, sqlgraph.NewFieldSpec(workerevent.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkerID(); ok {
		_spec.SetField(workerevent.FieldWorkerID, field.TypeString, value)
		_node.WorkerID = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(workerevent.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.Details(); ok {
		_spec.SetField(workerevent.FieldDetails, field.TypeJSON, value)
		_node.Details = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(workerevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.WorkerEvent.Create().
//		SetWorkerID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WorkerEventUpsert) {
//			SetWorkerID(v+v).
//		}).
//		Exec(ctx)
func (_c *WorkerEventCreate) OnConflict(opts ...sql.ConflictOption) *WorkerEventUpsertOne {
	_c.conflict = opts
	return &WorkerEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WorkerEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WorkerEventCreate) OnConflictColumns(columns ...string) *WorkerEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WorkerEventUpsertOne{
		create: _c,
	}
}

type (
	// WorkerEventUpsertOne is the builder for "upsert"-ing
	//  one WorkerEvent node.
	WorkerEventUpsertOne struct {
		create *WorkerEventCreate
	}

	// WorkerEventUpsert is the "OnConflict" setter.
	WorkerEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetDetails sets the "details" field.
func (u *WorkerEventUpsert) SetDetails(v map[string]interface{}) *WorkerEventUpsert {
	u.Set(workerevent.FieldDetails, v)
	return u
}

// UpdateDetails sets the "details" field to the value that was provided on create.
func (u *WorkerEventUpsert) UpdateDetails() *WorkerEventUpsert {
	u.SetExcluded(workerevent.FieldDetails)
	return u
}

// ClearDetails clears the value of the "details" field.
func (u *WorkerEventUpsert) ClearDetails() *WorkerEventUpsert {
	u.SetNull(workerevent.FieldDetails)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.WorkerEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(workerevent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WorkerEventUpsertOne) UpdateNewValues() *WorkerEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(workerevent.FieldID)
		}
		if _, exists := u.create.mutation.WorkerID(); exists {
			s.SetIgnore(workerevent.FieldWorkerID)
		}
		if _, exists := u.create.mutation.EventType(); exists {
			s.SetIgnore(workerevent.FieldEventType)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(workerevent.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WorkerEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *WorkerEventUpsertOne) Ignore() *WorkerEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WorkerEventUpsertOne) DoNothing() *WorkerEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WorkerEventCreate.OnConflict
// documentation for more info.
func (u *WorkerEventUpsertOne) Update(set func(*WorkerEventUpsert)) *WorkerEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WorkerEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetDetails sets the "details" field.
func (u *WorkerEventUpsertOne) SetDetails(v map[string]interface{}) *WorkerEventUpsertOne {
	return u.Update(func(s *WorkerEventUpsert) {
		s.SetDetails(v)
	})
}

// UpdateDetails sets the "details" field to the value that was provided on create.
func (u *WorkerEventUpsertOne) UpdateDetails() *WorkerEventUpsertOne {
	return u.Update(func(s *WorkerEventUpsert) {
		s.UpdateDetails()
	})
}

// ClearDetails clears the value of the "details" field.
func (u *WorkerEventUpsertOne) ClearDetails() *WorkerEventUpsertOne {
	return u.Update(func(s *WorkerEventUpsert) {
		s.ClearDetails()
	})
}

// Exec executes the query.
func (u *WorkerEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WorkerEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WorkerEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *WorkerEventUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: WorkerEventUpsertOne.ID is not supported by MySQL driver. Use WorkerEventUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *WorkerEventUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// WorkerEventCreateBulk is the builder for creating many WorkerEvent entities in bulk.
type WorkerEventCreateBulk struct {
	config
	err      error
	builders []*WorkerEventCreate
	conflict []sql.ConflictOption
}

// Save creates the WorkerEvent entities in the database.
func (_c *WorkerEventCreateBulk) Save(ctx context.Context) ([]*WorkerEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WorkerEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkerEventMutation)
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
func (_c *WorkerEventCreateBulk) SaveX(ctx context.Context) []*WorkerEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkerEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkerEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.WorkerEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WorkerEventUpsert) {
//			SetWorkerID(v+v).
//		}).
//		Exec(ctx)
func (_c *WorkerEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *WorkerEventUpsertBulk {
	_c.conflict = opts
	return &WorkerEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WorkerEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WorkerEventCreateBulk) OnConflictColumns(columns ...string) *WorkerEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WorkerEventUpsertBulk{
		create: _c,
	}
}

// WorkerEventUpsertBulk is the builder for "upsert"-ing
// a bulk of WorkerEvent nodes.
type WorkerEventUpsertBulk struct {
	create *WorkerEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.WorkerEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(workerevent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WorkerEventUpsertBulk) UpdateNewValues() *WorkerEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(workerevent.FieldID)
			}
			if _, exists := b.mutation.WorkerID(); exists {
				s.SetIgnore(workerevent.FieldWorkerID)
			}
			if _, exists := b.mutation.EventType(); exists {
				s.SetIgnore(workerevent.FieldEventType)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(workerevent.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WorkerEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *WorkerEventUpsertBulk) Ignore() *WorkerEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WorkerEventUpsertBulk) DoNothing() *WorkerEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WorkerEventCreateBulk.OnConflict
// documentation for more info.
func (u *WorkerEventUpsertBulk) Update(set func(*WorkerEventUpsert)) *WorkerEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WorkerEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetDetails sets the "details" field.
func (u *WorkerEventUpsertBulk) SetDetails(v map[string]interface{}) *WorkerEventUpsertBulk {
	return u.Update(func(s *WorkerEventUpsert) {
		s.SetDetails(v)
	})
}

// UpdateDetails sets the "details" field to the value that was provided on create.
func (u *WorkerEventUpsertBulk) UpdateDetails() *WorkerEventUpsertBulk {
	return u.Update(func(s *WorkerEventUpsert) {
		s.UpdateDetails()
	})
}

// ClearDetails clears the value of the "details" field.
func (u *WorkerEventUpsertBulk) ClearDetails() *WorkerEventUpsertBulk {
	return u.Update(func(s *WorkerEventUpsert) {
		s.ClearDetails()
	})
}

// Exec executes the query.
func (u *WorkerEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the WorkerEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WorkerEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WorkerEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
