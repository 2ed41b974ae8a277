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
	"github.com/maestro-run/maestro/ent/leaderelection"
)

// LeaderElectionCreate is the builder for creating a LeaderElection entity.
type LeaderElectionCreate struct {
	config
	mutation *LeaderElectionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetNodeID sets the "node_id" field.
func (_c *LeaderElectionCreate) SetNodeID(v string) *LeaderElectionCreate {
	_c.mutation.SetNodeID(v)
	return _c
}

// SetTerm sets the "term" field.
func (_c *LeaderElectionCreate) SetTerm(v int64) *LeaderElectionCreate {
	_c.mutation.SetTerm(v)
	return _c
}

// SetNillableTerm sets the "term" field if the given value is not nil.
func (_c *LeaderElectionCreate) SetNillableTerm(v *int64) *LeaderElectionCreate {
	if v != nil {
		_c.SetTerm(*v)
	}
	return _c
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (_c *LeaderElectionCreate) SetLeaseExpiresAt(v time.Time) *LeaderElectionCreate {
	_c.mutation.SetLeaseExpiresAt(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LeaderElectionCreate) SetUpdatedAt(v time.Time) *LeaderElectionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LeaderElectionCreate) SetNillableUpdatedAt(v *time.Time) *LeaderElectionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LeaderElectionCreate) SetID(v string) *LeaderElectionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the LeaderElectionMutation object of the builder.
func (_c *LeaderElectionCreate) Mutation() *LeaderElectionMutation {
	return _c.mutation
}

// Save creates the LeaderElection in the database.
func (_c *LeaderElectionCreate) Save(ctx context.Context) (*LeaderElection, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LeaderElectionCreate) SaveX(ctx context.Context) *LeaderElection {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeaderElectionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeaderElectionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LeaderElectionCreate) defaults() {
	if _, ok := _c.mutation.Term(); !ok {
		v := leaderelection.DefaultTerm
		_c.mutation.SetTerm(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := leaderelection.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LeaderElectionCreate) check() error {
	if _, ok := _c.mutation.NodeID(); !ok {
		return &ValidationError{Name: "node_id", err: errors.New(`ent: missing required field "LeaderElection.node_id"`)}
	}
	if _, ok := _c.mutation.Term(); !ok {
		return &ValidationError{Name: "term", err: errors.New(`ent: missing required field "LeaderElection.term"`)}
	}
	if _, ok := _c.mutation.LeaseExpiresAt(); !ok {
		return &ValidationError{Name: "lease_expires_at", err: errors.New(`ent: missing required field "LeaderElection.lease_expires_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "LeaderElection.updated_at"`)}
	}
	return nil
}

func (_c *LeaderElectionCreate) sqlSave(ctx context.Context) (*LeaderElection, error) {
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
			return nil, fmt.Errorf("unexpected LeaderElection.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LeaderElectionCreate) createSpec() (*LeaderElection, *sqlgraph.CreateSpec) {
	var (
		_node = &LeaderElection{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(leaderelection.Table, sqlgraph.NewFieldSpec(leaderelection.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.NodeID(); ok {
		_spec.SetField(leaderelection.FieldNodeID, field.TypeString, value)
		_node.NodeID = value
	}
	if value, ok := _c.mutation.Term(); ok {
		_spec.SetField(leaderelection.FieldTerm, field.TypeInt64, value)
		_node.Term = value
	}
	if value, ok := _c.mutation.LeaseExpiresAt(); ok {
		_spec.SetField(leaderelection.FieldLeaseExpiresAt, field.TypeTime, value)
		_node.LeaseExpiresAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(leaderelection.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LeaderElection.Create().
//		SetNodeID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LeaderElectionUpsert) {
//			SetNodeID(v+v).
//		}).
//		Exec(ctx)
func (_c *LeaderElectionCreate) OnConflict(opts ...sql.ConflictOption) *LeaderElectionUpsertOne {
	_c.conflict = opts
	return &LeaderElectionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LeaderElection.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LeaderElectionCreate) OnConflictColumns(columns ...string) *LeaderElectionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LeaderElectionUpsertOne{
		create: _c,
	}
}

type (
	// LeaderElectionUpsertOne is the builder for "upsert"-ing
	//  one LeaderElection node.
	LeaderElectionUpsertOne struct {
		create *LeaderElectionCreate
	}

	// LeaderElectionUpsert is the "OnConflict" setter.
	LeaderElectionUpsert struct {
		*sql.UpdateSet
	}
)

// SetNodeID sets the "node_id" field.
func (u *LeaderElectionUpsert) SetNodeID(v string) *LeaderElectionUpsert {
	u.Set(leaderelection.FieldNodeID, v)
	return u
}

// UpdateNodeID sets the "node_id" field to the value that was provided on create.
func (u *LeaderElectionUpsert) UpdateNodeID() *LeaderElectionUpsert {
	u.SetExcluded(leaderelection.FieldNodeID)
	return u
}

// SetTerm sets the "term" field.
func (u *LeaderElectionUpsert) SetTerm(v int64) *LeaderElectionUpsert {
	u.Set(leaderelection.FieldTerm, v)
	return u
}

// UpdateTerm sets the "term" field to the value that was provided on create.
func (u *LeaderElectionUpsert) UpdateTerm() *LeaderElectionUpsert {
	u.SetExcluded(leaderelection.FieldTerm)
	return u
}

// AddTerm adds v to the "term" field.
func (u *LeaderElectionUpsert) AddTerm(v int64) *LeaderElectionUpsert {
	u.Add(leaderelection.FieldTerm, v)
	return u
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (u *LeaderElectionUpsert) SetLeaseExpiresAt(v time.Time) *LeaderElectionUpsert {
	u.Set(leaderelection.FieldLeaseExpiresAt, v)
	return u
}

// UpdateLeaseExpiresAt sets the "lease_expires_at" field to the value that was provided on create.
func (u *LeaderElectionUpsert) UpdateLeaseExpiresAt() *LeaderElectionUpsert {
	u.SetExcluded(leaderelection.FieldLeaseExpiresAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LeaderElectionUpsert) SetUpdatedAt(v time.Time) *LeaderElectionUpsert {
	u.Set(leaderelection.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LeaderElectionUpsert) UpdateUpdatedAt() *LeaderElectionUpsert {
	u.SetExcluded(leaderelection.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.LeaderElection.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(leaderelection.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LeaderElectionUpsertOne) UpdateNewValues() *LeaderElectionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(leaderelection.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LeaderElection.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LeaderElectionUpsertOne) Ignore() *LeaderElectionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LeaderElectionUpsertOne) DoNothing() *LeaderElectionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LeaderElectionCreate.OnConflict
// documentation for more info.
func (u *LeaderElectionUpsertOne) Update(set func(*LeaderElectionUpsert)) *LeaderElectionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LeaderElectionUpsert{UpdateSet: update})
	}))
	return u
}

// SetNodeID sets the "node_id" field.
func (u *LeaderElectionUpsertOne) SetNodeID(v string) *LeaderElectionUpsertOne {
	return u.Update(func(s *LeaderElectionUpsert) {
		s.SetNodeID(v)
	})
}

// UpdateNodeID sets the "node_id" field to the value that was provided on create.
func (u *LeaderElectionUpsertOne) UpdateNodeID() *LeaderElectionUpsertOne {
	return u.Update(func(s *LeaderElectionUpsert) {
		s.UpdateNodeID()
	})
}

// SetTerm sets the "term" field.
func (u *LeaderElectionUpsertOne) SetTerm(v int64) *LeaderElectionUpsertOne {
	return u.Update(func(s *LeaderElectionUpsert) {
		s.SetTerm(v)
	})
}

// AddTerm adds v to the "term" field.
func (u *LeaderElectionUpsertOne) AddTerm(v int64) *LeaderElectionUpsertOne {
	return u.Update(func(s *LeaderElectionUpsert) {
		s.AddTerm(v)
	})
}

// UpdateTerm sets the "term" field to the value that was provided on create.
func (u *LeaderElectionUpsertOne) UpdateTerm() *LeaderElectionUpsertOne {
	return u.Update(func(s *LeaderElectionUpsert) {
		s.UpdateTerm()
	})
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (u *LeaderElectionUpsertOne) SetLeaseExpiresAt(v time.Time) *LeaderElectionUpsertOne {
	return u.Update(func(s *LeaderElectionUpsert) {
		s.SetLeaseExpiresAt(v)
	})
}

// UpdateLeaseExpiresAt sets the "lease_expires_at" field to the value that was provided on create.
func (u *LeaderElectionUpsertOne) UpdateLeaseExpiresAt() *LeaderElectionUpsertOne {
	return u.Update(func(s *LeaderElectionUpsert) {
		s.UpdateLeaseExpiresAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LeaderElectionUpsertOne) SetUpdatedAt(v time.Time) *LeaderElectionUpsertOne {
	return u.Update(func(s *LeaderElectionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LeaderElectionUpsertOne) UpdateUpdatedAt() *LeaderElectionUpsertOne {
	return u.Update(func(s *LeaderElectionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *LeaderElectionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LeaderElectionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LeaderElectionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LeaderElectionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: LeaderElectionUpsertOne.ID is not supported by MySQL driver. Use LeaderElectionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LeaderElectionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LeaderElectionCreateBulk is the builder for creating many LeaderElection entities in bulk.
type LeaderElectionCreateBulk struct {
	config
	err      error
	builders []*LeaderElectionCreate
	conflict []sql.ConflictOption
}

// Save creates the LeaderElection entities in the database.
func (_c *LeaderElectionCreateBulk) Save(ctx context.Context) ([]*LeaderElection, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LeaderElection, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LeaderElectionMutation)
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
func (_c *LeaderElectionCreateBulk) SaveX(ctx context.Context) []*LeaderElection {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeaderElectionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeaderElectionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LeaderElection.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LeaderElectionUpsert) {
//			SetNodeID(v+v).
//		}).
//		Exec(ctx)
func (_c *LeaderElectionCreateBulk) OnConflict(opts ...sql.ConflictOption) *LeaderElectionUpsertBulk {
	_c.conflict = opts
	return &LeaderElectionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LeaderElection.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LeaderElectionCreateBulk) OnConflictColumns(columns ...string) *LeaderElectionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LeaderElectionUpsertBulk{
		create: _c,
	}
}

// LeaderElectionUpsertBulk is the builder for "upsert"-ing
// a bulk of LeaderElection nodes.
type LeaderElectionUpsertBulk struct {
	create *LeaderElectionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.LeaderElection.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(leaderelection.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LeaderElectionUpsertBulk) UpdateNewValues() *LeaderElectionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(leaderelection.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LeaderElection.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LeaderElectionUpsertBulk) Ignore() *LeaderElectionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LeaderElectionUpsertBulk) DoNothing() *LeaderElectionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LeaderElectionCreateBulk.OnConflict
// documentation for more info.
func (u *LeaderElectionUpsertBulk) Update(set func(*LeaderElectionUpsert)) *LeaderElectionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LeaderElectionUpsert{UpdateSet: update})
	}))
	return u
}

// SetNodeID sets the "node_id" field.
func (u *LeaderElectionUpsertBulk) SetNodeID(v string) *LeaderElectionUpsertBulk {
	return u.Update(func(s *LeaderElectionUpsert) {
		s.SetNodeID(v)
	})
}

// UpdateNodeID sets the "node_id" field to the value that was provided on create.
func (u *LeaderElectionUpsertBulk) UpdateNodeID() *LeaderElectionUpsertBulk {
	return u.Update(func(s *LeaderElectionUpsert) {
		s.UpdateNodeID()
	})
}

// SetTerm sets the "term" field.
func (u *LeaderElectionUpsertBulk) SetTerm(v int64) *LeaderElectionUpsertBulk {
	return u.Update(func(s *LeaderElectionUpsert) {
		s.SetTerm(v)
	})
}

// AddTerm adds v to the "term" field.
func (u *LeaderElectionUpsertBulk) AddTerm(v int64) *LeaderElectionUpsertBulk {
	return u.Update(func(s *LeaderElectionUpsert) {
		s.AddTerm(v)
	})
}

// UpdateTerm sets the "term" field to the value that was provided on create.
func (u *LeaderElectionUpsertBulk) UpdateTerm() *LeaderElectionUpsertBulk {
	return u.Update(func(s *LeaderElectionUpsert) {
		s.UpdateTerm()
	})
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (u *LeaderElectionUpsertBulk) SetLeaseExpiresAt(v time.Time) *LeaderElectionUpsertBulk {
	return u.Update(func(s *LeaderElectionUpsert) {
		s.SetLeaseExpiresAt(v)
	})
}

// UpdateLeaseExpiresAt sets the "lease_expires_at" field to the value that was provided on create.
func (u *LeaderElectionUpsertBulk) UpdateLeaseExpiresAt() *LeaderElectionUpsertBulk {
	return u.Update(func(s *LeaderElectionUpsert) {
		s.UpdateLeaseExpiresAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LeaderElectionUpsertBulk) SetUpdatedAt(v time.Time) *LeaderElectionUpsertBulk {
	return u.Update(func(s *LeaderElectionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LeaderElectionUpsertBulk) UpdateUpdatedAt() *LeaderElectionUpsertBulk {
	return u.Update(func(s *LeaderElectionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *LeaderElectionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LeaderElectionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LeaderElectionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LeaderElectionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
