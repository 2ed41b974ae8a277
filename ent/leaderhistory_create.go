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
	"github.com/maestro-run/maestro/ent/leaderhistory"
)

// LeaderHistoryCreate is the builder for creating a LeaderHistory entity.
type LeaderHistoryCreate struct {
	config
	mutation *LeaderHistoryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetRole sets the "role" field.
func (_c *LeaderHistoryCreate) SetRole(v string) *LeaderHistoryCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetOldNodeID sets the "old_node_id" field.
func (_c *LeaderHistoryCreate) SetOldNodeID(v string) *LeaderHistoryCreate {
	_c.mutation.SetOldNodeID(v)
	return _c
}

// SetNillableOldNodeID sets the "old_node_id" field if the given value is not nil.
func (_c *LeaderHistoryCreate) SetNillableOldNodeID(v *string) *LeaderHistoryCreate {
	if v != nil {
		_c.SetOldNodeID(*v)
	}
	return _c
}

// SetNewNodeID sets the "new_node_id" field.
func (_c *LeaderHistoryCreate) SetNewNodeID(v string) *LeaderHistoryCreate {
	_c.mutation.SetNewNodeID(v)
	return _c
}

// SetTerm sets the "term" field.
func (_c *LeaderHistoryCreate) SetTerm(v int64) *LeaderHistoryCreate {
	_c.mutation.SetTerm(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *LeaderHistoryCreate) SetReason(v string) *LeaderHistoryCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LeaderHistoryCreate) SetCreatedAt(v time.Time) *LeaderHistoryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LeaderHistoryCreate) SetNillableCreatedAt(v *time.Time) *LeaderHistoryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LeaderHistoryCreate) SetID(v string) *LeaderHistoryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the LeaderHistoryMutation object of the builder.
func (_c *LeaderHistoryCreate) Mutation() *LeaderHistoryMutation {
	return _c.mutation
}

// Save creates the LeaderHistory in the database.
func (_c *LeaderHistoryCreate) Save(ctx context.Context) (*LeaderHistory, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LeaderHistoryCreate) SaveX(ctx context.Context) *LeaderHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeaderHistoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeaderHistoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LeaderHistoryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := leaderhistory.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LeaderHistoryCreate) check() error {
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "LeaderHistory.role"`)}
	}
	if _, ok := _c.mutation.NewNodeID(); !ok {
		return &ValidationError{Name: "new_node_id", err: errors.New(`ent: missing required field "LeaderHistory.new_node_id"`)}
	}
	if _, ok := _c.mutation.Term(); !ok {
		return &ValidationError{Name: "term", err: errors.New(`ent: missing required field "LeaderHistory.term"`)}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "LeaderHistory.reason"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LeaderHistory.created_at"`)}
	}
	return nil
}

func (_c *LeaderHistoryCreate) sqlSave(ctx context.Context) (*LeaderHistory, error) {
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
			return nil, fmt.Errorf("unexpected LeaderHistory.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LeaderHistoryCreate) createSpec() (*LeaderHistory, *sqlgraph.CreateSpec) {
	var (
		_node = &LeaderHistory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(leaderhistory.Table, sqlgraph.NewFieldSpec(leaderhistory.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(leaderhistory.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.OldNodeID(); ok {
		_spec.SetField(leaderhistory.FieldOldNodeID, field.TypeString, value)
		_node.OldNodeID = &value
	}
	if value, ok := _c.mutation.NewNodeID(); ok {
		_spec.SetField(leaderhistory.FieldNewNodeID, field.TypeString, value)
		_node.NewNodeID = value
	}
	if value, ok := _c.mutation.Term(); ok {
		_spec.SetField(leaderhistory.FieldTerm, field.TypeInt64, value)
		_node.Term = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(leaderhistory.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(leaderhistory.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LeaderHistory.Create().
//		SetRole(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LeaderHistoryUpsert) {
//			SetRole(v+v).
//		}).
//		Exec(ctx)
func (_c *LeaderHistoryCreate) OnConflict(opts ...sql.ConflictOption) *LeaderHistoryUpsertOne {
	_c.conflict = opts
	return &LeaderHistoryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LeaderHistory.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LeaderHistoryCreate) OnConflictColumns(columns ...string) *LeaderHistoryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LeaderHistoryUpsertOne{
		create: _c,
	}
}

type (
	// LeaderHistoryUpsertOne is the builder for "upsert"-ing
	//  one LeaderHistory node.
	LeaderHistoryUpsertOne struct {
		create *LeaderHistoryCreate
	}

	// LeaderHistoryUpsert is the "OnConflict" setter.
	LeaderHistoryUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.LeaderHistory.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(leaderhistory.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LeaderHistoryUpsertOne) UpdateNewValues() *LeaderHistoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(leaderhistory.FieldID)
		}
		if _, exists := u.create.mutation.Role(); exists {
			s.SetIgnore(leaderhistory.FieldRole)
		}
		if _, exists := u.create.mutation.OldNodeID(); exists {
			s.SetIgnore(leaderhistory.FieldOldNodeID)
		}
		if _, exists := u.create.mutation.NewNodeID(); exists {
			s.SetIgnore(leaderhistory.FieldNewNodeID)
		}
		if _, exists := u.create.mutation.Term(); exists {
			s.SetIgnore(leaderhistory.FieldTerm)
		}
		if _, exists := u.create.mutation.Reason(); exists {
			s.SetIgnore(leaderhistory.FieldReason)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(leaderhistory.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LeaderHistory.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LeaderHistoryUpsertOne) Ignore() *LeaderHistoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LeaderHistoryUpsertOne) DoNothing() *LeaderHistoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LeaderHistoryCreate.OnConflict
// documentation for more info.
func (u *LeaderHistoryUpsertOne) Update(set func(*LeaderHistoryUpsert)) *LeaderHistoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LeaderHistoryUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *LeaderHistoryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LeaderHistoryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LeaderHistoryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LeaderHistoryUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: LeaderHistoryUpsertOne.ID is not supported by MySQL driver. Use LeaderHistoryUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LeaderHistoryUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LeaderHistoryCreateBulk is the builder for creating many LeaderHistory entities in bulk.
type LeaderHistoryCreateBulk struct {
	config
	err      error
	builders []*LeaderHistoryCreate
	conflict []sql.ConflictOption
}

// Save creates the LeaderHistory entities in the database.
func (_c *LeaderHistoryCreateBulk) Save(ctx context.Context) ([]*LeaderHistory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LeaderHistory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LeaderHistoryMutation)
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
func (_c *LeaderHistoryCreateBulk) SaveX(ctx context.Context) []*LeaderHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeaderHistoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeaderHistoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LeaderHistory.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LeaderHistoryUpsert) {
//			SetRole(v+v).
//		}).
//		Exec(ctx)
func (_c *LeaderHistoryCreateBulk) OnConflict(opts ...sql.ConflictOption) *LeaderHistoryUpsertBulk {
	_c.conflict = opts
	return &LeaderHistoryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LeaderHistory.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LeaderHistoryCreateBulk) OnConflictColumns(columns ...string) *LeaderHistoryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LeaderHistoryUpsertBulk{
		create: _c,
	}
}

// LeaderHistoryUpsertBulk is the builder for "upsert"-ing
// a bulk of LeaderHistory nodes.
type LeaderHistoryUpsertBulk struct {
	create *LeaderHistoryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.LeaderHistory.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(leaderhistory.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LeaderHistoryUpsertBulk) UpdateNewValues() *LeaderHistoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(leaderhistory.FieldID)
			}
			if _, exists := b.mutation.Role(); exists {
				s.SetIgnore(leaderhistory.FieldRole)
			}
			if _, exists := b.mutation.OldNodeID(); exists {
				s.SetIgnore(leaderhistory.FieldOldNodeID)
			}
			if _, exists := b.mutation.NewNodeID(); exists {
				s.SetIgnore(leaderhistory.FieldNewNodeID)
			}
			if _, exists := b.mutation.Term(); exists {
				s.SetIgnore(leaderhistory.FieldTerm)
			}
			if _, exists := b.mutation.Reason(); exists {
				s.SetIgnore(leaderhistory.FieldReason)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(leaderhistory.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LeaderHistory.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LeaderHistoryUpsertBulk) Ignore() *LeaderHistoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LeaderHistoryUpsertBulk) DoNothing() *LeaderHistoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LeaderHistoryCreateBulk.OnConflict
// documentation for more info.
func (u *LeaderHistoryUpsertBulk) Update(set func(*LeaderHistoryUpsert)) *LeaderHistoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LeaderHistoryUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *LeaderHistoryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LeaderHistoryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LeaderHistoryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LeaderHistoryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
