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
	"github.com/maestro-run/maestro/ent/scalingdecision"
)

// ScalingDecisionCreate is the builder for creating a ScalingDecision entity.
type ScalingDecisionCreate struct {
	config
	mutation *ScalingDecisionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetDecision sets the "decision" field.
func (_c *ScalingDecisionCreate) SetDecision(v scalingdecision.Decision) *ScalingDecisionCreate {
	_c.mutation.SetDecision(v)
	return _c
}

// SetQueueName sets the "queue_name" field.
func (_c *ScalingDecisionCreate) SetQueueName(v string) *ScalingDecisionCreate {
	_c.mutation.SetQueueName(v)
	return _c
}

// SetCurrentWorkers sets the "current_workers" field.
func (_c *ScalingDecisionCreate) SetCurrentWorkers(v int) *ScalingDecisionCreate {
	_c.mutation.SetCurrentWorkers(v)
	return _c
}

// SetTargetWorkers sets the "target_workers" field.
func (_c *ScalingDecisionCreate) SetTargetWorkers(v int) *ScalingDecisionCreate {
	_c.mutation.SetTargetWorkers(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *ScalingDecisionCreate) SetReason(v string) *ScalingDecisionCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetMetrics sets the "metrics" field.
func (_c *ScalingDecisionCreate) SetMetrics(v map[string]interface{}) *ScalingDecisionCreate {
	_c.mutation.SetMetrics(v)
	return _c
}

// SetApplied sets the "applied" field.
func (_c *ScalingDecisionCreate) SetApplied(v bool) *ScalingDecisionCreate {
	_c.mutation.SetApplied(v)
	return _c
}

// SetNillableApplied sets the "applied" field if the given value is not nil.
func (_c *ScalingDecisionCreate) SetNillableApplied(v *bool) *ScalingDecisionCreate {
	if v != nil {
		_c.SetApplied(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ScalingDecisionCreate) SetCreatedAt(v time.Time) *ScalingDecisionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ScalingDecisionCreate) SetNillableCreatedAt(v *time.Time) *ScalingDecisionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ScalingDecisionCreate) SetID(v string) *ScalingDecisionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ScalingDecisionMutation object of the builder.
func (_c *ScalingDecisionCreate) Mutation() *ScalingDecisionMutation {
	return _c.mutation
}

// Save creates the ScalingDecision in the database.
func (_c *ScalingDecisionCreate) Save(ctx context.Context) (*ScalingDecision, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScalingDecisionCreate) SaveX(ctx context.Context) *ScalingDecision {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScalingDecisionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScalingDecisionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScalingDecisionCreate) defaults() {
	if _, ok := _c.mutation.Applied(); !ok {
		v := scalingdecision.DefaultApplied
		_c.mutation.SetApplied(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := scalingdecision.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScalingDecisionCreate) check() error {
	if _, ok := _c.mutation.Decision(); !ok {
		return &ValidationError{Name: "decision", err: errors.New(`ent: missing required field "ScalingDecision.decision"`)}
	}
	if v, ok := _c.mutation.Decision(); ok {
		if err := scalingdecision.DecisionValidator(v); err != nil {
			return &ValidationError{Name: "decision", err: fmt.Errorf(`ent: validator failed for field "ScalingDecision.decision": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QueueName(); !ok {
		return &ValidationError{Name: "queue_name", err: errors.New(`ent: missing required field "ScalingDecision.queue_name"`)}
	}
	if _, ok := _c.mutation.CurrentWorkers(); !ok {
		return &ValidationError{Name: "current_workers", err: errors.New(`ent: missing required field "ScalingDecision.current_workers"`)}
	}
	if _, ok := _c.mutation.TargetWorkers(); !ok {
		return &ValidationError{Name: "target_workers", err: errors.New(`ent: missing required field "ScalingDecision.target_workers"`)}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "ScalingDecision.reason"`)}
	}
	if _, ok := _c.mutation.Applied(); !ok {
		return &ValidationError{Name: "applied", err: errors.New(`ent: missing required field "ScalingDecision.applied"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ScalingDecision.created_at"`)}
	}
	return nil
}

func (_c *ScalingDecisionCreate) sqlSave(ctx context.Context) (*ScalingDecision, error) {
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
			return nil, fmt.Errorf("unexpected ScalingDecision.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ScalingDecisionCreate) createSpec() (*ScalingDecision, *sqlgraph.CreateSpec) {
	var (
		_node = &ScalingDecision{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scalingdecision.Table, sqlgraph.NewFieldSpec(scalingdecision.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Decision(); ok {
		_spec.SetField(scalingdecision.FieldDecision, field.TypeEnum, value)
		_node.Decision = value
	}
	if value, ok := _c.mutation.QueueName(); ok {
		_spec.SetField(scalingdecision.FieldQueueName, field.TypeString, value)
		_node.QueueName = value
	}
	if value, ok := _c.mutation.CurrentWorkers(); ok {
		_spec.SetField(scalingdecision.FieldCurrentWorkers, field.TypeInt, value)
		_node.CurrentWorkers = value
	}
	if value, ok := _c.mutation.TargetWorkers(); ok {
		_spec.SetField(scalingdecision.FieldTargetWorkers, field.TypeInt, value)
		_node.TargetWorkers = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(scalingdecision.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.Metrics(); ok {
		_spec.SetField(scalingdecision.FieldMetrics, field.TypeJSON, value)
		_node.Metrics = value
	}
	if value, ok := _c.mutation.Applied(); ok {
		_spec.SetField(scalingdecision.FieldApplied, field.TypeBool, value)
		_node.Applied = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(scalingdecision.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ScalingDecision.Create().
//		SetDecision(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ScalingDecisionUpsert) {
//			SetDecision(v+v).
//		}).
//		Exec(ctx)
func (_c *ScalingDecisionCreate) OnConflict(opts ...sql.ConflictOption) *ScalingDecisionUpsertOne {
	_c.conflict = opts
	return &ScalingDecisionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ScalingDecision.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ScalingDecisionCreate) OnConflictColumns(columns ...string) *ScalingDecisionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ScalingDecisionUpsertOne{
		create: _c,
	}
}

type (
	// ScalingDecisionUpsertOne is the builder for "upsert"-ing
	//  one ScalingDecision node.
	ScalingDecisionUpsertOne struct {
		create *ScalingDecisionCreate
	}

	// ScalingDecisionUpsert is the "OnConflict" setter.
	ScalingDecisionUpsert struct {
		*sql.UpdateSet
	}
)

// SetMetrics sets the "metrics" field.
func (u *ScalingDecisionUpsert) SetMetrics(v map[string]interface{}) *ScalingDecisionUpsert {
	u.Set(scalingdecision.FieldMetrics, v)
	return u
}

// UpdateMetrics sets the "metrics" field to the value that was provided on create.
func (u *ScalingDecisionUpsert) UpdateMetrics() *ScalingDecisionUpsert {
	u.SetExcluded(scalingdecision.FieldMetrics)
	return u
}

// ClearMetrics clears the value of the "metrics" field.
func (u *ScalingDecisionUpsert) ClearMetrics() *ScalingDecisionUpsert {
	u.SetNull(scalingdecision.FieldMetrics)
	return u
}

// SetApplied sets the "applied" field.
func (u *ScalingDecisionUpsert) SetApplied(v bool) *ScalingDecisionUpsert {
	u.Set(scalingdecision.FieldApplied, v)
	return u
}

// UpdateApplied sets the "applied" field to the value that was provided on create.
func (u *ScalingDecisionUpsert) UpdateApplied() *ScalingDecisionUpsert {
	u.SetExcluded(scalingdecision.FieldApplied)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ScalingDecision.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(scalingdecision.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ScalingDecisionUpsertOne) UpdateNewValues() *ScalingDecisionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(scalingdecision.FieldID)
		}
		if _, exists := u.create.mutation.Decision(); exists {
			s.SetIgnore(scalingdecision.FieldDecision)
		}
		if _, exists := u.create.mutation.QueueName(); exists {
			s.SetIgnore(scalingdecision.FieldQueueName)
		}
		if _, exists := u.create.mutation.CurrentWorkers(); exists {
			s.SetIgnore(scalingdecision.FieldCurrentWorkers)
		}
		if _, exists := u.create.mutation.TargetWorkers(); exists {
			s.SetIgnore(scalingdecision.FieldTargetWorkers)
		}
		if _, exists := u.create.mutation.Reason(); exists {
			s.SetIgnore(scalingdecision.FieldReason)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(scalingdecision.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ScalingDecision.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ScalingDecisionUpsertOne) Ignore() *ScalingDecisionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ScalingDecisionUpsertOne) DoNothing() *ScalingDecisionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ScalingDecisionCreate.OnConflict
// documentation for more info.
func (u *ScalingDecisionUpsertOne) Update(set func(*ScalingDecisionUpsert)) *ScalingDecisionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ScalingDecisionUpsert{UpdateSet: update})
	}))
	return u
}

// SetMetrics sets the "metrics" field.
func (u *ScalingDecisionUpsertOne) SetMetrics(v map[string]interface{}) *ScalingDecisionUpsertOne {
	return u.Update(func(s *ScalingDecisionUpsert) {
		s.SetMetrics(v)
	})
}

// UpdateMetrics sets the "metrics" field to the value that was provided on create.
func (u *ScalingDecisionUpsertOne) UpdateMetrics() *ScalingDecisionUpsertOne {
	return u.Update(func(s *ScalingDecisionUpsert) {
		s.UpdateMetrics()
	})
}

// ClearMetrics clears the value of the "metrics" field.
func (u *ScalingDecisionUpsertOne) ClearMetrics() *ScalingDecisionUpsertOne {
	return u.Update(func(s *ScalingDecisionUpsert) {
		s.ClearMetrics()
	})
}

// SetApplied sets the "applied" field.
func (u *ScalingDecisionUpsertOne) SetApplied(v bool) *ScalingDecisionUpsertOne {
	return u.Update(func(s *ScalingDecisionUpsert) {
		s.SetApplied(v)
	})
}

// UpdateApplied sets the "applied" field to the value that was provided on create.
func (u *ScalingDecisionUpsertOne) UpdateApplied() *ScalingDecisionUpsertOne {
	return u.Update(func(s *ScalingDecisionUpsert) {
		s.UpdateApplied()
	})
}

// Exec executes the query.
func (u *ScalingDecisionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ScalingDecisionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ScalingDecisionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ScalingDecisionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ScalingDecisionUpsertOne.ID is not supported by MySQL driver. Use ScalingDecisionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ScalingDecisionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ScalingDecisionCreateBulk is the builder for creating many ScalingDecision entities in bulk.
type ScalingDecisionCreateBulk struct {
	config
	err      error
	builders []*ScalingDecisionCreate
	conflict []sql.ConflictOption
}

// Save creates the ScalingDecision entities in the database.
func (_c *ScalingDecisionCreateBulk) Save(ctx context.Context) ([]*ScalingDecision, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScalingDecision, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScalingDecisionMutation)
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
func (_c *ScalingDecisionCreateBulk) SaveX(ctx context.Context) []*ScalingDecision {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScalingDecisionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScalingDecisionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ScalingDecision.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ScalingDecisionUpsert) {
//			SetDecision(v+v).
//		}).
//		Exec(ctx)
func (_c *ScalingDecisionCreateBulk) OnConflict(opts ...sql.ConflictOption) *ScalingDecisionUpsertBulk {
	_c.conflict = opts
	return &ScalingDecisionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ScalingDecision.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ScalingDecisionCreateBulk) OnConflictColumns(columns ...string) *ScalingDecisionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ScalingDecisionUpsertBulk{
		create: _c,
	}
}

// ScalingDecisionUpsertBulk is the builder for "upsert"-ing
// a bulk of ScalingDecision nodes.
type ScalingDecisionUpsertBulk struct {
	create *ScalingDecisionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ScalingDecision.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(scalingdecision.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ScalingDecisionUpsertBulk) UpdateNewValues() *ScalingDecisionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(scalingdecision.FieldID)
			}
			if _, exists := b.mutation.Decision(); exists {
				s.SetIgnore(scalingdecision.FieldDecision)
			}
			if _, exists := b.mutation.QueueName(); exists {
				s.SetIgnore(scalingdecision.FieldQueueName)
			}
			if _, exists := b.mutation.CurrentWorkers(); exists {
				s.SetIgnore(scalingdecision.FieldCurrentWorkers)
			}
			if _, exists := b.mutation.TargetWorkers(); exists {
				s.SetIgnore(scalingdecision.FieldTargetWorkers)
			}
			if _, exists := b.mutation.Reason(); exists {
				s.SetIgnore(scalingdecision.FieldReason)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(scalingdecision.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ScalingDecision.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ScalingDecisionUpsertBulk) Ignore() *ScalingDecisionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ScalingDecisionUpsertBulk) DoNothing() *ScalingDecisionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ScalingDecisionCreateBulk.OnConflict
// documentation for more info.
func (u *ScalingDecisionUpsertBulk) Update(set func(*ScalingDecisionUpsert)) *ScalingDecisionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ScalingDecisionUpsert{UpdateSet: update})
	}))
	return u
}

// SetMetrics sets the "metrics" field.
func (u *ScalingDecisionUpsertBulk) SetMetrics(v map[string]interface{}) *ScalingDecisionUpsertBulk {
	return u.Update(func(s *ScalingDecisionUpsert) {
		s.SetMetrics(v)
	})
}

// UpdateMetrics sets the "metrics" field to the value that was provided on create.
func (u *ScalingDecisionUpsertBulk) UpdateMetrics() *ScalingDecisionUpsertBulk {
	return u.Update(func(s *ScalingDecisionUpsert) {
		s.UpdateMetrics()
	})
}

// ClearMetrics clears the value of the "metrics" field.
func (u *ScalingDecisionUpsertBulk) ClearMetrics() *ScalingDecisionUpsertBulk {
	return u.Update(func(s *ScalingDecisionUpsert) {
		s.ClearMetrics()
	})
}

// SetApplied sets the "applied" field.
func (u *ScalingDecisionUpsertBulk) SetApplied(v bool) *ScalingDecisionUpsertBulk {
	return u.Update(func(s *ScalingDecisionUpsert) {
		s.SetApplied(v)
	})
}

// UpdateApplied sets the "applied" field to the value that was provided on create.
func (u *ScalingDecisionUpsertBulk) UpdateApplied() *ScalingDecisionUpsertBulk {
	return u.Update(func(s *ScalingDecisionUpsert) {
		s.UpdateApplied()
	})
}

// Exec executes the query.
func (u *ScalingDecisionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ScalingDecisionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ScalingDecisionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ScalingDecisionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
