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
	"github.com/maestro-run/maestro/ent/agentperformancemetric"
)

// AgentPerformanceMetricCreate is the builder for creating a AgentPerformanceMetric entity.
type AgentPerformanceMetricCreate struct {
	config
	mutation *AgentPerformanceMetricMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAgentID sets the "agent_id" field.
func (_c *AgentPerformanceMetricCreate) SetAgentID(v string) *AgentPerformanceMetricCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetMetricType sets the "metric_type" field.
func (_c *AgentPerformanceMetricCreate) SetMetricType(v agentperformancemetric.MetricType) *AgentPerformanceMetricCreate {
	_c.mutation.SetMetricType(v)
	return _c
}

// SetValue sets the "value" field.
func (_c *AgentPerformanceMetricCreate) SetValue(v float64) *AgentPerformanceMetricCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetTags sets the "tags" field.
func (_c *AgentPerformanceMetricCreate) SetTags(v map[string]string) *AgentPerformanceMetricCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetRecordedAt sets the "recorded_at" field.
func (_c *AgentPerformanceMetricCreate) SetRecordedAt(v time.Time) *AgentPerformanceMetricCreate {
	_c.mutation.SetRecordedAt(v)
	return _c
}

// SetNillableRecordedAt sets the "recorded_at" field if the given value is not nil.
func (_c *AgentPerformanceMetricCreate) SetNillableRecordedAt(v *time.Time) *AgentPerformanceMetricCreate {
	if v != nil {
		_c.SetRecordedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentPerformanceMetricCreate) SetID(v string) *AgentPerformanceMetricCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AgentPerformanceMetricMutation object of the builder.
func (_c *AgentPerformanceMetricCreate) Mutation() *AgentPerformanceMetricMutation {
	return _c.mutation
}

// Save creates the AgentPerformanceMetric in the database.
func (_c *AgentPerformanceMetricCreate) Save(ctx context.Context) (*AgentPerformanceMetric, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentPerformanceMetricCreate) SaveX(ctx context.Context) *AgentPerformanceMetric {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentPerformanceMetricCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentPerformanceMetricCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentPerformanceMetricCreate) defaults() {
	if _, ok := _c.mutation.RecordedAt(); !ok {
		v := agentperformancemetric.DefaultRecordedAt()
		_c.mutation.SetRecordedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentPerformanceMetricCreate) check() error {
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "AgentPerformanceMetric.agent_id"`)}
	}
	if _, ok := _c.mutation.MetricType(); !ok {
		return &ValidationError{Name: "metric_type", err: errors.New(`ent: missing required field "AgentPerformanceMetric.metric_type"`)}
	}
	if v, ok := _c.mutation.MetricType(); ok {
		if err := agentperformancemetric.MetricTypeValidator(v); err != nil {
			return &ValidationError{Name: "metric_type", err: fmt.Errorf(`ent: validator failed for field "AgentPerformanceMetric.metric_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "AgentPerformanceMetric.value"`)}
	}
	if _, ok := _c.mutation.RecordedAt(); !ok {
		return &ValidationError{Name: "recorded_at", err: errors.New(`ent: missing required field "AgentPerformanceMetric.recorded_at"`)}
	}
	return nil
}

func (_c *AgentPerformanceMetricCreate) sqlSave(ctx context.Context) (*AgentPerformanceMetric, error) {
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
			return nil, fmt.Errorf("unexpected AgentPerformanceMetric.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentPerformanceMetricCreate) createSpec() (*AgentPerformanceMetric, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentPerformanceMetric{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentperformancemetric.Table, sqlgraph.NewFieldSpec(agentperformancemetric.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(agentperformancemetric.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.MetricType(); ok {
		_spec.SetField(agentperformancemetric.FieldMetricType, field.TypeEnum, value)
		_node.MetricType = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(agentperformancemetric.FieldValue, field.TypeFloat64, value)
		_node.Value = value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(agentperformancemetric.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.RecordedAt(); ok {
		_spec.SetField(agentperformancemetric.FieldRecordedAt, field.TypeTime, value)
		_node.RecordedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentPerformanceMetric.Create().
//		SetAgentID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentPerformanceMetricUpsert) {
//			SetAgentID(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentPerformanceMetricCreate) OnConflict(opts ...sql.ConflictOption) *AgentPerformanceMetricUpsertOne {
	_c.conflict = opts
	return &AgentPerformanceMetricUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentPerformanceMetric.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentPerformanceMetricCreate) OnConflictColumns(columns ...string) *AgentPerformanceMetricUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentPerformanceMetricUpsertOne{
		create: _c,
	}
}

type (
	// AgentPerformanceMetricUpsertOne is the builder for "upsert"-ing
	//  one AgentPerformanceMetric node.
	AgentPerformanceMetricUpsertOne struct {
		create *AgentPerformanceMetricCreate
	}

	// AgentPerformanceMetricUpsert is the "OnConflict" setter.
	AgentPerformanceMetricUpsert struct {
		*sql.UpdateSet
	}
)

// SetTags sets the "tags" field.
func (u *AgentPerformanceMetricUpsert) SetTags(v map[string]string) *AgentPerformanceMetricUpsert {
	u.Set(agentperformancemetric.FieldTags, v)
	return u
}

// UpdateTags sets the "tags" field to the value that was provided on create.
func (u *AgentPerformanceMetricUpsert) UpdateTags() *AgentPerformanceMetricUpsert {
	u.SetExcluded(agentperformancemetric.FieldTags)
	return u
}

// ClearTags clears the value of the "tags" field.
func (u *AgentPerformanceMetricUpsert) ClearTags() *AgentPerformanceMetricUpsert {
	u.SetNull(agentperformancemetric.FieldTags)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AgentPerformanceMetric.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agentperformancemetric.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentPerformanceMetricUpsertOne) UpdateNewValues() *AgentPerformanceMetricUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(agentperformancemetric.FieldID)
		}
		if _, exists := u.create.mutation.AgentID(); exists {
			s.SetIgnore(agentperformancemetric.FieldAgentID)
		}
		if _, exists := u.create.mutation.MetricType(); exists {
			s.SetIgnore(agentperformancemetric.FieldMetricType)
		}
		if _, exists := u.create.mutation.Value(); exists {
			s.SetIgnore(agentperformancemetric.FieldValue)
		}
		if _, exists := u.create.mutation.RecordedAt(); exists {
			s.SetIgnore(agentperformancemetric.FieldRecordedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentPerformanceMetric.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AgentPerformanceMetricUpsertOne) Ignore() *AgentPerformanceMetricUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentPerformanceMetricUpsertOne) DoNothing() *AgentPerformanceMetricUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentPerformanceMetricCreate.OnConflict
// documentation for more info.
func (u *AgentPerformanceMetricUpsertOne) Update(set func(*AgentPerformanceMetricUpsert)) *AgentPerformanceMetricUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentPerformanceMetricUpsert{UpdateSet: update})
	}))
	return u
}

// SetTags sets the "tags" field.
func (u *AgentPerformanceMetricUpsertOne) SetTags(v map[string]string) *AgentPerformanceMetricUpsertOne {
	return u.Update(func(s *AgentPerformanceMetricUpsert) {
		s.SetTags(v)
	})
}

// UpdateTags sets the "tags" field to the value that was provided on create.
func (u *AgentPerformanceMetricUpsertOne) UpdateTags() *AgentPerformanceMetricUpsertOne {
	return u.Update(func(s *AgentPerformanceMetricUpsert) {
		s.UpdateTags()
	})
}

// ClearTags clears the value of the "tags" field.
func (u *AgentPerformanceMetricUpsertOne) ClearTags() *AgentPerformanceMetricUpsertOne {
	return u.Update(func(s *AgentPerformanceMetricUpsert) {
		s.ClearTags()
	})
}

// Exec executes the query.
func (u *AgentPerformanceMetricUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentPerformanceMetricCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentPerformanceMetricUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AgentPerformanceMetricUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AgentPerformanceMetricUpsertOne.ID is not supported by MySQL driver. Use AgentPerformanceMetricUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AgentPerformanceMetricUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AgentPerformanceMetricCreateBulk is the builder for creating many AgentPerformanceMetric entities in bulk.
type AgentPerformanceMetricCreateBulk struct {
	config
	err      error
	builders []*AgentPerformanceMetricCreate
	conflict []sql.ConflictOption
}

// Save creates the AgentPerformanceMetric entities in the database.
func (_c *AgentPerformanceMetricCreateBulk) Save(ctx context.Context) ([]*AgentPerformanceMetric, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentPerformanceMetric, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentPerformanceMetricMutation)
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
func (_c *AgentPerformanceMetricCreateBulk) SaveX(ctx context.Context) []*AgentPerformanceMetric {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentPerformanceMetricCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentPerformanceMetricCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentPerformanceMetric.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentPerformanceMetricUpsert) {
//			SetAgentID(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentPerformanceMetricCreateBulk) OnConflict(opts ...sql.ConflictOption) *AgentPerformanceMetricUpsertBulk {
	_c.conflict = opts
	return &AgentPerformanceMetricUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentPerformanceMetric.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentPerformanceMetricCreateBulk) OnConflictColumns(columns ...string) *AgentPerformanceMetricUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentPerformanceMetricUpsertBulk{
		create: _c,
	}
}

// AgentPerformanceMetricUpsertBulk is the builder for "upsert"-ing
// a bulk of AgentPerformanceMetric nodes.
type AgentPerformanceMetricUpsertBulk struct {
	create *AgentPerformanceMetricCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AgentPerformanceMetric.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agentperformancemetric.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentPerformanceMetricUpsertBulk) UpdateNewValues() *AgentPerformanceMetricUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(agentperformancemetric.FieldID)
			}
			if _, exists := b.mutation.AgentID(); exists {
				s.SetIgnore(agentperformancemetric.FieldAgentID)
			}
			if _, exists := b.mutation.MetricType(); exists {
				s.SetIgnore(agentperformancemetric.FieldMetricType)
			}
			if _, exists := b.mutation.Value(); exists {
				s.SetIgnore(agentperformancemetric.FieldValue)
			}
			if _, exists := b.mutation.RecordedAt(); exists {
				s.SetIgnore(agentperformancemetric.FieldRecordedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentPerformanceMetric.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AgentPerformanceMetricUpsertBulk) Ignore() *AgentPerformanceMetricUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentPerformanceMetricUpsertBulk) DoNothing() *AgentPerformanceMetricUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentPerformanceMetricCreateBulk.OnConflict
// documentation for more info.
func (u *AgentPerformanceMetricUpsertBulk) Update(set func(*AgentPerformanceMetricUpsert)) *AgentPerformanceMetricUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentPerformanceMetricUpsert{UpdateSet: update})
	}))
	return u
}

// SetTags sets the "tags" field.
func (u *AgentPerformanceMetricUpsertBulk) SetTags(v map[string]string) *AgentPerformanceMetricUpsertBulk {
	return u.Update(func(s *AgentPerformanceMetricUpsert) {
		s.SetTags(v)
	})
}

// UpdateTags sets the "tags" field to the value that was provided on create.
func (u *AgentPerformanceMetricUpsertBulk) UpdateTags() *AgentPerformanceMetricUpsertBulk {
	return u.Update(func(s *AgentPerformanceMetricUpsert) {
		s.UpdateTags()
	})
}

// ClearTags clears the value of the "tags" field.
func (u *AgentPerformanceMetricUpsertBulk) ClearTags() *AgentPerformanceMetricUpsertBulk {
	return u.Update(func(s *AgentPerformanceMetricUpsert) {
		s.ClearTags()
	})
}

// Exec executes the query.
func (u *AgentPerformanceMetricUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AgentPerformanceMetricCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentPerformanceMetricCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentPerformanceMetricUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
