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
	"github.com/maestro-run/maestro/ent/agentperformance"
)

// AgentPerformanceCreate is the builder for creating a AgentPerformance entity.
type AgentPerformanceCreate struct {
	config
	mutation *AgentPerformanceMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAgentID sets the "agent_id" field.
func (_c *AgentPerformanceCreate) SetAgentID(v string) *AgentPerformanceCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetDay sets the "day" field.
func (_c *AgentPerformanceCreate) SetDay(v time.Time) *AgentPerformanceCreate {
	_c.mutation.SetDay(v)
	return _c
}

// SetTotalExecutions sets the "total_executions" field.
func (_c *AgentPerformanceCreate) SetTotalExecutions(v int64) *AgentPerformanceCreate {
	_c.mutation.SetTotalExecutions(v)
	return _c
}

// SetNillableTotalExecutions sets the "total_executions" field if the given value is not nil.
func (_c *AgentPerformanceCreate) SetNillableTotalExecutions(v *int64) *AgentPerformanceCreate {
	if v != nil {
		_c.SetTotalExecutions(*v)
	}
	return _c
}

// SetSuccessfulExecutions sets the "successful_executions" field.
func (_c *AgentPerformanceCreate) SetSuccessfulExecutions(v int64) *AgentPerformanceCreate {
	_c.mutation.SetSuccessfulExecutions(v)
	return _c
}

// SetNillableSuccessfulExecutions sets the "successful_executions" field if the given value is not nil.
func (_c *AgentPerformanceCreate) SetNillableSuccessfulExecutions(v *int64) *AgentPerformanceCreate {
	if v != nil {
		_c.SetSuccessfulExecutions(*v)
	}
	return _c
}

// SetFailedExecutions sets the "failed_executions" field.
func (_c *AgentPerformanceCreate) SetFailedExecutions(v int64) *AgentPerformanceCreate {
	_c.mutation.SetFailedExecutions(v)
	return _c
}

// SetNillableFailedExecutions sets the "failed_executions" field if the given value is not nil.
func (_c *AgentPerformanceCreate) SetNillableFailedExecutions(v *int64) *AgentPerformanceCreate {
	if v != nil {
		_c.SetFailedExecutions(*v)
	}
	return _c
}

// SetAvgLatencyMs sets the "avg_latency_ms" field.
func (_c *AgentPerformanceCreate) SetAvgLatencyMs(v float64) *AgentPerformanceCreate {
	_c.mutation.SetAvgLatencyMs(v)
	return _c
}

// SetNillableAvgLatencyMs sets the "avg_latency_ms" field if the given value is not nil.
func (_c *AgentPerformanceCreate) SetNillableAvgLatencyMs(v *float64) *AgentPerformanceCreate {
	if v != nil {
		_c.SetAvgLatencyMs(*v)
	}
	return _c
}

// SetTotalCost sets the "total_cost" field.
func (_c *AgentPerformanceCreate) SetTotalCost(v float64) *AgentPerformanceCreate {
	_c.mutation.SetTotalCost(v)
	return _c
}

// SetNillableTotalCost sets the "total_cost" field if the given value is not nil.
func (_c *AgentPerformanceCreate) SetNillableTotalCost(v *float64) *AgentPerformanceCreate {
	if v != nil {
		_c.SetTotalCost(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AgentPerformanceCreate) SetUpdatedAt(v time.Time) *AgentPerformanceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AgentPerformanceCreate) SetNillableUpdatedAt(v *time.Time) *AgentPerformanceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentPerformanceCreate) SetID(v string) *AgentPerformanceCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AgentPerformanceMutation object of the builder.
func (_c *AgentPerformanceCreate) Mutation() *AgentPerformanceMutation {
	return _c.mutation
}

// Save creates the AgentPerformance in the database.
func (_c *AgentPerformanceCreate) Save(ctx context.Context) (*AgentPerformance, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentPerformanceCreate) SaveX(ctx context.Context) *AgentPerformance {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentPerformanceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentPerformanceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentPerformanceCreate) defaults() {
	if _, ok := _c.mutation.TotalExecutions(); !ok {
		v := agentperformance.DefaultTotalExecutions
		_c.mutation.SetTotalExecutions(v)
	}
	if _, ok := _c.mutation.SuccessfulExecutions(); !ok {
		v := agentperformance.DefaultSuccessfulExecutions
		_c.mutation.SetSuccessfulExecutions(v)
	}
	if _, ok := _c.mutation.FailedExecutions(); !ok {
		v := agentperformance.DefaultFailedExecutions
		_c.mutation.SetFailedExecutions(v)
	}
	if _, ok := _c.mutation.AvgLatencyMs(); !ok {
		v := agentperformance.DefaultAvgLatencyMs
		_c.mutation.SetAvgLatencyMs(v)
	}
	if _, ok := _c.mutation.TotalCost(); !ok {
		v := agentperformance.DefaultTotalCost
		_c.mutation.SetTotalCost(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := agentperformance.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentPerformanceCreate) check() error {
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "AgentPerformance.agent_id"`)}
	}
	if _, ok := _c.mutation.Day(); !ok {
		return &ValidationError{Name: "day", err: errors.New(`ent: missing required field "AgentPerformance.day"`)}
	}
	if _, ok := _c.mutation.TotalExecutions(); !ok {
		return &ValidationError{Name: "total_executions", err: errors.New(`ent: missing required field "AgentPerformance.total_executions"`)}
	}
	if _, ok := _c.mutation.SuccessfulExecutions(); !ok {
		return &ValidationError{Name: "successful_executions", err: errors.New(`ent: missing required field "AgentPerformance.successful_executions"`)}
	}
	if _, ok := _c.mutation.FailedExecutions(); !ok {
		return &ValidationError{Name: "failed_executions", err: errors.New(`ent: missing required field "AgentPerformance.failed_executions"`)}
	}
	if _, ok := _c.mutation.AvgLatencyMs(); !ok {
		return &ValidationError{Name: "avg_latency_ms", err: errors.New(`ent: missing required field "AgentPerformance.avg_latency_ms"`)}
	}
	if _, ok := _c.mutation.TotalCost(); !ok {
		return &ValidationError{Name: "total_cost", err: errors.New(`ent: missing required field "AgentPerformance.total_cost"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AgentPerformance.updated_at"`)}
	}
	return nil
}

func (_c *AgentPerformanceCreate) sqlSave(ctx context.Context) (*AgentPerformance, error) {
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
			return nil, fmt.Errorf("unexpected AgentPerformance.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentPerformanceCreate) createSpec() (*AgentPerformance, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentPerformance{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentperformance.Table, sqlgraph.NewFieldSpec(agentperformance.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(agentperformance.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.Day(); ok {
		_spec.SetField(agentperformance.FieldDay, field.TypeTime, value)
		_node.Day = value
	}
	if value, ok := _c.mutation.TotalExecutions(); ok {
		_spec.SetField(agentperformance.FieldTotalExecutions, field.TypeInt64, value)
		_node.TotalExecutions = value
	}
	if value, ok := _c.mutation.SuccessfulExecutions(); ok {
		_spec.SetField(agentperformance.FieldSuccessfulExecutions, field.TypeInt64, value)
		_node.SuccessfulExecutions = value
	}
	if value, ok := _c.mutation.FailedExecutions(); ok {
		_spec.SetField(agentperformance.FieldFailedExecutions, field.TypeInt64, value)
		_node.FailedExecutions = value
	}
	if value, ok := _c.mutation.AvgLatencyMs(); ok {
		_spec.SetField(agentperformance.FieldAvgLatencyMs, field.TypeFloat64, value)
		_node.AvgLatencyMs = value
	}
	if value, ok := _c.mutation.TotalCost(); ok {
		_spec.SetField(agentperformance.FieldTotalCost, field.TypeFloat64, value)
		_node.TotalCost = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(agentperformance.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentPerformance.Create().
//		SetAgentID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentPerformanceUpsert) {
//			SetAgentID(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentPerformanceCreate) OnConflict(opts ...sql.ConflictOption) *AgentPerformanceUpsertOne {
	_c.conflict = opts
	return &AgentPerformanceUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentPerformance.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentPerformanceCreate) OnConflictColumns(columns ...string) *AgentPerformanceUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentPerformanceUpsertOne{
		create: _c,
	}
}

type (
	// AgentPerformanceUpsertOne is the builder for "upsert"-ing
	//  one AgentPerformance node.
	AgentPerformanceUpsertOne struct {
		create *AgentPerformanceCreate
	}

	// AgentPerformanceUpsert is the "OnConflict" setter.
	AgentPerformanceUpsert struct {
		*sql.UpdateSet
	}
)

// SetTotalExecutions sets the "total_executions" field.
func (u *AgentPerformanceUpsert) SetTotalExecutions(v int64) *AgentPerformanceUpsert {
	u.Set(agentperformance.FieldTotalExecutions, v)
	return u
}

// UpdateTotalExecutions sets the "total_executions" field to the value that was provided on create.
func (u *AgentPerformanceUpsert) UpdateTotalExecutions() *AgentPerformanceUpsert {
	u.SetExcluded(agentperformance.FieldTotalExecutions)
	return u
}

// AddTotalExecutions adds v to the "total_executions" field.
func (u *AgentPerformanceUpsert) AddTotalExecutions(v int64) *AgentPerformanceUpsert {
	u.Add(agentperformance.FieldTotalExecutions, v)
	return u
}

// SetSuccessfulExecutions sets the "successful_executions" field.
func (u *AgentPerformanceUpsert) SetSuccessfulExecutions(v int64) *AgentPerformanceUpsert {
	u.Set(agentperformance.FieldSuccessfulExecutions, v)
	return u
}

// UpdateSuccessfulExecutions sets the "successful_executions" field to the value that was provided on create.
func (u *AgentPerformanceUpsert) UpdateSuccessfulExecutions() *AgentPerformanceUpsert {
	u.SetExcluded(agentperformance.FieldSuccessfulExecutions)
	return u
}

// AddSuccessfulExecutions adds v to the "successful_executions" field.
func (u *AgentPerformanceUpsert) AddSuccessfulExecutions(v int64) *AgentPerformanceUpsert {
	u.Add(agentperformance.FieldSuccessfulExecutions, v)
	return u
}

// SetFailedExecutions sets the "failed_executions" field.
func (u *AgentPerformanceUpsert) SetFailedExecutions(v int64) *AgentPerformanceUpsert {
	u.Set(agentperformance.FieldFailedExecutions, v)
	return u
}

// UpdateFailedExecutions sets the "failed_executions" field to the value that was provided on create.
func (u *AgentPerformanceUpsert) UpdateFailedExecutions() *AgentPerformanceUpsert {
	u.SetExcluded(agentperformance.FieldFailedExecutions)
	return u
}

// AddFailedExecutions adds v to the "failed_executions" field.
func (u *AgentPerformanceUpsert) AddFailedExecutions(v int64) *AgentPerformanceUpsert {
	u.Add(agentperformance.FieldFailedExecutions, v)
	return u
}

// SetAvgLatencyMs sets the "avg_latency_ms" field.
func (u *AgentPerformanceUpsert) SetAvgLatencyMs(v float64) *AgentPerformanceUpsert {
	u.Set(agentperformance.FieldAvgLatencyMs, v)
	return u
}

// UpdateAvgLatencyMs sets the "avg_latency_ms" field to the value that was provided on create.
func (u *AgentPerformanceUpsert) UpdateAvgLatencyMs() *AgentPerformanceUpsert {
	u.SetExcluded(agentperformance.FieldAvgLatencyMs)
	return u
}

// AddAvgLatencyMs adds v to the "avg_latency_ms" field.
func (u *AgentPerformanceUpsert) AddAvgLatencyMs(v float64) *AgentPerformanceUpsert {
	u.Add(agentperformance.FieldAvgLatencyMs, v)
	return u
}

// SetTotalCost sets the "total_cost" field.
func (u *AgentPerformanceUpsert) SetTotalCost(v float64) *AgentPerformanceUpsert {
	u.Set(agentperformance.FieldTotalCost, v)
	return u
}

// UpdateTotalCost sets the "total_cost" field to the value that was provided on create.
func (u *AgentPerformanceUpsert) UpdateTotalCost() *AgentPerformanceUpsert {
	u.SetExcluded(agentperformance.FieldTotalCost)
	return u
}

// AddTotalCost adds v to the "total_cost" field.
func (u *AgentPerformanceUpsert) AddTotalCost(v float64) *AgentPerformanceUpsert {
	u.Add(agentperformance.FieldTotalCost, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AgentPerformanceUpsert) SetUpdatedAt(v time.Time) *AgentPerformanceUpsert {
	u.Set(agentperformance.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AgentPerformanceUpsert) UpdateUpdatedAt() *AgentPerformanceUpsert {
	u.SetExcluded(agentperformance.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AgentPerformance.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agentperformance.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentPerformanceUpsertOne) UpdateNewValues() *AgentPerformanceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(agentperformance.FieldID)
		}
		if _, exists := u.create.mutation.AgentID(); exists {
			s.SetIgnore(agentperformance.FieldAgentID)
		}
		if _, exists := u.create.mutation.Day(); exists {
			s.SetIgnore(agentperformance.FieldDay)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentPerformance.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AgentPerformanceUpsertOne) Ignore() *AgentPerformanceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentPerformanceUpsertOne) DoNothing() *AgentPerformanceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentPerformanceCreate.OnConflict
// documentation for more info.
func (u *AgentPerformanceUpsertOne) Update(set func(*AgentPerformanceUpsert)) *AgentPerformanceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentPerformanceUpsert{UpdateSet: update})
	}))
	return u
}

// SetTotalExecutions sets the "total_executions" field.
func (u *AgentPerformanceUpsertOne) SetTotalExecutions(v int64) *AgentPerformanceUpsertOne {
	return u.Update(func(s *AgentPerformanceUpsert) {
		s.SetTotalExecutions(v)
	})
}

// AddTotalExecutions adds v to the "total_executions" field.
func (u *AgentPerformanceUpsertOne) AddTotalExecutions(v int64) *AgentPerformanceUpsertOne {
	return u.Update(func(s *AgentPerformanceUpsert) {
		s.AddTotalExecutions(v)
	})
}

// UpdateTotalExecutions sets the "total_executions" field to the value that was provided on create.
func (u *AgentPerformanceUpsertOne) UpdateTotalExecutions() *AgentPerformanceUpsertOne {
	return u.Update(func(s *AgentPerformanceUpsert) {
		s.UpdateTotalExecutions()
	})
}

// SetSuccessfulExecutions sets the "successful_executions" field.
func (u *AgentPerformanceUpsertOne) SetSuccessfulExecutions(v int64) *AgentPerformanceUpsertOne {
	return u.Update(func(s *AgentPerformanceUpsert) {
		s.SetSuccessfulExecutions(v)
	})
}

// AddSuccessfulExecutions adds v to the "successful_executions" field.
func (u *AgentPerformanceUpsertOne) AddSuccessfulExecutions(v int64) *AgentPerformanceUpsertOne {
	return u.Update(func(s *AgentPerformanceUpsert) {
		s.AddSuccessfulExecutions(v)
	})
}

// UpdateSuccessfulExecutions sets the "successful_executions" field to the value that was provided on create.
func (u *AgentPerformanceUpsertOne) UpdateSuccessfulExecutions() *AgentPerformanceUpsertOne {
	return u.Update(func(s *AgentPerformanceUpsert) {
		s.UpdateSuccessfulExecutions()
	})
}

// SetFailedExecutions sets the "failed_executions" field.
func (u *AgentPerformanceUpsertOne) SetFailedExecutions(v int64) *AgentPerformanceUpsertOne {
	return u.Update(func(s *AgentPerformanceUpsert) {
		s.SetFailedExecutions(v)
	})
}

// AddFailedExecutions adds v to the "failed_executions" field.
func (u *AgentPerformanceUpsertOne) AddFailedExecutions(v int64) *AgentPerformanceUpsertOne {
	return u.Update(func(s *AgentPerformanceUpsert) {
		s.AddFailedExecutions(v)
	})
}

// UpdateFailedExecutions sets the "failed_executions" field to the value that was provided on create.
func (u *AgentPerformanceUpsertOne) UpdateFailedExecutions() *AgentPerformanceUpsertOne {
	return u.Update(func(s *AgentPerformanceUpsert) {
		s.UpdateFailedExecutions()
	})
}

// SetAvgLatencyMs sets the "avg_latency_ms" field.
func (u *AgentPerformanceUpsertOne) SetAvgLatencyMs(v float64) *AgentPerformanceUpsertOne {
	return u.Update(func(s *AgentPerformanceUpsert) {
		s.SetAvgLatencyMs(v)
	})
}

// AddAvgLatencyMs adds v to the "avg_latency_ms" field.
func (u *AgentPerformanceUpsertOne) AddAvgLatencyMs(v float64) *AgentPerformanceUpsertOne {
	return u.Update(func(s *AgentPerformanceUpsert) {
		s.AddAvgLatencyMs(v)
	})
}

// UpdateAvgLatencyMs sets the "avg_latency_ms" field to the value that was provided on create.
func (u *AgentPerformanceUpsertOne) UpdateAvgLatencyMs() *AgentPerformanceUpsertOne {
	return u.Update(func(s *AgentPerformanceUpsert) {
		s.UpdateAvgLatencyMs()
	})
}

// SetTotalCost sets the "total_cost" field.
func (u *AgentPerformanceUpsertOne) SetTotalCost(v float64) *AgentPerformanceUpsertOne {
	return u.Update(func(s *AgentPerformanceUpsert) {
		s.SetTotalCost(v)
	})
}

// AddTotalCost adds v to the "total_cost" field.
func (u *AgentPerformanceUpsertOne) AddTotalCost(v float64) *AgentPerformanceUpsertOne {
	return u.Update(func(s *AgentPerformanceUpsert) {
		s.AddTotalCost(v)
	})
}

// UpdateTotalCost sets the "total_cost" field to the value that was provided on create.
func (u *AgentPerformanceUpsertOne) UpdateTotalCost() *AgentPerformanceUpsertOne {
	return u.Update(func(s *AgentPerformanceUpsert) {
		s.UpdateTotalCost()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AgentPerformanceUpsertOne) SetUpdatedAt(v time.Time) *AgentPerformanceUpsertOne {
	return u.Update(func(s *AgentPerformanceUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AgentPerformanceUpsertOne) UpdateUpdatedAt() *AgentPerformanceUpsertOne {
	return u.Update(func(s *AgentPerformanceUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *AgentPerformanceUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentPerformanceCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentPerformanceUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AgentPerformanceUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AgentPerformanceUpsertOne.ID is not supported by MySQL driver. Use AgentPerformanceUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AgentPerformanceUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AgentPerformanceCreateBulk is the builder for creating many AgentPerformance entities in bulk.
type AgentPerformanceCreateBulk struct {
	config
	err      error
	builders []*AgentPerformanceCreate
	conflict []sql.ConflictOption
}

// Save creates the AgentPerformance entities in the database.
func (_c *AgentPerformanceCreateBulk) Save(ctx context.Context) ([]*AgentPerformance, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentPerformance, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentPerformanceMutation)
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
func (_c *AgentPerformanceCreateBulk) SaveX(ctx context.Context) []*AgentPerformance {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentPerformanceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentPerformanceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentPerformance.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentPerformanceUpsert) {
//			SetAgentID(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentPerformanceCreateBulk) OnConflict(opts ...sql.ConflictOption) *AgentPerformanceUpsertBulk {
	_c.conflict = opts
	return &AgentPerformanceUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentPerformance.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentPerformanceCreateBulk) OnConflictColumns(columns ...string) *AgentPerformanceUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentPerformanceUpsertBulk{
		create: _c,
	}
}

// AgentPerformanceUpsertBulk is the builder for "upsert"-ing
// a bulk of AgentPerformance nodes.
type AgentPerformanceUpsertBulk struct {
	create *AgentPerformanceCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AgentPerformance.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agentperformance.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentPerformanceUpsertBulk) UpdateNewValues() *AgentPerformanceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(agentperformance.FieldID)
			}
			if _, exists := b.mutation.AgentID(); exists {
				s.SetIgnore(agentperformance.FieldAgentID)
			}
			if _, exists := b.mutation.Day(); exists {
				s.SetIgnore(agentperformance.FieldDay)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentPerformance.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AgentPerformanceUpsertBulk) Ignore() *AgentPerformanceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentPerformanceUpsertBulk) DoNothing() *AgentPerformanceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentPerformanceCreateBulk.OnConflict
// documentation for more info.
func (u *AgentPerformanceUpsertBulk) Update(set func(*AgentPerformanceUpsert)) *AgentPerformanceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentPerformanceUpsert{UpdateSet: update})
	}))
	return u
}

// SetTotalExecutions sets the "total_executions" field.
func (u *AgentPerformanceUpsertBulk) SetTotalExecutions(v int64) *AgentPerformanceUpsertBulk {
	return u.Update(func(s *AgentPerformanceUpsert) {
		s.SetTotalExecutions(v)
	})
}

// AddTotalExecutions adds v to the "total_executions" field.
func (u *AgentPerformanceUpsertBulk) AddTotalExecutions(v int64) *AgentPerformanceUpsertBulk {
	return u.Update(func(s *AgentPerformanceUpsert) {
		s.AddTotalExecutions(v)
	})
}

// UpdateTotalExecutions sets the "total_executions" field to the value that was provided on create.
func (u *AgentPerformanceUpsertBulk) UpdateTotalExecutions() *AgentPerformanceUpsertBulk {
	return u.Update(func(s *AgentPerformanceUpsert) {
		s.UpdateTotalExecutions()
	})
}

// SetSuccessfulExecutions sets the "successful_executions" field.
func (u *AgentPerformanceUpsertBulk) SetSuccessfulExecutions(v int64) *AgentPerformanceUpsertBulk {
	return u.Update(func(s *AgentPerformanceUpsert) {
		s.SetSuccessfulExecutions(v)
	})
}

// AddSuccessfulExecutions adds v to the "successful_executions" field.
func (u *AgentPerformanceUpsertBulk) AddSuccessfulExecutions(v int64) *AgentPerformanceUpsertBulk {
	return u.Update(func(s *AgentPerformanceUpsert) {
		s.AddSuccessfulExecutions(v)
	})
}

// UpdateSuccessfulExecutions sets the "successful_executions" field to the value that was provided on create.
func (u *AgentPerformanceUpsertBulk) UpdateSuccessfulExecutions() *AgentPerformanceUpsertBulk {
	return u.Update(func(s *AgentPerformanceUpsert) {
		s.UpdateSuccessfulExecutions()
	})
}

// SetFailedExecutions sets the "failed_executions" field.
func (u *AgentPerformanceUpsertBulk) SetFailedExecutions(v int64) *AgentPerformanceUpsertBulk {
	return u.Update(func(s *AgentPerformanceUpsert) {
		s.SetFailedExecutions(v)
	})
}

// AddFailedExecutions adds v to the "failed_executions" field.
func (u *AgentPerformanceUpsertBulk) AddFailedExecutions(v int64) *AgentPerformanceUpsertBulk {
	return u.Update(func(s *AgentPerformanceUpsert) {
		s.AddFailedExecutions(v)
	})
}

// UpdateFailedExecutions sets the "failed_executions" field to the value that was provided on create.
func (u *AgentPerformanceUpsertBulk) UpdateFailedExecutions() *AgentPerformanceUpsertBulk {
	return u.Update(func(s *AgentPerformanceUpsert) {
		s.UpdateFailedExecutions()
	})
}

// SetAvgLatencyMs sets the "avg_latency_ms" field.
func (u *AgentPerformanceUpsertBulk) SetAvgLatencyMs(v float64) *AgentPerformanceUpsertBulk {
	return u.Update(func(s *AgentPerformanceUpsert) {
		s.SetAvgLatencyMs(v)
	})
}

// AddAvgLatencyMs adds v to the "avg_latency_ms" field.
func (u *AgentPerformanceUpsertBulk) AddAvgLatencyMs(v float64) *AgentPerformanceUpsertBulk {
	return u.Update(func(s *AgentPerformanceUpsert) {
		s.AddAvgLatencyMs(v)
	})
}

// UpdateAvgLatencyMs sets the "avg_latency_ms" field to the value that was provided on create.
func (u *AgentPerformanceUpsertBulk) UpdateAvgLatencyMs() *AgentPerformanceUpsertBulk {
	return u.Update(func(s *AgentPerformanceUpsert) {
		s.UpdateAvgLatencyMs()
	})
}

// SetTotalCost sets the "total_cost" field.
func (u *AgentPerformanceUpsertBulk) SetTotalCost(v float64) *AgentPerformanceUpsertBulk {
	return u.Update(func(s *AgentPerformanceUpsert) {
		s.SetTotalCost(v)
	})
}

// AddTotalCost adds v to the "total_cost" field.
func (u *AgentPerformanceUpsertBulk) AddTotalCost(v float64) *AgentPerformanceUpsertBulk {
	return u.Update(func(s *AgentPerformanceUpsert) {
		s.AddTotalCost(v)
	})
}

// UpdateTotalCost sets the "total_cost" field to the value that was provided on create.
func (u *AgentPerformanceUpsertBulk) UpdateTotalCost() *AgentPerformanceUpsertBulk {
	return u.Update(func(s *AgentPerformanceUpsert) {
		s.UpdateTotalCost()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AgentPerformanceUpsertBulk) SetUpdatedAt(v time.Time) *AgentPerformanceUpsertBulk {
	return u.Update(func(s *AgentPerformanceUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AgentPerformanceUpsertBulk) UpdateUpdatedAt() *AgentPerformanceUpsertBulk {
	return u.Update(func(s *AgentPerformanceUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *AgentPerformanceUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AgentPerformanceCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentPerformanceCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentPerformanceUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
