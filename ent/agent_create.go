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
	"github.com/maestro-run/maestro/ent/agent"
)

// AgentCreate is the builder for creating a Agent entity.
type AgentCreate struct {
	config
	mutation *AgentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *AgentCreate) SetName(v string) *AgentCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *AgentCreate) SetKind(v agent.Kind) *AgentCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetSystemPrompt sets the "system_prompt" field.
func (_c *AgentCreate) SetSystemPrompt(v string) *AgentCreate {
	_c.mutation.SetSystemPrompt(v)
	return _c
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_c *AgentCreate) SetNillableSystemPrompt(v *string) *AgentCreate {
	if v != nil {
		_c.SetSystemPrompt(*v)
	}
	return _c
}

// SetCapabilities sets the "capabilities" field.
func (_c *AgentCreate) SetCapabilities(v []string) *AgentCreate {
	_c.mutation.SetCapabilities(v)
	return _c
}

// SetDomain sets the "domain" field.
func (_c *AgentCreate) SetDomain(v string) *AgentCreate {
	_c.mutation.SetDomain(v)
	return _c
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_c *AgentCreate) SetNillableDomain(v *string) *AgentCreate {
	if v != nil {
		_c.SetDomain(*v)
	}
	return _c
}

// SetSupervisorID sets the "supervisor_id" field.
func (_c *AgentCreate) SetSupervisorID(v string) *AgentCreate {
	_c.mutation.SetSupervisorID(v)
	return _c
}

// SetNillableSupervisorID sets the "supervisor_id" field if the given value is not nil.
func (_c *AgentCreate) SetNillableSupervisorID(v *string) *AgentCreate {
	if v != nil {
		_c.SetSupervisorID(*v)
	}
	return _c
}

// SetConfig sets the "config" field.
func (_c *AgentCreate) SetConfig(v map[string]interface{}) *AgentCreate {
	_c.mutation.SetConfig(v)
	return _c
}

// SetAllowDelegation sets the "allow_delegation" field.
func (_c *AgentCreate) SetAllowDelegation(v bool) *AgentCreate {
	_c.mutation.SetAllowDelegation(v)
	return _c
}

// SetNillableAllowDelegation sets the "allow_delegation" field if the given value is not nil.
func (_c *AgentCreate) SetNillableAllowDelegation(v *bool) *AgentCreate {
	if v != nil {
		_c.SetAllowDelegation(*v)
	}
	return _c
}

// SetMaxIterations sets the "max_iterations" field.
func (_c *AgentCreate) SetMaxIterations(v int) *AgentCreate {
	_c.mutation.SetMaxIterations(v)
	return _c
}

// SetNillableMaxIterations sets the "max_iterations" field if the given value is not nil.
func (_c *AgentCreate) SetNillableMaxIterations(v *int) *AgentCreate {
	if v != nil {
		_c.SetMaxIterations(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *AgentCreate) SetStatus(v agent.Status) *AgentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AgentCreate) SetNillableStatus(v *agent.Status) *AgentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentCreate) SetCreatedAt(v time.Time) *AgentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentCreate) SetNillableCreatedAt(v *time.Time) *AgentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_c *AgentCreate) SetLastActivityAt(v time.Time) *AgentCreate {
	_c.mutation.SetLastActivityAt(v)
	return _c
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_c *AgentCreate) SetNillableLastActivityAt(v *time.Time) *AgentCreate {
	if v != nil {
		_c.SetLastActivityAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentCreate) SetID(v string) *AgentCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AgentMutation object of the builder.
func (_c *AgentCreate) Mutation() *AgentMutation {
	return _c.mutation
}

// Save creates the Agent in the database.
func (_c *AgentCreate) Save(ctx context.Context) (*Agent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentCreate) SaveX(ctx context.Context) *Agent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentCreate) defaults() {
	if _, ok := _c.mutation.Capabilities(); !ok {
		v := agent.DefaultCapabilities
		_c.mutation.SetCapabilities(v)
	}
	if _, ok := _c.mutation.AllowDelegation(); !ok {
		v := agent.DefaultAllowDelegation
		_c.mutation.SetAllowDelegation(v)
	}
	if _, ok := _c.mutation.MaxIterations(); !ok {
		v := agent.DefaultMaxIterations
		_c.mutation.SetMaxIterations(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := agent.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.LastActivityAt(); !ok {
		v := agent.DefaultLastActivityAt()
		_c.mutation.SetLastActivityAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Agent.name"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "Agent.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := agent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Agent.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Capabilities(); !ok {
		return &ValidationError{Name: "capabilities", err: errors.New(`ent: missing required field "Agent.capabilities"`)}
	}
	if _, ok := _c.mutation.AllowDelegation(); !ok {
		return &ValidationError{Name: "allow_delegation", err: errors.New(`ent: missing required field "Agent.allow_delegation"`)}
	}
	if _, ok := _c.mutation.MaxIterations(); !ok {
		return &ValidationError{Name: "max_iterations", err: errors.New(`ent: missing required field "Agent.max_iterations"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Agent.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := agent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Agent.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Agent.created_at"`)}
	}
	if _, ok := _c.mutation.LastActivityAt(); !ok {
		return &ValidationError{Name: "last_activity_at", err: errors.New(`ent: missing required field "Agent.last_activity_at"`)}
	}
	return nil
}

func (_c *AgentCreate) sqlSave(ctx context.Context) (*Agent, error) {
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
			return nil, fmt.Errorf("unexpected Agent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentCreate) createSpec() (*Agent, *sqlgraph.CreateSpec) {
	var (
		_node = &Agent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agent.Table, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(agent.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(agent.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.SystemPrompt(); ok {
		_spec.SetField(agent.FieldSystemPrompt, field.TypeString, value)
		_node.SystemPrompt = value
	}
	if value, ok := _c.mutation.Capabilities(); ok {
		_spec.SetField(agent.FieldCapabilities, field.TypeJSON, value)
		_node.Capabilities = value
	}
	if value, ok := _c.mutation.Domain(); ok {
		_spec.SetField(agent.FieldDomain, field.TypeString, value)
		_node.Domain = value
	}
	if value, ok := _c.mutation.SupervisorID(); ok {
		_spec.SetField(agent.FieldSupervisorID, field.TypeString, value)
		_node.SupervisorID = &value
	}
	if value, ok := _c.mutation.Config(); ok {
		_spec.SetField(agent.FieldConfig, field.TypeJSON, value)
		_node.Config = value
	}
	if value, ok := _c.mutation.AllowDelegation(); ok {
		_spec.SetField(agent.FieldAllowDelegation, field.TypeBool, value)
		_node.AllowDelegation = value
	}
	if value, ok := _c.mutation.MaxIterations(); ok {
		_spec.SetField(agent.FieldMaxIterations, field.TypeInt, value)
		_node.MaxIterations = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(agent.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.LastActivityAt(); ok {
		_spec.SetField(agent.FieldLastActivityAt, field.TypeTime, value)
		_node.LastActivityAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Agent.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentCreate) OnConflict(opts ...sql.ConflictOption) *AgentUpsertOne {
	_c.conflict = opts
	return &AgentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Agent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentCreate) OnConflictColumns(columns ...string) *AgentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentUpsertOne{
		create: _c,
	}
}

type (
	// AgentUpsertOne is the builder for "upsert"-ing
	//  one Agent node.
	AgentUpsertOne struct {
		create *AgentCreate
	}

	// AgentUpsert is the "OnConflict" setter.
	AgentUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *AgentUpsert) SetName(v string) *AgentUpsert {
	u.Set(agent.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *AgentUpsert) UpdateName() *AgentUpsert {
	u.SetExcluded(agent.FieldName)
	return u
}

// SetSystemPrompt sets the "system_prompt" field.
func (u *AgentUpsert) SetSystemPrompt(v string) *AgentUpsert {
	u.Set(agent.FieldSystemPrompt, v)
	return u
}

// UpdateSystemPrompt sets the "system_prompt" field to the value that was provided on create.
func (u *AgentUpsert) UpdateSystemPrompt() *AgentUpsert {
	u.SetExcluded(agent.FieldSystemPrompt)
	return u
}

// ClearSystemPrompt clears the value of the "system_prompt" field.
func (u *AgentUpsert) ClearSystemPrompt() *AgentUpsert {
	u.SetNull(agent.FieldSystemPrompt)
	return u
}

// SetCapabilities sets the "capabilities" field.
func (u *AgentUpsert) SetCapabilities(v []string) *AgentUpsert {
	u.Set(agent.FieldCapabilities, v)
	return u
}

// UpdateCapabilities sets the "capabilities" field to the value that was provided on create.
func (u *AgentUpsert) UpdateCapabilities() *AgentUpsert {
	u.SetExcluded(agent.FieldCapabilities)
	return u
}

// SetDomain sets the "domain" field.
func (u *AgentUpsert) SetDomain(v string) *AgentUpsert {
	u.Set(agent.FieldDomain, v)
	return u
}

// UpdateDomain sets the "domain" field to the value that was provided on create.
func (u *AgentUpsert) UpdateDomain() *AgentUpsert {
	u.SetExcluded(agent.FieldDomain)
	return u
}

// ClearDomain clears the value of the "domain" field.
func (u *AgentUpsert) ClearDomain() *AgentUpsert {
	u.SetNull(agent.FieldDomain)
	return u
}

// SetSupervisorID sets the "supervisor_id" field.
func (u *AgentUpsert) SetSupervisorID(v string) *AgentUpsert {
	u.Set(agent.FieldSupervisorID, v)
	return u
}

// UpdateSupervisorID sets the "supervisor_id" field to the value that was provided on create.
func (u *AgentUpsert) UpdateSupervisorID() *AgentUpsert {
	u.SetExcluded(agent.FieldSupervisorID)
	return u
}

// ClearSupervisorID clears the value of the "supervisor_id" field.
func (u *AgentUpsert) ClearSupervisorID() *AgentUpsert {
	u.SetNull(agent.FieldSupervisorID)
	return u
}

// SetConfig sets the "config" field.
func (u *AgentUpsert) SetConfig(v map[string]interface{}) *AgentUpsert {
	u.Set(agent.FieldConfig, v)
	return u
}

// UpdateConfig sets the "config" field to the value that was provided on create.
func (u *AgentUpsert) UpdateConfig() *AgentUpsert {
	u.SetExcluded(agent.FieldConfig)
	return u
}

// ClearConfig clears the value of the "config" field.
func (u *AgentUpsert) ClearConfig() *AgentUpsert {
	u.SetNull(agent.FieldConfig)
	return u
}

// SetAllowDelegation sets the "allow_delegation" field.
func (u *AgentUpsert) SetAllowDelegation(v bool) *AgentUpsert {
	u.Set(agent.FieldAllowDelegation, v)
	return u
}

// UpdateAllowDelegation sets the "allow_delegation" field to the value that was provided on create.
func (u *AgentUpsert) UpdateAllowDelegation() *AgentUpsert {
	u.SetExcluded(agent.FieldAllowDelegation)
	return u
}

// SetMaxIterations sets the "max_iterations" field.
func (u *AgentUpsert) SetMaxIterations(v int) *AgentUpsert {
	u.Set(agent.FieldMaxIterations, v)
	return u
}

// UpdateMaxIterations sets the "max_iterations" field to the value that was provided on create.
func (u *AgentUpsert) UpdateMaxIterations() *AgentUpsert {
	u.SetExcluded(agent.FieldMaxIterations)
	return u
}

// AddMaxIterations adds v to the "max_iterations" field.
func (u *AgentUpsert) AddMaxIterations(v int) *AgentUpsert {
	u.Add(agent.FieldMaxIterations, v)
	return u
}

// SetStatus sets the "status" field.
func (u *AgentUpsert) SetStatus(v agent.Status) *AgentUpsert {
	u.Set(agent.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AgentUpsert) UpdateStatus() *AgentUpsert {
	u.SetExcluded(agent.FieldStatus)
	return u
}

// SetLastActivityAt sets the "last_activity_at" field.
func (u *AgentUpsert) SetLastActivityAt(v time.Time) *AgentUpsert {
	u.Set(agent.FieldLastActivityAt, v)
	return u
}

// UpdateLastActivityAt sets the "last_activity_at" field to the value that was provided on create.
func (u *AgentUpsert) UpdateLastActivityAt() *AgentUpsert {
	u.SetExcluded(agent.FieldLastActivityAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Agent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentUpsertOne) UpdateNewValues() *AgentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(agent.FieldID)
		}
		if _, exists := u.create.mutation.Kind(); exists {
			s.SetIgnore(agent.FieldKind)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(agent.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Agent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AgentUpsertOne) Ignore() *AgentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentUpsertOne) DoNothing() *AgentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentCreate.OnConflict
// documentation for more info.
func (u *AgentUpsertOne) Update(set func(*AgentUpsert)) *AgentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *AgentUpsertOne) SetName(v string) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateName() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateName()
	})
}

// SetSystemPrompt sets the "system_prompt" field.
func (u *AgentUpsertOne) SetSystemPrompt(v string) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetSystemPrompt(v)
	})
}

// UpdateSystemPrompt sets the "system_prompt" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateSystemPrompt() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateSystemPrompt()
	})
}

// ClearSystemPrompt clears the value of the "system_prompt" field.
func (u *AgentUpsertOne) ClearSystemPrompt() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.ClearSystemPrompt()
	})
}

// SetCapabilities sets the "capabilities" field.
func (u *AgentUpsertOne) SetCapabilities(v []string) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetCapabilities(v)
	})
}

// UpdateCapabilities sets the "capabilities" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateCapabilities() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateCapabilities()
	})
}

// SetDomain sets the "domain" field.
func (u *AgentUpsertOne) SetDomain(v string) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetDomain(v)
	})
}

// UpdateDomain sets the "domain" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateDomain() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateDomain()
	})
}

// ClearDomain clears the value of the "domain" field.
func (u *AgentUpsertOne) ClearDomain() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.ClearDomain()
	})
}

// SetSupervisorID sets the "supervisor_id" field.
func (u *AgentUpsertOne) SetSupervisorID(v string) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetSupervisorID(v)
	})
}

// UpdateSupervisorID sets the "supervisor_id" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateSupervisorID() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateSupervisorID()
	})
}

// ClearSupervisorID clears the value of the "supervisor_id" field.
func (u *AgentUpsertOne) ClearSupervisorID() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.ClearSupervisorID()
	})
}

// SetConfig sets the "config" field.
func (u *AgentUpsertOne) SetConfig(v map[string]interface{}) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetConfig(v)
	})
}

// UpdateConfig sets the "config" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateConfig() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateConfig()
	})
}

// ClearConfig clears the value of the "config" field.
func (u *AgentUpsertOne) ClearConfig() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.ClearConfig()
	})
}

// SetAllowDelegation sets the "allow_delegation" field.
func (u *AgentUpsertOne) SetAllowDelegation(v bool) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetAllowDelegation(v)
	})
}

// UpdateAllowDelegation sets the "allow_delegation" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateAllowDelegation() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateAllowDelegation()
	})
}

// SetMaxIterations sets the "max_iterations" field.
func (u *AgentUpsertOne) SetMaxIterations(v int) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetMaxIterations(v)
	})
}

// AddMaxIterations adds v to the "max_iterations" field.
func (u *AgentUpsertOne) AddMaxIterations(v int) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.AddMaxIterations(v)
	})
}

// UpdateMaxIterations sets the "max_iterations" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateMaxIterations() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateMaxIterations()
	})
}

// SetStatus sets the "status" field.
func (u *AgentUpsertOne) SetStatus(v agent.Status) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateStatus() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateStatus()
	})
}

// SetLastActivityAt sets the "last_activity_at" field.
func (u *AgentUpsertOne) SetLastActivityAt(v time.Time) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetLastActivityAt(v)
	})
}

// UpdateLastActivityAt sets the "last_activity_at" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateLastActivityAt() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateLastActivityAt()
	})
}

// Exec executes the query.
func (u *AgentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AgentUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AgentUpsertOne.ID is not supported by MySQL driver. Use AgentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AgentUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AgentCreateBulk is the builder for creating many Agent entities in bulk.
type AgentCreateBulk struct {
	config
	err      error
	builders []*AgentCreate
	conflict []sql.ConflictOption
}

// Save creates the Agent entities in the database.
func (_c *AgentCreateBulk) Save(ctx context.Context) ([]*Agent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Agent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentMutation)
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
func (_c *AgentCreateBulk) SaveX(ctx context.Context) []*Agent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Agent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentCreateBulk) OnConflict(opts ...sql.ConflictOption) *AgentUpsertBulk {
	_c.conflict = opts
	return &AgentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Agent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentCreateBulk) OnConflictColumns(columns ...string) *AgentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentUpsertBulk{
		create: _c,
	}
}

// AgentUpsertBulk is the builder for "upsert"-ing
// a bulk of Agent nodes.
type AgentUpsertBulk struct {
	create *AgentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Agent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentUpsertBulk) UpdateNewValues() *AgentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(agent.FieldID)
			}
			if _, exists := b.mutation.Kind(); exists {
				s.SetIgnore(agent.FieldKind)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(agent.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Agent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AgentUpsertBulk) Ignore() *AgentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentUpsertBulk) DoNothing() *AgentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentCreateBulk.OnConflict
// documentation for more info.
func (u *AgentUpsertBulk) Update(set func(*AgentUpsert)) *AgentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *AgentUpsertBulk) SetName(v string) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateName() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateName()
	})
}

// SetSystemPrompt sets the "system_prompt" field.
func (u *AgentUpsertBulk) SetSystemPrompt(v string) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetSystemPrompt(v)
	})
}

// UpdateSystemPrompt sets the "system_prompt" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateSystemPrompt() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateSystemPrompt()
	})
}

// ClearSystemPrompt clears the value of the "system_prompt" field.
func (u *AgentUpsertBulk) ClearSystemPrompt() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.ClearSystemPrompt()
	})
}

// SetCapabilities sets the "capabilities" field.
func (u *AgentUpsertBulk) SetCapabilities(v []string) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetCapabilities(v)
	})
}

// UpdateCapabilities sets the "capabilities" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateCapabilities() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateCapabilities()
	})
}

// SetDomain sets the "domain" field.
func (u *AgentUpsertBulk) SetDomain(v string) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetDomain(v)
	})
}

// UpdateDomain sets the "domain" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateDomain() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateDomain()
	})
}

// ClearDomain clears the value of the "domain" field.
func (u *AgentUpsertBulk) ClearDomain() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.ClearDomain()
	})
}

// SetSupervisorID sets the "supervisor_id" field.
func (u *AgentUpsertBulk) SetSupervisorID(v string) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetSupervisorID(v)
	})
}

// UpdateSupervisorID sets the "supervisor_id" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateSupervisorID() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateSupervisorID()
	})
}

// ClearSupervisorID clears the value of the "supervisor_id" field.
func (u *AgentUpsertBulk) ClearSupervisorID() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.ClearSupervisorID()
	})
}

// SetConfig sets the "config" field.
func (u *AgentUpsertBulk) SetConfig(v map[string]interface{}) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetConfig(v)
	})
}

// UpdateConfig sets the "config" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateConfig() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateConfig()
	})
}

// ClearConfig clears the value of the "config" field.
func (u *AgentUpsertBulk) ClearConfig() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.ClearConfig()
	})
}

// SetAllowDelegation sets the "allow_delegation" field.
func (u *AgentUpsertBulk) SetAllowDelegation(v bool) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetAllowDelegation(v)
	})
}

// UpdateAllowDelegation sets the "allow_delegation" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateAllowDelegation() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateAllowDelegation()
	})
}

// SetMaxIterations sets the "max_iterations" field.
func (u *AgentUpsertBulk) SetMaxIterations(v int) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetMaxIterations(v)
	})
}

// AddMaxIterations adds v to the "max_iterations" field.
func (u *AgentUpsertBulk) AddMaxIterations(v int) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.AddMaxIterations(v)
	})
}

// UpdateMaxIterations sets the "max_iterations" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateMaxIterations() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateMaxIterations()
	})
}

// SetStatus sets the "status" field.
func (u *AgentUpsertBulk) SetStatus(v agent.Status) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateStatus() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateStatus()
	})
}

// SetLastActivityAt sets the "last_activity_at" field.
func (u *AgentUpsertBulk) SetLastActivityAt(v time.Time) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetLastActivityAt(v)
	})
}

// UpdateLastActivityAt sets the "last_activity_at" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateLastActivityAt() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateLastActivityAt()
	})
}

// Exec executes the query.
func (u *AgentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AgentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
