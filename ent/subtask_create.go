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
	"github.com/maestro-run/maestro/ent/subtask"
	"github.com/maestro-run/maestro/ent/task"
)

// SubtaskCreate is the builder for creating a Subtask entity.
type SubtaskCreate struct {
	config
	mutation *SubtaskMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTaskID sets the "task_id" field.
func (_c *SubtaskCreate) SetTaskID(v string) *SubtaskCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetLocalID sets the "local_id" field.
func (_c *SubtaskCreate) SetLocalID(v string) *SubtaskCreate {
	_c.mutation.SetLocalID(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *SubtaskCreate) SetDescription(v string) *SubtaskCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetRequiredCapabilities sets the "required_capabilities" field.
func (_c *SubtaskCreate) SetRequiredCapabilities(v []string) *SubtaskCreate {
	_c.mutation.SetRequiredCapabilities(v)
	return _c
}

// SetEstimatedComplexity sets the "estimated_complexity" field.
func (_c *SubtaskCreate) SetEstimatedComplexity(v subtask.EstimatedComplexity) *SubtaskCreate {
	_c.mutation.SetEstimatedComplexity(v)
	return _c
}

// SetNillableEstimatedComplexity sets the "estimated_complexity" field if the given value is not nil.
func (_c *SubtaskCreate) SetNillableEstimatedComplexity(v *subtask.EstimatedComplexity) *SubtaskCreate {
	if v != nil {
		_c.SetEstimatedComplexity(*v)
	}
	return _c
}

// SetDependsOn sets the "depends_on" field.
func (_c *SubtaskCreate) SetDependsOn(v []string) *SubtaskCreate {
	_c.mutation.SetDependsOn(v)
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *SubtaskCreate) SetAgentID(v string) *SubtaskCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_c *SubtaskCreate) SetNillableAgentID(v *string) *SubtaskCreate {
	if v != nil {
		_c.SetAgentID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *SubtaskCreate) SetStatus(v subtask.Status) *SubtaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SubtaskCreate) SetNillableStatus(v *subtask.Status) *SubtaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetResult sets the "result" field.
func (_c *SubtaskCreate) SetResult(v map[string]interface{}) *SubtaskCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *SubtaskCreate) SetErrorMessage(v string) *SubtaskCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *SubtaskCreate) SetNillableErrorMessage(v *string) *SubtaskCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *SubtaskCreate) SetStartedAt(v time.Time) *SubtaskCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *SubtaskCreate) SetNillableStartedAt(v *time.Time) *SubtaskCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *SubtaskCreate) SetCompletedAt(v time.Time) *SubtaskCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *SubtaskCreate) SetNillableCompletedAt(v *time.Time) *SubtaskCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetExecutionTimeMs sets the "execution_time_ms" field.
func (_c *SubtaskCreate) SetExecutionTimeMs(v int64) *SubtaskCreate {
	_c.mutation.SetExecutionTimeMs(v)
	return _c
}

// SetNillableExecutionTimeMs sets the "execution_time_ms" field if the given value is not nil.
func (_c *SubtaskCreate) SetNillableExecutionTimeMs(v *int64) *SubtaskCreate {
	if v != nil {
		_c.SetExecutionTimeMs(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *SubtaskCreate) SetRetryCount(v int) *SubtaskCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *SubtaskCreate) SetNillableRetryCount(v *int) *SubtaskCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SubtaskCreate) SetCreatedAt(v time.Time) *SubtaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SubtaskCreate) SetNillableCreatedAt(v *time.Time) *SubtaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SubtaskCreate) SetID(v string) *SubtaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTask sets the "task" edge to the Task entity.
func (_c *SubtaskCreate) SetTask(v *Task) *SubtaskCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the SubtaskMutation object of the builder.
func (_c *SubtaskCreate) Mutation() *SubtaskMutation {
	return _c.mutation
}

// Save creates the Subtask in the database.
func (_c *SubtaskCreate) Save(ctx context.Context) (*Subtask, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SubtaskCreate) SaveX(ctx context.Context) *Subtask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubtaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubtaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SubtaskCreate) defaults() {
	if _, ok := _c.mutation.RequiredCapabilities(); !ok {
		v := subtask.DefaultRequiredCapabilities
		_c.mutation.SetRequiredCapabilities(v)
	}
	if _, ok := _c.mutation.EstimatedComplexity(); !ok {
		v := subtask.DefaultEstimatedComplexity
		_c.mutation.SetEstimatedComplexity(v)
	}
	if _, ok := _c.mutation.DependsOn(); !ok {
		v := subtask.DefaultDependsOn
		_c.mutation.SetDependsOn(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := subtask.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := subtask.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := subtask.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SubtaskCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "Subtask.task_id"`)}
	}
	if _, ok := _c.mutation.LocalID(); !ok {
		return &ValidationError{Name: "local_id", err: errors.New(`ent: missing required field "Subtask.local_id"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Subtask.description"`)}
	}
	if _, ok := _c.mutation.RequiredCapabilities(); !ok {
		return &ValidationError{Name: "required_capabilities", err: errors.New(`ent: missing required field "Subtask.required_capabilities"`)}
	}
	if _, ok := _c.mutation.EstimatedComplexity(); !ok {
		return &ValidationError{Name: "estimated_complexity", err: errors.New(`ent: missing required field "Subtask.estimated_complexity"`)}
	}
	if v, ok := _c.mutation.EstimatedComplexity(); ok {
		if err := subtask.EstimatedComplexityValidator(v); err != nil {
			return &ValidationError{Name: "estimated_complexity", err: fmt.Errorf(`ent: validator failed for field "Subtask.estimated_complexity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DependsOn(); !ok {
		return &ValidationError{Name: "depends_on", err: errors.New(`ent: missing required field "Subtask.depends_on"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Subtask.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := subtask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Subtask.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "Subtask.retry_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Subtask.created_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "Subtask.task"`)}
	}
	return nil
}

func (_c *SubtaskCreate) sqlSave(ctx context.Context) (*Subtask, error) {
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
			return nil, fmt.Errorf("unexpected Subtask.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SubtaskCreate) createSpec() (*Subtask, *sqlgraph.CreateSpec) {
	var (
		_node = &Subtask{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(subtask.Table, sqlgraph.NewFieldSpec(subtask.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.LocalID(); ok {
		_spec.SetField(subtask.FieldLocalID, field.TypeString, value)
		_node.LocalID = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(subtask.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.RequiredCapabilities(); ok {
		_spec.SetField(subtask.FieldRequiredCapabilities, field.TypeJSON, value)
		_node.RequiredCapabilities = value
	}
	if value, ok := _c.mutation.EstimatedComplexity(); ok {
		_spec.SetField(subtask.FieldEstimatedComplexity, field.TypeEnum, value)
		_node.EstimatedComplexity = value
	}
	if value, ok := _c.mutation.DependsOn(); ok {
		_spec.SetField(subtask.FieldDependsOn, field.TypeJSON, value)
		_node.DependsOn = value
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(subtask.FieldAgentID, field.TypeString, value)
		_node.AgentID = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(subtask.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(subtask.FieldResult, field.TypeJSON, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(subtask.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(subtask.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(subtask.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.ExecutionTimeMs(); ok {
		_spec.SetField(subtask.FieldExecutionTimeMs, field.TypeInt64, value)
		_node.ExecutionTimeMs = &value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(subtask.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(subtask.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   subtask.TaskTable,
			Columns: []string{subtask.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TaskID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Subtask.Create().
//		SetTaskID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SubtaskUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *SubtaskCreate) OnConflict(opts ...sql.ConflictOption) *SubtaskUpsertOne {
	_c.conflict = opts
	return &SubtaskUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Subtask.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SubtaskCreate) OnConflictColumns(columns ...string) *SubtaskUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SubtaskUpsertOne{
		create: _c,
	}
}

type (
	// SubtaskUpsertOne is the builder for "upsert"-ing
	//  one Subtask node.
	SubtaskUpsertOne struct {
		create *SubtaskCreate
	}

	// SubtaskUpsert is the "OnConflict" setter.
	SubtaskUpsert struct {
		*sql.UpdateSet
	}
)

// SetDescription sets the "description" field.
func (u *SubtaskUpsert) SetDescription(v string) *SubtaskUpsert {
	u.Set(subtask.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *SubtaskUpsert) UpdateDescription() *SubtaskUpsert {
	u.SetExcluded(subtask.FieldDescription)
	return u
}

// SetRequiredCapabilities sets the "required_capabilities" field.
func (u *SubtaskUpsert) SetRequiredCapabilities(v []string) *SubtaskUpsert {
	u.Set(subtask.FieldRequiredCapabilities, v)
	return u
}

// UpdateRequiredCapabilities sets the "required_capabilities" field to the value that was provided on create.
func (u *SubtaskUpsert) UpdateRequiredCapabilities() *SubtaskUpsert {
	u.SetExcluded(subtask.FieldRequiredCapabilities)
	return u
}

// SetEstimatedComplexity sets the "estimated_complexity" field.
func (u *SubtaskUpsert) SetEstimatedComplexity(v subtask.EstimatedComplexity) *SubtaskUpsert {
	u.Set(subtask.FieldEstimatedComplexity, v)
	return u
}

// UpdateEstimatedComplexity sets the "estimated_complexity" field to the value that was provided on create.
func (u *SubtaskUpsert) UpdateEstimatedComplexity() *SubtaskUpsert {
	u.SetExcluded(subtask.FieldEstimatedComplexity)
	return u
}

// SetDependsOn sets the "depends_on" field.
func (u *SubtaskUpsert) SetDependsOn(v []string) *SubtaskUpsert {
	u.Set(subtask.FieldDependsOn, v)
	return u
}

// UpdateDependsOn sets the "depends_on" field to the value that was provided on create.
func (u *SubtaskUpsert) UpdateDependsOn() *SubtaskUpsert {
	u.SetExcluded(subtask.FieldDependsOn)
	return u
}

// SetAgentID sets the "agent_id" field.
func (u *SubtaskUpsert) SetAgentID(v string) *SubtaskUpsert {
	u.Set(subtask.FieldAgentID, v)
	return u
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *SubtaskUpsert) UpdateAgentID() *SubtaskUpsert {
	u.SetExcluded(subtask.FieldAgentID)
	return u
}

// ClearAgentID clears the value of the "agent_id" field.
func (u *SubtaskUpsert) ClearAgentID() *SubtaskUpsert {
	u.SetNull(subtask.FieldAgentID)
	return u
}

// SetStatus sets the "status" field.
func (u *SubtaskUpsert) SetStatus(v subtask.Status) *SubtaskUpsert {
	u.Set(subtask.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SubtaskUpsert) UpdateStatus() *SubtaskUpsert {
	u.SetExcluded(subtask.FieldStatus)
	return u
}

// SetResult sets the "result" field.
func (u *SubtaskUpsert) SetResult(v map[string]interface{}) *SubtaskUpsert {
	u.Set(subtask.FieldResult, v)
	return u
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *SubtaskUpsert) UpdateResult() *SubtaskUpsert {
	u.SetExcluded(subtask.FieldResult)
	return u
}

// ClearResult clears the value of the "result" field.
func (u *SubtaskUpsert) ClearResult() *SubtaskUpsert {
	u.SetNull(subtask.FieldResult)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *SubtaskUpsert) SetErrorMessage(v string) *SubtaskUpsert {
	u.Set(subtask.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *SubtaskUpsert) UpdateErrorMessage() *SubtaskUpsert {
	u.SetExcluded(subtask.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *SubtaskUpsert) ClearErrorMessage() *SubtaskUpsert {
	u.SetNull(subtask.FieldErrorMessage)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *SubtaskUpsert) SetStartedAt(v time.Time) *SubtaskUpsert {
	u.Set(subtask.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *SubtaskUpsert) UpdateStartedAt() *SubtaskUpsert {
	u.SetExcluded(subtask.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *SubtaskUpsert) ClearStartedAt() *SubtaskUpsert {
	u.SetNull(subtask.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *SubtaskUpsert) SetCompletedAt(v time.Time) *SubtaskUpsert {
	u.Set(subtask.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *SubtaskUpsert) UpdateCompletedAt() *SubtaskUpsert {
	u.SetExcluded(subtask.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *SubtaskUpsert) ClearCompletedAt() *SubtaskUpsert {
	u.SetNull(subtask.FieldCompletedAt)
	return u
}

// SetExecutionTimeMs sets the "execution_time_ms" field.
func (u *SubtaskUpsert) SetExecutionTimeMs(v int64) *SubtaskUpsert {
	u.Set(subtask.FieldExecutionTimeMs, v)
	return u
}

// UpdateExecutionTimeMs sets the "execution_time_ms" field to the value that was provided on create.
func (u *SubtaskUpsert) UpdateExecutionTimeMs() *SubtaskUpsert {
	u.SetExcluded(subtask.FieldExecutionTimeMs)
	return u
}

// AddExecutionTimeMs adds v to the "execution_time_ms" field.
func (u *SubtaskUpsert) AddExecutionTimeMs(v int64) *SubtaskUpsert {
	u.Add(subtask.FieldExecutionTimeMs, v)
	return u
}

// ClearExecutionTimeMs clears the value of the "execution_time_ms" field.
func (u *SubtaskUpsert) ClearExecutionTimeMs() *SubtaskUpsert {
	u.SetNull(subtask.FieldExecutionTimeMs)
	return u
}

// SetRetryCount sets the "retry_count" field.
func (u *SubtaskUpsert) SetRetryCount(v int) *SubtaskUpsert {
	u.Set(subtask.FieldRetryCount, v)
	return u
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *SubtaskUpsert) UpdateRetryCount() *SubtaskUpsert {
	u.SetExcluded(subtask.FieldRetryCount)
	return u
}

// AddRetryCount adds v to the "retry_count" field.
func (u *SubtaskUpsert) AddRetryCount(v int) *SubtaskUpsert {
	u.Add(subtask.FieldRetryCount, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Subtask.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(subtask.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SubtaskUpsertOne) UpdateNewValues() *SubtaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(subtask.FieldID)
		}
		if _, exists := u.create.mutation.TaskID(); exists {
			s.SetIgnore(subtask.FieldTaskID)
		}
		if _, exists := u.create.mutation.LocalID(); exists {
			s.SetIgnore(subtask.FieldLocalID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(subtask.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Subtask.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SubtaskUpsertOne) Ignore() *SubtaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SubtaskUpsertOne) DoNothing() *SubtaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SubtaskCreate.OnConflict
// documentation for more info.
func (u *SubtaskUpsertOne) Update(set func(*SubtaskUpsert)) *SubtaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SubtaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetDescription sets the "description" field.
func (u *SubtaskUpsertOne) SetDescription(v string) *SubtaskUpsertOne {
	return u.Update(func(s *SubtaskUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *SubtaskUpsertOne) UpdateDescription() *SubtaskUpsertOne {
	return u.Update(func(s *SubtaskUpsert) {
		s.UpdateDescription()
	})
}

// SetRequiredCapabilities sets the "required_capabilities" field.
func (u *SubtaskUpsertOne) SetRequiredCapabilities(v []string) *SubtaskUpsertOne {
	return u.Update(func(s *SubtaskUpsert) {
		s.SetRequiredCapabilities(v)
	})
}

// UpdateRequiredCapabilities sets the "required_capabilities" field to the value that was provided on create.
func (u *SubtaskUpsertOne) UpdateRequiredCapabilities() *SubtaskUpsertOne {
	return u.Update(func(s *SubtaskUpsert) {
		s.UpdateRequiredCapabilities()
	})
}

// SetEstimatedComplexity sets the "estimated_complexity" field.
func (u *SubtaskUpsertOne) SetEstimatedComplexity(v subtask.EstimatedComplexity) *SubtaskUpsertOne {
	return u.Update(func(s *SubtaskUpsert) {
		s.SetEstimatedComplexity(v)
	})
}

// UpdateEstimatedComplexity sets the "estimated_complexity" field to the value that was provided on create.
func (u *SubtaskUpsertOne) UpdateEstimatedComplexity() *SubtaskUpsertOne {
	return u.Update(func(s *SubtaskUpsert) {
		s.UpdateEstimatedComplexity()
	})
}

// SetDependsOn sets the "depends_on" field.
func (u *SubtaskUpsertOne) SetDependsOn(v []string) *SubtaskUpsertOne {
	return u.Update(func(s *SubtaskUpsert) {
		s.SetDependsOn(v)
	})
}

// UpdateDependsOn sets the "depends_on" field to the value that was provided on create.
func (u *SubtaskUpsertOne) UpdateDependsOn() *SubtaskUpsertOne {
	return u.Update(func(s *SubtaskUpsert) {
		s.UpdateDependsOn()
	})
}

// SetAgentID sets the "agent_id" field.
func (u *SubtaskUpsertOne) SetAgentID(v string) *SubtaskUpsertOne {
	return u.Update(func(s *SubtaskUpsert) {
		s.SetAgentID(v)
	})
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *SubtaskUpsertOne) UpdateAgentID() *SubtaskUpsertOne {
	return u.Update(func(s *SubtaskUpsert) {
		s.UpdateAgentID()
	})
}

// ClearAgentID clears the value of the "agent_id" field.
func (u *SubtaskUpsertOne) ClearAgentID() *SubtaskUpsertOne {
	return u.Update(func(s *SubtaskUpsert) {
		s.ClearAgentID()
	})
}

// SetStatus sets the "status" field.
func (u *SubtaskUpsertOne) SetStatus(v subtask.Status) *SubtaskUpsertOne {
	return u.Update(func(s *SubtaskUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SubtaskUpsertOne) UpdateStatus() *SubtaskUpsertOne {
	return u.Update(func(s *SubtaskUpsert) {
		s.UpdateStatus()
	})
}

// SetResult sets the "result" field.
func (u *SubtaskUpsertOne) SetResult(v map[string]interface{}) *SubtaskUpsertOne {
	return u.Update(func(s *SubtaskUpsert) {
		s.SetResult(v)
	})
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *SubtaskUpsertOne) UpdateResult() *SubtaskUpsertOne {
	return u.Update(func(s *SubtaskUpsert) {
		s.UpdateResult()
	})
}

// ClearResult clears the value of the "result" field.
func (u *SubtaskUpsertOne) ClearResult() *SubtaskUpsertOne {
	return u.Update(func(s *SubtaskUpsert) {
		s.ClearResult()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *SubtaskUpsertOne) SetErrorMessage(v string) *SubtaskUpsertOne {
	return u.Update(func(s *SubtaskUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *SubtaskUpsertOne) UpdateErrorMessage() *SubtaskUpsertOne {
	return u.Update(func(s *SubtaskUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *SubtaskUpsertOne) ClearErrorMessage() *SubtaskUpsertOne {
	return u.Update(func(s *SubtaskUpsert) {
		s.ClearErrorMessage()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *SubtaskUpsertOne) SetStartedAt(v time.Time) *SubtaskUpsertOne {
	return u.Update(func(s *SubtaskUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *SubtaskUpsertOne) UpdateStartedAt() *SubtaskUpsertOne {
	return u.Update(func(s *SubtaskUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *SubtaskUpsertOne) ClearStartedAt() *SubtaskUpsertOne {
	return u.Update(func(s *SubtaskUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *SubtaskUpsertOne) SetCompletedAt(v time.Time) *SubtaskUpsertOne {
	return u.Update(func(s *SubtaskUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *SubtaskUpsertOne) UpdateCompletedAt() *SubtaskUpsertOne {
	return u.Update(func(s *SubtaskUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *SubtaskUpsertOne) ClearCompletedAt() *SubtaskUpsertOne {
	return u.Update(func(s *SubtaskUpsert) {
		s.ClearCompletedAt()
	})
}

// SetExecutionTimeMs sets the "execution_time_ms" field.
func (u *SubtaskUpsertOne) SetExecutionTimeMs(v int64) *SubtaskUpsertOne {
	return u.Update(func(s *SubtaskUpsert) {
		s.SetExecutionTimeMs(v)
	})
}

// AddExecutionTimeMs adds v to the "execution_time_ms" field.
func (u *SubtaskUpsertOne) AddExecutionTimeMs(v int64) *SubtaskUpsertOne {
	return u.Update(func(s *SubtaskUpsert) {
		s.AddExecutionTimeMs(v)
	})
}

// UpdateExecutionTimeMs sets the "execution_time_ms" field to the value that was provided on create.
func (u *SubtaskUpsertOne) UpdateExecutionTimeMs() *SubtaskUpsertOne {
	return u.Update(func(s *SubtaskUpsert) {
		s.UpdateExecutionTimeMs()
	})
}

// ClearExecutionTimeMs clears the value of the "execution_time_ms" field.
func (u *SubtaskUpsertOne) ClearExecutionTimeMs() *SubtaskUpsertOne {
	return u.Update(func(s *SubtaskUpsert) {
		s.ClearExecutionTimeMs()
	})
}

// SetRetryCount sets the "retry_count" field.
func (u *SubtaskUpsertOne) SetRetryCount(v int) *SubtaskUpsertOne {
	return u.Update(func(s *SubtaskUpsert) {
		s.SetRetryCount(v)
	})
}

// AddRetryCount adds v to the "retry_count" field.
func (u *SubtaskUpsertOne) AddRetryCount(v int) *SubtaskUpsertOne {
	return u.Update(func(s *SubtaskUpsert) {
		s.AddRetryCount(v)
	})
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *SubtaskUpsertOne) UpdateRetryCount() *SubtaskUpsertOne {
	return u.Update(func(s *SubtaskUpsert) {
		s.UpdateRetryCount()
	})
}

// Exec executes the query.
func (u *SubtaskUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SubtaskCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SubtaskUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SubtaskUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SubtaskUpsertOne.ID is not supported by MySQL driver. Use SubtaskUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SubtaskUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SubtaskCreateBulk is the builder for creating many Subtask entities in bulk.
type SubtaskCreateBulk struct {
	config
	err      error
	builders []*SubtaskCreate
	conflict []sql.ConflictOption
}

// Save creates the Subtask entities in the database.
func (_c *SubtaskCreateBulk) Save(ctx context.Context) ([]*Subtask, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Subtask, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubtaskMutation)
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
func (_c *SubtaskCreateBulk) SaveX(ctx context.Context) []*Subtask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubtaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubtaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Subtask.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SubtaskUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *SubtaskCreateBulk) OnConflict(opts ...sql.ConflictOption) *SubtaskUpsertBulk {
	_c.conflict = opts
	return &SubtaskUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Subtask.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SubtaskCreateBulk) OnConflictColumns(columns ...string) *SubtaskUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SubtaskUpsertBulk{
		create: _c,
	}
}

// SubtaskUpsertBulk is the builder for "upsert"-ing
// a bulk of Subtask nodes.
type SubtaskUpsertBulk struct {
	create *SubtaskCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Subtask.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(subtask.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SubtaskUpsertBulk) UpdateNewValues() *SubtaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(subtask.FieldID)
			}
			if _, exists := b.mutation.TaskID(); exists {
				s.SetIgnore(subtask.FieldTaskID)
			}
			if _, exists := b.mutation.LocalID(); exists {
				s.SetIgnore(subtask.FieldLocalID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(subtask.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Subtask.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SubtaskUpsertBulk) Ignore() *SubtaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SubtaskUpsertBulk) DoNothing() *SubtaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SubtaskCreateBulk.OnConflict
// documentation for more info.
func (u *SubtaskUpsertBulk) Update(set func(*SubtaskUpsert)) *SubtaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SubtaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetDescription sets the "description" field.
func (u *SubtaskUpsertBulk) SetDescription(v string) *SubtaskUpsertBulk {
	return u.Update(func(s *SubtaskUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *SubtaskUpsertBulk) UpdateDescription() *SubtaskUpsertBulk {
	return u.Update(func(s *SubtaskUpsert) {
		s.UpdateDescription()
	})
}

// SetRequiredCapabilities sets the "required_capabilities" field.
func (u *SubtaskUpsertBulk) SetRequiredCapabilities(v []string) *SubtaskUpsertBulk {
	return u.Update(func(s *SubtaskUpsert) {
		s.SetRequiredCapabilities(v)
	})
}

// UpdateRequiredCapabilities sets the "required_capabilities" field to the value that was provided on create.
func (u *SubtaskUpsertBulk) UpdateRequiredCapabilities() *SubtaskUpsertBulk {
	return u.Update(func(s *SubtaskUpsert) {
		s.UpdateRequiredCapabilities()
	})
}

// SetEstimatedComplexity sets the "estimated_complexity" field.
func (u *SubtaskUpsertBulk) SetEstimatedComplexity(v subtask.EstimatedComplexity) *SubtaskUpsertBulk {
	return u.Update(func(s *SubtaskUpsert) {
		s.SetEstimatedComplexity(v)
	})
}

// UpdateEstimatedComplexity sets the "estimated_complexity" field to the value that was provided on create.
func (u *SubtaskUpsertBulk) UpdateEstimatedComplexity() *SubtaskUpsertBulk {
	return u.Update(func(s *SubtaskUpsert) {
		s.UpdateEstimatedComplexity()
	})
}

// SetDependsOn sets the "depends_on" field.
func (u *SubtaskUpsertBulk) SetDependsOn(v []string) *SubtaskUpsertBulk {
	return u.Update(func(s *SubtaskUpsert) {
		s.SetDependsOn(v)
	})
}

// UpdateDependsOn sets the "depends_on" field to the value that was provided on create.
func (u *SubtaskUpsertBulk) UpdateDependsOn() *SubtaskUpsertBulk {
	return u.Update(func(s *SubtaskUpsert) {
		s.UpdateDependsOn()
	})
}

// SetAgentID sets the "agent_id" field.
func (u *SubtaskUpsertBulk) SetAgentID(v string) *SubtaskUpsertBulk {
	return u.Update(func(s *SubtaskUpsert) {
		s.SetAgentID(v)
	})
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *SubtaskUpsertBulk) UpdateAgentID() *SubtaskUpsertBulk {
	return u.Update(func(s *SubtaskUpsert) {
		s.UpdateAgentID()
	})
}

// ClearAgentID clears the value of the "agent_id" field.
func (u *SubtaskUpsertBulk) ClearAgentID() *SubtaskUpsertBulk {
	return u.Update(func(s *SubtaskUpsert) {
		s.ClearAgentID()
	})
}

// SetStatus sets the "status" field.
func (u *SubtaskUpsertBulk) SetStatus(v subtask.Status) *SubtaskUpsertBulk {
	return u.Update(func(s *SubtaskUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SubtaskUpsertBulk) UpdateStatus() *SubtaskUpsertBulk {
	return u.Update(func(s *SubtaskUpsert) {
		s.UpdateStatus()
	})
}

// SetResult sets the "result" field.
func (u *SubtaskUpsertBulk) SetResult(v map[string]interface{}) *SubtaskUpsertBulk {
	return u.Update(func(s *SubtaskUpsert) {
		s.SetResult(v)
	})
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *SubtaskUpsertBulk) UpdateResult() *SubtaskUpsertBulk {
	return u.Update(func(s *SubtaskUpsert) {
		s.UpdateResult()
	})
}

// ClearResult clears the value of the "result" field.
func (u *SubtaskUpsertBulk) ClearResult() *SubtaskUpsertBulk {
	return u.Update(func(s *SubtaskUpsert) {
		s.ClearResult()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *SubtaskUpsertBulk) SetErrorMessage(v string) *SubtaskUpsertBulk {
	return u.Update(func(s *SubtaskUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *SubtaskUpsertBulk) UpdateErrorMessage() *SubtaskUpsertBulk {
	return u.Update(func(s *SubtaskUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *SubtaskUpsertBulk) ClearErrorMessage() *SubtaskUpsertBulk {
	return u.Update(func(s *SubtaskUpsert) {
		s.ClearErrorMessage()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *SubtaskUpsertBulk) SetStartedAt(v time.Time) *SubtaskUpsertBulk {
	return u.Update(func(s *SubtaskUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *SubtaskUpsertBulk) UpdateStartedAt() *SubtaskUpsertBulk {
	return u.Update(func(s *SubtaskUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *SubtaskUpsertBulk) ClearStartedAt() *SubtaskUpsertBulk {
	return u.Update(func(s *SubtaskUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *SubtaskUpsertBulk) SetCompletedAt(v time.Time) *SubtaskUpsertBulk {
	return u.Update(func(s *SubtaskUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *SubtaskUpsertBulk) UpdateCompletedAt() *SubtaskUpsertBulk {
	return u.Update(func(s *SubtaskUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *SubtaskUpsertBulk) ClearCompletedAt() *SubtaskUpsertBulk {
	return u.Update(func(s *SubtaskUpsert) {
		s.ClearCompletedAt()
	})
}

// SetExecutionTimeMs sets the "execution_time_ms" field.
func (u *SubtaskUpsertBulk) SetExecutionTimeMs(v int64) *SubtaskUpsertBulk {
	return u.Update(func(s *SubtaskUpsert) {
		s.SetExecutionTimeMs(v)
	})
}

// AddExecutionTimeMs adds v to the "execution_time_ms" field.
func (u *SubtaskUpsertBulk) AddExecutionTimeMs(v int64) *SubtaskUpsertBulk {
	return u.Update(func(s *SubtaskUpsert) {
		s.AddExecutionTimeMs(v)
	})
}

// UpdateExecutionTimeMs sets the "execution_time_ms" field to the value that was provided on create.
func (u *SubtaskUpsertBulk) UpdateExecutionTimeMs() *SubtaskUpsertBulk {
	return u.Update(func(s *SubtaskUpsert) {
		s.UpdateExecutionTimeMs()
	})
}

// ClearExecutionTimeMs clears the value of the "execution_time_ms" field.
func (u *SubtaskUpsertBulk) ClearExecutionTimeMs() *SubtaskUpsertBulk {
	return u.Update(func(s *SubtaskUpsert) {
		s.ClearExecutionTimeMs()
	})
}

// SetRetryCount sets the "retry_count" field.
func (u *SubtaskUpsertBulk) SetRetryCount(v int) *SubtaskUpsertBulk {
	return u.Update(func(s *SubtaskUpsert) {
		s.SetRetryCount(v)
	})
}

// AddRetryCount adds v to the "retry_count" field.
func (u *SubtaskUpsertBulk) AddRetryCount(v int) *SubtaskUpsertBulk {
	return u.Update(func(s *SubtaskUpsert) {
		s.AddRetryCount(v)
	})
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *SubtaskUpsertBulk) UpdateRetryCount() *SubtaskUpsertBulk {
	return u.Update(func(s *SubtaskUpsert) {
		s.UpdateRetryCount()
	})
}

// Exec executes the query.
func (u *SubtaskUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SubtaskCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SubtaskCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SubtaskUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
