// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/maestro-run/maestro/ent/predicate"
	"github.com/maestro-run/maestro/ent/subtask"
)

// SubtaskUpdate is the builder for updating Subtask entities.
type SubtaskUpdate struct {
	config
	hooks    []Hook
	mutation *SubtaskMutation
}

// Where appends a list predicates to the SubtaskUpdate builder.
func (_u *SubtaskUpdate) Where(ps ...predicate.Subtask) *SubtaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDescription sets the "description" field.
func (_u *SubtaskUpdate) SetDescription(v string) *SubtaskUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SubtaskUpdate) SetNillableDescription(v *string) *SubtaskUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetRequiredCapabilities sets the "required_capabilities" field.
func (_u *SubtaskUpdate) SetRequiredCapabilities(v []string) *SubtaskUpdate {
	_u.mutation.SetRequiredCapabilities(v)
	return _u
}

// AppendRequiredCapabilities appends value to the "required_capabilities" field.
func (_u *SubtaskUpdate) AppendRequiredCapabilities(v []string) *SubtaskUpdate {
	_u.mutation.AppendRequiredCapabilities(v)
	return _u
}

// SetEstimatedComplexity sets the "estimated_complexity" field.
func (_u *SubtaskUpdate) SetEstimatedComplexity(v subtask.EstimatedComplexity) *SubtaskUpdate {
	_u.mutation.SetEstimatedComplexity(v)
	return _u
}

// SetNillableEstimatedComplexity sets the "estimated_complexity" field if the given value is not nil.
func (_u *SubtaskUpdate) SetNillableEstimatedComplexity(v *subtask.EstimatedComplexity) *SubtaskUpdate {
	if v != nil {
		_u.SetEstimatedComplexity(*v)
	}
	return _u
}

// SetDependsOn sets the "depends_on" field.
func (_u *SubtaskUpdate) SetDependsOn(v []string) *SubtaskUpdate {
	_u.mutation.SetDependsOn(v)
	return _u
}

// AppendDependsOn appends value to the "depends_on" field.
func (_u *SubtaskUpdate) AppendDependsOn(v []string) *SubtaskUpdate {
	_u.mutation.AppendDependsOn(v)
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *SubtaskUpdate) SetAgentID(v string) *SubtaskUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *SubtaskUpdate) SetNillableAgentID(v *string) *SubtaskUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *SubtaskUpdate) ClearAgentID() *SubtaskUpdate {
	_u.mutation.ClearAgentID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SubtaskUpdate) SetStatus(v subtask.Status) *SubtaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SubtaskUpdate) SetNillableStatus(v *subtask.Status) *SubtaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *SubtaskUpdate) SetResult(v map[string]interface{}) *SubtaskUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *SubtaskUpdate) ClearResult() *SubtaskUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SubtaskUpdate) SetErrorMessage(v string) *SubtaskUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SubtaskUpdate) SetNillableErrorMessage(v *string) *SubtaskUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SubtaskUpdate) ClearErrorMessage() *SubtaskUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *SubtaskUpdate) SetStartedAt(v time.Time) *SubtaskUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *SubtaskUpdate) SetNillableStartedAt(v *time.Time) *SubtaskUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *SubtaskUpdate) ClearStartedAt() *SubtaskUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SubtaskUpdate) SetCompletedAt(v time.Time) *SubtaskUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SubtaskUpdate) SetNillableCompletedAt(v *time.Time) *SubtaskUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SubtaskUpdate) ClearCompletedAt() *SubtaskUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetExecutionTimeMs sets the "execution_time_ms" field.
func (_u *SubtaskUpdate) SetExecutionTimeMs(v int64) *SubtaskUpdate {
	_u.mutation.ResetExecutionTimeMs()
	_u.mutation.SetExecutionTimeMs(v)
	return _u
}

// SetNillableExecutionTimeMs sets the "execution_time_ms" field if the given value is not nil.
func (_u *SubtaskUpdate) SetNillableExecutionTimeMs(v *int64) *SubtaskUpdate {
	if v != nil {
		_u.SetExecutionTimeMs(*v)
	}
	return _u
}

// AddExecutionTimeMs adds value to the "execution_time_ms" field.
func (_u *SubtaskUpdate) AddExecutionTimeMs(v int64) *SubtaskUpdate {
	_u.mutation.AddExecutionTimeMs(v)
	return _u
}

// ClearExecutionTimeMs clears the value of the "execution_time_ms" field.
func (_u *SubtaskUpdate) ClearExecutionTimeMs() *SubtaskUpdate {
	_u.mutation.ClearExecutionTimeMs()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *SubtaskUpdate) SetRetryCount(v int) *SubtaskUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *SubtaskUpdate) SetNillableRetryCount(v *int) *SubtaskUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *SubtaskUpdate) AddRetryCount(v int) *SubtaskUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// Mutation returns the SubtaskMutation object of the builder.
func (_u *SubtaskUpdate) Mutation() *SubtaskMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubtaskUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubtaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubtaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubtaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubtaskUpdate) check() error {
	if v, ok := _u.mutation.EstimatedComplexity(); ok {
		if err := subtask.EstimatedComplexityValidator(v); err != nil {
			return &ValidationError{Name: "estimated_complexity", err: fmt.Errorf(`ent: validator failed for field "Subtask.estimated_complexity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := subtask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Subtask.status": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Subtask.task"`)
	}
	return nil
}

func (_u *SubtaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subtask.Table, subtask.Columns, sqlgraph.NewFieldSpec(subtask.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(subtask.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequiredCapabilities(); ok {
		_spec.SetField(subtask.FieldRequiredCapabilities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRequiredCapabilities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, subtask.FieldRequiredCapabilities, value)
		})
	}
	if value, ok := _u.mutation.EstimatedComplexity(); ok {
		_spec.SetField(subtask.FieldEstimatedComplexity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DependsOn(); ok {
		_spec.SetField(subtask.FieldDependsOn, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDependsOn(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, subtask.FieldDependsOn, value)
		})
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(subtask.FieldAgentID, field.TypeString, value)
	}
	if _u.mutation.AgentIDCleared() {
		_spec.ClearField(subtask.FieldAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(subtask.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(subtask.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(subtask.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(subtask.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(subtask.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(subtask.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(subtask.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(subtask.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(subtask.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExecutionTimeMs(); ok {
		_spec.SetField(subtask.FieldExecutionTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedExecutionTimeMs(); ok {
		_spec.AddField(subtask.FieldExecutionTimeMs, field.TypeInt64, value)
	}
	if _u.mutation.ExecutionTimeMsCleared() {
		_spec.ClearField(subtask.FieldExecutionTimeMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(subtask.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(subtask.FieldRetryCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subtask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubtaskUpdateOne is the builder for updating a single Subtask entity.
type SubtaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubtaskMutation
}

// SetDescription sets the "description" field.
func (_u *SubtaskUpdateOne) SetDescription(v string) *SubtaskUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SubtaskUpdateOne) SetNillableDescription(v *string) *SubtaskUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetRequiredCapabilities sets the "required_capabilities" field.
func (_u *SubtaskUpdateOne) SetRequiredCapabilities(v []string) *SubtaskUpdateOne {
	_u.mutation.SetRequiredCapabilities(v)
	return _u
}

// AppendRequiredCapabilities appends value to the "required_capabilities" field.
func (_u *SubtaskUpdateOne) AppendRequiredCapabilities(v []string) *SubtaskUpdateOne {
	_u.mutation.AppendRequiredCapabilities(v)
	return _u
}

// SetEstimatedComplexity sets the "estimated_complexity" field.
func (_u *SubtaskUpdateOne) SetEstimatedComplexity(v subtask.EstimatedComplexity) *SubtaskUpdateOne {
	_u.mutation.SetEstimatedComplexity(v)
	return _u
}

// SetNillableEstimatedComplexity sets the "estimated_complexity" field if the given value is not nil.
func (_u *SubtaskUpdateOne) SetNillableEstimatedComplexity(v *subtask.EstimatedComplexity) *SubtaskUpdateOne {
	if v != nil {
		_u.SetEstimatedComplexity(*v)
	}
	return _u
}

// SetDependsOn sets the "depends_on" field.
func (_u *SubtaskUpdateOne) SetDependsOn(v []string) *SubtaskUpdateOne {
	_u.mutation.SetDependsOn(v)
	return _u
}

// AppendDependsOn appends value to the "depends_on" field.
func (_u *SubtaskUpdateOne) AppendDependsOn(v []string) *SubtaskUpdateOne {
	_u.mutation.AppendDependsOn(v)
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *SubtaskUpdateOne) SetAgentID(v string) *SubtaskUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *SubtaskUpdateOne) SetNillableAgentID(v *string) *SubtaskUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *SubtaskUpdateOne) ClearAgentID() *SubtaskUpdateOne {
	_u.mutation.ClearAgentID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SubtaskUpdateOne) SetStatus(v subtask.Status) *SubtaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SubtaskUpdateOne) SetNillableStatus(v *subtask.Status) *SubtaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *SubtaskUpdateOne) SetResult(v map[string]interface{}) *SubtaskUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *SubtaskUpdateOne) ClearResult() *SubtaskUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SubtaskUpdateOne) SetErrorMessage(v string) *SubtaskUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SubtaskUpdateOne) SetNillableErrorMessage(v *string) *SubtaskUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SubtaskUpdateOne) ClearErrorMessage() *SubtaskUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *SubtaskUpdateOne) SetStartedAt(v time.Time) *SubtaskUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *SubtaskUpdateOne) SetNillableStartedAt(v *time.Time) *SubtaskUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *SubtaskUpdateOne) ClearStartedAt() *SubtaskUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SubtaskUpdateOne) SetCompletedAt(v time.Time) *SubtaskUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SubtaskUpdateOne) SetNillableCompletedAt(v *time.Time) *SubtaskUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SubtaskUpdateOne) ClearCompletedAt() *SubtaskUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetExecutionTimeMs sets the "execution_time_ms" field.
func (_u *SubtaskUpdateOne) SetExecutionTimeMs(v int64) *SubtaskUpdateOne {
	_u.mutation.ResetExecutionTimeMs()
	_u.mutation.SetExecutionTimeMs(v)
	return _u
}

// SetNillableExecutionTimeMs sets the "execution_time_ms" field if the given value is not nil.
func (_u *SubtaskUpdateOne) SetNillableExecutionTimeMs(v *int64) *SubtaskUpdateOne {
	if v != nil {
		_u.SetExecutionTimeMs(*v)
	}
	return _u
}

// AddExecutionTimeMs adds value to the "execution_time_ms" field.
func (_u *SubtaskUpdateOne) AddExecutionTimeMs(v int64) *SubtaskUpdateOne {
	_u.mutation.AddExecutionTimeMs(v)
	return _u
}

// ClearExecutionTimeMs clears the value of the "execution_time_ms" field.
func (_u *SubtaskUpdateOne) ClearExecutionTimeMs() *SubtaskUpdateOne {
	_u.mutation.ClearExecutionTimeMs()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *SubtaskUpdateOne) SetRetryCount(v int) *SubtaskUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *SubtaskUpdateOne) SetNillableRetryCount(v *int) *SubtaskUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *SubtaskUpdateOne) AddRetryCount(v int) *SubtaskUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// Mutation returns the SubtaskMutation object of the builder.
func (_u *SubtaskUpdateOne) Mutation() *SubtaskMutation {
	return _u.mutation
}

// Where appends a list predicates to the SubtaskUpdate builder.
func (_u *SubtaskUpdateOne) Where(ps ...predicate.Subtask) *SubtaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubtaskUpdateOne) Select(field string, fields ...string) *SubtaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Subtask entity.
func (_u *SubtaskUpdateOne) Save(ctx context.Context) (*Subtask, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubtaskUpdateOne) SaveX(ctx context.Context) *Subtask {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubtaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubtaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubtaskUpdateOne) check() error {
	if v, ok := _u.mutation.EstimatedComplexity(); ok {
		if err := subtask.EstimatedComplexityValidator(v); err != nil {
			return &ValidationError{Name: "estimated_complexity", err: fmt.Errorf(`ent: validator failed for field "Subtask.estimated_complexity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := subtask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Subtask.status": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Subtask.task"`)
	}
	return nil
}

func (_u *SubtaskUpdateOne) sqlSave(ctx context.Context) (_node *Subtask, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subtask.Table, subtask.Columns, sqlgraph.NewFieldSpec(subtask.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Subtask.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, subtask.FieldID)
		for _, f := range fields {
			if !subtask.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != subtask.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(subtask.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequiredCapabilities(); ok {
		_spec.SetField(subtask.FieldRequiredCapabilities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRequiredCapabilities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, subtask.FieldRequiredCapabilities, value)
		})
	}
	if value, ok := _u.mutation.EstimatedComplexity(); ok {
		_spec.SetField(subtask.FieldEstimatedComplexity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DependsOn(); ok {
		_spec.SetField(subtask.FieldDependsOn, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDependsOn(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, subtask.FieldDependsOn, value)
		})
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(subtask.FieldAgentID, field.TypeString, value)
	}
	if _u.mutation.AgentIDCleared() {
		_spec.ClearField(subtask.FieldAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(subtask.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(subtask.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(subtask.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(subtask.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(subtask.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(subtask.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(subtask.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(subtask.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(subtask.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExecutionTimeMs(); ok {
		_spec.SetField(subtask.FieldExecutionTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedExecutionTimeMs(); ok {
		_spec.AddField(subtask.FieldExecutionTimeMs, field.TypeInt64, value)
	}
	if _u.mutation.ExecutionTimeMsCleared() {
		_spec.ClearField(subtask.FieldExecutionTimeMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(subtask.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(subtask.FieldRetryCount, field.TypeInt, value)
	}
	_node = &Subtask{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subtask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
