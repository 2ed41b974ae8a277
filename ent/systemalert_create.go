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
	"github.com/maestro-run/maestro/ent/systemalert"
)

// SystemAlertCreate is the builder for creating a SystemAlert entity.
type SystemAlertCreate struct {
	config
	mutation *SystemAlertMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTitle sets the "title" field.
func (_c *SystemAlertCreate) SetTitle(v string) *SystemAlertCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetMessage sets the "message" field.
func (_c *SystemAlertCreate) SetMessage(v string) *SystemAlertCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *SystemAlertCreate) SetSeverity(v systemalert.Severity) *SystemAlertCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *SystemAlertCreate) SetSource(v string) *SystemAlertCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetSourceID sets the "source_id" field.
func (_c *SystemAlertCreate) SetSourceID(v string) *SystemAlertCreate {
	_c.mutation.SetSourceID(v)
	return _c
}

// SetNillableSourceID sets the "source_id" field if the given value is not nil.
func (_c *SystemAlertCreate) SetNillableSourceID(v *string) *SystemAlertCreate {
	if v != nil {
		_c.SetSourceID(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *SystemAlertCreate) SetMetadata(v map[string]interface{}) *SystemAlertCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SystemAlertCreate) SetCreatedAt(v time.Time) *SystemAlertCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SystemAlertCreate) SetNillableCreatedAt(v *time.Time) *SystemAlertCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetAcknowledged sets the "acknowledged" field.
func (_c *SystemAlertCreate) SetAcknowledged(v bool) *SystemAlertCreate {
	_c.mutation.SetAcknowledged(v)
	return _c
}

// SetNillableAcknowledged sets the "acknowledged" field if the given value is not nil.
func (_c *SystemAlertCreate) SetNillableAcknowledged(v *bool) *SystemAlertCreate {
	if v != nil {
		_c.SetAcknowledged(*v)
	}
	return _c
}

// SetAcknowledgedAt sets the "acknowledged_at" field.
func (_c *SystemAlertCreate) SetAcknowledgedAt(v time.Time) *SystemAlertCreate {
	_c.mutation.SetAcknowledgedAt(v)
	return _c
}

// SetNillableAcknowledgedAt sets the "acknowledged_at" field if the given value is not nil.
func (_c *SystemAlertCreate) SetNillableAcknowledgedAt(v *time.Time) *SystemAlertCreate {
	if v != nil {
		_c.SetAcknowledgedAt(*v)
	}
	return _c
}

// SetResolved sets the "resolved" field.
func (_c *SystemAlertCreate) SetResolved(v bool) *SystemAlertCreate {
	_c.mutation.SetResolved(v)
	return _c
}

// SetNillableResolved sets the "resolved" field if the given value is not nil.
func (_c *SystemAlertCreate) SetNillableResolved(v *bool) *SystemAlertCreate {
	if v != nil {
		_c.SetResolved(*v)
	}
	return _c
}

// SetResolvedAt sets the "resolved_at" field.
func (_c *SystemAlertCreate) SetResolvedAt(v time.Time) *SystemAlertCreate {
	_c.mutation.SetResolvedAt(v)
	return _c
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_c *SystemAlertCreate) SetNillableResolvedAt(v *time.Time) *SystemAlertCreate {
	if v != nil {
		_c.SetResolvedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SystemAlertCreate) SetID(v string) *SystemAlertCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SystemAlertMutation object of the builder.
func (_c *SystemAlertCreate) Mutation() *SystemAlertMutation {
	return _c.mutation
}

// Save creates the SystemAlert in the database.
func (_c *SystemAlertCreate) Save(ctx context.Context) (*SystemAlert, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SystemAlertCreate) SaveX(ctx context.Context) *SystemAlert {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SystemAlertCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SystemAlertCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SystemAlertCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := systemalert.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.Acknowledged(); !ok {
		v := systemalert.DefaultAcknowledged
		_c.mutation.SetAcknowledged(v)
	}
	if _, ok := _c.mutation.Resolved(); !ok {
		v := systemalert.DefaultResolved
		_c.mutation.SetResolved(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SystemAlertCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "SystemAlert.title"`)}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "SystemAlert.message"`)}
	}
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "SystemAlert.severity"`)}
	}
	if v, ok := _c.mutation.Severity(); ok {
		if err := systemalert.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "SystemAlert.severity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "SystemAlert.source"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SystemAlert.created_at"`)}
	}
	if _, ok := _c.mutation.Acknowledged(); !ok {
		return &ValidationError{Name: "acknowledged", err: errors.New(`ent: missing required field "SystemAlert.acknowledged"`)}
	}
	if _, ok := _c.mutation.Resolved(); !ok {
		return &ValidationError{Name: "resolved", err: errors.New(`ent: missing required field "SystemAlert.resolved"`)}
	}
	return nil
}

func (_c *SystemAlertCreate) sqlSave(ctx context.Context) (*SystemAlert, error) {
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
			return nil, fmt.Errorf("unexpected SystemAlert.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SystemAlertCreate) createSpec() (*SystemAlert, *sqlgraph.CreateSpec) {
	var (
		_node = &SystemAlert{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(systemalert.Table, sqlgraph.NewFieldSpec(systemalert.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(systemalert.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(systemalert.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(systemalert.FieldSeverity, field.TypeEnum, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(systemalert.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.SourceID(); ok {
		_spec.SetField(systemalert.FieldSourceID, field.TypeString, value)
		_node.SourceID = &value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(systemalert.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(systemalert.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Acknowledged(); ok {
		_spec.SetField(systemalert.FieldAcknowledged, field.TypeBool, value)
		_node.Acknowledged = value
	}
	if value, ok := _c.mutation.AcknowledgedAt(); ok {
		_spec.SetField(systemalert.FieldAcknowledgedAt, field.TypeTime, value)
		_node.AcknowledgedAt = &value
	}
	if value, ok := _c.mutation.Resolved(); ok {
		_spec.SetField(systemalert.FieldResolved, field.TypeBool, value)
		_node.Resolved = value
	}
	if value, ok := _c.mutation.ResolvedAt(); ok {
		_spec.SetField(systemalert.FieldResolvedAt, field.TypeTime, value)
		_node.ResolvedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SystemAlert.Create().
//		SetTitle(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SystemAlertUpsert) {
//			SetTitle(v+v).
//		}).
//		Exec(ctx)
func (_c *SystemAlertCreate) OnConflict(opts ...sql.ConflictOption) *SystemAlertUpsertOne {
	_c.conflict = opts
	return &SystemAlertUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SystemAlert.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SystemAlertCreate) OnConflictColumns(columns ...string) *SystemAlertUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SystemAlertUpsertOne{
		create: _c,
	}
}

type (
	// SystemAlertUpsertOne is the builder for "upsert"-ing
	//  one SystemAlert node.
	SystemAlertUpsertOne struct {
		create *SystemAlertCreate
	}

	// SystemAlertUpsert is the "OnConflict" setter.
	SystemAlertUpsert struct {
		*sql.UpdateSet
	}
)

// SetTitle sets the "title" field.
func (u *SystemAlertUpsert) SetTitle(v string) *SystemAlertUpsert {
	u.Set(systemalert.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *SystemAlertUpsert) UpdateTitle() *SystemAlertUpsert {
	u.SetExcluded(systemalert.FieldTitle)
	return u
}

// SetMessage sets the "message" field.
func (u *SystemAlertUpsert) SetMessage(v string) *SystemAlertUpsert {
	u.Set(systemalert.FieldMessage, v)
	return u
}

// UpdateMessage sets the "message" field to the value that was provided on create.
func (u *SystemAlertUpsert) UpdateMessage() *SystemAlertUpsert {
	u.SetExcluded(systemalert.FieldMessage)
	return u
}

// SetSeverity sets the "severity" field.
func (u *SystemAlertUpsert) SetSeverity(v systemalert.Severity) *SystemAlertUpsert {
	u.Set(systemalert.FieldSeverity, v)
	return u
}

// UpdateSeverity sets the "severity" field to the value that was provided on create.
func (u *SystemAlertUpsert) UpdateSeverity() *SystemAlertUpsert {
	u.SetExcluded(systemalert.FieldSeverity)
	return u
}

// SetSource sets the "source" field.
func (u *SystemAlertUpsert) SetSource(v string) *SystemAlertUpsert {
	u.Set(systemalert.FieldSource, v)
	return u
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *SystemAlertUpsert) UpdateSource() *SystemAlertUpsert {
	u.SetExcluded(systemalert.FieldSource)
	return u
}

// SetSourceID sets the "source_id" field.
func (u *SystemAlertUpsert) SetSourceID(v string) *SystemAlertUpsert {
	u.Set(systemalert.FieldSourceID, v)
	return u
}

// UpdateSourceID sets the "source_id" field to the value that was provided on create.
func (u *SystemAlertUpsert) UpdateSourceID() *SystemAlertUpsert {
	u.SetExcluded(systemalert.FieldSourceID)
	return u
}

// ClearSourceID clears the value of the "source_id" field.
func (u *SystemAlertUpsert) ClearSourceID() *SystemAlertUpsert {
	u.SetNull(systemalert.FieldSourceID)
	return u
}

// SetMetadata sets the "metadata" field.
func (u *SystemAlertUpsert) SetMetadata(v map[string]interface{}) *SystemAlertUpsert {
	u.Set(systemalert.FieldMetadata, v)
	return u
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *SystemAlertUpsert) UpdateMetadata() *SystemAlertUpsert {
	u.SetExcluded(systemalert.FieldMetadata)
	return u
}

// ClearMetadata clears the value of the "metadata" field.
func (u *SystemAlertUpsert) ClearMetadata() *SystemAlertUpsert {
	u.SetNull(systemalert.FieldMetadata)
	return u
}

// SetAcknowledged sets the "acknowledged" field.
func (u *SystemAlertUpsert) SetAcknowledged(v bool) *SystemAlertUpsert {
	u.Set(systemalert.FieldAcknowledged, v)
	return u
}

// UpdateAcknowledged sets the "acknowledged" field to the value that was provided on create.
func (u *SystemAlertUpsert) UpdateAcknowledged() *SystemAlertUpsert {
	u.SetExcluded(systemalert.FieldAcknowledged)
	return u
}

// SetAcknowledgedAt sets the "acknowledged_at" field.
func (u *SystemAlertUpsert) SetAcknowledgedAt(v time.Time) *SystemAlertUpsert {
	u.Set(systemalert.FieldAcknowledgedAt, v)
	return u
}

// UpdateAcknowledgedAt sets the "acknowledged_at" field to the value that was provided on create.
func (u *SystemAlertUpsert) UpdateAcknowledgedAt() *SystemAlertUpsert {
	u.SetExcluded(systemalert.FieldAcknowledgedAt)
	return u
}

// ClearAcknowledgedAt clears the value of the "acknowledged_at" field.
func (u *SystemAlertUpsert) ClearAcknowledgedAt() *SystemAlertUpsert {
	u.SetNull(systemalert.FieldAcknowledgedAt)
	return u
}

// SetResolved sets the "resolved" field.
func (u *SystemAlertUpsert) SetResolved(v bool) *SystemAlertUpsert {
	u.Set(systemalert.FieldResolved, v)
	return u
}

// UpdateResolved sets the "resolved" field to the value that was provided on create.
func (u *SystemAlertUpsert) UpdateResolved() *SystemAlertUpsert {
	u.SetExcluded(systemalert.FieldResolved)
	return u
}

// SetResolvedAt sets the "resolved_at" field.
func (u *SystemAlertUpsert) SetResolvedAt(v time.Time) *SystemAlertUpsert {
	u.Set(systemalert.FieldResolvedAt, v)
	return u
}

// UpdateResolvedAt sets the "resolved_at" field to the value that was provided on create.
func (u *SystemAlertUpsert) UpdateResolvedAt() *SystemAlertUpsert {
	u.SetExcluded(systemalert.FieldResolvedAt)
	return u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (u *SystemAlertUpsert) ClearResolvedAt() *SystemAlertUpsert {
	u.SetNull(systemalert.FieldResolvedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SystemAlert.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(systemalert.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SystemAlertUpsertOne) UpdateNewValues() *SystemAlertUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(systemalert.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(systemalert.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SystemAlert.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SystemAlertUpsertOne) Ignore() *SystemAlertUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SystemAlertUpsertOne) DoNothing() *SystemAlertUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SystemAlertCreate.OnConflict
// documentation for more info.
func (u *SystemAlertUpsertOne) Update(set func(*SystemAlertUpsert)) *SystemAlertUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SystemAlertUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *SystemAlertUpsertOne) SetTitle(v string) *SystemAlertUpsertOne {
	return u.Update(func(s *SystemAlertUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *SystemAlertUpsertOne) UpdateTitle() *SystemAlertUpsertOne {
	return u.Update(func(s *SystemAlertUpsert) {
		s.UpdateTitle()
	})
}

// SetMessage sets the "message" field.
func (u *SystemAlertUpsertOne) SetMessage(v string) *SystemAlertUpsertOne {
	return u.Update(func(s *SystemAlertUpsert) {
		s.SetMessage(v)
	})
}

// UpdateMessage sets the "message" field to the value that was provided on create.
func (u *SystemAlertUpsertOne) UpdateMessage() *SystemAlertUpsertOne {
	return u.Update(func(s *SystemAlertUpsert) {
		s.UpdateMessage()
	})
}

// SetSeverity sets the "severity" field.
func (u *SystemAlertUpsertOne) SetSeverity(v systemalert.Severity) *SystemAlertUpsertOne {
	return u.Update(func(s *SystemAlertUpsert) {
		s.SetSeverity(v)
	})
}

// UpdateSeverity sets the "severity" field to the value that was provided on create.
func (u *SystemAlertUpsertOne) UpdateSeverity() *SystemAlertUpsertOne {
	return u.Update(func(s *SystemAlertUpsert) {
		s.UpdateSeverity()
	})
}

// SetSource sets the "source" field.
func (u *SystemAlertUpsertOne) SetSource(v string) *SystemAlertUpsertOne {
	return u.Update(func(s *SystemAlertUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *SystemAlertUpsertOne) UpdateSource() *SystemAlertUpsertOne {
	return u.Update(func(s *SystemAlertUpsert) {
		s.UpdateSource()
	})
}

// SetSourceID sets the "source_id" field.
func (u *SystemAlertUpsertOne) SetSourceID(v string) *SystemAlertUpsertOne {
	return u.Update(func(s *SystemAlertUpsert) {
		s.SetSourceID(v)
	})
}

// UpdateSourceID sets the "source_id" field to the value that was provided on create.
func (u *SystemAlertUpsertOne) UpdateSourceID() *SystemAlertUpsertOne {
	return u.Update(func(s *SystemAlertUpsert) {
		s.UpdateSourceID()
	})
}

// ClearSourceID clears the value of the "source_id" field.
func (u *SystemAlertUpsertOne) ClearSourceID() *SystemAlertUpsertOne {
	return u.Update(func(s *SystemAlertUpsert) {
		s.ClearSourceID()
	})
}

// SetMetadata sets the "metadata" field.
func (u *SystemAlertUpsertOne) SetMetadata(v map[string]interface{}) *SystemAlertUpsertOne {
	return u.Update(func(s *SystemAlertUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *SystemAlertUpsertOne) UpdateMetadata() *SystemAlertUpsertOne {
	return u.Update(func(s *SystemAlertUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *SystemAlertUpsertOne) ClearMetadata() *SystemAlertUpsertOne {
	return u.Update(func(s *SystemAlertUpsert) {
		s.ClearMetadata()
	})
}

// SetAcknowledged sets the "acknowledged" field.
func (u *SystemAlertUpsertOne) SetAcknowledged(v bool) *SystemAlertUpsertOne {
	return u.Update(func(s *SystemAlertUpsert) {
		s.SetAcknowledged(v)
	})
}

// UpdateAcknowledged sets the "acknowledged" field to the value that was provided on create.
func (u *SystemAlertUpsertOne) UpdateAcknowledged() *SystemAlertUpsertOne {
	return u.Update(func(s *SystemAlertUpsert) {
		s.UpdateAcknowledged()
	})
}

// SetAcknowledgedAt sets the "acknowledged_at" field.
func (u *SystemAlertUpsertOne) SetAcknowledgedAt(v time.Time) *SystemAlertUpsertOne {
	return u.Update(func(s *SystemAlertUpsert) {
		s.SetAcknowledgedAt(v)
	})
}

// UpdateAcknowledgedAt sets the "acknowledged_at" field to the value that was provided on create.
func (u *SystemAlertUpsertOne) UpdateAcknowledgedAt() *SystemAlertUpsertOne {
	return u.Update(func(s *SystemAlertUpsert) {
		s.UpdateAcknowledgedAt()
	})
}

// ClearAcknowledgedAt clears the value of the "acknowledged_at" field.
func (u *SystemAlertUpsertOne) ClearAcknowledgedAt() *SystemAlertUpsertOne {
	return u.Update(func(s *SystemAlertUpsert) {
		s.ClearAcknowledgedAt()
	})
}

// SetResolved sets the "resolved" field.
func (u *SystemAlertUpsertOne) SetResolved(v bool) *SystemAlertUpsertOne {
	return u.Update(func(s *SystemAlertUpsert) {
		s.SetResolved(v)
	})
}

// UpdateResolved sets the "resolved" field to the value that was provided on create.
func (u *SystemAlertUpsertOne) UpdateResolved() *SystemAlertUpsertOne {
	return u.Update(func(s *SystemAlertUpsert) {
		s.UpdateResolved()
	})
}

// SetResolvedAt sets the "resolved_at" field.
func (u *SystemAlertUpsertOne) SetResolvedAt(v time.Time) *SystemAlertUpsertOne {
	return u.Update(func(s *SystemAlertUpsert) {
		s.SetResolvedAt(v)
	})
}

// UpdateResolvedAt sets the "resolved_at" field to the value that was provided on create.
func (u *SystemAlertUpsertOne) UpdateResolvedAt() *SystemAlertUpsertOne {
	return u.Update(func(s *SystemAlertUpsert) {
		s.UpdateResolvedAt()
	})
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (u *SystemAlertUpsertOne) ClearResolvedAt() *SystemAlertUpsertOne {
	return u.Update(func(s *SystemAlertUpsert) {
		s.ClearResolvedAt()
	})
}

// Exec executes the query.
func (u *SystemAlertUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SystemAlertCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SystemAlertUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SystemAlertUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SystemAlertUpsertOne.ID is not supported by MySQL driver. Use SystemAlertUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SystemAlertUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SystemAlertCreateBulk is the builder for creating many SystemAlert entities in bulk.
type SystemAlertCreateBulk struct {
	config
	err      error
	builders []*SystemAlertCreate
	conflict []sql.ConflictOption
}

// Save creates the SystemAlert entities in the database.
func (_c *SystemAlertCreateBulk) Save(ctx context.Context) ([]*SystemAlert, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SystemAlert, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SystemAlertMutation)
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
func (_c *SystemAlertCreateBulk) SaveX(ctx context.Context) []*SystemAlert {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SystemAlertCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SystemAlertCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SystemAlert.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SystemAlertUpsert) {
//			SetTitle(v+v).
//		}).
//		Exec(ctx)
func (_c *SystemAlertCreateBulk) OnConflict(opts ...sql.ConflictOption) *SystemAlertUpsertBulk {
	_c.conflict = opts
	return &SystemAlertUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SystemAlert.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SystemAlertCreateBulk) OnConflictColumns(columns ...string) *SystemAlertUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SystemAlertUpsertBulk{
		create: _c,
	}
}

// SystemAlertUpsertBulk is the builder for "upsert"-ing
// a bulk of SystemAlert nodes.
type SystemAlertUpsertBulk struct {
	create *SystemAlertCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SystemAlert.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(systemalert.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SystemAlertUpsertBulk) UpdateNewValues() *SystemAlertUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(systemalert.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(systemalert.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SystemAlert.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SystemAlertUpsertBulk) Ignore() *SystemAlertUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SystemAlertUpsertBulk) DoNothing() *SystemAlertUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SystemAlertCreateBulk.OnConflict
// documentation for more info.
func (u *SystemAlertUpsertBulk) Update(set func(*SystemAlertUpsert)) *SystemAlertUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SystemAlertUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *SystemAlertUpsertBulk) SetTitle(v string) *SystemAlertUpsertBulk {
	return u.Update(func(s *SystemAlertUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *SystemAlertUpsertBulk) UpdateTitle() *SystemAlertUpsertBulk {
	return u.Update(func(s *SystemAlertUpsert) {
		s.UpdateTitle()
	})
}

// SetMessage sets the "message" field.
func (u *SystemAlertUpsertBulk) SetMessage(v string) *SystemAlertUpsertBulk {
	return u.Update(func(s *SystemAlertUpsert) {
		s.SetMessage(v)
	})
}

// UpdateMessage sets the "message" field to the value that was provided on create.
func (u *SystemAlertUpsertBulk) UpdateMessage() *SystemAlertUpsertBulk {
	return u.Update(func(s *SystemAlertUpsert) {
		s.UpdateMessage()
	})
}

// SetSeverity sets the "severity" field.
func (u *SystemAlertUpsertBulk) SetSeverity(v systemalert.Severity) *SystemAlertUpsertBulk {
	return u.Update(func(s *SystemAlertUpsert) {
		s.SetSeverity(v)
	})
}

// UpdateSeverity sets the "severity" field to the value that was provided on create.
func (u *SystemAlertUpsertBulk) UpdateSeverity() *SystemAlertUpsertBulk {
	return u.Update(func(s *SystemAlertUpsert) {
		s.UpdateSeverity()
	})
}

// SetSource sets the "source" field.
func (u *SystemAlertUpsertBulk) SetSource(v string) *SystemAlertUpsertBulk {
	return u.Update(func(s *SystemAlertUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *SystemAlertUpsertBulk) UpdateSource() *SystemAlertUpsertBulk {
	return u.Update(func(s *SystemAlertUpsert) {
		s.UpdateSource()
	})
}

// SetSourceID sets the "source_id" field.
func (u *SystemAlertUpsertBulk) SetSourceID(v string) *SystemAlertUpsertBulk {
	return u.Update(func(s *SystemAlertUpsert) {
		s.SetSourceID(v)
	})
}

// UpdateSourceID sets the "source_id" field to the value that was provided on create.
func (u *SystemAlertUpsertBulk) UpdateSourceID() *SystemAlertUpsertBulk {
	return u.Update(func(s *SystemAlertUpsert) {
		s.UpdateSourceID()
	})
}

// ClearSourceID clears the value of the "source_id" field.
func (u *SystemAlertUpsertBulk) ClearSourceID() *SystemAlertUpsertBulk {
	return u.Update(func(s *SystemAlertUpsert) {
		s.ClearSourceID()
	})
}

// SetMetadata sets the "metadata" field.
func (u *SystemAlertUpsertBulk) SetMetadata(v map[string]interface{}) *SystemAlertUpsertBulk {
	return u.Update(func(s *SystemAlertUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *SystemAlertUpsertBulk) UpdateMetadata() *SystemAlertUpsertBulk {
	return u.Update(func(s *SystemAlertUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *SystemAlertUpsertBulk) ClearMetadata() *SystemAlertUpsertBulk {
	return u.Update(func(s *SystemAlertUpsert) {
		s.ClearMetadata()
	})
}

// SetAcknowledged sets the "acknowledged" field.
func (u *SystemAlertUpsertBulk) SetAcknowledged(v bool) *SystemAlertUpsertBulk {
	return u.Update(func(s *SystemAlertUpsert) {
		s.SetAcknowledged(v)
	})
}

// UpdateAcknowledged sets the "acknowledged" field to the value that was provided on create.
func (u *SystemAlertUpsertBulk) UpdateAcknowledged() *SystemAlertUpsertBulk {
	return u.Update(func(s *SystemAlertUpsert) {
		s.UpdateAcknowledged()
	})
}

// SetAcknowledgedAt sets the "acknowledged_at" field.
func (u *SystemAlertUpsertBulk) SetAcknowledgedAt(v time.Time) *SystemAlertUpsertBulk {
	return u.Update(func(s *SystemAlertUpsert) {
		s.SetAcknowledgedAt(v)
	})
}

// UpdateAcknowledgedAt sets the "acknowledged_at" field to the value that was provided on create.
func (u *SystemAlertUpsertBulk) UpdateAcknowledgedAt() *SystemAlertUpsertBulk {
	return u.Update(func(s *SystemAlertUpsert) {
		s.UpdateAcknowledgedAt()
	})
}

// ClearAcknowledgedAt clears the value of the "acknowledged_at" field.
func (u *SystemAlertUpsertBulk) ClearAcknowledgedAt() *SystemAlertUpsertBulk {
	return u.Update(func(s *SystemAlertUpsert) {
		s.ClearAcknowledgedAt()
	})
}

// SetResolved sets the "resolved" field.
func (u *SystemAlertUpsertBulk) SetResolved(v bool) *SystemAlertUpsertBulk {
	return u.Update(func(s *SystemAlertUpsert) {
		s.SetResolved(v)
	})
}

// UpdateResolved sets the "resolved" field to the value that was provided on create.
func (u *SystemAlertUpsertBulk) UpdateResolved() *SystemAlertUpsertBulk {
	return u.Update(func(s *SystemAlertUpsert) {
		s.UpdateResolved()
	})
}

// SetResolvedAt sets the "resolved_at" field.
func (u *SystemAlertUpsertBulk) SetResolvedAt(v time.Time) *SystemAlertUpsertBulk {
	return u.Update(func(s *SystemAlertUpsert) {
		s.SetResolvedAt(v)
	})
}

// UpdateResolvedAt sets the "resolved_at" field to the value that was provided on create.
func (u *SystemAlertUpsertBulk) UpdateResolvedAt() *SystemAlertUpsertBulk {
	return u.Update(func(s *SystemAlertUpsert) {
		s.UpdateResolvedAt()
	})
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (u *SystemAlertUpsertBulk) ClearResolvedAt() *SystemAlertUpsertBulk {
	return u.Update(func(s *SystemAlertUpsert) {
		s.ClearResolvedAt()
	})
}

// Exec executes the query.
func (u *SystemAlertUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SystemAlertCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SystemAlertCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SystemAlertUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
