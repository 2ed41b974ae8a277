// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/maestro-run/maestro/ent/predicate"
	"github.com/maestro-run/maestro/ent/systemalert"
)

// SystemAlertUpdate is the builder for updating SystemAlert entities.
type SystemAlertUpdate struct {
	config
	hooks    []Hook
	mutation *SystemAlertMutation
}

// Where appends a list predicates to the SystemAlertUpdate builder.
func (_u *SystemAlertUpdate) Where(ps ...predicate.SystemAlert) *SystemAlertUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *SystemAlertUpdate) SetTitle(v string) *SystemAlertUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SystemAlertUpdate) SetNillableTitle(v *string) *SystemAlertUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *SystemAlertUpdate) SetMessage(v string) *SystemAlertUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *SystemAlertUpdate) SetNillableMessage(v *string) *SystemAlertUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *SystemAlertUpdate) SetSeverity(v systemalert.Severity) *SystemAlertUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *SystemAlertUpdate) SetNillableSeverity(v *systemalert.Severity) *SystemAlertUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *SystemAlertUpdate) SetSource(v string) *SystemAlertUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *SystemAlertUpdate) SetNillableSource(v *string) *SystemAlertUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetSourceID sets the "source_id" field.
func (_u *SystemAlertUpdate) SetSourceID(v string) *SystemAlertUpdate {
	_u.mutation.SetSourceID(v)
	return _u
}

// SetNillableSourceID sets the "source_id" field if the given value is not nil.
func (_u *SystemAlertUpdate) SetNillableSourceID(v *string) *SystemAlertUpdate {
	if v != nil {
		_u.SetSourceID(*v)
	}
	return _u
}

// ClearSourceID clears the value of the "source_id" field.
func (_u *SystemAlertUpdate) ClearSourceID() *SystemAlertUpdate {
	_u.mutation.ClearSourceID()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *SystemAlertUpdate) SetMetadata(v map[string]interface{}) *SystemAlertUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *SystemAlertUpdate) ClearMetadata() *SystemAlertUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetAcknowledged sets the "acknowledged" field.
func (_u *SystemAlertUpdate) SetAcknowledged(v bool) *SystemAlertUpdate {
	_u.mutation.SetAcknowledged(v)
	return _u
}

// SetNillableAcknowledged sets the "acknowledged" field if the given value is not nil.
func (_u *SystemAlertUpdate) SetNillableAcknowledged(v *bool) *SystemAlertUpdate {
	if v != nil {
		_u.SetAcknowledged(*v)
	}
	return _u
}

// SetAcknowledgedAt sets the "acknowledged_at" field.
func (_u *SystemAlertUpdate) SetAcknowledgedAt(v time.Time) *SystemAlertUpdate {
	_u.mutation.SetAcknowledgedAt(v)
	return _u
}

// SetNillableAcknowledgedAt sets the "acknowledged_at" field if the given value is not nil.
func (_u *SystemAlertUpdate) SetNillableAcknowledgedAt(v *time.Time) *SystemAlertUpdate {
	if v != nil {
		_u.SetAcknowledgedAt(*v)
	}
	return _u
}

// ClearAcknowledgedAt clears the value of the "acknowledged_at" field.
func (_u *SystemAlertUpdate) ClearAcknowledgedAt() *SystemAlertUpdate {
	_u.mutation.ClearAcknowledgedAt()
	return _u
}

// SetResolved sets the "resolved" field.
func (_u *SystemAlertUpdate) SetResolved(v bool) *SystemAlertUpdate {
	_u.mutation.SetResolved(v)
	return _u
}

// SetNillableResolved sets the "resolved" field if the given value is not nil.
func (_u *SystemAlertUpdate) SetNillableResolved(v *bool) *SystemAlertUpdate {
	if v != nil {
		_u.SetResolved(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *SystemAlertUpdate) SetResolvedAt(v time.Time) *SystemAlertUpdate {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *SystemAlertUpdate) SetNillableResolvedAt(v *time.Time) *SystemAlertUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *SystemAlertUpdate) ClearResolvedAt() *SystemAlertUpdate {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the SystemAlertMutation object of the builder.
func (_u *SystemAlertUpdate) Mutation() *SystemAlertMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SystemAlertUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SystemAlertUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SystemAlertUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SystemAlertUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SystemAlertUpdate) check() error {
	if v, ok := _u.mutation.Severity(); ok {
		if err := systemalert.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "SystemAlert.severity": %w`, err)}
		}
	}
	return nil
}

func (_u *SystemAlertUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(systemalert.Table, systemalert.Columns, sqlgraph.NewFieldSpec(systemalert.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(systemalert.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(systemalert.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(systemalert.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(systemalert.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceID(); ok {
		_spec.SetField(systemalert.FieldSourceID, field.TypeString, value)
	}
	if _u.mutation.SourceIDCleared() {
		_spec.ClearField(systemalert.FieldSourceID, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(systemalert.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(systemalert.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Acknowledged(); ok {
		_spec.SetField(systemalert.FieldAcknowledged, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AcknowledgedAt(); ok {
		_spec.SetField(systemalert.FieldAcknowledgedAt, field.TypeTime, value)
	}
	if _u.mutation.AcknowledgedAtCleared() {
		_spec.ClearField(systemalert.FieldAcknowledgedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Resolved(); ok {
		_spec.SetField(systemalert.FieldResolved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(systemalert.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(systemalert.FieldResolvedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{systemalert.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SystemAlertUpdateOne is the builder for updating a single SystemAlert entity.
type SystemAlertUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SystemAlertMutation
}

// SetTitle sets the "title" field.
func (_u *SystemAlertUpdateOne) SetTitle(v string) *SystemAlertUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SystemAlertUpdateOne) SetNillableTitle(v *string) *SystemAlertUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *SystemAlertUpdateOne) SetMessage(v string) *SystemAlertUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *SystemAlertUpdateOne) SetNillableMessage(v *string) *SystemAlertUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *SystemAlertUpdateOne) SetSeverity(v systemalert.Severity) *SystemAlertUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *SystemAlertUpdateOne) SetNillableSeverity(v *systemalert.Severity) *SystemAlertUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *SystemAlertUpdateOne) SetSource(v string) *SystemAlertUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *SystemAlertUpdateOne) SetNillableSource(v *string) *SystemAlertUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetSourceID sets the "source_id" field.
func (_u *SystemAlertUpdateOne) SetSourceID(v string) *SystemAlertUpdateOne {
	_u.mutation.SetSourceID(v)
	return _u
}

// SetNillableSourceID sets the "source_id" field if the given value is not nil.
func (_u *SystemAlertUpdateOne) SetNillableSourceID(v *string) *SystemAlertUpdateOne {
	if v != nil {
		_u.SetSourceID(*v)
	}
	return _u
}

// ClearSourceID clears the value of the "source_id" field.
func (_u *SystemAlertUpdateOne) ClearSourceID() *SystemAlertUpdateOne {
	_u.mutation.ClearSourceID()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *SystemAlertUpdateOne) SetMetadata(v map[string]interface{}) *SystemAlertUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *SystemAlertUpdateOne) ClearMetadata() *SystemAlertUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetAcknowledged sets the "acknowledged" field.
func (_u *SystemAlertUpdateOne) SetAcknowledged(v bool) *SystemAlertUpdateOne {
	_u.mutation.SetAcknowledged(v)
	return _u
}

// SetNillableAcknowledged sets the "acknowledged" field if the given value is not nil.
func (_u *SystemAlertUpdateOne) SetNillableAcknowledged(v *bool) *SystemAlertUpdateOne {
	if v != nil {
		_u.SetAcknowledged(*v)
	}
	return _u
}

// SetAcknowledgedAt sets the "acknowledged_at" field.
func (_u *SystemAlertUpdateOne) SetAcknowledgedAt(v time.Time) *SystemAlertUpdateOne {
	_u.mutation.SetAcknowledgedAt(v)
	return _u
}

// SetNillableAcknowledgedAt sets the "acknowledged_at" field if the given value is not nil.
func (_u *SystemAlertUpdateOne) SetNillableAcknowledgedAt(v *time.Time) *SystemAlertUpdateOne {
	if v != nil {
		_u.SetAcknowledgedAt(*v)
	}
	return _u
}

// ClearAcknowledgedAt clears the value of the "acknowledged_at" field.
func (_u *SystemAlertUpdateOne) ClearAcknowledgedAt() *SystemAlertUpdateOne {
	_u.mutation.ClearAcknowledgedAt()
	return _u
}

// SetResolved sets the "resolved" field.
func (_u *SystemAlertUpdateOne) SetResolved(v bool) *SystemAlertUpdateOne {
	_u.mutation.SetResolved(v)
	return _u
}

// SetNillableResolved sets the "resolved" field if the given value is not nil.
func (_u *SystemAlertUpdateOne) SetNillableResolved(v *bool) *SystemAlertUpdateOne {
	if v != nil {
		_u.SetResolved(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *SystemAlertUpdateOne) SetResolvedAt(v time.Time) *SystemAlertUpdateOne {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *SystemAlertUpdateOne) SetNillableResolvedAt(v *time.Time) *SystemAlertUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *SystemAlertUpdateOne) ClearResolvedAt() *SystemAlertUpdateOne {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the SystemAlertMutation object of the builder.
func (_u *SystemAlertUpdateOne) Mutation() *SystemAlertMutation {
	return _u.mutation
}

// Where appends a list predicates to the SystemAlertUpdate builder.
func (_u *SystemAlertUpdateOne) Where(ps ...predicate.SystemAlert) *SystemAlertUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SystemAlertUpdateOne) Select(field string, fields ...string) *SystemAlertUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SystemAlert entity.
func (_u *SystemAlertUpdateOne) Save(ctx context.Context) (*SystemAlert, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SystemAlertUpdateOne) SaveX(ctx context.Context) *SystemAlert {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SystemAlertUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SystemAlertUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SystemAlertUpdateOne) check() error {
	if v, ok := _u.mutation.Severity(); ok {
		if err := systemalert.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "SystemAlert.severity": %w`, err)}
		}
	}
	return nil
}

func (_u *SystemAlertUpdateOne) sqlSave(ctx context.Context) (_node *SystemAlert, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(systemalert.Table, systemalert.Columns, sqlgraph.NewFieldSpec(systemalert.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SystemAlert.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, systemalert.FieldID)
		for _, f := range fields {
			if !systemalert.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != systemalert.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(systemalert.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(systemalert.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(systemalert.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(systemalert.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceID(); ok {
		_spec.SetField(systemalert.FieldSourceID, field.TypeString, value)
	}
	if _u.mutation.SourceIDCleared() {
		_spec.ClearField(systemalert.FieldSourceID, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(systemalert.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(systemalert.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Acknowledged(); ok {
		_spec.SetField(systemalert.FieldAcknowledged, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AcknowledgedAt(); ok {
		_spec.SetField(systemalert.FieldAcknowledgedAt, field.TypeTime, value)
	}
	if _u.mutation.AcknowledgedAtCleared() {
		_spec.ClearField(systemalert.FieldAcknowledgedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Resolved(); ok {
		_spec.SetField(systemalert.FieldResolved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(systemalert.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(systemalert.FieldResolvedAt, field.TypeTime)
	}
	_node = &SystemAlert{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{systemalert.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
