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
	"github.com/maestro-run/maestro/ent/errorlog"
)

// ErrorLogCreate is the builder for creating a ErrorLog entity.
type ErrorLogCreate struct {
	config
	mutation *ErrorLogMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSource sets the "source" field.
func (_c *ErrorLogCreate) SetSource(v string) *ErrorLogCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetMessage sets the "message" field.
func (_c *ErrorLogCreate) SetMessage(v string) *ErrorLogCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetDetails sets the "details" field.
func (_c *ErrorLogCreate) SetDetails(v map[string]interface{}) *ErrorLogCreate {
	_c.mutation.SetDetails(v)
	return _c
}

// SetTaskID sets the "task_id" field.
func (_c *ErrorLogCreate) SetTaskID(v string) *ErrorLogCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_c *ErrorLogCreate) SetNillableTaskID(v *string) *ErrorLogCreate {
	if v != nil {
		_c.SetTaskID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ErrorLogCreate) SetCreatedAt(v time.Time) *ErrorLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ErrorLogCreate) SetNillableCreatedAt(v *time.Time) *ErrorLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ErrorLogCreate) SetID(v string) *ErrorLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ErrorLogMutation object of the builder.
func (_c *ErrorLogCreate) Mutation() *ErrorLogMutation {
	return _c.mutation
}

// Save creates the ErrorLog in the database.
func (_c *ErrorLogCreate) Save(ctx context.Context) (*ErrorLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ErrorLogCreate) SaveX(ctx context.Context) *ErrorLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ErrorLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ErrorLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ErrorLogCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := errorlog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ErrorLogCreate) check() error {
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "ErrorLog.source"`)}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "ErrorLog.message"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ErrorLog.created_at"`)}
	}
	return nil
}

func (_c *ErrorLogCreate) sqlSave(ctx context.Context) (*ErrorLog, error) {
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
			return nil, fmt.Errorf("unexpected ErrorLog.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ErrorLogCreate) createSpec() (*ErrorLog, *sqlgraph.CreateSpec) {
	var (
		_node = &ErrorLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(errorlog.Table, sqlgraph.NewFieldSpec(errorlog.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(errorlog.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(errorlog.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.Details(); ok {
		_spec.SetField(errorlog.FieldDetails, field.TypeJSON, value)
		_node.Details = value
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(errorlog.FieldTaskID, field.TypeString, value)
		_node.TaskID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(errorlog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ErrorLog.Create().
//		SetSource(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ErrorLogUpsert) {
//			SetSource(v+v).
//		}).
//		Exec(ctx)
func (_c *ErrorLogCreate) OnConflict(opts ...sql.ConflictOption) *ErrorLogUpsertOne {
	_c.conflict = opts
	return &ErrorLogUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ErrorLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ErrorLogCreate) OnConflictColumns(columns ...string) *ErrorLogUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ErrorLogUpsertOne{
		create: _c,
	}
}

type (
	// ErrorLogUpsertOne is the builder for "upsert"-ing
	//  one ErrorLog node.
	ErrorLogUpsertOne struct {
		create *ErrorLogCreate
	}

	// ErrorLogUpsert is the "OnConflict" setter.
	ErrorLogUpsert struct {
		*sql.UpdateSet
	}
)

// SetDetails sets the "details" field.
func (u *ErrorLogUpsert) SetDetails(v map[string]interface{}) *ErrorLogUpsert {
	u.Set(errorlog.FieldDetails, v)
	return u
}

// UpdateDetails sets the "details" field to the value that was provided on create.
func (u *ErrorLogUpsert) UpdateDetails() *ErrorLogUpsert {
	u.SetExcluded(errorlog.FieldDetails)
	return u
}

// ClearDetails clears the value of the "details" field.
func (u *ErrorLogUpsert) ClearDetails() *ErrorLogUpsert {
	u.SetNull(errorlog.FieldDetails)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ErrorLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(errorlog.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ErrorLogUpsertOne) UpdateNewValues() *ErrorLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(errorlog.FieldID)
		}
		if _, exists := u.create.mutation.Source(); exists {
			s.SetIgnore(errorlog.FieldSource)
		}
		if _, exists := u.create.mutation.Message(); exists {
			s.SetIgnore(errorlog.FieldMessage)
		}
		if _, exists := u.create.mutation.TaskID(); exists {
			s.SetIgnore(errorlog.FieldTaskID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(errorlog.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ErrorLog.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ErrorLogUpsertOne) Ignore() *ErrorLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ErrorLogUpsertOne) DoNothing() *ErrorLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ErrorLogCreate.OnConflict
// documentation for more info.
func (u *ErrorLogUpsertOne) Update(set func(*ErrorLogUpsert)) *ErrorLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ErrorLogUpsert{UpdateSet: update})
	}))
	return u
}

// SetDetails sets the "details" field.
func (u *ErrorLogUpsertOne) SetDetails(v map[string]interface{}) *ErrorLogUpsertOne {
	return u.Update(func(s *ErrorLogUpsert) {
		s.SetDetails(v)
	})
}

// UpdateDetails sets the "details" field to the value that was provided on create.
func (u *ErrorLogUpsertOne) UpdateDetails() *ErrorLogUpsertOne {
	return u.Update(func(s *ErrorLogUpsert) {
		s.UpdateDetails()
	})
}

// ClearDetails clears the value of the "details" field.
func (u *ErrorLogUpsertOne) ClearDetails() *ErrorLogUpsertOne {
	return u.Update(func(s *ErrorLogUpsert) {
		s.ClearDetails()
	})
}

// Exec executes the query.
func (u *ErrorLogUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ErrorLogCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ErrorLogUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ErrorLogUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ErrorLogUpsertOne.ID is not supported by MySQL driver. Use ErrorLogUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ErrorLogUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ErrorLogCreateBulk is the builder for creating many ErrorLog entities in bulk.
type ErrorLogCreateBulk struct {
	config
	err      error
	builders []*ErrorLogCreate
	conflict []sql.ConflictOption
}

// Save creates the ErrorLog entities in the database.
func (_c *ErrorLogCreateBulk) Save(ctx context.Context) ([]*ErrorLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ErrorLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ErrorLogMutation)
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
func (_c *ErrorLogCreateBulk) SaveX(ctx context.Context) []*ErrorLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ErrorLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ErrorLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ErrorLog.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ErrorLogUpsert) {
//			SetSource(v+v).
//		}).
//		Exec(ctx)
func (_c *ErrorLogCreateBulk) OnConflict(opts ...sql.ConflictOption) *ErrorLogUpsertBulk {
	_c.conflict = opts
	return &ErrorLogUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ErrorLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ErrorLogCreateBulk) OnConflictColumns(columns ...string) *ErrorLogUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ErrorLogUpsertBulk{
		create: _c,
	}
}

// ErrorLogUpsertBulk is the builder for "upsert"-ing
// a bulk of ErrorLog nodes.
type ErrorLogUpsertBulk struct {
	create *ErrorLogCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ErrorLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(errorlog.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ErrorLogUpsertBulk) UpdateNewValues() *ErrorLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(errorlog.FieldID)
			}
			if _, exists := b.mutation.Source(); exists {
				s.SetIgnore(errorlog.FieldSource)
			}
			if _, exists := b.mutation.Message(); exists {
				s.SetIgnore(errorlog.FieldMessage)
			}
			if _, exists := b.mutation.TaskID(); exists {
				s.SetIgnore(errorlog.FieldTaskID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(errorlog.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ErrorLog.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ErrorLogUpsertBulk) Ignore() *ErrorLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ErrorLogUpsertBulk) DoNothing() *ErrorLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ErrorLogCreateBulk.OnConflict
// documentation for more info.
func (u *ErrorLogUpsertBulk) Update(set func(*ErrorLogUpsert)) *ErrorLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ErrorLogUpsert{UpdateSet: update})
	}))
	return u
}

// SetDetails sets the "details" field.
func (u *ErrorLogUpsertBulk) SetDetails(v map[string]interface{}) *ErrorLogUpsertBulk {
	return u.Update(func(s *ErrorLogUpsert) {
		s.SetDetails(v)
	})
}

// UpdateDetails sets the "details" field to the value that was provided on create.
func (u *ErrorLogUpsertBulk) UpdateDetails() *ErrorLogUpsertBulk {
	return u.Update(func(s *ErrorLogUpsert) {
		s.UpdateDetails()
	})
}

// ClearDetails clears the value of the "details" field.
func (u *ErrorLogUpsertBulk) ClearDetails() *ErrorLogUpsertBulk {
	return u.Update(func(s *ErrorLogUpsert) {
		s.ClearDetails()
	})
}

// Exec executes the query.
func (u *ErrorLogUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ErrorLogCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ErrorLogCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ErrorLogUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
