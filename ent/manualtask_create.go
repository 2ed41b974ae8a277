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
	"github.com/maestro-run/maestro/ent/manualtask"
)

// ManualTaskCreate is the builder for creating a ManualTask entity.
type ManualTaskCreate struct {
	config
	mutation *ManualTaskMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCategory sets the "category" field.
func (_c *ManualTaskCreate) SetCategory(v string) *ManualTaskCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *ManualTaskCreate) SetTitle(v string) *ManualTaskCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ManualTaskCreate) SetDescription(v string) *ManualTaskCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *ManualTaskCreate) SetPriority(v int) *ManualTaskCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *ManualTaskCreate) SetNillablePriority(v *int) *ManualTaskCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetSourceSystem sets the "source_system" field.
func (_c *ManualTaskCreate) SetSourceSystem(v string) *ManualTaskCreate {
	_c.mutation.SetSourceSystem(v)
	return _c
}

// SetSourceID sets the "source_id" field.
func (_c *ManualTaskCreate) SetSourceID(v string) *ManualTaskCreate {
	_c.mutation.SetSourceID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ManualTaskCreate) SetStatus(v manualtask.Status) *ManualTaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ManualTaskCreate) SetNillableStatus(v *manualtask.Status) *ManualTaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *ManualTaskCreate) SetMetadata(v map[string]interface{}) *ManualTaskCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ManualTaskCreate) SetCreatedAt(v time.Time) *ManualTaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ManualTaskCreate) SetNillableCreatedAt(v *time.Time) *ManualTaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetResolvedAt sets the "resolved_at" field.
func (_c *ManualTaskCreate) SetResolvedAt(v time.Time) *ManualTaskCreate {
	_c.mutation.SetResolvedAt(v)
	return _c
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_c *ManualTaskCreate) SetNillableResolvedAt(v *time.Time) *ManualTaskCreate {
	if v != nil {
		_c.SetResolvedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ManualTaskCreate) SetID(v string) *ManualTaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ManualTaskMutation object of the builder.
func (_c *ManualTaskCreate) Mutation() *ManualTaskMutation {
	return _c.mutation
}

// Save creates the ManualTask in the database.
func (_c *ManualTaskCreate) Save(ctx context.Context) (*ManualTask, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ManualTaskCreate) SaveX(ctx context.Context) *ManualTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ManualTaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ManualTaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ManualTaskCreate) defaults() {
	if _, ok := _c.mutation.Priority(); !ok {
		v := manualtask.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := manualtask.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := manualtask.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ManualTaskCreate) check() error {
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "ManualTask.category"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "ManualTask.title"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "ManualTask.description"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "ManualTask.priority"`)}
	}
	if _, ok := _c.mutation.SourceSystem(); !ok {
		return &ValidationError{Name: "source_system", err: errors.New(`ent: missing required field "ManualTask.source_system"`)}
	}
	if _, ok := _c.mutation.SourceID(); !ok {
		return &ValidationError{Name: "source_id", err: errors.New(`ent: missing required field "ManualTask.source_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ManualTask.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := manualtask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ManualTask.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ManualTask.created_at"`)}
	}
	return nil
}

func (_c *ManualTaskCreate) sqlSave(ctx context.Context) (*ManualTask, error) {
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
			return nil, fmt.Errorf("unexpected ManualTask.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ManualTaskCreate) createSpec() (*ManualTask, *sqlgraph.CreateSpec) {
	var (
		_node = &ManualTask{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(manualtask.Table, sqlgraph.NewFieldSpec(manualtask.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(manualtask.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(manualtask.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(manualtask.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(manualtask.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.SourceSystem(); ok {
		_spec.SetField(manualtask.FieldSourceSystem, field.TypeString, value)
		_node.SourceSystem = value
	}
	if value, ok := _c.mutation.SourceID(); ok {
		_spec.SetField(manualtask.FieldSourceID, field.TypeString, value)
		_node.SourceID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(manualtask.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(manualtask.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(manualtask.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ResolvedAt(); ok {
		_spec.SetField(manualtask.FieldResolvedAt, field.TypeTime, value)
		_node.ResolvedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ManualTask.Create().
//		SetCategory(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ManualTaskUpsert) {
//			SetCategory(v+v).
//		}).
//		Exec(ctx)
func (_c *ManualTaskCreate) OnConflict(opts ...sql.ConflictOption) *ManualTaskUpsertOne {
	_c.conflict = opts
	return &ManualTaskUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ManualTask.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ManualTaskCreate) OnConflictColumns(columns ...string) *ManualTaskUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ManualTaskUpsertOne{
		create: _c,
	}
}

type (
	// ManualTaskUpsertOne is the builder for "upsert"-ing
	//  one ManualTask node.
	ManualTaskUpsertOne struct {
		create *ManualTaskCreate
	}

	// ManualTaskUpsert is the "OnConflict" setter.
	ManualTaskUpsert struct {
		*sql.UpdateSet
	}
)

// SetTitle sets the "title" field.
func (u *ManualTaskUpsert) SetTitle(v string) *ManualTaskUpsert {
	u.Set(manualtask.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ManualTaskUpsert) UpdateTitle() *ManualTaskUpsert {
	u.SetExcluded(manualtask.FieldTitle)
	return u
}

// SetDescription sets the "description" field.
func (u *ManualTaskUpsert) SetDescription(v string) *ManualTaskUpsert {
	u.Set(manualtask.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ManualTaskUpsert) UpdateDescription() *ManualTaskUpsert {
	u.SetExcluded(manualtask.FieldDescription)
	return u
}

// SetPriority sets the "priority" field.
func (u *ManualTaskUpsert) SetPriority(v int) *ManualTaskUpsert {
	u.Set(manualtask.FieldPriority, v)
	return u
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *ManualTaskUpsert) UpdatePriority() *ManualTaskUpsert {
	u.SetExcluded(manualtask.FieldPriority)
	return u
}

// AddPriority adds v to the "priority" field.
func (u *ManualTaskUpsert) AddPriority(v int) *ManualTaskUpsert {
	u.Add(manualtask.FieldPriority, v)
	return u
}

// SetStatus sets the "status" field.
func (u *ManualTaskUpsert) SetStatus(v manualtask.Status) *ManualTaskUpsert {
	u.Set(manualtask.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ManualTaskUpsert) UpdateStatus() *ManualTaskUpsert {
	u.SetExcluded(manualtask.FieldStatus)
	return u
}

// SetMetadata sets the "metadata" field.
func (u *ManualTaskUpsert) SetMetadata(v map[string]interface{}) *ManualTaskUpsert {
	u.Set(manualtask.FieldMetadata, v)
	return u
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *ManualTaskUpsert) UpdateMetadata() *ManualTaskUpsert {
	u.SetExcluded(manualtask.FieldMetadata)
	return u
}

// ClearMetadata clears the value of the "metadata" field.
func (u *ManualTaskUpsert) ClearMetadata() *ManualTaskUpsert {
	u.SetNull(manualtask.FieldMetadata)
	return u
}

// SetResolvedAt sets the "resolved_at" field.
func (u *ManualTaskUpsert) SetResolvedAt(v time.Time) *ManualTaskUpsert {
	u.Set(manualtask.FieldResolvedAt, v)
	return u
}

// UpdateResolvedAt sets the "resolved_at" field to the value that was provided on create.
func (u *ManualTaskUpsert) UpdateResolvedAt() *ManualTaskUpsert {
	u.SetExcluded(manualtask.FieldResolvedAt)
	return u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (u *ManualTaskUpsert) ClearResolvedAt() *ManualTaskUpsert {
	u.SetNull(manualtask.FieldResolvedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ManualTask.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(manualtask.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ManualTaskUpsertOne) UpdateNewValues() *ManualTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(manualtask.FieldID)
		}
		if _, exists := u.create.mutation.Category(); exists {
			s.SetIgnore(manualtask.FieldCategory)
		}
		if _, exists := u.create.mutation.SourceSystem(); exists {
			s.SetIgnore(manualtask.FieldSourceSystem)
		}
		if _, exists := u.create.mutation.SourceID(); exists {
			s.SetIgnore(manualtask.FieldSourceID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(manualtask.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ManualTask.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ManualTaskUpsertOne) Ignore() *ManualTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ManualTaskUpsertOne) DoNothing() *ManualTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ManualTaskCreate.OnConflict
// documentation for more info.
func (u *ManualTaskUpsertOne) Update(set func(*ManualTaskUpsert)) *ManualTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ManualTaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *ManualTaskUpsertOne) SetTitle(v string) *ManualTaskUpsertOne {
	return u.Update(func(s *ManualTaskUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ManualTaskUpsertOne) UpdateTitle() *ManualTaskUpsertOne {
	return u.Update(func(s *ManualTaskUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *ManualTaskUpsertOne) SetDescription(v string) *ManualTaskUpsertOne {
	return u.Update(func(s *ManualTaskUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ManualTaskUpsertOne) UpdateDescription() *ManualTaskUpsertOne {
	return u.Update(func(s *ManualTaskUpsert) {
		s.UpdateDescription()
	})
}

// SetPriority sets the "priority" field.
func (u *ManualTaskUpsertOne) SetPriority(v int) *ManualTaskUpsertOne {
	return u.Update(func(s *ManualTaskUpsert) {
		s.SetPriority(v)
	})
}

// AddPriority adds v to the "priority" field.
func (u *ManualTaskUpsertOne) AddPriority(v int) *ManualTaskUpsertOne {
	return u.Update(func(s *ManualTaskUpsert) {
		s.AddPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *ManualTaskUpsertOne) UpdatePriority() *ManualTaskUpsertOne {
	return u.Update(func(s *ManualTaskUpsert) {
		s.UpdatePriority()
	})
}

// SetStatus sets the "status" field.
func (u *ManualTaskUpsertOne) SetStatus(v manualtask.Status) *ManualTaskUpsertOne {
	return u.Update(func(s *ManualTaskUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ManualTaskUpsertOne) UpdateStatus() *ManualTaskUpsertOne {
	return u.Update(func(s *ManualTaskUpsert) {
		s.UpdateStatus()
	})
}

// SetMetadata sets the "metadata" field.
func (u *ManualTaskUpsertOne) SetMetadata(v map[string]interface{}) *ManualTaskUpsertOne {
	return u.Update(func(s *ManualTaskUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *ManualTaskUpsertOne) UpdateMetadata() *ManualTaskUpsertOne {
	return u.Update(func(s *ManualTaskUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *ManualTaskUpsertOne) ClearMetadata() *ManualTaskUpsertOne {
	return u.Update(func(s *ManualTaskUpsert) {
		s.ClearMetadata()
	})
}

// SetResolvedAt sets the "resolved_at" field.
func (u *ManualTaskUpsertOne) SetResolvedAt(v time.Time) *ManualTaskUpsertOne {
	return u.Update(func(s *ManualTaskUpsert) {
		s.SetResolvedAt(v)
	})
}

// UpdateResolvedAt sets the "resolved_at" field to the value that was provided on create.
func (u *ManualTaskUpsertOne) UpdateResolvedAt() *ManualTaskUpsertOne {
	return u.Update(func(s *ManualTaskUpsert) {
		s.UpdateResolvedAt()
	})
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (u *ManualTaskUpsertOne) ClearResolvedAt() *ManualTaskUpsertOne {
	return u.Update(func(s *ManualTaskUpsert) {
		s.ClearResolvedAt()
	})
}

// Exec executes the query.
func (u *ManualTaskUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ManualTaskCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ManualTaskUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ManualTaskUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ManualTaskUpsertOne.ID is not supported by MySQL driver. Use ManualTaskUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ManualTaskUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ManualTaskCreateBulk is the builder for creating many ManualTask entities in bulk.
type ManualTaskCreateBulk struct {
	config
	err      error
	builders []*ManualTaskCreate
	conflict []sql.ConflictOption
}

// Save creates the ManualTask entities in the database.
func (_c *ManualTaskCreateBulk) Save(ctx context.Context) ([]*ManualTask, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ManualTask, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ManualTaskMutation)
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
func (_c *ManualTaskCreateBulk) SaveX(ctx context.Context) []*ManualTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ManualTaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ManualTaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ManualTask.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ManualTaskUpsert) {
//			SetCategory(v+v).
//		}).
//		Exec(ctx)
func (_c *ManualTaskCreateBulk) OnConflict(opts ...sql.ConflictOption) *ManualTaskUpsertBulk {
	_c.conflict = opts
	return &ManualTaskUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ManualTask.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ManualTaskCreateBulk) OnConflictColumns(columns ...string) *ManualTaskUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ManualTaskUpsertBulk{
		create: _c,
	}
}

// ManualTaskUpsertBulk is the builder for "upsert"-ing
// a bulk of ManualTask nodes.
type ManualTaskUpsertBulk struct {
	create *ManualTaskCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ManualTask.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(manualtask.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ManualTaskUpsertBulk) UpdateNewValues() *ManualTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(manualtask.FieldID)
			}
			if _, exists := b.mutation.Category(); exists {
				s.SetIgnore(manualtask.FieldCategory)
			}
			if _, exists := b.mutation.SourceSystem(); exists {
				s.SetIgnore(manualtask.FieldSourceSystem)
			}
			if _, exists := b.mutation.SourceID(); exists {
				s.SetIgnore(manualtask.FieldSourceID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(manualtask.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ManualTask.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ManualTaskUpsertBulk) Ignore() *ManualTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ManualTaskUpsertBulk) DoNothing() *ManualTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ManualTaskCreateBulk.OnConflict
// documentation for more info.
func (u *ManualTaskUpsertBulk) Update(set func(*ManualTaskUpsert)) *ManualTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ManualTaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *ManualTaskUpsertBulk) SetTitle(v string) *ManualTaskUpsertBulk {
	return u.Update(func(s *ManualTaskUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ManualTaskUpsertBulk) UpdateTitle() *ManualTaskUpsertBulk {
	return u.Update(func(s *ManualTaskUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *ManualTaskUpsertBulk) SetDescription(v string) *ManualTaskUpsertBulk {
	return u.Update(func(s *ManualTaskUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ManualTaskUpsertBulk) UpdateDescription() *ManualTaskUpsertBulk {
	return u.Update(func(s *ManualTaskUpsert) {
		s.UpdateDescription()
	})
}

// SetPriority sets the "priority" field.
func (u *ManualTaskUpsertBulk) SetPriority(v int) *ManualTaskUpsertBulk {
	return u.Update(func(s *ManualTaskUpsert) {
		s.SetPriority(v)
	})
}

// AddPriority adds v to the "priority" field.
func (u *ManualTaskUpsertBulk) AddPriority(v int) *ManualTaskUpsertBulk {
	return u.Update(func(s *ManualTaskUpsert) {
		s.AddPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *ManualTaskUpsertBulk) UpdatePriority() *ManualTaskUpsertBulk {
	return u.Update(func(s *ManualTaskUpsert) {
		s.UpdatePriority()
	})
}

// SetStatus sets the "status" field.
func (u *ManualTaskUpsertBulk) SetStatus(v manualtask.Status) *ManualTaskUpsertBulk {
	return u.Update(func(s *ManualTaskUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ManualTaskUpsertBulk) UpdateStatus() *ManualTaskUpsertBulk {
	return u.Update(func(s *ManualTaskUpsert) {
		s.UpdateStatus()
	})
}

// SetMetadata sets the "metadata" field.
func (u *ManualTaskUpsertBulk) SetMetadata(v map[string]interface{}) *ManualTaskUpsertBulk {
	return u.Update(func(s *ManualTaskUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *ManualTaskUpsertBulk) UpdateMetadata() *ManualTaskUpsertBulk {
	return u.Update(func(s *ManualTaskUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *ManualTaskUpsertBulk) ClearMetadata() *ManualTaskUpsertBulk {
	return u.Update(func(s *ManualTaskUpsert) {
		s.ClearMetadata()
	})
}

// SetResolvedAt sets the "resolved_at" field.
func (u *ManualTaskUpsertBulk) SetResolvedAt(v time.Time) *ManualTaskUpsertBulk {
	return u.Update(func(s *ManualTaskUpsert) {
		s.SetResolvedAt(v)
	})
}

// UpdateResolvedAt sets the "resolved_at" field to the value that was provided on create.
func (u *ManualTaskUpsertBulk) UpdateResolvedAt() *ManualTaskUpsertBulk {
	return u.Update(func(s *ManualTaskUpsert) {
		s.UpdateResolvedAt()
	})
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (u *ManualTaskUpsertBulk) ClearResolvedAt() *ManualTaskUpsertBulk {
	return u.Update(func(s *ManualTaskUpsert) {
		s.ClearResolvedAt()
	})
}

// Exec executes the query.
func (u *ManualTaskUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ManualTaskCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ManualTaskCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ManualTaskUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
