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
	"github.com/maestro-run/maestro/ent/task"
	"github.com/maestro-run/maestro/ent/taskdecomposition"
)

// TaskDecompositionCreate is the builder for creating a TaskDecomposition entity.
type TaskDecompositionCreate struct {
	config
	mutation *TaskDecompositionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTaskID sets the "task_id" field.
func (_c *TaskDecompositionCreate) SetTaskID(v string) *TaskDecompositionCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *TaskDecompositionCreate) SetDescription(v string) *TaskDecompositionCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetStrategy sets the "strategy" field.
func (_c *TaskDecompositionCreate) SetStrategy(v string) *TaskDecompositionCreate {
	_c.mutation.SetStrategy(v)
	return _c
}

// SetTotalComplexity sets the "total_complexity" field.
func (_c *TaskDecompositionCreate) SetTotalComplexity(v int) *TaskDecompositionCreate {
	_c.mutation.SetTotalComplexity(v)
	return _c
}

// SetMaxParallelism sets the "max_parallelism" field.
func (_c *TaskDecompositionCreate) SetMaxParallelism(v int) *TaskDecompositionCreate {
	_c.mutation.SetMaxParallelism(v)
	return _c
}

// SetCriticalPath sets the "critical_path" field.
func (_c *TaskDecompositionCreate) SetCriticalPath(v []string) *TaskDecompositionCreate {
	_c.mutation.SetCriticalPath(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TaskDecompositionCreate) SetCreatedAt(v time.Time) *TaskDecompositionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TaskDecompositionCreate) SetNillableCreatedAt(v *time.Time) *TaskDecompositionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TaskDecompositionCreate) SetID(v string) *TaskDecompositionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTask sets the "task" edge to the Task entity.
func (_c *TaskDecompositionCreate) SetTask(v *Task) *TaskDecompositionCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the TaskDecompositionMutation object of the builder.
func (_c *TaskDecompositionCreate) Mutation() *TaskDecompositionMutation {
	return _c.mutation
}

// Save creates the TaskDecomposition in the database.
func (_c *TaskDecompositionCreate) Save(ctx context.Context) (*TaskDecomposition, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskDecompositionCreate) SaveX(ctx context.Context) *TaskDecomposition {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskDecompositionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskDecompositionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskDecompositionCreate) defaults() {
	if _, ok := _c.mutation.CriticalPath(); !ok {
		v := taskdecomposition.DefaultCriticalPath
		_c.mutation.SetCriticalPath(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := taskdecomposition.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskDecompositionCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "TaskDecomposition.task_id"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "TaskDecomposition.description"`)}
	}
	if _, ok := _c.mutation.Strategy(); !ok {
		return &ValidationError{Name: "strategy", err: errors.New(`ent: missing required field "TaskDecomposition.strategy"`)}
	}
	if _, ok := _c.mutation.TotalComplexity(); !ok {
		return &ValidationError{Name: "total_complexity", err: errors.New(`ent: missing required field "TaskDecomposition.total_complexity"`)}
	}
	if _, ok := _c.mutation.MaxParallelism(); !ok {
		return &ValidationError{Name: "max_parallelism", err: errors.New(`ent: missing required field "TaskDecomposition.max_parallelism"`)}
	}
	if _, ok := _c.mutation.CriticalPath(); !ok {
		return &ValidationError{Name: "critical_path", err: errors.New(`ent: missing required field "TaskDecomposition.critical_path"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TaskDecomposition.created_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "TaskDecomposition.task"`)}
	}
	return nil
}

func (_c *TaskDecompositionCreate) sqlSave(ctx context.Context) (*TaskDecomposition, error) {
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
			return nil, fmt.Errorf("unexpected TaskDecomposition.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TaskDecompositionCreate) createSpec() (*TaskDecomposition, *sqlgraph.CreateSpec) {
	var (
		_node = &TaskDecomposition{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(taskdecomposition.Table, sqlgraph.NewFieldSpec(taskdecomposition.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(taskdecomposition.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Strategy(); ok {
		_spec.SetField(taskdecomposition.FieldStrategy, field.TypeString, value)
		_node.Strategy = value
	}
	if value, ok := _c.mutation.TotalComplexity(); ok {
		_spec.SetField(taskdecomposition.FieldTotalComplexity, field.TypeInt, value)
		_node.TotalComplexity = value
	}
	if value, ok := _c.mutation.MaxParallelism(); ok {
		_spec.SetField(taskdecomposition.FieldMaxParallelism, field.TypeInt, value)
		_node.MaxParallelism = value
	}
	if value, ok := _c.mutation.CriticalPath(); ok {
		_spec.SetField(taskdecomposition.FieldCriticalPath, field.TypeJSON, value)
		_node.CriticalPath = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(taskdecomposition.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   taskdecomposition.TaskTable,
			Columns: []string{taskdecomposition.TaskColumn},
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
//	client.TaskDecomposition.Create().
//		SetTaskID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskDecompositionUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskDecompositionCreate) OnConflict(opts ...sql.ConflictOption) *TaskDecompositionUpsertOne {
	_c.conflict = opts
	return &TaskDecompositionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TaskDecomposition.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskDecompositionCreate) OnConflictColumns(columns ...string) *TaskDecompositionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskDecompositionUpsertOne{
		create: _c,
	}
}

type (
	// TaskDecompositionUpsertOne is the builder for "upsert"-ing
	//  one TaskDecomposition node.
	TaskDecompositionUpsertOne struct {
		create *TaskDecompositionCreate
	}

	// TaskDecompositionUpsert is the "OnConflict" setter.
	TaskDecompositionUpsert struct {
		*sql.UpdateSet
	}
)

// SetDescription sets the "description" field.
func (u *TaskDecompositionUpsert) SetDescription(v string) *TaskDecompositionUpsert {
	u.Set(taskdecomposition.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TaskDecompositionUpsert) UpdateDescription() *TaskDecompositionUpsert {
	u.SetExcluded(taskdecomposition.FieldDescription)
	return u
}

// SetStrategy sets the "strategy" field.
func (u *TaskDecompositionUpsert) SetStrategy(v string) *TaskDecompositionUpsert {
	u.Set(taskdecomposition.FieldStrategy, v)
	return u
}

// UpdateStrategy sets the "strategy" field to the value that was provided on create.
func (u *TaskDecompositionUpsert) UpdateStrategy() *TaskDecompositionUpsert {
	u.SetExcluded(taskdecomposition.FieldStrategy)
	return u
}

// SetTotalComplexity sets the "total_complexity" field.
func (u *TaskDecompositionUpsert) SetTotalComplexity(v int) *TaskDecompositionUpsert {
	u.Set(taskdecomposition.FieldTotalComplexity, v)
	return u
}

// UpdateTotalComplexity sets the "total_complexity" field to the value that was provided on create.
func (u *TaskDecompositionUpsert) UpdateTotalComplexity() *TaskDecompositionUpsert {
	u.SetExcluded(taskdecomposition.FieldTotalComplexity)
	return u
}

// AddTotalComplexity adds v to the "total_complexity" field.
func (u *TaskDecompositionUpsert) AddTotalComplexity(v int) *TaskDecompositionUpsert {
	u.Add(taskdecomposition.FieldTotalComplexity, v)
	return u
}

// SetMaxParallelism sets the "max_parallelism" field.
func (u *TaskDecompositionUpsert) SetMaxParallelism(v int) *TaskDecompositionUpsert {
	u.Set(taskdecomposition.FieldMaxParallelism, v)
	return u
}

// UpdateMaxParallelism sets the "max_parallelism" field to the value that was provided on create.
func (u *TaskDecompositionUpsert) UpdateMaxParallelism() *TaskDecompositionUpsert {
	u.SetExcluded(taskdecomposition.FieldMaxParallelism)
	return u
}

// AddMaxParallelism adds v to the "max_parallelism" field.
func (u *TaskDecompositionUpsert) AddMaxParallelism(v int) *TaskDecompositionUpsert {
	u.Add(taskdecomposition.FieldMaxParallelism, v)
	return u
}

// SetCriticalPath sets the "critical_path" field.
func (u *TaskDecompositionUpsert) SetCriticalPath(v []string) *TaskDecompositionUpsert {
	u.Set(taskdecomposition.FieldCriticalPath, v)
	return u
}

// UpdateCriticalPath sets the "critical_path" field to the value that was provided on create.
func (u *TaskDecompositionUpsert) UpdateCriticalPath() *TaskDecompositionUpsert {
	u.SetExcluded(taskdecomposition.FieldCriticalPath)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.TaskDecomposition.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(taskdecomposition.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TaskDecompositionUpsertOne) UpdateNewValues() *TaskDecompositionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(taskdecomposition.FieldID)
		}
		if _, exists := u.create.mutation.TaskID(); exists {
			s.SetIgnore(taskdecomposition.FieldTaskID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(taskdecomposition.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TaskDecomposition.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TaskDecompositionUpsertOne) Ignore() *TaskDecompositionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskDecompositionUpsertOne) DoNothing() *TaskDecompositionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskDecompositionCreate.OnConflict
// documentation for more info.
func (u *TaskDecompositionUpsertOne) Update(set func(*TaskDecompositionUpsert)) *TaskDecompositionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskDecompositionUpsert{UpdateSet: update})
	}))
	return u
}

// SetDescription sets the "description" field.
func (u *TaskDecompositionUpsertOne) SetDescription(v string) *TaskDecompositionUpsertOne {
	return u.Update(func(s *TaskDecompositionUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TaskDecompositionUpsertOne) UpdateDescription() *TaskDecompositionUpsertOne {
	return u.Update(func(s *TaskDecompositionUpsert) {
		s.UpdateDescription()
	})
}

// SetStrategy sets the "strategy" field.
func (u *TaskDecompositionUpsertOne) SetStrategy(v string) *TaskDecompositionUpsertOne {
	return u.Update(func(s *TaskDecompositionUpsert) {
		s.SetStrategy(v)
	})
}

// UpdateStrategy sets the "strategy" field to the value that was provided on create.
func (u *TaskDecompositionUpsertOne) UpdateStrategy() *TaskDecompositionUpsertOne {
	return u.Update(func(s *TaskDecompositionUpsert) {
		s.UpdateStrategy()
	})
}

// SetTotalComplexity sets the "total_complexity" field.
func (u *TaskDecompositionUpsertOne) SetTotalComplexity(v int) *TaskDecompositionUpsertOne {
	return u.Update(func(s *TaskDecompositionUpsert) {
		s.SetTotalComplexity(v)
	})
}

// AddTotalComplexity adds v to the "total_complexity" field.
func (u *TaskDecompositionUpsertOne) AddTotalComplexity(v int) *TaskDecompositionUpsertOne {
	return u.Update(func(s *TaskDecompositionUpsert) {
		s.AddTotalComplexity(v)
	})
}

// UpdateTotalComplexity sets the "total_complexity" field to the value that was provided on create.
func (u *TaskDecompositionUpsertOne) UpdateTotalComplexity() *TaskDecompositionUpsertOne {
	return u.Update(func(s *TaskDecompositionUpsert) {
		s.UpdateTotalComplexity()
	})
}

// SetMaxParallelism sets the "max_parallelism" field.
func (u *TaskDecompositionUpsertOne) SetMaxParallelism(v int) *TaskDecompositionUpsertOne {
	return u.Update(func(s *TaskDecompositionUpsert) {
		s.SetMaxParallelism(v)
	})
}

// AddMaxParallelism adds v to the "max_parallelism" field.
func (u *TaskDecompositionUpsertOne) AddMaxParallelism(v int) *TaskDecompositionUpsertOne {
	return u.Update(func(s *TaskDecompositionUpsert) {
		s.AddMaxParallelism(v)
	})
}

// UpdateMaxParallelism sets the "max_parallelism" field to the value that was provided on create.
func (u *TaskDecompositionUpsertOne) UpdateMaxParallelism() *TaskDecompositionUpsertOne {
	return u.Update(func(s *TaskDecompositionUpsert) {
		s.UpdateMaxParallelism()
	})
}

// SetCriticalPath sets the "critical_path" field.
func (u *TaskDecompositionUpsertOne) SetCriticalPath(v []string) *TaskDecompositionUpsertOne {
	return u.Update(func(s *TaskDecompositionUpsert) {
		s.SetCriticalPath(v)
	})
}

// UpdateCriticalPath sets the "critical_path" field to the value that was provided on create.
func (u *TaskDecompositionUpsertOne) UpdateCriticalPath() *TaskDecompositionUpsertOne {
	return u.Update(func(s *TaskDecompositionUpsert) {
		s.UpdateCriticalPath()
	})
}

// Exec executes the query.
func (u *TaskDecompositionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskDecompositionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskDecompositionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TaskDecompositionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TaskDecompositionUpsertOne.ID is not supported by MySQL driver. Use TaskDecompositionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TaskDecompositionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TaskDecompositionCreateBulk is the builder for creating many TaskDecomposition entities in bulk.
type TaskDecompositionCreateBulk struct {
	config
	err      error
	builders []*TaskDecompositionCreate
	conflict []sql.ConflictOption
}

// Save creates the TaskDecomposition entities in the database.
func (_c *TaskDecompositionCreateBulk) Save(ctx context.Context) ([]*TaskDecomposition, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TaskDecomposition, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskDecompositionMutation)
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
func (_c *TaskDecompositionCreateBulk) SaveX(ctx context.Context) []*TaskDecomposition {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskDecompositionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskDecompositionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TaskDecomposition.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskDecompositionUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskDecompositionCreateBulk) OnConflict(opts ...sql.ConflictOption) *TaskDecompositionUpsertBulk {
	_c.conflict = opts
	return &TaskDecompositionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TaskDecomposition.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskDecompositionCreateBulk) OnConflictColumns(columns ...string) *TaskDecompositionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskDecompositionUpsertBulk{
		create: _c,
	}
}

// TaskDecompositionUpsertBulk is the builder for "upsert"-ing
// a bulk of TaskDecomposition nodes.
type TaskDecompositionUpsertBulk struct {
	create *TaskDecompositionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TaskDecomposition.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(taskdecomposition.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TaskDecompositionUpsertBulk) UpdateNewValues() *TaskDecompositionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(taskdecomposition.FieldID)
			}
			if _, exists := b.mutation.TaskID(); exists {
				s.SetIgnore(taskdecomposition.FieldTaskID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(taskdecomposition.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TaskDecomposition.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TaskDecompositionUpsertBulk) Ignore() *TaskDecompositionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskDecompositionUpsertBulk) DoNothing() *TaskDecompositionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskDecompositionCreateBulk.OnConflict
// documentation for more info.
func (u *TaskDecompositionUpsertBulk) Update(set func(*TaskDecompositionUpsert)) *TaskDecompositionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskDecompositionUpsert{UpdateSet: update})
	}))
	return u
}

// SetDescription sets the "description" field.
func (u *TaskDecompositionUpsertBulk) SetDescription(v string) *TaskDecompositionUpsertBulk {
	return u.Update(func(s *TaskDecompositionUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TaskDecompositionUpsertBulk) UpdateDescription() *TaskDecompositionUpsertBulk {
	return u.Update(func(s *TaskDecompositionUpsert) {
		s.UpdateDescription()
	})
}

// SetStrategy sets the "strategy" field.
func (u *TaskDecompositionUpsertBulk) SetStrategy(v string) *TaskDecompositionUpsertBulk {
	return u.Update(func(s *TaskDecompositionUpsert) {
		s.SetStrategy(v)
	})
}

// UpdateStrategy sets the "strategy" field to the value that was provided on create.
func (u *TaskDecompositionUpsertBulk) UpdateStrategy() *TaskDecompositionUpsertBulk {
	return u.Update(func(s *TaskDecompositionUpsert) {
		s.UpdateStrategy()
	})
}

// SetTotalComplexity sets the "total_complexity" field.
func (u *TaskDecompositionUpsertBulk) SetTotalComplexity(v int) *TaskDecompositionUpsertBulk {
	return u.Update(func(s *TaskDecompositionUpsert) {
		s.SetTotalComplexity(v)
	})
}

// AddTotalComplexity adds v to the "total_complexity" field.
func (u *TaskDecompositionUpsertBulk) AddTotalComplexity(v int) *TaskDecompositionUpsertBulk {
	return u.Update(func(s *TaskDecompositionUpsert) {
		s.AddTotalComplexity(v)
	})
}

// UpdateTotalComplexity sets the "total_complexity" field to the value that was provided on create.
func (u *TaskDecompositionUpsertBulk) UpdateTotalComplexity() *TaskDecompositionUpsertBulk {
	return u.Update(func(s *TaskDecompositionUpsert) {
		s.UpdateTotalComplexity()
	})
}

// SetMaxParallelism sets the "max_parallelism" field.
func (u *TaskDecompositionUpsertBulk) SetMaxParallelism(v int) *TaskDecompositionUpsertBulk {
	return u.Update(func(s *TaskDecompositionUpsert) {
		s.SetMaxParallelism(v)
	})
}

// AddMaxParallelism adds v to the "max_parallelism" field.
func (u *TaskDecompositionUpsertBulk) AddMaxParallelism(v int) *TaskDecompositionUpsertBulk {
	return u.Update(func(s *TaskDecompositionUpsert) {
		s.AddMaxParallelism(v)
	})
}

// UpdateMaxParallelism sets the "max_parallelism" field to the value that was provided on create.
func (u *TaskDecompositionUpsertBulk) UpdateMaxParallelism() *TaskDecompositionUpsertBulk {
	return u.Update(func(s *TaskDecompositionUpsert) {
		s.UpdateMaxParallelism()
	})
}

// SetCriticalPath sets the "critical_path" field.
func (u *TaskDecompositionUpsertBulk) SetCriticalPath(v []string) *TaskDecompositionUpsertBulk {
	return u.Update(func(s *TaskDecompositionUpsert) {
		s.SetCriticalPath(v)
	})
}

// UpdateCriticalPath sets the "critical_path" field to the value that was provided on create.
func (u *TaskDecompositionUpsertBulk) UpdateCriticalPath() *TaskDecompositionUpsertBulk {
	return u.Update(func(s *TaskDecompositionUpsert) {
		s.UpdateCriticalPath()
	})
}

// Exec executes the query.
func (u *TaskDecompositionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TaskDecompositionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskDecompositionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskDecompositionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
