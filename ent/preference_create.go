// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Adarsh-oo7/pscprep/ent/preference"
)

// PreferenceCreate is the builder for creating a Preference entity.
type PreferenceCreate struct {
	config
	mutation *PreferenceMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetKey sets the "key" field.
func (_c *PreferenceCreate) SetKey(v string) *PreferenceCreate {
	_c.mutation.SetKey(v)
	return _c
}

// SetValue sets the "value" field.
func (_c *PreferenceCreate) SetValue(v string) *PreferenceCreate {
	_c.mutation.SetValue(v)
	return _c
}

// Mutation returns the PreferenceMutation object of the builder.
func (_c *PreferenceCreate) Mutation() *PreferenceMutation {
	return _c.mutation
}

// Save creates the Preference in the database.
func (_c *PreferenceCreate) Save(ctx context.Context) (*Preference, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PreferenceCreate) SaveX(ctx context.Context) *Preference {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PreferenceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PreferenceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PreferenceCreate) check() error {
	if _, ok := _c.mutation.Key(); !ok {
		return &ValidationError{Name: "key", err: errors.New(`ent: missing required field "Preference.key"`)}
	}
	if v, ok := _c.mutation.Key(); ok {
		if err := preference.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "Preference.key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "Preference.value"`)}
	}
	return nil
}

func (_c *PreferenceCreate) sqlSave(ctx context.Context) (*Preference, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PreferenceCreate) createSpec() (*Preference, *sqlgraph.CreateSpec) {
	var (
		_node = &Preference{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(preference.Table, sqlgraph.NewFieldSpec(preference.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Key(); ok {
		_spec.SetField(preference.FieldKey, field.TypeString, value)
		_node.Key = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(preference.FieldValue, field.TypeString, value)
		_node.Value = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Preference.Create().
//		SetKey(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PreferenceUpsert) {
//			SetKey(v+v).
//		}).
//		Exec(ctx)
func (_c *PreferenceCreate) OnConflict(opts ...sql.ConflictOption) *PreferenceUpsertOne {
	_c.conflict = opts
	return &PreferenceUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Preference.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PreferenceCreate) OnConflictColumns(columns ...string) *PreferenceUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PreferenceUpsertOne{
		create: _c,
	}
}

type (
	// PreferenceUpsertOne is the builder for "upsert"-ing
	//  one Preference node.
	PreferenceUpsertOne struct {
		create *PreferenceCreate
	}

	// PreferenceUpsert is the "OnConflict" setter.
	PreferenceUpsert struct {
		*sql.UpdateSet
	}
)

// SetKey sets the "key" field.
func (u *PreferenceUpsert) SetKey(v string) *PreferenceUpsert {
	u.Set(preference.FieldKey, v)
	return u
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *PreferenceUpsert) UpdateKey() *PreferenceUpsert {
	u.SetExcluded(preference.FieldKey)
	return u
}

// SetValue sets the "value" field.
func (u *PreferenceUpsert) SetValue(v string) *PreferenceUpsert {
	u.Set(preference.FieldValue, v)
	return u
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *PreferenceUpsert) UpdateValue() *PreferenceUpsert {
	u.SetExcluded(preference.FieldValue)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Preference.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PreferenceUpsertOne) UpdateNewValues() *PreferenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Preference.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PreferenceUpsertOne) Ignore() *PreferenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PreferenceUpsertOne) DoNothing() *PreferenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PreferenceCreate.OnConflict
// documentation for more info.
func (u *PreferenceUpsertOne) Update(set func(*PreferenceUpsert)) *PreferenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PreferenceUpsert{UpdateSet: update})
	}))
	return u
}

// SetKey sets the "key" field.
func (u *PreferenceUpsertOne) SetKey(v string) *PreferenceUpsertOne {
	return u.Update(func(s *PreferenceUpsert) {
		s.SetKey(v)
	})
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *PreferenceUpsertOne) UpdateKey() *PreferenceUpsertOne {
	return u.Update(func(s *PreferenceUpsert) {
		s.UpdateKey()
	})
}

// SetValue sets the "value" field.
func (u *PreferenceUpsertOne) SetValue(v string) *PreferenceUpsertOne {
	return u.Update(func(s *PreferenceUpsert) {
		s.SetValue(v)
	})
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *PreferenceUpsertOne) UpdateValue() *PreferenceUpsertOne {
	return u.Update(func(s *PreferenceUpsert) {
		s.UpdateValue()
	})
}

// Exec executes the query.
func (u *PreferenceUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PreferenceCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PreferenceUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PreferenceUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PreferenceUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PreferenceCreateBulk is the builder for creating many Preference entities in bulk.
type PreferenceCreateBulk struct {
	config
	err      error
	builders []*PreferenceCreate
	conflict []sql.ConflictOption
}

// Save creates the Preference entities in the database.
func (_c *PreferenceCreateBulk) Save(ctx context.Context) ([]*Preference, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Preference, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PreferenceMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *PreferenceCreateBulk) SaveX(ctx context.Context) []*Preference {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PreferenceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PreferenceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Preference.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PreferenceUpsert) {
//			SetKey(v+v).
//		}).
//		Exec(ctx)
func (_c *PreferenceCreateBulk) OnConflict(opts ...sql.ConflictOption) *PreferenceUpsertBulk {
	_c.conflict = opts
	return &PreferenceUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Preference.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PreferenceCreateBulk) OnConflictColumns(columns ...string) *PreferenceUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PreferenceUpsertBulk{
		create: _c,
	}
}

// PreferenceUpsertBulk is the builder for "upsert"-ing
// a bulk of Preference nodes.
type PreferenceUpsertBulk struct {
	create *PreferenceCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Preference.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PreferenceUpsertBulk) UpdateNewValues() *PreferenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Preference.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PreferenceUpsertBulk) Ignore() *PreferenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PreferenceUpsertBulk) DoNothing() *PreferenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PreferenceCreateBulk.OnConflict
// documentation for more info.
func (u *PreferenceUpsertBulk) Update(set func(*PreferenceUpsert)) *PreferenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PreferenceUpsert{UpdateSet: update})
	}))
	return u
}

// SetKey sets the "key" field.
func (u *PreferenceUpsertBulk) SetKey(v string) *PreferenceUpsertBulk {
	return u.Update(func(s *PreferenceUpsert) {
		s.SetKey(v)
	})
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *PreferenceUpsertBulk) UpdateKey() *PreferenceUpsertBulk {
	return u.Update(func(s *PreferenceUpsert) {
		s.UpdateKey()
	})
}

// SetValue sets the "value" field.
func (u *PreferenceUpsertBulk) SetValue(v string) *PreferenceUpsertBulk {
	return u.Update(func(s *PreferenceUpsert) {
		s.SetValue(v)
	})
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *PreferenceUpsertBulk) UpdateValue() *PreferenceUpsertBulk {
	return u.Update(func(s *PreferenceUpsert) {
		s.UpdateValue()
	})
}

// Exec executes the query.
func (u *PreferenceUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PreferenceCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PreferenceCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PreferenceUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
