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
	"github.com/Adarsh-oo7/pscprep/ent/quizsnapshot"
)

// QuizSnapshotCreate is the builder for creating a QuizSnapshot entity.
type QuizSnapshotCreate struct {
	config
	mutation *QuizSnapshotMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetQuizKey sets the "quiz_key" field.
func (_c *QuizSnapshotCreate) SetQuizKey(v string) *QuizSnapshotCreate {
	_c.mutation.SetQuizKey(v)
	return _c
}

// SetAnswers sets the "answers" field.
func (_c *QuizSnapshotCreate) SetAnswers(v map[string]string) *QuizSnapshotCreate {
	_c.mutation.SetAnswers(v)
	return _c
}

// SetQuestionIndex sets the "question_index" field.
func (_c *QuizSnapshotCreate) SetQuestionIndex(v int) *QuizSnapshotCreate {
	_c.mutation.SetQuestionIndex(v)
	return _c
}

// SetNillableQuestionIndex sets the "question_index" field if the given value is not nil.
func (_c *QuizSnapshotCreate) SetNillableQuestionIndex(v *int) *QuizSnapshotCreate {
	if v != nil {
		_c.SetQuestionIndex(*v)
	}
	return _c
}

// SetRemainingSecs sets the "remaining_secs" field.
func (_c *QuizSnapshotCreate) SetRemainingSecs(v int) *QuizSnapshotCreate {
	_c.mutation.SetRemainingSecs(v)
	return _c
}

// SetNillableRemainingSecs sets the "remaining_secs" field if the given value is not nil.
func (_c *QuizSnapshotCreate) SetNillableRemainingSecs(v *int) *QuizSnapshotCreate {
	if v != nil {
		_c.SetRemainingSecs(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *QuizSnapshotCreate) SetUpdatedAt(v time.Time) *QuizSnapshotCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *QuizSnapshotCreate) SetNillableUpdatedAt(v *time.Time) *QuizSnapshotCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the QuizSnapshotMutation object of the builder.
func (_c *QuizSnapshotCreate) Mutation() *QuizSnapshotMutation {
	return _c.mutation
}

// Save creates the QuizSnapshot in the database.
func (_c *QuizSnapshotCreate) Save(ctx context.Context) (*QuizSnapshot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuizSnapshotCreate) SaveX(ctx context.Context) *QuizSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizSnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizSnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuizSnapshotCreate) defaults() {
	if _, ok := _c.mutation.QuestionIndex(); !ok {
		v := quizsnapshot.DefaultQuestionIndex
		_c.mutation.SetQuestionIndex(v)
	}
	if _, ok := _c.mutation.RemainingSecs(); !ok {
		v := quizsnapshot.DefaultRemainingSecs
		_c.mutation.SetRemainingSecs(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := quizsnapshot.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuizSnapshotCreate) check() error {
	if _, ok := _c.mutation.QuizKey(); !ok {
		return &ValidationError{Name: "quiz_key", err: errors.New(`ent: missing required field "QuizSnapshot.quiz_key"`)}
	}
	if v, ok := _c.mutation.QuizKey(); ok {
		if err := quizsnapshot.QuizKeyValidator(v); err != nil {
			return &ValidationError{Name: "quiz_key", err: fmt.Errorf(`ent: validator failed for field "QuizSnapshot.quiz_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Answers(); !ok {
		return &ValidationError{Name: "answers", err: errors.New(`ent: missing required field "QuizSnapshot.answers"`)}
	}
	if _, ok := _c.mutation.QuestionIndex(); !ok {
		return &ValidationError{Name: "question_index", err: errors.New(`ent: missing required field "QuizSnapshot.question_index"`)}
	}
	if _, ok := _c.mutation.RemainingSecs(); !ok {
		return &ValidationError{Name: "remaining_secs", err: errors.New(`ent: missing required field "QuizSnapshot.remaining_secs"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "QuizSnapshot.updated_at"`)}
	}
	return nil
}

func (_c *QuizSnapshotCreate) sqlSave(ctx context.Context) (*QuizSnapshot, error) {
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

func (_c *QuizSnapshotCreate) createSpec() (*QuizSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &QuizSnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quizsnapshot.Table, sqlgraph.NewFieldSpec(quizsnapshot.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.QuizKey(); ok {
		_spec.SetField(quizsnapshot.FieldQuizKey, field.TypeString, value)
		_node.QuizKey = value
	}
	if value, ok := _c.mutation.Answers(); ok {
		_spec.SetField(quizsnapshot.FieldAnswers, field.TypeJSON, value)
		_node.Answers = value
	}
	if value, ok := _c.mutation.QuestionIndex(); ok {
		_spec.SetField(quizsnapshot.FieldQuestionIndex, field.TypeInt, value)
		_node.QuestionIndex = value
	}
	if value, ok := _c.mutation.RemainingSecs(); ok {
		_spec.SetField(quizsnapshot.FieldRemainingSecs, field.TypeInt, value)
		_node.RemainingSecs = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(quizsnapshot.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QuizSnapshot.Create().
//		SetQuizKey(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuizSnapshotUpsert) {
//			SetQuizKey(v+v).
//		}).
//		Exec(ctx)
func (_c *QuizSnapshotCreate) OnConflict(opts ...sql.ConflictOption) *QuizSnapshotUpsertOne {
	_c.conflict = opts
	return &QuizSnapshotUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QuizSnapshot.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuizSnapshotCreate) OnConflictColumns(columns ...string) *QuizSnapshotUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuizSnapshotUpsertOne{
		create: _c,
	}
}

type (
	// QuizSnapshotUpsertOne is the builder for "upsert"-ing
	//  one QuizSnapshot node.
	QuizSnapshotUpsertOne struct {
		create *QuizSnapshotCreate
	}

	// QuizSnapshotUpsert is the "OnConflict" setter.
	QuizSnapshotUpsert struct {
		*sql.UpdateSet
	}
)

// SetQuizKey sets the "quiz_key" field.
func (u *QuizSnapshotUpsert) SetQuizKey(v string) *QuizSnapshotUpsert {
	u.Set(quizsnapshot.FieldQuizKey, v)
	return u
}

// UpdateQuizKey sets the "quiz_key" field to the value that was provided on create.
func (u *QuizSnapshotUpsert) UpdateQuizKey() *QuizSnapshotUpsert {
	u.SetExcluded(quizsnapshot.FieldQuizKey)
	return u
}

// SetAnswers sets the "answers" field.
func (u *QuizSnapshotUpsert) SetAnswers(v map[string]string) *QuizSnapshotUpsert {
	u.Set(quizsnapshot.FieldAnswers, v)
	return u
}

// UpdateAnswers sets the "answers" field to the value that was provided on create.
func (u *QuizSnapshotUpsert) UpdateAnswers() *QuizSnapshotUpsert {
	u.SetExcluded(quizsnapshot.FieldAnswers)
	return u
}

// SetQuestionIndex sets the "question_index" field.
func (u *QuizSnapshotUpsert) SetQuestionIndex(v int) *QuizSnapshotUpsert {
	u.Set(quizsnapshot.FieldQuestionIndex, v)
	return u
}

// UpdateQuestionIndex sets the "question_index" field to the value that was provided on create.
func (u *QuizSnapshotUpsert) UpdateQuestionIndex() *QuizSnapshotUpsert {
	u.SetExcluded(quizsnapshot.FieldQuestionIndex)
	return u
}

// AddQuestionIndex adds v to the "question_index" field.
func (u *QuizSnapshotUpsert) AddQuestionIndex(v int) *QuizSnapshotUpsert {
	u.Add(quizsnapshot.FieldQuestionIndex, v)
	return u
}

// SetRemainingSecs sets the "remaining_secs" field.
func (u *QuizSnapshotUpsert) SetRemainingSecs(v int) *QuizSnapshotUpsert {
	u.Set(quizsnapshot.FieldRemainingSecs, v)
	return u
}

// UpdateRemainingSecs sets the "remaining_secs" field to the value that was provided on create.
func (u *QuizSnapshotUpsert) UpdateRemainingSecs() *QuizSnapshotUpsert {
	u.SetExcluded(quizsnapshot.FieldRemainingSecs)
	return u
}

// AddRemainingSecs adds v to the "remaining_secs" field.
func (u *QuizSnapshotUpsert) AddRemainingSecs(v int) *QuizSnapshotUpsert {
	u.Add(quizsnapshot.FieldRemainingSecs, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *QuizSnapshotUpsert) SetUpdatedAt(v time.Time) *QuizSnapshotUpsert {
	u.Set(quizsnapshot.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *QuizSnapshotUpsert) UpdateUpdatedAt() *QuizSnapshotUpsert {
	u.SetExcluded(quizsnapshot.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.QuizSnapshot.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *QuizSnapshotUpsertOne) UpdateNewValues() *QuizSnapshotUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QuizSnapshot.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *QuizSnapshotUpsertOne) Ignore() *QuizSnapshotUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuizSnapshotUpsertOne) DoNothing() *QuizSnapshotUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuizSnapshotCreate.OnConflict
// documentation for more info.
func (u *QuizSnapshotUpsertOne) Update(set func(*QuizSnapshotUpsert)) *QuizSnapshotUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuizSnapshotUpsert{UpdateSet: update})
	}))
	return u
}

// SetQuizKey sets the "quiz_key" field.
func (u *QuizSnapshotUpsertOne) SetQuizKey(v string) *QuizSnapshotUpsertOne {
	return u.Update(func(s *QuizSnapshotUpsert) {
		s.SetQuizKey(v)
	})
}

// UpdateQuizKey sets the "quiz_key" field to the value that was provided on create.
func (u *QuizSnapshotUpsertOne) UpdateQuizKey() *QuizSnapshotUpsertOne {
	return u.Update(func(s *QuizSnapshotUpsert) {
		s.UpdateQuizKey()
	})
}

// SetAnswers sets the "answers" field.
func (u *QuizSnapshotUpsertOne) SetAnswers(v map[string]string) *QuizSnapshotUpsertOne {
	return u.Update(func(s *QuizSnapshotUpsert) {
		s.SetAnswers(v)
	})
}

// UpdateAnswers sets the "answers" field to the value that was provided on create.
func (u *QuizSnapshotUpsertOne) UpdateAnswers() *QuizSnapshotUpsertOne {
	return u.Update(func(s *QuizSnapshotUpsert) {
		s.UpdateAnswers()
	})
}

// SetQuestionIndex sets the "question_index" field.
func (u *QuizSnapshotUpsertOne) SetQuestionIndex(v int) *QuizSnapshotUpsertOne {
	return u.Update(func(s *QuizSnapshotUpsert) {
		s.SetQuestionIndex(v)
	})
}

// AddQuestionIndex adds v to the "question_index" field.
func (u *QuizSnapshotUpsertOne) AddQuestionIndex(v int) *QuizSnapshotUpsertOne {
	return u.Update(func(s *QuizSnapshotUpsert) {
		s.AddQuestionIndex(v)
	})
}

// UpdateQuestionIndex sets the "question_index" field to the value that was provided on create.
func (u *QuizSnapshotUpsertOne) UpdateQuestionIndex() *QuizSnapshotUpsertOne {
	return u.Update(func(s *QuizSnapshotUpsert) {
		s.UpdateQuestionIndex()
	})
}

// SetRemainingSecs sets the "remaining_secs" field.
func (u *QuizSnapshotUpsertOne) SetRemainingSecs(v int) *QuizSnapshotUpsertOne {
	return u.Update(func(s *QuizSnapshotUpsert) {
		s.SetRemainingSecs(v)
	})
}

// AddRemainingSecs adds v to the "remaining_secs" field.
func (u *QuizSnapshotUpsertOne) AddRemainingSecs(v int) *QuizSnapshotUpsertOne {
	return u.Update(func(s *QuizSnapshotUpsert) {
		s.AddRemainingSecs(v)
	})
}

// UpdateRemainingSecs sets the "remaining_secs" field to the value that was provided on create.
func (u *QuizSnapshotUpsertOne) UpdateRemainingSecs() *QuizSnapshotUpsertOne {
	return u.Update(func(s *QuizSnapshotUpsert) {
		s.UpdateRemainingSecs()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *QuizSnapshotUpsertOne) SetUpdatedAt(v time.Time) *QuizSnapshotUpsertOne {
	return u.Update(func(s *QuizSnapshotUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *QuizSnapshotUpsertOne) UpdateUpdatedAt() *QuizSnapshotUpsertOne {
	return u.Update(func(s *QuizSnapshotUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *QuizSnapshotUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QuizSnapshotCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuizSnapshotUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *QuizSnapshotUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *QuizSnapshotUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// QuizSnapshotCreateBulk is the builder for creating many QuizSnapshot entities in bulk.
type QuizSnapshotCreateBulk struct {
	config
	err      error
	builders []*QuizSnapshotCreate
	conflict []sql.ConflictOption
}

// Save creates the QuizSnapshot entities in the database.
func (_c *QuizSnapshotCreateBulk) Save(ctx context.Context) ([]*QuizSnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuizSnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuizSnapshotMutation)
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
func (_c *QuizSnapshotCreateBulk) SaveX(ctx context.Context) []*QuizSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QuizSnapshot.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuizSnapshotUpsert) {
//			SetQuizKey(v+v).
//		}).
//		Exec(ctx)
func (_c *QuizSnapshotCreateBulk) OnConflict(opts ...sql.ConflictOption) *QuizSnapshotUpsertBulk {
	_c.conflict = opts
	return &QuizSnapshotUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QuizSnapshot.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuizSnapshotCreateBulk) OnConflictColumns(columns ...string) *QuizSnapshotUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuizSnapshotUpsertBulk{
		create: _c,
	}
}

// QuizSnapshotUpsertBulk is the builder for "upsert"-ing
// a bulk of QuizSnapshot nodes.
type QuizSnapshotUpsertBulk struct {
	create *QuizSnapshotCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.QuizSnapshot.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *QuizSnapshotUpsertBulk) UpdateNewValues() *QuizSnapshotUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QuizSnapshot.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *QuizSnapshotUpsertBulk) Ignore() *QuizSnapshotUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuizSnapshotUpsertBulk) DoNothing() *QuizSnapshotUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuizSnapshotCreateBulk.OnConflict
// documentation for more info.
func (u *QuizSnapshotUpsertBulk) Update(set func(*QuizSnapshotUpsert)) *QuizSnapshotUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuizSnapshotUpsert{UpdateSet: update})
	}))
	return u
}

// SetQuizKey sets the "quiz_key" field.
func (u *QuizSnapshotUpsertBulk) SetQuizKey(v string) *QuizSnapshotUpsertBulk {
	return u.Update(func(s *QuizSnapshotUpsert) {
		s.SetQuizKey(v)
	})
}

// UpdateQuizKey sets the "quiz_key" field to the value that was provided on create.
func (u *QuizSnapshotUpsertBulk) UpdateQuizKey() *QuizSnapshotUpsertBulk {
	return u.Update(func(s *QuizSnapshotUpsert) {
		s.UpdateQuizKey()
	})
}

// SetAnswers sets the "answers" field.
func (u *QuizSnapshotUpsertBulk) SetAnswers(v map[string]string) *QuizSnapshotUpsertBulk {
	return u.Update(func(s *QuizSnapshotUpsert) {
		s.SetAnswers(v)
	})
}

// UpdateAnswers sets the "answers" field to the value that was provided on create.
func (u *QuizSnapshotUpsertBulk) UpdateAnswers() *QuizSnapshotUpsertBulk {
	return u.Update(func(s *QuizSnapshotUpsert) {
		s.UpdateAnswers()
	})
}

// SetQuestionIndex sets the "question_index" field.
func (u *QuizSnapshotUpsertBulk) SetQuestionIndex(v int) *QuizSnapshotUpsertBulk {
	return u.Update(func(s *QuizSnapshotUpsert) {
		s.SetQuestionIndex(v)
	})
}

// AddQuestionIndex adds v to the "question_index" field.
func (u *QuizSnapshotUpsertBulk) AddQuestionIndex(v int) *QuizSnapshotUpsertBulk {
	return u.Update(func(s *QuizSnapshotUpsert) {
		s.AddQuestionIndex(v)
	})
}

// UpdateQuestionIndex sets the "question_index" field to the value that was provided on create.
func (u *QuizSnapshotUpsertBulk) UpdateQuestionIndex() *QuizSnapshotUpsertBulk {
	return u.Update(func(s *QuizSnapshotUpsert) {
		s.UpdateQuestionIndex()
	})
}

// SetRemainingSecs sets the "remaining_secs" field.
func (u *QuizSnapshotUpsertBulk) SetRemainingSecs(v int) *QuizSnapshotUpsertBulk {
	return u.Update(func(s *QuizSnapshotUpsert) {
		s.SetRemainingSecs(v)
	})
}

// AddRemainingSecs adds v to the "remaining_secs" field.
func (u *QuizSnapshotUpsertBulk) AddRemainingSecs(v int) *QuizSnapshotUpsertBulk {
	return u.Update(func(s *QuizSnapshotUpsert) {
		s.AddRemainingSecs(v)
	})
}

// UpdateRemainingSecs sets the "remaining_secs" field to the value that was provided on create.
func (u *QuizSnapshotUpsertBulk) UpdateRemainingSecs() *QuizSnapshotUpsertBulk {
	return u.Update(func(s *QuizSnapshotUpsert) {
		s.UpdateRemainingSecs()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *QuizSnapshotUpsertBulk) SetUpdatedAt(v time.Time) *QuizSnapshotUpsertBulk {
	return u.Update(func(s *QuizSnapshotUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *QuizSnapshotUpsertBulk) UpdateUpdatedAt() *QuizSnapshotUpsertBulk {
	return u.Update(func(s *QuizSnapshotUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *QuizSnapshotUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the QuizSnapshotCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QuizSnapshotCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuizSnapshotUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
