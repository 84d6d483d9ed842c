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
	"github.com/Adarsh-oo7/pscprep/ent/predicate"
	"github.com/Adarsh-oo7/pscprep/ent/quizsnapshot"
)

// QuizSnapshotUpdate is the builder for updating QuizSnapshot entities.
type QuizSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *QuizSnapshotMutation
}

// Where appends a list predicates to the QuizSnapshotUpdate builder.
func (_u *QuizSnapshotUpdate) Where(ps ...predicate.QuizSnapshot) *QuizSnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuizKey sets the "quiz_key" field.
func (_u *QuizSnapshotUpdate) SetQuizKey(v string) *QuizSnapshotUpdate {
	_u.mutation.SetQuizKey(v)
	return _u
}

// SetNillableQuizKey sets the "quiz_key" field if the given value is not nil.
func (_u *QuizSnapshotUpdate) SetNillableQuizKey(v *string) *QuizSnapshotUpdate {
	if v != nil {
		_u.SetQuizKey(*v)
	}
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *QuizSnapshotUpdate) SetAnswers(v map[string]string) *QuizSnapshotUpdate {
	_u.mutation.SetAnswers(v)
	return _u
}

// SetQuestionIndex sets the "question_index" field.
func (_u *QuizSnapshotUpdate) SetQuestionIndex(v int) *QuizSnapshotUpdate {
	_u.mutation.ResetQuestionIndex()
	_u.mutation.SetQuestionIndex(v)
	return _u
}

// SetNillableQuestionIndex sets the "question_index" field if the given value is not nil.
func (_u *QuizSnapshotUpdate) SetNillableQuestionIndex(v *int) *QuizSnapshotUpdate {
	if v != nil {
		_u.SetQuestionIndex(*v)
	}
	return _u
}

// AddQuestionIndex adds value to the "question_index" field.
func (_u *QuizSnapshotUpdate) AddQuestionIndex(v int) *QuizSnapshotUpdate {
	_u.mutation.AddQuestionIndex(v)
	return _u
}

// SetRemainingSecs sets the "remaining_secs" field.
func (_u *QuizSnapshotUpdate) SetRemainingSecs(v int) *QuizSnapshotUpdate {
	_u.mutation.ResetRemainingSecs()
	_u.mutation.SetRemainingSecs(v)
	return _u
}

// SetNillableRemainingSecs sets the "remaining_secs" field if the given value is not nil.
func (_u *QuizSnapshotUpdate) SetNillableRemainingSecs(v *int) *QuizSnapshotUpdate {
	if v != nil {
		_u.SetRemainingSecs(*v)
	}
	return _u
}

// AddRemainingSecs adds value to the "remaining_secs" field.
func (_u *QuizSnapshotUpdate) AddRemainingSecs(v int) *QuizSnapshotUpdate {
	_u.mutation.AddRemainingSecs(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QuizSnapshotUpdate) SetUpdatedAt(v time.Time) *QuizSnapshotUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the QuizSnapshotMutation object of the builder.
func (_u *QuizSnapshotUpdate) Mutation() *QuizSnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizSnapshotUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizSnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QuizSnapshotUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := quizsnapshot.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizSnapshotUpdate) check() error {
	if v, ok := _u.mutation.QuizKey(); ok {
		if err := quizsnapshot.QuizKeyValidator(v); err != nil {
			return &ValidationError{Name: "quiz_key", err: fmt.Errorf(`ent: validator failed for field "QuizSnapshot.quiz_key": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizSnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizsnapshot.Table, quizsnapshot.Columns, sqlgraph.NewFieldSpec(quizsnapshot.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuizKey(); ok {
		_spec.SetField(quizsnapshot.FieldQuizKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(quizsnapshot.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.QuestionIndex(); ok {
		_spec.SetField(quizsnapshot.FieldQuestionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionIndex(); ok {
		_spec.AddField(quizsnapshot.FieldQuestionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RemainingSecs(); ok {
		_spec.SetField(quizsnapshot.FieldRemainingSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRemainingSecs(); ok {
		_spec.AddField(quizsnapshot.FieldRemainingSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(quizsnapshot.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizSnapshotUpdateOne is the builder for updating a single QuizSnapshot entity.
type QuizSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizSnapshotMutation
}

// SetQuizKey sets the "quiz_key" field.
func (_u *QuizSnapshotUpdateOne) SetQuizKey(v string) *QuizSnapshotUpdateOne {
	_u.mutation.SetQuizKey(v)
	return _u
}

// SetNillableQuizKey sets the "quiz_key" field if the given value is not nil.
func (_u *QuizSnapshotUpdateOne) SetNillableQuizKey(v *string) *QuizSnapshotUpdateOne {
	if v != nil {
		_u.SetQuizKey(*v)
	}
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *QuizSnapshotUpdateOne) SetAnswers(v map[string]string) *QuizSnapshotUpdateOne {
	_u.mutation.SetAnswers(v)
	return _u
}

// SetQuestionIndex sets the "question_index" field.
func (_u *QuizSnapshotUpdateOne) SetQuestionIndex(v int) *QuizSnapshotUpdateOne {
	_u.mutation.ResetQuestionIndex()
	_u.mutation.SetQuestionIndex(v)
	return _u
}

// SetNillableQuestionIndex sets the "question_index" field if the given value is not nil.
func (_u *QuizSnapshotUpdateOne) SetNillableQuestionIndex(v *int) *QuizSnapshotUpdateOne {
	if v != nil {
		_u.SetQuestionIndex(*v)
	}
	return _u
}

// AddQuestionIndex adds value to the "question_index" field.
func (_u *QuizSnapshotUpdateOne) AddQuestionIndex(v int) *QuizSnapshotUpdateOne {
	_u.mutation.AddQuestionIndex(v)
	return _u
}

// SetRemainingSecs sets the "remaining_secs" field.
func (_u *QuizSnapshotUpdateOne) SetRemainingSecs(v int) *QuizSnapshotUpdateOne {
	_u.mutation.ResetRemainingSecs()
	_u.mutation.SetRemainingSecs(v)
	return _u
}

// SetNillableRemainingSecs sets the "remaining_secs" field if the given value is not nil.
func (_u *QuizSnapshotUpdateOne) SetNillableRemainingSecs(v *int) *QuizSnapshotUpdateOne {
	if v != nil {
		_u.SetRemainingSecs(*v)
	}
	return _u
}

// AddRemainingSecs adds value to the "remaining_secs" field.
func (_u *QuizSnapshotUpdateOne) AddRemainingSecs(v int) *QuizSnapshotUpdateOne {
	_u.mutation.AddRemainingSecs(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QuizSnapshotUpdateOne) SetUpdatedAt(v time.Time) *QuizSnapshotUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the QuizSnapshotMutation object of the builder.
func (_u *QuizSnapshotUpdateOne) Mutation() *QuizSnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuizSnapshotUpdate builder.
func (_u *QuizSnapshotUpdateOne) Where(ps ...predicate.QuizSnapshot) *QuizSnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizSnapshotUpdateOne) Select(field string, fields ...string) *QuizSnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizSnapshot entity.
func (_u *QuizSnapshotUpdateOne) Save(ctx context.Context) (*QuizSnapshot, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizSnapshotUpdateOne) SaveX(ctx context.Context) *QuizSnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QuizSnapshotUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := quizsnapshot.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizSnapshotUpdateOne) check() error {
	if v, ok := _u.mutation.QuizKey(); ok {
		if err := quizsnapshot.QuizKeyValidator(v); err != nil {
			return &ValidationError{Name: "quiz_key", err: fmt.Errorf(`ent: validator failed for field "QuizSnapshot.quiz_key": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *QuizSnapshot, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizsnapshot.Table, quizsnapshot.Columns, sqlgraph.NewFieldSpec(quizsnapshot.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizsnapshot.FieldID)
		for _, f := range fields {
			if !quizsnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizsnapshot.FieldID {
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
	if value, ok := _u.mutation.QuizKey(); ok {
		_spec.SetField(quizsnapshot.FieldQuizKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(quizsnapshot.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.QuestionIndex(); ok {
		_spec.SetField(quizsnapshot.FieldQuestionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionIndex(); ok {
		_spec.AddField(quizsnapshot.FieldQuestionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RemainingSecs(); ok {
		_spec.SetField(quizsnapshot.FieldRemainingSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRemainingSecs(); ok {
		_spec.AddField(quizsnapshot.FieldRemainingSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(quizsnapshot.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &QuizSnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
