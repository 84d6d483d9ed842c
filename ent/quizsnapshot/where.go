// Code generated by ent, DO NOT EDIT.

package quizsnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/Adarsh-oo7/pscprep/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QuizSnapshot {
	return predicate.QuizSnapshot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QuizSnapshot {
	return predicate.QuizSnapshot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QuizSnapshot {
	return predicate.QuizSnapshot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QuizSnapshot {
	return predicate.QuizSnapshot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QuizSnapshot {
	return predicate.QuizSnapshot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QuizSnapshot {
	return predicate.QuizSnapshot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QuizSnapshot {
	return predicate.QuizSnapshot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QuizSnapshot {
	return predicate.QuizSnapshot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QuizSnapshot {
	return predicate.QuizSnapshot(sql.FieldLTE(FieldID, id))
}

// QuizKey applies equality check predicate on the "quiz_key" field. It's identical to QuizKeyEQ.
func QuizKey(v string) predicate.QuizSnapshot {
	return predicate.QuizSnapshot(sql.FieldEQ(FieldQuizKey, v))
}

// QuestionIndex applies equality check predicate on the "question_index" field. It's identical to QuestionIndexEQ.
func QuestionIndex(v int) predicate.QuizSnapshot {
	return predicate.QuizSnapshot(sql.FieldEQ(FieldQuestionIndex, v))
}

// RemainingSecs applies equality check predicate on the "remaining_secs" field. It's identical to RemainingSecsEQ.
func RemainingSecs(v int) predicate.QuizSnapshot {
	return predicate.QuizSnapshot(sql.FieldEQ(FieldRemainingSecs, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.QuizSnapshot {
	return predicate.QuizSnapshot(sql.FieldEQ(FieldUpdatedAt, v))
}

// QuizKeyEQ applies the EQ predicate on the "quiz_key" field.
func QuizKeyEQ(v string) predicate.QuizSnapshot {
	return predicate.QuizSnapshot(sql.FieldEQ(FieldQuizKey, v))
}

// QuizKeyNEQ applies the NEQ predicate on the "quiz_key" field.
func QuizKeyNEQ(v string) predicate.QuizSnapshot {
	return predicate.QuizSnapshot(sql.FieldNEQ(FieldQuizKey, v))
}

// QuizKeyIn applies the In predicate on the "quiz_key" field.
func QuizKeyIn(vs ...string) predicate.QuizSnapshot {
	return predicate.QuizSnapshot(sql.FieldIn(FieldQuizKey, vs...))
}

// QuizKeyNotIn applies the NotIn predicate on the "quiz_key" field.
func QuizKeyNotIn(vs ...string) predicate.QuizSnapshot {
	return predicate.QuizSnapshot(sql.FieldNotIn(FieldQuizKey, vs...))
}

// QuizKeyGT applies the GT predicate on the "quiz_key" field.
func QuizKeyGT(v string) predicate.QuizSnapshot {
	return predicate.QuizSnapshot(sql.FieldGT(FieldQuizKey, v))
}

// QuizKeyGTE applies the GTE predicate on the "quiz_key" field.
func QuizKeyGTE(v string) predicate.QuizSnapshot {
	return predicate.QuizSnapshot(sql.FieldGTE(FieldQuizKey, v))
}

// QuizKeyLT applies the LT predicate on the "quiz_key" field.
func QuizKeyLT(v string) predicate.QuizSnapshot {
	return predicate.QuizSnapshot(sql.FieldLT(FieldQuizKey, v))
}

// QuizKeyLTE applies the LTE predicate on the "quiz_key" field.
func QuizKeyLTE(v string) predicate.QuizSnapshot {
	return predicate.QuizSnapshot(sql.FieldLTE(FieldQuizKey, v))
}

// QuizKeyContains applies the Contains predicate on the "quiz_key" field.
func QuizKeyContains(v string) predicate.QuizSnapshot {
	return predicate.QuizSnapshot(sql.FieldContains(FieldQuizKey, v))
}

// QuizKeyHasPrefix applies the HasPrefix predicate on the "quiz_key" field.
func QuizKeyHasPrefix(v string) predicate.QuizSnapshot {
	return predicate.QuizSnapshot(sql.FieldHasPrefix(FieldQuizKey, v))
}

// QuizKeyHasSuffix applies the HasSuffix predicate on the "quiz_key" field.
func QuizKeyHasSuffix(v string) predicate.QuizSnapshot {
	return predicate.QuizSnapshot(sql.FieldHasSuffix(FieldQuizKey, v))
}

// QuizKeyEqualFold applies the EqualFold predicate on the "quiz_key" field.
func QuizKeyEqualFold(v string) predicate.QuizSnapshot {
	return predicate.QuizSnapshot(sql.FieldEqualFold(FieldQuizKey, v))
}

// QuizKeyContainsFold applies the ContainsFold predicate on the "quiz_key" field.
func QuizKeyContainsFold(v string) predicate.QuizSnapshot {
	return predicate.QuizSnapshot(sql.FieldContainsFold(FieldQuizKey, v))
}

// QuestionIndexEQ applies the EQ predicate on the "question_index" field.
func QuestionIndexEQ(v int) predicate.QuizSnapshot {
	return predicate.QuizSnapshot(sql.FieldEQ(FieldQuestionIndex, v))
}

// QuestionIndexNEQ applies the NEQ predicate on the "question_index" field.
func QuestionIndexNEQ(v int) predicate.QuizSnapshot {
	return predicate.QuizSnapshot(sql.FieldNEQ(FieldQuestionIndex, v))
}

// QuestionIndexIn applies the In predicate on the "question_index" field.
func QuestionIndexIn(vs ...int) predicate.QuizSnapshot {
	return predicate.QuizSnapshot(sql.FieldIn(FieldQuestionIndex, vs...))
}

// QuestionIndexNotIn applies the NotIn predicate on the "question_index" field.
func QuestionIndexNotIn(vs ...int) predicate.QuizSnapshot {
	return predicate.QuizSnapshot(sql.FieldNotIn(FieldQuestionIndex, vs...))
}

// QuestionIndexGT applies the GT predicate on the "question_index" field.
func QuestionIndexGT(v int) predicate.QuizSnapshot {
	return predicate.QuizSnapshot(sql.FieldGT(FieldQuestionIndex, v))
}

// QuestionIndexGTE applies the GTE predicate on the "question_index" field.
func QuestionIndexGTE(v int) predicate.QuizSnapshot {
	return predicate.QuizSnapshot(sql.FieldGTE(FieldQuestionIndex, v))
}

// QuestionIndexLT applies the LT predicate on the "question_index" field.
func QuestionIndexLT(v int) predicate.QuizSnapshot {
	return predicate.QuizSnapshot(sql.FieldLT(FieldQuestionIndex, v))
}

// QuestionIndexLTE applies the LTE predicate on the "question_index" field.
func QuestionIndexLTE(v int) predicate.QuizSnapshot {
	return predicate.QuizSnapshot(sql.FieldLTE(FieldQuestionIndex, v))
}

// RemainingSecsEQ applies the EQ predicate on the "remaining_secs" field.
func RemainingSecsEQ(v int) predicate.QuizSnapshot {
	return predicate.QuizSnapshot(sql.FieldEQ(FieldRemainingSecs, v))
}

// RemainingSecsNEQ applies the NEQ predicate on the "remaining_secs" field.
func RemainingSecsNEQ(v int) predicate.QuizSnapshot {
	return predicate.QuizSnapshot(sql.FieldNEQ(FieldRemainingSecs, v))
}

// RemainingSecsIn applies the In predicate on the "remaining_secs" field.
func RemainingSecsIn(vs ...int) predicate.QuizSnapshot {
	return predicate.QuizSnapshot(sql.FieldIn(FieldRemainingSecs, vs...))
}

// RemainingSecsNotIn applies the NotIn predicate on the "remaining_secs" field.
func RemainingSecsNotIn(vs ...int) predicate.QuizSnapshot {
	return predicate.QuizSnapshot(sql.FieldNotIn(FieldRemainingSecs, vs...))
}

// RemainingSecsGT applies the GT predicate on the "remaining_secs" field.
func RemainingSecsGT(v int) predicate.QuizSnapshot {
	return predicate.QuizSnapshot(sql.FieldGT(FieldRemainingSecs, v))
}

// RemainingSecsGTE applies the GTE predicate on the "remaining_secs" field.
func RemainingSecsGTE(v int) predicate.QuizSnapshot {
	return predicate.QuizSnapshot(sql.FieldGTE(FieldRemainingSecs, v))
}

// RemainingSecsLT applies the LT predicate on the "remaining_secs" field.
func RemainingSecsLT(v int) predicate.QuizSnapshot {
	return predicate.QuizSnapshot(sql.FieldLT(FieldRemainingSecs, v))
}

// RemainingSecsLTE applies the LTE predicate on the "remaining_secs" field.
func RemainingSecsLTE(v int) predicate.QuizSnapshot {
	return predicate.QuizSnapshot(sql.FieldLTE(FieldRemainingSecs, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.QuizSnapshot {
	return predicate.QuizSnapshot(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.QuizSnapshot {
	return predicate.QuizSnapshot(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.QuizSnapshot {
	return predicate.QuizSnapshot(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.QuizSnapshot {
	return predicate.QuizSnapshot(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.QuizSnapshot {
	return predicate.QuizSnapshot(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.QuizSnapshot {
	return predicate.QuizSnapshot(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.QuizSnapshot {
	return predicate.QuizSnapshot(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.QuizSnapshot {
	return predicate.QuizSnapshot(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuizSnapshot) predicate.QuizSnapshot {
	return predicate.QuizSnapshot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuizSnapshot) predicate.QuizSnapshot {
	return predicate.QuizSnapshot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuizSnapshot) predicate.QuizSnapshot {
	return predicate.QuizSnapshot(sql.NotPredicates(p))
}
