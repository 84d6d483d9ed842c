// Code generated by ent, DO NOT EDIT.

package quizsnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the quizsnapshot type in the database.
	Label = "quiz_snapshot"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldQuizKey holds the string denoting the quiz_key field in the database.
	FieldQuizKey = "quiz_key"
	// FieldAnswers holds the string denoting the answers field in the database.
	FieldAnswers = "answers"
	// FieldQuestionIndex holds the string denoting the question_index field in the database.
	FieldQuestionIndex = "question_index"
	// FieldRemainingSecs holds the string denoting the remaining_secs field in the database.
	FieldRemainingSecs = "remaining_secs"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the quizsnapshot in the database.
	Table = "quiz_snapshots"
)

// Columns holds all SQL columns for quizsnapshot fields.
var Columns = []string{
	FieldID,
	FieldQuizKey,
	FieldAnswers,
	FieldQuestionIndex,
	FieldRemainingSecs,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// QuizKeyValidator is a validator for the "quiz_key" field. It is called by the builders before save.
	QuizKeyValidator func(string) error
	// DefaultQuestionIndex holds the default value on creation for the "question_index" field.
	DefaultQuestionIndex int
	// DefaultRemainingSecs holds the default value on creation for the "remaining_secs" field.
	DefaultRemainingSecs int
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the QuizSnapshot queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByQuizKey orders the results by the quiz_key field.
func ByQuizKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuizKey, opts...).ToFunc()
}

// ByQuestionIndex orders the results by the question_index field.
func ByQuestionIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionIndex, opts...).ToFunc()
}

// ByRemainingSecs orders the results by the remaining_secs field.
func ByRemainingSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRemainingSecs, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
