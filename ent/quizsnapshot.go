// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Adarsh-oo7/pscprep/ent/quizsnapshot"
)

// QuizSnapshot is the model entity for the QuizSnapshot schema.
type QuizSnapshot struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Exam or topic identifier the attempt belongs to
	QuizKey string `json:"quiz_key,omitempty"`
	// Sparse question-id to option-key map
	Answers map[string]string `json:"answers,omitempty"`
	// Question the learner was on
	QuestionIndex int `json:"question_index,omitempty"`
	// Countdown value at save time
	RemainingSecs int `json:"remaining_secs,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuizSnapshot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case quizsnapshot.FieldAnswers:
			values[i] = new([]byte)
		case quizsnapshot.FieldID, quizsnapshot.FieldQuestionIndex, quizsnapshot.FieldRemainingSecs:
			values[i] = new(sql.NullInt64)
		case quizsnapshot.FieldQuizKey:
			values[i] = new(sql.NullString)
		case quizsnapshot.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuizSnapshot fields.
func (_m *QuizSnapshot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case quizsnapshot.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case quizsnapshot.FieldQuizKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field quiz_key", values[i])
			} else if value.Valid {
				_m.QuizKey = value.String
			}
		case quizsnapshot.FieldAnswers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field answers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Answers); err != nil {
					return fmt.Errorf("unmarshal field answers: %w", err)
				}
			}
		case quizsnapshot.FieldQuestionIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field question_index", values[i])
			} else if value.Valid {
				_m.QuestionIndex = int(value.Int64)
			}
		case quizsnapshot.FieldRemainingSecs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field remaining_secs", values[i])
			} else if value.Valid {
				_m.RemainingSecs = int(value.Int64)
			}
		case quizsnapshot.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuizSnapshot.
// This includes values selected through modifiers, order, etc.
func (_m *QuizSnapshot) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this QuizSnapshot.
// Note that you need to call QuizSnapshot.Unwrap() before calling this method if this QuizSnapshot
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuizSnapshot) Update() *QuizSnapshotUpdateOne {
	return NewQuizSnapshotClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuizSnapshot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuizSnapshot) Unwrap() *QuizSnapshot {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuizSnapshot is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuizSnapshot) String() string {
	var builder strings.Builder
	builder.WriteString("QuizSnapshot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("quiz_key=")
	builder.WriteString(_m.QuizKey)
	builder.WriteString(", ")
	builder.WriteString("answers=")
	builder.WriteString(fmt.Sprintf("%v", _m.Answers))
	builder.WriteString(", ")
	builder.WriteString("question_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionIndex))
	builder.WriteString(", ")
	builder.WriteString("remaining_secs=")
	builder.WriteString(fmt.Sprintf("%v", _m.RemainingSecs))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// QuizSnapshots is a parsable slice of QuizSnapshot.
type QuizSnapshots []*QuizSnapshot
