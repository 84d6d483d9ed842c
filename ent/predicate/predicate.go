// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Credential is the predicate function for credential builders.
type Credential func(*sql.Selector)

// Preference is the predicate function for preference builders.
type Preference func(*sql.Selector)

// QuizSnapshot is the predicate function for quizsnapshot builders.
type QuizSnapshot func(*sql.Selector)
