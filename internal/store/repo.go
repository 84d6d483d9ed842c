package store

import (
	"context"
	"time"
)

// Tokens is the stored credential pair.
type Tokens struct {
	Access  string
	Refresh string
}

// CredentialRepo manages the stored token pair. At most one pair is
// kept; saving replaces any previous one.
type CredentialRepo interface {
	// Save stores the token pair, replacing any existing one.
	Save(ctx context.Context, t Tokens) error

	// Load returns the stored token pair, or nil if none exists.
	Load(ctx context.Context) (*Tokens, error)

	// Clear deletes any stored tokens.
	Clear(ctx context.Context) error
}

// QuizProgress is the saved form of an in-progress attempt.
type QuizProgress struct {
	QuizKey       string
	Answers       map[string]string
	QuestionIndex int
	RemainingSecs int
	UpdatedAt     time.Time
}

// QuizSnapshotRepo persists in-progress attempts for resume.
type QuizSnapshotRepo interface {
	// Save upserts the snapshot for its quiz key.
	Save(ctx context.Context, p *QuizProgress) error

	// Load returns the snapshot for quizKey if it is younger than
	// maxAge. Stale or missing snapshots yield nil; stale ones are
	// deleted as a side effect.
	Load(ctx context.Context, quizKey string, maxAge time.Duration) (*QuizProgress, error)

	// Delete removes the snapshot for quizKey, if any.
	Delete(ctx context.Context, quizKey string) error
}

// PreferenceRepo is opaque key-value storage for user preferences.
type PreferenceRepo interface {
	// Get returns the value for key, or "" if unset.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
}

// Preference keys.
const (
	PrefTheme       = "theme"
	PrefFocusExam   = "focus_exam"
	PrefQuizMinutes = "quiz_minutes"
)
