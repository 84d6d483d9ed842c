package attempt

import (
	"time"

	"github.com/google/uuid"

	"github.com/Adarsh-oo7/pscprep/internal/api"
)

// Status is the attempt lifecycle state.
type Status int

const (
	NotStarted Status = iota
	InProgress        // countdown running, answers mutable
	Submitting        // submission in flight, countdown paused
	Finished          // result received, no re-submission possible
)

// SelectPolicy controls what selecting an already-selected option does.
// Practice screens use Toggle (re-select clears); exam screens use
// Overwrite (re-select is a no-op).
type SelectPolicy int

const (
	Overwrite SelectPolicy = iota
	Toggle
)

// Attempt tracks one run through a set of questions: the sparse answer
// map, the countdown, and the submission lifecycle. It is driven from
// the UI event loop and is not safe for concurrent use.
type Attempt struct {
	ID        string
	QuizKey   string
	Questions []api.Question
	Policy    SelectPolicy

	answers   map[string]string
	remaining int
	status    Status
	index     int

	// Result is set when the attempt finishes.
	Result *api.AttemptResult
}

// New creates an attempt over questions with the given duration.
func New(quizKey string, questions []api.Question, duration time.Duration, policy SelectPolicy) *Attempt {
	return &Attempt{
		ID:        uuid.New().String(),
		QuizKey:   quizKey,
		Questions: questions,
		Policy:    policy,
		answers:   make(map[string]string),
		remaining: int(duration.Seconds()),
		status:    NotStarted,
	}
}

// Start moves the attempt into InProgress. No-op unless NotStarted.
func (a *Attempt) Start() {
	if a.status == NotStarted {
		a.status = InProgress
	}
}

// Status returns the current lifecycle state.
func (a *Attempt) Status() Status { return a.status }

// Remaining returns the countdown value in seconds.
func (a *Attempt) Remaining() int { return a.remaining }

// Select records an option for a question. Selecting overwrites any
// prior selection; under Toggle, re-selecting the same option clears
// it. Ignored unless the attempt is InProgress.
func (a *Attempt) Select(questionID, optionKey string) {
	if a.status != InProgress {
		return
	}
	if a.Policy == Toggle && a.answers[questionID] == optionKey {
		delete(a.answers, questionID)
		return
	}
	a.answers[questionID] = optionKey
}

// Answer returns the recorded option for a question, if any.
func (a *Attempt) Answer(questionID string) (string, bool) {
	k, ok := a.answers[questionID]
	return k, ok
}

// Answers returns a copy of the sparse answer map.
func (a *Attempt) Answers() map[string]string {
	out := make(map[string]string, len(a.answers))
	for k, v := range a.answers {
		out[k] = v
	}
	return out
}

// AnsweredCount returns how many questions have a recorded answer.
func (a *Attempt) AnsweredCount() int { return len(a.answers) }

// Tick advances the countdown by one second. It reports true exactly
// once, on the tick that reaches zero — the caller triggers auto-submit
// on that signal. The countdown only runs while InProgress, so a
// submission in flight or a finished attempt never ticks down, and a
// failed submission at zero does not re-fire.
func (a *Attempt) Tick() (expired bool) {
	if a.status != InProgress || a.remaining <= 0 {
		return false
	}
	a.remaining--
	return a.remaining == 0
}

// BeginSubmit transitions InProgress -> Submitting. It reports whether
// the transition happened; a false result means a submission is already
// in flight or the attempt is over, so the caller must not submit.
// This is the idempotency guard: timeout and manual submit both funnel
// through here, and only one wins.
func (a *Attempt) BeginSubmit() bool {
	if a.status != InProgress {
		return false
	}
	a.status = Submitting
	return true
}

// FailSubmit returns a failed submission to InProgress with no state
// loss, so the user can retry manually.
func (a *Attempt) FailSubmit() {
	if a.status == Submitting {
		a.status = InProgress
	}
}

// Finish records the server result and seals the attempt.
func (a *Attempt) Finish(result *api.AttemptResult) {
	if a.status != Submitting {
		return
	}
	a.Result = result
	a.status = Finished
}

// Payload builds the wholesale submission: every question id plus the
// sparse answer map.
func (a *Attempt) Payload() api.AttemptPayload {
	ids := make([]string, len(a.Questions))
	for i, q := range a.Questions {
		ids[i] = q.ID
	}
	return api.AttemptPayload{
		AttemptID:   a.ID,
		QuizKey:     a.QuizKey,
		QuestionIDs: ids,
		Answers:     a.Answers(),
	}
}

// Index returns the current question index.
func (a *Attempt) Index() int { return a.index }

// Current returns the question at the current index, or nil.
func (a *Attempt) Current() *api.Question {
	if a.index < 0 || a.index >= len(a.Questions) {
		return nil
	}
	return &a.Questions[a.index]
}

// Next moves to the next question, clamped to the last one.
func (a *Attempt) Next() {
	if a.index < len(a.Questions)-1 {
		a.index++
	}
}

// Prev moves to the previous question, clamped to the first one.
func (a *Attempt) Prev() {
	if a.index > 0 {
		a.index--
	}
}
