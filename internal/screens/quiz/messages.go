package quiz

import (
	"time"

	"github.com/Adarsh-oo7/pscprep/internal/api"
	"github.com/Adarsh-oo7/pscprep/internal/store"
	"github.com/Adarsh-oo7/pscprep/internal/tutor"
)

// loadedMsg is sent when the question fetch and the resume lookup
// finish.
type loadedMsg struct {
	Questions []api.Question
	Duration  time.Duration
	Saved     *store.QuizProgress
	Err       error
}

// tickMsg is sent every second to drive the countdown.
type tickMsg time.Time

// submitDoneMsg is sent when the submission round-trip completes.
type submitDoneMsg struct {
	Result *api.AttemptResult
	Err    error
}

// saveDoneMsg confirms a background progress save.
type saveDoneMsg struct {
	Err error
}

// explainDoneMsg is sent when the tutor explanation arrives.
type explainDoneMsg struct {
	QuestionID  string
	Explanation *tutor.Explanation
	Err         error
}
