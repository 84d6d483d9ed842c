package attempt

import (
	"github.com/Adarsh-oo7/pscprep/internal/store"
)

// Progress captures the resumable part of the attempt for persistence.
// Only in-progress attempts are worth saving.
func (a *Attempt) Progress() *store.QuizProgress {
	return &store.QuizProgress{
		QuizKey:       a.QuizKey,
		Answers:       a.Answers(),
		QuestionIndex: a.index,
		RemainingSecs: a.remaining,
	}
}

// Restore applies a saved snapshot to a freshly created attempt:
// answer map, question index, and (when sensible) the countdown.
// Answers for questions that no longer exist are dropped, so a changed
// quiz doesn't resurrect orphaned selections.
func (a *Attempt) Restore(p *store.QuizProgress) {
	if p == nil {
		return
	}

	known := make(map[string]bool, len(a.Questions))
	for _, q := range a.Questions {
		known[q.ID] = true
	}
	for qid, key := range p.Answers {
		if known[qid] {
			a.answers[qid] = key
		}
	}

	if p.QuestionIndex >= 0 && p.QuestionIndex < len(a.Questions) {
		a.index = p.QuestionIndex
	}

	// Resume the clock only if the snapshot had time left; a zero here
	// would instantly expire a resumed attempt.
	if p.RemainingSecs > 0 && p.RemainingSecs < a.remaining {
		a.remaining = p.RemainingSecs
	}
}
