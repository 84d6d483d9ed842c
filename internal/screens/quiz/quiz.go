package quiz

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/sirupsen/logrus"

	"github.com/Adarsh-oo7/pscprep/internal/api"
	"github.com/Adarsh-oo7/pscprep/internal/attempt"
	"github.com/Adarsh-oo7/pscprep/internal/router"
	"github.com/Adarsh-oo7/pscprep/internal/screen"
	"github.com/Adarsh-oo7/pscprep/internal/store"
	"github.com/Adarsh-oo7/pscprep/internal/tutor"
	"github.com/Adarsh-oo7/pscprep/internal/ui/components"
	"github.com/Adarsh-oo7/pscprep/internal/ui/layout"
)

type phase int

const (
	phaseLoading phase = iota
	phaseResumePrompt
	phaseActive
	phaseConfirmSubmit
	phaseSubmitting
	phaseReview
	phaseError
)

// Deps bundles the services a quiz run needs.
type Deps struct {
	API       *api.Client
	Snapshots store.QuizSnapshotRepo
	Explainer *tutor.Explainer // nil disables the explain action
	Log       *logrus.Entry
}

// Spec describes one quiz: where its questions come from and how
// answer selection behaves.
type Spec struct {
	// QuizKey identifies the quiz for resume snapshots.
	QuizKey string

	Title  string
	Policy attempt.SelectPolicy

	// Fetch loads the question set and the allotted duration.
	Fetch func(ctx context.Context) ([]api.Question, time.Duration, error)
}

// QuizScreen runs one attempt end to end: load, answer, submit, review.
type QuizScreen struct {
	deps Deps
	spec Spec

	phase phase
	att   *attempt.Attempt
	saved *store.QuizProgress
	total int // allotted seconds, for the timer bar

	options components.OptionList
	errMsg  string

	// Review-only state.
	explanation *tutor.Explanation
	explainErr  string
	explaining  bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.Closer = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.EscInterceptor = (*QuizScreen)(nil)

// New creates a QuizScreen.
func New(deps Deps, spec Spec) *QuizScreen {
	if deps.Log == nil {
		deps.Log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &QuizScreen{deps: deps, spec: spec}
}

func (q *QuizScreen) Init() tea.Cmd {
	return q.load()
}

func (q *QuizScreen) Title() string {
	return q.spec.Title
}

// InterceptEsc keeps Esc inside the screen while the submit dialog or
// the explanation overlay is open.
func (q *QuizScreen) InterceptEsc() bool {
	return q.phase == phaseConfirmSubmit ||
		(q.phase == phaseReview && (q.explanation != nil || q.explainErr != ""))
}

// Close persists in-progress answers so leaving mid-quiz is resumable.
func (q *QuizScreen) Close() {
	if q.att == nil || q.att.Status() != attempt.InProgress {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := q.deps.Snapshots.Save(ctx, q.att.Progress()); err != nil {
		q.deps.Log.WithError(err).Warn("could not save quiz progress on exit")
	}
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	switch q.phase {
	case phaseResumePrompt:
		return []layout.KeyHint{
			{Key: "Y", Description: "Resume"},
			{Key: "N", Description: "Start over"},
		}
	case phaseActive:
		return []layout.KeyHint{
			{Key: "←→", Description: "Question"},
			{Key: "↑↓", Description: "Option"},
			{Key: "Enter", Description: "Pick"},
			{Key: "S", Description: "Submit"},
			{Key: "Esc", Description: "Save & exit"},
		}
	case phaseConfirmSubmit:
		return []layout.KeyHint{
			{Key: "Y", Description: "Submit"},
			{Key: "N", Description: "Keep going"},
		}
	case phaseReview:
		hints := []layout.KeyHint{
			{Key: "←→", Description: "Question"},
			{Key: "Esc", Description: "Back"},
		}
		if q.deps.Explainer != nil {
			hints = append(hints, layout.KeyHint{Key: "E", Description: "Explain"})
		}
		return hints
	}
	return nil
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		return q.handleLoaded(msg)
	case tickMsg:
		return q.handleTick()
	case submitDoneMsg:
		return q.handleSubmitDone(msg)
	case saveDoneMsg:
		if msg.Err != nil {
			q.deps.Log.WithError(msg.Err).Warn("could not save quiz progress")
		}
		return q, nil
	case explainDoneMsg:
		return q.handleExplainDone(msg)
	case tea.KeyMsg:
		return q.handleKey(msg)
	}
	return q, nil
}

// load fetches the question set and looks for a resumable snapshot in
// one background command.
func (q *QuizScreen) load() tea.Cmd {
	spec := q.spec
	snaps := q.deps.Snapshots
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		questions, duration, err := spec.Fetch(ctx)
		if err != nil {
			return loadedMsg{Err: err}
		}

		saved, err := snaps.Load(ctx, spec.QuizKey, store.DefaultSnapshotMaxAge)
		if err != nil {
			// A broken snapshot should not block a fresh attempt.
			saved = nil
		}
		return loadedMsg{Questions: questions, Duration: duration, Saved: saved}
	}
}

func (q *QuizScreen) handleLoaded(msg loadedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		q.phase = phaseError
		q.errMsg = msg.Err.Error()
		return q, nil
	}
	if len(msg.Questions) == 0 {
		q.phase = phaseError
		q.errMsg = "no questions available"
		return q, nil
	}

	q.att = attempt.New(q.spec.QuizKey, msg.Questions, msg.Duration, q.spec.Policy)
	q.total = q.att.Remaining()

	if msg.Saved != nil {
		q.saved = msg.Saved
		q.phase = phaseResumePrompt
		return q, nil
	}
	return q, q.start()
}

// start begins the countdown and shows the first question.
func (q *QuizScreen) start() tea.Cmd {
	q.att.Start()
	q.phase = phaseActive
	q.rebuildOptions()
	return tickCmd()
}

func (q *QuizScreen) handleTick() (screen.Screen, tea.Cmd) {
	if q.att == nil || q.att.Status() != attempt.InProgress {
		return q, nil
	}

	if q.att.Tick() {
		// Time up: whatever is answered goes in as-is.
		q.phase = phaseActive
		return q, q.submit()
	}
	return q, tickCmd()
}

func (q *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch q.phase {
	case phaseError:
		return q, func() tea.Msg { return router.PopScreenMsg{} }

	case phaseResumePrompt:
		switch key {
		case "y", "Y", "enter":
			q.att.Restore(q.saved)
			q.saved = nil
			return q, q.start()
		case "n", "N":
			q.saved = nil
			return q, tea.Batch(q.deleteSnapshot(), q.start())
		}
		return q, nil

	case phaseActive:
		return q.handleActiveKey(key, msg)

	case phaseConfirmSubmit:
		switch key {
		case "y", "Y", "enter":
			return q, q.submit()
		case "n", "N", "esc":
			q.phase = phaseActive
		}
		return q, nil

	case phaseReview:
		return q.handleReviewKey(key)
	}

	return q, nil
}

func (q *QuizScreen) handleActiveKey(key string, msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch key {
	case "left", "h":
		q.att.Prev()
		q.rebuildOptions()
		return q, nil
	case "right", "l", "tab":
		q.att.Next()
		q.rebuildOptions()
		return q, nil
	case "enter", " ":
		return q, q.pick(q.options.CursorKey())
	case "s", "S":
		q.phase = phaseConfirmSubmit
		return q, nil
	case "1", "2", "3", "4", "5":
		idx := int(key[0] - '1')
		if idx < len(q.options.Options) {
			return q, q.pick(q.options.Options[idx].Key)
		}
		return q, nil
	}

	var cmd tea.Cmd
	q.options, cmd = q.options.Update(msg)
	return q, cmd
}

// pick records a selection for the current question and saves progress
// in the background.
func (q *QuizScreen) pick(optionKey string) tea.Cmd {
	cur := q.att.Current()
	if cur == nil || optionKey == "" {
		return nil
	}
	q.att.Select(cur.ID, optionKey)
	chosen, _ := q.att.Answer(cur.ID)
	q.options.Chosen = chosen
	return q.saveProgress()
}

func (q *QuizScreen) handleReviewKey(key string) (screen.Screen, tea.Cmd) {
	// An open explanation overlay swallows the first key.
	if q.explanation != nil || q.explainErr != "" {
		q.explanation = nil
		q.explainErr = ""
		return q, nil
	}

	switch key {
	case "left", "h":
		q.att.Prev()
		q.rebuildOptions()
	case "right", "l", "tab":
		q.att.Next()
		q.rebuildOptions()
	case "e", "E":
		return q, q.explain()
	case "esc", "q":
		return q, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return q, nil
}

// submit funnels both manual submission and timer expiry through the
// attempt's guard so only one submission ever leaves.
func (q *QuizScreen) submit() tea.Cmd {
	if q.att == nil || !q.att.BeginSubmit() {
		return nil
	}
	q.phase = phaseSubmitting
	q.errMsg = ""

	payload := q.att.Payload()
	client := q.deps.API
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		result, err := client.SubmitAttempt(ctx, payload)
		return submitDoneMsg{Result: result, Err: err}
	}
}

func (q *QuizScreen) handleSubmitDone(msg submitDoneMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		// Nothing is lost: answers and clock stay, the user retries.
		q.att.FailSubmit()
		q.phase = phaseActive
		q.errMsg = "Submission failed: " + msg.Err.Error()
		return q, tickCmd()
	}

	q.att.Finish(msg.Result)
	q.phase = phaseReview
	q.rebuildOptions()
	return q, q.deleteSnapshot()
}

func (q *QuizScreen) explain() tea.Cmd {
	if q.deps.Explainer == nil || q.explaining {
		return nil
	}
	cur := q.att.Current()
	if cur == nil {
		return nil
	}
	chosen, _ := q.att.Answer(cur.ID)
	if chosen == cur.Answer {
		return nil
	}

	q.explaining = true
	explainer := q.deps.Explainer
	question := *cur
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		exp, err := explainer.Explain(ctx, question, chosen)
		return explainDoneMsg{QuestionID: question.ID, Explanation: exp, Err: err}
	}
}

func (q *QuizScreen) handleExplainDone(msg explainDoneMsg) (screen.Screen, tea.Cmd) {
	q.explaining = false

	// The user may have moved on while the model was thinking.
	cur := q.att.Current()
	if cur == nil || cur.ID != msg.QuestionID {
		return q, nil
	}

	if msg.Err != nil {
		q.explainErr = "Explanation unavailable: " + msg.Err.Error()
		return q, nil
	}
	q.explanation = msg.Explanation
	return q, nil
}

func (q *QuizScreen) saveProgress() tea.Cmd {
	progress := q.att.Progress()
	snaps := q.deps.Snapshots
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return saveDoneMsg{Err: snaps.Save(ctx, progress)}
	}
}

func (q *QuizScreen) deleteSnapshot() tea.Cmd {
	key := q.spec.QuizKey
	snaps := q.deps.Snapshots
	log := q.deps.Log
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := snaps.Delete(ctx, key); err != nil {
			log.WithError(err).Warn("could not delete quiz snapshot")
		}
		return nil
	}
}

// rebuildOptions refreshes the option list for the current question.
func (q *QuizScreen) rebuildOptions() {
	cur := q.att.Current()
	if cur == nil {
		q.options = components.OptionList{}
		return
	}

	opts := make([]components.Option, 0, len(cur.Options))
	for _, k := range cur.OptionKeys() {
		opts = append(opts, components.Option{Key: k, Text: cur.Options[k]})
	}

	list := components.NewOptionList(opts)
	chosen, _ := q.att.Answer(cur.ID)
	list.Chosen = chosen

	if q.att.Status() == attempt.Finished {
		list.Review = true
		list.Correct = cur.Answer
		if q.att.Result != nil {
			if res, ok := q.att.Result.ResultFor(cur.ID); ok && res.Selected != "" {
				list.Chosen = res.Selected
			}
		}
	}

	q.options = list
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
