package attempt

import (
	"testing"
	"time"

	"github.com/Adarsh-oo7/pscprep/internal/api"
)

func threeQuestions() []api.Question {
	return []api.Question{
		{ID: "q1", Prompt: "one", Options: map[string]string{"a": "1", "b": "2"}, Answer: "a"},
		{ID: "q2", Prompt: "two", Options: map[string]string{"a": "1", "b": "2"}, Answer: "b"},
		{ID: "q3", Prompt: "three", Options: map[string]string{"a": "1", "b": "2"}, Answer: "a"},
	}
}

func TestLifecycle(t *testing.T) {
	a := New("k", threeQuestions(), time.Minute, Overwrite)

	if a.Status() != NotStarted {
		t.Fatalf("expected NotStarted, got %v", a.Status())
	}
	a.Start()
	if a.Status() != InProgress {
		t.Fatalf("expected InProgress, got %v", a.Status())
	}
	if !a.BeginSubmit() {
		t.Fatal("expected BeginSubmit to succeed")
	}
	a.Finish(&api.AttemptResult{Score: 50})
	if a.Status() != Finished {
		t.Fatalf("expected Finished, got %v", a.Status())
	}
	if a.Result == nil || a.Result.Score != 50 {
		t.Fatalf("result not recorded: %+v", a.Result)
	}
}

func TestSelectBeforeStartIgnored(t *testing.T) {
	a := New("k", threeQuestions(), time.Minute, Overwrite)
	a.Select("q1", "a")
	if a.AnsweredCount() != 0 {
		t.Fatalf("expected no answers before start, got %d", a.AnsweredCount())
	}
}

func TestSelectOverwrite(t *testing.T) {
	a := New("k", threeQuestions(), time.Minute, Overwrite)
	a.Start()

	a.Select("q1", "a")
	a.Select("q1", "b")
	if got, _ := a.Answer("q1"); got != "b" {
		t.Fatalf("expected overwrite to b, got %q", got)
	}

	// Re-selecting the same option keeps it under Overwrite.
	a.Select("q1", "b")
	if got, ok := a.Answer("q1"); !ok || got != "b" {
		t.Fatalf("expected b to stay selected, got %q (ok=%v)", got, ok)
	}
}

func TestSelectToggleClears(t *testing.T) {
	a := New("k", threeQuestions(), time.Minute, Toggle)
	a.Start()

	a.Select("q2", "b")
	a.Select("q2", "b")
	if _, ok := a.Answer("q2"); ok {
		t.Fatal("expected toggle to clear the answer")
	}
	if a.AnsweredCount() != 0 {
		t.Fatalf("expected 0 answered, got %d", a.AnsweredCount())
	}
}

func TestAnswersAreIsolatedPerQuestion(t *testing.T) {
	a := New("k", threeQuestions(), time.Minute, Overwrite)
	a.Start()

	a.Select("q1", "a")
	a.Select("q3", "b")

	if got, _ := a.Answer("q1"); got != "a" {
		t.Fatalf("q1: expected a, got %q", got)
	}
	if _, ok := a.Answer("q2"); ok {
		t.Fatal("q2 should have no answer")
	}
	if got, _ := a.Answer("q3"); got != "b" {
		t.Fatalf("q3: expected b, got %q", got)
	}
}

func TestTickFiresExactlyOnceAtZero(t *testing.T) {
	a := New("k", threeQuestions(), 3*time.Second, Overwrite)
	a.Start()

	fired := 0
	for i := 0; i < 10; i++ {
		if a.Tick() {
			fired++
		}
	}
	if fired != 1 {
		t.Fatalf("expected expiry to fire once, fired %d times", fired)
	}
	if a.Remaining() != 0 {
		t.Fatalf("expected 0 remaining, got %d", a.Remaining())
	}
}

func TestTickStopsWhileSubmitting(t *testing.T) {
	a := New("k", threeQuestions(), 10*time.Second, Overwrite)
	a.Start()
	a.Tick()

	a.BeginSubmit()
	if a.Tick() {
		t.Fatal("countdown must not run while submitting")
	}
	if a.Remaining() != 9 {
		t.Fatalf("expected 9 remaining, got %d", a.Remaining())
	}
}

func TestBeginSubmitGuardsDoubleSubmission(t *testing.T) {
	a := New("k", threeQuestions(), 1*time.Second, Overwrite)
	a.Start()

	// Timer expiry wins the race...
	if expired := a.Tick(); !expired {
		t.Fatal("expected expiry")
	}
	if !a.BeginSubmit() {
		t.Fatal("first submit should proceed")
	}
	// ...and the user's manual submit arriving just after is refused.
	if a.BeginSubmit() {
		t.Fatal("second submit must be refused")
	}
}

func TestFailSubmitAllowsRetry(t *testing.T) {
	a := New("k", threeQuestions(), time.Minute, Overwrite)
	a.Start()
	a.Select("q1", "a")

	a.BeginSubmit()
	a.FailSubmit()

	if a.Status() != InProgress {
		t.Fatalf("expected InProgress after failed submit, got %v", a.Status())
	}
	if got, _ := a.Answer("q1"); got != "a" {
		t.Fatal("answers must survive a failed submit")
	}
	if !a.BeginSubmit() {
		t.Fatal("retry should proceed")
	}
}

func TestPayloadCarriesAllQuestionIDs(t *testing.T) {
	a := New("quiz-7", threeQuestions(), 10*time.Second, Overwrite)
	a.Start()
	a.Select("q2", "b")

	// Expiry with two unanswered questions still submits everything.
	for a.Remaining() > 0 {
		a.Tick()
	}

	p := a.Payload()
	if p.QuizKey != "quiz-7" {
		t.Fatalf("quiz key: got %q", p.QuizKey)
	}
	if len(p.QuestionIDs) != 3 {
		t.Fatalf("expected all 3 question ids, got %d", len(p.QuestionIDs))
	}
	if len(p.Answers) != 1 || p.Answers["q2"] != "b" {
		t.Fatalf("expected sparse answers {q2:b}, got %v", p.Answers)
	}
}

func TestPayloadEmptyAnswerMapIsValid(t *testing.T) {
	a := New("k", threeQuestions(), time.Minute, Overwrite)
	a.Start()

	p := a.Payload()
	if p.Answers == nil {
		t.Fatal("answers map must be non-nil even when empty")
	}
	if len(p.Answers) != 0 {
		t.Fatalf("expected empty answers, got %v", p.Answers)
	}
}

func TestNavigationClamps(t *testing.T) {
	a := New("k", threeQuestions(), time.Minute, Overwrite)
	a.Start()

	a.Prev()
	if a.Index() != 0 {
		t.Fatalf("expected index 0, got %d", a.Index())
	}
	for i := 0; i < 10; i++ {
		a.Next()
	}
	if a.Index() != 2 {
		t.Fatalf("expected index clamped at 2, got %d", a.Index())
	}
	if a.Current() == nil || a.Current().ID != "q3" {
		t.Fatal("current should be q3")
	}
}
