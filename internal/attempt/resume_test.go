package attempt

import (
	"testing"
	"time"

	"github.com/Adarsh-oo7/pscprep/internal/store"
)

func TestProgressRoundTrip(t *testing.T) {
	a := New("daily:2026-08-30", threeQuestions(), 10*time.Minute, Overwrite)
	a.Start()
	a.Select("q1", "a")
	a.Next()
	a.Tick()
	a.Tick()

	p := a.Progress()
	if p.QuizKey != "daily:2026-08-30" {
		t.Fatalf("quiz key: got %q", p.QuizKey)
	}
	if p.QuestionIndex != 1 {
		t.Fatalf("index: got %d", p.QuestionIndex)
	}
	if p.RemainingSecs != 598 {
		t.Fatalf("remaining: got %d", p.RemainingSecs)
	}

	b := New("daily:2026-08-30", threeQuestions(), 10*time.Minute, Overwrite)
	b.Restore(p)
	b.Start()

	if got, _ := b.Answer("q1"); got != "a" {
		t.Fatalf("restored answer: got %q", got)
	}
	if b.Index() != 1 {
		t.Fatalf("restored index: got %d", b.Index())
	}
	if b.Remaining() != 598 {
		t.Fatalf("restored clock: got %d", b.Remaining())
	}
}

func TestRestoreDropsOrphanedAnswers(t *testing.T) {
	a := New("k", threeQuestions(), time.Minute, Overwrite)
	a.Restore(&store.QuizProgress{
		Answers: map[string]string{"q1": "a", "gone": "b"},
	})
	a.Start()

	if _, ok := a.Answer("gone"); ok {
		t.Fatal("answer for removed question must be dropped")
	}
	if got, _ := a.Answer("q1"); got != "a" {
		t.Fatalf("surviving answer: got %q", got)
	}
}

func TestRestoreClampsIndex(t *testing.T) {
	a := New("k", threeQuestions(), time.Minute, Overwrite)
	a.Restore(&store.QuizProgress{QuestionIndex: 99})
	if a.Index() != 0 {
		t.Fatalf("out-of-range index must be ignored, got %d", a.Index())
	}
}

func TestRestoreIgnoresZeroClock(t *testing.T) {
	a := New("k", threeQuestions(), time.Minute, Overwrite)
	a.Restore(&store.QuizProgress{RemainingSecs: 0})
	if a.Remaining() != 60 {
		t.Fatalf("zero saved clock must not expire the attempt, got %d", a.Remaining())
	}
}

func TestRestoreIgnoresLargerClock(t *testing.T) {
	a := New("k", threeQuestions(), time.Minute, Overwrite)
	a.Restore(&store.QuizProgress{RemainingSecs: 3600})
	if a.Remaining() != 60 {
		t.Fatalf("saved clock larger than the allotment must be ignored, got %d", a.Remaining())
	}
}

func TestRestoreNilIsNoop(t *testing.T) {
	a := New("k", threeQuestions(), time.Minute, Overwrite)
	a.Restore(nil)
	if a.Remaining() != 60 || a.Index() != 0 || a.AnsweredCount() != 0 {
		t.Fatal("nil snapshot must leave the attempt untouched")
	}
}
