package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/Adarsh-oo7/pscprep/internal/api"
)

func sampleQuestion() api.Question {
	return api.Question{
		ID:     "q1",
		Prompt: "Which river is known as the lifeline of Kerala?",
		Options: map[string]string{
			"a": "Periyar",
			"b": "Bharathappuzha",
			"c": "Pamba",
			"d": "Chaliyar",
		},
		Answer:      "a",
		Explanation: "Periyar is the longest river in Kerala.",
	}
}

func TestExplainParsesStructuredOutput(t *testing.T) {
	mock := &MockProvider{Response: json.RawMessage(
		`{"summary":"Periyar is the longest river.","steps":["Recall river lengths","Periyar tops the list"],"trap":"Pamba is famous but shorter"}`,
	)}
	e := NewExplainer(mock)

	exp, err := e.Explain(context.Background(), sampleQuestion(), "c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exp.Summary != "Periyar is the longest river." {
		t.Errorf("summary: got %q", exp.Summary)
	}
	if len(exp.Steps) != 2 {
		t.Errorf("steps: got %d", len(exp.Steps))
	}
	if exp.Trap == "" {
		t.Error("expected trap to be carried through")
	}
	if mock.Calls != 1 {
		t.Errorf("expected 1 provider call, got %d", mock.Calls)
	}
}

func TestExplainPropagatesProviderError(t *testing.T) {
	mock := &MockProvider{Err: &ErrUnavailable{Err: errors.New("down")}}
	e := NewExplainer(mock)

	_, err := e.Explain(context.Background(), sampleQuestion(), "c")
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *ErrUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrUnavailable in chain, got %v", err)
	}
}

func TestExplainRejectsMalformedOutput(t *testing.T) {
	mock := &MockProvider{Response: json.RawMessage(`this is not json`)}
	e := NewExplainer(mock)

	_, err := e.Explain(context.Background(), sampleQuestion(), "c")
	var bad *ErrBadCompletion
	if !errors.As(err, &bad) {
		t.Fatalf("expected ErrBadCompletion, got %v", err)
	}
}

func TestExplainPromptMentionsChoices(t *testing.T) {
	q := sampleQuestion()

	p := explainPrompt(q, "c")
	for _, want := range []string{q.Prompt, "Correct option: a", "The learner chose: c", q.Explanation} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q", want)
		}
	}

	unanswered := explainPrompt(q, "")
	if !strings.Contains(unanswered, "left this unanswered") {
		t.Error("prompt should note an unanswered question")
	}
}
