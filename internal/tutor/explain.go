package tutor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Adarsh-oo7/pscprep/internal/api"
)

// Explanation is a structured walkthrough of why an answer is wrong
// and how to reason to the right one.
type Explanation struct {
	Summary string   `json:"summary"`
	Steps   []string `json:"steps"`
	Trap    string   `json:"trap,omitempty"`
}

var explanationSchema = &Schema{
	Name: "answer-explanation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "One-sentence statement of the key fact or rule",
			},
			"steps": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Short reasoning steps from question to correct answer",
			},
			"trap": map[string]any{
				"type":        "string",
				"description": "Why the chosen wrong option is tempting",
			},
		},
		"required": []any{"summary", "steps"},
	},
}

const explainSystem = `You are a tutor for competitive exam preparation.
Explain concisely why the learner's chosen option is wrong and how to
reach the correct one. Keep each step under 20 words. Do not mention
option letters that do not exist.`

// Explainer produces explanations for wrongly answered questions.
type Explainer struct {
	provider Provider
}

// NewExplainer creates an Explainer on top of a configured provider.
func NewExplainer(p Provider) *Explainer {
	return &Explainer{provider: p}
}

// Explain asks the model why chosen is wrong for q. The backend's own
// explanation text, when present, is passed along as grounding.
func (e *Explainer) Explain(ctx context.Context, q api.Question, chosen string) (*Explanation, error) {
	resp, err := e.provider.Complete(ctx, Prompt{
		System:    explainSystem,
		User:      explainPrompt(q, chosen),
		Schema:    explanationSchema,
		MaxTokens: 512,
	})
	if err != nil {
		return nil, fmt.Errorf("explain question %s: %w", q.ID, err)
	}

	var out Explanation
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, &ErrBadCompletion{Content: resp.Content, Err: err}
	}
	return &out, nil
}

func explainPrompt(q api.Question, chosen string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Question: %s\n\nOptions:\n", q.Prompt)
	for _, k := range q.OptionKeys() {
		fmt.Fprintf(&b, "  %s) %s\n", k, q.Options[k])
	}
	fmt.Fprintf(&b, "\nCorrect option: %s\n", q.Answer)
	if chosen == "" {
		b.WriteString("The learner left this unanswered.\n")
	} else {
		fmt.Fprintf(&b, "The learner chose: %s\n", chosen)
	}
	if q.Explanation != "" {
		fmt.Fprintf(&b, "\nReference explanation: %s\n", q.Explanation)
	}
	return b.String()
}
