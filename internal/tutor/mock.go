package tutor

import (
	"context"
	"encoding/json"
)

// MockProvider returns canned completions for tests and offline use.
type MockProvider struct {
	// Response is returned from every Complete call.
	Response json.RawMessage

	// Err, when set, is returned instead.
	Err error

	// Calls counts Complete invocations.
	Calls int
}

func (m *MockProvider) Complete(ctx context.Context, p Prompt) (*Completion, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	content := m.Response
	if content == nil {
		content = json.RawMessage(`{"summary":"","steps":[]}`)
	}
	return &Completion{Content: content, Model: m.Model()}, nil
}

func (m *MockProvider) Model() string {
	return "mock"
}
