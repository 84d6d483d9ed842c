package tutor

import (
	"context"
	"encoding/json"
)

// Provider abstracts the LLM backends the tutor can run on.
type Provider interface {
	// Complete sends a prompt and returns the model's output. When the
	// prompt carries a Schema, the output is JSON validated against it.
	Complete(ctx context.Context, p Prompt) (*Completion, error)

	// Model returns the configured model identifier.
	Model() string
}

// Prompt is a single-turn request to the model.
type Prompt struct {
	// System sets the model's role and constraints.
	System string

	// User is the user-turn content.
	User string

	// Schema, when set, requests structured JSON output conforming to
	// the definition.
	Schema *Schema

	// MaxTokens bounds the response length.
	MaxTokens int

	// Temperature controls randomness (0.0 - 1.0, default 0.0).
	Temperature float64
}

// Schema names a JSON Schema the completion must conform to.
type Schema struct {
	Name       string
	Definition map[string]any
}

// Completion is the model's output.
type Completion struct {
	// Content is the generated output: validated JSON when a Schema
	// was requested, otherwise raw text.
	Content json.RawMessage

	// Model is the model that actually served the request.
	Model string

	// InputTokens and OutputTokens report usage for this request.
	InputTokens  int
	OutputTokens int
}
