package api

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// The backend occasionally ships malformed exam content (missing
// options, empty prompts). Validating at the edge turns a partial
// render into a typed error the screens can surface.

var questionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":             map[string]any{"type": "string", "minLength": 1},
		"question":       map[string]any{"type": "string", "minLength": 1},
		"options":        map[string]any{"type": "object", "minProperties": 2},
		"correct_answer": map[string]any{"type": "string"},
		"explanation":    map[string]any{"type": "string"},
	},
	"required": []any{"id", "question", "options"},
}

var examSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":               map[string]any{"type": "string", "minLength": 1},
		"title":            map[string]any{"type": "string"},
		"duration_minutes": map[string]any{"type": "integer", "minimum": 0},
		"questions": map[string]any{
			"type":  "array",
			"items": questionSchema,
		},
	},
	"required": []any{"id", "questions"},
}

var questionListSchema = map[string]any{
	"type":  "array",
	"items": questionSchema,
}

// schemaCache caches compiled schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

func validateExam(endpoint string, raw json.RawMessage) error {
	return validatePayload(endpoint, "exam", examSchema, raw)
}

func validateQuestions(endpoint string, raw json.RawMessage) error {
	return validatePayload(endpoint, "question-list", questionListSchema, raw)
}

func validatePayload(endpoint, name string, def map[string]any, raw json.RawMessage) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ErrInvalidPayload{Endpoint: endpoint, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	compiled, err := compiledSchema(name, def)
	if err != nil {
		return &ErrInvalidPayload{Endpoint: endpoint, Err: fmt.Errorf("compile schema %q: %w", name, err)}
	}

	if err := compiled.Validate(parsed); err != nil {
		return &ErrInvalidPayload{Endpoint: endpoint, Err: fmt.Errorf("schema validation failed: %w", err)}
	}
	return nil
}

// compiledSchema returns a cached compiled schema or compiles and caches it.
func compiledSchema(name string, def map[string]any) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The jsonschema library expects a parsed JSON value, not raw bytes.
	defBytes, err := json.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(name, compiled)
	return compiled, nil
}
