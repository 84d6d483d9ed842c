package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

// scriptedProvider returns a fixed sequence of results.
type scriptedProvider struct {
	results []result
	calls   int
}

type result struct {
	content json.RawMessage
	err     error
}

func (s *scriptedProvider) Complete(ctx context.Context, p Prompt) (*Completion, error) {
	i := s.calls
	s.calls++
	if i >= len(s.results) {
		return nil, errors.New("script exhausted")
	}
	r := s.results[i]
	if r.err != nil {
		return nil, r.err
	}
	return &Completion{Content: r.content, Model: "scripted"}, nil
}

func (s *scriptedProvider) Model() string { return "scripted" }

func retryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetrySucceedsFirstAttempt(t *testing.T) {
	sp := &scriptedProvider{results: []result{
		{content: json.RawMessage(`{"ok":true}`)},
	}}
	p := WithRetry(sp, retryConfig())

	resp, err := p.Complete(context.Background(), Prompt{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if sp.calls != 1 {
		t.Fatalf("expected 1 call, got %d", sp.calls)
	}
}

func TestRetryTransientThenSuccess(t *testing.T) {
	sp := &scriptedProvider{results: []result{
		{err: &ErrUnavailable{Err: errors.New("down")}},
		{content: json.RawMessage(`{"ok":true}`)},
	}}
	p := WithRetry(sp, retryConfig())

	_, err := p.Complete(context.Background(), Prompt{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sp.calls != 2 {
		t.Fatalf("expected 2 calls, got %d", sp.calls)
	}
}

func TestRetryAllAttemptsFail(t *testing.T) {
	sp := &scriptedProvider{results: []result{
		{err: &ErrUnavailable{Err: errors.New("down")}},
		{err: &ErrUnavailable{Err: errors.New("down")}},
		{err: &ErrUnavailable{Err: errors.New("down")}},
	}}
	p := WithRetry(sp, retryConfig())

	_, err := p.Complete(context.Background(), Prompt{})
	if err == nil {
		t.Fatal("expected error")
	}
	if sp.calls != 3 {
		t.Fatalf("expected 3 calls, got %d", sp.calls)
	}
}

func TestRetryBadCompletionRetriedOnce(t *testing.T) {
	sp := &scriptedProvider{results: []result{
		{err: &ErrBadCompletion{Content: json.RawMessage(`bad`), Err: errors.New("bad")}},
		{err: &ErrBadCompletion{Content: json.RawMessage(`bad`), Err: errors.New("bad")}},
		{content: json.RawMessage(`{"ok":true}`)}, // not reached
	}}
	p := WithRetry(sp, retryConfig())

	_, err := p.Complete(context.Background(), Prompt{})
	if err == nil {
		t.Fatal("expected error")
	}
	var bad *ErrBadCompletion
	if !errors.As(err, &bad) {
		t.Fatalf("expected ErrBadCompletion, got %T", err)
	}
	if sp.calls != 2 {
		t.Fatalf("expected 2 calls, got %d", sp.calls)
	}
}

func TestRetryRateLimitRespectsRetryAfter(t *testing.T) {
	sp := &scriptedProvider{results: []result{
		{err: &ErrRateLimit{RetryAfter: time.Millisecond, Err: errors.New("429")}},
		{content: json.RawMessage(`{"ok":true}`)},
	}}
	p := WithRetry(sp, retryConfig())

	_, err := p.Complete(context.Background(), Prompt{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sp.calls != 2 {
		t.Fatalf("expected 2 calls, got %d", sp.calls)
	}
}

func TestRetryContextCancellation(t *testing.T) {
	sp := &scriptedProvider{results: []result{
		{err: &ErrUnavailable{Err: errors.New("down")}},
		{content: json.RawMessage(`{"ok":true}`)},
	}}
	p := WithRetry(sp, retryConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.Complete(ctx, Prompt{}); err == nil {
		t.Fatal("expected error")
	}
}

func TestRetryModelDelegates(t *testing.T) {
	p := WithRetry(&MockProvider{}, retryConfig())
	if p.Model() != "mock" {
		t.Fatalf("expected 'mock', got %q", p.Model())
	}
}
