package api

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
)

// PracticeQuestions fetches a batch of practice questions for a topic.
func (c *Client) PracticeQuestions(ctx context.Context, topic string, count int) ([]Question, error) {
	q := url.Values{}
	q.Set("topic", topic)
	q.Set("count", strconv.Itoa(count))
	path := "/api/questions/?" + q.Encode()
	var raw json.RawMessage
	if err := c.get(ctx, path, &raw); err != nil {
		return nil, err
	}
	if err := validateQuestions(path, raw); err != nil {
		return nil, err
	}
	var out []Question
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &ErrInvalidPayload{Endpoint: path, Err: err}
	}
	return out, nil
}

// DailyExam fetches today's scheduled exam.
func (c *Client) DailyExam(ctx context.Context) (*Exam, error) {
	return c.exam(ctx, "/api/exams/daily/")
}

// ModelExam fetches a model exam by id.
func (c *Client) ModelExam(ctx context.Context, id string) (*Exam, error) {
	return c.exam(ctx, "/api/exams/model/"+id+"/")
}

// PreviousYearExam fetches a previous-year paper by id.
func (c *Client) PreviousYearExam(ctx context.Context, id string) (*Exam, error) {
	return c.exam(ctx, "/api/exams/pyq/"+id+"/")
}

// ModelExams lists available model exams (metadata only).
func (c *Client) ModelExams(ctx context.Context) ([]Exam, error) {
	var out []Exam
	if err := c.get(ctx, "/api/exams/model/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// exam fetches and validates a single exam payload.
func (c *Client) exam(ctx context.Context, path string) (*Exam, error) {
	var raw json.RawMessage
	if err := c.get(ctx, path, &raw); err != nil {
		return nil, err
	}
	if err := validateExam(path, raw); err != nil {
		return nil, err
	}
	var out Exam
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &ErrInvalidPayload{Endpoint: path, Err: err}
	}
	return &out, nil
}

// SubmitAttempt submits the full answer set in one request and returns
// the server-computed result.
func (c *Client) SubmitAttempt(ctx context.Context, payload AttemptPayload) (*AttemptResult, error) {
	var out AttemptResult
	if err := c.post(ctx, "/api/attempts/submit/", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Leaderboard fetches the leaderboard for an exam ("" for global).
func (c *Client) Leaderboard(ctx context.Context, examID string) ([]LeaderboardEntry, error) {
	path := "/api/leaderboard/"
	if examID != "" {
		q := url.Values{}
		q.Set("exam", examID)
		path += "?" + q.Encode()
	}
	var out []LeaderboardEntry
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}
