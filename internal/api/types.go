package api

import "time"

// Question is a single multiple-choice question as served by the
// backend. Immutable from the client's perspective.
type Question struct {
	ID          string            `json:"id"`
	Prompt      string            `json:"question"`
	Options     map[string]string `json:"options"`
	OptionOrder []string          `json:"option_order,omitempty"`
	Answer      string            `json:"correct_answer"`
	Explanation string            `json:"explanation,omitempty"`
	Topic       string            `json:"topic,omitempty"`
	Difficulty  string            `json:"difficulty,omitempty"`
}

// OptionKeys returns the option keys in display order. The backend may
// send an explicit order; otherwise the conventional a-d order is used
// for keys that exist.
func (q Question) OptionKeys() []string {
	if len(q.OptionOrder) > 0 {
		return q.OptionOrder
	}
	keys := make([]string, 0, len(q.Options))
	for _, k := range []string{"a", "b", "c", "d", "e"} {
		if _, ok := q.Options[k]; ok {
			keys = append(keys, k)
		}
	}
	return keys
}

// Exam is a scheduled or on-demand collection of questions. Daily
// exams, model exams and previous-year papers all share this shape.
type Exam struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Date            string     `json:"date,omitempty"`
	DurationMinutes int        `json:"duration_minutes"`
	Questions       []Question `json:"questions"`
}

// Duration returns the exam duration, falling back to def when the
// backend did not specify one.
func (e Exam) Duration(def time.Duration) time.Duration {
	if e.DurationMinutes <= 0 {
		return def
	}
	return time.Duration(e.DurationMinutes) * time.Minute
}

// AttemptPayload is the wholesale submission of an attempt: the full
// question-id set plus the sparse answer map.
type AttemptPayload struct {
	AttemptID   string            `json:"attempt_id"`
	QuizKey     string            `json:"quiz_key"`
	QuestionIDs []string          `json:"question_ids"`
	Answers     map[string]string `json:"answers"`
}

// QuestionResult is the per-question correctness returned for review.
type QuestionResult struct {
	QuestionID string `json:"question_id"`
	Correct    bool   `json:"correct"`
	Selected   string `json:"selected,omitempty"`
}

// AttemptResult is the server-computed outcome of a submission.
type AttemptResult struct {
	Score      float64          `json:"score"`
	Correct    int              `json:"correct"`
	Wrong      int              `json:"wrong"`
	Unanswered int              `json:"unanswered"`
	Results    []QuestionResult `json:"results,omitempty"`
}

// ResultFor returns the per-question result for id, if present.
func (r AttemptResult) ResultFor(id string) (QuestionResult, bool) {
	for _, qr := range r.Results {
		if qr.QuestionID == id {
			return qr, true
		}
	}
	return QuestionResult{}, false
}

// Profile is the server-computed user snapshot.
type Profile struct {
	ID               string  `json:"id"`
	Username         string  `json:"username"`
	Email            string  `json:"email,omitempty"`
	IsOwner          bool    `json:"is_owner"`
	IsContentCreator bool    `json:"is_content_creator"`
	FocusExam        string  `json:"focus_exam,omitempty"`
	FocusTopic       string  `json:"focus_topic,omitempty"`
	TotalAttempts    int     `json:"total_attempts"`
	AverageScore     float64 `json:"average_score"`
	Rank             int     `json:"rank,omitempty"`
}

// LeaderboardEntry is one row of a leaderboard page.
type LeaderboardEntry struct {
	Rank     int     `json:"rank"`
	Username string  `json:"username"`
	Score    float64 `json:"score"`
	Attempts int     `json:"attempts"`
}

// Post is a community feed entry. Liked and Bookmarked reflect the
// requesting user's state and are the targets of optimistic toggles.
type Post struct {
	ID         string    `json:"id"`
	Author     string    `json:"author"`
	Body       string    `json:"body"`
	Likes      int       `json:"likes"`
	Comments   int       `json:"comments"`
	Liked      bool      `json:"liked"`
	Bookmarked bool      `json:"bookmarked"`
	CreatedAt  time.Time `json:"created_at"`
}

// Conversation is a direct-message thread header.
type Conversation struct {
	ID       string `json:"id"`
	PeerName string `json:"peer_name"`
	IsGroup  bool   `json:"is_group"`
	Unread   int    `json:"unread"`
}

// Message is a single chat message, delivered both in history pages
// and as individual socket frames.
type Message struct {
	ID        string    `json:"id"`
	Sender    string    `json:"sender"`
	Text      string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
