package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func testClient(t *testing.T, handler http.HandlerFunc, token string) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	var src TokenSource
	if token != "" {
		src = func() string { return token }
	}
	return New(DefaultConfig(srv.URL), src, nil), srv
}

func TestLoginRoundTrip(t *testing.T) {
	var gotBody string
	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login/" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type %q", ct)
		}
		buf := make([]byte, 256)
		n, _ := r.Body.Read(buf)
		gotBody = string(buf[:n])
		w.Write([]byte(`{"access":"tok-a","refresh":"tok-r"}`))
	}, "")

	resp, err := c.Login(context.Background(), "asha", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Access != "tok-a" || resp.Refresh != "tok-r" {
		t.Fatalf("unexpected token pair: %+v", resp)
	}
	if !strings.Contains(gotBody, `"username":"asha"`) {
		t.Errorf("request body missing username: %s", gotBody)
	}
}

func TestBearerTokenAttached(t *testing.T) {
	var auth string
	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		w.Write([]byte(`{"username":"asha"}`))
	}, "my-token")

	if _, err := c.Me(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if auth != "Bearer my-token" {
		t.Fatalf("expected bearer header, got %q", auth)
	}
}

func TestUnauthorizedIsTyped(t *testing.T) {
	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}, "stale")

	_, err := c.Me(context.Background())
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestErrorMessageExtraction(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"detail shape", `{"detail":"exam not found"}`, "exam not found"},
		{"error shape", `{"error":"rate limited"}`, "rate limited"},
		{"plain text", "something broke", "something broke"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(tc.body))
			}, "")

			_, err := c.Me(context.Background())
			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected APIError, got %v", err)
			}
			if apiErr.Status != http.StatusBadRequest {
				t.Errorf("status: got %d", apiErr.Status)
			}
			if apiErr.Message != tc.want {
				t.Errorf("message: got %q, want %q", apiErr.Message, tc.want)
			}
		})
	}
}

func TestDecodeFailureIsTyped(t *testing.T) {
	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"username": truncated`))
	}, "")

	_, err := c.Me(context.Background())
	var invalid *ErrInvalidPayload
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidPayload, got %v", err)
	}
}

func TestExamSchemaRejectsMissingOptions(t *testing.T) {
	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		// One option only; the schema requires at least two.
		w.Write([]byte(`{"id":"e1","questions":[{"id":"q1","question":"?","options":{"a":"x"}}]}`))
	}, "")

	_, err := c.DailyExam(context.Background())
	var invalid *ErrInvalidPayload
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidPayload, got %v", err)
	}
}

func TestExamAcceptsValidPayload(t *testing.T) {
	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"e1","title":"Daily","duration_minutes":30,"questions":[
			{"id":"q1","question":"Capital of Kerala?","options":{"a":"Thiruvananthapuram","b":"Kochi"},"correct_answer":"a"}
		]}`))
	}, "")

	exam, err := c.DailyExam(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exam.ID != "e1" || len(exam.Questions) != 1 {
		t.Fatalf("unexpected exam: %+v", exam)
	}
	if exam.Questions[0].Answer != "a" {
		t.Errorf("answer: got %q", exam.Questions[0].Answer)
	}
}

func TestPracticeQuestionsEscapesTopic(t *testing.T) {
	var gotTopic, gotCount string
	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotTopic = r.URL.Query().Get("topic")
		gotCount = r.URL.Query().Get("count")
		w.Write([]byte(`[{"id":"q1","question":"?","options":{"a":"x","b":"y"},"correct_answer":"a"}]`))
	}, "")

	qs, err := c.PracticeQuestions(context.Background(), "kerala history & gk", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 1 {
		t.Fatalf("unexpected questions: %+v", qs)
	}
	if gotTopic != "kerala history & gk" {
		t.Errorf("topic did not survive the round trip: %q", gotTopic)
	}
	if gotCount != "10" {
		t.Errorf("count: got %q", gotCount)
	}
}

func TestSocketURL(t *testing.T) {
	cases := []struct {
		name  string
		base  string
		token string
		want  string
	}{
		{"https to wss", "https://api.example.com", "tok", "wss://api.example.com/ws/chat/c1/?token=tok"},
		{"http to ws", "http://localhost:8000", "tok", "ws://localhost:8000/ws/chat/c1/?token=tok"},
		{"no token source", "https://api.example.com", "", "wss://api.example.com/ws/chat/c1/"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var src TokenSource
			if tc.token != "" {
				src = func() string { return tc.token }
			}
			c := New(DefaultConfig(tc.base), src, nil)
			got, err := c.SocketURL("chat", "c1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}
