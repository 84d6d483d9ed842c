package store

import (
	"context"
	"testing"
	"time"

	"github.com/Adarsh-oo7/pscprep/ent/quizsnapshot"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestCredentialRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Credentials()
	ctx := context.Background()

	tok, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if tok != nil {
		t.Fatal("expected nil tokens before any save")
	}

	if err := repo.Save(ctx, Tokens{Access: "a1", Refresh: "r1"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	tok, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tok.Access != "a1" || tok.Refresh != "r1" {
		t.Fatalf("unexpected tokens: %+v", tok)
	}

	// A second save replaces the row; there is only one signed-in user.
	if err := repo.Save(ctx, Tokens{Access: "a2", Refresh: "r2"}); err != nil {
		t.Fatalf("re-save: %v", err)
	}
	tok, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("load after re-save: %v", err)
	}
	if tok.Access != "a2" {
		t.Fatalf("expected replaced token, got %q", tok.Access)
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	tok, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("load after clear: %v", err)
	}
	if tok != nil {
		t.Fatal("expected nil tokens after clear")
	}
}

func TestPreferenceRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Preferences()
	ctx := context.Background()

	v, err := repo.Get(ctx, PrefTheme)
	if err != nil {
		t.Fatalf("get (missing): %v", err)
	}
	if v != "" {
		t.Fatalf("expected empty value for unset key, got %q", v)
	}

	if err := repo.Set(ctx, PrefTheme, "light"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := repo.Set(ctx, PrefTheme, "dark"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	v, err = repo.Get(ctx, PrefTheme)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if v != "dark" {
		t.Fatalf("expected last written value, got %q", v)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.QuizSnapshots()
	ctx := context.Background()

	p, err := repo.Load(ctx, "daily:2026-08-30", DefaultSnapshotMaxAge)
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if p != nil {
		t.Fatal("expected nil snapshot when none saved")
	}

	err = repo.Save(ctx, &QuizProgress{
		QuizKey:       "daily:2026-08-30",
		Answers:       map[string]string{"q1": "a", "q3": "c"},
		QuestionIndex: 2,
		RemainingSecs: 420,
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	p, err = repo.Load(ctx, "daily:2026-08-30", DefaultSnapshotMaxAge)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p == nil {
		t.Fatal("expected a snapshot")
	}
	if p.Answers["q3"] != "c" || p.QuestionIndex != 2 || p.RemainingSecs != 420 {
		t.Fatalf("unexpected snapshot: %+v", p)
	}

	// Saving the same quiz key again upserts rather than duplicating.
	err = repo.Save(ctx, &QuizProgress{
		QuizKey:       "daily:2026-08-30",
		Answers:       map[string]string{"q1": "b"},
		QuestionIndex: 0,
		RemainingSecs: 300,
	})
	if err != nil {
		t.Fatalf("re-save: %v", err)
	}
	p, err = repo.Load(ctx, "daily:2026-08-30", DefaultSnapshotMaxAge)
	if err != nil {
		t.Fatalf("load after re-save: %v", err)
	}
	if p.Answers["q1"] != "b" || p.RemainingSecs != 300 {
		t.Fatalf("expected upserted snapshot, got %+v", p)
	}

	if err := repo.Delete(ctx, "daily:2026-08-30"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	p, err = repo.Load(ctx, "daily:2026-08-30", DefaultSnapshotMaxAge)
	if err != nil {
		t.Fatalf("load after delete: %v", err)
	}
	if p != nil {
		t.Fatal("expected nil snapshot after delete")
	}
}

// backdateSnapshot rewrites updated_at so staleness can be tested
// without waiting.
func backdateSnapshot(t *testing.T, s *Store, quizKey string, age time.Duration) {
	t.Helper()
	_, err := s.Client().QuizSnapshot.Update().
		Where(quizsnapshot.QuizKey(quizKey)).
		SetUpdatedAt(time.Now().Add(-age)).
		Save(context.Background())
	if err != nil {
		t.Fatalf("backdate snapshot: %v", err)
	}
}

func TestSnapshotFreshWithinWindow(t *testing.T) {
	s := openTestStore(t)
	repo := s.QuizSnapshots()
	ctx := context.Background()

	err := repo.Save(ctx, &QuizProgress{
		QuizKey: "model:42",
		Answers: map[string]string{"q1": "a"},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	backdateSnapshot(t, s, "model:42", 30*time.Minute)

	p, err := repo.Load(ctx, "model:42", DefaultSnapshotMaxAge)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p == nil {
		t.Fatal("a 30-minute-old snapshot must be resumable")
	}
	if p.Answers["q1"] != "a" {
		t.Fatalf("unexpected answers: %+v", p.Answers)
	}
}

func TestStaleSnapshotDiscardedOnLoad(t *testing.T) {
	s := openTestStore(t)
	repo := s.QuizSnapshots()
	ctx := context.Background()

	err := repo.Save(ctx, &QuizProgress{
		QuizKey: "model:42",
		Answers: map[string]string{"q1": "a"},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	backdateSnapshot(t, s, "model:42", 3*time.Hour)

	p, err := repo.Load(ctx, "model:42", DefaultSnapshotMaxAge)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p != nil {
		t.Fatal("a 3-hour-old snapshot must be discarded as stale")
	}

	// The stale row is deleted as a side effect, not merely hidden.
	n, err := s.Client().QuizSnapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected stale snapshot to be deleted, found %d rows", n)
	}
}
