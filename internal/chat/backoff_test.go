package chat

import (
	"testing"
	"time"
)

func TestDelaySchedule(t *testing.T) {
	b := DefaultBackoff()

	want := []time.Duration{
		2 * time.Second,
		4 * time.Second,
		8 * time.Second,
		16 * time.Second,
		30 * time.Second, // capped
	}
	for i, w := range want {
		if got := b.Delay(i + 1); got != w {
			t.Errorf("attempt %d: expected %s, got %s", i+1, w, got)
		}
	}
}

func TestDelayStaysCapped(t *testing.T) {
	b := DefaultBackoff()
	for attempt := 5; attempt < 20; attempt++ {
		if got := b.Delay(attempt); got != 30*time.Second {
			t.Fatalf("attempt %d: expected cap 30s, got %s", attempt, got)
		}
	}
}

func TestDelayClampsLowAttempt(t *testing.T) {
	b := DefaultBackoff()
	if got := b.Delay(0); got != 2*time.Second {
		t.Fatalf("attempt 0: expected base 2s, got %s", got)
	}
	if got := b.Delay(-3); got != 2*time.Second {
		t.Fatalf("negative attempt: expected base 2s, got %s", got)
	}
}

func TestExhausted(t *testing.T) {
	b := DefaultBackoff()
	if b.Exhausted(5) {
		t.Fatal("attempt 5 is within the schedule")
	}
	if !b.Exhausted(6) {
		t.Fatal("attempt 6 exceeds the schedule")
	}
}
