package chat

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

// fakeSocket scripts the read side of a connection.
type fakeSocket struct {
	in      chan []byte
	readErr error // returned once the in channel is drained and closed

	mu        sync.Mutex
	closed    bool
	closeOnce sync.Once
	done      chan struct{}
}

func newFakeSocket(readErr error) *fakeSocket {
	return &fakeSocket{
		in:      make(chan []byte, 8),
		readErr: readErr,
		done:    make(chan struct{}),
	}
}

func (f *fakeSocket) ReadMessage() (int, []byte, error) {
	select {
	case data, ok := <-f.in:
		if !ok {
			return 0, nil, f.readErr
		}
		return websocket.TextMessage, data, nil
	case <-f.done:
		return 0, nil, errors.New("socket closed")
	}
}

func (f *fakeSocket) WriteJSON(v any) error { return nil }

func (f *fakeSocket) WriteControl(messageType int, data []byte, deadline time.Time) error {
	return nil
}

func (f *fakeSocket) Close() error {
	f.closeOnce.Do(func() {
		f.mu.Lock()
		f.closed = true
		f.mu.Unlock()
		close(f.done)
	})
	return nil
}

// collect drains events until the channel closes, with a safety
// timeout so a broken loop fails the test instead of hanging it.
func collect(t *testing.T, c *Conn) []Event {
	t.Helper()
	var events []Event
	timeout := time.After(5 * time.Second)
	for {
		select {
		case ev, ok := <-c.Events():
			if !ok {
				return events
			}
			events = append(events, ev)
		case <-timeout:
			t.Fatal("timed out waiting for events channel to close")
		}
	}
}

func finalState(events []Event) State {
	s := Disconnected
	for _, ev := range events {
		if ev.Kind == EventState {
			s = ev.State
		}
	}
	return s
}

func TestDeliversIncomingMessages(t *testing.T) {
	sock := newFakeSocket(errors.New("connection reset"))
	sock.in <- []byte(`{"id":"m1","sender":"asha","message":"hello"}`)
	sock.in <- []byte(`not json`) // dropped silently
	sock.in <- []byte(`{"id":"m2","sender":"asha","message":"again"}`)

	c := New("ws://test", nil)
	c.dial = func(ctx context.Context, url string) (socket, error) { return sock, nil }

	c.Connect(context.Background())

	var got []string
	deadline := time.After(5 * time.Second)
	for len(got) < 2 {
		select {
		case ev := <-c.Events():
			if ev.Kind == EventMessage {
				got = append(got, ev.Message.ID)
			}
		case <-deadline:
			t.Fatal("timed out waiting for messages")
		}
	}

	if got[0] != "m1" || got[1] != "m2" {
		t.Fatalf("expected m1, m2; got %v", got)
	}
	c.Close()
	collect(t, c)
}

func TestCloseSuppressesReconnect(t *testing.T) {
	var mu sync.Mutex
	dials := 0

	c := New("ws://test", nil)
	c.dial = func(ctx context.Context, url string) (socket, error) {
		mu.Lock()
		dials++
		mu.Unlock()
		return newFakeSocket(errors.New("connection reset")), nil
	}

	c.Connect(context.Background())

	// Wait for the connection to come up, then close deliberately.
	deadline := time.After(5 * time.Second)
	for c.State() != Connected {
		select {
		case <-deadline:
			t.Fatal("never connected")
		case <-time.After(time.Millisecond):
		}
	}
	c.Close()

	events := collect(t, c)
	if s := finalState(events); s != Terminal {
		t.Fatalf("expected Terminal, got %v", s)
	}

	mu.Lock()
	defer mu.Unlock()
	if dials != 1 {
		t.Fatalf("expected no redial after Close, got %d dials", dials)
	}
}

func TestPeerNormalCloseEndsSession(t *testing.T) {
	dials := 0
	c := New("ws://test", nil)
	c.dial = func(ctx context.Context, url string) (socket, error) {
		dials++
		sock := newFakeSocket(&websocket.CloseError{Code: websocket.CloseNormalClosure})
		close(sock.in)
		return sock, nil
	}

	c.Connect(context.Background())
	events := collect(t, c)

	if s := finalState(events); s != Terminal {
		t.Fatalf("expected Terminal, got %v", s)
	}
	if dials != 1 {
		t.Fatalf("normal closure must not reconnect, got %d dials", dials)
	}
}

func TestReconnectExhaustionReachesTerminal(t *testing.T) {
	dials := 0
	c := New("ws://test", nil)
	c.backoff = Backoff{Base: time.Millisecond, Cap: time.Millisecond, MaxAttempts: 2}
	c.dial = func(ctx context.Context, url string) (socket, error) {
		dials++
		return nil, errors.New("refused")
	}

	c.Connect(context.Background())
	events := collect(t, c)

	if s := finalState(events); s != Terminal {
		t.Fatalf("expected Terminal, got %v", s)
	}
	// Initial try plus MaxAttempts retries.
	if dials != 3 {
		t.Fatalf("expected 3 dials, got %d", dials)
	}

	reconnects := 0
	for _, ev := range events {
		if ev.Kind == EventState && ev.State == Reconnecting {
			reconnects++
		}
	}
	if reconnects != 2 {
		t.Fatalf("expected 2 reconnecting events, got %d", reconnects)
	}
}

func TestSendRequiresOpenConnection(t *testing.T) {
	c := New("ws://test", nil)
	if err := c.Send("hello"); !errors.Is(err, ErrNotConnected) {
		t.Fatalf("expected ErrNotConnected, got %v", err)
	}
}
