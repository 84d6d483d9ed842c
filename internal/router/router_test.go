package router

import (
	"testing"

	"github.com/Adarsh-oo7/pscprep/internal/screen"

	tea "charm.land/bubbletea/v2"
)

type stubScreen struct {
	name   string
	inited *bool
	closed *int
	lastMsg tea.Msg
}

func (s *stubScreen) Init() tea.Cmd {
	if s.inited != nil {
		*s.inited = true
	}
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.lastMsg = msg
	return s, nil
}

func (s *stubScreen) View(width, height int) string { return s.name }
func (s *stubScreen) Title() string                 { return s.name }

func (s *stubScreen) Close() {
	if s.closed != nil {
		*s.closed++
	}
}

func TestPushPopDepth(t *testing.T) {
	r := New(&stubScreen{name: "home"})
	if r.Depth() != 1 {
		t.Fatalf("expected depth 1, got %d", r.Depth())
	}

	var inited bool
	r.Update(PushScreenMsg{Screen: &stubScreen{name: "quiz", inited: &inited}})
	if r.Depth() != 2 {
		t.Fatalf("expected depth 2, got %d", r.Depth())
	}
	if !inited {
		t.Error("pushed screen must be initialized")
	}
	if r.Active().Title() != "quiz" {
		t.Errorf("active: got %q", r.Active().Title())
	}

	r.Update(PopScreenMsg{})
	if r.Depth() != 1 || r.Active().Title() != "home" {
		t.Fatalf("expected home at depth 1, got %q at %d", r.Active().Title(), r.Depth())
	}
}

func TestPopClosesScreen(t *testing.T) {
	var closed int
	r := New(&stubScreen{name: "home"})
	r.Push(&stubScreen{name: "chat", closed: &closed})

	r.Pop()
	if closed != 1 {
		t.Fatalf("expected popped screen to be closed once, got %d", closed)
	}
}

func TestPopAtBottomIsNoop(t *testing.T) {
	var closed int
	r := New(&stubScreen{name: "home", closed: &closed})

	r.Pop()
	if r.Depth() != 1 {
		t.Fatalf("expected depth to stay 1, got %d", r.Depth())
	}
	if closed != 0 {
		t.Error("bottom screen must not be closed by Pop")
	}
}

func TestReplaceClosesOldAndInitsNew(t *testing.T) {
	var closed int
	var inited bool
	r := New(&stubScreen{name: "login", closed: &closed})

	r.Update(ReplaceScreenMsg{Screen: &stubScreen{name: "home", inited: &inited}})
	if closed != 1 {
		t.Error("replaced screen must be closed")
	}
	if !inited {
		t.Error("replacement screen must be initialized")
	}
	if r.Depth() != 1 || r.Active().Title() != "home" {
		t.Fatalf("expected home at depth 1, got %q at %d", r.Active().Title(), r.Depth())
	}
}

func TestUpdateForwardsToActiveOnly(t *testing.T) {
	bottom := &stubScreen{name: "home"}
	top := &stubScreen{name: "quiz"}
	r := New(bottom)
	r.Push(top)

	msg := tea.WindowSizeMsg{Width: 100, Height: 40}
	r.Update(msg)

	if top.lastMsg != msg {
		t.Error("active screen did not receive the message")
	}
	if bottom.lastMsg != nil {
		t.Error("covered screen must not receive messages")
	}
}

func TestShutdownClosesWholeStack(t *testing.T) {
	var a, b int
	r := New(&stubScreen{name: "home", closed: &a})
	r.Push(&stubScreen{name: "chat", closed: &b})

	r.Shutdown()
	if a != 1 || b != 1 {
		t.Fatalf("expected every screen closed once, got %d and %d", a, b)
	}
}
