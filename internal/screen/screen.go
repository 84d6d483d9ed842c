package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Adarsh-oo7/pscprep/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// Closer is an optional interface for screens holding resources that
// outlive a single Update call (timers, sockets). The router calls
// Close when the screen is popped or replaced.
type Closer interface {
	Close()
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// EscInterceptor lets a screen consume Esc (for its own dialogs)
// instead of the default pop-screen behavior.
type EscInterceptor interface {
	InterceptEsc() bool
}
