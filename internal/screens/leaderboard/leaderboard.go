package leaderboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Adarsh-oo7/pscprep/internal/api"
	"github.com/Adarsh-oo7/pscprep/internal/router"
	"github.com/Adarsh-oo7/pscprep/internal/screen"
	"github.com/Adarsh-oo7/pscprep/internal/ui/layout"
	"github.com/Adarsh-oo7/pscprep/internal/ui/theme"
)

// entriesLoadedMsg is sent when the leaderboard fetch completes.
type entriesLoadedMsg struct {
	Entries []api.LeaderboardEntry
	Err     error
}

// LeaderboardScreen shows ranked scores for one exam or globally.
type LeaderboardScreen struct {
	client *api.Client
	examID string

	entries []api.LeaderboardEntry
	loaded  bool
	errMsg  string
}

var _ screen.Screen = (*LeaderboardScreen)(nil)
var _ screen.KeyHintProvider = (*LeaderboardScreen)(nil)

// New creates a LeaderboardScreen. An empty examID shows the global
// board.
func New(client *api.Client, examID string) *LeaderboardScreen {
	return &LeaderboardScreen{client: client, examID: examID}
}

func (l *LeaderboardScreen) Init() tea.Cmd {
	return l.fetch()
}

func (l *LeaderboardScreen) Title() string {
	if l.examID != "" {
		return "Leaderboard · " + l.examID
	}
	return "Leaderboard"
}

func (l *LeaderboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "R", Description: "Refresh"},
		{Key: "Esc", Description: "Back"},
	}
}

func (l *LeaderboardScreen) fetch() tea.Cmd {
	client, examID := l.client, l.examID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		entries, err := client.Leaderboard(ctx, examID)
		return entriesLoadedMsg{Entries: entries, Err: err}
	}
}

func (l *LeaderboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case entriesLoadedMsg:
		if msg.Err != nil {
			l.errMsg = msg.Err.Error()
			return l, nil
		}
		l.loaded = true
		l.errMsg = ""
		l.entries = msg.Entries
		return l, nil

	case tea.KeyMsg:
		if l.errMsg != "" {
			return l, func() tea.Msg { return router.PopScreenMsg{} }
		}
		switch msg.String() {
		case "r", "R":
			return l, l.fetch()
		}
	}
	return l, nil
}

func (l *LeaderboardScreen) View(width, height int) string {
	if l.errMsg != "" {
		card := theme.Card.Render(
			lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("Could not load leaderboard") +
				"\n\n" + theme.Body.Render(l.errMsg) +
				"\n\n" + theme.Hint.Render("Press any key to go back"))
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
	}
	if !l.loaded {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Loading leaderboard..."))
	}
	if len(l.entries) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("No scores yet"))
	}

	var b strings.Builder
	header := lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).
		Render(fmt.Sprintf("%4s  %-20s %8s %9s", "#", "NAME", "SCORE", "ATTEMPTS"))
	b.WriteString(header + "\n")

	for _, e := range l.entries {
		line := fmt.Sprintf("%4d  %-20s %7.1f%% %9d", e.Rank, e.Username, e.Score, e.Attempts)
		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch e.Rank {
		case 1:
			style = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
		case 2, 3:
			style = lipgloss.NewStyle().Foreground(theme.Secondary)
		}
		b.WriteString(style.Render(line) + "\n")
	}

	card := theme.Card.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
