package profile

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Adarsh-oo7/pscprep/internal/screen"
	"github.com/Adarsh-oo7/pscprep/internal/session"
	"github.com/Adarsh-oo7/pscprep/internal/ui/layout"
	"github.com/Adarsh-oo7/pscprep/internal/ui/theme"
)

// ProfileScreen shows the account snapshot and settings.
type ProfileScreen struct {
	sess     *session.Session
	onLogout func() tea.Cmd

	confirmLogout bool
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)

// New creates a ProfileScreen.
func New(sess *session.Session, onLogout func() tea.Cmd) *ProfileScreen {
	return &ProfileScreen{sess: sess, onLogout: onLogout}
}

func (p *ProfileScreen) Init() tea.Cmd {
	return nil
}

func (p *ProfileScreen) Title() string {
	return "Profile"
}

func (p *ProfileScreen) KeyHints() []layout.KeyHint {
	if p.confirmLogout {
		return []layout.KeyHint{
			{Key: "Y", Description: "Sign out"},
			{Key: "N", Description: "Stay"},
		}
	}
	return []layout.KeyHint{
		{Key: "T", Description: "Toggle theme"},
		{Key: "X", Description: "Sign out"},
		{Key: "Esc", Description: "Back"},
	}
}

func (p *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	if p.confirmLogout {
		switch kmsg.String() {
		case "y", "Y", "enter":
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			p.sess.Logout(ctx)
			cancel()
			return p, p.onLogout()
		case "n", "N", "esc":
			p.confirmLogout = false
		}
		return p, nil
	}

	switch kmsg.String() {
	case "t", "T":
		next := "light"
		if p.sess.Theme == "light" {
			next = "dark"
		}
		theme.Apply(next)
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		p.sess.SetTheme(ctx, next)
		cancel()
	case "x", "X":
		p.confirmLogout = true
	}
	return p, nil
}

func (p *ProfileScreen) View(width, height int) string {
	if p.confirmLogout {
		card := theme.Card.Width(44).Render(
			lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("Sign out?") +
				"\n\n" + theme.Body.Render("Stored credentials will be removed\nfrom this device."))
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
	}

	prof := p.sess.Profile()
	if prof == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Not signed in"))
	}

	label := lipgloss.NewStyle().Foreground(theme.TextDim).Width(14)
	value := lipgloss.NewStyle().Foreground(theme.Text)

	var b strings.Builder
	row := func(k, v string) {
		if v == "" {
			return
		}
		b.WriteString(label.Render(k) + value.Render(v) + "\n")
	}

	row("Username", prof.Username)
	row("Email", prof.Email)
	row("Focus exam", prof.FocusExam)
	row("Focus topic", prof.FocusTopic)
	row("Attempts", fmt.Sprintf("%d", prof.TotalAttempts))
	if prof.TotalAttempts > 0 {
		row("Average", fmt.Sprintf("%.1f%%", prof.AverageScore))
	}
	if prof.Rank > 0 {
		row("Rank", fmt.Sprintf("#%d", prof.Rank))
	}

	roles := make([]string, 0, 2)
	if prof.IsOwner {
		roles = append(roles, "owner")
	}
	if prof.IsContentCreator {
		roles = append(roles, "content creator")
	}
	row("Roles", strings.Join(roles, ", "))

	row("Theme", p.sess.Theme)

	if claims, err := session.ParseClaims(p.sess.AccessToken()); err == nil && !claims.ExpiresAt.IsZero() {
		expiry := claims.ExpiresAt.Local().Format("Jan 2 15:04")
		if claims.ExpiresWithin(30 * time.Minute) {
			expiry += "  " + lipgloss.NewStyle().Foreground(theme.Accent).Render("(soon)")
		}
		row("Session until", expiry)
	}

	card := theme.Card.Width(52).Render(
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(prof.Username) +
			"\n\n" + b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
