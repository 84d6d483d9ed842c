package login

import (
	"context"
	"errors"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Adarsh-oo7/pscprep/internal/api"
	"github.com/Adarsh-oo7/pscprep/internal/screen"
	"github.com/Adarsh-oo7/pscprep/internal/session"
	"github.com/Adarsh-oo7/pscprep/internal/ui/components"
	"github.com/Adarsh-oo7/pscprep/internal/ui/layout"
	"github.com/Adarsh-oo7/pscprep/internal/ui/theme"
)

// loginDoneMsg is sent when the login round-trip completes.
type loginDoneMsg struct {
	Err error
}

const (
	fieldUsername = iota
	fieldPassword
)

// LoginScreen collects credentials and signs the user in.
type LoginScreen struct {
	client *api.Client
	sess   *session.Session

	// onSuccess builds the command that replaces this screen once the
	// session is established.
	onSuccess func() tea.Cmd

	username components.TextInput
	password components.TextInput
	focused  int
	busy     bool
	errMsg   string
}

var _ screen.Screen = (*LoginScreen)(nil)
var _ screen.KeyHintProvider = (*LoginScreen)(nil)

// New creates a LoginScreen.
func New(client *api.Client, sess *session.Session, onSuccess func() tea.Cmd) *LoginScreen {
	return &LoginScreen{
		client:    client,
		sess:      sess,
		onSuccess: onSuccess,
		username:  components.NewTextInput("Username", "your username", false),
		password:  components.NewTextInput("Password", "", true),
	}
}

func (l *LoginScreen) Init() tea.Cmd {
	return l.username.Focus()
}

func (l *LoginScreen) Title() string {
	return "Sign In"
}

func (l *LoginScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Sign in"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (l *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loginDoneMsg:
		l.busy = false
		if msg.Err != nil {
			l.errMsg = loginErrorText(msg.Err)
			return l, nil
		}
		return l, l.onSuccess()

	case tea.KeyMsg:
		if l.busy {
			return l, nil
		}
		switch msg.String() {
		case "tab", "shift+tab", "up", "down":
			return l, l.switchField()
		case "enter":
			if l.focused == fieldUsername {
				return l, l.switchField()
			}
			return l, l.submit()
		}
	}

	var cmd tea.Cmd
	if l.focused == fieldUsername {
		l.username, cmd = l.username.Update(msg)
	} else {
		l.password, cmd = l.password.Update(msg)
	}
	return l, cmd
}

func (l *LoginScreen) switchField() tea.Cmd {
	if l.focused == fieldUsername {
		l.focused = fieldPassword
		l.username.Blur()
		return l.password.Focus()
	}
	l.focused = fieldUsername
	l.password.Blur()
	return l.username.Focus()
}

func (l *LoginScreen) submit() tea.Cmd {
	user := strings.TrimSpace(l.username.Value())
	pass := l.password.Value()
	if user == "" || pass == "" {
		l.errMsg = "Username and password are required"
		return nil
	}

	l.busy = true
	l.errMsg = ""

	client, sess := l.client, l.sess
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		resp, err := client.Login(ctx, user, pass)
		if err != nil {
			return loginDoneMsg{Err: err}
		}
		if err := sess.Login(ctx, resp.Access, resp.Refresh); err != nil {
			return loginDoneMsg{Err: err}
		}
		return loginDoneMsg{}
	}
}

func (l *LoginScreen) View(width, height int) string {
	title := theme.Title.Render("PSCPrep")
	subtitle := theme.Subtitle.Render("Kerala PSC exam preparation")

	form := l.username.View() + "\n\n" + l.password.View()

	status := ""
	switch {
	case l.busy:
		status = theme.Hint.Render("Signing in...")
	case l.errMsg != "":
		status = lipgloss.NewStyle().Foreground(theme.Error).Render(l.errMsg)
	}

	card := theme.Card.Width(44).Render(form + "\n\n" + status)

	content := title + "\n" + subtitle + "\n\n" + card

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// loginErrorText maps transport errors to something worth showing.
func loginErrorText(err error) string {
	if errors.Is(err, api.ErrUnauthorized) {
		return "Wrong username or password"
	}
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return "Could not sign in: " + err.Error()
}
