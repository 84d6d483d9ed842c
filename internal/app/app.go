package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/sirupsen/logrus"

	"github.com/Adarsh-oo7/pscprep/internal/api"
	"github.com/Adarsh-oo7/pscprep/internal/router"
	"github.com/Adarsh-oo7/pscprep/internal/screen"
	"github.com/Adarsh-oo7/pscprep/internal/screens/home"
	"github.com/Adarsh-oo7/pscprep/internal/screens/login"
	"github.com/Adarsh-oo7/pscprep/internal/session"
	"github.com/Adarsh-oo7/pscprep/internal/store"
	"github.com/Adarsh-oo7/pscprep/internal/tutor"
	"github.com/Adarsh-oo7/pscprep/internal/ui/layout"
	"github.com/Adarsh-oo7/pscprep/internal/ui/theme"
)

// Deps carries the wired services into the UI.
type Deps struct {
	API       *api.Client
	Sess      *session.Session
	Snapshots store.QuizSnapshotRepo
	Prefs     store.PreferenceRepo
	Explainer *tutor.Explainer // nil when no tutor provider is configured
	Log       *logrus.Entry

	// Authenticated selects the initial screen: home when a stored
	// session was restored, login otherwise.
	Authenticated bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	sess   *session.Session
	width  int
	height int
}

// newAppModel builds the screen graph. Login and home reference each
// other through the sign-in/sign-out transitions, so both are built as
// closures here.
func newAppModel(deps Deps) AppModel {
	var buildHome func() screen.Screen
	var buildLogin func() screen.Screen

	buildHome = func() screen.Screen {
		return home.New(home.Deps{
			API:       deps.API,
			Sess:      deps.Sess,
			Snapshots: deps.Snapshots,
			Prefs:     deps.Prefs,
			Explainer: deps.Explainer,
			Log:       deps.Log,
			OnLogout: func() tea.Cmd {
				return func() tea.Msg {
					return router.ReplaceScreenMsg{Screen: buildLogin()}
				}
			},
		})
	}

	buildLogin = func() screen.Screen {
		return login.New(deps.API, deps.Sess, func() tea.Cmd {
			return func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: buildHome()}
			}
		})
	}

	var initial screen.Screen
	if deps.Authenticated {
		initial = buildHome()
	} else {
		initial = buildLogin()
	}

	return AppModel{
		router: router.New(initial),
		sess:   deps.Sess,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.router.Shutdown()
			return m, tea.Quit
		case "esc":
			if i, ok := m.router.Active().(screen.EscInterceptor); ok && i.InterceptEsc() {
				break // forward to the screen
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	username, focus := "", ""
	if p := m.sess.Profile(); p != nil {
		username = p.Username
		focus = p.FocusExam
	}
	header := layout.RenderHeader(title, username, focus, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	if len(footerHints) == 0 {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
		if m.router.Depth() > 1 {
			footerHints = append(footerHints, layout.KeyHint{Key: "Esc", Description: "Back"})
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(deps Deps) error {
	theme.Apply(deps.Sess.Theme)

	p := tea.NewProgram(newAppModel(deps))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
