package home

import (
	"context"
	"fmt"
	"strconv"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/sirupsen/logrus"

	"github.com/Adarsh-oo7/pscprep/internal/api"
	"github.com/Adarsh-oo7/pscprep/internal/attempt"
	"github.com/Adarsh-oo7/pscprep/internal/router"
	"github.com/Adarsh-oo7/pscprep/internal/screen"
	"github.com/Adarsh-oo7/pscprep/internal/screens/chatlist"
	"github.com/Adarsh-oo7/pscprep/internal/screens/examlist"
	"github.com/Adarsh-oo7/pscprep/internal/screens/feed"
	"github.com/Adarsh-oo7/pscprep/internal/screens/leaderboard"
	"github.com/Adarsh-oo7/pscprep/internal/screens/profile"
	"github.com/Adarsh-oo7/pscprep/internal/screens/quiz"
	"github.com/Adarsh-oo7/pscprep/internal/session"
	"github.com/Adarsh-oo7/pscprep/internal/store"
	"github.com/Adarsh-oo7/pscprep/internal/tutor"
	"github.com/Adarsh-oo7/pscprep/internal/ui/components"
	"github.com/Adarsh-oo7/pscprep/internal/ui/theme"
)

const (
	defaultPracticeCount   = 20
	defaultPracticeMinutes = 10
)

// Deps bundles the services the home screen hands down to the screens
// it opens.
type Deps struct {
	API       *api.Client
	Sess      *session.Session
	Snapshots store.QuizSnapshotRepo
	Prefs     store.PreferenceRepo
	Explainer *tutor.Explainer // nil when no tutor provider is configured
	Log       *logrus.Entry

	// OnLogout rebuilds the login screen after the session is cleared.
	OnLogout func() tea.Cmd
}

// HomeScreen is the main menu shown after sign-in.
type HomeScreen struct {
	deps Deps
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen.
func New(deps Deps) *HomeScreen {
	h := &HomeScreen{deps: deps}

	items := []components.MenuItem{
		{Label: "DAILY EXAM", Detail: "today's scheduled paper", Action: h.openDailyExam},
		{Label: "MODEL EXAMS", Detail: "full-length mock papers", Action: h.openModelExams},
		{Label: "PRACTICE", Detail: "quick topic drill", Action: h.openPractice},
		{Label: "LEADERBOARD", Detail: "see where you stand", Action: h.openLeaderboard},
		{Label: "COMMUNITY", Detail: "posts from other aspirants", Action: h.openFeed},
		{Label: "MESSAGES", Detail: "direct and group chats", Action: h.openChats},
		{Label: "PROFILE", Detail: "account and settings", Action: h.openProfile},
		{Label: "QUIT", Action: func() tea.Cmd { return tea.Quit }},
	}

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	title := theme.Title.Render("PSCPrep")
	subtitle := theme.Subtitle.Render(h.greeting())
	menu := theme.Card.Width(52).Render(h.menu.View())

	content := title + "\n" + subtitle + "\n\n" + menu
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) greeting() string {
	p := h.deps.Sess.Profile()
	if p == nil {
		return "welcome"
	}
	if p.TotalAttempts > 0 {
		return fmt.Sprintf("welcome back, %s · %d attempts · avg %.1f%%",
			p.Username, p.TotalAttempts, p.AverageScore)
	}
	return "welcome, " + p.Username
}

func (h *HomeScreen) quizDeps() quiz.Deps {
	return quiz.Deps{
		API:       h.deps.API,
		Snapshots: h.deps.Snapshots,
		Explainer: h.deps.Explainer,
		Log:       h.deps.Log,
	}
}

func (h *HomeScreen) openDailyExam() tea.Cmd {
	deps := h.quizDeps()
	client := h.deps.API
	return func() tea.Msg {
		day := time.Now().Format("2006-01-02")
		spec := quiz.Spec{
			QuizKey: "daily:" + day,
			Title:   "Daily Exam",
			Policy:  attempt.Overwrite,
			Fetch: func(ctx context.Context) ([]api.Question, time.Duration, error) {
				exam, err := client.DailyExam(ctx)
				if err != nil {
					return nil, 0, err
				}
				return exam.Questions, exam.Duration(defaultPracticeMinutes * time.Minute), nil
			},
		}
		return router.PushScreenMsg{Screen: quiz.New(deps, spec)}
	}
}

func (h *HomeScreen) openModelExams() tea.Cmd {
	deps := h.quizDeps()
	client := h.deps.API
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: examlist.New(client, deps)}
	}
}

func (h *HomeScreen) openPractice() tea.Cmd {
	deps := h.quizDeps()
	client := h.deps.API
	sess := h.deps.Sess
	prefs := h.deps.Prefs
	return func() tea.Msg {
		topic := sess.ActiveTopicID
		if topic == "" {
			if p := sess.Profile(); p != nil {
				topic = p.FocusTopic
			}
		}
		if topic == "" {
			topic = "general"
		}

		minutes := defaultPracticeMinutes
		if v, err := prefs.Get(context.Background(), store.PrefQuizMinutes); err == nil && v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				minutes = n
			}
		}

		spec := quiz.Spec{
			QuizKey: "practice:" + topic,
			Title:   "Practice · " + topic,
			Policy:  attempt.Toggle,
			Fetch: func(ctx context.Context) ([]api.Question, time.Duration, error) {
				qs, err := client.PracticeQuestions(ctx, topic, defaultPracticeCount)
				if err != nil {
					return nil, 0, err
				}
				return qs, time.Duration(minutes) * time.Minute, nil
			},
		}
		return router.PushScreenMsg{Screen: quiz.New(deps, spec)}
	}
}

func (h *HomeScreen) openLeaderboard() tea.Cmd {
	client := h.deps.API
	sess := h.deps.Sess
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: leaderboard.New(client, sess.ActiveExamID)}
	}
}

func (h *HomeScreen) openFeed() tea.Cmd {
	client := h.deps.API
	log := h.deps.Log
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: feed.New(client, log)}
	}
}

func (h *HomeScreen) openChats() tea.Cmd {
	client := h.deps.API
	log := h.deps.Log
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: chatlist.New(client, log)}
	}
}

func (h *HomeScreen) openProfile() tea.Cmd {
	deps := h.deps
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: profile.New(deps.Sess, deps.OnLogout)}
	}
}
