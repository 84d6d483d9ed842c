package examlist

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Adarsh-oo7/pscprep/internal/api"
	"github.com/Adarsh-oo7/pscprep/internal/attempt"
	"github.com/Adarsh-oo7/pscprep/internal/router"
	"github.com/Adarsh-oo7/pscprep/internal/screen"
	"github.com/Adarsh-oo7/pscprep/internal/screens/quiz"
	"github.com/Adarsh-oo7/pscprep/internal/ui/components"
	"github.com/Adarsh-oo7/pscprep/internal/ui/theme"
)

// examsLoadedMsg is sent when the model exam listing arrives.
type examsLoadedMsg struct {
	Exams []api.Exam
	Err   error
}

// ExamListScreen lists available model exams.
type ExamListScreen struct {
	client   *api.Client
	quizDeps quiz.Deps

	menu   components.Menu
	loaded bool
	errMsg string
}

var _ screen.Screen = (*ExamListScreen)(nil)

// New creates an ExamListScreen.
func New(client *api.Client, quizDeps quiz.Deps) *ExamListScreen {
	return &ExamListScreen{client: client, quizDeps: quizDeps}
}

func (e *ExamListScreen) Init() tea.Cmd {
	client := e.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		exams, err := client.ModelExams(ctx)
		return examsLoadedMsg{Exams: exams, Err: err}
	}
}

func (e *ExamListScreen) Title() string {
	return "Model Exams"
}

func (e *ExamListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case examsLoadedMsg:
		if msg.Err != nil {
			e.errMsg = msg.Err.Error()
			return e, nil
		}
		e.loaded = true
		e.menu = components.NewMenu(e.menuItems(msg.Exams))
		return e, nil

	case tea.KeyMsg:
		if e.errMsg != "" {
			return e, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}

	if !e.loaded {
		return e, nil
	}
	var cmd tea.Cmd
	e.menu, cmd = e.menu.Update(msg)
	return e, cmd
}

func (e *ExamListScreen) menuItems(exams []api.Exam) []components.MenuItem {
	items := make([]components.MenuItem, 0, len(exams))
	for _, exam := range exams {
		exam := exam
		detail := fmt.Sprintf("%d min", exam.DurationMinutes)
		if exam.Date != "" {
			detail = exam.Date + " · " + detail
		}
		items = append(items, components.MenuItem{
			Label:  exam.Title,
			Detail: detail,
			Action: func() tea.Cmd { return e.openExam(exam) },
		})
	}
	if len(items) == 0 {
		items = append(items, components.MenuItem{Label: "No model exams available", Disabled: true})
	}
	return items
}

func (e *ExamListScreen) openExam(exam api.Exam) tea.Cmd {
	client := e.client
	deps := e.quizDeps
	return func() tea.Msg {
		spec := quiz.Spec{
			QuizKey: "model:" + exam.ID,
			Title:   exam.Title,
			Policy:  attempt.Overwrite,
			Fetch: func(ctx context.Context) ([]api.Question, time.Duration, error) {
				full, err := client.ModelExam(ctx, exam.ID)
				if err != nil {
					return nil, 0, err
				}
				return full.Questions, full.Duration(90 * time.Minute), nil
			},
		}
		return router.PushScreenMsg{Screen: quiz.New(deps, spec)}
	}
}

func (e *ExamListScreen) View(width, height int) string {
	if e.errMsg != "" {
		card := theme.Card.Render(
			lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("Could not load exams") +
				"\n\n" + theme.Body.Render(e.errMsg) +
				"\n\n" + theme.Hint.Render("Press any key to go back"))
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
	}
	if !e.loaded {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Loading exams..."))
	}

	card := theme.Card.Width(60).Render(e.menu.View())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
