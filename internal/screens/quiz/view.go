package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/Adarsh-oo7/pscprep/internal/ui/components"
	"github.com/Adarsh-oo7/pscprep/internal/ui/theme"
)

func (q *QuizScreen) View(width, height int) string {
	switch q.phase {
	case phaseLoading:
		return center(width, height, theme.Hint.Render("Loading questions..."))
	case phaseError:
		return q.renderError(width, height)
	case phaseResumePrompt:
		return q.renderResumePrompt(width, height)
	case phaseSubmitting:
		return center(width, height, theme.Hint.Render("Submitting answers..."))
	case phaseReview:
		return q.renderReview(width, height)
	default:
		return q.renderActive(width, height)
	}
}

func (q *QuizScreen) renderError(width, height int) string {
	card := theme.Card.Width(min(width-4, 60)).Render(
		lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("Something went wrong") +
			"\n\n" + theme.Body.Render(q.errMsg) +
			"\n\n" + theme.Hint.Render("Press any key to go back"))
	return center(width, height, card)
}

func (q *QuizScreen) renderResumePrompt(width, height int) string {
	answered := 0
	if q.saved != nil {
		answered = len(q.saved.Answers)
	}
	mins, secs := 0, 0
	if q.saved != nil {
		mins, secs = q.saved.RemainingSecs/60, q.saved.RemainingSecs%60
	}

	body := fmt.Sprintf(
		"You left this quiz part-way through.\n\n%d answered · %02d:%02d left on the clock\n\nResume where you stopped?",
		answered, mins, secs)

	card := theme.Card.Width(min(width-4, 56)).Render(
		lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("Resume attempt?") +
			"\n\n" + theme.Body.Render(body))
	return center(width, height, card)
}

func (q *QuizScreen) renderActive(width, height int) string {
	cur := q.att.Current()
	if cur == nil {
		return ""
	}

	cw := min(width-8, 76)

	timer := components.NewTimerBar(q.att.Remaining(), q.total, cw).View()

	counter := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("Question %d of %d · %d answered",
			q.att.Index()+1, len(q.att.Questions), q.att.AnsweredCount()))

	prompt := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(cw).
		Render(cur.Prompt)

	sections := []string{timer, counter, "", prompt, "", q.options.View()}

	if q.phase == phaseConfirmSubmit {
		sections = append(sections, "", q.renderConfirm(cw))
	} else if q.errMsg != "" {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.Error).Width(cw).Render(q.errMsg))
	}

	content := strings.Join(sections, "\n")
	return center(width, height, content)
}

func (q *QuizScreen) renderConfirm(cw int) string {
	unanswered := len(q.att.Questions) - q.att.AnsweredCount()
	body := "Submit all answers now?"
	if unanswered > 0 {
		body = fmt.Sprintf("%d questions are still unanswered.\nSubmit anyway?", unanswered)
	}
	return theme.Card.Width(min(cw, 48)).Render(
		lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("Confirm submission") +
			"\n\n" + theme.Body.Render(body))
}

func (q *QuizScreen) renderReview(width, height int) string {
	cur := q.att.Current()
	result := q.att.Result
	if cur == nil || result == nil {
		return ""
	}

	cw := min(width-8, 76)

	score := theme.Card.Width(cw).Render(
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
			Render(fmt.Sprintf("Score: %.1f%%", result.Score)) +
			"   " +
			theme.Correct.Render(fmt.Sprintf("✓ %d", result.Correct)) +
			"   " +
			theme.Incorrect.Render(fmt.Sprintf("✗ %d", result.Wrong)) +
			"   " +
			lipgloss.NewStyle().Foreground(theme.TextDim).
				Render(fmt.Sprintf("— %d unanswered", result.Unanswered)))

	counter := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("Question %d of %d", q.att.Index()+1, len(q.att.Questions)))

	prompt := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(cw).
		Render(cur.Prompt)

	sections := []string{score, "", counter, "", prompt, "", q.options.View()}

	if cur.Explanation != "" {
		sections = append(sections, "",
			theme.Hint.Width(cw).Render(cur.Explanation))
	}

	if overlay := q.renderExplainOverlay(cw); overlay != "" {
		sections = append(sections, "", overlay)
	}

	content := strings.Join(sections, "\n")
	return center(width, height, content)
}

func (q *QuizScreen) renderExplainOverlay(cw int) string {
	switch {
	case q.explaining:
		return theme.Hint.Render("Asking the tutor...")
	case q.explainErr != "":
		return lipgloss.NewStyle().Foreground(theme.Error).Width(cw).Render(q.explainErr)
	case q.explanation != nil:
		var b strings.Builder
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Tutor"))
		b.WriteString("\n\n")
		b.WriteString(q.explanation.Summary)
		for i, step := range q.explanation.Steps {
			b.WriteString(fmt.Sprintf("\n  %d. %s", i+1, step))
		}
		if q.explanation.Trap != "" {
			b.WriteString("\n\n")
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render("Watch out: " + q.explanation.Trap))
		}
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("Press any key to close"))
		return theme.Card.Width(cw).Render(b.String())
	}
	return ""
}

func center(width, height int, content string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
