package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/Adarsh-oo7/pscprep/internal/ui/theme"
)

// lowWaterFraction is the remaining-time fraction below which the bar
// switches to the warning color.
const lowWaterFraction = 0.2

// TimerBar displays remaining quiz time as a draining bar with a clock.
type TimerBar struct {
	Remaining int // seconds
	Total     int // seconds
	Width     int
}

// NewTimerBar creates a timer bar.
func NewTimerBar(remaining, total, width int) TimerBar {
	return TimerBar{Remaining: remaining, Total: total, Width: width}
}

// View renders the timer bar.
func (t TimerBar) View() string {
	clock := fmt.Sprintf(" %02d:%02d ", t.Remaining/60, t.Remaining%60)

	barWidth := t.Width - lipgloss.Width(clock)
	if barWidth < 4 {
		barWidth = 4
	}

	frac := 0.0
	if t.Total > 0 {
		frac = float64(t.Remaining) / float64(t.Total)
	}
	filled := int(float64(barWidth) * frac)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	fillColor := theme.Secondary
	clockStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if frac <= lowWaterFraction {
		fillColor = theme.Error
		clockStyle = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	}

	bar := lipgloss.NewStyle().Background(fillColor).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", empty))

	return clockStyle.Render(clock) + bar
}
