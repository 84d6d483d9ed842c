package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Adarsh-oo7/pscprep/internal/ui/theme"
)

// Option is a single answer choice identified by its option key.
type Option struct {
	Key  string
	Text string
}

// OptionList renders the choices of one question. Selection state lives
// outside the component; Chosen and Correct drive the highlighting.
type OptionList struct {
	Options []Option
	Cursor  int

	// Chosen is the key the learner has picked, empty when unanswered.
	Chosen string

	// Review switches to result coloring. Correct must be set.
	Review  bool
	Correct string
}

// NewOptionList creates an option list with the cursor on the first choice.
func NewOptionList(options []Option) OptionList {
	return OptionList{Options: options}
}

// Init returns nil.
func (o OptionList) Init() tea.Cmd {
	return nil
}

// Update moves the cursor. Choosing is left to the owning screen so it
// can apply its own selection policy.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	if o.Review {
		return o, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Options)-1 {
			o.Cursor++
		}
	}

	return o, nil
}

// CursorKey returns the option key under the cursor.
func (o OptionList) CursorKey() string {
	if o.Cursor < 0 || o.Cursor >= len(o.Options) {
		return ""
	}
	return o.Options[o.Cursor].Key
}

// View renders the option list.
func (o OptionList) View() string {
	var s string
	for i, opt := range o.Options {
		marker := "  "
		if opt.Key == o.Chosen {
			marker = "● "
		}
		prefix := "  "
		if i == o.Cursor && !o.Review {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s%s)  %s", prefix, marker, opt.Key, opt.Text)

		if o.Review {
			switch {
			case opt.Key == o.Correct:
				s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
			case opt.Key == o.Chosen:
				s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
			default:
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
		} else {
			switch {
			case i == o.Cursor:
				s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
			case opt.Key == o.Chosen:
				s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line) + "\n"
			default:
				s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
			}
		}
	}
	return s
}
