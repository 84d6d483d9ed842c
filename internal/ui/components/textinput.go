package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Adarsh-oo7/pscprep/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with app styling.
type TextInput struct {
	Model    textinput.Model
	Label    string
	errorMsg string
}

// NewTextInput creates a new styled text input.
func NewTextInput(label, placeholder string, masked bool) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if masked {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '•'
	}

	return TextInput{
		Model: ti,
		Label: label,
	}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// Focus gives the input keyboard focus.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes keyboard focus.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Focused reports whether the input has focus.
func (t TextInput) Focused() bool {
	return t.Model.Focused()
}

// SetError attaches a validation message shown next to the input.
func (t *TextInput) SetError(msg string) {
	t.errorMsg = msg
}

// View renders the text input with its label.
func (t TextInput) View() string {
	label := ""
	if t.Label != "" {
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if t.Model.Focused() {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		label = style.Render(t.Label) + "\n"
	}

	view := label + t.Model.View()
	if t.errorMsg != "" {
		view += "\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(t.errorMsg)
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}
