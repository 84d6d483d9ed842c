package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette holds the colors for one theme variant.
type Palette struct {
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	Bg        color.Color
	BgCard    color.Color
	Border    color.Color
}

// Dark is the default palette.
var Dark = Palette{
	Primary:   lipgloss.Color("#38BDF8"), // Sky
	Secondary: lipgloss.Color("#A78BFA"), // Violet
	Accent:    lipgloss.Color("#FBBF24"), // Amber
	Success:   lipgloss.Color("#34D399"), // Emerald
	Error:     lipgloss.Color("#FB7185"), // Rose
	Text:      lipgloss.Color("#F1F5F9"), // White
	TextDim:   lipgloss.Color("#94A3B8"), // Slate
	Bg:        lipgloss.Color("#0B1120"), // Near Black
	BgCard:    lipgloss.Color("#1E293B"), // Dark Slate
	Border:    lipgloss.Color("#334155"), // Slate
}

// Light is the alternate palette for bright terminals.
var Light = Palette{
	Primary:   lipgloss.Color("#0284C7"),
	Secondary: lipgloss.Color("#7C3AED"),
	Accent:    lipgloss.Color("#D97706"),
	Success:   lipgloss.Color("#059669"),
	Error:     lipgloss.Color("#E11D48"),
	Text:      lipgloss.Color("#0F172A"),
	TextDim:   lipgloss.Color("#64748B"),
	Bg:        lipgloss.Color("#F8FAFC"),
	BgCard:    lipgloss.Color("#E2E8F0"),
	Border:    lipgloss.Color("#CBD5E1"),
}

// Active color variables, reassigned by Apply.
var (
	Primary   = Dark.Primary
	Secondary = Dark.Secondary
	Accent    = Dark.Accent
	Success   = Dark.Success
	Error     = Dark.Error
	Text      = Dark.Text
	TextDim   = Dark.TextDim
	Bg        = Dark.Bg
	BgCard    = Dark.BgCard
	Border    = Dark.Border
)

// Typography
var (
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Hint     lipgloss.Style
)

// Layout
var (
	Header lipgloss.Style
	Footer lipgloss.Style
	Card   lipgloss.Style
)

// States
var (
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Correct    lipgloss.Style
	Incorrect  lipgloss.Style
)

// Components
var (
	TimerFilled    lipgloss.Style
	TimerEmpty     lipgloss.Style
	ButtonActive   lipgloss.Style
	ButtonInactive lipgloss.Style
)

func init() {
	Apply("dark")
}

// Apply switches the active palette. Unknown names fall back to dark.
// Only safe to call from the UI goroutine.
func Apply(name string) {
	p := Dark
	if name == "light" {
		p = Light
	}

	Primary = p.Primary
	Secondary = p.Secondary
	Accent = p.Accent
	Success = p.Success
	Error = p.Error
	Text = p.Text
	TextDim = p.TextDim
	Bg = p.Bg
	BgCard = p.BgCard
	Border = p.Border

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
		Foreground(TextDim).
		Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	Selected = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Unselected = lipgloss.NewStyle().
		Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	TimerFilled = lipgloss.NewStyle().
		Background(Secondary)

	TimerEmpty = lipgloss.NewStyle().
		Background(Border)

	ButtonActive = lipgloss.NewStyle().
		Background(Primary).
		Foreground(Text).
		Bold(true).
		Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)
}
