package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: course green on a charcoal background.
var (
	Primary   = lipgloss.Color("#77C17B") // Course Green
	Secondary = lipgloss.Color("#4FA3D9") // Sky
	Accent    = lipgloss.Color("#F5B041") // Amber
	Success   = lipgloss.Color("#2ECC71") // Green
	Error     = lipgloss.Color("#E74C3C") // Red
	Text      = lipgloss.Color("#ECEFF1") // Off-white
	TextDim   = lipgloss.Color("#8E9AA6") // Grey
	BgDark    = lipgloss.Color("#15191E") // Charcoal
	BgCard    = lipgloss.Color("#222830") // Panel
	Border    = lipgloss.Color("#37414D") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Panels
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)

	FocusedCard = Card.
			BorderForeground(Primary)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Cursor = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)

	Done = lipgloss.NewStyle().
		Foreground(TextDim).
		Strikethrough(true)

	Check = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Primary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	KeyCap = lipgloss.NewStyle().
		Foreground(Text).
		Bold(true)

	Flash = lipgloss.NewStyle().
		Foreground(Accent).
		Italic(true)
)

// SeriesColors cycles through chart series.
var SeriesColors = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(Primary),
	lipgloss.NewStyle().Foreground(Secondary),
	lipgloss.NewStyle().Foreground(Accent),
}
