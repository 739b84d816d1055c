package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette, chalkboard lab with arcade highlights
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate

	ArcadeYellow = lipgloss.Color("#FACC15")
	ArcadeCyan   = lipgloss.Color("#22D3EE")
)

// Matrix cells
var (
	Bracket = lipgloss.NewStyle().
		Foreground(Secondary)

	Cell = lipgloss.NewStyle().
		Foreground(Text)

	CellHidden = lipgloss.NewStyle().
			Foreground(ArcadeYellow).
			Bold(true)

	CellTarget = lipgloss.NewStyle().
			Foreground(BgDark).
			Background(ArcadeCyan).
			Bold(true)
)

// Answer verdicts
var (
	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Worked solutions
var (
	StepHeading = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	StepRule = lipgloss.NewStyle().
			Foreground(ArcadeYellow)

	StepLabel = lipgloss.NewStyle().
			Foreground(ArcadeCyan).
			Bold(true)

	StepBody = lipgloss.NewStyle().
			Foreground(Text)
)
