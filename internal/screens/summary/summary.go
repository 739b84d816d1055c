package summary

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/matrixlab/internal/exercise"
	"github.com/abhisek/matrixlab/internal/router"
	"github.com/abhisek/matrixlab/internal/screen"
	"github.com/abhisek/matrixlab/internal/session"
	"github.com/abhisek/matrixlab/internal/ui/layout"
	"github.com/abhisek/matrixlab/internal/ui/theme"
)

// Result is what the summary screen shows for a finished practice quiz or
// challenge.
type Result struct {
	Mode     session.Mode
	Label    string // module name or difficulty
	Correct  int
	Answered int
	Total    int // questions in the quiz; 0 for challenges
	Percent  float64
	Points   int
	Band     session.Band
}

// FromPractice builds a Result from a completed practice quiz.
func FromPractice(category exercise.Category, res session.PracticeResult, points int) Result {
	return Result{
		Mode:     session.ModePractice,
		Label:    exercise.DisplayName(category),
		Correct:  res.Correct,
		Answered: res.Total,
		Total:    res.Total,
		Percent:  res.Percent,
		Points:   points,
		Band:     res.Band,
	}
}

// FromChallenge builds a Result from an ended challenge.
func FromChallenge(difficulty exercise.Difficulty, res session.ChallengeResult) Result {
	return Result{
		Mode:     session.ModeChallenge,
		Label:    difficulty.DisplayName(),
		Correct:  res.Correct,
		Answered: res.Answered,
		Percent:  res.Accuracy,
		Points:   res.Score,
		Band:     res.Band,
	}
}

// SummaryScreen displays the result of a finished session.
type SummaryScreen struct {
	result Result
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(result Result) *SummaryScreen {
	return &SummaryScreen{result: result}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	if s.result.Mode == session.ModeChallenge {
		return "Challenge Results"
	}
	return "Practice Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	r := s.result
	center := func(c color.Color) lipgloss.Style {
		return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Foreground(c)
	}

	var b strings.Builder

	heading := "Practice complete!"
	if r.Mode == session.ModeChallenge {
		heading = "Time's up!"
	}
	b.WriteString("\n")
	b.WriteString(center(theme.Primary).Bold(true).Render(heading))
	b.WriteString("\n")
	b.WriteString(center(theme.TextDim).Render(r.Label))
	b.WriteString("\n\n")

	b.WriteString(center(bandColor(r.Band)).Bold(true).
		Render(fmt.Sprintf("%s  %s", r.Band.Icon(), r.Band.DisplayName())))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 48)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	var stats string
	if r.Mode == session.ModeChallenge {
		stats = fmt.Sprintf("Answered: %d      Correct: %d      Accuracy: %.0f%%",
			r.Answered, r.Correct, r.Percent)
	} else {
		stats = fmt.Sprintf("Correct: %d / %d      Score: %.0f%%",
			r.Correct, r.Total, r.Percent)
	}
	b.WriteString(center(theme.Text).Render(stats))
	b.WriteString("\n\n")
	b.WriteString(center(theme.ArcadeYellow).Bold(true).
		Render(fmt.Sprintf("+%d points", r.Points)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))

	return b.String()
}

// bandColor returns the theme color for a result band.
func bandColor(b session.Band) color.Color {
	switch b {
	case session.BandExcellent, session.BandMaster:
		return theme.ArcadeYellow
	case session.BandGood, session.BandGreat:
		return theme.Success
	case session.BandKeepPracticing:
		return theme.Secondary
	default:
		return theme.Accent
	}
}
