package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/matrixlab/internal/exercise"
	"github.com/abhisek/matrixlab/internal/ui/components"
	"github.com/abhisek/matrixlab/internal/ui/theme"
)

// renderQuestionView renders the active exercise and the answer widget.
func (s *PracticeScreen) renderQuestionView(width int) string {
	ex := s.practice.Current()
	if ex == nil {
		return renderLoading(width)
	}

	var b strings.Builder

	// Module and progress line.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s", exercise.DisplayName(s.category)))

	bar := components.NewProgressBar("", s.practice.Number()-1, s.practice.Total(), 20)
	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d/%d  %s %d  ",
			s.practice.Number(),
			s.practice.Total(),
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			s.practice.CorrectCount(),
		)) + bar.View()

	infoLine := infoLeft
	if pad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4; pad > 0 {
		infoLine += strings.Repeat(" ", pad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	b.WriteString(center.Foreground(theme.Text).Bold(true).Render(exercise.Prompt(ex)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, components.ExerciseView(ex)))
	b.WriteString("\n\n")

	if s.choices != nil {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View()))
	} else {
		b.WriteString(center.Render("Answer: " + s.input.View()))
		b.WriteString("\n")
		b.WriteString(center.Foreground(theme.TextDim).Render(exercise.InputHint(ex)))
		if s.inputErr != "" {
			b.WriteString("\n")
			b.WriteString(center.Foreground(theme.Error).Render(s.inputErr))
		}
	}

	if s.showingHint {
		b.WriteString("\n\n")
		b.WriteString(center.Foreground(theme.ArcadeCyan).Italic(true).Render("💡 " + exercise.Hint(s.category)))
	}

	return b.String()
}

// renderFeedback renders the graded answer.
func (s *PracticeScreen) renderFeedback(width int) string {
	ex := s.practice.Current()
	v := s.practice.LastVerdict()
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n\n")

	if v.Correct {
		b.WriteString(center.Foreground(theme.Success).Bold(true).
			Render(fmt.Sprintf("Correct! +%d", s.practice.LastPoints())))
	} else {
		b.WriteString(center.Foreground(theme.Error).Bold(true).Render("Not quite"))
	}
	b.WriteString("\n\n")

	if ex != nil {
		if s.choices != nil {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View()))
		} else {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				components.VerdictView(s.submitted, ex.Expected, v)))
		}
		b.WriteString("\n\n")
	}

	if !v.Correct {
		b.WriteString(center.Foreground(theme.ArcadeCyan).Italic(true).Render("💡 " + exercise.Hint(s.category)))
		b.WriteString("\n\n")
	}

	b.WriteString(center.Foreground(theme.TextDim).Render("Press any key to continue..."))
	return b.String()
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(center.Foreground(theme.Text).Bold(true).Render("Leave this quiz?"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).Render("Points you already earned are kept."))
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.Success).Render("[Y] Yes, leave"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Primary).Render("[N] No, keep going"))
	return b.String()
}

// renderLoading renders the loading state.
func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Preparing your exercises...")
}

// renderError renders an error message.
func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}
