package challenge

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/matrixlab/internal/exercise"
	"github.com/abhisek/matrixlab/internal/matrix"
	"github.com/abhisek/matrixlab/internal/ui/components"
	"github.com/abhisek/matrixlab/internal/ui/theme"
)

// lowTime is the remaining time at which the clock turns red.
const lowTime = 10

func (s *ChallengeScreen) renderMenu(width, height int) string {
	cw := components.ContentWidth(width)
	title := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Render("⚡ CHALLENGE MODE ⚡")
	sub := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Answer as many as you can before time runs out.\nCorrect answers in a row build a combo bonus.")
	menu := components.ArcadeMenu(s.menu, 24, cw, false)
	return components.CabinetFrame(strings.Join([]string{title, sub, menu}, "\n\n"), width, height)
}

// renderQuestionView renders the clock, the tally, the last outcome and
// the current exercise.
func (s *ChallengeScreen) renderQuestionView(width int) string {
	ex := s.challenge.Current()
	remaining := s.challenge.Remaining()
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder

	clockColor := theme.ArcadeCyan
	if remaining <= lowTime {
		clockColor = theme.Error
	}
	clock := lipgloss.NewStyle().
		Foreground(clockColor).
		Bold(true).
		Render(fmt.Sprintf("  ⏱ %d:%02d ", remaining/60, remaining%60))
	bar := components.NewProgressBar("", remaining, s.duration, 24)
	bar.Fill = clockColor

	tally := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Score %s   Combo x%d   %s %d/%d  ",
			lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(fmt.Sprint(s.challenge.Score())),
			s.challenge.Combo(),
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			s.challenge.Correct(),
			s.challenge.Answered(),
		))

	left := clock + bar.View()
	line := left
	if pad := width - lipgloss.Width(left) - lipgloss.Width(tally) - 2; pad > 0 {
		line += strings.Repeat(" ", pad) + tally
	}
	b.WriteString(line)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n")

	b.WriteString(s.renderFlash(width))
	b.WriteString("\n\n")

	if ex == nil {
		return b.String()
	}

	b.WriteString(center.Foreground(theme.Text).Bold(true).Render(exercise.Prompt(ex)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, components.ExerciseView(ex)))
	b.WriteString("\n\n")

	if s.choices != nil {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View()))
		return b.String()
	}

	b.WriteString(center.Render("Answer: " + s.input.View()))
	if s.inputErr != "" {
		b.WriteString("\n")
		b.WriteString(center.Foreground(theme.Error).Render(s.inputErr))
	}
	return b.String()
}

// renderFlash renders the outcome of the previous answer.
func (s *ChallengeScreen) renderFlash(width int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	if s.last == nil {
		return center.Foreground(theme.TextDim).Render("Go!")
	}
	if s.last.Verdict.Correct {
		text := fmt.Sprintf("✓ +%d", s.last.Points)
		if s.last.Combo > 1 {
			text += fmt.Sprintf(" (combo x%d)", s.last.Combo)
		}
		return center.Foreground(theme.Success).Bold(true).Render(text)
	}
	return center.Foreground(theme.Error).Bold(true).
		Render("✗ Expected " + answerText(s.last.Kind, s.last.Expected))
}

// answerText renders an expected answer on one line, naming the choice for
// closed questions.
func answerText(kind exercise.Kind, expected matrix.Matrix) string {
	for _, c := range exercise.Choices(&exercise.Exercise{Kind: kind}) {
		if c.Value == expected.At(0, 0) {
			return c.Label
		}
	}
	if expected.Rows() == 1 && expected.Cols() == 1 {
		return matrix.FormatValue(expected.At(0, 0))
	}
	return expected.String()
}

// renderQuitConfirm renders the early-end confirmation dialog.
func renderQuitConfirm(width int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(center.Foreground(theme.Text).Bold(true).Render("End the challenge now?"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).Render("The clock keeps running while you decide."))
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.Success).Render("[Y] Yes, show my results"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Primary).Render("[N] No, keep going"))
	return b.String()
}

// renderError renders an error message.
func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}
