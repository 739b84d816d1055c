package lab

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/matrixlab/internal/ui/components"
	"github.com/abhisek/matrixlab/internal/ui/layout"
	"github.com/abhisek/matrixlab/internal/ui/theme"
)

func (s *LabScreen) View(width, height int) string {
	switch s.phase {
	case phaseOperation:
		return s.renderMenu(width, height)
	case phaseSteps:
		return s.renderSteps(width, height)
	default:
		return s.renderInput(width)
	}
}

func (s *LabScreen) renderMenu(width, height int) string {
	cw := components.ContentWidth(width)
	title := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.ArcadeCyan).
		Bold(true).
		Render("🧪 MATRIX LAB")
	sub := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Pick an operation, enter your matrices, see every step.")
	compact := layout.IsCompact(width, height)
	menu := components.ArcadeMenu(s.menu, 30, cw, compact)
	return components.CabinetFrame(strings.Join([]string{title, sub, menu}, "\n\n"), width, height)
}

// renderInput renders the operands entered so far and the input for the
// next one.
func (s *LabScreen) renderInput(width int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render(operationLabel(s.op)))
	b.WriteString("\n\n")

	var entered []string
	if s.phase != phaseA && s.a.IsValid() {
		entered = append(entered, components.NewMatrixView("A", s.a).View())
	}
	if len(entered) > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, components.SideBySide(4, entered...)))
		b.WriteString("\n\n")
	}

	var label string
	switch s.phase {
	case phaseA:
		label = "Matrix A"
	case phaseB:
		label = "Matrix B"
	case phaseScalar:
		label = "Scalar k"
	}
	b.WriteString(center.Render(label + ": " + s.input.View()))
	b.WriteString("\n")
	if s.inputErr != "" {
		b.WriteString(center.Foreground(theme.Error).Render(s.inputErr))
	} else {
		b.WriteString(center.Foreground(theme.TextDim).Render("Separate values with spaces and rows with ;"))
	}
	return b.String()
}

// renderSteps renders the worked solution in a scrolling viewport, or the
// reason the operation does not apply.
func (s *LabScreen) renderSteps(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	if s.stepErr != nil {
		var b strings.Builder
		b.WriteString("\n\n")
		b.WriteString(center.Foreground(theme.Error).Bold(true).Render("Cannot compute " + operationLabel(s.op)))
		b.WriteString("\n\n")
		b.WriteString(center.Foreground(theme.Text).Render(s.stepErr.Reason))
		b.WriteString("\n\n")
		b.WriteString(center.Foreground(theme.TextDim).Render("Press Enter to try other matrices."))
		return b.String()
	}

	vw := min(width-4, 72)
	s.viewport.SetWidth(vw)
	s.viewport.SetHeight(max(height-2, 3))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(s.viewport.View())
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, box)
}

// styleSteps styles a worked solution line by line.
func styleSteps(lines []string) string {
	out := make([]string, len(lines))
	for i, l := range lines {
		switch {
		case strings.HasPrefix(l, "==="):
			out[i] = theme.StepHeading.Render(l)
		case strings.HasPrefix(l, "═"):
			out[i] = theme.StepRule.Render(l)
		case strings.HasPrefix(l, "Step "), strings.HasPrefix(l, "Rule"), strings.HasPrefix(l, "Formula"):
			out[i] = theme.StepLabel.Render(l)
		default:
			out[i] = theme.StepBody.Render(l)
		}
	}
	return strings.Join(out, "\n")
}
