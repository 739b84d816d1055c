package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/matrixlab/internal/ui/theme"
)

const (
	barFull  = "█"
	barEmpty = "░"
)

// ProgressBar draws how far through a run the player is, either exercises
// answered or seconds left on the clock.
type ProgressBar struct {
	Label       string
	Ratio       float64
	ShowPercent bool
	Width       int

	// Fill overrides the filled color. Defaults to theme.Secondary.
	Fill color.Color
}

// NewProgressBar creates a progress bar for done out of total. A zero
// total renders as empty.
func NewProgressBar(label string, done, total, width int) ProgressBar {
	ratio := 0.0
	if total > 0 {
		ratio = float64(done) / float64(total)
	}
	return ProgressBar{Label: label, Ratio: ratio, Width: width}
}

// Cells returns how many of n cells are filled.
func (p ProgressBar) Cells(n int) int {
	return min(max(int(float64(n)*p.Ratio+0.5), 0), n)
}

func (p ProgressBar) View() string {
	var b strings.Builder
	if p.Label != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label))
		b.WriteString("  ")
	}

	suffix := ""
	if p.ShowPercent {
		suffix = fmt.Sprintf("  %d%%", int(min(max(p.Ratio, 0), 1)*100))
	}

	n := max(p.Width-lipgloss.Width(b.String())-lipgloss.Width(suffix), 4)
	filled := p.Cells(n)

	fill := p.Fill
	if fill == nil {
		fill = theme.Secondary
	}
	b.WriteString(lipgloss.NewStyle().Foreground(fill).Render(strings.Repeat(barFull, filled)))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat(barEmpty, n-filled)))

	if suffix != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(suffix))
	}
	return b.String()
}
