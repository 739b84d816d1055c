package components

import (
	"math"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/matrixlab/internal/matrix"
	"github.com/abhisek/matrixlab/internal/ui/theme"
)

// MatrixView renders a matrix between brackets, optionally labelled and
// with per-cell highlighting.
type MatrixView struct {
	Name string
	M    matrix.Matrix

	// Marks colors each cell green or red. Ignored unless it has the
	// matrix's shape.
	Marks [][]bool

	// Target highlights a single cell when HasTarget is set.
	Target    [2]int
	HasTarget bool
}

// NewMatrixView returns a plain view of m labelled name.
func NewMatrixView(name string, m matrix.Matrix) MatrixView {
	return MatrixView{Name: name, M: m}
}

// View renders the matrix. NaN cells are shown as "?".
func (v MatrixView) View() string {
	rows, cols := v.M.Shape()
	if rows == 0 {
		return ""
	}

	widths := make([]int, cols)
	for i := range rows {
		for j := range cols {
			widths[j] = max(widths[j], len(matrix.FormatValue(v.M.At(i, j))))
		}
	}

	marked := len(v.Marks) == rows && len(v.Marks[0]) == cols
	label := ""
	if v.Name != "" {
		label = v.Name + " = "
	}
	pad := strings.Repeat(" ", lipgloss.Width(label))

	lines := make([]string, rows)
	for i := range rows {
		cells := make([]string, cols)
		for j := range cols {
			text := matrix.FormatValue(v.M.At(i, j))
			text = strings.Repeat(" ", widths[j]-len(text)) + text
			cells[j] = v.cellStyle(i, j, marked).Render(text)
		}
		left, right := brackets(i, rows)
		prefix := pad
		if i == rows/2 {
			prefix = lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(label)
		}
		lines[i] = prefix +
			theme.Bracket.Render(left) + " " +
			strings.Join(cells, "  ") +
			" " + theme.Bracket.Render(right)
	}
	return strings.Join(lines, "\n")
}

func (v MatrixView) cellStyle(i, j int, marked bool) lipgloss.Style {
	switch {
	case math.IsNaN(v.M.At(i, j)):
		return theme.CellHidden
	case v.HasTarget && v.Target == [2]int{i, j}:
		return theme.CellTarget
	case marked && v.Marks[i][j]:
		return theme.Correct
	case marked:
		return theme.Incorrect
	default:
		return theme.Cell
	}
}

func brackets(i, rows int) (string, string) {
	switch {
	case rows == 1:
		return "[", "]"
	case i == 0:
		return "┌", "┐"
	case i == rows-1:
		return "└", "┘"
	default:
		return "│", "│"
	}
}

// SideBySide joins rendered blocks horizontally with a gap, centered
// vertically.
func SideBySide(gap int, blocks ...string) string {
	parts := make([]string, 0, 2*len(blocks))
	spacer := strings.Repeat(" ", gap)
	for i, b := range blocks {
		if b == "" {
			continue
		}
		if i > 0 && len(parts) > 0 {
			parts = append(parts, spacer)
		}
		parts = append(parts, b)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}
