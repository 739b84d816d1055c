package matrix

import (
	"math"
	"strconv"
	"strings"
)

// FormatValue renders integral values without decimals and everything else
// with one decimal place. NaN renders as "?" (a hidden cell).
func FormatValue(v float64) string {
	switch {
	case math.IsNaN(v):
		return "?"
	case v == math.Trunc(v) && !math.IsInf(v, 0):
		if v == 0 {
			v = 0 // drop the sign of -0
		}
		return strconv.FormatFloat(v, 'f', 0, 64)
	default:
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
}

// String renders m as "[a, b; c, d]".
func (m Matrix) String() string {
	if !m.IsValid() {
		return "[]"
	}
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < m.rows; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(strings.Join(m.RowStrings(i), ", "))
	}
	b.WriteByte(']')
	return b.String()
}

// RowStrings returns row i formatted cell by cell with FormatValue.
func (m Matrix) RowStrings(i int) []string {
	out := make([]string, m.cols)
	for j := 0; j < m.cols; j++ {
		out[j] = FormatValue(m.At(i, j))
	}
	return out
}

// Lines renders m as aligned rows, one per line, suitable for monospace
// display: "| 1  2 |".
func (m Matrix) Lines() []string {
	width := 1
	for _, v := range m.data {
		if w := len(FormatValue(v)); w > width {
			width = w
		}
	}
	lines := make([]string, m.rows)
	for i := 0; i < m.rows; i++ {
		cells := m.RowStrings(i)
		for j, c := range cells {
			cells[j] = strings.Repeat(" ", width-len(c)) + c
		}
		lines[i] = "| " + strings.Join(cells, "  ") + " |"
	}
	return lines
}
