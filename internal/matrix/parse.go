package matrix

import (
	"math"
	"strconv"
	"strings"
)

// ParseValue parses a single learner-entered number. Surrounding whitespace
// is ignored and "," is accepted as the decimal separator. Empty or
// non-numeric text yields an *InputError; it is never coerced to zero.
func ParseValue(text string) (float64, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, &InputError{Text: text, Reason: "empty value"}
	}
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &InputError{Text: text, Reason: "not a number"}
	}
	return v, nil
}

// ParseGrid parses a grid of numbers. Rows are separated by ";" or newlines
// and cells by whitespace, e.g. "1 2; 3 4". Square brackets are ignored so
// that "[1 2; 3 4]" is accepted too. Ragged rows are rejected.
func ParseGrid(text string) (Matrix, error) {
	cleaned := strings.NewReplacer("[", " ", "]", " ").Replace(text)
	rawRows := strings.FieldsFunc(cleaned, func(r rune) bool { return r == ';' || r == '\n' })

	var grid [][]float64
	for _, raw := range rawRows {
		fields := strings.Fields(raw)
		if len(fields) == 0 {
			continue
		}
		row := make([]float64, len(fields))
		for j, f := range fields {
			v, err := ParseValue(f)
			if err != nil {
				return Matrix{}, &InputError{Text: f, Row: len(grid) + 1, Col: j + 1, Reason: "not a number"}
			}
			row[j] = v
		}
		if len(grid) > 0 && len(row) != len(grid[0]) {
			return Matrix{}, &InputError{Text: raw, Row: len(grid) + 1, Reason: "rows must all have the same number of values"}
		}
		grid = append(grid, row)
	}
	if len(grid) == 0 {
		return Matrix{}, &InputError{Text: text, Reason: "no values entered"}
	}
	return New(grid)
}
