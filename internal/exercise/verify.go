package exercise

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/matrixlab/internal/matrix"
)

// Verdict is the result of comparing a submitted grid with the expected one.
type Verdict struct {
	// Correct is true when every cell matches within tolerance.
	Correct bool

	// CellCorrect marks each cell of the submitted grid. Nil when the shapes
	// differ.
	CellCorrect [][]bool

	// ShapeMismatch is set when the submitted grid has the wrong dimensions.
	ShapeMismatch bool
}

// Wrong returns the positions of incorrect cells in row-major order.
func (v Verdict) Wrong() []Position {
	var out []Position
	for i, row := range v.CellCorrect {
		for j, ok := range row {
			if !ok {
				out = append(out, Position{Row: i, Col: j})
			}
		}
	}
	return out
}

// Verify compares submitted against expected cell by cell with
// matrix.DefaultTolerance. A shape mismatch is always incorrect.
func Verify(submitted, expected matrix.Matrix) Verdict {
	if submitted.Rows() != expected.Rows() || submitted.Cols() != expected.Cols() {
		return Verdict{ShapeMismatch: true}
	}

	v := Verdict{Correct: true, CellCorrect: make([][]bool, expected.Rows())}
	for i := range v.CellCorrect {
		v.CellCorrect[i] = make([]bool, expected.Cols())
		for j := range v.CellCorrect[i] {
			d := submitted.At(i, j) - expected.At(i, j)
			ok := d <= matrix.DefaultTolerance && d >= -matrix.DefaultTolerance
			v.CellCorrect[i][j] = ok
			if !ok {
				v.Correct = false
			}
		}
	}
	return v
}

// ParseAnswer parses the learner's text for e. Closed questions take the
// number of a choice as listed by Choices, or its label. Unparseable text
// yields a *matrix.InputError.
func ParseAnswer(text string, e *Exercise) (matrix.Matrix, error) {
	word := strings.ToLower(strings.TrimSpace(text))

	if choices := Choices(e); choices != nil {
		return parseChoice(word, choices)
	}

	if e.Kind == KindDimensionQuery {
		// "2x3" and "2×3" read as "2 3".
		text = strings.NewReplacer("x", " ", "×", " ").Replace(word)
	}
	return matrix.ParseGrid(text)
}

// parseChoice reads a closed-question answer: the choice number as listed
// (1 to n) or the choice label. For yes/no, y/n and true/false also work.
func parseChoice(word string, choices []Choice) (matrix.Matrix, error) {
	switch word {
	case "y", "true":
		word = "yes"
	case "n", "false":
		word = "no"
	}
	for i, c := range choices {
		if word == strconv.Itoa(i+1) || word == strings.ToLower(c.Label) {
			return matrix.Scalar(c.Value), nil
		}
	}
	return matrix.Matrix{}, &matrix.InputError{
		Text:   word,
		Reason: fmt.Sprintf("choose 1-%d", len(choices)),
	}
}
