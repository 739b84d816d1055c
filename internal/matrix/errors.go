package matrix

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the arithmetic routines. Callers match them
// with errors.Is; wrappers add context with fmt.Errorf("...: %w", ErrX).
var (
	// ErrShapeMismatch indicates incompatible operand shapes, e.g. Add on
	// different shapes, Multiply where a.Cols() != b.Rows(), or a square
	// matrix required but not given.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrUnsupportedSize indicates a square matrix whose size is outside the
	// supported range (determinant 2..3, inverse 2).
	ErrUnsupportedSize = errors.New("matrix: unsupported size")

	// ErrSingular is returned by Inverse when |det| is below SingularThreshold.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrInput indicates user text that could not be parsed as a number or grid.
	ErrInput = errors.New("matrix: invalid input")

	// ErrBadShape is returned when constructing a matrix with no rows, no
	// columns, or ragged rows.
	ErrBadShape = errors.New("matrix: invalid shape")
)

// InputError describes unparseable user text. It wraps ErrInput.
type InputError struct {
	Text   string
	Row    int // 1-based, 0 when not applicable
	Col    int // 1-based, 0 when not applicable
	Reason string
}

func (e *InputError) Error() string {
	if e.Row > 0 && e.Col > 0 {
		return fmt.Sprintf("invalid input %q at row %d, column %d: %s", e.Text, e.Row, e.Col, e.Reason)
	}
	if e.Row > 0 {
		return fmt.Sprintf("invalid input at row %d: %s", e.Row, e.Reason)
	}
	return fmt.Sprintf("invalid input %q: %s", e.Text, e.Reason)
}

func (e *InputError) Unwrap() error { return ErrInput }
