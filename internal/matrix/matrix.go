// Package matrix implements the small dense matrix arithmetic used by the
// exercises, the answer verifier, and the lab step traces.
package matrix

import "fmt"

// DefaultTolerance is the absolute per-cell tolerance used when comparing
// computed results against learner answers.
const DefaultTolerance = 0.001

// Matrix is an immutable rows×cols grid of real numbers.
// The zero value is not a valid matrix; use New or one of the builders.
type Matrix struct {
	rows, cols int
	data       []float64 // row-major
}

// New validates the grid and returns a Matrix holding a copy of it.
// Every row must have the same, non-zero length.
func New(grid [][]float64) (Matrix, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return Matrix{}, ErrBadShape
	}
	cols := len(grid[0])
	data := make([]float64, 0, len(grid)*cols)
	for i, row := range grid {
		if len(row) != cols {
			return Matrix{}, fmt.Errorf("row %d has %d values, want %d: %w", i+1, len(row), cols, ErrBadShape)
		}
		data = append(data, row...)
	}
	return Matrix{rows: len(grid), cols: cols, data: data}, nil
}

// MustNew is like New but panics on an invalid grid. Intended for literals
// in tests and tables.
func MustNew(grid [][]float64) Matrix {
	m, err := New(grid)
	if err != nil {
		panic(err)
	}
	return m
}

// Scalar returns the 1×1 matrix holding v. Scalar-valued answers
// (determinants, element lookups, yes/no) are carried this way.
func Scalar(v float64) Matrix {
	return Matrix{rows: 1, cols: 1, data: []float64{v}}
}

// zeros allocates a rows×cols matrix filled with zero.
func zeros(rows, cols int) Matrix {
	return Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// Rows returns the number of rows.
func (m Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m Matrix) Cols() int { return m.cols }

// Shape returns rows and columns.
func (m Matrix) Shape() (int, int) { return m.rows, m.cols }

// IsValid reports whether m was built by a constructor.
func (m Matrix) IsValid() bool { return m.rows > 0 && m.cols > 0 }

// IsSquare reports whether rows == cols.
func (m Matrix) IsSquare() bool { return m.rows == m.cols }

// At returns the value at row i, column j (0-based). It panics on an out of
// range index like a slice access would.
func (m Matrix) At(i, j int) float64 {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("matrix: index (%d,%d) out of range for %dx%d", i, j, m.rows, m.cols))
	}
	return m.data[i*m.cols+j]
}

// Data returns a deep copy of the grid.
func (m Matrix) Data() [][]float64 {
	out := make([][]float64, m.rows)
	for i := range out {
		out[i] = make([]float64, m.cols)
		copy(out[i], m.data[i*m.cols:(i+1)*m.cols])
	}
	return out
}

// DimString renders the shape as "RxC".
func (m Matrix) DimString() string {
	return fmt.Sprintf("%dx%d", m.rows, m.cols)
}

// set is only used while a freshly allocated matrix is being filled.
func (m Matrix) set(i, j int, v float64) {
	m.data[i*m.cols+j] = v
}
