package matrix

import (
	"fmt"
	"math"
)

// SingularThreshold is the |det| below which Inverse reports ErrSingular.
const SingularThreshold = 1e-4

// Add returns a + b. Both operands must have the same shape.
func Add(a, b Matrix) (Matrix, error) {
	return elementwise(a, b, func(x, y float64) float64 { return x + y })
}

// Subtract returns a - b. Both operands must have the same shape.
func Subtract(a, b Matrix) (Matrix, error) {
	return elementwise(a, b, func(x, y float64) float64 { return x - y })
}

func elementwise(a, b Matrix, f func(x, y float64) float64) (Matrix, error) {
	if a.rows != b.rows || a.cols != b.cols {
		return Matrix{}, fmt.Errorf("%s vs %s: %w", a.DimString(), b.DimString(), ErrShapeMismatch)
	}
	out := zeros(a.rows, a.cols)
	for i := range a.data {
		out.data[i] = f(a.data[i], b.data[i])
	}
	return out, nil
}

// ScalarMultiply returns k·a.
func ScalarMultiply(k float64, a Matrix) Matrix {
	out := zeros(a.rows, a.cols)
	for i, v := range a.data {
		out.data[i] = k * v
	}
	return out
}

// Multiply returns the matrix product a·b. Requires a.Cols() == b.Rows();
// the result is a.Rows()×b.Cols().
func Multiply(a, b Matrix) (Matrix, error) {
	if a.cols != b.rows {
		return Matrix{}, fmt.Errorf("cols(A)=%d, rows(B)=%d: %w", a.cols, b.rows, ErrShapeMismatch)
	}
	out := zeros(a.rows, b.cols)
	for i := 0; i < a.rows; i++ {
		for j := 0; j < b.cols; j++ {
			out.set(i, j, DotProduct(a, b, i, j))
		}
	}
	return out, nil
}

// DotProduct returns row i of a times column j of b. The caller guarantees
// a.Cols() == b.Rows().
func DotProduct(a, b Matrix, i, j int) float64 {
	var sum float64
	for k := 0; k < a.cols; k++ {
		sum += a.At(i, k) * b.At(k, j)
	}
	return sum
}

// Transpose returns aᵀ.
func Transpose(a Matrix) Matrix {
	out := zeros(a.cols, a.rows)
	for i := 0; i < a.rows; i++ {
		for j := 0; j < a.cols; j++ {
			out.set(j, i, a.At(i, j))
		}
	}
	return out
}

// SarrusTerms returns the three forward-diagonal and three backward-diagonal
// products of a 3×3 matrix. The determinant is sum(plus) - sum(minus).
func SarrusTerms(a Matrix) (plus, minus [3]float64, err error) {
	if !a.IsSquare() {
		return plus, minus, fmt.Errorf("determinant of %s: %w", a.DimString(), ErrShapeMismatch)
	}
	if a.rows != 3 {
		return plus, minus, fmt.Errorf("sarrus rule needs 3x3, got %s: %w", a.DimString(), ErrUnsupportedSize)
	}
	plus = [3]float64{
		a.At(0, 0) * a.At(1, 1) * a.At(2, 2),
		a.At(0, 1) * a.At(1, 2) * a.At(2, 0),
		a.At(0, 2) * a.At(1, 0) * a.At(2, 1),
	}
	minus = [3]float64{
		a.At(0, 2) * a.At(1, 1) * a.At(2, 0),
		a.At(0, 0) * a.At(1, 2) * a.At(2, 1),
		a.At(0, 1) * a.At(1, 0) * a.At(2, 2),
	}
	return plus, minus, nil
}

// DiagonalProducts returns a·d and b·c for a 2×2 matrix [[a, b], [c, d]].
// The determinant is main - anti.
func DiagonalProducts(a Matrix) (main, anti float64, err error) {
	if !a.IsSquare() {
		return 0, 0, fmt.Errorf("determinant of %s: %w", a.DimString(), ErrShapeMismatch)
	}
	if a.rows != 2 {
		return 0, 0, fmt.Errorf("diagonal products need 2x2, got %s: %w", a.DimString(), ErrUnsupportedSize)
	}
	return a.At(0, 0) * a.At(1, 1), a.At(0, 1) * a.At(1, 0), nil
}

// Determinant returns det(a) for 2×2 (ad - bc) and 3×3 (Sarrus rule)
// matrices.
func Determinant(a Matrix) (float64, error) {
	if !a.IsSquare() {
		return 0, fmt.Errorf("determinant of %s: %w", a.DimString(), ErrShapeMismatch)
	}
	switch a.rows {
	case 2:
		main, anti, err := DiagonalProducts(a)
		if err != nil {
			return 0, err
		}
		return main - anti, nil
	case 3:
		plus, minus, err := SarrusTerms(a)
		if err != nil {
			return 0, err
		}
		return plus[0] + plus[1] + plus[2] - minus[0] - minus[1] - minus[2], nil
	default:
		return 0, fmt.Errorf("determinant of %s: %w", a.DimString(), ErrUnsupportedSize)
	}
}

// Adjugate returns [[d, -b], [-c, a]] for a 2×2 matrix [[a, b], [c, d]].
func Adjugate(a Matrix) (Matrix, error) {
	if !a.IsSquare() {
		return Matrix{}, fmt.Errorf("adjugate of %s: %w", a.DimString(), ErrShapeMismatch)
	}
	if a.rows != 2 {
		return Matrix{}, fmt.Errorf("adjugate of %s: %w", a.DimString(), ErrUnsupportedSize)
	}
	return MustNew([][]float64{
		{a.At(1, 1), -a.At(0, 1)},
		{-a.At(1, 0), a.At(0, 0)},
	}), nil
}

// Inverse returns a⁻¹ = (1/det)·adj(a) for a 2×2 matrix.
// Returns ErrSingular when |det| < SingularThreshold.
func Inverse(a Matrix) (Matrix, error) {
	if !a.IsSquare() {
		return Matrix{}, fmt.Errorf("inverse of %s: %w", a.DimString(), ErrShapeMismatch)
	}
	if a.rows != 2 {
		return Matrix{}, fmt.Errorf("inverse of %s: %w", a.DimString(), ErrUnsupportedSize)
	}
	det, err := Determinant(a)
	if err != nil {
		return Matrix{}, err
	}
	if math.Abs(det) < SingularThreshold {
		return Matrix{}, fmt.Errorf("det = %s: %w", FormatValue(det), ErrSingular)
	}
	adj, err := Adjugate(a)
	if err != nil {
		return Matrix{}, err
	}
	return ScalarMultiply(1/det, adj), nil
}

// Round returns a copy of a with every cell rounded to the nearest integer.
func Round(a Matrix) Matrix {
	out := zeros(a.rows, a.cols)
	for i, v := range a.data {
		out.data[i] = math.Round(v)
	}
	return out
}

// EqualWithin reports whether a and b have the same shape and every pair of
// cells differs by at most eps.
func EqualWithin(a, b Matrix, eps float64) bool {
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}
	for i := range a.data {
		// NaN never compares equal.
		if !(math.Abs(a.data[i]-b.data[i]) <= eps) {
			return false
		}
	}
	return true
}

// Equal is EqualWithin using DefaultTolerance.
func Equal(a, b Matrix) bool {
	return EqualWithin(a, b, DefaultTolerance)
}
