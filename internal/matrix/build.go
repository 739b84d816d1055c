package matrix

import (
	"math"
	"math/rand/v2"
)

// Random returns a rows×cols matrix filled with uniform integers in
// [min, max].
func Random(r *rand.Rand, rows, cols, min, max int) Matrix {
	out := zeros(rows, cols)
	for i := range out.data {
		out.data[i] = float64(min + r.IntN(max-min+1))
	}
	return out
}

// Identity returns the n×n identity matrix.
func Identity(n int) Matrix {
	out := zeros(n, n)
	for i := 0; i < n; i++ {
		out.set(i, i, 1)
	}
	return out
}

// Zero returns the n×n zero matrix.
func Zero(n int) Matrix {
	return zeros(n, n)
}

// Zeros returns the rows×cols zero matrix.
func Zeros(rows, cols int) Matrix {
	return zeros(rows, cols)
}

// Diagonal returns an n×n matrix with random diagonal entries in 1..9 and
// zero elsewhere.
func Diagonal(r *rand.Rand, n int) Matrix {
	out := zeros(n, n)
	for i := 0; i < n; i++ {
		out.set(i, i, float64(1+r.IntN(9)))
	}
	return out
}

// Symmetric returns an n×n matrix whose upper triangle (diagonal included)
// is random in 1..9 and mirrored into the lower triangle.
func Symmetric(r *rand.Rand, n int) Matrix {
	out := zeros(n, n)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := float64(1 + r.IntN(9))
			out.set(i, j, v)
			out.set(j, i, v)
		}
	}
	return out
}

// IsIdentity reports whether a is square with ones on the diagonal and zero
// elsewhere, within DefaultTolerance.
func IsIdentity(a Matrix) bool {
	return a.IsSquare() && Equal(a, Identity(a.rows))
}

// IsZero reports whether every cell of a is zero within DefaultTolerance.
func IsZero(a Matrix) bool {
	for _, v := range a.data {
		if !nearZero(v) {
			return false
		}
	}
	return a.IsValid()
}

// IsDiagonal reports whether a is square and every off-diagonal cell is
// zero within DefaultTolerance.
func IsDiagonal(a Matrix) bool {
	if !a.IsValid() || !a.IsSquare() {
		return false
	}
	for i := 0; i < a.rows; i++ {
		for j := 0; j < a.cols; j++ {
			if i != j && !nearZero(a.At(i, j)) {
				return false
			}
		}
	}
	return true
}

// nearZero is false for NaN.
func nearZero(v float64) bool {
	return math.Abs(v) <= DefaultTolerance
}

// IsSymmetric reports whether a equals its transpose within DefaultTolerance.
func IsSymmetric(a Matrix) bool {
	return a.IsValid() && a.IsSquare() && Equal(a, Transpose(a))
}
