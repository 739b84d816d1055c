package exercise

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/abhisek/matrixlab/internal/matrix"
)

// invertibleThreshold is the |det| that operands which must be invertible
// have to exceed.
const invertibleThreshold = 0.001

// invertible reports whether det is far enough from zero.
func invertible(det float64) bool {
	return math.Abs(det) > invertibleThreshold
}

// Generator produces exercises.
type Generator interface {
	// Generate produces a single exercise for the given category.
	Generate(category Category, difficulty Difficulty) (*Exercise, error)
}

// RandomGenerator draws exercises from an injected random source, so a
// fixed seed reproduces the same sequence.
type RandomGenerator struct {
	rng *rand.Rand
	cfg Config
}

var _ Generator = (*RandomGenerator)(nil)

// New creates a RandomGenerator.
func New(rng *rand.Rand, cfg Config) *RandomGenerator {
	if cfg.MaxRerolls <= 0 {
		cfg.MaxRerolls = DefaultConfig().MaxRerolls
	}
	return &RandomGenerator{rng: rng, cfg: cfg}
}

// NewSeeded creates a RandomGenerator over a PCG source.
func NewSeeded(seed uint64, cfg Config) *RandomGenerator {
	return New(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), cfg)
}

// practicePool is what the random module draws from.
var practicePool = []Category{
	CategoryAddition,
	CategorySubtraction,
	CategoryScalar,
	CategoryMultiplication,
	CategoryTranspose,
	CategoryDeterminant,
	CategoryInverse,
	CategorySpecial,
}

// challengePool is what the mixed challenge draws from.
var challengePool = []Kind{
	KindAdd,
	KindSubtract,
	KindScalarMultiply,
	KindTranspose,
	KindDeterminant,
	KindElementLookup,
}

// Generate implements Generator.
func (g *RandomGenerator) Generate(category Category, difficulty Difficulty) (*Exercise, error) {
	var (
		ex  *Exercise
		err error
	)
	switch category {
	case CategoryRandom:
		ex, err = g.practice(practicePool[g.rng.IntN(len(practicePool))])
	case CategoryMixed:
		ex, err = g.challenge(challengePool[g.rng.IntN(len(challengePool))])
	default:
		ex, err = g.practice(category)
	}
	if err != nil {
		return nil, err
	}

	ex.ID = uuid.NewString()
	ex.Category = category
	ex.Difficulty = difficulty
	ex.Points = BasePoints(ex.Kind)
	return ex, nil
}

func (g *RandomGenerator) practice(category Category) (*Exercise, error) {
	switch category {
	case CategoryBasics:
		return g.basics(), nil
	case CategoryAddition:
		return g.binary(KindAdd, g.size(), g.size(), 1, 10, 1, 10)
	case CategorySubtraction:
		return g.binary(KindSubtract, g.size(), g.size(), 5, 15, 1, 10)
	case CategoryScalar:
		return g.scalar(g.size(), g.size()), nil
	case CategoryMultiplication:
		return g.multiply()
	case CategoryTranspose:
		return g.transpose(g.size(), g.size()), nil
	case CategoryDeterminant:
		n := 2
		if g.rng.IntN(2) == 1 {
			n = 3
		}
		return g.determinant(n, -5, 10, g.cfg.RequireInvertibleDeterminant)
	case CategoryInverse:
		return g.inverse()
	case CategorySpecial:
		return g.special(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
}

func (g *RandomGenerator) challenge(kind Kind) (*Exercise, error) {
	switch kind {
	case KindAdd:
		return g.binary(KindAdd, 2, 2, 1, 10, 1, 10)
	case KindSubtract:
		return g.binary(KindSubtract, 2, 2, 5, 15, 1, 10)
	case KindScalarMultiply:
		return g.scalar(2, 2), nil
	case KindTranspose:
		return g.transpose(g.size(), g.size()), nil
	case KindDeterminant:
		return g.determinant(2, 1, 8, g.cfg.RequireInvertibleDeterminant)
	default:
		a := matrix.Random(g.rng, g.size(), g.size(), 1, 15)
		return g.lookup(a), nil
	}
}

// size returns 2 or 3.
func (g *RandomGenerator) size() int {
	return 2 + g.rng.IntN(2)
}

func (g *RandomGenerator) binary(kind Kind, rows, cols, minA, maxA, minB, maxB int) (*Exercise, error) {
	a := matrix.Random(g.rng, rows, cols, minA, maxA)
	b := matrix.Random(g.rng, rows, cols, minB, maxB)

	op := matrix.Add
	if kind == KindSubtract {
		op = matrix.Subtract
	}
	want, err := op(a, b)
	if err != nil {
		return nil, err
	}
	return &Exercise{Kind: kind, Operands: []matrix.Matrix{a, b}, Expected: want}, nil
}

func (g *RandomGenerator) scalar(rows, cols int) *Exercise {
	a := matrix.Random(g.rng, rows, cols, 1, 10)
	k := float64(2 + g.rng.IntN(5))
	return &Exercise{
		Kind:      KindScalarMultiply,
		Operands:  []matrix.Matrix{a},
		Scalar:    k,
		HasScalar: true,
		Expected:  matrix.ScalarMultiply(k, a),
	}
}

func (g *RandomGenerator) multiply() (*Exercise, error) {
	a := matrix.Random(g.rng, 2, 2, 1, 5)
	b := matrix.Random(g.rng, 2, 2, 1, 5)
	want, err := matrix.Multiply(a, b)
	if err != nil {
		return nil, err
	}
	return &Exercise{Kind: KindMultiply, Operands: []matrix.Matrix{a, b}, Expected: want}, nil
}

func (g *RandomGenerator) transpose(rows, cols int) *Exercise {
	a := matrix.Random(g.rng, rows, cols, 1, 10)
	return &Exercise{Kind: KindTranspose, Operands: []matrix.Matrix{a}, Expected: matrix.Transpose(a)}
}

func (g *RandomGenerator) determinant(n, min, max int, requireInvertible bool) (*Exercise, error) {
	for range g.cfg.MaxRerolls {
		a := matrix.Random(g.rng, n, n, min, max)
		det, err := matrix.Determinant(a)
		if err != nil {
			return nil, err
		}
		if requireInvertible && !invertible(det) {
			continue
		}
		return &Exercise{Kind: KindDeterminant, Operands: []matrix.Matrix{a}, Expected: matrix.Scalar(det)}, nil
	}
	return nil, fmt.Errorf("%w: determinant %dx%d", ErrRerollLimit, n, n)
}

// inverse asks for the inverse of a 2×2 matrix, rounded cellwise to whole
// numbers.
func (g *RandomGenerator) inverse() (*Exercise, error) {
	for range g.cfg.MaxRerolls {
		a := matrix.Random(g.rng, 2, 2, 1, 5)
		det, err := matrix.Determinant(a)
		if err != nil {
			return nil, err
		}
		if !invertible(det) {
			continue
		}
		inv, err := matrix.Inverse(a)
		if err != nil {
			return nil, err
		}
		return &Exercise{
			Kind:     KindInverse,
			Operands: []matrix.Matrix{a},
			Expected: matrix.Round(inv),
			Rounded:  true,
		}, nil
	}
	return nil, fmt.Errorf("%w: inverse", ErrRerollLimit)
}

func (g *RandomGenerator) lookup(a matrix.Matrix) *Exercise {
	pos := Position{Row: g.rng.IntN(a.Rows()), Col: g.rng.IntN(a.Cols())}
	return &Exercise{
		Kind:     KindElementLookup,
		Operands: []matrix.Matrix{a},
		Target:   pos,
		Expected: matrix.Scalar(a.At(pos.Row, pos.Col)),
	}
}

func (g *RandomGenerator) basics() *Exercise {
	a := matrix.Random(g.rng, g.size(), g.size(), 1, 10)
	rows, cols := a.Shape()

	switch g.rng.IntN(4) {
	case 0:
		return &Exercise{
			Kind:     KindDimensionQuery,
			Operands: []matrix.Matrix{a},
			Expected: matrix.MustNew([][]float64{{float64(rows), float64(cols)}}),
		}
	case 1:
		return g.lookup(a)
	case 2:
		return &Exercise{
			Kind:     KindIsSquare,
			Operands: []matrix.Matrix{a},
			Expected: matrix.Scalar(boolValue(a.IsSquare())),
		}
	default:
		return &Exercise{
			Kind:     KindElementCount,
			Operands: []matrix.Matrix{a},
			Expected: matrix.Scalar(float64(rows * cols)),
		}
	}
}

func (g *RandomGenerator) special() *Exercise {
	n := g.size()

	switch g.rng.IntN(4) {
	case 0:
		code := g.rng.IntN(4)
		var a matrix.Matrix
		switch code {
		case TypeIdentity:
			a = matrix.Identity(n)
		case TypeZero:
			a = matrix.Zero(n)
		case TypeDiagonal:
			a = matrix.Diagonal(g.rng, n)
		default:
			a = matrix.Symmetric(g.rng, n)
		}
		return &Exercise{
			Kind:     KindTypeClassification,
			Operands: []matrix.Matrix{a},
			Expected: matrix.Scalar(float64(code)),
		}
	case 1:
		return &Exercise{
			Kind:     KindIdentityEntry,
			Size:     n,
			Expected: matrix.Identity(n),
		}
	case 2:
		full := matrix.Symmetric(g.rng, n)
		pos := Position{Row: 0, Col: n - 1}
		cells := full.Data()
		cells[pos.Row][pos.Col] = math.NaN()
		return &Exercise{
			Kind:     KindSymmetricEntry,
			Operands: []matrix.Matrix{matrix.MustNew(cells)},
			Target:   pos,
			Expected: matrix.Scalar(full.At(pos.Row, pos.Col)),
		}
	default:
		var a matrix.Matrix
		if g.rng.IntN(2) == 0 {
			a = matrix.Diagonal(g.rng, n)
		} else {
			a = matrix.Random(g.rng, n, n, 1, 10)
		}
		return &Exercise{
			Kind:     KindIsDiagonal,
			Operands: []matrix.Matrix{a},
			Expected: matrix.Scalar(boolValue(matrix.IsDiagonal(a))),
		}
	}
}

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
