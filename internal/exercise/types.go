package exercise

import "github.com/abhisek/matrixlab/internal/matrix"

// Category identifies a learning module. Practice quizzes draw from a single
// category; the challenge draws from CategoryMixed.
type Category string

const (
	CategoryBasics         Category = "basics"
	CategoryAddition       Category = "addition"
	CategorySubtraction    Category = "subtraction"
	CategoryScalar         Category = "scalar"
	CategoryMultiplication Category = "multiplication"
	CategoryTranspose      Category = "transpose"
	CategoryDeterminant    Category = "determinant"
	CategoryInverse        Category = "inverse"
	CategorySpecial        Category = "special"
	CategoryRandom         Category = "random"

	// CategoryMixed is the challenge pool. It is not a practice module.
	CategoryMixed Category = "mixed"
)

// Kind describes the operation an exercise asks for.
type Kind string

const (
	KindAdd                Kind = "add"
	KindSubtract           Kind = "subtract"
	KindScalarMultiply     Kind = "scalar_multiply"
	KindMultiply           Kind = "multiply"
	KindTranspose          Kind = "transpose"
	KindDeterminant        Kind = "determinant"
	KindInverse            Kind = "inverse"
	KindElementLookup      Kind = "element_lookup"
	KindDimensionQuery     Kind = "dimension_query"
	KindElementCount       Kind = "element_count"
	KindIsSquare           Kind = "is_square"
	KindIsDiagonal         Kind = "is_diagonal"
	KindTypeClassification Kind = "type_classification"
	KindIdentityEntry      Kind = "identity_entry"
	KindSymmetricEntry     Kind = "symmetric_entry"
)

// Difficulty selects the challenge time budget. It is recorded on every
// exercise for display.
type Difficulty string

const (
	DifficultyBeginner Difficulty = "beginner"
	DifficultyNormal   Difficulty = "normal"
	DifficultyExpert   Difficulty = "expert"
)

// Difficulties returns every difficulty from easiest to hardest.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyBeginner, DifficultyNormal, DifficultyExpert}
}

// DisplayName returns the capitalized difficulty name.
func (d Difficulty) DisplayName() string {
	switch d {
	case DifficultyBeginner:
		return "Beginner"
	case DifficultyExpert:
		return "Expert"
	default:
		return "Normal"
	}
}

// ParseDifficulty maps a user-supplied name to a Difficulty.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch Difficulty(s) {
	case DifficultyBeginner, DifficultyNormal, DifficultyExpert:
		return Difficulty(s), true
	}
	return "", false
}

// Type codes used by type classification exercises.
const (
	TypeIdentity  = 0
	TypeZero      = 1
	TypeDiagonal  = 2
	TypeSymmetric = 3
)

// Position is a zero-based cell coordinate.
type Position struct {
	Row, Col int
}

// Exercise is a single generated question with its expected answer.
// It is read-only once created.
type Exercise struct {
	// ID is a random uuid used for log correlation.
	ID string

	// Category is the module the exercise was requested for. For random and
	// mixed requests this is the requested category, not the one drawn.
	Category Category

	// Kind is the operation the learner has to perform.
	Kind Kind

	// Operands holds zero, one or two input matrices.
	Operands []matrix.Matrix

	// Scalar is the multiplier for scalar exercises. Valid only if HasScalar.
	Scalar    float64
	HasScalar bool

	// Target is the 0-based cell for element lookups and symmetric entries.
	Target Position

	// Size is the order of the matrix asked for in identity entry exercises.
	Size int

	// Expected is the answer the learner's grid is compared against.
	Expected matrix.Matrix

	// Points is the base point value of the exercise.
	Points int

	// Difficulty is the difficulty the exercise was generated under.
	Difficulty Difficulty

	// Rounded is set when Expected has been rounded to integers.
	Rounded bool
}

// AnswerShape returns the rows and columns the answer grid must have.
func (e *Exercise) AnswerShape() (rows, cols int) {
	return e.Expected.Shape()
}
