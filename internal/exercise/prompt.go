package exercise

import (
	"fmt"
	"strings"

	"github.com/abhisek/matrixlab/internal/matrix"
)

// TypeNames lists the type classification choices, indexed by type code.
var TypeNames = []string{"identity", "zero", "diagonal", "symmetric"}

// Prompt returns the question text shown to the learner.
func Prompt(e *Exercise) string {
	switch e.Kind {
	case KindAdd:
		return "Compute A + B."
	case KindSubtract:
		return "Compute A - B."
	case KindScalarMultiply:
		return fmt.Sprintf("Compute %s · A.", matrix.FormatValue(e.Scalar))
	case KindMultiply:
		return "Compute A · B (row times column)."
	case KindTranspose:
		return "Compute Aᵀ (rows become columns)."
	case KindDeterminant:
		return "Compute det(A)."
	case KindInverse:
		return "Compute A⁻¹, rounded to whole numbers."
	case KindElementLookup:
		return fmt.Sprintf("What is the entry a%d%d (row %d, column %d)?",
			e.Target.Row+1, e.Target.Col+1, e.Target.Row+1, e.Target.Col+1)
	case KindDimensionQuery:
		return "What are the dimensions of A? Enter rows and columns."
	case KindElementCount:
		return "How many entries does A have?"
	case KindIsSquare:
		return "Is A a square matrix?"
	case KindIsDiagonal:
		return "Is A a diagonal matrix?"
	case KindTypeClassification:
		return "Which type is A?"
	case KindIdentityEntry:
		return fmt.Sprintf("Enter the %d×%d identity matrix.", e.Size, e.Size)
	case KindSymmetricEntry:
		return fmt.Sprintf("A is symmetric. Enter the missing entry a%d%d.", e.Target.Row+1, e.Target.Col+1)
	default:
		return "Solve the exercise."
	}
}

// InputHint describes the expected answer layout, e.g.
// "2 rows of 3 values: 1 2 3; 4 5 6".
func InputHint(e *Exercise) string {
	rows, cols := e.AnswerShape()
	switch {
	case rows == 1 && cols == 1:
		return "a single value"
	case rows == 1:
		return fmt.Sprintf("%d values on one line, e.g. %s", cols, sampleRow(cols, 1))
	default:
		ex := sampleRow(cols, 1)
		for i := 1; i < rows; i++ {
			ex += "; " + sampleRow(cols, i*cols+1)
		}
		return fmt.Sprintf("%d rows of %d values, e.g. %s", rows, cols, ex)
	}
}

func sampleRow(cols, start int) string {
	s := ""
	for j := 0; j < cols; j++ {
		if j > 0 {
			s += " "
		}
		s += fmt.Sprint(start + j)
	}
	return s
}

// Choice is a selectable answer for closed questions.
type Choice struct {
	Label string
	Value float64
}

// Choices returns the selectable answers for yes/no and type classification
// exercises, or nil when the answer has to be typed. Choices are shown and
// picked by their 1-based position; Value is the expected answer code.
func Choices(e *Exercise) []Choice {
	switch e.Kind {
	case KindIsSquare, KindIsDiagonal:
		return []Choice{{Label: "Yes", Value: 1}, {Label: "No", Value: 0}}
	case KindTypeClassification:
		out := make([]Choice, len(TypeNames))
		for code, name := range TypeNames {
			out[code] = Choice{Label: strings.ToUpper(name[:1]) + name[1:], Value: float64(code)}
		}
		return out
	}
	return nil
}
