package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/matrixlab/internal/exercise"
	"github.com/abhisek/matrixlab/internal/matrix"
	"github.com/abhisek/matrixlab/internal/ui/theme"
)

var operandNames = []string{"A", "B"}

// ExerciseView renders the operands of e next to each other. Element
// lookups highlight the asked cell.
func ExerciseView(e *exercise.Exercise) string {
	blocks := make([]string, 0, len(e.Operands)+1)
	for i, m := range e.Operands {
		v := NewMatrixView(operandNames[min(i, len(operandNames)-1)], m)
		if e.Kind == exercise.KindElementLookup {
			v.Target = [2]int{e.Target.Row, e.Target.Col}
			v.HasTarget = true
		}
		blocks = append(blocks, v.View())
	}
	if e.HasScalar {
		blocks = append(blocks, lipgloss.NewStyle().
			Foreground(theme.ArcadeYellow).
			Bold(true).
			Render(fmt.Sprintf("k = %s", matrix.FormatValue(e.Scalar))))
	}
	return SideBySide(4, blocks...)
}

// VerdictView renders the learner's grid with each cell marked against the
// verdict, next to the expected answer when it was wrong.
func VerdictView(submitted, expected matrix.Matrix, v exercise.Verdict) string {
	if v.Correct {
		mine := NewMatrixView("Your answer", submitted)
		mine.Marks = v.CellCorrect
		return mine.View()
	}

	want := NewMatrixView("Expected", expected).View()
	if !submitted.IsValid() {
		return want
	}
	mine := NewMatrixView("Yours", submitted)
	mine.Marks = v.CellCorrect
	if v.ShapeMismatch {
		note := lipgloss.NewStyle().Foreground(theme.Error).
			Render(fmt.Sprintf("wrong size: %s instead of %s", submitted.DimString(), expected.DimString()))
		return lipgloss.JoinVertical(lipgloss.Center, SideBySide(6, mine.View(), want), "", note)
	}
	return SideBySide(6, mine.View(), want)
}
