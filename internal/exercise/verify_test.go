package exercise

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/matrixlab/internal/matrix"
)

func TestVerify_Correct(t *testing.T) {
	want := matrix.MustNew([][]float64{{6, 8}, {10, 12}})
	v := Verify(matrix.MustNew([][]float64{{6, 8}, {10, 12.0004}}), want)

	assert.True(t, v.Correct)
	assert.False(t, v.ShapeMismatch)
	assert.Equal(t, [][]bool{{true, true}, {true, true}}, v.CellCorrect)
	assert.Empty(t, v.Wrong())
}

func TestVerify_WrongCells(t *testing.T) {
	want := matrix.MustNew([][]float64{{6, 8}, {10, 12}})
	v := Verify(matrix.MustNew([][]float64{{6, 9}, {10, 11}}), want)

	assert.False(t, v.Correct)
	assert.Equal(t, [][]bool{{true, false}, {true, false}}, v.CellCorrect)
	assert.Equal(t, []Position{{Row: 0, Col: 1}, {Row: 1, Col: 1}}, v.Wrong())
}

func TestVerify_ShapeMismatch(t *testing.T) {
	want := matrix.MustNew([][]float64{{1, 2}, {3, 4}})
	v := Verify(matrix.MustNew([][]float64{{1, 2, 0}, {3, 4, 0}}), want)

	assert.False(t, v.Correct)
	assert.True(t, v.ShapeMismatch)
	assert.Nil(t, v.CellCorrect)
}

func TestVerify_Tolerance(t *testing.T) {
	tests := []struct {
		got  float64
		want bool
	}{
		{-2, true},
		{-2.0009, true},
		{-1.9991, true},
		{-2.01, false},
		{2, false},
	}
	for _, tt := range tests {
		v := Verify(matrix.Scalar(tt.got), matrix.Scalar(-2))
		if v.Correct != tt.want {
			t.Errorf("Verify(%v, -2).Correct = %v, want %v", tt.got, v.Correct, tt.want)
		}
	}
}

func TestParseAnswer(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		text string
		want [][]float64
	}{
		{"grid", KindAdd, "6 8; 10 12", [][]float64{{6, 8}, {10, 12}}},
		{"scalar", KindDeterminant, " -2 ", [][]float64{{-2}}},
		{"decimal comma", KindDeterminant, "2,5", [][]float64{{2.5}}},
		{"yes", KindIsSquare, "Yes", [][]float64{{1}}},
		{"no", KindIsDiagonal, "n", [][]float64{{0}}},
		{"choice 1 is yes", KindIsDiagonal, "1", [][]float64{{1}}},
		{"choice 2 is no", KindIsSquare, "2", [][]float64{{0}}},
		{"type name", KindTypeClassification, "symmetric", [][]float64{{3}}},
		{"choice 1 is identity", KindTypeClassification, "1", [][]float64{{0}}},
		{"choice 2 is zero", KindTypeClassification, "2", [][]float64{{1}}},
		{"dimension with x", KindDimensionQuery, "2x3", [][]float64{{2, 3}}},
		{"dimension with spaces", KindDimensionQuery, "3 2", [][]float64{{3, 2}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAnswer(tt.text, &Exercise{Kind: tt.kind})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Data())
		})
	}
}

func TestParseAnswer_RejectsGarbage(t *testing.T) {
	for _, text := range []string{"", "abc", "1 2; 3", "maybe", "0", "3"} {
		_, err := ParseAnswer(text, &Exercise{Kind: KindIsSquare})
		assert.ErrorIs(t, err, matrix.ErrInput, "ParseAnswer(%q)", text)
	}
	_, err := ParseAnswer("0", &Exercise{Kind: KindTypeClassification})
	assert.ErrorIs(t, err, matrix.ErrInput, "type choices start at 1")
}

// Closed questions list their choices as numbered lines under the prompt;
// typing the number shown next to the right label must be graded correct.
func TestParseAnswer_ChoiceNumbersMatchListing(t *testing.T) {
	for _, kind := range []Kind{KindIsSquare, KindIsDiagonal, KindTypeClassification} {
		e := &Exercise{Kind: kind}
		assert.NotContains(t, Prompt(e), "=", "prompt should not carry its own codes")
		for i, c := range Choices(e) {
			got, err := ParseAnswer(strconv.Itoa(i+1), e)
			require.NoError(t, err)
			assert.True(t, Verify(got, matrix.Scalar(c.Value)).Correct, "%s choice %d (%s)", kind, i+1, c.Label)
		}
	}
}

func TestParseAnswer_ThenVerify(t *testing.T) {
	g := testGenerator()
	for i := 0; i < 100; i++ {
		e, err := g.Generate(CategoryRandom, DifficultyNormal)
		require.NoError(t, err)

		got, err := ParseAnswer(typedAnswer(e), e)
		require.NoError(t, err, "parse %s", e.Expected)
		assert.True(t, Verify(got, e.Expected).Correct, "%s: %s", e.Kind, e.Expected)
	}
}

// typedAnswer is what a learner would type for the right answer.
func typedAnswer(e *Exercise) string {
	for _, c := range Choices(e) {
		if c.Value == e.Expected.At(0, 0) {
			return c.Label
		}
	}
	return gridText(e.Expected)
}

func gridText(m matrix.Matrix) string {
	rows := make([]string, m.Rows())
	for i := range rows {
		rows[i] = strings.Join(m.RowStrings(i), " ")
	}
	return strings.Join(rows, "; ")
}
