package exercise

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/matrixlab/internal/matrix"
)

func TestModules_Order(t *testing.T) {
	mods := Modules()
	if assert.Len(t, mods, 10) {
		assert.Equal(t, CategoryBasics, mods[0].Category)
		assert.Equal(t, CategoryRandom, mods[9].Category)
	}
	for _, m := range mods {
		assert.NotEmpty(t, m.Name)
		assert.NotEmpty(t, m.Hint)
		assert.True(t, m.Stars >= 1 && m.Stars <= 5, "%s stars = %d", m.Category, m.Stars)
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
		ok   bool
	}{
		{"basics", CategoryBasics, true},
		{"inverse", CategoryInverse, true},
		{"1", CategoryBasics, true},
		{"10", CategoryRandom, true},
		{"mixed", "", false},
		{"11", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseCategory(tt.in)
		assert.Equal(t, tt.ok, ok, "ParseCategory(%q)", tt.in)
		assert.Equal(t, tt.want, got, "ParseCategory(%q)", tt.in)
	}
}

func TestBasePoints(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindAdd, 10},
		{KindSubtract, 10},
		{KindScalarMultiply, 12},
		{KindTranspose, 15},
		{KindDeterminant, 20},
		{KindElementLookup, 8},
		{KindInverse, 10},
		{KindIsSquare, 10},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BasePoints(tt.kind), "BasePoints(%s)", tt.kind)
	}
}

func TestHint(t *testing.T) {
	assert.Contains(t, Hint(CategoryDeterminant), "Sarrus")
	assert.NotEmpty(t, Hint(CategoryMixed))
}

func TestPrompt(t *testing.T) {
	tests := []struct {
		e    *Exercise
		want string
	}{
		{&Exercise{Kind: KindScalarMultiply, Scalar: 3, HasScalar: true}, "Compute 3 · A."},
		{&Exercise{Kind: KindElementLookup, Target: Position{Row: 1, Col: 2}}, "a23 (row 2, column 3)"},
		{&Exercise{Kind: KindIdentityEntry, Size: 3}, "3×3 identity"},
		{&Exercise{Kind: KindSymmetricEntry, Target: Position{Row: 0, Col: 2}}, "a13"},
		{&Exercise{Kind: KindInverse}, "rounded"},
	}
	for _, tt := range tests {
		got := Prompt(tt.e)
		if !strings.Contains(got, tt.want) {
			t.Errorf("Prompt(%s) = %q, want it to contain %q", tt.e.Kind, got, tt.want)
		}
	}
}

func TestInputHint(t *testing.T) {
	scalar := &Exercise{Expected: matrix.Scalar(4)}
	assert.Equal(t, "a single value", InputHint(scalar))

	row := &Exercise{Expected: matrix.MustNew([][]float64{{2, 3}})}
	assert.Equal(t, "2 values on one line, e.g. 1 2", InputHint(row))

	grid := &Exercise{Expected: matrix.Zeros(2, 3)}
	assert.Equal(t, "2 rows of 3 values, e.g. 1 2 3; 4 5 6", InputHint(grid))
}

func TestChoices(t *testing.T) {
	assert.Nil(t, Choices(&Exercise{Kind: KindAdd}))

	yn := Choices(&Exercise{Kind: KindIsDiagonal})
	assert.Equal(t, []Choice{{Label: "Yes", Value: 1}, {Label: "No", Value: 0}}, yn)

	types := Choices(&Exercise{Kind: KindTypeClassification})
	assert.Len(t, types, 4)
	assert.Equal(t, "Symmetric", types[TypeSymmetric].Label)
	assert.Equal(t, float64(TypeSymmetric), types[TypeSymmetric].Value)
}

func TestDifficulty(t *testing.T) {
	for _, d := range Difficulties() {
		got, ok := ParseDifficulty(string(d))
		assert.True(t, ok)
		assert.Equal(t, d, got)
	}
	_, ok := ParseDifficulty("insane")
	assert.False(t, ok)

	assert.Equal(t, "Expert", DifficultyExpert.DisplayName())
	assert.Equal(t, "Normal", Difficulty("").DisplayName())
}
