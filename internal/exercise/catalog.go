package exercise

import "strconv"

// Module is the catalog entry for a practice category.
type Module struct {
	Category    Category
	Name        string
	Icon        string
	Description string
	Hint        string
	Stars       int // 1-5
}

var modules = []Module{
	{
		Category:    CategoryBasics,
		Name:        "Basics",
		Icon:        "📖",
		Description: "What is a matrix? Rows, columns and notation.",
		Hint:        "Count the rows (horizontal) and the columns (vertical) carefully.",
		Stars:       1,
	},
	{
		Category:    CategoryAddition,
		Name:        "Addition",
		Icon:        "➕",
		Description: "Add two matrices entry by entry. Both need the same dimensions.",
		Hint:        "Add the entries in the same position: c_ij = a_ij + b_ij.",
		Stars:       1,
	},
	{
		Category:    CategorySubtraction,
		Name:        "Subtraction",
		Icon:        "➖",
		Description: "Subtract one matrix from another, just like addition.",
		Hint:        "Subtract the entries in the same position: c_ij = a_ij - b_ij.",
		Stars:       1,
	},
	{
		Category:    CategoryScalar,
		Name:        "Scalar Multiplication",
		Icon:        "✖",
		Description: "Multiply every entry of a matrix by a number.",
		Hint:        "Multiply EVERY entry by the scalar.",
		Stars:       2,
	},
	{
		Category:    CategoryMultiplication,
		Name:        "Matrix Multiplication",
		Icon:        "🔢",
		Description: "Rows times columns. Watch the dimensions.",
		Hint:        "c_ij is row i of A dotted with column j of B.",
		Stars:       3,
	},
	{
		Category:    CategoryTranspose,
		Name:        "Transpose",
		Icon:        "🔄",
		Description: "Swap rows and columns: A becomes Aᵀ.",
		Hint:        "Rows become columns: a_ij moves to a_ji.",
		Stars:       2,
	},
	{
		Category:    CategoryDeterminant,
		Name:        "Determinant",
		Icon:        "📐",
		Description: "Compute the determinant of 2×2 and 3×3 matrices.",
		Hint:        "2×2: det = ad - bc. 3×3: rule of Sarrus.",
		Stars:       3,
	},
	{
		Category:    CategoryInverse,
		Name:        "Inverse",
		Icon:        "↩",
		Description: "Find the matrix with A · A⁻¹ = I.",
		Hint:        "2×2: A⁻¹ = (1/det) · [[d, -b], [-c, a]].",
		Stars:       4,
	},
	{
		Category:    CategorySpecial,
		Name:        "Special Matrices",
		Icon:        "⭐",
		Description: "Identity, zero, diagonal and symmetric matrices.",
		Hint:        "The identity has ones on the diagonal and zeros everywhere else.",
		Stars:       2,
	},
	{
		Category:    CategoryRandom,
		Name:        "Random Mix",
		Icon:        "🎯",
		Description: "Practice every operation with random exercises.",
		Hint:        "Remember the basic rules of each matrix operation.",
		Stars:       5,
	},
}

// Modules returns the practice modules in display order.
func Modules() []Module {
	out := make([]Module, len(modules))
	copy(out, modules)
	return out
}

// Lookup returns the module for a category.
func Lookup(c Category) (Module, bool) {
	for _, m := range modules {
		if m.Category == c {
			return m, true
		}
	}
	return Module{}, false
}

// ParseCategory accepts a practice category name or its 1-based index in
// display order ("1" is basics).
func ParseCategory(s string) (Category, bool) {
	for i, m := range modules {
		if string(m.Category) == s || strconv.Itoa(i+1) == s {
			return m.Category, true
		}
	}
	return "", false
}

// Hint returns the module hint for a category.
func Hint(c Category) string {
	if m, ok := Lookup(c); ok {
		return m.Hint
	}
	return "Remember the basic rules of each matrix operation."
}

// DisplayName returns a human-readable name for a category.
func DisplayName(c Category) string {
	if c == CategoryMixed {
		return "Challenge"
	}
	if m, ok := Lookup(c); ok {
		return m.Name
	}
	return string(c)
}

// BasePoints returns the challenge points for a correct answer before the
// combo bonus.
func BasePoints(k Kind) int {
	switch k {
	case KindAdd, KindSubtract:
		return 10
	case KindScalarMultiply:
		return 12
	case KindTranspose:
		return 15
	case KindDeterminant:
		return 20
	case KindElementLookup:
		return 8
	default:
		return 10
	}
}
