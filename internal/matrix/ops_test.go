package matrix

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"
)

var (
	exA = MustNew([][]float64{{1, 2}, {3, 4}})
	exB = MustNew([][]float64{{5, 6}, {7, 8}})
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(42, 7))
}

func TestAdd_Example(t *testing.T) {
	got, err := Add(exA, exB)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	want := MustNew([][]float64{{6, 8}, {10, 12}})
	if !Equal(got, want) {
		t.Errorf("Add = %s, want %s", got, want)
	}
}

func TestSubtract_Example(t *testing.T) {
	got, err := Subtract(exB, exA)
	if err != nil {
		t.Fatalf("Subtract: %v", err)
	}
	want := MustNew([][]float64{{4, 4}, {4, 4}})
	if !Equal(got, want) {
		t.Errorf("Subtract = %s, want %s", got, want)
	}
}

func TestAddSubtract_ShapeMismatch(t *testing.T) {
	c := MustNew([][]float64{{1, 2, 3}, {4, 5, 6}})
	if _, err := Add(exA, c); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("Add err = %v, want ErrShapeMismatch", err)
	}
	if _, err := Subtract(exA, c); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("Subtract err = %v, want ErrShapeMismatch", err)
	}
}

func TestAddSubtract_Identity(t *testing.T) {
	r := testRand()
	for n := 0; n < 20; n++ {
		a := Random(r, 3, 2, -9, 9)
		b := Random(r, 3, 2, -9, 9)

		bb, err := Subtract(b, b)
		if err != nil {
			t.Fatal(err)
		}
		negZero, err := Subtract(Zeros(3, 2), bb)
		if err != nil {
			t.Fatal(err)
		}
		got, err := Add(a, negZero)
		if err != nil {
			t.Fatal(err)
		}
		if !Equal(got, a) {
			t.Fatalf("a + (0 - (b - b)) = %s, want %s", got, a)
		}
	}
}

func TestScalarMultiply(t *testing.T) {
	got := ScalarMultiply(3, exA)
	want := MustNew([][]float64{{3, 6}, {9, 12}})
	if !Equal(got, want) {
		t.Errorf("3·A = %s, want %s", got, want)
	}
}

func TestMultiply_Example(t *testing.T) {
	got, err := Multiply(exA, exB)
	if err != nil {
		t.Fatalf("Multiply: %v", err)
	}
	want := MustNew([][]float64{{19, 22}, {43, 50}})
	if !Equal(got, want) {
		t.Errorf("A·B = %s, want %s", got, want)
	}
}

func TestMultiply_ResultShape(t *testing.T) {
	a := MustNew([][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustNew([][]float64{{1}, {0}, {2}})
	got, err := Multiply(a, b)
	if err != nil {
		t.Fatalf("Multiply: %v", err)
	}
	if got.Rows() != 2 || got.Cols() != 1 {
		t.Fatalf("shape = %s, want 2x1", got.DimString())
	}
	if got.At(0, 0) != 7 || got.At(1, 0) != 16 {
		t.Errorf("A·B = %s, want [7; 16]", got)
	}
}

func TestMultiply_ShapeMismatch(t *testing.T) {
	a := MustNew([][]float64{{1, 2, 3}, {4, 5, 6}})
	if _, err := Multiply(a, exA); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("err = %v, want ErrShapeMismatch", err)
	}
}

func TestMultiply_ByIdentity(t *testing.T) {
	r := testRand()
	for rows := 1; rows <= 3; rows++ {
		for cols := 1; cols <= 3; cols++ {
			a := Random(r, rows, cols, -10, 10)
			got, err := Multiply(a, Identity(cols))
			if err != nil {
				t.Fatal(err)
			}
			if !Equal(got, a) {
				t.Errorf("A·I = %s, want %s", got, a)
			}
		}
	}
}

func TestTranspose(t *testing.T) {
	a := MustNew([][]float64{{1, 2, 3}, {4, 5, 6}})
	got := Transpose(a)
	want := MustNew([][]float64{{1, 4}, {2, 5}, {3, 6}})
	if !Equal(got, want) {
		t.Errorf("Aᵀ = %s, want %s", got, want)
	}
	if !Equal(Transpose(got), a) {
		t.Errorf("(Aᵀ)ᵀ = %s, want %s", Transpose(got), a)
	}
}

func TestDeterminant(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want float64
	}{
		{"example 2x2", exA, -2},
		{"identity 2", Identity(2), 1},
		{"identity 3", Identity(3), 1},
		{"3x3", MustNew([][]float64{{2, 0, 1}, {1, 3, 2}, {1, 1, 1}}), 0},
		{"3x3 nonzero", MustNew([][]float64{{6, 1, 1}, {4, -2, 5}, {2, 8, 7}}), -306},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Determinant(tt.m)
			if err != nil {
				t.Fatalf("Determinant: %v", err)
			}
			if got != tt.want {
				t.Errorf("det = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDeterminant_DiagonalIsProduct(t *testing.T) {
	r := testRand()
	for _, n := range []int{2, 3} {
		d := Diagonal(r, n)
		want := 1.0
		for i := 0; i < n; i++ {
			want *= d.At(i, i)
		}
		got, err := Determinant(d)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("det(%s) = %v, want %v", d, got, want)
		}
	}
}

func TestDeterminant_Errors(t *testing.T) {
	if _, err := Determinant(MustNew([][]float64{{1, 2, 3}, {4, 5, 6}})); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("non-square err = %v, want ErrShapeMismatch", err)
	}
	if _, err := Determinant(Identity(4)); !errors.Is(err, ErrUnsupportedSize) {
		t.Errorf("4x4 err = %v, want ErrUnsupportedSize", err)
	}
	if _, err := Determinant(Scalar(5)); !errors.Is(err, ErrUnsupportedSize) {
		t.Errorf("1x1 err = %v, want ErrUnsupportedSize", err)
	}
}

func TestInverse_RoundTrip(t *testing.T) {
	r := testRand()
	checked := 0
	for checked < 25 {
		a := Random(r, 2, 2, -9, 9)
		inv, err := Inverse(a)
		if errors.Is(err, ErrSingular) {
			continue
		}
		if err != nil {
			t.Fatalf("Inverse(%s): %v", a, err)
		}
		prod, err := Multiply(a, inv)
		if err != nil {
			t.Fatal(err)
		}
		if !Equal(prod, Identity(2)) {
			t.Errorf("A·A⁻¹ = %s for A = %s", prod, a)
		}
		checked++
	}
}

func TestInverse_Example(t *testing.T) {
	inv, err := Inverse(exA)
	if err != nil {
		t.Fatalf("Inverse: %v", err)
	}
	want := MustNew([][]float64{{-2, 1}, {1.5, -0.5}})
	if !Equal(inv, want) {
		t.Errorf("A⁻¹ = %s, want %s", inv, want)
	}
}

func TestInverse_Errors(t *testing.T) {
	if _, err := Inverse(MustNew([][]float64{{2, 4}, {1, 2}})); !errors.Is(err, ErrSingular) {
		t.Errorf("singular err = %v, want ErrSingular", err)
	}
	if _, err := Inverse(Identity(3)); !errors.Is(err, ErrUnsupportedSize) {
		t.Errorf("3x3 err = %v, want ErrUnsupportedSize", err)
	}
	if _, err := Inverse(MustNew([][]float64{{1, 2}})); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("1x2 err = %v, want ErrShapeMismatch", err)
	}
}

func TestEqualWithin(t *testing.T) {
	a := MustNew([][]float64{{1, 2}, {3, 4}})
	near := MustNew([][]float64{{1.0005, 2}, {3, 3.9995}})
	far := MustNew([][]float64{{1.01, 2}, {3, 4}})
	wide := MustNew([][]float64{{1, 2, 0}, {3, 4, 0}})
	hidden := MustNew([][]float64{{1, math.NaN()}, {3, 4}})
	other := MustNew([][]float64{{1, 999}, {3, 4}})

	tests := []struct {
		name string
		x, y Matrix
		want bool
	}{
		{"reflexive", a, a, true},
		{"within tolerance", a, near, true},
		{"symmetric", near, a, true},
		{"outside tolerance", a, far, false},
		{"shape mismatch", a, wide, false},
		{"shape mismatch reversed", wide, a, false},
		{"NaN against a number", hidden, other, false},
		{"number against NaN", other, hidden, false},
		{"NaN against itself", hidden, hidden, false},
	}
	for _, tt := range tests {
		if got := Equal(tt.x, tt.y); got != tt.want {
			t.Errorf("%s: Equal = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestDiagonalProducts(t *testing.T) {
	main, anti, err := DiagonalProducts(exA)
	if err != nil {
		t.Fatal(err)
	}
	if main != 4 || anti != 6 {
		t.Errorf("DiagonalProducts = %v, %v, want 4, 6", main, anti)
	}
	det, _ := Determinant(exA)
	if det != main-anti {
		t.Errorf("Determinant = %v, want main - anti = %v", det, main-anti)
	}

	if _, _, err := DiagonalProducts(Identity(3)); !errors.Is(err, ErrUnsupportedSize) {
		t.Errorf("3x3: err = %v, want ErrUnsupportedSize", err)
	}
	if _, _, err := DiagonalProducts(MustNew([][]float64{{1, 2}})); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("1x2: err = %v, want ErrShapeMismatch", err)
	}
}
