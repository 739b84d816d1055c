// Package steps renders worked, step-by-step solutions for the lab.
package steps

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/matrixlab/internal/matrix"
)

// Operation is a lab operation.
type Operation string

const (
	OpAdd            Operation = "add"
	OpSubtract       Operation = "subtract"
	OpScalarMultiply Operation = "scalar"
	OpMultiply       Operation = "multiply"
	OpTranspose      Operation = "transpose"
	OpDeterminant    Operation = "determinant"
	OpInverse        Operation = "inverse"
)

// Operations returns every operation in display order.
func Operations() []Operation {
	return []Operation{OpAdd, OpSubtract, OpScalarMultiply, OpMultiply, OpTranspose, OpDeterminant, OpInverse}
}

// ParseOperation maps a name or common alias to an Operation.
func ParseOperation(s string) (Operation, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "add", "+":
		return OpAdd, true
	case "subtract", "sub", "-":
		return OpSubtract, true
	case "scalar", "scale":
		return OpScalarMultiply, true
	case "multiply", "mul", "*":
		return OpMultiply, true
	case "transpose", "t":
		return OpTranspose, true
	case "determinant", "det":
		return OpDeterminant, true
	case "inverse", "inv":
		return OpInverse, true
	}
	return "", false
}

// NeedsB reports whether op takes a second matrix.
func (op Operation) NeedsB() bool {
	return op == OpAdd || op == OpSubtract || op == OpMultiply
}

// NeedsScalar reports whether op takes a scalar.
func (op Operation) NeedsScalar() bool {
	return op == OpScalarMultiply
}

// StepError explains why an operation cannot be applied to its inputs.
type StepError struct {
	Op     Operation
	Reason string
	Err    error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

func (e *StepError) Unwrap() error { return e.Err }

const rule = "════════════════════"

// Format returns the worked solution of op applied to a (and b or scalar
// where the operation takes them), one line per entry. The result is always
// the last block.
func Format(op Operation, a, b matrix.Matrix, scalar float64) ([]string, error) {
	switch op {
	case OpAdd:
		return elementwise(op, a, b, "ADDITION A + B", "Add the entries in the same position.", "c_ij = a_ij + b_ij", "+", matrix.Add)
	case OpSubtract:
		return elementwise(op, a, b, "SUBTRACTION A - B", "Subtract the entries in the same position.", "c_ij = a_ij - b_ij", "-", matrix.Subtract)
	case OpScalarMultiply:
		return scalarMultiply(a, scalar), nil
	case OpMultiply:
		return multiply(a, b)
	case OpTranspose:
		return transpose(a), nil
	case OpDeterminant:
		return determinant(a)
	case OpInverse:
		return inverse(a)
	default:
		return nil, &StepError{Op: op, Reason: "unknown operation", Err: errors.ErrUnsupported}
	}
}

func header(title string) string {
	return "=== " + title + " ==="
}

func elementwise(op Operation, a, b matrix.Matrix, title, text, formula, sign string,
	f func(a, b matrix.Matrix) (matrix.Matrix, error)) ([]string, error) {
	c, err := f(a, b)
	if err != nil {
		return nil, &StepError{
			Op:     op,
			Reason: fmt.Sprintf("both matrices need the same dimensions: A is %s, B is %s", a.DimString(), b.DimString()),
			Err:    err,
		}
	}

	lines := []string{header(title), "", "Rule: " + text, formula, ""}
	for i := 0; i < c.Rows(); i++ {
		for j := 0; j < c.Cols(); j++ {
			lines = append(lines, fmt.Sprintf("c%d%d = %s %s %s = %s",
				i+1, j+1, num(a.At(i, j)), sign, num(b.At(i, j)), num(c.At(i, j))))
		}
	}
	return append(lines, result("A "+sign+" B", c)...), nil
}

func scalarMultiply(a matrix.Matrix, k float64) []string {
	c := matrix.ScalarMultiply(k, a)
	lines := []string{
		header(fmt.Sprintf("SCALAR MULTIPLICATION k · A (k = %s)", num(k))),
		"",
		"Rule: Multiply every entry by the scalar.",
		"c_ij = k · a_ij",
		"",
	}
	for i := 0; i < c.Rows(); i++ {
		for j := 0; j < c.Cols(); j++ {
			lines = append(lines, fmt.Sprintf("c%d%d = %s · %s = %s",
				i+1, j+1, num(k), num(a.At(i, j)), num(c.At(i, j))))
		}
	}
	return append(lines, result("k · A", c)...)
}

func multiply(a, b matrix.Matrix) ([]string, error) {
	c, err := matrix.Multiply(a, b)
	if err != nil {
		return nil, &StepError{
			Op:     OpMultiply,
			Reason: fmt.Sprintf("multiplication requires cols(A) == rows(B): A is %s, B is %s", a.DimString(), b.DimString()),
			Err:    err,
		}
	}

	lines := []string{
		header("MATRIX MULTIPLICATION A · B"),
		"",
		"Rule: c_ij = row i of A · column j of B (dot product)",
		fmt.Sprintf("The result is a %s matrix.", c.DimString()),
		"",
	}
	for i := 0; i < c.Rows(); i++ {
		for j := 0; j < c.Cols(); j++ {
			terms := make([]string, a.Cols())
			for k := range terms {
				terms[k] = num(a.At(i, k)) + "·" + num(b.At(k, j))
			}
			lines = append(lines, fmt.Sprintf("c%d%d = %s = %s",
				i+1, j+1, strings.Join(terms, " + "), num(matrix.DotProduct(a, b, i, j))))
		}
	}
	return append(lines, result("A · B", c)...), nil
}

func transpose(a matrix.Matrix) []string {
	t := matrix.Transpose(a)
	lines := []string{
		header("TRANSPOSE Aᵀ"),
		"",
		"Rule: Rows and columns swap places.",
		"a_ij becomes a_ji",
		"",
		fmt.Sprintf("Original: %s matrix", a.DimString()),
		fmt.Sprintf("Transposed: %s matrix", t.DimString()),
		"",
	}
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			lines = append(lines, fmt.Sprintf("a%d%d = %s → position (%d,%d)",
				i+1, j+1, num(a.At(i, j)), j+1, i+1))
		}
	}
	return append(lines, result("Aᵀ", t)...)
}

func determinant(a matrix.Matrix) ([]string, error) {
	det, err := matrix.Determinant(a)
	if err != nil {
		reason := fmt.Sprintf("determinant needs a square matrix: A is %s", a.DimString())
		if errors.Is(err, matrix.ErrUnsupportedSize) {
			reason = fmt.Sprintf("determinant is only available for 2x2 and 3x3: A is %s", a.DimString())
		}
		return nil, &StepError{Op: OpDeterminant, Reason: reason, Err: err}
	}

	lines := []string{header("DETERMINANT det(A)"), ""}
	lines = append(lines, a.Lines()...)
	lines = append(lines, "")

	if a.Rows() == 2 {
		p, q, err := matrix.DiagonalProducts(a)
		if err != nil {
			return nil, &StepError{Op: OpDeterminant, Reason: "diagonal products need a 2x2 matrix", Err: err}
		}
		lines = append(lines,
			"Formula for 2×2: det = a·d - b·c",
			fmt.Sprintf("det = %s · %s - %s · %s", num(a.At(0, 0)), num(a.At(1, 1)), num(a.At(0, 1)), num(a.At(1, 0))),
			fmt.Sprintf("det = %s - %s", num(p), num(q)),
		)
	} else {
		plus, minus, err := matrix.SarrusTerms(a)
		if err != nil {
			return nil, &StepError{Op: OpDeterminant, Reason: "rule of Sarrus needs a 3x3 matrix", Err: err}
		}
		lines = append(lines, "Rule of Sarrus for 3×3:", "", "+ main diagonals:")
		lines = append(lines, sarrus(a, plus, [3][3][2]int{
			{{0, 0}, {1, 1}, {2, 2}},
			{{0, 1}, {1, 2}, {2, 0}},
			{{0, 2}, {1, 0}, {2, 1}},
		})...)
		lines = append(lines, "", "- anti-diagonals:")
		lines = append(lines, sarrus(a, minus, [3][3][2]int{
			{{0, 2}, {1, 1}, {2, 0}},
			{{0, 0}, {1, 2}, {2, 1}},
			{{0, 1}, {1, 0}, {2, 2}},
		})...)
		lines = append(lines, "",
			fmt.Sprintf("det = (%s + %s + %s) - (%s + %s + %s)",
				num(plus[0]), num(plus[1]), num(plus[2]), num(minus[0]), num(minus[1]), num(minus[2])))
	}
	return append(lines, "", rule, "det(A) = "+num(det), rule), nil
}

func sarrus(a matrix.Matrix, products [3]float64, cells [3][3][2]int) []string {
	out := make([]string, 3)
	for t, diag := range cells {
		out[t] = fmt.Sprintf("  %s·%s·%s = %s",
			num(a.At(diag[0][0], diag[0][1])),
			num(a.At(diag[1][0], diag[1][1])),
			num(a.At(diag[2][0], diag[2][1])),
			num(products[t]))
	}
	return out
}

func inverse(a matrix.Matrix) ([]string, error) {
	inv, err := matrix.Inverse(a)
	if err != nil {
		var reason string
		switch {
		case errors.Is(err, matrix.ErrSingular):
			reason = "the matrix is singular (det = 0) and has no inverse"
		case errors.Is(err, matrix.ErrUnsupportedSize):
			reason = fmt.Sprintf("inverse is only available for 2x2: A is %s", a.DimString())
		default:
			reason = fmt.Sprintf("inverse needs a square matrix: A is %s", a.DimString())
		}
		return nil, &StepError{Op: OpInverse, Reason: reason, Err: err}
	}
	det, err := matrix.Determinant(a)
	if err != nil {
		return nil, &StepError{Op: OpInverse, Reason: "determinant unavailable", Err: err}
	}
	adj, err := matrix.Adjugate(a)
	if err != nil {
		return nil, &StepError{Op: OpInverse, Reason: "adjugate unavailable", Err: err}
	}

	lines := []string{
		header("INVERSE A⁻¹"),
		"",
		"Formula for 2×2: A⁻¹ = (1/det) · [[d, -b], [-c, a]]",
		"",
		"Step 1: compute the determinant",
		fmt.Sprintf("det = %s·%s - %s·%s = %s",
			num(a.At(0, 0)), num(a.At(1, 1)), num(a.At(0, 1)), num(a.At(1, 0)), num(det)),
		"",
		"Step 2: form the adjugate",
	}
	lines = append(lines, adj.Lines()...)
	lines = append(lines, "", fmt.Sprintf("Step 3: multiply by 1/det = %s", num(1/det)), "", "Result:")
	lines = append(lines, inv.Lines()...)
	return append(lines, "", "Check: A · A⁻¹ = I"), nil
}

func result(name string, m matrix.Matrix) []string {
	lines := []string{"", rule, name + " ="}
	lines = append(lines, m.Lines()...)
	return append(lines, rule)
}

func num(v float64) string {
	return matrix.FormatValue(v)
}
