package calc

import (
	"fmt"

	"github.com/katalvlaran/matcalc/matrix"
)

// Operation selects one of the calculator's binary matrix operations.
type Operation int

const (
	// OpAdd computes a + b (identical shapes).
	OpAdd Operation = iota
	// OpSubtract computes a − b (identical shapes).
	OpSubtract
	// OpMultiply computes the matrix product a × b (a.Cols == b.Rows).
	OpMultiply
)

var operationNames = [...]string{
	OpAdd:      "Add",
	OpSubtract: "Subtract",
	OpMultiply: "Multiply",
}

func (op Operation) String() string {
	if op < OpAdd || op > OpMultiply {
		return fmt.Sprintf("Operation(%d)", int(op))
	}

	return operationNames[op]
}

// Apply runs op on a and b.
func (op Operation) Apply(a, b *matrix.Dense) (*matrix.Dense, error) {
	switch op {
	case OpAdd:
		return Add(a, b)
	case OpSubtract:
		return Subtract(a, b)
	case OpMultiply:
		return Multiply(a, b)
	}

	return nil, calcErrorf("Apply", fmt.Errorf("%v: %w", op, ErrUnknownOperation))
}

// Add returns a + b. Shapes must match, else ErrDimensionMismatch.
func Add(a, b *matrix.Dense) (*matrix.Dense, error) {
	return dense("Add")(matrix.Add(a, b))
}

// Subtract returns a − b. Shapes must match, else ErrDimensionMismatch.
func Subtract(a, b *matrix.Dense) (*matrix.Dense, error) {
	return dense("Subtract")(matrix.Sub(a, b))
}

// Multiply returns a × b. a.Cols must equal b.Rows, else ErrDimensionMismatch.
func Multiply(a, b *matrix.Dense) (*matrix.Dense, error) {
	return dense("Multiply")(matrix.Mul(a, b))
}

// dense adapts a kernel's (Matrix, error) result to *Dense, tagging errors.
func dense(tag string) func(matrix.Matrix, error) (*matrix.Dense, error) {
	return func(m matrix.Matrix, err error) (*matrix.Dense, error) {
		if err != nil {
			return nil, calcErrorf(tag, err)
		}

		return m.(*matrix.Dense), nil // kernels always allocate *Dense
	}
}

// Compute parses both grids, applies op and formats the result.
// Nothing is returned but the error when any step fails. Parse failures are
// wrapped in an *OperandError naming the grid; rawA is checked first.
func Compute(op Operation, rawA, rawB [][]string) ([][]string, error) {
	a, err := Parse(rawA)
	if err != nil {
		return nil, &OperandError{Operand: OperandA, Err: err}
	}
	b, err := Parse(rawB)
	if err != nil {
		return nil, &OperandError{Operand: OperandB, Err: err}
	}
	res, err := op.Apply(a, b)
	if err != nil {
		return nil, err
	}

	return FormatMatrix(res), nil
}
