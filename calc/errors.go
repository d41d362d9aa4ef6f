package calc

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/matcalc/matrix"
)

var (
	// ErrParse is matched by every *ParseError.
	ErrParse = errors.New("calc: invalid number")
	// ErrEmptyCell indicates a cell holding no text (after trimming spaces).
	ErrEmptyCell = errors.New("calc: empty cell")
	// ErrNotDecimal indicates text outside the decimal/exponential float grammar.
	ErrNotDecimal = errors.New("calc: not a decimal or exponential literal")
	// ErrUnknownOperation indicates an Operation value outside OpAdd..OpMultiply.
	ErrUnknownOperation = errors.New("calc: unknown operation")
	// ErrDimensionMismatch is matrix.ErrDimensionMismatch, re-exported so callers
	// of this package need not import matrix to classify failures.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch
)

// ParseError reports the first cell of a grid that is not a valid number.
// Row and Col are zero-based.
type ParseError struct {
	Row, Col int
	Text     string
	Err      error // ErrEmptyCell or ErrNotDecimal
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("calc: cell (%d,%d) %q: %v", e.Row, e.Col, e.Text, e.Err)
}

// Unwrap exposes both ErrParse and the specific cause to errors.Is/As.
func (e *ParseError) Unwrap() []error { return []error{ErrParse, e.Err} }

// Operand names an input position of a binary operation.
type Operand int

const (
	OperandA Operand = iota // left-hand grid
	OperandB                // right-hand grid
)

func (o Operand) String() string {
	switch o {
	case OperandA:
		return "a"
	case OperandB:
		return "b"
	}

	return fmt.Sprintf("Operand(%d)", int(o))
}

// OperandError records which input of Compute failed to parse.
type OperandError struct {
	Operand Operand
	Err     error
}

func (e *OperandError) Error() string {
	return fmt.Sprintf("operand %v: %v", e.Operand, e.Err)
}

func (e *OperandError) Unwrap() error { return e.Err }

// calcErrorf tags err with the calling operation, preserving it via %w.
func calcErrorf(tag string, err error) error {
	return fmt.Errorf("calc.%s: %w", tag, err)
}
