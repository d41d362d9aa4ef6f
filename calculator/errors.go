package calculator

import (
	"errors"

	"github.com/katalvlaran/matcalc/calc"
)

// Messages shown to the user when a trigger is rejected.
const (
	InvalidInputMessage      = "Invalid input. Please enter numbers only."
	DimensionMismatchMessage = "Matrix dimensions do not match for this operation."
)

var (
	// ErrInvalidInput is matched by trigger errors caused by a cell that is not a number.
	ErrInvalidInput = errors.New("calculator: invalid input")
	// ErrReadOnly is returned by SetCell on the result grid.
	ErrReadOnly = errors.New("calculator: grid is read-only")
	// ErrOutOfRange is returned for cell coordinates outside the grid.
	ErrOutOfRange = errors.New("calculator: cell out of range")
	// ErrUnknownGrid is returned for a Grid value other than GridA, GridB or GridResult.
	ErrUnknownGrid = errors.New("calculator: unknown grid")
)

// UserMessage maps a trigger error to the notification text.
// It returns "" for a nil error.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidInput):
		return InvalidInputMessage
	case errors.Is(err, calc.ErrDimensionMismatch):
		return DimensionMismatchMessage
	}

	return err.Error()
}
