package calc

import (
	"math"
	"strconv"

	"github.com/katalvlaran/matcalc/matrix"
)

// Precision is the number of digits rendered after the decimal point.
const Precision = 2

// Format renders v with exactly Precision fractional digits.
//
// Rounding is strconv's: the exact binary value is correctly rounded, ties to
// even. 2.005 is stored as 2.00499999… and renders "2.00"; 0.125 is an exact
// tie and renders "0.12". A result that rounds to negative zero renders
// "0.00". Non-finite values render as "inf", "-inf" and "nan".
func Format(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(v, 'f', Precision, 64)
	if s == negativeZero {
		return s[1:]
	}

	return s
}

var negativeZero = "-" + strconv.FormatFloat(0, 'f', Precision, 64)

// FormatMatrix applies Format to every cell of m, row-major.
func FormatMatrix(m *matrix.Dense) [][]string {
	rows := m.ToRows()
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = make([]string, len(row))
		for j, v := range row {
			out[i][j] = Format(v)
		}
	}

	return out
}

// Reset returns the rows×cols zero matrix used to restore grids to their
// default state.
func Reset(rows, cols int) (*matrix.Dense, error) {
	m, err := matrix.NewZeros(rows, cols)
	if err != nil {
		return nil, calcErrorf("Reset", err)
	}

	return m, nil
}
