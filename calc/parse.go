package calc

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/matcalc/matrix"
)

// floatLiteral is the accepted number grammar: optional sign, digits with an
// optional fraction (or a bare fraction), optional exponent.
// NaN, Inf, hex floats and digit separators do not match.
var floatLiteral = regexp.MustCompile(`^[+-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)

// ParseCell converts one cell's text to a float64.
// Leading and trailing white space is ignored. A literal whose magnitude
// exceeds float64 yields ±Inf; one too small to represent yields zero.
func ParseCell(text string) (float64, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, ErrEmptyCell
	}
	if !floatLiteral.MatchString(s) {
		return 0, ErrNotDecimal
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}

	return v, nil
}

// Parse converts a rectangular grid of cell texts into a fresh matrix.
//
// The shape is checked first (matrix.ErrInvalidDimensions for an empty grid,
// matrix.ErrNonRectangular for ragged rows), then cells are parsed in
// row-major order and the first bad cell is reported as a *ParseError.
// On any failure the returned matrix is nil. Overflowed cells are kept as ±Inf.
func Parse(raw [][]string) (*matrix.Dense, error) {
	rows := len(raw)
	if rows == 0 || len(raw[0]) == 0 {
		return nil, calcErrorf("Parse", matrix.ErrInvalidDimensions)
	}
	cols := len(raw[0])
	for i := 1; i < rows; i++ {
		if len(raw[i]) != cols {
			return nil, calcErrorf("Parse", matrix.ErrNonRectangular)
		}
	}

	values := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		values[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			v, err := ParseCell(raw[i][j])
			if err != nil {
				return nil, &ParseError{Row: i, Col: j, Text: raw[i][j], Err: err}
			}
			values[i][j] = v
		}
	}

	m, err := matrix.NewDenseFromRows(values, matrix.WithAllowInf())
	if err != nil {
		return nil, calcErrorf("Parse", err)
	}

	return m, nil
}
