// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/matcalc/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseDefaultZero checks every element of a fresh matrix is zero.
func TestNewDenseDefaultZero(t *testing.T) {
	m := MustDense(t, 2, 3)
	CompareExact(t, [][]float64{{0, 0, 0}, {0, 0, 0}}, m)

	r, c := m.Shape()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4.56)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetRejectsNaNInf verifies the default finite-only policy.
func TestSetRejectsNaNInf(t *testing.T) {
	m := MustDense(t, 1, 1)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
	require.Equal(t, 0.0, MustAt(t, m, 0, 0)) // untouched
}

// TestWithAllowInf checks the relaxed policy admits infinities but not NaN,
// and that Clone keeps it.
func TestWithAllowInf(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{math.Inf(1), 1}, {2, math.Inf(-1)}}, matrix.WithAllowInf())
	require.NoError(t, err)
	require.True(t, math.IsInf(MustAt(t, m, 0, 0), 1))
	require.True(t, math.IsInf(MustAt(t, m, 1, 1), -1))
	require.ErrorIs(t, m.Set(0, 1, math.NaN()), matrix.ErrNaNInf)

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 1, math.Inf(1)))

	_, err = matrix.NewDenseFromRows([][]float64{{math.Inf(1)}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := FromRows(t, [][]float64{{1, 0}, {0, 2}})

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3.0))

	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, 3.0, MustAt(t, clone, 0, 0))
}

func TestNewDenseFromRows(t *testing.T) {
	tests := []struct {
		name    string
		rows    [][]float64
		wantErr error
	}{
		{"2x2", [][]float64{{1, 2}, {3, 4}}, nil},
		{"1x3", [][]float64{{1, 2, 3}}, nil},
		{"nil", nil, matrix.ErrInvalidDimensions},
		{"empty row", [][]float64{{}}, matrix.ErrInvalidDimensions},
		{"ragged", [][]float64{{1, 2}, {3}}, matrix.ErrNonRectangular},
		{"nan", [][]float64{{1, math.NaN()}}, matrix.ErrNaNInf},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.NewDenseFromRows(tc.rows)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.Nil(t, m)
				return
			}
			require.NoError(t, err)
			CompareExact(t, tc.rows, m)
		})
	}
}

// TestNewDenseFromRowsCopiesInput checks the constructor does not alias its input.
func TestNewDenseFromRowsCopiesInput(t *testing.T) {
	rows := [][]float64{{1, 2}, {3, 4}}
	m := FromRows(t, rows)
	rows[0][0] = 99

	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
}

func TestToRowsRoundTrip(t *testing.T) {
	want := [][]float64{{1.5, -2}, {0, 4e3}}
	m := FromRows(t, want)

	got := m.ToRows()
	require.Equal(t, want, got)

	got[1][1] = 0 // copy, not a view
	require.Equal(t, 4e3, MustAt(t, m, 1, 1))
}

func TestDenseString(t *testing.T) {
	s := FromRows(t, [][]float64{{1, 2}, {3, 4}}).String()
	lines := strings.Split(s, "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], "1")
	require.Contains(t, lines[1], "4")
}
