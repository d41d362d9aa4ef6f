package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matcalc/calculator"
	"github.com/katalvlaran/matcalc/config"
)

func newTestView(t *testing.T) (*View, fyne.Window, *calculator.Calculator) {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	cfg, err := config.Load()
	require.NoError(t, err)
	c, err := calculator.New(cfg.Rows, cfg.Cols)
	require.NoError(t, err)

	w, v := NewMainWindow(a, cfg, c)
	t.Cleanup(w.Close)

	return v, w, c
}

func (v *View) resultTexts() [][]string {
	out := make([][]string, len(v.results))
	for i, row := range v.results {
		for _, txt := range row {
			out[i] = append(out[i], txt.Text)
		}
	}

	return out
}

func (v *View) entryTexts(g calculator.Grid) [][]string {
	out := make([][]string, len(v.entries[g]))
	for i, row := range v.entries[g] {
		for _, e := range row {
			out[i] = append(out[i], e.Text)
		}
	}

	return out
}

func (v *View) typeGrid(g calculator.Grid, rows [][]string) {
	for i := range rows {
		for j := range rows[i] {
			v.entries[g][i][j].SetText(rows[i][j])
		}
	}
}

// labelTexts collects the text of every label rendered under o.
func labelTexts(o fyne.CanvasObject) []string {
	var out []string
	for _, obj := range test.LaidOutObjects(o) {
		if l, ok := obj.(*widget.Label); ok {
			out = append(out, l.Text)
		}
	}

	return out
}

func TestView_Defaults(t *testing.T) {
	v, w, _ := newTestView(t)

	zeros := [][]string{{"0", "0"}, {"0", "0"}}
	require.Equal(t, zeros, v.entryTexts(calculator.GridA))
	require.Equal(t, zeros, v.entryTexts(calculator.GridB))
	require.Equal(t, zeros, v.resultTexts())
	require.Equal(t, "Matrix Calculator", w.Title())
	require.Len(t, v.buttons, 4)
}

func TestView_Scenario(t *testing.T) {
	v, _, c := newTestView(t)

	v.typeGrid(calculator.GridA, [][]string{{"1", "2"}, {"3", "4"}})
	v.typeGrid(calculator.GridB, [][]string{{"5", "6"}, {"7", "8"}})
	got, err := c.Cell(calculator.GridB, 1, 1)
	require.NoError(t, err)
	require.Equal(t, "8", got)

	test.Tap(v.buttons["Add"])
	require.Equal(t, [][]string{{"6.00", "8.00"}, {"10.00", "12.00"}}, v.resultTexts())

	test.Tap(v.buttons["Multiply"])
	require.Equal(t, [][]string{{"19.00", "22.00"}, {"43.00", "50.00"}}, v.resultTexts())

	test.Tap(v.buttons["Clear"])
	zeros := [][]string{{"0", "0"}, {"0", "0"}}
	require.Equal(t, zeros, v.entryTexts(calculator.GridA))
	require.Equal(t, zeros, v.entryTexts(calculator.GridB))
	require.Equal(t, zeros, v.resultTexts())
}

func TestView_InvalidInputShowsDialog(t *testing.T) {
	v, w, _ := newTestView(t)

	v.typeGrid(calculator.GridA, [][]string{{"1", "2"}, {"3", ""}})
	require.Nil(t, w.Canvas().Overlays().Top())

	test.Tap(v.buttons["Subtract"])

	top := w.Canvas().Overlays().Top()
	require.NotNil(t, top)
	require.Contains(t, labelTexts(top), calculator.InvalidInputMessage)
	require.Equal(t, [][]string{{"1", "2"}, {"3", ""}}, v.entryTexts(calculator.GridA))
	require.Equal(t, [][]string{{"0", "0"}, {"0", "0"}}, v.resultTexts())
}
