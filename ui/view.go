package ui

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/katalvlaran/matcalc/calc"
	"github.com/katalvlaran/matcalc/calculator"
	"github.com/katalvlaran/matcalc/config"
)

// View is the widget tree of one calculator window.
type View struct {
	calc   *calculator.Calculator
	style  config.Style
	window fyne.Window

	entries [2][][]*widget.Entry // indexed by calculator.GridA, GridB
	results [][]*canvas.Text
	buttons map[string]*widget.Button

	content fyne.CanvasObject
	syncing bool // set while copying view-model text into entries
}

// NewMainWindow creates the application window for c, sized and titled from cfg.
func NewMainWindow(a fyne.App, cfg *config.Config, c *calculator.Calculator) (fyne.Window, *View) {
	w := a.NewWindow(cfg.Title)
	v := NewView(w, cfg.Title, cfg.Style, c)
	w.SetContent(v.Content())
	w.Resize(fyne.NewSize(float32(cfg.Width), float32(cfg.Height)))
	w.SetFixedSize(!cfg.Resizable)
	w.CenterOnScreen()

	return w, v
}

// NewView builds the widgets for c. Error dialogs are shown on w.
func NewView(w fyne.Window, title string, s config.Style, c *calculator.Calculator) *View {
	v := &View{
		calc:    c,
		style:   s,
		window:  w,
		buttons: make(map[string]*widget.Button),
	}

	header := heading(title, s, s.TitleSize)
	header.Alignment = fyne.TextAlignCenter

	v.content = background(s.Background, container.NewPadded(container.NewVBox(
		header,
		gap(s.Padding),
		v.inputCard(calculator.GridA),
		gap(s.Padding),
		v.inputCard(calculator.GridB),
		gap(s.Padding),
		v.resultCard(),
		gap(3*s.Padding),
		v.buttonRow(),
	)))

	c.OnChange(v.refresh)

	return v
}

// Content returns the root canvas object.
func (v *View) Content() fyne.CanvasObject { return v.content }

func (v *View) card(g calculator.Grid, cells []fyne.CanvasObject) fyne.CanvasObject {
	_, cols := v.calc.Dims()
	label := heading(g.String(), v.style, 0)
	grid := container.NewGridWithColumns(cols, cells...)

	return background(v.style.Frame, container.NewPadded(container.NewVBox(label, grid)))
}

func (v *View) inputCard(g calculator.Grid) fyne.CanvasObject {
	rows, cols := v.calc.Dims()
	entries := make([][]*widget.Entry, rows)
	cells := make([]fyne.CanvasObject, 0, rows*cols)
	for i := 0; i < rows; i++ {
		entries[i] = make([]*widget.Entry, cols)
		for j := 0; j < cols; j++ {
			e := widget.NewEntry()
			text, _ := v.calc.Cell(g, i, j)
			e.SetText(text)
			i, j := i, j
			e.OnChanged = func(s string) {
				if v.syncing {
					return
				}
				_ = v.calc.SetCell(g, i, j, s) // i, j are within Dims
			}
			entries[i][j] = e
			cells = append(cells, background(v.style.EntryBackground, e))
		}
	}
	v.entries[g] = entries

	return v.card(g, cells)
}

func (v *View) resultCard() fyne.CanvasObject {
	rows, cols := v.calc.Dims()
	v.results = make([][]*canvas.Text, rows)
	cells := make([]fyne.CanvasObject, 0, rows*cols)
	for i := 0; i < rows; i++ {
		v.results[i] = make([]*canvas.Text, cols)
		for j := 0; j < cols; j++ {
			text, _ := v.calc.Cell(calculator.GridResult, i, j)
			t := canvas.NewText(text, config.Color(v.style.Text))
			t.Alignment = fyne.TextAlignCenter
			v.results[i][j] = t
			cells = append(cells, background(v.style.LabelBackground, container.NewPadded(t)))
		}
	}

	return v.card(calculator.GridResult, cells)
}

func (v *View) buttonRow() fyne.CanvasObject {
	row := []fyne.CanvasObject{layout.NewSpacer()}
	add := func(label, hex string, tapped func()) {
		b, obj := coloredButton(label, hex, tapped)
		v.buttons[label] = b
		row = append(row, obj)
	}
	add(calc.OpAdd.String(), v.style.AddButton, func() { v.trigger(calc.OpAdd) })
	add(calc.OpSubtract.String(), v.style.SubtractButton, func() { v.trigger(calc.OpSubtract) })
	add(calc.OpMultiply.String(), v.style.MultiplyButton, func() { v.trigger(calc.OpMultiply) })
	add("Clear", v.style.ClearButton, v.calc.Clear)
	row = append(row, layout.NewSpacer())

	return container.NewHBox(row...)
}

// trigger runs op and reports a rejection in a modal error dialog.
func (v *View) trigger(op calc.Operation) {
	if err := v.calc.Run(op); err != nil {
		dialog.ShowError(errors.New(calculator.UserMessage(err)), v.window)
	}
}

// refresh copies grid g from the view-model into its widgets.
func (v *View) refresh(g calculator.Grid) {
	grid, err := v.calc.Grid(g)
	if err != nil {
		return
	}
	if g == calculator.GridResult {
		for i, row := range grid {
			for j, text := range row {
				if v.results[i][j].Text != text {
					v.results[i][j].Text = text
					v.results[i][j].Refresh()
				}
			}
		}
		return
	}

	v.syncing = true
	defer func() { v.syncing = false }()
	for i, row := range grid {
		for j, text := range row {
			if v.entries[g][i][j].Text != text {
				v.entries[g][i][j].SetText(text)
			}
		}
	}
}
