package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/katalvlaran/matcalc/config"
)

// background stacks obj over a rectangle filled with hex.
func background(hex string, obj fyne.CanvasObject) *fyne.Container {
	return container.NewStack(canvas.NewRectangle(config.Color(hex)), obj)
}

// gap is an invisible vertical spacer of the given height.
func gap(height float32) fyne.CanvasObject {
	r := canvas.NewRectangle(color.Transparent)
	r.SetMinSize(fyne.NewSize(0, height))

	return r
}

// coloredButton is a low-importance button drawn over a colored rectangle so
// the rectangle shows through as the button face.
func coloredButton(label, hex string, tapped func()) (*widget.Button, fyne.CanvasObject) {
	b := widget.NewButton(label, tapped)
	b.Importance = widget.LowImportance

	return b, background(hex, b)
}

// heading is a bold text line in the style's text color.
func heading(text string, s config.Style, size float32) *canvas.Text {
	t := canvas.NewText(text, config.Color(s.Text))
	t.TextStyle = fyne.TextStyle{Bold: true}
	if size > 0 {
		t.TextSize = size
	}

	return t
}
