// Package ui is the fyne front end of the matrix calculator.
//
// Widgets hold no numbers of their own: entries write through to a
// calculator.Calculator with SetCell, and every grid change reported by the
// Calculator is copied back into the widgets. Colors, sizes and padding come
// from a config.Style applied to stock widgets; nothing is subclassed.
package ui
