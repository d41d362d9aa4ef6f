package config

import (
	"fmt"
	"image/color"
	"strconv"
)

// Style is the look of the window, applied to standard widgets by the ui
// package. Colors are "#rrggbb".
type Style struct {
	Background      string  `envconfig:"BACKGROUND" default:"#e8f3f1"`
	Frame           string  `envconfig:"FRAME" default:"#d5e8e3"`
	LabelBackground string  `envconfig:"LABEL_BACKGROUND" default:"#c1dfd7"`
	EntryBackground string  `envconfig:"ENTRY_BACKGROUND" default:"#ecf0f1"`
	Text            string  `envconfig:"TEXT" default:"#2c3e50"`
	AddButton       string  `envconfig:"ADD_BUTTON" default:"#3498db"`
	SubtractButton  string  `envconfig:"SUBTRACT_BUTTON" default:"#e74c3c"`
	MultiplyButton  string  `envconfig:"MULTIPLY_BUTTON" default:"#2ecc71"`
	ClearButton     string  `envconfig:"CLEAR_BUTTON" default:"#95a5a6"`
	TitleSize       float32 `envconfig:"TITLE_SIZE" default:"16"`
	Padding         float32 `envconfig:"PADDING" default:"5"`
}

func (s Style) colors() map[string]string {
	return map[string]string{
		"background":       s.Background,
		"frame":            s.Frame,
		"label_background": s.LabelBackground,
		"entry_background": s.EntryBackground,
		"text":             s.Text,
		"add_button":       s.AddButton,
		"subtract_button":  s.SubtractButton,
		"multiply_button":  s.MultiplyButton,
		"clear_button":     s.ClearButton,
	}
}

// Validate checks every color field and the sizes.
func (s Style) Validate() error {
	for name, hex := range s.colors() {
		if _, err := ParseColor(hex); err != nil {
			return fmt.Errorf("style %s: %w", name, err)
		}
	}
	if s.TitleSize <= 0 || s.Padding < 0 {
		return fmt.Errorf("style sizes title=%g padding=%g: %w", s.TitleSize, s.Padding, ErrInvalidConfig)
	}

	return nil
}

// ParseColor converts "#rrggbb" to an opaque color.
func ParseColor(hex string) (color.NRGBA, error) {
	if len(hex) != 7 || hex[0] != '#' {
		return color.NRGBA{}, fmt.Errorf("color %q: %w", hex, ErrInvalidConfig)
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("color %q: %w", hex, ErrInvalidConfig)
	}

	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// Color returns the parsed value of hex, or opaque black if it does not parse.
// Callers are expected to have run Validate.
func Color(hex string) color.NRGBA {
	c, err := ParseColor(hex)
	if err != nil {
		return color.NRGBA{A: 0xff}
	}

	return c
}
