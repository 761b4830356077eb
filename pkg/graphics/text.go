// Package graphics holds the value types the picker hands to a renderer:
// ARGB colors and the resolved text style of one option row.
package graphics

import "golang.org/x/image/font"

// TextStyle is the resolved style of an option row.
type TextStyle struct {
	// FontSize in logical pixels.
	FontSize float64
	// Color of the glyphs.
	Color Color
	// Weight has no continuous intermediate values; animations snap it.
	Weight font.Weight
}

// WeightFromCSS maps a CSS-style numeric weight (100..900) to a font.Weight.
// Values between steps round to the nearest step.
func WeightFromCSS(w int) font.Weight {
	if w <= 0 {
		return font.WeightNormal
	}
	step := (w + 50) / 100
	if step < 1 {
		step = 1
	}
	if step > 9 {
		step = 9
	}
	return font.Weight(step - 4)
}

// WeightToCSS is the inverse of WeightFromCSS.
func WeightToCSS(w font.Weight) int {
	return (int(w) + 4) * 100
}

// IsBold reports whether the weight renders as bold on a two-weight device
// such as a terminal.
func IsBold(w font.Weight) bool {
	return w >= font.WeightSemiBold
}
