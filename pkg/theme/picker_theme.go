package theme

import (
	"github.com/go-drift/picker/pkg/graphics"
	"golang.org/x/image/font"
)

// TextPresets holds the three visual roles of rows in a picker column.
type TextPresets struct {
	// Selected styles the middle row.
	Selected graphics.TextStyle
	// Candidate styles rows adjacent to the middle.
	Candidate graphics.TextStyle
	// Disappearing styles every other visible row.
	Disappearing graphics.TextStyle
}

// PickerThemeData defines default styling for picker columns.
type PickerThemeData struct {
	// Date presets apply to year/month/day columns.
	Date TextPresets
	// Time presets apply to hour/minute columns.
	Time TextPresets
	// Generic presets apply to free-form option columns.
	Generic TextPresets
	// RowHeight is the height of a regular row.
	RowHeight float64
	// SelectedRowHeight is the height of the selection band. Rows adjacent
	// to it are shifted by the mean of both heights.
	SelectedRowHeight float64
	// DividerColor is the selection band divider.
	DividerColor graphics.Color
}

// DefaultPickerTheme derives picker presets from a palette.
func DefaultPickerTheme(colors ColorScheme) PickerThemeData {
	date := TextPresets{
		Selected: graphics.TextStyle{
			FontSize: 20,
			Color:    colors.Primary,
			Weight:   font.WeightMedium,
		},
		Candidate: graphics.TextStyle{
			FontSize: 16,
			Color:    colors.OnSurface,
			Weight:   font.WeightNormal,
		},
		Disappearing: graphics.TextStyle{
			FontSize: 14,
			Color:    colors.OnSurfaceVariant,
			Weight:   font.WeightNormal,
		},
	}
	timePresets := date
	timePresets.Selected.FontSize = 22
	generic := date
	generic.Selected.Weight = font.WeightBold
	return PickerThemeData{
		Date:              date,
		Time:              timePresets,
		Generic:           generic,
		RowHeight:         36,
		SelectedRowHeight: 56,
		DividerColor:      colors.Primary.WithAlpha(0.2),
	}
}
