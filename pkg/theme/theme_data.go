// Package theme resolves the style presets picker columns interpolate
// between. Presets are pulled once per configuration pass, never per frame.
package theme

import "github.com/go-drift/picker/pkg/graphics"

// Brightness indicates light or dark theme.
type Brightness int

const (
	BrightnessLight Brightness = iota
	BrightnessDark
)

func (b Brightness) String() string {
	if b == BrightnessDark {
		return "dark"
	}
	return "light"
}

// ColorScheme is the palette picker presets derive from.
type ColorScheme struct {
	// Primary highlights the selected row.
	Primary graphics.Color
	// OnSurface is the regular text color.
	OnSurface graphics.Color
	// OnSurfaceVariant is the muted text color of far rows.
	OnSurfaceVariant graphics.Color
	// Surface is the column background.
	Surface graphics.Color
}

// LightColorScheme returns the default light palette.
func LightColorScheme() ColorScheme {
	return ColorScheme{
		Primary:          graphics.RGB(0x00, 0x7D, 0xFF),
		OnSurface:        graphics.RGB(0x18, 0x24, 0x31),
		OnSurfaceVariant: graphics.RGB(0x18, 0x24, 0x31).WithAlpha(0.6),
		Surface:          graphics.ColorWhite,
	}
}

// DarkColorScheme returns the default dark palette.
func DarkColorScheme() ColorScheme {
	return ColorScheme{
		Primary:          graphics.RGB(0x31, 0x7A, 0xF7),
		OnSurface:        graphics.RGB(0xE5, 0xE5, 0xE5),
		OnSurfaceVariant: graphics.RGB(0xE5, 0xE5, 0xE5).WithAlpha(0.6),
		Surface:          graphics.RGB(0x12, 0x12, 0x12),
	}
}

// ThemeData contains the theme configuration for picker widgets.
type ThemeData struct {
	// ColorScheme defines the color palette.
	ColorScheme ColorScheme

	// Brightness indicates if this is a light or dark theme.
	Brightness Brightness

	// PickerTheme overrides the presets derived from ColorScheme.
	PickerTheme *PickerThemeData
}

// DefaultLightTheme returns the default light theme.
func DefaultLightTheme() *ThemeData {
	return &ThemeData{ColorScheme: LightColorScheme(), Brightness: BrightnessLight}
}

// DefaultDarkTheme returns the default dark theme.
func DefaultDarkTheme() *ThemeData {
	return &ThemeData{ColorScheme: DarkColorScheme(), Brightness: BrightnessDark}
}

// ForBrightness returns the default theme for b.
func ForBrightness(b Brightness) *ThemeData {
	if b == BrightnessDark {
		return DefaultDarkTheme()
	}
	return DefaultLightTheme()
}

// PickerThemeOf returns the picker theme, deriving from ColorScheme if not set.
func (t *ThemeData) PickerThemeOf() PickerThemeData {
	if t.PickerTheme != nil {
		return *t.PickerTheme
	}
	return DefaultPickerTheme(t.ColorScheme)
}
