package animation

import (
	"github.com/go-drift/picker/pkg/graphics"
	"golang.org/x/image/font"
)

// WeightSnapThreshold is the blend fraction at which a font weight switches
// from its start value to its end value. Weights have no continuous
// intermediate values.
const WeightSnapThreshold = 0.5

// Tween interpolates between Begin and End values. Text animators keep one
// per slot and direction.
type Tween[T any] struct {
	// Begin is the starting value (when t = 0).
	Begin T
	// End is the ending value (when t = 1).
	End T
	// Lerp interpolates between Begin and End for progress t in [0, 1].
	Lerp func(a, b T, t float64) T
}

// Evaluate returns the interpolated value at t (0.0 to 1.0).
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// LerpColor blends two colors component-wise in RGB space using
// go-colorful; alpha is blended linearly alongside.
func LerpColor(a, b graphics.Color, t float64) graphics.Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	blended := a.Colorful().BlendRgb(b.Colorful(), t)
	return graphics.FromColorful(blended, LerpFloat64(a.Alpha(), b.Alpha(), t))
}

// LerpWeight returns a until t reaches WeightSnapThreshold, then b.
func LerpWeight(a, b font.Weight, t float64) font.Weight {
	if t >= WeightSnapThreshold {
		return b
	}
	return a
}

// LerpTextStyle interpolates font size and color linearly and snaps weight.
func LerpTextStyle(a, b graphics.TextStyle, t float64) graphics.TextStyle {
	return graphics.TextStyle{
		FontSize: LerpFloat64(a.FontSize, b.FontSize, t),
		Color:    LerpColor(a.Color, b.Color, t),
		Weight:   LerpWeight(a.Weight, b.Weight, t),
	}
}

// TweenTextStyle creates a tween for text styles.
func TweenTextStyle(begin, end graphics.TextStyle) *Tween[graphics.TextStyle] {
	return &Tween[graphics.TextStyle]{
		Begin: begin,
		End:   end,
		Lerp:  LerpTextStyle,
	}
}
