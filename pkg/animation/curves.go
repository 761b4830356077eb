package animation

import "math"

// Easing curves map linear progress t in [0, 1] to eased progress.

// LinearCurve returns linear progress (no easing).
func LinearCurve(t float64) float64 {
	return t
}

// EaseOut starts quickly and decelerates. Used for snap-back so the row
// settles softly into the selection band.
var EaseOut = CubicBezier(0.0, 0.0, 0.2, 1.0)

// EaseInOut starts and ends slowly with acceleration in the middle.
var EaseInOut = CubicBezier(0.4, 0.0, 0.2, 1.0)

// Friction matches the sharp-out curve used for programmatic row changes.
var Friction = CubicBezier(0.2, 0.0, 0.2, 1.0)

// CubicBezier returns a cubic-bezier easing function matching CSS cubic-bezier().
// The curve starts at (0,0) and ends at (1,1).
func CubicBezier(x1, y1, x2, y2 float64) func(float64) float64 {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		u := t
		// Newton-Raphson converges quickly for most values.
		for i := 0; i < 8; i++ {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return sampleCurve(y1, y2, clampUnit(u))
			}
			dx := sampleCurveDerivative(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		// Bisection fallback keeps the solution in [0,1].
		lo, hi := 0.0, 1.0
		u = clampUnit(u)
		for i := 0; i < 12; i++ {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) * 0.5
		}

		return sampleCurve(y1, y2, u)
	}
}

func sampleCurve(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func sampleCurveDerivative(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
