package transition

import "math"

// cubicBezier returns the easing curve defined by control points (x1, y1) and
// (x2, y2), with the end points fixed at (0, 0) and (1, 1).
func cubicBezier(x1, y1, x2, y2 float64) func(float64) float64 {
	cx := 3 * x1
	bx := 3*(x2-x1) - cx
	ax := 1 - cx - bx
	cy := 3 * y1
	by := 3*(y2-y1) - cy
	ay := 1 - cy - by

	sampleX := func(t float64) float64 { return ((ax*t+bx)*t + cx) * t }
	sampleY := func(t float64) float64 { return ((ay*t+by)*t + cy) * t }
	slopeX := func(t float64) float64 { return (3*ax*t+2*bx)*t + cx }

	solve := func(x float64) float64 {
		t := x
		for i := 0; i < 8; i++ {
			err := sampleX(t) - x
			if math.Abs(err) < 1e-6 {
				return t
			}
			d := slopeX(t)
			if math.Abs(d) < 1e-6 {
				break
			}
			t -= err / d
		}
		// Newton did not converge; fall back to bisection.
		lo, hi := 0.0, 1.0
		t = x
		for i := 0; i < 32 && lo < hi; i++ {
			v := sampleX(t)
			if math.Abs(v-x) < 1e-6 {
				break
			}
			if v < x {
				lo = t
			} else {
				hi = t
			}
			t = (lo + hi) / 2
		}
		return t
	}

	return func(x float64) float64 {
		if x <= 0 {
			return 0
		}
		if x >= 1 {
			return 1
		}
		return sampleY(solve(x))
	}
}

// EaseOut is the CSS "ease-out" curve, cubic-bezier(0, 0, 0.58, 1).
var EaseOut = cubicBezier(0, 0, 0.58, 1)
