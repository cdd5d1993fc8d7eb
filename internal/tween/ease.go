package tween

import "math"

// Ease maps linear progress in [0,1] to eased progress. Overshooting eases
// may leave [0,1] in between but always return 0 at 0 and 1 at 1.
type Ease func(t float64) float64

// Linear is the identity ease.
func Linear(t float64) float64 { return t }

// InQuad starts slow.
func InQuad(t float64) float64 { return t * t }

// InOutQuad accelerates, then decelerates.
func InOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

// InOutCubic is a steeper InOutQuad.
func InOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// OutCubic decelerates to rest.
func OutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// OutBack overshoots the target by an amount controlled by s, then settles.
// s = 1.70158 gives the classic ten percent overshoot.
func OutBack(s float64) Ease {
	return func(t float64) float64 {
		u := t - 1
		return 1 + u*u*((s+1)*u+s)
	}
}

// OutElastic rings around the target with the given amplitude (>= 1) and
// period (as a fraction of the tween).
func OutElastic(amplitude, period float64) Ease {
	if amplitude < 1 {
		amplitude = 1
	}
	shift := period / (2 * math.Pi) * math.Asin(1/amplitude)
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return amplitude*math.Pow(2, -10*t)*math.Sin((t-shift)*(2*math.Pi)/period) + 1
	}
}

// Lerp interpolates between a and b by v.
func Lerp(a, b, v float64) float64 {
	return a + (b-a)*v
}
