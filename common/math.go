package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// NormalizeOrZero returns v scaled to unit length, or the zero vector when v
// has no usable direction. cp.Vector.Normalize yields NaN for a zero input.
func NormalizeOrZero(v cp.Vector) cp.Vector {
	l := v.Length()
	if l <= 1e-12 || math.IsNaN(l) || math.IsInf(l, 0) {
		return cp.Vector{}
	}
	return v.Mult(1 / l)
}

// ClampUnit shortens v to unit length only when it is longer than one, so
// partial analog input keeps its magnitude.
func ClampUnit(v cp.Vector) cp.Vector {
	if v.LengthSq() > 1 {
		return NormalizeOrZero(v)
	}
	return v
}

// Heading returns the unit vector for an angle in radians.
func Heading(angle float64) cp.Vector {
	return cp.Vector{X: math.Cos(angle), Y: math.Sin(angle)}
}

func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
