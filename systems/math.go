package systems

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
)

// Steering vector helpers. Subtraction and magnitude come straight from r2 (r2.Sub, r2.Norm).

// Dist returns the Euclidean distance between two points.
func Dist(a, b r2.Vec) float64 {
	return r2.Norm(r2.Sub(a, b))
}

// SetMag returns v scaled to magnitude m. The zero vector is returned unchanged.
func SetMag(v r2.Vec, m float64) r2.Vec {
	n := r2.Norm(v)
	if n == 0 {
		return v
	}
	return r2.Scale(m/n, v)
}

// Limit clamps the magnitude of v to max.
func Limit(v r2.Vec, max float64) r2.Vec {
	n := r2.Norm(v)
	if n <= max || n == 0 {
		return v
	}
	return r2.Scale(max/n, v)
}

// RandomUnit returns a uniformly distributed unit vector.
func RandomUnit(rng *rand.Rand) r2.Vec {
	angle := rng.Float64() * 2 * math.Pi
	return r2.Vec{X: math.Cos(angle), Y: math.Sin(angle)}
}

// MapRange linearly remaps v from [inMin, inMax] to [outMin, outMax] without clamping.
func MapRange(v, inMin, inMax, outMin, outMax float64) float64 {
	if inMax == inMin {
		return outMin
	}
	return outMin + (v-inMin)*(outMax-outMin)/(inMax-inMin)
}
