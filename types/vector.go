package types

import (
	"math"

	"golang.org/x/image/math/f32"
)

// FloatCmpEpsilon is the shared tolerance used by all approximate
// comparisons of vectors, quaternions and distances.
const FloatCmpEpsilon float32 = 1e-5

type Vec3 f32.Vec3

// Define a 3 component vector.
func XYZ(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// Unit axes.
var (
	XAxis = Vec3{1, 0, 0}
	YAxis = Vec3{0, 1, 0}
	ZAxis = Vec3{0, 0, 1}
)

func (v Vec3) X() float32 { return v[0] }
func (v Vec3) Y() float32 { return v[1] }
func (v Vec3) Z() float32 { return v[2] }

// Add a vector.
func (v Vec3) Add(v2 Vec3) Vec3 {
	return Vec3{v[0] + v2[0], v[1] + v2[1], v[2] + v2[2]}
}

// Subtract a vector.
func (v Vec3) Sub(v2 Vec3) Vec3 {
	return Vec3{v[0] - v2[0], v[1] - v2[1], v[2] - v2[2]}
}

// Multiply a 3 component vector with a scalar.
func (v Vec3) Mul(s float32) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Divide a 3 component vector by a scalar.
func (v Vec3) Div(s float32) Vec3 {
	return Vec3{v[0] / s, v[1] / s, v[2] / s}
}

// Componentwise multiplication.
func (v Vec3) MulVec(v2 Vec3) Vec3 {
	return Vec3{v[0] * v2[0], v[1] * v2[1], v[2] * v2[2]}
}

// Componentwise division.
func (v Vec3) DivVec(v2 Vec3) Vec3 {
	return Vec3{v[0] / v2[0], v[1] / v2[1], v[2] / v2[2]}
}

// Negate vector.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

// Get 3 component vector length. The components are combined with
// successive hypot calls so large components do not overflow.
func (v Vec3) Len() float32 {
	return float32(math.Hypot(math.Hypot(float64(v[0]), float64(v[1])), float64(v[2])))
}

// Normalize 3 component vector. Vectors whose length is below
// FloatCmpEpsilon normalize to the zero vector.
func (v Vec3) Normalize() Vec3 {
	n, err := v.NormalizeChecked()
	if err != nil {
		return Vec3{}
	}
	return n
}

// Normalize 3 component vector or return ErrDegenerateGeometry if the
// vector length is too small (or not finite) for the result to be meaningful.
func (v Vec3) NormalizeChecked() (Vec3, error) {
	l := v.Len()
	if l < FloatCmpEpsilon || math.IsInf(float64(l), 0) || math.IsNaN(float64(l)) {
		return Vec3{}, ErrDegenerateGeometry
	}
	return v.Div(l), nil
}

// Calculate dot product of 2 vectors
func (v Vec3) Dot(v2 Vec3) float32 {
	return v[0]*v2[0] + v[1]*v2[1] + v[2]*v2[2]
}

// Calculate cross product of 2 vectors.
func (v Vec3) Cross(v2 Vec3) Vec3 {
	return Vec3{v[1]*v2[2] - v[2]*v2[1], v[2]*v2[0] - v[0]*v2[2], v[0]*v2[1] - v[1]*v2[0]}
}

// Reflect the vector about a plane with the given (unit) normal.
func (v Vec3) Reflect(normal Vec3) Vec3 {
	return v.Sub(normal.Mul(2 * v.Dot(normal)))
}

// Returns true if every component of v is within FloatCmpEpsilon of the
// matching component of v2.
func (v Vec3) ApproxEqual(v2 Vec3) bool {
	return approxEqual(v[0], v2[0]) && approxEqual(v[1], v2[1]) && approxEqual(v[2], v2[2])
}

// Compare vector magnitudes. Returns -1, 0 or 1; lengths that differ by
// less than FloatCmpEpsilon compare as equal.
func (v Vec3) Compare(v2 Vec3) int {
	l1, l2 := v.Len(), v2.Len()
	switch {
	case approxEqual(l1, l2):
		return 0
	case l1 < l2:
		return -1
	default:
		return 1
	}
}

// Returns true if no component is NaN or infinite.
func (v Vec3) IsFinite() bool {
	for _, c := range v {
		if math.IsNaN(float64(c)) || math.IsInf(float64(c), 0) {
			return false
		}
	}
	return true
}

func approxEqual(a, b float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < FloatCmpEpsilon
}
