package types

import "math"

// Unit quaternion used to describe rotations. The vector part holds the
// x, y, z components.
type Quat struct {
	V Vec3
	W float32
}

// Create identity quaternion.
func QuatIdent() Quat {
	return Quat{
		V: Vec3{},
		W: 1.0,
	}
}

// Create a quaternion from an axis vector and an angle in radians. The axis
// is normalized internally; a zero-length axis yields the identity rotation.
func QuatFromAxisAngle(axis Vec3, angle float32) Quat {
	unitAxis, err := axis.NormalizeChecked()
	if err != nil {
		return QuatIdent()
	}

	sin := float32(math.Sin(float64(angle * 0.5)))
	cos := float32(math.Cos(float64(angle * 0.5)))
	return Quat{
		V: unitAxis.Mul(sin),
		W: cos,
	}
}

// Create the minimal rotation that maps unit vector from onto unit vector to.
//
// When the two vectors are antiparallel the rotation axis is undefined; the
// up vector is used as the axis of a 180 degree rotation. When they are
// parallel the identity rotation is returned.
func QuatRotationBetween(from, to, up Vec3) Quat {
	dot := from.Dot(to)
	if dot <= -1+FloatCmpEpsilon {
		return QuatFromAxisAngle(up, math.Pi)
	}
	if dot >= 1-FloatCmpEpsilon {
		return QuatIdent()
	}

	axis := from.Cross(to)
	return QuatFromAxisAngle(axis, float32(math.Acos(float64(dot))))
}

// Rotates a vector by the rotation this quaternion represents.
func (q1 Quat) Rotate(v Vec3) Vec3 {
	cross := q1.V.Cross(v)
	// v + 2q_w * (q_v x v) + 2q_v x (q_v x v)
	return v.Add(cross.Mul(2 * q1.W)).Add(q1.V.Mul(2).Cross(cross))
}

// Multiplies two quaternions (Hamilton product). The result applies q2
// first and then q1. Multiplication is NOT commutative, meaning q1.Mul(q2)
// does not necessarily equal q2.Mul(q1).
func (q1 Quat) Mul(q2 Quat) Quat {
	return Quat{
		q1.V.Cross(q2.V).Add(q2.V.Mul(q1.W)).Add(q1.V.Mul(q2.W)),
		q1.W*q2.W - q1.V.Dot(q2.V),
	}
}

// Returns the Length of the quaternion, also known as its Norm.
func (q1 Quat) Len() float32 {
	return float32(math.Sqrt(float64(q1.W*q1.W + q1.V.Dot(q1.V))))
}

// Normalizes the quaternion, returning its versor (unit quaternion).
func (q1 Quat) Normalize() Quat {
	length := q1.Len()

	if approxEqual(length, 1) {
		return q1
	}
	if length == 0 {
		return QuatIdent()
	}
	if length == float32(math.Inf(1)) {
		length = math.MaxFloat32
	}

	return Quat{q1.V.Mul(1 / length), q1.W * 1 / length}
}

// The conjugate of a unit quaternion describes the inverse rotation.
func (q1 Quat) Conjugate() Quat {
	return Quat{q1.V.Neg(), q1.W}
}

// Returns true if both quaternions describe the same rotation within
// FloatCmpEpsilon. Since q and -q encode the same rotation both signs
// are accepted.
func (q1 Quat) ApproxEqual(q2 Quat) bool {
	if approxEqual(q1.W, q2.W) && q1.V.ApproxEqual(q2.V) {
		return true
	}
	return approxEqual(q1.W, -q2.W) && q1.V.ApproxEqual(q2.V.Neg())
}
