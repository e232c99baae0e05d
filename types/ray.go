package types

// A ray with an origin and a direction. The direction does not need to be
// a unit vector.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// Returns the point reached after travelling t direction lengths along the ray.
func (r Ray) At(t float32) Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}
