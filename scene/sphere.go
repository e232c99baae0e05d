package scene

import (
	"fmt"
	"math"

	"github.com/achilleasa/polaris-rt/types"
)

type Sphere struct {
	id      ObjectID
	Center  types.Vec3
	Radius  float32
	Surface Material
}

// Create new sphere primitive.
func NewSphere(center types.Vec3, radius float32, material Material) (Sphere, error) {
	if !center.IsFinite() {
		return Sphere{}, fmt.Errorf("sphere: center %v: %w", center, types.ErrDegenerateGeometry)
	}
	if !(radius > 0) || math.IsInf(float64(radius), 0) {
		return Sphere{}, fmt.Errorf("sphere: radius must be a positive finite value; got %f: %w", radius, types.ErrDegenerateGeometry)
	}

	return Sphere{
		id:      nextObjectID(),
		Center:  center,
		Radius:  radius,
		Surface: material,
	}, nil
}

func (s Sphere) ID() ObjectID {
	return s.id
}

func (s Sphere) Extent() float32 {
	return 2 * s.Radius
}

func (s Sphere) Centre() types.Vec3 {
	return s.Center
}

func (s Sphere) Material() Material {
	return s.Surface
}

// Solve |origin + t*dir - center|^2 = radius^2 for t. Roots with t <= 0 lie
// behind the ray origin and are skipped; a tangent ray yields a single hit.
func (s Sphere) Intersections(ray types.Ray) []Intersection {
	a := ray.Direction.Dot(ray.Direction)
	if a < types.FloatCmpEpsilon*types.FloatCmpEpsilon {
		return nil
	}

	oc := ray.Origin.Sub(s.Center)
	b := 2 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := float32(math.Sqrt(float64(discriminant)))
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)
	if t1 > t2 {
		t1, t2 = t2, t1
	}

	hits := make([]types.Vec3, 0, 2)
	if t1 > 0 {
		hits = append(hits, ray.At(t1))
	}
	if t2 > 0 {
		hit := ray.At(t2)
		if len(hits) == 0 || !hits[0].ApproxEqual(hit) {
			hits = append(hits, hit)
		}
	}

	intersections := make([]Intersection, 0, len(hits))
	for _, hit := range hits {
		intersections = append(intersections, Intersection{
			Position: hit,
			Distance: hit.Sub(ray.Origin).Len(),
			Normal:   hit.Sub(s.Center).Normalize(),
			Object:   s,
			Ray:      ray,
		})
	}

	return intersections
}

func (s Sphere) String() string {
	return fmt.Sprintf("Sphere #%d (center: %v, radius: %3.3f)", s.id, s.Center, s.Radius)
}
