package scene

import (
	"errors"
	"math"
	"sort"
	"testing"

	"github.com/achilleasa/polaris-rt/types"
)

func unitSphere(t *testing.T) Sphere {
	s, err := NewSphere(types.Vec3{}, 1, Ivory)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestSphereIntersections(t *testing.T) {
	sphere := unitSphere(t)
	ray := types.Ray{Origin: types.Vec3{0, 0, 5}, Direction: types.Vec3{0, 0, -1}}

	hits := Intersections(sphere.Intersections(ray))
	if len(hits) != 2 {
		t.Fatalf("expected 2 intersections; got %d", len(hits))
	}
	sort.Sort(hits)

	type spec struct {
		pos      types.Vec3
		distance float32
	}
	specs := []spec{
		{types.Vec3{0, 0, 1}, 4},
		{types.Vec3{0, 0, -1}, 6},
	}
	for index, s := range specs {
		hit := hits[index]
		if !hit.Position.ApproxEqual(s.pos) {
			t.Fatalf("[spec %d] expected hit position %v; got %v", index, s.pos, hit.Position)
		}
		// Normals of a unit sphere at the origin equal the hit position
		if !hit.Normal.ApproxEqual(s.pos) {
			t.Fatalf("[spec %d] expected normal %v; got %v", index, s.pos, hit.Normal)
		}
		if hit.Distance != s.distance {
			t.Fatalf("[spec %d] expected distance %f; got %f", index, s.distance, hit.Distance)
		}
		if hit.Object.ID() != sphere.ID() {
			t.Fatalf("[spec %d] expected hit object id %d; got %d", index, sphere.ID(), hit.Object.ID())
		}
	}

	// Both hits are symmetric about the point where the ray crosses the center
	if mid := (hits[0].Distance + hits[1].Distance) / 2; mid != 5 {
		t.Fatalf("expected hits to be symmetric about distance 5; got %f", mid)
	}
}

func TestSphereIntersectionsTangent(t *testing.T) {
	sphere := unitSphere(t)
	ray := types.Ray{Origin: types.Vec3{0, 1, 1}, Direction: types.Vec3{0, -1, 0}}

	hits := sphere.Intersections(ray)
	if len(hits) != 1 {
		t.Fatalf("expected 1 intersection; got %d", len(hits))
	}
	exp := types.Vec3{0, 0, 1}
	if !hits[0].Position.ApproxEqual(exp) || !hits[0].Normal.ApproxEqual(exp) {
		t.Fatalf("expected tangent hit at %v with normal %v; got %v / %v", exp, exp, hits[0].Position, hits[0].Normal)
	}
	if hits[0].Distance != 1 {
		t.Fatalf("expected distance 1; got %f", hits[0].Distance)
	}
}

func TestSphereIntersectionsMiss(t *testing.T) {
	sphere := unitSphere(t)
	specs := []types.Ray{
		{Origin: types.Vec3{0, 0, 2}, Direction: types.Vec3{0, 1, 0}},
		{Origin: types.Vec3{5, 5, 5}, Direction: types.Vec3{1, 0, 0}},
		{Origin: types.Vec3{0, 1.0001, 5}, Direction: types.Vec3{0, 0, -1}},
	}

	for index, ray := range specs {
		if hits := sphere.Intersections(ray); len(hits) != 0 {
			t.Fatalf("[spec %d] expected no intersections; got %d", index, len(hits))
		}
	}
}

func TestSphereIntersectionsBehindOrigin(t *testing.T) {
	sphere := unitSphere(t)
	ray := types.Ray{Origin: types.Vec3{0, 0, 5}, Direction: types.Vec3{0, 0, 1}}
	if hits := sphere.Intersections(ray); len(hits) != 0 {
		t.Fatalf("expected hits behind the origin to be ignored; got %d", len(hits))
	}
}

func TestSphereIntersectionsInside(t *testing.T) {
	sphere := unitSphere(t)
	ray := types.Ray{Origin: types.Vec3{}, Direction: types.Vec3{0, 0, -1}}

	hits := sphere.Intersections(ray)
	if len(hits) != 1 {
		t.Fatalf("expected 1 intersection; got %d", len(hits))
	}
	exp := types.Vec3{0, 0, -1}
	if !hits[0].Position.ApproxEqual(exp) {
		t.Fatalf("expected exit point %v; got %v", exp, hits[0].Position)
	}
	// Normal still faces outwards
	if !hits[0].Normal.ApproxEqual(exp) {
		t.Fatalf("expected outward normal %v; got %v", exp, hits[0].Normal)
	}
	if hits[0].Distance != 1 {
		t.Fatalf("expected distance 1; got %f", hits[0].Distance)
	}
}

func TestSphereIntersectionDistanceIsScaleInvariant(t *testing.T) {
	sphere := unitSphere(t)
	for index, scale := range []float32{0.25, 1, 3, 100} {
		ray := types.Ray{Origin: types.Vec3{0, 0, 5}, Direction: types.Vec3{0, 0, -scale}}
		hits := Intersections(sphere.Intersections(ray))
		sort.Sort(hits)
		if len(hits) != 2 {
			t.Fatalf("[spec %d] expected 2 intersections; got %d", index, len(hits))
		}
		if math.Abs(float64(hits[0].Distance-4)) > 1e-4 || math.Abs(float64(hits[1].Distance-6)) > 1e-4 {
			t.Fatalf("[spec %d] expected distances 4 and 6; got %f and %f", index, hits[0].Distance, hits[1].Distance)
		}
	}
}

func TestSphereDegenerateRay(t *testing.T) {
	sphere := unitSphere(t)
	ray := types.Ray{Origin: types.Vec3{0, 0, 5}}
	if hits := sphere.Intersections(ray); len(hits) != 0 {
		t.Fatalf("expected zero-direction ray to miss; got %d hits", len(hits))
	}
}

func TestNewSphereValidation(t *testing.T) {
	nan := float32(math.NaN())
	specs := []struct {
		center types.Vec3
		radius float32
	}{
		{types.Vec3{}, 0},
		{types.Vec3{}, -1},
		{types.Vec3{}, nan},
		{types.Vec3{}, float32(math.Inf(1))},
		{types.Vec3{nan, 0, 0}, 1},
	}

	for index, s := range specs {
		_, err := NewSphere(s.center, s.radius, Ivory)
		if !errors.Is(err, types.ErrDegenerateGeometry) {
			t.Fatalf("[spec %d] expected ErrDegenerateGeometry; got %v", index, err)
		}
	}
}

func TestSphereCapabilities(t *testing.T) {
	center := types.Vec3{1, 2, 3}
	s, err := NewSphere(center, 2.5, RedRubber)
	if err != nil {
		t.Fatal(err)
	}

	var obj Object = s
	if obj.Extent() != 5 {
		t.Fatalf("expected extent 5; got %f", obj.Extent())
	}
	if obj.Centre() != center {
		t.Fatalf("expected center %v; got %v", center, obj.Centre())
	}
	if obj.Material() != RedRubber {
		t.Fatalf("expected material %+v; got %+v", RedRubber, obj.Material())
	}

	other := unitSphere(t)
	if other.ID() == s.ID() {
		t.Fatal("expected each sphere to receive a unique id")
	}
}
