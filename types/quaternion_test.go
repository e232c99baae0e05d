package types

import (
	"math"
	"testing"
)

func TestQuatFromAxisAngle(t *testing.T) {
	type spec struct {
		axis  Vec3
		angle float32
		in    Vec3
		exp   Vec3
	}
	specs := []spec{
		{XAxis, math.Pi / 2, YAxis, ZAxis},
		{XAxis, -math.Pi / 2, YAxis, ZAxis.Neg()},
		{ZAxis, math.Pi / 2, XAxis, YAxis},
		// Axis is normalized internally
		{Vec3{0, 10, 0}, math.Pi, XAxis, XAxis.Neg()},
		{YAxis, 0, Vec3{1, 2, 3}, Vec3{1, 2, 3}},
	}

	for index, s := range specs {
		out := QuatFromAxisAngle(s.axis, s.angle).Rotate(s.in)
		if !out.ApproxEqual(s.exp) {
			t.Fatalf("[spec %d] expected %v; got %v", index, s.exp, out)
		}
	}
}

func TestQuatFromDegenerateAxis(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{}, math.Pi/3)
	if !q.ApproxEqual(QuatIdent()) {
		t.Fatalf("expected identity rotation for zero axis; got %v", q)
	}
}

func TestQuatComposition(t *testing.T) {
	axis := Vec3{1, 2, -1}
	angles := []float32{0.1, 0.7, math.Pi / 3, 2.5}

	for index, angle := range angles {
		q := QuatFromAxisAngle(axis, angle)
		composed := q.Mul(q)
		exp := QuatFromAxisAngle(axis, 2*angle)
		if !composed.ApproxEqual(exp) {
			t.Fatalf("[spec %d] expected %v; got %v", index, exp, composed)
		}

		v := Vec3{0.3, -2, 1}
		if r1, r2 := composed.Rotate(v), exp.Rotate(v); !r1.ApproxEqual(r2) {
			t.Fatalf("[spec %d] expected rotated vector %v; got %v", index, r2, r1)
		}
	}
}

func TestQuatMulIsNotCommutative(t *testing.T) {
	q1 := QuatFromAxisAngle(XAxis, math.Pi/2)
	q2 := QuatFromAxisAngle(YAxis, math.Pi/2)

	if q1.Mul(q2).ApproxEqual(q2.Mul(q1)) {
		t.Fatal("expected q1*q2 != q2*q1")
	}

	// q1.Mul(q2) applies q2 first
	v := ZAxis
	if r1, r2 := q1.Mul(q2).Rotate(v), q1.Rotate(q2.Rotate(v)); !r1.ApproxEqual(r2) {
		t.Fatalf("expected %v; got %v", r2, r1)
	}
}

func TestQuatRotationBetween(t *testing.T) {
	type spec struct {
		from, to Vec3
	}
	specs := []spec{
		{XAxis, YAxis},
		{YAxis, ZAxis.Neg()},
		{Vec3{1, 2, 3}.Normalize(), Vec3{-3, 1, 0.5}.Normalize()},
		{Vec3{0.2, -0.9, 0.1}.Normalize(), Vec3{0.7, 0.7, -0.1}.Normalize()},
	}

	for index, s := range specs {
		q := QuatRotationBetween(s.from, s.to, ZAxis)
		if out := q.Rotate(s.from); !out.ApproxEqual(s.to) {
			t.Fatalf("[spec %d] expected %v; got %v", index, s.to, out)
		}
	}
}

func TestQuatRotationBetweenDegenerate(t *testing.T) {
	// Parallel vectors yield the identity rotation
	q := QuatRotationBetween(XAxis, XAxis, ZAxis)
	if !q.ApproxEqual(QuatIdent()) {
		t.Fatalf("expected identity; got %v", q)
	}

	// Antiparallel vectors rotate 180 degrees about the up vector
	q = QuatRotationBetween(XAxis, XAxis.Neg(), ZAxis)
	if out := q.Rotate(XAxis); !out.ApproxEqual(XAxis.Neg()) {
		t.Fatalf("expected %v; got %v", XAxis.Neg(), out)
	}
	if out := q.Rotate(ZAxis); !out.ApproxEqual(ZAxis) {
		t.Fatalf("expected up axis to be preserved; got %v", out)
	}
}

func TestQuatNormalizeAndConjugate(t *testing.T) {
	q := Quat{V: Vec3{1, 2, 3}, W: 4}.Normalize()
	if !approxEqual(q.Len(), 1) {
		t.Fatalf("expected unit quaternion; got length %f", q.Len())
	}

	if n := (Quat{}).Normalize(); n != QuatIdent() {
		t.Fatalf("expected zero quaternion to normalize to identity; got %v", n)
	}

	r := QuatFromAxisAngle(Vec3{1, 1, 0}, 1.2)
	v := Vec3{0.5, -1, 2}
	if out := r.Conjugate().Rotate(r.Rotate(v)); !out.ApproxEqual(v) {
		t.Fatalf("expected conjugate to undo rotation; got %v", out)
	}
}
