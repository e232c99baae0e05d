package scene

import (
	"sync/atomic"

	"github.com/achilleasa/polaris-rt/types"
)

// A stable identifier assigned to each object when it is constructed.
type ObjectID uint32

var lastObjectID uint32

func nextObjectID() ObjectID {
	return ObjectID(atomic.AddUint32(&lastObjectID, 1))
}

// The Object interface is implemented by all shapes that can be hit by rays.
// Objects are small value types; intersections carry a copy of the object
// that was hit.
type Object interface {
	// Get the object id.
	ID() ObjectID

	// Return the points where ray enters and leaves the object. Hits behind
	// the ray origin are never reported. The returned slice is not sorted.
	Intersections(ray types.Ray) []Intersection

	// Get the characteristic size (diameter) of the object.
	Extent() float32

	// Get the object center.
	Centre() types.Vec3

	// Get the object surface material.
	Material() Material
}

// A single ray/object hit.
type Intersection struct {
	Position types.Vec3

	// Euclidean distance between the ray origin and Position.
	Distance float32

	// Outward facing unit surface normal.
	Normal types.Vec3

	Object Object

	// The ray that generated this hit.
	Ray types.Ray
}

// Returns true if both intersections describe the same hit on the same object.
func (in Intersection) Equal(other Intersection) bool {
	d := in.Distance - other.Distance
	if d < 0 {
		d = -d
	}
	if d >= types.FloatCmpEpsilon {
		return false
	}
	if !in.Position.ApproxEqual(other.Position) || !in.Normal.ApproxEqual(other.Normal) {
		return false
	}
	if in.Object == nil || other.Object == nil {
		return in.Object == nil && other.Object == nil
	}
	return in.Object.ID() == other.Object.ID()
}

// A list of intersections ordered by distance.
type Intersections []Intersection

func (l Intersections) Len() int           { return len(l) }
func (l Intersections) Less(i, j int) bool { return l[i].Distance < l[j].Distance }
func (l Intersections) Swap(i, j int)      { l[i], l[j] = l[j], l[i] }
