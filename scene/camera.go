package scene

import (
	"fmt"

	"github.com/achilleasa/polaris-rt/types"
)

// In camera space the view direction is +Y; X and Z span the screen plane.
var (
	cameraForward = types.YAxis
	cameraUp      = types.ZAxis
)

// The camera type generates primary rays. The screen plane sits at
// ScreenDistance units along the camera's local forward axis.
type Camera struct {
	Position       types.Vec3
	Rotation       types.Quat
	ScreenDistance float32
}

// Create a camera at position with the given orientation.
func NewCamera(position types.Vec3, rotation types.Quat, screenDistance float32) (*Camera, error) {
	if !position.IsFinite() {
		return nil, fmt.Errorf("camera: position %v: %w", position, types.ErrDegenerateGeometry)
	}
	if screenDistance <= 0 {
		return nil, fmt.Errorf("camera: screen distance must be > 0; got %f", screenDistance)
	}

	return &Camera{
		Position:       position,
		Rotation:       rotation.Normalize(),
		ScreenDistance: screenDistance,
	}, nil
}

// Create a camera at position looking towards target. The up vector is
// used to resolve the rotation when target lies straight behind the
// camera's local forward axis.
func NewLookAtCamera(position, target, up types.Vec3, screenDistance float32) (*Camera, error) {
	dir, err := target.Sub(position).NormalizeChecked()
	if err != nil {
		return nil, fmt.Errorf("camera: look-at target coincides with position: %w", err)
	}

	upAxis, err := up.NormalizeChecked()
	if err != nil {
		upAxis = cameraUp
	}

	return NewCamera(position, types.QuatRotationBetween(cameraForward, dir, upAxis), screenDistance)
}

// Generate a ray through screen-plane coordinate (x, y). The returned ray
// direction is not normalized.
func (c *Camera) RayFromPosition(x, y float32) types.Ray {
	return types.Ray{
		Origin:    c.Position,
		Direction: c.Rotation.Rotate(types.Vec3{x, c.ScreenDistance, y}),
	}
}

// Get the unit view direction.
func (c *Camera) Forward() types.Vec3 {
	return c.Rotation.Rotate(cameraForward)
}

func (c *Camera) String() string {
	return fmt.Sprintf("Camera (pos: %v, forward: %v, screen distance: %3.3f)", c.Position, c.Forward(), c.ScreenDistance)
}
