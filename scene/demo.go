package scene

import (
	"math"

	"github.com/achilleasa/polaris-rt/types"
)

// Build the built-in demo scene: four spheres lit by three point lights,
// viewed from the origin looking down the -Z axis.
func NewDemoScene() (*Scene, error) {
	sc := NewScene()
	sc.BgColor = types.Colour{R: 0.2, G: 0.7, B: 0.8}

	camera, err := NewCamera(types.Vec3{}, types.QuatFromAxisAngle(types.XAxis, -math.Pi/2), 5)
	if err != nil {
		return nil, err
	}
	sc.SetCamera(camera)

	spheres := []struct {
		center   types.Vec3
		radius   float32
		material Material
	}{
		{types.Vec3{-3, 0, -16}, 2, Ivory},
		{types.Vec3{-1, -1.5, -12}, 2, RedRubber},
		{types.Vec3{1.5, -0.5, -18}, 3, RedRubber},
		{types.Vec3{7, 5, -18}, 4, Ivory},
	}
	for _, def := range spheres {
		sphere, err := NewSphere(def.center, def.radius, def.material)
		if err != nil {
			return nil, err
		}
		if err = sc.AddObject(sphere); err != nil {
			return nil, err
		}
	}

	lights := []PointLight{
		{Position: types.Vec3{-20, 20, 20}, Intensity: 1.5},
		{Position: types.Vec3{30, -50, -25}, Intensity: 1.8},
		{Position: types.Vec3{30, -20, 30}, Intensity: 1.7},
	}
	for _, light := range lights {
		if err = sc.AddLight(light); err != nil {
			return nil, err
		}
	}

	return sc, nil
}
