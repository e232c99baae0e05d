package tracer

import (
	"fmt"
	"math"

	"github.com/achilleasa/polaris-rt/scene"
	"github.com/achilleasa/polaris-rt/types"
)

// A Shader calculates the colour of the nearest ray hit.
type Shader interface {
	Shade(sc *scene.Scene, hit scene.Intersection) types.Colour
}

// Get a shader by its name.
func ShaderByName(name string) (Shader, error) {
	switch name {
	case "", "lit":
		return LitShader{}, nil
	case "depth":
		return DepthShader{}, nil
	}
	return nil, fmt.Errorf("tracer: unknown shader %q", name)
}

// LitShader implements a local Phong-style lighting model. Diffuse and
// specular intensities are accumulated over all scene lights and weighted
// by the material albedo. Light falloff only attenuates the diffuse term.
// The highlight is measured against the unnormalized ray direction so its
// strength scales with the camera screen distance.
type LitShader struct{}

func (LitShader) Shade(sc *scene.Scene, hit scene.Intersection) types.Colour {
	mat := hit.Object.Material()

	diffuse := sc.Ambient
	var specular float32
	for _, light := range sc.Lights {
		toLight := light.Position.Sub(hit.Position)
		lightDir, err := toLight.NormalizeChecked()
		if err != nil {
			// Light sits on the surface; it has no defined direction.
			continue
		}
		diffuse += max32(0, lightDir.Dot(hit.Normal)) * light.IntensityAt(toLight.Len())

		highlight := max32(0, lightDir.Reflect(hit.Normal).Dot(hit.Ray.Direction))
		specular += float32(math.Pow(float64(highlight), float64(mat.SpecularExponent))) * light.Intensity
	}

	return mat.Diffuse.Scale(diffuse * mat.Albedo.Diffuse).
		Add(types.White.Scale(specular * mat.Albedo.Specular))
}

// DepthShader ignores lights and renders a grayscale value that maps the
// hit distance across the object's extent to [1, 0]; closer is brighter.
type DepthShader struct{}

func (DepthShader) Shade(_ *scene.Scene, hit scene.Intersection) types.Colour {
	obj := hit.Object
	centreDist := obj.Centre().Sub(hit.Ray.Origin).Len()
	halfExtent := obj.Extent() / 2

	v := types.MapRange(hit.Distance, centreDist-halfExtent, centreDist+halfExtent, 1, 0)
	return types.Colour{R: v, G: v, B: v}
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
