package scene

import "github.com/achilleasa/polaris-rt/types"

// Albedo splits the surface response between the specular and diffuse
// lighting terms.
type Albedo struct {
	Specular float32
	Diffuse  float32
}

// Defines a surface material.
type Material struct {
	// Diffuse color.
	Diffuse types.Colour

	// Phong exponent for the specular highlight.
	SpecularExponent float32

	Albedo Albedo
}

// Materials used by the demo scene.
var (
	Ivory = Material{
		Diffuse:          types.Colour{R: 0.4, G: 0.4, B: 0.3},
		SpecularExponent: 50,
		Albedo:           Albedo{Specular: 0.3, Diffuse: 0.6},
	}

	RedRubber = Material{
		Diffuse:          types.Colour{R: 0.3, G: 0.1, B: 0.1},
		SpecularExponent: 10,
		Albedo:           Albedo{Specular: 0.1, Diffuse: 0.9},
	}
)
