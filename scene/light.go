package scene

import (
	"fmt"

	"github.com/achilleasa/polaris-rt/types"
)

// Controls how light intensity attenuates with distance.
type Falloff uint8

const (
	NoFalloff Falloff = iota
	InverseSquareFalloff
)

func (f Falloff) String() string {
	switch f {
	case NoFalloff:
		return "none"
	case InverseSquareFalloff:
		return "inverse-square"
	}
	return fmt.Sprintf("Falloff(%d)", uint8(f))
}

// Parse a falloff name as produced by Falloff.String.
func ParseFalloff(name string) (Falloff, error) {
	switch name {
	case "", "none":
		return NoFalloff, nil
	case "inverse-square":
		return InverseSquareFalloff, nil
	}
	return NoFalloff, fmt.Errorf("scene: unknown light falloff %q", name)
}

// An omnidirectional point light.
type PointLight struct {
	Position  types.Vec3
	Intensity float32
	Falloff   Falloff
}

// Get the light intensity reaching a point at the given distance.
func (l PointLight) IntensityAt(distance float32) float32 {
	if l.Falloff == InverseSquareFalloff {
		return l.Intensity / (distance * distance)
	}
	return l.Intensity
}
