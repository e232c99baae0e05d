package reader

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/achilleasa/polaris-rt/types"
)

// The name of the scene description entry inside zip scene archives.
const ZipSceneEntry = "scene.json"

// Document is the serialized form of a scene. It is shared by the scene
// readers and writers.
//
// Include lists other scene documents whose materials, spheres and lights
// are merged into this one. Relative include paths are resolved against the
// location of the including document. Only the top-level document may define
// the camera, background and ambient intensity.
type Document struct {
	Include    []string               `json:"include,omitempty"`
	Background *ColourValue           `json:"background,omitempty"`
	Ambient    float32                `json:"ambient,omitempty"`
	Camera     *CameraDoc             `json:"camera"`
	Materials  map[string]MaterialDoc `json:"materials,omitempty"`
	Spheres    []SphereDoc            `json:"spheres,omitempty"`
	Lights     []LightDoc             `json:"lights,omitempty"`
}

// CameraDoc describes the camera placement. At most one of Rotation,
// Quaternion and LookAt may be set; if none is set the camera keeps its
// local orientation (looking down +Y).
type CameraDoc struct {
	Position       [3]float32   `json:"position"`
	Rotation       *RotationDoc `json:"rotation,omitempty"`
	Quaternion     *[4]float32  `json:"quaternion,omitempty"`
	LookAt         *LookAtDoc   `json:"lookAt,omitempty"`
	ScreenDistance float32      `json:"screenDistance"`
}

// A rotation of Angle radians about Axis.
type RotationDoc struct {
	Axis  [3]float32 `json:"axis"`
	Angle float32    `json:"angle"`
}

type LookAtDoc struct {
	Target [3]float32  `json:"target"`
	Up     *[3]float32 `json:"up,omitempty"`
}

type MaterialDoc struct {
	Diffuse          ColourValue `json:"diffuse"`
	SpecularExponent float32     `json:"specularExponent"`
	Albedo           AlbedoDoc   `json:"albedo"`
}

type AlbedoDoc struct {
	Specular float32 `json:"specular"`
	Diffuse  float32 `json:"diffuse"`
}

type SphereDoc struct {
	Center   [3]float32 `json:"center"`
	Radius   float32    `json:"radius"`
	Material string     `json:"material"`
}

type LightDoc struct {
	Position  [3]float32 `json:"position"`
	Intensity float32    `json:"intensity"`
	Falloff   string     `json:"falloff,omitempty"`
}

// ColourValue is a colour that can be encoded either as a "#rrggbb" hex
// string or as an [r, g, b] array of (possibly unclamped) floats. It always
// encodes to the array form so values survive a round trip unchanged.
type ColourValue types.Colour

func (c ColourValue) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float32{c.R, c.G, c.B})
}

func (c *ColourValue) UnmarshalJSON(data []byte) error {
	var hex string
	if err := json.Unmarshal(data, &hex); err == nil {
		parsed, err := parseHexColour(hex)
		if err != nil {
			return err
		}
		*c = ColourValue(parsed)
		return nil
	}

	var rgb [3]float32
	if err := json.Unmarshal(data, &rgb); err != nil {
		return fmt.Errorf("colour must be a \"#rrggbb\" string or an [r, g, b] array; got %s", data)
	}
	*c = ColourValue{R: rgb[0], G: rgb[1], B: rgb[2]}
	return nil
}

func parseHexColour(hex string) (types.Colour, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 6 {
		return types.Colour{}, fmt.Errorf("invalid hex colour %q", hex)
	}
	val, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return types.Colour{}, fmt.Errorf("invalid hex colour %q", hex)
	}
	return types.ColourFromHex(uint32(val)), nil
}
