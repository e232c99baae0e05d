package scene

import (
	"bytes"
	"fmt"
	"math"
	"sort"

	"github.com/achilleasa/polaris-rt/types"
	"github.com/olekukonko/tablewriter"
)

type Scene struct {
	Camera *Camera

	Objects []Object
	Lights  []PointLight

	// Base diffuse light intensity added to every lit surface point.
	Ambient float32

	BgColor types.Colour
}

func NewScene() *Scene {
	return &Scene{
		Objects: make([]Object, 0),
		Lights:  make([]PointLight, 0),
	}
}

// Attach a camera to the scene.
func (s *Scene) SetCamera(camera *Camera) {
	s.Camera = camera
}

// Add an object to the scene.
func (s *Scene) AddObject(object Object) error {
	if object == nil {
		return fmt.Errorf("scene: nil object")
	}
	for _, obj := range s.Objects {
		if obj.ID() == object.ID() {
			return fmt.Errorf("scene: object %d already added", object.ID())
		}
	}
	s.Objects = append(s.Objects, object)
	return nil
}

// Add a light to the scene.
func (s *Scene) AddLight(light PointLight) error {
	if !light.Position.IsFinite() {
		return fmt.Errorf("scene: light position %v: %w", light.Position, types.ErrDegenerateGeometry)
	}
	if light.Intensity < 0 || math.IsNaN(float64(light.Intensity)) {
		return fmt.Errorf("scene: light intensity must be >= 0; got %f", light.Intensity)
	}
	s.Lights = append(s.Lights, light)
	return nil
}

// Gather the intersections of ray with every scene object, sorted by
// ascending distance.
func (s *Scene) Intersect(ray types.Ray) Intersections {
	var hits Intersections
	for _, obj := range s.Objects {
		hits = append(hits, obj.Intersections(ray)...)
	}
	sort.Sort(hits)
	return hits
}

// Build a tabular representation of scene contents.
func (s *Scene) Stats() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Type", "Position", "Properties"})
	if s.Camera != nil {
		table.Append([]string{"Camera", fmtVec(s.Camera.Position), fmt.Sprintf("forward %s, screen distance %.2f", fmtVec(s.Camera.Forward()), s.Camera.ScreenDistance)})
	}
	for _, obj := range s.Objects {
		mat := obj.Material()
		table.Append([]string{
			fmt.Sprintf("Object #%d", obj.ID()),
			fmtVec(obj.Centre()),
			fmt.Sprintf("extent %.2f, diffuse %s, exponent %.0f, albedo %.2f/%.2f", obj.Extent(), mat.Diffuse, mat.SpecularExponent, mat.Albedo.Specular, mat.Albedo.Diffuse),
		})
	}
	for _, light := range s.Lights {
		table.Append([]string{"Light", fmtVec(light.Position), fmt.Sprintf("intensity %.2f, falloff %s", light.Intensity, light.Falloff)})
	}
	table.SetFooter([]string{"", "ambient", fmt.Sprintf("%.2f, background %s", s.Ambient, s.BgColor)})
	table.Render()

	return buf.String()
}

func fmtVec(v types.Vec3) string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", v[0], v[1], v[2])
}
