package writer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/achilleasa/polaris-rt/scene"
	"github.com/achilleasa/polaris-rt/scene/reader"
)

// The Writer interface is implemented by all scene writers.
type Writer interface {
	// Write scene definition.
	Write(*scene.Scene) error
}

// Write scene to filename. Files with a .zip extension are written as scene
// archives; anything else is written as a JSON document.
func WriteScene(sc *scene.Scene, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("writer: %w", err)
	}
	defer f.Close()

	var w Writer
	if strings.EqualFold(filepath.Ext(filename), ".zip") {
		w = NewZipSceneWriter(f)
	} else {
		w = NewJSONSceneWriter(f)
	}
	if err = w.Write(sc); err != nil {
		return err
	}
	return f.Close()
}

type jsonSceneWriter struct {
	out io.Writer
}

// Create a writer that encodes scenes as indented JSON documents.
func NewJSONSceneWriter(out io.Writer) Writer {
	return &jsonSceneWriter{out: out}
}

func (w *jsonSceneWriter) Write(sc *scene.Scene) error {
	doc, err := NewDocument(sc)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w.out)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// Convert a scene into its serialized form. Materials are named after the
// matching builtin material or numbered in order of first use.
func NewDocument(sc *scene.Scene) (*reader.Document, error) {
	if sc.Camera == nil {
		return nil, fmt.Errorf("writer: scene does not define a camera")
	}

	bg := reader.ColourValue(sc.BgColor)
	rot := sc.Camera.Rotation
	doc := &reader.Document{
		Background: &bg,
		Ambient:    sc.Ambient,
		Camera: &reader.CameraDoc{
			Position:       [3]float32(sc.Camera.Position),
			Quaternion:     &[4]float32{rot.V[0], rot.V[1], rot.V[2], rot.W},
			ScreenDistance: sc.Camera.ScreenDistance,
		},
		Materials: make(map[string]reader.MaterialDoc),
	}

	matNames := make(map[scene.Material]string)
	for name, mat := range reader.BuiltinMaterials {
		matNames[mat] = name
	}

	for _, obj := range sc.Objects {
		sphere, isSphere := obj.(scene.Sphere)
		if !isSphere {
			return nil, fmt.Errorf("writer: unsupported object type %T", obj)
		}

		name, known := matNames[sphere.Surface]
		if !known {
			name = fmt.Sprintf("material-%d", len(doc.Materials))
			matNames[sphere.Surface] = name
		}
		if _, defined := doc.Materials[name]; !defined {
			doc.Materials[name] = reader.MaterialDoc{
				Diffuse:          reader.ColourValue(sphere.Surface.Diffuse),
				SpecularExponent: sphere.Surface.SpecularExponent,
				Albedo: reader.AlbedoDoc{
					Specular: sphere.Surface.Albedo.Specular,
					Diffuse:  sphere.Surface.Albedo.Diffuse,
				},
			}
		}

		doc.Spheres = append(doc.Spheres, reader.SphereDoc{
			Center:   [3]float32(sphere.Center),
			Radius:   sphere.Radius,
			Material: name,
		})
	}

	for _, light := range sc.Lights {
		doc.Lights = append(doc.Lights, reader.LightDoc{
			Position:  [3]float32(light.Position),
			Intensity: light.Intensity,
			Falloff:   light.Falloff.String(),
		})
	}

	return doc, nil
}
