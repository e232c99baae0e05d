package reader

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/achilleasa/polaris-rt/asset"
	"github.com/achilleasa/polaris-rt/log"
	"github.com/achilleasa/polaris-rt/scene"
	"github.com/achilleasa/polaris-rt/types"
)

// Materials that scene files may reference without defining them.
var BuiltinMaterials = map[string]scene.Material{
	"ivory":      scene.Ivory,
	"red-rubber": scene.RedRubber,
}

type jsonSceneReader struct {
	logger log.Logger
	ctx    context.Context

	// The resource being parsed; used for error reporting.
	sceneRes *asset.Resource

	// If set, includes of the top-level document are resolved against this
	// resource instead of the scene resource.
	includeBase *asset.Resource
}

func newJSONSceneReader(ctx context.Context, includeBase *asset.Resource) *jsonSceneReader {
	return &jsonSceneReader{
		logger:      log.New("json reader"),
		ctx:         ctx,
		includeBase: includeBase,
	}
}

// Read scene definition from a JSON document.
func (r *jsonSceneReader) Read(sceneRes *asset.Resource) (*scene.Scene, error) {
	r.logger.Noticef(`parsing scene from "%s"`, sceneRes.Path())
	start := time.Now()
	r.sceneRes = sceneRes

	doc, err := decodeDocument(sceneRes)
	if err != nil {
		return nil, r.emitError("%s", err.Error())
	}

	base := r.includeBase
	if base == nil {
		base = sceneRes
	}
	if err = r.mergeIncludes(doc, base, map[string]bool{sceneRes.Path(): true}); err != nil {
		return nil, r.emitError("%s", err.Error())
	}

	sc, err := r.build(doc)
	if err != nil {
		return nil, err
	}

	r.logger.Noticef("parsed scene with %d objects and %d lights in %d ms", len(sc.Objects), len(sc.Lights), time.Since(start).Nanoseconds()/1e6)
	return sc, nil
}

func decodeDocument(res *asset.Resource) (*Document, error) {
	dec := json.NewDecoder(res)
	dec.DisallowUnknownFields()

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("invalid scene document: %s", err.Error())
	}
	return &doc, nil
}

// Load the documents included by doc and merge their materials, spheres and
// lights into it. Included entries precede the entries of doc and materials
// defined by doc take precedence. The visited set guards against include
// cycles.
func (r *jsonSceneReader) mergeIncludes(doc *Document, base *asset.Resource, visited map[string]bool) error {
	if len(doc.Include) == 0 {
		return nil
	}

	var (
		materials = make(map[string]MaterialDoc)
		spheres   []SphereDoc
		lights    []LightDoc
	)
	for _, location := range doc.Include {
		inc, err := r.readInclude(location, base, visited)
		if err != nil {
			return err
		}
		for name, mat := range inc.Materials {
			materials[name] = mat
		}
		spheres = append(spheres, inc.Spheres...)
		lights = append(lights, inc.Lights...)
	}

	for name, mat := range doc.Materials {
		materials[name] = mat
	}
	doc.Materials = materials
	doc.Spheres = append(spheres, doc.Spheres...)
	doc.Lights = append(lights, doc.Lights...)
	doc.Include = nil
	return nil
}

func (r *jsonSceneReader) readInclude(location string, base *asset.Resource, visited map[string]bool) (*Document, error) {
	res, err := asset.NewResource(r.ctx, location, base)
	if err != nil {
		return nil, fmt.Errorf("include %q: %w", location, err)
	}
	defer res.Close()

	if visited[res.Path()] {
		return nil, fmt.Errorf("include %q: cyclic include of %s", location, res.Path())
	}
	visited[res.Path()] = true
	defer delete(visited, res.Path())

	r.logger.Debugf(`including scene document "%s"`, res.Path())
	inc, err := decodeDocument(res)
	if err != nil {
		return nil, fmt.Errorf("include %q: %s", location, err.Error())
	}
	if inc.Camera != nil || inc.Background != nil || inc.Ambient != 0 {
		return nil, fmt.Errorf("include %q: only the top-level document may define the camera, background or ambient intensity", location)
	}
	if err = r.mergeIncludes(inc, res, visited); err != nil {
		return nil, err
	}
	return inc, nil
}

// Convert a decoded document into a scene.
func (r *jsonSceneReader) build(doc *Document) (*scene.Scene, error) {
	sc := scene.NewScene()
	if doc.Background != nil {
		sc.BgColor = types.Colour(*doc.Background)
	}
	if doc.Ambient < 0 {
		return nil, r.emitError("ambient intensity must be >= 0; got %f", doc.Ambient)
	}
	sc.Ambient = doc.Ambient

	if doc.Camera == nil {
		return nil, r.emitError("scene does not define a camera")
	}
	camera, err := r.buildCamera(doc.Camera)
	if err != nil {
		return nil, err
	}
	sc.SetCamera(camera)

	materials := make(map[string]scene.Material, len(BuiltinMaterials)+len(doc.Materials))
	for name, mat := range BuiltinMaterials {
		materials[name] = mat
	}
	for name, matDoc := range doc.Materials {
		if matDoc.SpecularExponent < 0 {
			return nil, r.emitError("material %q: specular exponent must be >= 0; got %f", name, matDoc.SpecularExponent)
		}
		materials[name] = scene.Material{
			Diffuse:          types.Colour(matDoc.Diffuse),
			SpecularExponent: matDoc.SpecularExponent,
			Albedo: scene.Albedo{
				Specular: matDoc.Albedo.Specular,
				Diffuse:  matDoc.Albedo.Diffuse,
			},
		}
	}

	for idx, sphereDoc := range doc.Spheres {
		mat, exists := materials[sphereDoc.Material]
		if !exists {
			return nil, r.emitError("sphere %d: unknown material %q", idx, sphereDoc.Material)
		}
		sphere, err := scene.NewSphere(types.Vec3(sphereDoc.Center), sphereDoc.Radius, mat)
		if err != nil {
			return nil, r.emitError("sphere %d: %s", idx, err.Error())
		}
		if err = sc.AddObject(sphere); err != nil {
			return nil, r.emitError("sphere %d: %s", idx, err.Error())
		}
	}

	for idx, lightDoc := range doc.Lights {
		falloff, err := scene.ParseFalloff(lightDoc.Falloff)
		if err != nil {
			return nil, r.emitError("light %d: %s", idx, err.Error())
		}
		light := scene.PointLight{
			Position:  types.Vec3(lightDoc.Position),
			Intensity: lightDoc.Intensity,
			Falloff:   falloff,
		}
		if err = sc.AddLight(light); err != nil {
			return nil, r.emitError("light %d: %s", idx, err.Error())
		}
	}

	return sc, nil
}

func (r *jsonSceneReader) buildCamera(doc *CameraDoc) (*scene.Camera, error) {
	var orientations []string
	if doc.Rotation != nil {
		orientations = append(orientations, "rotation")
	}
	if doc.Quaternion != nil {
		orientations = append(orientations, "quaternion")
	}
	if doc.LookAt != nil {
		orientations = append(orientations, "lookAt")
	}
	if len(orientations) > 1 {
		return nil, r.emitError("camera: only one of %s may be specified", strings.Join(orientations, ", "))
	}

	position := types.Vec3(doc.Position)
	var camera *scene.Camera
	var err error
	switch {
	case doc.LookAt != nil:
		up := types.ZAxis
		if doc.LookAt.Up != nil {
			up = types.Vec3(*doc.LookAt.Up)
		}
		camera, err = scene.NewLookAtCamera(position, types.Vec3(doc.LookAt.Target), up, doc.ScreenDistance)
	case doc.Quaternion != nil:
		q := types.Quat{
			V: types.Vec3{doc.Quaternion[0], doc.Quaternion[1], doc.Quaternion[2]},
			W: doc.Quaternion[3],
		}
		if q.Len() < types.FloatCmpEpsilon {
			return nil, r.emitError("camera: quaternion must have a non-zero length")
		}
		camera, err = scene.NewCamera(position, q, doc.ScreenDistance)
	case doc.Rotation != nil:
		camera, err = scene.NewCamera(position, types.QuatFromAxisAngle(types.Vec3(doc.Rotation.Axis), doc.Rotation.Angle), doc.ScreenDistance)
	default:
		camera, err = scene.NewCamera(position, types.QuatIdent(), doc.ScreenDistance)
	}

	if err != nil {
		return nil, r.emitError("%s", err.Error())
	}
	return camera, nil
}

// Generate an error message that includes the scene resource path.
func (r *jsonSceneReader) emitError(msgFormat string, args ...interface{}) error {
	msg := fmt.Sprintf(msgFormat, args...)
	if r.sceneRes != nil {
		return fmt.Errorf("[%s] error: %s", r.sceneRes.Path(), msg)
	}
	return fmt.Errorf("error: %s", msg)
}
