package beryl

import (
	"image/png"
	"io"
	"log"
	"math"
	"os"
)

// Scene is the forward mesh-path convenience wrapper: a context, a shader and
// a list of objects, drawn in one call. The pass-based renderer lives in
// Engine; Scene remains the quick way to turn meshes into a PNG.
type Scene struct {
	Context         *Context
	Objects         []*Object
	Shader          Shader
	eye, center, up Vector
	fovy, aspect    float64
}

// NewScene returns a scene rendering at size*scale square pixels.
func NewScene(eye, center, up Vector, fovy float64, size, scale int, shader Shader) *Scene {
	aspect := 1.0
	context := NewContext(size*scale, size*scale, shader)
	return &Scene{context, nil, shader, eye, center, up, fovy, aspect}
}

// AddObject adds an object to the scene
func (s *Scene) AddObject(o *Object) {
	s.Objects = append(s.Objects, o)
}

// AddObjects is a convenience method to add multiple objects
func (s *Scene) AddObjects(objects []*Object) {
	for _, o := range objects {
		s.AddObject(o)
	}
}

// FitObjectsToScene computes a view-projection matrix whose field of view
// just contains every object's bounding box, with a little padding.
func (s *Scene) FitObjectsToScene(eye, center, up Vector, aspect, near, far float64) Matrix {
	var boxes []Box
	for _, o := range s.Objects {
		if o.Mesh != nil {
			boxes = append(boxes, o.Mesh.BoundingBox())
		}
	}

	if len(boxes) == 0 {
		return LookAt(eye, center, up).Perspective(60, aspect, near, far)
	}
	sceneBox := BoxForBoxes(boxes)

	viewMatrix := LookAt(eye, center, up)

	var maxAngleX, maxAngleY float64
	for _, corner := range sceneBox.Corners() {
		p := viewMatrix.MulPosition(corner)

		// The camera looks down -Z in view space; absZ is the depth of the
		// point from the camera plane.
		absZ := math.Abs(p.Z)
		if absZ < 1e-6 {
			continue
		}

		angleX := math.Atan(math.Abs(p.X) / absZ)
		if angleX > maxAngleX {
			maxAngleX = angleX
		}

		angleY := math.Atan(math.Abs(p.Y) / absZ)
		if angleY > maxAngleY {
			maxAngleY = angleY
		}
	}

	fovyFromY := 2 * maxAngleY
	fovyFromX := 2 * math.Atan(math.Tan(maxAngleX)/aspect)
	finalFovyRad := math.Max(fovyFromX, fovyFromY)

	// 5% padding so nothing touches the frame edge.
	finalFovyDeg := Degrees(finalFovyRad) * 1.05

	return viewMatrix.Perspective(finalFovyDeg, aspect, near, far)
}

func (s *Scene) render(fit bool, objects []*Object) {
	s.AddObjects(objects)
	if fit {
		newMatrix := s.FitObjectsToScene(s.eye, s.center, s.up, s.aspect, 1, 999)
		switch shader := s.Shader.(type) {
		case *PhongShader:
			shader.Matrix = newMatrix
		case *ToonShader:
			shader.Matrix = newMatrix
		case *SolidColorShader:
			shader.Matrix = newMatrix
		}
	}
	for _, o := range s.Objects {
		if o.Mesh == nil {
			log.Printf("beryl: skipping object with nil mesh")
			continue
		}
		s.Context.DrawObject(o)
	}
}

// Draw renders the scene and writes it to path as a PNG.
func (s *Scene) Draw(fit bool, path string, objects []*Object) {
	s.render(fit, objects)

	file, err := os.Create(path)
	if err != nil {
		log.Printf("beryl: could not create file in Draw: %v", err)
		return
	}
	defer file.Close()

	if err := png.Encode(file, s.Context.Image()); err != nil {
		log.Printf("beryl: could not encode png in Draw: %v", err)
	}
}

// DrawToWriter renders the scene and encodes the PNG to the writer.
func (s *Scene) DrawToWriter(fit bool, writer io.Writer, objects []*Object) error {
	s.render(fit, objects)
	return png.Encode(writer, s.Context.Image())
}

// GenerateScene renders objects with a Phong shader straight to a PNG file.
func GenerateScene(fit bool, path string, objects []*Object, eye, center, up Vector, fovy float64, size, scale int, light Vector, ambient, diffuse string, near, far float64) {
	file, err := os.Create(path)
	if err != nil {
		log.Printf("beryl: could not create file for GenerateScene: %v", err)
		return
	}
	defer file.Close()

	err = GenerateSceneToWriter(file, objects, eye, center, up, fovy, size, scale, light, ambient, diffuse, near, far, fit)
	if err != nil {
		log.Printf("beryl: could not generate scene to file: %v", err)
	}
}

// GenerateSceneWithShader is GenerateScene with a caller-supplied shader.
func GenerateSceneWithShader(fit bool, shader Shader, path string, objects []*Object, eye, center, up Vector, fovy float64, size, scale int) {
	scene := NewScene(eye, center, up, fovy, size, scale, shader)
	scene.Draw(fit, path, objects)
}

func GenerateSceneToWriter(writer io.Writer, objects []*Object, eye, center, up Vector, fovy float64, size, scale int, light Vector, ambient, diffuse string, near, far float64, fit bool) error {
	matrix := LookAt(eye, center, up).Perspective(fovy, 1, near, far)

	shader := NewPhongShader(matrix, light, eye, HexColor(ambient), HexColor(diffuse))
	scene := NewScene(eye, center, up, fovy, size, scale, shader)

	return scene.DrawToWriter(fit, writer, objects)
}
