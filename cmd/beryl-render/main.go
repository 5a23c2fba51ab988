package main

import (
	"flag"
	"log"
	"path/filepath"
	"strings"

	"github.com/beryl-engine/beryl"
)

func main() {
	var (
		width    = flag.Int("width", 800, "output width in pixels")
		height   = flag.Int("height", 600, "output height in pixels")
		scale    = flag.Int("scale", 1, "supersampling factor")
		out      = flag.String("out", "out.png", "output PNG path")
		blur     = flag.Int("blur", 0, "gaussian blur radius in pixels")
		exposure = flag.Float64("exposure", 1, "tone map exposure")
		meshPath = flag.String("mesh", "", "optional OBJ/glTF overlay mesh")
	)
	flag.Parse()

	engine := beryl.NewEngine(*width, *height, demoScene())
	engine.SetScale(*scale)
	engine.Tonemap.Exposure = *exposure
	if *blur > 0 {
		engine.Blur = beryl.NewBlurPass(*blur)
	}

	engine.Camera.Position = beryl.Vector{X: -4, Y: 2.5, Z: 2}
	engine.Camera.SetLockOnTarget(beryl.Vector{})

	if *meshPath != "" {
		mesh, err := loadMesh(*meshPath)
		if err != nil {
			log.Fatalf("beryl-render: load %s: %v", *meshPath, err)
		}
		mesh.FitInside(beryl.Box{
			Min: beryl.Vector{X: -1, Y: -1, Z: -1},
			Max: beryl.Vector{X: 1, Y: 1, Z: 1},
		}, beryl.Vector{X: 0.5, Y: 0.5, Z: 0.5})
		mesh.SmoothNormals()

		o := beryl.NewObjectFromMesh(mesh)
		o.Color = beryl.HexColor("c96")
		engine.Overlay = append(engine.Overlay, o)

		matrix := engine.Camera.ProjMatrix().Mul(engine.Camera.ViewMatrix())
		engine.OverlayShader = beryl.NewPhongShader(
			matrix,
			beryl.Vector{X: -0.5, Y: 0.5, Z: 1}.Normalize(),
			engine.Camera.Position,
			beryl.HexColor("444"),
			beryl.HexColor("ccc"))
	}

	engine.RenderFrame()
	if err := engine.SavePNG(*out); err != nil {
		log.Fatalf("beryl-render: save %s: %v", *out, err)
	}
	log.Printf("beryl-render: wrote %s", *out)
}

func loadMesh(path string) (*beryl.Mesh, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gltf", ".glb":
		return beryl.LoadGLTF(path)
	default:
		return beryl.LoadOBJ(path)
	}
}

// demoScene is a sphere melted into a cube with a bite carved out, enough to
// show off union, subtraction and the lighting pass.
func demoScene() beryl.SDF {
	cube := beryl.NewCube(beryl.Vector{}, beryl.Vector{X: 1.6, Y: 1.6, Z: 1.6})
	sphere := beryl.NewSphere(beryl.Vector{X: 0.8, Y: 0.8, Z: 0.8}, 0.7)
	bite := beryl.NewSphere(beryl.Vector{X: -0.9, Y: -0.9, Z: 0.9}, 0.8)
	return beryl.Subtraction(beryl.Union(cube, sphere), bite)
}
