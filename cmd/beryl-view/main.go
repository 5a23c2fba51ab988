package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/beryl-engine/beryl"
)

const orbitSpeed = 0.01

type viewer struct {
	engine *beryl.Engine
	frame  *ebiten.Image

	dragging     bool
	lastX, lastY int
}

func (v *viewer) Update() error {
	x, y := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if v.dragging {
			dx := float64(x - v.lastX)
			dy := float64(y - v.lastY)
			v.engine.Camera.Rotate(dx*orbitSpeed, dy*orbitSpeed)
		}
		v.dragging = true
	} else {
		v.dragging = false
	}
	v.lastX, v.lastY = x, y

	if _, wheelY := ebiten.Wheel(); wheelY != 0 {
		v.engine.Camera.Dolly(wheelY * 0.3)
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	v.engine.RenderFrame()

	w, h := v.engine.Width, v.engine.Height
	if v.frame == nil || v.frame.Bounds().Dx() != w || v.frame.Bounds().Dy() != h {
		if v.frame != nil {
			v.frame.Deallocate()
		}
		v.frame = ebiten.NewImage(w, h)
	}
	v.frame.WritePixels(v.engine.Context().ColorBuffer.Pix)
	screen.DrawImage(v.frame, nil)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		v.engine.Resize(outsideWidth, outsideHeight)
	}
	return v.engine.Width, v.engine.Height
}

func main() {
	var (
		width  = flag.Int("width", 640, "initial window width")
		height = flag.Int("height", 480, "initial window height")
	)
	flag.Parse()

	engine := beryl.NewEngine(*width, *height, demoScene())
	engine.Camera.Position = beryl.Vector{X: -4, Y: 2.5, Z: 2}
	engine.Camera.SetLockOnTarget(beryl.Vector{})

	ebiten.SetWindowTitle("beryl")
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(30)

	if err := ebiten.RunGame(&viewer{engine: engine}); err != nil {
		log.Fatal(err)
	}
}

func demoScene() beryl.SDF {
	cube := beryl.NewCube(beryl.Vector{}, beryl.Vector{X: 1.6, Y: 1.6, Z: 1.6})
	sphere := beryl.NewSphere(beryl.Vector{X: 0.8, Y: 0.8, Z: 0.8}, 0.7)
	bite := beryl.NewSphere(beryl.Vector{X: -0.9, Y: -0.9, Z: 0.9}, 0.8)
	return beryl.Subtraction(beryl.Union(cube, sphere), bite)
}
