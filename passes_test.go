package beryl

import (
	"math"
	"testing"

	"github.com/beorn7/floats"
)

func checkerFramebuffer(w, h int) *Framebuffer {
	fb := NewFramebuffer(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := Color{float64(x) / float64(w), float64(y) / float64(h), 0.5, 1}
			if (x+y)%2 == 0 {
				c = c.MulScalar(0.25).Alpha(1)
			}
			fb.Set(x, y, c)
		}
	}
	return fb
}

func TestBlitIsIdentity(t *testing.T) {
	const w, h = 31, 17
	fb := checkerFramebuffer(w, h)
	dc := NewContext(w, h, nil)
	NewBlitPass().Render(fb, dc)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			want := fb.At(x, y).NRGBA()
			if got := dc.ColorBuffer.NRGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestBlurOfConstantIsConstant(t *testing.T) {
	const w, h = 24, 24
	c := Color{0.3, 0.6, 0.9, 1}
	src := NewFramebuffer(w, h)
	src.Clear(c)
	scratch := NewFramebuffer(w, h)
	dst := NewFramebuffer(w, h)

	NewBlurPass(4).Render(src, scratch, dst)

	for i, got := range dst.Pixels {
		if !floats.AlmostEqual(got.R, c.R, 1e-9) ||
			!floats.AlmostEqual(got.G, c.G, 1e-9) ||
			!floats.AlmostEqual(got.B, c.B, 1e-9) {
			t.Fatalf("pixel %d = %+v, want %+v", i, got, c)
		}
	}
}

func TestBlurSmooths(t *testing.T) {
	const w, h = 16, 16
	src := NewFramebuffer(w, h)
	src.Set(8, 8, Color{1, 1, 1, 1})
	scratch := NewFramebuffer(w, h)
	dst := NewFramebuffer(w, h)

	NewBlurPass(3).Render(src, scratch, dst)

	center := dst.At(8, 8)
	neighbor := dst.At(9, 8)
	if center.R <= neighbor.R {
		t.Fatalf("center %v not brighter than neighbor %v", center.R, neighbor.R)
	}
	if neighbor.R <= 0 {
		t.Fatal("blur did not spread energy to the neighbor")
	}
}

func TestTonemapMonotoneAndClamped(t *testing.T) {
	const w = 8
	src := NewFramebuffer(w, 1)
	for x := 0; x < w; x++ {
		v := float64(x) * 2 // ramps into HDR territory
		src.Set(x, 0, Color{v, v, v, 1})
	}
	dst := NewFramebuffer(w, 1)
	NewTonemapPass(1).Render(src, dst)

	prev := -1.0
	for x := 0; x < w; x++ {
		got := dst.At(x, 0)
		if got.R < prev {
			t.Fatalf("tonemap not monotone at %d: %v < %v", x, got.R, prev)
		}
		if got.R < 0 || got.R > 1 || got.G < 0 || got.G > 1 || got.B < 0 || got.B > 1 {
			t.Fatalf("tonemap out of range at %d: %+v", x, got)
		}
		prev = got.R
	}
	if last := dst.At(w-1, 0); last.R >= 1 {
		t.Fatalf("reinhard should stay below 1, got %v", last.R)
	}
}

func TestLightingBackgroundWhereNoHit(t *testing.T) {
	const w, h = 16, 12
	cam := NewCamera(w, h)
	uniforms := cam.Uniforms(w, h)

	gb := NewGBuffer(w, h)
	gb.Clear()

	dst := NewFramebuffer(w, h)
	NewLightingPass(Vector{0, 0, 1}).Render(uniforms, gb, dst)

	for i, got := range dst.Pixels {
		if got != BackgroundColor {
			t.Fatalf("pixel %d = %+v, want background", i, got)
		}
	}
}

func TestGeometryAndLightingSphere(t *testing.T) {
	const w, h = 32, 32
	scene := NewSphere(Vector{}, 1)
	cam := NewCamera(w, h)
	cam.Position = Vector{-4, 0, 0}
	cam.SetLockOnTarget(Vector{})
	uniforms := cam.Uniforms(w, h)

	gb := NewGBuffer(w, h)
	NewGeometryPass(scene).Render(uniforms, gb)

	center := gb.index(w/2, h/2)
	if !gb.Hit[center] {
		t.Fatal("ray through screen center missed a sphere dead ahead")
	}
	if gb.Hit[gb.index(0, 0)] {
		t.Fatal("corner ray unexpectedly hit the sphere")
	}
	if d := gb.Depth[center]; math.Abs(d-3) > 0.01 {
		t.Fatalf("center depth = %v, want about 3", d)
	}
	// Normal at the front of the sphere faces the camera.
	n := gb.Normal[center]
	if n.X > -0.9 {
		t.Fatalf("center normal %+v should point toward -X", n)
	}

	dst := NewFramebuffer(w, h)
	light := NewLightingPass(Vector{-1, 0, 0})
	light.Render(uniforms, gb, dst)

	lit := dst.At(w/2, h/2)
	if lit == BackgroundColor {
		t.Fatal("hit pixel rendered as background")
	}
	// Head-on light against a camera-facing normal: ambient plus nearly full
	// diffuse on a 0.5 albedo lands well above 0.3.
	if lit.R < 0.3 {
		t.Fatalf("lit pixel %+v suspiciously dark", lit)
	}
}
