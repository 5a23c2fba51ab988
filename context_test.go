package beryl

import (
	"math"
	"testing"
)

func TestDrawFullScreenTouchesEveryPixel(t *testing.T) {
	dc := NewContext(64, 48, nil)
	dc.ClearColorBufferWith(Black)
	dc.DrawFullScreen(FragmentFunc(func(uv Vector) Color {
		return White
	}))
	want := White.NRGBA()
	for y := 0; y < dc.Height; y++ {
		for x := 0; x < dc.Width; x++ {
			if got := dc.ColorBuffer.NRGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestDrawFullScreenLeavesDepthAlone(t *testing.T) {
	dc := NewContext(8, 8, nil)
	dc.DepthBuffer[12] = 0.25
	dc.DrawFullScreen(FragmentFunc(func(uv Vector) Color {
		return Gray
	}))
	if dc.DepthBuffer[12] != 0.25 {
		t.Fatalf("full-screen draw wrote depth: %v", dc.DepthBuffer[12])
	}
}

func TestDrawFullScreenSkipsZeroAlpha(t *testing.T) {
	dc := NewContext(4, 4, nil)
	dc.ClearColorBufferWith(Black)
	dc.DrawFullScreen(FragmentFunc(func(uv Vector) Color {
		return Transparent
	}))
	want := Black.NRGBA()
	if got := dc.ColorBuffer.NRGBAAt(2, 2); got != want {
		t.Fatalf("zero-alpha fragment wrote color: %v", got)
	}
}

// A solid shader drawing an on-screen triangle through the mesh path should
// write only inside the triangle, honoring depth.
func TestDrawTriangleMeshPath(t *testing.T) {
	shader := NewSolidColorShader(Identity(), White)
	dc := NewContext(32, 32, shader)
	dc.Cull = CullNone
	dc.ClearColorBufferWith(Black)

	tri := NewTriangleForPoints(
		Vector{-0.9, -0.9, 0},
		Vector{0.9, -0.9, 0},
		Vector{0, 0.9, 0})
	dc.DrawTriangle(tri, NewEmptyObject())

	if got := dc.ColorBuffer.NRGBAAt(16, 16); got != White.NRGBA() {
		t.Fatalf("center pixel = %v, want white", got)
	}
	if got := dc.ColorBuffer.NRGBAAt(0, 0); got != Black.NRGBA() {
		t.Fatalf("corner pixel = %v, want black", got)
	}
	if dc.DepthBuffer[16*32+16] == math.MaxFloat64 {
		t.Fatal("mesh path did not write depth at covered pixel")
	}
}
