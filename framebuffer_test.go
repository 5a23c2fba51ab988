package beryl

import (
	"testing"

	"github.com/beorn7/floats"
)

func TestFramebufferSampleIsTexelExact(t *testing.T) {
	const w, h = 13, 9
	fb := checkerFramebuffer(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			u := (float64(x) + 0.5) / w
			v := 1 - (float64(y)+0.5)/h
			if got := fb.Sample(u, v); got != fb.At(x, y) {
				t.Fatalf("sample at pixel (%d,%d) = %+v, want %+v", x, y, got, fb.At(x, y))
			}
		}
	}
}

func TestFramebufferBilinearBlends(t *testing.T) {
	fb := NewFramebuffer(2, 1)
	fb.Set(0, 0, Black)
	fb.Set(1, 0, White)
	got := fb.BilinearSample(0.5, 0.5)
	if !floats.AlmostEqual(got.R, 0.5, 1e-9) {
		t.Fatalf("midpoint sample = %+v, want 0.5 gray", got)
	}
}

func TestFramebufferDrawFullScreenWritesAll(t *testing.T) {
	fb := NewFramebuffer(17, 11)
	fb.DrawFullScreen(FragmentFunc(func(uv Vector) Color {
		return Color{uv.X, uv.Y, 0, 1}
	}))
	for i, c := range fb.Pixels {
		if c.A != 1 {
			t.Fatalf("pixel %d untouched: %+v", i, c)
		}
	}
}

func TestFramebufferImageClamps(t *testing.T) {
	fb := NewFramebuffer(1, 1)
	fb.Set(0, 0, Color{2, -1, 0.5, 1})
	got := fb.Image().NRGBAAt(0, 0)
	if got.R != 255 || got.G != 0 {
		t.Fatalf("clamped snapshot = %+v", got)
	}
}

func TestFramebufferResize(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	fb.Clear(White)
	fb.Resize(8, 2)
	if fb.Width != 8 || fb.Height != 2 || len(fb.Pixels) != 16 {
		t.Fatalf("resize produced %dx%d with %d pixels", fb.Width, fb.Height, len(fb.Pixels))
	}
	if fb.At(7, 1) != (Color{}) {
		t.Fatal("resize kept stale contents")
	}
}
