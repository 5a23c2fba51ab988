package beryl

import (
	"runtime"
	"sync"
)

// FullScreenVertex derives the vertex for one of the three invocations of a
// buffer-less full-screen draw. The two low-order bits of the index expand to
// the UV corners (0,0), (2,0), (0,2), and the clip-space position overshoots
// the [-1,1] box to [-1,3] so that the triangle's hypotenuse lies past the
// viewport's far corner. One triangle, no seam, every pixel covered.
//
// Index must be 0, 1 or 2; the draw paths in this package never produce
// anything else.
func FullScreenVertex(index int) Vertex {
	u := float64((index << 1) & 2)
	v := float64(index & 2)
	var vert Vertex
	vert.Texture = Vector{u, v, 0}
	vert.Output = VectorW{u*2 - 1, v*2 - 1, 0, 1}
	return vert
}

// FullScreenTriangle returns the three generated vertexes as one triangle.
func FullScreenTriangle() *Triangle {
	return NewTriangle(FullScreenVertex(0), FullScreenVertex(1), FullScreenVertex(2))
}

// FragmentShader is the fragment-only contract of a full-screen pass. The
// vertex stage is fixed (FullScreenVertex); only per-pixel shading varies.
type FragmentShader interface {
	Fragment(uv Vector) Color
}

// FragmentFunc adapts an ordinary function to FragmentShader.
type FragmentFunc func(uv Vector) Color

func (f FragmentFunc) Fragment(uv Vector) Color {
	return f(uv)
}

// rasterizeFullScreen is the host side of the full-screen draw contract: it
// issues exactly three FullScreenVertex invocations, binds no vertex data,
// and scan-converts the resulting triangle over a width x height target,
// calling fn once per pixel with the interpolated UV. Workers split the rows
// so no pixel is visited twice.
//
// The triangle is rasterized unclipped. Its overshoot is constructed so that
// clamping the scan bounds to the target is equivalent to clipping, and
// skipping the clipper keeps the diagonal seam from ever existing.
func rasterizeFullScreen(width, height int, fn func(x, y int, uv Vector)) {
	if width <= 0 || height <= 0 {
		return
	}

	v0 := FullScreenVertex(0)
	v1 := FullScreenVertex(1)
	v2 := FullScreenVertex(2)

	screen := Screen(width, height)
	s0 := screen.MulPosition(v0.Output.Vector())
	s1 := screen.MulPosition(v1.Output.Vector())
	s2 := screen.MulPosition(v2.Output.Vector())

	ra := 1 / edge(s0, s1, s2)
	t0 := v0.Texture
	t1 := v1.Texture
	t2 := v2.Texture

	var wg sync.WaitGroup
	wn := runtime.NumCPU()
	if wn > height {
		wn = height
	}
	wg.Add(wn)
	for wi := 0; wi < wn; wi++ {
		go func(wi int) {
			p := Vector{0.5, 0, 0}
			for y := wi; y < height; y += wn {
				p.Y = float64(y) + 0.5
				w0 := edge(s1, s2, p)
				w1 := edge(s2, s0, p)
				w2 := edge(s0, s1, p)
				a12 := s2.Y - s1.Y
				a20 := s0.Y - s2.Y
				a01 := s1.Y - s0.Y
				for x := 0; x < width; x++ {
					b0 := w0 * ra
					b1 := w1 * ra
					b2 := w2 * ra
					if b0 >= 0 && b1 >= 0 && b2 >= 0 {
						uv := Vector{
							t0.X*b0 + t1.X*b1 + t2.X*b2,
							t0.Y*b0 + t1.Y*b1 + t2.Y*b2,
							0}
						fn(x, y, uv)
					}
					w0 += a12
					w1 += a20
					w2 += a01
				}
			}
			wg.Done()
		}(wi)
	}
	wg.Wait()
}
