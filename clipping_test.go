package beryl

import "testing"

func clipSpaceTriangle(p1, p2, p3 VectorW) *Triangle {
	t := &Triangle{}
	t.V1.Output = p1
	t.V2.Output = p2
	t.V3.Output = p3
	return t
}

func TestClipTriangleInsidePassesThrough(t *testing.T) {
	tri := clipSpaceTriangle(
		VectorW{-0.5, -0.5, 0, 1},
		VectorW{0.5, -0.5, 0, 1},
		VectorW{0, 0.5, 0, 1})
	out := ClipTriangle(tri)
	if len(out) != 1 {
		t.Fatalf("clipped to %d triangles, want 1", len(out))
	}
	if out[0].V1.Output != tri.V1.Output || out[0].V3.Output != tri.V3.Output {
		t.Fatalf("interior triangle was modified: %+v", out[0])
	}
}

func TestClipTriangleFullyOutside(t *testing.T) {
	tri := clipSpaceTriangle(
		VectorW{5, 5, 0, 1},
		VectorW{6, 5, 0, 1},
		VectorW{5, 6, 0, 1})
	if out := ClipTriangle(tri); out != nil {
		t.Fatalf("fully outside triangle survived: %d pieces", len(out))
	}
}

func TestClipTriangleCutVerticesOnBoundary(t *testing.T) {
	tri := clipSpaceTriangle(
		VectorW{0, 0, 0, 1},
		VectorW{4, 0, 0, 1},
		VectorW{0, 4, 0, 1})
	out := ClipTriangle(tri)
	if len(out) == 0 {
		t.Fatal("partially visible triangle vanished")
	}
	for _, piece := range out {
		for _, v := range []Vertex{piece.V1, piece.V2, piece.V3} {
			if v.Output.Outside() {
				t.Fatalf("clipped vertex still outside: %+v", v.Output)
			}
		}
	}
}

func TestClipLine(t *testing.T) {
	l := &Line{}
	l.V1.Output = VectorW{0, 0, 0, 1}
	l.V2.Output = VectorW{4, 0, 0, 1}
	out := ClipLine(l)
	if out == nil {
		t.Fatal("half-visible line vanished")
	}
	if out.V2.Output.X != 1 {
		t.Fatalf("line clipped at x=%v, want 1", out.V2.Output.X)
	}

	l2 := &Line{}
	l2.V1.Output = VectorW{4, 0, 0, 1}
	l2.V2.Output = VectorW{5, 0, 0, 1}
	if ClipLine(l2) != nil {
		t.Fatal("fully outside line survived")
	}
}
