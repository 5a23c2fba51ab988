package beryl

import (
	"strings"
	"testing"
)

const cubeOBJ = `# unit cube
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
v 0 0 1
v 1 0 1
v 1 1 1
v 0 1 1
f 1 2 3 4
f 5 8 7 6
f 1 5 6 2
f 2 6 7 3
f 3 7 8 4
f 5 1 4 8
`

func TestLoadOBJ(t *testing.T) {
	mesh, err := LoadOBJFromReader(strings.NewReader(cubeOBJ))
	if err != nil {
		t.Fatalf("load obj: %v", err)
	}
	// Six quads fan into twelve triangles.
	if len(mesh.Triangles) != 12 {
		t.Fatalf("triangles = %d, want 12", len(mesh.Triangles))
	}
	box := mesh.BoundingBox()
	if box.Min != (Vector{0, 0, 0}) || box.Max != (Vector{1, 1, 1}) {
		t.Fatalf("bounding box = %+v", box)
	}
	for _, tri := range mesh.Triangles {
		if tri.V1.Normal == (Vector{}) {
			t.Fatal("face normal not filled in")
		}
	}
}

func TestLoadOBJNegativeIndices(t *testing.T) {
	obj := `
v 0 0 0
v 1 0 0
v 0 1 0
f -3 -2 -1
`
	mesh, err := LoadOBJFromReader(strings.NewReader(obj))
	if err != nil {
		t.Fatalf("load obj: %v", err)
	}
	if len(mesh.Triangles) != 1 {
		t.Fatalf("triangles = %d, want 1", len(mesh.Triangles))
	}
	if mesh.Triangles[0].V2.Position != (Vector{1, 0, 0}) {
		t.Fatalf("negative index resolved to %+v", mesh.Triangles[0].V2.Position)
	}
}

func TestMeshFitInside(t *testing.T) {
	mesh, err := LoadOBJFromReader(strings.NewReader(cubeOBJ))
	if err != nil {
		t.Fatalf("load obj: %v", err)
	}
	target := Box{Vector{-1, -1, -1}, Vector{1, 1, 1}}
	mesh.FitInside(target, Vector{0.5, 0.5, 0.5})
	box := mesh.BoundingBox()
	if !target.ContainsBox(box) {
		t.Fatalf("mesh %+v not inside target %+v", box, target)
	}
	if box.Size().MaxComponent() < 1.9 {
		t.Fatalf("mesh not scaled up to the target: %+v", box.Size())
	}
}

func TestMeshMoveToCenter(t *testing.T) {
	mesh, err := LoadOBJFromReader(strings.NewReader(cubeOBJ))
	if err != nil {
		t.Fatalf("load obj: %v", err)
	}
	mesh.Center()
	c := mesh.BoundingBox().Center()
	if c.Length() > 1e-9 {
		t.Fatalf("center after Center() = %+v", c)
	}
}

func TestMeshSimplify(t *testing.T) {
	// A finely gridded plane collapses to far fewer coplanar triangles.
	var triangles []*Triangle
	const n = 8
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			x0, y0 := float64(x), float64(y)
			x1, y1 := x0+1, y0+1
			triangles = append(triangles,
				NewTriangleForPoints(Vector{x0, y0, 0}, Vector{x1, y0, 0}, Vector{x1, y1, 0}),
				NewTriangleForPoints(Vector{x0, y0, 0}, Vector{x1, y1, 0}, Vector{x0, y1, 0}))
		}
	}
	mesh := NewTriangleMesh(triangles)
	before := len(mesh.Triangles)
	mesh.Simplify(0.25)
	after := len(mesh.Triangles)
	if after == 0 || after >= before {
		t.Fatalf("simplify: %d -> %d triangles", before, after)
	}
}

func TestSmoothNormals(t *testing.T) {
	mesh, err := LoadOBJFromReader(strings.NewReader(cubeOBJ))
	if err != nil {
		t.Fatalf("load obj: %v", err)
	}
	mesh.SmoothNormals()
	// Corner vertexes average three orthogonal faces; the result leans along
	// the diagonal and stays unit length.
	for _, tri := range mesh.Triangles {
		for _, v := range []Vertex{tri.V1, tri.V2, tri.V3} {
			if d := v.Normal.Length(); d < 0.999 || d > 1.001 {
				t.Fatalf("smoothed normal %+v not unit length", v.Normal)
			}
		}
	}
}
