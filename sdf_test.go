package beryl

import (
	"math"
	"testing"

	"github.com/beorn7/floats"
)

func TestSphereDistance(t *testing.T) {
	s := NewSphere(Vector{1, 0, 0}, 2)
	tests := []struct {
		p    Vector
		want float64
	}{
		{Vector{1, 0, 0}, -2},
		{Vector{3, 0, 0}, 0},
		{Vector{5, 0, 0}, 2},
		{Vector{1, 0, -3}, 1},
	}
	for _, tt := range tests {
		if got := s.Distance(tt.p); !floats.AlmostEqual(got, tt.want, 1e-12) && got != tt.want {
			t.Fatalf("distance(%+v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestCubeDistance(t *testing.T) {
	c := NewCube(Vector{}, Vector{2, 2, 2})
	if got := c.Distance(Vector{}); got != -1 {
		t.Fatalf("center distance = %v, want -1", got)
	}
	if got := c.Distance(Vector{2, 0, 0}); got != 1 {
		t.Fatalf("face distance = %v, want 1", got)
	}
	want := math.Sqrt(3)
	if got := c.Distance(Vector{2, 2, 2}); math.Abs(got-want) > 1e-12 {
		t.Fatalf("corner distance = %v, want %v", got, want)
	}
}

func TestCombinators(t *testing.T) {
	a := NewSphere(Vector{-1, 0, 0}, 1)
	b := NewSphere(Vector{1, 0, 0}, 1)
	p := Vector{0, 0, 0}

	if got := Union(a, b).Distance(p); got != 0 {
		t.Fatalf("union distance = %v, want 0", got)
	}
	if got := Intersection(a, b).Distance(p); got != 0 {
		t.Fatalf("intersection distance = %v, want 0", got)
	}
	// a's center is 1 inside a and 1 outside b, so carving b out of a
	// leaves it 1 inside.
	if got := Subtraction(a, b).Distance(Vector{-1, 0, 0}); got != -1 {
		t.Fatalf("subtraction distance = %v, want -1", got)
	}
	if got := Subtraction(a, b).Distance(Vector{0.5, 0, 0}); got <= 0 {
		t.Fatalf("carved region should be outside, got %v", got)
	}
}

func TestTransformSDF(t *testing.T) {
	s := NewTransformSDF(NewSphere(Vector{}, 1), Translate(Vector{0, 0, 5}))
	if got := s.Distance(Vector{0, 0, 5}); got != -1 {
		t.Fatalf("translated center distance = %v, want -1", got)
	}
	if got := s.Distance(Vector{0, 0, 7}); !floats.AlmostEqual(got, 1, 1e-12) {
		t.Fatalf("translated surface distance = %v, want 1", got)
	}
}

func TestSDFNormal(t *testing.T) {
	s := NewSphere(Vector{}, 1)
	n := SDFNormal(s, Vector{0, 0, 1})
	if n.Sub(Vector{0, 0, 1}).Length() > 1e-6 {
		t.Fatalf("normal at north pole = %+v, want +Z", n)
	}
}

func TestMarch(t *testing.T) {
	s := NewSphere(Vector{}, 1)

	d, hit := March(s, Vector{-5, 0, 0}, Vector{1, 0, 0}, 100)
	if !hit {
		t.Fatal("ray at the sphere missed")
	}
	if math.Abs(d-4) > 1e-3 {
		t.Fatalf("hit distance = %v, want about 4", d)
	}

	if _, hit := March(s, Vector{-5, 0, 0}, Vector{0, 0, 1}, 100); hit {
		t.Fatal("ray away from the sphere hit")
	}
}
