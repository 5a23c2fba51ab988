package beryl

import (
	"math"
	"testing"

	"github.com/beorn7/floats"
)

func TestCameraLockOnOrbitKeepsDistance(t *testing.T) {
	c := NewCamera(640, 480)
	c.Position = Vector{-4, 0, 0}
	target := Vector{0, 0, 1}
	c.SetLockOnTarget(target)

	before := c.Position.Distance(target)
	for i := 0; i < 10; i++ {
		c.Rotate(0.3, 0.1)
		after := c.Position.Distance(target)
		if !floats.AlmostEqual(before, after, 1e-9) {
			t.Fatalf("orbit %d changed distance: %v -> %v", i, before, after)
		}
	}
}

func TestCameraFreeLookKeepsPosition(t *testing.T) {
	c := NewCamera(640, 480)
	start := c.Position
	c.Rotate(0.5, -0.2)
	if c.Position != start {
		t.Fatalf("free look moved the camera: %+v", c.Position)
	}
}

func TestCameraUnsetLockOnKeepsView(t *testing.T) {
	c := NewCamera(100, 100)
	c.Position = Vector{-3, 1, 2}
	c.SetLockOnTarget(Vector{1, 1, 0})
	want := c.viewDirection()
	c.UnsetLockOnTarget()
	if got := c.viewDirection(); got.Sub(want).Length() > 1e-12 {
		t.Fatalf("view direction jumped on unlock: %+v vs %+v", got, want)
	}
}

func TestCameraRayThroughCenter(t *testing.T) {
	const w, h = 64, 64
	c := NewCamera(w, h)
	c.Position = Vector{-5, 0, 0}
	c.SetLockOnTarget(Vector{})
	u := c.Uniforms(w, h)

	origin, dir := u.Ray(Vector{0.5, 0.5, 0})
	if origin.Sub(c.Position).Length() > 0.1 {
		t.Fatalf("ray origin %+v far from camera %+v", origin, c.Position)
	}
	if dir.Sub(Vector{1, 0, 0}).Length() > 1e-6 {
		t.Fatalf("center ray direction = %+v, want +X", dir)
	}
}

func TestCameraRayCornersDiverge(t *testing.T) {
	const w, h = 64, 64
	c := NewCamera(w, h)
	u := c.Uniforms(w, h)

	_, d1 := u.Ray(Vector{0, 0, 0})
	_, d2 := u.Ray(Vector{1, 1, 0})
	if d1.Sub(d2).Length() < 0.1 {
		t.Fatalf("corner rays should diverge: %+v vs %+v", d1, d2)
	}
}

func TestCameraDollyTowardTarget(t *testing.T) {
	c := NewCamera(10, 10)
	c.Position = Vector{-4, 0, 0}
	c.SetLockOnTarget(Vector{})
	c.Dolly(1)
	if math.Abs(c.Position.X+3) > 1e-12 {
		t.Fatalf("dolly landed at %+v, want x=-3", c.Position)
	}
	// A huge dolly must stop short of the target.
	c.Dolly(100)
	if c.Position.X >= 0 {
		t.Fatalf("dolly overshot the lock-on target: %+v", c.Position)
	}
}
