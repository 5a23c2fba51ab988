package beryl

import (
	"math"
	"testing"

	"github.com/beorn7/floats"
)

func TestMatrixMulIdentity(t *testing.T) {
	a := Identity()
	b := Translate(Vector{1, 2, 3})
	if got := a.Mul(b); got != b {
		t.Fatalf("identity*b = %+v, want %+v", got, b)
	}
	if got := b.Mul(a); got != b {
		t.Fatalf("b*identity = %+v, want %+v", got, b)
	}
}

func TestTranslateScalePoint(t *testing.T) {
	m := Translate(Vector{1, 0, 0}).Mul(Scale(Vector{2, 2, 2}))
	got := m.MulPosition(Vector{1, 1, 1})
	want := Vector{3, 2, 2}
	if got != want {
		t.Fatalf("transformed point = %+v, want %+v", got, want)
	}
}

func TestRotateQuarterTurn(t *testing.T) {
	m := Rotate(Vector{0, 0, 1}, math.Pi/2)
	got := m.MulPosition(Vector{1, 0, 0})
	if math.Abs(got.X) > 1e-12 || math.Abs(got.Y-1) > 1e-12 || math.Abs(got.Z) > 1e-12 {
		t.Fatalf("quarter turn of +X = %+v, want +Y", got)
	}
}

func TestInverseRoundTrip(t *testing.T) {
	m := LookAt(Vector{3, -2, 5}, Vector{0, 0, 0}, Vector{0, 0, 1}).
		Perspective(60, 1.5, 0.1, 50)
	p := Vector{0.3, -0.7, 2.1}
	// MulPosition drops the projective row, so round-trip through the full
	// homogeneous form.
	w := m.MulPositionW(p)
	backW := m.Inverse().MulVectorW(w)
	back := backW.DivScalar(backW.W).Vector()
	if back.Distance(p) > 1e-9 {
		t.Fatalf("inverse round trip drifted: %+v vs %+v", back, p)
	}
}

func TestMatrixMglRoundTrip(t *testing.T) {
	m := Translate(Vector{1, 2, 3}).Mul(Rotate(Vector{0, 1, 0}, 0.4))
	if got := MatrixFromMgl(m.Mgl()); got != m {
		t.Fatalf("mgl round trip = %+v, want %+v", got, m)
	}
}

func TestScreenMapsCorners(t *testing.T) {
	m := Screen(100, 50)
	topLeft := m.MulPosition(Vector{-1, 1, 0})
	if topLeft.X != 0 || topLeft.Y != 0 {
		t.Fatalf("ndc (-1,1) maps to %+v, want origin", topLeft)
	}
	bottomRight := m.MulPosition(Vector{1, -1, 0})
	if bottomRight.X != 100 || bottomRight.Y != 50 {
		t.Fatalf("ndc (1,-1) maps to %+v, want (100,50)", bottomRight)
	}
}

func TestPerspectiveMapsNearFar(t *testing.T) {
	m := Perspective(90, 1, 1, 10)
	near := m.MulPositionW(Vector{0, 0, -1})
	far := m.MulPositionW(Vector{0, 0, -10})
	if !floats.AlmostEqual(near.Z/near.W, -1, 1e-9) {
		t.Fatalf("near plane maps to ndc z %v, want -1", near.Z/near.W)
	}
	if !floats.AlmostEqual(far.Z/far.W, 1, 1e-9) {
		t.Fatalf("far plane maps to ndc z %v, want 1", far.Z/far.W)
	}
}

func TestVectorBasics(t *testing.T) {
	a := Vector{1, 2, 2}
	if a.Length() != 3 {
		t.Fatalf("length = %v, want 3", a.Length())
	}
	if got := a.Normalize().Length(); math.Abs(got-1) > 1e-12 {
		t.Fatalf("normalized length = %v", got)
	}
	if got := (Vector{1, 0, 0}).Cross(Vector{0, 1, 0}); got != (Vector{0, 0, 1}) {
		t.Fatalf("cross = %+v, want +Z", got)
	}
	if got := (Vector{1, -1, 0}).Reflect(Vector{0, 1, 0}); got != (Vector{1, 1, 0}) {
		t.Fatalf("reflect = %+v, want (1,1,0)", got)
	}
}

func TestVectorWOutside(t *testing.T) {
	inside := VectorW{0.5, -0.5, 0, 1}
	if inside.Outside() {
		t.Fatal("inside point reported outside")
	}
	outside := VectorW{3, -1, 0, 1}
	if !outside.Outside() {
		t.Fatal("overscan vertex reported inside")
	}
}
