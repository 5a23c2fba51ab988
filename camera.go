package beryl

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// lookMode selects between free look and orbiting a lock-on target.
type lookMode int

const (
	lookDirection lookMode = iota
	lookTarget
)

// Camera describes the viewpoint of the pass-based renderer. It keeps either
// a viewing direction or a lock-on target; rotating a locked camera orbits
// the target, rotating a free camera turns in place.
type Camera struct {
	Position Vector
	Fovy     float64 // degrees
	Near     float64
	Far      float64

	mode      lookMode
	direction Vector
	target    Vector
	normal    Vector // cross of viewing direction and world up
	aspect    float64
}

func NewCamera(width, height int) *Camera {
	direction := Vector{1, 0, 0}
	return &Camera{
		Position:  Vector{-5, 0, 0},
		Fovy:      DefaultFieldOfView,
		Near:      NearPlane,
		Far:       FarPlane,
		mode:      lookDirection,
		direction: direction,
		normal:    WorldSpaceUp.Cross(direction).Normalize(),
		aspect:    float64(width) / float64(height),
	}
}

// Rotate turns the view by the given angles in radians. With a lock-on
// target set, the camera position arcballs around the target instead.
func (c *Camera) Rotate(horizontal, vertical float64) {
	switch c.mode {
	case lookDirection:
		rot := mgl64.HomogRotate3D(-vertical, c.normal.Mgl()).
			Mul4(mgl64.HomogRotate3DZ(horizontal))
		c.direction = MatrixFromMgl(rot).MulDirection(c.direction)
	case lookTarget:
		rot := mgl64.HomogRotate3D(vertical, c.normal.Mgl()).
			Mul4(mgl64.HomogRotate3DZ(-horizontal))
		offset := c.Position.Sub(c.target)
		c.Position = MatrixFromMgl(rot).MulPosition(offset).Add(c.target)
	}
	c.updateNormal()
}

func (c *Camera) updateNormal() {
	d := c.viewDirection()
	n := WorldSpaceUp.Cross(d)
	// Degenerate when looking straight along world up; keep the old normal.
	if n.LengthSquared() > 1e-12 {
		c.normal = n.Normalize()
	}
}

func (c *Camera) viewDirection() Vector {
	if c.mode == lookTarget {
		return c.target.Sub(c.Position).Normalize()
	}
	return c.direction
}

func (c *Camera) SetLockOnTarget(target Vector) {
	c.mode = lookTarget
	c.target = target
	c.updateNormal()
}

func (c *Camera) UnsetLockOnTarget() {
	if c.mode == lookTarget {
		c.direction = c.target.Sub(c.Position).Normalize()
		c.mode = lookDirection
	}
}

func (c *Camera) SetAspectRatio(width, height int) {
	c.aspect = float64(width) / float64(height)
}

// Dolly moves the camera along its viewing direction; with a lock-on target
// it will not move past the target.
func (c *Camera) Dolly(amount float64) {
	d := c.viewDirection()
	if c.mode == lookTarget {
		dist := c.target.Sub(c.Position).Length()
		amount = math.Min(amount, dist-c.Near)
	}
	c.Position = c.Position.Add(d.MulScalar(amount))
}

func (c *Camera) ViewMatrix() Matrix {
	target := c.target
	if c.mode == lookDirection {
		target = c.Position.Add(c.direction)
	}
	return LookAt(c.Position, target, WorldSpaceUp)
}

func (c *Camera) ProjMatrix() Matrix {
	return Perspective(c.Fovy, c.aspect, c.Near, c.Far)
}

// CameraUniforms is the per-frame snapshot the full-screen passes consume.
type CameraUniforms struct {
	ProjView        Matrix
	ProjViewInverse Matrix
	Position        Vector
	Direction       Vector
	Width, Height   int
	Near, Far       float64
}

func (c *Camera) Uniforms(width, height int) CameraUniforms {
	pv := c.ProjMatrix().Mul(c.ViewMatrix())
	return CameraUniforms{
		ProjView:        pv,
		ProjViewInverse: pv.Inverse(),
		Position:        c.Position,
		Direction:       c.viewDirection(),
		Width:           width,
		Height:          height,
		Near:            c.Near,
		Far:             c.Far,
	}
}

// Ray returns the world-space ray through the UV coordinate of a full-screen
// draw, by unprojecting the near and far clip planes.
func (u CameraUniforms) Ray(uv Vector) (origin, direction Vector) {
	ndcX := uv.X*2 - 1
	ndcY := uv.Y*2 - 1
	near := u.ProjViewInverse.MulVectorW(VectorW{ndcX, ndcY, -1, 1})
	far := u.ProjViewInverse.MulVectorW(VectorW{ndcX, ndcY, 1, 1})
	p0 := near.DivScalar(near.W).Vector()
	p1 := far.DivScalar(far.W).Vector()
	return p0, p1.Sub(p0).Normalize()
}
