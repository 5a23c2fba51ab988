package beryl

import "math"

// SDF is a signed distance field: negative inside, positive outside.
type SDF interface {
	Distance(p Vector) float64
}

// Sphere is the sphere primitive.
type Sphere struct {
	Center Vector
	Radius float64
}

func NewSphere(center Vector, radius float64) *Sphere {
	return &Sphere{center, radius}
}

func (s *Sphere) Distance(p Vector) float64 {
	return p.Sub(s.Center).Length() - s.Radius
}

// Cube is an axis-aligned box primitive, defined by center and dimensions.
type Cube struct {
	Center     Vector
	Dimensions Vector
}

func NewCube(center, dimensions Vector) *Cube {
	return &Cube{center, dimensions}
}

func (c *Cube) Distance(p Vector) float64 {
	q := p.Sub(c.Center).Abs().Sub(c.Dimensions.MulScalar(0.5))
	outside := q.Max(Vector{}).Length()
	inside := math.Min(q.MaxComponent(), 0)
	return outside + inside
}

// UnionSDF combines fields by taking the closest surface.
type UnionSDF struct {
	A, B SDF
}

func Union(a, b SDF, rest ...SDF) SDF {
	var s SDF = &UnionSDF{a, b}
	for _, r := range rest {
		s = &UnionSDF{s, r}
	}
	return s
}

func (s *UnionSDF) Distance(p Vector) float64 {
	return math.Min(s.A.Distance(p), s.B.Distance(p))
}

// IntersectionSDF keeps only space inside both fields.
type IntersectionSDF struct {
	A, B SDF
}

func Intersection(a, b SDF) SDF {
	return &IntersectionSDF{a, b}
}

func (s *IntersectionSDF) Distance(p Vector) float64 {
	return math.Max(s.A.Distance(p), s.B.Distance(p))
}

// SubtractionSDF carves B out of A.
type SubtractionSDF struct {
	A, B SDF
}

func Subtraction(a, b SDF) SDF {
	return &SubtractionSDF{a, b}
}

func (s *SubtractionSDF) Distance(p Vector) float64 {
	return math.Max(s.A.Distance(p), -s.B.Distance(p))
}

// TransformSDF evaluates its child in the space of the inverse matrix. Only
// rigid transforms preserve exact distances.
type TransformSDF struct {
	SDF     SDF
	inverse Matrix
}

func NewTransformSDF(s SDF, m Matrix) *TransformSDF {
	return &TransformSDF{s, m.Inverse()}
}

func (s *TransformSDF) Distance(p Vector) float64 {
	return s.SDF.Distance(s.inverse.MulPosition(p))
}

// SDFNormal estimates the surface normal at p by central differences.
func SDFNormal(s SDF, p Vector) Vector {
	e := NormalEpsilon
	return Vector{
		s.Distance(Vector{p.X + e, p.Y, p.Z}) - s.Distance(Vector{p.X - e, p.Y, p.Z}),
		s.Distance(Vector{p.X, p.Y + e, p.Z}) - s.Distance(Vector{p.X, p.Y - e, p.Z}),
		s.Distance(Vector{p.X, p.Y, p.Z + e}) - s.Distance(Vector{p.X, p.Y, p.Z - e}),
	}.Normalize()
}

// March walks a ray through the field with sphere tracing. Returns the
// distance along the ray and whether a surface was hit before maxDist.
func March(s SDF, origin, direction Vector, maxDist float64) (float64, bool) {
	t := 0.0
	for i := 0; i < MarchMaxSteps; i++ {
		d := s.Distance(origin.Add(direction.MulScalar(t)))
		if d < MarchHitEpsilon {
			return t, true
		}
		t += d
		if t > maxDist {
			break
		}
	}
	return maxDist, false
}
