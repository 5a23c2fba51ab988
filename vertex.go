package beryl

// Vertex is the unit of data flowing through the vertex stage. Position,
// Normal, Texture and Color are application inputs; Output is the mandatory
// clip-space result that the clipper and rasterizer consume.
type Vertex struct {
	Position Vector
	Normal   Vector
	Texture  Vector
	Color    Color
	Output   VectorW
}

// Outside reports whether the vertex lies outside the clip volume.
func (v Vertex) Outside() bool {
	return v.Output.Outside()
}

// InterpolateVertexes blends three vertexes with perspective-correct
// barycentric weights. The weight vector carries the per-vertex weights in
// X, Y, Z already divided by clip W, and the normalization factor in W.
func InterpolateVertexes(v1, v2, v3 Vertex, b VectorW) Vertex {
	v := Vertex{}
	v.Position = InterpolateVectors(v1.Position, v2.Position, v3.Position, b)
	v.Normal = InterpolateVectors(v1.Normal, v2.Normal, v3.Normal, b).Normalize()
	v.Texture = InterpolateVectors(v1.Texture, v2.Texture, v3.Texture, b)
	v.Color = InterpolateColors(v1.Color, v2.Color, v3.Color, b)
	v.Output = InterpolateVectorWs(v1.Output, v2.Output, v3.Output, b)
	return v
}

func InterpolateFloats(v1, v2, v3 float64, b VectorW) float64 {
	n := v1*b.X + v2*b.Y + v3*b.Z
	return n * b.W
}

func InterpolateColors(v1, v2, v3 Color, b VectorW) Color {
	n := Color{}
	n.R = (v1.R*b.X + v2.R*b.Y + v3.R*b.Z) * b.W
	n.G = (v1.G*b.X + v2.G*b.Y + v3.G*b.Z) * b.W
	n.B = (v1.B*b.X + v2.B*b.Y + v3.B*b.Z) * b.W
	n.A = (v1.A*b.X + v2.A*b.Y + v3.A*b.Z) * b.W
	return n
}

func InterpolateVectors(v1, v2, v3 Vector, b VectorW) Vector {
	n := Vector{}
	n.X = (v1.X*b.X + v2.X*b.Y + v3.X*b.Z) * b.W
	n.Y = (v1.Y*b.X + v2.Y*b.Y + v3.Y*b.Z) * b.W
	n.Z = (v1.Z*b.X + v2.Z*b.Y + v3.Z*b.Z) * b.W
	return n
}

func InterpolateVectorWs(v1, v2, v3 VectorW, b VectorW) VectorW {
	n := VectorW{}
	n.X = (v1.X*b.X + v2.X*b.Y + v3.X*b.Z) * b.W
	n.Y = (v1.Y*b.X + v2.Y*b.Y + v3.Y*b.Z) * b.W
	n.Z = (v1.Z*b.X + v2.Z*b.Y + v3.Z*b.Z) * b.W
	n.W = (v1.W*b.X + v2.W*b.Y + v3.W*b.Z) * b.W
	return n
}
