package beryl

// SolidColorShader renders everything in one color, optionally extruding
// vertexes along their normals. A slightly positive thickness with front-face
// culling gives a cheap silhouette outline.
type SolidColorShader struct {
	Matrix    Matrix
	Color     Color
	Thickness float64
}

func NewSolidColorShader(matrix Matrix, color Color) *SolidColorShader {
	return &SolidColorShader{matrix, color, 0}
}

func (s *SolidColorShader) Vertex(v Vertex) Vertex {
	extrudedPosition := v.Position.Add(v.Normal.MulScalar(s.Thickness))
	v.Output = s.Matrix.MulPositionW(extrudedPosition)
	return v
}

func (s *SolidColorShader) Fragment(v Vertex, fromObject *Object) Color {
	return s.Color
}
