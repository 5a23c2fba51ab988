package beryl

// Homogeneous clipping against the six w-scaled frustum planes. Primitives
// with vertexes outside -w <= x,y,z <= w pass through here before the
// perspective divide; attribute interpolation along cut edges is linear in
// clip space, so interpolants like UV stay linear across the cut.

type clipPlane int

const (
	clipLeft clipPlane = iota
	clipRight
	clipBottom
	clipTop
	clipNear
	clipFar
)

var clipPlanes = []clipPlane{
	clipLeft, clipRight, clipBottom, clipTop, clipNear, clipFar,
}

// distance is positive on the inside of the plane.
func (p clipPlane) distance(v VectorW) float64 {
	switch p {
	case clipLeft:
		return v.W + v.X
	case clipRight:
		return v.W - v.X
	case clipBottom:
		return v.W + v.Y
	case clipTop:
		return v.W - v.Y
	case clipNear:
		return v.W + v.Z
	default:
		return v.W - v.Z
	}
}

func clipIntersect(v1, v2 Vertex, d1, d2 float64) Vertex {
	t := d1 / (d1 - d2)
	var v Vertex
	v.Position = v1.Position.Lerp(v2.Position, t)
	v.Normal = v1.Normal.Lerp(v2.Normal, t)
	v.Texture = v1.Texture.Lerp(v2.Texture, t)
	v.Color = v1.Color.Lerp(v2.Color, t)
	v.Output = v1.Output.Add(v2.Output.Sub(v1.Output).MulScalar(t))
	return v
}

func sutherlandHodgman(points []Vertex) []Vertex {
	output := points
	for _, plane := range clipPlanes {
		input := output
		output = nil
		if len(input) == 0 {
			return nil
		}
		s := input[len(input)-1]
		ds := plane.distance(s.Output)
		for _, e := range input {
			de := plane.distance(e.Output)
			if de >= 0 {
				if ds < 0 {
					output = append(output, clipIntersect(s, e, ds, de))
				}
				output = append(output, e)
			} else if ds >= 0 {
				output = append(output, clipIntersect(s, e, ds, de))
			}
			s = e
			ds = de
		}
	}
	return output
}

// ClipTriangle cuts a triangle to the clip volume, fanning the resulting
// polygon back into triangles. Returns nil when fully outside.
func ClipTriangle(t *Triangle) []*Triangle {
	points := sutherlandHodgman([]Vertex{t.V1, t.V2, t.V3})
	var result []*Triangle
	for i := 2; i < len(points); i++ {
		result = append(result, NewTriangle(points[0], points[i-1], points[i]))
	}
	return result
}

// ClipLine cuts a line segment to the clip volume. Returns nil when fully
// outside.
func ClipLine(l *Line) *Line {
	v1 := l.V1
	v2 := l.V2
	for _, plane := range clipPlanes {
		d1 := plane.distance(v1.Output)
		d2 := plane.distance(v2.Output)
		if d1 < 0 && d2 < 0 {
			return nil
		}
		if d1 < 0 {
			v1 = clipIntersect(v1, v2, d1, d2)
		} else if d2 < 0 {
			v2 = clipIntersect(v2, v1, d2, d1)
		}
	}
	return NewLine(v1, v2)
}
