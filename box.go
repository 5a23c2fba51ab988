package beryl

// Box is an axis-aligned bounding box.
type Box struct {
	Min, Max Vector
}

var EmptyBox = Box{}

func BoxForBoxes(boxes []Box) Box {
	if len(boxes) == 0 {
		return EmptyBox
	}
	min := boxes[0].Min
	max := boxes[0].Max
	for _, box := range boxes[1:] {
		min = min.Min(box.Min)
		max = max.Max(box.Max)
	}
	return Box{min, max}
}

func (a Box) Size() Vector {
	return a.Max.Sub(a.Min)
}

func (a Box) Center() Vector {
	return a.Min.Lerp(a.Max, 0.5)
}

// Anchor returns the point at the fractional position within the box.
func (a Box) Anchor(anchor Vector) Vector {
	return a.Min.Add(a.Size().Mul(anchor))
}

// Corners returns the eight corner points.
func (a Box) Corners() []Vector {
	x0, y0, z0 := a.Min.X, a.Min.Y, a.Min.Z
	x1, y1, z1 := a.Max.X, a.Max.Y, a.Max.Z
	return []Vector{
		{x0, y0, z0},
		{x1, y0, z0},
		{x0, y1, z0},
		{x1, y1, z0},
		{x0, y0, z1},
		{x1, y0, z1},
		{x0, y1, z1},
		{x1, y1, z1}}
}

func (a Box) Extend(b Box) Box {
	if a == EmptyBox {
		return b
	}
	return Box{a.Min.Min(b.Min), a.Max.Max(b.Max)}
}

func (a Box) Contains(b Vector) bool {
	return a.Min.X <= b.X && a.Max.X >= b.X &&
		a.Min.Y <= b.Y && a.Max.Y >= b.Y &&
		a.Min.Z <= b.Z && a.Max.Z >= b.Z
}

func (a Box) ContainsBox(b Box) bool {
	return a.Min.X <= b.Min.X && a.Max.X >= b.Max.X &&
		a.Min.Y <= b.Min.Y && a.Max.Y >= b.Max.Y &&
		a.Min.Z <= b.Min.Z && a.Max.Z >= b.Max.Z
}

func (a Box) Intersects(b Box) bool {
	return !(a.Min.X > b.Max.X || a.Max.X < b.Min.X ||
		a.Min.Y > b.Max.Y || a.Max.Y < b.Min.Y ||
		a.Min.Z > b.Max.Z || a.Max.Z < b.Min.Z)
}

func (a Box) Transform(m Matrix) Box {
	return m.MulBox(a)
}
