package beryl

// GBuffer holds the geometry pass's per-pixel output planes: surface albedo,
// world-space normal, distance along the view ray, and a hit mask. The
// lighting pass reads it; nothing else writes it.
type GBuffer struct {
	Width  int
	Height int
	Albedo []Color
	Normal []Vector
	Depth  []float64
	Hit    []bool
}

func NewGBuffer(width, height int) *GBuffer {
	g := &GBuffer{}
	g.Resize(width, height)
	return g
}

func (g *GBuffer) Resize(width, height int) {
	g.Width = width
	g.Height = height
	n := width * height
	g.Albedo = make([]Color, n)
	g.Normal = make([]Vector, n)
	g.Depth = make([]float64, n)
	g.Hit = make([]bool, n)
}

func (g *GBuffer) Clear() {
	for i := range g.Hit {
		g.Albedo[i] = Color{}
		g.Normal[i] = Vector{}
		g.Depth[i] = FarPlane
		g.Hit[i] = false
	}
}

func (g *GBuffer) index(x, y int) int {
	return y*g.Width + x
}

// texelFromUV maps a full-screen UV to its pixel index, mirroring the
// Framebuffer convention so the lighting pass reads the texel the geometry
// pass wrote for the same invocation.
func (g *GBuffer) texelFromUV(uv Vector) int {
	x := ClampInt(int(uv.X*float64(g.Width)), 0, g.Width-1)
	y := ClampInt(int((1-uv.Y)*float64(g.Height)), 0, g.Height-1)
	return g.index(x, y)
}
