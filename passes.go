package beryl

import "math"

// The pass objects mirror the structure of a deferred pipeline: each one is
// configured once and then issues a single buffer-less full-screen draw per
// frame (the blur pass issues two, one per axis).

// GeometryPass ray-marches the signed-distance scene and fills the g-buffer.
type GeometryPass struct {
	Scene  SDF
	Albedo Color
}

func NewGeometryPass(scene SDF) *GeometryPass {
	return &GeometryPass{Scene: scene, Albedo: Gray}
}

func (p *GeometryPass) Render(cam CameraUniforms, gb *GBuffer) {
	gb.Clear()
	rasterizeFullScreen(gb.Width, gb.Height, func(x, y int, uv Vector) {
		origin, dir := cam.Ray(uv)
		t, hit := March(p.Scene, origin, dir, cam.Far)
		i := gb.index(x, y)
		gb.Depth[i] = t
		if hit {
			point := origin.Add(dir.MulScalar(t))
			gb.Albedo[i] = p.Albedo
			gb.Normal[i] = SDFNormal(p.Scene, point)
			gb.Hit[i] = true
		}
	})
}

// LightingPass resolves the g-buffer to shaded color with one directional
// light: ambient plus Lambert diffuse plus Phong specular, background where
// nothing was hit.
type LightingPass struct {
	LightDirection Vector
	AmbientColor   Color
	DiffuseColor   Color
	SpecularColor  Color
	SpecularPower  float64
	Background     Color
}

func NewLightingPass(lightDirection Vector) *LightingPass {
	return &LightingPass{
		LightDirection: lightDirection.Normalize(),
		AmbientColor:   Color{0.2, 0.2, 0.2, 1},
		DiffuseColor:   Color{0.9, 0.9, 0.9, 1},
		SpecularColor:  White,
		SpecularPower:  32,
		Background:     BackgroundColor,
	}
}

func (p *LightingPass) Render(cam CameraUniforms, gb *GBuffer, dst *Framebuffer) {
	dst.DrawFullScreen(FragmentFunc(func(uv Vector) Color {
		i := gb.texelFromUV(uv)
		if !gb.Hit[i] {
			return p.Background
		}

		normal := gb.Normal[i]
		albedo := gb.Albedo[i]

		// World position comes back from the ray, not a matrix unproject;
		// the g-buffer depth is distance along the view ray.
		origin, dir := cam.Ray(uv)
		point := origin.Add(dir.MulScalar(gb.Depth[i]))

		light := p.AmbientColor
		diffuse := math.Max(normal.Dot(p.LightDirection), 0)
		light = light.Add(p.DiffuseColor.MulScalar(diffuse))
		if diffuse > 0 && p.SpecularPower > 0 {
			camera := cam.Position.Sub(point).Normalize()
			reflected := p.LightDirection.Negate().Reflect(normal)
			specular := math.Max(camera.Dot(reflected), 0)
			if specular > 0 {
				specular = math.Pow(specular, p.SpecularPower)
				light = light.Add(p.SpecularColor.MulScalar(specular))
			}
		}
		return albedo.Mul(light).Alpha(1)
	}))
}

// BlurPass applies a separable Gaussian in two full-screen draws.
type BlurPass struct {
	Radius int
	kernel []float64
}

func NewBlurPass(radius int) *BlurPass {
	p := &BlurPass{Radius: radius}
	p.kernel = gaussianKernel(radius)
	return p
}

func gaussianKernel(radius int) []float64 {
	if radius < 1 {
		return []float64{1}
	}
	sigma := float64(radius) / 2
	kernel := make([]float64, 2*radius+1)
	sum := 0.0
	for i := range kernel {
		d := float64(i - radius)
		kernel[i] = math.Exp(-d * d / (2 * sigma * sigma))
		sum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}

func (p *BlurPass) Render(src, scratch, dst *Framebuffer) {
	if p.Radius < 1 {
		copy(dst.Pixels, src.Pixels)
		return
	}
	p.blurAxis(src, scratch, 1.0/float64(src.Width), 0)
	p.blurAxis(scratch, dst, 0, 1.0/float64(src.Height))
}

func (p *BlurPass) blurAxis(src, dst *Framebuffer, du, dv float64) {
	radius := p.Radius
	kernel := p.kernel
	dst.DrawFullScreen(FragmentFunc(func(uv Vector) Color {
		var sum Color
		for k := -radius; k <= radius; k++ {
			c := src.Sample(uv.X+float64(k)*du, uv.Y+float64(k)*dv)
			sum = sum.Add(c.MulScalar(kernel[k+radius]))
		}
		return sum
	}))
}

// TonemapPass maps HDR color to display range with Reinhard and a gamma
// curve. Exposure scales input luminance before the curve.
type TonemapPass struct {
	Exposure float64
	Gamma    float64
}

func NewTonemapPass(exposure float64) *TonemapPass {
	return &TonemapPass{Exposure: exposure, Gamma: 2.2}
}

func (p *TonemapPass) Render(src, dst *Framebuffer) {
	dst.DrawFullScreen(FragmentFunc(func(uv Vector) Color {
		c := src.Sample(uv.X, uv.Y).MulScalar(p.Exposure)
		mapped := Color{
			c.R / (1 + c.R),
			c.G / (1 + c.G),
			c.B / (1 + c.B),
			c.A,
		}
		return mapped.Pow(1 / p.Gamma).Min(White).Max(Color{}).Alpha(Clamp(c.A, 0, 1))
	}))
}

// BlitPass copies a source texture onto a context. With Bilinear off the
// copy is texel-exact when source and target sizes match.
type BlitPass struct {
	Bilinear bool
}

func NewBlitPass() *BlitPass {
	return &BlitPass{}
}

func (p *BlitPass) Render(src Texture, dst *Context) {
	dst.DrawFullScreen(FragmentFunc(func(uv Vector) Color {
		if p.Bilinear {
			return src.BilinearSample(uv.X, uv.Y)
		}
		return src.Sample(uv.X, uv.Y)
	}))
}
