package beryl

import (
	"image"

	"github.com/nfnt/resize"
)

// Engine owns the render targets and the pass chain, and runs one frame of
// the deferred pipeline:
//
//	geometry -> lighting -> (blur) -> tonemap -> blit -> mesh overlay
//
// Every stage before the overlay is a full-screen draw; the overlay uses the
// forward mesh path on top of the blitted result.
type Engine struct {
	Width  int
	Height int
	// Scale renders at Width*Scale x Height*Scale and downsamples in Image.
	Scale int

	Camera *Camera

	Geometry *GeometryPass
	Lighting *LightingPass
	Blur     *BlurPass
	Tonemap  *TonemapPass
	Blit     *BlitPass

	// Overlay objects are drawn with OverlayShader after the pass chain.
	Overlay       []*Object
	OverlayShader Shader

	ctx     *Context
	gbuffer *GBuffer
	hdr     *Framebuffer
	scratch *Framebuffer
	post    *Framebuffer
	ldr     *Framebuffer
}

// NewEngine builds an engine rendering the given scene at width x height.
func NewEngine(width, height int, scene SDF) *Engine {
	e := &Engine{
		Width:    width,
		Height:   height,
		Scale:    1,
		Camera:   NewCamera(width, height),
		Geometry: NewGeometryPass(scene),
		Lighting: NewLightingPass(Vector{-0.5, 0.5, 1}.Normalize()),
		Tonemap:  NewTonemapPass(1),
		Blit:     NewBlitPass(),
	}
	e.allocate()
	return e
}

func (e *Engine) renderWidth() int  { return e.Width * e.Scale }
func (e *Engine) renderHeight() int { return e.Height * e.Scale }

func (e *Engine) allocate() {
	w, h := e.renderWidth(), e.renderHeight()
	e.ctx = NewContext(w, h, e.OverlayShader)
	e.gbuffer = NewGBuffer(w, h)
	e.hdr = NewFramebuffer(w, h)
	e.scratch = NewFramebuffer(w, h)
	e.post = NewFramebuffer(w, h)
	e.ldr = NewFramebuffer(w, h)
}

// Resize recreates every target at the new output size, in the manner of a
// swapchain recreation. Pass configuration survives; pixel contents do not.
func (e *Engine) Resize(width, height int) {
	if width == e.Width && height == e.Height {
		return
	}
	e.Width = width
	e.Height = height
	e.Camera.SetAspectRatio(width, height)
	e.allocate()
}

// SetScale changes the supersampling factor and reallocates targets.
func (e *Engine) SetScale(scale int) {
	if scale < 1 {
		scale = 1
	}
	if scale == e.Scale {
		return
	}
	e.Scale = scale
	e.allocate()
}

// RenderFrame runs the full pass chain once.
func (e *Engine) RenderFrame() {
	w, h := e.renderWidth(), e.renderHeight()
	cam := e.Camera.Uniforms(w, h)

	e.Geometry.Render(cam, e.gbuffer)
	e.Lighting.Render(cam, e.gbuffer, e.hdr)

	shaded := e.hdr
	if e.Blur != nil && e.Blur.Radius > 0 {
		e.Blur.Render(e.hdr, e.scratch, e.post)
		shaded = e.post
	}
	e.Tonemap.Render(shaded, e.ldr)

	e.ctx.ClearColorBuffer()
	e.ctx.ClearDepthBuffer()
	e.Blit.Render(e.ldr, e.ctx)

	if len(e.Overlay) > 0 && e.OverlayShader != nil {
		e.ctx.Shader = e.OverlayShader
		for _, o := range e.Overlay {
			if o.Mesh == nil {
				continue
			}
			e.ctx.DrawObject(o)
		}
	}
}

// Context exposes the final 8-bit target, mainly for presentation layers.
func (e *Engine) Context() *Context {
	return e.ctx
}

// Image returns the finished frame, downsampled to Width x Height when
// supersampling is on.
func (e *Engine) Image() image.Image {
	im := e.ctx.Image()
	if e.Scale > 1 {
		return resize.Resize(uint(e.Width), uint(e.Height), im, resize.Lanczos3)
	}
	return im
}

// SavePNG renders nothing; it just writes the last finished frame.
func (e *Engine) SavePNG(path string) error {
	return SavePNG(path, e.Image())
}
