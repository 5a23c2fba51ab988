package beryl

import (
	"image"
	"math"
)

// Framebuffer is a float-precision render target for full-screen passes.
// Colors are stored unclamped so pass chains keep their dynamic range until
// tone mapping. It implements Texture, so any pass can sample the previous
// pass's output.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []Color
}

func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]Color, width*height),
	}
}

// Resize reallocates the pixel plane. Contents are discarded.
func (f *Framebuffer) Resize(width, height int) {
	f.Width = width
	f.Height = height
	f.Pixels = make([]Color, width*height)
}

func (f *Framebuffer) Clear(c Color) {
	for i := range f.Pixels {
		f.Pixels[i] = c
	}
}

func (f *Framebuffer) At(x, y int) Color {
	return f.Pixels[y*f.Width+x]
}

func (f *Framebuffer) Set(x, y int, c Color) {
	f.Pixels[y*f.Width+x] = c
}

// texel maps a full-screen UV coordinate back to the pixel it was generated
// for: u covers columns left to right, v covers rows bottom to top. Sampling
// at a pixel's own UV returns that pixel bit-exactly, which is what makes a
// nearest blit an identity.
func (f *Framebuffer) texel(u, v float64) (int, int) {
	x := ClampInt(int(u*float64(f.Width)), 0, f.Width-1)
	y := ClampInt(int((1-v)*float64(f.Height)), 0, f.Height-1)
	return x, y
}

func (f *Framebuffer) Sample(u, v float64) Color {
	x, y := f.texel(u, v)
	return f.At(x, y)
}

func (f *Framebuffer) BilinearSample(u, v float64) Color {
	fx := u*float64(f.Width) - 0.5
	fy := (1-v)*float64(f.Height) - 0.5
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	at := func(x, y int) Color {
		return f.At(ClampInt(x, 0, f.Width-1), ClampInt(y, 0, f.Height-1))
	}
	top := at(x0, y0).Lerp(at(x0+1, y0), tx)
	bottom := at(x0, y0+1).Lerp(at(x0+1, y0+1), tx)
	return top.Lerp(bottom, ty)
}

// DrawFullScreen shades every pixel once with the generated triangle and
// writes the results straight into the float plane.
func (f *Framebuffer) DrawFullScreen(shader FragmentShader) {
	rasterizeFullScreen(f.Width, f.Height, func(x, y int, uv Vector) {
		f.Pixels[y*f.Width+x] = shader.Fragment(uv)
	})
}

// Image snapshots the plane as 8-bit NRGBA, clamping each channel.
func (f *Framebuffer) Image() *image.NRGBA {
	im := image.NewNRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			im.SetNRGBA(x, y, f.At(x, y).NRGBA())
		}
	}
	return im
}
