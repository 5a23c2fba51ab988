package beryl

import (
	"bytes"
	"image"
	"math"
	"net/http"
	"time"

	_ "image/jpeg" // Ensure decoders are present
	_ "image/png"
)

type Texture interface {
	Sample(u, v float64) Color
	BilinearSample(u, v float64) Color
}

type ImageTexture struct {
	Width  int
	Height int
	Image  image.Image
}

func NewImageTexture(im image.Image) Texture {
	return &ImageTexture{
		Width:  im.Bounds().Dx(),
		Height: im.Bounds().Dy(),
		Image:  im,
	}
}

func LoadTexture(path string) (Texture, error) {
	im, err := LoadImage(path)
	if err != nil {
		return nil, err
	}
	return NewImageTexture(im), nil
}

func LoadTextureFromURL(url string) Texture {
	client := http.Client{
		Timeout: 10 * time.Second, // Prevent hanging
	}
	resp, err := client.Get(url)
	if err != nil || resp.StatusCode != 200 {
		return nil
	}
	defer resp.Body.Close()

	im, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil
	}
	return NewImageTexture(im)
}

func TexFromBytes(data []byte) Texture {
	im, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil
	}
	return NewImageTexture(im)
}

func (t *ImageTexture) Sample(u, v float64) Color {
	// Wrap coords, flip V for standard UV orientation.
	u = u - math.Floor(u)
	v = 1 - (v - math.Floor(v))

	x := int(u * float64(t.Width))
	y := int(v * float64(t.Height))

	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}

	return MakeColor(t.Image.At(x, y))
}

// BilinearSample blends the four texels around the sample point.
func (t *ImageTexture) BilinearSample(u, v float64) Color {
	u = u - math.Floor(u)
	v = 1 - (v - math.Floor(v))

	fx := u*float64(t.Width) - 0.5
	fy := v*float64(t.Height) - 0.5
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	at := func(x, y int) Color {
		x = ClampInt(x, 0, t.Width-1)
		y = ClampInt(y, 0, t.Height-1)
		return MakeColor(t.Image.At(x, y))
	}
	top := at(x0, y0).Lerp(at(x0+1, y0), tx)
	bottom := at(x0, y0+1).Lerp(at(x0+1, y0+1), tx)
	return top.Lerp(bottom, ty)
}
