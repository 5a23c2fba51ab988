package beryl

import (
	"fmt"
	"image/color"
	"math"
	"strings"
)

var (
	Discard     = Color{}
	Transparent = Color{}
	Black       = Color{0, 0, 0, 1}
	White       = Color{1, 1, 1, 1}
	Gray        = Color{0.5, 0.5, 0.5, 1}
)

// Color is an RGBA color with float64 components in [0, 1] for display
// purposes. Intermediate pass results may exceed 1 until tone mapped.
type Color struct {
	R, G, B, A float64
}

func MakeColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	return Color{
		float64(r) / 65535,
		float64(g) / 65535,
		float64(b) / 65535,
		float64(a) / 65535}
}

// HexColor parses "#f80", "f80", "#ff8800", "ff8800" and 8-digit RGBA forms.
func HexColor(x string) Color {
	x = strings.Trim(x, "#")
	var r, g, b, a int
	a = 255
	switch len(x) {
	case 3:
		fmt.Sscanf(x, "%1x%1x%1x", &r, &g, &b)
		r = (r << 4) | r
		g = (g << 4) | g
		b = (b << 4) | b
	case 4:
		fmt.Sscanf(x, "%1x%1x%1x%1x", &r, &g, &b, &a)
		r = (r << 4) | r
		g = (g << 4) | g
		b = (b << 4) | b
		a = (a << 4) | a
	case 6:
		fmt.Sscanf(x, "%02x%02x%02x", &r, &g, &b)
	case 8:
		fmt.Sscanf(x, "%02x%02x%02x%02x", &r, &g, &b, &a)
	}
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, float64(a) / 255}
}

func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		uint8(Clamp(c.R, 0, 1) * 255),
		uint8(Clamp(c.G, 0, 1) * 255),
		uint8(Clamp(c.B, 0, 1) * 255),
		uint8(Clamp(c.A, 0, 1) * 255)}
}

func (a Color) Add(b Color) Color {
	return Color{a.R + b.R, a.G + b.G, a.B + b.B, a.A + b.A}
}

func (a Color) Sub(b Color) Color {
	return Color{a.R - b.R, a.G - b.G, a.B - b.B, a.A - b.A}
}

func (a Color) Mul(b Color) Color {
	return Color{a.R * b.R, a.G * b.G, a.B * b.B, a.A * b.A}
}

func (a Color) MulScalar(b float64) Color {
	return Color{a.R * b, a.G * b, a.B * b, a.A * b}
}

func (a Color) DivScalar(b float64) Color {
	return Color{a.R / b, a.G / b, a.B / b, a.A / b}
}

func (a Color) Min(b Color) Color {
	return Color{
		math.Min(a.R, b.R),
		math.Min(a.G, b.G),
		math.Min(a.B, b.B),
		math.Min(a.A, b.A)}
}

func (a Color) Max(b Color) Color {
	return Color{
		math.Max(a.R, b.R),
		math.Max(a.G, b.G),
		math.Max(a.B, b.B),
		math.Max(a.A, b.A)}
}

// Pow raises the RGB channels to b, leaving alpha alone. Used for gamma.
func (a Color) Pow(b float64) Color {
	return Color{
		math.Pow(a.R, b),
		math.Pow(a.G, b),
		math.Pow(a.B, b),
		a.A}
}

func (a Color) Lerp(b Color, t float64) Color {
	return a.Add(b.Sub(a).MulScalar(t))
}

// Alpha returns the color with its alpha replaced.
func (a Color) Alpha(alpha float64) Color {
	return Color{a.R, a.G, a.B, alpha}
}

// Opaque returns the color with full alpha.
func (a Color) Opaque() Color {
	return Color{a.R, a.G, a.B, 1}
}
