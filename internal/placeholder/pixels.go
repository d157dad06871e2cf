package placeholder

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

// Pixels is a row-major, non-premultiplied RGBA pixel grid of exactly
// Width*Height*4 bytes.
type Pixels struct {
	Pix    []byte
	Width  int
	Height int
}

// FromImage converts any image into tightly packed RGBA bytes.
func FromImage(img image.Image) *Pixels {
	n := imaging.Clone(img)
	return &Pixels{
		Pix:    n.Pix,
		Width:  n.Rect.Dx(),
		Height: n.Rect.Dy(),
	}
}

// AverageColor returns the alpha-weighted mean color of p as "#rrggbb".
// A fully transparent grid averages to black.
func AverageColor(p *Pixels) string {
	var r, g, b, weight float64
	for i := 0; i+3 < len(p.Pix); i += 4 {
		a := float64(p.Pix[i+3]) / 255
		r += float64(p.Pix[i]) * a
		g += float64(p.Pix[i+1]) * a
		b += float64(p.Pix[i+2]) * a
		weight += a
	}
	if weight == 0 {
		return colorful.Color{}.Hex()
	}

	c := colorful.Color{
		R: r / weight / 255,
		G: g / weight / 255,
		B: b / weight / 255,
	}
	return c.Clamped().Hex()
}
