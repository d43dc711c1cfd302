package genpaint

import (
	"image"
	"image/color"
)

// Pixmap is a rectangular RGB pixel buffer produced by a Renderer.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGB, 3 bytes per pixel
}

// NewPixmap creates a white pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	p := &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*3),
	}
	p.Clear(White)
	return p
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGB format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel. Out-of-range writes are dropped.
func (p *Pixmap) SetPixel(x, y int, c RGB8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 3
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
}

// GetPixel returns the color of a single pixel, or White outside the pixmap.
func (p *Pixmap) GetPixel(x, y int) RGB8 {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return White
	}
	i := (y*p.width + x) * 3
	return RGB8{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2]}
}

// BlendPixel lerps c over the existing pixel with the given weight in [0, 1].
func (p *Pixmap) BlendPixel(x, y int, c RGB8, weight float64) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	p.SetPixel(x, y, c.Lerp(p.GetPixel(x, y), weight))
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGB8) {
	for i := 0; i < len(p.data); i += 3 {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
	}
}

// ToImage converts the pixmap to an opaque image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	for i, j := 0, 0; i < len(p.data); i, j = i+3, j+4 {
		img.Pix[j+0] = p.data[i+0]
		img.Pix[j+1] = p.data[i+1]
		img.Pix[j+2] = p.data[i+2]
		img.Pix[j+3] = 255
	}
	return img
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y).Color()
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
