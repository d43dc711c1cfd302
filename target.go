package genpaint

import (
	"fmt"
	"image"

	gpimage "github.com/gogpu/genpaint/internal/image"
)

// Target is the immutable raster a population is evolved toward.
// A single Target is shared read-only by every Painting derived from it
// and is safe for concurrent use.
type Target struct {
	path   string
	width  uint32
	height uint32
	pix    []RGB8
}

// LoadTarget reads and decodes the image at path. Supported formats are PNG,
// JPEG, GIF, BMP, TIFF and WebP.
func LoadTarget(path string) (*Target, error) {
	img, err := gpimage.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrLoadTarget, path, err)
	}
	t, err := NewTarget(img)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrLoadTarget, path, err)
	}
	t.path = path
	Logger().Info("target loaded", "path", path, "width", t.width, "height", t.height)
	return t, nil
}

// NewTarget copies img into a Target. Transparent pixels are composited
// over white.
func NewTarget(img image.Image) (*Target, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, ErrEmptyTarget
	}
	t := &Target{
		width:  uint32(b.Dx()),
		height: uint32(b.Dy()),
		pix:    make([]RGB8, b.Dx()*b.Dy()),
	}
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			t.pix[i] = FromColor(img.At(x, y))
			i++
		}
	}
	return t, nil
}

// Path returns the file the target was loaded from, or "" if it was built
// in memory.
func (t *Target) Path() string { return t.path }

// Width returns the target width in pixels.
func (t *Target) Width() uint32 { return t.width }

// Height returns the target height in pixels.
func (t *Target) Height() uint32 { return t.height }

// Pixels returns the total pixel count.
func (t *Target) Pixels() uint64 { return uint64(t.width) * uint64(t.height) }

// At returns the color at (x, y). Coordinates must be inside the target.
func (t *Target) At(x, y uint32) RGB8 {
	return t.pix[int(y)*int(t.width)+int(x)]
}
