package genpaint

import (
	"image/color"
	"math"
)

// RGB8 is an opaque color with 8 bits per channel.
type RGB8 struct {
	R, G, B uint8
}

// Common colors.
var (
	White = RGB8{R: 255, G: 255, B: 255}
	Black = RGB8{}
)

// Color converts c to the standard color.Color interface.
func (c RGB8) Color() color.Color {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// RGBA implements color.Color.
func (c RGB8) RGBA() (r, g, b, a uint32) {
	return c.Color().RGBA()
}

// FromColor converts a standard color.Color to RGB8, dropping alpha.
// Non-opaque colors are composited over white first.
func FromColor(c color.Color) RGB8 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 255 {
		return RGB8{R: n.R, G: n.G, B: n.B}
	}
	return RGB8{R: n.R, G: n.G, B: n.B}.Lerp(White, float64(n.A)/255)
}

// Lerp blends c over dst. A weight of 1 yields c, 0 yields dst.
func (c RGB8) Lerp(dst RGB8, weight float64) RGB8 {
	if weight <= 0 {
		return dst
	}
	if weight >= 1 {
		return c
	}
	return RGB8{
		R: lerpChannel(c.R, dst.R, weight),
		G: lerpChannel(c.G, dst.G, weight),
		B: lerpChannel(c.B, dst.B, weight),
	}
}

// Diff returns the sum of channel-wise absolute differences, in [0, 765].
func (c RGB8) Diff(o RGB8) int {
	return absDiff(c.R, o.R) + absDiff(c.G, o.G) + absDiff(c.B, o.B)
}

func lerpChannel(a, b uint8, w float64) uint8 {
	return uint8(math.Round(float64(a)*w + float64(b)*(1-w)))
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
