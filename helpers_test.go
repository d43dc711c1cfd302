package genpaint

import (
	"image"
	"image/color"
	"math/rand/v2"
	"testing"
)

// solidTarget returns a w x h target filled with c.
func solidTarget(t testing.TB, w, h int, c RGB8) *Target {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, c.Color())
		}
	}
	target, err := NewTarget(img)
	if err != nil {
		t.Fatalf("NewTarget() = %v", err)
	}
	return target
}

// gradientTarget returns a target whose color varies with position.
func gradientTarget(t testing.TB, w, h int) *Target {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, color.NRGBA{R: uint8(x * 255 / max(w-1, 1)), G: uint8(y * 255 / max(h-1, 1)), B: 90, A: 255})
		}
	}
	target, err := NewTarget(img)
	if err != nil {
		t.Fatalf("NewTarget() = %v", err)
	}
	return target
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0x9e3779b97f4a7c15))
}

// mustGenerate generates a painting or fails the test.
func mustGenerate(t testing.TB, target *Target, s Strategy, cfg GeneratorConfig, seed uint64) *Painting {
	t.Helper()
	p, err := Generate(target, s, cfg, newRand(seed))
	if err != nil {
		t.Fatalf("Generate() = %v", err)
	}
	return p
}
