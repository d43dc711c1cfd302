package genpaint

import (
	"sync"
	"testing"
)

var red = RGB8{R: 255}

func isWhite(pm *Pixmap) bool {
	for _, v := range pm.Data() {
		if v != 255 {
			return false
		}
	}
	return true
}

func TestRenderEmptyIsWhite(t *testing.T) {
	for _, r := range []Renderer{HairlineRenderer{}, CurveRenderer{}} {
		p := NewPainting(solidTarget(t, 7, 5, Black), nil)
		pm := r.Render(p)
		if pm.Width() != 7 || pm.Height() != 5 {
			t.Errorf("%T.Render() size = %dx%d, want 7x5", r, pm.Width(), pm.Height())
		}
		if !isWhite(pm) {
			t.Errorf("%T.Render() of an empty painting is not all white", r)
		}
	}
}

func TestHairlineRendererSingleLine(t *testing.T) {
	target := solidTarget(t, 10, 10, White)
	p := NewPainting(target, []Stroke{{Start: Pt(1, 4), End: Pt(8, 4), Color: red, Width: 1}})

	pm := Render(p)
	for x := 1; x <= 8; x++ {
		if got := pm.GetPixel(x, 4); got != red {
			t.Errorf("pixel (%d,4) = %v, want red", x, got)
		}
	}
	for _, xy := range [][2]int{{0, 4}, {9, 4}, {4, 3}, {4, 5}} {
		if got := pm.GetPixel(xy[0], xy[1]); got != White {
			t.Errorf("pixel %v = %v, want white", xy, got)
		}
	}
}

func TestHairlineRendererWidthOffsets(t *testing.T) {
	target := solidTarget(t, 12, 12, White)
	p := NewPainting(target, []Stroke{{Start: Pt(2, 2), End: Pt(6, 2), Color: red, Width: 3}})

	pm := Render(p)
	// Line i runs from (2+i, 2+i) to (6+i, 2+i).
	for i := range 3 {
		for x := 2 + i; x <= 6+i; x++ {
			if got := pm.GetPixel(x, 2+i); got != red {
				t.Errorf("pixel (%d,%d) = %v, want red", x, 2+i, got)
			}
		}
	}
	if got := pm.GetPixel(2, 3); got != White {
		t.Errorf("pixel (2,3) = %v, want white", got)
	}
}

func TestHairlineRendererAntialiases(t *testing.T) {
	target := solidTarget(t, 10, 10, White)
	p := NewPainting(target, []Stroke{{Start: Pt(0, 0), End: Pt(4, 2), Color: Black, Width: 1}})

	pm := Render(p)
	// At x=1 the line sits halfway between rows 0 and 1.
	want := RGB8{R: 128, G: 128, B: 128}
	for _, y := range []int{0, 1} {
		if got := pm.GetPixel(1, y); got != want {
			t.Errorf("pixel (1,%d) = %v, want %v", y, got, want)
		}
	}
}

func TestRenderLaterStrokesWin(t *testing.T) {
	target := solidTarget(t, 10, 10, White)
	blue := RGB8{B: 255}
	p := NewPainting(target, []Stroke{
		{Start: Pt(0, 5), End: Pt(9, 5), Color: red, Width: 1},
		{Start: Pt(5, 0), End: Pt(5, 9), Color: blue, Width: 1},
	})

	if got := Render(p).GetPixel(5, 5); got != blue {
		t.Errorf("overlap pixel = %v, want the later stroke's color %v", got, blue)
	}
}

func TestRenderClipsWidthOffsets(t *testing.T) {
	target := solidTarget(t, 5, 5, White)
	p := NewPainting(target, []Stroke{{Start: Pt(3, 3), End: Pt(4, 4), Color: red, Width: 200}})

	for _, r := range []Renderer{HairlineRenderer{}, CurveRenderer{}} {
		pm := r.Render(p)
		if pm.Width() != 5 || pm.Height() != 5 {
			t.Errorf("%T.Render() size = %dx%d, want 5x5", r, pm.Width(), pm.Height())
		}
	}
}

func TestRenderDoesNotModifyPainting(t *testing.T) {
	target := gradientTarget(t, 20, 20)
	p := mustGenerate(t, target, StrategyInformed, GeneratorConfig{Strokes: 20, MaxWidth: 4, MinLength: 2, MaxLength: 15, MaxCurve: 4}, 3)
	before := p.Clone()

	a := Render(p)
	b := Render(p)
	c := CurveRenderer{}.Render(p)
	_ = c

	if !p.Equal(before) {
		t.Error("Render() modified the painting")
	}
	if string(a.Data()) != string(b.Data()) {
		t.Error("Render() is not deterministic")
	}
}

func TestRenderConcurrent(t *testing.T) {
	target := gradientTarget(t, 30, 30)
	p := mustGenerate(t, target, StrategyRandom, GeneratorConfig{Strokes: 30, MaxWidth: 5, MinLength: 2, MaxLength: 25}, 8)
	want := string(Render(p).Data())

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := string(Render(p).Data()); got != want {
				t.Error("concurrent Render() differs")
			}
		}()
	}
	wg.Wait()
}

func TestCurveRendererStraight(t *testing.T) {
	target := solidTarget(t, 20, 20, White)
	s := Stroke{Start: Pt(2, 10), End: Pt(17, 10), Color: red, Width: 3}
	s.ControlA = s.Start.Control(s.End, 1.0/3, 0, 20, 20)
	s.ControlB = s.Start.Control(s.End, 2.0/3, 0, 20, 20)

	pm := CurveRenderer{}.Render(NewPainting(target, []Stroke{s}))
	if got := pm.GetPixel(10, 10); got != red {
		t.Errorf("centre pixel = %v, want red", got)
	}
	if got := pm.GetPixel(10, 2); got != White {
		t.Errorf("pixel far from the stroke = %v, want white", got)
	}
}

func TestCurveRendererBends(t *testing.T) {
	target := solidTarget(t, 40, 40, White)
	s := Stroke{Start: Pt(5, 20), End: Pt(35, 20), Color: red, Width: 2}
	s.ControlA = s.Start.Control(s.End, 1.0/3, 16, 40, 40)
	s.ControlB = s.Start.Control(s.End, 2.0/3, 16, 40, 40)
	p := NewPainting(target, []Stroke{s})

	// The curve's midpoint is 3/4 of the control offset off the chord: y=32.
	if got := (CurveRenderer{}).Render(p).GetPixel(20, 32); got == White {
		t.Error("curved stroke did not reach its apex")
	}
	if got := Render(p).GetPixel(20, 32); got != White {
		t.Error("hairline renderer should ignore control points")
	}
}

func TestNewRenderer(t *testing.T) {
	if _, ok := NewRenderer(RenderCurves).(CurveRenderer); !ok {
		t.Error("NewRenderer(RenderCurves) is not a CurveRenderer")
	}
	if _, ok := NewRenderer(RenderHairlines).(HairlineRenderer); !ok {
		t.Error("NewRenderer(RenderHairlines) is not a HairlineRenderer")
	}
	if _, ok := NewRenderer(RenderMode(42)).(HairlineRenderer); !ok {
		t.Error("NewRenderer(unknown) should fall back to HairlineRenderer")
	}
	if RenderCurves.String() != "curves" || RenderMode(42).String() != "RenderMode(42)" {
		t.Error("RenderMode.String() mismatch")
	}
}
