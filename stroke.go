package genpaint

// Stroke is a single paintable primitive.
//
// Start and End are the curve endpoints. ControlA and ControlB shape the
// cubic bezier used by CurveRenderer; HairlineRenderer ignores them. Width is
// always at least 1.
type Stroke struct {
	Start    Point
	End      Point
	ControlA Point
	ControlB Point
	Color    RGB8
	Width    uint32
}

// Length returns the straight-line distance between the endpoints.
func (s Stroke) Length() float64 {
	return s.Start.Distance(s.End)
}

// InBounds reports whether every point of s lies inside a w x h canvas.
func (s Stroke) InBounds(w, h uint32) bool {
	for _, p := range [...]Point{s.Start, s.End, s.ControlA, s.ControlB} {
		if p.X >= w || p.Y >= h {
			return false
		}
	}
	return true
}
