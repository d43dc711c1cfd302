package genpaint

import (
	"math"
	"testing"
)

func TestStrokeLength(t *testing.T) {
	s := Stroke{Start: Pt(1, 1), End: Pt(4, 5), Width: 1}
	if got := s.Length(); math.Abs(got-5) > 1e-9 {
		t.Errorf("Length() = %v, want 5", got)
	}
}

func TestStrokeInBounds(t *testing.T) {
	tests := []struct {
		name string
		s    Stroke
		want bool
	}{
		{"inside", Stroke{Start: Pt(0, 0), End: Pt(9, 9), ControlA: Pt(3, 3), ControlB: Pt(6, 6)}, true},
		{"end on edge", Stroke{End: Pt(10, 0)}, false},
		{"control outside", Stroke{ControlB: Pt(0, 12)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.InBounds(10, 10); got != tt.want {
				t.Errorf("InBounds(10, 10) = %v, want %v", got, tt.want)
			}
		})
	}
}
