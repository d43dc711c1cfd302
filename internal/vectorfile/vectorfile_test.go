package vectorfile

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func sampleDrawing(curves bool) Drawing {
	return Drawing{
		Width:  40,
		Height: 30,
		Curves: curves,
		Strokes: []Stroke{
			{X0: 2, Y0: 3, AX: 10, AY: 0, BX: 20, BY: 25, X1: 30, Y1: 20, R: 255, G: 10, B: 20, Width: 3},
			{X0: 5, Y0: 5, AX: 5, AY: 5, BX: 6, BY: 6, X1: 6, Y1: 6, R: 0, G: 0, B: 0, Width: 1},
		},
	}
}

func TestWriteSVG(t *testing.T) {
	tests := []struct {
		name   string
		curves bool
		want   []string
	}{
		{"lines", false, []string{"<line", `x1="3"`, `y1="4"`, `x2="31"`, `y2="21"`, "stroke:rgb(255,10,20)", "stroke-width:3"}},
		{"curves", true, []string{`<path d="M2,3`, "C10,0 20,25 30,20", "stroke:rgb(0,0,0)"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteSVG(&buf, sampleDrawing(tt.curves)); err != nil {
				t.Fatalf("WriteSVG() = %v", err)
			}
			out := buf.String()
			if !strings.Contains(out, `width="40"`) || !strings.Contains(out, `height="30"`) {
				t.Errorf("WriteSVG() missing canvas size:\n%s", out)
			}
			if !strings.Contains(out, "fill:white") {
				t.Errorf("WriteSVG() missing white background:\n%s", out)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("WriteSVG() output missing %q:\n%s", w, out)
				}
			}
			if !strings.HasSuffix(strings.TrimSpace(out), "</svg>") {
				t.Errorf("WriteSVG() output not closed:\n%s", out)
			}
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteSVGReportsWriteError(t *testing.T) {
	if err := WriteSVG(failingWriter{}, sampleDrawing(false)); err == nil {
		t.Error("WriteSVG() to a failing writer should return an error")
	}
}

func TestWritePDF(t *testing.T) {
	for _, curves := range []bool{false, true} {
		var buf bytes.Buffer
		if err := WritePDF(&buf, sampleDrawing(curves)); err != nil {
			t.Fatalf("WritePDF(curves=%v) = %v", curves, err)
		}
		if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
			t.Errorf("WritePDF(curves=%v) output does not start with a PDF header", curves)
		}
	}
}

func TestWriteDispatch(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, "out.SVG", sampleDrawing(false)); err != nil {
		t.Fatalf("Write(.SVG) = %v", err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Error("Write(.SVG) did not produce SVG")
	}

	if err := Write(&buf, "out.png", sampleDrawing(false)); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Write(.png) = %v, want ErrUnsupportedFormat", err)
	}
}

func TestSupported(t *testing.T) {
	tests := map[string]bool{
		"a.svg": true,
		"a.PDF": true,
		"a.png": false,
		"a":     false,
	}
	for path, want := range tests {
		if got := Supported(path); got != want {
			t.Errorf("Supported(%q) = %v, want %v", path, got, want)
		}
	}
}
