package sketch

import (
	"errors"
	"image"
	"testing"
)

func TestFitRect(t *testing.T) {
	tests := []struct {
		name                   string
		srcW, srcH, dstW, dstH int
		mode                   FitMode
		want                   image.Rectangle
	}{
		{"aspect fit wide", 100, 50, 200, 200, AspectFit, image.Rect(0, 50, 200, 150)},
		{"aspect fill wide", 100, 50, 200, 200, AspectFill, image.Rect(-100, 0, 300, 200)},
		{"aspect fit tall", 50, 100, 200, 200, AspectFit, image.Rect(50, 0, 150, 200)},
		{"aspect fill tall", 50, 100, 200, 200, AspectFill, image.Rect(0, -100, 200, 300)},
		{"aspect fit same ratio", 40, 30, 400, 300, AspectFit, image.Rect(0, 0, 400, 300)},
		{"scale to fill", 100, 50, 200, 200, ScaleToFill, image.Rect(0, 0, 200, 200)},
		{"center smaller", 100, 50, 200, 200, Center, image.Rect(50, 75, 150, 125)},
		{"center larger", 400, 400, 200, 200, Center, image.Rect(-100, -100, 300, 300)},
		{"aspect fit rounds outward", 3, 1, 10, 10, AspectFit, image.Rect(0, 3, 10, 7)},
		{"empty destination", 100, 50, 0, 200, AspectFit, image.Rectangle{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FitRect(tt.srcW, tt.srcH, tt.dstW, tt.dstH, tt.mode)
			if err != nil {
				t.Fatalf("FitRect error: %v", err)
			}
			if got != tt.want {
				t.Errorf("FitRect = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFitRectInvalidSource(t *testing.T) {
	for _, sz := range [][2]int{{0, 10}, {10, 0}, {-1, 5}} {
		_, err := FitRect(sz[0], sz[1], 100, 100, AspectFit)
		if !errors.Is(err, ErrInvalidGeometry) {
			t.Errorf("FitRect(%d, %d) error = %v, want ErrInvalidGeometry", sz[0], sz[1], err)
		}
	}
}

func TestParseFitMode(t *testing.T) {
	tests := []struct {
		in   string
		want FitMode
	}{
		{"AspectFit", AspectFit},
		{"aspectfill", AspectFill},
		{"ScaleToFill", ScaleToFill},
		{"CENTER", Center},
		{"contain", AspectFit},
		{"cover", AspectFill},
		{"stretch", ScaleToFill},
		{"fill", ScaleToFill},
	}
	for _, tt := range tests {
		got, err := ParseFitMode(tt.in)
		if err != nil {
			t.Errorf("ParseFitMode(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFitMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseFitMode("tile"); err == nil {
		t.Error("ParseFitMode(tile) expected error")
	}
}
