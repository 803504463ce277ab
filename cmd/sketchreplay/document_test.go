package main

import (
	"errors"
	"image"
	"strings"
	"testing"

	"github.com/gogpu/sketch"
)

const sampleDoc = `{
  "width": 60, "height": 40,
  "actions": [
    {"op": "stroke", "id": 1, "color": "#ff0000", "width": 6, "points": [[10, 10], [50, 10]]},
    {"op": "path", "id": 2, "color": 2164326144, "width": 8, "points": [[30, 30]]},
    {"op": "stroke", "id": 3, "color": "#000", "width": 2, "points": [[1, 1]]},
    {"op": "delete", "id": 3}
  ]
}`

func TestDecodeDocument(t *testing.T) {
	doc, err := decodeDocument(strings.NewReader(sampleDoc))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Width != 60 || doc.Height != 40 || len(doc.Actions) != 4 {
		t.Fatalf("doc = %+v", doc)
	}
	if got := sketch.Color(doc.Actions[1].Color); got != sketch.RGBA8(0, 255, 0, 0x81) {
		t.Errorf("ARGB color = %v", got)
	}
	if got := sketch.Color(doc.Actions[0].Color); got != sketch.Red {
		t.Errorf("hex color = %v", got)
	}
}

func TestDecodeDocumentErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"bad json", `{"width": `},
		{"unknown field", `{"width": 1, "height": 1, "layers": []}`},
		{"bad color", `{"width": 1, "height": 1, "actions": [{"op": "path", "color": "#xyz"}]}`},
		{"negative color", `{"width": 1, "height": 1, "actions": [{"op": "path", "color": -1}]}`},
		{"empty canvas", `{"width": 0, "height": 10}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := decodeDocument(strings.NewReader(tt.in)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestDocumentApply(t *testing.T) {
	doc, err := decodeDocument(strings.NewReader(sampleDoc))
	if err != nil {
		t.Fatal(err)
	}
	c := sketch.NewCanvas(doc.Width, doc.Height)
	noImages := sketch.ImageLoaderFunc(func(string, string) (image.Image, error) {
		return nil, sketch.ErrImageNotFound
	})
	if err := doc.Apply(c, noImages); err != nil {
		t.Fatal(err)
	}

	if c.Len() != 2 || c.State() != sketch.StateIdle {
		t.Errorf("Len() = %d, State() = %v", c.Len(), c.State())
	}
	committed := c.Surfaces().Committed()
	if got := committed.GetPixel(30, 10); got != sketch.Red {
		t.Errorf("stroke pixel = %v, want red", got)
	}
	if got := committed.RGBAAt(30, 30); got.A != 0x81 {
		t.Errorf("path pixel = %v, want alpha 0x81", got)
	}
	if committed.RGBAAt(1, 1).A != 0 {
		t.Error("deleted stroke should be gone")
	}
}

func TestDocumentApplyErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"duplicate stroke", `{"width": 9, "height": 9, "actions": [
			{"op": "stroke", "id": 1, "color": "#000", "width": 1},
			{"op": "stroke", "id": 1, "color": "#000", "width": 1}]}`, sketch.ErrDuplicateStrokeID},
		{"bad width", `{"width": 9, "height": 9, "actions": [
			{"op": "stroke", "id": 1, "color": "#000", "width": 0}]}`, sketch.ErrInvalidWidth},
		{"unknown op", `{"width": 9, "height": 9, "actions": [{"op": "undo"}]}`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := decodeDocument(strings.NewReader(tt.in))
			if err != nil {
				t.Fatal(err)
			}
			err = doc.Apply(sketch.NewCanvas(doc.Width, doc.Height), fileLoader{root: t.TempDir()})
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("Apply() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestOptionParsing(t *testing.T) {
	if f, _ := resolveFormat("", "out/drawing.JPG"); f != sketch.FormatJPEG {
		t.Errorf("format from .JPG = %v", f)
	}
	if f, _ := resolveFormat("", "-"); f != sketch.FormatPNG {
		t.Errorf("default format = %v", f)
	}
	if _, err := resolveFormat("bmp", "x.png"); err == nil {
		t.Error("resolveFormat(bmp) expected error")
	}

	var opts sketch.ExportOptions
	if err := applyCrop(&opts, "Background"); err != nil || !opts.CropToBackgroundSize {
		t.Errorf("applyCrop(background) = %v, %+v", err, opts)
	}
	if err := applyCrop(&opts, "square"); err == nil {
		t.Error("applyCrop(square) expected error")
	}

	if m, err := parseInterpolation("bicubic"); err != nil || m != sketch.InterpBicubic {
		t.Errorf("parseInterpolation(bicubic) = %v, %v", m, err)
	}
	if _, err := parseInterpolation("lanczos"); err == nil {
		t.Error("parseInterpolation(lanczos) expected error")
	}
}
