package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/gogpu/sketch"
)

// document is a recorded drawing.
type document struct {
	Width      int        `json:"width"`
	Height     int        `json:"height"`
	References references `json:"references"`
	Actions    []action   `json:"actions"`
}

type references struct {
	Background string `json:"background"`
	Foreground string `json:"foreground"`
	Mask       string `json:"mask"`
	Dir        string `json:"dir"`
	Mode       string `json:"mode"`
}

// action is one drawing operation. Op is "stroke" (interactive drawing),
// "path" (bulk replay), "delete" or "clear".
type action struct {
	Op     string       `json:"op"`
	ID     int          `json:"id"`
	Color  colorValue   `json:"color"`
	Width  float64      `json:"width"`
	Points [][2]float64 `json:"points"`
}

// colorValue decodes a hex string or a packed 0xAARRGGBB number.
type colorValue sketch.Color

func (c *colorValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v, err := sketch.ParseHex(s)
		if err != nil {
			return err
		}
		*c = colorValue(v)
		return nil
	}
	var n uint32
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("color must be a hex string or a 32-bit ARGB integer: %w", err)
	}
	*c = colorValue(sketch.ColorFromARGB(n))
	return nil
}

func readDocument(path string) (*document, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
		if err != nil {
			return nil, err
		}
		defer func() {
			_ = f.Close()
		}()
		r = f
	}
	return decodeDocument(r)
}

func decodeDocument(r io.Reader) (*document, error) {
	var doc document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	if doc.Width <= 0 || doc.Height <= 0 {
		return nil, fmt.Errorf("%w: canvas size %dx%d", sketch.ErrInvalidGeometry, doc.Width, doc.Height)
	}
	return &doc, nil
}

// Apply loads the reference images and replays every action on c.
func (d *document) Apply(c *sketch.Canvas, loader sketch.ImageLoader) error {
	c.LoadReferenceImages(loader, sketch.ReferenceSpec{
		Background: d.References.Background,
		Foreground: d.References.Foreground,
		Mask:       d.References.Mask,
		Dir:        d.References.Dir,
		Mode:       d.References.Mode,
	})

	for i, a := range d.Actions {
		if err := a.apply(c); err != nil {
			return fmt.Errorf("action %d (%s): %w", i, a.Op, err)
		}
	}
	c.EndStroke()
	return nil
}

func (a action) apply(c *sketch.Canvas) error {
	switch a.Op {
	case "stroke":
		if err := c.NewStroke(a.ID, sketch.Color(a.Color), a.Width); err != nil {
			return err
		}
		for _, p := range a.Points {
			if err := c.AddPoint(p[0], p[1]); err != nil {
				return err
			}
		}
		c.EndStroke()
	case "path":
		if !c.AddPath(a.ID, sketch.Color(a.Color), a.Width, a.points()) {
			sketch.Logger().Warn("path skipped", "id", a.ID)
		}
	case "delete":
		if !c.DeletePath(a.ID) {
			sketch.Logger().Warn("no such path", "id", a.ID)
		}
	case "clear":
		c.Clear()
	default:
		return fmt.Errorf("unknown op %q", a.Op)
	}
	return nil
}

func (a action) points() []sketch.Point {
	pts := make([]sketch.Point, len(a.Points))
	for i, p := range a.Points {
		pts[i] = sketch.Pt(p[0], p[1])
	}
	return pts
}
