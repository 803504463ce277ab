// Package raster converts stroke geometry into anti-aliased coverage masks.
//
// Every stroke primitive is a closed polygon wound in the same direction, so
// overlapping primitives added to one Coverage accumulate to their union
// (the vector rasterizer clamps accumulated coverage to 1) instead of
// cancelling out.
package raster

import (
	"image"
	"image/draw"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/vec"
)

// Coverage accumulates stroke primitives for one device rectangle and
// rasterizes them into an 8-bit coverage mask.
//
// The zero value is not usable; call New. Internal buffers grow as needed
// but never shrink. A Coverage is not safe for concurrent use.
type Coverage struct {
	// Tolerance is the maximum chord deviation, in device pixels, used
	// when flattening round caps and joins.
	Tolerance float64

	z    *vector.Rasterizer
	rect image.Rectangle
	mask *image.Alpha
}

// New returns a Coverage with the default flattening tolerance.
func New() *Coverage {
	return &Coverage{
		Tolerance: defaultTolerance,
		z:         vector.NewRasterizer(0, 0),
		mask:      &image.Alpha{},
	}
}

// Reset prepares c for a new set of primitives covering the device
// rectangle r. Geometry outside r is clipped.
func (c *Coverage) Reset(r image.Rectangle) {
	c.rect = r.Canon()
	c.z.Reset(c.rect.Dx(), c.rect.Dy())
	c.z.DrawOp = draw.Src
}

// Rect returns the device rectangle set by the last Reset.
func (c *Coverage) Rect() image.Rectangle {
	return c.rect
}

// Rasterize returns the coverage of all primitives added since the last
// Reset. The mask has its origin at (0, 0); pixel (x, y) of the mask
// corresponds to device pixel Rect().Min + (x, y). The returned mask is
// only valid until the next call to Reset or Rasterize.
func (c *Coverage) Rasterize() *image.Alpha {
	w, h := c.rect.Dx(), c.rect.Dy()
	n := w * h
	if cap(c.mask.Pix) < n {
		c.mask.Pix = make([]uint8, n)
	}
	c.mask.Pix = c.mask.Pix[:n]
	c.mask.Stride = w
	c.mask.Rect = image.Rect(0, 0, w, h)
	if n == 0 {
		return c.mask
	}
	c.z.Draw(c.mask, c.mask.Rect, image.Opaque, image.Point{})
	return c.mask
}

func (c *Coverage) moveTo(p vec.Vec2) {
	x, y := c.local(p)
	c.z.MoveTo(x, y)
}

func (c *Coverage) lineTo(p vec.Vec2) {
	x, y := c.local(p)
	c.z.LineTo(x, y)
}

// local converts p to rasterizer coordinates. Coordinates are clamped to
// maxOverhang pixels beyond the rectangle, which the rasterizer's
// fixed-point arithmetic handles without overflow.
func (c *Coverage) local(p vec.Vec2) (float32, float32) {
	x := clamp(p.X-float64(c.rect.Min.X), -maxOverhang, float64(c.rect.Dx())+maxOverhang)
	y := clamp(p.Y-float64(c.rect.Min.Y), -maxOverhang, float64(c.rect.Dy())+maxOverhang)
	return float32(x), float32(y)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (c *Coverage) closePath() {
	c.z.ClosePath()
}

const (
	// defaultTolerance is the default flattening tolerance in device
	// pixels; 0.1 is below the threshold of visual perception for
	// anti-aliased output.
	defaultTolerance = 0.1

	// zeroLengthThreshold is the minimum length of a segment. Shorter
	// segments are drawn as a dot.
	zeroLengthThreshold = 1e-9

	// maxOverhang bounds how far outside the rectangle a vertex may lie.
	maxOverhang = 1 << 16
)
