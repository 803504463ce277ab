package sketch

import (
	"image"
	"math"
	"sync"

	"github.com/gogpu/sketch/internal/blend"
	"github.com/gogpu/sketch/internal/raster"
)

// Stroke is one continuous freehand line: an ordered sequence of points
// drawn with a single color and width.
//
// Points are appended while the stroke is being drawn; once committed a
// stroke is not modified again. Every segment is drawn as a capsule of
// radius Width/2, which gives round caps and joins. A stroke with a single
// point renders as a filled dot.
type Stroke struct {
	id     int
	color  Color
	width  float64
	points []Point
}

// NewStroke creates an empty stroke. width must be positive; a stroke with
// a non-positive width draws nothing.
func NewStroke(id int, c Color, width float64) *Stroke {
	return &Stroke{id: id, color: c, width: width}
}

// NewStrokeWithPoints creates a stroke holding a copy of points.
func NewStrokeWithPoints(id int, c Color, width float64, points []Point) *Stroke {
	s := NewStroke(id, c, width)
	s.points = append([]Point(nil), points...)
	return s
}

// ID returns the caller supplied stroke identifier.
func (s *Stroke) ID() int { return s.id }

// Color returns the stroke color.
func (s *Stroke) Color() Color { return s.color }

// Width returns the stroke width in pixels.
func (s *Stroke) Width() float64 { return s.width }

// Len returns the number of points.
func (s *Stroke) Len() int { return len(s.points) }

// Points returns a copy of the stroke's points.
func (s *Stroke) Points() []Point {
	return append([]Point(nil), s.points...)
}

// IsErase reports whether the stroke erases what is below it.
func (s *Stroke) IsErase() bool { return s.color.IsErase() }

// IsTranslucent reports whether the stroke is partially transparent.
func (s *Stroke) IsTranslucent() bool { return s.color.IsTranslucent() }

// AddPoint appends p and returns the device rectangle touched by the new
// segment: its bounding box expanded by Width/2 + 1 on every side. For the
// first point it is the bounding box of the dot.
func (s *Stroke) AddPoint(p Point) image.Rectangle {
	s.points = append(s.points, p)
	return s.lastRect()
}

// Bounds returns the device rectangle covering the whole stroke.
func (s *Stroke) Bounds() image.Rectangle {
	if len(s.points) == 0 {
		return image.Rectangle{}
	}
	r := segmentRect(s.points[0], s.points[0], s.width)
	for i := 1; i < len(s.points); i++ {
		r = r.Union(segmentRect(s.points[i-1], s.points[i], s.width))
	}
	return r
}

func (s *Stroke) lastRect() image.Rectangle {
	switch n := len(s.points); n {
	case 0:
		return image.Rectangle{}
	case 1:
		return segmentRect(s.points[0], s.points[0], s.width)
	default:
		return segmentRect(s.points[n-2], s.points[n-1], s.width)
	}
}

// DrawFull rasterizes the whole stroke onto dst.
//
// Opaque and erase strokes are drawn as the starting dot followed by one
// composite per segment, exactly the sequence DrawLastSegment produces
// point by point, so both paths yield identical pixels. Translucent strokes
// are drawn as one union coverage mask so overlapping segments are blended
// once.
func (s *Stroke) DrawFull(dst *Pixmap) {
	if len(s.points) == 0 || !validWidth(s.width) {
		return
	}
	if s.IsTranslucent() {
		s.fill(dst, s.Bounds(), func(c *raster.Coverage) {
			r := s.width / 2
			c.AddDot(s.points[0].vec(), r)
			for i := 1; i < len(s.points); i++ {
				c.AddCapsule(s.points[i-1].vec(), s.points[i].vec(), r)
			}
		})
		return
	}
	s.drawDot(dst)
	for i := 1; i < len(s.points); i++ {
		s.drawSegment(dst, i)
	}
}

// DrawLastSegment rasterizes only the newest segment onto dst, or the dot
// when the stroke has a single point.
func (s *Stroke) DrawLastSegment(dst *Pixmap) {
	if len(s.points) == 0 || !validWidth(s.width) {
		return
	}
	if len(s.points) == 1 {
		s.drawDot(dst)
		return
	}
	s.drawSegment(dst, len(s.points)-1)
}

func (s *Stroke) drawDot(dst *Pixmap) {
	p := s.points[0]
	s.fill(dst, segmentRect(p, p, s.width), func(c *raster.Coverage) {
		c.AddDot(p.vec(), s.width/2)
	})
}

// drawSegment draws the capsule ending at point i.
func (s *Stroke) drawSegment(dst *Pixmap, i int) {
	a, b := s.points[i-1], s.points[i]
	s.fill(dst, segmentRect(a, b, s.width), func(c *raster.Coverage) {
		c.AddCapsule(a.vec(), b.vec(), s.width/2)
	})
}

// fill rasterizes the primitives added by build inside r and composites
// the resulting coverage onto dst.
func (s *Stroke) fill(dst *Pixmap, r image.Rectangle, build func(*raster.Coverage)) {
	r = r.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	cov := coveragePool.Get().(*raster.Coverage)
	defer coveragePool.Put(cov)

	cov.Reset(r)
	build(cov)
	c, mode := s.paint()
	dst.composite(cov.Rasterize(), r.Min, c, mode)
}

// paint returns the source color and operator used to composite s.
// Erase strokes punch out the destination with an opaque source, so the
// coverage alone decides how much alpha is removed.
func (s *Stroke) paint() (Color, blend.BlendMode) {
	if s.IsErase() {
		return Black, blend.BlendDestinationOut
	}
	return s.color, blend.BlendSourceOver
}

var coveragePool = sync.Pool{
	New: func() any { return raster.New() },
}

// segmentRect returns the integer bounds of the capsule from a to b,
// padded by one pixel for anti-aliasing.
func segmentRect(a, b Point, width float64) image.Rectangle {
	pad := width/2 + 1
	return image.Rect(
		pixel(math.Floor(math.Min(a.X, b.X)-pad)),
		pixel(math.Floor(math.Min(a.Y, b.Y)-pad)),
		pixel(math.Ceil(math.Max(a.X, b.X)+pad)),
		pixel(math.Ceil(math.Max(a.Y, b.Y)+pad)),
	)
}

// maxCoord bounds device coordinates so float to int conversions stay
// in range.
const maxCoord = 1 << 30

func pixel(v float64) int {
	switch {
	case math.IsNaN(v):
		return 0
	case v < -maxCoord:
		return -maxCoord
	case v > maxCoord:
		return maxCoord
	}
	return int(v)
}
