package raster

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// AddDot adds a filled circle of the given radius centered on p.
func (c *Coverage) AddDot(p vec.Vec2, radius float64) {
	if radius <= 0 || !finite(p) {
		return
	}
	start := vec.Vec2{X: 1, Y: 0}
	c.moveTo(p.Add(start.Mul(radius)))
	c.arc(p, radius, start, -2*math.Pi)
	c.closePath()
}

// AddCapsule adds the outline of a line segment from a to b with round caps,
// i.e. the set of points within distance radius of the segment.
// Consecutive capsules of a polyline therefore also produce round joins.
func (c *Coverage) AddCapsule(a, b vec.Vec2, radius float64) {
	if radius <= 0 {
		return
	}
	// Parts of the segment farther than radius from the rectangle cannot
	// cover any of its pixels; dropping them keeps the vertices within
	// the rasterizer's fixed-point range.
	m := radius + 1
	r := c.rect
	a, b, ok := clipSegment(a, b,
		float64(r.Min.X)-m, float64(r.Min.Y)-m, float64(r.Max.X)+m, float64(r.Max.Y)+m)
	if !ok {
		return
	}
	d := b.Sub(a)
	length := d.Length()
	if length < zeroLengthThreshold {
		c.AddDot(a, radius)
		return
	}
	t := d.Mul(1 / length)         // unit tangent
	n := vec.Vec2{X: -t.Y, Y: t.X} // unit normal (90° CCW)

	// Forward along +N, half turn around b, back along -N, half turn
	// around a. Both arcs sweep in the same direction as AddDot.
	c.moveTo(a.Add(n.Mul(radius)))
	c.lineTo(b.Add(n.Mul(radius)))
	c.arc(b, radius, n, -math.Pi)
	c.lineTo(a.Sub(n.Mul(radius)))
	c.arc(a, radius, n.Mul(-1), -math.Pi)
	c.closePath()
}

// arc appends line segments approximating a circular arc. The pen must be
// at center + startDir*radius; startDir is a unit vector and sweep is the
// signed sweep angle in radians.
func (c *Coverage) arc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64) {
	// For a chord subtending angle θ on a circle of radius r the maximum
	// deviation is r*(1 - cos(θ/2)); solve for the tolerance.
	angleStep := math.Pi / 2
	if radius > c.Tolerance {
		angleStep = 2 * math.Acos(1-c.Tolerance/radius)
	}
	if angleStep <= 0 || math.IsNaN(angleStep) {
		angleStep = math.Pi / 4
	}
	n := int(math.Ceil(math.Abs(sweep) / angleStep))
	n = min(max(n, minArcSegments), maxArcSegments)

	dt := sweep / float64(n)
	for i := 1; i <= n; i++ {
		sin, cos := math.Sincos(float64(i) * dt)
		dir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		c.lineTo(center.Add(dir.Mul(radius)))
	}
}

// clipSegment clips the segment a-b to the box [x0, x1] x [y0, y1] using
// the Liang-Barsky algorithm. Endpoints inside the box are returned
// unchanged. ok is false when the segment misses the box or has a
// non-finite coordinate.
func clipSegment(a, b vec.Vec2, x0, y0, x1, y1 float64) (vec.Vec2, vec.Vec2, bool) {
	if !finite(a) || !finite(b) {
		return a, b, false
	}
	d := b.Sub(a)
	t0, t1 := 0.0, 1.0
	for _, e := range [4]struct{ p, q float64 }{
		{-d.X, a.X - x0},
		{d.X, x1 - a.X},
		{-d.Y, a.Y - y0},
		{d.Y, y1 - a.Y},
	} {
		if e.p == 0 {
			if e.q < 0 {
				return a, b, false
			}
			continue
		}
		t := e.q / e.p
		if e.p < 0 {
			if t > t1 {
				return a, b, false
			}
			t0 = max(t0, t)
		} else {
			if t < t0 {
				return a, b, false
			}
			t1 = min(t1, t)
		}
	}
	ca, cb := a, b
	if t0 > 0 {
		ca = a.Add(d.Mul(t0))
	}
	if t1 < 1 {
		cb = a.Add(d.Mul(t1))
	}
	return ca, cb, true
}

func finite(p vec.Vec2) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

const (
	// minArcSegments keeps tiny dots round enough to be recognisable.
	minArcSegments = 4

	// maxArcSegments bounds the work for huge radii; below about 20000
	// pixels the tolerance is still met.
	maxArcSegments = 1024
)
