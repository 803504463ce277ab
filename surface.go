package sketch

import (
	"image"

	intImage "github.com/gogpu/sketch/internal/image"
)

// SurfaceSet owns the two raster tiers of a canvas.
//
// The committed surface holds every finalized stroke. The transient surface
// previews the translucent stroke currently being drawn: it is redrawn from
// scratch on each new point and flattened into the committed surface when
// the stroke ends. Opaque and erase strokes bypass the transient surface
// and are drawn onto the committed one segment by segment.
//
// A SurfaceSet is not safe for concurrent use.
type SurfaceSet struct {
	committed *Pixmap
	transient *Pixmap

	// preview is the translucent stroke shown on the transient surface.
	preview *Stroke

	needsFullRedraw bool
	display         Display
}

// NewSurfaceSet allocates transparent surfaces of the given size.
// d receives repaint requests; nil discards them.
func NewSurfaceSet(width, height int, d Display) *SurfaceSet {
	if d == nil {
		d = nopDisplay{}
	}
	return &SurfaceSet{
		committed: NewPixmap(width, height),
		transient: NewPixmap(width, height),
		display:   d,
	}
}

// Width returns the surface width in pixels.
func (s *SurfaceSet) Width() int { return s.committed.Width() }

// Height returns the surface height in pixels.
func (s *SurfaceSet) Height() int { return s.committed.Height() }

// Bounds returns the surface rectangle.
func (s *SurfaceSet) Bounds() image.Rectangle { return s.committed.Bounds() }

// Committed returns the surface holding finalized strokes.
func (s *SurfaceSet) Committed() *Pixmap { return s.committed }

// Transient returns the preview surface of the active translucent stroke.
func (s *SurfaceSet) Transient() *Pixmap { return s.transient }

// NeedsFullRedraw reports whether the committed surface is stale and must
// be rebuilt with FullRedraw before it is shown or exported.
func (s *SurfaceSet) NeedsFullRedraw() bool { return s.needsFullRedraw }

// Resize discards both surfaces and allocates new ones when the size
// changes. It reports whether anything changed; the caller must then
// replay its strokes with FullRedraw.
func (s *SurfaceSet) Resize(width, height int) bool {
	if width == s.Width() && height == s.Height() {
		return false
	}
	Logger().Debug("sketch: resize surfaces",
		"from_w", s.Width(), "from_h", s.Height(), "w", width, "h", height)
	s.committed = NewPixmap(width, height)
	s.transient = NewPixmap(width, height)
	s.needsFullRedraw = true
	return true
}

// BeginStroke prepares the surfaces for a new active stroke. Translucent
// strokes start a preview on the cleared transient surface.
func (s *SurfaceSet) BeginStroke(st *Stroke) {
	if !st.IsTranslucent() {
		return
	}
	s.transient.Reset()
	s.preview = st
}

// Extend renders the newest point of the active stroke and returns its
// dirty rectangle clipped to the surface. The rectangle is also forwarded
// to the display.
func (s *SurfaceSet) Extend(st *Stroke) image.Rectangle {
	r := st.lastRect().Intersect(s.Bounds())
	if st == s.preview {
		s.PreviewFrame(st)
	} else {
		st.DrawLastSegment(s.committed)
	}
	s.Invalidate(r)
	return r
}

// EndStroke finalizes the active stroke. A previewed translucent stroke is
// flattened into the committed surface and the transient surface cleared.
func (s *SurfaceSet) EndStroke(st *Stroke) {
	if st != s.preview {
		return
	}
	s.Commit(st)
	s.CancelPreview()
	s.Invalidate(st.Bounds())
}

// CancelPreview drops the transient preview without committing it.
func (s *SurfaceSet) CancelPreview() {
	if s.preview == nil {
		return
	}
	s.transient.Reset()
	s.preview = nil
}

// Commit draws st fully onto the committed surface.
func (s *SurfaceSet) Commit(st *Stroke) {
	st.DrawFull(s.committed)
}

// PreviewFrame redraws the transient surface from the partial stroke st.
// Only the stroke's bounds are cleared: earlier frames of the same stroke
// are contained in them because a stroke only grows.
func (s *SurfaceSet) PreviewFrame(st *Stroke) {
	s.transient.ClearRect(st.Bounds())
	st.DrawFull(s.transient)
}

// FullRedraw clears the committed surface and replays strokes in order.
// The stroke being previewed is skipped there and redrawn on the transient
// surface instead, so it is never blended twice.
func (s *SurfaceSet) FullRedraw(strokes []*Stroke) {
	Logger().Debug("sketch: full redraw", "strokes", len(strokes),
		"w", s.Width(), "h", s.Height())
	s.committed.Reset()
	for _, st := range strokes {
		if st == s.preview {
			continue
		}
		st.DrawFull(s.committed)
	}
	if s.preview != nil {
		s.transient.Reset()
		s.preview.DrawFull(s.transient)
	}
	s.needsFullRedraw = false
	s.display.InvalidateAll()
}

// Invalidate forwards the part of r inside the surface to the display.
func (s *SurfaceSet) Invalidate(r image.Rectangle) {
	r = r.Intersect(s.Bounds())
	if r.Empty() {
		return
	}
	s.display.Invalidate(r)
}

// InvalidateAll requests a repaint of the whole view.
func (s *SurfaceSet) InvalidateAll() {
	s.display.InvalidateAll()
}

// DrawTo composites the committed surface and, while a translucent stroke
// is previewed, the transient surface over dst at the origin.
func (s *SurfaceSet) DrawTo(dst *image.RGBA) {
	intImage.Copy(dst, image.Point{}, s.committed.Image(), nil)
	if s.preview != nil {
		intImage.Copy(dst, image.Point{}, s.transient.Image(), nil)
	}
}

// Frame returns the on-screen composite of both tiers.
func (s *SurfaceSet) Frame() *Pixmap {
	out := NewPixmap(s.Width(), s.Height())
	s.DrawTo(out.Image())
	return out
}
