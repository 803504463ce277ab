package sketch

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/sketch/internal/cache"
	intImage "github.com/gogpu/sketch/internal/image"
)

// State is the drawing state of a Canvas.
type State uint8

const (
	// StateIdle means no stroke is active; AddPoint fails.
	StateIdle State = iota

	// StateDrawing means a stroke started by NewStroke is receiving points.
	StateDrawing
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateDrawing:
		return "Drawing"
	default:
		return "Unknown"
	}
}

// canvasState is Idle or Drawing; only drawing carries a stroke.
type canvasState interface {
	state() State
}

type idle struct{}

func (idle) state() State { return StateIdle }

type drawing struct {
	stroke *Stroke
}

func (drawing) state() State { return StateDrawing }

// Path is a complete stroke record used to replay drawings in bulk.
type Path struct {
	ID     int
	Color  Color
	Width  float64
	Points []Point
}

// Canvas is the drawing controller. It owns the stroke collection, routes
// touch input to the surfaces and emits change events.
//
// A Canvas has a single mutator and is not safe for concurrent use.
type Canvas struct {
	strokes []*Stroke
	byID    map[int]*Stroke
	st      canvasState

	surfaces *SurfaceSet
	refs     ReferenceImages

	// layers holds reference images scaled for Frame.
	layers *cache.Cache[layerKey, *image.RGBA]

	display       Display
	notifier      Notifier
	interpolation InterpolationMode

	// softwareRendering is set once the display was switched away from
	// hardware compositing.
	softwareRendering bool
}

// NewCanvas creates a canvas of the given pixel size.
func NewCanvas(width, height int, opts ...CanvasOption) *Canvas {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Canvas{
		byID:          make(map[int]*Stroke),
		st:            idle{},
		surfaces:      NewSurfaceSet(width, height, o.display),
		layers:        cache.New[layerKey, *image.RGBA](layerCacheSize),
		display:       o.display,
		notifier:      o.notifier,
		interpolation: o.interpolation,
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.surfaces.Width() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.surfaces.Height() }

// Surfaces returns the canvas raster tiers.
func (c *Canvas) Surfaces() *SurfaceSet { return c.surfaces }

// State returns the current drawing state.
func (c *Canvas) State() State { return c.st.state() }

// ActiveStroke returns the stroke receiving points, if any.
func (c *Canvas) ActiveStroke() (*Stroke, bool) {
	if d, ok := c.st.(drawing); ok {
		return d.stroke, true
	}
	return nil, false
}

// Strokes returns the strokes in z-order. The slice is a copy; the strokes
// are shared and must not be modified.
func (c *Canvas) Strokes() []*Stroke {
	return append([]*Stroke(nil), c.strokes...)
}

// Len returns the number of strokes.
func (c *Canvas) Len() int { return len(c.strokes) }

// Stroke returns the stroke with the given id.
func (c *Canvas) Stroke(id int) (*Stroke, bool) {
	s, ok := c.byID[id]
	return s, ok
}

// NewStroke starts a stroke and makes it the active one. A stroke that is
// still active is ended first.
func (c *Canvas) NewStroke(id int, col Color, width float64) error {
	if !validWidth(width) {
		return fmt.Errorf("%w: %g", ErrInvalidWidth, width)
	}
	if _, ok := c.byID[id]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateStrokeID, id)
	}
	c.EndStroke()

	s := NewStroke(id, col, width)
	c.append(s)
	c.surfaces.BeginStroke(s)
	if s.IsErase() {
		c.useSoftwareRendering()
	}
	c.st = drawing{stroke: s}
	c.notify(PathsUpdate(len(c.strokes)))
	return nil
}

// AddPoint appends a point to the active stroke, renders the new segment
// and invalidates its dirty rectangle.
func (c *Canvas) AddPoint(x, y float64) error {
	d, ok := c.st.(drawing)
	if !ok {
		return ErrNotDrawing
	}
	d.stroke.AddPoint(Pt(x, y))
	c.surfaces.Extend(d.stroke)
	return nil
}

// EndStroke finalizes the active stroke. It does nothing when idle.
func (c *Canvas) EndStroke() {
	d, ok := c.st.(drawing)
	if !ok {
		return
	}
	c.surfaces.EndStroke(d.stroke)
	c.st = idle{}
}

// AddPath appends a complete stroke and draws it immediately. It does not
// become the active stroke. AddPath reports false, leaving the canvas
// unchanged, when the id is already present or the width is not positive.
func (c *Canvas) AddPath(id int, col Color, width float64, points []Point) bool {
	s, ok := c.newPath(Path{ID: id, Color: col, Width: width, Points: points})
	if !ok {
		return false
	}
	c.surfaces.Commit(s)
	c.surfaces.Invalidate(s.Bounds())
	c.notify(PathsUpdate(len(c.strokes)))
	return true
}

// AddPaths appends a batch of complete strokes with a single redraw and
// a single event. Entries rejected by AddPath's rules are skipped. It
// returns the number of strokes added.
func (c *Canvas) AddPaths(paths ...Path) int {
	added := 0
	for _, p := range paths {
		if _, ok := c.newPath(p); ok {
			added++
		}
	}
	if added == 0 {
		return 0
	}
	c.surfaces.FullRedraw(c.strokes)
	c.notify(PathsUpdate(len(c.strokes)))
	return added
}

func validWidth(w float64) bool {
	return w > 0 && !math.IsInf(w, 1)
}

func (c *Canvas) newPath(p Path) (*Stroke, bool) {
	if _, ok := c.byID[p.ID]; ok {
		Logger().Debug("sketch: path already present, ignoring", "id", p.ID)
		return nil, false
	}
	if !validWidth(p.Width) {
		Logger().Warn("sketch: ignoring path with invalid width", "id", p.ID, "width", p.Width)
		return nil, false
	}
	s := NewStrokeWithPoints(p.ID, p.Color, p.Width, p.Points)
	c.append(s)
	if s.IsErase() {
		c.useSoftwareRendering()
	}
	return s, true
}

// DeletePath removes the stroke with the given id and redraws. Deleting
// the active stroke returns the canvas to idle. It reports whether a stroke
// was removed.
func (c *Canvas) DeletePath(id int) bool {
	s, ok := c.byID[id]
	if !ok {
		return false
	}
	if d, ok := c.st.(drawing); ok && d.stroke == s {
		c.surfaces.CancelPreview()
		c.st = idle{}
	}
	delete(c.byID, id)
	for i, v := range c.strokes {
		if v == s {
			c.strokes = append(c.strokes[:i], c.strokes[i+1:]...)
			break
		}
	}
	c.surfaces.FullRedraw(c.strokes)
	c.notify(PathsUpdate(len(c.strokes)))
	return true
}

// Clear removes every stroke and drops the active one.
func (c *Canvas) Clear() {
	c.strokes = nil
	clear(c.byID)
	c.surfaces.CancelPreview()
	c.st = idle{}
	c.surfaces.FullRedraw(nil)
	c.notify(PathsUpdate(0))
}

// Resize reallocates the surfaces and replays all strokes. Non-positive
// sizes are rejected and leave the canvas unchanged.
func (c *Canvas) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: canvas size %dx%d", ErrInvalidGeometry, width, height)
	}
	if c.surfaces.Resize(width, height) {
		c.surfaces.FullRedraw(c.strokes)
	}
	return nil
}

// References returns the reference images.
func (c *Canvas) References() ReferenceImages { return c.refs }

// SetReferenceImages replaces all reference images.
func (c *Canvas) SetReferenceImages(refs ReferenceImages) {
	c.refs = refs
	c.layers.Clear()
	c.surfaces.InvalidateAll()
	c.notify(PathsUpdate(len(c.strokes)))
}

// LoadReferenceImages resolves the named images through loader.
// Layers that cannot be loaded keep their previous value. It returns the
// number of layers loaded.
func (c *Canvas) LoadReferenceImages(loader ImageLoader, names ReferenceSpec) int {
	n := loadReferenceImages(loader, names, &c.refs)
	if n > 0 {
		c.layers.Clear()
		c.surfaces.InvalidateAll()
		c.notify(PathsUpdate(len(c.strokes)))
	}
	return n
}

// Export composes the current drawing into a new bitmap.
func (c *Canvas) Export(opts ExportOptions) (*Pixmap, error) {
	c.sync()
	return Export(ExportSource{
		Strokes:       c.surfaces.Committed(),
		References:    c.refs,
		Interpolation: c.interpolation,
	}, opts)
}

// Save exports the drawing and hands it to sink. The outcome is reported
// as an EventSaveResult; failures are also returned and leave the canvas
// untouched.
func (c *Canvas) Save(sink Sink, opts ExportOptions) (string, error) {
	img, err := c.Export(opts)
	if err != nil {
		c.notify(SaveResult(false, ""))
		return "", fmt.Errorf("sketch: export: %w", err)
	}
	path, err := sink.Persist(img, opts.Format)
	if err != nil {
		c.notify(SaveResult(false, ""))
		return "", fmt.Errorf("sketch: persist: %w", err)
	}
	c.notify(SaveResult(true, path))
	return path, nil
}

// Frame returns the on-screen composite: background, committed strokes,
// the translucent preview and foreground, placed with the reference
// content mode.
func (c *Canvas) Frame() *Pixmap {
	c.sync()
	out := NewPixmap(c.Width(), c.Height())
	dst := out.Image()
	c.drawReference(dst, layerBackground, c.refs.Background)
	c.surfaces.DrawTo(dst)
	c.drawReference(dst, layerForeground, c.refs.Foreground)
	return out
}

// layerKey identifies a reference image scaled to a frame size.
type layerKey struct {
	layer uint8
	size  image.Point
	mode  FitMode
}

const (
	layerBackground uint8 = iota
	layerForeground

	// layerCacheSize covers both layers at the current and previous size.
	layerCacheSize = 4
)

func (c *Canvas) drawReference(dst *image.RGBA, layer uint8, img image.Image) {
	if img == nil {
		return
	}
	key := layerKey{layer: layer, size: dst.Rect.Size(), mode: c.refs.Mode}
	scaled := c.layers.GetOrCreate(key, func() *image.RGBA {
		l := image.NewRGBA(dst.Rect)
		b := img.Bounds()
		r, err := FitRect(b.Dx(), b.Dy(), dst.Rect.Dx(), dst.Rect.Dy(), c.refs.Mode)
		if err != nil {
			Logger().Warn("sketch: skipping reference image", "err", err)
			return l
		}
		intImage.DrawScaled(l, r, img, c.interpolation, nil)
		return l
	})
	intImage.Copy(dst, image.Point{}, scaled, nil)
}

// sync replays strokes when the committed surface is stale.
func (c *Canvas) sync() {
	if c.surfaces.NeedsFullRedraw() {
		c.surfaces.FullRedraw(c.strokes)
	}
}

func (c *Canvas) append(s *Stroke) {
	c.strokes = append(c.strokes, s)
	c.byID[s.ID()] = s
}

func (c *Canvas) useSoftwareRendering() {
	if c.softwareRendering {
		return
	}
	ad, ok := c.display.(AcceleratedDisplay)
	if !ok || !ad.Accelerated() {
		return
	}
	c.softwareRendering = true
	ad.UseSoftwareRendering()
	Logger().Info("sketch: erase stroke, switching display to software rendering")
}

func (c *Canvas) notify(e Event) {
	c.notifier.Notify(e)
}
