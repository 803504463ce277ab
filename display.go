package sketch

import "image"

// Display receives repaint requests from the canvas. Hosts forward them to
// their view system.
type Display interface {
	// Invalidate marks a device rectangle for repaint.
	Invalidate(r image.Rectangle)

	// InvalidateAll marks the whole view for repaint.
	InvalidateAll()
}

// AcceleratedDisplay is a Display that composites through a hardware
// layer. Erase strokes need a software layer to clear alpha correctly, so
// the canvas switches such displays to software rendering the first time
// an erase stroke starts. The switch is one-way.
type AcceleratedDisplay interface {
	Display

	// Accelerated reports whether the display currently renders through
	// a hardware layer.
	Accelerated() bool

	// UseSoftwareRendering switches the display to a software layer.
	UseSoftwareRendering()
}

// nopDisplay discards repaint requests.
type nopDisplay struct{}

func (nopDisplay) Invalidate(image.Rectangle) {}
func (nopDisplay) InvalidateAll()             {}
