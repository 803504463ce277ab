package sketch

import intImage "github.com/gogpu/sketch/internal/image"

// InterpolationMode defines how reference images and layers are sampled
// when drawn at a different size.
type InterpolationMode = intImage.InterpolationMode

// Interpolation modes.
const (
	InterpNearest  = intImage.InterpNearest
	InterpBilinear = intImage.InterpBilinear
	InterpBicubic  = intImage.InterpBicubic
)

// CanvasOption configures a Canvas during creation.
// Use functional options to customize Canvas behavior.
//
// Example:
//
//	// Headless canvas
//	c := sketch.NewCanvas(800, 600)
//
//	// Canvas wired to a host view and an event queue
//	q := sketch.NewEventQueue(64)
//	c := sketch.NewCanvas(800, 600, sketch.WithDisplay(view), sketch.WithNotifier(q))
type CanvasOption func(*canvasOptions)

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	display       Display
	notifier      Notifier
	interpolation InterpolationMode
}

// defaultOptions returns the default canvas options.
func defaultOptions() canvasOptions {
	return canvasOptions{
		display:       nopDisplay{},
		notifier:      nopNotifier{},
		interpolation: InterpBilinear,
	}
}

// WithDisplay sets the view that receives repaint requests.
// If d also implements AcceleratedDisplay it is switched to software
// rendering on the first erase stroke.
func WithDisplay(d Display) CanvasOption {
	return func(o *canvasOptions) {
		if d != nil {
			o.display = d
		}
	}
}

// WithNotifier sets the receiver of canvas events.
func WithNotifier(n Notifier) CanvasOption {
	return func(o *canvasOptions) {
		if n != nil {
			o.notifier = n
		}
	}
}

// WithInterpolation sets the sampling used when reference images and the
// stroke layer are scaled. Default: InterpBilinear.
func WithInterpolation(m InterpolationMode) CanvasOption {
	return func(o *canvasOptions) {
		o.interpolation = m
	}
}
