package sketch

import "errors"

var (
	// ErrInvalidGeometry is returned when a source image has a non-positive
	// dimension or an export would produce an empty bitmap.
	ErrInvalidGeometry = errors.New("sketch: invalid geometry")

	// ErrDuplicateStrokeID is returned by Canvas.NewStroke when a stroke
	// with the same id is already part of the drawing.
	ErrDuplicateStrokeID = errors.New("sketch: duplicate stroke id")

	// ErrNotDrawing is returned by Canvas.AddPoint when no stroke is active.
	ErrNotDrawing = errors.New("sketch: no active stroke")

	// ErrInvalidWidth is returned for a non-positive stroke width.
	ErrInvalidWidth = errors.New("sketch: stroke width must be positive")

	// ErrImageNotFound is returned by an ImageLoader that cannot resolve a
	// reference image name.
	ErrImageNotFound = errors.New("sketch: image not found")

	// ErrUnknownFormat is returned when parsing an unsupported export format.
	ErrUnknownFormat = errors.New("sketch: unknown image format")
)
