// Package sketch provides a freehand-drawing raster engine for Go.
//
// # Overview
//
// sketch accumulates user-drawn strokes as ordered point sequences,
// rasterizes them incrementally onto a persistent pixel surface and
// composites the result with optional background, foreground and mask
// reference images into an exported bitmap.
//
// # Quick Start
//
//	import "github.com/gogpu/sketch"
//
//	c := sketch.NewCanvas(800, 600)
//
//	// One stroke per touch sequence
//	_ = c.NewStroke(1, sketch.Hex("#ff0000"), 6)
//	_ = c.AddPoint(10, 10)
//	_ = c.AddPoint(120, 80)
//	c.EndStroke()
//
//	// Export and encode
//	img, err := c.Export(sketch.ExportOptions{Format: sketch.FormatPNG, TransparentBackground: true})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = sketch.Encode(w, img, sketch.FormatPNG)
//
// # Rendering tiers
//
// Finalized strokes live on the committed surface. While a translucent
// stroke (0 < alpha < 255) is being drawn it is previewed on a separate
// transient surface, redrawn from scratch on every new point so that
// overlapping segments never blend twice, and flattened into the committed
// surface once the stroke ends. Opaque and erase strokes are drawn straight
// onto the committed surface one segment at a time.
//
// Every new point reports a dirty rectangle to the Display so hosts only
// repaint the region that changed.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Concurrency
//
// A Canvas has a single mutator and performs no locking. Hosts that read
// surfaces from another goroutine while strokes are extended must serialize
// access themselves. Export is blocking and CPU bound; offload it if needed.
package sketch

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
