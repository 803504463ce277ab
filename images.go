package sketch

import (
	"errors"
	"image"
	"strings"
)

// ReferenceImages are the optional bitmaps composited with the strokes.
// Images are treated as immutable once set.
type ReferenceImages struct {
	// Background is drawn below the strokes.
	Background image.Image

	// Foreground is drawn above the strokes and is never masked.
	Foreground image.Image

	// Mask confines exported strokes to its opaque footprint.
	Mask image.Image

	// Mode places background and foreground on screen. Exports always use
	// AspectFit.
	Mode FitMode
}

// OriginalSize returns the decoded size of the background image, or zeros
// when no background is set.
func (r ReferenceImages) OriginalSize() (width, height int) {
	if r.Background == nil {
		return 0, 0
	}
	b := r.Background.Bounds()
	return b.Dx(), b.Dy()
}

// ImageLoader resolves a reference image by name. dir is an optional
// directory hint and may be empty. Implementations return an error wrapping
// ErrImageNotFound when nothing matches; any error leaves the layer unset.
type ImageLoader interface {
	Load(name, dir string) (image.Image, error)
}

// ImageLoaderFunc adapts a function to the ImageLoader interface.
type ImageLoaderFunc func(name, dir string) (image.Image, error)

// Load calls f(name, dir).
func (f ImageLoaderFunc) Load(name, dir string) (image.Image, error) { return f(name, dir) }

// ReferenceSpec names the reference images to load. Empty names are
// skipped.
type ReferenceSpec struct {
	Background string
	Foreground string
	Mask       string

	// Dir is passed to the loader as a directory hint.
	Dir string

	// Mode is a content mode name accepted by ParseFitMode. Unknown or
	// empty names fall back to AspectFit.
	Mode string
}

// ResourceName strips the extension from a name, the form bundled
// resources are looked up by: "bg.png" becomes "bg". Everything from the
// last '.' on is removed.
func ResourceName(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[:i]
	}
	return name
}

// loadReferenceImages loads every named layer into refs and
// reports how many were loaded. Failures are logged and skipped.
func loadReferenceImages(loader ImageLoader, names ReferenceSpec, refs *ReferenceImages) int {
	mode, err := ParseFitMode(names.Mode)
	if err != nil && names.Mode != "" {
		Logger().Debug("sketch: unknown content mode, using AspectFit", "mode", names.Mode)
	}

	loaded := 0
	for _, l := range []struct {
		name string
		dst  *image.Image
	}{
		{names.Background, &refs.Background},
		{names.Foreground, &refs.Foreground},
		{names.Mask, &refs.Mask},
	} {
		if l.name == "" {
			continue
		}
		img, err := loader.Load(l.name, names.Dir)
		if err != nil {
			if !errors.Is(err, ErrImageNotFound) {
				Logger().Warn("sketch: cannot load reference image", "name", l.name, "err", err)
			}
			continue
		}
		if img == nil || img.Bounds().Empty() {
			Logger().Warn("sketch: empty reference image", "name", l.name)
			continue
		}
		*l.dst = img
		loaded++
	}
	if loaded > 0 {
		refs.Mode = mode
	}
	return loaded
}
