package sketch

import (
	"fmt"
	"image"

	intImage "github.com/gogpu/sketch/internal/image"
)

// ExportOptions controls how Export composes the output bitmap.
type ExportOptions struct {
	// Format selects the target encoding. JPEG output is always composed
	// on opaque white.
	Format Format

	// TransparentBackground leaves the background transparent instead of
	// opaque white. PNG only.
	TransparentBackground bool

	// IncludeReferenceImages draws the background and foreground images.
	// The mask applies regardless.
	IncludeReferenceImages bool

	// CropToCanvasSize sizes the output to the background's original
	// dimensions when a background is loaded and scales the stroke layer
	// onto it with AspectFill.
	CropToCanvasSize bool

	// CropToBackgroundSize crops the output to the background's AspectFit
	// rectangle. Takes precedence over CropToForegroundSize.
	CropToBackgroundSize bool

	// CropToForegroundSize crops the output to the foreground's AspectFit
	// rectangle.
	CropToForegroundSize bool
}

// ExportSource is the layer data Export composes.
type ExportSource struct {
	// Strokes is the committed stroke surface. Nil exports no strokes.
	Strokes *Pixmap

	// Width and Height are the canvas size. Zero values default to the
	// size of Strokes.
	Width, Height int

	References ReferenceImages

	// Interpolation is the sampling used when layers are scaled.
	Interpolation InterpolationMode
}

// Export composes strokes and reference images into a new bitmap owned by
// the caller.
//
// Layers are drawn in order: fill, background, mask, strokes (clipped to
// the mask), foreground, then an optional crop. Reference images are placed
// with AspectFit. ErrInvalidGeometry is returned, with no bitmap, when the
// output would be empty.
func Export(src ExportSource, opts ExportOptions) (*Pixmap, error) {
	refs := src.References
	canvasW, canvasH := src.Width, src.Height
	if src.Strokes != nil && canvasW == 0 && canvasH == 0 {
		canvasW, canvasH = src.Strokes.Width(), src.Strokes.Height()
	}

	// 1. Output size.
	w, h := canvasW, canvasH
	if opts.CropToCanvasSize && refs.Background != nil {
		w, h = refs.OriginalSize()
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: export size %dx%d", ErrInvalidGeometry, w, h)
	}
	Logger().Debug("sketch: export", "w", w, "h", h, "format", opts.Format.String())

	out := NewPixmap(w, h)
	dst := out.Image()
	bounds := out.Bounds()

	// 2. Fill.
	if opts.Format == FormatJPEG || !opts.TransparentBackground {
		out.Clear(White)
	}

	// 3. Background.
	if refs.Background != nil && opts.IncludeReferenceImages {
		r, err := fitImage(refs.Background, w, h)
		if err != nil {
			return nil, err
		}
		intImage.DrawScaled(dst, r, refs.Background, src.Interpolation, nil)
	}

	// 4. Mask: drawn, then its alpha clips the stroke layer.
	var clip *image.Alpha
	if refs.Mask != nil {
		r, err := fitImage(refs.Mask, w, h)
		if err != nil {
			return nil, err
		}
		intImage.DrawScaled(dst, r, refs.Mask, src.Interpolation, nil)
		clip = intImage.AlphaPlane(refs.Mask, r, bounds, src.Interpolation)
	}

	// 5. Strokes.
	if src.Strokes != nil && !src.Strokes.Bounds().Empty() {
		layer := src.Strokes.Image()
		if opts.CropToCanvasSize && refs.Background != nil {
			r, err := FitRect(layer.Rect.Dx(), layer.Rect.Dy(), w, h, AspectFill)
			if err != nil {
				return nil, err
			}
			intImage.DrawScaled(dst, r, layer, src.Interpolation, clip)
		} else {
			intImage.Copy(dst, image.Point{}, layer, clip)
		}
	}

	// 6-7. Foreground, drawn without the mask clip so it is never masked.
	if refs.Foreground != nil && opts.IncludeReferenceImages {
		r, err := fitImage(refs.Foreground, w, h)
		if err != nil {
			return nil, err
		}
		intImage.DrawScaled(dst, r, refs.Foreground, src.Interpolation, nil)
	}

	// 8. Crop.
	var crop image.Image
	switch {
	case opts.CropToBackgroundSize && refs.Background != nil:
		crop = refs.Background
	case opts.CropToForegroundSize && refs.Foreground != nil:
		crop = refs.Foreground
	}
	if crop != nil {
		r, err := fitImage(crop, w, h)
		if err != nil {
			return nil, err
		}
		r = r.Intersect(bounds)
		if r.Empty() {
			return nil, fmt.Errorf("%w: empty crop rectangle", ErrInvalidGeometry)
		}
		return pixmapFromRGBA(intImage.Crop(dst, r)), nil
	}
	return out, nil
}

// fitImage returns the AspectFit rectangle of img inside a w x h output.
func fitImage(img image.Image, w, h int) (image.Rectangle, error) {
	b := img.Bounds()
	return FitRect(b.Dx(), b.Dy(), w, h, AspectFit)
}
