package sketch

import (
	"fmt"
	"image"
	"math"
	"strings"
)

// FitMode selects how a source image is placed inside a destination
// rectangle.
type FitMode uint8

const (
	// AspectFit scales uniformly so the whole source is visible, centered.
	AspectFit FitMode = iota

	// AspectFill scales uniformly so the destination is fully covered,
	// centered; the overflow extends beyond the destination.
	AspectFill

	// ScaleToFill stretches the source to the destination exactly.
	ScaleToFill

	// Center keeps the source size and centers it.
	Center
)

// String returns the canonical name of m.
func (m FitMode) String() string {
	switch m {
	case AspectFit:
		return "AspectFit"
	case AspectFill:
		return "AspectFill"
	case ScaleToFill:
		return "ScaleToFill"
	case Center:
		return "Center"
	default:
		return "Unknown"
	}
}

// ParseFitMode parses a content mode name, case insensitively. Besides the
// canonical names it accepts "contain", "cover", "stretch" and "fill".
func ParseFitMode(s string) (FitMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "aspectfit", "contain":
		return AspectFit, nil
	case "aspectfill", "cover":
		return AspectFill, nil
	case "scaletofill", "stretch", "fill":
		return ScaleToFill, nil
	case "center":
		return Center, nil
	}
	return AspectFit, fmt.Errorf("sketch: unknown content mode %q", s)
}

// fitEpsilon absorbs float error before rounding outward so that exact
// integer edges do not grow by a pixel.
const fitEpsilon = 1e-9

// FitRect computes where a srcW x srcH image lands inside a dstW x dstH
// destination anchored at the origin. The result is rounded outward to
// integer pixel bounds and may extend beyond the destination for
// AspectFill and Center.
//
// A non-positive source dimension yields ErrInvalidGeometry. A non-positive
// destination dimension yields an empty rectangle.
func FitRect(srcW, srcH, dstW, dstH int, mode FitMode) (image.Rectangle, error) {
	if srcW <= 0 || srcH <= 0 {
		return image.Rectangle{}, fmt.Errorf("%w: source size %dx%d", ErrInvalidGeometry, srcW, srcH)
	}
	if dstW <= 0 || dstH <= 0 {
		return image.Rectangle{}, nil
	}

	sw, sh := float64(srcW), float64(srcH)
	dw, dh := float64(dstW), float64(dstH)

	var w, h float64
	switch mode {
	case ScaleToFill:
		return image.Rect(0, 0, dstW, dstH), nil
	case AspectFill:
		s := math.Max(dw/sw, dh/sh)
		w, h = sw*s, sh*s
	case Center:
		w, h = sw, sh
	default:
		s := math.Min(dw/sw, dh/sh)
		w, h = sw*s, sh*s
	}

	left := (dw - w) / 2
	top := (dh - h) / 2
	return image.Rect(
		int(math.Floor(left+fitEpsilon)),
		int(math.Floor(top+fitEpsilon)),
		int(math.Ceil(left+w-fitEpsilon)),
		int(math.Ceil(top+h-fitEpsilon)),
	), nil
}
