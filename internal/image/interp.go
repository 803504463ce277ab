// Package image draws reference images and raster layers into destination
// rectangles for sketch.
package image

import (
	xdraw "golang.org/x/image/draw"
)

// InterpolationMode defines how source pixels are sampled when an image is
// drawn at a different size.
type InterpolationMode uint8

const (
	// InterpNearest selects the closest pixel (no interpolation).
	// Fast but produces blocky results when scaling.
	InterpNearest InterpolationMode = iota

	// InterpBilinear performs linear interpolation between 4 neighboring pixels.
	// Good balance between quality and performance.
	InterpBilinear

	// InterpBicubic performs Catmull-Rom cubic interpolation.
	// Highest quality but slower than bilinear.
	InterpBicubic
)

// String returns a string representation of the interpolation mode.
func (m InterpolationMode) String() string {
	switch m {
	case InterpNearest:
		return "Nearest"
	case InterpBilinear:
		return "Bilinear"
	case InterpBicubic:
		return "Bicubic"
	default:
		return "Unknown"
	}
}

// Scaler returns the x/image/draw scaler implementing m. Unknown modes
// fall back to bilinear.
func (m InterpolationMode) Scaler() xdraw.Scaler {
	switch m {
	case InterpNearest:
		return xdraw.NearestNeighbor
	case InterpBicubic:
		return xdraw.CatmullRom
	default:
		return xdraw.BiLinear
	}
}
