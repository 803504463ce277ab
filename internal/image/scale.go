package image

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// DrawScaled composites src over dst, scaling the whole of src into dr.
// dr may extend beyond dst; the overhanging part is cropped. When clip is
// non-nil it acts as a clip mask in dst coordinates: a zero alpha leaves
// the destination pixel untouched.
func DrawScaled(dst draw.Image, dr image.Rectangle, src image.Image, mode InterpolationMode, clip *image.Alpha) {
	if dr.Empty() || src.Bounds().Empty() {
		return
	}
	opts := clipOptions(clip)
	sr := src.Bounds()
	if dr.Size() == sr.Size() {
		xdraw.Copy(dst, dr.Min, src, sr, xdraw.Over, opts)
		return
	}
	mode.Scaler().Scale(dst, dr, src, sr, xdraw.Over, opts)
}

// Copy composites src over dst at dp without scaling, honoring the optional
// clip mask like DrawScaled.
func Copy(dst draw.Image, dp image.Point, src image.Image, clip *image.Alpha) {
	xdraw.Copy(dst, dp, src, src.Bounds(), xdraw.Over, clipOptions(clip))
}

// clipOptions avoids handing a typed nil mask to x/image/draw, which would
// treat it as a present (and empty) mask.
func clipOptions(clip *image.Alpha) *xdraw.Options {
	if clip == nil {
		return nil
	}
	return &xdraw.Options{DstMask: clip}
}

// AlphaPlane renders the alpha channel of src, scaled into dr, onto a
// transparent plane with the given bounds. Pixels outside dr stay zero.
func AlphaPlane(src image.Image, dr, bounds image.Rectangle, mode InterpolationMode) *image.Alpha {
	plane := image.NewAlpha(bounds)
	DrawScaled(plane, dr, src, mode, nil)
	return plane
}

// Crop returns a copy of the part of src inside r. The result has its
// origin at (0, 0).
func Crop(src *image.RGBA, r image.Rectangle) *image.RGBA {
	r = r.Intersect(src.Bounds())
	dst := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(dst, dst.Bounds(), src, r.Min, draw.Src)
	return dst
}
