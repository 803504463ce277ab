package image

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

func TestDrawScaled(t *testing.T) {
	for _, mode := range []InterpolationMode{InterpNearest, InterpBilinear, InterpBicubic} {
		t.Run(mode.String(), func(t *testing.T) {
			dst := image.NewRGBA(image.Rect(0, 0, 20, 20))
			src := solid(5, 5, color.RGBA{255, 0, 0, 255})
			DrawScaled(dst, image.Rect(5, 5, 15, 15), src, mode, nil)

			if got := dst.RGBAAt(10, 10); got != (color.RGBA{255, 0, 0, 255}) {
				t.Errorf("inside = %v, want opaque red", got)
			}
			if got := dst.RGBAAt(2, 2); got.A != 0 {
				t.Errorf("outside = %v, want transparent", got)
			}
		})
	}
}

func TestDrawScaledSameSizeCopies(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	src := solid(4, 4, color.RGBA{0, 0, 255, 255})
	DrawScaled(dst, image.Rect(3, 3, 7, 7), src, InterpBilinear, nil)

	if got := dst.RGBAAt(3, 3); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("top-left = %v, want opaque blue", got)
	}
	if got := dst.RGBAAt(7, 7); got.A != 0 {
		t.Errorf("past bottom-right = %v, want transparent", got)
	}
}

func TestDrawScaledOverhang(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	src := solid(4, 4, color.RGBA{0, 255, 0, 255})
	// twice as wide as dst, centered
	DrawScaled(dst, image.Rect(-5, 0, 15, 10), src, InterpNearest, nil)

	for _, x := range []int{0, 9} {
		if got := dst.RGBAAt(x, 5); got != (color.RGBA{0, 255, 0, 255}) {
			t.Errorf("pixel (%d, 5) = %v, want opaque green", x, got)
		}
	}
}

func TestDrawScaledClip(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	clip := image.NewAlpha(dst.Bounds())
	draw.Draw(clip, image.Rect(0, 0, 5, 10), image.Opaque, image.Point{}, draw.Src)

	src := solid(10, 10, color.RGBA{255, 255, 255, 255})
	DrawScaled(dst, dst.Bounds(), src, InterpBilinear, clip)

	if got := dst.RGBAAt(2, 5); got.A != 255 {
		t.Errorf("inside clip alpha = %d, want 255", got.A)
	}
	if got := dst.RGBAAt(7, 5); got.A != 0 {
		t.Errorf("outside clip alpha = %d, want 0", got.A)
	}
}

func TestCopyClip(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	clip := image.NewAlpha(dst.Bounds())
	clip.SetAlpha(1, 1, color.Alpha{A: 255})

	Copy(dst, image.Point{}, solid(4, 4, color.RGBA{9, 9, 9, 255}), clip)

	if got := dst.RGBAAt(1, 1); got.A != 255 {
		t.Errorf("clipped-in pixel alpha = %d, want 255", got.A)
	}
	if got := dst.RGBAAt(2, 2); got.A != 0 {
		t.Errorf("clipped-out pixel alpha = %d, want 0", got.A)
	}
}

func TestAlphaPlane(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			src.SetNRGBA(x, y, color.NRGBA{10, 20, 30, 255})
		}
	}
	plane := AlphaPlane(src, image.Rect(2, 2, 6, 6), image.Rect(0, 0, 8, 8), InterpNearest)

	if got := plane.AlphaAt(3, 3).A; got != 255 {
		t.Errorf("alpha inside = %d, want 255", got)
	}
	if got := plane.AlphaAt(0, 0).A; got != 0 {
		t.Errorf("alpha outside = %d, want 0", got)
	}
}

func TestCrop(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 10, 10))
	src.SetRGBA(4, 5, color.RGBA{1, 2, 3, 255})

	got := Crop(src, image.Rect(3, 3, 8, 8))
	if got.Bounds() != image.Rect(0, 0, 5, 5) {
		t.Fatalf("bounds = %v, want (0,0)-(5,5)", got.Bounds())
	}
	if c := got.RGBAAt(1, 2); c != (color.RGBA{1, 2, 3, 255}) {
		t.Errorf("moved pixel = %v, want {1 2 3 255}", c)
	}
}

func TestInterpolationModeString(t *testing.T) {
	if s := InterpolationMode(42).String(); s != "Unknown" {
		t.Errorf("String() = %q, want Unknown", s)
	}
}
