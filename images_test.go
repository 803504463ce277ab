package sketch

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestResourceName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"background.png", "background"},
		{"frame", "frame"},
		{"photo.final.jpg", "photo.final"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ResourceName(tt.in); got != tt.want {
			t.Errorf("ResourceName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLoadReferenceImagesKeepsPrevious(t *testing.T) {
	oldMask := solidImage(2, 2, color.NRGBA{A: 255})
	refs := ReferenceImages{Mask: oldMask, Mode: Center}
	broken := errors.New("corrupt data")

	loader := ImageLoaderFunc(func(name, _ string) (image.Image, error) {
		switch name {
		case "fg":
			return solidImage(3, 3, color.NRGBA{G: 255, A: 255}), nil
		case "empty":
			return image.NewNRGBA(image.Rectangle{}), nil
		default:
			return nil, broken
		}
	})

	n := loadReferenceImages(loader, ReferenceSpec{Foreground: "fg", Background: "empty", Mask: "bad", Mode: "bogus"}, &refs)
	if n != 1 {
		t.Fatalf("loaded %d, want 1", n)
	}
	if refs.Mask != oldMask {
		t.Error("failed load should keep the previous mask")
	}
	if refs.Background != nil {
		t.Error("empty image should not be set")
	}
	if refs.Mode != AspectFit {
		t.Errorf("Mode = %v, want AspectFit for an unknown name", refs.Mode)
	}
}
