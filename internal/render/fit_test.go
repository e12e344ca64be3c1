package render

import (
	"image"
	"image/color"
	"testing"
)

func TestFitPreservesAspect(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 100, 50))
	for y := 0; y < 50; y++ {
		for x := 0; x < 100; x++ {
			src.Set(x, y, color.Black)
		}
	}

	dst := Fit(src, 200, 200)
	if dst.Bounds().Dx() != 200 || dst.Bounds().Dy() != 200 {
		t.Fatalf("expected 200x200, got %v", dst.Bounds())
	}

	// letterboxed: 200x100 image centred vertically
	if r, _, _, _ := dst.At(100, 10).RGBA(); r != 0xffff {
		t.Errorf("expected white border at top, got r=%x", r)
	}
	if r, _, _, _ := dst.At(100, 100).RGBA(); r != 0 {
		t.Errorf("expected black centre, got r=%x", r)
	}
	if r, _, _, _ := dst.At(100, 190).RGBA(); r != 0xffff {
		t.Errorf("expected white border at bottom, got r=%x", r)
	}
}

func TestFitEmptySource(t *testing.T) {
	dst := Fit(image.NewRGBA(image.Rectangle{}), 10, 10)
	if r, _, _, _ := dst.At(5, 5).RGBA(); r != 0xffff {
		t.Errorf("expected blank white canvas, got r=%x", r)
	}
}
