package render

import (
	"image"

	"golang.org/x/image/draw"
)

// Fit scales src into a w×h canvas, preserving its aspect ratio and
// centring it on a white background.
func Fit(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)

	sb := src.Bounds()
	if sb.Empty() || w <= 0 || h <= 0 {
		return dst
	}

	scale := float64(w) / float64(sb.Dx())
	if s := float64(h) / float64(sb.Dy()); s < scale {
		scale = s
	}
	fw, fh := int(float64(sb.Dx())*scale), int(float64(sb.Dy())*scale)
	off := image.Pt((w-fw)/2, (h-fh)/2)

	draw.CatmullRom.Scale(dst, image.Rectangle{Min: off, Max: off.Add(image.Pt(fw, fh))}, src, sb, draw.Over, nil)
	return dst
}
