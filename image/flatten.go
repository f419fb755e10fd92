package image

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

type opaquer interface {
	Opaque() bool
}

// HasAlpha reports whether img carries transparency that JPEG cannot keep.
// Paletted images always count since their palette may hold alpha entries.
func HasAlpha(img image.Image) bool {
	if _, ok := img.(*image.Paletted); ok {
		return true
	}
	if o, ok := img.(opaquer); ok {
		return !o.Opaque()
	}
	switch img.ColorModel() {
	case color.GrayModel, color.Gray16Model, color.YCbCrModel, color.CMYKModel:
		return false
	}
	return true
}

// Flatten composites img over an opaque white background. Images without
// alpha are returned unchanged.
func Flatten(img image.Image) image.Image {
	if !HasAlpha(img) {
		return img
	}
	b := img.Bounds()
	src := img
	if _, ok := img.(*image.Paletted); ok {
		src = imaging.Clone(img)
	}
	bg := imaging.New(b.Dx(), b.Dy(), color.White)
	return imaging.Overlay(bg, src, image.Pt(0, 0), 1.0)
}
