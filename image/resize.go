package image

import (
	"image"

	"github.com/nfnt/resize"
)

// ScaledHeight returns floor(oh * maxWidth / ow), never less than 1
func ScaledHeight(ow, oh, maxWidth int) int {
	h := int(int64(oh) * int64(maxWidth) / int64(ow))
	if h < 1 {
		h = 1
	}
	return h
}

// ResizeToWidth scales img down to maxWidth keeping its aspect ratio.
// When the image is already within maxWidth it is returned as is and
// changed is false.
func ResizeToWidth(img image.Image, maxWidth int) (m image.Image, changed bool) {
	ob := img.Bounds()
	ow, oh := ob.Dx(), ob.Dy()
	if ow <= maxWidth {
		return img, false
	}
	nh := ScaledHeight(ow, oh, maxWidth)
	return resize.Resize(uint(maxWidth), uint(nh), img, resize.Lanczos3), true
}
