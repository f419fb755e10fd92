package image

import (
	"image"
	"io"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
)

// Orientation is the EXIF orientation tag value (1..8)
type Orientation int

const (
	OrientNormal      Orientation = 1
	OrientFlipH       Orientation = 2
	OrientRotate180   Orientation = 3
	OrientFlipV       Orientation = 4
	OrientTranspose   Orientation = 5
	OrientRotate90CW  Orientation = 6
	OrientTransverse  Orientation = 7
	OrientRotate270CW Orientation = 8
)

// ReadOrientation returns the orientation stored in the EXIF block of r.
// Streams without EXIF, or with an unreadable tag, report OrientNormal.
func ReadOrientation(r io.Reader) Orientation {
	x, err := exif.Decode(r)
	if err != nil {
		return OrientNormal
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return OrientNormal
	}
	v, err := tag.Int(0)
	if err != nil || v < 1 || v > 8 {
		return OrientNormal
	}
	return Orientation(v)
}

// ApplyOrientation returns img transformed so that its pixel order matches
// the intended visual orientation.
func ApplyOrientation(img image.Image, o Orientation) image.Image {
	switch o {
	case OrientFlipH:
		return imaging.FlipH(img)
	case OrientRotate180:
		return imaging.Rotate180(img)
	case OrientFlipV:
		return imaging.FlipV(img)
	case OrientTranspose:
		return imaging.Transpose(img)
	case OrientRotate90CW:
		return imaging.Rotate270(img) // imaging rotates counter-clockwise
	case OrientTransverse:
		return imaging.Transverse(img)
	case OrientRotate270CW:
		return imaging.Rotate90(img)
	}
	return img
}
