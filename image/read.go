package image

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Open decodes r and returns the upright raster with its attributes.
// The EXIF orientation, if any, is already applied, so Attr holds the
// visual width and height.
func Open(r io.ReadSeeker) (image.Image, *Attr, error) {
	size, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, nil, fmt.Errorf("seek: %w", err)
	}
	if _, err = r.Seek(0, io.SeekStart); err != nil {
		return nil, nil, fmt.Errorf("seek: %w", err)
	}
	orient := ReadOrientation(r)
	if _, err = r.Seek(0, io.SeekStart); err != nil {
		return nil, nil, fmt.Errorf("seek: %w", err)
	}

	m, format, err := image.Decode(bufio.NewReader(r))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, nil, ErrorFormat
		}
		return nil, nil, fmt.Errorf("decode: %w", err)
	}
	if b := m.Bounds(); b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, nil, ErrEmptyImage
	}

	m = ApplyOrientation(m, orient)
	b := m.Bounds()
	ia := NewAttr(uint(b.Dx()), uint(b.Dy()))
	ia.Size = Size(size)
	ia.Orientation = orient
	ia.setFormat(format)

	return m, ia, nil
}

// OpenFile is Open on the named file
func OpenFile(filename string) (image.Image, *Attr, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	m, ia, err := Open(f)
	if err != nil {
		return nil, nil, err
	}
	ia.Name = f.Name()
	return m, ia, nil
}
