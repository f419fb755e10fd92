package image

import (
	"bytes"
	"image"
	"image/jpeg"
	"io"
)

const DefaultQuality Quality = 85

// WriteOption controls JPEG output
type WriteOption struct {
	Quality Quality
}

func (wo WriteOption) quality() (int, error) {
	q := int(wo.Quality)
	if q == 0 {
		return int(DefaultQuality), nil
	}
	if q < 1 || q > 100 {
		return 0, ErrQuality
	}
	return q, nil
}

// countWriter counts bytes passed through to w
type countWriter struct {
	w io.Writer
	n int
}

func (cw *countWriter) Write(p []byte) (n int, err error) {
	n, err = cw.w.Write(p)
	cw.n += n
	return
}

// SaveTo flattens m onto white and writes it to w as JPEG, returning the
// number of bytes written.
func SaveTo(w io.Writer, m image.Image, opt WriteOption) (int, error) {
	q, err := opt.quality()
	if err != nil {
		return 0, err
	}
	cw := &countWriter{w: w}
	err = jpeg.Encode(cw, Flatten(m), &jpeg.Options{Quality: q})
	return cw.n, err
}

// EncodeJPEG is SaveTo into a new buffer
func EncodeJPEG(m image.Image, opt WriteOption) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := SaveTo(&buf, m, opt); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
