package albums

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	zlog "github.com/go-imsto/imresize/log"
)

// observe routes the package logger into memory for the test
func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	orig := zlog.Get()
	zlog.Set(zap.New(core).Sugar())
	t.Cleanup(func() { zlog.Set(orig) })
	return logs
}

func raster(w, h int, alpha uint8) *image.NRGBA {
	m := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.SetNRGBA(x, y, color.NRGBA{uint8(x), uint8(y), 200, alpha})
		}
	}
	return m
}

func jpegData(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, raster(w, h, 255), &jpeg.Options{Quality: 90}))
	return buf.Bytes()
}

func pngData(t *testing.T, w, h int, alpha uint8) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, raster(w, h, alpha)))
	return buf.Bytes()
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(name), 0755))
	require.NoError(t, os.WriteFile(name, data, 0644))
	return name
}

func readConfig(t *testing.T, name string) (image.Config, string) {
	t.Helper()
	f, err := os.Open(name)
	require.NoError(t, err)
	defer f.Close()
	cfg, format, err := image.DecodeConfig(f)
	require.NoError(t, err)
	return cfg, format
}

// rotated90 prepends an EXIF block with orientation 6 to a JPEG stream
func rotated90(data []byte) []byte {
	var ifd bytes.Buffer
	ifd.WriteString("Exif\x00\x00MM")
	for _, v := range []any{uint16(42), uint32(8), uint16(1), uint16(0x0112), uint16(3), uint32(1), uint16(6), uint16(0), uint32(0)} {
		binary.Write(&ifd, binary.BigEndian, v)
	}
	seg := []byte{0xff, 0xe1, 0, 0}
	binary.BigEndian.PutUint16(seg[2:], uint16(ifd.Len()+2))
	out := append([]byte{0xff, 0xd8}, seg...)
	out = append(out, ifd.Bytes()...)
	return append(out, data[2:]...)
}
