package base

import (
	"path/filepath"
	"strings"
)

// ImagExt is one of the image file extensions imresize will touch
type ImagExt byte

const (
	EtNone ImagExt = iota
	EtJPEG
	EtPNG
	EtBMP
	EtTIFF
	EtWEBP
)

// Supported reports whether z names a decodable image type
func (z ImagExt) Supported() bool {
	return z != EtNone
}

var exts = map[string]ImagExt{
	"jpg":  EtJPEG,
	"jpeg": EtJPEG,
	"png":  EtPNG,
	"bmp":  EtBMP,
	"tiff": EtTIFF,
	"tif":  EtTIFF,
	"webp": EtWEBP,
}

// ParseExt accepts a bare extension ("JPG"), a dotted one (".tif") or a
// file name, and matches case-insensitively.
func ParseExt(s string) ImagExt {
	if pos := strings.LastIndex(s, "."); pos != -1 {
		s = s[pos+1:]
	}
	if et, ok := exts[strings.ToLower(s)]; ok {
		return et
	}
	return EtNone
}

// IsImageFile reports whether the extension of filename is supported
func IsImageFile(filename string) bool {
	ext := filepath.Ext(filename)
	if ext == "" {
		return false
	}
	return ParseExt(ext).Supported()
}
