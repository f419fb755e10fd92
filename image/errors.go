package image

import (
	"errors"
)

var (
	ErrorFormat   = errors.New("invalid or unsupported image format")
	ErrQuality    = errors.New("quality must be between 1 and 100")
	ErrEmptyImage = errors.New("empty image")
)
