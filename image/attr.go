package image

import (
	"fmt"
	"mime"
)

type Dimension uint32
type Size uint32
type Quality uint8

// Attr describes a decoded raster
type Attr struct {
	Width       Dimension   `json:"width"`
	Height      Dimension   `json:"height"`
	Size        Size        `json:"size"`
	Ext         string      `json:"ext,omitempty"`
	Mime        string      `json:"mime,omitempty"`
	Name        string      `json:"name,omitempty"`
	Orientation Orientation `json:"orientation,omitempty"`
}

func (a Attr) String() string {
	return fmt.Sprintf("%dx%d", a.Width, a.Height)
}

// NewAttr ...
func NewAttr(w, h uint) *Attr {
	return &Attr{
		Width:  Dimension(w),
		Height: Dimension(h),
	}
}

// setFormat fills Ext and Mime from a decoder name such as "jpeg"
func (a *Attr) setFormat(format string) {
	ext := "." + format
	if format == "jpeg" {
		ext = ".jpg"
	}
	a.Ext = ext
	a.Mime = mime.TypeByExtension(ext)
	if a.Mime == "" {
		a.Mime = "image/" + format
	}
}
