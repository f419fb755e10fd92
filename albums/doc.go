// Package albums walks a photo album tree and resizes every oversized
// image in place.
//
// Walk drives a Visitor over each candidate file and sums the outcomes
// into Stats. Processor.Process is the Visitor used for real runs: it
// decodes the file, skips it when it already fits, optionally keeps a
// "<stem>_original<ext>" copy, and overwrites the file with a JPEG scaled
// to the configured width. Failures stay local to the file; the walk
// always moves on to the next one.
package albums

import (
	zlog "github.com/go-imsto/imresize/log"
)

func logger() zlog.Logger {
	return zlog.Get()
}
