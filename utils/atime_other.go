//go:build !linux

package utils

import (
	"os"
	"time"
)

func atime(fi os.FileInfo) time.Time {
	return fi.ModTime()
}
