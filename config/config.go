// Package config holds the run configuration of imresize
package config

import (
	"errors"
	"fmt"
)

// Version is overridden at link time
var Version = "dev"

const (
	DefaultQuality   = 85
	DefaultAlbumsDir = "albums"
)

var (
	ErrMaxWidth = errors.New("max_width must be a positive integer")
	ErrQuality  = errors.New("quality must be between 1 and 100")
)

// Config is built once from the command line and not changed afterwards
type Config struct {
	MaxWidth  int
	Quality   int
	AlbumsDir string
	Backup    bool
	DryRun    bool
	Verbose   bool
}

// Default returns a Config with the documented flag defaults
func Default() Config {
	return Config{
		Quality:   DefaultQuality,
		AlbumsDir: DefaultAlbumsDir,
	}
}

// Validate checks max width first, then quality
func (c Config) Validate() error {
	if c.MaxWidth <= 0 {
		return ErrMaxWidth
	}
	if c.Quality < 1 || c.Quality > 100 {
		return ErrQuality
	}
	return nil
}

func (c Config) String() string {
	return fmt.Sprintf("dir=%s width=%d quality=%d backup=%v dry=%v",
		c.AlbumsDir, c.MaxWidth, c.Quality, c.Backup, c.DryRun)
}
