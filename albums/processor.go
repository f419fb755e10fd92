package albums

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"

	cimg "github.com/go-imsto/imresize/image"
	"github.com/go-imsto/imresize/utils"
)

// Option configures a Processor
type Option func(*Processor)

func WithMaxWidth(w int) Option {
	return func(p *Processor) {
		p.maxWidth = w
	}
}

func WithQuality(q int) Option {
	return func(p *Processor) {
		p.quality = q
	}
}

// WithBackup keeps a copy of each file before it is first rewritten
func WithBackup(on bool) Option {
	return func(p *Processor) {
		p.backup = on
	}
}

// Processor resizes single files in place
type Processor struct {
	maxWidth int
	quality  int
	backup   bool
}

// NewProcessor ...
func NewProcessor(opts ...Option) (*Processor, error) {
	p := &Processor{quality: int(cimg.DefaultQuality)}
	for _, opt := range opts {
		opt(p)
	}
	if p.maxWidth <= 0 {
		return nil, fmt.Errorf("invalid max width %d", p.maxWidth)
	}
	if p.quality < 1 || p.quality > 100 {
		return nil, cimg.ErrQuality
	}
	return p, nil
}

// Process resizes the file at path when it is wider than the limit.
// It never returns an error; failures come back as a Failed result.
func (p *Processor) Process(path string) Result {
	m, ia, err := cimg.OpenFile(path)
	if err != nil {
		return p.fail(path, err)
	}
	before := image.Pt(int(ia.Width), int(ia.Height))

	resized, changed := cimg.ResizeToWidth(m, p.maxWidth)
	if !changed {
		logger().Infof("Skipping %s - already smaller than %dpx", path, p.maxWidth)
		return Result{Path: path, Kind: Skipped, Before: before, After: before}
	}

	if p.backup {
		p.keepOriginal(path)
	}

	data, err := cimg.EncodeJPEG(resized, cimg.WriteOption{Quality: cimg.Quality(p.quality)})
	if err != nil {
		return p.fail(path, err)
	}
	if err = utils.OverwriteFile(path, data); err != nil {
		return p.fail(path, err)
	}

	after := resized.Bounds().Size()
	logger().Infof("Resized %s: %s -> %dx%d", path, ia, after.X, after.Y)
	return Result{Path: path, Kind: Processed, Before: before, After: after}
}

func (p *Processor) fail(path string, err error) Result {
	logger().Errorf("Error processing %s: %s", path, err)
	return Result{Path: path, Kind: Failed, Err: err}
}

// keepOriginal copies path to its backup sibling unless one already exists.
// A failed copy is logged and does not stop the resize.
func (p *Processor) keepOriginal(path string) {
	bak := utils.BackupName(path)
	_, err := os.Stat(bak)
	if err == nil {
		logger().Debugw("backup exists", "path", bak)
		return
	}
	if !errors.Is(err, fs.ErrNotExist) {
		logger().Errorf("Failed to create backup for %s: %s", path, err)
		return
	}
	if err = utils.CopyFile(path, bak); err != nil {
		logger().Errorf("Failed to create backup for %s: %s", path, err)
		return
	}
	logger().Infof("Created backup: %s", bak)
}
