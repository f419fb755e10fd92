package albums

import (
	"fmt"
	"image"
)

// Kind is the outcome of one visited file
type Kind uint8

const (
	Processed Kind = iota + 1
	Skipped
	Failed
)

func (k Kind) String() string {
	switch k {
	case Processed:
		return "processed"
	case Skipped:
		return "skipped"
	case Failed:
		return "error"
	}
	return "unknown"
}

// Result reports what happened to one file. Err is set only for Failed.
type Result struct {
	Path   string
	Kind   Kind
	Err    error
	Before image.Point
	After  image.Point
}

func (r Result) String() string {
	switch r.Kind {
	case Processed:
		return fmt.Sprintf("%s: %dx%d -> %dx%d", r.Path, r.Before.X, r.Before.Y, r.After.X, r.After.Y)
	case Failed:
		return fmt.Sprintf("%s: %s", r.Path, r.Err)
	}
	return fmt.Sprintf("%s: %s", r.Path, r.Kind)
}

// Stats sums the results of a walk
type Stats struct {
	Candidates int
	Processed  int
	Skipped    int
	Errors     int
}

// Add counts r
func (s *Stats) Add(r Result) {
	s.Candidates++
	switch r.Kind {
	case Processed:
		s.Processed++
	case Skipped:
		s.Skipped++
	default:
		s.Errors++
	}
}

func (s Stats) String() string {
	return fmt.Sprintf("Processed: %d, Skipped: %d, Errors: %d", s.Processed, s.Skipped, s.Errors)
}
