package albums

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/go-imsto/imresize/base"
	"github.com/go-imsto/imresize/utils"
)

// MetadataFile is the album sidecar maintained by the viewer; never touched
const MetadataFile = "metadata.json"

// Visitor handles one candidate file
type Visitor func(path string) Result

// IsCandidate applies the name rules: no dotfiles, no metadata sidecar,
// and a supported image extension. The walk also leaves out backup
// siblings, see IsBackup.
func IsCandidate(name string) bool {
	if utils.IsHidden(name) || name == MetadataFile {
		return false
	}
	return base.IsImageFile(name)
}

// IsBackup reports whether fpath is a "<stem>_original<ext>" copy whose
// primary file still sits beside it.
func IsBackup(fpath string) bool {
	ext := filepath.Ext(fpath)
	stem := strings.TrimSuffix(fpath, ext)
	if !strings.HasSuffix(stem, "_original") {
		return false
	}
	return utils.IsRegular(strings.TrimSuffix(stem, "_original") + ext)
}

// walk calls fn for each candidate under root in directory order.
// Hidden directories below root are not entered, and "<stem>_original<ext>"
// files are passed over while "<stem><ext>" exists. Unreadable entries below
// root are logged and passed over; an unreadable root is returned.
func walk(root string, fn func(path string)) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			logger().Errorf("Cannot read %s: %s", path, err)
			return nil
		}
		if d.IsDir() {
			if path != root && utils.IsHidden(d.Name()) {
				logger().Debugw("skip hidden directory", "path", path)
				return filepath.SkipDir
			}
			return nil
		}
		if !IsCandidate(d.Name()) {
			logger().Debugw("ignore", "path", path)
			return nil
		}
		if IsBackup(path) {
			logger().Debugw("ignore backup", "path", path)
			return nil
		}
		fn(path)
		return nil
	})
}

// Walk visits every candidate under root and sums the outcomes
func Walk(root string, visit Visitor) (Stats, error) {
	var st Stats
	err := walk(root, func(path string) {
		r := visit(path)
		logger().Debugw("visited", "kind", r.Kind, "result", r.String())
		st.Add(r)
	})
	return st, err
}

// List returns the candidates under root without opening them
func List(root string) ([]string, error) {
	var paths []string
	err := walk(root, func(path string) {
		paths = append(paths, path)
	})
	return paths, err
}

// DryRun logs each candidate under root and their total
func DryRun(root string) (int, error) {
	paths, err := List(root)
	if err != nil {
		return 0, err
	}
	for _, path := range paths {
		logger().Infof("Would process: %s", path)
	}
	logger().Infof("Would process %d image files", len(paths))
	return len(paths), nil
}
