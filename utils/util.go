package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// IsDir ...
func IsDir(fpath string) bool {
	fi, err := os.Stat(fpath)
	return err == nil && fi.Mode().IsDir()
}

// IsRegular ...
func IsRegular(fpath string) bool {
	fi, err := os.Stat(fpath)
	return err == nil && fi.Mode().IsRegular()
}

// IsHidden reports whether a base name is a dotfile
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// BackupName returns the sibling "<stem>_original<ext>" of fpath
func BackupName(fpath string) string {
	ext := filepath.Ext(fpath)
	return strings.TrimSuffix(fpath, ext) + "_original" + ext
}

// CopyFile copies src to dst, keeping the permission bits and the
// access/modification times of src.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	fi, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, fi.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err = io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return fmt.Errorf("copy %s: %w", src, err)
	}
	if err = out.Close(); err != nil {
		os.Remove(dst)
		return err
	}

	return os.Chtimes(dst, atime(fi), fi.ModTime())
}

// OverwriteFile replaces the content of an existing file in place
func OverwriteFile(filename string, data []byte) error {
	f, err := os.OpenFile(filename, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return err
	}
	if _, err = f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
