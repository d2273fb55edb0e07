package hotfile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"asset-pipeline/core/apperror"
)

// File is the hot file at Path.
type File struct {
	Path string
}

// New returns the hot file at path.
func New(path string) File {
	return File{Path: path}
}

// Write stores the dev server URL followed by the base path without its trailing slash.
func (f File) Write(url, base string) error {
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o755); err != nil {
		return apperror.FileSystem("write", f.Path, err)
	}
	content := url + strings.TrimSuffix(base, "/")
	return apperror.FileSystem("write", f.Path, os.WriteFile(f.Path, []byte(content), 0o644))
}

// Read returns the stored URL. ok is false when no dev server is running.
func (f File) Read() (url string, ok bool, err error) {
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, apperror.FileSystem("read", f.Path, err)
	}
	return strings.TrimSpace(string(data)), true, nil
}

// Exists reports whether the hot file is present.
func (f File) Exists() bool {
	_, err := os.Stat(f.Path)
	return err == nil
}

// Remove deletes the hot file if it exists. It reports whether a file was removed.
func (f File) Remove() (bool, error) {
	err := os.Remove(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, apperror.FileSystem("remove", f.Path, err)
	}
	return true, nil
}
