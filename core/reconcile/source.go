package reconcile

import (
	"context"
	"os"
	"strings"

	"asset-pipeline/core/apperror"
)

// Source is a physical assets location that can be listed and pruned.
type Source interface {
	// Location describes the source for reporting (a directory or bucket URL).
	Location() string

	// List returns the plain files directly inside the location. Directories and
	// other entry kinds are skipped. Listing errors must be returned, never swallowed.
	List(ctx context.Context) ([]Entry, error)

	// Remove deletes a single entry previously returned by List.
	Remove(ctx context.Context, entry Entry) error
}

// DirSource lists a local directory.
type DirSource struct {
	Dir string
}

// NewDirSource creates a source for dir. The directory is not checked here; a
// missing directory fails on List.
func NewDirSource(dir string) *DirSource {
	return &DirSource{Dir: dir}
}

// Location returns the directory path.
func (s *DirSource) Location() string {
	return s.Dir
}

// List returns the regular files in the directory.
func (s *DirSource) List(ctx context.Context) ([]Entry, error) {
	dirEntries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, apperror.FileSystem("list", s.Dir, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		if !de.Type().IsRegular() {
			continue
		}
		entries = append(entries, Entry{
			Name: de.Name(),
			Path: strings.TrimSuffix(s.Dir, "/") + "/" + de.Name(),
		})
	}
	return entries, nil
}

// Remove deletes the file.
func (s *DirSource) Remove(ctx context.Context, entry Entry) error {
	return apperror.FileSystem("remove", entry.Path, os.Remove(entry.Path))
}
