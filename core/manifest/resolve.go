package manifest

import (
	"os"
	"path/filepath"
	"strings"

	"asset-pipeline/core/apperror"
)

const (
	// FileName is the client build manifest name.
	FileName = "manifest.json"
	// SSRFileName is the server-rendering manifest name, preferred over FileName in SSR mode.
	SSRFileName = "ssr-manifest.json"
	// AssetsDirName is the directory next to the manifest that holds the hashed output.
	AssetsDirName = "assets"
)

// ErrNotFound is the message reported when no manifest candidate exists.
const ErrNotFound = "Unable to find manifest file."

// Layout locates the build output directories.
type Layout struct {
	// BuildPath is the client build output (public directory joined with build directory).
	BuildPath string
	// SSRPath is the server-rendering build output.
	SSRPath string
}

// DefaultLayout matches the framework's conventional public/build and bootstrap/ssr paths.
var DefaultLayout = Layout{
	BuildPath: "./public/build",
	SSRPath:   "./bootstrap/ssr",
}

// Candidates returns the manifest paths to probe, in priority order.
// An explicit path is the only candidate.
func (l Layout) Candidates(explicit string, ssr bool) []string {
	if explicit != "" {
		return []string{explicit}
	}
	if ssr {
		return []string{
			l.SSRPath + "/" + SSRFileName,
			l.SSRPath + "/" + FileName,
		}
	}
	return []string{l.BuildPath + "/" + FileName}
}

// Resolve returns the first candidate that exists on disk.
func (l Layout) Resolve(explicit string, ssr bool) (string, error) {
	for _, candidate := range l.Candidates(explicit, ssr) {
		if exists(candidate) {
			return candidate, nil
		}
	}
	return "", apperror.Configuration(ErrNotFound)
}

// AssetsDir returns the explicit assets directory, or the assets directory next to
// the manifest. The result is not checked for existence.
func AssetsDir(manifestPath, explicit string) string {
	if explicit != "" {
		return explicit
	}
	return dirname(manifestPath) + "/" + AssetsDirName
}

// dirname drops the last element of path without cleaning the rest, so a leading
// "./" survives into reported paths.
func dirname(path string) string {
	i := strings.LastIndexAny(path, "/"+string(filepath.Separator))
	switch {
	case i < 0:
		return "."
	case i == 0:
		return path[:1]
	}
	return path[:i]
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
