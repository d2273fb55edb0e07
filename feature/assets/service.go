package assets

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"asset-pipeline/core/apperror"
	"asset-pipeline/core/plugin"

	"go.uber.org/zap"
)

// ErrNotFound is returned when no servable file exists at the requested path.
var ErrNotFound = errors.New("asset not found")

// rewritable lists the extensions whose content may carry the placeholder.
var rewritable = map[string]bool{
	".js":   true,
	".mjs":  true,
	".cjs":  true,
	".css":  true,
	".html": true,
	".htm":  true,
}

// Asset is a file ready to be sent.
type Asset struct {
	Path      string
	Ext       string
	Content   []byte
	Rewritten bool
}

// Service reads assets below a root directory.
type Service struct {
	root   string
	url    func() string
	hook   plugin.TransformFunc
	logger *zap.Logger
}

// NewService creates an asset service. url returns the current dev-server URL; it
// is called per request because the URL is only known once the server listens.
func NewService(root string, url func() string, hook plugin.TransformFunc, logger *zap.Logger) *Service {
	return &Service{root: root, url: url, hook: hook, logger: logger}
}

// Open reads the asset at the slash-separated request path. Directories resolve
// to their index.html.
func (s *Service) Open(name string) (*Asset, error) {
	path := filepath.Join(s.root, filepath.FromSlash(cleanPath(name)))

	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		path = filepath.Join(path, "index.html")
		info, err = os.Stat(path)
	}
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, apperror.FileSystem("stat", path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, ErrNotFound
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, apperror.FileSystem("read", path, err)
	}

	asset := &Asset{Path: path, Ext: strings.ToLower(filepath.Ext(path)), Content: content}
	if rewritable[asset.Ext] {
		code := plugin.Transform(plugin.CommandServe, string(content), s.url(), s.hook)
		asset.Rewritten = code != string(content)
		asset.Content = []byte(code)
	}
	return asset, nil
}

// cleanPath anchors name at "/" before cleaning so ".." cannot climb above the root.
func cleanPath(name string) string {
	return strings.TrimPrefix(filepath.ToSlash(filepath.Clean("/"+name)), "/")
}
