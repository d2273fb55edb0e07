package manifest

import (
	"context"
	"errors"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher invalidates a Cache entry whenever one of the watched manifest files
// changes on disk. The bundler rewrites the manifest on every build, usually by
// replacing the file, so parent directories are watched rather than the files.
type Watcher struct {
	mu      sync.Mutex
	watcher *fsnotify.Watcher
	cache   *Cache
	paths   map[string]struct{}
	logger  *zap.Logger
	stopCh  chan struct{}
	doneCh  chan struct{}
	running bool
}

// NewWatcher creates a watcher for the manifests at paths.
func NewWatcher(cache *Cache, logger *zap.Logger, paths ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	watched := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		watched[filepath.Clean(p)] = struct{}{}
	}

	return &Watcher{
		watcher: w,
		cache:   cache,
		paths:   watched,
		logger:  logger,
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}, nil
}

// Start begins watching. It is non-blocking.
//
// A directory that cannot be watched, typically one the build has not created yet,
// is skipped with a warning. Start fails only when no directory could be watched.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	var (
		added   int
		lastErr error
		dirs    = make(map[string]struct{}, len(w.paths))
	)
	for p := range w.paths {
		dir := filepath.Dir(p)
		if _, ok := dirs[dir]; ok {
			continue
		}
		dirs[dir] = struct{}{}

		if err := w.watcher.Add(dir); err != nil {
			w.logger.Debug("Manifest directory not watched", zap.String("dir", dir), zap.Error(err))
			lastErr = err
			continue
		}
		added++
	}

	if added == 0 {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		if lastErr == nil {
			lastErr = errors.New("no manifest paths to watch")
		}
		return lastErr
	}

	go w.run(ctx)
	return nil
}

// Stop stops the watcher and waits for the event loop to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	running := w.running
	w.running = false
	w.mu.Unlock()

	if running {
		close(w.stopCh)
		<-w.doneCh
	}

	if err := w.watcher.Close(); err != nil {
		w.logger.Warn("Failed to close manifest watcher", zap.Error(err))
	}
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			path := filepath.Clean(event.Name)
			if _, ok := w.paths[path]; !ok {
				continue
			}
			w.cache.Invalidate(path)
			w.logger.Debug("Manifest changed", zap.String("path", path), zap.String("op", event.Op.String()))
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("Manifest watcher error", zap.Error(err))
		}
	}
}
