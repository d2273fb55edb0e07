package manifest

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestWatcher_InvalidatesOnWrite(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "manifest.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"a.js": {"file": "assets/a-1.js"}}`), 0o644))

	var calls int32
	cache := NewCache(time.Hour)
	cache.load = func(p string) (*Manifest, error) {
		atomic.AddInt32(&calls, 1)
		return Load(p)
	}

	w, err := NewWatcher(cache, zap.NewNop(), path)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	m, err := cache.Get(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"assets/a-1.js"}, m.Assets())

	require.NoError(t, os.WriteFile(path, []byte(`{"a.js": {"file": "assets/a-2.js"}}`), 0o644))

	assert.Eventually(t, func() bool {
		m, err := cache.Get(path)
		return err == nil && len(m.Assets()) == 1 && m.Assets()[0] == "assets/a-2.js"
	}, 2*time.Second, 20*time.Millisecond)
}

func TestWatcher_StopWithoutStart(t *testing.T) {
	defer goleak.VerifyNone(t)

	w, err := NewWatcher(NewCache(0), zap.NewNop(), filepath.Join(t.TempDir(), "manifest.json"))
	require.NoError(t, err)
	w.Stop()
}

func TestWatcher_InvalidatesSSRManifest(t *testing.T) {
	defer goleak.VerifyNone(t)

	root := t.TempDir()
	layout := Layout{BuildPath: filepath.Join(root, "public", "build"), SSRPath: filepath.Join(root, "bootstrap", "ssr")}
	require.NoError(t, os.MkdirAll(layout.BuildPath, 0o755))
	require.NoError(t, os.MkdirAll(layout.SSRPath, 0o755))

	path := layout.Candidates("", true)[0]
	require.NoError(t, os.WriteFile(path, []byte(`{"ssr.js": ["/build/assets/ssr-1.js"]}`), 0o644))

	cache := NewCache(time.Hour)
	w, err := NewWatcher(cache, zap.NewNop(), append(layout.Candidates("", false), layout.Candidates("", true)...)...)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	m, err := cache.Get(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"/build/assets/ssr-1.js"}, m.Assets())

	require.NoError(t, os.WriteFile(path, []byte(`{"ssr.js": ["/build/assets/ssr-2.js"]}`), 0o644))

	assert.Eventually(t, func() bool {
		m, err := cache.Get(path)
		return err == nil && len(m.Assets()) == 1 && m.Assets()[0] == "/build/assets/ssr-2.js"
	}, 2*time.Second, 20*time.Millisecond)
}

func TestWatcher_SkipsMissingDirectory(t *testing.T) {
	defer goleak.VerifyNone(t)

	root := t.TempDir()
	present := filepath.Join(root, "manifest.json")
	missing := filepath.Join(root, "ssr", "ssr-manifest.json")

	w, err := NewWatcher(NewCache(0), zap.NewNop(), present, missing)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	w.Stop()
}

func TestWatcher_StartFailsWithoutDirectories(t *testing.T) {
	defer goleak.VerifyNone(t)

	w, err := NewWatcher(NewCache(0), zap.NewNop(), filepath.Join(t.TempDir(), "missing", "manifest.json"))
	require.NoError(t, err)
	require.Error(t, w.Start(context.Background()))
	w.Stop()
}
