package orphans_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"asset-pipeline/core/manifest"
	"asset-pipeline/core/reconcile"
	"asset-pipeline/feature/orphans"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// project lays out a build directory and returns the matching layout.
func project(t *testing.T, manifestJSON string, files ...string) manifest.Layout {
	t.Helper()

	root := t.TempDir()
	layout := manifest.Layout{
		BuildPath: filepath.Join(root, "public", "build"),
		SSRPath:   filepath.Join(root, "bootstrap", "ssr"),
	}

	assets := filepath.Join(layout.BuildPath, "assets")
	require.NoError(t, os.MkdirAll(assets, 0o755))
	if manifestJSON != "" {
		require.NoError(t, os.WriteFile(filepath.Join(layout.BuildPath, "manifest.json"), []byte(manifestJSON), 0o644))
	}
	for _, name := range files {
		require.NoError(t, os.WriteFile(filepath.Join(assets, name), []byte("x"), 0o644))
	}
	return layout
}

func newApp(t *testing.T, layout manifest.Layout) *fiber.App {
	t.Helper()

	app := fiber.New()
	feature := orphans.NewFeature(layout, manifest.NewCache(time.Minute), "", zap.NewNop())
	assert.Equal(t, "orphans", feature.Name())
	assert.True(t, feature.IsEnabled())
	require.NoError(t, feature.Load(app))
	return app
}

func TestHandleReport(t *testing.T) {
	layout := project(t,
		`{"resources/js/app.js":{"file":"assets/app-1.js","css":["assets/app-2.css"]}}`,
		"app-1.js", "app-2.css", "app-0.js")

	resp, err := newApp(t, layout).Test(httptest.NewRequest("GET", orphans.Route, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var plan reconcile.Plan
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&plan))
	require.Len(t, plan.Orphans, 1)
	assert.Equal(t, "app-0.js", plan.Orphans[0].Name)
	assert.Equal(t, 3, plan.Summary.Scanned)
	assert.Equal(t, 2, plan.Summary.Referenced)

	// The report never removes anything.
	_, err = os.Stat(filepath.Join(layout.BuildPath, "assets", "app-0.js"))
	assert.NoError(t, err)
}

func TestHandleReport_NoOrphans(t *testing.T) {
	layout := project(t, `{"a.js":{"file":"assets/a.js"}}`, "a.js")

	resp, err := newApp(t, layout).Test(httptest.NewRequest("GET", orphans.Route, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"orphans":[]`)
}

func TestHandleReport_MissingManifest(t *testing.T) {
	layout := project(t, "")

	resp, err := newApp(t, layout).Test(httptest.NewRequest("GET", orphans.Route, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, manifest.ErrNotFound, body["error"])
}

func TestHandleReport_SSR(t *testing.T) {
	layout := project(t, `{"a.js":{"file":"assets/a.js"}}`)
	require.NoError(t, os.MkdirAll(filepath.Join(layout.SSRPath, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(layout.SSRPath, "ssr-manifest.json"), []byte(`{"a.js":["/build/assets/a.js"]}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(layout.SSRPath, "assets", "stale.js"), []byte("x"), 0o644))

	resp, err := newApp(t, layout).Test(httptest.NewRequest("GET", orphans.Route+"?ssr=true", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var plan reconcile.Plan
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&plan))
	require.Len(t, plan.Orphans, 1)
	assert.Equal(t, "stale.js", plan.Orphans[0].Name)
}

func TestHandleReport_MissingAssetsDir(t *testing.T) {
	layout := project(t, `{"a.js":{"file":"assets/a.js"}}`)
	require.NoError(t, os.RemoveAll(filepath.Join(layout.BuildPath, "assets")))

	resp, err := newApp(t, layout).Test(httptest.NewRequest("GET", orphans.Route, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
