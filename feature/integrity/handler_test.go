package integrity_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"asset-pipeline/core/manifest"
	"asset-pipeline/feature/integrity"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newApp(t *testing.T, layout manifest.Layout) *fiber.App {
	t.Helper()

	app := fiber.New()
	feature := integrity.NewFeature(layout, manifest.NewCache(time.Minute), zap.NewNop())
	assert.Equal(t, "integrity", feature.Name())
	assert.True(t, feature.IsEnabled())
	require.NoError(t, feature.Load(app))
	return app
}

func TestHandleIntegrityCheck(t *testing.T) {
	layout := build(t, appManifest, "app-1.js", "app-2.css")

	resp, err := newApp(t, layout).Test(httptest.NewRequest("GET", integrity.Route, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestHandleIntegrityCheck_Missing(t *testing.T) {
	layout := build(t, appManifest, "app-2.css")

	resp, err := newApp(t, layout).Test(httptest.NewRequest("GET", integrity.Route, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var report integrity.Report
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Equal(t, []string{"assets/app-1.js"}, report.Missing)
}

func TestHandleIntegrityCheck_NoManifest(t *testing.T) {
	layout := manifest.Layout{BuildPath: t.TempDir(), SSRPath: t.TempDir()}

	resp, err := newApp(t, layout).Test(httptest.NewRequest("GET", integrity.Route+"?ssr=true", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
