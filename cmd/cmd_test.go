package cmd

import (
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"asset-pipeline/core/config"
	"asset-pipeline/core/manifest"
	"asset-pipeline/core/plugin"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testSession(t *testing.T) *session {
	t.Helper()

	cfg := &config.Config{}
	cfg.Pipeline = plugin.Config{
		PublicDirectory:    "/web/",
		BuildDirectory:     "dist",
		SSROutputDirectory: "bootstrap/ssr/",
	}
	cfg.Server.Root = t.TempDir()
	return &session{cfg: cfg, logger: zap.NewNop()}
}

func TestSessionLayout(t *testing.T) {
	s := testSession(t)

	assert.Equal(t, manifest.Layout{BuildPath: "./web/dist", SSRPath: "./bootstrap/ssr"}, s.layout())
	assert.Equal(t, "web/hot", s.hotFile().Path)

	s.cfg.Pipeline.HotFile = "storage/hot"
	assert.Equal(t, "storage/hot", s.hotFile().Path)
}

func TestManifestTable(t *testing.T) {
	client, err := manifest.Parse([]byte(`{
		"resources/js/app.js": {"file": "assets/app.js", "css": ["assets/app.css", "assets/vendor.css"], "isEntry": true}
	}`))
	require.NoError(t, err)

	table := manifestTable(client)
	assert.Equal(t, []string{"KEY", "FILE", "CSS", "ENTRY"}, table.Headers)
	assert.Equal(t, [][]string{{"resources/js/app.js", "assets/app.js", "assets/app.css, assets/vendor.css", "true"}}, table.Rows)

	ssr, err := manifest.Parse([]byte(`{"resources/js/ssr.js": ["/build/assets/a.js", "/build/assets/b.js"]}`))
	require.NoError(t, err)

	table = manifestTable(ssr)
	assert.Equal(t, []string{"KEY", "FILES"}, table.Headers)
	assert.Equal(t, [][]string{{"resources/js/ssr.js", "/build/assets/a.js, /build/assets/b.js"}}, table.Rows)
}

func TestNewServeApp(t *testing.T) {
	s := testSession(t)
	require.NoError(t, os.WriteFile(filepath.Join(s.cfg.Server.Root, "app.js"), []byte(plugin.Placeholder+"/x.js"), 0o644))

	root := t.TempDir()
	layout := manifest.Layout{BuildPath: filepath.Join(root, "build"), SSRPath: filepath.Join(root, "ssr")}

	app, loaded, err := newServeApp(s, layout, manifest.NewCache(time.Minute), func() string { return "http://localhost:5173" })
	require.NoError(t, err)
	assert.Equal(t, []string{"orphans", "integrity", "assets"}, loaded)

	resp, err := app.Test(httptest.NewRequest("GET", "/app.js", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "http://localhost:5173/x.js", string(body))
	assert.NotEmpty(t, resp.Header.Get("X-Ray-ID"))

	// No manifest has been built yet.
	resp, err = app.Test(httptest.NewRequest("GET", "/__orphans", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestListen(t *testing.T) {
	ln, err := listen("127.0.0.1:0", nil)
	require.NoError(t, err)
	defer ln.Close()
	assert.Equal(t, "tcp", ln.Addr().Network())

	_, err = listen("127.0.0.1:0", &plugin.TLSFiles{Key: "missing.key", Cert: "missing.crt"})
	assert.Error(t, err)
}

func TestRemoteAssetsPrefix(t *testing.T) {
	s := testSession(t)
	assert.Equal(t, "dist/assets", remoteAssetsPrefix(s))

	s.cfg.Storage.Prefix = "/cdn/site/"
	assert.Equal(t, "cdn/site/dist/assets", remoteAssetsPrefix(s))
}
