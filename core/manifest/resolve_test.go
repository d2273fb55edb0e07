package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"asset-pipeline/core/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))
}

func TestLayout_Candidates(t *testing.T) {
	assert.Equal(t, []string{"./public/build/manifest.json"}, DefaultLayout.Candidates("", false))
	assert.Equal(t, []string{
		"./bootstrap/ssr/ssr-manifest.json",
		"./bootstrap/ssr/manifest.json",
	}, DefaultLayout.Candidates("", true))
	assert.Equal(t, []string{"custom.json"}, DefaultLayout.Candidates("custom.json", true))
}

func TestLayout_Resolve(t *testing.T) {
	t.Run("ClientDefault", func(t *testing.T) {
		root := t.TempDir()
		layout := Layout{BuildPath: filepath.Join(root, "public/build"), SSRPath: filepath.Join(root, "bootstrap/ssr")}
		touch(t, filepath.Join(root, "public/build/manifest.json"))

		path, err := layout.Resolve("", false)
		require.NoError(t, err)
		assert.Equal(t, layout.BuildPath+"/manifest.json", path)
	})

	t.Run("SSRPrefersSSRManifest", func(t *testing.T) {
		root := t.TempDir()
		layout := Layout{SSRPath: filepath.Join(root, "bootstrap/ssr")}
		touch(t, filepath.Join(root, "bootstrap/ssr/ssr-manifest.json"))
		touch(t, filepath.Join(root, "bootstrap/ssr/manifest.json"))

		path, err := layout.Resolve("", true)
		require.NoError(t, err)
		assert.Equal(t, layout.SSRPath+"/ssr-manifest.json", path)
	})

	t.Run("SSRFallsBackToManifest", func(t *testing.T) {
		root := t.TempDir()
		layout := Layout{SSRPath: filepath.Join(root, "bootstrap/ssr")}
		touch(t, filepath.Join(root, "bootstrap/ssr/manifest.json"))

		path, err := layout.Resolve("", true)
		require.NoError(t, err)
		assert.Equal(t, layout.SSRPath+"/manifest.json", path)
	})

	t.Run("ExplicitMissing", func(t *testing.T) {
		root := t.TempDir()
		touch(t, filepath.Join(root, "public/build/manifest.json"))
		layout := Layout{BuildPath: filepath.Join(root, "public/build")}

		_, err := layout.Resolve(filepath.Join(root, "other.json"), false)
		require.Error(t, err)
		assert.True(t, apperror.IsConfiguration(err))
		assert.Equal(t, ErrNotFound, err.Error())
	})

	t.Run("NothingFound", func(t *testing.T) {
		layout := Layout{BuildPath: t.TempDir()}
		_, err := layout.Resolve("", false)
		assert.Equal(t, apperror.ExitConfiguration, apperror.ExitCode(err))
	})
}

func TestAssetsDir(t *testing.T) {
	assert.Equal(t, "./public/build/assets", AssetsDir("./public/build/manifest.json", ""))
	assert.Equal(t, "bootstrap/ssr/assets", AssetsDir("bootstrap/ssr/ssr-manifest.json", ""))
	assert.Equal(t, "dist/js", AssetsDir("./public/build/manifest.json", "dist/js"))
	assert.Equal(t, "./assets", AssetsDir("manifest.json", ""))
	assert.Equal(t, "/assets", AssetsDir("/manifest.json", ""))
}
