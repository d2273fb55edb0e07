package plugin

import (
	"testing"

	"asset-pipeline/core/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_Defaults(t *testing.T) {
	r, err := Resolve(Config{
		Input:              []string{"resources/js/app.js"},
		PublicDirectory:    "public",
		BuildDirectory:     "build",
		SSROutputDirectory: "bootstrap/ssr",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"resources/js/app.js"}, r.Input)
	assert.Equal(t, []string{"resources/js/app.js"}, r.SSR)
	assert.Equal(t, "public/hot", r.HotFile)
	assert.Equal(t, "public/build", r.BuildPath())
	assert.Nil(t, r.RefreshPaths)
	assert.Equal(t, TLSAuto, r.DetectTLS.Mode)
}

func TestResolve_TrimsDirectories(t *testing.T) {
	r, err := Resolve(Config{
		Input:              []string{"app.js"},
		SSR:                []string{"ssr.js"},
		PublicDirectory:    " /web/ ",
		BuildDirectory:     "/dist//",
		SSROutputDirectory: "/bootstrap/ssr/",
		HotFile:            "storage/hot",
	})
	require.NoError(t, err)

	assert.Equal(t, "web", r.PublicDirectory)
	assert.Equal(t, "dist", r.BuildDirectory)
	assert.Equal(t, "bootstrap/ssr", r.SSROutputDirectory)
	assert.Equal(t, "storage/hot", r.HotFile)
	assert.Equal(t, []string{"ssr.js"}, r.SSR)
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"Missing input", Config{PublicDirectory: "public", BuildDirectory: "build"}, `missing configuration for "input".`},
		{"Blank input", Config{Input: []string{" "}, PublicDirectory: "public", BuildDirectory: "build"}, `missing configuration for "input".`},
		{"Root public directory", Config{Input: []string{"app.js"}, PublicDirectory: "/", BuildDirectory: "build"}, "publicDirectory must be a subdirectory. E.g. 'public'."},
		{"Empty build directory", Config{Input: []string{"app.js"}, PublicDirectory: "public", BuildDirectory: " // "}, "buildDirectory must be a subdirectory. E.g. 'build'."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.cfg)
			require.Error(t, err)
			assert.True(t, apperror.IsConfiguration(err))
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestResolve_Refresh(t *testing.T) {
	base := Config{Input: []string{"app.js"}, PublicDirectory: "public", BuildDirectory: "build"}

	cfg := base
	cfg.Refresh = []string{"true"}
	r, err := Resolve(cfg)
	require.NoError(t, err)
	assert.Equal(t, DefaultRefreshPaths, r.RefreshPaths)

	cfg.Refresh = []string{"false"}
	r, err = Resolve(cfg)
	require.NoError(t, err)
	assert.Nil(t, r.RefreshPaths)

	cfg.Refresh = []string{"resources/views/**", "routes/**"}
	r, err = Resolve(cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"resources/views/**", "routes/**"}, r.RefreshPaths)
}

func TestParseDetectTLS(t *testing.T) {
	assert.Equal(t, TLSDetection{Mode: TLSAuto}, parseDetectTLS(""))
	assert.Equal(t, TLSDetection{Mode: TLSDisabled}, parseDetectTLS("false"))
	assert.Equal(t, TLSDetection{Mode: TLSRequired}, parseDetectTLS("TRUE"))
	assert.Equal(t, TLSDetection{Mode: TLSHost, Host: "my-app.test"}, parseDetectTLS("my-app.test"))
}
