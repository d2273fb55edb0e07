package hotfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile_WriteRead(t *testing.T) {
	hot := New(filepath.Join(t.TempDir(), "public", "hot"))

	require.NoError(t, hot.Write("http://[::1]:5173", "/build/"))
	assert.True(t, hot.Exists())

	data, err := os.ReadFile(hot.Path)
	require.NoError(t, err)
	assert.Equal(t, "http://[::1]:5173/build", string(data))

	url, ok, err := hot.Read()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "http://[::1]:5173/build", url)
}

func TestFile_EmptyBase(t *testing.T) {
	hot := New(filepath.Join(t.TempDir(), "hot"))
	require.NoError(t, hot.Write("http://localhost:5173", ""))

	url, _, err := hot.Read()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5173", url)
}

func TestFile_ReadMissing(t *testing.T) {
	url, ok, err := New(filepath.Join(t.TempDir(), "hot")).Read()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, url)
}

func TestFile_Remove(t *testing.T) {
	hot := New(filepath.Join(t.TempDir(), "hot"))
	require.NoError(t, hot.Write("http://localhost:5173", ""))

	removed, err := hot.Remove()
	require.NoError(t, err)
	assert.True(t, removed)
	assert.False(t, hot.Exists())

	removed, err = hot.Remove()
	require.NoError(t, err)
	assert.False(t, removed)
}
