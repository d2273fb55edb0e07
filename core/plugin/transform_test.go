package plugin

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransform(t *testing.T) {
	code := `import logo from "__laravel_vite_placeholder__/resources/logo.svg"; const b = "__laravel_vite_placeholder__";`

	t.Run("Serve replaces every placeholder", func(t *testing.T) {
		got := Transform(CommandServe, code, "http://[::1]:5173", nil)
		assert.Equal(t, `import logo from "http://[::1]:5173/resources/logo.svg"; const b = "http://[::1]:5173";`, got)
	})

	t.Run("Build leaves code untouched", func(t *testing.T) {
		assert.Equal(t, code, Transform(CommandBuild, code, "http://[::1]:5173", nil))
	})

	t.Run("Hook runs after replacement", func(t *testing.T) {
		hook := func(code, url string) string {
			assert.NotContains(t, code, Placeholder)
			return strings.ToUpper(url)
		}
		assert.Equal(t, "HTTP://LOCALHOST:5173", Transform(CommandServe, code, "http://localhost:5173", hook))
	})
}
