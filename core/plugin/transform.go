package plugin

import "strings"

// Placeholder is emitted as the server origin so that asset URLs can be rewritten
// once the dev server's real URL is known.
const Placeholder = "__laravel_vite_placeholder__"

// TransformFunc post-processes served code after the placeholder is replaced.
type TransformFunc func(code, devServerURL string) string

// Transform replaces every placeholder in code with the dev server URL. Code is only
// rewritten while serving; builds keep the placeholder out of the output already.
func Transform(command, code, devServerURL string, hook TransformFunc) string {
	if command != CommandServe {
		return code
	}

	code = strings.ReplaceAll(code, Placeholder, devServerURL)
	if hook != nil {
		code = hook(code, devServerURL)
	}
	return code
}
