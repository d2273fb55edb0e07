package plugin

import (
	"os"
	"path/filepath"
	"strings"

	"asset-pipeline/core/apperror"

	"github.com/joho/godotenv"
)

// LoadEnv reads .env, .env.local, .env.<mode> and .env.<mode>.local from dir, in
// that order, with later files overriding earlier ones. Variables already present in
// the process environment override every file. Missing files are skipped.
func LoadEnv(dir, mode string) (map[string]string, error) {
	files := []string{".env", ".env.local"}
	if mode != "" {
		files = append(files, ".env."+mode, ".env."+mode+".local")
	}

	env := make(map[string]string)
	for _, name := range files {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}

		values, err := godotenv.Read(path)
		if err != nil {
			return nil, apperror.FileSystem("read", path, err)
		}
		for k, v := range values {
			env[k] = v
		}
	}

	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}

	return env, nil
}

const bypassHint = " You should build your assets for production instead. To disable this ENV check you may set LARAVEL_BYPASS_ENV_CHECK=1"

// EnsureCommandShouldRunInEnvironment refuses to start the dev server on hosts
// that should only ever run production builds.
func EnsureCommandShouldRunInEnvironment(command string, env map[string]string) error {
	if command == CommandBuild || env["LARAVEL_BYPASS_ENV_CHECK"] == "1" {
		return nil
	}

	checks := []struct {
		key     string
		message string
	}{
		{"LARAVEL_VAPOR", "You should not run the Vite HMR server on Vapor."},
		{"LARAVEL_FORGE", "You should not run the Vite HMR server in your Forge deployment script."},
		{"LARAVEL_ENVOYER", "You should not run the Vite HMR server in your Envoyer hook."},
		{"CI", "You should not run the Vite HMR server in CI environments."},
	}

	for _, check := range checks {
		if _, ok := env[check.key]; ok {
			return apperror.Configuration("%s%s", check.message, bypassHint)
		}
	}
	return nil
}
