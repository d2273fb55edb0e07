package version

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// FrameworkPackage is the composer package whose version is reported.
const FrameworkPackage = "laravel/framework"

// Optional is the result of a lookup that may not find anything.
type Optional struct {
	Value string
	Found bool
}

// String returns the value, or "" when nothing was found.
func (o Optional) String() string {
	if !o.Found {
		return ""
	}
	return o.Value
}

// Plugin reads the "version" field of the package.json in dir.
func Plugin(dir string) Optional {
	var pkg struct {
		Version string `json:"version"`
	}
	if !readJSON(filepath.Join(dir, "package.json"), &pkg) || pkg.Version == "" {
		return Optional{}
	}
	return Optional{Value: pkg.Version, Found: true}
}

// Framework reads the locked framework version from the composer.lock in dir.
func Framework(dir string) Optional {
	var lock struct {
		Packages []struct {
			Name    string `json:"name"`
			Version string `json:"version"`
		} `json:"packages"`
	}
	if !readJSON(filepath.Join(dir, "composer.lock"), &lock) {
		return Optional{}
	}

	for _, p := range lock.Packages {
		if p.Name == FrameworkPackage && p.Version != "" {
			return Optional{Value: p.Version, Found: true}
		}
	}
	return Optional{}
}

func readJSON(path string, v any) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return json.Unmarshal(data, v) == nil
}
