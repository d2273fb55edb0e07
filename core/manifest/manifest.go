package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"asset-pipeline/core/apperror"
)

// Shape identifies which of the two manifest layouts a file uses.
type Shape int

const (
	// ShapeClient maps keys to {"file": ..., "css": [...]} objects.
	ShapeClient Shape = iota
	// ShapeSSR maps keys to flat lists of output paths.
	ShapeSSR
)

func (s Shape) String() string {
	if s == ShapeSSR {
		return "ssr"
	}
	return "client"
}

// ClientEntry is one chunk of a client build manifest.
type ClientEntry struct {
	Key            string   `json:"-"`
	File           string   `json:"file"`
	Src            string   `json:"src,omitempty"`
	IsEntry        bool     `json:"isEntry,omitempty"`
	CSS            []string `json:"css,omitempty"`
	Assets         []string `json:"assets,omitempty"`
	Imports        []string `json:"imports,omitempty"`
	DynamicImports []string `json:"dynamicImports,omitempty"`
}

// SSREntry is one module of a server-rendering manifest.
type SSREntry struct {
	Key   string
	Files []string
}

// Manifest is a parsed build manifest. Exactly one of Client or SSR is populated,
// as indicated by Shape.
type Manifest struct {
	Shape  Shape
	Client []ClientEntry
	SSR    []SSREntry
}

// IsSSR reports whether the manifest uses the server-rendering shape.
func (m *Manifest) IsSSR() bool {
	return m.Shape == ShapeSSR
}

// Len returns the number of manifest keys.
func (m *Manifest) Len() int {
	if m.IsSSR() {
		return len(m.SSR)
	}
	return len(m.Client)
}

// Assets flattens the manifest into the list of referenced output paths.
// Client entries contribute their file followed by their stylesheets; SSR entries
// contribute every listed path.
func (m *Manifest) Assets() []string {
	var assets []string
	if m.IsSSR() {
		for _, entry := range m.SSR {
			assets = append(assets, entry.Files...)
		}
		return assets
	}

	for _, entry := range m.Client {
		if entry.File != "" {
			assets = append(assets, entry.File)
		}
		assets = append(assets, entry.CSS...)
	}
	return assets
}

// DetectShape inspects the first manifest value. An array selects ShapeSSR;
// anything else is treated as a client entry.
func DetectShape(first json.RawMessage) Shape {
	trimmed := bytes.TrimLeft(first, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return ShapeSSR
	}
	return ShapeClient
}

// Parse decodes manifest JSON, keeping keys in document order.
func Parse(data []byte) (*Manifest, error) {
	keys, values, err := decodeOrdered(data)
	if err != nil {
		return nil, err
	}

	m := &Manifest{Shape: ShapeClient}
	if len(values) > 0 {
		m.Shape = DetectShape(values[0])
	}

	for i, raw := range values {
		switch m.Shape {
		case ShapeSSR:
			var files []string
			if err := json.Unmarshal(raw, &files); err != nil {
				return nil, fmt.Errorf("manifest entry %q: expected a list of paths: %w", keys[i], err)
			}
			m.SSR = append(m.SSR, SSREntry{Key: keys[i], Files: files})
		default:
			// A value that is not a chunk object contributes no paths.
			var entry ClientEntry
			if err := json.Unmarshal(raw, &entry); err != nil {
				entry = ClientEntry{}
			}
			entry.Key = keys[i]
			m.Client = append(m.Client, entry)
		}
	}

	return m, nil
}

// Load reads and parses the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperror.FileSystem("read", path, err)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	return m, nil
}

// decodeOrdered walks the top-level object with a token decoder so that the first
// key is the first key in the file, not the first key after map randomization.
func decodeOrdered(data []byte) ([]string, []json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, nil, fmt.Errorf("invalid manifest JSON: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, nil, fmt.Errorf("invalid manifest JSON: expected an object")
	}

	var (
		keys   []string
		values []json.RawMessage
	)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, fmt.Errorf("invalid manifest JSON: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, nil, fmt.Errorf("invalid manifest JSON: unexpected token %v", tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, nil, fmt.Errorf("invalid manifest JSON at %q: %w", key, err)
		}
		keys = append(keys, key)
		values = append(values, raw)
	}

	if _, err := dec.Token(); err != nil {
		return nil, nil, fmt.Errorf("invalid manifest JSON: %w", err)
	}

	return keys, values, nil
}
