package reconcile

import "asset-pipeline/core/manifest"

// Entry is a plain file found in the assets location.
type Entry struct {
	// Name is the bare file name used for suffix matching.
	Name string `json:"name"`
	// Path is the location-qualified path used for reporting and removal.
	Path string `json:"path"`
}

// Options controls a cleanup run.
type Options struct {
	// Manifest is an explicit manifest path. Empty means probe the defaults.
	Manifest string
	// SSR switches the default candidates to the server-rendering manifests.
	SSR bool
	// Assets is an explicit assets location. Empty means next to the manifest.
	Assets string
	// DryRun reports orphans without removing them.
	DryRun bool
	// KeepGoing attempts every removal and joins the failures instead of
	// stopping at the first one.
	KeepGoing bool
}

// Plan is the outcome of comparing a manifest with an assets location.
type Plan struct {
	// ManifestPath is the manifest that was read.
	ManifestPath string `json:"manifest"`
	// Shape is the detected manifest shape.
	Shape manifest.Shape `json:"-"`
	// Location describes the scanned assets location.
	Location string `json:"location"`
	// Orphans are the files no manifest entry references, in listing order.
	Orphans []Entry `json:"orphans"`
	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`
}

// Summary provides aggregate statistics for a plan and its application.
type Summary struct {
	// Referenced is the number of paths the manifest references.
	Referenced int `json:"referenced"`
	// Scanned is the number of plain files found.
	Scanned int `json:"scanned"`
	// Orphans is the number of unreferenced files.
	Orphans int `json:"orphans"`
	// Removed is the number of orphans deleted.
	Removed int `json:"removed"`
	// Failed is the number of removals that failed (best-effort mode only).
	Failed int `json:"failed"`
}
