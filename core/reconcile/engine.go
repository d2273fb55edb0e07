package reconcile

import (
	"context"
	"path"
	"strings"

	"asset-pipeline/core/manifest"
)

// FindOrphans returns the entries whose name is not referenced by any path.
//
// A path references an entry when it ends with "/" + entry.Name. Matching is by
// suffix rather than full-path equality because the manifest stores build-relative
// paths while the listing yields bare names, so a referenced path under any
// directory protects a file with the same name.
func FindOrphans(referenced []string, entries []Entry) []Entry {
	var orphans []Entry
	for _, entry := range entries {
		if !isReferenced(referenced, entry.Name) {
			orphans = append(orphans, entry)
		}
	}
	return orphans
}

func isReferenced(referenced []string, name string) bool {
	suffix := "/" + name
	for _, asset := range referenced {
		if strings.HasSuffix(asset, suffix) {
			return true
		}
	}
	return false
}

// BuildPlan lists the source and compares it with the manifest.
// It does NOT remove anything; use Apply for that.
func BuildPlan(ctx context.Context, manifestPath string, m *manifest.Manifest, src Source) (*Plan, error) {
	referenced := m.Assets()

	entries, err := src.List(ctx)
	if err != nil {
		return nil, err
	}

	orphans := FindOrphans(referenced, entries)

	return &Plan{
		ManifestPath: manifestPath,
		Shape:        m.Shape,
		Location:     src.Location(),
		Orphans:      orphans,
		Summary: Summary{
			Referenced: len(referenced),
			Scanned:    len(entries),
			Orphans:    len(orphans),
		},
	}, nil
}

// FindMissing returns the referenced paths whose file name is absent from entries,
// deduplicated and in manifest order. It is the reverse of FindOrphans.
func FindMissing(referenced []string, entries []Entry) []string {
	present := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		present[entry.Name] = struct{}{}
	}

	seen := make(map[string]struct{}, len(referenced))
	var missing []string
	for _, asset := range referenced {
		if _, ok := seen[asset]; ok {
			continue
		}
		seen[asset] = struct{}{}

		if _, ok := present[path.Base(asset)]; !ok {
			missing = append(missing, asset)
		}
	}
	return missing
}
