package integrity

import (
	"context"

	"asset-pipeline/core/manifest"
	"asset-pipeline/core/reconcile"

	"go.uber.org/zap"
)

// Report is the outcome of an integrity check.
type Report struct {
	Manifest   string   `json:"manifest"`
	Location   string   `json:"location"`
	Referenced int      `json:"referenced"`
	Scanned    int      `json:"scanned"`
	Missing    []string `json:"missing"`
}

// OK reports whether every referenced asset exists.
func (r *Report) OK() bool {
	return len(r.Missing) == 0
}

// Service runs integrity checks.
type Service struct {
	layout    manifest.Layout
	cache     *manifest.Cache
	newSource reconcile.SourceFactory
	logger    *zap.Logger
}

// NewService creates an integrity service over local directories.
func NewService(layout manifest.Layout, cache *manifest.Cache, logger *zap.Logger) *Service {
	return &Service{
		layout: layout,
		cache:  cache,
		newSource: func(location string) (reconcile.Source, error) {
			return reconcile.NewDirSource(location), nil
		},
		logger: logger,
	}
}

// WithSource replaces the assets location, e.g. with a bucket mirror.
func (s *Service) WithSource(factory reconcile.SourceFactory) *Service {
	s.newSource = factory
	return s
}

// Check resolves the manifest and lists the referenced assets that do not exist.
func (s *Service) Check(ctx context.Context, explicit string, ssr bool, assets string) (*Report, error) {
	manifestPath, err := s.layout.Resolve(explicit, ssr)
	if err != nil {
		return nil, err
	}

	m, err := s.cache.Get(manifestPath)
	if err != nil {
		return nil, err
	}

	src, err := s.newSource(manifest.AssetsDir(manifestPath, assets))
	if err != nil {
		return nil, err
	}

	entries, err := src.List(ctx)
	if err != nil {
		return nil, err
	}

	referenced := m.Assets()
	missing := reconcile.FindMissing(referenced, entries)
	if missing == nil {
		missing = []string{}
	}

	return &Report{
		Manifest:   manifestPath,
		Location:   src.Location(),
		Referenced: len(referenced),
		Scanned:    len(entries),
		Missing:    missing,
	}, nil
}
