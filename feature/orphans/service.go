package orphans

import (
	"context"

	"asset-pipeline/core/manifest"
	"asset-pipeline/core/reconcile"

	"go.uber.org/zap"
)

// Service builds dry-run reconciliation plans.
type Service struct {
	layout manifest.Layout
	cache  *manifest.Cache
	assets string
	logger *zap.Logger
}

// NewService creates a report service. assets overrides the directory next to the
// manifest when set.
func NewService(layout manifest.Layout, cache *manifest.Cache, assets string, logger *zap.Logger) *Service {
	return &Service{
		layout: layout,
		cache:  cache,
		assets: assets,
		logger: logger,
	}
}

// Report resolves the manifest and lists the orphans in its assets directory.
func (s *Service) Report(ctx context.Context, ssr bool) (*reconcile.Plan, error) {
	manifestPath, err := s.layout.Resolve("", ssr)
	if err != nil {
		return nil, err
	}

	m, err := s.cache.Get(manifestPath)
	if err != nil {
		return nil, err
	}

	src := reconcile.NewDirSource(manifest.AssetsDir(manifestPath, s.assets))
	return reconcile.BuildPlan(ctx, manifestPath, m, src)
}
