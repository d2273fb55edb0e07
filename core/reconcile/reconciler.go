package reconcile

import (
	"context"
	"fmt"

	"asset-pipeline/core/manifest"

	"go.uber.org/zap"
)

// SourceFactory opens the assets location derived for a run.
type SourceFactory func(location string) (Source, error)

// Reconciler resolves a manifest, compares it with the assets location and
// prunes the orphans, reporting each step through the logger.
type Reconciler struct {
	// Layout provides the default manifest candidates.
	Layout manifest.Layout
	// NewSource opens the assets location. Defaults to a local directory.
	NewSource SourceFactory
	// Logger receives the report lines. Use zap.NewNop() for quiet runs.
	Logger *zap.Logger
}

// NewReconciler creates a reconciler over local directories.
func NewReconciler(layout manifest.Layout, logger *zap.Logger) *Reconciler {
	return &Reconciler{
		Layout: layout,
		NewSource: func(location string) (Source, error) {
			return NewDirSource(location), nil
		},
		Logger: logger,
	}
}

// Run performs a single cleanup pass.
//
// A missing manifest fails with a ConfigurationError before anything is listed or
// removed. Listing and removal failures propagate unchanged.
func (r *Reconciler) Run(ctx context.Context, opts Options) (*Plan, error) {
	manifestPath, err := r.Layout.Resolve(opts.Manifest, opts.SSR)
	if err != nil {
		return nil, err
	}

	r.Logger.Info(fmt.Sprintf("Reading manifest [%s].", manifestPath))

	m, err := manifest.Load(manifestPath)
	if err != nil {
		return nil, err
	}

	if m.IsSSR() {
		r.Logger.Info("SSR manifest found.")
	} else {
		r.Logger.Info("Non-SSR manifest found.")
	}

	src, err := r.NewSource(manifest.AssetsDir(manifestPath, opts.Assets))
	if err != nil {
		return nil, err
	}

	r.Logger.Info(fmt.Sprintf("Verify assets in [%s].", src.Location()))

	plan, err := BuildPlan(ctx, manifestPath, m, src)
	if err != nil {
		return nil, err
	}

	r.Logger.Info(OrphanCountMessage(len(plan.Orphans)))

	if _, err := Apply(ctx, plan, src, opts, r.Logger); err != nil {
		return plan, err
	}

	return plan, nil
}

// OrphanCountMessage returns the report line for the number of orphans found.
func OrphanCountMessage(count int) string {
	switch count {
	case 0:
		return "No orphaned assets found."
	case 1:
		return "[1] orphaned asset found."
	default:
		return fmt.Sprintf("[%d] orphaned assets found.", count)
	}
}
