package reconcile

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Apply reports each orphan in the plan and, unless opts.DryRun is set, removes it.
//
// By default the first failed removal aborts the batch and is returned as is.
// With opts.KeepGoing every orphan is attempted, each failure is logged and the
// failures are returned joined together.
// Returns the number of orphans removed.
func Apply(ctx context.Context, plan *Plan, src Source, opts Options, logger *zap.Logger) (removed int, err error) {
	var failures []error

	for _, orphan := range plan.Orphans {
		if opts.DryRun {
			logger.Info(fmt.Sprintf("Orphaned asset [%s] would be removed.", orphan.Path))
			continue
		}

		logger.Info(fmt.Sprintf("Removing orphaned asset [%s].", orphan.Path))
		if err := src.Remove(ctx, orphan); err != nil {
			if !opts.KeepGoing {
				plan.Summary.Removed = removed
				return removed, err
			}
			logger.Error("Failed to remove orphaned asset", zap.String("path", orphan.Path), zap.Error(err))
			failures = append(failures, err)
			continue
		}
		removed++
	}

	plan.Summary.Removed = removed
	plan.Summary.Failed = len(failures)

	return removed, errors.Join(failures...)
}
