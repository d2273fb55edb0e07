// Package reconcile prunes build output that the manifest no longer references.
//
// A run is a single flat pass over one manifest and one assets location:
//
//  1. Resolve the manifest (explicit path or default candidates).
//  2. Flatten it into the referenced output paths.
//  3. List the plain files in the assets location.
//  4. Every file whose name is not a "/"-suffix of a referenced path is an orphan.
//  5. Report the orphans and, unless dry-running, remove them.
//
// # Sources
//
// The listing is abstracted by Source so the same pass can prune the local
// build directory (DirSource) or a bucket mirror of it (BucketSource).
//
// # Plan and Apply
//
// BuildPlan never mutates anything; Apply performs the removals. Removal is
// fail-fast by default. Options.KeepGoing switches to best-effort with per-file
// error reporting.
//
// # Usage Example
//
//	r := reconcile.NewReconciler(manifest.DefaultLayout, logger)
//	plan, err := r.Run(ctx, reconcile.Options{DryRun: true})
package reconcile
