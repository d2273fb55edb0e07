package cmd

import (
	"fmt"
	"path"

	"asset-pipeline/core/manifest"
	"asset-pipeline/core/reconcile"
	"asset-pipeline/core/storage"

	"github.com/spf13/cobra"
)

var (
	// Flags for the cleanup command
	cleanupManifest  string
	cleanupSSR       bool
	cleanupAssets    string
	cleanupDryRun    bool
	cleanupRemote    bool
	cleanupKeepGoing bool
)

// cleanupCmd removes build artifacts the manifest no longer references.
var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Remove orphaned assets from the build output",
	Long: `Reads the build manifest and removes every file in the assets directory
that no manifest entry references.

Examples:
  # Report what would be removed
  cleanup --dry-run

  # Clean the server-rendering build
  cleanup --ssr

  # Explicit manifest and assets directory
  cleanup --manifest=public/build/manifest.json --assets=public/build/assets

  # Clean the mirrored build in object storage, attempting every removal
  cleanup --remote --keep-going`,
	RunE: runCleanup,
}

func init() {
	cleanupCmd.Flags().StringVar(&cleanupManifest, "manifest", "", "Path to the manifest file")
	cleanupCmd.Flags().BoolVar(&cleanupSSR, "ssr", false, "Use the server-rendering manifest")
	cleanupCmd.Flags().StringVar(&cleanupAssets, "assets", "", "Assets directory (or bucket prefix with --remote)")
	cleanupCmd.Flags().BoolVar(&cleanupDryRun, "dry-run", false, "Report orphaned assets without removing them")
	cleanupCmd.Flags().BoolVar(&cleanupRemote, "remote", false, "Clean the assets mirrored in object storage")
	cleanupCmd.Flags().BoolVar(&cleanupKeepGoing, "keep-going", false, "Attempt every removal and report all failures")

	RootCmd.AddCommand(cleanupCmd)
}

func runCleanup(cmd *cobra.Command, args []string) error {
	s, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = s.logger.Sync() }()

	r := reconcile.NewReconciler(s.layout(), s.logger)

	if cleanupRemote {
		client, err := storage.NewClient(s.cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to connect to storage: %w", err)
		}

		prefix := cleanupAssets
		if prefix == "" {
			prefix = remoteAssetsPrefix(s)
		}
		r.NewSource = func(string) (reconcile.Source, error) {
			return reconcile.NewBucketSource(client, s.cfg.Storage.Bucket, prefix), nil
		}
	}

	_, err = r.Run(cmd.Context(), reconcile.Options{
		Manifest:  cleanupManifest,
		SSR:       cleanupSSR,
		Assets:    cleanupAssets,
		DryRun:    cleanupDryRun,
		KeepGoing: cleanupKeepGoing,
	})
	return err
}

// remoteAssetsPrefix mirrors the local layout: <prefix>/<build directory>/assets.
func remoteAssetsPrefix(s *session) string {
	return path.Join(trim(s.cfg.Storage.Prefix), trim(s.cfg.Pipeline.BuildDirectory), manifest.AssetsDirName)
}
