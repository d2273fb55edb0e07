package cmd

import (
	"fmt"
	"time"

	"asset-pipeline/core/apperror"
	"asset-pipeline/core/manifest"
	"asset-pipeline/core/output"
	"asset-pipeline/core/reconcile"
	"asset-pipeline/core/storage"
	"asset-pipeline/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the integrity command
	integrityManifest string
	integritySSR      bool
	integrityAssets   string
	integrityRemote   bool
	integrityOutput   string
)

// integrityCmd checks that every asset the manifest references exists.
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check that every referenced asset was built",
	Long: `Reads the build manifest and reports every referenced asset missing from the
assets directory (or its object storage mirror with --remote). Exits non-zero
when anything is missing.`,
	RunE: runIntegrity,
}

func init() {
	integrityCmd.Flags().StringVar(&integrityManifest, "manifest", "", "Path to the manifest file")
	integrityCmd.Flags().BoolVar(&integritySSR, "ssr", false, "Use the server-rendering manifest")
	integrityCmd.Flags().StringVar(&integrityAssets, "assets", "", "Assets directory (or bucket prefix with --remote)")
	integrityCmd.Flags().BoolVar(&integrityRemote, "remote", false, "Check the assets mirrored in object storage")
	integrityCmd.Flags().StringVarP(&integrityOutput, "output", "o", "table", "Output format (table, json, yaml)")

	RootCmd.AddCommand(integrityCmd)
}

func runIntegrity(cmd *cobra.Command, args []string) error {
	startTime := time.Now()

	format, err := output.ParseFormat(integrityOutput)
	if err != nil {
		return err
	}

	s, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = s.logger.Sync() }()

	// A single check needs no caching.
	svc := integrity.NewService(s.layout(), manifest.NewCache(0), s.logger)

	if integrityRemote {
		client, err := storage.NewClient(s.cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to connect to storage: %w", err)
		}
		prefix := integrityAssets
		if prefix == "" {
			prefix = remoteAssetsPrefix(s)
		}
		svc.WithSource(func(string) (reconcile.Source, error) {
			return reconcile.NewBucketSource(client, s.cfg.Storage.Bucket, prefix), nil
		})
	}

	report, err := svc.Check(cmd.Context(), integrityManifest, integritySSR, integrityAssets)
	if err != nil {
		return err
	}

	s.logger.Info("Integrity check completed",
		zap.String("manifest", report.Manifest),
		zap.String("location", report.Location),
		zap.Int("referenced", report.Referenced),
		zap.Int("missing", len(report.Missing)),
		zap.Duration("duration", time.Since(startTime)),
	)

	if !quiet && !report.OK() {
		f := output.NewFormatter(format)
		f.Writer = cmd.OutOrStdout()
		t := output.Table{Headers: []string{"MISSING"}}
		for _, asset := range report.Missing {
			t.Rows = append(t.Rows, []string{asset})
		}
		if err := f.PrintTable(t); err != nil {
			return err
		}
	}

	if !report.OK() {
		return apperror.FileSystem("verify", report.Location, fmt.Errorf("%d referenced assets are missing", len(report.Missing)))
	}
	return nil
}
