package cmd

import (
	"strconv"
	"strings"

	"asset-pipeline/core/manifest"
	"asset-pipeline/core/output"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the manifest command
	manifestPath   string
	manifestSSR    bool
	manifestOutput string
)

// manifestCmd prints the entries of the resolved manifest.
var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Show the entries of the build manifest",
	Long: `Resolves the manifest the same way cleanup does and prints its entries.

Examples:
  manifest
  manifest --ssr --output json`,
	RunE: runManifest,
}

func init() {
	manifestCmd.Flags().StringVar(&manifestPath, "manifest", "", "Path to the manifest file")
	manifestCmd.Flags().BoolVar(&manifestSSR, "ssr", false, "Use the server-rendering manifest")
	manifestCmd.Flags().StringVarP(&manifestOutput, "output", "o", "table", "Output format (table, json, yaml)")

	RootCmd.AddCommand(manifestCmd)
}

func runManifest(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(manifestOutput)
	if err != nil {
		return err
	}

	s, err := setup()
	if err != nil {
		return err
	}

	path, err := s.layout().Resolve(manifestPath, manifestSSR)
	if err != nil {
		return err
	}

	m, err := manifest.Load(path)
	if err != nil {
		return err
	}

	s.logger.Debug("Manifest loaded",
		zap.String("path", path),
		zap.Stringer("shape", m.Shape),
		zap.Int("entries", m.Len()),
	)

	f := output.NewFormatter(format)
	f.Writer = cmd.OutOrStdout()
	return f.PrintTable(manifestTable(m))
}

// manifestTable flattens m into one row per entry.
func manifestTable(m *manifest.Manifest) output.Table {
	if m.IsSSR() {
		t := output.Table{Headers: []string{"KEY", "FILES"}}
		for _, e := range m.SSR {
			t.Rows = append(t.Rows, []string{e.Key, strings.Join(e.Files, ", ")})
		}
		return t
	}

	t := output.Table{Headers: []string{"KEY", "FILE", "CSS", "ENTRY"}}
	for _, e := range m.Client {
		t.Rows = append(t.Rows, []string{e.Key, e.File, strings.Join(e.CSS, ", "), strconv.FormatBool(e.IsEntry)})
	}
	return t
}
