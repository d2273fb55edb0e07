package cmd

import (
	"path/filepath"

	"asset-pipeline/core/output"
	"asset-pipeline/core/version"

	"github.com/spf13/cobra"
)

// pluginPackageDir is where the bundler plugin is installed.
var pluginPackageDir = filepath.Join("node_modules", "laravel-vite-plugin")

var versionOutput string

// versionCmd prints the installed plugin and framework versions.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the installed plugin and framework versions",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := output.ParseFormat(versionOutput)
		if err != nil {
			return err
		}
		if quiet {
			return nil
		}

		f := output.NewFormatter(format)
		f.Writer = cmd.OutOrStdout()
		return f.PrintTable(output.Table{
			Headers: []string{"COMPONENT", "VERSION"},
			Rows: [][]string{
				{"plugin", version.Plugin(pluginPackageDir).String()},
				{"framework", version.Framework(".").String()},
			},
		})
	},
}

func init() {
	versionCmd.Flags().StringVarP(&versionOutput, "output", "o", "table", "Output format (table, json, yaml)")
	RootCmd.AddCommand(versionCmd)
}
