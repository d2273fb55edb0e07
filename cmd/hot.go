package cmd

import (
	"fmt"

	"asset-pipeline/core/output"

	"github.com/spf13/cobra"
)

var hotOutput string

// hotCmd groups the hot file commands.
var hotCmd = &cobra.Command{
	Use:   "hot",
	Short: "Inspect or clear the dev server hot file",
	Long: `The hot file holds the URL of the running dev server. The framework serves
assets from that URL while the file exists.`,
}

// hotStatusCmd prints the dev server URL recorded in the hot file.
var hotStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the dev server URL from the hot file",
	RunE:  runHotStatus,
}

// hotClearCmd removes a stale hot file.
var hotClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the hot file",
	RunE:  runHotClear,
}

func init() {
	hotStatusCmd.Flags().StringVarP(&hotOutput, "output", "o", "table", "Output format (table, json, yaml)")

	hotCmd.AddCommand(hotStatusCmd)
	hotCmd.AddCommand(hotClearCmd)
	RootCmd.AddCommand(hotCmd)
}

func runHotStatus(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(hotOutput)
	if err != nil {
		return err
	}

	s, err := setup()
	if err != nil {
		return err
	}

	url, ok, err := s.hotFile().Read()
	if err != nil {
		return err
	}
	if !ok {
		s.logger.Info("Dev server is not running.")
		return nil
	}

	if quiet {
		return nil
	}
	f := output.NewFormatter(format)
	f.Writer = cmd.OutOrStdout()
	return f.PrintKeyValue("url", url)
}

func runHotClear(cmd *cobra.Command, args []string) error {
	s, err := setup()
	if err != nil {
		return err
	}

	hot := s.hotFile()
	removed, err := hot.Remove()
	if err != nil {
		return err
	}

	if removed {
		s.logger.Info(fmt.Sprintf("Removed hot file [%s].", hot.Path))
	} else {
		s.logger.Info(fmt.Sprintf("No hot file at [%s].", hot.Path))
	}
	return nil
}
