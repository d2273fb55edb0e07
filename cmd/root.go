package cmd

import (
	"fmt"
	"os"
	"path"
	"strings"

	"asset-pipeline/core/apperror"
	"asset-pipeline/core/config"
	"asset-pipeline/core/hotfile"
	"asset-pipeline/core/logger"
	"asset-pipeline/core/manifest"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// quiet silences every report line and the failure log. Failures still set the
// exit code.
var quiet bool

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "asset-pipeline",
	Short: "Asset pipeline companion for the bundler",
	Long: `Asset Pipeline connects the framework's public directory with the bundler.
It resolves plugin configuration, tracks the dev server through the hot file,
serves assets in development and prunes build output the manifest no longer references.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits with 1 for configuration errors and 2
// for every other failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		if !quiet {
			// Console encoding with ISO8601 timestamps, as for every CLI report.
			cfg := &logger.Config{
				Level:  "debug",
				Format: "console",
			}

			l, logErr := logger.New(cfg)
			if logErr == nil {
				l.Error(err.Error())
				_ = l.Sync()
			} else {
				fmt.Fprintln(os.Stderr, err)
			}
		}
		os.Exit(apperror.ExitCode(err))
	}
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "Suppress all output")
}

// setup loads the configuration from the working directory and builds the logger.
func setup() (*session, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if quiet {
		cfg.Log.Quiet = true
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return &session{cfg: cfg, logger: l}, nil
}

// session is the state shared by every command.
type session struct {
	cfg    *config.Config
	logger *zap.Logger
}

// layout returns the manifest locations for the configured pipeline directories.
func (s *session) layout() manifest.Layout {
	p := s.cfg.Pipeline
	return manifest.Layout{
		BuildPath: "./" + path.Join(trim(p.PublicDirectory), trim(p.BuildDirectory)),
		SSRPath:   "./" + trim(p.SSROutputDirectory),
	}
}

// hotFile returns the configured hot file, defaulting to <public>/hot.
func (s *session) hotFile() hotfile.File {
	p := s.cfg.Pipeline
	if p.HotFile != "" {
		return hotfile.New(p.HotFile)
	}
	return hotfile.New(path.Join(trim(p.PublicDirectory), "hot"))
}

func trim(dir string) string {
	return strings.Trim(strings.TrimSpace(dir), "/")
}
