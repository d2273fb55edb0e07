package cmd

import (
	"os"

	"asset-pipeline/core/apperror"
	"asset-pipeline/core/output"
	"asset-pipeline/core/plugin"

	"github.com/spf13/cobra"
)

var (
	// Flags for the resolve command
	resolveCommand  string
	resolveMode     string
	resolveInput    []string
	resolveSSRInput []string
	resolveSSR      bool
	resolveBase     string
	resolveOutput   string
)

// resolveCmd prints the bundler options derived from the plugin configuration.
var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve the plugin configuration into bundler options",
	Long: `Merges the plugin configuration, explicit bundler settings and the project's
.env files into the options handed to the bundler.

Examples:
  resolve --input resources/js/app.js
  resolve --command serve --output yaml
  resolve --ssr --ssr-input resources/js/ssr.js`,
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVar(&resolveCommand, "command", plugin.CommandBuild, "Bundler command (serve or build)")
	resolveCmd.Flags().StringVar(&resolveMode, "mode", "", "Bundler mode (defaults to development for serve, production for build)")
	resolveCmd.Flags().StringSliceVar(&resolveInput, "input", nil, "Entry points (overrides PIPELINE_INPUT)")
	resolveCmd.Flags().StringSliceVar(&resolveSSRInput, "ssr-input", nil, "Server-rendering entry points (overrides PIPELINE_SSR)")
	resolveCmd.Flags().BoolVar(&resolveSSR, "ssr", false, "Resolve the server-rendering build")
	resolveCmd.Flags().StringVar(&resolveBase, "base", "", "Explicit public base path")
	resolveCmd.Flags().StringVarP(&resolveOutput, "output", "o", "json", "Output format (json, yaml)")

	RootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	if resolveCommand != plugin.CommandServe && resolveCommand != plugin.CommandBuild {
		return apperror.Configuration("unknown command %q (valid: serve, build)", resolveCommand)
	}

	format, err := output.ParseFormat(resolveOutput)
	if err != nil {
		return err
	}

	s, err := setup()
	if err != nil {
		return err
	}

	pluginCfg := s.cfg.Pipeline
	if len(resolveInput) > 0 {
		pluginCfg.Input = resolveInput
	}
	if len(resolveSSRInput) > 0 {
		pluginCfg.SSR = resolveSSRInput
	}

	mode := resolveMode
	if mode == "" {
		mode = "production"
		if resolveCommand == plugin.CommandServe {
			mode = "development"
		}
	}

	resolved, err := plugin.Resolve(pluginCfg)
	if err != nil {
		return err
	}

	resolver, err := newResolver(resolved)
	if err != nil {
		return err
	}

	vars, err := plugin.LoadEnv(".", mode)
	if err != nil {
		return err
	}

	bundler, err := resolver.Resolve(
		plugin.UserConfig{Base: resolveBase, Build: plugin.UserBuild{SSR: resolveSSR}},
		plugin.Environment{Command: resolveCommand, Mode: mode, Vars: vars},
	)
	if err != nil {
		return err
	}

	f := output.NewFormatter(format)
	f.Writer = cmd.OutOrStdout()
	return f.Print(bundler)
}

// newResolver builds a resolver for the current user and working directory.
func newResolver(resolved *plugin.Resolved) (*plugin.Resolver, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, apperror.FileSystem("getwd", ".", err)
	}

	_, sail := os.LookupEnv("LARAVEL_SAIL")

	return &plugin.Resolver{
		Plugin:  resolved,
		HomeDir: home,
		WorkDir: wd,
		Sail:    sail,
	}, nil
}
