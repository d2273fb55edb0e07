package plugin

import (
	"path"
	"strings"

	"asset-pipeline/core/apperror"
)

// Config holds the plugin settings as loaded from configuration.
type Config struct {
	// Input lists the entry points for the client build.
	Input []string `mapstructure:"input" default:""`
	// SSR lists the entry points for the server-rendering build. Defaults to Input.
	SSR []string `mapstructure:"ssr" default:""`
	// PublicDirectory is the framework's web root.
	PublicDirectory string `mapstructure:"public_directory" default:"public"`
	// BuildDirectory is the subdirectory of PublicDirectory receiving the client build.
	BuildDirectory string `mapstructure:"build_directory" default:"build"`
	// HotFile is the dev-server marker. Defaults to <PublicDirectory>/hot.
	HotFile string `mapstructure:"hot_file" default:""`
	// SSROutputDirectory receives the server-rendering build.
	SSROutputDirectory string `mapstructure:"ssr_output_directory" default:"bootstrap/ssr"`
	// Refresh lists paths that trigger a full page reload. A single "true" selects
	// the default paths.
	Refresh []string `mapstructure:"refresh" default:""`
	// DetectTLS controls Herd/Valet certificate detection: "" (auto), "true",
	// "false", or an explicit host name.
	DetectTLS string `mapstructure:"detect_tls" default:""`
}

// DefaultRefreshPaths are watched for full reloads when Refresh is "true".
var DefaultRefreshPaths = []string{
	"app/Livewire/**",
	"app/View/Components/**",
	"lang/**",
	"resources/lang/**",
	"resources/views/**",
	"routes/**",
}

// TLSMode selects how the dev server looks for local certificates.
type TLSMode int

const (
	// TLSAuto looks for certificates and silently continues without them.
	TLSAuto TLSMode = iota
	// TLSDisabled never looks for certificates.
	TLSDisabled
	// TLSRequired looks for certificates for the project's site name and fails without them.
	TLSRequired
	// TLSHost looks for certificates for an explicit host and fails without them.
	TLSHost
)

// TLSDetection is the parsed DetectTLS setting.
type TLSDetection struct {
	Mode TLSMode
	Host string
}

// Resolved is a validated plugin configuration.
type Resolved struct {
	Input              []string     `json:"input" yaml:"input"`
	SSR                []string     `json:"ssr" yaml:"ssr"`
	PublicDirectory    string       `json:"publicDirectory" yaml:"publicDirectory"`
	BuildDirectory     string       `json:"buildDirectory" yaml:"buildDirectory"`
	HotFile            string       `json:"hotFile" yaml:"hotFile"`
	SSROutputDirectory string       `json:"ssrOutputDirectory" yaml:"ssrOutputDirectory"`
	RefreshPaths       []string     `json:"refresh,omitempty" yaml:"refresh,omitempty"`
	DetectTLS          TLSDetection `json:"-" yaml:"-"`
}

// BuildPath returns the client build output directory.
func (r *Resolved) BuildPath() string {
	return path.Join(r.PublicDirectory, r.BuildDirectory)
}

// Resolve validates cfg and fills in the derived defaults.
func Resolve(cfg Config) (*Resolved, error) {
	input := nonEmpty(cfg.Input)
	if len(input) == 0 {
		return nil, apperror.Configuration(`missing configuration for "input".`)
	}

	publicDirectory := trimSlashes(cfg.PublicDirectory)
	if publicDirectory == "" {
		return nil, apperror.Configuration("publicDirectory must be a subdirectory. E.g. 'public'.")
	}

	buildDirectory := trimSlashes(cfg.BuildDirectory)
	if buildDirectory == "" {
		return nil, apperror.Configuration("buildDirectory must be a subdirectory. E.g. 'build'.")
	}

	ssr := nonEmpty(cfg.SSR)
	if len(ssr) == 0 {
		ssr = input
	}

	hotFile := cfg.HotFile
	if hotFile == "" {
		hotFile = path.Join(publicDirectory, "hot")
	}

	return &Resolved{
		Input:              input,
		SSR:                ssr,
		PublicDirectory:    publicDirectory,
		BuildDirectory:     buildDirectory,
		HotFile:            hotFile,
		SSROutputDirectory: trimSlashes(cfg.SSROutputDirectory),
		RefreshPaths:       refreshPaths(cfg.Refresh),
		DetectTLS:          parseDetectTLS(cfg.DetectTLS),
	}, nil
}

func refreshPaths(refresh []string) []string {
	refresh = nonEmpty(refresh)
	if len(refresh) == 1 {
		switch strings.ToLower(refresh[0]) {
		case "true":
			return append([]string(nil), DefaultRefreshPaths...)
		case "false":
			return nil
		}
	}
	return refresh
}

func parseDetectTLS(value string) TLSDetection {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "":
		return TLSDetection{Mode: TLSAuto}
	case "false":
		return TLSDetection{Mode: TLSDisabled}
	case "true":
		return TLSDetection{Mode: TLSRequired}
	default:
		return TLSDetection{Mode: TLSHost, Host: strings.TrimSpace(value)}
	}
}

func trimSlashes(value string) string {
	return strings.Trim(strings.TrimSpace(value), "/")
}

func nonEmpty(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
