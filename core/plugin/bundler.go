package plugin

import (
	"path"
	"strconv"
	"strings"
)

const (
	// CommandServe runs the dev server.
	CommandServe = "serve"
	// CommandBuild produces the production build.
	CommandBuild = "build"

	defaultDevPort = 5173
)

// UserConfig holds the bundler settings the user configured explicitly.
// Zero values mean "not set".
type UserConfig struct {
	Base   string
	Build  UserBuild
	Server UserServer
}

// UserBuild holds explicit build settings.
type UserBuild struct {
	// SSR marks a server-rendering build.
	SSR         bool
	Manifest    string
	SSRManifest string
	OutDir      string
	Input       []string
}

// UserServer holds explicit dev-server settings.
type UserServer struct {
	Origin     string
	Host       string
	Port       int
	StrictPort *bool
}

// Environment describes the bundler invocation.
type Environment struct {
	// Command is CommandServe or CommandBuild.
	Command string
	// Mode is the bundler mode (e.g. "development").
	Mode string
	// Vars is the loaded environment (see LoadEnv).
	Vars map[string]string
}

// BundlerConfig is the configuration merged into the bundler's own.
type BundlerConfig struct {
	Base      string        `json:"base" yaml:"base"`
	PublicDir bool          `json:"publicDir" yaml:"publicDir"`
	Build     BuildOptions  `json:"build" yaml:"build"`
	Server    ServerOptions `json:"server" yaml:"server"`
}

// BuildOptions are the resolved build settings. An empty manifest name disables
// that manifest.
type BuildOptions struct {
	Manifest          string   `json:"manifest" yaml:"manifest"`
	SSRManifest       string   `json:"ssrManifest" yaml:"ssrManifest"`
	OutDir            string   `json:"outDir" yaml:"outDir"`
	Input             []string `json:"input" yaml:"input"`
	AssetsInlineLimit int      `json:"assetsInlineLimit" yaml:"assetsInlineLimit"`
}

// ServerOptions are the resolved dev-server settings.
type ServerOptions struct {
	Origin     string    `json:"origin" yaml:"origin"`
	Host       string    `json:"host,omitempty" yaml:"host,omitempty"`
	Port       int       `json:"port,omitempty" yaml:"port,omitempty"`
	StrictPort bool      `json:"strictPort,omitempty" yaml:"strictPort,omitempty"`
	HMRHost    string    `json:"hmrHost,omitempty" yaml:"hmrHost,omitempty"`
	HTTPS      *TLSFiles `json:"https,omitempty" yaml:"https,omitempty"`
}

// Resolver merges plugin settings, user settings and the environment.
type Resolver struct {
	Plugin *Resolved
	// HomeDir is searched for Herd/Valet certificates.
	HomeDir string
	// WorkDir is the project root; its base name is the local site name.
	WorkDir string
	// Sail reports whether the process runs inside the Sail containers.
	Sail bool
}

// Resolve computes the bundler configuration for env.Command.
func (r *Resolver) Resolve(user UserConfig, env Environment) (*BundlerConfig, error) {
	if err := EnsureCommandShouldRunInEnvironment(env.Command, env.Vars); err != nil {
		return nil, err
	}

	ssr := user.Build.SSR

	cfg := &BundlerConfig{
		Base:      user.Base,
		PublicDir: false,
		Build: BuildOptions{
			Manifest:    user.Build.Manifest,
			SSRManifest: user.Build.SSRManifest,
			OutDir:      user.Build.OutDir,
			Input:       user.Build.Input,
		},
		Server: ServerOptions{
			Origin: user.Server.Origin,
		},
	}

	if cfg.Base == "" && env.Command == CommandBuild {
		cfg.Base = r.buildBase(env.Vars["ASSET_URL"])
	}
	if cfg.Build.Manifest == "" && !ssr {
		cfg.Build.Manifest = "manifest.json"
	}
	if cfg.Build.SSRManifest == "" && ssr {
		cfg.Build.SSRManifest = "ssr-manifest.json"
	}
	if cfg.Build.OutDir == "" {
		cfg.Build.OutDir = r.outDir(ssr)
	}
	if len(cfg.Build.Input) == 0 {
		cfg.Build.Input = r.input(ssr)
	}
	if cfg.Server.Origin == "" {
		cfg.Server.Origin = Placeholder
	}

	if r.Sail {
		cfg.Server.Host = user.Server.Host
		if cfg.Server.Host == "" {
			cfg.Server.Host = "0.0.0.0"
		}
		cfg.Server.Port = user.Server.Port
		if cfg.Server.Port == 0 {
			cfg.Server.Port = defaultDevPort
			if p, err := strconv.Atoi(env.Vars["VITE_PORT"]); err == nil {
				cfg.Server.Port = p
			}
		}
		cfg.Server.StrictPort = true
		if user.Server.StrictPort != nil {
			cfg.Server.StrictPort = *user.Server.StrictPort
		}
	}

	if env.Command == CommandServe {
		tls, err := r.serverTLS(env.Vars)
		if err != nil {
			return nil, err
		}
		if tls != nil {
			cfg.Server.Host = tls.Host
			cfg.Server.HMRHost = tls.Host
			files := tls.Files
			cfg.Server.HTTPS = &files
		}
	}

	return cfg, nil
}

// serverTLS prefers local Herd/Valet certificates over the environment's.
func (r *Resolver) serverTLS(vars map[string]string) (*ServerTLS, error) {
	tls, err := DevelopmentServerTLS(r.Plugin.DetectTLS, r.HomeDir, r.WorkDir)
	if err != nil || tls != nil {
		return tls, err
	}
	return EnvironmentServerTLS(vars)
}

func (r *Resolver) buildBase(assetURL string) string {
	if !strings.HasSuffix(assetURL, "/") {
		assetURL += "/"
	}
	return assetURL + r.Plugin.BuildDirectory + "/"
}

func (r *Resolver) outDir(ssr bool) string {
	if ssr {
		return r.Plugin.SSROutputDirectory
	}
	return path.Join(r.Plugin.PublicDirectory, r.Plugin.BuildDirectory)
}

func (r *Resolver) input(ssr bool) []string {
	if ssr {
		return r.Plugin.SSR
	}
	return r.Plugin.Input
}
