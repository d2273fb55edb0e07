package cmd

import (
	"crypto/tls"
	"fmt"
	"net"
	"time"

	"asset-pipeline/core/hotfile"
	"asset-pipeline/core/loader"
	"asset-pipeline/core/logger"
	"asset-pipeline/core/manifest"
	"asset-pipeline/core/middleware/rayid"
	"asset-pipeline/core/plugin"
	"asset-pipeline/core/version"
	"asset-pipeline/feature/assets"
	"asset-pipeline/feature/integrity"
	"asset-pipeline/feature/orphans"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	// manifestCacheTTL bounds how long a manifest is served from memory when a
	// change event is missed.
	manifestCacheTTL = 30 * time.Second
	shutdownTimeout  = 5 * time.Second
)

var (
	// Flags for the serve command
	serveRoot string
	serveHost string
	servePort int
)

// serveCmd runs the development server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the development server",
	Long: `Serves project files with the dev-server placeholder rewritten, writes the
hot file once listening and removes it again on shutdown.

The orphan report of the current build is available at GET /__orphans and the
missing-asset report at GET /__integrity.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveRoot, "root", "", "Directory to serve (defaults to SERVER_ROOT)")
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host to listen on (defaults to SERVER_HOST)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (defaults to SERVER_PORT)")

	RootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	s, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = s.logger.Sync() }()
	l := s.logger

	if serveRoot != "" {
		s.cfg.Server.Root = serveRoot
	}
	if serveHost != "" {
		s.cfg.Server.Host = serveHost
	}
	if servePort != 0 {
		s.cfg.Server.Port = servePort
	}

	// 1. Resolve the plugin configuration for serving
	resolved, err := plugin.Resolve(s.cfg.Pipeline)
	if err != nil {
		return err
	}
	vars, err := plugin.LoadEnv(".", "development")
	if err != nil {
		return err
	}
	resolver, err := newResolver(resolved)
	if err != nil {
		return err
	}
	bundler, err := resolver.Resolve(plugin.UserConfig{}, plugin.Environment{
		Command: plugin.CommandServe,
		Mode:    "development",
		Vars:    vars,
	})
	if err != nil {
		return err
	}

	host, port := s.cfg.Server.Host, s.cfg.Server.Port
	if bundler.Server.Host != "" {
		host = bundler.Server.Host
	}
	if bundler.Server.Port != 0 {
		port = bundler.Server.Port
	}

	tlsFiles := bundler.Server.HTTPS
	if tlsFiles == nil && s.cfg.Server.HTTPS() {
		tlsFiles = &plugin.TLSFiles{Key: s.cfg.Server.TLSKey, Cert: s.cfg.Server.TLSCert}
	}

	// 2. Listen before anything advertises the URL
	s.cfg.Server.Host, s.cfg.Server.Port = host, port
	ln, err := listen(s.cfg.Server.Address(), tlsFiles)
	if err != nil {
		return err
	}

	devURL, err := hotfile.DevServerURL(ln.Addr(), hotfile.URLOptions{
		HTTPS:   tlsFiles != nil,
		Host:    host,
		HMRHost: bundler.Server.HMRHost,
		Sail:    resolver.Sail,
	})
	if err != nil {
		_ = ln.Close()
		return err
	}

	// 3. Hot file lifecycle
	hot := hotfile.New(resolved.HotFile)
	lifecycle := hotfile.NewLifecycle(hot, l)
	ctx := lifecycle.Install(cmd.Context())
	defer lifecycle.Close()

	if hot.Exists() {
		l.Warn("Replacing stale hot file", zap.String("path", hot.Path))
	}
	if err := hot.Write(devURL, bundler.Base); err != nil {
		_ = ln.Close()
		return err
	}

	// 4. Manifest cache, invalidated by the build
	cache := manifest.NewCache(manifestCacheTTL)
	layout := s.layout()
	watched := append(layout.Candidates("", false), layout.Candidates("", true)...)
	if w, err := manifest.NewWatcher(cache, l, watched...); err != nil {
		l.Warn("Manifest watcher unavailable", zap.Error(err))
	} else if err := w.Start(ctx); err != nil {
		l.Warn("Manifest watcher unavailable", zap.Error(err))
		w.Stop()
	} else {
		defer w.Stop()
	}

	// 5. Fiber app and features
	app, loaded, err := newServeApp(s, layout, cache, func() string { return devURL })
	if err != nil {
		_ = ln.Close()
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listener(ln)
	}()

	l.Info("Dev server started",
		zap.String("url", devURL),
		zap.String("app_url", vars["APP_URL"]),
		zap.String("root", s.cfg.Server.Root),
		zap.Strings("features", loaded),
		zap.String("plugin", version.Plugin(pluginPackageDir).String()),
		zap.String("framework", version.Framework(".").String()),
	)

	select {
	case <-ctx.Done():
		l.Info("Shutting down dev server...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("dev server failed: %w", err)
		}
	}

	return app.ShutdownWithTimeout(shutdownTimeout)
}

// newServeApp builds the fiber app with every dev-server feature loaded.
func newServeApp(s *session, layout manifest.Layout, cache *manifest.Cache, devURL func() string) (*fiber.App, []string, error) {
	l := s.logger

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	// RayID first so every log line can be traced
	app.Use(rayid.New())
	app.Use(func(c *fiber.Ctx) error {
		rl := logger.WithRayID(l, c)
		rl.Debug("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
		)
		err := c.Next()
		if err != nil {
			rl.Debug("Request error", zap.Error(err))
		}
		return err
	})

	mgr := loader.NewManager()
	mgr.Register(orphans.NewFeature(layout, cache, "", l))
	mgr.Register(integrity.NewFeature(layout, cache, l))
	// Catch-all, must stay last
	mgr.Register(assets.NewFeature(s.cfg.Server.Root, devURL, nil, l))

	loaded, err := mgr.LoadAll(app)
	if err != nil {
		return nil, nil, err
	}
	return app, loaded, nil
}

// listen opens the dev-server listener, terminating TLS when files are given.
func listen(addr string, files *plugin.TLSFiles) (net.Listener, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	if files == nil {
		return ln, nil
	}

	cert, err := tls.LoadX509KeyPair(files.Cert, files.Key)
	if err != nil {
		_ = ln.Close()
		return nil, fmt.Errorf("failed to load TLS certificate: %w", err)
	}
	return tls.NewListener(ln, &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	}), nil
}
