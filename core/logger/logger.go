package logger

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a zap logger for cfg. Quiet returns a no-op logger.
//
// Debug level uses zap's development preset (caller, ISO8601 timestamps); every
// other level uses the production preset. The console format additionally drops
// callers and stack traces so that report lines read as plain sentences.
func New(cfg *Config) (*zap.Logger, error) {
	if cfg.Quiet {
		return zap.NewNop(), nil
	}

	config := zap.NewProductionConfig()
	if cfg.Level == "debug" {
		config = zap.NewDevelopmentConfig()
	}
	config.Level = zap.NewAtomicLevelAt(parseLevel(cfg.Level))

	if cfg.Output != "" {
		config.OutputPaths = []string{cfg.Output}
	}

	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.TimeKey = "time"
	config.EncoderConfig.MessageKey = "message"

	if cfg.Format == "json" {
		config.Encoding = "json"
		return config.Build()
	}

	config.Encoding = "console"
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.DisableCaller = true
	config.DisableStacktrace = true
	return config.Build()
}

// parseLevel falls back to info for unknown levels.
func parseLevel(level string) zapcore.Level {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

// WithRayID returns a logger with the ray_id field set from the Fiber context.
func WithRayID(l *zap.Logger, c *fiber.Ctx) *zap.Logger {
	rid := c.Locals("ray_id")
	if str, ok := rid.(string); ok && str != "" {
		return l.With(zap.String("ray_id", str))
	}
	return l
}
