package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum level to log (debug, info, warn, error).
	Level string `mapstructure:"level" default:"info"`
	// Format is the encoding of log entries (console or json).
	Format string `mapstructure:"format" default:"console"`
	// Output is where entries are written: stderr, stdout or a file path.
	Output string `mapstructure:"output" default:"stderr"`
	// Quiet discards every entry. Failures are still signalled through the exit code.
	Quiet bool `mapstructure:"quiet" default:"false"`
}
