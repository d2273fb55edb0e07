package apperror

import (
	"errors"
	"fmt"
)

const (
	// ExitOK is returned for successful runs, including runs that found nothing to do.
	ExitOK = 0
	// ExitConfiguration is returned when required configuration is missing.
	ExitConfiguration = 1
	// ExitFailure is returned for every other unhandled failure.
	ExitFailure = 2
)

// ConfigurationError reports missing or invalid configuration.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Configuration creates a ConfigurationError with a formatted message.
func Configuration(format string, args ...any) error {
	return &ConfigurationError{Message: fmt.Sprintf(format, args...)}
}

// FileSystemError wraps a failed file system or object storage operation.
type FileSystemError struct {
	// Op is the operation that failed (e.g. "list", "remove", "read").
	Op string
	// Path is the file, directory or object key involved.
	Path string
	// Err is the underlying cause.
	Err error
}

func (e *FileSystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileSystemError) Unwrap() error {
	return e.Err
}

// FileSystem wraps err as a FileSystemError. A nil err returns nil.
func FileSystem(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &FileSystemError{Op: op, Path: path, Err: err}
}

// IsConfiguration reports whether err is or wraps a ConfigurationError.
func IsConfiguration(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}

// ExitCode maps an error returned by a command to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if IsConfiguration(err) {
		return ExitConfiguration
	}
	return ExitFailure
}
