// Package apperror defines the error taxonomy shared by the commands.
//
// Two kinds of failure are distinguished:
//   - ConfigurationError: required configuration is missing or invalid. The message is
//     meant for the user and the process exits with status 1.
//   - FileSystemError: a read, list or delete operation failed. These are never retried
//     and surface with status 2.
//
// Any other error is treated like a FileSystemError for exit-code purposes.
package apperror
