package cli

import (
	"context"
	"errors"
	"io/fs"
	"strings"

	"github.com/yaklabco/rocketlab/internal/configloader"
	"github.com/yaklabco/rocketlab/pkg/fsutil"
)

// Exit codes for rocketlab, following sysexits.h.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// UsageError marks a mistake in how the command was invoked.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

func usageErrorf(err error) error {
	if err == nil {
		return nil
	}
	return &UsageError{Err: err}
}

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) || isCobraUsageError(err) {
		return ExitInvalidUsage
	}

	var validationErr *configloader.ValidationError
	if errors.As(err, &validationErr) {
		return ExitConfigError
	}

	if errors.Is(err, context.Canceled) {
		return ExitSuccess
	}

	var pathErr *fs.PathError
	if errors.As(err, &pathErr) ||
		errors.Is(err, fsutil.ErrNotFound) ||
		errors.Is(err, fsutil.ErrPermissionDenied) ||
		errors.Is(err, fsutil.ErrIsDirectory) ||
		errors.Is(err, fsutil.ErrTooLarge) {
		return ExitIOError
	}

	return ExitInternalError
}

// isCobraUsageError recognises the untyped errors cobra returns for
// unknown commands and argument count mismatches.
func isCobraUsageError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") ||
		strings.HasPrefix(msg, "accepts ") ||
		strings.HasPrefix(msg, "unknown flag") ||
		strings.HasPrefix(msg, "unknown shorthand flag")
}
