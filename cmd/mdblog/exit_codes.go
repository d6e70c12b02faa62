package main

import (
	"errors"
	"os"

	mdblog "github.com/alnah/go-mdblog"
	"github.com/alnah/go-mdblog/internal/assets"
)

// Exit codes for the mdblog CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful build
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, mdblog.ErrSourceNotFound) ||
		errors.Is(err, mdblog.ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, mdblog.ErrSourceNotDir) ||
		errors.Is(err, mdblog.ErrConfigNotFound) ||
		errors.Is(err, mdblog.ErrConfigParse) ||
		errors.Is(err, mdblog.ErrSlugCollision) ||
		errors.Is(err, mdblog.ErrInvalidTemplateKind) ||
		errors.Is(err, assets.ErrInvalidBasePath) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrOutputInsideSource) ||
		errors.Is(err, ErrAlreadyInitialized) {
		return ExitUsage
	}

	return ExitGeneral
}
