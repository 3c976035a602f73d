package main

import (
	"errors"
	"os"

	portfoliodata "github.com/ozzgio/portfolio-data"
	"github.com/ozzgio/portfolio-data/internal/config"
)

// Exit codes for the portfolio-data CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage.
const (
	ExitSuccess = 0 // Successful generation
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or arguments
	ExitIO      = 3 // File not found, permission denied, write failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use
// fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, portfoliodata.ErrVaultNotFound) ||
		errors.Is(err, portfoliodata.ErrCreateOutputDir) ||
		errors.Is(err, portfoliodata.ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config errors (exit 2)
	if errors.Is(err, ErrTooManyArgs) ||
		errors.Is(err, portfoliodata.ErrVaultNotADir) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidLimit) ||
		errors.Is(err, config.ErrInvalidExt) {
		return ExitUsage
	}

	return ExitGeneral
}
