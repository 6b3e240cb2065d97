package main

import (
	"errors"
	"os"

	"github.com/alnah/markdown2html"
	"github.com/alnah/markdown2html/internal/assets"
	"github.com/alnah/markdown2html/internal/config"
)

// Exit codes for the markdown2html CLI.
// Follows Unix conventions: 0=success, 1=general, and custom codes < 126.
// Wrong arguments and a missing input exit 1, the historical contract of
// the two-argument invocation.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // Wrong arguments, missing input, unexpected error
	ExitUsage   = 2 // Invalid flags, config, or style
	ExitIO      = 3 // Read or write failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, ErrMissingArgs) || errors.Is(err, ErrMissingInput) {
		return ExitGeneral
	}

	// I/O errors (exit 3)
	if errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWriteHTML) ||
		errors.Is(err, assets.ErrAssetRead) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	// Usage/config/style errors (exit 2)
	if errors.Is(err, ErrInvalidFlag) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, markdown2html.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrPathTraversal) ||
		errors.Is(err, markdown2html.ErrReadStyle) ||
		errors.Is(err, markdown2html.ErrInvalidAssetPath) {
		return ExitUsage
	}

	return ExitGeneral
}
