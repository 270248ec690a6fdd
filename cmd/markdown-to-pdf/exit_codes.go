package main

import (
	"context"
	"errors"
	"os"

	mdtopdf "github.com/alnah/go-mdtopdf"
	"github.com/alnah/go-mdtopdf/internal/cliutil"
	"github.com/alnah/go-mdtopdf/internal/config"
)

// Exit codes for markdown-to-pdf.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, mdtopdf.ErrBrowserLaunch) ||
		errors.Is(err, mdtopdf.ErrBrowserConnect) ||
		errors.Is(err, mdtopdf.ErrPageCreate) ||
		errors.Is(err, mdtopdf.ErrPageLoad) ||
		errors.Is(err, mdtopdf.ErrPDFGeneration) ||
		errors.Is(err, context.DeadlineExceeded) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrReadCSS) ||
		errors.Is(err, ErrWritePDF) ||
		errors.Is(err, ErrWriteHTML) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if cliutil.IsUsageError(err) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, mdtopdf.ErrInvalidMargin) ||
		errors.Is(err, mdtopdf.ErrInvalidPageFormat) ||
		errors.Is(err, mdtopdf.ErrInvalidMaxDepth) ||
		errors.Is(err, mdtopdf.ErrInvalidHighlightStyle) ||
		errors.Is(err, mdtopdf.ErrInvalidAssetPath) ||
		errors.Is(err, mdtopdf.ErrStyleNotFound) {
		return ExitUsage
	}

	return ExitGeneral
}
