package main

import (
	"errors"
	"os"

	mdtopdf "github.com/alnah/go-mdtopdf"
	"github.com/alnah/go-mdtopdf/internal/cliutil"
)

// Exit codes for markdown-github-toc.
const (
	ExitSuccess = 0 // Destination written
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid arguments or flags
	ExitIO      = 3 // Source unreadable or destination unwritable
)

// exitCodeFor returns the exit code for err, following wrapped errors.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if cliutil.IsUsageError(err) ||
		errors.Is(err, mdtopdf.ErrInvalidMaxDepth) {
		return ExitUsage
	}

	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWriteMarkdown) {
		return ExitIO
	}

	return ExitGeneral
}
