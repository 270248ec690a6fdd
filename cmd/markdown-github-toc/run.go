package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"

	mdtopdf "github.com/alnah/go-mdtopdf"
	"github.com/alnah/go-mdtopdf/internal/cliutil"
	"github.com/alnah/go-mdtopdf/internal/fileutil"
	"github.com/alnah/go-mdtopdf/internal/hints"
)

// Sentinel errors for file access.
var (
	ErrReadMarkdown  = errors.New("failed to read markdown")
	ErrWriteMarkdown = errors.New("failed to write markdown")
)

// run executes one invocation and returns the process exit code.
func run(args []string, env *Environment) int {
	flags, positional, err := parseFlags(args)
	if err != nil {
		cliutil.PrintUsageError(env.Stderr, err, env.Color, printUsage)
		return exitCodeFor(err)
	}

	if flags.common.help {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if flags.common.version {
		fmt.Fprintf(env.Stdout, "markdown-github-toc %s\n", Version)
		return ExitSuccess
	}

	opts, err := validateOptions(flags, positional)
	if err != nil {
		cliutil.PrintUsageError(env.Stderr, err, env.Color, printUsage)
		return exitCodeFor(err)
	}

	logger := cliutil.NewLogger(env.Stderr, cliutil.LevelFor(flags.common.verbose, flags.common.quiet))
	logger.Debugf("GOMAXPROCS=%d", runtime.GOMAXPROCS(0))

	if err := writeTOC(opts, logger); err != nil {
		cliutil.Banner(env.Stderr, err, env.Color)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// writeTOC reads the source, inserts the table of contents and replaces the
// destination in one atomic write.
func writeTOC(opts *Options, logger *logrus.Logger) error {
	data, err := os.ReadFile(opts.Source)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	markdown := string(data)
	if !strings.Contains(markdown, mdtopdf.TOCOpenMarker) {
		logger.WithField("source", opts.Source).Warn("no <!-- toc --> marker found, nothing inserted")
	}

	out, err := mdtopdf.InsertTOC(markdown, opts.MaxDepth)
	if err != nil {
		return fmt.Errorf("%s: %w", opts.Source, err)
	}

	if err := fileutil.WriteFileAtomic(opts.Destination, []byte(out), 0o644); err != nil {
		return fmt.Errorf("%w: %v%s", ErrWriteMarkdown, err, hints.ForOutputDirectory())
	}

	logger.WithFields(logrus.Fields{
		"destination": opts.Destination,
		"maxdepth":    opts.MaxDepth,
	}).Debug("table of contents written")
	return nil
}
