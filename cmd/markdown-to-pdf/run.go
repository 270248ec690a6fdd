package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/sirupsen/logrus"

	mdtopdf "github.com/alnah/go-mdtopdf"
	"github.com/alnah/go-mdtopdf/internal/cliutil"
	"github.com/alnah/go-mdtopdf/internal/config"
	"github.com/alnah/go-mdtopdf/internal/fileutil"
	"github.com/alnah/go-mdtopdf/internal/hints"
)

// Sentinel errors for file access.
var (
	ErrReadMarkdown = errors.New("failed to read markdown")
	ErrReadCSS      = errors.New("failed to read CSS file")
	ErrWritePDF     = errors.New("failed to write PDF")
	ErrWriteHTML    = errors.New("failed to write HTML")
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
		fmt.Fprintf(env.Stdout, "markdown-to-pdf %s\n", Version)
		return ExitSuccess
	}

	if flags.common.config != "" {
		cfg, err := env.LoadConfig(flags.common.config)
		if err == nil {
			err = mergeConfig(flags, cfg)
		}
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				err = fmt.Errorf("%w%s", err, hints.ForConfigNotFound(config.SearchPaths(flags.common.config)))
			}
			cliutil.Banner(env.Stderr, err, env.Color)
			return exitCodeFor(err)
		}
	}

	opts, err := validateOptions(flags, positional)
	if err != nil {
		cliutil.PrintUsageError(env.Stderr, err, env.Color, printUsage)
		return exitCodeFor(err)
	}

	logger := cliutil.NewLogger(env.Stderr, cliutil.LevelFor(flags.common.verbose, flags.common.quiet))
	logger.Debugf("GOMAXPROCS=%d", runtime.GOMAXPROCS(0))

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := convert(ctx, opts, logger, env); err != nil {
		cliutil.Banner(env.Stderr, err, env.Color)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// convert renders the source to HTML, saves the HTML when asked, prints the
// PDF and writes it. Files are replaced atomically, so a failed run leaves
// no partial PDF.
func convert(ctx context.Context, opts *Options, logger *logrus.Logger, env *Environment) error {
	logger.WithFields(logrus.Fields{
		"source":      opts.Source,
		"destination": opts.Destination,
		"format":      opts.Format,
		"toc":         opts.TOC,
		"maxdepth":    opts.MaxDepth,
		"margins":     fmt.Sprintf("%.3f/%.3f/%.3f/%.3fin", opts.Margins.Top, opts.Margins.Right, opts.Margins.Bottom, opts.Margins.Left),
	}).Debug("options")

	markdown, err := os.ReadFile(opts.Source)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	var css string
	if opts.CSSPath != "" {
		data, err := os.ReadFile(opts.CSSPath)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrReadCSS, err)
		}
		css = string(data)
	}

	conv, err := env.NewConverter(opts, logger)
	if err != nil {
		return err
	}

	document, err := conv.RenderHTML(ctx, mdtopdf.Input{
		Markdown:   string(markdown),
		SourcePath: opts.Source,
		TOC:        opts.TOC,
		MaxDepth:   opts.MaxDepth,
		Format:     opts.Format,
		Margins:    opts.Margins,
		CSS:        css,
	})
	if err != nil {
		return err
	}

	if opts.KeepHTML {
		if err := fileutil.WriteFileAtomic(opts.HTMLPath, []byte(document), 0o644); err != nil {
			return fmt.Errorf("%w: %v%s", ErrWriteHTML, err, hints.ForOutputDirectory())
		}
		logger.WithField("file", opts.HTMLPath).Info("HTML saved")
	}

	pdf, info, err := conv.PrintPDF(ctx, document, opts.Format, opts.Margins)
	if err != nil {
		return withBrowserHint(err, opts)
	}

	if err := fileutil.WriteFileAtomic(opts.Destination, pdf, 0o644); err != nil {
		return fmt.Errorf("%w: %v%s", ErrWritePDF, err, hints.ForOutputDirectory())
	}

	logger.WithFields(logrus.Fields{
		"file":  opts.Destination,
		"pages": info.Pages,
	}).Info("PDF written")
	return nil
}

// withBrowserHint appends a hint to browser failures.
func withBrowserHint(err error, opts *Options) error {
	switch {
	case errors.Is(err, mdtopdf.ErrBrowserLaunch), errors.Is(err, mdtopdf.ErrBrowserConnect):
		hint := hints.ForBrowserLaunch(hints.BrowserSettings{BrowserBin: opts.BrowserBin, NoSandbox: opts.NoSandbox})
		return fmt.Errorf("%w%s", err, hint)
	case errors.Is(err, mdtopdf.ErrPageLoad), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w%s", err, hints.ForTimeout())
	}
	return err
}
