package main

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	mdtopdf "github.com/alnah/go-mdtopdf"
	"github.com/alnah/go-mdtopdf/internal/cliutil"
	"github.com/alnah/go-mdtopdf/internal/config"
)

// documentConverter is the part of *mdtopdf.Converter the command uses.
type documentConverter interface {
	RenderHTML(ctx context.Context, in mdtopdf.Input) (string, error)
	PrintPDF(ctx context.Context, document string, format mdtopdf.PageFormat, margins mdtopdf.Margins) ([]byte, *mdtopdf.PDFInfo, error)
}

var _ documentConverter = (*mdtopdf.Converter)(nil)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdout       io.Writer
	Stderr       io.Writer
	Color        bool // color the error banner
	LoadConfig   func(nameOrPath string) (*config.Config, error)
	NewConverter func(opts *Options, logger *logrus.Logger) (documentConverter, error)
}

// DefaultEnv returns the process environment with the headless Chrome
// converter.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout:       os.Stdout,
		Stderr:       os.Stderr,
		Color:        cliutil.IsTerminal(os.Stderr),
		LoadConfig:   config.LoadConfig,
		NewConverter: newChromeConverter,
	}
}

func newChromeConverter(opts *Options, logger *logrus.Logger) (documentConverter, error) {
	return mdtopdf.NewConverter(
		mdtopdf.WithTimeout(opts.Timeout),
		mdtopdf.WithLogger(logger),
		mdtopdf.WithAssetPath(opts.AssetPath),
		mdtopdf.WithHighlightStyle(opts.HighlightStyle),
		mdtopdf.WithBrowserBin(opts.BrowserBin),
		mdtopdf.WithNoSandbox(opts.NoSandbox),
	)
}
