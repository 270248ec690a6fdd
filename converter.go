package mdtopdf

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/alnah/go-mdtopdf/internal/assets"
	"github.com/alnah/go-mdtopdf/internal/pipeline"
	"github.com/alnah/go-mdtopdf/internal/toc"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.CommonMarkPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.CSSInjector          = (*pipeline.CSSInjection)(nil)
)

// DefaultTimeout bounds one browser run when WithTimeout is not given.
const DefaultTimeout = 60 * time.Second

// DefaultHighlightStyle is the chroma theme used for code blocks.
const DefaultHighlightStyle = assets.DefaultHighlightStyle

// Input is one document to convert.
type Input struct {
	Markdown string
	// SourcePath is the markdown file the content came from. Relative links
	// and images resolve against its directory, and its base name is the
	// fallback document title. May be empty.
	SourcePath string
	TOC        bool // insert a table of contents at the markers
	MaxDepth   int  // TOC depth; 0 means DefaultMaxDepth
	Format     PageFormat
	Margins    Margins
	CSS        string // appended after the built-in stylesheets
}

// Result is the outcome of a conversion.
type Result struct {
	HTML string // standalone HTML document sent to the browser
	PDF  []byte
	Info *PDFInfo
}

// Option configures a Converter.
type Option func(*Converter)

type converterConfig struct {
	timeout        time.Duration
	assetPath      string
	highlightStyle string
	browser        browserSettings
}

// WithTimeout bounds each browser run.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("mdtopdf: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithLogger sets the logger for pipeline diagnostics. The default discards
// everything.
func WithLogger(logger *logrus.Logger) Option {
	return func(c *Converter) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithAssetPath layers a directory of styles/<name>.css overrides over the
// embedded stylesheets.
func WithAssetPath(dir string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = dir
	}
}

// WithHighlightStyle selects the chroma theme for code blocks.
func WithHighlightStyle(name string) Option {
	return func(c *Converter) {
		if name != "" {
			c.cfg.highlightStyle = name
		}
	}
}

// WithBrowserBin uses the Chrome or Chromium binary at path instead of the
// one rod finds or downloads.
func WithBrowserBin(path string) Option {
	return func(c *Converter) {
		c.cfg.browser.bin = path
	}
}

// WithNoSandbox disables the Chrome sandbox, needed in most containers.
func WithNoSandbox(noSandbox bool) Option {
	return func(c *Converter) {
		c.cfg.browser.noSandbox = noSandbox
	}
}

// withPDFConverter replaces the browser backend; used by tests.
func withPDFConverter(pc pdfConverter) Option {
	return func(c *Converter) {
		c.pdfConverter = pc
	}
}

// Converter runs the markdown to HTML to PDF pipeline.
// A Converter holds no browser between calls and is safe to reuse.
type Converter struct {
	cfg           converterConfig
	logger        *logrus.Logger
	assetLoader   assets.AssetLoader
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
	cssInjector   pipeline.CSSInjector
	pdfConverter  pdfConverter
}

// NewConverter creates a Converter. It fails on an unknown highlight style or
// an unreadable asset directory.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			timeout:        DefaultTimeout,
			highlightStyle: DefaultHighlightStyle,
		},
		preprocessor: &pipeline.CommonMarkPreprocessor{},
		cssInjector:  &pipeline.CSSInjection{},
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = logrus.New()
		c.logger.SetOutput(io.Discard)
	}

	if err := assets.ValidateHighlightStyle(c.cfg.highlightStyle); err != nil {
		return nil, err
	}

	resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
	if err != nil {
		return nil, fmt.Errorf("asset path %q: %w", c.cfg.assetPath, err)
	}
	c.assetLoader = resolver

	c.htmlConverter = pipeline.NewGoldmarkConverter(pipeline.WithHighlightStyle(c.cfg.highlightStyle))

	if c.pdfConverter == nil {
		c.pdfConverter = newRodConverter(newRodRenderer(c.cfg.timeout, c.cfg.browser, c.logger))
	}

	return c, nil
}

// RenderHTML returns the standalone, styled HTML document for in. No file is
// read or written.
func (c *Converter) RenderHTML(ctx context.Context, in Input) (string, error) {
	if err := in.validate(); err != nil {
		return "", err
	}

	markdown := c.preprocessor.PreprocessMarkdown(ctx, in.Markdown)
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if in.TOC {
		var err error
		markdown, err = toc.Insert(markdown, toc.Options{MaxDepth: in.maxDepth()})
		if err != nil {
			return "", err
		}
	}

	body, err := c.htmlConverter.ToHTML(ctx, markdown)
	if err != nil {
		return "", fmt.Errorf("converting to HTML: %w", err)
	}

	document := pipeline.BuildDocument(pipeline.DocumentTitle(markdown, in.SourcePath), body)

	css, err := assets.Stylesheet(c.assetLoader, c.cfg.highlightStyle)
	if err != nil {
		return "", fmt.Errorf("loading stylesheet: %w", err)
	}
	if in.CSS != "" {
		css += "\n" + in.CSS
	}
	document = c.cssInjector.InjectCSS(ctx, document, css)
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if in.SourcePath != "" {
		document, err = pipeline.RewriteRelativePaths(document, filepath.Dir(in.SourcePath))
		if err != nil {
			return "", fmt.Errorf("rewriting relative paths: %w", err)
		}
	}

	c.warnUnresolvedAnchors(document)

	return document, nil
}

// Convert renders in to HTML, prints it to PDF, and reads the PDF back to
// check it.
func (c *Converter) Convert(ctx context.Context, in Input) (*Result, error) {
	document, err := c.RenderHTML(ctx, in)
	if err != nil {
		return nil, err
	}

	pdf, info, err := c.PrintPDF(ctx, document, in.format(), in.Margins)
	if err != nil {
		return nil, err
	}
	return &Result{HTML: document, PDF: pdf, Info: info}, nil
}

// PrintPDF prints a document returned by RenderHTML to PDF. An empty format
// uses DefaultPageFormat.
func (c *Converter) PrintPDF(ctx context.Context, document string, format PageFormat, margins Margins) ([]byte, *PDFInfo, error) {
	if format == "" {
		format = DefaultPageFormat
	}
	if err := (Input{Format: format, Margins: margins}).validate(); err != nil {
		return nil, nil, err
	}

	opts := &pdfOptions{Format: format, Margins: margins}
	pdf, err := c.pdfConverter.ToPDF(ctx, document, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("converting to PDF: %w", err)
	}

	info, err := InspectPDF(pdf)
	if err != nil {
		return nil, nil, err
	}
	c.logger.WithFields(logrus.Fields{
		"pages":  info.Pages,
		"format": format,
		"bytes":  len(pdf),
	}).Debug("PDF generated")

	return pdf, info, nil
}

func (c *Converter) warnUnresolvedAnchors(document string) {
	missing, err := pipeline.UnresolvedAnchors(document)
	if err != nil {
		c.logger.WithError(err).Debug("anchor check skipped")
		return
	}
	for _, anchor := range missing {
		c.logger.WithField("anchor", "#"+anchor).Warn("link target not found in document")
	}
}

func (in Input) validate() error {
	if in.Format != "" {
		if _, err := ParsePageFormat(string(in.Format)); err != nil {
			return err
		}
	}
	if in.MaxDepth != 0 {
		if err := (toc.Options{MaxDepth: in.MaxDepth}).Validate(); err != nil {
			return err
		}
	}
	m := in.Margins
	if m.Top < 0 || m.Right < 0 || m.Bottom < 0 || m.Left < 0 {
		return fmt.Errorf("%w: margins must not be negative", ErrInvalidMargin)
	}
	return nil
}

func (in Input) maxDepth() int {
	if in.MaxDepth == 0 {
		return DefaultMaxDepth
	}
	return in.MaxDepth
}

func (in Input) format() PageFormat {
	if in.Format == "" {
		return DefaultPageFormat
	}
	return in.Format
}
