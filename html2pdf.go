package mdtopdf

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/sirupsen/logrus"

	"github.com/alnah/go-mdtopdf/internal/fileutil"
	"github.com/alnah/go-mdtopdf/internal/pipeline"
	"github.com/alnah/go-mdtopdf/internal/process"
)

// pdfConverter abstracts HTML to PDF conversion to allow different backends.
type pdfConverter interface {
	ToPDF(ctx context.Context, htmlContent string, opts *pdfOptions) ([]byte, error)
}

// pdfRenderer abstracts PDF rendering from an HTML file to enable testing without a browser.
type pdfRenderer interface {
	RenderFromFile(ctx context.Context, filePath string, opts *pdfOptions) ([]byte, error)
}

// Compile-time interface checks
var (
	_ pdfConverter = (*rodConverter)(nil)
	_ pdfRenderer  = (*rodRenderer)(nil)
)

// pdfOptions holds options for PDF generation.
type pdfOptions struct {
	Format  PageFormat
	Margins Margins
}

// browserSettings selects and configures the Chrome binary.
type browserSettings struct {
	bin       string // empty: rod finds or downloads a browser
	noSandbox bool
}

// rodRenderer implements pdfRenderer using go-rod. Every render launches a
// browser and releases it before returning.
type rodRenderer struct {
	timeout  time.Duration
	settings browserSettings
	logger   *logrus.Logger
}

func newRodRenderer(timeout time.Duration, settings browserSettings, logger *logrus.Logger) *rodRenderer {
	return &rodRenderer{timeout: timeout, settings: settings, logger: logger}
}

// RenderFromFile opens a local HTML file in headless Chrome and prints it to
// PDF. The browser, its page and its profile directory are released on every
// return path.
func (r *rodRenderer) RenderFromFile(ctx context.Context, filePath string, opts *pdfOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opts == nil {
		opts = &pdfOptions{Format: DefaultPageFormat, Margins: UniformMargins(DefaultBorder)}
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	browser, release, err := r.launch(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	r.step("page").Debug("opening page")
	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer func() { _ = page.Close() }()

	if err := r.load(ctx, page, filePath); err != nil {
		return nil, err
	}

	r.step("print").WithField("format", opts.Format).Debug("printing to PDF")
	reader, err := page.PDF(buildPrintOptions(opts))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}

	return pdfBuf, nil
}

// launch starts Chrome and connects to it. release closes the browser, kills
// the launcher's process group and removes the profile directory.
func (r *rodRenderer) launch(ctx context.Context) (*rod.Browser, func(), error) {
	r.step("launch").WithField("bin", r.settings.bin).Debug("launching browser")

	l := launcher.New().Context(ctx)
	if r.settings.bin != "" {
		l = l.Bin(r.settings.bin)
	}
	if r.settings.noSandbox {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrBrowserLaunch, err)
	}

	killLauncher := func() {
		process.KillProcessGroup(l.PID())
		l.Kill()
		l.Cleanup()
	}

	browser := rod.New().Context(ctx).ControlURL(u)
	if err := browser.Connect(); err != nil {
		killLauncher()
		return nil, nil, fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	release := func() {
		r.step("close").Debug("closing browser")
		_ = browser.Close()
		killLauncher()
	}
	return browser, release, nil
}

// load navigates page to filePath and waits until the network has been
// almost idle (at most two connections) for 500ms.
func (r *rodRenderer) load(ctx context.Context, page *rod.Page, filePath string) error {
	r.step("load").WithField("file", filePath).Debug("loading document")

	wait := page.WaitNavigation(proto.PageLifecycleEventNameNetworkAlmostIdle)
	if err := page.Navigate(pipeline.FileURL(filePath)); err != nil {
		return fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	wait()

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	return nil
}

func (r *rodRenderer) step(name string) *logrus.Entry {
	return r.logger.WithField("step", name)
}

// buildPrintOptions maps the page format and margins to Chrome's print
// parameters. Sizes are in inches.
func buildPrintOptions(opts *pdfOptions) *proto.PagePrintToPDF {
	width, height := opts.Format.Size()
	return &proto.PagePrintToPDF{
		PaperWidth:          floatPtr(width),
		PaperHeight:         floatPtr(height),
		MarginTop:           floatPtr(opts.Margins.Top),
		MarginBottom:        floatPtr(opts.Margins.Bottom),
		MarginLeft:          floatPtr(opts.Margins.Left),
		MarginRight:         floatPtr(opts.Margins.Right),
		PrintBackground:     true,
		DisplayHeaderFooter: false,
		PreferCSSPageSize:   false,
	}
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}

// rodConverter converts HTML to PDF using headless Chrome via go-rod.
type rodConverter struct {
	renderer pdfRenderer
}

func newRodConverter(renderer pdfRenderer) *rodConverter {
	return &rodConverter{renderer: renderer}
}

// ToPDF writes htmlContent to a temporary file, renders it, and removes the
// file again.
func (c *rodConverter) ToPDF(ctx context.Context, htmlContent string, opts *pdfOptions) ([]byte, error) {
	tmpPath, cleanup, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	return c.renderer.RenderFromFile(ctx, tmpPath, opts)
}
