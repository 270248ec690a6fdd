package main

import (
	"io"
	"time"

	flag "github.com/spf13/pflag"

	mdtopdf "github.com/alnah/go-mdtopdf"
	"github.com/alnah/go-mdtopdf/internal/cliutil"
)

// deriveHTMLPath is the --keep-html value when no file is given.
const deriveHTMLPath = "\x00derive"

// commonFlags holds flags every invocation accepts.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
	help    bool
	version bool
}

// tocFlags holds table of contents flags.
type tocFlags struct {
	enabled  bool
	maxDepth int
}

// pageFlags holds page layout flags.
type pageFlags struct {
	border       string
	borderTop    string
	borderLeft   string
	borderRight  string
	borderBottom string
	format       string
}

// styleFlags holds stylesheet flags.
type styleFlags struct {
	css            string
	assetPath      string
	highlightStyle string
}

// browserFlags holds headless Chrome flags.
type browserFlags struct {
	bin       string
	noSandbox bool
	timeout   time.Duration
}

// pdfFlags holds all flags for one invocation.
type pdfFlags struct {
	common   commonFlags
	toc      tocFlags
	page     pageFlags
	style    styleFlags
	browser  browserFlags
	keepHTML string // empty: not set; deriveHTMLPath: set without a file

	// changed reports whether a flag was given on the command line.
	changed func(name string) bool
}

// addCommonFlags adds config, logging and informational flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug output")
	fs.BoolVarP(&f.help, "help", "h", false, "display this menu")
	fs.BoolVar(&f.version, "version", false, "display the application version")
}

// addTOCFlags adds table of contents flags to a FlagSet.
func addTOCFlags(fs *flag.FlagSet, f *tocFlags) {
	fs.BoolVar(&f.enabled, "toc", false, "add a table of contents where a toc comment is")
	fs.IntVar(&f.maxDepth, "maxdepth", mdtopdf.DefaultMaxDepth, "TOC: use headings whose depth is at most maxdepth")
}

// addPageFlags adds page layout flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVar(&f.border, "border", mdtopdf.DefaultBorder, "border on every side")
	fs.StringVar(&f.borderTop, "border-top", "", "top border")
	fs.StringVar(&f.borderLeft, "border-left", "", "left border")
	fs.StringVar(&f.borderRight, "border-right", "", "right border")
	fs.StringVar(&f.borderBottom, "border-bottom", "", "bottom border")
	fs.StringVar(&f.format, "format", string(mdtopdf.DefaultPageFormat), "PDF size format")
}

// addStyleFlags adds stylesheet flags to a FlagSet.
func addStyleFlags(fs *flag.FlagSet, f *styleFlags) {
	fs.StringVar(&f.css, "css", "", "extra stylesheet appended last")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory with styles/<name>.css overrides")
	fs.StringVar(&f.highlightStyle, "highlight-style", mdtopdf.DefaultHighlightStyle, "code highlighting theme")
}

// addBrowserFlags adds headless Chrome flags to a FlagSet.
func addBrowserFlags(fs *flag.FlagSet, f *browserFlags) {
	fs.StringVar(&f.bin, "browser-bin", "", "Chrome or Chromium binary")
	fs.BoolVar(&f.noSandbox, "no-sandbox", false, "disable the Chrome sandbox")
	fs.DurationVar(&f.timeout, "timeout", mdtopdf.DefaultTimeout, "limit for the browser run")
}

// parseFlags parses args (without the program name) and returns the flags
// and the positional arguments. Parse failures are usage errors.
func parseFlags(args []string) (*pdfFlags, []string, error) {
	f := &pdfFlags{}
	fs := flag.NewFlagSet("markdown-to-pdf", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	addTOCFlags(fs, &f.toc)
	addPageFlags(fs, &f.page)
	addStyleFlags(fs, &f.style)
	addBrowserFlags(fs, &f.browser)
	addCommonFlags(fs, &f.common)
	fs.StringVar(&f.keepHTML, "keep-html", "", "save the intermediate HTML (default: <destination>.html)")
	fs.Lookup("keep-html").NoOptDefVal = deriveHTMLPath

	if err := fs.Parse(args); err != nil {
		return nil, nil, cliutil.Usagef("%v", err)
	}
	f.changed = fs.Changed
	return f, fs.Args(), nil
}
