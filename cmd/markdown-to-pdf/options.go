package main

import (
	"time"

	mdtopdf "github.com/alnah/go-mdtopdf"
	"github.com/alnah/go-mdtopdf/internal/assets"
	"github.com/alnah/go-mdtopdf/internal/cliutil"
	"github.com/alnah/go-mdtopdf/internal/fileutil"
	"github.com/alnah/go-mdtopdf/internal/hints"
)

// Options is the validated configuration of one run.
type Options struct {
	Source         string
	Destination    string
	TOC            bool
	MaxDepth       int
	Margins        mdtopdf.Margins
	Format         mdtopdf.PageFormat
	KeepHTML       bool
	HTMLPath       string
	CSSPath        string
	AssetPath      string
	HighlightStyle string
	Timeout        time.Duration
	BrowserBin     string
	NoSandbox      bool
}

const marginMessage = "%s must be number followed by on of the following units px, in, cm, mm."

// validateOptions checks flags and positional arguments in a fixed order and
// returns the first failure as a *cliutil.UsageError.
func validateOptions(f *pdfFlags, args []string) (*Options, error) {
	if len(args) > 2 {
		return nil, cliutil.Usagef("too many arguments: expected <source> [<destination>], got %d", len(args))
	}

	var source, destination string
	if len(args) > 0 {
		source = args[0]
	}
	if len(args) > 1 {
		destination = args[1]
	}

	if !fileutil.HasExt(source, ".md") {
		return nil, cliutil.Usagef("<source> not set or not a markdown file (.md)")
	}
	if !fileutil.FileExists(source) {
		return nil, cliutil.Usagef("<source> file does not exist")
	}

	if destination == "" {
		destination = fileutil.ReplaceExt(source, ".pdf")
	}
	if !fileutil.HasExt(destination, ".pdf") {
		return nil, cliutil.Usagef("<destination> must be a PDF file (.pdf)")
	}
	if fileutil.SamePath(source, destination) {
		return nil, cliutil.Usagef("<source> must not be equal to <destination>")
	}

	if f.toc.maxDepth < mdtopdf.MinMaxDepth || f.toc.maxDepth > mdtopdf.MaxMaxDepth {
		return nil, cliutil.Usagef("<maxdepth> must be between %d and %d.", mdtopdf.MinMaxDepth, mdtopdf.MaxMaxDepth)
	}

	margins, err := validateMargins(&f.page)
	if err != nil {
		return nil, err
	}

	format, err := mdtopdf.ParsePageFormat(f.page.format)
	if err != nil {
		return nil, cliutil.Usagef("<format> must be on of the following A0-A6, Legal, Ledger, Letter, Tabloid")
	}

	keepHTML := f.keepHTML != ""
	htmlPath := f.keepHTML
	if !keepHTML || htmlPath == deriveHTMLPath {
		htmlPath = fileutil.ReplaceExt(destination, ".html")
	}
	if !fileutil.HasExt(htmlPath, ".html") {
		return nil, cliutil.Usagef("html file must be end with .html")
	}

	if err := assets.ValidateHighlightStyle(f.style.highlightStyle); err != nil {
		return nil, cliutil.Usagef("<highlight-style> %q is not a known style%s",
			f.style.highlightStyle, hints.ForHighlightStyle(assets.HighlightStyleNames()))
	}
	if f.style.css != "" && !fileutil.FileExists(f.style.css) {
		return nil, cliutil.Usagef("<css> file does not exist")
	}
	if f.browser.timeout <= 0 {
		return nil, cliutil.Usagef("<timeout> must be positive")
	}

	return &Options{
		Source:         source,
		Destination:    destination,
		TOC:            f.toc.enabled,
		MaxDepth:       f.toc.maxDepth,
		Margins:        margins,
		Format:         format,
		KeepHTML:       keepHTML,
		HTMLPath:       htmlPath,
		CSSPath:        f.style.css,
		AssetPath:      f.style.assetPath,
		HighlightStyle: f.style.highlightStyle,
		Timeout:        f.browser.timeout,
		BrowserBin:     f.browser.bin,
		NoSandbox:      f.browser.noSandbox,
	}, nil
}

// validateMargins checks border, then each side in top, left, right, bottom
// order. A side that is not set takes the border value.
func validateMargins(p *pageFlags) (mdtopdf.Margins, error) {
	if _, err := mdtopdf.ParseLength(p.border); err != nil {
		return mdtopdf.Margins{}, cliutil.Usagef(marginMessage, "border")
	}

	var m mdtopdf.Margins
	sides := []struct {
		name  string
		value string
		dst   *float64
	}{
		{"top", p.borderTop, &m.Top},
		{"left", p.borderLeft, &m.Left},
		{"right", p.borderRight, &m.Right},
		{"bottom", p.borderBottom, &m.Bottom},
	}
	for _, s := range sides {
		value := s.value
		if value == "" {
			value = p.border
		}
		in, err := mdtopdf.ParseLength(value)
		if err != nil {
			return mdtopdf.Margins{}, cliutil.Usagef(marginMessage, "border-"+s.name)
		}
		*s.dst = in
	}
	return m, nil
}
