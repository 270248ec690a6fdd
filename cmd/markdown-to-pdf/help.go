package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Convert markdown to PDF (and also HTML) with optional table of contents.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  markdown-to-pdf <source> [<destination>] [<options>]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  <source> must be a markdown file, with the extension '.md'.")
	fmt.Fprintln(w, "  <destination> must be a PDF file, with the extension '.pdf'.")
	fmt.Fprintln(w, "                If omitted it will be named <source>.pdf")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  markdown-to-pdf README.md")
	fmt.Fprintln(w, "  markdown-to-pdf in.md out.pdf --toc")
	fmt.Fprintln(w, "  markdown-to-pdf in.md out.pdf --toc --keep-html=out.html")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "      --border <size>         Border on every side (default: 20mm)")
	fmt.Fprintln(w, "      --border-top <size>     Top border (default: --border)")
	fmt.Fprintln(w, "      --border-left <size>    Left border (default: --border)")
	fmt.Fprintln(w, "      --border-bottom <size>  Bottom border (default: --border)")
	fmt.Fprintln(w, "      --border-right <size>   Right border (default: --border)")
	fmt.Fprintln(w, "                              Sizes are whole numbers with px, in, cm or mm")
	fmt.Fprintln(w, "      --format <format>       PDF size format: A0-A6, Legal, Ledger, Letter, Tabloid (default: A4)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Table of contents:")
	fmt.Fprintln(w, "      --toc                   Add table of contents where a \"toc\" html comment is")
	fmt.Fprintln(w, "      --maxdepth <depth>      Use headings whose depth is at most maxdepth (default: 6)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "      --keep-html[=<file>]    Save intermediate HTML to file (default: <destination>.html)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --css <file>            Extra stylesheet appended after the built-in ones")
	fmt.Fprintln(w, "      --asset-path <dir>      Directory with styles/<name>.css overrides")
	fmt.Fprintln(w, "      --highlight-style <s>   Code highlighting theme (default: github)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Browser:")
	fmt.Fprintln(w, "      --browser-bin <path>    Chrome or Chromium binary (default: found or downloaded)")
	fmt.Fprintln(w, "      --no-sandbox            Disable the Chrome sandbox (containers)")
	fmt.Fprintln(w, "      --timeout <duration>    Limit for the browser run (default: 1m0s)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "General:")
	fmt.Fprintln(w, "  -c, --config <name>         Config file name or path (YAML defaults)")
	fmt.Fprintln(w, "  -v, --verbose               Show debug output")
	fmt.Fprintln(w, "  -q, --quiet                 Only show errors")
	fmt.Fprintln(w, "  -h, --help                  Display this menu")
	fmt.Fprintln(w, "      --version               Display the application version")
}
