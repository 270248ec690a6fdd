package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Add a GitHub compatible table of contents to markdown, replacing")
	fmt.Fprintln(w, "<!-- toc --> in the source file.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  markdown-github-toc <source> [<destination>] [<options>]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  <source> must be a markdown file, with the extension '.md'.")
	fmt.Fprintln(w, "  <destination> must be a markdown file, with the extension '.md'.")
	fmt.Fprintln(w, "                If omitted it will be named <source>-toc.md")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  markdown-github-toc README.md")
	fmt.Fprintln(w, "  markdown-github-toc in.md out.md --maxdepth 3")
	fmt.Fprintln(w, "  markdown-github-toc README.md --insert")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "      --insert              Use source markdown as destination")
	fmt.Fprintln(w, "      --maxdepth <depth>    Use headings whose depth is at most maxdepth (default: 6)")
	fmt.Fprintln(w, "  -v, --verbose             Show debug output")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -h, --help                Display this menu")
	fmt.Fprintln(w, "      --version             Display the application version")
}
