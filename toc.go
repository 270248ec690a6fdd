package mdtopdf

import "github.com/alnah/go-mdtopdf/internal/toc"

// Table of contents markers and depth bounds.
const (
	TOCOpenMarker   = toc.OpenMarker
	TOCCloseMarker  = toc.CloseMarker
	MinMaxDepth     = toc.MinDepth
	MaxMaxDepth     = toc.MaxDepth
	DefaultMaxDepth = toc.DefaultMaxDepth
)

// Slug returns the GitHub-style fragment for a heading title. Duplicate
// titles get the same slug.
func Slug(title string) string {
	return toc.Slug(title)
}

// GenerateTOC returns the bullet list for the headings of markdown no deeper
// than maxDepth.
func GenerateTOC(markdown string, maxDepth int) (string, error) {
	opts := toc.Options{MaxDepth: maxDepth}
	if err := opts.Validate(); err != nil {
		return "", err
	}
	return toc.Generate(markdown, opts), nil
}

// InsertTOC writes a fresh list between the TOC markers of markdown. A
// document without markers is returned trimmed and otherwise unchanged.
func InsertTOC(markdown string, maxDepth int) (string, error) {
	opts := toc.Options{MaxDepth: maxDepth}
	if err := opts.Validate(); err != nil {
		return "", err
	}
	return toc.Insert(markdown, opts)
}
