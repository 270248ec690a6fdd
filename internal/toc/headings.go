package toc

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Heading is a markdown heading found in a document.
type Heading struct {
	Level int    // 1-6
	Text  string // raw inline source, e.g. "Hello *world*"
	Slug  string
}

// headingParser only parses; it never renders. GFM is enabled so tables and
// strikethrough are recognized the same way the HTML renderer sees them.
var headingParser = goldmark.New(goldmark.WithExtensions(extension.GFM)).Parser()

// Headings returns every heading of markdown in document order.
func Headings(markdown string) []Heading {
	src := []byte(markdown)
	doc := headingParser.Parse(text.NewReader(src))

	var headings []Heading
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		title := HeadingText(h, src)
		headings = append(headings, Heading{
			Level: h.Level,
			Text:  title,
			Slug:  Slug(title),
		})
		return ast.WalkSkipChildren, nil
	})
	return headings
}

// HeadingText returns the raw source of a heading's content: the text after
// the # markers for ATX headings, or the underlined lines joined by a space
// for setext headings. The HTML renderer and the TOC both slug this value, so
// links and ids always agree.
func HeadingText(h *ast.Heading, src []byte) string {
	lines := h.Lines()
	parts := make([]string, 0, lines.Len())
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		if line := strings.TrimSpace(string(seg.Value(src))); line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " ")
}
