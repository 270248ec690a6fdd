package toc

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// Sentinel errors for TOC operations.
var (
	ErrMultipleTOC     = errors.New("only one table of contents per file is supported")
	ErrInvalidMaxDepth = errors.New("invalid max depth")
)

// Depth bounds for headings included in the list.
const (
	MinDepth        = 1
	MaxDepth        = 6
	DefaultMaxDepth = 6
)

// Marker comments delimiting the generated list.
const (
	OpenMarker  = "<!-- toc -->"
	CloseMarker = "<!-- tocstop -->"
)

// indent is repeated once per level below 1.
const indent = "\t"

// bullets cycle by nesting level.
var bullets = [...]string{"-", "*", "+"}

var (
	markerPattern    = regexp.MustCompile(`<!-- toc(?:\s*stop)? -->`)
	trailingNewlines = regexp.MustCompile(`\n+$`)
	leadingLink      = regexp.MustCompile(`^\[([^\]]+)\]\(`)
	htmlTagPattern   = regexp.MustCompile(`</?[^>]+>`)
	blankRun         = regexp.MustCompile(`[ \t]+`)
)

// Options configures list generation.
type Options struct {
	MaxDepth int // deepest heading level listed (1-6)
}

// Validate checks that MaxDepth is within [MinDepth, MaxDepth].
func (o Options) Validate() error {
	if o.MaxDepth < MinDepth || o.MaxDepth > MaxDepth {
		return fmt.Errorf("%w: %d (must be between %d and %d)", ErrInvalidMaxDepth, o.MaxDepth, MinDepth, MaxDepth)
	}
	return nil
}

// Generate returns the bullet list for every heading of markdown at or above
// opts.MaxDepth. Entries are separated by "\n" with no trailing newline.
func Generate(markdown string, opts Options) string {
	var lines []string
	for _, h := range Headings(markdown) {
		if h.Level > opts.MaxDepth {
			continue
		}
		lines = append(lines, entry(h))
	}
	return strings.Join(lines, "\n")
}

// entry formats one heading as an indented markdown link.
func entry(h Heading) string {
	depth := h.Level - 1
	return fmt.Sprintf("%s%s [%s](#%s)",
		strings.Repeat(indent, depth),
		bullets[depth%len(bullets)],
		LinkText(h.Text),
		escapeFragment(h.Slug),
	)
}

// LinkText derives the link text of a heading: a heading that starts with a link keeps only
// the link label, HTML tags are dropped and blank runs collapse to one space.
func LinkText(s string) string {
	if m := leadingLink.FindStringSubmatch(s); m != nil {
		s = m[1]
	}
	s = htmlTagPattern.ReplaceAllString(s, "")
	s = blankRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// escapeFragment percent-encodes bytes that are not URL safe. A slug never
// contains spaces, so QueryEscape's "+" form cannot appear.
func escapeFragment(slug string) string {
	return url.QueryEscape(slug)
}

// Insert places a freshly generated list between the TOC markers of markdown.
//
// The document is split on the markers and every part is trimmed. With no
// marker the trimmed document is returned. With one or two markers the result
// is "before", the opening marker, the list, the closing marker and "after",
// joined by blank lines; an empty "before" is omitted. The list only covers
// headings after the markers.
// Trailing newlines of the input are preserved, and a leading YAML front matter
// block is kept verbatim.
func Insert(markdown string, opts Options) (string, error) {
	newlines := trailingNewlines.FindString(markdown)
	front, body := splitFrontMatter(markdown)

	sections := markerPattern.Split(body, -1)
	if len(sections) > 3 {
		return "", fmt.Errorf("%w: found %d markers", ErrMultipleTOC, len(sections)-1)
	}
	for i := range sections {
		sections[i] = strings.TrimSpace(sections[i])
	}

	if len(sections) > 1 {
		after := sections[len(sections)-1]
		list := Generate(after, opts)
		block := OpenMarker + "\n\n" + list + "\n\n" + CloseMarker
		if sections[0] == "" {
			sections = []string{block, after}
		} else {
			sections = []string{sections[0], block, after}
		}
	}

	return front + strings.Join(sections, "\n\n") + newlines, nil
}

// splitFrontMatter separates a leading "---" delimited block from the rest of
// the document. The returned front keeps its delimiters and the newline after
// the closing one, so front+body reproduces the input.
func splitFrontMatter(s string) (front, body string) {
	if !strings.HasPrefix(s, "---") {
		return "", s
	}
	first := strings.IndexByte(s, '\n')
	if first < 0 || strings.TrimRight(s[:first], "\r") != "---" {
		return "", s
	}

	pos := first + 1
	for pos < len(s) {
		end := strings.IndexByte(s[pos:], '\n')
		line := s[pos:]
		next := len(s)
		if end >= 0 {
			line = s[pos : pos+end]
			next = pos + end + 1
		}
		if strings.TrimRight(line, "\r") == "---" {
			return s[:next], s[next:]
		}
		pos = next
	}
	return "", s
}
