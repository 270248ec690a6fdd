package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// byteOrderMark is dropped from the start of the source.
const byteOrderMark = "\uFEFF"

var crlfOrCR = regexp.MustCompile(`\r\n?`)

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// CommonMarkPreprocessor prepares source text for goldmark.
type CommonMarkPreprocessor struct{}

// PreprocessMarkdown strips a leading byte order mark and converts \r\n and
// \r line endings to \n. Content is returned unchanged once ctx is done.
func (p *CommonMarkPreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	content = strings.TrimPrefix(content, byteOrderMark)
	return normalizeLineEndings(content)
}

func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

var _ MarkdownPreprocessor = (*CommonMarkPreprocessor)(nil)
