package pipeline

import (
	"fmt"
	"html"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdtopdf/internal/toc"
)

// documentTemplate wraps a body fragment in the GitHub markdown shell.
// The head has no style yet; CSSInjection adds it before </head>.
const documentTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body class="markdown-body">
%s
</body>
</html>
`

// BuildDocument returns a standalone HTML5 document around body. The title
// is HTML-escaped.
func BuildDocument(title, body string) string {
	return fmt.Sprintf(documentTemplate, html.EscapeString(title), body)
}

// DocumentTitle returns the text of the first heading of markdown, or the
// base name of sourcePath without extension when there is none.
func DocumentTitle(markdown, sourcePath string) string {
	for _, h := range toc.Headings(markdown) {
		if t := toc.LinkText(h.Text); t != "" {
			return t
		}
	}
	base := filepath.Base(sourcePath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
