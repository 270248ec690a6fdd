package pipeline

import (
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/alnah/go-mdtopdf/internal/toc"
)

// headingIDTransformer gives every heading the id its table of contents
// entry links to. Duplicate titles share an id.
type headingIDTransformer struct{}

func (headingIDTransformer) Transform(doc *ast.Document, reader text.Reader, _ parser.Context) {
	src := reader.Source()
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		h.SetAttributeString("id", []byte(toc.Slug(toc.HeadingText(h, src))))
		return ast.WalkSkipChildren, nil
	})
}

var _ parser.ASTTransformer = headingIDTransformer{}
