package assets

import (
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultHighlightStyle matches GitHub's code block colors.
const DefaultHighlightStyle = "github"

// ValidateHighlightStyle reports ErrHighlightStyleNotFound for names chroma
// does not register.
func ValidateHighlightStyle(name string) error {
	if _, ok := styles.Registry[name]; !ok {
		return fmt.Errorf("%w: %q", ErrHighlightStyleNotFound, name)
	}
	return nil
}

// HighlightStyleNames lists the registered chroma styles, sorted.
func HighlightStyleNames() []string {
	return styles.Names()
}

// HighlightCSS returns the class-based stylesheet for a chroma style. The
// classes match the markup produced by the highlighting renderer.
func HighlightCSS(name string) (string, error) {
	if err := ValidateHighlightStyle(name); err != nil {
		return "", err
	}

	var sb strings.Builder
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(&sb, styles.Get(name)); err != nil {
		return "", fmt.Errorf("writing %s highlight stylesheet: %w", name, err)
	}
	return sb.String(), nil
}
