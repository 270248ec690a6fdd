package assets

import (
	"fmt"
	"regexp"
	"strings"
)

// Built-in style names, in the order they are applied.
const (
	GitHubStyleName  = "github-markdown"
	DefaultStyleName = "default"
)

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

var crlfOrCR = regexp.MustCompile(`\r\n?`)

// LoadStyle loads a CSS file by name using the default embedded loader.
// The name should not include the .css extension or path components.
// Returns ErrStyleNotFound if the style does not exist.
// Returns ErrInvalidAssetName if the name contains path separators or traversal.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}

// Stylesheet assembles the document stylesheet: the GitHub markdown base,
// the local overrides, then the highlight theme. Line endings are normalized
// and the parts are joined with a newline.
func Stylesheet(loader AssetLoader, highlightStyle string) (string, error) {
	var parts []string
	for _, name := range []string{GitHubStyleName, DefaultStyleName} {
		css, err := loader.LoadStyle(name)
		if err != nil {
			return "", fmt.Errorf("loading %s stylesheet: %w", name, err)
		}
		parts = append(parts, css)
	}

	theme, err := HighlightCSS(highlightStyle)
	if err != nil {
		return "", err
	}
	parts = append(parts, theme)

	for i := range parts {
		parts[i] = crlfOrCR.ReplaceAllString(parts[i], "\n")
	}
	return strings.Join(parts, "\n"), nil
}
