package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName rejects style names that could leave the styles
// directory or pick another file type: empty names, path separators, dots
// and NUL bytes. Style names are bare words like "github-markdown".
func ValidateAssetName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	case strings.ContainsAny(name, "/\\.\x00"):
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
