// Package config loads the optional YAML defaults file of markdown-to-pdf.
//
// Every key mirrors a command-line flag. A zero value means "not set" and
// leaves the flag default in place; flags given on the command line always
// win over the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-mdtopdf/internal/fileutil"
	"github.com/alnah/go-mdtopdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength   = 4096 // css, assetPath, browserBin
	MaxMarginLength = 12   // "1234567890mm"
	MaxFormatLength = 10   // "Tabloid"
	MaxStyleLength  = 64   // chroma style names
)

// userConfigSubdir is searched under os.UserConfigDir for named configs.
const userConfigSubdir = "go-mdtopdf"

// Config holds defaults for markdown-to-pdf.
type Config struct {
	TOC            bool   `yaml:"toc"`
	MaxDepth       int    `yaml:"maxdepth"` // 0 = flag default
	Border         string `yaml:"border"`
	BorderTop      string `yaml:"borderTop"`
	BorderLeft     string `yaml:"borderLeft"`
	BorderRight    string `yaml:"borderRight"`
	BorderBottom   string `yaml:"borderBottom"`
	Format         string `yaml:"format"`
	CSS            string `yaml:"css"`            // extra stylesheet appended last
	AssetPath      string `yaml:"assetPath"`      // directory with styles/*.css overrides
	HighlightStyle string `yaml:"highlightStyle"` // chroma style name
	Timeout        string `yaml:"timeout"`        // Go duration, e.g. "90s"
	BrowserBin     string `yaml:"browserBin"`
	NoSandbox      bool   `yaml:"noSandbox"`
}

// Validate checks value shapes the file alone can decide. Margin and format
// spelling are checked later, together with the flags, so that messages name
// the option the same way whichever source set it.
func (c *Config) Validate() error {
	lengths := []struct {
		field string
		value string
		max   int
	}{
		{"border", c.Border, MaxMarginLength},
		{"borderTop", c.BorderTop, MaxMarginLength},
		{"borderLeft", c.BorderLeft, MaxMarginLength},
		{"borderRight", c.BorderRight, MaxMarginLength},
		{"borderBottom", c.BorderBottom, MaxMarginLength},
		{"format", c.Format, MaxFormatLength},
		{"css", c.CSS, MaxPathLength},
		{"assetPath", c.AssetPath, MaxPathLength},
		{"highlightStyle", c.HighlightStyle, MaxStyleLength},
		{"browserBin", c.BrowserBin, MaxPathLength},
	}
	for _, l := range lengths {
		if err := validateFieldLength(l.field, l.value, l.max); err != nil {
			return err
		}
	}

	if c.MaxDepth != 0 && (c.MaxDepth < 1 || c.MaxDepth > 6) {
		return fmt.Errorf("%w: maxdepth must be between 1 and 6, got %d", ErrInvalidValue, c.MaxDepth)
	}

	if _, err := c.TimeoutDuration(); err != nil {
		return err
	}

	return nil
}

// TimeoutDuration parses Timeout. An empty value returns 0.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: timeout %q: %v", ErrInvalidValue, c.Timeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: timeout must be positive, got %s", ErrInvalidValue, d)
	}
	return d, nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator or ends in .yaml/.yml, it is read
// as a file. Otherwise it is searched as <name>.yaml then <name>.yml in the
// current directory, then in the user config directory.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !isFilePath(nameOrPath) {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	if !fileutil.FileExists(configPath) {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
	}

	var cfg Config
	if err := yamlutil.ReadFileStrict(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}

	return &cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	if fileutil.IsFilePath(s) {
		return true
	}
	ext := strings.ToLower(filepath.Ext(s))
	return ext == ".yaml" || ext == ".yml"
}

// SearchPaths lists the files tried for a config name, in lookup order.
func SearchPaths(name string) []string {
	dirs := []string{""}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(userConfigDir, userConfigSubdir))
	}

	var paths []string
	for _, dir := range dirs {
		for _, ext := range []string{".yaml", ".yml"} {
			paths = append(paths, filepath.Join(dir, name+ext))
		}
	}
	return paths
}

// resolveConfigPath searches for a config file by name in standard locations.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
