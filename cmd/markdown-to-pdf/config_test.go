package main

import (
	"errors"
	"testing"
	"time"

	"github.com/alnah/go-mdtopdf/internal/config"
)

// ---------------------------------------------------------------------------
// TestMergeConfig - Config defaults under explicit flags
// ---------------------------------------------------------------------------

func TestMergeConfig(t *testing.T) {
	t.Parallel()

	f, _, err := parseFlags([]string{"--format=Letter", "--maxdepth=2"})
	if err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{
		TOC:            true,
		MaxDepth:       4,
		Border:         "1in",
		BorderBottom:   "2in",
		Format:         "A3",
		HighlightStyle: "monokai",
		Timeout:        "2m",
		BrowserBin:     "/opt/chrome",
		NoSandbox:      true,
	}
	if err := mergeConfig(f, cfg); err != nil {
		t.Fatalf("mergeConfig() error: %v", err)
	}

	if f.page.format != "Letter" {
		t.Errorf("format = %q, explicit flag should win", f.page.format)
	}
	if f.toc.maxDepth != 2 {
		t.Errorf("maxDepth = %d, explicit flag should win", f.toc.maxDepth)
	}
	if !f.toc.enabled || f.page.border != "1in" || f.page.borderBottom != "2in" {
		t.Errorf("config values not applied: toc=%v border=%q bottom=%q", f.toc.enabled, f.page.border, f.page.borderBottom)
	}
	if f.style.highlightStyle != "monokai" || f.browser.bin != "/opt/chrome" || !f.browser.noSandbox {
		t.Errorf("config values not applied: %+v %+v", f.style, f.browser)
	}
	if f.browser.timeout != 2*time.Minute {
		t.Errorf("timeout = %v, want 2m", f.browser.timeout)
	}
}

func TestMergeConfig_EmptyKeepsDefaults(t *testing.T) {
	t.Parallel()

	f, _, err := parseFlags(nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := mergeConfig(f, &config.Config{}); err != nil {
		t.Fatalf("mergeConfig() error: %v", err)
	}
	if f.page.border != "20mm" || f.page.format != "A4" || f.toc.maxDepth != 6 {
		t.Errorf("defaults changed: %+v %+v", f.page, f.toc)
	}
	if err := mergeConfig(f, nil); err != nil {
		t.Errorf("mergeConfig(nil) error: %v", err)
	}
}

func TestMergeConfig_InvalidTimeout(t *testing.T) {
	t.Parallel()

	f, _, err := parseFlags(nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := mergeConfig(f, &config.Config{Timeout: "soon"}); !errors.Is(err, config.ErrInvalidValue) {
		t.Errorf("mergeConfig() error = %v, want ErrInvalidValue", err)
	}
}
