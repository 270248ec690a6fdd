package main

import (
	"github.com/alnah/go-mdtopdf/internal/config"
)

// mergeConfig fills flags not given on the command line from cfg. Zero
// values in cfg leave the flag default in place.
func mergeConfig(f *pdfFlags, cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	if cfg.TOC && !f.changed("toc") {
		f.toc.enabled = true
	}
	if cfg.MaxDepth != 0 && !f.changed("maxdepth") {
		f.toc.maxDepth = cfg.MaxDepth
	}
	if cfg.NoSandbox && !f.changed("no-sandbox") {
		f.browser.noSandbox = true
	}

	fields := []struct {
		flag  string
		field *string
		value string
	}{
		{"border", &f.page.border, cfg.Border},
		{"border-top", &f.page.borderTop, cfg.BorderTop},
		{"border-left", &f.page.borderLeft, cfg.BorderLeft},
		{"border-right", &f.page.borderRight, cfg.BorderRight},
		{"border-bottom", &f.page.borderBottom, cfg.BorderBottom},
		{"format", &f.page.format, cfg.Format},
		{"css", &f.style.css, cfg.CSS},
		{"asset-path", &f.style.assetPath, cfg.AssetPath},
		{"highlight-style", &f.style.highlightStyle, cfg.HighlightStyle},
		{"browser-bin", &f.browser.bin, cfg.BrowserBin},
	}
	for _, s := range fields {
		if s.value != "" && !f.changed(s.flag) {
			*s.field = s.value
		}
	}

	if !f.changed("timeout") {
		d, err := cfg.TimeoutDuration()
		if err != nil {
			return err
		}
		if d > 0 {
			f.browser.timeout = d
		}
	}
	return nil
}
