package assets

// Notes:
// - Filesystem tests build a styles/ tree under t.TempDir(); the symlink
//   escape case is skipped where symlinks cannot be created.
// - HighlightCSS output comes from chroma; only the class selectors the
//   renderer relies on are asserted, not exact colors.

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeStyle(t *testing.T, base, name, content string) {
	t.Helper()
	dir := filepath.Join(base, "styles")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir styles: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name+".css"), []byte(content), 0o644); err != nil {
		t.Fatalf("write style: %v", err)
	}
}

// ---------------------------------------------------------------------------
// TestEmbeddedLoader - Built-in styles
// ---------------------------------------------------------------------------

func TestEmbeddedLoader_LoadStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		styleName string
		wantErr   error
		wantPart  string
	}{
		{"github stylesheet", GitHubStyleName, nil, ".markdown-body"},
		{"default overrides", DefaultStyleName, nil, "break-inside"},
		{"unknown style", "nonexistent", ErrStyleNotFound, ""},
		{"traversal rejected", "../secret", ErrInvalidAssetName, ""},
		{"empty name rejected", "", ErrInvalidAssetName, ""},
	}

	loader := NewEmbeddedLoader()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			content, err := loader.LoadStyle(tt.styleName)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("LoadStyle(%q) error = %v, want %v", tt.styleName, err, tt.wantErr)
			}
			if tt.wantPart != "" && !strings.Contains(content, tt.wantPart) {
				t.Errorf("LoadStyle(%q) missing %q", tt.styleName, tt.wantPart)
			}
		})
	}
}

func TestLoadStyle_PackageLevel(t *testing.T) {
	t.Parallel()

	content, err := LoadStyle(GitHubStyleName)
	if err != nil {
		t.Fatalf("LoadStyle() error: %v", err)
	}
	if content == "" {
		t.Error("LoadStyle() returned empty content")
	}
}

// ---------------------------------------------------------------------------
// TestFilesystemLoader - Override directory
// ---------------------------------------------------------------------------

func TestNewFilesystemLoader(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{"valid directory", t.TempDir(), nil},
		{"empty path", "", ErrInvalidBasePath},
		{"missing directory", filepath.Join(t.TempDir(), "missing"), ErrInvalidBasePath},
		{"regular file", file, ErrInvalidBasePath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewFilesystemLoader(tt.path)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewFilesystemLoader(%q) error = %v, want %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestFilesystemLoader_LoadStyle(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	writeStyle(t, base, "default", "body { color: red; }")

	loader, err := NewFilesystemLoader(base)
	if err != nil {
		t.Fatalf("NewFilesystemLoader() error: %v", err)
	}

	got, err := loader.LoadStyle("default")
	if err != nil {
		t.Fatalf("LoadStyle(default) error: %v", err)
	}
	if got != "body { color: red; }" {
		t.Errorf("LoadStyle(default) = %q", got)
	}

	if _, err := loader.LoadStyle("github-markdown"); !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("LoadStyle(github-markdown) error = %v, want ErrStyleNotFound", err)
	}
	if _, err := loader.LoadStyle("a/b"); !errors.Is(err, ErrInvalidAssetName) {
		t.Errorf("LoadStyle(a/b) error = %v, want ErrInvalidAssetName", err)
	}
}

func TestFilesystemLoader_SymlinkEscape(t *testing.T) {
	t.Parallel()

	outside := t.TempDir()
	writeStyle(t, outside, "secret", "secret")

	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, "styles"), 0o755); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(base, "styles", "default.css")
	if err := os.Symlink(filepath.Join(outside, "styles", "secret.css"), link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	loader, err := NewFilesystemLoader(base)
	if err != nil {
		t.Fatalf("NewFilesystemLoader() error: %v", err)
	}
	if _, err := loader.LoadStyle("default"); !errors.Is(err, ErrPathTraversal) {
		t.Errorf("LoadStyle() through escaping symlink error = %v, want ErrPathTraversal", err)
	}
}

// ---------------------------------------------------------------------------
// TestAssetResolver - Custom-first fallback
// ---------------------------------------------------------------------------

func TestAssetResolver_EmbeddedOnly(t *testing.T) {
	t.Parallel()

	r, err := NewAssetResolver("")
	if err != nil {
		t.Fatalf("NewAssetResolver() error: %v", err)
	}
	if r.HasCustomLoader() {
		t.Error("HasCustomLoader() = true, want false")
	}

	want, _ := LoadStyle(DefaultStyleName)
	got, err := r.LoadStyle(DefaultStyleName)
	if err != nil {
		t.Fatalf("LoadStyle() error: %v", err)
	}
	if got != want {
		t.Error("LoadStyle() should return the embedded stylesheet")
	}
}

func TestAssetResolver_CustomOverridesAndFallsBack(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	writeStyle(t, base, DefaultStyleName, "/* custom */")

	r, err := NewAssetResolver(base)
	if err != nil {
		t.Fatalf("NewAssetResolver() error: %v", err)
	}
	if !r.HasCustomLoader() {
		t.Fatal("HasCustomLoader() = false, want true")
	}

	got, err := r.LoadStyle(DefaultStyleName)
	if err != nil || got != "/* custom */" {
		t.Errorf("LoadStyle(default) = %q, %v; want custom override", got, err)
	}

	got, err = r.LoadStyle(GitHubStyleName)
	if err != nil {
		t.Fatalf("LoadStyle(github-markdown) error: %v", err)
	}
	if !strings.Contains(got, ".markdown-body") {
		t.Error("LoadStyle(github-markdown) should fall back to the embedded copy")
	}
}

func TestAssetResolver_ValidationNotFallenBack(t *testing.T) {
	t.Parallel()

	r, err := NewAssetResolver(t.TempDir())
	if err != nil {
		t.Fatalf("NewAssetResolver() error: %v", err)
	}
	if _, err := r.LoadStyle("../x"); !errors.Is(err, ErrInvalidAssetName) {
		t.Errorf("LoadStyle(../x) error = %v, want ErrInvalidAssetName", err)
	}
}

func TestNewAssetResolver_InvalidPath(t *testing.T) {
	t.Parallel()

	_, err := NewAssetResolver(filepath.Join(t.TempDir(), "nope"))
	if !errors.Is(err, ErrInvalidBasePath) {
		t.Errorf("NewAssetResolver() error = %v, want ErrInvalidBasePath", err)
	}
}

// ---------------------------------------------------------------------------
// TestHighlightCSS - Chroma theme stylesheet
// ---------------------------------------------------------------------------

func TestHighlightCSS(t *testing.T) {
	t.Parallel()

	css, err := HighlightCSS(DefaultHighlightStyle)
	if err != nil {
		t.Fatalf("HighlightCSS(%q) error: %v", DefaultHighlightStyle, err)
	}
	if !strings.Contains(css, ".chroma") {
		t.Errorf("HighlightCSS() missing .chroma selector:\n%s", css)
	}
}

func TestHighlightCSS_UnknownStyle(t *testing.T) {
	t.Parallel()

	_, err := HighlightCSS("no-such-style")
	if !errors.Is(err, ErrHighlightStyleNotFound) {
		t.Errorf("HighlightCSS() error = %v, want ErrHighlightStyleNotFound", err)
	}
}

// ---------------------------------------------------------------------------
// TestStylesheet - Assembled document stylesheet
// ---------------------------------------------------------------------------

type mapLoader map[string]string

func (m mapLoader) LoadStyle(name string) (string, error) {
	if css, ok := m[name]; ok {
		return css, nil
	}
	return "", ErrStyleNotFound
}

func TestStylesheet_OrderAndLineEndings(t *testing.T) {
	t.Parallel()

	loader := mapLoader{
		GitHubStyleName:  "/* github */\r\n.a{}",
		DefaultStyleName: "/* local */\r.b{}",
	}

	css, err := Stylesheet(loader, DefaultHighlightStyle)
	if err != nil {
		t.Fatalf("Stylesheet() error: %v", err)
	}
	if strings.Contains(css, "\r") {
		t.Error("Stylesheet() kept carriage returns")
	}

	gh := strings.Index(css, "/* github */")
	local := strings.Index(css, "/* local */")
	chroma := strings.Index(css, ".chroma")
	if gh < 0 || local < 0 || chroma < 0 || !(gh < local && local < chroma) {
		t.Errorf("Stylesheet() order wrong: github=%d local=%d chroma=%d", gh, local, chroma)
	}
	if !strings.HasPrefix(css, "/* github */\n.a{}\n/* local */\n.b{}\n") {
		t.Errorf("Stylesheet() parts not joined by newline:\n%q", css[:40])
	}
}

func TestStylesheet_MissingStyle(t *testing.T) {
	t.Parallel()

	_, err := Stylesheet(mapLoader{GitHubStyleName: ""}, DefaultHighlightStyle)
	if !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("Stylesheet() error = %v, want ErrStyleNotFound", err)
	}
}

func TestHighlightStyleNames(t *testing.T) {
	t.Parallel()

	names := HighlightStyleNames()
	found := false
	for _, n := range names {
		if n == DefaultHighlightStyle {
			found = true
		}
		if err := ValidateHighlightStyle(n); err != nil {
			t.Errorf("listed style %q rejected: %v", n, err)
		}
	}
	if !found {
		t.Errorf("HighlightStyleNames() missing %q", DefaultHighlightStyle)
	}
}
