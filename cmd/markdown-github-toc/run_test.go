package main

// Notes:
// - run is driven with buffers in place of stdout and stderr; no process is
//   spawned.
// - "Writes nothing" is checked by listing the temp directory afterwards.

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	mdtopdf "github.com/alnah/go-mdtopdf"
	"github.com/alnah/go-mdtopdf/internal/cliutil"
)

func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &Environment{Stdout: &stdout, Stderr: &stderr}, &stdout, &stderr
}

func dirEntries(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

// ---------------------------------------------------------------------------
// TestRun - End-to-end invocations
// ---------------------------------------------------------------------------

func TestRun_WritesDefaultDestination(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	source := filepath.Join(dir, "doc.md")
	writeFile(t, source, "<!-- toc -->\n# Title\n## Sub\nText\n")

	env, _, stderr := testEnv()
	if code := run([]string{source, "--maxdepth=2"}, env); code != ExitSuccess {
		t.Fatalf("run() = %d, stderr:\n%s", code, stderr)
	}

	got, err := os.ReadFile(filepath.Join(dir, "doc-toc.md"))
	if err != nil {
		t.Fatalf("reading destination: %v", err)
	}
	want := "<!-- toc -->\n\n- [Title](#title)\n\t* [Sub](#sub)\n\n<!-- tocstop -->\n\n# Title\n## Sub\nText\n"
	if string(got) != want {
		t.Errorf("destination =\n%q\nwant\n%q", got, want)
	}

	src, _ := os.ReadFile(source)
	if string(src) != "<!-- toc -->\n# Title\n## Sub\nText\n" {
		t.Error("source modified without --insert")
	}
}

func TestRun_Insert(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	source := filepath.Join(dir, "README.md")
	writeFile(t, source, "# Project\n\n<!-- toc -->\n- [Stale](#stale)\n<!-- tocstop -->\n\n## Install\n")

	env, _, stderr := testEnv()
	if code := run([]string{"--insert", source}, env); code != ExitSuccess {
		t.Fatalf("run() = %d, stderr:\n%s", code, stderr)
	}

	got, _ := os.ReadFile(source)
	want := "# Project\n\n<!-- toc -->\n\n\t* [Install](#install)\n\n<!-- tocstop -->\n\n## Install\n"
	if string(got) != want {
		t.Errorf("source =\n%q\nwant\n%q", got, want)
	}
	if names := dirEntries(t, dir); len(names) != 1 {
		t.Errorf("directory holds %v, want only README.md", names)
	}
}

func TestRun_NoMarkerWarns(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	source := filepath.Join(dir, "doc.md")
	writeFile(t, source, "# A\n")

	env, _, stderr := testEnv()
	if code := run([]string{source, filepath.Join(dir, "out.md")}, env); code != ExitSuccess {
		t.Fatalf("run() = %d, stderr:\n%s", code, stderr)
	}
	if !strings.Contains(stderr.String(), "no <!-- toc --> marker") {
		t.Errorf("stderr = %q, want a missing marker warning", stderr)
	}
	got, _ := os.ReadFile(filepath.Join(dir, "out.md"))
	if string(got) != "# A\n" {
		t.Errorf("destination = %q, want unchanged document", got)
	}
}

func TestRun_InvalidMaxDepthWritesNothing(t *testing.T) {
	t.Parallel()

	for _, depth := range []string{"0", "7"} {
		t.Run(depth, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			source := filepath.Join(dir, "doc.md")
			writeFile(t, source, "<!-- toc -->\n# A\n")

			env, stdout, stderr := testEnv()
			code := run([]string{source, "--maxdepth=" + depth}, env)
			if code == ExitSuccess {
				t.Fatal("run() succeeded with an out of range maxdepth")
			}
			if code != ExitUsage {
				t.Errorf("run() = %d, want %d", code, ExitUsage)
			}
			if names := dirEntries(t, dir); len(names) != 1 {
				t.Errorf("directory holds %v, want only doc.md", names)
			}
			if !strings.Contains(stderr.String(), "<maxdepth> must be between 1 and 6.") {
				t.Errorf("stderr = %q", stderr)
			}
			if stdout.Len() != 0 {
				t.Errorf("stdout = %q, want empty", stdout)
			}
		})
	}
}

func TestRun_SameSourceAndDestination(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	source := filepath.Join(dir, "doc.md")
	original := "<!-- toc -->\n# A\n"
	writeFile(t, source, original)

	env, _, stderr := testEnv()
	if code := run([]string{source, source}, env); code != ExitUsage {
		t.Fatalf("run() = %d, want %d", code, ExitUsage)
	}
	got, _ := os.ReadFile(source)
	if string(got) != original {
		t.Errorf("source modified: %q", got)
	}

	out := stderr.String()
	for _, part := range []string{"\nError\n-----\n<source> must not be equal to <destination>\n", "\nHelp\n----\n", "Usage:"} {
		if !strings.Contains(out, part) {
			t.Errorf("stderr missing %q:\n%s", part, out)
		}
	}
}

func TestRun_MultipleTOC(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	source := filepath.Join(dir, "doc.md")
	writeFile(t, source, "<!-- toc -->\n<!-- tocstop -->\n# A\n<!-- toc -->\n")

	env, _, stderr := testEnv()
	if code := run([]string{source}, env); code != ExitGeneral {
		t.Fatalf("run() = %d, want %d", code, ExitGeneral)
	}
	if !strings.Contains(stderr.String(), "only one table of contents") {
		t.Errorf("stderr = %q", stderr)
	}
	if strings.Contains(stderr.String(), "Help") {
		t.Error("usage printed for a pipeline error")
	}
}

func TestRun_UnwritableDestination(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	source := filepath.Join(dir, "doc.md")
	writeFile(t, source, "# A\n")

	env, _, stderr := testEnv()
	code := run([]string{source, filepath.Join(dir, "missing", "out.md")}, env)
	if code != ExitIO {
		t.Fatalf("run() = %d, want %d", code, ExitIO)
	}
	if !strings.Contains(stderr.String(), "hint:") {
		t.Errorf("stderr = %q, want a hint", stderr)
	}
}

func TestRun_HelpAndVersion(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv()
	if code := run([]string{"--help"}, env); code != ExitSuccess {
		t.Errorf("run(--help) = %d", code)
	}
	if !strings.Contains(stdout.String(), "markdown-github-toc <source>") {
		t.Errorf("help output = %q", stdout)
	}

	env, stdout, _ = testEnv()
	if code := run([]string{"--version"}, env); code != ExitSuccess {
		t.Errorf("run(--version) = %d", code)
	}
	if got := stdout.String(); got != "markdown-github-toc "+Version+"\n" {
		t.Errorf("version output = %q", got)
	}
}

func TestRun_UnknownFlag(t *testing.T) {
	t.Parallel()

	env, _, stderr := testEnv()
	if code := run([]string{"--bogus"}, env); code != ExitUsage {
		t.Errorf("run(--bogus) = %d, want %d", code, ExitUsage)
	}
	if !strings.Contains(stderr.String(), "bogus") {
		t.Errorf("stderr = %q", stderr)
	}
}

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},
		{"usage error", cliutil.Usagef("bad"), ExitUsage},
		{"invalid max depth", mdtopdf.ErrInvalidMaxDepth, ExitUsage},
		{"file not exist", os.ErrNotExist, ExitIO},
		{"read markdown", ErrReadMarkdown, ExitIO},
		{"wrapped write markdown", fmt.Errorf("x: %w", ErrWriteMarkdown), ExitIO},
		{"multiple toc", mdtopdf.ErrMultipleTOC, ExitGeneral},
		{"unknown", errors.New("boom"), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
