package main

import (
	"strings"

	mdtopdf "github.com/alnah/go-mdtopdf"
	"github.com/alnah/go-mdtopdf/internal/cliutil"
	"github.com/alnah/go-mdtopdf/internal/fileutil"
)

// destinationSuffix replaces ".md" in the default destination name.
const destinationSuffix = "-toc.md"

// Options is the validated configuration of one run.
type Options struct {
	Source      string
	Destination string
	MaxDepth    int
	Insert      bool
}

// validateOptions checks flags and positional arguments in a fixed order and
// returns the first failure as a *cliutil.UsageError. With --insert the
// destination is the source and a second argument is ignored.
func validateOptions(f *tocFlags, args []string) (*Options, error) {
	if len(args) > 2 {
		return nil, cliutil.Usagef("too many arguments: expected <source> [<destination>], got %d", len(args))
	}

	var source, destination string
	if len(args) > 0 {
		source = args[0]
	}
	if len(args) > 1 {
		destination = args[1]
	}

	if !fileutil.HasExt(source, ".md") {
		return nil, cliutil.Usagef("<source> not set or not a markdown file (.md)")
	}
	if !fileutil.FileExists(source) {
		return nil, cliutil.Usagef("<source> file does not exist")
	}

	switch {
	case f.insert:
		destination = source
	case destination == "":
		destination = strings.TrimSuffix(source, ".md") + destinationSuffix
	}

	if !fileutil.HasExt(destination, ".md") {
		return nil, cliutil.Usagef("<destination> must be a markdown file (.md)")
	}
	if !f.insert && fileutil.SamePath(source, destination) {
		return nil, cliutil.Usagef("<source> must not be equal to <destination>")
	}
	if f.maxDepth < mdtopdf.MinMaxDepth || f.maxDepth > mdtopdf.MaxMaxDepth {
		return nil, cliutil.Usagef("<maxdepth> must be between %d and %d.", mdtopdf.MinMaxDepth, mdtopdf.MaxMaxDepth)
	}

	return &Options{
		Source:      source,
		Destination: destination,
		MaxDepth:    f.maxDepth,
		Insert:      f.insert,
	}, nil
}
