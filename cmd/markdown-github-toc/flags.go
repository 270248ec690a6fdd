package main

import (
	"io"

	flag "github.com/spf13/pflag"

	mdtopdf "github.com/alnah/go-mdtopdf"
	"github.com/alnah/go-mdtopdf/internal/cliutil"
)

// commonFlags holds flags every invocation accepts.
type commonFlags struct {
	quiet   bool
	verbose bool
	help    bool
	version bool
}

// tocFlags holds the command-line flags.
type tocFlags struct {
	common   commonFlags
	maxDepth int
	insert   bool
}

// addCommonFlags adds logging and informational flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug output")
	fs.BoolVarP(&f.help, "help", "h", false, "display this menu")
	fs.BoolVar(&f.version, "version", false, "display the application version")
}

// addTOCFlags adds table of contents flags to a FlagSet.
func addTOCFlags(fs *flag.FlagSet, f *tocFlags) {
	fs.IntVar(&f.maxDepth, "maxdepth", mdtopdf.DefaultMaxDepth, "use headings whose depth is at most maxdepth")
	fs.BoolVar(&f.insert, "insert", false, "use source markdown as destination")
}

// parseFlags parses args (without the program name) and returns the flags
// and the positional arguments. Parse failures are usage errors.
func parseFlags(args []string) (*tocFlags, []string, error) {
	f := &tocFlags{}
	fs := flag.NewFlagSet("markdown-github-toc", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	addTOCFlags(fs, f)
	addCommonFlags(fs, &f.common)

	if err := fs.Parse(args); err != nil {
		return nil, nil, cliutil.Usagef("%v", err)
	}
	return f, fs.Args(), nil
}
