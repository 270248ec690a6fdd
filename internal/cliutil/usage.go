// Package cliutil holds what both command-line tools share: the usage error
// type, the error banner and logger construction.
package cliutil

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
)

// UsageError reports invalid command-line input. The message is shown to the
// user as-is, followed by the usage text.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }

// Usagef builds a UsageError from a format string.
func Usagef(format string, args ...any) error {
	return &UsageError{Msg: fmt.Sprintf(format, args...)}
}

// IsUsageError reports whether err wraps a *UsageError.
func IsUsageError(err error) bool {
	var u *UsageError
	return errors.As(err, &u)
}

// Banner writes err under an "Error" heading. The heading is red when
// colored is true.
func Banner(w io.Writer, err error, colored bool) {
	heading := color.New(color.FgRed, color.Bold)
	if colored {
		heading.EnableColor()
	} else {
		heading.DisableColor()
	}

	fmt.Fprintln(w)
	_, _ = heading.Fprintln(w, "Error")
	fmt.Fprintln(w, "-----")
	fmt.Fprintln(w, err.Error())
}

// PrintUsageError writes the error banner followed by a "Help" heading and
// the usage text.
func PrintUsageError(w io.Writer, err error, colored bool, usage func(io.Writer)) {
	Banner(w, err, colored)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Help")
	fmt.Fprintln(w, "----")
	usage(w)
}
