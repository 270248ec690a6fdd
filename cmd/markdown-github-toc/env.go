package main

import (
	"io"
	"os"

	"github.com/alnah/go-mdtopdf/internal/cliutil"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdout io.Writer
	Stderr io.Writer
	Color  bool // color the error banner
}

// DefaultEnv returns the process environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Color:  cliutil.IsTerminal(os.Stderr),
	}
}
