package cmd

import (
	"fmt"
	"io"

	"github.com/sestinj/nodeid/internal/cycle"
)

// env bundles dependencies for command execution.
// Production commands use newEnv(); tests construct directly.
type env struct {
	deps    *cycle.Deps
	stdout  io.Writer
	jsonOut bool
}

// newEnv keeps stdout for the result only; logs go to stderr.
func newEnv(stdout, stderr io.Writer) *env {
	logf := func(format string, a ...interface{}) {
		fmt.Fprintf(stderr, format+"\n", a...)
	}
	return &env{
		deps: &cycle.Deps{
			Verbose: verbose,
			Logf:    logf,
		},
		stdout:  stdout,
		jsonOut: jsonOut,
	}
}
