package main

import (
	"os"

	"github.com/sestinj/nodeid/internal/cmd"
)

var version = "dev" // overridden by ldflags at build time

func main() {
	cmd.SetVersion(version)
	if err := cmd.Execute(); err != nil {
		// cobra has already printed the error to stderr
		os.Exit(1)
	}
}
