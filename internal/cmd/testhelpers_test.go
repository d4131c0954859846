package cmd

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/sestinj/nodeid/internal/cycle"
)

func nopLogf(string, ...interface{}) {}

// testEnv creates an env suitable for testing with sensible defaults.
// Returns the env and a buffer capturing stdout.
func testEnv(t *testing.T) (*env, *bytes.Buffer) {
	t.Helper()
	var stdout bytes.Buffer
	return &env{
		deps: &cycle.Deps{
			Logf: nopLogf,
		},
		stdout: &stdout,
	}, &stdout
}

// execRoot runs the root command with args and returns captured stdout and stderr.
// Flag state is reset afterwards since rootCmd is package-global.
func execRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	if args == nil {
		// cobra falls back to os.Args for nil args
		args = []string{}
	}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	t.Cleanup(func() {
		verbose = false
		jsonOut = false
		for _, name := range []string{"version", "help"} {
			if f := rootCmd.Flags().Lookup(name); f != nil {
				f.Value.Set("false")
			}
		}
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// allNames returns "node001 node002 ..." for the inclusive range.
func allNames(from, to int) string {
	var b bytes.Buffer
	for i := from; i <= to; i++ {
		fmt.Fprintf(&b, "node%03d ", i)
	}
	return b.String()
}
