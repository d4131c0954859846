package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose bool
	jsonOut bool
)

// ErrMissingArgument is returned when no input string is given.
var ErrMissingArgument = errors.New("missing argument: expected a string of existing names, e.g. nodeid \"node001 node002\"")

// Flag parsing is done by splitArgs: the input is free text and often
// starts with '-' (ls -l output), so cobra must not read it as flags.
var rootCmd = &cobra.Command{
	Use:   "nodeid [flags] [--] <existing-names>",
	Short: "Print the next free node### identifier",
	Long: "Scans the argument for node### names (three-digit suffix) and prints the smallest unused one, starting at node001.\n" +
		"The identifier is not reserved; record it before the next run.",
	Args:               cobra.ArbitraryArgs,
	RunE:               runNext,
	SilenceUsage:       true,
	DisableFlagParsing: true,
}

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.Flags().BoolVar(&jsonOut, "json", false, "JSON output")
}

// splitArgs separates leading flags from the input. The first token that is
// not a known flag starts the input, as does everything after "--".
// One input is always required, so when every token looks like a flag the
// last one is taken as the input unless help or version was asked for.
func splitArgs(fs *pflag.FlagSet, args []string) (flagArgs, inputs []string) {
	i := 0
	for ; i < len(args); i++ {
		if args[i] == "--" {
			return args[:i], args[i+1:]
		}
		if !isKnownFlag(fs, args[i]) {
			break
		}
	}
	flagArgs, inputs = args[:i], args[i:]
	if len(inputs) == 0 && len(flagArgs) > 0 && !wantsInfo(flagArgs) {
		last := len(flagArgs) - 1
		return flagArgs[:last], flagArgs[last:]
	}
	return flagArgs, inputs
}

func isKnownFlag(fs *pflag.FlagSet, arg string) bool {
	switch {
	case strings.HasPrefix(arg, "--"):
		name := strings.TrimPrefix(arg, "--")
		if i := strings.IndexByte(name, '='); i >= 0 {
			name = name[:i]
		}
		return name != "" && fs.Lookup(name) != nil
	case len(arg) == 2 && arg[0] == '-':
		return fs.ShorthandLookup(arg[1:]) != nil
	}
	return false
}

func wantsInfo(flagArgs []string) bool {
	for _, a := range flagArgs {
		switch a {
		case "-h", "--help", "--version":
			return true
		}
	}
	return false
}

func exactlyOneInput(args []string) error {
	switch {
	case len(args) == 0:
		return ErrMissingArgument
	case len(args) > 1:
		return fmt.Errorf("expected exactly one argument, got %d (quote the listing)", len(args))
	}
	return nil
}

func SetVersion(v string) {
	rootCmd.Version = v
}

func Execute() error {
	return rootCmd.Execute()
}
