package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/sestinj/nodeid/internal/cycle"
	"github.com/spf13/cobra"
)

func runNext(cmd *cobra.Command, args []string) error {
	flagArgs, inputs := splitArgs(cmd.Flags(), args)
	if err := cmd.Flags().Parse(flagArgs); err != nil {
		return err
	}

	if help, _ := cmd.Flags().GetBool("help"); help {
		return cmd.Help()
	}
	if cmd.Version != "" {
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", cmd.Name(), cmd.Version)
			return nil
		}
	}

	if err := exactlyOneInput(inputs); err != nil {
		return err
	}

	e := newEnv(cmd.OutOrStdout(), cmd.ErrOrStderr())
	return e.doNext(inputs[0])
}

func (e *env) doNext(input string) error {
	a, err := cycle.Allocate(e.deps, input)
	if err != nil {
		return err
	}

	if e.jsonOut {
		enc := json.NewEncoder(e.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(a)
	}

	_, err = fmt.Fprintln(e.stdout, a.ID)
	return err
}
