package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Diomede5/init-web-app/internal/archetype"
	"github.com/Diomede5/init-web-app/internal/output"
)

// NewArchetypesCmd creates the archetypes command.
func NewArchetypesCmd(_ *GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:     "archetypes",
		Aliases: []string{"types"},
		Short:   "List the project types",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), archetypeTable())
			return nil
		},
	}
}

func archetypeTable() string {
	tbl := output.NewTable("#", "NAME", "DESCRIPTION", "REACT", "WASM", "WORKER", "TARGET")
	for _, a := range archetype.All() {
		target := a.BundlerTarget()
		if target == "" {
			target = "-"
		}
		tbl.Row(
			strconv.Itoa(a.Number()),
			a.String(),
			a.Description(),
			yesNo(a.UsesComponents()),
			yesNo(a.UsesNative()),
			yesNo(a.UsesWorker()),
			target,
		)
	}
	return tbl.String()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
