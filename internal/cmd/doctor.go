package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	oerrors "github.com/Diomede5/init-web-app/internal/errors"
	"github.com/Diomede5/init-web-app/internal/output"
	"github.com/Diomede5/init-web-app/internal/toolchain"
)

// NewDoctorCmd creates the doctor command.
func NewDoctorCmd(gc *GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that npm, cargo and wasm-pack are installed",
		Long: `Run each external tool with --version and compare it with the minimum
version the generated projects build with.

Exits non-zero when a tool is missing or outdated.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := gc.requireConfig()
			if err != nil {
				return err
			}
			runner, err := gc.runner(cfg)
			if err != nil {
				return err
			}

			checks := toolchain.Doctor(cmd.Context(), runner)

			tbl := output.NewTable("TOOL", "VERSION", "MINIMUM", "STATUS", "DETAIL")
			failed := 0
			for _, c := range checks {
				version := c.Version
				if version == "" {
					version = "-"
				}
				tbl.Row(
					string(c.Tool),
					version,
					c.Minimum,
					output.StatusStyle(string(c.Status)).Render(string(c.Status)),
					c.Detail,
				)
				if c.Status == toolchain.StatusMissing || c.Status == toolchain.StatusOutdated {
					failed++
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), tbl.String())

			if failed > 0 {
				return oerrors.NewExitError(
					fmt.Errorf("%d tool(s) missing or outdated", failed),
					oerrors.ExitGeneralError,
				)
			}
			return nil
		},
	}
}
