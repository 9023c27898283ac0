package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/Diomede5/init-web-app/internal/archetype"
	oerrors "github.com/Diomede5/init-web-app/internal/errors"
	"github.com/Diomede5/init-web-app/internal/generator"
)

// NewPlanCmd creates the plan command.
func NewPlanCmd(_ *GlobalConfig) *cobra.Command {
	var (
		name   string
		format string
	)

	c := &cobra.Command{
		Use:   "plan <archetype>",
		Short: "Print the steps a project type runs",
		Long: `Print the ordered steps that generate a project type, without running them.

The archetype is a menu number (1-6) or a name from 'init-web-app archetypes'.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := archetype.Parse(args[0])
			if err != nil {
				return oerrors.NewValidationError(
					fmt.Sprintf("unknown archetype: %s", args[0]),
					"<archetype>",
					"choose 1-6 or one of "+strings.Join(archetype.Names(), ", "),
				)
			}

			data, err := renderPlan(generator.Plan(a, name), format)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	c.Flags().StringVar(&name, "name", "my-app", "Project name to plan for")
	c.Flags().StringVarP(&format, "output", "o", "yaml", "Output format: yaml, json")

	return c
}

func renderPlan(steps []generator.Step, format string) ([]byte, error) {
	switch format {
	case "yaml":
		return yaml.Marshal(steps)
	case "json":
		data, err := json.MarshalIndent(steps, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	default:
		return nil, oerrors.NewValidationError(
			fmt.Sprintf("unsupported output format: %s", format),
			"--output",
			"use yaml or json",
		)
	}
}
