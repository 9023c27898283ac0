package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Diomede5/init-web-app/internal/archetype"
	"github.com/Diomede5/init-web-app/internal/config"
	oerrors "github.com/Diomede5/init-web-app/internal/errors"
	"github.com/Diomede5/init-web-app/internal/generator"
	"github.com/Diomede5/init-web-app/internal/output"
	"github.com/Diomede5/init-web-app/internal/prompt"
)

type newOptions struct {
	name      string
	archetype string
	dir       string
	minify    bool
}

func addNewFlags(c *cobra.Command, opts *newOptions) {
	c.Flags().StringVar(&opts.name, "name", "", "Project name (skips the prompt)")
	c.Flags().StringVarP(&opts.archetype, "archetype", "a", "", "Project type, 1-6 or a name (skips the menu)")
	c.Flags().StringVarP(&opts.dir, "dir", "C", ".", "Directory to create the project in")
	c.Flags().BoolVar(&opts.minify, "minify", false, "Minify html, css and js in pkg/ (env: IWA_MINIFY)")
}

// NewNewCmd creates the new command.
func NewNewCmd(gc *GlobalConfig) *cobra.Command {
	var opts newOptions

	c := &cobra.Command{
		Use:   "new",
		Short: "Generate a new project",
		Long: `Generate a new project in <dir>/<name>.

Prompts for anything not given by flags:
  - the project name
  - the project type:
      1) vanilla js
      2) vanilla js with wasm
      3) vanilla js with wasm worker
      4) react
      5) react with wasm
      6) react with wasm worker

Types with React run npm and Babel; types with wasm run cargo and wasm-pack.
The command fails if <dir>/<name> already exists. A failed run leaves its
partial output in place.`,
		Example: `  # Interactive
  init-web-app new

  # Non-interactive
  init-web-app new --name demo --archetype component-native`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(cmd, gc, &opts)
		},
	}

	addNewFlags(c, &opts)

	return c
}

func runNew(cmd *cobra.Command, gc *GlobalConfig, opts *newOptions) error {
	cfg, err := gc.requireConfig()
	if err != nil {
		return err
	}

	p := prompt.New(gc.input(), cmd.OutOrStdout()).WithContext(cmd.Context())

	name := strings.TrimSpace(opts.name)
	if name == "" {
		if name, err = p.ProjectName(); err != nil {
			return err
		}
	}

	var a archetype.Archetype
	if opts.archetype != "" {
		a, err = archetype.Parse(opts.archetype)
		if err != nil {
			return oerrors.NewValidationError(
				fmt.Sprintf("unknown archetype: %s", opts.archetype),
				"--archetype",
				"choose 1-6 or one of "+strings.Join(archetype.Names(), ", "),
			)
		}
	} else if a, err = p.Archetype(); err != nil {
		return err
	}

	runner, err := gc.runner(cfg)
	if err != nil {
		return err
	}

	var minifyFlag *bool
	if cmd.Flags().Changed("minify") {
		minifyFlag = output.BoolPtr(opts.minify)
	}
	minify, _ := config.ResolveBool(minifyFlag, &cfg.Minify, false)

	gen := generator.NewGenerator(generator.GenerateOptions{
		BaseDir:     opts.dir,
		Runner:      runner,
		CheckExit:   cfg.Tools.ShouldCheckExit(),
		Minify:      minify,
		Spinner:     output.IsTTY() && !gc.Verbose,
		ReportEdits: gc.Verbose,
	})

	result, err := gen.Generate(cmd.Context(), name, a)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, output.FormatCheckmark(fmt.Sprintf("Created %s project '%s' in %s", a, name, result.Root)))
	fmt.Fprintln(out)
	fmt.Fprint(out, output.RenderFileTree(name, result.Files))

	return nil
}
