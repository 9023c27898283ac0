package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Diomede5/init-web-app/internal/config"
	"github.com/Diomede5/init-web-app/internal/output"
)

// NewRootCmd creates the root command. Run without a subcommand it starts
// an interactive generation, the same as `new`.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&GlobalConfig{})
}

func newRootCmd(gc *GlobalConfig) *cobra.Command {
	var (
		verboseFlag    bool
		timestampsFlag bool
		opts           newOptions
	)

	rootCmd := &cobra.Command{
		Use:   "init-web-app",
		Short: "Generate a starter web project",
		Long: `init-web-app asks for a project name and a project type, then writes a
starter web project: page, stylesheet and scripts, optionally a React
component built with Babel and a Rust library compiled to WebAssembly.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			gc.Verbose = verboseFlag
			var timestamps *bool
			if cmd.Flags().Changed("timestamps") {
				timestamps = output.BoolPtr(timestampsFlag)
			}
			initializeGlobals(gc, timestamps)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(cmd, gc, &opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&gc.ConfigPath, "config", "", "Path to config file (env: IWA_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	addNewFlags(rootCmd, &opts)

	rootCmd.AddCommand(NewNewCmd(gc))
	rootCmd.AddCommand(NewArchetypesCmd(gc))
	rootCmd.AddCommand(NewPlanCmd(gc))
	rootCmd.AddCommand(NewDoctorCmd(gc))
	rootCmd.AddCommand(NewConfigCmd(gc))
	rootCmd.AddCommand(NewVersionCmd(gc))

	return rootCmd
}

// initializeGlobals loads and validates the config and sets up logging.
// Config problems are recorded, not returned, so that `config init` and
// `version` keep working with a broken config file.
func initializeGlobals(gc *GlobalConfig, timestampsFlag *bool) {
	cfg, err := config.NewLoader().LoadWithDefaults(gc.ConfigPath)
	if err != nil {
		gc.configErr = fmt.Errorf("loading config: %w", err)
		cfg = config.DefaultConfig()
	} else if validator, verr := config.NewValidator(); verr != nil {
		gc.configErr = verr
	} else if verr := validator.Validate(cfg); verr != nil {
		gc.configErr = verr
	}
	gc.Config = cfg

	timestamps, source := config.ResolveBool(timestampsFlag, cfg.Log.Timestamps, true)

	output.SetupLogging(output.LogConfig{
		Verbose:    gc.Verbose,
		Timestamps: output.BoolPtr(timestamps),
	})

	if gc.Verbose {
		output.Debug("initializing CLI",
			"config", gc.ConfigPath,
			"npm", cfg.Tools.Npm,
			"cargo", cfg.Tools.Cargo,
			"wasm-pack", cfg.Tools.WasmPack,
			"checkExit", cfg.Tools.ShouldCheckExit(),
			"timeout", cfg.Tools.Timeout,
			"timestamps", fmt.Sprintf("%t (%s)", timestamps, source),
		)
	}
	if gc.configErr != nil {
		output.Debug("config error", "error", gc.configErr)
	}
}
