package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Diomede5/init-web-app/internal/config"
	oerrors "github.com/Diomede5/init-web-app/internal/errors"
	"github.com/Diomede5/init-web-app/internal/output"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(gc *GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Configuration management for init-web-app.`,
	}

	c.AddCommand(NewConfigInitCmd(gc))
	c.AddCommand(NewConfigVetCmd(gc))

	return c
}

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(gc *GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a new configuration file",
		Long: `Create a new configuration file with default values.

The configuration file is created at ~/.init-web-app/config.yaml by default.
Use --config or IWA_CONFIG to choose a different location.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(cmd, gc, force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")

	return c
}

func resolveConfigPath(gc *GlobalConfig) (string, error) {
	configFile := gc.ConfigPath
	if configFile == "" {
		var err error
		configFile, err = config.GetConfigFile()
		if err != nil {
			return "", fmt.Errorf("getting config file path: %w", err)
		}
	}

	expandedPath, err := config.ExpandPath(configFile)
	if err != nil {
		return "", fmt.Errorf("expanding config path: %w", err)
	}
	return expandedPath, nil
}

func runConfigInit(cmd *cobra.Command, gc *GlobalConfig, force bool) error {
	path, err := resolveConfigPath(gc)
	if err != nil {
		return err
	}

	exists, err := config.ConfigFileExists(path)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}

	if exists && !force {
		return oerrors.NewExitError(
			fmt.Errorf("config file already exists at %s (use --force to overwrite)", path),
			oerrors.ExitGeneralError,
		)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	header := []byte("# init-web-app configuration\n# Environment overrides: IWA_TOOLS_NPM, IWA_TOOLS_CARGO, IWA_TOOLS_WASMPACK, IWA_MINIFY\n\n")
	data = append(header, data...)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), output.FormatCheckmark("Config file created: "+path))
	return nil
}

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(gc *GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the configuration file",
		Long: `Validate the configuration file against the built-in schema.

Reports unknown keys, wrong types and malformed durations.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveConfigPath(gc)
			if err != nil {
				return err
			}

			exists, err := config.ConfigFileExists(path)
			if err != nil {
				return fmt.Errorf("checking config file: %w", err)
			}
			if !exists {
				return oerrors.NewExitError(
					fmt.Errorf("config file not found at %s (run 'init-web-app config init')", path),
					oerrors.ExitValidationError,
				)
			}

			validator, err := config.NewValidator()
			if err != nil {
				return err
			}
			if err := validator.ValidateFile(path); err != nil {
				return oerrors.NewExitError(err, oerrors.ExitValidationError)
			}
			if gc.configErr != nil {
				return oerrors.NewExitError(gc.configErr, oerrors.ExitValidationError)
			}

			fmt.Fprintln(cmd.OutOrStdout(), output.FormatCheckmark("Config is valid: "+path))
			return nil
		},
	}
}
