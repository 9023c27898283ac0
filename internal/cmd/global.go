// Package cmd provides CLI command implementations.
package cmd

import (
	"io"
	"os"

	"github.com/Diomede5/init-web-app/internal/config"
	oerrors "github.com/Diomede5/init-web-app/internal/errors"
	"github.com/Diomede5/init-web-app/internal/toolchain"
)

// GlobalConfig holds CLI-wide state resolved during PersistentPreRunE and
// passed explicitly into every sub-command constructor.
type GlobalConfig struct {
	// Config is the loaded configuration with defaults applied.
	Config *config.Config

	// ConfigPath is the --config flag value ("" means default).
	ConfigPath string

	Verbose bool

	// In is read by the interactive prompts. Nil means os.Stdin.
	In io.Reader

	// NewRunner builds the tool runner. Nil means a subprocess runner
	// configured from Config.
	NewRunner func(cfg *config.Config) (toolchain.Runner, error)

	// configErr is set when the config file could not be loaded or failed
	// validation. Commands that depend on it report it; the rest ignore it.
	configErr error
}

func (g *GlobalConfig) input() io.Reader {
	if g.In != nil {
		return g.In
	}
	return os.Stdin
}

// requireConfig returns the configuration or a validation exit error.
func (g *GlobalConfig) requireConfig() (*config.Config, error) {
	if g.configErr != nil {
		return nil, oerrors.NewExitError(g.configErr, oerrors.ExitValidationError)
	}
	if g.Config == nil {
		return config.DefaultConfig(), nil
	}
	return g.Config, nil
}

func (g *GlobalConfig) runner(cfg *config.Config) (toolchain.Runner, error) {
	if g.NewRunner != nil {
		return g.NewRunner(cfg)
	}
	return newExecRunner(cfg, nil)
}

func newExecRunner(cfg *config.Config, stderr io.Writer) (*toolchain.ExecRunner, error) {
	timeout, err := cfg.Tools.TimeoutDuration()
	if err != nil {
		return nil, oerrors.NewExitError(err, oerrors.ExitValidationError)
	}
	return &toolchain.ExecRunner{
		Executables: map[toolchain.Tool]string{
			toolchain.Npm:      cfg.Tools.Npm,
			toolchain.Cargo:    cfg.Tools.Cargo,
			toolchain.WasmPack: cfg.Tools.WasmPack,
		},
		Timeout: timeout,
		Stderr:  stderr,
	}, nil
}
