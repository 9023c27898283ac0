// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"time"
)

// Default tool names, resolved through PATH.
const (
	DefaultNpm      = "npm"
	DefaultCargo    = "cargo"
	DefaultWasmPack = "wasm-pack"
)

// ToolsConfig names the external toolchains and how their runs are checked.
type ToolsConfig struct {
	// Npm is the npm executable.
	// Env: IWA_TOOLS_NPM, Default: npm
	Npm string `json:"npm,omitempty" yaml:"npm"`

	// Cargo is the cargo executable.
	// Env: IWA_TOOLS_CARGO, Default: cargo
	Cargo string `json:"cargo,omitempty" yaml:"cargo"`

	// WasmPack is the wasm-pack executable.
	// Env: IWA_TOOLS_WASMPACK, Default: wasm-pack
	WasmPack string `json:"wasmPack,omitempty" yaml:"wasmPack"`

	// CheckExit aborts generation when a tool exits non-zero.
	// Default: true. false only aborts when a tool cannot be started.
	CheckExit *bool `json:"checkExit,omitempty" yaml:"checkExit"`

	// Timeout bounds each tool run. "0s" disables the bound.
	Timeout string `json:"timeout,omitempty" yaml:"timeout"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `json:"timestamps,omitempty" yaml:"timestamps"`
}

// Config represents the init-web-app configuration.
// Loaded from ~/.init-web-app/config.yaml, validated against embedded CUE schema.
type Config struct {
	Tools ToolsConfig `json:"tools,omitempty" yaml:"tools"`

	// Minify minifies the generated pkg/ assets.
	// Env: IWA_MINIFY
	Minify bool `json:"minify,omitempty" yaml:"minify"`

	Log LogConfig `json:"log,omitempty" yaml:"log"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `init-web-app config init` to generate the initial config file.
func DefaultConfig() *Config {
	checkExit := true
	timestamps := true
	return &Config{
		Tools: ToolsConfig{
			Npm:       DefaultNpm,
			Cargo:     DefaultCargo,
			WasmPack:  DefaultWasmPack,
			CheckExit: &checkExit,
			Timeout:   "0s",
		},
		Log: LogConfig{
			Timestamps: &timestamps,
		},
	}
}

// WithDefaults returns a copy of the config with unset fields defaulted.
func (c *Config) WithDefaults() *Config {
	out := *c
	def := DefaultConfig()

	if out.Tools.Npm == "" {
		out.Tools.Npm = def.Tools.Npm
	}
	if out.Tools.Cargo == "" {
		out.Tools.Cargo = def.Tools.Cargo
	}
	if out.Tools.WasmPack == "" {
		out.Tools.WasmPack = def.Tools.WasmPack
	}
	if out.Tools.CheckExit == nil {
		out.Tools.CheckExit = def.Tools.CheckExit
	}
	if out.Tools.Timeout == "" {
		out.Tools.Timeout = def.Tools.Timeout
	}

	return &out
}

// ShouldCheckExit reports whether a non-zero tool exit aborts generation.
func (t ToolsConfig) ShouldCheckExit() bool {
	return t.CheckExit == nil || *t.CheckExit
}

// TimeoutDuration parses Timeout. An empty value means no bound.
func (t ToolsConfig) TimeoutDuration() (time.Duration, error) {
	if t.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(t.Timeout)
	if err != nil {
		return 0, fmt.Errorf("tools.timeout: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("tools.timeout: must not be negative")
	}
	return d, nil
}
