package config

// Source indicates where a configuration value came from.
type Source string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag Source = "flag"
	// SourceConfig indicates value came from config file or environment.
	SourceConfig Source = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault Source = "default"
)

// ResolveBool picks a boolean setting by precedence: flag, then config,
// then the built-in default. A nil flag or config value means "not set".
func ResolveBool(flag, cfg *bool, def bool) (bool, Source) {
	if flag != nil {
		return *flag, SourceFlag
	}
	if cfg != nil {
		return *cfg, SourceConfig
	}
	return def, SourceDefault
}
