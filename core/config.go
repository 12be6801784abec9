package core

import (
	"errors"
	"fmt"
	"strings"
)

// Config holds the settings of one generator run.
type Config struct {
	BeginMarker      string // Line prefix that opens a descriptor block.
	Origin           string // Driver source named in the generated-file comment.
	StateStruct      string // Driver session struct taken by build_option_descriptors.
	Context          string // Expression of the option_descriptor_t array to fill.
	OptPrefix        string // Prefix of every option_t enumerator.
	ConstraintPrefix string // Prefix of every generated constraint table.

	// RequiredVersion is an optional go-version constraint on the generator
	// itself, e.g. ">= 0.3". It is normally set from a config file.
	RequiredVersion string

	LogLevel  string // debug, info, warn or error.
	LogFormat string // console or json.
	LogFile   string // Optional rotating log file, in addition to stderr.
}

// ConfigFunc defines a function that can modify or validate a Config.
type ConfigFunc func(*Config) error

// NewConfig returns a Config with every default applied.
func NewConfig() *Config {
	config := &Config{}
	if err := config.Validate(DefaultConfigFuncs()...); err != nil {
		panic(err)
	}
	return config
}

// DefaultConfigFuncs fills unset fields with the pixma backend defaults.
func DefaultConfigFuncs() []ConfigFunc {
	return []ConfigFunc{
		WithDefault(func(c *Config) *string { return &c.BeginMarker }, DefaultBeginMarker),
		WithDefault(func(c *Config) *string { return &c.Origin }, DefaultOrigin),
		WithDefault(func(c *Config) *string { return &c.StateStruct }, DefaultStateStruct),
		WithDefault(func(c *Config) *string { return &c.Context }, DefaultContext),
		WithDefault(func(c *Config) *string { return &c.OptPrefix }, DefaultOptPrefix),
		WithDefault(func(c *Config) *string { return &c.ConstraintPrefix }, DefaultConstraintPrefix),
		WithDefault(func(c *Config) *string { return &c.LogLevel }, "warn"),
		WithDefault(func(c *Config) *string { return &c.LogFormat }, "console"),
	}
}

// Validate applies the given ConfigFuncs in order and stops at the first error.
func (config *Config) Validate(validators ...ConfigFunc) error {
	for _, fn := range validators {
		if err := fn(config); err != nil {
			return err
		}
	}
	return nil
}

// WithDefault returns a ConfigFunc that sets the selected field when it is empty.
func WithDefault(field func(*Config) *string, value string) ConfigFunc {
	return func(config *Config) error {
		if p := field(config); *p == "" {
			*p = value
		}
		return nil
	}
}

// WithIdentifiers validates that every name pasted into C code is a C identifier
// (or, for prefixes, the start of one).
func WithIdentifiers(config *Config) error {
	checks := []struct {
		name, value string
	}{
		{"state_struct", config.StateStruct},
		{"opt_prefix", config.OptPrefix},
		{"constraint_prefix", config.ConstraintPrefix},
	}
	for _, c := range checks {
		if !IsCIdentifier(c.value) {
			return fmt.Errorf("%s %q is not a C identifier", c.name, c.value)
		}
	}
	if strings.TrimSpace(config.Context) == "" {
		return errors.New("context cannot be empty")
	}
	if strings.TrimSpace(config.BeginMarker) == "" {
		return errors.New("begin marker cannot be empty")
	}
	return nil
}

// WithLogging validates the log level and format.
func WithLogging(config *Config) error {
	switch strings.ToLower(config.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn' or 'error'", config.LogLevel)
	}
	switch strings.ToLower(config.LogFormat) {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format %q: must be 'console' or 'json'", config.LogFormat)
	}
	return nil
}

// WithRequiredVersion checks RequiredVersion against the running generator.
func WithRequiredVersion(config *Config) error {
	return CheckRequiredVersion(config.RequiredVersion)
}
