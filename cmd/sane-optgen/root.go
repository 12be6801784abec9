package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	sane_optgen "github.com/vast-data/sane-optgen"
	"github.com/vast-data/sane-optgen/core"
	"github.com/vast-data/sane-optgen/logging"
)

type rootOptions struct {
	input      string
	output     string
	configFile string

	beginMarker      string
	origin           string
	stateStruct      string
	context          string
	optPrefix        string
	constraintPrefix string

	logLevel  string
	logFormat string
	logFile   string
}

// app is what every subcommand needs after flags and config are resolved.
type app struct {
	config  *core.Config
	log     *zap.Logger
	gen     *sane_optgen.Generator
	closeFn func()
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "sane-optgen [h]",
		Short: "Generate SANE option descriptor tables from a descriptor block",
		Long: `sane-optgen reads a backend source file containing a
"BEGIN SANE_Option_Descriptor" block and writes C code for it.

Without arguments it writes the constraint tables and build_option_descriptors.
With the single argument "h" it writes the type declarations instead.`,
		Example: `  sane-optgen h < pixma.c > pixma_sane_options.h
  sane-optgen -i pixma.c -o pixma_sane_options.c`,
		Args:          modeArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := sane_optgen.ModeBody
			if len(args) == 1 {
				mode = sane_optgen.ModeHeader
			}
			a, err := opts.setup(cmd.Flags(), stderr)
			if err != nil {
				return err
			}
			defer a.closeFn()
			return opts.withIO(stdin, stdout, func(r io.Reader, w io.Writer) error {
				return a.gen.Generate(r, w, mode)
			})
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.input, "input", "i", "-", "descriptor source file, - for stdin")
	flags.StringVarP(&opts.output, "output", "o", "-", "output file, - for stdout")
	flags.StringVarP(&opts.configFile, "config", "c", "", "HCL config file")
	flags.StringVar(&opts.beginMarker, "begin-marker", core.DefaultBeginMarker, "line prefix that opens a descriptor block")
	flags.StringVar(&opts.origin, "origin", core.DefaultOrigin, "source file named in the generated-file comment")
	flags.StringVar(&opts.stateStruct, "state-struct", core.DefaultStateStruct, "backend session struct taken by build_option_descriptors")
	flags.StringVar(&opts.context, "context", core.DefaultContext, "expression of the option_descriptor_t array to fill")
	flags.StringVar(&opts.optPrefix, "opt-prefix", core.DefaultOptPrefix, "prefix of the option_t enumerators")
	flags.StringVar(&opts.constraintPrefix, "constraint-prefix", core.DefaultConstraintPrefix, "prefix of the constraint tables")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	flags.StringVar(&opts.logFormat, "log-format", "console", "log format: console or json")
	flags.StringVar(&opts.logFile, "log-file", "", "also write JSON logs to this rotating file")

	cmd.AddCommand(
		newListCmd(opts, stdin, stdout, stderr),
		newDumpCmd(opts, stdin, stdout, stderr),
		newVersionCmd(stdout),
	)
	return cmd
}

// modeArgs accepts no argument (body) or exactly "h" (header).
func modeArgs(cmd *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		return nil
	case len(args) == 1 && args[0] == sane_optgen.HeaderModeArg:
		return nil
	default:
		return &ExitError{Code: 2, Message: fmt.Sprintf("usage: %s", cmd.UseLine())}
	}
}

// config builds the run configuration: defaults, then the config file, then
// every flag set explicitly on the command line.
func (opts *rootOptions) config(flags *pflag.FlagSet) (*core.Config, error) {
	config := &core.Config{}
	if opts.configFile != "" {
		if err := config.LoadConfigFile(opts.configFile); err != nil {
			return nil, err
		}
	}

	overrides := []struct {
		flag  string
		dst   *string
		value string
	}{
		{"begin-marker", &config.BeginMarker, opts.beginMarker},
		{"origin", &config.Origin, opts.origin},
		{"state-struct", &config.StateStruct, opts.stateStruct},
		{"context", &config.Context, opts.context},
		{"opt-prefix", &config.OptPrefix, opts.optPrefix},
		{"constraint-prefix", &config.ConstraintPrefix, opts.constraintPrefix},
		{"log-level", &config.LogLevel, opts.logLevel},
		{"log-format", &config.LogFormat, opts.logFormat},
		{"log-file", &config.LogFile, opts.logFile},
	}
	for _, o := range overrides {
		if flags.Changed(o.flag) {
			*o.dst = o.value
		}
	}

	validators := append(core.DefaultConfigFuncs(),
		core.WithIdentifiers,
		core.WithLogging,
		core.WithRequiredVersion,
	)
	if err := config.Validate(validators...); err != nil {
		if core.IsVersionMismatchErr(err) {
			return nil, err
		}
		return nil, &ExitError{Code: 2, Message: err.Error()}
	}
	return config, nil
}

func (opts *rootOptions) setup(flags *pflag.FlagSet, stderr io.Writer) (*app, error) {
	config, err := opts.config(flags)
	if err != nil {
		return nil, err
	}
	log, closeFn, err := logging.New(logging.Options{
		Level:  config.LogLevel,
		Format: config.LogFormat,
		File:   config.LogFile,
		Writer: stderr,
	})
	if err != nil {
		return nil, &ExitError{Code: 2, Message: err.Error()}
	}
	log.Debug("configuration resolved",
		zap.String("origin", config.Origin),
		zap.String("state_struct", config.StateStruct),
		zap.String("context", config.Context),
		zap.String("config_file", opts.configFile))
	return &app{
		config:  config,
		log:     log,
		gen:     sane_optgen.NewGenerator(config, log),
		closeFn: closeFn,
	}, nil
}

// withIO opens the input and output streams. Output to a file is buffered and
// only written when fn succeeds, so a failed run never leaves a truncated file.
func (opts *rootOptions) withIO(stdin io.Reader, stdout io.Writer, fn func(io.Reader, io.Writer) error) error {
	r := stdin
	if opts.input != "" && opts.input != "-" {
		f, err := os.Open(opts.input)
		if err != nil {
			return errors.Wrap(err, "failed to open input")
		}
		defer f.Close()
		r = f
	}

	if opts.output == "" || opts.output == "-" {
		return fn(r, stdout)
	}
	var buf bytes.Buffer
	if err := fn(r, &buf); err != nil {
		return err
	}
	if err := os.WriteFile(opts.output, buf.Bytes(), 0o644); err != nil {
		return errors.Wrap(err, "failed to write output")
	}
	return nil
}
