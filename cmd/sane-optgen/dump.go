package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vast-data/sane-optgen/core"
)

func newDumpCmd(opts *rootOptions, stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Write the normalized options as MessagePack",
		Long: `dump writes the normalized option records in MessagePack form so that
other build tools can consume them without re-parsing the descriptor block.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := opts.setup(cmd.Flags(), stderr)
			if err != nil {
				return err
			}
			defer a.closeFn()
			return opts.withIO(stdin, stdout, func(r io.Reader, w io.Writer) error {
				result, err := a.gen.Parse(r)
				if err != nil {
					return err
				}
				return core.OptionSet(result.Options).EncodeMsgpack(w)
			})
		},
	}
}

func newVersionCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the generator version",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			_, err := fmt.Fprintln(stdout, core.GeneratorVersion())
			return err
		},
	}
}
