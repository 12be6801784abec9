package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vast-data/sane-optgen/core"
)

func newListCmd(opts *rootOptions, stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the parsed options as a table",
		Args:  cobra.NoArgs,
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
				if !result.Found {
					_, err := fmt.Fprintln(w, "no option descriptor block found")
					return err
				}
				set := core.OptionSet(result.Options)
				if asJSON {
					_, err = fmt.Fprintln(w, set.PrettyJson("  "))
					return err
				}
				_, err = fmt.Fprint(w, set.PrettyTable())
				return err
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}
