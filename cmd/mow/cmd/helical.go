package cmd

import (
	"errors"

	"github.com/soypat/mow/gear"
	"github.com/spf13/cobra"
)

func newHelicalCmd() *cobra.Command {
	var (
		flags   gearFlags
		verbose bool
	)
	cmd := &cobra.Command{
		Use:   "helical",
		Short: "Measurement over wires of a helical gear",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := flags.helical().Solve()
			if verbose && (err == nil || errors.Is(err, gear.ErrNegativeResult)) {
				if werr := writeRows(cmd.OutOrStdout(), helicalRows(r)); werr != nil {
					return werr
				}
			}
			return report(cmd, r.Measurement, err)
		},
	}
	flags.register(cmd, true)
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print every calculation stage")
	return cmd
}
