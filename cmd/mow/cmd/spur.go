package cmd

import (
	"errors"

	"github.com/soypat/mow/gear"
	"github.com/spf13/cobra"
)

// gearFlags are the inputs shared by every gear command.
type gearFlags struct {
	teeth    int
	pitch    float64
	pa       float64
	helix    float64
	thinning float64
}

func (f *gearFlags) register(cmd *cobra.Command, helical bool) {
	cmd.Flags().IntVarP(&f.teeth, "teeth", "n", 0, "Number of teeth (N)")
	cmd.Flags().Float64VarP(&f.pitch, "pitch", "p", 0, "Diametral pitch (P)")
	cmd.Flags().Float64VarP(&f.pa, "pressure-angle", "a", 20, "Pressure angle in degrees")
	cmd.Flags().Float64VarP(&f.thinning, "thinning", "t", 0, "Amount by which the teeth are thinned")
	if helical {
		cmd.Flags().Float64Var(&f.helix, "helix", 0, "Helix angle in degrees")
		cmd.MarkFlagRequired("helix")
	}
	cmd.MarkFlagRequired("teeth")
	cmd.MarkFlagRequired("pitch")
}

func (f *gearFlags) spur() gear.Spur {
	return gear.Spur{N: f.teeth, P: f.pitch, PA: f.pa, Thinning: f.thinning}
}

func (f *gearFlags) helical() gear.Helical {
	return gear.Helical{N: f.teeth, P: f.pitch, PA: f.pa, Helix: f.helix, Thinning: f.thinning}
}

func newSpurCmd() *cobra.Command {
	var (
		flags   gearFlags
		verbose bool
	)
	cmd := &cobra.Command{
		Use:   "spur",
		Short: "Measurement over wires of a spur gear",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := flags.spur().Solve()
			if verbose && (err == nil || errors.Is(err, gear.ErrNegativeResult)) {
				if werr := writeRows(cmd.OutOrStdout(), spurRows(r)); werr != nil {
					return werr
				}
			}
			return report(cmd, r.Measurement, err)
		},
	}
	flags.register(cmd, false)
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print every calculation stage")
	return cmd
}
