package cmd

import (
	"fmt"

	"github.com/soypat/mow"
	"github.com/soypat/mow/gearplot"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
)

func newPlotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Draw charts of the measurement setup",
	}
	cmd.AddCommand(newPlotInvoluteCmd())
	cmd.AddCommand(newPlotSweepCmd())
	cmd.AddCommand(newPlotFlankCmd())
	return cmd
}

func savePlot(cmd *cobra.Command, p *plot.Plot, output string) error {
	if err := gearplot.Save(p, output); err != nil {
		return err
	}
	logger(cmd).Printf("wrote %s", output)
	return nil
}

func newPlotInvoluteCmd() *cobra.Command {
	var (
		output  string
		maxDeg  float64
		samples int
	)
	cmd := &cobra.Command{
		Use:   "involute",
		Short: "Plot the involute function",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := gearplot.Involute(maxDeg, samples)
			if err != nil {
				return err
			}
			return savePlot(cmd, p, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "involute.png", "Output file, format by extension")
	cmd.Flags().Float64Var(&maxDeg, "max", 45, "Largest angle in degrees")
	cmd.Flags().IntVar(&samples, "samples", 200, "Number of samples")
	return cmd
}

func newPlotSweepCmd() *cobra.Command {
	var (
		flags   gearFlags
		output  string
		maxThin float64
		samples int
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Plot measurement over wires against tooth thinning",
		Long:  "Plots a spur gear, or a helical gear when --helix is non-zero.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			thinned := func(t float64) mow.Measurer { return flags.spur().Thinned(t) }
			if flags.helix != 0 {
				thinned = func(t float64) mow.Measurer { return flags.helical().Thinned(t) }
			}
			p, err := gearplot.ThinningSweep(thinned, maxThin, samples)
			if err != nil {
				return err
			}
			return savePlot(cmd, p, output)
		},
	}
	flags.register(cmd, false)
	cmd.Flags().Float64Var(&flags.helix, "helix", 0, "Helix angle in degrees, 0 for spur gears")
	cmd.Flags().StringVarP(&output, "output", "o", "sweep.png", "Output file, format by extension")
	cmd.Flags().Float64Var(&maxThin, "max-thinning", 0.01, "Largest thinning allowance")
	cmd.Flags().IntVar(&samples, "samples", 50, "Number of samples")
	return cmd
}

func newPlotFlankCmd() *cobra.Command {
	var (
		flags   gearFlags
		output  string
		samples int
	)
	cmd := &cobra.Command{
		Use:   "flank",
		Short: "Plot a spur gear flank with the measuring wire",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := gearplot.Flank(flags.spur(), samples)
			if err != nil {
				return fmt.Errorf("flank: %w", err)
			}
			return savePlot(cmd, p, output)
		},
	}
	flags.register(cmd, false)
	cmd.Flags().StringVarP(&output, "output", "o", "flank.png", "Output file, format by extension")
	cmd.Flags().IntVar(&samples, "samples", 60, "Number of flank samples")
	return cmd
}
