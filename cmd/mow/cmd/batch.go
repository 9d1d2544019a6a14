package cmd

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/soypat/mow/gear"
	"github.com/soypat/mow/internal/batch"
	"github.com/spf13/cobra"
)

func newBatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch FILE",
		Short: "Measure every gear listed in a TOML batch file",
		Long: "Reads [[spur]] and [[helical]] tables with keys name, teeth, pitch,\n" +
			"pressure_angle, helix_angle and thinning and prints one measurement per gear.",
		Args: cobra.ExactArgs(1),
		RunE: runBatch,
	}
}

func runBatch(cmd *cobra.Command, args []string) error {
	f, err := batch.Load(args[0])
	if err != nil {
		return err
	}
	results := batch.Run(f)
	log := logger(cmd)
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tKIND\tMEASUREMENT")
	var failed int
	for _, r := range results {
		switch {
		case r.Err == nil:
			fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Name, r.Kind, formatFloat(r.Measurement))
		case errors.Is(r.Err, gear.ErrNegativeResult):
			fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Name, r.Kind, formatFloat(r.Measurement))
			log.Printf("warning: %s: %v", r.Name, r.Err)
		default:
			failed++
			fmt.Fprintf(tw, "%s\t%s\t-\n", r.Name, r.Kind)
			log.Printf("%s: %v", r.Name, r.Err)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d gears failed", failed, len(results))
	}
	return nil
}
