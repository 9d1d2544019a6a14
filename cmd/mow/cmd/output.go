package cmd

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/soypat/mow"
	"github.com/soypat/mow/gear"
	"github.com/spf13/cobra"
)

// formatFloat prints the shortest representation that round trips.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

type row struct {
	name string
	v    float64
	deg  bool
}

func spurRows(r gear.SpurResult) []row {
	return []row{
		{"pitch diameter", r.PitchDiameter, false},
		{"tooth thickness", r.ToothThickness, false},
		{"pressure angle", r.PressureAngle, true},
		{"inv pressure angle", r.InvPressureAngle, false},
		{"base diameter", r.BaseDiameter, false},
		{"wire diameter", r.WireDiameter, false},
		{"inv working angle", r.InvWorkingAngle, false},
		{"laskin seed", r.Seed, true},
		{"working angle", r.WorkingAngle, true},
		{"wire center diameter", r.WireCenterDiameter, false},
		{"untouched measurement", r.Untouched, false},
		{"change factor", r.ChangeFactor, false},
		{"reduction", r.Reduction, false},
	}
}

func helicalRows(r gear.HelicalResult) []row {
	return []row{
		{"normal pitch", r.NormalPitch, false},
		{"normal thickness", r.NormalThickness, false},
		{"tan normal pressure angle", r.TanNormalPressure, false},
		{"normal pressure angle", r.NormalPressureAngle, true},
		{"helix angle", r.HelixAngle, true},
		{"pitch diameter", r.PitchDiameter, false},
		{"base diameter", r.BaseDiameter, false},
		{"base helix angle", r.BaseHelixAngle, true},
		{"wire diameter", r.WireDiameter, false},
		{"disc wire diameter", r.DiscWireDiameter, false},
		{"inv working angle", r.InvWorkingAngle, false},
		{"laskin seed", r.Seed, true},
		{"working angle", r.WorkingAngle, true},
		{"wire center diameter", r.WireCenterDiameter, false},
		{"untouched measurement", r.Untouched, false},
		{"change factor", r.ChangeFactor, false},
		{"reduction", r.Reduction, false},
	}
}

func writeRows(w io.Writer, rows []row) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, r := range rows {
		if r.deg {
			fmt.Fprintf(tw, "%s\t%s rad\t(%.4f°)\n", r.name, formatFloat(r.v), mow.RtoD(r.v))
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\n", r.name, formatFloat(r.v))
	}
	return tw.Flush()
}

// report prints the measurement of a solved gear. A non-positive measurement
// is printed and logged as a warning; other errors are returned.
func report(cmd *cobra.Command, m float64, err error) error {
	if err != nil && !errors.Is(err, gear.ErrNegativeResult) {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatFloat(m))
	if err != nil {
		logger(cmd).Printf("warning: %v", err)
	}
	return nil
}
