package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd returns the mow command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "mow",
		Short: "Measurement over wires for spur and helical gears",
		Long: "Computes the measurement over two wires used to verify gear tooth thickness\n" +
			"from tooth count, diametral pitch, pressure angle, helix angle and tooth thinning.",
		SilenceUsage: true,
	}
	root.AddCommand(newSpurCmd())
	root.AddCommand(newHelicalCmd())
	root.AddCommand(newBatchCmd())
	root.AddCommand(newPlotCmd())
	root.AddCommand(newInteractiveCmd())
	return root
}

// Execute runs the root command against the process arguments.
func Execute() error {
	root := NewRootCmd()
	root.SetErr(os.Stderr)
	return root.Execute()
}

// logger returns a logger writing to the command's error stream.
func logger(cmd *cobra.Command) *log.Logger {
	return log.New(cmd.ErrOrStderr(), "mow: ", 0)
}
