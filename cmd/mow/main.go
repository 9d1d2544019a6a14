// mow computes measurement over wires for spur and helical gears.
package main

import (
	"os"

	"github.com/soypat/mow/cmd/mow/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
