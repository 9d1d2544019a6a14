package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/soypat/mow"
	"github.com/soypat/mow/gear"
	"github.com/spf13/cobra"
)

func newInteractiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Prompt for gear inputs until done",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &prompter{in: bufio.NewScanner(cmd.InOrStdin()), out: cmd.OutOrStdout()}
			return p.loop()
		},
	}
}

// errQuit ends the session when input runs out or the user cancels.
var errQuit = errors.New("quit")

type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func (p *prompter) loop() error {
	for {
		kind, err := p.ask("Select the type of gear [spur/helical/cancel]")
		if err != nil {
			return p.done(err)
		}
		var g mow.Measurer
		switch strings.ToLower(kind) {
		case "spur", "s", "1":
			g, err = p.spur()
		case "helical", "h", "2":
			g, err = p.helical()
		case "cancel", "c", "0", "done", "q":
			return nil
		default:
			fmt.Fprintf(p.out, "unknown gear type %q\n", kind)
			continue
		}
		if err != nil {
			return p.done(err)
		}
		m, err := g.Measure()
		switch {
		case err == nil:
			fmt.Fprintf(p.out, "Measurement over wires: %s\n", formatFloat(m))
		case errors.Is(err, gear.ErrNegativeResult):
			fmt.Fprintf(p.out, "Measurement over wires: %s (warning: %v)\n", formatFloat(m), err)
		default:
			fmt.Fprintf(p.out, "error: %v\n", err)
		}
		again, err := p.ask("New calculation or done? [new/done]")
		if err != nil {
			return p.done(err)
		}
		if a := strings.ToLower(again); a != "new" && a != "n" {
			return nil
		}
	}
}

func (p *prompter) done(err error) error {
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}

func (p *prompter) spur() (mow.Measurer, error) {
	var s gear.Spur
	var err error
	if s.N, err = p.readInt("Enter the number of teeth (N)"); err != nil {
		return nil, err
	}
	if s.P, err = p.readFloat("Enter the diametral pitch (P)"); err != nil {
		return nil, err
	}
	if s.PA, err = p.readFloat("Enter the pressure angle (phi)"); err != nil {
		return nil, err
	}
	if s.Thinning, err = p.readFloat("Enter the amount by which the teeth will be thinned"); err != nil {
		return nil, err
	}
	return s, nil
}

func (p *prompter) helical() (mow.Measurer, error) {
	var h gear.Helical
	var err error
	if h.N, err = p.readInt("Enter the number of teeth (N)"); err != nil {
		return nil, err
	}
	if h.P, err = p.readFloat("Enter the diametral pitch (P)"); err != nil {
		return nil, err
	}
	if h.PA, err = p.readFloat("Enter the pressure angle (phi)"); err != nil {
		return nil, err
	}
	if h.Helix, err = p.readFloat("Enter the helix angle (psi)"); err != nil {
		return nil, err
	}
	if h.Thinning, err = p.readFloat("Enter the amount by which the teeth will be thinned"); err != nil {
		return nil, err
	}
	return h, nil
}

func (p *prompter) ask(question string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", question)
	if !p.in.Scan() {
		fmt.Fprintln(p.out)
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", errQuit
	}
	return strings.TrimSpace(p.in.Text()), nil
}

func (p *prompter) readFloat(question string) (float64, error) {
	for {
		s, err := p.ask(question)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(s, 64)
		if err == nil {
			return v, nil
		}
		fmt.Fprintf(p.out, "not a number: %q\n", s)
	}
}

func (p *prompter) readInt(question string) (int, error) {
	for {
		s, err := p.ask(question)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(s)
		if err == nil {
			return v, nil
		}
		fmt.Fprintf(p.out, "not a whole number: %q\n", s)
	}
}
