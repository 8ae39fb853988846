package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var errNotFound = errors.New("not found")

var lookupCmd = &cobra.Command{
	Use:   "lookup <name>...",
	Short: "Look up registers, pins and vectors by name",
	Long: `Print the address of a register, the registers and bit of a pin or the
slot of a vector. Names are matched without regard to case.

Examples:
  rp6ctl lookup UCSRB
  rp6ctl lookup b4 TIMER1_COMPA TCNT1`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	dev, err := loadDevice(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var missing []string
	for _, arg := range args {
		name := strings.ToUpper(arg)
		found := false
		if r, ok := dev.Register(name); ok {
			fmt.Fprintf(out, "%-12s register  0x%02X  u%d\n", r.Name, r.Address, r.Width)
			found = true
		}
		if p, ok := dev.Pin(name); ok {
			fmt.Fprintf(out, "%-12s pin       %s/%s/%s bit %d mask 0x%02X\n",
				p.Name, p.DDR, p.Out, p.In, p.Bit, p.Mask())
			found = true
		}
		if v, ok := dev.Vector(name); ok {
			fmt.Fprintf(out, "%-12s vector    %d\n", v.Name, v.Slot)
			found = true
		}
		if !found {
			missing = append(missing, arg)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%s: %w", strings.Join(missing, ", "), errNotFound)
	}
	return nil
}
