package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var vectorsCmd = &cobra.Command{
	Use:   "vectors",
	Short: "List the interrupt vectors of the device",
	Long: `List every interrupt vector slot with its name and the symbol its
handler trampoline is exported under.

Examples:
  rp6ctl vectors
  rp6ctl vectors --desc board.dev`,
	Args: cobra.NoArgs,
	RunE: runVectors,
}

func init() {
	rootCmd.AddCommand(vectorsCmd)
}

func runVectors(cmd *cobra.Command, args []string) error {
	dev, err := loadDevice(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %d vectors\n", dev.Name, len(dev.Vectors))
	for _, v := range dev.Vectors {
		fmt.Fprintf(out, "  %2d  %-14s __vector_%d\n", v.Slot, v.Name, v.Slot)
	}
	return nil
}
