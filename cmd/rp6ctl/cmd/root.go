package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rp6/devicedesc"
)

var (
	// Global flags
	verbose  bool
	descPath string
)

var rootCmd = &cobra.Command{
	Use:   "rp6ctl",
	Short: "RP6 device description and serial tool",
	Long: `Inspect and validate ATmega32 device descriptions and open a terminal
to the RP6 robot.

Without --desc the built-in ATmega32 description is used.

Examples:
  rp6ctl vectors                          # List the interrupt vectors
  rp6ctl lookup PORTA TIMER0_COMP B4      # Look up registers, vectors and pins
  rp6ctl check board.dev                  # Validate a description
  rp6ctl monitor --port /dev/ttyUSB0      # Serial terminal, Ctrl-] for commands`,
	Version:       "0.3.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "rp6ctl:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&descPath, "desc", "d", "", "device description file")
}

// loadDevice returns the description selected by --desc.
func loadDevice(cmd *cobra.Command) (*devicedesc.Device, error) {
	if descPath == "" {
		if verbose {
			fmt.Fprintln(cmd.ErrOrStderr(), "using the built-in atmega32 description")
		}
		return devicedesc.ATmega32()
	}
	if verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "loading %s\n", descPath)
	}
	dev, err := devicedesc.LoadFile(descPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", descPath, err)
	}
	return dev, nil
}
