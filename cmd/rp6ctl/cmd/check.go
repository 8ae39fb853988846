package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"rp6/devicedesc"
)

var errInvalid = errors.New("invalid device description")

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Validate device description files",
	Long: `Parse and validate device descriptions. Every problem of a file is
reported, not only the first one.

Examples:
  rp6ctl check board.dev
  rp6ctl check targets/*.dev`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	failed := 0
	for _, path := range args {
		dev, err := devicedesc.LoadFile(path)
		if err != nil {
			failed++
			fmt.Fprintf(out, "%s: FAIL\n", path)
			for _, e := range unjoin(err) {
				fmt.Fprintf(out, "  %v\n", e)
			}
			continue
		}
		fmt.Fprintf(out, "%s: ok (%s, %d registers, %d pins, %d vectors)\n",
			path, dev.Name, len(dev.Registers), len(dev.Pins), len(dev.Vectors))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files: %w", failed, len(args), errInvalid)
	}
	return nil
}

// unjoin splits an errors.Join result back into its parts.
func unjoin(err error) []error {
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		return j.Unwrap()
	}
	return []error{err}
}
