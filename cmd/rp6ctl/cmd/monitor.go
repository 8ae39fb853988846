package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	tty "github.com/mattn/go-tty"
	"github.com/spf13/cobra"

	"rp6/config"
	"rp6/host/monitor"
	"rp6/host/serial"
)

var (
	portDevice string
	baud       int
	showHex    bool
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Open a terminal to the robot's serial link",
	Long: `Show what the robot sends and forward key presses to it. Ctrl-] opens a
local prompt (send, hex, flush, stats, quit); Ctrl-] twice sends the key
itself.

Examples:
  rp6ctl monitor --port /dev/ttyUSB0
  rp6ctl monitor --port /dev/ttyUSB0 --baud 500000 --hex`,
	Args: cobra.NoArgs,
	RunE: runMonitor,
}

func init() {
	rootCmd.AddCommand(monitorCmd)

	monitorCmd.Flags().StringVarP(&portDevice, "port", "p", "", "serial device")
	monitorCmd.Flags().IntVarP(&baud, "baud", "b", config.BaudLow, "baud rate")
	monitorCmd.Flags().BoolVar(&showHex, "hex", false, "show received bytes as hex")
	monitorCmd.MarkFlagRequired("port")
}

func runMonitor(cmd *cobra.Command, args []string) error {
	cfg := serial.DefaultConfig(portDevice)
	cfg.Baud = baud
	port, err := serial.Open(cfg)
	if err != nil {
		return err
	}
	defer port.Close()

	term, err := tty.Open()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	defer term.Close()
	restore, err := term.Raw()
	if err != nil {
		return fmt.Errorf("failed to switch terminal to raw mode: %w", err)
	}
	defer restore()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM)
	defer stop()

	var opts []monitor.Option
	if showHex {
		opts = append(opts, monitor.WithHex())
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "connected to %s at %d baud, Ctrl-] for commands\r\n", cfg.Device, cfg.Baud)

	m := monitor.New(port, out, opts...)
	err = m.Run(ctx, term)
	rx, tx := m.Stats()
	fmt.Fprintf(out, "\r\nreceived %d bytes, sent %d bytes\r\n", rx, tx)
	return err
}
