// Package monitor is a serial terminal for the RP6: robot output goes to the
// screen, keys go to the robot. Ctrl-] opens a local command prompt.
package monitor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"unicode/utf8"

	"github.com/google/shlex"
)

// Escape is the key that opens the command prompt (Ctrl-]).
const Escape = 0x1D

// Keys is a source of key presses, such as *tty.TTY from
// github.com/mattn/go-tty.
type Keys interface {
	ReadRune() (rune, error)
}

// Flusher is implemented by ports that can drop pending input.
type Flusher interface {
	Flush() error
}

// Option configures a Monitor.
type Option func(*Monitor)

// WithHex shows received bytes as hex instead of text.
func WithHex() Option {
	return func(m *Monitor) { m.hex.Store(true) }
}

// Monitor connects a serial port to a terminal.
type Monitor struct {
	port io.ReadWriter

	mu  sync.Mutex // guards out
	out io.Writer

	hex      atomic.Bool
	received atomic.Uint64
	sent     uint64
}

// New returns a monitor between port and out.
func New(port io.ReadWriter, out io.Writer, opts ...Option) *Monitor {
	m := &Monitor{port: port, out: out}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

type key struct {
	r   rune
	err error
}

// Run forwards until the prompt's quit command, the end of keys, the end of
// the port's input or the cancellation of ctx. Enter is sent as a line feed,
// the RP6's line terminator.
func (m *Monitor) Run(ctx context.Context, keys Keys) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	portErr := make(chan error, 1)
	go func() { portErr <- m.copyOut() }()

	keyc := make(chan key)
	go func() {
		for {
			r, err := keys.ReadRune()
			select {
			case keyc <- key{r, err}:
			case <-ctx.Done():
				return
			}
			if err != nil {
				return
			}
		}
	}()

	prompt := false
	var line []rune
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-portErr:
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("monitor: reading port: %w", err)
		case k := <-keyc:
			if k.err != nil {
				if errors.Is(k.err, io.EOF) {
					return nil
				}
				return fmt.Errorf("monitor: reading keys: %w", k.err)
			}

			if !prompt {
				if k.r == Escape {
					prompt = true
					line = line[:0]
					m.print("\r\nrp6> ")
					continue
				}
				if err := m.sendKey(k.r); err != nil {
					return err
				}
				continue
			}

			switch k.r {
			case '\r', '\n':
				prompt = false
				m.print("\r\n")
				quit, err := m.command(string(line))
				if err != nil {
					m.print("error: " + err.Error() + "\r\n")
				}
				if quit {
					return nil
				}
			case 0x7F, '\b':
				if len(line) > 0 {
					line = line[:len(line)-1]
					m.print("\b \b")
				}
			case Escape:
				// A second Ctrl-] sends the key itself.
				prompt = false
				m.print("\r\n")
				if err := m.sendKey(Escape); err != nil {
					return err
				}
			default:
				line = append(line, k.r)
				m.print(string(k.r))
			}
		}
	}
}

// Stats returns the number of bytes received from and sent to the port.
func (m *Monitor) Stats() (received, sent uint64) {
	return m.received.Load(), m.sent
}

func (m *Monitor) sendKey(r rune) error {
	if r == '\r' {
		r = '\n'
	}
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	return m.send(buf[:n])
}

func (m *Monitor) send(p []byte) error {
	n, err := m.port.Write(p)
	m.sent += uint64(n)
	if err != nil {
		return fmt.Errorf("monitor: writing port: %w", err)
	}
	return nil
}

func (m *Monitor) copyOut() error {
	buf := make([]byte, 256)
	for {
		n, err := m.port.Read(buf)
		if n > 0 {
			m.received.Add(uint64(n))
			m.show(buf[:n])
		}
		if err != nil {
			return err
		}
	}
}

func (m *Monitor) show(p []byte) {
	if !m.hex.Load() {
		m.mu.Lock()
		m.out.Write(p)
		m.mu.Unlock()
		return
	}
	var sb strings.Builder
	for _, c := range p {
		fmt.Fprintf(&sb, "%02x ", c)
		if c == '\n' {
			sb.WriteString("\r\n")
		}
	}
	m.print(sb.String())
}

func (m *Monitor) print(s string) {
	m.mu.Lock()
	io.WriteString(m.out, s)
	m.mu.Unlock()
}

// command runs one prompt line and reports whether the monitor should stop.
func (m *Monitor) command(line string) (bool, error) {
	args, err := shlex.Split(line)
	if err != nil {
		return false, err
	}
	if len(args) == 0 {
		return false, nil
	}

	switch args[0] {
	case "quit", "q", "exit":
		return true, nil
	case "help", "?":
		m.print(help)
	case "hex":
		on := !m.hex.Load()
		m.hex.Store(on)
		m.print(fmt.Sprintf("hex %v\r\n", on))
	case "send":
		return false, m.send([]byte(strings.Join(args[1:], " ") + "\n"))
	case "flush":
		f, ok := m.port.(Flusher)
		if !ok {
			return false, errors.New("port cannot flush")
		}
		return false, f.Flush()
	case "stats":
		rx, tx := m.Stats()
		m.print(fmt.Sprintf("received %d sent %d\r\n", rx, tx))
	default:
		return false, fmt.Errorf("unknown command %q", args[0])
	}
	return false, nil
}

const help = "" +
	"  send ARGS...  send the arguments as one line\r\n" +
	"  hex           toggle hex display\r\n" +
	"  flush         drop pending input\r\n" +
	"  stats         byte counters\r\n" +
	"  quit          leave the monitor\r\n" +
	"  (empty)       back to the robot\r\n"
