//go:build !(tinygo && avr)

package avr

// Host builds back the data space with plain memory so register and pin code
// can be exercised by go test. The helpers below stand in for the hardware:
// write hooks model peripheral side effects and simulated ports compute the
// input registers from the output and direction registers.

// MemorySize is the size of the simulated data space. It covers the register
// file and the whole I/O area of the ATmega family.
const MemorySize = 0x100

// Write is one store observed by the recorder.
type Write struct {
	Addr  uintptr
	Value uint8
}

type simPort struct {
	ddr, port, pin uintptr
	external       uint8
}

var (
	memory    [MemorySize]uint8
	hooks     = map[uintptr]func(v uint8){}
	ports     []*simPort
	recording bool
	recorded  []Write
)

func checkAddr(addr uintptr) uintptr {
	if addr >= MemorySize {
		panic("avr: simulated access outside the data space")
	}
	return addr
}

func load8(addr uintptr) uint8 {
	return memory[checkAddr(addr)]
}

func store8(addr uintptr, v uint8) {
	memory[checkAddr(addr)] = v
	if recording {
		recorded = append(recorded, Write{Addr: addr, Value: v})
	}
	for _, p := range ports {
		if addr == p.ddr || addr == p.port || addr == p.pin {
			p.update()
		}
	}
	if h := hooks[addr]; h != nil {
		h(v)
	}
}

// update recomputes the input register: output bits echo the output
// register, input bits follow the externally driven level.
func (p *simPort) update() {
	ddr := memory[p.ddr]
	memory[p.pin] = memory[p.port]&ddr | p.external&^ddr
}

// ResetMemory zeroes the data space, drops write hooks, stops the recorder and
// releases every externally driven input. Simulated ports stay registered.
func ResetMemory() {
	memory = [MemorySize]uint8{}
	hooks = map[uintptr]func(v uint8){}
	recording = false
	recorded = nil
	for _, p := range ports {
		p.external = 0
	}
}

// Peek reads the simulated data space without side effects.
func Peek(addr uintptr) uint8 {
	return memory[checkAddr(addr)]
}

// Poke writes the simulated data space without running hooks or the
// recorder. Peripheral models use it to raise status flags.
func Poke(addr uintptr, v uint8) {
	memory[checkAddr(addr)] = v
}

// OnWrite installs fn to run after every store to addr. A nil fn removes the
// hook.
func OnWrite(addr uintptr, fn func(v uint8)) {
	if fn == nil {
		delete(hooks, checkAddr(addr))
		return
	}
	hooks[checkAddr(addr)] = fn
}

// RecordWrites starts capturing stores and returns a function that stops the
// capture and yields the stores in program order.
func RecordWrites() (stop func() []Write) {
	recording = true
	recorded = nil
	return func() []Write {
		recording = false
		out := recorded
		recorded = nil
		return out
	}
}

// SimulatePort wires a register triple to the port model.
func SimulatePort(ddr, port, pin uintptr) {
	p := &simPort{ddr: checkAddr(ddr), port: checkAddr(port), pin: checkAddr(pin)}
	ports = append(ports, p)
	p.update()
}

// DriveInput sets the external level seen on the input bits of mask of the
// port whose input register is at pin.
func DriveInput(pin uintptr, mask uint8, high bool) {
	for _, p := range ports {
		if p.pin != pin {
			continue
		}
		if high {
			p.external |= mask
		} else {
			p.external &^= mask
		}
		p.update()
		return
	}
	panic("avr: DriveInput on a port that is not simulated")
}
