package uart

import "rp6/config"

// ring is the receive buffer. When full, new bytes are dropped and counted.
type ring struct {
	buf     [config.RxBufferSize]byte
	head    uint8 // next write
	count   uint8
	dropped uint16
}

func (r *ring) push(b byte) {
	if int(r.count) == len(r.buf) {
		r.dropped++
		return
	}
	r.buf[r.head] = b
	r.head = (r.head + 1) % uint8(len(r.buf))
	r.count++
}

func (r *ring) pop() (byte, bool) {
	if r.count == 0 {
		return 0, false
	}
	tail := (r.head + uint8(len(r.buf)) - r.count) % uint8(len(r.buf))
	r.count--
	return r.buf[tail], true
}
