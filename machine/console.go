package machine

import (
	"io"
	"log"
	"os"
)

// Console is a serial console in the style of a two-port UART:
// port 0 is status/control, port 1 is data. Reading status reports
// receive and transmit readiness; writing control bit 0 enables input
// interrupts, delivered by the runner as RST 7. Input is pumped from
// stdin by a goroutine the first time the program writes control.
type Console struct {
	Ready <-chan bool

	Input  io.Reader // defaults to stdin
	Output io.Writer // defaults to stdout

	input   <-chan byte
	pending byte
	hasByte bool
	irq     bool
}

const (
	rxReady = 1 << 0
	txReady = 1 << 1
)

// IRQEnabled reports whether the program asked for input interrupts.
func (c *Console) IRQEnabled() bool { return c.irq }

func (c *Console) In(p byte) byte {
	switch p {
	case 0x0: // status
		s := byte(txReady)
		if c.poll() {
			s |= rxReady
		}
		return s
	case 0x1: // data
		if c.poll() {
			c.hasByte = false
			return c.pending
		}
		return 0
	}
	return 0
}

func (c *Console) Out(p, b byte) {
	switch p {
	case 0x0: // control
		c.irq = b&1 != 0
		c.start()
	case 0x1: // data
		w := c.Output
		if w == nil {
			w = os.Stdout
		}
		w.Write([]byte{b})
	}
}

// poll moves an arrived input byte, if any, into the pending latch.
func (c *Console) poll() bool {
	if c.hasByte {
		return true
	}
	if c.input == nil {
		c.start()
	}
	select {
	case b := <-c.input:
		c.pending = b
		c.hasByte = true
		return true
	default:
		return false
	}
}

func (c *Console) start() {
	if c.input != nil {
		return
	}
	r := c.Input
	if r == nil {
		r = os.Stdin
	}
	var (
		input = make(chan byte, 1)
		ready = make(chan bool, 1)
	)
	go readInput(r, input, ready)
	c.input, c.Ready = input, ready
}

func readInput(r io.Reader, input chan<- byte, ready chan<- bool) {
	for {
		var b [1]byte
		if _, err := r.Read(b[:]); err != nil {
			if err != io.EOF {
				log.Printf("reading console input: %v", err)
			}
			return
		}
		input <- b[0]
		select {
		case ready <- true:
		default:
		}
	}
}
