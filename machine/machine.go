// Package machine implements a small 8080 computer: 64 KB of memory
// and a set of port-mapped devices wired to an i8080.CPU.
package machine

import (
	"github.com/mkb/i80/i8080"
	"github.com/mkb/i80/ihex"
)

// Port map. Each device owns a 16-port block selected by the high
// nibble of the port number.
const (
	consolePorts = 0x10
	clockPorts   = 0x20
	systemPorts  = 0xf0
)

// Machine is an i8080.CPU plus its memory and devices.
type Machine struct {
	CPU *i8080.CPU
	Mem []byte

	sys System
	con Console
	clk Clock

	halt chan bool
}

// New returns a machine with zeroed memory and no program loaded.
func New() *Machine {
	m := &Machine{
		Mem:  make([]byte, 0x10000),
		halt: make(chan bool),
	}
	m.CPU = i8080.New(m.Mem, m.in, m.out)
	return m
}

// LoadHex populates memory from the named Intel HEX file.
func (m *Machine) LoadHex(name string) error {
	return ihex.Load(name, m.Mem)
}

// LoadBin copies a raw binary image into memory at org and starts
// execution there.
func (m *Machine) LoadBin(org uint16, code []byte) {
	m.CPU.Load(org, code)
	m.CPU.PC = org
}

// Halt stops a running machine.
func (m *Machine) Halt() {
	close(m.halt)
}

// ExitCode returns the code written to the system device, or 0.
func (m *Machine) ExitCode() int { return m.sys.ExitCode() }

func (m *Machine) in(p byte) byte {
	dev := p & 0xf0
	p &= 0xf
	switch dev {
	case consolePorts:
		return m.con.In(p)
	case clockPorts:
		return m.clk.In(p)
	case systemPorts:
		return m.sys.In(p)
	default:
		return 0 // unattached port
	}
}

func (m *Machine) out(p, b byte) {
	dev := p & 0xf0
	p &= 0xf
	switch dev {
	case consolePorts:
		m.con.Out(p, b)
	case clockPorts:
		m.clk.Out(p, b)
	case systemPorts:
		m.sys.Out(p, b)
	}
}
