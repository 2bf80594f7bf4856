// Package i8080 provides an instruction-level emulation of the Intel
// 8080 microprocessor, called CPU, that executes 8080 machine code one
// instruction at a time against host-supplied memory and port I/O.
package i8080

// InputFunc reads a byte from a device port on behalf of the IN
// instruction.
type InputFunc func(port byte) byte

// OutputFunc writes a byte to a device port on behalf of the OUT
// instruction.
type OutputFunc func(port, value byte)

// CPU is the state of an Intel 8080: its register file, a borrowed
// reference to host-owned memory, and the interrupt latch. The host
// drives it by calling Step repeatedly; Step runs exactly one
// instruction (or a no-op while halted) and returns.
type CPU struct {
	// PSW holds the accumulator (Hi) and the flags register (Lo).
	PSW Pair
	BC  Pair
	DE  Pair
	HL  Pair
	SP  uint16
	PC  uint16

	// Mem is the address space. The CPU holds but does not own it;
	// the host must not mutate it during a Step call and must make it
	// large enough for every address the program can reach.
	Mem []byte

	In  InputFunc
	Out OutputFunc

	halted     bool
	intEnabled bool
	intPending bool
	intVector  byte
}

// New returns a CPU using the given memory and port callbacks.
// All registers start at zero except the fixed bit of the flags
// register.
func New(mem []byte, in InputFunc, out OutputFunc) *CPU {
	c := &CPU{Mem: mem, In: in, Out: out}
	c.PSW.Lo = 1 << 1 // flag bit 1 reads as 1, always
	return c
}

// Load copies code into memory starting at org.
func (c *CPU) Load(org uint16, code []byte) {
	for i, b := range code {
		c.Mem[org+uint16(i)] = b
	}
}

// Halted reports whether the CPU has executed HLT and not yet been
// released by an interrupt.
func (c *CPU) Halted() bool { return c.halted }

// InterruptsEnabled reports whether the CPU will accept an interrupt.
// A halted CPU with interrupts disabled can make no further progress.
func (c *CPU) InterruptsEnabled() bool { return c.intEnabled }

// Interrupt latches vector for execution on the next Step. It does
// nothing unless interrupts are enabled; acceptance disables them
// until the program runs EI again, so a second call before the next
// Step is dropped.
func (c *CPU) Interrupt(vector byte) {
	if c.intEnabled {
		c.intEnabled = false
		c.intPending = true
		c.intVector = vector
	}
}

// Step executes one instruction: a pending interrupt vector if one is
// latched, otherwise the opcode at PC. A halted CPU with no pending
// interrupt does nothing.
//
// The interrupt vector runs with interrupts left disabled; Interrupt
// cleared the enable flag when it latched, and acceptance must not
// re-enable it.
func (c *CPU) Step() {
	if c.intPending {
		vector := c.intVector
		c.intPending = false
		c.halted = false
		c.exec(vector)
	} else if !c.halted {
		c.exec(c.fetch8())
	}
}

// fetch8 consumes the byte at PC.
func (c *CPU) fetch8() byte {
	b := c.Mem[c.PC]
	c.PC++
	return b
}

// fetch16 consumes the little-endian word at PC.
func (c *CPU) fetch16() uint16 {
	v := c.read16(c.PC)
	c.PC += 2
	return v
}

func (c *CPU) push(v uint16) {
	c.SP -= 2
	c.write16(c.SP, v)
}

// pop returns the word at SP and forces the fixed flag bits. The
// forcing targets the flags register no matter which pair the caller
// assigns the result to, matching 8080 behavior for POP PSW and
// preserved as-is for the other pairs. POP PSW repeats the forcing
// after assignment so the popped flag byte cannot unset the fixed
// bits.
func (c *CPU) pop() uint16 {
	v := c.read16(c.SP)
	c.SP += 2
	c.forceFixedFlags()
	return v
}

// forceFixedFlags resets the constant bits of the flags register:
// bit 1 reads as 1, bits 3 and 5 read as 0.
func (c *CPU) forceFixedFlags() {
	c.PSW.Lo = c.PSW.Lo&^(1<<5)&^(1<<3) | 1<<1
}

func (c *CPU) rst(n int) {
	c.push(c.PC)
	c.PC = uint16(8 * n)
}

// jmp consumes the target address and redirects PC only if cond holds.
func (c *CPU) jmp(cond bool) {
	addr := c.fetch16()
	if cond {
		c.PC = addr
	}
}

func (c *CPU) ret(cond bool) {
	if cond {
		c.PC = c.pop()
	}
}

// call consumes the target address; the push and redirect happen only
// if cond holds.
func (c *CPU) call(cond bool) {
	addr := c.fetch16()
	if cond {
		c.push(c.PC)
		c.PC = addr
	}
}
