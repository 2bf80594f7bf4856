package i8080

// Pair is a 16-bit register pair addressable as two 8-bit halves.
// The pair's value is always Hi*256 + Lo; writing a half is immediately
// visible through Value and vice versa.
type Pair struct {
	Hi, Lo byte
}

// Value returns the combined 16-bit value of the pair.
func (p *Pair) Value() uint16 {
	return uint16(p.Hi)<<8 | uint16(p.Lo)
}

// SetValue sets both halves of the pair from a 16-bit value.
func (p *Pair) SetValue(v uint16) {
	p.Hi = byte(v >> 8)
	p.Lo = byte(v)
}

// Flag identifies a bit position in the flags register.
type Flag byte

const (
	Carry    Flag = 0
	Parity   Flag = 2
	AuxCarry Flag = 4
	Zero     Flag = 6
	Sign     Flag = 7
)

func (f Flag) String() string {
	switch f {
	case Carry:
		return "C"
	case Parity:
		return "P"
	case AuxCarry:
		return "A"
	case Zero:
		return "Z"
	case Sign:
		return "S"
	}
	return "?"
}

// A returns the accumulator.
func (c *CPU) A() byte { return c.PSW.Hi }

// SetA sets the accumulator.
func (c *CPU) SetA(v byte) { c.PSW.Hi = v }

// Flags returns the flags register byte.
func (c *CPU) Flags() byte { return c.PSW.Lo }

func (c *CPU) B() byte { return c.BC.Hi }
func (c *CPU) C() byte { return c.BC.Lo }
func (c *CPU) D() byte { return c.DE.Hi }
func (c *CPU) E() byte { return c.DE.Lo }
func (c *CPU) H() byte { return c.HL.Hi }
func (c *CPU) L() byte { return c.HL.Lo }

// Flag reports whether f is set.
func (c *CPU) Flag(f Flag) bool {
	return c.PSW.Lo>>f&1 == 1
}

// SetFlag sets or clears exactly the bit f, leaving the others untouched.
func (c *CPU) SetFlag(f Flag, cond bool) {
	if cond {
		c.PSW.Lo |= 1 << f
	} else {
		c.PSW.Lo &^= 1 << f
	}
}

// carryIn returns the carry flag as a 0 or 1 operand.
func (c *CPU) carryIn() byte {
	if c.Flag(Carry) {
		return 1
	}
	return 0
}

// atHL returns the memory byte addressed by HL.
func (c *CPU) atHL() byte { return c.Mem[c.HL.Value()] }

// setAtHL writes the memory byte addressed by HL.
func (c *CPU) setAtHL(v byte) { c.Mem[c.HL.Value()] = v }

// read16 composes the little-endian word at addr.
func (c *CPU) read16(addr uint16) uint16 {
	return uint16(c.Mem[addr]) | uint16(c.Mem[addr+1])<<8
}

// write16 decomposes v into the little-endian word at addr.
func (c *CPU) write16(addr uint16, v uint16) {
	c.Mem[addr] = byte(v)
	c.Mem[addr+1] = byte(v >> 8)
}
