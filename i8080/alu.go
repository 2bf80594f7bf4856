package i8080

import "math/bits"

// updateSZP recomputes Sign, Zero and Parity from an 8-bit result.
// Parity on the 8080 is even parity of the result, not signed
// overflow.
func (c *CPU) updateSZP(result byte) {
	c.SetFlag(Sign, result&0x80 != 0)
	c.SetFlag(Zero, result == 0)
	c.SetFlag(Parity, bits.OnesCount8(result)%2 == 0)
}

// add adds operand to the accumulator, plus the incoming carry when
// withCarry is set. Carry reflects unsigned 8-bit overflow; AuxCarry
// reflects a carry out of the low nibbles, computed before the add is
// applied.
func (c *CPU) add(operand byte, withCarry bool) {
	if withCarry && c.Flag(Carry) {
		operand++
	}
	a := c.A()
	c.SetFlag(Carry, uint16(a)+uint16(operand) > 0xff)
	c.SetFlag(AuxCarry, a&0xf+operand&0xf > 0xf)
	c.SetA(a + operand)
	c.updateSZP(c.A())
}

// sub subtracts operand from the accumulator, plus the incoming carry
// when withBorrow is set. Carry reflects an unsigned borrow. AuxCarry
// is not recomputed on the subtract path.
func (c *CPU) sub(operand byte, withBorrow bool) {
	if withBorrow && c.Flag(Carry) {
		operand++
	}
	a := c.A()
	c.SetFlag(Carry, operand > a)
	c.SetA(a - operand)
	c.updateSZP(c.A())
}

// cmp runs sub for its flag effects and restores the accumulator.
func (c *CPU) cmp(operand byte) {
	a := c.A()
	c.sub(operand, false)
	c.SetA(a)
}

func (c *CPU) and(operand byte) {
	c.SetA(c.A() & operand)
	c.updateSZP(c.A())
	c.SetFlag(Carry, false)
}

func (c *CPU) or(operand byte) {
	c.SetA(c.A() | operand)
	c.updateSZP(c.A())
	c.SetFlag(Carry, false)
}

func (c *CPU) xor(operand byte) {
	c.SetA(c.A() ^ operand)
	c.updateSZP(c.A())
	c.SetFlag(Carry, false)
}

// inr increments the 8-bit location at p. AuxCarry is set when the low
// nibble was 15 before the increment; Carry is never touched.
func (c *CPU) inr(p *byte) {
	c.SetFlag(AuxCarry, *p&0xf == 0xf)
	*p++
	c.updateSZP(*p)
}

// dcr decrements the 8-bit location at p. AuxCarry is set when the low
// nibble was 0 before the decrement; Carry is never touched.
func (c *CPU) dcr(p *byte) {
	c.SetFlag(AuxCarry, *p&0xf == 0)
	*p--
	c.updateSZP(*p)
}

// dad adds v into HL, setting Carry on 16-bit overflow and no other
// flag.
func (c *CPU) dad(v uint16) {
	hl := c.HL.Value()
	c.SetFlag(Carry, v > 0xffff-hl)
	c.HL.SetValue(hl + v)
}

// rlc rotates the accumulator left; bit 7 lands in both Carry and
// bit 0.
func (c *CPU) rlc() {
	a := c.A()
	c.SetFlag(Carry, a&0x80 != 0)
	c.SetA(a<<1 | a>>7)
}

// rrc rotates the accumulator right; bit 0 lands in both Carry and
// bit 7.
func (c *CPU) rrc() {
	a := c.A()
	c.SetFlag(Carry, a&1 != 0)
	c.SetA(a>>1 | a<<7)
}

// ral shifts the accumulator left into Carry; the vacated bit 0 is
// zero rather than the old Carry.
func (c *CPU) ral() {
	a := c.A()
	c.SetFlag(Carry, a&0x80 != 0)
	c.SetA(a << 1)
}

// rar shifts the accumulator right into Carry; the vacated bit 7 is
// zero rather than the old Carry.
func (c *CPU) rar() {
	a := c.A()
	c.SetFlag(Carry, a&1 != 0)
	c.SetA(a >> 1)
}

// daa adjusts the accumulator to packed BCD after an addition. Both
// nibble adjustments may apply in one call; the high-nibble test uses
// the accumulator as already adjusted by the low-nibble step.
func (c *CPU) daa() {
	if c.Flag(AuxCarry) || c.A()&0xf > 9 {
		c.SetA(c.A() + 6)
		c.SetFlag(AuxCarry, true)
	}
	if c.Flag(Carry) || c.A()>>4 > 9 {
		c.SetA(c.A() + 0x60)
		c.SetFlag(Carry, true)
	}
	c.updateSZP(c.A())
}
