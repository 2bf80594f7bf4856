package i8080

import (
	"math/bits"
	"testing"
)

func newTestCPU() *CPU {
	return New(make([]byte, 0x10000), nil, nil)
}

// TestAddExhaustive checks add against a model of unsigned 8-bit
// modular addition for every operand combination.
func TestAddExhaustive(t *testing.T) {
	c := newTestCPU()
	for a := 0; a < 0x100; a++ {
		for b := 0; b < 0x100; b++ {
			c.SetA(byte(a))
			c.add(byte(b), false)

			sum := byte(a + b)
			if g := c.A(); g != sum {
				t.Fatalf("add(%.2x, %.2x): A = %.2x, want %.2x", a, b, g, sum)
			}
			if g, w := c.Flag(Carry), a+b > 0xff; g != w {
				t.Fatalf("add(%.2x, %.2x): Carry = %v, want %v", a, b, g, w)
			}
			if g, w := c.Flag(AuxCarry), a&0xf+b&0xf > 0xf; g != w {
				t.Fatalf("add(%.2x, %.2x): AuxCarry = %v, want %v", a, b, g, w)
			}
			checkSZP(t, c, sum)
		}
	}
}

func checkSZP(t *testing.T, c *CPU, result byte) {
	t.Helper()
	if g, w := c.Flag(Sign), result&0x80 != 0; g != w {
		t.Fatalf("result %.2x: Sign = %v, want %v", result, g, w)
	}
	if g, w := c.Flag(Zero), result == 0; g != w {
		t.Fatalf("result %.2x: Zero = %v, want %v", result, g, w)
	}
	if g, w := c.Flag(Parity), bits.OnesCount8(result)%2 == 0; g != w {
		t.Fatalf("result %.2x: Parity = %v, want %v", result, g, w)
	}
}

func TestAddWithCarry(t *testing.T) {
	c := newTestCPU()
	c.SetA(0x01)
	c.SetFlag(Carry, true)
	c.add(0x01, true)
	if g := c.A(); g != 0x03 {
		t.Errorf("ADC 01+01+carry: A = %.2x, want 03", g)
	}

	// An operand of ff plus carry wraps to zero before the add; the
	// carry-out then reflects adding zero.
	c.SetA(0x10)
	c.SetFlag(Carry, true)
	c.add(0xff, true)
	if g := c.A(); g != 0x10 {
		t.Errorf("ADC 10+ff+carry: A = %.2x, want 10", g)
	}
	if c.Flag(Carry) {
		t.Error("ADC 10+ff+carry: Carry set, want clear")
	}
}

func TestSubBorrow(t *testing.T) {
	c := newTestCPU()
	for a := 0; a < 0x100; a++ {
		for b := 0; b < 0x100; b++ {
			c.SetA(byte(a))
			c.SetFlag(AuxCarry, a%2 == 0) // should survive untouched
			c.sub(byte(b), false)

			diff := byte(a - b)
			if g := c.A(); g != diff {
				t.Fatalf("sub(%.2x, %.2x): A = %.2x, want %.2x", a, b, g, diff)
			}
			if g, w := c.Flag(Carry), b > a; g != w {
				t.Fatalf("sub(%.2x, %.2x): Carry = %v, want %v", a, b, g, w)
			}
			if g, w := c.Flag(AuxCarry), a%2 == 0; g != w {
				t.Fatalf("sub(%.2x, %.2x): AuxCarry = %v, want %v (sub must not recompute it)", a, b, g, w)
			}
			checkSZP(t, c, diff)
		}
	}
}

func TestCmpPreservesA(t *testing.T) {
	c := newTestCPU()
	for a := 0; a < 0x100; a++ {
		for x := 0; x < 0x100; x++ {
			c.SetA(byte(a))
			c.cmp(byte(x))
			if g := c.A(); g != byte(a) {
				t.Fatalf("cmp(%.2x) with A=%.2x left A = %.2x", x, a, g)
			}
			if g, w := c.Flag(Carry), x > a; g != w {
				t.Fatalf("cmp(%.2x) with A=%.2x: Carry = %v, want %v", x, a, g, w)
			}
			if g, w := c.Flag(Zero), a == x; g != w {
				t.Fatalf("cmp(%.2x) with A=%.2x: Zero = %v, want %v", x, a, g, w)
			}
		}
	}
}

func TestLogicOpsClearCarry(t *testing.T) {
	for _, op := range []struct {
		name string
		f    func(*CPU, byte)
		want func(a, b byte) byte
	}{
		{"and", (*CPU).and, func(a, b byte) byte { return a & b }},
		{"or", (*CPU).or, func(a, b byte) byte { return a | b }},
		{"xor", (*CPU).xor, func(a, b byte) byte { return a ^ b }},
	} {
		t.Run(op.name, func(t *testing.T) {
			c := newTestCPU()
			for a := 0; a < 0x100; a += 3 {
				for b := 0; b < 0x100; b += 7 {
					c.SetA(byte(a))
					c.SetFlag(Carry, true)
					op.f(c, byte(b))
					if g, w := c.A(), op.want(byte(a), byte(b)); g != w {
						t.Fatalf("%s(%.2x, %.2x): A = %.2x, want %.2x", op.name, a, b, g, w)
					}
					if c.Flag(Carry) {
						t.Fatalf("%s(%.2x, %.2x): Carry not cleared", op.name, a, b)
					}
					checkSZP(t, c, c.A())
				}
			}
		})
	}
}

// TestInrDcrCarryUntouched checks that increment and decrement never
// change Carry, for all starting values and both carry states.
func TestInrDcrCarryUntouched(t *testing.T) {
	c := newTestCPU()
	for v := 0; v < 0x100; v++ {
		for _, carry := range []bool{false, true} {
			r := byte(v)
			c.SetFlag(Carry, carry)
			c.inr(&r)
			if r != byte(v+1) {
				t.Fatalf("inr(%.2x) = %.2x", v, r)
			}
			if g := c.Flag(Carry); g != carry {
				t.Fatalf("inr(%.2x) changed Carry to %v", v, g)
			}
			if g, w := c.Flag(AuxCarry), v&0xf == 0xf; g != w {
				t.Fatalf("inr(%.2x): AuxCarry = %v, want %v", v, g, w)
			}
			checkSZP(t, c, r)

			r = byte(v)
			c.SetFlag(Carry, carry)
			c.dcr(&r)
			if r != byte(v-1) {
				t.Fatalf("dcr(%.2x) = %.2x", v, r)
			}
			if g := c.Flag(Carry); g != carry {
				t.Fatalf("dcr(%.2x) changed Carry to %v", v, g)
			}
			if g, w := c.Flag(AuxCarry), v&0xf == 0; g != w {
				t.Fatalf("dcr(%.2x): AuxCarry = %v, want %v", v, g, w)
			}
			checkSZP(t, c, r)
		}
	}
}

func TestDad(t *testing.T) {
	for _, tc := range []struct {
		hl, v, want uint16
		carry       bool
	}{
		{0x0000, 0x0000, 0x0000, false},
		{0x1234, 0x1111, 0x2345, false},
		{0xffff, 0x0001, 0x0000, true},
		{0x8000, 0x8000, 0x0000, true},
		{0xffff, 0xffff, 0xfffe, true},
	} {
		c := newTestCPU()
		c.HL.SetValue(tc.hl)
		c.SetFlag(Zero, true) // DAD must not touch it
		c.dad(tc.v)
		if g := c.HL.Value(); g != tc.want {
			t.Errorf("dad(%.4x) with HL=%.4x: HL = %.4x, want %.4x", tc.v, tc.hl, g, tc.want)
		}
		if g := c.Flag(Carry); g != tc.carry {
			t.Errorf("dad(%.4x) with HL=%.4x: Carry = %v, want %v", tc.v, tc.hl, g, tc.carry)
		}
		if !c.Flag(Zero) {
			t.Errorf("dad(%.4x) with HL=%.4x cleared Zero", tc.v, tc.hl)
		}
	}
}

func TestRotates(t *testing.T) {
	c := newTestCPU()
	for v := 0; v < 0x100; v++ {
		a := byte(v)

		// RLC wraps bit 7 into bit 0 and Carry.
		c.SetA(a)
		c.rlc()
		if g, w := c.A(), a<<1|a>>7; g != w {
			t.Fatalf("rlc(%.2x): A = %.2x, want %.2x", a, g, w)
		}
		if g, w := c.Flag(Carry), a&0x80 != 0; g != w {
			t.Fatalf("rlc(%.2x): Carry = %v, want %v", a, g, w)
		}
		// RRC undoes it.
		c.rrc()
		if g := c.A(); g != a {
			t.Fatalf("rlc then rrc of %.2x = %.2x", a, g)
		}

		// RAL leaves the vacated bit 0 clear.
		c.SetA(a)
		c.ral()
		if g, w := c.A(), a<<1; g != w {
			t.Fatalf("ral(%.2x): A = %.2x, want %.2x", a, g, w)
		}
		if g, w := c.Flag(Carry), a&0x80 != 0; g != w {
			t.Fatalf("ral(%.2x): Carry = %v, want %v", a, g, w)
		}

		// RAR likewise.
		c.SetA(a)
		c.rar()
		if g, w := c.A(), a>>1; g != w {
			t.Fatalf("rar(%.2x): A = %.2x, want %.2x", a, g, w)
		}
		if g, w := c.Flag(Carry), a&1 != 0; g != w {
			t.Fatalf("rar(%.2x): Carry = %v, want %v", a, g, w)
		}

		// RAL then RAR returns A when the top bit starts clear.
		if a&0x80 == 0 {
			c.SetA(a)
			c.ral()
			c.rar()
			if g := c.A(); g != a {
				t.Fatalf("ral then rar of %.2x = %.2x", a, g)
			}
		}
	}
}

func TestDAA(t *testing.T) {
	for _, tc := range []struct {
		name       string
		a          byte
		aux, carry bool
		wantA      byte
		wantAux    bool
		wantCarry  bool
	}{
		// 9B: low nibble B>9 adds 6 giving A1 with AuxCarry; high
		// nibble A>9 adds 60 giving 01 with Carry.
		{"both_nibbles", 0x9b, false, false, 0x01, true, true},
		{"low_only", 0x0a, false, false, 0x10, true, false},
		{"high_only", 0xa0, false, false, 0x00, false, true},
		{"aux_forces_low", 0x02, true, false, 0x08, true, false},
		{"carry_forces_high", 0x02, false, true, 0x62, false, true},
		{"no_adjust", 0x45, false, false, 0x45, false, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestCPU()
			c.SetA(tc.a)
			c.SetFlag(AuxCarry, tc.aux)
			c.SetFlag(Carry, tc.carry)
			c.daa()
			if g := c.A(); g != tc.wantA {
				t.Errorf("A = %.2x, want %.2x", g, tc.wantA)
			}
			if g := c.Flag(AuxCarry); g != tc.wantAux {
				t.Errorf("AuxCarry = %v, want %v", g, tc.wantAux)
			}
			if g := c.Flag(Carry); g != tc.wantCarry {
				t.Errorf("Carry = %v, want %v", g, tc.wantCarry)
			}
			checkSZP(t, c, c.A())
		})
	}
}
