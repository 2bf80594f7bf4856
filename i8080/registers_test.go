package i8080

import "testing"

func TestPairHalves(t *testing.T) {
	var p Pair
	for v := 0; v <= 0xffff; v++ {
		p.SetValue(uint16(v))
		if g, w := p.Hi, byte(v>>8); g != w {
			t.Fatalf("SetValue(%.4x): Hi = %.2x, want %.2x", v, g, w)
		}
		if g, w := p.Lo, byte(v); g != w {
			t.Fatalf("SetValue(%.4x): Lo = %.2x, want %.2x", v, g, w)
		}
		if g := p.Value(); g != uint16(v) {
			t.Fatalf("Value after SetValue(%.4x) = %.4x", v, g)
		}
	}

	// Writing a half is immediately visible through the pair.
	p.SetValue(0x1234)
	p.Hi = 0x56
	if g := p.Value(); g != 0x5634 {
		t.Errorf("after Hi write Value = %.4x, want 5634", g)
	}
	p.Lo = 0x78
	if g := p.Value(); g != 0x5678 {
		t.Errorf("after Lo write Value = %.4x, want 5678", g)
	}
}

func TestSetFlagTouchesOneBit(t *testing.T) {
	c := New(make([]byte, 0x100), nil, nil)
	for _, f := range []Flag{Carry, Parity, AuxCarry, Zero, Sign} {
		before := c.Flags()
		c.SetFlag(f, true)
		if !c.Flag(f) {
			t.Errorf("flag %v not set", f)
		}
		if g, w := c.Flags(), before|1<<f; g != w {
			t.Errorf("flags after set %v = %.8b, want %.8b", f, g, w)
		}
		c.SetFlag(f, false)
		if c.Flag(f) {
			t.Errorf("flag %v not cleared", f)
		}
		if g := c.Flags(); g != before {
			t.Errorf("flags after clear %v = %.8b, want %.8b", f, g, before)
		}
	}
}

func TestNewInitialState(t *testing.T) {
	c := New(make([]byte, 0x100), nil, nil)
	if g := c.Flags(); g != 0x02 {
		t.Errorf("initial flags = %.2x, want 02", g)
	}
	if c.A() != 0 || c.BC.Value() != 0 || c.DE.Value() != 0 || c.HL.Value() != 0 ||
		c.SP != 0 || c.PC != 0 {
		t.Error("initial registers not zeroed")
	}
	if c.Halted() || c.InterruptsEnabled() {
		t.Error("initial halted or interrupt state set")
	}
}

func TestPushPopRestoresPairs(t *testing.T) {
	mem := make([]byte, 0x10000)
	c := New(mem, nil, nil)
	c.SP = 0x2400

	for _, v := range []uint16{0x0000, 0x0001, 0x00ff, 0x1234, 0x8000, 0xffff} {
		c.BC.SetValue(v)
		c.push(c.BC.Value())
		c.BC.SetValue(^v)
		c.BC.SetValue(c.pop())
		if g := c.BC.Value(); g != v {
			t.Errorf("push/pop BC %.4x returned %.4x", v, g)
		}
		if g := c.SP; g != 0x2400 {
			t.Errorf("SP after push/pop = %.4x, want 2400", g)
		}
	}
}

func TestPopForcesFixedFlagBits(t *testing.T) {
	mem := make([]byte, 0x10000)
	for v := 0; v <= 0xffff; v++ {
		c := New(mem, nil, nil)
		c.SP = 0x2400
		c.push(uint16(v))
		c.exec(0xf1) // POP PSW
		if g, w := c.A(), byte(v>>8); g != w {
			t.Fatalf("POP PSW %.4x: A = %.2x, want %.2x", v, g, w)
		}
		// Bits 1, 3 and 5 of the flags register are fixed at 1, 0, 0
		// no matter what was pushed.
		want := byte(v)&^(1<<5)&^(1<<3) | 1<<1
		if g := c.Flags(); g != want {
			t.Fatalf("POP PSW %.4x: flags = %.8b, want %.8b", v, g, want)
		}
	}
}

func TestPopIntoOtherPairForcesFlags(t *testing.T) {
	mem := make([]byte, 0x10000)
	c := New(mem, nil, nil)
	c.SP = 0x2400
	c.PSW.Lo = 0xff
	c.push(0xabcd)
	c.exec(0xc1) // POP B
	if g := c.BC.Value(); g != 0xabcd {
		t.Errorf("POP B = %.4x, want abcd", g)
	}
	// The forcing routine targets the flags register for every pop.
	if g, w := c.Flags(), byte(0xff)&^(1<<5)&^(1<<3)|1<<1; g != w {
		t.Errorf("flags after POP B = %.8b, want %.8b", g, w)
	}
}
