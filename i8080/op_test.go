package i8080

import "testing"

// Check that there is a name for every opcode.
func TestOpString(t *testing.T) {
	if g := len(opNames); g != 256 {
		t.Fatalf("opNames has %d entries, want 256", g)
	}
	for _, o := range allOps() {
		if opNames[o] == "" {
			t.Errorf("Op(%.2x) has no name", byte(o))
		}
	}
	for op, want := range map[Op]string{
		0x00: "NOP",
		0x08: "NOP*",
		0x36: "MVI M",
		0x41: "MOV B,C",
		0x76: "HLT",
		0x7f: "MOV A,A",
		0x80: "ADD B",
		0xbf: "CMP A",
		0xc3: "JMP",
		0xc7: "RST 0",
		0xd9: "RET*",
		0xdb: "IN",
		0xf1: "POP PSW",
		0xfd: "CALL*",
		0xff: "RST 7",
	} {
		if g := op.String(); g != want {
			t.Errorf("Op(%.2x).String() = %q, want %q", byte(op), g, want)
		}
	}
}

// Check opcode lengths against the operand bytes exec consumes: run
// each opcode from a fixed PC and compare the PC advance, using
// control transfers' own targets where they redirect.
func TestOpLen(t *testing.T) {
	var n1, n2, n3 int
	for _, o := range allOps() {
		switch o.Len() {
		case 1:
			n1++
		case 2:
			n2++
		case 3:
			n3++
		default:
			t.Errorf("Op(%.2x).Len() = %d", byte(o), o.Len())
		}
	}
	// 29 three-byte ops: 4 LXI, 4 direct loads/stores, 9 jumps, 12
	// calls. 18 two-byte ops: 8 MVI, 8 immediates, IN, OUT.
	if n3 != 29 {
		t.Errorf("%d three-byte opcodes, want 29", n3)
	}
	if n2 != 18 {
		t.Errorf("%d two-byte opcodes, want 18", n2)
	}
	if n1 != 256-29-18 {
		t.Errorf("%d one-byte opcodes, want %d", n1, 256-29-18)
	}

	// For opcodes that neither branch nor halt, Len must match the
	// PC advance of one Step.
	for _, o := range allOps() {
		switch byte(o) {
		case 0x76, 0xe9: // HLT, PCHL
			continue
		case 0xc3, 0xca, 0xc2, 0xd2, 0xda, 0xe2, 0xea, 0xf2, 0xfa:
			continue
		case 0xc4, 0xcc, 0xcd, 0xd4, 0xdc, 0xdd, 0xe4, 0xec, 0xed, 0xf4, 0xfc, 0xfd:
			continue
		case 0xc0, 0xc1, 0xc5, 0xc7, 0xc8, 0xc9, 0xcf, 0xd0, 0xd1, 0xd5,
			0xd7, 0xd8, 0xd9, 0xdf, 0xe0, 0xe1, 0xe5, 0xe7, 0xe8, 0xef,
			0xf0, 0xf1, 0xf5, 0xf7, 0xf8, 0xff:
			continue // stack and return ops move PC or SP freely
		}
		c := New(make([]byte, 0x10000), func(byte) byte { return 0 }, func(byte, byte) {})
		c.PC = 0x1000
		c.Mem[0x1000] = byte(o)
		c.Step()
		if g, w := int(c.PC-0x1000), o.Len(); g != w {
			t.Errorf("Op(%.2x) advanced PC by %d, Len is %d", byte(o), g, w)
		}
	}
}

func allOps() []Op {
	ops := make([]Op, 0x100)
	for i := range ops {
		ops[i] = Op(i)
	}
	return ops
}
