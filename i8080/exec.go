package i8080

// exec runs one opcode. Every one of the 256 byte values has exactly
// one action; the undocumented encodings 0x08/0x10/0x18/0x20/0x28/
// 0x30/0x38/0xcb (NOP), 0xd9 (RET) and 0xdd/0xed/0xfd (CALL) behave
// as documented instructions. Immediate operands are consumed
// from the instruction stream whether or not a condition is taken.
func (c *CPU) exec(op byte) {
	switch op {
	case 0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38, 0xcb: // NOP

	case 0x01: // LXI B
		c.BC.SetValue(c.fetch16())
	case 0x11: // LXI D
		c.DE.SetValue(c.fetch16())
	case 0x21: // LXI H
		c.HL.SetValue(c.fetch16())
	case 0x31: // LXI SP
		c.SP = c.fetch16()

	case 0x02: // STAX B
		c.Mem[c.BC.Value()] = c.A()
	case 0x12: // STAX D
		c.Mem[c.DE.Value()] = c.A()
	case 0x0a: // LDAX B
		c.SetA(c.Mem[c.BC.Value()])
	case 0x1a: // LDAX D
		c.SetA(c.Mem[c.DE.Value()])

	case 0x22: // SHLD
		c.write16(c.fetch16(), c.HL.Value())
	case 0x2a: // LHLD
		c.HL.SetValue(c.read16(c.fetch16()))
	case 0x32: // STA
		c.Mem[c.fetch16()] = c.A()
	case 0x3a: // LDA
		c.SetA(c.Mem[c.fetch16()])

	case 0x03: // INX B
		c.BC.SetValue(c.BC.Value() + 1)
	case 0x13: // INX D
		c.DE.SetValue(c.DE.Value() + 1)
	case 0x23: // INX H
		c.HL.SetValue(c.HL.Value() + 1)
	case 0x33: // INX SP
		c.SP++

	case 0x0b: // DCX B
		c.BC.SetValue(c.BC.Value() - 1)
	case 0x1b: // DCX D
		c.DE.SetValue(c.DE.Value() - 1)
	case 0x2b: // DCX H
		c.HL.SetValue(c.HL.Value() - 1)
	case 0x3b: // DCX SP
		c.SP--

	case 0x04: // INR B
		c.inr(&c.BC.Hi)
	case 0x0c: // INR C
		c.inr(&c.BC.Lo)
	case 0x14: // INR D
		c.inr(&c.DE.Hi)
	case 0x1c: // INR E
		c.inr(&c.DE.Lo)
	case 0x24: // INR H
		c.inr(&c.HL.Hi)
	case 0x2c: // INR L
		c.inr(&c.HL.Lo)
	case 0x34: // INR M
		c.inr(&c.Mem[c.HL.Value()])
	case 0x3c: // INR A
		c.inr(&c.PSW.Hi)

	case 0x05: // DCR B
		c.dcr(&c.BC.Hi)
	case 0x0d: // DCR C
		c.dcr(&c.BC.Lo)
	case 0x15: // DCR D
		c.dcr(&c.DE.Hi)
	case 0x1d: // DCR E
		c.dcr(&c.DE.Lo)
	case 0x25: // DCR H
		c.dcr(&c.HL.Hi)
	case 0x2d: // DCR L
		c.dcr(&c.HL.Lo)
	case 0x35: // DCR M
		c.dcr(&c.Mem[c.HL.Value()])
	case 0x3d: // DCR A
		c.dcr(&c.PSW.Hi)

	case 0x06: // MVI B
		c.BC.Hi = c.fetch8()
	case 0x0e: // MVI C
		c.BC.Lo = c.fetch8()
	case 0x16: // MVI D
		c.DE.Hi = c.fetch8()
	case 0x1e: // MVI E
		c.DE.Lo = c.fetch8()
	case 0x26: // MVI H
		c.HL.Hi = c.fetch8()
	case 0x2e: // MVI L
		c.HL.Lo = c.fetch8()
	case 0x36: // MVI M
		c.setAtHL(c.fetch8())
	case 0x3e: // MVI A
		c.SetA(c.fetch8())

	case 0x07: // RLC
		c.rlc()
	case 0x0f: // RRC
		c.rrc()
	case 0x17: // RAL
		c.ral()
	case 0x1f: // RAR
		c.rar()

	case 0x27: // DAA
		c.daa()
	case 0x2f: // CMA
		c.SetA(^c.A())
	case 0x37: // STC
		c.SetFlag(Carry, true)
	case 0x3f: // CMC
		c.SetFlag(Carry, !c.Flag(Carry))

	case 0x09: // DAD B
		c.dad(c.BC.Value())
	case 0x19: // DAD D
		c.dad(c.DE.Value())
	case 0x29: // DAD H
		c.dad(c.HL.Value())
	case 0x39: // DAD SP
		c.dad(c.SP)

	case 0x40: // MOV B,B
	case 0x41:
		c.BC.Hi = c.C()
	case 0x42:
		c.BC.Hi = c.D()
	case 0x43:
		c.BC.Hi = c.E()
	case 0x44:
		c.BC.Hi = c.H()
	case 0x45:
		c.BC.Hi = c.L()
	case 0x46:
		c.BC.Hi = c.atHL()
	case 0x47:
		c.BC.Hi = c.A()
	case 0x48:
		c.BC.Lo = c.B()
	case 0x49: // MOV C,C
	case 0x4a:
		c.BC.Lo = c.D()
	case 0x4b:
		c.BC.Lo = c.E()
	case 0x4c:
		c.BC.Lo = c.H()
	case 0x4d:
		c.BC.Lo = c.L()
	case 0x4e:
		c.BC.Lo = c.atHL()
	case 0x4f:
		c.BC.Lo = c.A()
	case 0x50:
		c.DE.Hi = c.B()
	case 0x51:
		c.DE.Hi = c.C()
	case 0x52: // MOV D,D
	case 0x53:
		c.DE.Hi = c.E()
	case 0x54:
		c.DE.Hi = c.H()
	case 0x55:
		c.DE.Hi = c.L()
	case 0x56:
		c.DE.Hi = c.atHL()
	case 0x57:
		c.DE.Hi = c.A()
	case 0x58:
		c.DE.Lo = c.B()
	case 0x59:
		c.DE.Lo = c.C()
	case 0x5a:
		c.DE.Lo = c.D()
	case 0x5b: // MOV E,E
	case 0x5c:
		c.DE.Lo = c.H()
	case 0x5d:
		c.DE.Lo = c.L()
	case 0x5e:
		c.DE.Lo = c.atHL()
	case 0x5f:
		c.DE.Lo = c.A()
	case 0x60:
		c.HL.Hi = c.B()
	case 0x61:
		c.HL.Hi = c.C()
	case 0x62:
		c.HL.Hi = c.D()
	case 0x63:
		c.HL.Hi = c.E()
	case 0x64: // MOV H,H
	case 0x65:
		c.HL.Hi = c.L()
	case 0x66:
		c.HL.Hi = c.atHL()
	case 0x67:
		c.HL.Hi = c.A()
	case 0x68:
		c.HL.Lo = c.B()
	case 0x69:
		c.HL.Lo = c.C()
	case 0x6a:
		c.HL.Lo = c.D()
	case 0x6b:
		c.HL.Lo = c.E()
	case 0x6c:
		c.HL.Lo = c.H()
	case 0x6d: // MOV L,L
	case 0x6e:
		c.HL.Lo = c.atHL()
	case 0x6f:
		c.HL.Lo = c.A()
	case 0x70:
		c.setAtHL(c.B())
	case 0x71:
		c.setAtHL(c.C())
	case 0x72:
		c.setAtHL(c.D())
	case 0x73:
		c.setAtHL(c.E())
	case 0x74:
		c.setAtHL(c.H())
	case 0x75:
		c.setAtHL(c.L())
	case 0x77:
		c.setAtHL(c.A())
	case 0x78:
		c.SetA(c.B())
	case 0x79:
		c.SetA(c.C())
	case 0x7a:
		c.SetA(c.D())
	case 0x7b:
		c.SetA(c.E())
	case 0x7c:
		c.SetA(c.H())
	case 0x7d:
		c.SetA(c.L())
	case 0x7e:
		c.SetA(c.atHL())
	case 0x7f: // MOV A,A

	case 0x76: // HLT
		c.halted = true

	case 0x80:
		c.add(c.B(), false)
	case 0x81:
		c.add(c.C(), false)
	case 0x82:
		c.add(c.D(), false)
	case 0x83:
		c.add(c.E(), false)
	case 0x84:
		c.add(c.H(), false)
	case 0x85:
		c.add(c.L(), false)
	case 0x86:
		c.add(c.atHL(), false)
	case 0x87:
		c.add(c.A(), false)

	case 0x88:
		c.add(c.B(), true)
	case 0x89:
		c.add(c.C(), true)
	case 0x8a:
		c.add(c.D(), true)
	case 0x8b:
		c.add(c.E(), true)
	case 0x8c:
		c.add(c.H(), true)
	case 0x8d:
		c.add(c.L(), true)
	case 0x8e:
		c.add(c.atHL(), true)
	case 0x8f:
		c.add(c.A(), true)

	case 0x90:
		c.sub(c.B(), false)
	case 0x91:
		c.sub(c.C(), false)
	case 0x92:
		c.sub(c.D(), false)
	case 0x93:
		c.sub(c.E(), false)
	case 0x94:
		c.sub(c.H(), false)
	case 0x95:
		c.sub(c.L(), false)
	case 0x96:
		c.sub(c.atHL(), false)
	case 0x97:
		c.sub(c.A(), false)

	case 0x98:
		c.sub(c.B(), true)
	case 0x99:
		c.sub(c.C(), true)
	case 0x9a:
		c.sub(c.D(), true)
	case 0x9b:
		c.sub(c.E(), true)
	case 0x9c:
		c.sub(c.H(), true)
	case 0x9d:
		c.sub(c.L(), true)
	case 0x9e:
		c.sub(c.atHL(), true)
	case 0x9f:
		c.sub(c.A(), true)

	case 0xa0:
		c.and(c.B())
	case 0xa1:
		c.and(c.C())
	case 0xa2:
		c.and(c.D())
	case 0xa3:
		c.and(c.E())
	case 0xa4:
		c.and(c.H())
	case 0xa5:
		c.and(c.L())
	case 0xa6:
		c.and(c.atHL())
	case 0xa7:
		c.and(c.A())

	case 0xa8:
		c.xor(c.B())
	case 0xa9:
		c.xor(c.C())
	case 0xaa:
		c.xor(c.D())
	case 0xab:
		c.xor(c.E())
	case 0xac:
		c.xor(c.H())
	case 0xad:
		c.xor(c.L())
	case 0xae:
		c.xor(c.atHL())
	case 0xaf:
		c.xor(c.A())

	case 0xb0:
		c.or(c.B())
	case 0xb1:
		c.or(c.C())
	case 0xb2:
		c.or(c.D())
	case 0xb3:
		c.or(c.E())
	case 0xb4:
		c.or(c.H())
	case 0xb5:
		c.or(c.L())
	case 0xb6:
		c.or(c.atHL())
	case 0xb7:
		c.or(c.A())

	case 0xb8:
		c.cmp(c.B())
	case 0xb9:
		c.cmp(c.C())
	case 0xba:
		c.cmp(c.D())
	case 0xbb:
		c.cmp(c.E())
	case 0xbc:
		c.cmp(c.H())
	case 0xbd:
		c.cmp(c.L())
	case 0xbe:
		c.cmp(c.atHL())
	case 0xbf:
		c.cmp(c.A())

	case 0xc6: // ADI
		c.add(c.fetch8(), false)
	case 0xce: // ACI
		c.add(c.fetch8(), true)
	case 0xd6: // SUI
		c.sub(c.fetch8(), false)
	case 0xde: // SBI
		c.sub(c.fetch8(), true)
	case 0xe6: // ANI
		c.and(c.fetch8())
	case 0xee: // XRI
		c.xor(c.fetch8())
	case 0xf6: // ORI
		c.or(c.fetch8())
	case 0xfe: // CPI
		c.cmp(c.fetch8())

	case 0xeb: // XCHG
		c.HL, c.DE = c.DE, c.HL
	case 0xe3: // XTHL
		hl := c.HL.Value()
		c.HL.SetValue(c.read16(c.SP))
		c.write16(c.SP, hl)
	case 0xf9: // SPHL
		c.SP = c.HL.Value()
	case 0xe9: // PCHL
		c.PC = c.HL.Value()

	case 0xf3: // DI
		c.intEnabled = false
	case 0xfb: // EI
		c.intEnabled = true

	case 0xc5: // PUSH B
		c.push(c.BC.Value())
	case 0xd5: // PUSH D
		c.push(c.DE.Value())
	case 0xe5: // PUSH H
		c.push(c.HL.Value())
	case 0xf5: // PUSH PSW
		c.push(c.PSW.Value())

	case 0xc1: // POP B
		c.BC.SetValue(c.pop())
	case 0xd1: // POP D
		c.DE.SetValue(c.pop())
	case 0xe1: // POP H
		c.HL.SetValue(c.pop())
	case 0xf1: // POP PSW
		c.PSW.SetValue(c.pop())
		c.forceFixedFlags()

	case 0xdb: // IN
		c.SetA(c.In(c.fetch8()))
	case 0xd3: // OUT
		c.Out(c.fetch8(), c.A())

	case 0xc7: // RST 0
		c.rst(0)
	case 0xcf:
		c.rst(1)
	case 0xd7:
		c.rst(2)
	case 0xdf:
		c.rst(3)
	case 0xe7:
		c.rst(4)
	case 0xef:
		c.rst(5)
	case 0xf7:
		c.rst(6)
	case 0xff:
		c.rst(7)

	case 0xc3: // JMP
		c.jmp(true)
	case 0xc2: // JNZ
		c.jmp(!c.Flag(Zero))
	case 0xca: // JZ
		c.jmp(c.Flag(Zero))
	case 0xd2: // JNC
		c.jmp(!c.Flag(Carry))
	case 0xda: // JC
		c.jmp(c.Flag(Carry))
	case 0xe2: // JPO
		c.jmp(!c.Flag(Parity))
	case 0xea: // JPE
		c.jmp(c.Flag(Parity))
	case 0xf2: // JP
		c.jmp(!c.Flag(Sign))
	case 0xfa: // JM
		c.jmp(c.Flag(Sign))

	case 0xc9, 0xd9: // RET
		c.ret(true)
	case 0xc0: // RNZ
		c.ret(!c.Flag(Zero))
	case 0xc8: // RZ
		c.ret(c.Flag(Zero))
	case 0xd0: // RNC
		c.ret(!c.Flag(Carry))
	case 0xd8: // RC
		c.ret(c.Flag(Carry))
	case 0xe0: // RPO
		c.ret(!c.Flag(Parity))
	case 0xe8: // RPE
		c.ret(c.Flag(Parity))
	case 0xf0: // RP
		c.ret(!c.Flag(Sign))
	case 0xf8: // RM
		c.ret(c.Flag(Sign))

	case 0xcd, 0xdd, 0xed, 0xfd: // CALL
		c.call(true)
	case 0xc4: // CNZ
		c.call(!c.Flag(Zero))
	case 0xcc: // CZ
		c.call(c.Flag(Zero))
	case 0xd4: // CNC
		c.call(!c.Flag(Carry))
	case 0xdc: // CC
		c.call(c.Flag(Carry))
	case 0xe4: // CPO
		c.call(!c.Flag(Parity))
	case 0xec: // CPE
		c.call(c.Flag(Parity))
	case 0xf4: // CP
		c.call(!c.Flag(Sign))
	case 0xfc: // CM
		c.call(c.Flag(Sign))
	}
}
