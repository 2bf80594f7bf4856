package i8080

import "strings"

// Op represents an 8080 opcode.
type Op byte

// String returns the assembler mnemonic for the opcode, with
// immediate operands elided. Undocumented duplicate encodings carry a
// trailing asterisk.
func (o Op) String() string { return opNames[o] }

// Len returns the instruction length in bytes: the opcode plus any
// immediate operands exec consumes.
func (o Op) Len() int {
	switch byte(o) {
	case 0x01, 0x11, 0x21, 0x31, // LXI
		0x22, 0x2a, 0x32, 0x3a, // SHLD LHLD STA LDA
		0xc2, 0xc3, 0xca, 0xd2, 0xda, 0xe2, 0xea, 0xf2, 0xfa, // jumps
		0xc4, 0xcc, 0xcd, 0xd4, 0xdc, 0xdd,
		0xe4, 0xec, 0xed, 0xf4, 0xfc, 0xfd: // calls
		return 3
	case 0x06, 0x0e, 0x16, 0x1e, 0x26, 0x2e, 0x36, 0x3e, // MVI
		0xc6, 0xce, 0xd6, 0xde, 0xe6, 0xee, 0xf6, 0xfe, // immediates
		0xd3, 0xdb: // OUT IN
		return 2
	}
	return 1
}

// One name per line, in opcode order.
var opNames = strings.Split(strings.TrimSpace(`
NOP
LXI B
STAX B
INX B
INR B
DCR B
MVI B
RLC
NOP*
DAD B
LDAX B
DCX B
INR C
DCR C
MVI C
RRC
NOP*
LXI D
STAX D
INX D
INR D
DCR D
MVI D
RAL
NOP*
DAD D
LDAX D
DCX D
INR E
DCR E
MVI E
RAR
NOP*
LXI H
SHLD
INX H
INR H
DCR H
MVI H
DAA
NOP*
DAD H
LHLD
DCX H
INR L
DCR L
MVI L
CMA
NOP*
LXI SP
STA
INX SP
INR M
DCR M
MVI M
STC
NOP*
DAD SP
LDA
DCX SP
INR A
DCR A
MVI A
CMC
MOV B,B
MOV B,C
MOV B,D
MOV B,E
MOV B,H
MOV B,L
MOV B,M
MOV B,A
MOV C,B
MOV C,C
MOV C,D
MOV C,E
MOV C,H
MOV C,L
MOV C,M
MOV C,A
MOV D,B
MOV D,C
MOV D,D
MOV D,E
MOV D,H
MOV D,L
MOV D,M
MOV D,A
MOV E,B
MOV E,C
MOV E,D
MOV E,E
MOV E,H
MOV E,L
MOV E,M
MOV E,A
MOV H,B
MOV H,C
MOV H,D
MOV H,E
MOV H,H
MOV H,L
MOV H,M
MOV H,A
MOV L,B
MOV L,C
MOV L,D
MOV L,E
MOV L,H
MOV L,L
MOV L,M
MOV L,A
MOV M,B
MOV M,C
MOV M,D
MOV M,E
MOV M,H
MOV M,L
HLT
MOV M,A
MOV A,B
MOV A,C
MOV A,D
MOV A,E
MOV A,H
MOV A,L
MOV A,M
MOV A,A
ADD B
ADD C
ADD D
ADD E
ADD H
ADD L
ADD M
ADD A
ADC B
ADC C
ADC D
ADC E
ADC H
ADC L
ADC M
ADC A
SUB B
SUB C
SUB D
SUB E
SUB H
SUB L
SUB M
SUB A
SBB B
SBB C
SBB D
SBB E
SBB H
SBB L
SBB M
SBB A
ANA B
ANA C
ANA D
ANA E
ANA H
ANA L
ANA M
ANA A
XRA B
XRA C
XRA D
XRA E
XRA H
XRA L
XRA M
XRA A
ORA B
ORA C
ORA D
ORA E
ORA H
ORA L
ORA M
ORA A
CMP B
CMP C
CMP D
CMP E
CMP H
CMP L
CMP M
CMP A
RNZ
POP B
JNZ
JMP
CNZ
PUSH B
ADI
RST 0
RZ
RET
JZ
NOP*
CZ
CALL
ACI
RST 1
RNC
POP D
JNC
OUT
CNC
PUSH D
SUI
RST 2
RC
RET*
JC
IN
CC
CALL*
SBI
RST 3
RPO
POP H
JPO
XTHL
CPO
PUSH H
ANI
RST 4
RPE
PCHL
JPE
XCHG
CPE
CALL*
XRI
RST 5
RP
POP PSW
JP
DI
CP
PUSH PSW
ORI
RST 6
RM
SPHL
JM
EI
CM
CALL*
CPI
RST 7
`), "\n")
