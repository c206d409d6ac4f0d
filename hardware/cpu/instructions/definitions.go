// This file is part of v53.
//
// v53 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// v53 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with v53.  If not, see <https://www.gnu.org/licenses/>.

package instructions

// operation names selected by the reg field of the ModRM byte.
var (
	immediateGroup = [8]string{"ADD", "OR", "ADDC", "SUBC", "AND", "SUB", "XOR", "CMP"}
	shiftGroup     = [8]string{"ROL", "ROR", "ROLC", "RORC", "SHL", "SHR", "", "SHRA"}
	unaryGroup     = [8]string{"TEST", "", "NOT", "NEG", "MULU", "MUL", "DIVU", "DIV"}
	incDecGroup    = [8]string{"INC", "DEC", "", "", "", "", "", ""}
	indirectGroup  = [8]string{"INC", "DEC", "CALL", "CALL", "BR", "BR", "PUSH", ""}
)

// register names used in operand forms.
var (
	reg8Names  = [8]string{"AL", "CL", "DL", "BL", "AH", "CH", "DH", "BH"}
	reg16Names = [8]string{"AW", "CW", "DW", "BW", "SP", "BP", "IX", "IY"}
)

var definitions [256]Definition

func init() {
	table := map[uint8]Definition{
		0x00: {Mnemonic: "ADD", Operands: "rm8,r8", Category: Arithmetic},
		0x01: {Mnemonic: "ADD", Operands: "rm16,r16", Category: Arithmetic},
		0x02: {Mnemonic: "ADD", Operands: "r8,rm8", Category: Arithmetic},
		0x03: {Mnemonic: "ADD", Operands: "r16,rm16", Category: Arithmetic},
		0x04: {Mnemonic: "ADD", Operands: "AL,imm8", Category: Arithmetic},
		0x05: {Mnemonic: "ADD", Operands: "AW,imm16", Category: Arithmetic},
		0x06: {Mnemonic: "PUSH", Operands: "DS1", Category: Stack},
		0x07: {Mnemonic: "POP", Operands: "DS1", Category: Stack},
		0x08: {Mnemonic: "OR", Operands: "rm8,r8", Category: Logical},
		0x09: {Mnemonic: "OR", Operands: "rm16,r16", Category: Logical},
		0x0a: {Mnemonic: "OR", Operands: "r8,rm8", Category: Logical},
		0x0b: {Mnemonic: "OR", Operands: "r16,rm16", Category: Logical},
		0x0c: {Mnemonic: "OR", Operands: "AL,imm8", Category: Logical},
		0x0d: {Mnemonic: "OR", Operands: "AW,imm16", Category: Logical},
		0x0e: {Mnemonic: "PUSH", Operands: "PS", Category: Stack},
		0x0f: {Mnemonic: "(0F)", Category: Extended},

		0x10: {Mnemonic: "ADDC", Operands: "rm8,r8", Category: Arithmetic},
		0x11: {Mnemonic: "ADDC", Operands: "rm16,r16", Category: Arithmetic},
		0x12: {Mnemonic: "ADDC", Operands: "r8,rm8", Category: Arithmetic},
		0x13: {Mnemonic: "ADDC", Operands: "r16,rm16", Category: Arithmetic},
		0x14: {Mnemonic: "ADDC", Operands: "AL,imm8", Category: Arithmetic},
		0x15: {Mnemonic: "ADDC", Operands: "AW,imm16", Category: Arithmetic},
		0x16: {Mnemonic: "PUSH", Operands: "SS", Category: Stack},
		0x17: {Mnemonic: "POP", Operands: "SS", Category: Stack},
		0x18: {Mnemonic: "SUBC", Operands: "rm8,r8", Category: Arithmetic},
		0x19: {Mnemonic: "SUBC", Operands: "rm16,r16", Category: Arithmetic},
		0x1a: {Mnemonic: "SUBC", Operands: "r8,rm8", Category: Arithmetic},
		0x1b: {Mnemonic: "SUBC", Operands: "r16,rm16", Category: Arithmetic},
		0x1c: {Mnemonic: "SUBC", Operands: "AL,imm8", Category: Arithmetic},
		0x1d: {Mnemonic: "SUBC", Operands: "AW,imm16", Category: Arithmetic},
		0x1e: {Mnemonic: "PUSH", Operands: "DS0", Category: Stack},
		0x1f: {Mnemonic: "POP", Operands: "DS0", Category: Stack},

		0x20: {Mnemonic: "AND", Operands: "rm8,r8", Category: Logical},
		0x21: {Mnemonic: "AND", Operands: "rm16,r16", Category: Logical},
		0x22: {Mnemonic: "AND", Operands: "r8,rm8", Category: Logical},
		0x23: {Mnemonic: "AND", Operands: "r16,rm16", Category: Logical},
		0x24: {Mnemonic: "AND", Operands: "AL,imm8", Category: Logical},
		0x25: {Mnemonic: "AND", Operands: "AW,imm16", Category: Logical},
		0x26: {Mnemonic: "DS1:", Category: Prefix},
		0x27: {Mnemonic: "ADJ4A", Category: Adjust},
		0x28: {Mnemonic: "SUB", Operands: "rm8,r8", Category: Arithmetic},
		0x29: {Mnemonic: "SUB", Operands: "rm16,r16", Category: Arithmetic},
		0x2a: {Mnemonic: "SUB", Operands: "r8,rm8", Category: Arithmetic},
		0x2b: {Mnemonic: "SUB", Operands: "r16,rm16", Category: Arithmetic},
		0x2c: {Mnemonic: "SUB", Operands: "AL,imm8", Category: Arithmetic},
		0x2d: {Mnemonic: "SUB", Operands: "AW,imm16", Category: Arithmetic},
		0x2e: {Mnemonic: "PS:", Category: Prefix},
		0x2f: {Mnemonic: "ADJ4S", Category: Adjust},

		0x30: {Mnemonic: "XOR", Operands: "rm8,r8", Category: Logical},
		0x31: {Mnemonic: "XOR", Operands: "rm16,r16", Category: Logical},
		0x32: {Mnemonic: "XOR", Operands: "r8,rm8", Category: Logical},
		0x33: {Mnemonic: "XOR", Operands: "r16,rm16", Category: Logical},
		0x34: {Mnemonic: "XOR", Operands: "AL,imm8", Category: Logical},
		0x35: {Mnemonic: "XOR", Operands: "AW,imm16", Category: Logical},
		0x36: {Mnemonic: "SS:", Category: Prefix},
		0x37: {Mnemonic: "ADJBA", Category: Adjust},
		0x38: {Mnemonic: "CMP", Operands: "rm8,r8", Category: Arithmetic},
		0x39: {Mnemonic: "CMP", Operands: "rm16,r16", Category: Arithmetic},
		0x3a: {Mnemonic: "CMP", Operands: "r8,rm8", Category: Arithmetic},
		0x3b: {Mnemonic: "CMP", Operands: "r16,rm16", Category: Arithmetic},
		0x3c: {Mnemonic: "CMP", Operands: "AL,imm8", Category: Arithmetic},
		0x3d: {Mnemonic: "CMP", Operands: "AW,imm16", Category: Arithmetic},
		0x3e: {Mnemonic: "DS0:", Category: Prefix},
		0x3f: {Mnemonic: "ADJBS", Category: Adjust},

		0x60: {Mnemonic: "PUSH", Operands: "R", Category: Stack},
		0x61: {Mnemonic: "POP", Operands: "R", Category: Stack},
		0x62: {Mnemonic: "CHKIND", Operands: "r16,m32", Category: Interrupt},
		0x64: {Mnemonic: "REPNC", Category: Prefix},
		0x65: {Mnemonic: "REPC", Category: Prefix},
		0x66: {Mnemonic: "FPO2", Operands: "rm", Category: Coprocessor},
		0x67: {Mnemonic: "FPO2", Operands: "rm", Category: Coprocessor},
		0x68: {Mnemonic: "PUSH", Operands: "imm16", Category: Stack},
		0x69: {Mnemonic: "MUL", Operands: "r16,rm16,imm16", Category: Arithmetic},
		0x6a: {Mnemonic: "PUSH", Operands: "imm8", Category: Stack},
		0x6b: {Mnemonic: "MUL", Operands: "r16,rm16,imm8", Category: Arithmetic},
		0x6c: {Mnemonic: "INM", Operands: "b", Category: Block},
		0x6d: {Mnemonic: "INM", Operands: "w", Category: Block},
		0x6e: {Mnemonic: "OUTM", Operands: "b", Category: Block},
		0x6f: {Mnemonic: "OUTM", Operands: "w", Category: Block},

		0x70: {Mnemonic: "BV", Operands: "rel8", Category: Flow},
		0x71: {Mnemonic: "BNV", Operands: "rel8", Category: Flow},
		0x72: {Mnemonic: "BC", Operands: "rel8", Category: Flow},
		0x73: {Mnemonic: "BNC", Operands: "rel8", Category: Flow},
		0x74: {Mnemonic: "BE", Operands: "rel8", Category: Flow},
		0x75: {Mnemonic: "BNE", Operands: "rel8", Category: Flow},
		0x76: {Mnemonic: "BNH", Operands: "rel8", Category: Flow},
		0x77: {Mnemonic: "BH", Operands: "rel8", Category: Flow},
		0x78: {Mnemonic: "BN", Operands: "rel8", Category: Flow},
		0x79: {Mnemonic: "BP", Operands: "rel8", Category: Flow},
		0x7a: {Mnemonic: "BPE", Operands: "rel8", Category: Flow},
		0x7b: {Mnemonic: "BPO", Operands: "rel8", Category: Flow},
		0x7c: {Mnemonic: "BLT", Operands: "rel8", Category: Flow},
		0x7d: {Mnemonic: "BGE", Operands: "rel8", Category: Flow},
		0x7e: {Mnemonic: "BLE", Operands: "rel8", Category: Flow},
		0x7f: {Mnemonic: "BGT", Operands: "rel8", Category: Flow},

		0x80: {Mnemonic: "(80)", Operands: "rm8,imm8", Category: Arithmetic, Group: ImmediateGroup},
		0x81: {Mnemonic: "(81)", Operands: "rm16,imm16", Category: Arithmetic, Group: ImmediateGroup},
		0x82: {Mnemonic: "(82)", Operands: "rm8,imm8", Category: Arithmetic, Group: ImmediateGroup},
		0x83: {Mnemonic: "(83)", Operands: "rm16,simm8", Category: Arithmetic, Group: ImmediateGroup},
		0x84: {Mnemonic: "TEST", Operands: "rm8,r8", Category: Logical},
		0x85: {Mnemonic: "TEST", Operands: "rm16,r16", Category: Logical},
		0x86: {Mnemonic: "XCH", Operands: "r8,rm8", Category: Transfer},
		0x87: {Mnemonic: "XCH", Operands: "r16,rm16", Category: Transfer},
		0x88: {Mnemonic: "MOV", Operands: "rm8,r8", Category: Transfer},
		0x89: {Mnemonic: "MOV", Operands: "rm16,r16", Category: Transfer},
		0x8a: {Mnemonic: "MOV", Operands: "r8,rm8", Category: Transfer},
		0x8b: {Mnemonic: "MOV", Operands: "r16,rm16", Category: Transfer},
		0x8c: {Mnemonic: "MOV", Operands: "rm16,sreg", Category: Transfer},
		0x8d: {Mnemonic: "LDEA", Operands: "r16,m", Category: Transfer},
		0x8e: {Mnemonic: "MOV", Operands: "sreg,rm16", Category: Transfer},
		0x8f: {Mnemonic: "POP", Operands: "rm16", Category: Stack},

		0x90: {Mnemonic: "NOP", Category: Control},
		0x98: {Mnemonic: "CVTBW", Category: Transfer},
		0x99: {Mnemonic: "CVTWL", Category: Transfer},
		0x9a: {Mnemonic: "CALL", Operands: "far", Category: Flow},
		0x9b: {Mnemonic: "POLL", Category: Control},
		0x9c: {Mnemonic: "PUSH", Operands: "PSW", Category: Stack},
		0x9d: {Mnemonic: "POP", Operands: "PSW", Category: Stack},
		0x9e: {Mnemonic: "MOV", Operands: "PSW,AH", Category: Flag},
		0x9f: {Mnemonic: "MOV", Operands: "AH,PSW", Category: Flag},

		0xa0: {Mnemonic: "MOV", Operands: "AL,m8", Category: Transfer},
		0xa1: {Mnemonic: "MOV", Operands: "AW,m16", Category: Transfer},
		0xa2: {Mnemonic: "MOV", Operands: "m8,AL", Category: Transfer},
		0xa3: {Mnemonic: "MOV", Operands: "m16,AW", Category: Transfer},
		0xa4: {Mnemonic: "MOVBK", Operands: "b", Category: Block},
		0xa5: {Mnemonic: "MOVBK", Operands: "w", Category: Block},
		0xa6: {Mnemonic: "CMPBK", Operands: "b", Category: Block},
		0xa7: {Mnemonic: "CMPBK", Operands: "w", Category: Block},
		0xa8: {Mnemonic: "TEST", Operands: "AL,imm8", Category: Logical},
		0xa9: {Mnemonic: "TEST", Operands: "AW,imm16", Category: Logical},
		0xaa: {Mnemonic: "STM", Operands: "b", Category: Block},
		0xab: {Mnemonic: "STM", Operands: "w", Category: Block},
		0xac: {Mnemonic: "LDM", Operands: "b", Category: Block},
		0xad: {Mnemonic: "LDM", Operands: "w", Category: Block},
		0xae: {Mnemonic: "CMPM", Operands: "b", Category: Block},
		0xaf: {Mnemonic: "CMPM", Operands: "w", Category: Block},

		0xc0: {Mnemonic: "(C0)", Operands: "rm8,imm8", Category: Shift, Group: ShiftGroup},
		0xc1: {Mnemonic: "(C1)", Operands: "rm16,imm8", Category: Shift, Group: ShiftGroup},
		0xc2: {Mnemonic: "RET", Operands: "imm16", Category: Flow},
		0xc3: {Mnemonic: "RET", Category: Flow},
		0xc4: {Mnemonic: "MOV", Operands: "DS1,AW", Category: Transfer},
		0xc5: {Mnemonic: "MOV", Operands: "DS0,AW", Category: Transfer},
		0xc6: {Mnemonic: "MOV", Operands: "rm8,imm8", Category: Transfer},
		0xc7: {Mnemonic: "MOV", Operands: "rm16,imm16", Category: Transfer},
		0xc8: {Mnemonic: "PREPARE", Operands: "imm16,imm8", Category: Stack},
		0xc9: {Mnemonic: "DISPOSE", Category: Stack},
		0xca: {Mnemonic: "RETF", Operands: "imm16", Category: Flow},
		0xcb: {Mnemonic: "RETF", Category: Flow},
		0xcc: {Mnemonic: "BRK", Operands: "3", Category: Interrupt},
		0xcd: {Mnemonic: "BRK", Operands: "imm8", Category: Interrupt},
		0xce: {Mnemonic: "BRKV", Category: Interrupt},
		0xcf: {Mnemonic: "RETI", Category: Interrupt},

		0xd0: {Mnemonic: "(D0)", Operands: "rm8,1", Category: Shift, Group: ShiftGroup},
		0xd1: {Mnemonic: "(D1)", Operands: "rm16,1", Category: Shift, Group: ShiftGroup},
		0xd2: {Mnemonic: "(D2)", Operands: "rm8,CL", Category: Shift, Group: ShiftGroup},
		0xd3: {Mnemonic: "(D3)", Operands: "rm16,CL", Category: Shift, Group: ShiftGroup},
		0xd4: {Mnemonic: "CVTBD", Operands: "imm8", Category: Adjust},
		0xd5: {Mnemonic: "CVTDB", Operands: "imm8", Category: Adjust},
		0xd7: {Mnemonic: "TRANS", Category: Transfer},

		0xe0: {Mnemonic: "DBNZNE", Operands: "rel8", Category: Flow},
		0xe1: {Mnemonic: "DBNZE", Operands: "rel8", Category: Flow},
		0xe2: {Mnemonic: "DBNZ", Operands: "rel8", Category: Flow},
		0xe3: {Mnemonic: "BCWZ", Operands: "rel8", Category: Flow},
		0xe4: {Mnemonic: "IN", Operands: "AL,imm8", Category: IO},
		0xe5: {Mnemonic: "IN", Operands: "AW,imm8", Category: IO},
		0xe6: {Mnemonic: "OUT", Operands: "imm8,AL", Category: IO},
		0xe7: {Mnemonic: "OUT", Operands: "imm8,AW", Category: IO},
		0xe8: {Mnemonic: "CALL", Operands: "rel16", Category: Flow},
		0xe9: {Mnemonic: "BR", Operands: "rel16", Category: Flow},
		0xea: {Mnemonic: "BR", Operands: "far", Category: Flow},
		0xeb: {Mnemonic: "BR", Operands: "rel8", Category: Flow},
		0xec: {Mnemonic: "IN", Operands: "AL,DW", Category: IO},
		0xed: {Mnemonic: "IN", Operands: "AW,DW", Category: IO},
		0xee: {Mnemonic: "OUT", Operands: "DW,AL", Category: IO},
		0xef: {Mnemonic: "OUT", Operands: "DW,AW", Category: IO},

		0xf0: {Mnemonic: "BUSLOCK", Category: Control},
		0xf2: {Mnemonic: "REPNE", Category: Prefix},
		0xf3: {Mnemonic: "REP", Category: Prefix},
		0xf4: {Mnemonic: "HALT", Category: Control},
		0xf5: {Mnemonic: "NOT1", Operands: "CY", Category: Flag},
		0xf6: {Mnemonic: "(F6)", Operands: "rm8", Category: Arithmetic, Group: UnaryGroup},
		0xf7: {Mnemonic: "(F7)", Operands: "rm16", Category: Arithmetic, Group: UnaryGroup},
		0xf8: {Mnemonic: "CLR1", Operands: "CY", Category: Flag},
		0xf9: {Mnemonic: "SET1", Operands: "CY", Category: Flag},
		0xfa: {Mnemonic: "DI", Category: Flag},
		0xfb: {Mnemonic: "EI", Category: Flag},
		0xfc: {Mnemonic: "CLR1", Operands: "DIR", Category: Flag},
		0xfd: {Mnemonic: "SET1", Operands: "DIR", Category: Flag},
		0xfe: {Mnemonic: "(FE)", Operands: "rm8", Category: Arithmetic, Group: IncDecGroup},
		0xff: {Mnemonic: "(FF)", Operands: "rm16", Category: Arithmetic, Group: IndirectGroup},
	}

	// register encoded opcodes
	for r := uint8(0); r < 8; r++ {
		table[0x40+r] = Definition{Mnemonic: "INC", Operands: reg16Names[r], Category: Arithmetic}
		table[0x48+r] = Definition{Mnemonic: "DEC", Operands: reg16Names[r], Category: Arithmetic}
		table[0x50+r] = Definition{Mnemonic: "PUSH", Operands: reg16Names[r], Category: Stack}
		table[0x58+r] = Definition{Mnemonic: "POP", Operands: reg16Names[r], Category: Stack}
		table[0xb0+r] = Definition{Mnemonic: "MOV", Operands: reg8Names[r] + ",imm8", Category: Transfer}
		table[0xb8+r] = Definition{Mnemonic: "MOV", Operands: reg16Names[r] + ",imm16", Category: Transfer}
		table[0xd8+r] = Definition{Mnemonic: "FPO1", Operands: "rm", Category: Coprocessor}
		if r > 0 {
			table[0x90+r] = Definition{Mnemonic: "XCH", Operands: "AW," + reg16Names[r], Category: Transfer}
		}
	}

	for i := range definitions {
		definitions[i] = table[uint8(i)]
		definitions[i].OpCode = uint8(i)
	}
}

// second byte of instructions beginning with 0x0F.
var extended = map[uint8]Definition{
	0x10: {Mnemonic: "TEST1", Operands: "rm8,CL", Category: Logical},
	0x11: {Mnemonic: "TEST1", Operands: "rm16,CL", Category: Logical},
	0x12: {Mnemonic: "CLR1", Operands: "rm8,CL", Category: Logical},
	0x13: {Mnemonic: "CLR1", Operands: "rm16,CL", Category: Logical},
	0x14: {Mnemonic: "SET1", Operands: "rm8,CL", Category: Logical},
	0x15: {Mnemonic: "SET1", Operands: "rm16,CL", Category: Logical},
	0x16: {Mnemonic: "NOT1", Operands: "rm8,CL", Category: Logical},
	0x17: {Mnemonic: "NOT1", Operands: "rm16,CL", Category: Logical},
	0x18: {Mnemonic: "TEST1", Operands: "rm8,imm3", Category: Logical},
	0x19: {Mnemonic: "TEST1", Operands: "rm16,imm4", Category: Logical},
	0x1a: {Mnemonic: "CLR1", Operands: "rm8,imm3", Category: Logical},
	0x1b: {Mnemonic: "CLR1", Operands: "rm16,imm4", Category: Logical},
	0x1c: {Mnemonic: "SET1", Operands: "rm8,imm3", Category: Logical},
	0x1d: {Mnemonic: "SET1", Operands: "rm16,imm4", Category: Logical},
	0x1e: {Mnemonic: "NOT1", Operands: "rm8,imm3", Category: Logical},
	0x1f: {Mnemonic: "NOT1", Operands: "rm16,imm4", Category: Logical},
	0x20: {Mnemonic: "ADD4S", Category: Adjust},
	0x22: {Mnemonic: "SUB4S", Category: Adjust},
	0x26: {Mnemonic: "CMP4S", Category: Adjust},
	0x28: {Mnemonic: "ROL4", Operands: "rm8", Category: Shift},
	0x2a: {Mnemonic: "ROR4", Operands: "rm8", Category: Shift},
	0x31: {Mnemonic: "INS", Operands: "r8,r8", Category: Transfer},
	0x33: {Mnemonic: "EXT", Operands: "r8,r8", Category: Transfer},
	0x39: {Mnemonic: "INS", Operands: "r8,imm4", Category: Transfer},
	0x3b: {Mnemonic: "EXT", Operands: "r8,imm4", Category: Transfer},
	0xe0: {Mnemonic: "BRKXA", Operands: "imm8", Category: Extended},
	0xf0: {Mnemonic: "RETXA", Operands: "imm8", Category: Extended},
}
