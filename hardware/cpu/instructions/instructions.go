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

import "fmt"

// Category of an instruction describes the kind of effect it has.
type Category int

// List of instruction categories.
const (
	Undefined Category = iota
	Arithmetic
	Logical
	Transfer
	Stack
	Block
	Prefix
	Flow
	Interrupt
	IO
	Shift
	Adjust
	Flag
	Control
	Extended
	Coprocessor
)

func (c Category) String() string {
	switch c {
	case Undefined:
		return "Undefined"
	case Arithmetic:
		return "Arithmetic"
	case Logical:
		return "Logical"
	case Transfer:
		return "Transfer"
	case Stack:
		return "Stack"
	case Block:
		return "Block"
	case Prefix:
		return "Prefix"
	case Flow:
		return "Flow"
	case Interrupt:
		return "Interrupt"
	case IO:
		return "IO"
	case Shift:
		return "Shift"
	case Adjust:
		return "Adjust"
	case Flag:
		return "Flag"
	case Control:
		return "Control"
	case Extended:
		return "Extended"
	case Coprocessor:
		return "Coprocessor"
	}
	return "unknown category"
}

// Group identifies the opcodes that use the reg field of the ModRM byte to
// select the operation.
type Group int

// List of instruction groups.
const (
	NoGroup Group = iota
	ImmediateGroup
	ShiftGroup
	UnaryGroup
	IncDecGroup
	IndirectGroup
)

// Definition defines each instruction in the instruction set; one per opcode.
type Definition struct {
	OpCode   uint8
	Mnemonic string
	Operands string
	Category Category
	Group    Group
}

// String returns the mnemonic and operand form of the instruction.
func (defn Definition) String() string {
	if defn.Mnemonic == "" {
		return fmt.Sprintf("(undefined %02X)", defn.OpCode)
	}
	if defn.Operands == "" {
		return defn.Mnemonic
	}
	return fmt.Sprintf("%s %s", defn.Mnemonic, defn.Operands)
}

// IsDefined returns false if the opcode is not a valid instruction.
func (defn Definition) IsDefined() bool {
	return defn.Category != Undefined
}

// Lookup returns the definition for an opcode. Group opcodes return a
// definition with the mnemonic of the group as a whole. Use LookupGroup() to
// get the definition of the selected operation.
func Lookup(opcode uint8) Definition {
	return definitions[opcode]
}

// LookupGroup returns the definition for an opcode in a group with the
// operation selected by the reg field of the ModRM byte. Only the lower three
// bits of reg are used.
func LookupGroup(opcode uint8, reg uint8) Definition {
	defn := definitions[opcode]

	var names *[8]string
	switch defn.Group {
	case NoGroup:
		return defn
	case ImmediateGroup:
		names = &immediateGroup
	case ShiftGroup:
		names = &shiftGroup
	case UnaryGroup:
		names = &unaryGroup
	case IncDecGroup:
		names = &incDecGroup
	case IndirectGroup:
		names = &indirectGroup
	}

	defn.Mnemonic = names[reg&0x07]
	if defn.Mnemonic == "" {
		defn.Category = Undefined
	} else if defn.Group == ImmediateGroup {
		switch reg & 0x07 {
		case 1, 4, 6:
			defn.Category = Logical
		}
	} else if defn.Group == IndirectGroup && reg&0x07 >= 2 {
		defn.Category = Flow
		if reg&0x07 == 6 {
			defn.Category = Stack
		}
	}

	return defn
}

// LookupExtended returns the definition of the second byte of an instruction
// that begins with 0x0F.
func LookupExtended(sub uint8) Definition {
	if defn, ok := extended[sub]; ok {
		defn.OpCode = sub
		return defn
	}
	return Definition{OpCode: sub, Category: Undefined}
}

// IsSegmentPrefix returns true if the opcode is one of the four segment
// override prefixes.
func IsSegmentPrefix(opcode uint8) bool {
	switch opcode {
	case 0x26, 0x2e, 0x36, 0x3e:
		return true
	}
	return false
}

// IsRepeatPrefix returns true if the opcode is one of the four repeat
// prefixes.
func IsRepeatPrefix(opcode uint8) bool {
	switch opcode {
	case 0x64, 0x65, 0xf2, 0xf3:
		return true
	}
	return false
}

// IsBlock returns true if the opcode is a block instruction that can be
// repeated by a repeat prefix.
func IsBlock(opcode uint8) bool {
	return definitions[opcode].Category == Block
}

// IsCompareBlock returns true if the opcode is a block instruction that
// compares and which therefore terminates a repeat on the state of the zero
// flag.
func IsCompareBlock(opcode uint8) bool {
	switch opcode {
	case 0xa6, 0xa7, 0xae, 0xaf:
		return true
	}
	return false
}
