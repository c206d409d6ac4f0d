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

// Package instructions defines the V53 instruction set. Every opcode byte has
// a Definition giving its mnemonic, operand form and Category. Opcodes where
// the reg field of the following ModRM byte selects the operation are
// identified by the Group field and are resolved with LookupGroup(). The 0x0F
// opcode introduces a second opcode byte which is resolved with
// LookupExtended().
//
// The mnemonics are the NEC mnemonics. For example, MOVBK rather than MOVS
// and BR rather than JMP.
//
// The definitions do not execute anything. The cpu package pairs each opcode
// with an executor function and uses the definitions to describe what was
// executed.
package instructions
