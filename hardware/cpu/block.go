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

package cpu

import (
	"github.com/mpcemu/v53/hardware/cpu/instructions"
)

// the amount by which IX and IY change after a block operation of the given
// width. the direction flag selects a decrement.
func (mc *CPU) blockStep(word bool) uint16 {
	var step uint16 = 1
	if word {
		step = 2
	}
	if mc.PSW.Direction() {
		return -step
	}
	return step
}

// block executes the block transfer opcodes. the source is DS0:IX (the
// segment override is honoured) and the destination is always DS1:IY.
func block(mc *CPU) (uint64, error) {
	word := mc.opcode&0x01 == 0x01
	step := mc.blockStep(word)
	src := mc.resolve(DS0)
	ix := mc.IX.Value()
	iy := mc.IY.Value()

	var cycles uint64

	switch mc.opcode {
	case 0xa4, 0xa5:
		if word {
			mc.store16(DS1, iy, mc.load16(src, ix))
			cycles = 6 + oddPenalty(ix) + oddPenalty(iy)
		} else {
			mc.store8(DS1, iy, mc.load8(src, ix))
			cycles = 6
		}
		mc.IX.Add(step)
		mc.IY.Add(step)

	case 0xa6, 0xa7:
		if word {
			mc.sub16(mc.load16(src, ix), mc.load16(DS1, iy), false)
			cycles = 7 + oddPenalty(ix) + oddPenalty(iy)
		} else {
			mc.sub8(mc.load8(src, ix), mc.load8(DS1, iy), false)
			cycles = 7
		}
		mc.IX.Add(step)
		mc.IY.Add(step)

	case 0xaa, 0xab:
		if word {
			mc.store16(DS1, iy, mc.AW.Value())
			cycles = 3 + oddPenalty(iy)
		} else {
			mc.store8(DS1, iy, mc.AW.Lo())
			cycles = 3
		}
		mc.IY.Add(step)

	case 0xac, 0xad:
		if word {
			mc.AW.Load(mc.load16(src, ix))
			cycles = 5 + oddPenalty(ix)
		} else {
			mc.AW.LoadLo(mc.load8(src, ix))
			cycles = 5
		}
		mc.IX.Add(step)

	case 0xae, 0xaf:
		if word {
			mc.sub16(mc.AW.Value(), mc.load16(DS1, iy), false)
			cycles = 4 + oddPenalty(iy)
		} else {
			mc.sub8(mc.AW.Lo(), mc.load8(DS1, iy), false)
			cycles = 4
		}
		mc.IY.Add(step)

	case 0x6c, 0x6d:
		if word {
			mc.store16(DS1, iy, mc.In16(mc.DW.Value()))
			cycles = 8 + oddPenalty(iy)
		} else {
			mc.store8(DS1, iy, mc.In8(mc.DW.Value()))
			cycles = 8
		}
		mc.IY.Add(step)

	case 0x6e, 0x6f:
		if word {
			mc.Out16(mc.DW.Value(), mc.load16(src, ix))
			cycles = 6 + oddPenalty(ix)
		} else {
			mc.Out8(mc.DW.Value(), mc.load8(src, ix))
			cycles = 6
		}
		mc.IX.Add(step)

	default:
		return mc.undefined()
	}

	return cycles, nil
}

// repeat executes the repeat prefixes 0xf3 (REP/REPZ), 0xf2 (REPNZ), 0x65
// (REPC) and 0x64 (REPNC).
//
// Segment override prefixes between the repeat prefix and the repeated opcode
// are consumed as part of the instruction. The repeated opcode is executed CW
// times, with CW decremented after each execution. A CW of zero means the
// opcode is not executed at all. The compare opcodes also stop when the
// condition of the prefix is no longer met.
//
// An opcode that is not a block operation is an undefined instruction.
func repeat(mc *CPU) (uint64, error) {
	prefix := mc.opcode
	var cycles uint64 = 2

	opcode := mc.next8()
	for instructions.IsSegmentPrefix(opcode) {
		mc.segment = prefixSegment(opcode)
		cycles += 2
		opcode = mc.next8()
	}

	defn := instructions.Lookup(opcode)
	mc.LastResult.Repeated = &defn
	mc.opcode = opcode

	if !instructions.IsBlock(opcode) {
		_, err := mc.undefined()
		return cycles, err
	}

	for !mc.CW.IsZero() {
		c, err := dispatch[opcode](mc)
		cycles += c
		if err != nil {
			return cycles, err
		}

		mc.CW.Decrement()
		mc.LastResult.Repeats++

		if instructions.IsCompareBlock(opcode) && !mc.repeatCondition(prefix) {
			break
		}
	}

	return cycles, nil
}

// repeatCondition returns whether a repeated compare should continue.
func (mc *CPU) repeatCondition(prefix uint8) bool {
	switch prefix {
	case 0xf3:
		return mc.PSW.Zero()
	case 0xf2:
		return !mc.PSW.Zero()
	case 0x65:
		return mc.PSW.Carry()
	case 0x64:
		return !mc.PSW.Carry()
	}
	return false
}
