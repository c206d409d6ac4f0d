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

// operand is the decoded form of a ModRM byte and any displacement that
// follows it.
type operand struct {
	mode uint8
	reg  uint8
	rm   uint8

	// memory is false if the operand is the register selected by rm
	memory bool

	// segment and offset of a memory operand. the segment has already been
	// resolved against the segment override
	seg    Segment
	offset uint16
}

// decodeModRM fetches the ModRM byte and any displacement and resolves the
// memory offset.
func (mc *CPU) decodeModRM() operand {
	b := mc.next8()
	op := operand{
		mode: b >> 6,
		reg:  (b >> 3) & 0x07,
		rm:   b & 0x07,
	}

	if op.mode == 0x03 {
		return op
	}

	op.memory = true

	def := DS0
	switch op.rm {
	case 0x00:
		op.offset = mc.BW.Value() + mc.IX.Value()
	case 0x01:
		op.offset = mc.BW.Value() + mc.IY.Value()
	case 0x02:
		op.offset = mc.BP.Value() + mc.IX.Value()
		def = SS
	case 0x03:
		op.offset = mc.BP.Value() + mc.IY.Value()
		def = SS
	case 0x04:
		op.offset = mc.IX.Value()
	case 0x05:
		op.offset = mc.IY.Value()
	case 0x06:
		if op.mode == 0x00 {
			op.offset = mc.next16()
		} else {
			op.offset = mc.BP.Value()
			def = SS
		}
	case 0x07:
		op.offset = mc.BW.Value()
	}

	switch op.mode {
	case 0x01:
		op.offset += uint16(int16(mc.nextI8()))
	case 0x02:
		op.offset += mc.next16()
	}

	op.seg = mc.resolve(def)

	return op
}

// penalty is the number of additional cycles for a single word access of
// the operand.
func (op operand) penalty() uint64 {
	if !op.memory {
		return 0
	}
	return oddPenalty(op.offset)
}

// cost returns reg if the operand is a register otherwise mem plus the
// alignment penalty for the given number of word accesses.
func (op operand) cost(reg uint64, mem uint64, accesses uint64) uint64 {
	if !op.memory {
		return reg
	}
	return mem + op.penalty()*accesses
}

func (mc *CPU) readRM8(op operand) uint8 {
	if !op.memory {
		return mc.RegisterValue8(op.rm)
	}
	return mc.load8(op.seg, op.offset)
}

func (mc *CPU) readRM16(op operand) uint16 {
	if !op.memory {
		return mc.RegisterValue16(op.rm)
	}
	return mc.load16(op.seg, op.offset)
}

func (mc *CPU) writeRM8(op operand, data uint8) {
	if !op.memory {
		mc.SetRegister8(op.rm, data)
		return
	}
	mc.store8(op.seg, op.offset, data)
}

func (mc *CPU) writeRM16(op operand, data uint16) {
	if !op.memory {
		mc.SetRegister16(op.rm, data)
		return
	}
	mc.store16(op.seg, op.offset, data)
}
