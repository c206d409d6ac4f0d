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

// movForms executes the MOV opcodes 0x88 to 0x8c and 0x8e.
func movForms(mc *CPU) (uint64, error) {
	op := mc.decodeModRM()

	switch mc.opcode {
	case 0x88:
		mc.writeRM8(op, mc.RegisterValue8(op.reg))
		return op.cost(2, 3, 0), nil
	case 0x89:
		mc.writeRM16(op, mc.RegisterValue16(op.reg))
		return op.cost(2, 3, 1), nil
	case 0x8a:
		mc.SetRegister8(op.reg, mc.readRM8(op))
		return op.cost(2, 5, 0), nil
	case 0x8b:
		mc.SetRegister16(op.reg, mc.readRM16(op))
		return op.cost(2, 5, 1), nil
	case 0x8c:
		mc.writeRM16(op, mc.SegmentValue(op.reg&0x03))
		return op.cost(2, 3, 1), nil
	case 0x8e:
		mc.SetSegment(op.reg&0x03, mc.readRM16(op))
		return op.cost(2, 5, 1), nil
	}

	return mc.undefined()
}

// loadEffectiveAddress executes opcode 0x8d. a register operand is an
// undefined instruction.
func loadEffectiveAddress(mc *CPU) (uint64, error) {
	op := mc.decodeModRM()
	if !op.memory {
		return mc.undefined()
	}
	mc.SetRegister16(op.reg, op.offset)
	return 4, nil
}

// movAccumulator executes opcodes 0xa0 to 0xa3.
func movAccumulator(mc *CPU) (uint64, error) {
	offset := mc.next16()

	switch mc.opcode {
	case 0xa0:
		mc.AW.LoadLo(mc.Read8(offset))
		return 5, nil
	case 0xa1:
		mc.AW.Load(mc.Read16(offset))
		return 5 + oddPenalty(offset), nil
	case 0xa2:
		mc.Write8(offset, mc.AW.Lo())
		return 3, nil
	case 0xa3:
		mc.Write16(offset, mc.AW.Value())
		return 3 + oddPenalty(offset), nil
	}

	return mc.undefined()
}

// movImmediateRegister executes opcodes 0xb0 to 0xbf.
func movImmediateRegister(mc *CPU) (uint64, error) {
	if mc.opcode < 0xb8 {
		mc.SetRegister8(mc.opcode&0x07, mc.next8())
	} else {
		mc.SetRegister16(mc.opcode&0x07, mc.next16())
	}
	return 2, nil
}

// movImmediate executes opcodes 0xc6 and 0xc7. the reg field must be zero.
func movImmediate(mc *CPU) (uint64, error) {
	op := mc.decodeModRM()
	if op.reg != 0 {
		return mc.undefined()
	}
	if mc.opcode == 0xc6 {
		mc.writeRM8(op, mc.next8())
		return op.cost(2, 3, 0), nil
	}
	mc.writeRM16(op, mc.next16())
	return op.cost(2, 3, 1), nil
}

// movSegmentAW executes the one byte opcodes 0xc4 and 0xc5, which copy AW to
// DS1 and DS0 respectively.
func movSegmentAW(mc *CPU) (uint64, error) {
	if mc.opcode == 0xc4 {
		mc.DS1.Load(mc.AW.Value())
	} else {
		mc.DS0.Load(mc.AW.Value())
	}
	if mc.AW.IsOdd() {
		return 14, nil
	}
	return 10, nil
}

// exchange executes opcodes 0x86 and 0x87.
func exchange(mc *CPU) (uint64, error) {
	op := mc.decodeModRM()
	if mc.opcode == 0x86 {
		v := mc.readRM8(op)
		mc.writeRM8(op, mc.RegisterValue8(op.reg))
		mc.SetRegister8(op.reg, v)
		return op.cost(3, 8, 0), nil
	}
	v := mc.readRM16(op)
	mc.writeRM16(op, mc.RegisterValue16(op.reg))
	mc.SetRegister16(op.reg, v)
	return op.cost(3, 8, 2), nil
}

// exchangeAW executes opcodes 0x91 to 0x97.
func exchangeAW(mc *CPU) (uint64, error) {
	code := mc.opcode & 0x07
	v := mc.RegisterValue16(code)
	mc.SetRegister16(code, mc.AW.Value())
	mc.AW.Load(v)
	return 3, nil
}

func convertByteToWord(mc *CPU) (uint64, error) {
	mc.AW.Load(uint16(int16(int8(mc.AW.Lo()))))
	return 2, nil
}

func convertWordToLong(mc *CPU) (uint64, error) {
	if mc.AW.Value()&0x8000 == 0x8000 {
		mc.DW.Load(0xffff)
	} else {
		mc.DW.Load(0x0000)
	}
	return 4, nil
}

// translate executes opcode 0xd7. AL is replaced by the byte at BW+AL.
func translate(mc *CPU) (uint64, error) {
	mc.AW.LoadLo(mc.Read8(mc.BW.Value() + uint16(mc.AW.Lo())))
	return 5, nil
}
