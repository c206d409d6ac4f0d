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

// aluForms executes the arithmetic and logical opcodes 0x00 to 0x3d. bits 3
// to 5 of the opcode select the operation and bits 0 to 2 select the form.
func aluForms(mc *CPU) (uint64, error) {
	operation := (mc.opcode >> 3) & 0x07

	switch mc.opcode & 0x07 {
	case 0x00:
		op := mc.decodeModRM()
		r, write := mc.alu8(operation, mc.readRM8(op), mc.RegisterValue8(op.reg))
		if write {
			mc.writeRM8(op, r)
			return op.cost(2, 7, 0), nil
		}
		return op.cost(2, 6, 0), nil

	case 0x01:
		op := mc.decodeModRM()
		r, write := mc.alu16(operation, mc.readRM16(op), mc.RegisterValue16(op.reg))
		if write {
			mc.writeRM16(op, r)
			return op.cost(2, 7, 2), nil
		}
		return op.cost(2, 6, 1), nil

	case 0x02:
		op := mc.decodeModRM()
		r, write := mc.alu8(operation, mc.RegisterValue8(op.reg), mc.readRM8(op))
		if write {
			mc.SetRegister8(op.reg, r)
		}
		return op.cost(2, 6, 0), nil

	case 0x03:
		op := mc.decodeModRM()
		r, write := mc.alu16(operation, mc.RegisterValue16(op.reg), mc.readRM16(op))
		if write {
			mc.SetRegister16(op.reg, r)
		}
		return op.cost(2, 6, 1), nil

	case 0x04:
		r, write := mc.alu8(operation, mc.AW.Lo(), mc.next8())
		if write {
			mc.AW.LoadLo(r)
		}
		return 2, nil

	case 0x05:
		r, write := mc.alu16(operation, mc.AW.Value(), mc.next16())
		if write {
			mc.AW.Load(r)
		}
		return 2, nil
	}

	return mc.undefined()
}

// immediateGroup executes opcodes 0x80 to 0x83.
func immediateGroup(mc *CPU) (uint64, error) {
	op := mc.decodeModRM()
	mc.LastResult.Defn = instructions.LookupGroup(mc.opcode, op.reg)

	var write bool

	switch mc.opcode {
	case 0x80, 0x82:
		var r uint8
		r, write = mc.alu8(op.reg, mc.readRM8(op), mc.next8())
		if !write {
			return op.cost(4, 6, 0), nil
		}
		mc.writeRM8(op, r)
		return op.cost(4, 7, 0), nil

	case 0x81:
		var r uint16
		a := mc.readRM16(op)
		r, write = mc.alu16(op.reg, a, mc.next16())
		if write {
			mc.writeRM16(op, r)
		}

	case 0x83:
		var r uint16
		a := mc.readRM16(op)
		r, write = mc.alu16(op.reg, a, uint16(int16(mc.nextI8())))
		if write {
			mc.writeRM16(op, r)
		}
	}

	if write {
		return op.cost(4, 7, 2), nil
	}
	return op.cost(4, 6, 1), nil
}

// testForms executes the TEST opcodes 0x84, 0x85, 0xa8 and 0xa9.
func testForms(mc *CPU) (uint64, error) {
	switch mc.opcode {
	case 0x84:
		op := mc.decodeModRM()
		mc.logic8(mc.readRM8(op) & mc.RegisterValue8(op.reg))
		return op.cost(2, 6, 0), nil
	case 0x85:
		op := mc.decodeModRM()
		mc.logic16(mc.readRM16(op) & mc.RegisterValue16(op.reg))
		return op.cost(2, 6, 1), nil
	case 0xa8:
		mc.logic8(mc.AW.Lo() & mc.next8())
	case 0xa9:
		mc.logic16(mc.AW.Value() & mc.next16())
	}
	return 2, nil
}

// incDecRegister executes opcodes 0x40 to 0x4f.
func incDecRegister(mc *CPU) (uint64, error) {
	if mc.opcode < 0x48 {
		mc.Increment16(mc.opcode & 0x07)
	} else {
		mc.Decrement16(mc.opcode & 0x07)
	}
	return 2, nil
}

// incDecGroup executes opcode 0xfe.
func incDecGroup(mc *CPU) (uint64, error) {
	op := mc.decodeModRM()
	mc.LastResult.Defn = instructions.LookupGroup(mc.opcode, op.reg)

	switch op.reg {
	case 0x00:
		mc.writeRM8(op, mc.add8(mc.readRM8(op), 1, false))
	case 0x01:
		mc.writeRM8(op, mc.sub8(mc.readRM8(op), 1, false))
	default:
		return mc.undefined()
	}

	return op.cost(2, 7, 0), nil
}

// unaryGroup executes opcodes 0xf6 and 0xf7.
func unaryGroup(mc *CPU) (uint64, error) {
	op := mc.decodeModRM()
	mc.LastResult.Defn = instructions.LookupGroup(mc.opcode, op.reg)

	if mc.opcode == 0xf6 {
		return mc.unary8(op)
	}
	return mc.unary16(op)
}

func (mc *CPU) unary8(op operand) (uint64, error) {
	v := mc.readRM8(op)

	switch op.reg {
	case 0x00:
		mc.logic8(v & mc.next8())
		return op.cost(4, 6, 0), nil

	case 0x02:
		mc.writeRM8(op, ^v)
		return op.cost(2, 7, 0), nil

	case 0x03:
		mc.writeRM8(op, mc.sub8(0, v, false))
		return op.cost(2, 7, 0), nil

	case 0x04:
		r := uint16(mc.AW.Lo()) * uint16(v)
		mc.AW.Load(r)
		mc.PSW.SetCarry(r&0xff00 != 0)
		mc.PSW.SetOverflow(r&0xff00 != 0)
		return op.cost(12, 15, 0), nil

	case 0x05:
		r := int16(int8(mc.AW.Lo())) * int16(int8(v))
		mc.AW.Load(uint16(r))
		mc.PSW.SetCarry(r != int16(int8(r)))
		mc.PSW.SetOverflow(r != int16(int8(r)))
		return op.cost(16, 19, 0), nil

	case 0x06:
		if v == 0 {
			return mc.divideError()
		}
		q := mc.AW.Value() / uint16(v)
		if q > 0xff {
			return mc.divideError()
		}
		mc.AW.LoadHi(uint8(mc.AW.Value() % uint16(v)))
		mc.AW.LoadLo(uint8(q))
		return op.cost(14, 19, 0), nil

	case 0x07:
		if v == 0 {
			return mc.divideError()
		}
		a := int32(int16(mc.AW.Value()))
		q := a / int32(int8(v))
		if q > 127 || q < -128 {
			return mc.divideError()
		}
		mc.AW.LoadHi(uint8(a % int32(int8(v))))
		mc.AW.LoadLo(uint8(q))
		return op.cost(17, 20, 0), nil
	}

	return mc.undefined()
}

func (mc *CPU) unary16(op operand) (uint64, error) {
	v := mc.readRM16(op)

	switch op.reg {
	case 0x00:
		mc.logic16(v & mc.next16())
		return op.cost(4, 6, 1), nil

	case 0x02:
		mc.writeRM16(op, ^v)
		return op.cost(2, 7, 2), nil

	case 0x03:
		mc.writeRM16(op, mc.sub16(0, v, false))
		return op.cost(2, 7, 2), nil

	case 0x04:
		r := uint32(mc.AW.Value()) * uint32(v)
		mc.AW.Load(uint16(r))
		mc.DW.Load(uint16(r >> 16))
		mc.PSW.SetCarry(r&0xffff0000 != 0)
		mc.PSW.SetOverflow(r&0xffff0000 != 0)
		return op.cost(20, 24, 1), nil

	case 0x05:
		r := int32(int16(mc.AW.Value())) * int32(int16(v))
		mc.AW.Load(uint16(r))
		mc.DW.Load(uint16(uint32(r) >> 16))
		mc.PSW.SetCarry(r != int32(int16(r)))
		mc.PSW.SetOverflow(r != int32(int16(r)))
		return op.cost(24, 28, 1), nil

	case 0x06:
		if v == 0 {
			return mc.divideError()
		}
		a := uint32(mc.DW.Value())<<16 | uint32(mc.AW.Value())
		q := a / uint32(v)
		if q > 0xffff {
			return mc.divideError()
		}
		mc.DW.Load(uint16(a % uint32(v)))
		mc.AW.Load(uint16(q))
		return op.cost(23, 28, 1), nil

	case 0x07:
		if v == 0 {
			return mc.divideError()
		}
		a := int64(int32(uint32(mc.DW.Value())<<16 | uint32(mc.AW.Value())))
		q := a / int64(int16(v))
		if q > 32767 || q < -32768 {
			return mc.divideError()
		}
		mc.DW.Load(uint16(a % int64(int16(v))))
		mc.AW.Load(uint16(q))
		return op.cost(24, 28, 1), nil
	}

	return mc.undefined()
}

// multiplyImmediate executes opcodes 0x69 and 0x6b.
func multiplyImmediate(mc *CPU) (uint64, error) {
	op := mc.decodeModRM()
	v := int32(int16(mc.readRM16(op)))

	var imm int32
	if mc.opcode == 0x69 {
		imm = int32(mc.nextI16())
	} else {
		imm = int32(mc.nextI8())
	}

	r := v * imm
	mc.SetRegister16(op.reg, uint16(r))
	mc.PSW.SetCarry(r != int32(int16(r)))
	mc.PSW.SetOverflow(r != int32(int16(r)))

	return op.cost(28, 31, 1), nil
}
