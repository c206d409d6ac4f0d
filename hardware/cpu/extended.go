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

// extended executes the instructions that begin with opcode 0x0f. the second
// byte selects the instruction.
func extended(mc *CPU) (uint64, error) {
	sub := mc.next8()
	mc.LastResult.Defn = instructions.LookupExtended(sub)

	switch {
	case sub >= 0x10 && sub <= 0x1f:
		return mc.bitOperation(sub)
	case sub == 0x20 || sub == 0x22 || sub == 0x26:
		return mc.bcdString(sub)
	case sub == 0x28 || sub == 0x2a:
		return mc.rotateNibble(sub)
	case sub == 0x31 || sub == 0x39:
		return mc.insertBitField(sub)
	case sub == 0x33 || sub == 0x3b:
		return mc.extractBitField(sub)
	case sub == 0xe0:
		return mc.extendedBreak()
	case sub == 0xf0:
		return mc.extendedReturn()
	}

	return mc.undefined()
}

// bitOperation executes TEST1, CLR1, SET1 and NOT1 on a single bit of the
// operand. the bit number is taken from CL or from an immediate byte.
func (mc *CPU) bitOperation(sub uint8) (uint64, error) {
	op := mc.decodeModRM()
	word := sub&0x01 == 0x01

	var bit uint8
	if sub&0x08 == 0x08 {
		bit = mc.next8()
	} else {
		bit = mc.CW.Lo()
	}

	var v uint16
	if word {
		bit &= 0x0f
		v = mc.readRM16(op)
	} else {
		bit &= 0x07
		v = uint16(mc.readRM8(op))
	}

	mask := uint16(1) << bit

	var accesses uint64
	if word {
		accesses = 1
	}

	switch (sub >> 1) & 0x03 {
	case 0x00:
		mc.PSW.SetZero(v&mask == 0)
		mc.PSW.SetCarry(false)
		mc.PSW.SetOverflow(false)
		return op.cost(3, 8, accesses), nil
	case 0x01:
		v &^= mask
	case 0x02:
		v |= mask
	case 0x03:
		v ^= mask
	}

	if word {
		mc.writeRM16(op, v)
		accesses = 2
	} else {
		mc.writeRM8(op, uint8(v))
	}

	return op.cost(4, 13, accesses), nil
}

func bcdAdd(a, b uint8, carry bool) (uint8, bool) {
	c := uint8(boolToUint(carry))
	lo := a&0x0f + b&0x0f + c
	c = 0
	if lo > 0x09 {
		lo -= 0x0a
		c = 1
	}
	hi := a>>4 + b>>4 + c
	c = 0
	if hi > 0x09 {
		hi -= 0x0a
		c = 1
	}
	return hi<<4 | lo&0x0f, c == 1
}

func bcdSubtract(a, b uint8, borrow bool) (uint8, bool) {
	c := int(boolToUint(borrow))
	lo := int(a&0x0f) - int(b&0x0f) - c
	c = 0
	if lo < 0 {
		lo += 0x0a
		c = 1
	}
	hi := int(a>>4) - int(b>>4) - c
	c = 0
	if hi < 0 {
		hi += 0x0a
		c = 1
	}
	return uint8(hi<<4 | lo&0x0f), c == 1
}

// bcdString executes ADD4S, SUB4S and CMP4S. the operands are packed BCD
// strings of CL digits at DS0:IX (the segment override is honoured) and
// DS1:IY. the result is written to DS1:IY except for CMP4S.
func (mc *CPU) bcdString(sub uint8) (uint64, error) {
	n := (uint16(mc.CW.Lo()) + 1) / 2
	src := mc.resolve(DS0)
	ix := mc.IX.Value()
	iy := mc.IY.Value()

	var carry bool
	zero := true

	for i := uint16(0); i < n; i++ {
		s := mc.load8(src, ix+i)
		d := mc.load8(DS1, iy+i)

		var r uint8
		if sub == 0x20 {
			r, carry = bcdAdd(d, s, carry)
		} else {
			r, carry = bcdSubtract(d, s, carry)
		}

		if r != 0 {
			zero = false
		}
		if sub != 0x26 {
			mc.store8(DS1, iy+i, r)
		}
	}

	mc.PSW.SetCarry(carry)
	mc.PSW.SetZero(zero)

	return 19 + 7*uint64(n), nil
}

// rotateNibble executes ROL4 and ROR4, which rotate the digits of the operand
// through the low nibble of AL.
func (mc *CPU) rotateNibble(sub uint8) (uint64, error) {
	op := mc.decodeModRM()
	v := mc.readRM8(op)
	al := mc.AW.Lo()

	if sub == 0x28 {
		mc.writeRM8(op, v<<4|al&0x0f)
		mc.AW.LoadLo(al&0xf0 | v>>4)
	} else {
		mc.writeRM8(op, (al&0x0f)<<4|v>>4)
		mc.AW.LoadLo(al&0xf0 | v&0x0f)
	}

	return op.cost(25, 28, 0), nil
}

// bitField returns the operands of the bit field instructions. the register
// selected by rm holds the bit offset. the length is taken from the register
// selected by reg or from an immediate byte. a memory operand is an
// undefined instruction.
func (mc *CPU) bitField(immediate bool) (op operand, offset uint8, length uint8, ok bool) {
	op = mc.decodeModRM()
	if op.memory {
		return op, 0, 0, false
	}

	if immediate {
		length = mc.next8()
	} else {
		length = mc.RegisterValue8(op.reg)
	}

	return op, mc.RegisterValue8(op.rm) & 0x0f, length&0x0f + 1, true
}

// advanceBitField moves the bit offset on by the length of the field. the
// index register moves on by a word if the offset passes the end of a word.
func (mc *CPU) advanceBitField(op operand, offset uint8, length uint8, index uint8) {
	offset += length
	if offset > 0x0f {
		mc.Register16(index).Add(2)
	}
	mc.SetRegister8(op.rm, offset&0x0f)
}

// insertBitField executes INS. the low bits of AW are written to the bit
// field at DS1:IY.
func (mc *CPU) insertBitField(sub uint8) (uint64, error) {
	op, offset, length, ok := mc.bitField(sub == 0x39)
	if !ok {
		return mc.undefined()
	}

	iy := mc.IY.Value()
	field := uint32(mc.load16(DS1, iy+2))<<16 | uint32(mc.load16(DS1, iy))
	mask := (uint32(1)<<length - 1) << offset
	field = field&^mask | (uint32(mc.AW.Value())<<offset)&mask
	mc.store16(DS1, iy, uint16(field))
	mc.store16(DS1, iy+2, uint16(field>>16))

	mc.advanceBitField(op, offset, length, 7)

	return 35, nil
}

// extractBitField executes EXT. the bit field at DS0:IX (the segment override
// is honoured) is loaded into AW.
func (mc *CPU) extractBitField(sub uint8) (uint64, error) {
	op, offset, length, ok := mc.bitField(sub == 0x3b)
	if !ok {
		return mc.undefined()
	}

	src := mc.resolve(DS0)
	ix := mc.IX.Value()
	field := uint32(mc.load16(src, ix+2))<<16 | uint32(mc.load16(src, ix))
	mask := uint32(1)<<length - 1
	mc.AW.Load(uint16(field >> offset & mask))

	mc.advanceBitField(op, offset, length, 6)

	return 34, nil
}
