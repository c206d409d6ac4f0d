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

// operations of the arithmetic and logic unit. the values match the reg
// field of the immediate group and bits 3 to 5 of the opcodes 0x00 to 0x3d.
const (
	aluADD = iota
	aluOR
	aluADDC
	aluSUBC
	aluAND
	aluSUB
	aluXOR
	aluCMP
)

func boolToUint(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

func (mc *CPU) add8(a, b uint8, carry bool) uint8 {
	s := uint32(a) + uint32(b) + boolToUint(carry)
	r := uint8(s)
	mc.PSW.SetPZSCYV8(r, s > 0xff, (a^r)&(b^r)&0x80 != 0)
	mc.PSW.SetAuxCarry((a^b^r)&0x10 != 0)
	return r
}

func (mc *CPU) add16(a, b uint16, carry bool) uint16 {
	s := uint32(a) + uint32(b) + boolToUint(carry)
	r := uint16(s)
	mc.PSW.SetPZSCYV(r, s > 0xffff, (a^r)&(b^r)&0x8000 != 0)
	mc.PSW.SetAuxCarry((a^b^r)&0x10 != 0)
	return r
}

func (mc *CPU) sub8(a, b uint8, borrow bool) uint8 {
	c := boolToUint(borrow)
	r := uint8(uint32(a) - uint32(b) - c)
	mc.PSW.SetPZSCYV8(r, uint32(a) < uint32(b)+c, (a^b)&(a^r)&0x80 != 0)
	mc.PSW.SetAuxCarry((a^b^r)&0x10 != 0)
	return r
}

func (mc *CPU) sub16(a, b uint16, borrow bool) uint16 {
	c := boolToUint(borrow)
	r := uint16(uint32(a) - uint32(b) - c)
	mc.PSW.SetPZSCYV(r, uint32(a) < uint32(b)+c, (a^b)&(a^r)&0x8000 != 0)
	mc.PSW.SetAuxCarry((a^b^r)&0x10 != 0)
	return r
}

func (mc *CPU) logic8(r uint8) uint8 {
	mc.PSW.SetPZSCYV8(r, false, false)
	mc.PSW.SetAuxCarry(false)
	return r
}

func (mc *CPU) logic16(r uint16) uint16 {
	mc.PSW.SetPZSCYV(r, false, false)
	mc.PSW.SetAuxCarry(false)
	return r
}

// alu8 performs the operation and sets the flags. the write value is false
// for CMP, which discards the result.
func (mc *CPU) alu8(operation uint8, a, b uint8) (r uint8, write bool) {
	switch operation {
	case aluADD:
		return mc.add8(a, b, false), true
	case aluOR:
		return mc.logic8(a | b), true
	case aluADDC:
		return mc.add8(a, b, mc.PSW.Carry()), true
	case aluSUBC:
		return mc.sub8(a, b, mc.PSW.Carry()), true
	case aluAND:
		return mc.logic8(a & b), true
	case aluSUB:
		return mc.sub8(a, b, false), true
	case aluXOR:
		return mc.logic8(a ^ b), true
	}
	mc.sub8(a, b, false)
	return a, false
}

// alu16 is the word width equivalent of alu8.
func (mc *CPU) alu16(operation uint8, a, b uint16) (r uint16, write bool) {
	switch operation {
	case aluADD:
		return mc.add16(a, b, false), true
	case aluOR:
		return mc.logic16(a | b), true
	case aluADDC:
		return mc.add16(a, b, mc.PSW.Carry()), true
	case aluSUBC:
		return mc.sub16(a, b, mc.PSW.Carry()), true
	case aluAND:
		return mc.logic16(a & b), true
	case aluSUB:
		return mc.sub16(a, b, false), true
	case aluXOR:
		return mc.logic16(a ^ b), true
	}
	mc.sub16(a, b, false)
	return a, false
}

// operations of the shift group. the values match the reg field of the ModRM
// byte. there is no operation for 0x06
const (
	shiftROL = iota
	shiftROR
	shiftROLC
	shiftRORC
	shiftSHL
	shiftSHR
	_
	shiftSHRA
)

// shift performs the rotate or shift operation on a value of the given width
// in bits. the count is masked to five bits. a count of zero changes neither
// the value nor the flags.
func (mc *CPU) shift(operation uint8, v uint16, count uint8, width uint) uint16 {
	count &= 0x1f
	if count == 0 {
		return v
	}

	msb := uint32(1) << (width - 1)
	mask := msb<<1 - 1
	orig := uint32(v) & mask
	r := orig
	cy := mc.PSW.Carry()

	for i := uint8(0); i < count; i++ {
		switch operation {
		case shiftROL:
			cy = r&msb != 0
			r = (r << 1) & mask
			if cy {
				r |= 1
			}
		case shiftROR:
			cy = r&1 != 0
			r >>= 1
			if cy {
				r |= msb
			}
		case shiftROLC:
			out := r&msb != 0
			r = (r << 1) & mask
			if cy {
				r |= 1
			}
			cy = out
		case shiftRORC:
			out := r&1 != 0
			r >>= 1
			if cy {
				r |= msb
			}
			cy = out
		case shiftSHL:
			cy = r&msb != 0
			r = (r << 1) & mask
		case shiftSHR:
			cy = r&1 != 0
			r >>= 1
		case shiftSHRA:
			cy = r&1 != 0
			r = r>>1 | r&msb
		}
	}

	mc.PSW.SetCarry(cy)
	mc.PSW.SetOverflow((orig^r)&msb != 0)

	switch operation {
	case shiftSHL, shiftSHR, shiftSHRA:
		if width == 8 {
			mc.PSW.SetPZS8(uint8(r))
		} else {
			mc.PSW.SetPZS(uint16(r))
		}
	}

	return uint16(r)
}
