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
	"fmt"

	"github.com/mpcemu/v53/hardware/cpu/registers"
)

// Snapshot is a copy of the register values of the CPU at a moment in time.
type Snapshot struct {
	AW, BW, CW, DW   uint16
	SP, BP, IX, IY   uint16
	PS, SS, DS0, DS1 uint16
	PC               uint16
	PSW              uint16
}

// Snapshot returns a copy of the current register values.
func (mc *CPU) Snapshot() Snapshot {
	return Snapshot{
		AW:  mc.AW.Value(),
		BW:  mc.BW.Value(),
		CW:  mc.CW.Value(),
		DW:  mc.DW.Value(),
		SP:  mc.SP.Value(),
		BP:  mc.BP.Value(),
		IX:  mc.IX.Value(),
		IY:  mc.IY.Value(),
		PS:  mc.PS.Value(),
		SS:  mc.SS.Value(),
		DS0: mc.DS0.Value(),
		DS1: mc.DS1.Value(),
		PC:  mc.PC.Value(),
		PSW: mc.PSW.Value(),
	}
}

// Register16 returns the word register for the 3 bit register code used in
// instruction encodings. The order is AW, CW, DW, BW, SP, BP, IX, IY.
func (mc *CPU) Register16(code uint8) *registers.Register {
	switch code {
	case 0:
		return &mc.AW
	case 1:
		return &mc.CW
	case 2:
		return &mc.DW
	case 3:
		return &mc.BW
	case 4:
		return &mc.SP
	case 5:
		return &mc.BP
	case 6:
		return &mc.IX
	case 7:
		return &mc.IY
	}
	panic(fmt.Sprintf("cpu: register code out of range (%d)", code))
}

// RegisterValue16 returns the value of the word register for the register
// code.
func (mc *CPU) RegisterValue16(code uint8) uint16 {
	return mc.Register16(code).Value()
}

// SetRegister16 loads the word register for the register code.
func (mc *CPU) SetRegister16(code uint8, v uint16) {
	mc.Register16(code).Load(v)
}

// RegisterValue8 returns the value of the byte register for the 3 bit
// register code used in instruction encodings. The order is AL, CL, DL, BL,
// AH, CH, DH, BH.
func (mc *CPU) RegisterValue8(code uint8) uint8 {
	if code > 7 {
		panic(fmt.Sprintf("cpu: register code out of range (%d)", code))
	}
	r := mc.Register16(code & 0x03)
	if code < 4 {
		return r.Lo()
	}
	return r.Hi()
}

// SetRegister8 loads the byte register for the register code. The other byte
// of the word register is not changed.
func (mc *CPU) SetRegister8(code uint8, v uint8) {
	if code > 7 {
		panic(fmt.Sprintf("cpu: register code out of range (%d)", code))
	}
	r := mc.Register16(code & 0x03)
	if code < 4 {
		r.LoadLo(v)
	} else {
		r.LoadHi(v)
	}
}

// SegmentRegister returns the segment register for the 2 bit register code
// used in instruction encodings. The order is DS1, PS, SS, DS0.
func (mc *CPU) SegmentRegister(code uint8) *registers.Register {
	switch code {
	case 0:
		return &mc.DS1
	case 1:
		return &mc.PS
	case 2:
		return &mc.SS
	case 3:
		return &mc.DS0
	}
	panic(fmt.Sprintf("cpu: segment register code out of range (%d)", code))
}

// SegmentValue returns the value of the segment register for the register
// code.
func (mc *CPU) SegmentValue(code uint8) uint16 {
	return mc.SegmentRegister(code).Value()
}

// SetSegment loads the segment register for the register code.
func (mc *CPU) SetSegment(code uint8, v uint16) {
	mc.SegmentRegister(code).Load(v)
}

// Increment16 adds one to the word register for the register code and sets
// the flags.
func (mc *CPU) Increment16(code uint8) {
	r := mc.Register16(code)
	carry, overflow := r.Increment()
	mc.PSW.SetPZSCYV(r.Value(), carry, overflow)
	mc.PSW.SetAuxCarry(r.Value()&0x0f == 0x00)
}

// Decrement16 subtracts one from the word register for the register code and
// sets the flags.
func (mc *CPU) Decrement16(code uint8) {
	r := mc.Register16(code)
	borrow, overflow := r.Decrement()
	mc.PSW.SetPZSCYV(r.Value(), borrow, overflow)
	mc.PSW.SetAuxCarry(r.Value()&0x0f == 0x0f)
}
