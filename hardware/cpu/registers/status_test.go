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

package registers_test

import (
	"math/bits"
	"testing"

	"github.com/mpcemu/v53/hardware/cpu/registers"
	"github.com/mpcemu/v53/test"
)

func TestPowerOn(t *testing.T) {
	psw := registers.NewStatusWord()
	test.ExpectEquality(t, psw.Value(), uint16(0xf004))
	test.ExpectSuccess(t, psw.Parity())
	test.ExpectFailure(t, psw.Carry())
	test.ExpectEquality(t, psw.String(), "vdibszaPc")
}

func TestFlagAccessors(t *testing.T) {
	type flag struct {
		bit uint
		get func(registers.StatusWord) bool
		set func(*registers.StatusWord, bool)
	}

	flags := []flag{
		{registers.CarryBit, registers.StatusWord.Carry, (*registers.StatusWord).SetCarry},
		{registers.ParityBit, registers.StatusWord.Parity, (*registers.StatusWord).SetParity},
		{registers.AuxCarryBit, registers.StatusWord.AuxCarry, (*registers.StatusWord).SetAuxCarry},
		{registers.ZeroBit, registers.StatusWord.Zero, (*registers.StatusWord).SetZero},
		{registers.SignBit, registers.StatusWord.Sign, (*registers.StatusWord).SetSign},
		{registers.BreakBit, registers.StatusWord.Break, (*registers.StatusWord).SetBreak},
		{registers.InterruptEnableBit, registers.StatusWord.InterruptEnable, (*registers.StatusWord).SetInterruptEnable},
		{registers.DirectionBit, registers.StatusWord.Direction, (*registers.StatusWord).SetDirection},
		{registers.OverflowBit, registers.StatusWord.Overflow, (*registers.StatusWord).SetOverflow},
	}

	for _, f := range flags {
		var psw registers.StatusWord
		psw.Load(0xf000)

		f.set(&psw, true)
		test.ExpectSuccess(t, f.get(psw), f.bit)
		test.ExpectEquality(t, psw.Value(), uint16(0xf000|1<<f.bit), f.bit)

		f.set(&psw, false)
		test.ExpectFailure(t, f.get(psw), f.bit)

		// undefined bits are preserved
		test.ExpectEquality(t, psw.Value(), uint16(0xf000), f.bit)
	}
}

func TestSetPZS8(t *testing.T) {
	var psw registers.StatusWord

	for a := 0; a <= 0xff; a++ {
		for b := 0; b <= 0xff; b++ {
			r := uint8(a) - uint8(b)
			psw.SetPZS8(r)
			if !test.ExpectEquality(t, psw.Zero(), a == b, a, b) {
				return
			}
			test.ExpectEquality(t, psw.Sign(), r&0x80 == 0x80, a, b)
			test.ExpectEquality(t, psw.Parity(), bits.OnesCount8(r)%2 == 0, a, b)
		}
	}
}

func TestSetPZS(t *testing.T) {
	var psw registers.StatusWord

	for a := 0; a <= 0xffff; a += 0x0101 {
		for b := 0; b <= 0xffff; b += 0x00ff {
			r := uint16(a) - uint16(b)
			psw.SetPZS(r)
			if !test.ExpectEquality(t, psw.Zero(), a == b, a, b) {
				return
			}
			test.ExpectEquality(t, psw.Sign(), r&0x8000 == 0x8000, a, b)
			test.ExpectEquality(t, psw.Parity(), bits.OnesCount8(uint8(r))%2 == 0, a, b)
		}
	}
}

func TestSetPZSCYV(t *testing.T) {
	var psw registers.StatusWord
	psw.SetPZSCYV(0, true, true)
	test.ExpectEquality(t, psw.String(), "VdibsZaPC")
	psw.SetPZSCYV8(0x81, false, false)
	test.ExpectEquality(t, psw.String(), "vdibSzaPc")
}
