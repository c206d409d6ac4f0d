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

package cpu_test

import (
	"testing"

	"github.com/mpcemu/v53/hardware/cpu"
	"github.com/mpcemu/v53/test"
)

func TestRegister16RoundTrip(t *testing.T) {
	mc := newCPU(t)

	for code := uint8(0); code < 8; code++ {
		mc.SetRegister16(code, 0x1000+uint16(code))
	}

	test.ExpectDiff(t, mc.Snapshot(), cpu.Snapshot{
		AW:  0x1000,
		CW:  0x1001,
		DW:  0x1002,
		BW:  0x1003,
		SP:  0x1004,
		BP:  0x1005,
		IX:  0x1006,
		IY:  0x1007,
		PSW: 0xf004,
	})

	for code := uint8(0); code < 8; code++ {
		test.ExpectEquality(t, mc.RegisterValue16(code), 0x1000+uint16(code), code)
		test.ExpectEquality(t, mc.Register16(code).Value(), 0x1000+uint16(code), code)
	}
}

func TestRegister8Views(t *testing.T) {
	mc := newCPU(t)

	mc.SetRegister16(0, 0x1234)
	test.ExpectEquality(t, mc.RegisterValue8(0), 0x34)
	test.ExpectEquality(t, mc.RegisterValue8(4), 0x12)

	mc.SetRegister8(4, 0xab)
	test.ExpectEquality(t, mc.AW.Value(), 0xab34)
	mc.SetRegister8(0, 0xcd)
	test.ExpectEquality(t, mc.AW.Value(), 0xabcd)

	// BL and BH are codes 3 and 7
	mc.SetRegister8(3, 0x01)
	mc.SetRegister8(7, 0x02)
	test.ExpectEquality(t, mc.BW.Value(), 0x0201)

	// CL, DL, CH and DH
	mc.SetRegister8(1, 0x11)
	mc.SetRegister8(5, 0x22)
	mc.SetRegister8(2, 0x33)
	mc.SetRegister8(6, 0x44)
	test.ExpectEquality(t, mc.CW.Value(), 0x2211)
	test.ExpectEquality(t, mc.DW.Value(), 0x4433)

	for code := uint8(0); code < 8; code++ {
		mc.SetRegister8(code, 0x80+code)
		test.ExpectEquality(t, mc.RegisterValue8(code), 0x80+code, code)
	}
}

func TestSegmentRegisters(t *testing.T) {
	mc := newCPU(t)

	for code := uint8(0); code < 4; code++ {
		mc.SetSegment(code, 0x2000+uint16(code))
	}
	test.ExpectEquality(t, mc.DS1.Value(), 0x2000)
	test.ExpectEquality(t, mc.PS.Value(), 0x2001)
	test.ExpectEquality(t, mc.SS.Value(), 0x2002)
	test.ExpectEquality(t, mc.DS0.Value(), 0x2003)

	for code := uint8(0); code < 4; code++ {
		test.ExpectEquality(t, mc.SegmentValue(code), 0x2000+uint16(code), code)
	}
}

func TestRegisterCodeOutOfRange(t *testing.T) {
	mc := newCPU(t)

	expectPanic := func(f func(), tag string) {
		t.Helper()
		defer func() {
			test.ExpectInequality(t, recover(), nil, tag)
		}()
		f()
	}

	expectPanic(func() { mc.RegisterValue16(8) }, "RegisterValue16")
	expectPanic(func() { mc.SetRegister8(8, 0) }, "SetRegister8")
	expectPanic(func() { mc.SegmentValue(4) }, "SegmentValue")
}

func TestIncrementDecrementFlags(t *testing.T) {
	mc := newCPU(t)

	mc.AW.Load(0x7fff)
	mc.Increment16(0)
	test.ExpectEquality(t, mc.AW.Value(), 0x8000)
	test.ExpectSuccess(t, mc.PSW.Overflow())
	test.ExpectSuccess(t, mc.PSW.Sign())
	test.ExpectFailure(t, mc.PSW.Carry())

	mc.AW.Load(0xffff)
	mc.Increment16(0)
	test.ExpectEquality(t, mc.AW.Value(), 0x0000)
	test.ExpectSuccess(t, mc.PSW.Zero())
	test.ExpectSuccess(t, mc.PSW.Carry())
	test.ExpectFailure(t, mc.PSW.Overflow())

	mc.IY.Load(0x0000)
	mc.Decrement16(7)
	test.ExpectEquality(t, mc.IY.Value(), 0xffff)
	test.ExpectSuccess(t, mc.PSW.Carry())
	test.ExpectSuccess(t, mc.PSW.Sign())
	test.ExpectSuccess(t, mc.PSW.Parity())
}
