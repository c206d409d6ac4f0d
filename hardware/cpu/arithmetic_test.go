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

	"github.com/mpcemu/v53/curated"
	"github.com/mpcemu/v53/hardware/cpu"
	"github.com/mpcemu/v53/test"
)

func TestAddFlags(t *testing.T) {
	// ADD AL,1
	mc := newCPU(t, 0x04, 0x01)
	mc.AW.LoadLo(0xff)
	step(t, mc)
	test.ExpectEquality(t, mc.AW.Lo(), 0x00)
	test.ExpectSuccess(t, mc.PSW.Carry())
	test.ExpectSuccess(t, mc.PSW.Zero())
	test.ExpectSuccess(t, mc.PSW.AuxCarry())
	test.ExpectSuccess(t, mc.PSW.Parity())
	test.ExpectFailure(t, mc.PSW.Overflow())
	test.ExpectFailure(t, mc.PSW.Sign())

	mc = newCPU(t, 0x04, 0x01)
	mc.AW.LoadLo(0x7f)
	step(t, mc)
	test.ExpectEquality(t, mc.AW.Lo(), 0x80)
	test.ExpectSuccess(t, mc.PSW.Overflow())
	test.ExpectSuccess(t, mc.PSW.Sign())
	test.ExpectFailure(t, mc.PSW.Carry())
}

func TestSubtractAndCompare(t *testing.T) {
	// SUB AL,1
	mc := newCPU(t, 0x2c, 0x01)
	step(t, mc)
	test.ExpectEquality(t, mc.AW.Lo(), 0xff)
	test.ExpectSuccess(t, mc.PSW.Carry())
	test.ExpectSuccess(t, mc.PSW.Sign())
	test.ExpectFailure(t, mc.PSW.Overflow())

	// CMP AL,5
	mc = newCPU(t, 0x3c, 0x05)
	mc.AW.LoadLo(0x05)
	step(t, mc)
	test.ExpectEquality(t, mc.AW.Lo(), 0x05)
	test.ExpectSuccess(t, mc.PSW.Zero())

	// CMP [BW],AW does not write to memory
	mc = newCPU(t, 0x39, 0x07)
	mc.BW.Load(0x0100)
	mc.AW.Load(0x0001)
	poke(mc, 0x100, 0x02, 0x00)
	step(t, mc)
	test.ExpectEquality(t, mc.Memory()[0x100], 0x02)
	test.ExpectFailure(t, mc.PSW.Carry())
	test.ExpectFailure(t, mc.PSW.Zero())
}

func TestLogicalClearsCarry(t *testing.T) {
	// SET1 CY; XOR AL,0xff
	mc := newCPU(t, 0xf9, 0x34, 0xff)
	step(t, mc)
	test.ExpectSuccess(t, mc.PSW.Carry())
	step(t, mc)
	test.ExpectEquality(t, mc.AW.Lo(), 0xff)
	test.ExpectFailure(t, mc.PSW.Carry())
	test.ExpectFailure(t, mc.PSW.Overflow())
	test.ExpectSuccess(t, mc.PSW.Sign())
}

func TestImmediateGroup(t *testing.T) {
	// ADD AW,-1 with sign extended immediate
	mc := newCPU(t, 0x83, 0xc0, 0xff)
	mc.AW.Load(0x0005)
	step(t, mc)
	test.ExpectEquality(t, mc.AW.Value(), 0x0004)
	test.ExpectSuccess(t, mc.PSW.Carry())
	test.ExpectEquality(t, mc.LastResult.Defn.Mnemonic, "ADD")
	test.ExpectEquality(t, mc.LastResult.Cycles, 4)

	// CMP byte [IY],5
	mc = newCPU(t, 0x80, 0x3d, 0x05)
	mc.IY.Load(0x0100)
	poke(mc, 0x100, 0x05)
	step(t, mc)
	test.ExpectSuccess(t, mc.PSW.Zero())
	test.ExpectEquality(t, mc.LastResult.Defn.Mnemonic, "CMP")
	test.ExpectEquality(t, mc.LastResult.Cycles, 6)
}

func TestIncrementRegister(t *testing.T) {
	// INC AW; DEC CW
	mc := newCPU(t, 0x40, 0x49)
	mc.AW.Load(0x7fff)
	step(t, mc)
	test.ExpectEquality(t, mc.AW.Value(), 0x8000)
	test.ExpectSuccess(t, mc.PSW.Overflow())

	step(t, mc)
	test.ExpectEquality(t, mc.CW.Value(), 0xffff)
	test.ExpectSuccess(t, mc.PSW.Carry())
}

func TestMultiply(t *testing.T) {
	// MULU BL
	mc := newCPU(t, 0xf6, 0xe3)
	mc.AW.LoadLo(0x10)
	mc.BW.LoadLo(0x10)
	step(t, mc)
	test.ExpectEquality(t, mc.AW.Value(), 0x0100)
	test.ExpectSuccess(t, mc.PSW.Carry())
	test.ExpectSuccess(t, mc.PSW.Overflow())

	// MUL CW (signed word)
	mc = newCPU(t, 0xf7, 0xe9)
	mc.AW.Load(0xfffe)
	mc.CW.Load(0x0003)
	step(t, mc)
	test.ExpectEquality(t, mc.AW.Value(), 0xfffa)
	test.ExpectEquality(t, mc.DW.Value(), 0xffff)
	test.ExpectFailure(t, mc.PSW.Carry())

	// MUL IX,BW,10
	mc = newCPU(t, 0x6b, 0xf3, 0x0a)
	mc.BW.Load(0x0007)
	step(t, mc)
	test.ExpectEquality(t, mc.IX.Value(), 70)
}

func TestDivide(t *testing.T) {
	// DIVU BL
	mc := newCPU(t, 0xf6, 0xf3)
	mc.AW.Load(100)
	mc.BW.LoadLo(7)
	step(t, mc)
	test.ExpectEquality(t, mc.AW.Lo(), 14)
	test.ExpectEquality(t, mc.AW.Hi(), 2)

	// DIV CW (signed word)
	mc = newCPU(t, 0xf7, 0xf9)
	mc.DW.Load(0xffff)
	mc.AW.Load(0xff9c)
	mc.CW.Load(7)
	step(t, mc)
	test.ExpectEquality(t, mc.AW.Value(), 0xfff2)
	test.ExpectEquality(t, mc.DW.Value(), 0xfffe)
}

func TestDivideError(t *testing.T) {
	// divide by zero
	mc := newCPU(t, 0xf6, 0xf3)
	mc.AW.Load(100)
	err := mc.Step()
	test.ExpectSuccess(t, curated.Is(err, cpu.DivideError))
	test.ExpectSuccess(t, cpu.IsGuestFault(err))

	// quotient too large for AL
	mc = newCPU(t, 0xf6, 0xf3)
	mc.AW.Load(0x1000)
	mc.BW.LoadLo(1)
	err = mc.Step()
	test.ExpectSuccess(t, curated.Is(err, cpu.DivideError))
	test.ExpectEquality(t, mc.AW.Value(), 0x1000)

	// signed quotient too large for AW
	mc = newCPU(t, 0xf7, 0xf9)
	mc.DW.Load(0x0001)
	mc.AW.Load(0x0000)
	mc.CW.Load(1)
	err = mc.Step()
	test.ExpectSuccess(t, curated.Is(err, cpu.DivideError))
}

func TestNegateAndNot(t *testing.T) {
	// NEG AL; NOT AL
	mc := newCPU(t, 0xf6, 0xd8, 0xf6, 0xd0)
	mc.AW.LoadLo(0x01)
	step(t, mc)
	test.ExpectEquality(t, mc.AW.Lo(), 0xff)
	test.ExpectSuccess(t, mc.PSW.Carry())

	step(t, mc)
	test.ExpectEquality(t, mc.AW.Lo(), 0x00)
	test.ExpectSuccess(t, mc.PSW.Carry())
}

func TestShifts(t *testing.T) {
	type shiftTest struct {
		program []uint8
		al      uint8
		cl      uint8
		carry   bool
		result  uint8
		cy      bool
		v       bool
		cycles  uint64
	}

	tests := []shiftTest{
		// SHL AL,1
		{program: []uint8{0xd0, 0xe0}, al: 0x81, result: 0x02, cy: true, v: true, cycles: 2},
		// ROL AL,1
		{program: []uint8{0xd0, 0xc0}, al: 0x80, result: 0x01, cy: true, v: true, cycles: 2},
		// SHR AL,CL
		{program: []uint8{0xd2, 0xe8}, al: 0x80, cl: 7, result: 0x01, cy: false, v: true, cycles: 12},
		// SHL AL,0x21 (count is masked to five bits)
		{program: []uint8{0xc0, 0xe0, 0x21}, al: 0x40, result: 0x80, cy: false, v: true, cycles: 6},
		// RORC AL,1
		{program: []uint8{0xd0, 0xd8}, al: 0x01, carry: false, result: 0x00, cy: true, v: false, cycles: 2},
		// ROLC AL,1
		{program: []uint8{0xd0, 0xd0}, al: 0x00, carry: true, result: 0x01, cy: false, v: false, cycles: 2},
		// SHR AL,CL with a count of zero
		{program: []uint8{0xd2, 0xe8}, al: 0x80, cl: 0, carry: true, result: 0x80, cy: true, v: false, cycles: 5},
	}

	for i, st := range tests {
		mc := newCPU(t, st.program...)
		mc.AW.LoadLo(st.al)
		mc.CW.LoadLo(st.cl)
		mc.PSW.SetCarry(st.carry)
		step(t, mc)
		test.ExpectEquality(t, mc.AW.Lo(), st.result, i)
		test.ExpectEquality(t, mc.PSW.Carry(), st.cy, i)
		test.ExpectEquality(t, mc.PSW.Overflow(), st.v, i)
		test.ExpectEquality(t, mc.Clock(), st.cycles, i)
	}
}

func TestShiftArithmeticRight(t *testing.T) {
	// SHRA AW,1
	mc := newCPU(t, 0xd1, 0xf8)
	mc.AW.Load(0x8002)
	step(t, mc)
	test.ExpectEquality(t, mc.AW.Value(), 0xc001)
	test.ExpectFailure(t, mc.PSW.Carry())
	test.ExpectFailure(t, mc.PSW.Overflow())
	test.ExpectSuccess(t, mc.PSW.Sign())
}

func TestRotateLeavesPZS(t *testing.T) {
	// RORC AL,1 produces zero but the zero flag is not changed
	mc := newCPU(t, 0xd0, 0xd8)
	mc.AW.LoadLo(0x01)
	mc.PSW.SetZero(false)
	step(t, mc)
	test.ExpectEquality(t, mc.AW.Lo(), 0x00)
	test.ExpectFailure(t, mc.PSW.Zero())
}

func TestShiftGroupHole(t *testing.T) {
	mc := newCPU(t, 0xd0, 0xf0)
	err := mc.Step()
	test.ExpectSuccess(t, curated.Is(err, cpu.UndefinedInstruction))
}

func TestDecimalAdjust(t *testing.T) {
	// ADD AL,0x28; ADJ4A; CVTBD
	mc := newCPU(t, 0x04, 0x28, 0x27, 0xd4, 0x0a)
	mc.AW.LoadLo(0x19)
	step(t, mc)
	test.ExpectSuccess(t, mc.PSW.AuxCarry())
	step(t, mc)
	test.ExpectEquality(t, mc.AW.Lo(), 0x47)
	test.ExpectFailure(t, mc.PSW.Carry())

	step(t, mc)
	test.ExpectEquality(t, mc.AW.Hi(), 7)
	test.ExpectEquality(t, mc.AW.Lo(), 1)
}

func TestConvertDecimalToBinary(t *testing.T) {
	// CVTDB
	mc := newCPU(t, 0xd5, 0x0a)
	mc.AW.Load(0x0407)
	step(t, mc)
	test.ExpectEquality(t, mc.AW.Value(), 47)
}

func TestSignExtension(t *testing.T) {
	// CVTBW; CVTWL
	mc := newCPU(t, 0x98, 0x99)
	mc.AW.Load(0x0080)
	step(t, mc)
	test.ExpectEquality(t, mc.AW.Value(), 0xff80)
	step(t, mc)
	test.ExpectEquality(t, mc.DW.Value(), 0xffff)
}

func TestFlagTransfer(t *testing.T) {
	// MOV PSW,AH; MOV AH,PSW
	mc := newCPU(t, 0x9e, 0x9f)
	mc.AW.LoadHi(0xff)
	step(t, mc)
	test.ExpectEquality(t, mc.PSW.Value(), 0xf0d5)

	mc.AW.LoadHi(0x00)
	step(t, mc)
	test.ExpectEquality(t, mc.AW.Hi(), 0xd5)
}
