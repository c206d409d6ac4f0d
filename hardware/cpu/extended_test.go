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

func TestBitOperations(t *testing.T) {
	// SET1 AL,3; TEST1 AL,3; CLR1 AL,CL; NOT1 AW,imm4
	mc := newCPU(t,
		0x0f, 0x1c, 0xc0, 0x03,
		0x0f, 0x18, 0xc0, 0x03,
		0x0f, 0x12, 0xc0,
		0x0f, 0x1f, 0xc0, 0x0f,
	)
	mc.CW.LoadLo(3)

	step(t, mc)
	test.ExpectEquality(t, mc.AW.Lo(), 0x08)
	test.ExpectEquality(t, mc.LastResult.Defn.Mnemonic, "SET1")

	step(t, mc)
	test.ExpectFailure(t, mc.PSW.Zero())

	step(t, mc)
	test.ExpectEquality(t, mc.AW.Lo(), 0x00)

	step(t, mc)
	test.ExpectEquality(t, mc.AW.Value(), 0x8000)
}

func TestBCDStringAdd(t *testing.T) {
	// ADD4S
	mc := newCPU(t, 0x0f, 0x20)
	poke(mc, 0x100, 0x99, 0x00)
	poke(mc, 0x200, 0x01, 0x00)
	mc.IX.Load(0x0100)
	mc.IY.Load(0x0200)
	mc.CW.LoadLo(4)

	step(t, mc)
	test.ExpectDiff(t, mc.Memory()[0x200:0x202], []uint8{0x00, 0x01})
	test.ExpectFailure(t, mc.PSW.Carry())
	test.ExpectFailure(t, mc.PSW.Zero())
	test.ExpectEquality(t, mc.Clock(), 19+7*2)
}

func TestBCDStringSubtractAndCompare(t *testing.T) {
	// SUB4S; CMP4S
	mc := newCPU(t, 0x0f, 0x22, 0x0f, 0x26)
	poke(mc, 0x100, 0x01, 0x00)
	poke(mc, 0x200, 0x00, 0x01)
	mc.IX.Load(0x0100)
	mc.IY.Load(0x0200)
	mc.CW.LoadLo(4)

	step(t, mc)
	test.ExpectDiff(t, mc.Memory()[0x200:0x202], []uint8{0x99, 0x00})
	test.ExpectFailure(t, mc.PSW.Carry())

	poke(mc, 0x100, 0x99, 0x00)
	step(t, mc)
	test.ExpectDiff(t, mc.Memory()[0x200:0x202], []uint8{0x99, 0x00})
	test.ExpectSuccess(t, mc.PSW.Zero())
}

func TestRotateNibble(t *testing.T) {
	// ROL4 BL; ROR4 BL
	mc := newCPU(t, 0x0f, 0x28, 0xc3, 0x0f, 0x2a, 0xc3)
	mc.BW.LoadLo(0x12)
	mc.AW.LoadLo(0x34)

	step(t, mc)
	test.ExpectEquality(t, mc.BW.Lo(), 0x24)
	test.ExpectEquality(t, mc.AW.Lo(), 0x31)

	step(t, mc)
	test.ExpectEquality(t, mc.BW.Lo(), 0x12)
	test.ExpectEquality(t, mc.AW.Lo(), 0x34)
}

func TestBitField(t *testing.T) {
	// INS CL,DL; EXT CL,imm4
	mc := newCPU(t, 0x0f, 0x31, 0xd1, 0x0f, 0x3b, 0xc1, 0x07)
	mc.AW.Load(0x00ab)
	mc.CW.LoadLo(12)
	mc.DW.LoadLo(7)
	mc.IY.Load(0x0100)

	step(t, mc)
	test.ExpectDiff(t, mc.Memory()[0x100:0x104], []uint8{0x00, 0xb0, 0x0a, 0x00})
	test.ExpectEquality(t, mc.CW.Lo(), 4)
	test.ExpectEquality(t, mc.IY.Value(), 0x0102)

	mc.AW.Load(0)
	mc.IX.Load(0x0100)
	mc.CW.LoadLo(12)

	step(t, mc)
	test.ExpectEquality(t, mc.AW.Value(), 0x00ab)
	test.ExpectEquality(t, mc.CW.Lo(), 4)
	test.ExpectEquality(t, mc.IX.Value(), 0x0102)
}

func TestBitFieldMemoryOperand(t *testing.T) {
	mc := newCPU(t, 0x0f, 0x31, 0x07)
	err := mc.Step()
	test.ExpectSuccess(t, curated.Is(err, cpu.UndefinedInstruction))
}

func TestUndefinedExtended(t *testing.T) {
	mc := newCPU(t, 0x0f, 0xff)
	err := mc.Step()
	test.ExpectSuccess(t, curated.Is(err, cpu.UndefinedInstruction))
	test.ExpectEquality(t, mc.PC.Value(), 2)
}
