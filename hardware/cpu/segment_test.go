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
	"github.com/mpcemu/v53/hardware/memory"
	"github.com/mpcemu/v53/test"
)

func TestEffectiveAddressWraparound(t *testing.T) {
	mc := newCPU(t)

	mc.DS0.Load(0x1234)
	test.ExpectEquality(t, mc.EffectiveAddress(0x0005), 0x12345)

	mc.DS0.Load(0xffff)
	test.ExpectEquality(t, mc.EffectiveAddress(0x0010), 0x00000)
	test.ExpectEquality(t, mc.EffectiveAddress(0x0020), 0x00010)
	test.ExpectEquality(t, mc.EffectiveAddress(0xffff), 0x0ffef)

	mc.Write8(0x0020, 0x5a)
	test.ExpectEquality(t, mc.Memory()[0x10], 0x5a)
}

func TestWordAccessWrapsInSegment(t *testing.T) {
	mc := newCPU(t)

	mc.DS0.Load(0x1000)
	mc.Write16(0xffff, 0xbeef)
	test.ExpectEquality(t, mc.Memory()[0x1ffff], 0xef)
	test.ExpectEquality(t, mc.Memory()[0x10000], 0xbe)
	test.ExpectEquality(t, mc.Read16(0xffff), 0xbeef)
}

func TestSegmentOverrideLifetime(t *testing.T) {
	mc := newCPU(t,
		0x26,             // DS1:
		0xa0, 0x00, 0x01, // MOV AL,[0100]
		0xa0, 0x00, 0x01, // MOV AL,[0100]
	)
	poke(mc, 0x100, 0x11)
	poke(mc, 0x200, 0x22)
	mc.DS1.Load(0x0010)

	step(t, mc)
	test.ExpectEquality(t, mc.SegmentOverride(), cpu.DS1)
	test.ExpectEquality(t, mc.Clock(), 2)

	step(t, mc)
	test.ExpectEquality(t, mc.AW.Lo(), 0x22)
	test.ExpectEquality(t, mc.SegmentOverride(), cpu.NoOverride)

	step(t, mc)
	test.ExpectEquality(t, mc.AW.Lo(), 0x11)
}

func TestStackSegmentDefaultForBP(t *testing.T) {
	// MOV AL,[BP+IX] and MOV AL,DS0:[BP+IX]
	mc := newCPU(t, 0x8a, 0x02, 0x3e, 0x8a, 0x02)
	mc.SS.Load(0x0010)
	mc.BP.Load(0x0040)
	poke(mc, 0x140, 0x77)
	poke(mc, 0x040, 0x66)

	step(t, mc)
	test.ExpectEquality(t, mc.AW.Lo(), 0x77)

	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.AW.Lo(), 0x66)
}

func TestExtendedBank(t *testing.T) {
	mc := newCPU(t)

	mc.Write8(0x0010, 0xaa)
	mc.Out8(memory.XAPort, 0x01)
	test.ExpectSuccess(t, mc.XA())

	mc.Write8(0x0010, 0xbb)
	test.ExpectEquality(t, mc.Extended()[0x10], 0xbb)
	test.ExpectEquality(t, mc.Memory()[0x10], 0xaa)
	test.ExpectEquality(t, mc.Read8(0x0010), 0xbb)
	test.ExpectEquality(t, mc.Physical(0x10), 0xbb)

	// addresses at and above the size of the extended bank are not affected
	mc.DS0.Load(0xa000)
	mc.Write8(0x0000, 0xcc)
	test.ExpectEquality(t, mc.Memory()[0xa0000], 0xcc)

	mc.Out8(memory.XAPort, 0x00)
	test.ExpectFailure(t, mc.XA())
	mc.DS0.Load(0x0000)
	test.ExpectEquality(t, mc.Read8(0x0010), 0xaa)
}

func TestPushPop(t *testing.T) {
	mc := newCPU(t,
		0xb8, 0x34, 0x12, // MOV AW,0x1234
		0x50, // PUSH AW
		0x5b, // POP BW
		0x54, // PUSH SP
		0x5e, // POP IX
	)
	mc.SS.Load(0x0100)
	mc.SP.Load(0x0100)

	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.SP.Value(), 0x00fe)
	test.ExpectEquality(t, mc.Memory()[0x10fe], 0x34)
	test.ExpectEquality(t, mc.Memory()[0x10ff], 0x12)
	test.ExpectEquality(t, mc.Clock(), 5)

	step(t, mc)
	test.ExpectEquality(t, mc.BW.Value(), 0x1234)
	test.ExpectEquality(t, mc.SP.Value(), 0x0100)
	test.ExpectEquality(t, mc.Clock(), 10)

	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.IX.Value(), 0x0100)
}

func TestStackOverflow(t *testing.T) {
	for _, sp := range []uint16{0x0000, 0x0001} {
		mc := newCPU(t, 0x50)
		mc.SP.Load(sp)
		err := mc.Step()
		test.ExpectSuccess(t, curated.Is(err, cpu.StackOverflow), sp)
		test.ExpectSuccess(t, cpu.IsGuestFault(err), sp)
		test.ExpectEquality(t, mc.SP.Value(), sp, sp)
	}

	mc := newCPU(t)
	mc.SP.Load(0x0002)
	test.ExpectSuccess(t, mc.Push16(0xabcd))
	test.ExpectEquality(t, mc.SP.Value(), 0x0000)
	test.ExpectEquality(t, mc.Pop16(), 0xabcd)
}

func TestPushPSWPreservesUndefinedBits(t *testing.T) {
	// PUSH AW; POP PSW
	mc := newCPU(t, 0x50, 0x9d)
	mc.SP.Load(0x0100)
	mc.AW.Load(0x0000)

	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.PSW.Value(), 0xf000)

	mc = newCPU(t, 0x50, 0x9d)
	mc.SP.Load(0x0100)
	mc.AW.Load(0xffff)

	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.PSW.Value(), 0xffd5)
}
