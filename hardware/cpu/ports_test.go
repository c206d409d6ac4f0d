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

type portRecord struct {
	port   uint16
	data   uint8
	opcode uint8
	stored uint8
	clock  uint64
}

type portRecorder struct {
	records []portRecord
}

func (r *portRecorder) PortWritten(cpu cpu.State, port uint16, data uint8) {
	r.records = append(r.records, portRecord{
		port:   port,
		data:   data,
		opcode: cpu.Opcode(),
		stored: cpu.Port(port),
		clock:  cpu.Clock(),
	})
}

func TestPortObserver(t *testing.T) {
	// MOV AL,0x42; OUT 0x10,AL
	mc := newCPU(t, 0xb0, 0x42, 0xe6, 0x10)

	rec := &portRecorder{}
	mc.OnOutput(0x10, rec)

	step(t, mc)
	step(t, mc)

	test.DemandEquality(t, len(rec.records), 1)
	test.ExpectEquality(t, rec.records[0], portRecord{
		port:   0x10,
		data:   0x42,
		opcode: 0xe6,
		stored: 0x42,
		clock:  2,
	})
	test.ExpectEquality(t, mc.Ports()[0x10], 0x42)
	test.ExpectEquality(t, mc.Clock(), 2+3)
}

func TestPortObserverOrder(t *testing.T) {
	// OUT DW,AW
	mc := newCPU(t, 0xef)
	mc.DW.Load(0x0200)
	mc.AW.Load(0xbeef)

	var order []string
	mc.OnOutput(0x0200, cpu.PortObserverFunc(func(_ cpu.State, port uint16, data uint8) {
		order = append(order, "first")
	}))
	mc.OnOutput(0x0200, cpu.PortObserverFunc(func(_ cpu.State, port uint16, data uint8) {
		order = append(order, "second")
	}))
	mc.OnOutput(0x0201, cpu.PortObserverFunc(func(_ cpu.State, port uint16, data uint8) {
		test.ExpectEquality(t, data, 0xbe)
		order = append(order, "high")
	}))

	step(t, mc)
	test.ExpectDiff(t, order, []string{"first", "second", "high"})
	test.ExpectEquality(t, mc.LastResult.Cycles, 5)
}

func TestPortInput(t *testing.T) {
	// IN AW,0x30; IN AL,DW
	mc := newCPU(t, 0xe5, 0x30, 0xec)
	mc.Out16(0x0030, 0x1234)
	mc.Out8(0x0400, 0x99)
	mc.DW.Load(0x0400)

	step(t, mc)
	test.ExpectEquality(t, mc.AW.Value(), 0x1234)
	test.ExpectEquality(t, mc.Clock(), 7)

	step(t, mc)
	test.ExpectEquality(t, mc.AW.Value(), 0x1299)
	test.ExpectEquality(t, mc.Clock(), 7+5)
}

func TestExtendedAddressingByPort(t *testing.T) {
	// MOV AL,1; MOV DW,0xff80; OUT DW,AL
	mc := newCPU(t, 0xb0, 0x01, 0xba, 0x80, 0xff, 0xee)

	var xa bool
	mc.OnOutput(0xff80, cpu.PortObserverFunc(func(cpu cpu.State, _ uint16, _ uint8) {
		xa = cpu.XA()
	}))

	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectSuccess(t, mc.XA())
	test.ExpectSuccess(t, xa)
}
