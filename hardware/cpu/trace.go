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
	"strings"

	"github.com/mpcemu/v53/hardware/memory"
)

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// traceState returns the register, flag and stack section of a trace record.
// it is called before the instruction is executed.
func (mc *CPU) traceState() string {
	snap := mc.Snapshot()

	s := &strings.Builder{}
	s.WriteString("\n           AW   BW   CW   DW   DS0  DS1  BP   IX   IY   SS   SP   PS   PC   ")
	fmt.Fprintf(s, "\n           %04X %04X %04X %04X %04X %04X %04X %04X %04X %04X:%04X %04X:%04X",
		snap.AW, snap.BW, snap.CW, snap.DW,
		snap.DS0, snap.DS1, snap.BP, snap.IX, snap.IY,
		snap.SS, snap.SP, snap.PS, snap.PC)
	fmt.Fprintf(s, "\n           V=%d DIR=%d IE=%d BRK=%d S=%d Z=%d AC=%d P=%d CY=%d",
		boolToInt(mc.PSW.Overflow()), boolToInt(mc.PSW.Direction()),
		boolToInt(mc.PSW.InterruptEnable()), boolToInt(mc.PSW.Break()),
		boolToInt(mc.PSW.Sign()), boolToInt(mc.PSW.Zero()), boolToInt(mc.PSW.AuxCarry()),
		boolToInt(mc.PSW.Parity()), boolToInt(mc.PSW.Carry()))

	mc.dumpSegment(s, snap.SS, snap.SP, mc.prefs.StackRows.Get().(int))

	return s.String()
}

// writeTrace completes the trace record begun by traceState() with the
// details of the instruction that has just been executed.
func (mc *CPU) writeTrace(state string) {
	if mc.trace == nil {
		return
	}

	s := &strings.Builder{}
	s.WriteString(state)
	fmt.Fprintf(s, "\n\n%10d %05X  %-15s  [%s]\n",
		mc.LastResult.Clock, mc.LastResult.Address, mc.LastResult.Mnemonic(), mc.LastResult.ByteString())

	_, _ = mc.trace.Write([]byte(s.String()))
}

// dumpSegment writes rows of 16 bytes of conventional memory beginning with
// the row that contains segment:offset.
func (mc *CPU) dumpSegment(s *strings.Builder, segment uint16, offset uint16, rows int) {
	base := (uint32(segment)<<4 + uint32(offset)) &^ 0x0f
	for row := 0; row < rows; row++ {
		start := base + uint32(row)*0x10
		fmt.Fprintf(s, "\n%6X|", start)
		for col := uint32(0); col < 0x10; col++ {
			fmt.Fprintf(s, " %02x", mc.mem.Conventional[(start+col)&memory.AddressMask])
		}
	}
}
