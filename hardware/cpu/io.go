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

// input executes opcodes 0xe4, 0xe5, 0xec and 0xed.
func input(mc *CPU) (uint64, error) {
	var port uint16
	if mc.opcode < 0xe8 {
		port = uint16(mc.next8())
	} else {
		port = mc.DW.Value()
	}

	if mc.opcode&0x01 == 0x00 {
		mc.AW.LoadLo(mc.In8(port))
		return 5, nil
	}
	mc.AW.Load(mc.In16(port))
	return 7, nil
}

// output executes opcodes 0xe6, 0xe7, 0xee and 0xef.
func output(mc *CPU) (uint64, error) {
	var port uint16
	if mc.opcode < 0xe8 {
		port = uint16(mc.next8())
	} else {
		port = mc.DW.Value()
	}

	if mc.opcode&0x01 == 0x00 {
		mc.Out8(port, mc.AW.Lo())
		return 3, nil
	}
	mc.Out16(port, mc.AW.Value())
	return 5, nil
}
