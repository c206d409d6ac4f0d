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
	"github.com/mpcemu/v53/hardware/cpu/instructions"
)

// shiftGroup executes opcodes 0xc0, 0xc1 and 0xd0 to 0xd3.
func shiftGroup(mc *CPU) (uint64, error) {
	op := mc.decodeModRM()
	mc.LastResult.Defn = instructions.LookupGroup(mc.opcode, op.reg)
	if !mc.LastResult.Defn.IsDefined() {
		return mc.undefined()
	}

	var count uint8
	switch mc.opcode {
	case 0xc0, 0xc1:
		count = mc.next8()
	case 0xd0, 0xd1:
		count = 1
	case 0xd2, 0xd3:
		count = mc.CW.Lo()
	}

	word := mc.opcode&0x01 == 0x01
	if word {
		mc.writeRM16(op, mc.shift(op.reg, mc.readRM16(op), count, 16))
	} else {
		mc.writeRM8(op, uint8(mc.shift(op.reg, uint16(mc.readRM8(op)), count, 8)))
	}

	var accesses uint64
	if word {
		accesses = 2
	}

	if mc.opcode == 0xd0 || mc.opcode == 0xd1 {
		return op.cost(2, 7, accesses), nil
	}

	n := uint64(count & 0x1f)
	return op.cost(5+n, 8+n, accesses), nil
}
