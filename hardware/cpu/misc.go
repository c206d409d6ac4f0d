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
	"github.com/mpcemu/v53/logger"
)

// flagOperation executes the single byte flag opcodes 0xf5 and 0xf8 to 0xfd.
func flagOperation(mc *CPU) (uint64, error) {
	switch mc.opcode {
	case 0xf5:
		mc.PSW.SetCarry(!mc.PSW.Carry())
	case 0xf8:
		mc.PSW.SetCarry(false)
	case 0xf9:
		mc.PSW.SetCarry(true)
	case 0xfa:
		mc.PSW.SetInterruptEnable(false)
	case 0xfb:
		mc.PSW.SetInterruptEnable(true)
	case 0xfc:
		mc.PSW.SetDirection(false)
	case 0xfd:
		mc.PSW.SetDirection(true)
	}
	return 2, nil
}

// movPSWFromAH executes opcode 0x9e. only the S, Z, AC, P and CY flags are
// changed.
func movPSWFromAH(mc *CPU) (uint64, error) {
	mc.PSW.Load(mc.PSW.Value()&^pswLowFlagsMask | uint16(mc.AW.Hi())&pswLowFlagsMask)
	return 2, nil
}

// movAHFromPSW executes opcode 0x9f.
func movAHFromPSW(mc *CPU) (uint64, error) {
	mc.AW.LoadHi(uint8(mc.PSW.Value()))
	return 2, nil
}

// segmentOverride executes the segment override prefixes. the override lasts
// until the end of the next instruction.
func segmentOverride(mc *CPU) (uint64, error) {
	mc.segment = prefixSegment(mc.opcode)
	return 2, nil
}

func nop(mc *CPU) (uint64, error) {
	return 1, nil
}

// poll executes opcode 0x9b. there is no coprocessor so POLL never waits.
func poll(mc *CPU) (uint64, error) {
	return 2, nil
}

// busLock executes opcode 0xf0. bus arbitration is not emulated.
func busLock(mc *CPU) (uint64, error) {
	return 2, nil
}

func halt(mc *CPU) (uint64, error) {
	mc.Halted = true
	logger.Logf(logger.Allow, "v53", "HALT at %05X", mc.LastResult.Address)
	return 2, nil
}

// coprocessor executes the FPO1 and FPO2 escape opcodes.
func coprocessor(mc *CPU) (uint64, error) {
	return mc.unimplemented()
}

func undefinedOpcode(mc *CPU) (uint64, error) {
	return mc.undefined()
}
