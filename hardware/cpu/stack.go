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

// the flags that can be changed by POP PSW and RETI. the other bits are
// preserved
const pswDefinedMask = 0x0fd5

// the flags that can be changed by MOV PSW,AH
const pswLowFlagsMask = 0x00d5

func pushRegister(mc *CPU) (uint64, error) {
	if err := mc.Push16(mc.RegisterValue16(mc.opcode & 0x07)); err != nil {
		return 0, err
	}
	return 3, nil
}

func popRegister(mc *CPU) (uint64, error) {
	mc.SetRegister16(mc.opcode&0x07, mc.Pop16())
	return 5, nil
}

// pushSegment executes opcodes 0x06, 0x0e, 0x16 and 0x1e. bits 3 and 4 of
// the opcode select the segment register.
func pushSegment(mc *CPU) (uint64, error) {
	if err := mc.Push16(mc.SegmentValue((mc.opcode >> 3) & 0x03)); err != nil {
		return 0, err
	}
	return 3, nil
}

func popSegment(mc *CPU) (uint64, error) {
	mc.SetSegment((mc.opcode>>3)&0x03, mc.Pop16())
	return 5, nil
}

func pushPSW(mc *CPU) (uint64, error) {
	if err := mc.Push16(mc.PSW.Value()); err != nil {
		return 0, err
	}
	return 3, nil
}

func popPSW(mc *CPU) (uint64, error) {
	mc.restorePSW(mc.Pop16())
	return 5, nil
}

func (mc *CPU) restorePSW(v uint16) {
	mc.PSW.Load(mc.PSW.Value()&^pswDefinedMask | v&pswDefinedMask)
}

// pushImmediate executes opcodes 0x68 and 0x6a. the byte form is sign
// extended.
func pushImmediate(mc *CPU) (uint64, error) {
	var v uint16
	if mc.opcode == 0x68 {
		v = mc.next16()
	} else {
		v = uint16(int16(mc.nextI8()))
	}
	if err := mc.Push16(v); err != nil {
		return 0, err
	}
	return 4, nil
}

// popRM executes opcode 0x8f. the reg field must be zero.
func popRM(mc *CPU) (uint64, error) {
	op := mc.decodeModRM()
	if op.reg != 0 {
		return mc.undefined()
	}
	mc.writeRM16(op, mc.Pop16())
	return op.cost(5, 8, 1), nil
}

// pushAll executes opcode 0x60. the value of SP pushed is the value before
// the first push.
func pushAll(mc *CPU) (uint64, error) {
	sp := mc.SP.Value()
	for _, v := range []uint16{mc.AW.Value(), mc.CW.Value(), mc.DW.Value(), mc.BW.Value(), sp, mc.BP.Value(), mc.IX.Value(), mc.IY.Value()} {
		if err := mc.Push16(v); err != nil {
			return 0, err
		}
	}
	return 35, nil
}

// popAll executes opcode 0x61. the stacked value of SP is discarded.
func popAll(mc *CPU) (uint64, error) {
	mc.IY.Load(mc.Pop16())
	mc.IX.Load(mc.Pop16())
	mc.BP.Load(mc.Pop16())
	_ = mc.Pop16()
	mc.BW.Load(mc.Pop16())
	mc.DW.Load(mc.Pop16())
	mc.CW.Load(mc.Pop16())
	mc.AW.Load(mc.Pop16())
	return 43, nil
}

// prepare executes opcode 0xc8. it creates a stack frame of the given size
// with the given lexical nesting level.
func prepare(mc *CPU) (uint64, error) {
	size := mc.next16()
	level := mc.next8() & 0x1f

	if err := mc.Push16(mc.BP.Value()); err != nil {
		return 0, err
	}
	frame := mc.SP.Value()

	if level > 0 {
		for i := uint8(1); i < level; i++ {
			mc.BP.Subtract(2)
			if err := mc.Push16(mc.load16(SS, mc.BP.Value())); err != nil {
				return 0, err
			}
		}
		if err := mc.Push16(frame); err != nil {
			return 0, err
		}
	}

	mc.BP.Load(frame)
	mc.SP.Subtract(size)

	switch level {
	case 0:
		return 16, nil
	case 1:
		return 18, nil
	}
	return 19 + 8*uint64(level-1), nil
}

// dispose executes opcode 0xc9.
func dispose(mc *CPU) (uint64, error) {
	mc.SP.Load(mc.BP.Value())
	mc.BP.Load(mc.Pop16())
	return 6, nil
}
