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
	"github.com/mpcemu/v53/logger"
)

// the vectors used by instructions that raise an interrupt
const (
	vectorBreak      = 3
	vectorOverflow   = 4
	vectorCheckIndex = 5
)

// condition returns whether the condition for the conditional branch opcodes
// 0x70 to 0x7f is met. the lowest bit of the opcode inverts the condition.
func (mc *CPU) condition(opcode uint8) bool {
	var c bool

	switch (opcode >> 1) & 0x07 {
	case 0x00:
		c = mc.PSW.Overflow()
	case 0x01:
		c = mc.PSW.Carry()
	case 0x02:
		c = mc.PSW.Zero()
	case 0x03:
		c = mc.PSW.Carry() || mc.PSW.Zero()
	case 0x04:
		c = mc.PSW.Sign()
	case 0x05:
		c = mc.PSW.Parity()
	case 0x06:
		c = mc.PSW.Sign() != mc.PSW.Overflow()
	case 0x07:
		c = mc.PSW.Zero() || mc.PSW.Sign() != mc.PSW.Overflow()
	}

	if opcode&0x01 == 0x01 {
		return !c
	}
	return c
}

func (mc *CPU) branchRelative(rel int16) {
	mc.PC.Load(mc.PC.Value() + uint16(rel))
}

// branchConditional executes opcodes 0x70 to 0x7f.
func branchConditional(mc *CPU) (uint64, error) {
	rel := mc.nextI8()
	if !mc.condition(mc.opcode) {
		return 3, nil
	}
	mc.branchRelative(int16(rel))
	return 6, nil
}

// branch executes opcodes 0xe9, 0xea and 0xeb.
func branch(mc *CPU) (uint64, error) {
	switch mc.opcode {
	case 0xe9:
		rel := mc.nextI16()
		mc.branchRelative(rel)
	case 0xea:
		offset := mc.next16()
		segment := mc.next16()
		mc.PC.Load(offset)
		mc.PS.Load(segment)
	case 0xeb:
		rel := mc.nextI8()
		mc.branchRelative(int16(rel))
	}
	return 7, nil
}

// callNear executes opcode 0xe8.
func callNear(mc *CPU) (uint64, error) {
	rel := mc.nextI16()
	if err := mc.Push16(mc.PC.Value()); err != nil {
		return 0, err
	}
	mc.branchRelative(rel)
	return 7, nil
}

func (mc *CPU) callFar(segment uint16, offset uint16) error {
	if err := mc.Push16(mc.PS.Value()); err != nil {
		return err
	}
	if err := mc.Push16(mc.PC.Value()); err != nil {
		return err
	}
	mc.PS.Load(segment)
	mc.PC.Load(offset)
	return nil
}

// callFarImmediate executes opcode 0x9a.
func callFarImmediate(mc *CPU) (uint64, error) {
	offset := mc.next16()
	segment := mc.next16()
	if err := mc.callFar(segment, offset); err != nil {
		return 0, err
	}
	return 13, nil
}

// ret executes opcodes 0xc2 and 0xc3.
func ret(mc *CPU) (uint64, error) {
	var adjust uint16
	if mc.opcode == 0xc2 {
		adjust = mc.next16()
	}
	mc.PC.Load(mc.Pop16())
	mc.SP.Add(adjust)
	return 6, nil
}

// retFar executes opcodes 0xca and 0xcb.
func retFar(mc *CPU) (uint64, error) {
	var adjust uint16
	if mc.opcode == 0xca {
		adjust = mc.next16()
	}
	mc.PC.Load(mc.Pop16())
	mc.PS.Load(mc.Pop16())
	mc.SP.Add(adjust)
	return 10, nil
}

// loop executes opcodes 0xe0 to 0xe3. the flags are not changed.
func loop(mc *CPU) (uint64, error) {
	rel := mc.nextI8()

	var taken bool
	if mc.opcode == 0xe3 {
		taken = mc.CW.IsZero()
	} else {
		mc.CW.Decrement()
		switch mc.opcode {
		case 0xe0:
			taken = !mc.CW.IsZero() && !mc.PSW.Zero()
		case 0xe1:
			taken = !mc.CW.IsZero() && mc.PSW.Zero()
		case 0xe2:
			taken = !mc.CW.IsZero()
		}
	}

	if !taken {
		return 3, nil
	}
	mc.branchRelative(int16(rel))
	return 6, nil
}

// indirectGroup executes opcode 0xff.
func indirectGroup(mc *CPU) (uint64, error) {
	op := mc.decodeModRM()
	mc.LastResult.Defn = instructions.LookupGroup(mc.opcode, op.reg)

	switch op.reg {
	case 0x00:
		mc.writeRM16(op, mc.add16(mc.readRM16(op), 1, false))
		return op.cost(2, 7, 2), nil

	case 0x01:
		mc.writeRM16(op, mc.sub16(mc.readRM16(op), 1, false))
		return op.cost(2, 7, 2), nil

	case 0x02:
		target := mc.readRM16(op)
		if err := mc.Push16(mc.PC.Value()); err != nil {
			return 0, err
		}
		mc.PC.Load(target)
		return op.cost(7, 11, 1), nil

	case 0x03:
		if !op.memory {
			return mc.undefined()
		}
		offset := mc.load16(op.seg, op.offset)
		segment := mc.load16(op.seg, op.offset+2)
		if err := mc.callFar(segment, offset); err != nil {
			return 0, err
		}
		return op.cost(0, 15, 4), nil

	case 0x04:
		mc.PC.Load(mc.readRM16(op))
		return op.cost(7, 11, 1), nil

	case 0x05:
		if !op.memory {
			return mc.undefined()
		}
		mc.PC.Load(mc.load16(op.seg, op.offset))
		mc.PS.Load(mc.load16(op.seg, op.offset+2))
		return op.cost(0, 15, 2), nil

	case 0x06:
		if err := mc.Push16(mc.readRM16(op)); err != nil {
			return 0, err
		}
		return op.cost(3, 7, 1), nil
	}

	return mc.undefined()
}

// vector returns the offset and segment of the interrupt vector. the vector
// table is read through the current memory bank.
func (mc *CPU) vector(n uint8) (offset uint16, segment uint16) {
	a := uint32(n) * 4
	offset = uint16(mc.mem.Read(a)) | uint16(mc.mem.Read(a+1))<<8
	segment = uint16(mc.mem.Read(a+2)) | uint16(mc.mem.Read(a+3))<<8
	return offset, segment
}

// interrupt saves PSW, PS and PC to the stack and transfers control to the
// interrupt vector.
func (mc *CPU) interrupt(n uint8) error {
	if err := mc.Push16(mc.PSW.Value()); err != nil {
		return err
	}
	mc.PSW.SetInterruptEnable(false)
	mc.PSW.SetBreak(false)
	if err := mc.Push16(mc.PS.Value()); err != nil {
		return err
	}
	if err := mc.Push16(mc.PC.Value()); err != nil {
		return err
	}
	offset, segment := mc.vector(n)
	mc.PC.Load(offset)
	mc.PS.Load(segment)
	return nil
}

// softwareInterrupt executes opcodes 0xcc and 0xcd.
func softwareInterrupt(mc *CPU) (uint64, error) {
	n := uint8(vectorBreak)
	if mc.opcode == 0xcd {
		n = mc.next8()
	}
	if err := mc.interrupt(n); err != nil {
		return 0, err
	}
	return 38, nil
}

// breakOnOverflow executes opcode 0xce.
func breakOnOverflow(mc *CPU) (uint64, error) {
	if !mc.PSW.Overflow() {
		return 3, nil
	}
	if err := mc.interrupt(vectorOverflow); err != nil {
		return 0, err
	}
	return 40, nil
}

// returnFromInterrupt executes opcode 0xcf.
func returnFromInterrupt(mc *CPU) (uint64, error) {
	mc.PC.Load(mc.Pop16())
	mc.PS.Load(mc.Pop16())
	mc.restorePSW(mc.Pop16())
	return 27, nil
}

// checkIndex executes opcode 0x62. the register is compared with the signed
// lower and upper bounds held in memory. vector 5 is taken if the register is
// out of bounds.
func checkIndex(mc *CPU) (uint64, error) {
	op := mc.decodeModRM()
	if !op.memory {
		return mc.undefined()
	}

	v := int16(mc.RegisterValue16(op.reg))
	lower := int16(mc.load16(op.seg, op.offset))
	upper := int16(mc.load16(op.seg, op.offset+2))

	if v >= lower && v <= upper {
		return op.cost(0, 18, 2), nil
	}

	if err := mc.interrupt(vectorCheckIndex); err != nil {
		return 0, err
	}
	return op.cost(0, 26, 2), nil
}

// extendedBreak executes BRKXA. control is transferred to the vector and the
// extended address space is selected.
func (mc *CPU) extendedBreak() (uint64, error) {
	n := mc.next8()
	offset, segment := mc.vector(n)
	mc.PC.Load(offset)
	mc.PS.Load(segment)
	mc.mem.SetXA(true)
	logger.Logf(logger.Allow, "v53", "BRKXA %02X to %04X:%04X", n, segment, offset)
	return 12, nil
}

// extendedReturn executes RETXA. the vector is read from the extended address
// space, which is then deselected.
func (mc *CPU) extendedReturn() (uint64, error) {
	n := mc.next8()
	offset, segment := mc.vector(n)
	mc.PC.Load(offset)
	mc.PS.Load(segment)
	mc.mem.SetXA(false)
	logger.Logf(logger.Allow, "v53", "RETXA %02X to %04X:%04X", n, segment, offset)
	return 12, nil
}
