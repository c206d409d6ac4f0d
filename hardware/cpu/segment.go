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
	"github.com/mpcemu/v53/curated"
	"github.com/mpcemu/v53/hardware/memory"
)

// Segment identifies one of the four segment registers.
type Segment int

// List of segments. NoOverride is the state of the segment override latch
// when no segment override prefix is active.
const (
	NoOverride Segment = iota
	DS0
	DS1
	PS
	SS
)

func (seg Segment) String() string {
	switch seg {
	case NoOverride:
		return "none"
	case DS0:
		return "DS0"
	case DS1:
		return "DS1"
	case PS:
		return "PS"
	case SS:
		return "SS"
	}
	return "unknown segment"
}

// the segment selected by each of the segment override prefixes
func prefixSegment(opcode uint8) Segment {
	switch opcode {
	case 0x26:
		return DS1
	case 0x2e:
		return PS
	case 0x36:
		return SS
	case 0x3e:
		return DS0
	}
	return NoOverride
}

// SegmentOverride returns the state of the segment override latch.
func (mc *CPU) SegmentOverride() Segment {
	return mc.segment
}

// resolve returns the segment override if one is active, otherwise the
// default segment.
func (mc *CPU) resolve(def Segment) Segment {
	if mc.segment != NoOverride {
		return mc.segment
	}
	return def
}

func (mc *CPU) segmentBase(seg Segment) uint16 {
	switch seg {
	case DS1:
		return mc.DS1.Value()
	case PS:
		return mc.PS.Value()
	case SS:
		return mc.SS.Value()
	}
	return mc.DS0.Value()
}

// physical returns the 20 bit address for the segment value and offset.
func physical(segment uint16, offset uint16) uint32 {
	return (uint32(segment)<<4 + uint32(offset)) & memory.AddressMask
}

// EffectiveAddress returns the physical address for the offset in the current
// data segment. The data segment is DS0 unless a segment override is active.
func (mc *CPU) EffectiveAddress(offset uint16) uint32 {
	return physical(mc.segmentBase(mc.resolve(DS0)), offset)
}

// ProgramAddress returns the physical address of PS:PC.
func (mc *CPU) ProgramAddress() uint32 {
	return physical(mc.PS.Value(), mc.PC.Value())
}

// Read8 reads a byte from the offset in the current data segment.
func (mc *CPU) Read8(offset uint16) uint8 {
	return mc.load8(mc.resolve(DS0), offset)
}

// Read16 reads a little-endian word from the offset in the current data
// segment.
func (mc *CPU) Read16(offset uint16) uint16 {
	return mc.load16(mc.resolve(DS0), offset)
}

// Write8 writes a byte to the offset in the current data segment.
func (mc *CPU) Write8(offset uint16, data uint8) {
	mc.store8(mc.resolve(DS0), offset, data)
}

// Write16 writes a little-endian word to the offset in the current data
// segment.
func (mc *CPU) Write16(offset uint16, data uint16) {
	mc.store16(mc.resolve(DS0), offset, data)
}

// Physical returns the byte at the physical address. The XA flag is honoured.
func (mc *CPU) Physical(address uint32) uint8 {
	return mc.mem.Read(address)
}

func (mc *CPU) load8(seg Segment, offset uint16) uint8 {
	return mc.mem.Read(physical(mc.segmentBase(seg), offset))
}

// the high byte of a word at offset 0xffff is read from offset 0x0000 of the
// same segment.
func (mc *CPU) load16(seg Segment, offset uint16) uint16 {
	lo := mc.load8(seg, offset)
	hi := mc.load8(seg, offset+1)
	return uint16(hi)<<8 | uint16(lo)
}

func (mc *CPU) store8(seg Segment, offset uint16, data uint8) {
	mc.mem.Write(physical(mc.segmentBase(seg), offset), data)
}

func (mc *CPU) store16(seg Segment, offset uint16, data uint16) {
	mc.store8(seg, offset, uint8(data))
	mc.store8(seg, offset+1, uint8(data>>8))
}

// Push16 pushes a word onto the stack. It is an error to push when SP is
// less than two. A push to an odd SP adds to the cycles of the current
// instruction.
func (mc *CPU) Push16(data uint16) error {
	if mc.SP.Value() < 2 {
		return curated.Errorf(StackOverflow, mc.SS.Value(), mc.SP.Value())
	}
	mc.SP.Subtract(2)
	mc.store16(SS, mc.SP.Value(), data)
	mc.stackCycles += oddPenalty(mc.SP.Value())
	return nil
}

// Pop16 pops a word from the stack. A pop from an odd SP adds to the cycles
// of the current instruction.
func (mc *CPU) Pop16() uint16 {
	data := mc.load16(SS, mc.SP.Value())
	mc.stackCycles += oddPenalty(mc.SP.Value())
	mc.SP.Add(2)
	return data
}

// next8 reads the byte at PS:PC and advances PC. The byte is recorded in
// LastResult.
func (mc *CPU) next8() uint8 {
	v := mc.mem.Read(mc.ProgramAddress())
	mc.PC.Add(1)
	mc.LastResult.AddByte(v)
	return v
}

func (mc *CPU) next16() uint16 {
	lo := mc.next8()
	hi := mc.next8()
	return uint16(hi)<<8 | uint16(lo)
}

func (mc *CPU) nextI8() int8 {
	return int8(mc.next8())
}

func (mc *CPU) nextI16() int16 {
	return int16(mc.next16())
}

// the number of additional cycles for a word access at an odd offset
func oddPenalty(offset uint16) uint64 {
	if offset&0x0001 == 0x0001 {
		return 2
	}
	return 0
}
