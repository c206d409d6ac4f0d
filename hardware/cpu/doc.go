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

// Package cpu emulates the NEC V53 microprocessor. The V53 is an 8086
// compatible CPU with additional instructions and on-chip peripherals. The
// instruction set is the V30 instruction set and the NEC mnemonics are used
// throughout. For example, the registers AX, BX, CX and DX are named AW, BW,
// CW and DW, and the segment registers CS, DS, ES and SS are named PS, DS0,
// DS1 and SS.
//
// The CPU is created with the firmware image that is to be run. The image is
// copied to the bottom of memory. After creation the CPU is in the reset
// state, with PS set to 0xffff and all other registers zero.
//
//	mc, err := cpu.NewCPU(nil, image)
//	if err != nil {
//		return err
//	}
//
//	for {
//		err = mc.Step()
//		if err != nil {
//			return err
//		}
//	}
//
// Step() executes exactly one instruction. Segment override prefixes are
// executed as separate instructions and affect the instruction that follows
// them. Repeat prefixes are executed with the instruction they repeat, so a
// single call to Step() may execute a block instruction many times.
//
// The number of cycles taken by each instruction is accumulated by the CPU
// and can be read with the Clock() function. Word accesses to odd addresses
// take longer than accesses to even addresses.
//
// Writes to I/O ports can be observed with OnOutput(). Observers are called
// synchronously and receive a read-only view of the CPU.
//
// Errors returned by Step() are curated errors. Instructions that have not
// been emulated produce an error with the UnimplementedInstruction pattern.
// Guest faults (undefined instructions, divide errors and stack overflows)
// produce errors with the patterns UndefinedInstruction, DivideError and
// StackOverflow. Once an error has been returned, all future calls to Step()
// will return the same error.
//
// The LastResult field can be probed for information about the last
// instruction executed. See the execution package for more information.
package cpu
