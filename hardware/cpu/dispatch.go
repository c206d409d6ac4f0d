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

// executor functions decode the operands of an instruction, perform the
// operation and return the number of cycles taken. the opcode has already
// been fetched and is available in the opcode field of the CPU.
type executor func(mc *CPU) (uint64, error)

// dispatch maps every opcode to its executor. the table is filled in init()
// because the repeat executor refers to the table.
var dispatch [256]executor

func init() {
	for i := range dispatch {
		dispatch[i] = undefinedOpcode
	}

	for op := 0x00; op <= 0x3d; op++ {
		if op&0x07 <= 0x05 {
			dispatch[op] = aluForms
		}
	}

	for _, op := range []uint8{0x06, 0x0e, 0x16, 0x1e} {
		dispatch[op] = pushSegment
	}
	for _, op := range []uint8{0x07, 0x17, 0x1f} {
		dispatch[op] = popSegment
	}
	for _, op := range []uint8{0x26, 0x2e, 0x36, 0x3e} {
		dispatch[op] = segmentOverride
	}
	for _, op := range []uint8{0x64, 0x65, 0xf2, 0xf3} {
		dispatch[op] = repeat
	}

	dispatch[0x0f] = extended
	dispatch[0x27] = decimalAdjust
	dispatch[0x2f] = decimalAdjust
	dispatch[0x37] = asciiAdjust
	dispatch[0x3f] = asciiAdjust

	for op := 0x40; op <= 0x4f; op++ {
		dispatch[op] = incDecRegister
	}
	for op := 0x50; op <= 0x57; op++ {
		dispatch[op] = pushRegister
	}
	for op := 0x58; op <= 0x5f; op++ {
		dispatch[op] = popRegister
	}

	dispatch[0x60] = pushAll
	dispatch[0x61] = popAll
	dispatch[0x62] = checkIndex
	dispatch[0x66] = coprocessor
	dispatch[0x67] = coprocessor
	dispatch[0x68] = pushImmediate
	dispatch[0x69] = multiplyImmediate
	dispatch[0x6a] = pushImmediate
	dispatch[0x6b] = multiplyImmediate

	for _, op := range []uint8{0x6c, 0x6d, 0x6e, 0x6f, 0xa4, 0xa5, 0xa6, 0xa7, 0xaa, 0xab, 0xac, 0xad, 0xae, 0xaf} {
		dispatch[op] = block
	}

	for op := 0x70; op <= 0x7f; op++ {
		dispatch[op] = branchConditional
	}
	for op := 0x80; op <= 0x83; op++ {
		dispatch[op] = immediateGroup
	}

	dispatch[0x84] = testForms
	dispatch[0x85] = testForms
	dispatch[0x86] = exchange
	dispatch[0x87] = exchange
	for _, op := range []uint8{0x88, 0x89, 0x8a, 0x8b, 0x8c, 0x8e} {
		dispatch[op] = movForms
	}
	dispatch[0x8d] = loadEffectiveAddress
	dispatch[0x8f] = popRM

	dispatch[0x90] = nop
	for op := 0x91; op <= 0x97; op++ {
		dispatch[op] = exchangeAW
	}
	dispatch[0x98] = convertByteToWord
	dispatch[0x99] = convertWordToLong
	dispatch[0x9a] = callFarImmediate
	dispatch[0x9b] = poll
	dispatch[0x9c] = pushPSW
	dispatch[0x9d] = popPSW
	dispatch[0x9e] = movPSWFromAH
	dispatch[0x9f] = movAHFromPSW

	for op := 0xa0; op <= 0xa3; op++ {
		dispatch[op] = movAccumulator
	}
	dispatch[0xa8] = testForms
	dispatch[0xa9] = testForms

	for op := 0xb0; op <= 0xbf; op++ {
		dispatch[op] = movImmediateRegister
	}

	for _, op := range []uint8{0xc0, 0xc1, 0xd0, 0xd1, 0xd2, 0xd3} {
		dispatch[op] = shiftGroup
	}
	dispatch[0xc2] = ret
	dispatch[0xc3] = ret
	dispatch[0xc4] = movSegmentAW
	dispatch[0xc5] = movSegmentAW
	dispatch[0xc6] = movImmediate
	dispatch[0xc7] = movImmediate
	dispatch[0xc8] = prepare
	dispatch[0xc9] = dispose
	dispatch[0xca] = retFar
	dispatch[0xcb] = retFar
	dispatch[0xcc] = softwareInterrupt
	dispatch[0xcd] = softwareInterrupt
	dispatch[0xce] = breakOnOverflow
	dispatch[0xcf] = returnFromInterrupt

	dispatch[0xd4] = convertBinaryToDecimal
	dispatch[0xd5] = convertDecimalToBinary
	dispatch[0xd7] = translate
	for op := 0xd8; op <= 0xdf; op++ {
		dispatch[op] = coprocessor
	}

	for op := 0xe0; op <= 0xe3; op++ {
		dispatch[op] = loop
	}
	for _, op := range []uint8{0xe4, 0xe5, 0xec, 0xed} {
		dispatch[op] = input
	}
	for _, op := range []uint8{0xe6, 0xe7, 0xee, 0xef} {
		dispatch[op] = output
	}
	dispatch[0xe8] = callNear
	dispatch[0xe9] = branch
	dispatch[0xea] = branch
	dispatch[0xeb] = branch

	dispatch[0xf0] = busLock
	dispatch[0xf4] = halt
	dispatch[0xf5] = flagOperation
	dispatch[0xf6] = unaryGroup
	dispatch[0xf7] = unaryGroup
	for op := 0xf8; op <= 0xfd; op++ {
		dispatch[op] = flagOperation
	}
	dispatch[0xfe] = incDecGroup
	dispatch[0xff] = indirectGroup
}
