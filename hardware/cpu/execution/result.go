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

package execution

import (
	"fmt"
	"strings"

	"github.com/mpcemu/v53/hardware/cpu/instructions"
)

// MaxInstructionBytes is the longest instruction the V53 will fetch. Prefixes
// do not count towards the total because they are executed as separate
// instructions.
const MaxInstructionBytes = 16

// Result records the state/result of the most recent CPU instruction.
type Result struct {
	// the physical address (PS:PC) at which the instruction began
	Address uint32

	// the value of the cycle clock before the instruction was executed
	Clock uint64

	// the definition of the opcode. for group opcodes this is the definition
	// of the selected operation
	Defn instructions.Definition

	// the definition of the opcode being repeated by a repeat prefix
	Repeated *instructions.Definition

	// bytes read from the program address during decoding
	Bytes []uint8

	// number of cycles the instruction took, including every repetition
	Cycles uint64

	// number of times a repeated instruction was executed
	Repeats int

	// whether this data has been finalised
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	r.Address = 0
	r.Clock = 0
	r.Defn = instructions.Definition{}
	r.Repeated = nil
	r.Bytes = r.Bytes[:0]
	r.Cycles = 0
	r.Repeats = 0
	r.Final = false
}

// AddByte records a byte read from the program address.
func (r *Result) AddByte(b uint8) {
	if len(r.Bytes) < MaxInstructionBytes {
		r.Bytes = append(r.Bytes, b)
	}
}

// Mnemonic returns the mnemonic and operand form of the instruction. For
// repeated instructions the prefix and repeated instruction are both shown.
func (r Result) Mnemonic() string {
	if r.Repeated != nil {
		return fmt.Sprintf("%s %s", r.Defn.Mnemonic, r.Repeated.String())
	}
	return r.Defn.String()
}

// ByteString returns the instruction bytes as space separated hex values.
func (r Result) ByteString() string {
	s := make([]string, len(r.Bytes))
	for i, b := range r.Bytes {
		s[i] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(s, " ")
}

func (r Result) String() string {
	return fmt.Sprintf("%10d %05X  %-15s  [%s]", r.Clock, r.Address, r.Mnemonic(), r.ByteString())
}

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return fmt.Errorf("cpu: execution not finalised (bad opcode?)")
	}
	if len(r.Bytes) == 0 {
		return fmt.Errorf("cpu: no bytes read during decode of %s", r.Mnemonic())
	}
	if r.Bytes[0] != r.Defn.OpCode && r.Defn.Category != instructions.Undefined {
		if r.Bytes[0] != 0x0f {
			return fmt.Errorf("cpu: opcode %02X does not match first byte %02X", r.Defn.OpCode, r.Bytes[0])
		}
	}
	if r.Repeated == nil && r.Repeats > 0 {
		return fmt.Errorf("cpu: %d repeats recorded for non-repeated instruction", r.Repeats)
	}
	return nil
}
