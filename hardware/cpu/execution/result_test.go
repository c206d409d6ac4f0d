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

package execution_test

import (
	"testing"

	"github.com/mpcemu/v53/hardware/cpu/execution"
	"github.com/mpcemu/v53/hardware/cpu/instructions"
	"github.com/mpcemu/v53/test"
)

func TestResult(t *testing.T) {
	var r execution.Result
	test.ExpectFailure(t, r.IsValid())

	r.Defn = instructions.Lookup(0xba)
	r.Address = 0xffff0
	r.Clock = 2
	r.AddByte(0xba)
	r.AddByte(0x88)
	r.AddByte(0x88)
	r.Final = true
	test.ExpectSuccess(t, r.IsValid())
	test.ExpectEquality(t, r.ByteString(), "BA 88 88")
	test.ExpectEquality(t, r.String(), "         2 FFFF0  MOV DW,imm16     [BA 88 88]")

	r.Reset()
	test.ExpectEquality(t, len(r.Bytes), 0)
	test.ExpectFailure(t, r.Final)
}

func TestRepeated(t *testing.T) {
	var r execution.Result
	r.Defn = instructions.Lookup(0xf3)
	rep := instructions.Lookup(0xa5)
	r.Repeated = &rep
	r.Repeats = 3
	r.AddByte(0xf3)
	r.AddByte(0xa5)
	r.Final = true
	test.ExpectSuccess(t, r.IsValid())
	test.ExpectEquality(t, r.Mnemonic(), "REP MOVBK w")
}

func TestMaxBytes(t *testing.T) {
	var r execution.Result
	for i := 0; i < execution.MaxInstructionBytes*2; i++ {
		r.AddByte(0x26)
	}
	test.ExpectEquality(t, len(r.Bytes), execution.MaxInstructionBytes)
}
