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
)

// Sentinal error patterns.
const (
	UnimplementedInstruction = "cpu: unimplemented instruction (%s) at (%05X)"
	UndefinedInstruction     = "cpu: undefined instruction (%s) at (%05X)"
	DivideError              = "cpu: divide error (%s) at (%05X)"
	StackOverflow            = "cpu: stack overflow (SS:SP %04X:%04X)"
)

// IsUnimplemented returns true if the error is caused by an instruction that
// has not been emulated.
func IsUnimplemented(err error) bool {
	return curated.Has(err, UnimplementedInstruction)
}

// IsGuestFault returns true if the error is caused by the program running on
// the CPU. These are the errors that real hardware would raise an exception
// for.
func IsGuestFault(err error) bool {
	return curated.Has(err, UndefinedInstruction) ||
		curated.Has(err, DivideError) ||
		curated.Has(err, StackOverflow)
}

func (mc *CPU) unimplemented() (uint64, error) {
	return 0, curated.Errorf(UnimplementedInstruction, mc.LastResult.ByteString(), mc.LastResult.Address)
}

func (mc *CPU) undefined() (uint64, error) {
	return 0, curated.Errorf(UndefinedInstruction, mc.LastResult.ByteString(), mc.LastResult.Address)
}

func (mc *CPU) divideError() (uint64, error) {
	return 0, curated.Errorf(DivideError, mc.LastResult.Defn.Mnemonic, mc.LastResult.Address)
}
