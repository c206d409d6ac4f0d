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

package registers

import (
	"fmt"
)

// Register is a 16 bit register. All arithmetic is modulo 2^16.
type Register struct {
	label string
	value uint16
}

// NewRegister is the preferred method of initialisation for Register.
func NewRegister(val uint16, label string) Register {
	return Register{
		value: val,
		label: label,
	}
}

func (r Register) String() string {
	return fmt.Sprintf("%s=%04X", r.label, r.value)
}

// Label returns the canonical name of the register.
func (r Register) Label() string {
	return r.label
}

// Value returns the current value of the register.
func (r Register) Value() uint16 {
	return r.value
}

// Hi returns the most significant byte of the register.
func (r Register) Hi() uint8 {
	return uint8(r.value >> 8)
}

// Lo returns the least significant byte of the register.
func (r Register) Lo() uint8 {
	return uint8(r.value)
}

// IsZero checks if register is zero.
func (r Register) IsZero() bool {
	return r.value == 0
}

// IsOdd checks if the least significant bit is set. Odd values in address
// registers incur a penalty when used for word access.
func (r Register) IsOdd() bool {
	return r.value&0x0001 == 0x0001
}

// Load value into register.
func (r *Register) Load(val uint16) {
	r.value = val
}

// LoadHi loads the most significant byte without disturbing the other byte.
func (r *Register) LoadHi(val uint8) {
	r.value = (r.value & 0x00ff) | uint16(val)<<8
}

// LoadLo loads the least significant byte without disturbing the other byte.
func (r *Register) LoadLo(val uint8) {
	r.value = (r.value & 0xff00) | uint16(val)
}

// Add value to register. Returns carry and overflow states.
func (r *Register) Add(val uint16) (carry bool, overflow bool) {
	v := r.value
	r.value += val
	carry = r.value < v
	overflow = (v^r.value)&(val^r.value)&0x8000 != 0
	return carry, overflow
}

// Subtract value from register. Returns borrow and overflow states.
func (r *Register) Subtract(val uint16) (borrow bool, overflow bool) {
	v := r.value
	r.value -= val
	borrow = val > v
	overflow = (v^val)&(v^r.value)&0x8000 != 0
	return borrow, overflow
}

// Increment adds one to the register. Returns carry and overflow states.
func (r *Register) Increment() (carry bool, overflow bool) {
	return r.Add(1)
}

// Decrement subtracts one from the register. Returns borrow and overflow
// states.
func (r *Register) Decrement() (borrow bool, overflow bool) {
	return r.Subtract(1)
}
