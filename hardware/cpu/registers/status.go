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
	"math/bits"
	"strings"
)

// Bit positions of the flags in the PSW.
const (
	CarryBit           = 0
	ParityBit          = 2
	AuxCarryBit        = 4
	ZeroBit            = 6
	SignBit            = 7
	BreakBit           = 8
	InterruptEnableBit = 9
	DirectionBit       = 10
	OverflowBit        = 11
)

// PowerOnPSW is the value of the PSW after reset. The undefined bits 12 to 15
// read as one.
const PowerOnPSW = 0xf004

// StatusWord is the program status word (PSW) of the CPU. Bits that do not
// correspond to a flag are preserved.
type StatusWord struct {
	value uint16
}

// NewStatusWord is the preferred method of initialisation for the PSW.
func NewStatusWord() StatusWord {
	return StatusWord{value: PowerOnPSW}
}

// Label returns the canonical name for the status word.
func (psw StatusWord) Label() string {
	return "PSW"
}

func (psw StatusWord) String() string {
	s := strings.Builder{}
	flag := func(set bool, r rune) {
		if set {
			s.WriteRune(r)
		} else {
			s.WriteRune(r + ('a' - 'A'))
		}
	}
	flag(psw.Overflow(), 'V')
	flag(psw.Direction(), 'D')
	flag(psw.InterruptEnable(), 'I')
	flag(psw.Break(), 'B')
	flag(psw.Sign(), 'S')
	flag(psw.Zero(), 'Z')
	flag(psw.AuxCarry(), 'A')
	flag(psw.Parity(), 'P')
	flag(psw.Carry(), 'C')
	return s.String()
}

// Reset status word to power-on value.
func (psw *StatusWord) Reset() {
	psw.value = PowerOnPSW
}

// Value returns the PSW as a 16 bit word.
func (psw StatusWord) Value() uint16 {
	return psw.value
}

// Load the PSW from a 16 bit word.
func (psw *StatusWord) Load(v uint16) {
	psw.value = v
}

func (psw StatusWord) get(bit uint) bool {
	return psw.value&(1<<bit) != 0
}

func (psw *StatusWord) set(bit uint, v bool) {
	if v {
		psw.value |= 1 << bit
	} else {
		psw.value &^= 1 << bit
	}
}

// Carry flag (CY).
func (psw StatusWord) Carry() bool { return psw.get(CarryBit) }

// SetCarry sets or clears the carry flag (CY).
func (psw *StatusWord) SetCarry(v bool) { psw.set(CarryBit, v) }

// Parity flag (P).
func (psw StatusWord) Parity() bool { return psw.get(ParityBit) }

// SetParity sets or clears the parity flag (P).
func (psw *StatusWord) SetParity(v bool) { psw.set(ParityBit, v) }

// AuxCarry flag (AC).
func (psw StatusWord) AuxCarry() bool { return psw.get(AuxCarryBit) }

// SetAuxCarry sets or clears the auxiliary carry flag (AC).
func (psw *StatusWord) SetAuxCarry(v bool) { psw.set(AuxCarryBit, v) }

// Zero flag (Z).
func (psw StatusWord) Zero() bool { return psw.get(ZeroBit) }

// SetZero sets or clears the zero flag (Z).
func (psw *StatusWord) SetZero(v bool) { psw.set(ZeroBit, v) }

// Sign flag (S).
func (psw StatusWord) Sign() bool { return psw.get(SignBit) }

// SetSign sets or clears the sign flag (S).
func (psw *StatusWord) SetSign(v bool) { psw.set(SignBit, v) }

// Break flag (BRK). Single step trap.
func (psw StatusWord) Break() bool { return psw.get(BreakBit) }

// SetBreak sets or clears the break flag (BRK).
func (psw *StatusWord) SetBreak(v bool) { psw.set(BreakBit, v) }

// InterruptEnable flag (IE).
func (psw StatusWord) InterruptEnable() bool { return psw.get(InterruptEnableBit) }

// SetInterruptEnable sets or clears the interrupt enable flag (IE).
func (psw *StatusWord) SetInterruptEnable(v bool) { psw.set(InterruptEnableBit, v) }

// Direction flag (DIR). When set, block instructions decrement IX and IY.
func (psw StatusWord) Direction() bool { return psw.get(DirectionBit) }

// SetDirection sets or clears the direction flag (DIR).
func (psw *StatusWord) SetDirection(v bool) { psw.set(DirectionBit, v) }

// Overflow flag (V).
func (psw StatusWord) Overflow() bool { return psw.get(OverflowBit) }

// SetOverflow sets or clears the overflow flag (V).
func (psw *StatusWord) SetOverflow(v bool) { psw.set(OverflowBit, v) }

// EvenParity returns true if the number of set bits in the byte is even.
func EvenParity(v uint8) bool {
	return bits.OnesCount8(v)&1 == 0
}

// SetPZS sets the parity, zero and sign flags from a word result. Parity is
// always taken from the low byte.
func (psw *StatusWord) SetPZS(result uint16) {
	psw.SetParity(EvenParity(uint8(result)))
	psw.SetZero(result == 0)
	psw.SetSign(result&0x8000 == 0x8000)
}

// SetPZSCYV is like SetPZS but also sets the carry and overflow flags.
func (psw *StatusWord) SetPZSCYV(result uint16, carry bool, overflow bool) {
	psw.SetPZS(result)
	psw.SetCarry(carry)
	psw.SetOverflow(overflow)
}

// SetPZS8 sets the parity, zero and sign flags from a byte result.
func (psw *StatusWord) SetPZS8(result uint8) {
	psw.SetParity(EvenParity(result))
	psw.SetZero(result == 0)
	psw.SetSign(result&0x80 == 0x80)
}

// SetPZSCYV8 is like SetPZS8 but also sets the carry and overflow flags.
func (psw *StatusWord) SetPZSCYV8(result uint8, carry bool, overflow bool) {
	psw.SetPZS8(result)
	psw.SetCarry(carry)
	psw.SetOverflow(overflow)
}
