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

// Package registers implements the registers of the V53 CPU. The general
// purpose, pointer, index and segment registers are all instances of the
// Register type. The PSW is implemented by the StatusWord type.
//
// The general purpose registers (AW, BW, CW, DW) can be accessed as two bytes
// with the Hi() and Lo() functions. These are views of the same 16 bits and
// are not separate storage:
//
//	aw.Load(0x1234)
//	aw.LoadLo(0xff)
//	aw.Value() == 0x12ff
//
// Registers do not touch the PSW. The CPU decides which flags are affected by
// an operation and updates the StatusWord using the values returned by the
// register functions. For instance:
//
//	carry, overflow := cw.Decrement()
//	psw.SetPZSCYV(cw.Value(), carry, overflow)
package registers
