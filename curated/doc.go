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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are distinguished from one
// another by the pattern they were created with.
//
// Curated errors are created with the Errorf() function. The pattern string is
// formatted in the same way as fmt.Errorf() but it is also kept, so that the
// error can later be identified:
//
//	e := curated.Errorf("cpu: undefined instruction (%#02x)", opcode)
//
//	if curated.Is(e, "cpu: undefined instruction (%#02x)") {
//		fmt.Println("true")
//	}
//
// Packages that produce curated errors export the patterns as constants. For
// example, the cpu package exports DivideError and StackOverflow among others.
//
// The Has() function is similar to Is() but checks if a pattern occurs
// somewhere in the error chain. The first error in the values of a curated
// error is its cause. The chain follows causes through any error that
// implements Unwrap(), curated or not.
//
//	e := curated.Errorf("cpu: divide error at (%#05x)", addr)
//	f := curated.Errorf("emulation halted: %v", e)
//
//	curated.Has(f, "cpu: divide error at (%#05x)")  // true
//	curated.Is(f, "cpu: divide error at (%#05x)")   // false
//
// The message is formatted when the error is created. Two curated errors
// created with the same pattern and values can be compared with ==.
//
// The message is normalised the message by removing duplicate
// adjacent parts. This means that wrapping an error with a pattern that
// repeats the prefix of the wrapped error does not produce a stuttering
// message. For example, "cpu: cpu: stack overflow" becomes "cpu: stack
// overflow".
package curated
