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

package test

import "strings"

// CompareWriter captures output written to it so that it can be compared
// with an expected string. A trace written by the CPU is the usual example.
type CompareWriter struct {
	b strings.Builder
}

// Write implements the io.Writer interface.
func (tw *CompareWriter) Write(p []byte) (int, error) {
	return tw.b.Write(p)
}

// Clear discards everything written so far.
func (tw *CompareWriter) Clear() {
	tw.b.Reset()
}

// Compare returns true if the captured output is exactly s.
func (tw *CompareWriter) Compare(s string) bool {
	return tw.b.String() == s
}

// String implements the fmt.Stringer interface.
func (tw *CompareWriter) String() string {
	return tw.b.String()
}
