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

// Package logger is the central log for the emulation. Entries are made of a
// tag and a detail string. The tag groups related entries, for example all
// entries made by the CPU use the tag "v53".
//
// Log requests must supply a Permission. This allows a caller to prevent
// logging in contexts where it would be noisy, for example while a REP loop is
// being stepped through by a debugging harness. The Allow value is suitable
// when a log entry should always be made.
//
// Consecutive identical entries are folded into one entry with a repeat
// count. The central log keeps only the most recent entries.
//
// A private log can be created with NewLogger(). This is useful for testing.
package logger
