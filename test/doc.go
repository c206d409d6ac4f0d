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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a failure with t.Errorf() and allow the test
// to continue. The Demand*() functions report with t.Fatalf() and should be
// used when later tests depend on the value being correct.
//
// ExpectSuccess() and ExpectFailure() test for success under generic
// conditions. Currently supported types are bool and error. It is worth
// describing how the nil type is handled because it is not obvious. The nil
// type is considered a success, because of how errors usually work (nil to
// indicate no error).
//
// ExpectDiff() compares structured values, such as register snapshots, and
// reports the difference between them.
//
// The CompareWriter type implements the io.Writer interface and should be used
// to capture output for comparison.
//
// All functions accept an optional list of tags. These are printed as a
// prefix of any failure message and help identify which iteration of a table
// driven test has failed.
package test
