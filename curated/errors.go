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

package curated

import (
	"errors"
	"fmt"
	"strings"
)

// curated is an implementation of the go language error interface. The
// message is formatted when the error is created so that two errors built
// from the same pattern and values compare as equal.
type curated struct {
	pattern string
	message string
	cause   error
}

// Errorf creates a new curated error.
//
// Note that unlike the Errorf() function in the fmt package the first argument
// is named "pattern" not "format". The pattern is used by Is() and Has() to
// identify the error. The first value that is itself an error becomes the
// cause of the new error.
func Errorf(pattern string, values ...any) error {
	er := curated{
		pattern: pattern,
		message: normalise(fmt.Sprintf(pattern, values...)),
	}
	for _, v := range values {
		if e, ok := v.(error); ok {
			er.cause = e
			break
		}
	}
	return er
}

// normalise removes duplicate adjacent parts from a chain of messages.
func normalise(s string) string {
	p := strings.Split(s, ": ")
	n := p[:1]
	for _, q := range p[1:] {
		if q != n[len(n)-1] {
			n = append(n, q)
		}
	}
	return strings.Join(n, ": ")
}

// Error implements the go language error interface.
func (er curated) Error() string {
	return er.message
}

// Unwrap returns the cause of the error, if there is one. This allows the
// standard errors.Is() and errors.As() functions to see through a curated
// error.
func (er curated) Unwrap() error {
	return er.cause
}

// IsAny checks if the error is a curated error.
func IsAny(err error) bool {
	_, ok := err.(curated)
	return ok
}

// Is checks if error is a curated error with a specific pattern.
func Is(err error, pattern string) bool {
	er, ok := err.(curated)
	return ok && er.pattern == pattern
}

// Has checks if a curated error with a specific pattern is anywhere in the
// chain of causes. The chain may pass through errors that are not curated.
func Has(err error, pattern string) bool {
	for ; err != nil; err = errors.Unwrap(err) {
		if Is(err, pattern) {
			return true
		}
	}
	return false
}

// Pattern returns the pattern the curated error was created with. The empty
// string is returned if the error is not curated.
func Pattern(err error) string {
	if er, ok := err.(curated); ok {
		return er.pattern
	}
	return ""
}
