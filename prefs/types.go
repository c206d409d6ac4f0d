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

package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// Value represents the actual Go preference value.
type Value any

// types supported by the prefs system must implement the pref interface.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// typed is the storage shared by all preference types. The zero value of T is
// the value of a preference that has never been set.
type typed[T any] struct {
	value    atomic.Value
	hookPost func(value Value) error
}

func (p *typed[T]) load() T {
	if v, ok := p.value.Load().(T); ok {
		return v
	}
	var zero T
	return zero
}

func (p *typed[T]) store(v T) error {
	p.value.Store(v)
	if p.hookPost != nil {
		return p.hookPost(v)
	}
	return nil
}

func (p *typed[T]) String() string {
	return fmt.Sprint(p.load())
}

// Get returns the raw pref value.
func (p *typed[T]) Get() Value {
	return p.load()
}

// Reset sets the value to the zero value for the type.
func (p *typed[T]) Reset() error {
	var zero T
	return p.store(zero)
}

// SetHookPost sets the callback function to be called just after the value
// is updated. The callback is called even if the value hasn't changed.
func (p *typed[T]) SetHookPost(f func(value Value) error) {
	p.hookPost = f
}

// Bool implements a boolean type in the prefs system.
type Bool struct {
	typed[bool]
}

// Set new value to Bool type. New value must be of type bool or string. A
// string value of anything other than "true" (case insensitive) will set the
// value to false.
func (p *Bool) Set(v Value) error {
	switch v := v.(type) {
	case bool:
		return p.store(v)
	case string:
		return p.store(strings.EqualFold(strings.TrimSpace(v), "true"))
	}
	return fmt.Errorf("prefs: cannot convert %T to prefs.Bool", v)
}

// Int implements an integer type in the prefs system.
type Int struct {
	typed[int]
}

// Set new value to Int type. New value can be an int or string.
func (p *Int) Set(v Value) error {
	switch v := v.(type) {
	case int:
		return p.store(v)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("prefs: cannot convert %T to prefs.Int: %w", v, err)
		}
		return p.store(n)
	}
	return fmt.Errorf("prefs: cannot convert %T to prefs.Int", v)
}

// String implements a string type in the prefs system. Any value can be set
// and is stored in its default formatting.
type String struct {
	typed[string]
}

// Set new value to String type.
func (p *String) Set(v Value) error {
	return p.store(fmt.Sprint(v))
}
