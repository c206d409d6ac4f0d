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

// Package preferences collates the preference values used by the emulated
// hardware. The values can be persisted to disk with the prefs package.
package preferences

import (
	"os"

	"github.com/mpcemu/v53/curated"
	"github.com/mpcemu/v53/logger"
	"github.com/mpcemu/v53/prefs"
)

// DefaultStackRows is the number of stack rows shown by the trace output.
const DefaultStackRows = 4

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	dsk *prefs.Disk

	// trace every instruction executed by Step()
	Trace prefs.Bool

	// number of 16 byte rows of the stack shown in each trace record
	StackRows prefs.Int

	// echo log entries to stderr as they are made
	EchoLog prefs.Bool
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return ""
	}
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. If path is empty then the preferences are not backed by a
// file and the Load() and Save() functions do nothing.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}

	p.EchoLog.SetHookPost(func(v prefs.Value) error {
		if v.(bool) {
			logger.SetEcho(os.Stderr)
		} else {
			logger.SetEcho(nil)
		}
		return nil
	})

	if err := p.SetDefaults(); err != nil {
		return nil, err
	}

	if path == "" {
		return p, nil
	}

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("cpu.trace", &p.Trace)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("cpu.stackrows", &p.StackRows)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("logger.echo", &p.EchoLog)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Load()
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() error {
	if err := p.Trace.Set(false); err != nil {
		return err
	}
	if err := p.StackRows.Set(DefaultStackRows); err != nil {
		return err
	}
	return p.EchoLog.Set(false)
}

// Load current preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load()
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
