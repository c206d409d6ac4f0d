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
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/mpcemu/v53/curated"
)

// Sentinal error patterns.
const (
	NoPrefsFile  = "prefs: no prefs file (%s)"
	InvalidEntry = "prefs: invalid entry (%s)"
)

// WarningBoilerPlate is the first line of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// separator between key and value on each line of the file.
const separator = " :: "

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, dsk.entries[k]))
	}
	return s.String()
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, fmt.Errorf("prefs: disk requires a path")
	}
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add preference value to list of values to store on disk. Keys must be
// unique and not contain the separator.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, strings.TrimSpace(separator)) {
		return curated.Errorf(InvalidEntry, key)
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(InvalidEntry, fmt.Sprintf("%s: key already added", key))
	}
	dsk.entries[key] = p
	return nil
}

func (dsk *Disk) keys() []string {
	k := make([]string, 0, len(dsk.entries))
	for n := range dsk.entries {
		k = append(k, n)
	}
	sort.Strings(k)
	return k
}

// Reset all preferences to their default values.
func (dsk *Disk) Reset() error {
	for _, k := range dsk.keys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return err
		}
	}
	return nil
}

// read the file on disk and return all entries in it.
func (dsk *Disk) read() (map[string]string, error) {
	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, curated.Errorf(NoPrefsFile, dsk.path)
		}
		return nil, fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	raw := make(map[string]string)

	scanner := bufio.NewScanner(f)

	// first line must be the boiler plate warning
	if !scanner.Scan() || scanner.Text() != WarningBoilerPlate {
		return nil, curated.Errorf(InvalidEntry, "missing header")
	}

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		p := strings.SplitN(line, separator, 2)
		if len(p) != 2 {
			return nil, curated.Errorf(InvalidEntry, line)
		}
		raw[p[0]] = p[1]
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("prefs: %w", err)
	}

	return raw, nil
}

// Load preferences from disk. Returns an error with the NoPrefsFile pattern
// if the file does not exist, which callers will often choose to ignore.
func (dsk *Disk) Load() error {
	raw, err := dsk.read()
	if err != nil {
		return err
	}

	for k, v := range raw {
		if p, ok := dsk.entries[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(InvalidEntry, fmt.Sprintf("%s: %v", k, err))
			}
		}
	}

	return nil
}

// Save current preference values to disk. Entries in the file that are not
// part of this Disk are preserved.
func (dsk *Disk) Save() error {
	raw, err := dsk.read()
	if err != nil {
		if !curated.Is(err, NoPrefsFile) {
			return err
		}
		raw = make(map[string]string)
	}

	for k, p := range dsk.entries {
		raw[k] = p.String()
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, raw[k]))
	}

	if err := os.WriteFile(dsk.path, []byte(s.String()), 0o600); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}
