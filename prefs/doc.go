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

// Package prefs facilitates the storage of preferential values in the v53
// system. It is intended to be used by packages that need to store user
// preferences, for example the hardware/preferences package.
//
// Preference values are typed (Bool, Int and String). Each type implements
// the pref interface and can be added to a Disk instance with a unique key.
// The Disk instance saves and loads the values to and from a file on disk.
//
// The file format is one preference per line, in the form:
//
//	key :: value
//
// Saving a Disk instance preserves entries in the file that belong to other
// Disk instances. This means that more than one package can use the same
// preferences file.
package prefs
