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

// Package memory implements the physical address spaces of the V53. These
// are:
//
//	Conventional   1MiB   the 20 bit address space of the CPU
//	Extended     640KiB   the extended addressing (XA) bank
//	Ports         64KiB   the I/O space
//	Internal      256B    on-chip peripheral registers
//
// Memory is addressed physically. Segmentation is a function of the CPU and is
// not known to this package.
//
// When the XA flag is set, physical addresses below ExtendedSize are
// redirected to the extended bank. The XA flag is stored in the port space at
// XAPort, which is how the V53 exposes it to software.
package memory
