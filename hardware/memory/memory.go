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

package memory

import (
	"github.com/mpcemu/v53/curated"
)

// Sizes of the address spaces.
const (
	ConventionalSize = 0x100000
	ExtendedSize     = 0xa0000
	PortsSize        = 0x10000
	InternalSize     = 0x100
)

// AddressMask limits a physical address to the 20 bit address space.
const AddressMask = ConventionalSize - 1

// XAPort is the port at which the extended addressing flag is stored.
const XAPort = 0xff80

// Sentinal error patterns.
const (
	ImageTooLarge = "memory: image too large (%#x bytes, maximum %#x)"
)

// Memory is the physical memory of the V53.
type Memory struct {
	Conventional [ConventionalSize]uint8
	Extended     [ExtendedSize]uint8
	Ports        [PortsSize]uint8
	Internal     [InternalSize]uint8
}

// NewMemory is the preferred method of initialisation for Memory. The image
// is copied to conventional memory starting at address zero. All other memory
// is zeroed. An image larger than conventional memory is an error.
func NewMemory(image []uint8) (*Memory, error) {
	if len(image) > ConventionalSize {
		return nil, curated.Errorf(ImageTooLarge, len(image), ConventionalSize)
	}
	mem := &Memory{}
	copy(mem.Conventional[:], image)
	return mem, nil
}

// XA returns the state of the extended addressing flag.
func (mem *Memory) XA() bool {
	return mem.Ports[XAPort] != 0
}

// SetXA sets or clears the extended addressing flag.
func (mem *Memory) SetXA(xa bool) {
	if xa {
		mem.Ports[XAPort] = 1
	} else {
		mem.Ports[XAPort] = 0
	}
}

// Read a byte from the physical address. The address is masked to 20 bits.
func (mem *Memory) Read(address uint32) uint8 {
	address &= AddressMask
	if address < ExtendedSize && mem.XA() {
		return mem.Extended[address]
	}
	return mem.Conventional[address]
}

// Write a byte to the physical address. The address is masked to 20 bits.
func (mem *Memory) Write(address uint32, data uint8) {
	address &= AddressMask
	if address < ExtendedSize && mem.XA() {
		mem.Extended[address] = data
		return
	}
	mem.Conventional[address] = data
}

// In reads a byte from the port space.
func (mem *Memory) In(port uint16) uint8 {
	return mem.Ports[port]
}

// Out writes a byte to the port space.
func (mem *Memory) Out(port uint16, data uint8) {
	mem.Ports[port] = data
}
