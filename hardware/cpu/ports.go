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

package cpu

import (
	"github.com/mpcemu/v53/logger"
)

// State is a read-only view of the CPU given to port observers. It has no
// methods that change the CPU so an observer cannot cause another
// instruction to be executed.
type State interface {
	Snapshot() Snapshot
	Clock() uint64
	Opcode() uint8
	Port(port uint16) uint8
	Physical(address uint32) uint8
	SegmentOverride() Segment
	XA() bool
}

// view implements the State interface. the CPU itself is not passed to
// observers because the CPU has mutating methods.
type view struct {
	mc *CPU
}

func (v view) Snapshot() Snapshot            { return v.mc.Snapshot() }
func (v view) Clock() uint64                 { return v.mc.Clock() }
func (v view) Opcode() uint8                 { return v.mc.Opcode() }
func (v view) Port(port uint16) uint8        { return v.mc.mem.In(port) }
func (v view) Physical(address uint32) uint8 { return v.mc.Physical(address) }
func (v view) SegmentOverride() Segment      { return v.mc.SegmentOverride() }
func (v view) XA() bool                      { return v.mc.XA() }

// PortObserver is notified after a byte has been written to a port.
type PortObserver interface {
	PortWritten(cpu State, port uint16, data uint8)
}

// PortObserverFunc allows an ordinary function to be used as a PortObserver.
type PortObserverFunc func(cpu State, port uint16, data uint8)

// PortWritten implements the PortObserver interface.
func (f PortObserverFunc) PortWritten(cpu State, port uint16, data uint8) {
	f(cpu, port, data)
}

// OnOutput registers an observer for writes to the port. Observers for the
// same port are called in the order in which they were registered.
func (mc *CPU) OnOutput(port uint16, observer PortObserver) {
	mc.observers[port] = append(mc.observers[port], observer)
	logger.Logf(logger.Allow, "v53", "observer added for port %04X", port)
}

// In8 reads a byte from the port.
func (mc *CPU) In8(port uint16) uint8 {
	return mc.mem.In(port)
}

// In16 reads a little-endian word from the port and the port following it.
func (mc *CPU) In16(port uint16) uint16 {
	return uint16(mc.mem.In(port+1))<<8 | uint16(mc.mem.In(port))
}

// Out8 writes a byte to the port. Observers of the port are called after the
// write.
func (mc *CPU) Out8(port uint16, data uint8) {
	xa := mc.mem.XA()
	mc.mem.Out(port, data)
	if xa != mc.mem.XA() {
		logger.Logf(logger.Allow, "v53", "XA set to %v by port write", mc.mem.XA())
	}
	for _, o := range mc.observers[port] {
		o.PortWritten(view{mc: mc}, port, data)
	}
}

// Out16 writes a little-endian word to the port and the port following it.
func (mc *CPU) Out16(port uint16, data uint16) {
	mc.Out8(port, uint8(data))
	mc.Out8(port+1, uint8(data>>8))
}
