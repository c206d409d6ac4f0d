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
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mpcemu/v53/curated"
	"github.com/mpcemu/v53/hardware/cpu/execution"
	"github.com/mpcemu/v53/hardware/cpu/instructions"
	"github.com/mpcemu/v53/hardware/cpu/registers"
	"github.com/mpcemu/v53/hardware/memory"
	"github.com/mpcemu/v53/hardware/preferences"
	"github.com/mpcemu/v53/logger"
)

// the value of PS after a reset. execution begins at physical address 0xffff0
const resetSegment = 0xffff

// the value of the opcode field after a reset
const resetOpcode = 0xf1

// CPU implements the NEC V53 microprocessor.
type CPU struct {
	prefs *preferences.Preferences
	mem   *memory.Memory

	// general purpose registers
	AW registers.Register
	BW registers.Register
	CW registers.Register
	DW registers.Register

	// pointer and index registers
	SP registers.Register
	BP registers.Register
	IX registers.Register
	IY registers.Register

	// segment registers
	PS  registers.Register
	SS  registers.Register
	DS0 registers.Register
	DS1 registers.Register

	PC  registers.Register
	PSW registers.StatusWord

	// segment override latch. reset after every instruction that is not a
	// segment override prefix
	segment Segment

	opcode uint8
	clock  uint64

	// alignment cycles for stack accesses made by the current instruction
	stackCycles uint64

	// Halted is set by the HALT instruction. Step() does nothing while the CPU
	// is halted
	Halted bool

	// information about the last instruction executed
	LastResult execution.Result

	observers map[uint16][]PortObserver

	// the first error returned by Step(). the CPU will not execute any more
	// instructions once this is set
	fault error

	trace io.Writer
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// image is copied to the start of memory. Preferences can be nil, in which
// case the default preferences are used.
func NewCPU(prefs *preferences.Preferences, image []uint8) (*CPU, error) {
	mem, err := memory.NewMemory(image)
	if err != nil {
		return nil, curated.Errorf("cpu: %v", err)
	}

	if prefs == nil {
		prefs, err = preferences.NewPreferences("")
		if err != nil {
			return nil, curated.Errorf("cpu: %v", err)
		}
	}

	mc := &CPU{
		prefs:     prefs,
		mem:       mem,
		AW:        registers.NewRegister(0, "AW"),
		BW:        registers.NewRegister(0, "BW"),
		CW:        registers.NewRegister(0, "CW"),
		DW:        registers.NewRegister(0, "DW"),
		SP:        registers.NewRegister(0, "SP"),
		BP:        registers.NewRegister(0, "BP"),
		IX:        registers.NewRegister(0, "IX"),
		IY:        registers.NewRegister(0, "IY"),
		PS:        registers.NewRegister(0, "PS"),
		SS:        registers.NewRegister(0, "SS"),
		DS0:       registers.NewRegister(0, "DS0"),
		DS1:       registers.NewRegister(0, "DS1"),
		PC:        registers.NewRegister(0, "PC"),
		PSW:       registers.NewStatusWord(),
		observers: make(map[uint16][]PortObserver),
		trace:     os.Stdout,
	}

	mc.Reset()

	logger.Logf(logger.Allow, "v53", "cpu created with %d byte image", len(image))

	return mc, nil
}

// Reset CPU to power-on state. Memory is not changed but the XA flag is
// cleared.
func (mc *CPU) Reset() {
	mc.AW.Load(0)
	mc.BW.Load(0)
	mc.CW.Load(0)
	mc.DW.Load(0)
	mc.SP.Load(0)
	mc.BP.Load(0)
	mc.IX.Load(0)
	mc.IY.Load(0)
	mc.PS.Load(resetSegment)
	mc.SS.Load(0)
	mc.DS0.Load(0)
	mc.DS1.Load(0)
	mc.PC.Load(0)
	mc.PSW.Reset()
	mc.segment = NoOverride
	mc.opcode = resetOpcode
	mc.clock = 0
	mc.Halted = false
	mc.fault = nil
	mc.LastResult.Reset()
	mc.mem.SetXA(false)
}

func (mc *CPU) String() string {
	s := strings.Builder{}
	for _, r := range []registers.Register{mc.AW, mc.BW, mc.CW, mc.DW, mc.SP, mc.BP, mc.IX, mc.IY, mc.PS, mc.SS, mc.DS0, mc.DS1, mc.PC} {
		s.WriteString(r.String())
		s.WriteString(" ")
	}
	s.WriteString(mc.PSW.Label())
	s.WriteString("=")
	s.WriteString(mc.PSW.String())
	return s.String()
}

// Clock returns the number of cycles executed since the last reset.
func (mc *CPU) Clock() uint64 {
	return mc.clock
}

// Opcode returns the most recently fetched opcode.
func (mc *CPU) Opcode() uint8 {
	return mc.opcode
}

// Fault returns the error that stopped the CPU, or nil if the CPU is still
// running.
func (mc *CPU) Fault() error {
	return mc.fault
}

// Memory returns the conventional memory array. The slice should be
// considered read-only.
func (mc *CPU) Memory() []uint8 {
	return mc.mem.Conventional[:]
}

// Extended returns the extended memory array. The slice should be considered
// read-only.
func (mc *CPU) Extended() []uint8 {
	return mc.mem.Extended[:]
}

// Ports returns the I/O port array. The slice should be considered read-only.
func (mc *CPU) Ports() []uint8 {
	return mc.mem.Ports[:]
}

// Internal returns the array of on-chip peripheral registers. The slice
// should be considered read-only.
func (mc *CPU) Internal() []uint8 {
	return mc.mem.Internal[:]
}

// XA returns the state of the extended addressing flag.
func (mc *CPU) XA() bool {
	return mc.mem.XA()
}

// SetTraceOutput sets the io.Writer used for trace output. The default is
// os.Stdout.
func (mc *CPU) SetTraceOutput(w io.Writer) {
	mc.trace = w
}

// Step executes a single instruction. A trace is written if the trace
// preference is set.
func (mc *CPU) Step() error {
	return mc.StepDebug(mc.prefs.Trace.Get().(bool))
}

// StepDebug executes a single instruction. If debug is true then a trace of
// the instruction is written to the trace output.
func (mc *CPU) StepDebug(debug bool) error {
	if mc.fault != nil {
		return mc.fault
	}

	if mc.Halted {
		return nil
	}

	var state string
	if debug {
		state = mc.traceState()
	}

	mc.LastResult.Reset()
	mc.LastResult.Address = mc.ProgramAddress()
	mc.LastResult.Clock = mc.clock

	mc.stackCycles = 0
	mc.opcode = mc.next8()
	mc.LastResult.Defn = instructions.Lookup(mc.opcode)

	cycles, err := dispatch[mc.opcode](mc)
	cycles += mc.stackCycles

	mc.clock += cycles
	mc.LastResult.Cycles = cycles
	mc.LastResult.Final = true

	if !instructions.IsSegmentPrefix(mc.opcode) {
		mc.segment = NoOverride
	}

	if debug {
		mc.writeTrace(state)
	}

	if err != nil {
		mc.fault = err
		logger.Log(logger.Allow, "v53", err)
		return err
	}

	return nil
}

// Run steps the CPU until an error occurs, the CPU halts or the continue
// function returns false. The continue function is called before every
// instruction.
func (mc *CPU) Run(cont func() bool) error {
	for !mc.Halted && (cont == nil || cont()) {
		if err := mc.Step(); err != nil {
			return err
		}
	}
	return nil
}

// GoString returns the state of the CPU in a form suitable for debugging.
func (mc *CPU) GoString() string {
	return fmt.Sprintf("%s clock=%d segment=%s xa=%v", mc.String(), mc.clock, mc.segment, mc.XA())
}
