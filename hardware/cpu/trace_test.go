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

package cpu_test

import (
	"strings"
	"testing"

	"github.com/mpcemu/v53/hardware/cpu"
	"github.com/mpcemu/v53/hardware/preferences"
	"github.com/mpcemu/v53/logger"
	"github.com/mpcemu/v53/test"
)

func TestTraceOutput(t *testing.T) {
	prefs, err := preferences.NewPreferences("")
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, prefs.StackRows.Set(1))

	mc, err := cpu.NewCPU(prefs, []uint8{0xba, 0x88, 0x88})
	test.DemandSuccess(t, err)
	mc.PS.Load(0)

	w := &test.CompareWriter{}
	mc.SetTraceOutput(w)

	test.DemandSuccess(t, mc.StepDebug(true))

	expected := "\n           AW   BW   CW   DW   DS0  DS1  BP   IX   IY   SS   SP   PS   PC   " +
		"\n           0000 0000 0000 0000 0000 0000 0000 0000 0000 0000:0000 0000:0000" +
		"\n           V=0 DIR=0 IE=0 BRK=0 S=0 Z=0 AC=0 P=1 CY=0" +
		"\n     0| ba 88 88" + strings.Repeat(" 00", 13) +
		"\n\n         0 00000  MOV DW,imm16     [BA 88 88]\n"

	if !w.Compare(expected) {
		t.Errorf("unexpected trace output:\n%q\nwanted:\n%q", w.String(), expected)
	}
}

func TestTraceShowsStateBeforeExecution(t *testing.T) {
	mc := newCPU(t, 0xb8, 0x34, 0x12)
	w := &test.CompareWriter{}
	mc.SetTraceOutput(w)

	test.DemandSuccess(t, mc.StepDebug(true))
	test.ExpectSuccess(t, strings.Contains(w.String(), "\n           0000 0000"))
	test.ExpectSuccess(t, strings.HasSuffix(w.String(), "[B8 34 12]\n"))
	test.ExpectEquality(t, mc.AW.Value(), 0x1234)
}

func TestTraceStackBeforeExecution(t *testing.T) {
	prefs, err := preferences.NewPreferences("")
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, prefs.StackRows.Set(1))

	// PUSH AW
	mc, err := cpu.NewCPU(prefs, []uint8{0x50})
	test.DemandSuccess(t, err)
	mc.PS.Load(0)
	mc.SP.Load(0x0102)
	mc.AW.Load(0xbeef)

	w := &test.CompareWriter{}
	mc.SetTraceOutput(w)

	test.DemandSuccess(t, mc.StepDebug(true))
	test.ExpectEquality(t, mc.Memory()[0x100], 0xef)
	test.ExpectSuccess(t, strings.Contains(w.String(), "\n   100|"+strings.Repeat(" 00", 16)))
}

func TestTracePreference(t *testing.T) {
	prefs, err := preferences.NewPreferences("")
	test.DemandSuccess(t, err)

	mc, err := cpu.NewCPU(prefs, []uint8{0x90, 0x90})
	test.DemandSuccess(t, err)
	mc.PS.Load(0)

	w := &test.CompareWriter{}
	mc.SetTraceOutput(w)

	test.DemandSuccess(t, mc.Step())
	test.ExpectEquality(t, w.String(), "")

	test.DemandSuccess(t, prefs.Trace.Set(true))
	test.DemandSuccess(t, mc.Step())
	test.ExpectSuccess(t, strings.HasSuffix(w.String(), "NOP              [90]\n"))
}

func TestHaltIsLogged(t *testing.T) {
	logger.Clear()

	mc := newCPU(t, 0xf4)
	step(t, mc)

	entries := logger.Entries()
	test.DemandSuccess(t, len(entries) > 0)
	last := entries[len(entries)-1]
	test.ExpectEquality(t, last.Tag, "v53")
	test.ExpectSuccess(t, strings.HasPrefix(last.Detail, "HALT"))
}
