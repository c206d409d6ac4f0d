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

// decimalAdjust executes ADJ4A (0x27) and ADJ4S (0x2f), the packed BCD
// adjustments after addition and subtraction.
func decimalAdjust(mc *CPU) (uint64, error) {
	orig := mc.AW.Lo()
	al := orig
	cy := mc.PSW.Carry()
	sub := mc.opcode == 0x2f

	if al&0x0f > 0x09 || mc.PSW.AuxCarry() {
		if sub {
			al -= 0x06
		} else {
			al += 0x06
		}
		mc.PSW.SetAuxCarry(true)
	} else {
		mc.PSW.SetAuxCarry(false)
	}

	if orig > 0x99 || cy {
		if sub {
			al -= 0x60
		} else {
			al += 0x60
		}
		mc.PSW.SetCarry(true)
	} else {
		mc.PSW.SetCarry(false)
	}

	mc.AW.LoadLo(al)
	mc.PSW.SetPZS8(al)
	return 3, nil
}

// asciiAdjust executes ADJBA (0x37) and ADJBS (0x3f), the unpacked BCD
// adjustments after addition and subtraction.
func asciiAdjust(mc *CPU) (uint64, error) {
	al := mc.AW.Lo()
	ah := mc.AW.Hi()

	if al&0x0f > 0x09 || mc.PSW.AuxCarry() {
		if mc.opcode == 0x3f {
			al -= 0x06
			ah--
		} else {
			al += 0x06
			ah++
		}
		mc.PSW.SetAuxCarry(true)
		mc.PSW.SetCarry(true)
	} else {
		mc.PSW.SetAuxCarry(false)
		mc.PSW.SetCarry(false)
	}

	mc.AW.LoadLo(al & 0x0f)
	mc.AW.LoadHi(ah)
	return 7, nil
}

// convertBinaryToDecimal executes CVTBD (0xd4). the immediate byte is part of
// the encoding but the conversion is always decimal.
func convertBinaryToDecimal(mc *CPU) (uint64, error) {
	_ = mc.next8()
	al := mc.AW.Lo()
	mc.AW.LoadHi(al / 10)
	mc.AW.LoadLo(al % 10)
	mc.PSW.SetPZS8(mc.AW.Lo())
	return 15, nil
}

// convertDecimalToBinary executes CVTDB (0xd5). the immediate byte is part of
// the encoding but the conversion is always decimal.
func convertDecimalToBinary(mc *CPU) (uint64, error) {
	_ = mc.next8()
	al := mc.AW.Hi()*10 + mc.AW.Lo()
	mc.AW.Load(uint16(al))
	mc.PSW.SetPZS8(al)
	return 7, nil
}
