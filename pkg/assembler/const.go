// Copyright (C) 2021  Antonio Lassandro

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package assembler

// Opcodes maps every recognized SIC mnemonic to its 8-bit opcode value.
var Opcodes = map[string]uint8{
	"ADD":  0x18,
	"AND":  0x58,
	"COMP": 0x28,
	"DIV":  0x24,
	"J":    0x3C,
	"JEQ":  0x30,
	"JGT":  0x34,
	"JLT":  0x38,
	"JSUB": 0x48,
	"LDA":  0x00,
	"LDCH": 0x50,
	"LDL":  0x08,
	"LDX":  0x04,
	"MUL":  0x20,
	"OR":   0x44,
	"RD":   0xD8,
	"RSUB": 0x4C,
	"STA":  0x0C,
	"STCH": 0x54,
	"STL":  0x14,
	"STX":  0x10,
	"SUB":  0x1C,
	"TD":   0xE0,
	"TIX":  0x2C,
	"WD":   0xDC,
}

// Directives that the assembler consumes rather than the machine.
const (
	DirectiveStart = "START"
	DirectiveEnd   = "END"
	DirectiveWord  = "WORD"
	DirectiveResw  = "RESW"
	DirectiveResb  = "RESB"
	DirectiveByte  = "BYTE"
)

func isDirective(opcode string) bool {
	switch opcode {
	case DirectiveStart, DirectiveEnd, DirectiveWord, DirectiveResw,
		DirectiveResb, DirectiveByte:
		return true
	}
	return false
}

// Default limits from spec §6. pkg/config can override these at runtime.
const (
	DefaultMaxProgramSize   = 32768 // MSIZE, in bytes
	DefaultMaxSymbolLen     = 6
	DefaultMaxByteCharLen   = 30
	DefaultMaxByteHexDigits = 32
	DefaultTextRecordWidth  = 60 // hex characters, i.e. 30 bytes
)
