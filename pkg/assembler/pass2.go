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

import (
	"bytes"
	"fmt"
)

// Pass2Result carries the listing and object bytes pass 2 produced. Object
// is only meaningful when AnyErrors is false -- per spec §7 an erroring
// assembly deletes its object file, which the caller does by simply not
// persisting Object.
type Pass2Result struct {
	Listing   []byte
	Object    []byte
	AnyErrors bool
}

// programName takes the leading run of a source line up to (not
// including) its first literal space -- the reference assembler does not
// treat tabs specially here, only the space character.
func programName(source string) string {
	if i := indexByteSpace(source); i >= 0 {
		return source[:i]
	}
	return source
}

func indexByteSpace(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' {
			return i
		}
	}
	return -1
}

// Pass2 synthesizes object code and the listing from pass 1's block
// stream, following spec §4.3's per-line algorithm exactly, including the
// text-record packing and deferred-reopen quirks around RESW/RESB.
func Pass2(blocks []Block, symtab *SymbolTable, startAddress uint16, programLength, finalLocCtr int, limits Limits) Pass2Result {
	var listing bytes.Buffer
	var object bytes.Buffer

	anyErrors := false
	startSet := false
	endFound := false
	makeNewTextRec := false
	var pending *textRecord

	for _, b := range blocks {
		if b.HasErrors() {
			anyErrors = true
		}

		if b.Opcode == DirectiveStart {
			writeListingRow(&listing, b.Address, "", b.Source, b.Errors)
			if !startSet {
				writeHeaderRecord(&object, programName(b.Source), b.Address, programLength)
				pending = newTextRecord(b.Address)
			}
			startSet = true
			continue
		}

		if !startSet {
			startSet = true
			writeHeaderRecord(&object, "NONAME", "0", programLength)
			pending = newTextRecord(b.Address)
		}

		if b.Opcode == DirectiveEnd {
			pending.Flush(&object)
			writeListingRow(&listing, "", "", b.Source, b.Errors)
			writeEndRecord(&object, startAddress)
			endFound = true
			break
		}

		objectCode := "------"
		if !b.HasErrors() {
			objectCode = synthesizeObjectCode(b.Opcode, b.Operand, symtab)
		}

		writeListingRow(&listing, b.Address, objectCode, b.Source, b.Errors)

		bufferSize := pending.Len()
		totalChars := len(objectCode) + bufferSize

		if objectCode != "" && makeNewTextRec {
			pending = newTextRecord(b.Address)
			makeNewTextRec = false
		}

		if objectCode == "" || totalChars > limits.TextRecordWidth {
			if bufferSize != 0 {
				pending.Flush(&object)
				if objectCode != "" {
					pending = newTextRecord(b.Address)
				} else {
					makeNewTextRec = true
				}
			}
		}

		if objectCode != "" {
			pending.Append(objectCode)
		}
	}

	if finalLocCtr > limits.MaxProgramSize {
		fmt.Fprintf(&listing, "\nFATAL ERROR\nProgram exceeds maximum memory capacity of %d bytes\n"+
			" Last program address is: %d", limits.MaxProgramSize, finalLocCtr)
		anyErrors = true
	}

	if !endFound {
		listing.WriteString("Error: Missing END directive\n")
		anyErrors = true
	}

	return Pass2Result{
		Listing:   listing.Bytes(),
		Object:    object.Bytes(),
		AnyErrors: anyErrors,
	}
}
