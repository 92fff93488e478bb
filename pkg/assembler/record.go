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
	"fmt"
	"io"
	"strings"

	"github.com/go-sic/sicasm/pkg/encoding"
)

// writeHeaderRecord emits the H record per spec §4.5: program name padded
// (never truncated) to 6 characters, start address and program length as
// 6-digit uppercase zero-padded hex.
func writeHeaderRecord(w io.Writer, progName, startAddr string, progLen int) error {
	addrVal, _ := encoding.DecodeBase(startAddr, 16)
	_, err := fmt.Fprintf(w, "H%-6s%06X%06X\n", progName, addrVal, progLen)
	return err
}

// writeEndRecord emits the E record. Unlike H and T records it carries no
// trailing newline, matching the reference implementation's object file,
// which ends immediately after the E record's six digits.
func writeEndRecord(w io.Writer, startAddr uint16) error {
	_, err := fmt.Fprintf(w, "E%06X", startAddr)
	return err
}

// textRecord accumulates object code destined for a single T record.
type textRecord struct {
	address string
	code    strings.Builder
}

func newTextRecord(address string) *textRecord {
	return &textRecord{address: address}
}

func (t *textRecord) Len() int { return t.code.Len() }

func (t *textRecord) Empty() bool { return t.code.Len() == 0 }

func (t *textRecord) Append(hex string) { t.code.WriteString(hex) }

// Flush writes the accumulated T record, if non-empty, to w.
func (t *textRecord) Flush(w io.Writer) error {
	if t.Empty() {
		return nil
	}

	addrVal, _ := encoding.DecodeBase(t.address, 16)
	body := strings.ToUpper(t.code.String())

	_, err := fmt.Fprintf(w, "T%06X%02X%s\n", addrVal, len(body)/2, body)
	t.code.Reset()
	return err
}

func padLeft(s string, width int, fill byte) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(string(fill), width-len(s)) + s
}

func padRight(s string, width int, fill byte) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(string(fill), width-len(s))
}

// writeListingRow emits one listing line per spec §4.6.
func writeListingRow(w io.Writer, address, objectCode, source string, errs []ErrorCode) error {
	addrField := strings.ToUpper(address)
	fill := byte('0')
	if addrField == "" {
		fill = ' '
	}
	addrField = padLeft(addrField, 4, fill)

	objField := padRight(strings.ToUpper(objectCode), 8, ' ')

	var b strings.Builder
	b.WriteString(addrField)
	b.WriteByte(' ')
	b.WriteString(objField)
	b.WriteByte(' ')
	b.WriteString(source)

	if len(errs) > 0 {
		b.WriteString("\tErrors: ")
		for _, code := range errs {
			b.WriteString(describeError(code))
			b.WriteString(", ")
		}
	}

	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}
