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
	"bufio"
	"fmt"
	"io"
)

// Block is the in-memory shape of the intermediate record described in
// spec §3: one block per source line, produced by pass 1 and consumed by
// pass 2. Address is rendered lowercase and unpadded, mirroring the
// reference implementation's raw iostream hex output; padding/uppercasing
// happens only when a value is emitted to the listing or object file.
type Block struct {
	Source  string
	Opcode  string
	Address string
	Operand string
	Errors  []ErrorCode
}

// HasErrors reports whether pass 1 attached any diagnostic to this line.
func (b Block) HasErrors() bool {
	return len(b.Errors) > 0
}

// hexAddr renders a location-counter value the way the reference
// implementation's default iostream hex formatting does: lowercase, no
// leading zeros.
func hexAddr(addr uint16) string {
	return fmt.Sprintf("%x", addr)
}

// writeBlock serializes a block as the five lines spec §3 describes.
func writeBlock(w io.Writer, b Block) error {
	var errs string
	for _, code := range b.Errors {
		errs += string(code)
	}

	_, err := fmt.Fprintf(w, "%s\n%s\n%s\n%s\n%s\n",
		b.Source, b.Opcode, b.Address, b.Operand, errs)
	return err
}

// readBlock consumes the next five-line block from s. The second return
// value is false at a clean end of stream (no more blocks); a non-nil
// error means the stream ended mid-block.
func readBlock(s *bufio.Scanner) (Block, bool, error) {
	var b Block

	if !s.Scan() {
		return b, false, s.Err()
	}
	b.Source = s.Text()

	lines := make([]string, 4)
	for i := range lines {
		if !s.Scan() {
			return b, true, fmt.Errorf("truncated intermediate block after %q", b.Source)
		}
		lines[i] = s.Text()
	}

	b.Opcode = lines[0]
	b.Address = lines[1]
	b.Operand = lines[2]
	b.Errors = parseErrorCodes(lines[3])

	return b, true, nil
}

// WriteIntermediate serializes blocks to w in pass 1's emission order, the
// exact on-disk shape of intermediate.txt described in spec §6.
func WriteIntermediate(w io.Writer, blocks []Block) error {
	for _, b := range blocks {
		if err := writeBlock(w, b); err != nil {
			return err
		}
	}
	return nil
}

// ReadIntermediate parses the block stream back out of r, in the same order
// pass 1 wrote it. It stops at a clean EOF; a block truncated mid-stream is
// reported as an error.
func ReadIntermediate(r io.Reader) ([]Block, error) {
	scanner := bufio.NewScanner(r)

	var blocks []Block
	for {
		b, more, err := readBlock(scanner)
		if err != nil {
			return blocks, err
		}
		if !more {
			return blocks, nil
		}
		blocks = append(blocks, b)
	}
}

const errorCodeWidth = 4

func parseErrorCodes(s string) []ErrorCode {
	if len(s) == 0 {
		return nil
	}
	codes := make([]ErrorCode, 0, len(s)/errorCodeWidth)
	for i := 0; i+errorCodeWidth <= len(s); i += errorCodeWidth {
		codes = append(codes, ErrorCode(s[i:i+errorCodeWidth]))
	}
	return codes
}
