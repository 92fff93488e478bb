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

package assembler_test

import (
	"strings"
	"testing"

	"github.com/go-sic/sicasm/pkg/assembler"
)

func assemble(t *testing.T, src string) (assembler.Pass1Result, assembler.Pass2Result) {
	t.Helper()
	limits := assembler.DefaultLimits()
	p1 := assembler.Pass1(strings.NewReader(src), limits)
	p2 := assembler.Pass2(p1.Blocks, p1.Symbols, p1.StartAddress, p1.ProgramLength, p1.FinalLocCtr, limits)
	return p1, p2
}

func TestPass2MinimalProgramRecords(t *testing.T) {
	src := "COPY    START   1000\n" +
		"FIRST   LDA     0001\n" +
		"        END     FIRST\n"

	_, p2 := assemble(t, src)

	if p2.AnyErrors {
		t.Fatalf("want clean assembly, have errors in listing:\n%s", p2.Listing)
	}

	object := string(p2.Object)

	if !strings.Contains(object, "HCOPY  001000000003") {
		t.Fatalf("want header record for COPY at 001000 length 3, have:\n%s", object)
	}
	if !strings.Contains(object, "T00100003000001") {
		t.Fatalf("want text record 00100003000001, have:\n%s", object)
	}
	if !strings.HasSuffix(object, "E001000") {
		t.Fatalf("want object program to end with E001000 and no trailing newline, have:\n%q", object)
	}
}

func TestPass2DuplicateLabelDiscardsObject(t *testing.T) {
	src := "PROG    START   0\n" +
		"X       WORD    5\n" +
		"X       WORD    5\n" +
		"        END     PROG\n"

	_, p2 := assemble(t, src)

	if !p2.AnyErrors {
		t.Fatal("want AnyErrors true for a program with a duplicate label")
	}
}

func TestPass2ReserveFlushesTextRecord(t *testing.T) {
	src := "PROG    START   0\n" +
		"X       LDA     Y\n" +
		"        RESW    1\n" +
		"Y       LDA     X\n" +
		"        END     PROG\n"

	_, p2 := assemble(t, src)

	if p2.AnyErrors {
		t.Fatalf("want clean assembly, have errors in listing:\n%s", p2.Listing)
	}

	count := strings.Count(string(p2.Object), "\nT") + boolToInt(strings.HasPrefix(string(p2.Object), "T"))
	if count < 2 {
		t.Fatalf("want at least two text records around the reserved word, have object:\n%s", p2.Object)
	}
}

func TestPass2ReserveImmediatelyBeforeEndEmitsOnce(t *testing.T) {
	// The code-bearing line is the last one before a reserve, and the
	// reserve is immediately followed by END: END's unconditional flush
	// must be a no-op here, not a re-emission of the record the reserve
	// already flushed.
	src := "PROG    START   0\n" +
		"FIRST   LDA     FIRST\n" +
		"BUF     RESW    1\n" +
		"        END     FIRST\n"

	_, p2 := assemble(t, src)

	if p2.AnyErrors {
		t.Fatalf("want clean assembly, have errors in listing:\n%s", p2.Listing)
	}

	object := string(p2.Object)
	const wantRecord = "T00000003000000"

	if count := strings.Count(object, wantRecord); count != 1 {
		t.Fatalf("want %q exactly once, have it %d times in object:\n%s", wantRecord, count, object)
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func TestPass2IndexedOperand(t *testing.T) {
	src := "PROG    START   0\n" +
		"        LDA     BUFFER,X\n" +
		"BUFFER  RESB    10\n" +
		"        END     PROG\n"

	_, p2 := assemble(t, src)

	if p2.AnyErrors {
		t.Fatalf("want clean assembly, have errors in listing:\n%s", p2.Listing)
	}

	// BUFFER is defined right after the single 3-byte LDA instruction, so it
	// resolves to address 0x0003; the index bit (0x8000) ORs into that.
	if !strings.Contains(string(p2.Object), "008003") {
		t.Fatalf("want indexed object code 008003, have:\n%s", p2.Object)
	}
}

func TestPass2OversizedProgramAppendsFatalError(t *testing.T) {
	src := "BIG     START   7FFF\n" +
		"        WORD    1\n" +
		"        END     BIG\n"

	_, p2 := assemble(t, src)

	if !p2.AnyErrors {
		t.Fatal("want AnyErrors true for a program exceeding maximum memory capacity")
	}
	if !strings.Contains(string(p2.Listing), "FATAL ERROR") {
		t.Fatalf("want a FATAL ERROR notice in the listing, have:\n%s", p2.Listing)
	}
}

func TestPass2MissingEndDirective(t *testing.T) {
	src := "PROG    START   0\n" +
		"X       WORD    5\n"

	_, p2 := assemble(t, src)

	if !p2.AnyErrors {
		t.Fatal("want AnyErrors true when END is missing")
	}
	if !strings.Contains(string(p2.Listing), "Missing END directive") {
		t.Fatalf("want a missing-END notice in the listing, have:\n%s", p2.Listing)
	}
}
