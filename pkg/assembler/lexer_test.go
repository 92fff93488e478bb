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

import "testing"

func TestFields(t *testing.T) {
	tests := []struct {
		Name string
		Src  string
		Want []string
	}{
		{"single token", "START", []string{"START"}},
		{"collapses runs", "LDA    BUFFER", []string{"LDA", "BUFFER"}},
		{"tabs and spaces mixed", "LDA\t BUFFER,X", []string{"LDA", "BUFFER,X"}},
		{"leading and trailing delims", "  LDA  ", []string{"LDA"}},
		{"empty", "", nil},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			have := fields(test.Src)
			if len(have) != len(test.Want) {
				t.Fatalf("want:%#v have:%#v", test.Want, have)
			}
			for i := range have {
				if have[i] != test.Want[i] {
					t.Fatalf("want:%#v have:%#v", test.Want, have)
				}
			}
		})
	}
}

func TestSplitLine(t *testing.T) {
	tests := []struct {
		Name                                       string
		Src                                         string
		Label, Opcode, Operand, Comment             string
	}{
		{"labeled line", "COPY    START   1000", "COPY", "START", "1000", ""},
		{"unlabeled line", "    LDA     BUFFER", "", "LDA", "BUFFER", ""},
		{"with trailing comment", "FIRST   LDA     ONE    INITIAL LOAD", "FIRST", "LDA", "ONE", "INITIAL"},
		{"opcode only, no operand", "    RSUB", "", "RSUB", "", ""},
		{"leading delimiter with no label", "\tLDA BUFFER,X", "", "LDA", "BUFFER,X", ""},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			label, opcode, operand, comment := splitLine(test.Src)
			if label != test.Label || opcode != test.Opcode || operand != test.Operand || comment != test.Comment {
				t.Fatalf("want:(%q,%q,%q,%q) have:(%q,%q,%q,%q)",
					test.Label, test.Opcode, test.Operand, test.Comment,
					label, opcode, operand, comment)
			}
		})
	}
}

func TestIsCommentLine(t *testing.T) {
	tests := []struct {
		Name string
		Src  string
		Want bool
	}{
		{"dot prefixed", ".this is a comment", true},
		{"normal line", "FIRST LDA ONE", false},
		{"empty", "", false},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			if have := isCommentLine(test.Src); have != test.Want {
				t.Fatalf("want:%v have:%v", test.Want, have)
			}
		})
	}
}
