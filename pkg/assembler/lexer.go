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

import "strings"

const lineDelims = "\t "

func isDelim(c byte) bool {
	return strings.IndexByte(lineDelims, c) >= 0
}

// fields splits a line on runs of tab/space, collapsing consecutive
// delimiters and ignoring leading/trailing ones.
func fields(line string) []string {
	var out []string
	var tok strings.Builder

	for i := 0; i < len(line); i++ {
		c := line[i]
		if isDelim(c) {
			if tok.Len() > 0 {
				out = append(out, tok.String())
				tok.Reset()
			}
			continue
		}
		tok.WriteByte(c)
	}
	if tok.Len() > 0 {
		out = append(out, tok.String())
	}
	return out
}

// splitLine tokenizes one already-uppercased source line into its
// positional label/opcode/operand/comment fields per spec §4.1. A label is
// present iff the line does not begin with a delimiter; the first token
// after the operand slot is returned as comment, and any later tokens are
// discarded.
func splitLine(line string) (label, opcode, operand, comment string) {
	toks := fields(line)

	hasLabel := len(line) > 0 && !isDelim(line[0])

	if !hasLabel {
		toks = append([]string{""}, toks...)
	}

	get := func(i int) string {
		if i < len(toks) {
			return toks[i]
		}
		return ""
	}

	return get(0), get(1), get(2), get(3)
}

// isCommentLine reports whether line (before uppercasing) is a full-line
// comment, i.e. starts with '.'.
func isCommentLine(line string) bool {
	return len(line) > 0 && line[0] == '.'
}
