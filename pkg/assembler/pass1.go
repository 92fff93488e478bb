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
	"strings"

	"github.com/go-sic/sicasm/pkg/encoding"
)

// Limits overrides the fixed numeric ceilings spec §6 hardcodes. A zero
// value is never passed to Pass1/Pass2; callers get DefaultLimits() and
// apply pkg/config overrides on top of it.
type Limits struct {
	MaxProgramSize   int
	MaxSymbolLen     int
	MaxByteCharLen   int
	MaxByteHexDigits int
	TextRecordWidth  int
}

// DefaultLimits returns the spec's hardcoded defaults.
func DefaultLimits() Limits {
	return Limits{
		MaxProgramSize:   DefaultMaxProgramSize,
		MaxSymbolLen:     DefaultMaxSymbolLen,
		MaxByteCharLen:   DefaultMaxByteCharLen,
		MaxByteHexDigits: DefaultMaxByteHexDigits,
		TextRecordWidth:  DefaultTextRecordWidth,
	}
}

// Pass1Result is everything pass 2 needs: the intermediate block stream,
// the populated symbol table, and the location-counter bookkeeping that
// lived as instance fields in the reference implementation's single
// Assembler object.
type Pass1Result struct {
	Blocks        []Block
	Symbols       *SymbolTable
	StartAddress  uint16
	ProgramLength int
	FinalLocCtr   int
}

// Pass1 scans source, resolving symbols and sizing each line, and returns
// the intermediate block stream pass 2 consumes. It never returns an
// error: every malformed line is recorded as a Block with diagnostics
// attached, per spec §7.
func Pass1(source io.Reader, limits Limits) Pass1Result {
	scanner := bufio.NewScanner(source)

	symtab := NewSymbolTable()
	var blocks []Block

	locctr := 0
	startingAddress := 0
	startFound := false
	programLength := 0

	for scanner.Scan() {
		raw := scanner.Text()
		if raw == "" {
			continue
		}
		if isCommentLine(raw) {
			continue
		}

		line := strings.ToUpper(raw)
		label, opcode, operand, _ := splitLine(line)
		if label == "" && opcode == "" && operand == "" {
			continue
		}

		var errs []ErrorCode

		if opcode == DirectiveStart {
			if startFound {
				errs = append(errs, ErrMisplacedStart)
			}
			startFound = true

			if label != "" {
				if !checkSymbol(&errs, label, limits.MaxSymbolLen) {
					errs = append(errs, ErrInvalidSymbol)
				}
			}

			if v, err := encoding.DecodeBase(operand, 16); operand == "" || err != nil {
				locctr, startingAddress = 0, 0
				errs = append(errs, ErrInvalidOperand)
			} else {
				locctr = v
				startingAddress = v
			}

			blocks = append(blocks, Block{
				Source: line, Opcode: opcode,
				Address: hexAddr(uint16(locctr)), Operand: operand, Errors: errs,
			})
			continue
		} else if !startFound {
			locctr, startingAddress = 0, 0
			startFound = true
		}

		if opcode != DirectiveByte && opcode != DirectiveWord &&
			opcode != DirectiveResw && opcode != DirectiveResb {
			if ok, code := validateOperand(operand); !ok {
				if code != "" {
					errs = append(errs, code)
				}
				errs = append(errs, ErrInvalidOperand)
			}
		}

		if opcode == DirectiveEnd {
			validSymbol := checkSymbol(&errs, operand, limits.MaxSymbolLen)
			if !validSymbol && !isHexSymbol(operand) {
				errs = append(errs, ErrIllegalEndOperand)
			}

			blocks = append(blocks, Block{
				Source: line, Opcode: opcode,
				Address: hexAddr(uint16(locctr)), Operand: operand, Errors: errs,
			})
			programLength = locctr - startingAddress
			break
		}

		if label != "" {
			if dup := symtab.Define(label, uint16(locctr)); dup {
				errs = append(errs, ErrDuplicateSymbol)
			} else if !checkSymbol(&errs, label, limits.MaxSymbolLen) {
				errs = append(errs, ErrInvalidSymbol)
			}
		}

		opFound := false
		increment := 0

		switch opcode {
		case DirectiveWord:
			if _, err := encoding.DecodeBase(operand, 10); err != nil {
				errs = append(errs, ErrInvalidOperand)
			}
			increment = 3
		case DirectiveResw:
			if v, err := encoding.DecodeBase(operand, 10); err == nil {
				increment = 3 * v
			} else {
				errs = append(errs, ErrInvalidOperand)
			}
		case DirectiveResb:
			if v, err := encoding.DecodeBase(operand, 10); err == nil {
				increment = v
			} else {
				errs = append(errs, ErrInvalidOperand)
			}
		case DirectiveByte:
			length := byteOperandLength(&errs, operand, limits)
			if length >= 0 {
				increment = length
			} else {
				errs = append(errs, ErrInvalidOperand)
			}
		default:
			if _, ok := Opcodes[opcode]; ok {
				opFound = true
				increment = 3
			} else {
				errs = append(errs, ErrInvalidOpcode)
			}
		}

		opcodeField := opcode
		if opFound {
			opcodeField = fmt.Sprintf("%x", Opcodes[opcode])
		}

		blocks = append(blocks, Block{
			Source: line, Opcode: opcodeField,
			Address: hexAddr(uint16(locctr)), Operand: operand, Errors: errs,
		})

		locctr += increment
	}

	return Pass1Result{
		Blocks:        blocks,
		Symbols:       symtab,
		StartAddress:  uint16(startingAddress),
		ProgramLength: programLength,
		FinalLocCtr:   locctr,
	}
}

// byteOperandLength sizes a BYTE directive's operand per spec §4.2,
// appending the specific violation code to errs on each failure path that
// has one. A few rejection paths (operand under 4 chars, a bad hex digit
// inside X'...') report no specific code at all -- the caller's generic
// 0001 is the only diagnostic attached for those, mirroring
// getConstantLength exactly.
func byteOperandLength(errs *[]ErrorCode, operand string, limits Limits) int {
	n := len(operand)
	if n < 4 {
		return -1
	}

	specifier := operand[0]
	if specifier != 'C' && specifier != 'X' {
		*errs = append(*errs, ErrBadSpecifier)
		return -1
	}
	if operand[1] != '\'' || operand[n-1] != '\'' {
		*errs = append(*errs, ErrMissingQuotes)
		return -1
	}

	trueLen := n - 3

	if specifier == 'C' {
		if trueLen > limits.MaxByteCharLen {
			*errs = append(*errs, ErrStringTooLong)
			return -1
		}
		return trueLen
	}

	for i := 2; i < n-1; i++ {
		if !encoding.IsHexDigit(operand[i]) {
			return -1
		}
	}
	if trueLen > limits.MaxByteHexDigits {
		*errs = append(*errs, ErrHexTooLong)
		return -1
	}
	if trueLen%2 == 1 {
		*errs = append(*errs, ErrOddHexDigits)
		return -1
	}
	return trueLen / 2
}
