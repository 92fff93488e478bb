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

package encoding

import (
	"errors"
)

var errEmptyString = errors.New("empty string")
var errInvalidDigit = errors.New("invalid digit for base")
var errInvalidBase = errors.New("base out of range 2-16")

// DecodeBase converts src to an integer in the given base (2-16). Unlike
// strconv, it never accepts a leading sign, a base prefix, or underscore
// digit separators: a character is either a valid digit for the base or
// the whole string is rejected. This mirrors the reference assembler's
// string-to-int routine, which sums digit*base^place and bails on the
// first character it can't classify.
func DecodeBase(src string, base int) (int, error) {
	if base < 2 || base > 16 {
		return 0, errInvalidBase
	}
	if len(src) == 0 {
		return 0, errEmptyString
	}

	sum := 0
	for i := 0; i < len(src); i++ {
		digit, ok := digitValue(src[i])
		if !ok || digit >= base {
			return 0, errInvalidDigit
		}
		sum = sum*base + digit
	}

	return sum, nil
}

// DecodeHex is DecodeBase(src, 16) returning the SIC-sized unsigned result.
func DecodeHex(src string) (uint16, error) {
	value, err := DecodeBase(src, 16)
	if err != nil {
		return 0, err
	}
	return uint16(value), nil
}

func digitValue(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	default:
		return 0, false
	}
}

// IsDigit reports whether c is an ASCII decimal digit.
func IsDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// IsAlpha reports whether c is an ASCII letter, either case.
func IsAlpha(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// IsAlphaNumeric reports whether c is an ASCII letter or digit.
func IsAlphaNumeric(c byte) bool {
	return IsAlpha(c) || IsDigit(c)
}

// IsHexDigit reports whether c is a valid hexadecimal digit, either case.
func IsHexDigit(c byte) bool {
	_, ok := digitValue(c)
	return ok
}

// HasHexFormat reports whether every character of s is a valid hex digit.
func HasHexFormat(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !IsHexDigit(s[i]) {
			return false
		}
	}
	return true
}
