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

// Package config loads optional overrides for the assembler's numeric
// ceilings from a sicasm.toml file. Nothing in pkg/assembler depends on
// this package: its defaults always stand on their own, and a config file
// is strictly additive.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"

	"github.com/go-sic/sicasm/pkg/assembler"
)

// Limits is the subset of sicasm.toml that overrides assembler.Limits.
// Fields left unset (zero) in the file keep the hardcoded default.
type Limits struct {
	MaxProgramSize   int `toml:"max_program_size"`
	MaxSymbolLen     int `toml:"max_symbol_len"`
	MaxByteCharLen   int `toml:"max_byte_char_len"`
	MaxByteHexDigits int `toml:"max_byte_hex_digits"`
	TextRecordWidth  int `toml:"text_record_width"`
}

// Load reads path and merges any set fields onto assembler.DefaultLimits().
// A missing file is not an error: it simply yields the defaults untouched.
func Load(path string) (assembler.Limits, error) {
	limits := assembler.DefaultLimits()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return limits, nil
	}

	logrus.Debugf("reading configuration file %q", path)

	var override Limits
	if _, err := toml.DecodeFile(path, &override); err != nil {
		return limits, fmt.Errorf("unable to decode configuration %v: %w", path, err)
	}

	if override.MaxProgramSize != 0 {
		limits.MaxProgramSize = override.MaxProgramSize
	}
	if override.MaxSymbolLen != 0 {
		limits.MaxSymbolLen = override.MaxSymbolLen
	}
	if override.MaxByteCharLen != 0 {
		limits.MaxByteCharLen = override.MaxByteCharLen
	}
	if override.MaxByteHexDigits != 0 {
		limits.MaxByteHexDigits = override.MaxByteHexDigits
	}
	if override.TextRecordWidth != 0 {
		limits.TextRecordWidth = override.TextRecordWidth
	}

	return limits, nil
}
