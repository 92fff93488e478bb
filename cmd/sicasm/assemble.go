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

package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/go-sic/sicasm/pkg/assembler"
	"github.com/go-sic/sicasm/pkg/config"
)

var (
	objectPath       string
	listingPath      string
	intermediatePath string
	configPath       string
	printSyms        bool
)

var assembleCmd = &cobra.Command{
	Use:   "assemble sourceFile",
	Short: "Assemble a SIC source file into a listing and object program",
	Args:  cobra.ExactArgs(1),
	RunE:  runAssemble,
}

func init() {
	assembleCmd.Flags().StringVarP(&objectPath, "out", "o", "object.txt", "object program output path")
	assembleCmd.Flags().StringVar(&listingPath, "listing", "listing.txt", "listing output path")
	assembleCmd.Flags().StringVar(&intermediatePath, "intermediate", "intermediate.txt", "intermediate block stream path")
	assembleCmd.Flags().StringVar(&configPath, "config", "sicasm.toml", "optional limits override file")
	assembleCmd.Flags().BoolVar(&printSyms, "symbols", false, "print the symbol table after a clean assembly")
}

// runAssemble plays the role of the reference tool's pass1 and pass2 shell
// commands run back to back in one session: the symbol table and
// START/END bookkeeping stay in memory across both stages (they were never
// part of the intermediate file), while the block stream itself still
// makes the round trip through intermediate.txt on disk, exactly as §6
// describes it -- the file is left behind afterward rather than removed.
func runAssemble(cmd *cobra.Command, args []string) error {
	source := args[0]

	limits, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if verbose {
		logrus.WithField("source", source).Info("starting pass 1")
	}

	in, err := os.Open(source)
	if err != nil {
		logrus.Println("Failed to load specified file")
		return err
	}
	defer in.Close()

	p1 := assembler.Pass1(in, limits)

	intermediate, err := os.Create(intermediatePath)
	if err != nil {
		return fmt.Errorf("writing intermediate file: %w", err)
	}
	if err := assembler.WriteIntermediate(intermediate, p1.Blocks); err != nil {
		intermediate.Close()
		return fmt.Errorf("writing intermediate file: %w", err)
	}
	if err := intermediate.Close(); err != nil {
		return fmt.Errorf("writing intermediate file: %w", err)
	}

	rehydrated, err := os.Open(intermediatePath)
	if err != nil {
		logrus.Println("Failed to load specified file")
		return err
	}
	blocks, err := assembler.ReadIntermediate(rehydrated)
	rehydrated.Close()
	if err != nil {
		return fmt.Errorf("reading intermediate file: %w", err)
	}

	if verbose {
		logrus.WithFields(logrus.Fields{
			"lines":   len(blocks),
			"symbols": p1.Symbols.Count(),
		}).Info("starting pass 2")
	}

	p2 := assembler.Pass2(blocks, p1.Symbols, p1.StartAddress, p1.ProgramLength, p1.FinalLocCtr, limits)

	if err := os.WriteFile(listingPath, p2.Listing, 0644); err != nil {
		return fmt.Errorf("writing listing: %w", err)
	}

	if p2.AnyErrors {
		logrus.Warn("assembly produced errors; object file not written")
		os.Remove(objectPath)
		return nil
	}

	if err := os.WriteFile(objectPath, p2.Object, 0644); err != nil {
		return fmt.Errorf("writing object program: %w", err)
	}

	if printSyms {
		fmt.Print(p1.Symbols.String())
	}

	return nil
}
