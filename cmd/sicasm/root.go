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
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "sicasm",
	Short: "A two-pass assembler for the Simplified Instructional Computer",
	Long: `sicasm reads SIC assembly source and produces a listing file and,
when the source assembles cleanly, a SIC object program ready to be
loaded onto the machine.`,
}

func init() {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false,
		"log each assembly stage as it runs",
	)
	rootCmd.AddCommand(assembleCmd)
}
