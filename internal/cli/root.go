// Package cli implements the cadoku command-line interface.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cadoku",
	Short: "Sudoku puzzle generation driven by constraint propagation",
	Long: `cadoku generates 9x9 Sudoku puzzles with a requested hint count.

Puzzles are produced either by digging cues out of a full random solution
while a propagation oracle keeps the solution unique (subtractive), or by
only ever adding cues so the result is solvable without guessing (trivial).`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
