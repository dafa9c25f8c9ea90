// Command asterfield is a thin driver around the asterfield search engine:
// it loads puzzle files, runs the traversal engines, and reports solution
// traces and search statistics.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "asterfield",
	Short: "Solve asteroid-field docking puzzles",
	Long: `asterfield navigates a probe across a 2-D grid toward its docking bay,
pushing contiguous runs of asteroids out of the way.

Puzzle files are ASCII grids ('.' empty, '#' wall, 'A' asteroid, 'P' probe,
'D' dock) or whitespace-separated integers 0-4 in the same order.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
