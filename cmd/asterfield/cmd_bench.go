package main

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
)

var benchOut string

var benchCmd = &cobra.Command{
	Use:   "bench <puzzle-file>...",
	Short: "Run every engine over each puzzle and emit CSV statistics",
	Args:  cobra.MinimumNArgs(1),
	Run:   runBench,
}

func init() {
	benchCmd.Flags().StringVar(&benchOut, "out", "", "CSV output path (default stdout)")
	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) {
	out := os.Stdout
	if benchOut != "" {
		f, err := os.Create(benchOut)
		if err != nil {
			slog.Error("Failed to create output file", "path", benchOut, "error", err)
			return
		}
		defer f.Close()
		out = f
	}

	w := csv.NewWriter(out)
	defer w.Flush()
	if err := w.Write([]string{"puzzle", "algorithm", "moves", "nodes", "time_ms"}); err != nil {
		slog.Error("Failed to write CSV header", "error", err)
		return
	}

	engines, _ := selectEngines("all", "manhattan")
	for _, path := range args {
		cfg, err := loadPuzzle(path)
		if err != nil {
			slog.Error("Skipping puzzle", "path", path, "error", err)
			continue
		}
		label := filepath.Base(path)
		for _, e := range engines {
			res, err := e.run(cfg)
			if err != nil {
				slog.Error("Search failed", "puzzle", label, "engine", e.name, "error", err)
				continue
			}
			moves := ""
			if res.Found {
				moves = strconv.Itoa(len(res.Moves()))
			}
			record := []string{
				label,
				e.name,
				moves,
				strconv.Itoa(res.Expanded),
				fmt.Sprintf("%.3f", float64(res.Elapsed.Microseconds())/1000.0),
			}
			if err := w.Write(record); err != nil {
				slog.Error("Failed to write CSV record", "error", err)
				return
			}
		}
	}
}
