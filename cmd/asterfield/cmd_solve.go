package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/asterfield/field"
	"github.com/katalvlaran/asterfield/solve"
)

var (
	solveAlgo      string
	solveHeuristic string
	solveCeiling   int
)

var solveCmd = &cobra.Command{
	Use:   "solve <puzzle-file>",
	Short: "Solve one puzzle and print the trace",
	Args:  cobra.ExactArgs(1),
	Run:   runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&solveAlgo, "algo", "all", "engine to run: dfs|bfs|best|all")
	solveCmd.Flags().StringVar(&solveHeuristic, "heuristic", "manhattan", "best-first heuristic: manhattan|blocking")
	solveCmd.Flags().IntVar(&solveCeiling, "max-expansions", 0, "expansion ceiling (0 = default)")
	rootCmd.AddCommand(solveCmd)
}

// namedEngine pairs a display name with an engine entry point.
type namedEngine struct {
	name string
	run  func(*field.Config, ...solve.Option) (*solve.Result, error)
}

func selectEngines(algo, heuristic string) ([]namedEngine, error) {
	h := solve.Manhattan
	label := "Manhattan"
	switch heuristic {
	case "manhattan":
	case "blocking":
		h = solve.AsteroidBlocking
		label = "Blocking"
	default:
		return nil, fmt.Errorf("unknown heuristic %q", heuristic)
	}
	best := namedEngine{
		name: "Best First Search (" + label + ")",
		run: func(cfg *field.Config, opts ...solve.Option) (*solve.Result, error) {
			return solve.BestFirst(cfg, append(opts, solve.WithHeuristic(h))...)
		},
	}

	switch algo {
	case "dfs":
		return []namedEngine{{"Depth First Search", solve.DFS}}, nil
	case "bfs":
		return []namedEngine{{"Breadth First Search", solve.BFS}}, nil
	case "best":
		return []namedEngine{best}, nil
	case "all":
		return []namedEngine{
			{"Depth First Search", solve.DFS},
			{"Breadth First Search", solve.BFS},
			best,
		}, nil
	default:
		return nil, fmt.Errorf("unknown algorithm %q", algo)
	}
}

func runSolve(cmd *cobra.Command, args []string) {
	cfg, err := loadPuzzle(args[0])
	if err != nil {
		slog.Error("Failed to load puzzle", "path", args[0], "error", err)
		return
	}
	engines, err := selectEngines(solveAlgo, solveHeuristic)
	if err != nil {
		slog.Error("Bad flag", "error", err)
		return
	}

	fmt.Println("Initial state:")
	fmt.Println(cfg)

	for _, e := range engines {
		fmt.Printf("\n--- %s ---\n", e.name)
		res, err := e.run(cfg, solve.WithMaxExpansions(solveCeiling))
		if err != nil {
			slog.Error("Search failed", "engine", e.name, "error", err)
			continue
		}
		printResult(res)
	}
}

func printResult(res *solve.Result) {
	if !res.Found {
		reason := "search space exhausted"
		if res.Truncated {
			reason = "expansion ceiling reached"
		}
		fmt.Printf("No solution found (%s)\n", reason)
		fmt.Printf("States expanded: %d\n", res.Expanded)
		fmt.Printf("Elapsed: %s\n", res.Elapsed)
		return
	}
	fmt.Printf("Solution found in %d moves!\n", len(res.Moves()))
	fmt.Printf("States expanded: %d\n", res.Expanded)
	fmt.Printf("Elapsed: %s\n", res.Elapsed)
	fmt.Printf("Solution path: %s\n", joinMoves(res.Moves()))
}

func joinMoves(moves []field.Direction) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " -> ")
}
