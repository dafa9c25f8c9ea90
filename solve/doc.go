// Package solve provides three deterministic traversal engines over the
// implicit graph of asteroid-field configurations: exhaustive depth-first
// search, breadth-first shortest-path search, and greedy best-first search.
//
// What
//
//   - Nodes are field.Config values; edges are generated on demand by
//     field.Successors, so the graph is never materialized.
//   - Every engine shares the same skeleton: pop from a strategy-specific
//     frontier, test the goal, expand, record parent links, repeat.
//   - Returns a Result containing:
//   - Path: solution trace from start to goal inclusive (nil if not found)
//   - Expanded: states whose successors were generated
//   - Visited: probe positions in expansion order
//   - Elapsed: wall-clock duration
//   - Truncated: whether the expansion ceiling ended the search
//   - Supports an OnExpand hook and cooperative cancellation via context.
//
// Engines
//
//   - DFS: explicit stack, lazy deduplication at pop time, no optimality
//     guarantee. Parent links fix at first push observation.
//   - BFS: FIFO queue, eager deduplication at enqueue time. The returned
//     trace has the minimum number of probe actions.
//   - BestFirst: min-heap ordered by heuristic score with insertion-order
//     tie-breaking, lazy deduplication. Heuristic, non-optimal.
//
// The lazy/eager asymmetry between the engines is deliberate — it affects
// the expansion counts reported in statistics.
//
// Goal test
//
//	A configuration is a goal when its probe occupies the dock position
//	captured once from the start state. The probe consumes the Dock tag on
//	arrival, so the position cannot be re-derived later. Starts lacking a
//	probe or a dock yield a not-found Result with zero expansions.
//
// Determinism
//
//	Successors are generated in the fixed Up, Down, Left, Right order and
//	BestFirst breaks score ties by insertion sequence, so re-running any
//	engine on the same start and ceiling reproduces the identical expansion
//	count and solution trace.
//
// Complexity (S = states reachable within the ceiling, b ≤ 4)
//
//   - Time:   O(S·b·cells) — each expansion copies up to b grids
//   - Memory: O(S·cells)   — visited set, parent table and key→Config map
//
// Usage
//
//	cfg, err := field.Parse(puzzle)
//	if err != nil { ... }
//	res, err := solve.BFS(cfg,
//	    solve.WithMaxExpansions(100_000),
//	    solve.WithOnExpand(func(p field.Position, n int) { /* ... */ }),
//	)
//	if err != nil { ... }
//	if res.Found {
//	    fmt.Println(res.Moves(), res.Expanded, res.Elapsed)
//	}
//
// Errors
//
//   - ErrNilConfig       if the start configuration pointer is nil.
//   - ErrOptionViolation if an invalid Option is supplied (negative ceiling).
//   - context errors     if the supplied context is canceled mid-search.
//   - "no solution" is never an error: it is a Result with Found == false.
package solve
