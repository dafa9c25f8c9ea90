package field

// Move pairs a successor Config with the Direction that produced it.
type Move struct {
	Dir    Direction
	Config *Config
}

// Successors enumerates every legal probe action from c, in the canonical
// Up, Down, Left, Right order. It is a pure function: c is never mutated,
// and every returned Config is freshly allocated.
//
// Per direction, the probe either steps into an adjacent Empty or Dock cell,
// or pushes the maximal contiguous asteroid run ahead of it one cell —
// legal only when the cell just past the run is Empty. Pushes onto Wall,
// Asteroid, Dock or out of bounds are skipped, so asteroids can never bury
// the dock. A degenerate Config without a probe has no successors.
//
// Complexity: O(rows×cols) per emitted successor (full grid copy).
func (c *Config) Successors() []Move {
	if !c.hasProbe {
		return nil
	}
	moves := make([]Move, 0, len(directionOrder))
	for _, d := range directionOrder {
		if next := c.step(d); next != nil {
			moves = append(moves, Move{Dir: d, Config: next})
		}
	}
	return moves
}

// step computes the single successor of moving the probe in direction d,
// or nil when the move is illegal.
func (c *Config) step(d Direction) *Config {
	dr, dc := d.Offset()
	ahead := Position{Row: c.probe.Row + dr, Col: c.probe.Col + dc}
	if !c.InBounds(ahead) {
		return nil
	}

	switch c.cells[ahead.Row][ahead.Col] {
	case Empty, Dock:
		return c.apply(d, 0)
	case Asteroid:
		// Measure the contiguous run ahead of the probe.
		run := 0
		p := ahead
		for c.InBounds(p) && c.cells[p.Row][p.Col] == Asteroid {
			run++
			p.Row += dr
			p.Col += dc
		}
		// The landing cell past the run must exist and be Empty.
		if !c.InBounds(p) || c.cells[p.Row][p.Col] != Empty {
			return nil
		}
		return c.apply(d, run)
	default: // Wall (Probe cannot be adjacent to itself)
		return nil
	}
}

// apply materializes a legal move: run > 0 shifts that many asteroids one
// cell in direction d, then the probe advances into the vacated cell.
// The shift walks from the far end of the run toward the probe.
func (c *Config) apply(d Direction, run int) *Config {
	cells := c.Cells()
	dr, dc := d.Offset()
	pr, pc := c.probe.Row, c.probe.Col

	for i := run; i >= 1; i-- {
		cells[pr+(i+1)*dr][pc+(i+1)*dc] = Asteroid
	}
	cells[pr+dr][pc+dc] = Probe
	cells[pr][pc] = Empty

	// compile cannot fail here: cell counts are conserved and the single
	// probe invariant held in c.
	next, err := compile(cells)
	if err != nil {
		panic("field: successor violated configuration invariants: " + err.Error())
	}
	return next
}
