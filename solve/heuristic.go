package solve

import "github.com/katalvlaran/asterfield/field"

// Heuristic scores a configuration against the dock position captured from
// the start state; lower scores are explored first by BestFirst.
// Implementations must be pure and deterministic.
type Heuristic func(c *field.Config, dock field.Position) int

// Manhattan returns the Manhattan distance between the probe and the dock.
// A degenerate configuration without a probe scores zero.
func Manhattan(c *field.Config, dock field.Position) int {
	probe, ok := c.ProbePosition()
	if !ok {
		return 0
	}
	return probe.Manhattan(dock)
}

// AsteroidBlocking refines Manhattan with a penalty of 2 for every asteroid
// lying strictly between the probe and the dock when the two share a row or
// column. It biases the frontier away from lanes that require pushes.
func AsteroidBlocking(c *field.Config, dock field.Position) int {
	probe, ok := c.ProbePosition()
	if !ok {
		return 0
	}
	score := probe.Manhattan(dock)

	if probe.Row == dock.Row {
		lo, hi := min(probe.Col, dock.Col), max(probe.Col, dock.Col)
		for col := lo + 1; col < hi; col++ {
			if c.At(field.Position{Row: probe.Row, Col: col}) == field.Asteroid {
				score += 2
			}
		}
	}
	if probe.Col == dock.Col {
		lo, hi := min(probe.Row, dock.Row), max(probe.Row, dock.Row)
		for row := lo + 1; row < hi; row++ {
			if c.At(field.Position{Row: row, Col: probe.Col}) == field.Asteroid {
				score += 2
			}
		}
	}

	return score
}
