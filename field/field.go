// Package field models the asteroid-field grid: an immutable rectangular
// Config of Cells plus the push-move generator producing successor Configs.
//
// A Config is deep-copied on construction and never mutated afterwards, so
// values may be shared freely between frontiers, visited sets and parent
// tables without aliasing. Identity is the canonical row-major Key.
package field

import "strings"

// Config is an immutable snapshot of the grid.
// Probe and dock positions are cached at construction; the move generator
// produces fresh Configs and never touches an existing one.
type Config struct {
	rows, cols int
	cells      [][]Cell
	key        string

	probe    Position
	hasProbe bool
	dock     Position
	hasDock  bool
}

// New constructs a Config from a non-empty, rectangular 2D slice of Cells.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrUnknownCell for malformed
// input, and ErrMultipleProbes/ErrMultipleDocks when the single-probe or
// single-dock invariant is violated. A grid with zero probes or zero docks
// is accepted; searches over it fail gracefully instead.
// Complexity: O(rows×cols) time and memory.
func New(cells [][]Cell) (*Config, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := len(cells[0])
	copied := make([][]Cell, len(cells))
	for r, row := range cells {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
		for _, c := range row {
			if c >= cellCount {
				return nil, ErrUnknownCell
			}
		}
		copied[r] = make([]Cell, cols)
		copy(copied[r], row)
	}
	return compile(copied)
}

// Parse builds a Config from an ASCII drawing: one line per row, one symbol
// per cell ('.', '#', 'A', 'P', 'D'). Blank lines and spaces are ignored, so
// both "#P.#" and "# P . #" parse to the same row.
func Parse(s string) (*Config, error) {
	var cells [][]Cell
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var row []Cell
		for i := 0; i < len(line); i++ {
			if line[i] == ' ' || line[i] == '\t' {
				continue
			}
			c, ok := cellOf(line[i])
			if !ok {
				return nil, ErrUnknownSymbol
			}
			row = append(row, c)
		}
		cells = append(cells, row)
	}
	if len(cells) == 0 {
		return nil, ErrEmptyGrid
	}
	return New(cells)
}

// compile takes ownership of a fresh rectangular cell slice, scans it once
// to build the identity key and locate probe and dock, and enforces the
// at-most-one invariant for both.
func compile(cells [][]Cell) (*Config, error) {
	cfg := &Config{
		rows:  len(cells),
		cols:  len(cells[0]),
		cells: cells,
	}
	var b strings.Builder
	b.Grow(cfg.rows*(cfg.cols+1) - 1)
	for r, row := range cells {
		if r > 0 {
			b.WriteByte('/')
		}
		for c, cell := range row {
			b.WriteByte(cell.Symbol())
			switch cell {
			case Probe:
				if cfg.hasProbe {
					return nil, ErrMultipleProbes
				}
				cfg.probe = Position{Row: r, Col: c}
				cfg.hasProbe = true
			case Dock:
				if cfg.hasDock {
					return nil, ErrMultipleDocks
				}
				cfg.dock = Position{Row: r, Col: c}
				cfg.hasDock = true
			}
		}
	}
	cfg.key = b.String()

	return cfg, nil
}

// Rows returns the number of grid rows. Complexity: O(1).
func (c *Config) Rows() int { return c.rows }

// Cols returns the number of grid columns. Complexity: O(1).
func (c *Config) Cols() int { return c.cols }

// InBounds reports whether p lies within the grid boundaries. Complexity: O(1).
func (c *Config) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < c.rows && p.Col >= 0 && p.Col < c.cols
}

// At returns the Cell stored at p. The caller must ensure p is in bounds.
func (c *Config) At(p Position) Cell {
	return c.cells[p.Row][p.Col]
}

// ProbePosition returns the probe's position, with ok=false when the grid
// holds no probe (degenerate configuration).
func (c *Config) ProbePosition() (Position, bool) {
	return c.probe, c.hasProbe
}

// DockPosition returns the dock's position, with ok=false when the grid
// holds no dock tag — either a degenerate start, or the probe has already
// consumed the dock by occupying it.
func (c *Config) DockPosition() (Position, bool) {
	return c.dock, c.hasDock
}

// Key returns the canonical row-major serialization of the grid, injective
// over configurations. It is the identity key for visited sets and parent
// tables. Complexity: O(1), computed once at construction.
func (c *Config) Key() string { return c.key }

// Equal reports whether c and other hold identical cells, position for position.
func (c *Config) Equal(other *Config) bool {
	return other != nil && c.key == other.key
}

// Cells returns a deep copy of the grid contents. Mutating the returned
// slice never affects c.
func (c *Config) Cells() [][]Cell {
	out := make([][]Cell, c.rows)
	for r, row := range c.cells {
		out[r] = make([]Cell, c.cols)
		copy(out[r], row)
	}
	return out
}

// String renders the grid as one symbol per cell, rows separated by newlines.
// The output round-trips through Parse.
func (c *Config) String() string {
	var b strings.Builder
	b.Grow(c.rows*(c.cols+1) - 1)
	for r, row := range c.cells {
		if r > 0 {
			b.WriteByte('\n')
		}
		for _, cell := range row {
			b.WriteByte(cell.Symbol())
		}
	}
	return b.String()
}
