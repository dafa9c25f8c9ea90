// Package field defines core types, options, and sentinel errors
// for the field subpackage of github.com/katalvlaran/asterfield.
package field

import "errors"

// Sentinel errors for field construction and parsing.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("field: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("field: all rows must have the same length")
	// ErrUnknownCell indicates a cell value outside the closed Cell set.
	ErrUnknownCell = errors.New("field: unknown cell value")
	// ErrUnknownSymbol indicates a symbol with no Cell mapping during Parse.
	ErrUnknownSymbol = errors.New("field: unknown grid symbol")
	// ErrMultipleProbes indicates more than one Probe cell in the input.
	ErrMultipleProbes = errors.New("field: configuration holds more than one probe")
	// ErrMultipleDocks indicates more than one Dock cell in the input.
	ErrMultipleDocks = errors.New("field: configuration holds more than one dock")
)

// Cell is the tag stored in a single grid cell.
// The set is closed: exactly the five values below are valid.
type Cell uint8

const (
	// Empty is a free cell the probe may occupy.
	Empty Cell = iota
	// Wall is immovable and impassable.
	Wall
	// Asteroid is a pushable blocking cell; contiguous runs push together.
	Asteroid
	// Probe is the single movable agent.
	Probe
	// Dock is the goal cell; it is consumed when the probe occupies it.
	Dock

	cellCount
)

// cellSymbols maps each Cell to its ASCII rendering, used by Key, String and Parse.
var cellSymbols = [cellCount]byte{'.', '#', 'A', 'P', 'D'}

// Symbol returns the canonical one-byte ASCII rendering of c.
func (c Cell) Symbol() byte {
	if c >= cellCount {
		return '?'
	}
	return cellSymbols[c]
}

// cellOf maps an ASCII symbol back to its Cell, reporting ok=false for
// symbols outside the set.
func cellOf(sym byte) (Cell, bool) {
	for c, s := range cellSymbols {
		if s == sym {
			return Cell(c), true
		}
	}
	return 0, false
}

// Position identifies a grid cell by row and column.
type Position struct {
	Row, Col int
}

// Manhattan returns the Manhattan distance between p and q.
func (p Position) Manhattan(q Position) int {
	return abs(p.Row-q.Row) + abs(p.Col-q.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Direction is one of the four orthogonal probe moves.
type Direction int

const (
	// Up moves the probe one row toward row 0.
	Up Direction = iota
	// Down moves the probe one row away from row 0.
	Down
	// Left moves the probe one column toward column 0.
	Left
	// Right moves the probe one column away from column 0.
	Right
)

// directionOrder fixes the canonical generation order: Up, Down, Left, Right.
// Traversal tie-breaking is visible through this order, so it never changes.
var directionOrder = [4]Direction{Up, Down, Left, Right}

// dirOffsets holds the row/col delta of each Direction.
var dirOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Offset returns the (row, col) delta one step in direction d.
func (d Direction) Offset() (dr, dc int) {
	return dirOffsets[d][0], dirOffsets[d][1]
}

// String returns the human-readable direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// DirectionOf reports the Direction leading from p to the orthogonally
// adjacent position q, with ok=false when q is not exactly one step away.
func DirectionOf(p, q Position) (Direction, bool) {
	for i, off := range dirOffsets {
		if q.Row == p.Row+off[0] && q.Col == p.Col+off[1] {
			return Direction(i), true
		}
	}
	return 0, false
}
