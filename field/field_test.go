package field_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/asterfield/field"
)

// TestNew_Errors verifies that malformed grids are rejected.
func TestNew_Errors(t *testing.T) {
	// empty grid
	if _, err := field.New(nil); !errors.Is(err, field.ErrEmptyGrid) {
		t.Errorf("nil grid: want ErrEmptyGrid, got %v", err)
	}
	if _, err := field.New([][]field.Cell{{}}); !errors.Is(err, field.ErrEmptyGrid) {
		t.Errorf("empty row: want ErrEmptyGrid, got %v", err)
	}
	// ragged rows
	ragged := [][]field.Cell{
		{field.Wall, field.Wall},
		{field.Wall},
	}
	if _, err := field.New(ragged); !errors.Is(err, field.ErrNonRectangular) {
		t.Errorf("ragged grid: want ErrNonRectangular, got %v", err)
	}
	// cell value outside the closed set
	bad := [][]field.Cell{{field.Cell(9)}}
	if _, err := field.New(bad); !errors.Is(err, field.ErrUnknownCell) {
		t.Errorf("unknown cell: want ErrUnknownCell, got %v", err)
	}
	// two probes
	twoProbes := [][]field.Cell{{field.Probe, field.Probe}}
	if _, err := field.New(twoProbes); !errors.Is(err, field.ErrMultipleProbes) {
		t.Errorf("two probes: want ErrMultipleProbes, got %v", err)
	}
	// two docks
	twoDocks := [][]field.Cell{{field.Dock, field.Dock}}
	if _, err := field.New(twoDocks); !errors.Is(err, field.ErrMultipleDocks) {
		t.Errorf("two docks: want ErrMultipleDocks, got %v", err)
	}
}

// TestParse_Basic checks symbol parsing, whitespace tolerance, and errors.
func TestParse_Basic(t *testing.T) {
	cfg, err := field.Parse("#####\n#PA.#\n#...#\n#..D#\n#####")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Rows() != 5 || cfg.Cols() != 5 {
		t.Errorf("extent = %dx%d; want 5x5", cfg.Rows(), cfg.Cols())
	}
	probe, ok := cfg.ProbePosition()
	if !ok || probe != (field.Position{Row: 1, Col: 1}) {
		t.Errorf("probe = %v (ok=%v); want {1 1}", probe, ok)
	}
	dock, ok := cfg.DockPosition()
	if !ok || dock != (field.Position{Row: 3, Col: 3}) {
		t.Errorf("dock = %v (ok=%v); want {3 3}", dock, ok)
	}

	// Spaces between symbols parse identically.
	spaced, err := field.Parse("# # # # #\n# P A . #\n# . . . #\n# . . D #\n# # # # #")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Equal(spaced) {
		t.Errorf("spaced parse differs:\n%v\nvs\n%v", cfg, spaced)
	}

	if _, err = field.Parse("#?#"); !errors.Is(err, field.ErrUnknownSymbol) {
		t.Errorf("unknown symbol: want ErrUnknownSymbol, got %v", err)
	}
	if _, err = field.Parse("  \n \n"); !errors.Is(err, field.ErrEmptyGrid) {
		t.Errorf("blank input: want ErrEmptyGrid, got %v", err)
	}
}

// TestKey_Canonical verifies the row-major, '/'-delimited identity key.
func TestKey_Canonical(t *testing.T) {
	cfg, err := field.Parse("#####\n#PA.#\n#...#\n#..D#\n#####")
	if err != nil {
		t.Fatal(err)
	}
	const want = "#####/#PA.#/#...#/#..D#/#####"
	if cfg.Key() != want {
		t.Errorf("Key = %q; want %q", cfg.Key(), want)
	}
}

// TestString_RoundTrip ensures String output parses back to an equal Config.
func TestString_RoundTrip(t *testing.T) {
	cfg, err := field.Parse("####\n#PD#\n####")
	if err != nil {
		t.Fatal(err)
	}
	again, err := field.Parse(cfg.String())
	if err != nil {
		t.Fatalf("re-parse failed: %v", err)
	}
	if !cfg.Equal(again) {
		t.Errorf("round trip differs: %q vs %q", cfg.Key(), again.Key())
	}
}

// TestImmutability ensures neither the input slice nor the Cells copy can
// mutate a constructed Config.
func TestImmutability(t *testing.T) {
	input := [][]field.Cell{
		{field.Wall, field.Wall, field.Wall},
		{field.Wall, field.Probe, field.Wall},
		{field.Wall, field.Wall, field.Wall},
	}
	cfg, err := field.New(input)
	if err != nil {
		t.Fatal(err)
	}
	key := cfg.Key()

	// mutate the caller's slice after construction
	input[1][1] = field.Asteroid
	if cfg.Key() != key || cfg.At(field.Position{Row: 1, Col: 1}) != field.Probe {
		t.Error("mutating the input slice leaked into the Config")
	}

	// mutate the accessor copy
	cells := cfg.Cells()
	cells[1][1] = field.Dock
	if cfg.At(field.Position{Row: 1, Col: 1}) != field.Probe {
		t.Error("mutating the Cells copy leaked into the Config")
	}
}

// TestDegenerate verifies grids without probe or dock construct fine.
func TestDegenerate(t *testing.T) {
	cfg, err := field.Parse("###\n#.#\n###")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := cfg.ProbePosition(); ok {
		t.Error("probe reported on a probe-less grid")
	}
	if _, ok := cfg.DockPosition(); ok {
		t.Error("dock reported on a dock-less grid")
	}
	if succ := cfg.Successors(); succ != nil {
		t.Errorf("degenerate grid produced %d successors; want none", len(succ))
	}
}

// TestDirectionOf covers adjacency resolution in all four directions.
func TestDirectionOf(t *testing.T) {
	p := field.Position{Row: 2, Col: 2}
	cases := []struct {
		q    field.Position
		want field.Direction
	}{
		{field.Position{Row: 1, Col: 2}, field.Up},
		{field.Position{Row: 3, Col: 2}, field.Down},
		{field.Position{Row: 2, Col: 1}, field.Left},
		{field.Position{Row: 2, Col: 3}, field.Right},
	}
	for _, tc := range cases {
		d, ok := field.DirectionOf(p, tc.q)
		if !ok || d != tc.want {
			t.Errorf("DirectionOf(%v,%v) = %v (ok=%v); want %v", p, tc.q, d, ok, tc.want)
		}
	}
	if _, ok := field.DirectionOf(p, field.Position{Row: 4, Col: 2}); ok {
		t.Error("non-adjacent positions must not resolve to a Direction")
	}
	if _, ok := field.DirectionOf(p, p); ok {
		t.Error("identical positions must not resolve to a Direction")
	}
}

// TestManhattan checks the distance helper.
func TestManhattan(t *testing.T) {
	a := field.Position{Row: 1, Col: 1}
	b := field.Position{Row: 3, Col: 4}
	if got := a.Manhattan(b); got != 5 {
		t.Errorf("Manhattan = %d; want 5", got)
	}
	if got := b.Manhattan(a); got != 5 {
		t.Errorf("Manhattan should be symmetric; got %d", got)
	}
	if got := a.Manhattan(a); got != 0 {
		t.Errorf("Manhattan to self = %d; want 0", got)
	}
}
