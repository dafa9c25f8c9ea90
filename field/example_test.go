package field_test

import (
	"fmt"

	"github.com/katalvlaran/asterfield/field"
)

// ExampleParse builds a configuration from an ASCII drawing and inspects it.
func ExampleParse() {
	cfg, err := field.Parse(`
		#####
		#P.D#
		#####`)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	probe, _ := cfg.ProbePosition()
	dock, _ := cfg.DockPosition()
	fmt.Println(cfg)
	fmt.Println("probe:", probe, "dock:", dock)
	// Output:
	// #####
	// #P.D#
	// #####
	// probe: {1 1} dock: {1 3}
}

// ExampleConfig_Successors enumerates the legal moves of a probe standing
// beside a pushable asteroid.
func ExampleConfig_Successors() {
	cfg, err := field.Parse(`
		#####
		#PA.#
		#...#
		#..D#
		#####`)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, m := range cfg.Successors() {
		probe, _ := m.Config.ProbePosition()
		fmt.Println(m.Dir, "->", probe)
	}
	// Output:
	// Down -> {2 1}
	// Right -> {1 2}
}
