package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/asterfield/field"
)

// loadPuzzle reads a grid file in either supported format.
//
// ASCII format: one line per row, one symbol per cell, spaces ignored.
// Numeric format: whitespace-separated integers 0-4 (empty, wall, asteroid,
// probe, dock), optionally preceded by a "rows cols" header line.
func loadPuzzle(path string) (*field.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read puzzle: %w", err)
	}
	text := string(data)

	if isNumeric(text) {
		return parseNumeric(text)
	}
	cfg, err := field.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse puzzle %s: %w", path, err)
	}
	return cfg, nil
}

// isNumeric reports whether the file's first token is an integer.
func isNumeric(text string) bool {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return false
	}
	_, err := strconv.Atoi(fields[0])
	return err == nil
}

func parseNumeric(text string) (*field.Config, error) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, field.ErrEmptyGrid
	}

	// A two-integer first line is a "rows cols" header.
	start := 0
	if tokens := strings.Fields(lines[0]); len(tokens) == 2 && len(lines) > 1 {
		if rows, err := strconv.Atoi(tokens[0]); err == nil {
			if _, err = strconv.Atoi(tokens[1]); err == nil && rows == len(lines)-1 {
				start = 1
			}
		}
	}

	var cells [][]field.Cell
	for _, line := range lines[start:] {
		var row []field.Cell
		for _, tok := range strings.Fields(line) {
			v, err := strconv.Atoi(tok)
			if err != nil || v < 0 || v > 4 {
				return nil, fmt.Errorf("%w: %q", field.ErrUnknownCell, tok)
			}
			row = append(row, field.Cell(v))
		}
		cells = append(cells, row)
	}

	return field.New(cells)
}
