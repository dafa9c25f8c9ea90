package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/asterfield/field"
)

func writePuzzle(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "puzzle.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadPuzzle_ASCII(t *testing.T) {
	path := writePuzzle(t, "#####\n#P.D#\n#####\n")
	cfg, err := loadPuzzle(path)
	require.NoError(t, err)
	probe, ok := cfg.ProbePosition()
	require.True(t, ok)
	require.Equal(t, field.Position{Row: 1, Col: 1}, probe)
}

func TestLoadPuzzle_Numeric(t *testing.T) {
	path := writePuzzle(t, "1 1 1 1 1\n1 3 0 4 1\n1 1 1 1 1\n")
	cfg, err := loadPuzzle(path)
	require.NoError(t, err)

	ascii, err := field.Parse("#####\n#P.D#\n#####")
	require.NoError(t, err)
	require.True(t, cfg.Equal(ascii))
}

func TestLoadPuzzle_NumericWithHeader(t *testing.T) {
	path := writePuzzle(t, "3 5\n1 1 1 1 1\n1 3 0 4 1\n1 1 1 1 1\n")
	cfg, err := loadPuzzle(path)
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Rows())
	require.Equal(t, 5, cfg.Cols())
}

func TestLoadPuzzle_BadValue(t *testing.T) {
	path := writePuzzle(t, "0 7 0\n")
	_, err := loadPuzzle(path)
	require.ErrorIs(t, err, field.ErrUnknownCell)
}

func TestLoadPuzzle_Missing(t *testing.T) {
	_, err := loadPuzzle(filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
}

func TestSelectEngines(t *testing.T) {
	all, err := selectEngines("all", "manhattan")
	require.NoError(t, err)
	require.Len(t, all, 3)

	one, err := selectEngines("bfs", "blocking")
	require.NoError(t, err)
	require.Len(t, one, 1)

	_, err = selectEngines("astar", "manhattan")
	require.Error(t, err)

	_, err = selectEngines("all", "euclid")
	require.Error(t, err)
}
