package grid

import (
	"errors"
	"math"
	"testing"
)

func testRoom(t *testing.T) *Map {
	t.Helper()
	m, err := Parse([]string{
		"11111",
		"10001",
		"10501",
		"10061",
		"11111",
	})
	if err != nil {
		t.Fatalf("Failed to parse test room: %v", err)
	}
	return m
}

func TestCellAtOutOfRangeIsWall(t *testing.T) {
	m := testRoom(t)

	coords := [][2]int{
		{-1, 0}, {0, -1}, {-1, -1}, {5, 0}, {0, 5}, {5, 5},
		{math.MinInt32, 2}, {2, math.MaxInt32}, {-100, 100},
	}
	for _, c := range coords {
		if got := m.CellAt(c[0], c[1]); !got.IsWall() {
			t.Errorf("Expected wall at out-of-range (%d, %d), got %s", c[0], c[1], got)
		}
		if !m.IsWall(c[0], c[1]) {
			t.Errorf("Expected IsWall true at out-of-range (%d, %d)", c[0], c[1])
		}
	}
}

func TestClassification(t *testing.T) {
	m := testRoom(t)

	if !m.IsWall(0, 0) {
		t.Error("Expected border to be a wall")
	}
	if m.IsWall(1, 1) {
		t.Error("Expected (1, 1) to be open")
	}
	if !m.IsExit(2, 2) {
		t.Errorf("Expected exit at (2, 2), got %s", m.CellAt(2, 2))
	}
	if !m.IsHazard(3, 3) {
		t.Errorf("Expected hazard at (3, 3), got %s", m.CellAt(3, 3))
	}
	if m.IsExit(3, 3) || m.IsHazard(2, 2) {
		t.Error("Exit and hazard must not overlap")
	}
	if m.Width() != 5 || m.Height() != 5 {
		t.Errorf("Expected 5x5 map, got %dx%d", m.Width(), m.Height())
	}
}

func TestColorOfSignalColorsAreDistinct(t *testing.T) {
	walls := []CellKind{Wall1, Wall2, Wall3, Wall4}
	seen := make(map[uint32]CellKind)
	for _, w := range walls {
		c := ColorOf(w)
		if prev, ok := seen[c]; ok {
			t.Errorf("Wall variants %s and %s share color %06X", prev, w, c)
		}
		seen[c] = w
	}

	exit, hazard := ColorOf(Exit), ColorOf(Hazard)
	if exit == hazard {
		t.Errorf("Expected exit and hazard colors to differ, both %06X", exit)
	}
	for _, w := range walls {
		if ColorOf(w) == exit {
			t.Errorf("Exit color collides with %s", w)
		}
		if ColorOf(w) == hazard {
			t.Errorf("Hazard color collides with %s", w)
		}
	}
	if ColorOf(Empty) != 0x888888 {
		t.Errorf("Expected empty to be mid gray, got %06X", ColorOf(Empty))
	}
}

func TestNewRejectsInvalidMaps(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want error
	}{
		{"empty", nil, ErrEmptyMap},
		{"ragged", []string{"111", "11", "111"}, ErrRagged},
		{"open top", []string{"101", "101", "111"}, ErrOpenBorder},
		{"open side", []string{"111", "000", "111"}, ErrOpenBorder},
		{"exit on border", []string{"151", "101", "111"}, ErrOpenBorder},
		{"bad code", []string{"111", "1x1", "111"}, ErrBadCell},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.rows)
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestNewCopiesCells(t *testing.T) {
	cells := [][]CellKind{
		{Wall1, Wall1, Wall1},
		{Wall1, Empty, Wall1},
		{Wall1, Wall1, Wall1},
	}
	m, err := New(cells)
	if err != nil {
		t.Fatalf("Failed to build map: %v", err)
	}
	cells[1][1] = Hazard
	if m.CellAt(1, 1) != Empty {
		t.Error("Expected map to be unaffected by later changes to its input")
	}
}

func TestCellOfFloors(t *testing.T) {
	tests := []struct {
		x, y     float64
		col, row int
	}{
		{2.5, 2.5, 2, 2},
		{0, 0, 0, 0},
		{0.999, 1.0, 0, 1},
		{-0.1, -2.5, -1, -3},
	}
	for _, tt := range tests {
		col, row := CellOf(tt.x, tt.y)
		if col != tt.col || row != tt.row {
			t.Errorf("CellOf(%v, %v): expected (%d, %d), got (%d, %d)", tt.x, tt.y, tt.col, tt.row, col, row)
		}
	}

	m := testRoom(t)
	if m.KindAt(math.NaN(), 1) != Wall1 {
		t.Error("Expected NaN position to resolve to a wall")
	}
}

func TestBuiltinLevels(t *testing.T) {
	if LevelCount() != 3 {
		t.Fatalf("Expected 3 built-in levels, got %d", LevelCount())
	}
	for i := 0; i < LevelCount(); i++ {
		lvl := BuiltinLevel(i)
		if lvl.Map.Width() != 16 || lvl.Map.Height() != 13 {
			t.Errorf("Level %d: expected 16x13, got %dx%d", i, lvl.Map.Width(), lvl.Map.Height())
		}
		if lvl.Map.KindAt(lvl.Spawn.X, lvl.Spawn.Y) != Empty {
			t.Errorf("Level %d: spawn is not on an empty cell", i)
		}

		exits := 0
		for row := 0; row < lvl.Map.Height(); row++ {
			for col := 0; col < lvl.Map.Width(); col++ {
				if lvl.Map.IsExit(col, row) {
					exits++
				}
			}
		}
		if exits != 1 {
			t.Errorf("Level %d: expected exactly one exit, got %d", i, exits)
		}
	}

	if BuiltinLevel(99).Name != BuiltinLevel(0).Name {
		t.Error("Expected out-of-range level index to fall back to the first level")
	}
}
