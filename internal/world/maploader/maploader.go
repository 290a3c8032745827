// Package maploader reads level files: a JSON document holding the level
// name, the spawn pose and the map as rows of digit codes.
package maploader

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"chosenoffset.com/gridcaster/internal/world/grid"
)

// ErrBadSpawn is returned when the spawn pose is not inside an open cell.
var ErrBadSpawn = errors.New("spawn is not on an open cell")

// LevelData is the on-disk form of a level
type LevelData struct {
	Name  string      `json:"name"`
	Spawn *grid.Spawn `json:"spawn,omitempty"` // Defaults to grid.DefaultSpawn
	Rows  []string    `json:"rows"`            // Digit rows, top row first
}

// LoadLevel loads a level from a JSON file
func LoadLevel(path string) (grid.Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return grid.Level{}, fmt.Errorf("failed to read level file %s: %w", path, err)
	}

	level, err := DecodeLevel(data)
	if err != nil {
		return grid.Level{}, fmt.Errorf("failed to load level %s: %w", path, err)
	}

	// Unnamed levels are named after their file
	if level.Name == "" {
		level.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return level, nil
}

// DecodeLevel parses and validates a level document
func DecodeLevel(data []byte) (grid.Level, error) {
	var levelData LevelData
	if err := json.Unmarshal(data, &levelData); err != nil {
		return grid.Level{}, fmt.Errorf("failed to parse level: %w", err)
	}

	m, err := grid.Parse(levelData.Rows)
	if err != nil {
		return grid.Level{}, fmt.Errorf("invalid map data: %w", err)
	}

	spawn := grid.DefaultSpawn
	if levelData.Spawn != nil {
		spawn = *levelData.Spawn
	}
	if err := validateSpawn(spawn, m); err != nil {
		return grid.Level{}, err
	}

	return grid.Level{
		Name:  strings.TrimSpace(levelData.Name),
		Map:   m,
		Spawn: spawn,
	}, nil
}

// validateSpawn checks that the viewer starts on a walkable cell
func validateSpawn(s grid.Spawn, m *grid.Map) error {
	for _, v := range []float64{s.X, s.Y, s.Heading} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: (%v, %v) heading %v", ErrBadSpawn, s.X, s.Y, s.Heading)
		}
	}

	col, row := grid.CellOf(s.X, s.Y)
	if !m.InBounds(col, row) || m.IsWall(col, row) {
		return fmt.Errorf("%w: (%v, %v) is in cell (%d, %d)", ErrBadSpawn, s.X, s.Y, col, row)
	}
	return nil
}

// SaveLevel writes a level file that LoadLevel reads back
func SaveLevel(path string, level grid.Level) error {
	rows := make([]string, level.Map.Height())
	for row := range rows {
		var b strings.Builder
		for col := 0; col < level.Map.Width(); col++ {
			b.WriteByte(byte('0' + level.Map.CellAt(col, row)))
		}
		rows[row] = b.String()
	}

	spawn := level.Spawn
	data, err := json.MarshalIndent(LevelData{Name: level.Name, Spawn: &spawn, Rows: rows}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode level %s: %w", level.Name, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write level file %s: %w", path, err)
	}
	return nil
}
