// Package gamescanner discovers level files on disk and assembles the list
// of playable levels.
package gamescanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"chosenoffset.com/gridcaster/internal/logger"
	"chosenoffset.com/gridcaster/internal/world/grid"
	"chosenoffset.com/gridcaster/internal/world/maploader"
)

// LevelEntry represents a discoverable level file
type LevelEntry struct {
	Name string // Display name (file name without extension)
	Path string // Full path of the level file
}

// ScanLevelDirectory lists the level files in a directory, sorted by name.
// Hidden files and subdirectories are skipped.
func ScanLevelDirectory(dir string) ([]LevelEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read level directory: %w", err)
	}

	var levels []LevelEntry
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if !strings.EqualFold(filepath.Ext(name), ".json") {
			continue
		}

		levels = append(levels, LevelEntry{
			Name: strings.TrimSuffix(name, filepath.Ext(name)),
			Path: filepath.Join(dir, name),
		})
	}

	sort.Slice(levels, func(i, j int) bool { return levels[i].Name < levels[j].Name })
	return levels, nil
}

// LoadCatalog returns the built-in levels followed by every valid level file
// in dir. An empty dir means built-ins only. Unreadable directories and
// invalid files are logged and skipped.
func LoadCatalog(dir string) []grid.Level {
	levels := make([]grid.Level, 0, grid.LevelCount())
	for i := 0; i < grid.LevelCount(); i++ {
		levels = append(levels, grid.BuiltinLevel(i))
	}

	if dir == "" {
		return levels
	}

	entries, err := ScanLevelDirectory(dir)
	if err != nil {
		logger.Log.WithError(err).WithField("dir", dir).Warn("Using built-in levels only")
		return levels
	}

	for _, entry := range entries {
		level, err := maploader.LoadLevel(entry.Path)
		if err != nil {
			logger.Log.WithError(err).WithField("file", entry.Path).Warn("Skipping level")
			continue
		}
		levels = append(levels, level)
		logger.Log.WithField("level", level.Name).Debug("Loaded level file")
	}

	return levels
}

// ExportBuiltins writes every built-in level to dir as a level file, so it
// can be copied and edited. It returns the written paths.
func ExportBuiltins(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create level directory: %w", err)
	}

	paths := make([]string, 0, grid.LevelCount())
	for i := 0; i < grid.LevelCount(); i++ {
		level := grid.BuiltinLevel(i)
		path := filepath.Join(dir, fileName(level.Name)+".json")
		if err := maploader.SaveLevel(path, level); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// fileName turns a level name into a lower case file stem.
func fileName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}
