// Package grid models the static tile grid a level is made of.
// Cells are addressed as (col, row) with the origin in the top-left corner.
// World coordinates are continuous; the cell containing a world point is
// the floor of its coordinates.
package grid

import (
	"errors"
	"fmt"
	"math"
)

// CellKind is the closed set of cell types a map can hold.
type CellKind uint8

const (
	Empty CellKind = iota
	Wall1          // red brick
	Wall2          // blue stone
	Wall3          // green wood
	Wall4          // yellow metal
	Exit
	Hazard
)

// Sentinel errors returned by New and Parse.
var (
	ErrEmptyMap   = errors.New("map has no cells")
	ErrRagged     = errors.New("map rows differ in length")
	ErrOpenBorder = errors.New("map border is not enclosed by walls")
	ErrBadCell    = errors.New("unknown cell code")
)

// IsWall reports whether the kind is one of the wall variants.
func (k CellKind) IsWall() bool {
	switch k {
	case Wall1, Wall2, Wall3, Wall4:
		return true
	default:
		return false
	}
}

// WallVariant returns 1..4 for wall kinds and 0 otherwise.
func (k CellKind) WallVariant() int {
	if !k.IsWall() {
		return 0
	}
	return int(k)
}

// String returns a short human readable name.
func (k CellKind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Wall1, Wall2, Wall3, Wall4:
		return fmt.Sprintf("wall%d", k.WallVariant())
	case Exit:
		return "exit"
	case Hazard:
		return "hazard"
	default:
		return fmt.Sprintf("CellKind(%d)", uint8(k))
	}
}

// Map is an immutable grid of cells indexed [row][col].
type Map struct {
	width  int
	height int
	cells  [][]CellKind
}

// New builds a map from rows of cells. The rows are copied. Every row must
// have the same length and the outer ring must be walls so that rays and
// movement always stay bounded.
func New(cells [][]CellKind) (*Map, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyMap
	}

	height := len(cells)
	width := len(cells[0])
	copied := make([][]CellKind, height)
	for row, line := range cells {
		if len(line) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrRagged, row, len(line), width)
		}
		copied[row] = append([]CellKind(nil), line...)
	}

	m := &Map{width: width, height: height, cells: copied}
	if col, row, ok := m.openBorderCell(); ok {
		return nil, fmt.Errorf("%w: cell (%d, %d) is %s", ErrOpenBorder, col, row, m.cells[row][col])
	}
	return m, nil
}

// Parse builds a map from rows of digit codes, 0 for empty, 1-4 for the wall
// variants, 5 for the exit and 6 for hazards.
func Parse(rows []string) (*Map, error) {
	cells := make([][]CellKind, len(rows))
	for row, line := range rows {
		cells[row] = make([]CellKind, 0, len(line))
		for col, r := range line {
			if r < '0' || r > '6' {
				return nil, fmt.Errorf("%w: %q at (%d, %d)", ErrBadCell, r, col, row)
			}
			cells[row] = append(cells[row], CellKind(r-'0'))
		}
	}
	return New(cells)
}

// MustParse is like Parse but panics on error. It is meant for built-in
// level tables.
func MustParse(rows []string) *Map {
	m, err := Parse(rows)
	if err != nil {
		panic(err)
	}
	return m
}

func (m *Map) openBorderCell() (col, row int, ok bool) {
	for c := 0; c < m.width; c++ {
		if !m.cells[0][c].IsWall() {
			return c, 0, true
		}
		if !m.cells[m.height-1][c].IsWall() {
			return c, m.height - 1, true
		}
	}
	for r := 0; r < m.height; r++ {
		if !m.cells[r][0].IsWall() {
			return 0, r, true
		}
		if !m.cells[r][m.width-1].IsWall() {
			return m.width - 1, r, true
		}
	}
	return 0, 0, false
}

// Width returns the number of columns.
func (m *Map) Width() int { return m.width }

// Height returns the number of rows.
func (m *Map) Height() int { return m.height }

// InBounds reports whether (col, row) addresses a stored cell.
func (m *Map) InBounds(col, row int) bool {
	return col >= 0 && row >= 0 && col < m.width && row < m.height
}

// CellAt returns the cell at (col, row). Anything outside the grid is
// reported as Wall1.
func (m *Map) CellAt(col, row int) CellKind {
	if !m.InBounds(col, row) {
		return Wall1
	}
	return m.cells[row][col]
}

// IsWall reports whether (col, row) holds any wall variant.
func (m *Map) IsWall(col, row int) bool {
	return m.CellAt(col, row).IsWall()
}

// IsExit reports whether (col, row) is the exit.
func (m *Map) IsExit(col, row int) bool {
	return m.CellAt(col, row) == Exit
}

// IsHazard reports whether (col, row) is a hazard cell.
func (m *Map) IsHazard(col, row int) bool {
	return m.CellAt(col, row) == Hazard
}

// CellOf converts a world position into the cell containing it.
func CellOf(x, y float64) (col, row int) {
	return floorInt(x), floorInt(y)
}

// KindAt returns the cell kind under a world position.
func (m *Map) KindAt(x, y float64) CellKind {
	col, row := CellOf(x, y)
	return m.CellAt(col, row)
}

func floorInt(v float64) int {
	f := math.Floor(v)
	switch {
	case math.IsNaN(f):
		return math.MinInt32
	case f < math.MinInt32:
		return math.MinInt32
	case f > math.MaxInt32:
		return math.MaxInt32
	}
	return int(f)
}

// ColorOf returns the packed 0xRRGGBB display color of a cell kind.
func ColorOf(kind CellKind) uint32 {
	switch kind {
	case Wall1:
		return 0xFF4444
	case Wall2:
		return 0x4444FF
	case Wall3:
		return 0x44FF44
	case Wall4:
		return 0xFFFF44
	case Exit:
		return 0xFF00FF
	case Hazard:
		return 0xFF8800
	case Empty:
		return 0x888888
	default:
		return 0x888888
	}
}

// ColorOf is a convenience wrapper over the package level lookup.
func (m *Map) ColorOf(kind CellKind) uint32 {
	return ColorOf(kind)
}
