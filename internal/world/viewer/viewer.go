// Package viewer holds the first-person viewer's pose and its collision
// aware motion against a grid map.
package viewer

import (
	"math"

	"chosenoffset.com/gridcaster/internal/world/grid"
)

const (
	// DefaultSpeed is the movement speed in tiles per second.
	DefaultSpeed = 3.0
	// DefaultTurnRate is the rotation speed in radians per second.
	DefaultTurnRate = 2.0
	// DefaultMargin keeps the viewer this far from the leading wall face.
	DefaultMargin = 0.1
	// DefaultMaxStep bounds a single collision sub-step in tiles. It must
	// stay below one tile so a step can never jump across a wall cell.
	DefaultMaxStep = 0.25

	// hitThreshold is the smallest direction component that reports a
	// blocked axis as a wall hit.
	hitThreshold = 0.01
)

// Pose is the read-only view of a viewer consumed by the renderer and UI.
type Pose struct {
	X, Y    float64
	Heading float64
}

// Viewer is a continuously positioned observer in a grid map.
type Viewer struct {
	X        float64
	Y        float64
	Heading  float64
	Speed    float64
	TurnRate float64
	Margin   float64
	MaxStep  float64
}

// New creates a viewer at the given spawn with default tuning.
func New(x, y, heading float64) *Viewer {
	return &Viewer{
		X:        x,
		Y:        y,
		Heading:  NormalizeAngle(heading),
		Speed:    DefaultSpeed,
		TurnRate: DefaultTurnRate,
		Margin:   DefaultMargin,
		MaxStep:  DefaultMaxStep,
	}
}

// FromSpawn creates a viewer at a level's spawn pose.
func FromSpawn(s grid.Spawn) *Viewer {
	return New(s.X, s.Y, s.Heading)
}

// Pose returns the current position and heading.
func (v *Viewer) Pose() Pose {
	return Pose{X: v.X, Y: v.Y, Heading: v.Heading}
}

// Cell returns the grid cell the viewer stands in.
func (v *Viewer) Cell() (col, row int) {
	return grid.CellOf(v.X, v.Y)
}

// Rotate turns the viewer by delta radians.
func (v *Viewer) Rotate(delta float64) {
	v.Heading = NormalizeAngle(v.Heading + delta)
}

// Turn rotates by the turn rate over dt seconds. sign is +1 for clockwise
// on screen (increasing heading) and -1 for the opposite direction.
func (v *Viewer) Turn(dt, sign float64) {
	v.Rotate(v.TurnRate * dt * sign)
}

// Direction returns the unit vector the viewer faces.
func (v *Viewer) Direction() (dx, dy float64) {
	return math.Cos(v.Heading), math.Sin(v.Heading)
}

// Update moves the viewer along (dirX, dirY) for dt seconds, resolving each
// axis against the map on its own so motion slides along walls. It returns
// true when movement on an axis was refused by a wall.
func (v *Viewer) Update(dt, dirX, dirY float64, m *grid.Map) bool {
	defer func() { v.Heading = NormalizeAngle(v.Heading) }()

	if dt <= 0 || math.IsNaN(dt) || (dirX == 0 && dirY == 0) {
		return false
	}
	if math.IsNaN(dirX) || math.IsNaN(dirY) {
		return false
	}

	dist := v.Speed * dt
	totalX, totalY := dirX*dist, dirY*dist
	longest := math.Max(math.Abs(totalX), math.Abs(totalY))
	if longest == 0 || math.IsInf(longest, 0) {
		return false
	}
	// No path inside the map is longer than its perimeter.
	if limit := float64(m.Width() + m.Height()); longest > limit {
		totalX *= limit / longest
		totalY *= limit / longest
		longest = limit
	}

	maxStep := v.MaxStep
	if maxStep <= 0 || maxStep >= 1 {
		maxStep = DefaultMaxStep
	}
	steps := int(math.Ceil(longest / maxStep))
	stepX, stepY := totalX/float64(steps), totalY/float64(steps)

	hitWall := false
	blockedX, blockedY := false, false
	for i := 0; i < steps; i++ {
		if stepX != 0 && !blockedX {
			if v.tryAxisX(v.X+stepX, m) {
				v.X += stepX
			} else {
				blockedX = true
				if math.Abs(dirX) > hitThreshold {
					hitWall = true
				}
			}
		}
		if stepY != 0 && !blockedY {
			if v.tryAxisY(v.Y+stepY, m) {
				v.Y += stepY
			} else {
				blockedY = true
				if math.Abs(dirY) > hitThreshold {
					hitWall = true
				}
			}
		}
		if (blockedX || stepX == 0) && (blockedY || stepY == 0) {
			break
		}
	}

	return hitWall
}

// tryAxisX checks both margin probes around a candidate x on the current row.
func (v *Viewer) tryAxisX(newX float64, m *grid.Map) bool {
	row := floorCell(v.Y)
	return !m.IsWall(floorCell(newX+v.Margin), row) && !m.IsWall(floorCell(newX-v.Margin), row)
}

// tryAxisY checks both margin probes around a candidate y on the current column.
func (v *Viewer) tryAxisY(newY float64, m *grid.Map) bool {
	col := floorCell(v.X)
	return !m.IsWall(col, floorCell(newY+v.Margin)) && !m.IsWall(col, floorCell(newY-v.Margin))
}

func floorCell(f float64) int {
	col, _ := grid.CellOf(f, 0)
	return col
}

// NormalizeAngle wraps an angle into [0, 2π).
func NormalizeAngle(a float64) float64 {
	const twoPi = 2 * math.Pi
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return 0
	}
	if a <= -twoPi || a >= twoPi {
		a = math.Mod(a, twoPi)
	}
	for a < 0 {
		a += twoPi
	}
	for a >= twoPi {
		a -= twoPi
	}
	return a
}
