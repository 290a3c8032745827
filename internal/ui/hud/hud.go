// Package hud draws the in-game overlay: minimap, health bar, crosshair and
// the controls line.
package hud

import (
	"fmt"
	"math"

	"chosenoffset.com/gridcaster/internal/ui/canvas"
	"chosenoffset.com/gridcaster/internal/world/grid"
	"chosenoffset.com/gridcaster/internal/world/viewer"
)

const (
	margin = 10

	barWidth  = 200
	barHeight = 20
	barColor  = 0x444444

	crosshairSize  = 10
	crosshairColor = 0xFFFFFF
	ringRadius     = 14

	markerRadius = 2.5
	markerLength = 8
	markerColor  = 0xFF0000
	headingColor = 0xFFFF00

	textColor     = 0xFFFFFF
	controlsColor = 0xCCCCCC

	// Controls is the help line shown while playing.
	Controls = "WASD: Move | Q/E or Mouse: Look | F: Flashlight | Esc: Quit"
)

// Config defines what to display in the HUD
type Config struct {
	ShowMinimap   bool
	ShowCrosshair bool
	ShowControls  bool
	MinimapSize   int // Side of the minimap square in pixels
}

// DefaultConfig returns the full HUD
func DefaultConfig() Config {
	return Config{
		ShowMinimap:   true,
		ShowCrosshair: true,
		ShowControls:  true,
		MinimapSize:   120,
	}
}

// HUD draws the overlay for one frame.
type HUD struct {
	config Config
}

// New creates a HUD with the given configuration
func New(config Config) *HUD {
	if config.MinimapSize <= 0 {
		config.MinimapSize = DefaultConfig().MinimapSize
	}
	return &HUD{config: config}
}

// Draw paints the overlay into c and returns the text to draw on top.
func (h *HUD) Draw(c *canvas.Canvas, m *grid.Map, pose viewer.Pose, health, maxHealth int) []canvas.Label {
	if h.config.ShowMinimap {
		DrawMinimap(c, m, pose, h.config.MinimapSize)
	}
	DrawHealthBar(c, health, maxHealth)
	if h.config.ShowCrosshair {
		DrawCrosshair(c)
	}

	labels := []canvas.Label{{
		Text:  fmt.Sprintf("Health: %d", health),
		X:     margin,
		Y:     c.Height - 2*margin - barHeight - 25,
		Color: textColor,
		Scale: 1,
	}}
	if h.config.ShowControls {
		labels = append(labels, canvas.Label{
			Text:  Controls,
			X:     margin,
			Y:     margin,
			Color: controlsColor,
			Scale: 1,
		})
	}
	return labels
}

// MinimapOrigin returns the top-left corner and the cell size of the
// minimap for a map drawn at the given size.
func MinimapOrigin(c *canvas.Canvas, m *grid.Map, size int) (x, y, cell int) {
	cell = max(size/max(m.Width(), m.Height()), 1)
	return c.Width - size - margin, margin, cell
}

// DrawMinimap draws the map in the top-right corner with an arrow for the
// viewer. Empty cells are black.
func DrawMinimap(c *canvas.Canvas, m *grid.Map, pose viewer.Pose, size int) {
	ox, oy, cell := MinimapOrigin(c, m, size)

	for row := 0; row < m.Height(); row++ {
		for col := 0; col < m.Width(); col++ {
			kind := m.CellAt(col, row)
			color := uint32(0x000000)
			if kind != grid.Empty {
				color = grid.ColorOf(kind)
			}
			c.FillRect(ox+col*cell, oy+row*cell, cell, cell, color)
		}
	}

	px := ox + int(pose.X*float64(cell))
	py := oy + int(pose.Y*float64(cell))
	cos, sin := math.Cos(pose.Heading), math.Sin(pose.Heading)

	tipX := px + int(cos*6)
	tipY := py + int(sin*6)
	leftX := px + int(cos*-3-sin*2)
	leftY := py + int(sin*-3+cos*2)
	rightX := px + int(cos*-3+sin*2)
	rightY := py + int(sin*-3-cos*2)

	c.Line(px, py, tipX, tipY, 0xFFFF00)
	c.Line(px, py, leftX, leftY, 0xFFFFFF)
	c.Line(px, py, rightX, rightY, 0xFFFFFF)
	c.Line(leftX, leftY, rightX, rightY, 0xFFFFFF)
	c.Set(px, py, 0xFF0000)
}

// HealthColor returns green above 60, yellow above 30 and red otherwise.
func HealthColor(health int) uint32 {
	switch {
	case health > 60:
		return 0x44FF44
	case health > 30:
		return 0xFFFF44
	default:
		return 0xFF4444
	}
}

// DrawHealthBar draws the bar in the bottom-left corner.
func DrawHealthBar(c *canvas.Canvas, health, maxHealth int) {
	x := margin
	y := c.Height - 2*margin - barHeight
	c.FillRect(x, y, barWidth, barHeight, barColor)

	if maxHealth <= 0 || health <= 0 {
		return
	}
	percent := float64(min(health, maxHealth)) / float64(maxHealth)
	fill := int(float64(barWidth-4) * percent)
	c.FillRect(x+2, y+2, fill, barHeight-4, HealthColor(health*100/maxHealth))
}

// DrawCrosshair draws a cross in the middle of the screen.
func DrawCrosshair(c *canvas.Canvas) {
	cx, cy := c.Width/2, c.Height/2
	for t := -1; t <= 1; t++ {
		c.Line(cx-crosshairSize, cy+t, cx+crosshairSize, cy+t, crosshairColor)
		c.Line(cx+t, cy-crosshairSize, cx+t, cy+crosshairSize, crosshairColor)
	}
}

// Markers returns the smooth shapes drawn on top of the frame: a ring
// around the crosshair and the viewer's dot and heading on the minimap.
func (h *HUD) Markers(c *canvas.Canvas, m *grid.Map, pose viewer.Pose) []canvas.Shape {
	var shapes []canvas.Shape
	if h.config.ShowCrosshair {
		shapes = append(shapes, canvas.Shape{
			Kind:   canvas.Ring,
			X:      float64(c.Width / 2),
			Y:      float64(c.Height / 2),
			Radius: ringRadius,
			Width:  1,
			Color:  crosshairColor,
		})
	}
	if h.config.ShowMinimap {
		ox, oy, cell := MinimapOrigin(c, m, h.config.MinimapSize)
		px := float64(ox) + pose.X*float64(cell)
		py := float64(oy) + pose.Y*float64(cell)
		shapes = append(shapes,
			canvas.Shape{
				Kind:  canvas.Segment,
				X:     px,
				Y:     py,
				X1:    px + math.Cos(pose.Heading)*markerLength,
				Y1:    py + math.Sin(pose.Heading)*markerLength,
				Width: 1.5,
				Color: headingColor,
			},
			canvas.Shape{Kind: canvas.FilledCircle, X: px, Y: py, Radius: markerRadius, Color: markerColor},
		)
	}
	return shapes
}
