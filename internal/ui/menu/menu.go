// Package menu draws the full-screen menus and handles level selection.
package menu

import (
	"fmt"
	"math"

	"chosenoffset.com/gridcaster/internal/render"
	"chosenoffset.com/gridcaster/internal/ui/canvas"
)

const (
	hintColor     = 0xCCCCCC
	selectedColor = 0xFFFFFF
)

// entryColors cycle through the level list.
var entryColors = []uint32{0xFFFF44, 0x44FFFF, 0xFF44FF}

// LevelMenu is the level select screen.
type LevelMenu struct {
	names    []string
	selected int
}

// NewLevelMenu creates a level menu. Only the first nine levels can be
// picked since each one is bound to a digit key.
func NewLevelMenu(names []string) *LevelMenu {
	if len(names) > 9 {
		names = names[:9]
	}
	return &LevelMenu{names: names}
}

// Selected returns the highlighted entry.
func (m *LevelMenu) Selected() int { return m.selected }

// Len returns the number of selectable levels.
func (m *LevelMenu) Len() int { return len(m.names) }

// Update reads the menu keys. It returns the chosen level index and true
// when a digit key for an available level or Space was pressed.
func (m *LevelMenu) Update(input render.InputManager) (int, bool) {
	if len(m.names) == 0 {
		return 0, false
	}

	for i := range m.names {
		key, _ := render.DigitKey(i + 1)
		if input.IsKeyJustPressed(key) {
			m.selected = i
			return i, true
		}
	}

	if input.IsKeyJustPressed(render.KeyUp) || input.IsKeyJustPressed(render.KeyW) {
		m.selected = (m.selected + len(m.names) - 1) % len(m.names)
	}
	if input.IsKeyJustPressed(render.KeyDown) || input.IsKeyJustPressed(render.KeyS) {
		m.selected = (m.selected + 1) % len(m.names)
	}
	if input.IsKeyJustPressed(render.KeySpace) {
		return m.selected, true
	}
	return 0, false
}

// Draw paints the level list over a green gradient.
func (m *LevelMenu) Draw(c *canvas.Canvas) []canvas.Label {
	for y := 0; y < c.Height; y++ {
		green := uint32(float64(y) / float64(c.Height) * 255)
		c.FillRect(0, y, c.Width, 1, green<<8)
	}

	cx := c.Width / 2
	labels := []canvas.Label{
		{Text: "SELECT LEVEL", X: cx, Y: 100, Color: 0xFFFFFF, Scale: 3, Centered: true},
	}

	if len(m.names) == 0 {
		return append(labels, canvas.Label{
			Text: "No levels found", X: cx, Y: 200, Color: 0xFF6464, Scale: 2, Centered: true,
		})
	}

	for i, name := range m.names {
		color := entryColors[i%len(entryColors)]
		text := fmt.Sprintf("%d - %s", i+1, name)
		if i == m.selected {
			color = selectedColor
			text = "> " + text + " <"
		}
		labels = append(labels, canvas.Label{
			Text: text, X: cx, Y: 200 + i*50, Color: color, Scale: 2, Centered: true,
		})
	}

	hint := fmt.Sprintf("Press 1-%d to select, or arrows and SPACE", len(m.names))
	if len(m.names) == 1 {
		hint = "Press 1 or SPACE to select"
	}
	labels = append(labels, canvas.Label{
		Text: hint, X: cx, Y: 200 + len(m.names)*50 + 50, Color: hintColor, Scale: 1, Centered: true,
	})
	return labels
}

// DrawSplash paints the title screen t seconds after it was first shown.
func DrawSplash(c *canvas.Canvas, t float64) []canvas.Label {
	c.Fill(0x001122)

	cx, cy := c.Width/2, c.Height/2
	pulse := math.Abs(math.Sin(t * 2))
	spin := canvas.Lerp(0xFF4444, 0x4444FF, math.Abs(math.Sin(t*0.5)))
	c.RotatedSquare(cx, cy+100, 8, t*2, spin)

	return []canvas.Label{
		{Text: "GRIDCASTER", X: cx, Y: cy - 60, Color: canvas.Lerp(0x4444FF, 0x8888FF, pulse), Scale: 3, Centered: true},
		{Text: "A grid ray casting dungeon", X: cx, Y: cy - 20, Color: 0xFFFFFF, Scale: 1.5, Centered: true},
		{Text: "Press SPACE to continue", X: cx, Y: cy + 40, Color: hintColor, Scale: 1, Centered: true},
	}
}

// DrawSuccess paints the level complete screen.
func DrawSuccess(c *canvas.Canvas, levelName string, elapsed float64, damage int) []canvas.Label {
	c.Fill(0x332200)

	cx, cy := c.Width/2, c.Height/2
	for i := 0; i < 10; i++ {
		a := float64(i) * 0.628
		c.Star(cx+int(math.Cos(a)*100), cy+int(math.Sin(a)*50), 0xFFD700)
	}

	return []canvas.Label{
		{Text: "LEVEL COMPLETE!", X: cx, Y: cy - 110, Color: 0xFFD700, Scale: 3, Centered: true},
		{Text: levelName, X: cx, Y: cy - 70, Color: 0xFFFFFF, Scale: 2, Centered: true},
		{Text: fmt.Sprintf("Time %.1fs  Damage taken %d", elapsed, damage), X: cx, Y: cy + 70, Color: 0xFFFFFF, Scale: 1, Centered: true},
		{Text: "Press SPACE for level select", X: cx, Y: cy + 100, Color: hintColor, Scale: 1, Centered: true},
	}
}

// DrawGameOver paints the death screen.
func DrawGameOver(c *canvas.Canvas) []canvas.Label {
	c.Fill(0x220000)

	cx, cy := c.Width/2, c.Height/2
	return []canvas.Label{
		{Text: "GAME OVER", X: cx, Y: cy - 60, Color: 0xFF4444, Scale: 3, Centered: true},
		{Text: "You have died!", X: cx, Y: cy - 20, Color: 0xFFFFFF, Scale: 2, Centered: true},
		{Text: "Press R to restart", X: cx, Y: cy + 20, Color: hintColor, Scale: 1, Centered: true},
		{Text: "Press M for menu", X: cx, Y: cy + 50, Color: hintColor, Scale: 1, Centered: true},
	}
}
