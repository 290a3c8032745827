package game

import (
	"math"
	"math/rand"

	"chosenoffset.com/gridcaster/internal/render"
	"chosenoffset.com/gridcaster/internal/render/effects"
	"chosenoffset.com/gridcaster/internal/render/lighting"
	"chosenoffset.com/gridcaster/internal/render/raycast"
	"chosenoffset.com/gridcaster/internal/simulation"
	"chosenoffset.com/gridcaster/internal/ui/hud"
	"chosenoffset.com/gridcaster/internal/world/grid"
	"chosenoffset.com/gridcaster/internal/world/viewer"
)

const messageDuration = 1.5

// Game holds the state of one level being played.
type Game struct {
	Level    grid.Level
	Viewer   *viewer.Viewer
	Caster   *raycast.RayCaster
	Lighting *lighting.Manager
	Effects  *effects.Effects
	HUD      *hud.HUD
	InputMgr render.InputManager

	MouseSensitivity float64

	// flashlightOnStart is the flashlight state a level (re)starts with
	flashlightOnStart bool

	// UI state
	Messages []Message

	rng         *rand.Rand
	lastCursorX int
	cursorReady bool
}

// NewGame sets up a level with the viewer at its spawn.
func NewGame(level grid.Level, cfg *simulation.Config, input render.InputManager) *Game {
	v := viewer.FromSpawn(level.Spawn)
	v.Speed = cfg.Viewer.Speed
	v.TurnRate = cfg.Viewer.TurnRate
	v.Margin = cfg.Viewer.Margin
	v.MaxStep = cfg.Viewer.MaxStep

	g := &Game{
		Level:            level,
		Viewer:           v,
		Caster:           raycast.New(),
		Lighting:         lighting.NewManager(),
		Effects:          effects.New(),
		HUD:              hud.New(hud.DefaultConfig()),
		InputMgr:         input,
		MouseSensitivity: cfg.Input.MouseSensitivity,
		rng:              rand.New(rand.NewSource(1)),

		flashlightOnStart: cfg.Render.Flashlight.StartOn,
	}

	beam := cfg.Render.Flashlight
	g.Lighting.SetBeam(beam.Cone(), beam.Boost, beam.Dim)
	g.Lighting.Enable(beam.StartOn)

	g.Caster.FOV = cfg.Render.FOV()
	g.Caster.MaxDepth = cfg.Render.MaxDepth
	g.Caster.IterationCap = cfg.Render.IterationCap
	g.Caster.Workers = cfg.Render.Workers
	g.Caster.Light = g.Lighting.FlashlightIntensity

	return g
}

// Update reads the movement keys and the mouse, and moves the viewer. It
// reports whether a wall blocked the movement and whether the viewer tried
// to move at all.
func (g *Game) Update(dt float64) (hitWall, moving bool) {
	g.updateMessages(dt)

	// Mouse look
	x, _ := g.InputMgr.CursorPosition()
	if g.cursorReady {
		g.Viewer.Rotate(float64(x-g.lastCursorX) * g.MouseSensitivity)
	}
	g.lastCursorX = x
	g.cursorReady = true

	if g.InputMgr.IsKeyPressed(render.KeyQ) {
		g.Viewer.Turn(dt, -1)
	}
	if g.InputMgr.IsKeyPressed(render.KeyE) {
		g.Viewer.Turn(dt, 1)
	}

	if g.InputMgr.IsKeyJustPressed(render.KeyF) {
		if g.Lighting.Toggle() {
			g.ShowMessage("Flashlight on")
		} else {
			g.ShowMessage("Flashlight off")
		}
	}

	moveX, moveY := g.moveVector()
	if moveX == 0 && moveY == 0 {
		return false, false
	}
	return g.Viewer.Update(dt, moveX, moveY, g.Level.Map), true
}

// moveVector returns the normalized world direction of the held movement
// keys, or zero when they cancel out.
func (g *Game) moveVector() (float64, float64) {
	fx, fy := g.Viewer.Direction()
	var mx, my float64

	if g.pressed(render.KeyW, render.KeyUp) {
		mx += fx
		my += fy
	}
	if g.pressed(render.KeyS, render.KeyDown) {
		mx -= fx
		my -= fy
	}
	// Strafing is perpendicular to the heading
	if g.pressed(render.KeyA, render.KeyLeft) {
		mx += fy
		my -= fx
	}
	if g.pressed(render.KeyD, render.KeyRight) {
		mx -= fy
		my += fx
	}

	length := math.Hypot(mx, my)
	if length < 1e-6 {
		return 0, 0
	}
	return mx / length, my / length
}

func (g *Game) pressed(keys ...render.Key) bool {
	for _, k := range keys {
		if g.InputMgr.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// Reset puts the viewer back on the spawn and clears the damage effects,
// the messages and the flashlight.
func (g *Game) Reset() {
	spawn := viewer.FromSpawn(g.Level.Spawn)
	g.Viewer.X, g.Viewer.Y, g.Viewer.Heading = spawn.X, spawn.Y, spawn.Heading

	g.Effects.Reset()
	g.Lighting.Reset()
	if g.flashlightOnStart {
		g.Lighting.Enable(true)
	}
	g.Messages = g.Messages[:0]
	g.ResetCursor()
}

// ResetCursor forgets the last cursor position so the next update does not
// turn the view by the distance the cursor moved while released.
func (g *Game) ResetCursor() {
	g.cursorReady = false
}

// CurrentCell returns the kind of cell the viewer stands in.
func (g *Game) CurrentCell() grid.CellKind {
	col, row := g.Viewer.Cell()
	return g.Level.Map.CellAt(col, row)
}

func (g *Game) updateMessages(dt float64) {
	active := g.Messages[:0]
	for _, msg := range g.Messages {
		msg.TimeLeft -= dt
		if msg.TimeLeft > 0 {
			active = append(active, msg)
		}
	}
	g.Messages = active
}

// ShowMessage displays a message for a short time.
func (g *Game) ShowMessage(text string) {
	g.Messages = append(g.Messages, Message{
		Text:     text,
		TimeLeft: messageDuration,
		MaxTime:  messageDuration,
	})
}
