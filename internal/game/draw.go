package game

import (
	"chosenoffset.com/gridcaster/internal/logger"
	"chosenoffset.com/gridcaster/internal/ui/canvas"
)

// Draw renders the level into the canvas and returns the text to draw on
// top of it.
func (g *Game) Draw(c *canvas.Canvas, health, maxHealth int) []canvas.Label {
	// Step 1: Cast the 3D view
	pose := g.Viewer.Pose()
	if err := g.Caster.Render(c.Pix, pose, g.Level.Map, c.Width, c.Height); err != nil {
		logger.Log.WithError(err).Error("failed to render view")
		return nil
	}

	// Step 2: Shake the view only, the overlay stays put
	effectsOn := g.Effects.Active()
	if effectsOn {
		g.Effects.ApplyShake(c.Pix, c.Width, c.Height, g.rng)
	}

	// Step 3: Minimap, health bar and crosshair
	labels := g.HUD.Draw(c, g.Level.Map, pose, health, maxHealth)

	// Step 4: Damage tint and flashlight glow over everything
	if effectsOn {
		g.Effects.Apply(c.Pix)
	}
	g.Lighting.ApplyOverlay(c.Pix, c.Width, c.Height)

	return append(labels, g.messageLabels(c)...)
}

// Markers returns the HUD shapes to draw at screen resolution.
func (g *Game) Markers(c *canvas.Canvas) []canvas.Shape {
	return g.HUD.Markers(c, g.Level.Map, g.Viewer.Pose())
}

// messageLabels fades messages out over their lifetime.
func (g *Game) messageLabels(c *canvas.Canvas) []canvas.Label {
	labels := make([]canvas.Label, 0, len(g.Messages))
	for i, msg := range g.Messages {
		labels = append(labels, canvas.Label{
			Text:     msg.Text,
			X:        c.Width / 2,
			Y:        c.Height/2 + 40 + i*20,
			Color:    canvas.Lerp(0x000000, 0xFFFFFF, msg.TimeLeft/msg.MaxTime),
			Scale:    1,
			Centered: true,
		})
	}
	return labels
}
