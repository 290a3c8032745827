package game

import (
	"github.com/sirupsen/logrus"

	"chosenoffset.com/gridcaster/internal/core/gamestate"
	"chosenoffset.com/gridcaster/internal/logger"
	"chosenoffset.com/gridcaster/internal/render"
	"chosenoffset.com/gridcaster/internal/simulation"
	"chosenoffset.com/gridcaster/internal/ui/canvas"
	"chosenoffset.com/gridcaster/internal/ui/menu"
	"chosenoffset.com/gridcaster/internal/world/grid"
)

// ebiten ticks 60 times per second.
const (
	ticksPerSecond = 60
	tickDelta      = 1.0 / ticksPerSecond
)

// Manager handles the overall game state, including menus and gameplay.
type Manager struct {
	ScreenWidth  int
	ScreenHeight int
	Config       *simulation.Config
	Levels       []grid.Level
	Session      *gamestate.Session
	LevelMenu    *menu.LevelMenu
	Game         *Game
	Renderer     render.Renderer
	InputMgr     render.InputManager
	Sound        SoundPlayer
	Window       render.Window

	// Frames drawn in the current second, and the last full count
	FPS      int
	frames   int
	fpsTicks int

	// Framebuffer at render resolution and its upload target
	fb       []uint32
	pixels   []byte
	frame    render.Image
	fbWidth  int
	fbHeight int
}

// NewManager creates a game manager on the splash screen.
func NewManager(r render.Renderer, input render.InputManager, cfg *simulation.Config, levels []grid.Level) *Manager {
	names := make([]string, len(levels))
	for i, l := range levels {
		names[i] = l.Name
	}

	rules := gamestate.DefaultRules()
	rules.StartHealth = cfg.Damage.StartHealth
	rules.WallDamage = cfg.Damage.WallDamage
	rules.WallCooldown = cfg.Damage.WallCooldown
	rules.HazardDamage = cfg.Damage.HazardDamage
	rules.HazardCooldown = cfg.Damage.HazardCooldown

	return &Manager{
		ScreenWidth:  cfg.Window.Width,
		ScreenHeight: cfg.Window.Height,
		Config:       cfg,
		Levels:       levels,
		Session:      gamestate.NewSession(rules),
		LevelMenu:    menu.NewLevelMenu(names),
		Renderer:     r,
		InputMgr:     input,
		Sound:        silentSound{},
	}
}

// SetSound sets the audio output. nil silences the game.
func (m *Manager) SetSound(s SoundPlayer) {
	if s == nil {
		s = silentSound{}
	}
	m.Sound = s
}

// SetWindow sets the window that F11 switches to fullscreen. Without one
// the key is ignored.
func (m *Manager) SetWindow(w render.Window) {
	m.Window = w
}

// Start begins the menu music. Call it once before running the loop.
func (m *Manager) Start() {
	m.Sound.PlayMenuMusic()
}

// Update advances the game by one tick.
func (m *Manager) Update() error {
	if m.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		logger.Log.Info("Quit requested")
		m.Sound.StopAll()
		return render.ErrQuit
	}

	dt := tickDelta
	m.countFrames()

	if m.Window != nil && m.InputMgr.IsKeyJustPressed(render.KeyF11) {
		fullscreen := !m.Window.IsFullscreen()
		m.Window.SetFullscreen(fullscreen)
		logger.Log.WithField("fullscreen", fullscreen).Info("Toggled fullscreen")
	}

	switch m.Session.State() {
	case gamestate.StateSplash:
		m.Session.UpdateSplash(dt, m.InputMgr.IsKeyJustPressed(render.KeySpace))
	case gamestate.StateLevelSelect:
		if i, ok := m.LevelMenu.Update(m.InputMgr); ok {
			m.StartLevel(i)
		}
	case gamestate.StatePlaying:
		m.updatePlaying(dt)
	case gamestate.StateSuccess:
		if m.InputMgr.IsKeyJustPressed(render.KeySpace) {
			m.returnToMenu()
		}
	case gamestate.StateGameOver:
		if m.InputMgr.IsKeyJustPressed(render.KeyR) {
			m.restartLevel()
		} else if m.InputMgr.IsKeyJustPressed(render.KeyM) {
			m.returnToMenu()
		}
	}
	return nil
}

// StartLevel begins level n of the catalog.
func (m *Manager) StartLevel(n int) {
	if n < 0 || n >= len(m.Levels) {
		logger.Log.WithField("level", n).Warn("No such level")
		return
	}
	level := m.Levels[n]

	m.Session.StartLevel(n)
	m.Game = NewGame(level, m.Config, m.InputMgr)
	m.InputMgr.SetCursorCaptured(true)
	m.Sound.PlayGameMusic()

	logger.Log.WithField("level", level.Name).Info("Level started")
}

// restartLevel plays the current level again from its spawn.
func (m *Manager) restartLevel() {
	if m.Game == nil {
		m.StartLevel(m.Session.Level())
		return
	}
	m.Session.Restart()
	m.Game.Reset()
	m.InputMgr.SetCursorCaptured(true)
	m.Sound.PlayGameMusic()

	logger.Log.WithField("level", m.Game.Level.Name).Info("Level restarted")
}

// countFrames publishes the number of frames drawn once per second of ticks.
func (m *Manager) countFrames() {
	m.fpsTicks++
	if m.fpsTicks < ticksPerSecond {
		return
	}
	m.fpsTicks = 0
	m.FPS = m.frames
	m.frames = 0
	logger.Log.WithField("fps", m.FPS).Debug("Frame rate")
}

func (m *Manager) returnToMenu() {
	if m.Session.ReturnToMenu() {
		m.Sound.PlayMenuMusic()
	}
}

func (m *Manager) updatePlaying(dt float64) {
	hitWall, moving := m.Game.Update(dt)
	if moving {
		m.Sound.PlayFootstep()
	}

	out := m.Session.Step(dt, hitWall, m.Game.CurrentCell())
	if out.Damaged {
		m.Game.Effects.TriggerDamage()
		if !out.Died {
			m.Sound.PlayDamage()
		}
	}
	m.Game.Effects.Update(dt)

	switch {
	case out.Died:
		m.Sound.PlayDeath()
		m.InputMgr.SetCursorCaptured(false)
		logger.Log.WithField("level", m.Game.Level.Name).Info("Viewer died")
	case out.Completed:
		m.Sound.PlaySuccess()
		m.InputMgr.SetCursorCaptured(false)
		logger.Log.WithFields(logrus.Fields{
			"level":   m.Game.Level.Name,
			"seconds": m.Session.Elapsed(),
			"damage":  m.Session.DamageTaken(),
		}).Info("Level complete")
	}
}

// Draw draws the current state.
func (m *Manager) Draw(screen render.Image) {
	m.frames++
	sw, sh := screen.Size()
	scale := max(m.Config.Render.PixelScale, 1)
	m.ensureFrame(max(sw/scale, 1), max(sh/scale, 1))

	c := canvas.New(m.fb, m.fbWidth, m.fbHeight)
	var labels []canvas.Label
	var shapes []canvas.Shape

	switch m.Session.State() {
	case gamestate.StateSplash:
		labels = menu.DrawSplash(c, m.Session.SplashTime())
	case gamestate.StateLevelSelect:
		labels = m.LevelMenu.Draw(c)
	case gamestate.StatePlaying:
		labels = m.Game.Draw(c, m.Session.Health(), m.Session.MaxHealth())
		shapes = m.Game.Markers(c)
	case gamestate.StateSuccess:
		name := ""
		if m.Game != nil {
			name = m.Game.Level.Name
		}
		labels = menu.DrawSuccess(c, name, m.Session.Elapsed(), m.Session.DamageTaken())
	case gamestate.StateGameOver:
		labels = menu.DrawGameOver(c)
	}

	m.pixels = render.PackedToRGBA(m.fb, m.pixels)
	m.frame.WritePixels(m.pixels)

	opts := &render.DrawImageOptions{}
	if scale != 1 && render.NewGeoM != nil {
		geoM := render.NewGeoM()
		geoM.Scale(float64(scale), float64(scale))
		opts.GeoM = geoM
	}
	screen.DrawImage(m.frame, opts)

	m.drawShapes(screen, shapes, scale)
	m.drawLabels(screen, labels, scale)
}

// ensureFrame resizes the framebuffer and its image to w x h.
func (m *Manager) ensureFrame(w, h int) {
	if m.frame != nil && m.fbWidth == w && m.fbHeight == h {
		return
	}
	if m.frame != nil {
		m.frame.Dispose()
	}
	m.fb = make([]uint32, w*h)
	m.frame = m.Renderer.NewImage(w, h)
	m.fbWidth = w
	m.fbHeight = h
}

// drawShapes scales framebuffer coordinates to the screen.
func (m *Manager) drawShapes(screen render.Image, shapes []canvas.Shape, scale int) {
	s := float32(scale)
	for _, sh := range shapes {
		x, y := float32(sh.X)*s, float32(sh.Y)*s
		clr := render.Color(sh.Color)
		switch sh.Kind {
		case canvas.FilledCircle:
			m.Renderer.FillCircle(screen, x, y, float32(sh.Radius)*s, clr)
		case canvas.Ring:
			m.Renderer.StrokeCircle(screen, x, y, float32(sh.Radius)*s, float32(sh.Width)*s, clr)
		case canvas.Segment:
			m.Renderer.StrokeLine(screen, x, y, float32(sh.X1)*s, float32(sh.Y1)*s, float32(sh.Width)*s, clr)
		}
	}
}

// drawLabels draws text at screen resolution so it stays sharp when the
// framebuffer is scaled up.
func (m *Manager) drawLabels(screen render.Image, labels []canvas.Label, scale int) {
	for _, l := range labels {
		x, y := l.X*scale, l.Y*scale
		if l.Centered {
			w, _ := m.Renderer.MeasureText(l.Text, l.Scale)
			x -= w / 2
		}
		m.Renderer.DrawText(screen, l.Text, x, y, render.Color(l.Color), l.Scale)
	}
}

// Layout handles window resize.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	m.ScreenWidth = outsideWidth
	m.ScreenHeight = outsideHeight
	return outsideWidth, outsideHeight
}
