// Package gamestate holds the session state machine: which screen is shown,
// the viewer's health, and the damage cooldowns while a level is played.
package gamestate

import (
	"fmt"

	"chosenoffset.com/gridcaster/internal/world/grid"
)

// State is the screen the session is on.
type State int

const (
	StateSplash State = iota
	StateLevelSelect
	StatePlaying
	StateSuccess
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateSplash:
		return "splash"
	case StateLevelSelect:
		return "level_select"
	case StatePlaying:
		return "playing"
	case StateSuccess:
		return "success"
	case StateGameOver:
		return "game_over"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Rules are the health and damage numbers of a session.
type Rules struct {
	StartHealth    int
	WallDamage     int
	WallCooldown   float64 // Seconds
	HazardDamage   int
	HazardCooldown float64 // Seconds
	SplashDuration float64 // Seconds before the splash moves on by itself
}

// DefaultRules returns the stock rules.
func DefaultRules() Rules {
	return Rules{
		StartHealth:    100,
		WallDamage:     5,
		WallCooldown:   0.5,
		HazardDamage:   10,
		HazardCooldown: 0.3,
		SplashDuration: 3,
	}
}

// Outcome reports what happened during one playing step.
type Outcome struct {
	Damaged   bool
	Died      bool
	Completed bool
}

// Session is the state machine of one run of the game. It is not safe for
// concurrent use.
type Session struct {
	rules Rules
	state State
	level int

	health         int
	wallCooldown   float64
	hazardCooldown float64
	splashTimer    float64
	elapsed        float64
	damageTaken    int
}

// NewSession returns a session on the splash screen.
func NewSession(rules Rules) *Session {
	return &Session{
		rules:  rules,
		state:  StateSplash,
		health: rules.StartHealth,
	}
}

// State returns the current screen.
func (s *Session) State() State { return s.state }

// Level returns the index of the current or last played level.
func (s *Session) Level() int { return s.level }

// Health returns the remaining health.
func (s *Session) Health() int { return s.health }

// MaxHealth returns the health a level starts with.
func (s *Session) MaxHealth() int { return s.rules.StartHealth }

// Elapsed returns the seconds spent in the current level.
func (s *Session) Elapsed() float64 { return s.elapsed }

// DamageTaken returns the damage taken in the current level.
func (s *Session) DamageTaken() int { return s.damageTaken }

// SplashTime returns the seconds the splash screen has been shown.
func (s *Session) SplashTime() float64 { return s.splashTimer }

// UpdateSplash advances the splash timer. It moves on to level select when
// skip is set or the splash has been shown long enough, and reports whether
// it did.
func (s *Session) UpdateSplash(dt float64, skip bool) bool {
	if s.state != StateSplash {
		return false
	}
	s.splashTimer += dt
	if skip || s.splashTimer > s.rules.SplashDuration {
		s.state = StateLevelSelect
		return true
	}
	return false
}

// StartLevel begins level n with full health.
func (s *Session) StartLevel(n int) {
	s.level = n
	s.state = StatePlaying
	s.health = s.rules.StartHealth
	s.wallCooldown = 0
	s.hazardCooldown = 0
	s.elapsed = 0
	s.damageTaken = 0
}

// Restart begins the current level again.
func (s *Session) Restart() {
	s.StartLevel(s.level)
}

// ReturnToMenu goes back to level select from a finished level.
func (s *Session) ReturnToMenu() bool {
	if s.state != StateSuccess && s.state != StateGameOver {
		return false
	}
	s.state = StateLevelSelect
	return true
}

// Step applies one tick of play: hitWall is the result of the viewer's
// movement and cell is the kind of cell the viewer ended up in.
func (s *Session) Step(dt float64, hitWall bool, cell grid.CellKind) Outcome {
	var out Outcome
	if s.state != StatePlaying {
		return out
	}
	s.elapsed += dt

	if hitWall && s.wallCooldown <= 0 {
		s.damage(s.rules.WallDamage, &out)
		s.wallCooldown = s.rules.WallCooldown
	}

	if s.state == StatePlaying && cell == grid.Exit {
		s.state = StateSuccess
		out.Completed = true
	}

	if s.state == StatePlaying && cell == grid.Hazard && s.hazardCooldown <= 0 {
		s.damage(s.rules.HazardDamage, &out)
		s.hazardCooldown = s.rules.HazardCooldown
	}

	if s.wallCooldown > 0 {
		s.wallCooldown -= dt
	}
	if s.hazardCooldown > 0 {
		s.hazardCooldown -= dt
	}
	return out
}

func (s *Session) damage(amount int, out *Outcome) {
	s.health -= amount
	s.damageTaken += amount
	out.Damaged = true
	if s.health <= 0 {
		s.health = 0
		s.state = StateGameOver
		out.Died = true
	}
}
