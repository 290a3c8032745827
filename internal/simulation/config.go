// Package simulation provides the tunable rules of a play session.
// They are loaded from a JSON file so movement, rendering and damage can be
// adjusted without rebuilding.
package simulation

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
)

// Config holds all tunables of the game
type Config struct {
	// Viewer movement
	Viewer ViewerConfig `json:"viewer"`

	// Ray casting
	Render RenderConfig `json:"render"`

	// Health and damage rules
	Damage DamageConfig `json:"damage"`

	// Mouse look
	Input InputConfig `json:"input"`

	// Sound volumes
	Audio AudioConfig `json:"audio"`

	// Window size and title
	Window WindowConfig `json:"window"`
}

// ViewerConfig defines how the viewer moves
type ViewerConfig struct {
	Speed    float64 `json:"speed"`     // Tiles per second
	TurnRate float64 `json:"turn_rate"` // Radians per second
	Margin   float64 `json:"margin"`    // Collision margin in tiles
	MaxStep  float64 `json:"max_step"`  // Longest single collision sub-step
}

// RenderConfig defines the ray caster
type RenderConfig struct {
	FOVDegrees   float64 `json:"fov_degrees"`
	MaxDepth     float64 `json:"max_depth"`     // Tiles
	IterationCap int     `json:"iteration_cap"` // Base DDA step limit
	Workers      int     `json:"workers"`       // Column bands rendered in parallel
	PixelScale   int     `json:"pixel_scale"`   // Screen pixels per framebuffer pixel

	Flashlight FlashlightConfig `json:"flashlight"`
}

// FlashlightConfig defines the flashlight beam
type FlashlightConfig struct {
	ConeDegrees float64 `json:"cone_degrees"` // Half angle of the beam
	Boost       float64 `json:"boost"`        // Extra brightness at the beam centre
	Dim         float64 `json:"dim"`          // Brightness outside the beam
	StartOn     bool    `json:"start_on"`
}

// DamageConfig defines health and the damage sources
type DamageConfig struct {
	StartHealth    int     `json:"start_health"`
	WallDamage     int     `json:"wall_damage"`
	WallCooldown   float64 `json:"wall_cooldown"` // Seconds
	HazardDamage   int     `json:"hazard_damage"`
	HazardCooldown float64 `json:"hazard_cooldown"` // Seconds
}

// InputConfig defines mouse look
type InputConfig struct {
	MouseSensitivity float64 `json:"mouse_sensitivity"` // Radians per pixel
}

// AudioConfig defines sound output
type AudioConfig struct {
	Enabled     bool    `json:"enabled"`
	MusicVolume float64 `json:"music_volume"`
	SFXVolume   float64 `json:"sfx_volume"`
}

// WindowConfig defines the window
type WindowConfig struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Title  string `json:"title"`
}

// DefaultConfig returns the stock rules
func DefaultConfig() *Config {
	return &Config{
		Viewer: ViewerConfig{
			Speed:    3.0,
			TurnRate: 2.0,
			Margin:   0.1,
			MaxStep:  0.25,
		},
		Render: RenderConfig{
			FOVDegrees:   60,
			MaxDepth:     20,
			IterationCap: 100,
			Workers:      4,
			PixelScale:   1,
			Flashlight: FlashlightConfig{
				ConeDegrees: 45,
				Boost:       1.5,
				Dim:         0.1,
			},
		},
		Damage: DamageConfig{
			StartHealth:    100,
			WallDamage:     5,
			WallCooldown:   0.5,
			HazardDamage:   10,
			HazardCooldown: 0.3,
		},
		Input: InputConfig{
			MouseSensitivity: 0.003,
		},
		Audio: AudioConfig{
			Enabled:     true,
			MusicVolume: 1.0,
			SFXVolume:   0.6,
		},
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "Gridcaster",
		},
	}
}

// LoadConfig loads the config from a JSON file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return config, nil
}

// Validate rejects values the game cannot run with
func (c *Config) Validate() error {
	var errs []error

	if c.Viewer.Speed < 0 || c.Viewer.TurnRate < 0 {
		errs = append(errs, errors.New("viewer speed and turn rate must not be negative"))
	}
	if c.Viewer.Margin < 0 || c.Viewer.Margin >= 0.5 {
		errs = append(errs, fmt.Errorf("viewer margin %v must be in [0, 0.5)", c.Viewer.Margin))
	}
	if c.Viewer.MaxStep <= 0 || c.Viewer.MaxStep >= 1 {
		errs = append(errs, fmt.Errorf("viewer max step %v must be in (0, 1)", c.Viewer.MaxStep))
	}
	if c.Render.FOVDegrees <= 0 || c.Render.FOVDegrees >= 180 {
		errs = append(errs, fmt.Errorf("fov %v must be in (0, 180)", c.Render.FOVDegrees))
	}
	if c.Render.MaxDepth <= 0 {
		errs = append(errs, fmt.Errorf("max depth %v must be positive", c.Render.MaxDepth))
	}
	if f := c.Render.Flashlight; f.ConeDegrees <= 0 || f.ConeDegrees > 90 {
		errs = append(errs, fmt.Errorf("flashlight cone %v must be in (0, 90]", f.ConeDegrees))
	}
	if f := c.Render.Flashlight; f.Boost < 0 || f.Dim < 0 || f.Dim > 1 {
		errs = append(errs, fmt.Errorf("flashlight boost %v must not be negative and dim %v must be in [0, 1]", f.Boost, f.Dim))
	}
	if c.Render.PixelScale < 1 {
		errs = append(errs, fmt.Errorf("pixel scale %d must be at least 1", c.Render.PixelScale))
	}
	if c.Damage.StartHealth <= 0 {
		errs = append(errs, fmt.Errorf("start health %d must be positive", c.Damage.StartHealth))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}

	return errors.Join(errs...)
}

// FOV returns the field of view in radians
func (r RenderConfig) FOV() float64 {
	return r.FOVDegrees * math.Pi / 180
}

// Cone returns the beam half angle in radians
func (f FlashlightConfig) Cone() float64 {
	return f.ConeDegrees * math.Pi / 180
}
