package lighting

import (
	"math"
)

const (
	// DefaultCone is the half angle of the flashlight beam.
	DefaultCone = math.Pi / 4
	// DefaultBoost is the extra brightness at the centre of the beam.
	DefaultBoost = 1.5
	// DefaultDim is the brightness outside the beam.
	DefaultDim = 0.1
	// overlayPeak is the largest per-channel brightening of the overlay.
	overlayPeak = 60.0
)

// Manager handles the player's flashlight.
type Manager struct {
	flashlightOn bool
	cone         float64
	boost        float64
	dim          float64
}

// NewManager creates a lighting manager with the flashlight off.
func NewManager() *Manager {
	return &Manager{
		cone:  DefaultCone,
		boost: DefaultBoost,
		dim:   DefaultDim,
	}
}

// SetBeam configures the beam half angle, the centre boost and the
// brightness outside the beam. Non-positive cone values are ignored.
func (m *Manager) SetBeam(cone, boost, dim float64) {
	if cone > 0 {
		m.cone = cone
	}
	m.boost = math.Max(boost, 0)
	m.dim = math.Max(dim, 0)
}

// Toggle flips the flashlight and returns the new state.
func (m *Manager) Toggle() bool {
	m.flashlightOn = !m.flashlightOn
	return m.flashlightOn
}

// Enable turns the flashlight on or off.
func (m *Manager) Enable(on bool) {
	m.flashlightOn = on
}

// IsOn returns whether the flashlight is on.
func (m *Manager) IsOn() bool {
	return m.flashlightOn
}

// Reset turns the flashlight off, as at the start of a level.
func (m *Manager) Reset() {
	m.flashlightOn = false
}

// FlashlightIntensity returns the brightness multiplier for a ray that is
// angleDiff radians off the view direction. With the flashlight off every
// ray is lit at 1.0. Inside the beam brightness falls linearly from
// 1+boost at the centre to 1 at the edge; outside it drops to the dim level.
func (m *Manager) FlashlightIntensity(angleDiff float64) float64 {
	if !m.flashlightOn {
		return 1.0
	}

	diff := math.Abs(angleDiff)
	if diff < m.cone {
		coneFactor := 1.0 - diff/m.cone
		return 1.0 + coneFactor*m.boost
	}
	return m.dim
}

// ApplyOverlay brightens a disc in the centre of the frame when the
// flashlight is on.
func (m *Manager) ApplyOverlay(fb []uint32, width, height int) {
	if !m.flashlightOn || width <= 0 || height <= 0 || len(fb) < width*height {
		return
	}

	centerX := float64(width) / 2
	centerY := float64(height) / 2
	maxRadius := float64(min(width, height)) / 3
	if maxRadius <= 0 {
		return
	}

	// Step 1: Only visit the bounding box of the disc
	x0 := max(int(centerX-maxRadius), 0)
	x1 := min(int(centerX+maxRadius)+1, width)
	y0 := max(int(centerY-maxRadius), 0)
	y1 := min(int(centerY+maxRadius)+1, height)

	// Step 2: Add white falling off with distance from the centre
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dx := float64(x) - centerX
			dy := float64(y) - centerY
			dist := math.Sqrt(dx*dx + dy*dy)
			if dist >= maxRadius {
				continue
			}
			brightness := uint32((1.0 - dist/maxRadius) * overlayPeak)
			idx := y*width + x
			fb[idx] = AddWhite(fb[idx], brightness)
		}
	}
}

// AddWhite adds amount to every channel of a packed color, saturating at 255.
func AddWhite(c, amount uint32) uint32 {
	r := min((c>>16&0xFF)+amount, 0xFF)
	g := min((c>>8&0xFF)+amount, 0xFF)
	b := min((c&0xFF)+amount, 0xFF)
	return r<<16 | g<<8 | b
}
