// Package effects applies short-lived full-screen effects, such as the red
// tint and shake after taking damage, to a finished framebuffer.
package effects

import (
	"math"
	"math/rand"
)

const (
	damageDuration = 0.5
	shakeDuration  = 0.3
	maxShake       = 5.0
	maxTint        = 100.0
)

// Effects tracks the timers of the damage feedback effects.
type Effects struct {
	damageTimer float64
	shakeTimer  float64

	distortion float64
	shake      float64

	scratch []uint32
}

// New returns an idle effects tracker.
func New() *Effects {
	return &Effects{}
}

// TriggerDamage starts the damage tint and screen shake.
func (e *Effects) TriggerDamage() {
	e.damageTimer = damageDuration
	e.shakeTimer = shakeDuration
}

// Update advances the timers by dt seconds.
func (e *Effects) Update(dt float64) {
	if e.damageTimer > 0 {
		e.damageTimer -= dt
		e.distortion = math.Max(math.Min(e.damageTimer/damageDuration, 1), 0)
	} else {
		e.distortion = 0
	}

	if e.shakeTimer > 0 {
		e.shakeTimer -= dt
		e.shake = math.Max(math.Min(e.shakeTimer/shakeDuration, 1), 0) * maxShake
	} else {
		e.shake = 0
	}
}

// Reset clears all running effects.
func (e *Effects) Reset() {
	e.damageTimer = 0
	e.shakeTimer = 0
	e.distortion = 0
	e.shake = 0
}

// Active reports whether any effect still has to be drawn.
func (e *Effects) Active() bool {
	return e.distortion > 0 || e.shake >= 1
}

// Apply adds the red damage tint to every pixel.
func (e *Effects) Apply(fb []uint32) {
	if e.distortion <= 0 {
		return
	}
	intensity := uint32(e.distortion * maxTint)
	for i, px := range fb {
		r := min((px>>16&0xFF)+intensity, 0xFF)
		fb[i] = r<<16 | px&0xFFFF
	}
}

// ApplyShake shifts the frame by a random offset of up to the current
// shake amplitude, repeating edge pixels where the frame was moved away.
func (e *Effects) ApplyShake(fb []uint32, width, height int, rng *rand.Rand) {
	amp := int(e.shake)
	if amp < 1 || width <= 0 || height <= 0 || len(fb) < width*height {
		return
	}

	shakeX := rng.Intn(2*amp+1) - amp
	shakeY := rng.Intn(2*amp+1) - amp
	if shakeX == 0 && shakeY == 0 {
		return
	}

	if cap(e.scratch) < width*height {
		e.scratch = make([]uint32, width*height)
	}
	src := e.scratch[:width*height]
	copy(src, fb[:width*height])

	for y := 0; y < height; y++ {
		sy := clamp(y-shakeY, 0, height-1)
		for x := 0; x < width; x++ {
			sx := clamp(x-shakeX, 0, width-1)
			fb[y*width+x] = src[sy*width+sx]
		}
	}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
