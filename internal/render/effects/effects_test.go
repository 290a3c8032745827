package effects

import (
	"math"
	"math/rand"
	"testing"
)

func TestDamageTimers(t *testing.T) {
	e := New()
	e.Update(0.1)
	if e.Active() {
		t.Fatal("Expected no active effect before damage")
	}

	e.TriggerDamage()
	e.Update(0.1)
	if math.Abs(e.distortion-0.8) > 1e-9 {
		t.Errorf("Expected distortion 0.8, got %v", e.distortion)
	}
	if want := (0.2 / 0.3) * 5; math.Abs(e.shake-want) > 1e-9 {
		t.Errorf("Expected shake %v, got %v", want, e.shake)
	}

	e.Update(1)
	e.Update(0.016)
	if e.distortion != 0 || e.shake != 0 {
		t.Errorf("Expected effects to expire, got distortion=%v shake=%v", e.distortion, e.shake)
	}
}

func TestApplyTint(t *testing.T) {
	e := New()
	fb := []uint32{0x000000, 0xF01020, 0x123456}

	e.Apply(fb)
	if fb[0] != 0 {
		t.Fatal("Expected no tint without damage")
	}

	e.TriggerDamage()
	e.Update(0) // distortion = 1
	e.Apply(fb)

	want := []uint32{0x640000, 0xFF1020, 0x763456}
	for i := range fb {
		if fb[i] != want[i] {
			t.Errorf("Pixel %d: expected %06X, got %06X", i, want[i], fb[i])
		}
	}
}

func TestApplyShakeKeepsFrameFilled(t *testing.T) {
	const w, h = 8, 6
	fb := make([]uint32, w*h)
	for i := range fb {
		fb[i] = uint32(i + 1)
	}

	e := New()
	e.TriggerDamage()
	e.Update(0)

	rng := rand.New(rand.NewSource(3))
	for n := 0; n < 20; n++ {
		e.ApplyShake(fb, w, h, rng)
	}
	for i, px := range fb {
		if px == 0 || px > w*h {
			t.Fatalf("Pixel %d holds %d, expected a value from the source frame", i, px)
		}
	}
}

func TestResetClearsEffects(t *testing.T) {
	e := New()
	e.TriggerDamage()
	e.Update(0)
	e.Reset()
	if e.Active() {
		t.Error("Expected no active effects after Reset")
	}
}
