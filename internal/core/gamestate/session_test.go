package gamestate

import (
	"testing"

	"chosenoffset.com/gridcaster/internal/world/grid"
)

func TestSplashTransitions(t *testing.T) {
	s := NewSession(DefaultRules())
	if s.State() != StateSplash {
		t.Fatalf("Expected splash, got %v", s.State())
	}

	if s.UpdateSplash(1.0, false) {
		t.Fatal("Expected splash to stay up after 1s")
	}
	if !s.UpdateSplash(2.5, false) {
		t.Fatal("Expected splash to end after 3.5s")
	}
	if s.State() != StateLevelSelect {
		t.Errorf("Expected level select, got %v", s.State())
	}

	skip := NewSession(DefaultRules())
	if !skip.UpdateSplash(0.016, true) || skip.State() != StateLevelSelect {
		t.Errorf("Expected Space to skip the splash, got %v", skip.State())
	}
	if skip.UpdateSplash(10, true) {
		t.Error("Expected no transition outside the splash")
	}
}

func TestWallDamageCooldown(t *testing.T) {
	s := NewSession(DefaultRules())
	s.StartLevel(0)

	var damaged []int
	for i := 1; i <= 4; i++ {
		if out := s.Step(0.25, true, grid.Empty); out.Damaged {
			damaged = append(damaged, i)
		}
	}

	if len(damaged) != 2 || damaged[0] != 1 || damaged[1] != 3 {
		t.Errorf("Expected damage on steps [1 3], got %v", damaged)
	}
	if s.Health() != 90 {
		t.Errorf("Expected health 90, got %d", s.Health())
	}
	if s.DamageTaken() != 10 {
		t.Errorf("Expected 10 damage taken, got %d", s.DamageTaken())
	}
}

func TestHazardDamageCooldown(t *testing.T) {
	s := NewSession(DefaultRules())
	s.StartLevel(0)

	hits := 0
	for i := 0; i < 4; i++ {
		if s.Step(0.25, false, grid.Hazard).Damaged {
			hits++
		}
	}
	if hits != 2 {
		t.Errorf("Expected 2 hazard hits, got %d", hits)
	}
	if s.Health() != 80 {
		t.Errorf("Expected health 80, got %d", s.Health())
	}
}

func TestDeathEndsLevel(t *testing.T) {
	rules := DefaultRules()
	rules.StartHealth = 10
	s := NewSession(rules)
	s.StartLevel(2)

	out := s.Step(0.016, false, grid.Hazard)
	if !out.Died || s.State() != StateGameOver {
		t.Fatalf("Expected death, got %+v in %v", out, s.State())
	}
	if s.Health() != 0 {
		t.Errorf("Expected health clamped to 0, got %d", s.Health())
	}

	if out := s.Step(0.016, false, grid.Exit); out.Completed {
		t.Error("Expected no completion after death")
	}

	s.Restart()
	if s.State() != StatePlaying || s.Level() != 2 || s.Health() != 10 {
		t.Errorf("Expected restart of level 2 with full health, got %v level %d health %d",
			s.State(), s.Level(), s.Health())
	}
}

func TestWallDeathBeatsExit(t *testing.T) {
	rules := DefaultRules()
	rules.StartHealth = 5
	s := NewSession(rules)
	s.StartLevel(0)

	out := s.Step(0.016, true, grid.Exit)
	if !out.Died || out.Completed {
		t.Errorf("Expected death without completion, got %+v", out)
	}
}

func TestExitCompletesLevel(t *testing.T) {
	s := NewSession(DefaultRules())
	s.StartLevel(1)
	s.Step(0.5, false, grid.Empty)

	out := s.Step(0.5, false, grid.Exit)
	if !out.Completed || s.State() != StateSuccess {
		t.Fatalf("Expected success, got %+v in %v", out, s.State())
	}
	if s.Elapsed() != 1.0 {
		t.Errorf("Expected 1s elapsed, got %v", s.Elapsed())
	}

	if !s.ReturnToMenu() || s.State() != StateLevelSelect {
		t.Errorf("Expected level select, got %v", s.State())
	}
	if s.ReturnToMenu() {
		t.Error("Expected ReturnToMenu to refuse from level select")
	}
}

func TestStepIgnoredOutsidePlay(t *testing.T) {
	s := NewSession(DefaultRules())
	if out := s.Step(1, true, grid.Hazard); out != (Outcome{}) {
		t.Errorf("Expected empty outcome on the splash, got %+v", out)
	}
	if s.Health() != 100 {
		t.Errorf("Expected health untouched, got %d", s.Health())
	}
}

func TestStateString(t *testing.T) {
	if StateGameOver.String() != "game_over" {
		t.Errorf("Unexpected name %q", StateGameOver.String())
	}
	if State(42).String() != "state(42)" {
		t.Errorf("Unexpected name %q", State(42).String())
	}
}
