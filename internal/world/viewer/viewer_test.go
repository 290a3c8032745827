package viewer

import (
	"math"
	"math/rand"
	"testing"

	"chosenoffset.com/gridcaster/internal/world/grid"
)

func mustMap(t *testing.T, rows ...string) *grid.Map {
	t.Helper()
	m, err := grid.Parse(rows)
	if err != nil {
		t.Fatalf("Failed to parse map: %v", err)
	}
	return m
}

func TestUpdateStopsAtWall(t *testing.T) {
	// The cell east of the viewer is a wall; open space lies beyond it.
	m := mustMap(t,
		"11111",
		"10101",
		"11111",
	)
	v := New(1.5, 1.5, 0)
	v.Speed = 3.0

	hit := v.Update(1.0, 1, 0, m)
	if !hit {
		t.Error("Expected hit_wall to be true")
	}
	if col, _ := v.Cell(); col != 1 {
		t.Errorf("Expected viewer to stay in column 1, got column %d (x=%v)", col, v.X)
	}
	if v.X > 2-v.Margin+1e-9 {
		t.Errorf("Expected x to stop at least the margin before the wall, got %v", v.X)
	}
}

func TestUpdateZeroDirectionIsNoop(t *testing.T) {
	m := grid.BuiltinLevel(0).Map
	v := New(1.5, 1.5, 0)

	if v.Update(0.5, 0, 0, m) {
		t.Error("Expected zero direction to report no hit")
	}
	if v.X != 1.5 || v.Y != 1.5 {
		t.Errorf("Expected position unchanged, got (%v, %v)", v.X, v.Y)
	}
	if v.Update(0, 1, 0, m) {
		t.Error("Expected zero delta time to report no hit")
	}
	if v.X != 1.5 {
		t.Errorf("Expected position unchanged for zero delta time, got %v", v.X)
	}
}

func TestUpdateMovesInOpenSpace(t *testing.T) {
	m := grid.BuiltinLevel(0).Map
	v := New(1.5, 1.5, 0)

	if v.Update(0.1, 1, 0, m) {
		t.Error("Expected no wall hit in open space")
	}
	if math.Abs(v.X-1.8) > 1e-9 || v.Y != 1.5 {
		t.Errorf("Expected (1.8, 1.5), got (%v, %v)", v.X, v.Y)
	}
}

func TestUpdateSlidesAlongWall(t *testing.T) {
	m := mustMap(t,
		"1111111",
		"1000001",
		"1000001",
		"1111111",
	)
	// Pressed against the north wall, moving north-east.
	v := New(2.5, 1.15, 0)
	d := 1 / math.Sqrt2

	hit := v.Update(0.2, d, -d, m)
	if !hit {
		t.Error("Expected the blocked north component to report a hit")
	}
	if v.X <= 2.5 {
		t.Errorf("Expected viewer to slide east along the wall, x=%v", v.X)
	}
	if v.Y < 1+v.Margin-1e-9 {
		t.Errorf("Expected viewer to stay clear of the north wall, y=%v", v.Y)
	}
}

func TestUpdateSmallComponentDoesNotFlagHit(t *testing.T) {
	m := mustMap(t,
		"11111",
		"10001",
		"11111",
	)
	v := New(1.5, 1.101, 0)
	if v.Update(0.1, 0.99995, -0.00999, m) {
		t.Error("Expected a negligible blocked component not to report a hit")
	}
	if v.Y != 1.101 {
		t.Errorf("Expected the blocked north component to be rejected, y=%v", v.Y)
	}
}

func TestNoTunneling(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for lvl := 0; lvl < grid.LevelCount(); lvl++ {
		level := grid.BuiltinLevel(lvl)
		v := FromSpawn(level.Spawn)
		for i := 0; i < 2000; i++ {
			angle := rng.Float64() * 2 * math.Pi
			dt := rng.Float64() * 3
			if i%50 == 0 {
				dt = 1e6
			}
			v.Update(dt, math.Cos(angle), math.Sin(angle), level.Map)
			col, row := v.Cell()
			if level.Map.IsWall(col, row) {
				t.Fatalf("Level %d step %d: viewer entered wall cell (%d, %d) at (%v, %v)", lvl, i, col, row, v.X, v.Y)
			}
		}
	}
}

func TestHeadingNormalization(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	v := New(1.5, 1.5, 0)
	m := grid.BuiltinLevel(0).Map
	for i := 0; i < 1000; i++ {
		v.Rotate((rng.Float64() - 0.5) * 100)
		if v.Heading < 0 || v.Heading >= 2*math.Pi {
			t.Fatalf("Heading out of range after rotate: %v", v.Heading)
		}
	}

	v.Heading = -7 * math.Pi
	v.Update(0.01, 0, 0, m)
	if v.Heading < 0 || v.Heading >= 2*math.Pi {
		t.Errorf("Expected Update to renormalize heading, got %v", v.Heading)
	}
	if math.Abs(v.Heading-math.Pi) > 1e-9 {
		t.Errorf("Expected heading pi, got %v", v.Heading)
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{2 * math.Pi, 0},
		{-math.Pi / 2, 1.5 * math.Pi},
		{5 * math.Pi, math.Pi},
		{math.Inf(1), 0},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		got := NormalizeAngle(tt.in)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("NormalizeAngle(%v): expected %v, got %v", tt.in, tt.want, got)
		}
	}
	if got := NormalizeAngle(-1e-18); got < 0 || got >= 2*math.Pi {
		t.Errorf("Expected tiny negative angle to wrap into range, got %v", got)
	}
}

func TestTurn(t *testing.T) {
	v := New(1.5, 1.5, 0)
	v.Turn(0.5, 1)
	if math.Abs(v.Heading-1.0) > 1e-9 {
		t.Errorf("Expected heading 1.0, got %v", v.Heading)
	}
	v.Turn(1, -1)
	if math.Abs(v.Heading-(2*math.Pi-1)) > 1e-9 {
		t.Errorf("Expected heading 2π-1, got %v", v.Heading)
	}
}
