package hud

import (
	"testing"

	"chosenoffset.com/gridcaster/internal/ui/canvas"
	"chosenoffset.com/gridcaster/internal/world/grid"
	"chosenoffset.com/gridcaster/internal/world/viewer"
)

func filledCanvas(w, h int) *canvas.Canvas {
	c := canvas.New(make([]uint32, w*h), w, h)
	c.Fill(0x777777)
	return c
}

func TestHealthColor(t *testing.T) {
	tests := []struct {
		health int
		want   uint32
	}{
		{100, 0x44FF44},
		{61, 0x44FF44},
		{60, 0xFFFF44},
		{31, 0xFFFF44},
		{30, 0xFF4444},
		{0, 0xFF4444},
	}
	for _, tt := range tests {
		if got := HealthColor(tt.health); got != tt.want {
			t.Errorf("HealthColor(%d): expected %06X, got %06X", tt.health, tt.want, got)
		}
	}
}

func TestDrawMinimap(t *testing.T) {
	c := filledCanvas(400, 300)
	level := grid.BuiltinLevel(0)
	pose := viewer.Pose{X: 1.5, Y: 1.5, Heading: 0}

	DrawMinimap(c, level.Map, pose, 120)

	ox, oy, cell := MinimapOrigin(c, level.Map, 120)
	if ox != 270 || oy != 10 || cell != 7 {
		t.Fatalf("Expected origin (270, 10) cell 7, got (%d, %d) cell %d", ox, oy, cell)
	}

	if got := c.At(272, 12); got != grid.ColorOf(grid.Wall1) {
		t.Errorf("Expected wall color in corner cell, got %06X", got)
	}
	if got := c.At(ox+5*cell+2, oy+cell+2); got != 0x000000 {
		t.Errorf("Expected black empty cell, got %06X", got)
	}
	if got := c.At(280, 20); got != 0xFF0000 {
		t.Errorf("Expected red viewer center, got %06X", got)
	}
	if got := c.At(286, 20); got != 0xFFFF00 {
		t.Errorf("Expected yellow arrow tip, got %06X", got)
	}
	if got := c.At(100, 100); got != 0x777777 {
		t.Errorf("Expected view outside minimap untouched, got %06X", got)
	}
}

func TestDrawHealthBar(t *testing.T) {
	c := filledCanvas(400, 300)
	DrawHealthBar(c, 50, 100)

	if got := c.At(10, 260); got != barColor {
		t.Errorf("Expected border color, got %06X", got)
	}
	if got := c.At(13, 265); got != 0xFFFF44 {
		t.Errorf("Expected yellow fill at half health, got %06X", got)
	}
	if got := c.At(150, 265); got != barColor {
		t.Errorf("Expected empty bar past the fill, got %06X", got)
	}

	c = filledCanvas(400, 300)
	DrawHealthBar(c, 0, 100)
	if got := c.At(13, 265); got != barColor {
		t.Errorf("Expected no fill at zero health, got %06X", got)
	}
}

func TestDrawCrosshair(t *testing.T) {
	c := filledCanvas(101, 81)
	DrawCrosshair(c)

	for _, p := range [][2]int{{50, 40}, {60, 40}, {40, 41}, {50, 30}, {49, 50}} {
		if got := c.At(p[0], p[1]); got != crosshairColor {
			t.Errorf("Expected crosshair at %v, got %06X", p, got)
		}
	}
	if got := c.At(61, 40); got != 0x777777 {
		t.Errorf("Expected crosshair to end at 10px, got %06X", got)
	}
}

func TestDrawLabels(t *testing.T) {
	c := filledCanvas(400, 300)
	level := grid.BuiltinLevel(0)
	pose := viewer.Pose{X: 1.5, Y: 1.5}

	labels := New(DefaultConfig()).Draw(c, level.Map, pose, 75, 100)
	if len(labels) != 2 {
		t.Fatalf("Expected 2 labels, got %d", len(labels))
	}
	if labels[0].Text != "Health: 75" {
		t.Errorf("Expected health label, got %q", labels[0].Text)
	}
	if labels[1].Text != Controls {
		t.Errorf("Expected controls label, got %q", labels[1].Text)
	}

	quiet := New(Config{ShowMinimap: false})
	c = filledCanvas(400, 300)
	if got := len(quiet.Draw(c, level.Map, pose, 75, 100)); got != 1 {
		t.Errorf("Expected only the health label, got %d", got)
	}
	if got := c.At(272, 12); got != 0x777777 {
		t.Errorf("Expected no minimap, got %06X", got)
	}
}

func TestMarkers(t *testing.T) {
	c := filledCanvas(400, 300)
	m := grid.BuiltinLevel(0).Map
	pose := viewer.Pose{X: 1.5, Y: 1.5, Heading: 0}

	shapes := New(DefaultConfig()).Markers(c, m, pose)
	if len(shapes) != 3 {
		t.Fatalf("Expected 3 shapes, got %d", len(shapes))
	}

	ring := shapes[0]
	if ring.Kind != canvas.Ring || ring.X != 200 || ring.Y != 150 {
		t.Errorf("Expected a ring at the center, got %+v", ring)
	}

	ox, oy, cell := MinimapOrigin(c, m, 120)
	dot := shapes[2]
	wantX := float64(ox) + 1.5*float64(cell)
	wantY := float64(oy) + 1.5*float64(cell)
	if dot.Kind != canvas.FilledCircle || dot.X != wantX || dot.Y != wantY {
		t.Errorf("Expected a dot at (%v, %v), got %+v", wantX, wantY, dot)
	}

	line := shapes[1]
	if line.Kind != canvas.Segment || line.X1 <= line.X || line.Y1 != line.Y {
		t.Errorf("Expected an eastward heading line, got %+v", line)
	}

	bare := New(Config{MinimapSize: 120}).Markers(c, m, pose)
	if len(bare) != 0 {
		t.Errorf("Expected no shapes with minimap and crosshair off, got %d", len(bare))
	}
}
