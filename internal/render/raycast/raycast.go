// Package raycast renders a first-person view of a grid map into a packed
// RGB framebuffer, one ray per screen column.
package raycast

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"chosenoffset.com/gridcaster/internal/world/grid"
	"chosenoffset.com/gridcaster/internal/world/viewer"
)

const (
	// DefaultFOV is the horizontal field of view, 60 degrees.
	DefaultFOV = math.Pi / 3
	// DefaultMaxDepth is the farthest wall distance drawn, in tiles.
	DefaultMaxDepth = 20.0
	// DefaultIterationCap bounds the DDA walk on small maps.
	DefaultIterationCap = 100

	// SideShade darkens walls hit on a horizontal gridline crossing.
	SideShade = 0.7

	CeilingColor uint32 = 0x87CEEB
	FloorColor   uint32 = 0x404040

	textureSize = 64
)

// ErrFramebufferSize is returned when the framebuffer does not hold exactly
// width*height pixels.
var ErrFramebufferSize = errors.New("framebuffer size does not match dimensions")

// Side tells which kind of gridline a ray crossed when it hit.
type Side uint8

const (
	// Vertical is a crossing of a vertical gridline (an x step).
	Vertical Side = iota
	// Horizontal is a crossing of a horizontal gridline (a y step).
	Horizontal
)

// Hit is the result of casting a single ray.
type Hit struct {
	Distance float64
	Kind     grid.CellKind
	Side     Side
}

// LightFunc returns a brightness multiplier for a ray that deviates from
// the view direction by angleDiff radians.
type LightFunc func(angleDiff float64) float64

// TextureFunc maps a shaded wall color and a texture row to the final pixel.
type TextureFunc func(base uint32, texY int, kind grid.CellKind) uint32

// RayCaster holds the fixed projection parameters. It keeps no per-frame
// state, so one instance may render any number of frames.
type RayCaster struct {
	FOV          float64
	MaxDepth     float64
	IterationCap int

	// Light shades walls by ray angle. Nil means full brightness.
	Light LightFunc
	// Texture is the per-pixel wall hook. Nil keeps the flat shaded color.
	Texture TextureFunc
	// Workers is the number of column bands rendered concurrently.
	// Values below 2 render sequentially.
	Workers int
}

// New returns a ray caster with the default projection.
func New() *RayCaster {
	return &RayCaster{
		FOV:          DefaultFOV,
		MaxDepth:     DefaultMaxDepth,
		IterationCap: DefaultIterationCap,
	}
}

// ProjectedHeight returns the unclamped on-screen wall height for a
// perpendicular distance.
func ProjectedHeight(distance float64, screenHeight int) float64 {
	return float64(screenHeight) / distance
}

// iterationCap scales the configured cap with the view depth and map size
// so large maps cannot exhaust it before a real wall is reached.
func (rc *RayCaster) iterationCap(m *grid.Map) int {
	limit := rc.IterationCap
	if limit <= 0 {
		limit = DefaultIterationCap
	}
	scaled := int(math.Ceil(2*rc.MaxDepth)) + m.Width() + m.Height()
	if scaled > limit {
		limit = scaled
	}
	return limit
}

func (rc *RayCaster) miss() Hit {
	return Hit{Distance: rc.MaxDepth, Kind: grid.Empty, Side: Horizontal}
}

// CastRay walks a ray from (startX, startY) through the grid with a DDA
// traversal. The returned distance is measured along the ray to the
// gridline that was crossed. Rays that leave the map or exceed the
// iteration cap return MaxDepth with an Empty kind.
func (rc *RayCaster) CastRay(startX, startY, angle float64, m *grid.Map) Hit {
	dx := math.Cos(angle)
	dy := math.Sin(angle)

	mapX, mapY := grid.CellOf(startX, startY)
	if !m.InBounds(mapX, mapY) {
		return rc.miss()
	}

	deltaDistX := math.Inf(1)
	if dx != 0 {
		deltaDistX = math.Abs(1 / dx)
	}
	deltaDistY := math.Inf(1)
	if dy != 0 {
		deltaDistY = math.Abs(1 / dy)
	}

	stepX, sideDistX := 1, math.Inf(1)
	switch {
	case dx < 0:
		stepX = -1
		sideDistX = (startX - float64(mapX)) * deltaDistX
	case dx > 0:
		sideDistX = (float64(mapX) + 1 - startX) * deltaDistX
	}

	stepY, sideDistY := 1, math.Inf(1)
	switch {
	case dy < 0:
		stepY = -1
		sideDistY = (startY - float64(mapY)) * deltaDistY
	case dy > 0:
		sideDistY = (float64(mapY) + 1 - startY) * deltaDistY
	}

	side := Vertical
	limit := rc.iterationCap(m)
	hit := false
	for i := 0; i < limit; i++ {
		if sideDistX < sideDistY {
			sideDistX += deltaDistX
			mapX += stepX
			side = Vertical
		} else {
			sideDistY += deltaDistY
			mapY += stepY
			side = Horizontal
		}

		if !m.InBounds(mapX, mapY) {
			return rc.miss()
		}
		if m.IsWall(mapX, mapY) {
			hit = true
			break
		}
	}
	if !hit {
		return rc.miss()
	}

	var dist float64
	if side == Vertical {
		dist = (float64(mapX) - startX + float64(1-stepX)/2) / dx
	} else {
		dist = (float64(mapY) - startY + float64(1-stepY)/2) / dy
	}

	return Hit{Distance: dist, Kind: m.CellAt(mapX, mapY), Side: side}
}

// Render draws the view from pose into fb, a row-major buffer of packed
// 0xRRGGBB pixels. Every pixel is overwritten.
func (rc *RayCaster) Render(fb []uint32, pose viewer.Pose, m *grid.Map, width, height int) error {
	if width <= 0 || height <= 0 || len(fb) != width*height {
		return fmt.Errorf("%w: %d pixels for %dx%d", ErrFramebufferSize, len(fb), width, height)
	}

	workers := rc.Workers
	if workers > width {
		workers = width
	}
	if workers < 2 {
		rc.renderColumns(fb, pose, m, width, height, 0, width)
		return nil
	}

	var g errgroup.Group
	band := (width + workers - 1) / workers
	for start := 0; start < width; start += band {
		start, end := start, min(start+band, width)
		g.Go(func() error {
			rc.renderColumns(fb, pose, m, width, height, start, end)
			return nil
		})
	}
	return g.Wait()
}

// renderColumns renders columns [from, to). It writes only those columns.
func (rc *RayCaster) renderColumns(fb []uint32, pose viewer.Pose, m *grid.Map, width, height, from, to int) {
	angleStep := rc.FOV / float64(width)
	for x := from; x < to; x++ {
		rayAngle := pose.Heading - rc.FOV/2 + float64(x)*angleStep
		hit := rc.CastRay(pose.X, pose.Y, rayAngle, m)

		if hit.Distance < rc.MaxDepth {
			rc.drawWallSlice(fb, x, width, height, hit, rayAngle-pose.Heading)
		} else {
			drawBackgroundSlice(fb, x, width, height)
		}
	}
}

func (rc *RayCaster) drawWallSlice(fb []uint32, x, width, height int, hit Hit, angleDiff float64) {
	// Project along the view axis, not the ray, to avoid fisheye.
	perp := hit.Distance * math.Cos(angleDiff)
	if perp <= 0 {
		perp = math.SmallestNonzeroFloat64
	}

	wallHeight := math.Min(ProjectedHeight(perp, height), float64(height))
	wallTop := int((float64(height) - wallHeight) / 2)
	wallBottom := min(wallTop+int(wallHeight), height)

	lighting := 1.0
	if hit.Side == Horizontal {
		lighting = SideShade
	}
	if rc.Light != nil {
		lighting *= rc.Light(angleDiff)
	}
	shaded := Shade(grid.ColorOf(hit.Kind), lighting)

	for y := 0; y < height; y++ {
		idx := y*width + x
		switch {
		case y < wallTop:
			fb[idx] = CeilingColor
		case y < wallBottom:
			if rc.Texture == nil {
				fb[idx] = shaded
				continue
			}
			texY := int(float64(y-wallTop)/wallHeight*textureSize) % textureSize
			fb[idx] = rc.Texture(shaded, texY, hit.Kind)
		default:
			fb[idx] = FloorColor
		}
	}
}

func drawBackgroundSlice(fb []uint32, x, width, height int) {
	half := height / 2
	for y := 0; y < height; y++ {
		if y < half {
			fb[y*width+x] = CeilingColor
		} else {
			fb[y*width+x] = FloorColor
		}
	}
}

// Shade scales each channel of a packed color by factor, clamping to
// [0, 255].
func Shade(color uint32, factor float64) uint32 {
	if factor < 0 || math.IsNaN(factor) {
		factor = 0
	}
	r := scaleChannel(color>>16, factor)
	g := scaleChannel(color>>8, factor)
	b := scaleChannel(color, factor)
	return r<<16 | g<<8 | b
}

func scaleChannel(c uint32, factor float64) uint32 {
	v := float64(c&0xFF) * factor
	if v > 255 {
		return 255
	}
	return uint32(v)
}
