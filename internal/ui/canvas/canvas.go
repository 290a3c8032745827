// Package canvas draws simple shapes into a packed 0xRRGGBB framebuffer
// and describes the text drawn on top of it.
package canvas

import "math"

// Canvas is a framebuffer view. All drawing is clipped to its bounds.
type Canvas struct {
	Pix    []uint32
	Width  int
	Height int
}

// New wraps fb, which must hold width*height pixels.
func New(fb []uint32, width, height int) *Canvas {
	return &Canvas{Pix: fb, Width: width, Height: height}
}

// Label is a line of text to draw over the framebuffer once it is shown.
type Label struct {
	Text  string
	X, Y  int
	Color uint32
	Scale float64
	// Centered places the label so that X is its horizontal center.
	Centered bool
}

// At returns the pixel at (x, y), or 0 outside the canvas.
func (c *Canvas) At(x, y int) uint32 {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return 0
	}
	return c.Pix[y*c.Width+x]
}

// Set writes one pixel.
func (c *Canvas) Set(x, y int, color uint32) {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return
	}
	c.Pix[y*c.Width+x] = color
}

// Fill paints the whole canvas.
func (c *Canvas) Fill(color uint32) {
	for i := range c.Pix[:c.Width*c.Height] {
		c.Pix[i] = color
	}
}

// FillRect paints the w x h rectangle with its top-left corner at (x, y).
func (c *Canvas) FillRect(x, y, w, h int, color uint32) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, c.Width), min(y+h, c.Height)
	for py := y0; py < y1; py++ {
		row := c.Pix[py*c.Width : py*c.Width+c.Width]
		for px := x0; px < x1; px++ {
			row[px] = color
		}
	}
}

// Line draws a one pixel wide line with Bresenham's algorithm.
func (c *Canvas) Line(x0, y0, x1, y1 int, color uint32) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy

	for {
		c.Set(x0, y0, color)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Star draws a five-pointed star outline centered on (x, y).
func (c *Canvas) Star(x, y int, color uint32) {
	points := [...][2]int{
		{0, -8}, {2, -2}, {8, -2}, {3, 2}, {5, 8},
		{0, 5}, {-5, 8}, {-3, 2}, {-8, -2}, {-2, -2},
	}
	for i, p := range points {
		q := points[(i+1)%len(points)]
		c.Line(x+p[0], y+p[1], x+q[0], y+q[1], color)
	}
}

// RotatedSquare fills a square of the given half size rotated by angle.
func (c *Canvas) RotatedSquare(cx, cy int, half, angle float64, color uint32) {
	cos, sin := math.Cos(angle), math.Sin(angle)
	reach := int(math.Ceil(half * math.Sqrt2))
	for dy := -reach; dy <= reach; dy++ {
		for dx := -reach; dx <= reach; dx++ {
			// Inverse rotation tests whether the pixel lies inside the square.
			rx := float64(dx)*cos + float64(dy)*sin
			ry := -float64(dx)*sin + float64(dy)*cos
			if math.Abs(rx) < half && math.Abs(ry) < half {
				c.Set(cx+dx, cy+dy, color)
			}
		}
	}
}

// ShapeKind selects how a Shape is drawn.
type ShapeKind int

const (
	FilledCircle ShapeKind = iota
	Ring
	Segment
)

// Shape is an anti-aliased shape drawn over the uploaded frame at screen
// resolution. Coordinates are in framebuffer pixels.
type Shape struct {
	Kind   ShapeKind
	X, Y   float64 // Center, or the start of a segment
	X1, Y1 float64 // End of a segment
	Radius float64
	Width  float64 // Stroke width of rings and segments
	Color  uint32
}

// Lerp blends two packed colors, factor 0 giving a and 1 giving b.
func Lerp(a, b uint32, factor float64) uint32 {
	factor = math.Max(0, math.Min(factor, 1))
	mix := func(shift uint) uint32 {
		ca := float64(a >> shift & 0xFF)
		cb := float64(b >> shift & 0xFF)
		return uint32(ca*(1-factor)+cb*factor) << shift
	}
	return mix(16) | mix(8) | mix(0)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
