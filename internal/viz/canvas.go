// Package viz is the rendering surface: a braille-dot canvas with a per-cell
// color layer, a 3D camera projection, and the interactive live view. The
// studios only hand it wireframes and point sets; nothing here knows what a
// scene means.
package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille patterns pack a 2x4 dot block into one rune above 0x2800.
// Bit layout:
//
//	01 08
//	02 10
//	04 20
//	40 80
var dotBits = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Ink is a normalized RGB color painted onto canvas cells. The zero value
// means "theme default".
type Ink struct {
	R, G, B float64
}

// NewInk clamps the components into [0,1].
func NewInk(r, g, b float64) Ink {
	cl := func(v float64) float64 {
		if v < 0 {
			return 0
		}
		if v > 1 {
			return 1
		}
		return v
	}
	return Ink{cl(r), cl(g), cl(b)}
}

// Dim scales the ink toward black.
func (k Ink) Dim(f float64) Ink {
	return Ink{k.R * f, k.G * f, k.B * f}
}

// Hex renders the ink as a #rrggbb string for lipgloss.
func (k Ink) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", int(k.R*255+0.5), int(k.G*255+0.5), int(k.B*255+0.5))
}

func (k Ink) zero() bool { return k == Ink{} }

// Canvas is a W x H cell grid addressed in sub-pixel (dot) coordinates:
// (W*2) x (H*4). Each cell carries its braille pattern plus the ink of the
// last dot set in it.
type Canvas struct {
	W, H  int
	cells []rune
	ink   []Ink
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{W: w, H: h, cells: make([]rune, w*h), ink: make([]Ink, w*h)}
	c.Clear()
	return c
}

// DotWidth and DotHeight report the sub-pixel resolution.
func (c *Canvas) DotWidth() int  { return c.W * 2 }
func (c *Canvas) DotHeight() int { return c.H * 4 }

// Clear resets every cell to the empty braille rune and default ink.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = 0x2800
		c.ink[i] = Ink{}
	}
}

// Set turns on the dot at sub-pixel (x, y) with the given ink.
func (c *Canvas) Set(x, y int, k Ink) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.W || row >= c.H {
		return
	}
	i := row*c.W + col
	c.cells[i] |= dotBits[y%4][x%2]
	if !k.zero() {
		c.ink[i] = k
	}
}

// Blot fills a small disc of dots, used for node and ball markers.
func (c *Canvas) Blot(x, y, r int, k Ink) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				c.Set(x+dx, y+dy, k)
			}
		}
	}
}

// Line draws from (x0, y0) to (x1, y1) with Bresenham stepping.
func (c *Canvas) Line(x0, y0, x1, y1 int, k Ink) {
	dx, dy := absInt(x1-x0), absInt(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy
	for {
		c.Set(x0, y0, k)
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

// String renders the canvas without color, for tests and plain export.
func (c *Canvas) String() string {
	var b strings.Builder
	for row := 0; row < c.H; row++ {
		b.WriteString(string(c.cells[row*c.W : (row+1)*c.W]))
		b.WriteByte('\n')
	}
	return b.String()
}

// Render produces the colored frame. Adjacent cells sharing ink are grouped
// into one styled run to keep the escape-sequence volume down.
func (c *Canvas) Render(defaultInk Ink) string {
	var b strings.Builder
	for row := 0; row < c.H; row++ {
		var run []rune
		var runInk Ink
		flush := func() {
			if len(run) == 0 {
				return
			}
			k := runInk
			if k.zero() {
				k = defaultInk
			}
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(k.Hex())).Render(string(run)))
			run = run[:0]
		}
		for col := 0; col < c.W; col++ {
			i := row*c.W + col
			if len(run) > 0 && c.ink[i] != runInk {
				flush()
			}
			runInk = c.ink[i]
			run = append(run, c.cells[i])
		}
		flush()
		b.WriteByte('\n')
	}
	return b.String()
}

// Cell exposes the raw rune and ink at (col, row) for the exporters.
func (c *Canvas) Cell(col, row int) (rune, Ink) {
	i := row*c.W + col
	return c.cells[i], c.ink[i]
}

// DotPattern reports the raw braille bit pattern at (col, row).
func (c *Canvas) DotPattern(col, row int) int {
	return int(c.cells[row*c.W+col] - 0x2800)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
