package term

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/phanxgames/spline"
)

// Glyphs used to rasterize the editor's render commands.
const (
	glyphPolygon   = '.'
	glyphCurve     = '*'
	glyphMarker    = 'o'
	glyphHighlight = '@'
)

// cell is a single character of the canvas.
type cell struct {
	r     rune
	color spline.Color
}

// canvas is a 2D grid of cells that render commands are rasterized into.
// Cell (x, y) covers the editor position (x, y) rounded to the nearest
// integer.
type canvas struct {
	cells  []cell
	width  int
	height int
}

func newCanvas(width, height int) *canvas {
	width, height = max(width, 0), max(height, 0)
	return &canvas{
		cells:  make([]cell, width*height),
		width:  width,
		height: height,
	}
}

func (c *canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// set writes a cell. Does nothing if out of bounds.
func (c *canvas) set(x, y int, r rune, col spline.Color) {
	if !c.inBounds(x, y) {
		return
	}
	c.cells[y*c.width+x] = cell{r: r, color: col}
}

// at returns the rune at (x, y), or a space for empty and out-of-bounds
// cells.
func (c *canvas) at(x, y int) rune {
	if !c.inBounds(x, y) {
		return ' '
	}
	if r := c.cells[y*c.width+x].r; r != 0 {
		return r
	}
	return ' '
}

func round(v float64) int { return int(math.Round(v)) }

// line draws a Bresenham line between two positions.
func (c *canvas) line(a, b spline.Vec2, r rune, col spline.Color) {
	x0, y0 := round(a.X), round(a.Y)
	x1, y1 := round(b.X), round(b.Y)
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		c.set(x0, y0, r, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// draw rasterizes commands in order, so later layers overwrite earlier ones.
// Rectangles and text are left to the frame around the canvas.
func (c *canvas) draw(cmds []spline.RenderCommand) {
	for i := range cmds {
		cmd := &cmds[i]
		if cmd.Color.A <= 0 {
			continue
		}
		switch cmd.Type {
		case spline.CommandPolyline:
			r := glyphCurve
			if cmd.Layer == spline.LayerBack {
				r = glyphPolygon
			}
			for j := 1; j < len(cmd.Points); j++ {
				c.line(cmd.Points[j-1], cmd.Points[j], r, cmd.Color)
			}
		case spline.CommandPoint:
			r := glyphMarker
			if cmd.Layer == spline.LayerFillHighlight {
				r = glyphHighlight
			}
			c.set(round(cmd.Pos.X), round(cmd.Pos.Y), r, cmd.Color)
		case spline.CommandPoints:
			for _, p := range cmd.Points {
				c.set(round(p.X), round(p.Y), glyphMarker, cmd.Color)
			}
		}
	}
}

// hexColor converts a color to a lipgloss color, blending alpha against
// black.
func hexColor(col spline.Color) lipgloss.Color {
	ch := func(v float64) uint8 {
		return uint8(math.Min(math.Max(v*col.A, 0), 1) * 255)
	}
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", ch(col.R), ch(col.G), ch(col.B)))
}

// String renders the canvas row by row. Runs of equally colored cells share
// one style.
func (c *canvas) String() string {
	var sb strings.Builder
	var run strings.Builder
	for y := 0; y < c.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		var runColor spline.Color
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runColor.A > 0 {
				sb.WriteString(lipgloss.NewStyle().Foreground(hexColor(runColor)).Render(run.String()))
			} else {
				sb.WriteString(run.String())
			}
			run.Reset()
		}
		for x := 0; x < c.width; x++ {
			cl := c.cells[y*c.width+x]
			if cl.r == 0 {
				cl = cell{r: ' '}
			}
			if cl.color != runColor {
				flush()
				runColor = cl.color
			}
			run.WriteRune(cl.r)
		}
		flush()
	}
	return sb.String()
}
