package term

import (
	"strings"
	"testing"

	"github.com/phanxgames/spline"
)

var white = spline.Color{R: 1, G: 1, B: 1, A: 1}

func TestCanvasLine(t *testing.T) {
	tests := []struct {
		name  string
		a, b  spline.Vec2
		cells [][2]int
	}{
		{"horizontal", spline.Vec2{X: 0, Y: 0}, spline.Vec2{X: 3, Y: 0}, [][2]int{{0, 0}, {1, 0}, {2, 0}, {3, 0}}},
		{"vertical", spline.Vec2{X: 1, Y: 3}, spline.Vec2{X: 1, Y: 1}, [][2]int{{1, 1}, {1, 2}, {1, 3}}},
		{"diagonal", spline.Vec2{X: 0, Y: 0}, spline.Vec2{X: 2, Y: 2}, [][2]int{{0, 0}, {1, 1}, {2, 2}}},
		{"single", spline.Vec2{X: 2.4, Y: 1.6}, spline.Vec2{X: 2.4, Y: 1.6}, [][2]int{{2, 2}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCanvas(4, 4)
			c.line(tt.a, tt.b, '*', white)
			n := 0
			for y := 0; y < 4; y++ {
				for x := 0; x < 4; x++ {
					if c.at(x, y) == '*' {
						n++
					}
				}
			}
			if n != len(tt.cells) {
				t.Errorf("set %d cells, want %d", n, len(tt.cells))
			}
			for _, p := range tt.cells {
				if c.at(p[0], p[1]) != '*' {
					t.Errorf("cell %v not set", p)
				}
			}
		})
	}
}

func TestCanvasClipsOutOfBounds(t *testing.T) {
	c := newCanvas(3, 2)
	c.set(-1, 0, 'x', white)
	c.set(3, 0, 'x', white)
	c.line(spline.Vec2{X: -5, Y: 1}, spline.Vec2{X: 10, Y: 1}, '*', white)
	if c.at(0, 1) != '*' || c.at(2, 1) != '*' {
		t.Error("visible part of the line should be drawn")
	}
	if c.at(5, 5) != ' ' {
		t.Error("out of bounds cells read as space")
	}
}

func TestCanvasDrawLayers(t *testing.T) {
	cmds := []spline.RenderCommand{
		{Type: spline.CommandRect, Color: white, Rect: spline.Rect{Width: 4, Height: 4}},
		{Type: spline.CommandPolyline, Layer: spline.LayerBack, Color: white,
			Points: []spline.Vec2{{X: 0, Y: 0}, {X: 3, Y: 0}}},
		{Type: spline.CommandPolyline, Layer: spline.LayerFill, Color: white,
			Points: []spline.Vec2{{X: 0, Y: 0}, {X: 0, Y: 3}}},
		{Type: spline.CommandPoints, Layer: spline.LayerFill, Color: white,
			Points: []spline.Vec2{{X: 3, Y: 0}, {X: 3, Y: 3}}},
		{Type: spline.CommandPoint, Layer: spline.LayerFillHighlight, Color: white, Pos: spline.Vec2{X: 0, Y: 3}},
		{Type: spline.CommandPoint, Layer: spline.LayerFillHighlight, Color: spline.ColorTransparent, Pos: spline.Vec2{X: 1, Y: 1}},
		{Type: spline.CommandText, Color: white, Text: "hidden"},
	}
	c := newCanvas(4, 4)
	c.draw(cmds)

	tests := []struct {
		x, y int
		want rune
	}{
		{1, 0, glyphPolygon},
		{0, 0, glyphCurve},
		{0, 1, glyphCurve},
		{3, 0, glyphMarker},
		{3, 3, glyphMarker},
		{0, 3, glyphHighlight},
		{1, 1, ' '},
		{2, 2, ' '},
	}
	for _, tt := range tests {
		if got := c.at(tt.x, tt.y); got != tt.want {
			t.Errorf("at(%d, %d) = %q, want %q", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestCanvasStringShape(t *testing.T) {
	c := newCanvas(5, 3)
	c.set(2, 1, 'o', white)
	lines := strings.Split(c.String(), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if !strings.Contains(lines[1], "o") {
		t.Errorf("line 1 = %q, want marker", lines[1])
	}
	if lines[0] != "     " {
		t.Errorf("line 0 = %q, want blanks", lines[0])
	}
}

func TestHexColor(t *testing.T) {
	tests := []struct {
		in   spline.Color
		want string
	}{
		{white, "#ffffff"},
		{spline.Color{R: 1, G: 0, B: 0, A: 1}, "#ff0000"},
		{spline.Color{R: 1, G: 1, B: 1, A: 0.5}, "#7f7f7f"},
	}
	for _, tt := range tests {
		if got := string(hexColor(tt.in)); got != tt.want {
			t.Errorf("hexColor(%v) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
