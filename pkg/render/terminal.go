// pkg/render/terminal.go
package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-asteroids/pkg/engine"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// Glyphs used by the terminal renderer
const (
	ObstacleGlyph = '#'
	FlameGlyph    = '*'
)

// craftGlyphs are indexed by heading in 45 degree sectors, starting at +x
// and turning towards +y (down on screen).
var craftGlyphs = [8]rune{'>', '\\', 'v', '/', '<', '\\', '^', '/'}

// TerminalRenderer draws snapshots onto a tcell screen, scaling the whole
// world to the screen size. Drawing wraps at the screen edges like the
// world does.
type TerminalRenderer struct {
	screen tcell.Screen
	world  physics.Torus

	obstacleStyle tcell.Style
	craftStyle    tcell.Style
	flameStyle    tcell.Style
	scoreStyle    tcell.Style
}

// NewTerminalRenderer creates a renderer for a world of the given size.
// The screen must already be initialised.
func NewTerminalRenderer(screen tcell.Screen, world physics.Torus) *TerminalRenderer {
	return &TerminalRenderer{
		screen:        screen,
		world:         world,
		obstacleStyle: tcell.StyleDefault.Foreground(tcell.ColorWhite),
		craftStyle:    tcell.StyleDefault.Foreground(tcell.ColorYellow),
		flameStyle:    tcell.StyleDefault.Foreground(tcell.ColorRed),
		scoreStyle:    tcell.StyleDefault.Foreground(tcell.ColorGreen),
	}
}

// worldToScreen converts world coordinates to (unwrapped) cell coordinates
func (r *TerminalRenderer) worldToScreen(pos physics.Vector2D) (int, int) {
	cols, rows := r.screen.Size()
	x := int(math.Floor(pos.X / r.world.Width * float64(cols)))
	y := int(math.Floor(pos.Y / r.world.Height * float64(rows)))
	return x, y
}

// plot sets one cell, wrapping coordinates around the screen.
func (r *TerminalRenderer) plot(x, y int, glyph rune, style tcell.Style) {
	cols, rows := r.screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	x = ((x % cols) + cols) % cols
	y = ((y % rows) + rows) % rows
	r.screen.SetContent(x, y, glyph, nil, style)
}

// line draws a segment between two cells with Bresenham's algorithm.
func (r *TerminalRenderer) line(x0, y0, x1, y1 int, glyph rune, style tcell.Style) {
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
		r.plot(x0, y0, glyph, style)
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

// Clear implements Renderer
func (r *TerminalRenderer) Clear() {
	r.screen.Clear()
}

// RenderObstacle outlines the obstacle hull
func (r *TerminalRenderer) RenderObstacle(obstacle engine.ObstacleState) {
	n := obstacle.Hull.Len()
	if n == 0 {
		return
	}
	for i := 0; i < n; i++ {
		x0, y0 := r.worldToScreen(obstacle.Hull.Vertex(i))
		x1, y1 := r.worldToScreen(obstacle.Hull.Vertex((i + 1) % n))
		r.line(x0, y0, x1, y1, ObstacleGlyph, r.obstacleStyle)
	}
}

// RenderCraft draws the craft glyph for its heading, with a flame behind it
// while the engine is on.
func (r *TerminalRenderer) RenderCraft(craft engine.CraftState) {
	x, y := r.worldToScreen(craft.Position)
	if craft.PropulsionOn {
		dx, dy := headingStep(craft.HeadingAngle)
		r.plot(x-dx, y-dy, FlameGlyph, r.flameStyle)
	}
	r.plot(x, y, CraftGlyph(craft.HeadingAngle), r.craftStyle)
}

// RenderScore writes the score, rounded to an integer, in the top-left
// corner.
func (r *TerminalRenderer) RenderScore(score float64) {
	for i, c := range ScoreText(score) {
		r.screen.SetContent(i, 0, c, nil, r.scoreStyle)
	}
}

// Present implements Renderer
func (r *TerminalRenderer) Present() {
	r.screen.Show()
}

// CraftGlyph returns the glyph for a heading given in degrees.
func CraftGlyph(headingDegrees float64) rune {
	return craftGlyphs[sector(headingDegrees)]
}

// sector maps a heading in degrees to one of eight 45 degree sectors.
func sector(headingDegrees float64) int {
	s := int(math.Round(headingDegrees/45)) % 8
	if s < 0 {
		s += 8
	}
	return s
}

// headingStep returns the unit cell offset pointing along a heading.
func headingStep(headingDegrees float64) (int, int) {
	steps := [8][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}
	step := steps[sector(headingDegrees)]
	return step[0], step[1]
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
