// pkg/render/engo/geometry.go
package engo

import (
	"math"

	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// worldToScreen scales world coordinates onto a screen of the given size.
// The whole torus is always visible, so there is no camera.
func worldToScreen(pos physics.Vector2D, world physics.Torus, width, height float32) engo.Point {
	return engo.Point{
		X: float32(pos.X/world.Width) * width,
		Y: float32(pos.Y/world.Height) * height,
	}
}

// fanTriangles triangulates an outline that is star-shaped around center
// into the unit-square coordinates common.ComplexTriangles expects: one
// triangle per edge, all sharing center. It returns the top-left corner and
// size of the bounding box the points are relative to.
func fanTriangles(center engo.Point, outline []engo.Point) (origin engo.Point, width, height float32, points []engo.Point) {
	if len(outline) < 3 {
		return engo.Point{}, 0, 0, nil
	}

	minX, minY := center.X, center.Y
	maxX, maxY := minX, minY
	for _, p := range outline {
		minX = float32(math.Min(float64(minX), float64(p.X)))
		minY = float32(math.Min(float64(minY), float64(p.Y)))
		maxX = float32(math.Max(float64(maxX), float64(p.X)))
		maxY = float32(math.Max(float64(maxY), float64(p.Y)))
	}

	width, height = maxX-minX, maxY-minY
	if width == 0 {
		width = 1
	}
	if height == 0 {
		height = 1
	}

	normalize := func(p engo.Point) engo.Point {
		return engo.Point{X: (p.X - minX) / width, Y: (p.Y - minY) / height}
	}

	c := normalize(center)
	points = make([]engo.Point, 0, 3*len(outline))
	for i := range outline {
		points = append(points,
			c,
			normalize(outline[i]),
			normalize(outline[(i+1)%len(outline)]),
		)
	}
	return engo.Point{X: minX, Y: minY}, width, height, points
}

// spriteOrigin returns where the top-left corner of a sprite must go so
// that the pixel at pivot lands on anchor once the sprite is rotated
// clockwise by degrees about its corner.
func spriteOrigin(anchor, pivot engo.Point, degrees float32) engo.Point {
	rotated := physics.Vector2D{X: float64(pivot.X), Y: float64(pivot.Y)}.
		Rotate(float64(degrees) * math.Pi / 180)
	return engo.Point{
		X: anchor.X - float32(rotated.X),
		Y: anchor.Y - float32(rotated.Y),
	}
}
