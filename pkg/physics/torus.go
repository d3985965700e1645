// pkg/physics/torus.go
package physics

import "math"

// Torus describes a rectangular world whose opposite edges are joined, so a
// body leaving on one side re-enters on the other.
type Torus struct {
	Width  float64
	Height float64
}

// NewTorus creates a torus with the given bounds
func NewTorus(width, height float64) Torus {
	return Torus{Width: width, Height: height}
}

// Remap maps an arbitrary position to canonical coordinates in
// [0, Width) x [0, Height).
func (t Torus) Remap(position Vector2D) Vector2D {
	return Vector2D{
		X: Wrap(position.X, t.Width),
		Y: Wrap(position.Y, t.Height),
	}
}

// Center returns the middle of the world
func (t Torus) Center() Vector2D {
	return Vector2D{X: t.Width / 2, Y: t.Height / 2}
}

// Wrap maps value into [0, bound) using floor division, so negative values
// wrap from the upper edge. bound must be positive.
func Wrap(value, bound float64) float64 {
	r := value - math.Floor(value/bound)*bound
	// Rounding can land exactly on an edge for values within an ulp of a
	// multiple of bound.
	if r < 0 {
		r += bound
	}
	if r >= bound {
		r = 0
	}
	return r
}
