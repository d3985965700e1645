// pkg/physics/vector.go
package physics

import "math"

// Vector2D is an immutable 2-D value used for positions, velocities and
// headings in world units. Every operation returns a new value.
//
// Angles are measured from the +X axis towards +Y. Methods taking or
// returning radians say so; AngleDegrees folds its result into (-180, 180],
// so the -X direction is always 180 and never -180.
type Vector2D struct {
	X float64
	Y float64
}

// Add returns v + other.
func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns v - other.
func (v Vector2D) Sub(other Vector2D) Vector2D {
	return Vector2D{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale returns v with both components multiplied by factor.
func (v Vector2D) Scale(factor float64) Vector2D {
	return Vector2D{X: v.X * factor, Y: v.Y * factor}
}

// Length is the Euclidean norm, computed without intermediate overflow.
func (v Vector2D) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance is the straight-line distance to other, ignoring wraparound.
func (v Vector2D) Distance(other Vector2D) float64 {
	return v.Sub(other).Length()
}

// Angle is the direction of v in radians, in [-π, π].
func (v Vector2D) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// AngleDegrees is the direction of v in degrees.
func (v Vector2D) AngleDegrees() float64 {
	deg := v.Angle() * 180 / math.Pi
	if deg == -180 {
		return 180
	}
	return deg
}

// Rotate turns v by angle radians.
func (v Vector2D) Rotate(angle float64) Vector2D {
	sin, cos := math.Sincos(angle)
	return Vector2D{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// FromAngle returns the vector of the given length pointing at angle
// radians.
func FromAngle(angle, magnitude float64) Vector2D {
	sin, cos := math.Sincos(angle)
	return Vector2D{X: magnitude * cos, Y: magnitude * sin}
}
