// pkg/physics/vector_test.go
package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const epsilon = 1e-9

func TestVector2D_Add(t *testing.T) {
	tests := []struct {
		name     string
		v1       Vector2D
		v2       Vector2D
		expected Vector2D
	}{
		{"positive_vectors", Vector2D{X: 3, Y: 4}, Vector2D{X: 1, Y: 2}, Vector2D{X: 4, Y: 6}},
		{"negative_vectors", Vector2D{X: -3, Y: -4}, Vector2D{X: -1, Y: -2}, Vector2D{X: -4, Y: -6}},
		{"mixed_signs", Vector2D{X: 5, Y: -3}, Vector2D{X: -2, Y: 7}, Vector2D{X: 3, Y: 4}},
		{"zero_vector", Vector2D{}, Vector2D{X: 5, Y: -3}, Vector2D{X: 5, Y: -3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.v1.Add(tt.v2))
		})
	}
}

func TestVector2D_Sub(t *testing.T) {
	tests := []struct {
		name     string
		v1       Vector2D
		v2       Vector2D
		expected Vector2D
	}{
		{"positive_result", Vector2D{X: 5, Y: 7}, Vector2D{X: 2, Y: 3}, Vector2D{X: 3, Y: 4}},
		{"negative_result", Vector2D{X: 2, Y: 3}, Vector2D{X: 5, Y: 7}, Vector2D{X: -3, Y: -4}},
		{"same_vectors", Vector2D{X: 4, Y: 6}, Vector2D{X: 4, Y: 6}, Vector2D{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.v1.Sub(tt.v2))
		})
	}
}

func TestVector2D_Scale(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vector2D
		factor   float64
		expected Vector2D
	}{
		{"positive_scale", Vector2D{X: 3, Y: 4}, 2, Vector2D{X: 6, Y: 8}},
		{"negative_scale", Vector2D{X: 3, Y: 4}, -2, Vector2D{X: -6, Y: -8}},
		{"zero_scale", Vector2D{X: 3, Y: 4}, 0, Vector2D{}},
		{"fractional_scale", Vector2D{X: 4, Y: 8}, 0.5, Vector2D{X: 2, Y: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.vector.Scale(tt.factor))
		})
	}
}

func TestVector2D_Immutable(t *testing.T) {
	v := Vector2D{X: 1, Y: 2}
	_ = v.Add(Vector2D{X: 10, Y: 10})
	_ = v.Scale(3)
	_ = v.Rotate(math.Pi)
	assert.Equal(t, Vector2D{X: 1, Y: 2}, v)
}

func TestVector2D_Length(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vector2D
		expected float64
	}{
		{"unit_vector_x", Vector2D{X: 1}, 1},
		{"zero_vector", Vector2D{}, 0},
		{"pythagorean_triple", Vector2D{X: 3, Y: 4}, 5},
		{"negative_components", Vector2D{X: -3, Y: -4}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.vector.Length(), epsilon)
		})
	}

	assert.InEpsilon(t, math.Sqrt2*1e200, Vector2D{X: 1e200, Y: 1e200}.Length(), 1e-12)
}

func TestVector2D_Distance(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vector2D
		expected float64
	}{
		{"same_point", Vector2D{X: 1, Y: 1}, Vector2D{X: 1, Y: 1}, 0},
		{"horizontal", Vector2D{X: 0, Y: 0}, Vector2D{X: 80, Y: 0}, 80},
		{"diagonal", Vector2D{X: 1, Y: 2}, Vector2D{X: 4, Y: 6}, 5},
		{"symmetric", Vector2D{X: 4, Y: 6}, Vector2D{X: 1, Y: 2}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.a.Distance(tt.b), epsilon)
		})
	}
}

func TestVector2D_AngleDegrees(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vector2D
		expected float64
	}{
		{"positive_x", Vector2D{X: 1}, 0},
		{"positive_y", Vector2D{Y: 1}, 90},
		{"negative_y", Vector2D{Y: -1}, -90},
		{"negative_x", Vector2D{X: -1}, 180},
		{"negative_x_negative_zero_y", Vector2D{X: -1, Y: math.Copysign(0, -1)}, 180},
		{"diagonal", Vector2D{X: 1, Y: 1}, 45},
		{"third_quadrant", Vector2D{X: -1, Y: -1}, -135},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.vector.AngleDegrees()
			assert.InDelta(t, tt.expected, got, epsilon)
			assert.Greater(t, got, -180.0)
			assert.LessOrEqual(t, got, 180.0)
		})
	}
}

func TestFromAngle(t *testing.T) {
	v := FromAngle(math.Pi/2, 2)
	assert.InDelta(t, 0, v.X, epsilon)
	assert.InDelta(t, 2, v.Y, epsilon)
	assert.InDelta(t, math.Pi/2, v.Angle(), epsilon)
}

func TestVector2D_Rotate(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vector2D
		angle    float64
		expected Vector2D
	}{
		{"quarter_turn", Vector2D{X: 1}, math.Pi / 2, Vector2D{Y: 1}},
		{"half_turn", Vector2D{X: 27}, math.Pi, Vector2D{X: -27}},
		{"no_turn", Vector2D{X: 2, Y: 3}, 0, Vector2D{X: 2, Y: 3}},
		{"negative_turn", Vector2D{Y: 1}, -math.Pi / 2, Vector2D{X: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.vector.Rotate(tt.angle)
			assert.InDelta(t, tt.expected.X, got.X, epsilon)
			assert.InDelta(t, tt.expected.Y, got.Y, epsilon)
		})
	}
}
