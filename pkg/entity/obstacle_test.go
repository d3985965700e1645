// pkg/entity/obstacle_test.go
package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/go-asteroids/pkg/physics"
)

func triangle() physics.Polygon {
	return physics.NewPolygon(
		physics.Vector2D{X: 10, Y: 0},
		physics.Vector2D{X: -5, Y: 8},
		physics.Vector2D{X: -5, Y: -8},
	)
}

func TestNewObstacle(t *testing.T) {
	o := NewObstacle(7, space, physics.Vector2D{X: -10, Y: 900}, physics.Vector2D{X: 3, Y: 4}, 2, triangle())

	assert.Equal(t, ID(7), o.GetID())
	assert.Equal(t, physics.Vector2D{X: 790, Y: 100}, o.GetPosition(), "spawn positions are canonical")
	assert.Equal(t, 2.0, o.Size)
	assert.Equal(t, 3, o.Shape.Len())
}

func TestObstacle_UpdateKeepsVelocity(t *testing.T) {
	velocity := physics.Vector2D{X: -30, Y: 12.5}
	o := NewObstacle(1, space, physics.Vector2D{X: 10, Y: 10}, velocity, 1, triangle())

	for i := 0; i < 100; i++ {
		o.Update(0.1)
		assert.Equal(t, velocity, o.Velocity)
		assert.GreaterOrEqual(t, o.Position.X, 0.0)
		assert.Less(t, o.Position.X, 800.0)
		assert.GreaterOrEqual(t, o.Position.Y, 0.0)
		assert.Less(t, o.Position.Y, 800.0)
	}

	// 10 seconds: x = 10 - 300 -> 510, y = 10 + 125 -> 135
	assert.InDelta(t, 510, o.Position.X, 1e-6)
	assert.InDelta(t, 135, o.Position.Y, 1e-6)
}

func TestObstacle_GetHullTranslatesWithoutRotation(t *testing.T) {
	o := NewObstacle(1, space, physics.Vector2D{X: 100, Y: 200}, physics.Vector2D{X: 5, Y: 5}, 1, triangle())

	hull := o.GetHull()
	require.Equal(t, 3, hull.Len())
	assert.Equal(t, physics.Vector2D{X: 110, Y: 200}, hull.Vertex(0))
	assert.Equal(t, physics.Vector2D{X: 95, Y: 208}, hull.Vertex(1))
	assert.Equal(t, physics.Vector2D{X: 95, Y: 192}, hull.Vertex(2))

	o.Update(1)
	hull = o.GetHull()
	assert.Equal(t, physics.Vector2D{X: 115, Y: 205}, hull.Vertex(0))
	assert.Equal(t, physics.Vector2D{X: 10, Y: 0}, o.Shape.Vertex(0), "local shape is untouched")
}
