// pkg/entity/obstacle.go
package entity

import (
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// Obstacle is an asteroid drifting at constant velocity. Obstacles
// translate but never rotate.
type Obstacle struct {
	BaseEntity
	Size  float64
	Shape physics.Polygon // local frame, already scaled by Size
}

// NewObstacle creates an obstacle. The position is remapped onto the torus.
func NewObstacle(id ID, space physics.Torus, position, velocity physics.Vector2D, size float64, shape physics.Polygon) *Obstacle {
	return &Obstacle{
		BaseEntity: BaseEntity{
			ID:       id,
			Position: space.Remap(position),
			Velocity: velocity,
			Space:    space,
		},
		Size:  size,
		Shape: shape,
	}
}

// GetHull returns the obstacle outline in world coordinates
func (o *Obstacle) GetHull() physics.Polygon {
	return o.Shape.Transform(0, o.Position)
}
