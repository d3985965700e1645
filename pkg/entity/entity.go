// pkg/entity/entity.go
package entity

import (
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// ID is a unique identifier for an entity within one simulation
type ID uint64

// Entity is the capability shared by every moving body: it has a position
// and advances itself by a time step, re-entering the world through the
// opposite edge when it leaves.
type Entity interface {
	GetID() ID
	GetPosition() physics.Vector2D
	GetHull() physics.Polygon
	Update(deltaTime float64)
}

// BaseEntity contains common functionality for all entities
type BaseEntity struct {
	ID       ID
	Position physics.Vector2D
	Velocity physics.Vector2D
	Space    physics.Torus
}

// GetID returns the entity's unique identifier
func (e *BaseEntity) GetID() ID {
	return e.ID
}

// GetPosition returns the entity's position
func (e *BaseEntity) GetPosition() physics.Vector2D {
	return e.Position
}

// Update moves the entity by its velocity and remaps it onto the torus
func (e *BaseEntity) Update(deltaTime float64) {
	e.Position = e.Position.Add(e.Velocity.Scale(deltaTime))
	e.Position = e.Space.Remap(e.Position)
}
